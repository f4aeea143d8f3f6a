package routers

import (
	"hospicare-service/internal/app/delivery/http/controllers"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.RoleReceptionist, constvars.RoleAdmin),
	).Post("/", patientController.Create)
	router.With(middlewares.Authenticate).Get("/", patientController.FindAll)
	router.With(middlewares.Authenticate).Get("/{patientID}", patientController.FindByID)
}
