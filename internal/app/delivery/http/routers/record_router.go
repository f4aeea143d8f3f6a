package routers

import (
	"hospicare-service/internal/app/delivery/http/controllers"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, recordController *controllers.RecordController) {
	doctorOnly := middlewares.RequireRoles(constvars.RoleDoctor, constvars.RoleAdmin)

	router.With(middlewares.Authenticate, doctorOnly).Post("/", recordController.Create)
	router.With(middlewares.Authenticate).Get("/{recordID}", recordController.FindByID)
	router.With(middlewares.Authenticate, doctorOnly).Patch("/{recordID}", recordController.Update)
	router.With(middlewares.Authenticate, doctorOnly).Put("/{recordID}/prescriptions", recordController.UpdatePrescriptions)
	router.With(middlewares.Authenticate, doctorOnly).Post("/{recordID}/lab-test", recordController.RequestLabTest)
	router.With(middlewares.Authenticate, doctorOnly).Put("/{recordID}/lab-test", recordController.SubmitLabTestResult)
	router.With(middlewares.Authenticate, doctorOnly).Post("/{recordID}/complete", recordController.Complete)
}
