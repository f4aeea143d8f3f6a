package routers

import (
	"hospicare-service/internal/app/delivery/http/controllers"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController, recordController *controllers.RecordController) {
	router.With(middlewares.Authenticate).Post("/", appointmentController.Create)
	router.With(middlewares.Authenticate).Get("/", appointmentController.FindAll)
	router.With(middlewares.Authenticate).Get("/{appointmentID}", appointmentController.FindByID)
	router.With(middlewares.Authenticate).Get("/{appointmentID}/medical-record", recordController.FindByAppointmentID)

	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.RoleReceptionist, constvars.RoleDoctor, constvars.RoleAdmin),
	).Patch("/{appointmentID}/status", appointmentController.UpdateStatus)

	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.RoleReceptionist, constvars.RoleAdmin),
	).Post("/{appointmentID}/queue", appointmentController.PushToQueue)
}
