package routers

import (
	"hospicare-service/internal/app/delivery/http/controllers"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachWorkScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, workScheduleController *controllers.WorkScheduleController) {
	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist),
	).Post("/", workScheduleController.Create)
	router.With(middlewares.Authenticate).Get("/{scheduleID}", workScheduleController.FindByID)
	router.With(middlewares.Authenticate).Get("/employees/{employeeID}", workScheduleController.FindByEmployee)
}
