package routers

import (
	"hospicare-service/internal/app/delivery/http/controllers"
	"hospicare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAttendanceRoutes(router chi.Router, middlewares *middlewares.Middlewares, attendanceController *controllers.AttendanceController) {
	router.With(middlewares.Authenticate).Post("/check-in", attendanceController.CheckIn)
	router.With(middlewares.Authenticate).Post("/check-out", attendanceController.CheckOut)
	router.With(middlewares.Authenticate).Get("/employees/{employeeID}", attendanceController.FindByEmployee)
}
