package routers

import (
	"fmt"
	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/delivery/http/controllers"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	queueController *controllers.QueueController,
	recordController *controllers.RecordController,
	medicineController *controllers.MedicineController,
	medicineCheckController *controllers.MedicineCheckController,
	attendanceController *controllers.AttendanceController,
	workScheduleController *controllers.WorkScheduleController,
	patientController *controllers.PatientController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController, recordController)
			})

			r.Route("/queues", func(r chi.Router) {
				attachQueueRoutes(r, middlewares, queueController)
			})

			r.Route("/medical-records", func(r chi.Router) {
				attachRecordRoutes(r, middlewares, recordController)
			})

			r.Route("/medicines", func(r chi.Router) {
				attachMedicineRoutes(r, middlewares, medicineController)
			})

			r.Route("/medicine-checks", func(r chi.Router) {
				attachMedicineCheckRoutes(r, middlewares, medicineCheckController)
			})

			r.Route("/attendances", func(r chi.Router) {
				attachAttendanceRoutes(r, middlewares, attendanceController)
			})

			r.Route("/work-schedules", func(r chi.Router) {
				attachWorkScheduleRoutes(r, middlewares, workScheduleController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})
		})
	})
}
