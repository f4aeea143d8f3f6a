package routers

import (
	"hospicare-service/internal/app/delivery/http/controllers"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMedicineCheckRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicineCheckController *controllers.MedicineCheckController) {
	pharmacistOnly := middlewares.RequireRoles(constvars.RolePharmacist, constvars.RoleAdmin)

	router.With(middlewares.Authenticate).Get("/", medicineCheckController.FindAll)
	router.With(middlewares.Authenticate).Get("/{checkID}", medicineCheckController.FindByID)
	router.With(middlewares.Authenticate, pharmacistOnly).Post("/", medicineCheckController.Create)
	router.With(middlewares.Authenticate, pharmacistOnly).Post("/{checkID}/details", medicineCheckController.AddDetail)
	router.With(middlewares.Authenticate, pharmacistOnly).Put("/{checkID}/details/{batchNumber}", medicineCheckController.UpdateDetail)
	router.With(middlewares.Authenticate, pharmacistOnly).Post("/{checkID}/complete", medicineCheckController.Complete)
	router.With(middlewares.Authenticate, pharmacistOnly).Post("/{checkID}/promote", medicineCheckController.Promote)
}
