package routers

import (
	"hospicare-service/internal/app/delivery/http/controllers"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMedicineRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicineController *controllers.MedicineController) {
	pharmacistOnly := middlewares.RequireRoles(constvars.RolePharmacist, constvars.RoleAdmin)

	router.With(middlewares.Authenticate).Get("/", medicineController.FindAll)
	router.With(middlewares.Authenticate).Get("/{medicineID}", medicineController.FindByID)
	router.With(middlewares.Authenticate, pharmacistOnly).Post("/", medicineController.Create)
	router.With(middlewares.Authenticate, pharmacistOnly).Patch("/{medicineID}", medicineController.Update)
	router.With(middlewares.Authenticate, pharmacistOnly).Post("/{medicineID}/disable", medicineController.Disable)
	router.With(middlewares.Authenticate, pharmacistOnly).Post("/dispense", medicineController.Dispense)
}
