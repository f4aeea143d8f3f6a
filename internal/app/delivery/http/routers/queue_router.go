package routers

import (
	"hospicare-service/internal/app/delivery/http/controllers"
	"hospicare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachQueueRoutes(router chi.Router, middlewares *middlewares.Middlewares, queueController *controllers.QueueController) {
	router.With(middlewares.Authenticate).Get("/", queueController.FindByRoomAndDate)
}
