package routers

import (
	"rosta-service/internal/app/delivery/http/middlewares"
	"rosta-service/internal/app/services/core/notify"

	"github.com/go-chi/chi/v5"
)

func attachSubscriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, subscriptionController *notify.SubscriptionController) {
	router.With(middlewares.RequireAPIKey).Get("/", subscriptionController.FindAll)
	router.With(middlewares.RequireAPIKey).Post("/", subscriptionController.Create)
	router.With(middlewares.RequireAPIKey).Delete("/{subscription_id}", subscriptionController.DeleteByID)
}
