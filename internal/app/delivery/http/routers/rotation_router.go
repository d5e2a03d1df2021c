package routers

import (
	"rosta-service/internal/app/delivery/http/middlewares"
	"rosta-service/internal/app/services/core/rotations"

	"github.com/go-chi/chi/v5"
)

func attachRotationRoutes(router chi.Router, middlewares *middlewares.Middlewares, rotationController *rotations.RotationController) {
	router.With(middlewares.DeviceSession).Get("/", rotationController.FindAll)
	router.With(middlewares.DeviceSession).Post("/", rotationController.Create)
	router.With(middlewares.DeviceSession).Get("/{rotation_id}", rotationController.FindByID)
	router.With(middlewares.DeviceSession).Put("/{rotation_id}", rotationController.Update)
	router.With(middlewares.DeviceSession).Delete("/{rotation_id}", rotationController.DeleteByID)
	router.With(middlewares.RequireAPIKey).Post("/materialize", rotationController.Materialize)
}
