package routers

import (
	"rosta-service/internal/app/delivery/http/middlewares"
	"rosta-service/internal/app/services/core/shifttypes"

	"github.com/go-chi/chi/v5"
)

func attachShiftTypeRoutes(router chi.Router, middlewares *middlewares.Middlewares, shiftTypeController *shifttypes.ShiftTypeController) {
	router.Use(middlewares.DeviceSession)

	router.Get("/", shiftTypeController.FindAll)
	router.Post("/", shiftTypeController.Create)
	router.Get("/{shift_type_id}", shiftTypeController.FindByID)
	router.Put("/{shift_type_id}", shiftTypeController.Update)
	router.Delete("/{shift_type_id}", shiftTypeController.DeleteByID)
}
