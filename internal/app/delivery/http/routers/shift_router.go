package routers

import (
	"rosta-service/internal/app/delivery/http/middlewares"
	"rosta-service/internal/app/services/core/shifts"

	"github.com/go-chi/chi/v5"
)

func attachShiftRoutes(router chi.Router, middlewares *middlewares.Middlewares, shiftController *shifts.ShiftController) {
	router.Use(middlewares.DeviceSession)

	router.Get("/", shiftController.FindAll)
	router.Post("/", shiftController.Create)
	router.Post("/bulk", shiftController.BulkCreate)
	router.Delete("/bulk", shiftController.BulkDelete)
	router.Get("/{shift_id}", shiftController.FindByID)
	router.Delete("/{shift_id}", shiftController.DeleteByID)
}
