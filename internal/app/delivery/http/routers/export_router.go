package routers

import (
	"rosta-service/internal/app/delivery/http/middlewares"
	"rosta-service/internal/app/services/core/exports"

	"github.com/go-chi/chi/v5"
)

func attachExportRoutes(router chi.Router, middlewares *middlewares.Middlewares, exportController *exports.ExportController) {
	router.With(middlewares.DeviceSession).Post("/", exportController.CreateExport)
}
