package routers

import (
	"fmt"
	"net/http"
	"rosta-service/internal/app/config"
	"rosta-service/internal/app/delivery/http/middlewares"
	"rosta-service/internal/app/services/core/calendar"
	"rosta-service/internal/app/services/core/devices"
	"rosta-service/internal/app/services/core/exports"
	"rosta-service/internal/app/services/core/notify"
	"rosta-service/internal/app/services/core/rotations"
	"rosta-service/internal/app/services/core/shifts"
	"rosta-service/internal/app/services/core/shifttypes"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	calendarController *calendar.CalendarController,
	shiftController *shifts.ShiftController,
	shiftTypeController *shifttypes.ShiftTypeController,
	rotationController *rotations.RotationController,
	deviceController *devices.DeviceController,
	exportController *exports.ExportController,
	subscriptionController *notify.SubscriptionController,
) {

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Operator requests are tagged before the limiter so they get their own budget.
	router.Use(middlewares.APIKeyAuth)

	// Rate limiting middleware using httprate
	normalLimiter, apiKeyLimiter := middlewares.CreateRateLimiters()
	router.Use(middlewares.ConditionalRateLimit(normalLimiter, apiKeyLimiter))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/calendar", func(r chi.Router) {
				attachCalendarRoutes(r, middlewares, calendarController)
			})

			r.Route("/shifts", func(r chi.Router) {
				attachShiftRoutes(r, middlewares, shiftController)
			})

			r.Route("/shift-types", func(r chi.Router) {
				attachShiftTypeRoutes(r, middlewares, shiftTypeController)
			})

			r.Route("/rotations", func(r chi.Router) {
				attachRotationRoutes(r, middlewares, rotationController)
			})

			r.Route("/devices", func(r chi.Router) {
				attachDeviceRoutes(r, middlewares, deviceController)
			})

			r.Route("/exports", func(r chi.Router) {
				attachExportRoutes(r, middlewares, exportController)
			})

			r.Route("/subscriptions", func(r chi.Router) {
				attachSubscriptionRoutes(r, middlewares, subscriptionController)
			})
		})
	})
}
