package routers

import (
	"rosta-service/internal/app/delivery/http/middlewares"
	"rosta-service/internal/app/services/core/devices"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachDeviceRoutes(router chi.Router, m *middlewares.Middlewares, deviceController *devices.DeviceController) {
	// Registration and session renewal are the only unauthenticated writes in
	// the API, so they share a per-IP limiter on top of the global window to
	// slow down pairing-code and device-secret guessing.
	registerLimiter := middlewares.NewRateLimiter(
		m.Log,
		m.InternalConfig.Session.RegisterRateLimit,
		time.Second,
		15*time.Minute,
	)
	router.With(registerLimiter.Limit).Post("/register", deviceController.Register)
	router.With(registerLimiter.Limit).Post("/session", deviceController.RenewSession)

	router.With(m.DeviceSession).Get("/", deviceController.FindAll)
	router.With(m.DeviceSession).Get("/me", deviceController.GetSettings)
	router.With(m.DeviceSession).Put("/me/settings", deviceController.UpdateSettings)
}
