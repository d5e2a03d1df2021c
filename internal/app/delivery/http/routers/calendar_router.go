package routers

import (
	"rosta-service/internal/app/delivery/http/middlewares"
	"rosta-service/internal/app/services/core/calendar"

	"github.com/go-chi/chi/v5"
)

func attachCalendarRoutes(router chi.Router, middlewares *middlewares.Middlewares, calendarController *calendar.CalendarController) {
	router.Use(middlewares.DeviceSession)

	router.Get("/{year}/{month}", calendarController.GetMonthView)
	router.Get("/{year}/{month}/grid", calendarController.GetMonthGrid)
}
