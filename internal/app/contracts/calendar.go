package contracts

import (
	"context"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
)

type CalendarUsecase interface {
	GetMonthView(ctx context.Context, request *requests.MonthView) (*responses.MonthView, error)
	GetMonthGrid(ctx context.Context, request *requests.MonthView) (*responses.MonthGrid, error)
}
