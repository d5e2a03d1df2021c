package contracts

import (
	"context"
	"time"

	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
)

type ShiftUsecase interface {
	Create(ctx context.Context, request *requests.CreateShift) (*responses.Shift, error)
	FindAll(ctx context.Context, request *requests.GetShifts) ([]responses.Shift, error)
	FindByID(ctx context.Context, shiftID string) (*responses.Shift, error)
	DeleteByID(ctx context.Context, shiftID string) error
	BulkCreate(ctx context.Context, request *requests.BulkCreateShifts) (*responses.BulkShiftResult, error)
	BulkDelete(ctx context.Context, request *requests.BulkShiftDates) (*responses.BulkShiftResult, error)
}

type ShiftRepository interface {
	Create(ctx context.Context, shift *models.Shift) (*models.Shift, error)
	CreateMany(ctx context.Context, shifts []models.Shift) ([]models.Shift, error)
	FindByID(ctx context.Context, shiftID string) (*models.Shift, error)
	// FindByDateRange returns shifts with start <= Date < end, sorted by
	// date then creation time so aggregation tie-breaks stay deterministic.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Shift, error)
	FindByDates(ctx context.Context, dates []time.Time) ([]models.Shift, error)
	ExistsByShiftTypeID(ctx context.Context, shiftTypeID string) (bool, error)
	DeleteByID(ctx context.Context, shiftID string) error
	DeleteByDates(ctx context.Context, dates []time.Time) (int64, error)
	DeleteByRotationID(ctx context.Context, rotationID string, from time.Time) (int64, error)
}
