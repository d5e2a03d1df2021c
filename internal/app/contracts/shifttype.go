package contracts

import (
	"context"

	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
)

type ShiftTypeUsecase interface {
	FindAll(ctx context.Context) ([]responses.ShiftType, error)
	FindByID(ctx context.Context, shiftTypeID string) (*responses.ShiftType, error)
	Create(ctx context.Context, request *requests.CreateShiftType) (*responses.ShiftType, error)
	Update(ctx context.Context, shiftTypeID string, request *requests.UpdateShiftType) (*responses.ShiftType, error)
	DeleteByID(ctx context.Context, shiftTypeID string) error
}

type ShiftTypeRepository interface {
	FindAll(ctx context.Context) ([]models.ShiftType, error)
	FindByID(ctx context.Context, shiftTypeID string) (*models.ShiftType, error)
	FindByName(ctx context.Context, name string) (*models.ShiftType, error)
	Create(ctx context.Context, shiftType *models.ShiftType) (*models.ShiftType, error)
	UpdateByID(ctx context.Context, shiftTypeID string, shiftType *models.ShiftType) (*models.ShiftType, error)
	DeleteByID(ctx context.Context, shiftTypeID string) error
}
