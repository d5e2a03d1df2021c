package contracts

import (
	"context"

	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
)

type RotationUsecase interface {
	Create(ctx context.Context, request *requests.CreateRotation) (*responses.Rotation, error)
	FindAll(ctx context.Context) ([]responses.Rotation, error)
	FindByID(ctx context.Context, rotationID string) (*responses.Rotation, error)
	Update(ctx context.Context, rotationID string, request *requests.UpdateRotation) (*responses.Rotation, error)
	DeleteByID(ctx context.Context, rotationID string) error
	// Materialize expands every active rotation into concrete shifts over its
	// horizon. The cron worker and the ops endpoint both land here.
	Materialize(ctx context.Context) (*responses.MaterializeResult, error)
}

type RotationRepository interface {
	Create(ctx context.Context, rotation *models.Rotation) (*models.Rotation, error)
	FindAll(ctx context.Context) ([]models.Rotation, error)
	FindActive(ctx context.Context) ([]models.Rotation, error)
	FindByID(ctx context.Context, rotationID string) (*models.Rotation, error)
	UpdateByID(ctx context.Context, rotationID string, rotation *models.Rotation) (*models.Rotation, error)
	DeleteByID(ctx context.Context, rotationID string) error
}
