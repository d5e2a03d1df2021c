package contracts

import (
	"context"

	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
)

type SubscriptionUsecase interface {
	Create(ctx context.Context, request *requests.CreateSubscription) (*responses.Subscription, error)
	FindAll(ctx context.Context, page, pageSize int) ([]responses.Subscription, *responses.Pagination, error)
	DeleteByID(ctx context.Context, subscriptionID string) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *models.Subscription) (*models.Subscription, error)
	FindPage(ctx context.Context, page, pageSize int) ([]models.Subscription, int, error)
	FindByID(ctx context.Context, subscriptionID string) (*models.Subscription, error)
	FindActiveForEvent(ctx context.Context, eventType string) ([]models.Subscription, error)
	DeleteByID(ctx context.Context, subscriptionID string) error
}
