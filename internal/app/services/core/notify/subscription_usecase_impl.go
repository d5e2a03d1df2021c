package notify

import (
	"context"
	"sync"

	"rosta-service/internal/app/config"
	"rosta-service/internal/app/contracts"
	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
	"rosta-service/internal/pkg/exceptions"
	"rosta-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type subscriptionUsecase struct {
	SubscriptionRepository contracts.SubscriptionRepository
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	subscriptionUsecaseInstance contracts.SubscriptionUsecase
	onceSubscriptionUsecase     sync.Once
)

func NewSubscriptionUsecase(
	subscriptionMongoRepository contracts.SubscriptionRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SubscriptionUsecase {
	onceSubscriptionUsecase.Do(func() {
		subscriptionUsecaseInstance = &subscriptionUsecase{
			SubscriptionRepository: subscriptionMongoRepository,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})

	return subscriptionUsecaseInstance
}

func (uc *subscriptionUsecase) Create(ctx context.Context, request *requests.CreateSubscription) (*responses.Subscription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("url", request.URL),
	)

	subscription := &models.Subscription{
		URL:    request.URL,
		Events: request.Events,
		Active: request.Active,
	}
	subscription.SetCreatedAtUpdatedAt()

	created, err := uc.SubscriptionRepository.Create(ctx, subscription)
	if err != nil {
		uc.Log.Error("subscriptionUsecase.Create error inserting subscription into MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("subscriptionUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubscriptionKey, created.ID),
	)

	response := created.ConvertIntoResponse()
	return &response, nil
}

func (uc *subscriptionUsecase) FindAll(ctx context.Context, page, pageSize int) ([]responses.Subscription, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page", page),
		zap.Int("page_size", pageSize),
	)

	subscriptions, total, err := uc.SubscriptionRepository.FindPage(ctx, page, pageSize)
	if err != nil {
		uc.Log.Error("subscriptionUsecase.FindAll error fetching subscriptions from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := make([]responses.Subscription, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		response = append(response, subscription.ConvertIntoResponse())
	}

	paginationData := utils.BuildPaginationResponse(total, page, pageSize, uc.InternalConfig.App.BaseUrl+"/"+constvars.ResourceSubscriptions)

	return response, paginationData, nil
}

func (uc *subscriptionUsecase) DeleteByID(ctx context.Context, subscriptionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubscriptionKey, subscriptionID),
	)

	subscription, err := uc.SubscriptionRepository.FindByID(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if subscription == nil {
		return exceptions.ErrSubscriptionNotExist(nil)
	}

	err = uc.SubscriptionRepository.DeleteByID(ctx, subscriptionID)
	if err != nil {
		uc.Log.Error("subscriptionUsecase.DeleteByID error deleting subscription from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("subscriptionUsecase.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubscriptionKey, subscriptionID),
	)

	return nil
}
