package shifttypes

import (
	"context"
	"encoding/json"
	"sync"

	"rosta-service/internal/app/contracts"
	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
	"rosta-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type shiftTypeUsecase struct {
	ShiftTypeRepository contracts.ShiftTypeRepository
	ShiftRepository     contracts.ShiftRepository
	RedisRepository     contracts.RedisRepository
	Log                 *zap.Logger
}

var (
	shiftTypeUsecaseInstance contracts.ShiftTypeUsecase
	onceShiftTypeUsecase     sync.Once
	shiftTypeUsecaseError    error
)

func NewShiftTypeUsecase(
	shiftTypeMongoRepository contracts.ShiftTypeRepository,
	shiftMongoRepository contracts.ShiftRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) (contracts.ShiftTypeUsecase, error) {
	onceShiftTypeUsecase.Do(func() {
		instance := &shiftTypeUsecase{
			ShiftTypeRepository: shiftTypeMongoRepository,
			ShiftRepository:     shiftMongoRepository,
			RedisRepository:     redisRepository,
			Log:                 logger,
		}

		ctx := context.Background()
		err := instance.initializeData(ctx)
		if err != nil {
			shiftTypeUsecaseError = err
			return
		}
		shiftTypeUsecaseInstance = instance
	})

	return shiftTypeUsecaseInstance, shiftTypeUsecaseError
}

func (uc *shiftTypeUsecase) FindAll(ctx context.Context) ([]responses.ShiftType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftTypeUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	shiftTypes, err := uc.findAllCached(ctx, requestID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.ShiftType, len(shiftTypes))
	for i, eachShiftType := range shiftTypes {
		response[i] = eachShiftType.ConvertIntoResponse()
	}

	uc.Log.Info("shiftTypeUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("shift_type_count", len(response)),
	)
	return response, nil
}

func (uc *shiftTypeUsecase) FindByID(ctx context.Context, shiftTypeID string) (*responses.ShiftType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftTypeUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftTypeIDKey, shiftTypeID),
	)

	shiftType, err := uc.ShiftTypeRepository.FindByID(ctx, shiftTypeID)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.FindByID error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if shiftType == nil {
		return nil, exceptions.ErrShiftTypeNotExist(nil)
	}

	response := shiftType.ConvertIntoResponse()

	uc.Log.Info("shiftTypeUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftTypeIDKey, shiftType.ID),
	)
	return &response, nil
}

func (uc *shiftTypeUsecase) Create(ctx context.Context, request *requests.CreateShiftType) (*responses.ShiftType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftTypeUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("shift_type_name", request.Name),
	)

	existing, err := uc.ShiftTypeRepository.FindByName(ctx, request.Name)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.Create error checking name uniqueness",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrShiftTypeNameTaken(nil)
	}

	shiftType := &models.ShiftType{
		Name:       request.Name,
		Symbol:     request.Symbol,
		Color:      request.Color,
		AllDay:     request.AllDay,
		StartClock: request.StartClock,
		EndClock:   request.EndClock,
	}
	shiftType.SetCreatedAtUpdatedAt()

	created, err := uc.ShiftTypeRepository.Create(ctx, shiftType)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.Create error inserting data into MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.invalidateCaches(ctx, requestID)
	if err != nil {
		return nil, err
	}

	response := created.ConvertIntoResponse()

	uc.Log.Info("shiftTypeUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftTypeIDKey, created.ID),
	)
	return &response, nil
}

func (uc *shiftTypeUsecase) Update(ctx context.Context, shiftTypeID string, request *requests.UpdateShiftType) (*responses.ShiftType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftTypeUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftTypeIDKey, shiftTypeID),
	)

	shiftType, err := uc.ShiftTypeRepository.FindByID(ctx, shiftTypeID)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.Update error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if shiftType == nil {
		return nil, exceptions.ErrShiftTypeNotExist(nil)
	}

	existing, err := uc.ShiftTypeRepository.FindByName(ctx, request.Name)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.Update error checking name uniqueness",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil && existing.ID != shiftTypeID {
		return nil, exceptions.ErrShiftTypeNameTaken(nil)
	}

	shiftType.Name = request.Name
	shiftType.Symbol = request.Symbol
	shiftType.Color = request.Color
	shiftType.AllDay = request.AllDay
	shiftType.StartClock = request.StartClock
	shiftType.EndClock = request.EndClock
	shiftType.SetUpdatedAt()

	updated, err := uc.ShiftTypeRepository.UpdateByID(ctx, shiftTypeID, shiftType)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.Update error updating data in MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.invalidateCaches(ctx, requestID)
	if err != nil {
		return nil, err
	}

	response := updated.ConvertIntoResponse()

	uc.Log.Info("shiftTypeUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftTypeIDKey, updated.ID),
	)
	return &response, nil
}

func (uc *shiftTypeUsecase) DeleteByID(ctx context.Context, shiftTypeID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftTypeUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftTypeIDKey, shiftTypeID),
	)

	shiftType, err := uc.ShiftTypeRepository.FindByID(ctx, shiftTypeID)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.DeleteByID error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if shiftType == nil {
		return exceptions.ErrShiftTypeNotExist(nil)
	}

	inUse, err := uc.ShiftRepository.ExistsByShiftTypeID(ctx, shiftTypeID)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.DeleteByID error checking shift references",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if inUse {
		return exceptions.ErrShiftTypeInUse(nil)
	}

	err = uc.ShiftTypeRepository.DeleteByID(ctx, shiftTypeID)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.DeleteByID error deleting data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.invalidateCaches(ctx, requestID)
	if err != nil {
		return err
	}

	uc.Log.Info("shiftTypeUsecase.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftTypeIDKey, shiftTypeID),
	)
	return nil
}

func (uc *shiftTypeUsecase) findAllCached(ctx context.Context, requestID string) ([]models.ShiftType, error) {
	var shiftTypes []models.ShiftType

	shiftTypeRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyShiftTypeList)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.findAllCached error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if shiftTypeRedisData == "" {
		uc.Log.Info("shiftTypeUsecase.findAllCached no data found in Redis, fetching from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		shiftTypes, err = uc.ShiftTypeRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("shiftTypeUsecase.findAllCached error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyShiftTypeList, shiftTypes, 0)
		if err != nil {
			uc.Log.Error("shiftTypeUsecase.findAllCached error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		uc.Log.Info("shiftTypeUsecase.findAllCached successfully fetched and cached data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	} else {
		err = json.Unmarshal([]byte(shiftTypeRedisData), &shiftTypes)
		if err != nil {
			uc.Log.Error("shiftTypeUsecase.findAllCached error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	return shiftTypes, nil
}

// invalidateCaches drops the shift type list and bumps the calendar version so
// month views rendered with the old symbols are not served again.
func (uc *shiftTypeUsecase) invalidateCaches(ctx context.Context, requestID string) error {
	err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyShiftTypeList)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.invalidateCaches error deleting shift type list from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.RedisRepository.Increment(ctx, constvars.RedisKeyCalendarVersion)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.invalidateCaches error bumping calendar version in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (uc *shiftTypeUsecase) initializeData(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftTypeUsecase.initializeData called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	shiftTypeRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyShiftTypeList)
	if err != nil {
		uc.Log.Error("shiftTypeUsecase.initializeData error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if shiftTypeRedisData == "" {
		uc.Log.Info("shiftTypeUsecase.initializeData no data found in Redis, fetching from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		shiftTypes, err := uc.ShiftTypeRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("shiftTypeUsecase.initializeData error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyShiftTypeList, shiftTypes, 0)
		if err != nil {
			uc.Log.Error("shiftTypeUsecase.initializeData error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
		uc.Log.Info("shiftTypeUsecase.initializeData successfully fetched and cached data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	} else {
		uc.Log.Info("shiftTypeUsecase.initializeData data already exists in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}

	uc.Log.Info("shiftTypeUsecase.initializeData completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
