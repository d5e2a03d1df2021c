package devices

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"rosta-service/internal/app/config"
	"rosta-service/internal/app/contracts"
	"rosta-service/internal/app/models"
	"rosta-service/internal/app/services/shared/ratelimiter"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
	"rosta-service/internal/pkg/exceptions"
	"rosta-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// registerLimiterGroup namespaces the fixed-window counter that slows down
// pairing-code guessing. Registration and renewal are unauthenticated, so
// their windows are shared by all callers.
const (
	registerLimiterGroup    = "device-register"
	registerLimiterResource = "register"
	renewLimiterGroup       = "device-session"
	renewLimiterResource    = "renew"
	registerWindowSeconds   = 60
)

// renewDummySecretHash stands in for the stored hash when the device lookup
// misses, keeping the renewal compare cost uniform.
const renewDummySecretHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type deviceUsecase struct {
	DeviceRepository    contracts.DeviceRepository
	ShiftTypeRepository contracts.ShiftTypeRepository
	RedisRepository     contracts.RedisRepository
	ResourceLimiter     *ratelimiter.ResourceLimiter
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	deviceUsecaseInstance contracts.DeviceUsecase
	onceDeviceUsecase     sync.Once
)

func NewDeviceUsecase(
	deviceMongoRepository contracts.DeviceRepository,
	shiftTypeMongoRepository contracts.ShiftTypeRepository,
	redisRepository contracts.RedisRepository,
	resourceLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DeviceUsecase {
	onceDeviceUsecase.Do(func() {
		deviceUsecaseInstance = &deviceUsecase{
			DeviceRepository:    deviceMongoRepository,
			ShiftTypeRepository: shiftTypeMongoRepository,
			RedisRepository:     redisRepository,
			ResourceLimiter:     resourceLimiter,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})

	return deviceUsecaseInstance
}

func (uc *deviceUsecase) Register(ctx context.Context, request *requests.RegisterDevice) (*responses.RegisteredDevice, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("deviceUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("device_name", request.Name),
		zap.String("platform", request.Platform),
	)

	limiterResult, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      registerLimiterResource,
		LimiterGroupName:  registerLimiterGroup,
		WindowDurationSec: registerWindowSeconds,
		MaxQuota:          uc.InternalConfig.Session.RegisterRateLimit,
	})
	if err != nil {
		uc.Log.Error("deviceUsecase.Register error evaluating rate limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !limiterResult.Allowed {
		return nil, exceptions.ErrResourceLimitExceeded(nil)
	}

	if subtle.ConstantTimeCompare([]byte(request.PairingCode), []byte(uc.InternalConfig.App.PairingCode)) != 1 {
		return nil, exceptions.ErrInvalidPairingCode(nil)
	}

	secret := utils.GenerateDeviceSecret()
	secretHash, err := utils.HashSecret(secret)
	if err != nil {
		return nil, exceptions.ErrHashSecret(err)
	}

	device := &models.Device{
		Name:       request.Name,
		Platform:   request.Platform,
		SecretHash: secretHash,
		Settings: models.DeviceSettings{
			FirstWeekday:  uc.InternalConfig.App.FirstWeekday,
			ShowRotations: true,
		},
		LastSeenAt: time.Now(),
	}
	device.SetCreatedAtUpdatedAt()

	created, err := uc.DeviceRepository.Create(ctx, device)
	if err != nil {
		uc.Log.Error("deviceUsecase.Register error inserting data into MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	sessionToken, err := utils.GenerateSessionJWT(created.ID, uc.InternalConfig.Session.JWTSecret, uc.InternalConfig.Session.ExpTimeInHours)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	response := &responses.RegisteredDevice{
		Device:       created.ConvertIntoResponse(),
		DeviceSecret: secret,
		SessionToken: sessionToken,
	}

	uc.Log.Info("deviceUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDeviceIDKey, created.ID),
	)
	return response, nil
}

func (uc *deviceUsecase) RenewSession(ctx context.Context, request *requests.RenewDeviceSession) (*responses.DeviceSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("deviceUsecase.RenewSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDeviceIDKey, request.DeviceID),
	)

	limiterResult, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      renewLimiterResource,
		LimiterGroupName:  renewLimiterGroup,
		WindowDurationSec: registerWindowSeconds,
		MaxQuota:          uc.InternalConfig.Session.RegisterRateLimit,
	})
	if err != nil {
		uc.Log.Error("deviceUsecase.RenewSession error evaluating rate limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !limiterResult.Allowed {
		return nil, exceptions.ErrResourceLimitExceeded(nil)
	}

	device, err := uc.DeviceRepository.FindByID(ctx, request.DeviceID)
	if err != nil {
		uc.Log.Error("deviceUsecase.RenewSession error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// A missing device and a wrong secret answer the same, and both run the
	// bcrypt compare, so callers cannot probe which device IDs exist.
	secretHash := renewDummySecretHash
	if device != nil {
		secretHash = device.SecretHash
	}
	if !utils.CheckSecretHash(request.DeviceSecret, secretHash) || device == nil {
		return nil, exceptions.ErrInvalidDeviceSecret(nil)
	}

	sessionToken, err := utils.GenerateSessionJWT(device.ID, uc.InternalConfig.Session.JWTSecret, uc.InternalConfig.Session.ExpTimeInHours)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	err = uc.DeviceRepository.UpdateLastSeenByID(ctx, device.ID)
	if err != nil {
		uc.Log.Warn("deviceUsecase.RenewSession error updating last seen timestamp",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	response := &responses.DeviceSession{
		SessionToken: sessionToken,
		ExpiresAt:    time.Now().Add(time.Duration(uc.InternalConfig.Session.ExpTimeInHours) * time.Hour),
	}

	uc.Log.Info("deviceUsecase.RenewSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDeviceIDKey, device.ID),
	)
	return response, nil
}

func (uc *deviceUsecase) FindAll(ctx context.Context) ([]responses.Device, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("deviceUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	devices, err := uc.DeviceRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("deviceUsecase.FindAll error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Device, len(devices))
	for i, eachDevice := range devices {
		response[i] = eachDevice.ConvertIntoResponse()
	}

	uc.Log.Info("deviceUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("device_count", len(response)),
	)
	return response, nil
}

func (uc *deviceUsecase) GetSettings(ctx context.Context, deviceID string) (*responses.DeviceSettings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("deviceUsecase.GetSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDeviceIDKey, deviceID),
	)

	settings, err := uc.settingsCached(ctx, requestID, deviceID)
	if err != nil {
		return nil, err
	}

	response := &responses.DeviceSettings{
		FirstWeekday:       settings.FirstWeekday,
		ShowRotations:      settings.ShowRotations,
		DefaultShiftTypeID: settings.DefaultShiftTypeID,
	}

	uc.Log.Info("deviceUsecase.GetSettings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDeviceIDKey, deviceID),
	)
	return response, nil
}

func (uc *deviceUsecase) UpdateSettings(ctx context.Context, deviceID string, request *requests.UpdateDeviceSettings) (*responses.DeviceSettings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("deviceUsecase.UpdateSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDeviceIDKey, deviceID),
	)

	if request.DefaultShiftTypeID != "" {
		shiftType, err := uc.ShiftTypeRepository.FindByID(ctx, request.DefaultShiftTypeID)
		if err != nil {
			uc.Log.Error("deviceUsecase.UpdateSettings error fetching shift type from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if shiftType == nil {
			return nil, exceptions.ErrShiftTypeNotExist(nil)
		}
	}

	settings := models.DeviceSettings{
		FirstWeekday:       request.FirstWeekday,
		ShowRotations:      request.ShowRotations,
		DefaultShiftTypeID: request.DefaultShiftTypeID,
	}

	device, err := uc.DeviceRepository.UpdateSettingsByID(ctx, deviceID, settings)
	if err != nil {
		uc.Log.Error("deviceUsecase.UpdateSettings error updating data in MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if device == nil {
		return nil, exceptions.ErrDeviceNotExist(nil)
	}

	cacheKey := fmt.Sprintf(constvars.RedisKeyDeviceSettingsFormat, deviceID)
	err = uc.RedisRepository.Set(ctx, cacheKey, device.Settings, 0)
	if err != nil {
		uc.Log.Error("deviceUsecase.UpdateSettings error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.DeviceRepository.UpdateLastSeenByID(ctx, deviceID)
	if err != nil {
		uc.Log.Warn("deviceUsecase.UpdateSettings error updating last seen timestamp",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	response := &responses.DeviceSettings{
		FirstWeekday:       device.Settings.FirstWeekday,
		ShowRotations:      device.Settings.ShowRotations,
		DefaultShiftTypeID: device.Settings.DefaultShiftTypeID,
	}

	uc.Log.Info("deviceUsecase.UpdateSettings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDeviceIDKey, deviceID),
	)
	return response, nil
}

func (uc *deviceUsecase) settingsCached(ctx context.Context, requestID, deviceID string) (*models.DeviceSettings, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyDeviceSettingsFormat, deviceID)

	settingsRedisData, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Error("deviceUsecase.settingsCached error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var settings models.DeviceSettings
	if settingsRedisData == "" {
		uc.Log.Info("deviceUsecase.settingsCached no data found in Redis, fetching from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		device, err := uc.DeviceRepository.FindByID(ctx, deviceID)
		if err != nil {
			uc.Log.Error("deviceUsecase.settingsCached error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if device == nil {
			return nil, exceptions.ErrDeviceNotExist(nil)
		}
		settings = device.Settings

		err = uc.RedisRepository.Set(ctx, cacheKey, settings, 0)
		if err != nil {
			uc.Log.Error("deviceUsecase.settingsCached error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(settingsRedisData), &settings)
		if err != nil {
			uc.Log.Error("deviceUsecase.settingsCached error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	return &settings, nil
}
