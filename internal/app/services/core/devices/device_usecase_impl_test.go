package devices

import (
	"context"
	"testing"
	"time"

	"rosta-service/internal/app/config"
	"rosta-service/internal/app/models"
	"rosta-service/internal/app/services/shared/ratelimiter"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/exceptions"
	"rosta-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) Create(ctx context.Context, device *models.Device) (*models.Device, error) {
	args := m.Called(ctx, device)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Device), args.Error(1)
}

func (m *MockDeviceRepository) FindAll(ctx context.Context) ([]models.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Device), args.Error(1)
}

func (m *MockDeviceRepository) FindByID(ctx context.Context, deviceID string) (*models.Device, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Device), args.Error(1)
}

func (m *MockDeviceRepository) UpdateSettingsByID(ctx context.Context, deviceID string, settings models.DeviceSettings) (*models.Device, error) {
	args := m.Called(ctx, deviceID, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Device), args.Error(1)
}

func (m *MockDeviceRepository) UpdateLastSeenByID(ctx context.Context, deviceID string) error {
	args := m.Called(ctx, deviceID)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Increment(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

const testDeviceID = "64a0c2f5e13e5a0001a1b2c3"

func renewTestUsecase(deviceRepository *MockDeviceRepository, redisRepository *MockRedisRepository) *deviceUsecase {
	internalConfig := &config.InternalConfig{
		Session: config.AppSession{
			JWTSecret:         "renew-test-secret",
			ExpTimeInHours:    1,
			RegisterRateLimit: 5,
		},
	}
	return &deviceUsecase{
		DeviceRepository: deviceRepository,
		RedisRepository:  redisRepository,
		ResourceLimiter:  ratelimiter.NewResourceLimiter(redisRepository, zap.NewNop()),
		InternalConfig:   internalConfig,
		Log:              zap.NewNop(),
	}
}

func TestDeviceUsecase_RenewSession(t *testing.T) {
	secretHash, err := utils.HashSecret("correct-device-secret")
	require.NoError(t, err, "hashing the fixture secret should work")

	storedDevice := func() *models.Device {
		return &models.Device{
			ID:         testDeviceID,
			Name:       "Dana's iPhone",
			Platform:   "ios",
			SecretHash: secretHash,
		}
	}

	t.Run("Valid Secret Returns Fresh Session", func(t *testing.T) {
		deviceRepository := new(MockDeviceRepository)
		redisRepository := new(MockRedisRepository)
		uc := renewTestUsecase(deviceRepository, redisRepository)

		redisRepository.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(1, nil)
		deviceRepository.On("FindByID", mock.Anything, testDeviceID).Return(storedDevice(), nil)
		deviceRepository.On("UpdateLastSeenByID", mock.Anything, testDeviceID).Return(nil)

		response, err := uc.RenewSession(context.Background(), &requests.RenewDeviceSession{
			DeviceID:     testDeviceID,
			DeviceSecret: "correct-device-secret",
		})

		require.NoError(t, err)
		require.NotNil(t, response)
		assert.True(t, response.ExpiresAt.After(time.Now()), "expiry should sit in the future")

		parsedDeviceID, err := utils.ParseSessionJWT(response.SessionToken, "renew-test-secret")
		require.NoError(t, err, "the issued token should verify against the session secret")
		assert.Equal(t, testDeviceID, parsedDeviceID, "the token should carry the renewing device")
		deviceRepository.AssertExpectations(t)
	})

	t.Run("Unknown Device And Wrong Secret Answer The Same", func(t *testing.T) {
		deviceRepository := new(MockDeviceRepository)
		redisRepository := new(MockRedisRepository)
		uc := renewTestUsecase(deviceRepository, redisRepository)

		redisRepository.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(1, nil)
		deviceRepository.On("FindByID", mock.Anything, "64a0c2f5e13e5a0001ffffff").Return(nil, nil)
		deviceRepository.On("FindByID", mock.Anything, testDeviceID).Return(storedDevice(), nil)

		_, missingErr := uc.RenewSession(context.Background(), &requests.RenewDeviceSession{
			DeviceID:     "64a0c2f5e13e5a0001ffffff",
			DeviceSecret: "correct-device-secret",
		})
		_, wrongSecretErr := uc.RenewSession(context.Background(), &requests.RenewDeviceSession{
			DeviceID:     testDeviceID,
			DeviceSecret: "wrong-device-secret",
		})

		var missingCustom, wrongCustom *exceptions.CustomError
		require.ErrorAs(t, missingErr, &missingCustom)
		require.ErrorAs(t, wrongSecretErr, &wrongCustom)

		assert.Equal(t, constvars.StatusUnauthorized, missingCustom.StatusCode)
		assert.Equal(t, missingCustom.StatusCode, wrongCustom.StatusCode, "both failures should share a status")
		assert.Equal(t, missingCustom.ClientMessage, wrongCustom.ClientMessage, "responses must not reveal whether the device exists")
	})

	t.Run("Exhausted Window Rejects With Too Many Requests", func(t *testing.T) {
		deviceRepository := new(MockDeviceRepository)
		redisRepository := new(MockRedisRepository)
		uc := renewTestUsecase(deviceRepository, redisRepository)

		redisRepository.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(6, nil)

		_, err := uc.RenewSession(context.Background(), &requests.RenewDeviceSession{
			DeviceID:     testDeviceID,
			DeviceSecret: "correct-device-secret",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
		deviceRepository.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Last Seen Failure Does Not Block Renewal", func(t *testing.T) {
		deviceRepository := new(MockDeviceRepository)
		redisRepository := new(MockRedisRepository)
		uc := renewTestUsecase(deviceRepository, redisRepository)

		redisRepository.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(1, nil)
		deviceRepository.On("FindByID", mock.Anything, testDeviceID).Return(storedDevice(), nil)
		deviceRepository.On("UpdateLastSeenByID", mock.Anything, testDeviceID).Return(assert.AnError)

		response, err := uc.RenewSession(context.Background(), &requests.RenewDeviceSession{
			DeviceID:     testDeviceID,
			DeviceSecret: "correct-device-secret",
		})

		require.NoError(t, err, "a failed last-seen update is only logged")
		assert.NotEmpty(t, response.SessionToken)
	})
}
