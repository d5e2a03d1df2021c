package shifttypes

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockShiftTypeRepository struct {
	mock.Mock
}

func (m *MockShiftTypeRepository) FindAll(ctx context.Context) ([]models.ShiftType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShiftType), args.Error(1)
}

func (m *MockShiftTypeRepository) FindByID(ctx context.Context, shiftTypeID string) (*models.ShiftType, error) {
	args := m.Called(ctx, shiftTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftType), args.Error(1)
}

func (m *MockShiftTypeRepository) FindByName(ctx context.Context, name string) (*models.ShiftType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftType), args.Error(1)
}

func (m *MockShiftTypeRepository) Create(ctx context.Context, shiftType *models.ShiftType) (*models.ShiftType, error) {
	args := m.Called(ctx, shiftType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftType), args.Error(1)
}

func (m *MockShiftTypeRepository) UpdateByID(ctx context.Context, shiftTypeID string, shiftType *models.ShiftType) (*models.ShiftType, error) {
	args := m.Called(ctx, shiftTypeID, shiftType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftType), args.Error(1)
}

func (m *MockShiftTypeRepository) DeleteByID(ctx context.Context, shiftTypeID string) error {
	args := m.Called(ctx, shiftTypeID)
	return args.Error(0)
}

type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) Create(ctx context.Context, shift *models.Shift) (*models.Shift, error) {
	args := m.Called(ctx, shift)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shift), args.Error(1)
}

func (m *MockShiftRepository) CreateMany(ctx context.Context, shifts []models.Shift) ([]models.Shift, error) {
	args := m.Called(ctx, shifts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindByID(ctx context.Context, shiftID string) (*models.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Shift, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindByDates(ctx context.Context, dates []time.Time) ([]models.Shift, error) {
	args := m.Called(ctx, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Shift), args.Error(1)
}

func (m *MockShiftRepository) ExistsByShiftTypeID(ctx context.Context, shiftTypeID string) (bool, error) {
	args := m.Called(ctx, shiftTypeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShiftRepository) DeleteByID(ctx context.Context, shiftID string) error {
	args := m.Called(ctx, shiftID)
	return args.Error(0)
}

func (m *MockShiftRepository) DeleteByDates(ctx context.Context, dates []time.Time) (int64, error) {
	args := m.Called(ctx, dates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShiftRepository) DeleteByRotationID(ctx context.Context, rotationID string, from time.Time) (int64, error) {
	args := m.Called(ctx, rotationID, from)
	return args.Get(0).(int64), args.Error(1)
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

const testShiftTypeID = "64b1d3a6f24f6b0002c3d4e5"

func shiftTypeTestUsecase() (*shiftTypeUsecase, *MockShiftTypeRepository, *MockShiftRepository, *MockRedisRepository) {
	shiftTypeRepository := new(MockShiftTypeRepository)
	shiftRepository := new(MockShiftRepository)
	redisRepository := new(MockRedisRepository)
	uc := &shiftTypeUsecase{
		ShiftTypeRepository: shiftTypeRepository,
		ShiftRepository:     shiftRepository,
		RedisRepository:     redisRepository,
		Log:                 zap.NewNop(),
	}
	return uc, shiftTypeRepository, shiftRepository, redisRepository
}

func catalogFixture() []models.ShiftType {
	return []models.ShiftType{
		{ID: testShiftTypeID, Name: "Day", Symbol: "D", StartClock: "08:00", EndClock: "16:30"},
		{ID: "64b1d3a6f24f6b0002c3d4e6", Name: "Night", Symbol: "N", StartClock: "22:00", EndClock: "06:00"},
	}
}

func TestShiftTypeUsecase_FindAll(t *testing.T) {
	t.Run("Cache Hit Skips MongoDB", func(t *testing.T) {
		uc, shiftTypeRepository, _, redisRepository := shiftTypeTestUsecase()

		cached, err := json.Marshal(catalogFixture())
		require.NoError(t, err, "marshalling the fixture should work")
		redisRepository.On("Get", mock.Anything, constvars.RedisKeyShiftTypeList).Return(string(cached), nil)

		response, err := uc.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, response, 2)
		assert.Equal(t, "Day", response[0].Name)
		assert.Equal(t, "N", response[1].Symbol)
		shiftTypeRepository.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("Cache Miss Falls Back To MongoDB And Caches", func(t *testing.T) {
		uc, shiftTypeRepository, _, redisRepository := shiftTypeTestUsecase()

		redisRepository.On("Get", mock.Anything, constvars.RedisKeyShiftTypeList).Return("", nil)
		shiftTypeRepository.On("FindAll", mock.Anything).Return(catalogFixture(), nil)
		redisRepository.On("Set", mock.Anything, constvars.RedisKeyShiftTypeList, mock.Anything, time.Duration(0)).Return(nil)

		response, err := uc.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, response, 2)
		redisRepository.AssertExpectations(t)
		shiftTypeRepository.AssertExpectations(t)
	})

	t.Run("Corrupt Cache Returns Parse Failure", func(t *testing.T) {
		uc, _, _, redisRepository := shiftTypeTestUsecase()

		redisRepository.On("Get", mock.Anything, constvars.RedisKeyShiftTypeList).Return("{not-json", nil)

		_, err := uc.FindAll(context.Background())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestShiftTypeUsecase_Create(t *testing.T) {
	t.Run("Rejects Duplicate Name", func(t *testing.T) {
		uc, shiftTypeRepository, _, _ := shiftTypeTestUsecase()

		existing := catalogFixture()[0]
		shiftTypeRepository.On("FindByName", mock.Anything, "Day").Return(&existing, nil)

		_, err := uc.Create(context.Background(), &requests.CreateShiftType{
			Name:   "Day",
			Symbol: "D2",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		shiftTypeRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("New Type Invalidates Caches", func(t *testing.T) {
		uc, shiftTypeRepository, _, redisRepository := shiftTypeTestUsecase()

		shiftTypeRepository.On("FindByName", mock.Anything, "Late").Return(nil, nil)
		shiftTypeRepository.On("Create", mock.Anything, mock.MatchedBy(func(shiftType *models.ShiftType) bool {
			return shiftType.Name == "Late" && shiftType.Symbol == "L" && !shiftType.CreatedAt.IsZero()
		})).Return(&models.ShiftType{ID: "64b1d3a6f24f6b0002c3d4e7", Name: "Late", Symbol: "L"}, nil)
		redisRepository.On("Delete", mock.Anything, constvars.RedisKeyShiftTypeList).Return(nil)
		redisRepository.On("Increment", mock.Anything, constvars.RedisKeyCalendarVersion).Return(nil)

		response, err := uc.Create(context.Background(), &requests.CreateShiftType{
			Name:   "Late",
			Symbol: "L",
		})

		require.NoError(t, err)
		assert.Equal(t, "Late", response.Name)
		redisRepository.AssertExpectations(t)
	})
}

func TestShiftTypeUsecase_DeleteByID(t *testing.T) {
	t.Run("Referenced Type Cannot Be Deleted", func(t *testing.T) {
		uc, shiftTypeRepository, shiftRepository, _ := shiftTypeTestUsecase()

		existing := catalogFixture()[0]
		shiftTypeRepository.On("FindByID", mock.Anything, testShiftTypeID).Return(&existing, nil)
		shiftRepository.On("ExistsByShiftTypeID", mock.Anything, testShiftTypeID).Return(true, nil)

		err := uc.DeleteByID(context.Background(), testShiftTypeID)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode, "a type still on the roster must survive")
		shiftTypeRepository.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("Unreferenced Type Deletes And Invalidates", func(t *testing.T) {
		uc, shiftTypeRepository, shiftRepository, redisRepository := shiftTypeTestUsecase()

		existing := catalogFixture()[0]
		shiftTypeRepository.On("FindByID", mock.Anything, testShiftTypeID).Return(&existing, nil)
		shiftRepository.On("ExistsByShiftTypeID", mock.Anything, testShiftTypeID).Return(false, nil)
		shiftTypeRepository.On("DeleteByID", mock.Anything, testShiftTypeID).Return(nil)
		redisRepository.On("Delete", mock.Anything, constvars.RedisKeyShiftTypeList).Return(nil)
		redisRepository.On("Increment", mock.Anything, constvars.RedisKeyCalendarVersion).Return(nil)

		err := uc.DeleteByID(context.Background(), testShiftTypeID)

		require.NoError(t, err)
		shiftTypeRepository.AssertExpectations(t)
		redisRepository.AssertExpectations(t)
	})
}
