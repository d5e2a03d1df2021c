package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"rosta-service/internal/app/config"
	"rosta-service/internal/app/delivery/http/middlewares"
	"rosta-service/internal/app/services/core/calendar"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
	"rosta-service/internal/pkg/utils"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCalendarUsecase struct {
	mock.Mock
}

func (m *MockCalendarUsecase) GetMonthView(ctx context.Context, request *requests.MonthView) (*responses.MonthView, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.MonthView), args.Error(1)
}

func (m *MockCalendarUsecase) GetMonthGrid(ctx context.Context, request *requests.MonthView) (*responses.MonthGrid, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.MonthGrid), args.Error(1)
}

func TestCalendarRouter_DeviceSession(t *testing.T) {
	logger := zap.NewNop()

	sessionSecret := "test-session-secret"
	internalConfig := &config.InternalConfig{
		Session: config.AppSession{
			JWTSecret:      sessionSecret,
			ExpTimeInHours: 1,
		},
	}

	mockCalendarUsecase := new(MockCalendarUsecase)

	calendarController := calendar.NewCalendarController(logger, mockCalendarUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachCalendarRoutes(router, middlewareInstance, calendarController)

	sessionToken, err := utils.GenerateSessionJWT("device-test-1", sessionSecret, 1)
	assert.NoError(t, err, "should mint a session token for the test device")

	t.Run("Month View with Valid Session", func(t *testing.T) {

		mockCalendarUsecase.On("GetMonthView", mock.Anything, mock.AnythingOfType("*requests.MonthView")).Return(&responses.MonthView{
			Year:         2025,
			Month:        3,
			FirstWeekday: 1,
		}, nil)

		req := httptest.NewRequest("GET", "/2025/3", nil)
		req.Header.Set("Authorization", "Bearer "+sessionToken)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid session token")
		mockCalendarUsecase.AssertExpectations(t)
	})

	t.Run("Month View without Token", func(t *testing.T) {

		req := httptest.NewRequest("GET", "/2025/3", nil)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for missing session token")
	})

	t.Run("Month View with Garbage Token", func(t *testing.T) {

		req := httptest.NewRequest("GET", "/2025/3", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for a token that does not parse")
	})

	t.Run("Month View with Wrong Signing Secret", func(t *testing.T) {

		foreignToken, err := utils.GenerateSessionJWT("device-test-1", "some-other-secret", 1)
		assert.NoError(t, err, "should mint a token under the foreign secret")

		req := httptest.NewRequest("GET", "/2025/3", nil)
		req.Header.Set("Authorization", "Bearer "+foreignToken)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for a token signed with another secret")
	})

	t.Run("Month Grid with Valid Session", func(t *testing.T) {

		mockCalendarUsecase.On("GetMonthGrid", mock.Anything, mock.AnythingOfType("*requests.MonthView")).Return(&responses.MonthGrid{
			Year:         2025,
			Month:        3,
			FirstWeekday: 1,
		}, nil)

		req := httptest.NewRequest("GET", "/2025/3/grid", nil)
		req.Header.Set("Authorization", "Bearer "+sessionToken)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid session token")
		mockCalendarUsecase.AssertExpectations(t)
	})

	t.Run("Month View with Malformed Year", func(t *testing.T) {

		req := httptest.NewRequest("GET", "/twenty/3", nil)
		req.Header.Set("Authorization", "Bearer "+sessionToken)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for a year that is not a number")
	})
}

func TestCalendarRouter_DeviceContextPropagation(t *testing.T) {
	logger := zap.NewNop()

	sessionSecret := "test-session-secret"
	internalConfig := &config.InternalConfig{
		Session: config.AppSession{
			JWTSecret:      sessionSecret,
			ExpTimeInHours: 1,
		},
	}

	mockCalendarUsecase := new(MockCalendarUsecase)

	calendarController := calendar.NewCalendarController(logger, mockCalendarUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachCalendarRoutes(router, middlewareInstance, calendarController)

	t.Run("Device ID Propagated to Usecase Context", func(t *testing.T) {

		mockCalendarUsecase.On("GetMonthView", mock.MatchedBy(func(ctx context.Context) bool {
			deviceID, ok := ctx.Value(constvars.CONTEXT_DEVICE_ID_KEY).(string)
			return ok && deviceID == "device-test-1"
		}), mock.AnythingOfType("*requests.MonthView")).Return(&responses.MonthView{Year: 2025, Month: 3}, nil)

		sessionToken, err := utils.GenerateSessionJWT("device-test-1", sessionSecret, 1)
		assert.NoError(t, err, "should mint a session token for the test device")

		req := httptest.NewRequest("GET", "/2025/3", nil)
		req.Header.Set("Authorization", "Bearer "+sessionToken)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK")
		mockCalendarUsecase.AssertExpectations(t)
	})

	t.Run("Request Params Reach the Usecase", func(t *testing.T) {

		mockCalendarUsecase.On("GetMonthView", mock.Anything, mock.MatchedBy(func(request *requests.MonthView) bool {
			return request.Year == 2024 && request.Month == 12 && request.FirstWeekday == 2 && request.Mode == "add"
		})).Return(&responses.MonthView{Year: 2024, Month: 12, FirstWeekday: 2}, nil)

		sessionToken, err := utils.GenerateSessionJWT("device-test-1", sessionSecret, 1)
		assert.NoError(t, err, "should mint a session token for the test device")

		req := httptest.NewRequest("GET", "/2024/12?first_weekday=2&mode=add", nil)
		req.Header.Set("Authorization", "Bearer "+sessionToken)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK")
		mockCalendarUsecase.AssertExpectations(t)
	})
}
