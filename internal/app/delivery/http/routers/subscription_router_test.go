package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"rosta-service/internal/app/config"
	"rosta-service/internal/app/delivery/http/middlewares"
	"rosta-service/internal/app/services/core/notify"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSubscriptionUsecase struct {
	mock.Mock
}

func (m *MockSubscriptionUsecase) Create(ctx context.Context, request *requests.CreateSubscription) (*responses.Subscription, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Subscription), args.Error(1)
}

func (m *MockSubscriptionUsecase) FindAll(ctx context.Context, page, pageSize int) ([]responses.Subscription, *responses.Pagination, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var pagination *responses.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*responses.Pagination)
	}
	return args.Get(0).([]responses.Subscription), pagination, args.Error(2)
}

func (m *MockSubscriptionUsecase) DeleteByID(ctx context.Context, subscriptionID string) error {
	args := m.Called(ctx, subscriptionID)
	return args.Error(0)
}

func TestSubscriptionRouter_APIKeyGuard(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKey: testAPIKey,
		},
	}

	mockSubscriptionUsecase := new(MockSubscriptionUsecase)

	subscriptionController := notify.NewSubscriptionController(logger, mockSubscriptionUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.APIKeyAuth)
	attachSubscriptionRoutes(router, middlewareInstance, subscriptionController)

	t.Run("Create with Valid API Key", func(t *testing.T) {

		mockSubscriptionUsecase.On("Create", mock.Anything, mock.AnythingOfType("*requests.CreateSubscription")).Return(&responses.Subscription{
			ID:     "64a0c2f5e13e5a0001a1b2c3",
			URL:    "https://example.com/hooks/roster",
			Active: true,
		}, nil)

		requestBody := requests.CreateSubscription{
			URL:    "https://example.com/hooks/roster",
			Events: []string{"shift.created"},
			Active: true,
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", testAPIKey)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "should return 201 Created for valid API key")
		mockSubscriptionUsecase.AssertExpectations(t)
	})

	t.Run("Create without API Key", func(t *testing.T) {

		requestBody := requests.CreateSubscription{
			URL:    "https://example.com/hooks/roster",
			Active: true,
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for missing API key")
	})

	t.Run("Create with Invalid API Key", func(t *testing.T) {

		requestBody := requests.CreateSubscription{
			URL:    "https://example.com/hooks/roster",
			Active: true,
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", "invalid-api-key")

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for invalid API key")
	})

	t.Run("List with Valid API Key", func(t *testing.T) {

		mockSubscriptionUsecase.On("FindAll", mock.Anything, 1, 10).Return([]responses.Subscription{
			{ID: "64a0c2f5e13e5a0001a1b2c3", URL: "https://example.com/hooks/roster", Active: true},
		}, &responses.Pagination{Total: 1, Page: 1, PageSize: 10}, nil)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("x-api-key", testAPIKey)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid API key")
		mockSubscriptionUsecase.AssertExpectations(t)
	})

	t.Run("List with Page Query", func(t *testing.T) {

		mockSubscriptionUsecase.On("FindAll", mock.Anything, 3, 5).Return([]responses.Subscription{},
			&responses.Pagination{Total: 11, Page: 3, PageSize: 5}, nil)

		req := httptest.NewRequest("GET", "/?page=3&page_size=5", nil)
		req.Header.Set("x-api-key", testAPIKey)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for a paged list")
		mockSubscriptionUsecase.AssertExpectations(t)
	})

	t.Run("List without API Key", func(t *testing.T) {

		req := httptest.NewRequest("GET", "/", nil)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for missing API key")
	})

	t.Run("Delete with Valid API Key", func(t *testing.T) {

		mockSubscriptionUsecase.On("DeleteByID", mock.Anything, "64a0c2f5e13e5a0001a1b2c3").Return(nil)

		req := httptest.NewRequest("DELETE", "/64a0c2f5e13e5a0001a1b2c3", nil)
		req.Header.Set("x-api-key", testAPIKey)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid API key")
		mockSubscriptionUsecase.AssertExpectations(t)
	})
}

func TestSubscriptionRouter_ContextPropagation(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKey: testAPIKey,
		},
	}

	mockSubscriptionUsecase := new(MockSubscriptionUsecase)

	subscriptionController := notify.NewSubscriptionController(logger, mockSubscriptionUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.APIKeyAuth)
	attachSubscriptionRoutes(router, middlewareInstance, subscriptionController)

	t.Run("API Key Flag Propagated to Usecase Context", func(t *testing.T) {

		mockSubscriptionUsecase.On("FindAll", mock.MatchedBy(func(ctx context.Context) bool {
			apiKeyAuth, ok := ctx.Value(middlewares.ContextAPIKeyAuth).(bool)
			return ok && apiKeyAuth
		}), 1, 10).Return([]responses.Subscription{}, &responses.Pagination{Page: 1, PageSize: 10}, nil)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("x-api-key", testAPIKey)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK")
		mockSubscriptionUsecase.AssertExpectations(t)
	})
}

func TestSubscriptionRouter_ErrorHandling(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKey: testAPIKey,
		},
	}

	mockSubscriptionUsecase := new(MockSubscriptionUsecase)

	subscriptionController := notify.NewSubscriptionController(logger, mockSubscriptionUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.APIKeyAuth)
	attachSubscriptionRoutes(router, middlewareInstance, subscriptionController)

	t.Run("Invalid JSON Body", func(t *testing.T) {

		req := httptest.NewRequest("POST", "/", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", testAPIKey)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for invalid JSON")
	})

	t.Run("Missing URL Field", func(t *testing.T) {

		requestBody := map[string]interface{}{"active": true}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", testAPIKey)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for missing url")
	})

	t.Run("Delete with Malformed ID", func(t *testing.T) {

		req := httptest.NewRequest("DELETE", "/not-a-hex-id", nil)
		req.Header.Set("x-api-key", testAPIKey)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for malformed subscription id")
	})
}
