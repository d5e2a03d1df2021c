package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"rosta-service/internal/app/config"
	"rosta-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAPIKeyAuth(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKey: testAPIKey,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("No API Key - Should Pass Through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/calendar/2025/3", nil)

		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK when no API key provided (optional middleware)")
		assert.Equal(t, "success", rr.Body.String(), "should return success message")
	})

	t.Run("Valid API Key - Should Pass", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/rotations/materialize", nil)
		req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid API key")
		assert.Equal(t, "success", rr.Body.String(), "should return success message")
	})

	t.Run("Invalid API Key - Should Fail", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/rotations/materialize", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for invalid API key")
	})

	t.Run("Case Sensitivity", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/rotations/materialize", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "TEST-SUPERADMIN-API-KEY-12345")

		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for case-mismatched API key")
	})

	t.Run("Whitespace in API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/rotations/materialize", nil)
		req.Header.Set(constvars.HeaderXAPIKey, " "+testAPIKey+" ")

		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for API key with whitespace")
	})

	t.Run("Key Provided but None Configured", func(t *testing.T) {
		emptyConfig := &config.InternalConfig{App: config.App{SuperadminAPIKey: ""}}
		unconfigured := &Middlewares{Log: logger, InternalConfig: emptyConfig}

		req := httptest.NewRequest("POST", "/api/v1/rotations/materialize", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "anything")

		rr := httptest.NewRecorder()
		handler := unconfigured.APIKeyAuth(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden when no key is configured")
	})
}

func TestRequireAPIKey(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKey: testAPIKey,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Tagged Request - Should Pass", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/subscriptions", nil)
		req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(middlewares.RequireAPIKey(testHandler))
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for a request validated upstream")
		assert.Equal(t, "success", rr.Body.String(), "should return success message")
	})

	t.Run("Untagged Request - Should Fail", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/subscriptions", nil)

		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(middlewares.RequireAPIKey(testHandler))
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden for a request without the API key")
	})

	t.Run("Without APIKeyAuth Upstream - Should Fail Closed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/subscriptions", nil)
		req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "should return 403 Forbidden when the tagging middleware never ran")
	})
}

func TestRequireAPIKey_Integration(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKey: testAPIKey,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	methods := []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

	for _, method := range methods {
		t.Run("Method_"+method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/v1/subscriptions", nil)
			req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

			rr := httptest.NewRecorder()
			handler := middlewares.APIKeyAuth(middlewares.RequireAPIKey(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("success"))
			})))
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for %s method with valid API key", method)
		})
	}
}

func TestAPIKeyAuth_ContextValues(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKey: testAPIKey,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	t.Run("Context Flag Set for Valid Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/rotations/materialize", nil)
		req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

		var capturedContext context.Context
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedContext = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK")

		apiKeyAuth, ok := capturedContext.Value(ContextAPIKeyAuth).(bool)
		assert.True(t, ok, "ContextAPIKeyAuth should be set")
		assert.True(t, apiKeyAuth, "ContextAPIKeyAuth should be true")
	})

	t.Run("Context Flag Absent Without Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/calendar/2025/3", nil)

		var capturedContext context.Context
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedContext = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK")
		assert.Nil(t, capturedContext.Value(ContextAPIKeyAuth), "ContextAPIKeyAuth should not be set without a key")
	})
}
