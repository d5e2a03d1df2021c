package middlewares

import (
	"context"
	"crypto/subtle"
	"net/http"

	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/exceptions"
	"rosta-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const ContextAPIKeyAuth = constvars.ContextKey("api_key_auth")

// APIKeyAuth marks requests carrying the configured operator key. Requests
// without the header pass through untouched; only a wrong key is rejected.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if m.InternalConfig.App.SuperadminAPIKey == "" ||
			subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.InternalConfig.App.SuperadminAPIKey)) != 1 {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), ContextAPIKeyAuth, true)

		m.Log.Info("API key authentication successful",
			zap.String("ip", r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAPIKey guards the operator-only routes. It expects APIKeyAuth to
// have already validated the header further up the chain.
func (m *Middlewares) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKeyAuth, ok := r.Context().Value(ContextAPIKeyAuth).(bool); !ok || !apiKeyAuth {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
