package middlewares

import (
	"context"
	"net/http"
	"strings"

	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/exceptions"
	"rosta-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// DeviceSession authenticates the calling device from its Bearer session
// token and stores the device ID on the request context. Operator requests
// that already passed APIKeyAuth skip the device check.
func (m *Middlewares) DeviceSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKeyAuth, ok := r.Context().Value(ContextAPIKeyAuth).(bool); ok && apiKeyAuth {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		deviceID, err := utils.ParseSessionJWT(token, m.InternalConfig.Session.JWTSecret)
		if err != nil {
			m.Log.Info("device session rejected",
				zap.String("ip", r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_DEVICE_ID_KEY, deviceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
