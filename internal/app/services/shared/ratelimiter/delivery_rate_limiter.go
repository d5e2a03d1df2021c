package ratelimiter

import (
	"context"
	"strings"
	"time"

	"rosta-service/internal/app/config"
	"rosta-service/internal/app/contracts"
	"rosta-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

const deliveryLimiterGroup = "event-delivery"

// DeliveryRateLimiter throttles outbound webhook deliveries per event type
// within a 60-second window. Only event types listed in the configured CSV
// are throttled; everything else passes through.
type DeliveryRateLimiter struct {
	limiter       *ResourceLimiter
	log           *zap.Logger
	rateLimit     int
	limitedEvents map[string]struct{}
}

// NewDeliveryRateLimiter constructs the limiter using InternalConfig.Webhook.
func NewDeliveryRateLimiter(redis contracts.RedisRepository, log *zap.Logger, cfg *config.InternalConfig) *DeliveryRateLimiter {
	limited := make(map[string]struct{})
	if csv := strings.TrimSpace(cfg.Webhook.RateLimitedEvents); csv != "" {
		for _, s := range strings.Split(csv, ",") {
			name := strings.TrimSpace(s)
			if name != "" {
				limited[strings.ToLower(name)] = struct{}{}
			}
		}
	}
	return &DeliveryRateLimiter{
		limiter:       NewResourceLimiter(redis, log),
		log:           log,
		rateLimit:     cfg.Webhook.RateLimit,
		limitedEvents: limited,
	}
}

// EvaluateInput checks the delivery budget for one event type.
type EvaluateInput struct {
	EventType string
	NowUTC    time.Time
}

// EvaluateOutput contains the allow flag and retry-after seconds.
type EvaluateOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

// Evaluate returns allowance; if not allowed, it returns the seconds until
// the current window closes.
func (l *DeliveryRateLimiter) Evaluate(ctx context.Context, in *EvaluateInput) (*EvaluateOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	l.log.Info("DeliveryRateLimiter.Evaluate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, in.EventType))

	eventType := strings.ToLower(strings.TrimSpace(in.EventType))
	if eventType == "" {
		return &EvaluateOutput{Allowed: false, RetryAfterSecs: 60}, nil
	}

	if _, ok := l.limitedEvents[eventType]; !ok {
		return &EvaluateOutput{Allowed: true}, nil
	}

	out, err := l.limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
		ResourceName:      eventType,
		LimiterGroupName:  deliveryLimiterGroup,
		WindowDurationSec: 60,
		MaxQuota:          l.rateLimit,
		NowUTC:            in.NowUTC,
	})
	if err != nil {
		return nil, err
	}
	return &EvaluateOutput{Allowed: out.Allowed, RetryAfterSecs: out.RetryAfterSecs}, nil
}
