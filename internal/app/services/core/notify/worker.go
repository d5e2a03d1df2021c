package notify

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"rosta-service/internal/app/config"
	"rosta-service/internal/app/contracts"
	"rosta-service/internal/app/models"
	"rosta-service/internal/app/services/shared/eventqueue"
	"rosta-service/internal/app/services/shared/jwtmanager"
	"rosta-service/internal/app/services/shared/ratelimiter"
	"rosta-service/internal/pkg/constvars"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// deliveryResult classifies one subscription's delivery attempt.
type deliveryResult int

const (
	// deliveryOK means the subscriber acknowledged the event.
	deliveryOK deliveryResult = iota
	// deliveryRetry counts against the event's failure budget.
	deliveryRetry
	// deliveryDeferred retries later without spending the budget; used for
	// self-throttling and for subscribers that reject our credentials.
	deliveryDeferred
)

// Worker drains the event queue once a minute and fans each event out to the
// active subscriptions, with at-least-once semantics.
type Worker struct {
	log           *zap.Logger
	cfg           *config.InternalConfig
	locker        contracts.LockerService
	queue         *eventqueue.Service
	subscriptions contracts.SubscriptionRepository
	jwtManager    *jwtmanager.JWTManager
	rateLimiter   *ratelimiter.DeliveryRateLimiter
	client        *http.Client
	stop          chan struct{}

	mu           sync.Mutex
	destLimiters map[string]*rate.Limiter
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	queue *eventqueue.Service,
	subscriptionRepository contracts.SubscriptionRepository,
	jwtMgr *jwtmanager.JWTManager,
	rateLimiter *ratelimiter.DeliveryRateLimiter,
) *Worker {
	timeout := time.Duration(cfg.Webhook.HTTPTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Worker{
		log:           log,
		cfg:           cfg,
		locker:        lockerSvc,
		queue:         queue,
		subscriptions: subscriptionRepository,
		jwtManager:    jwtMgr,
		rateLimiter:   rateLimiter,
		client:        &http.Client{Timeout: timeout},
		stop:          make(chan struct{}),
		destLimiters:  make(map[string]*rate.Limiter),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(time.Minute)
	stopped := make(chan struct{})

	w.log.Info("notify worker started")

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case now := <-ticker.C:
				w.runOnce(ctx, now)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

func (w *Worker) runOnce(ctx context.Context, now time.Time) {
	w.log.Info("notify.worker.runOnce tick", zap.Time("now", now))

	// The lock ends just before the next tick so a crashed holder never
	// blocks more than one cycle.
	nextMinute := now.Truncate(time.Minute).Add(time.Minute)
	ttl := time.Until(nextMinute) - 1*time.Second
	if ttl < 1*time.Second {
		ttl = 1 * time.Second
	}
	acquired, lockVal, err := w.locker.TryLock(ctx, constvars.RedisKeyDeliveryWorkerLock, ttl)
	if err != nil {
		w.log.Info("notify worker lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Warn("notify worker lock not acquired; another instance is running")
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisKeyDeliveryWorkerLock, lockVal); err != nil {
			w.log.Error("notify worker unlock failed", zap.Error(err))
		}
	}()

	max := w.cfg.Webhook.MaxQueue
	if max <= 0 {
		max = 1
	}
	out, err := w.queue.FetchN(ctx, &eventqueue.FetchNInput{Max: max})
	if err != nil {
		w.log.Info("notify worker FetchN error", zap.Error(err))
		return
	}

	w.log.Info("notify worker fetched events", zap.Int("fetched_count", len(out.Items)))

	for _, item := range out.Items {
		w.processItem(ctx, item, now)
	}
}

func (w *Worker) processItem(ctx context.Context, item eventqueue.QueuedItem, now time.Time) {
	event := item.Event

	budget, err := w.rateLimiter.Evaluate(ctx, &ratelimiter.EvaluateInput{EventType: event.Type, NowUTC: now.UTC()})
	if err != nil {
		w.log.Info("notify worker rate limiter evaluation failed",
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err))
		w.settle(ctx, item, event, deliveryDeferred)
		return
	}
	if !budget.Allowed {
		w.log.Warn("notify worker event type over delivery budget; returned to tail",
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Int("retry_after_secs", budget.RetryAfterSecs))
		w.settle(ctx, item, event, deliveryDeferred)
		return
	}

	subscriptions, err := w.subscriptions.FindActiveForEvent(ctx, event.Type)
	if err != nil {
		// A store hiccup is not the event's fault; retry without spending budget.
		w.log.Info("notify worker subscription lookup failed",
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err))
		w.settle(ctx, item, event, deliveryDeferred)
		return
	}
	if len(subscriptions) == 0 {
		w.ack(ctx, item)
		w.log.Info("notify worker event had no subscribers; dropped",
			zap.String(constvars.LoggingEventTypeKey, event.Type))
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		// Charging the budget walks the event into the DLQ within a few ticks.
		w.log.Error("notify worker cannot marshal event",
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err))
		w.settle(ctx, item, event, deliveryRetry)
		return
	}

	outcome := deliveryOK
	for _, subscription := range subscriptions {
		result := w.deliverOne(ctx, subscription, event, body)
		if result > outcome {
			outcome = result
		}
	}

	w.settle(ctx, item, event, outcome)
}

func (w *Worker) deliverOne(ctx context.Context, subscription models.Subscription, event models.RosterEvent, body []byte) deliveryResult {
	if !w.destLimiter(subscription.ID).Allow() {
		w.log.Warn("notify worker destination over rate; deferred",
			zap.String(constvars.LoggingSubscriptionKey, subscription.ID),
			zap.String(constvars.LoggingEventTypeKey, event.Type))
		return deliveryDeferred
	}

	deliveryID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, subscription.URL, bytes.NewReader(body))
	if err != nil {
		w.log.Info("notify worker build request failed",
			zap.String(constvars.LoggingSubscriptionKey, subscription.ID),
			zap.Error(err))
		return deliveryRetry
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXEventType, event.Type)
	req.Header.Set(constvars.HeaderXDeliveryID, deliveryID)

	tokenOut, err := w.jwtManager.CreateToken(ctx, &jwtmanager.CreateTokenInput{
		Subject:    subscription.ID,
		EventType:  event.Type,
		DeliveryID: deliveryID,
	})
	if err != nil {
		w.log.Info("notify worker token creation failed",
			zap.String(constvars.LoggingSubscriptionKey, subscription.ID),
			zap.Error(err))
		return deliveryRetry
	}
	req.Header.Set(constvars.HeaderXSignature, tokenOut.Token)

	w.log.Info("notify worker delivering event",
		zap.String(constvars.LoggingSubscriptionKey, subscription.ID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String("delivery_id", deliveryID),
		zap.Int("failed_count", event.FailedCount))

	resp, err := w.client.Do(req)
	if err != nil {
		w.log.Info("notify worker http request failed",
			zap.String(constvars.LoggingSubscriptionKey, subscription.ID),
			zap.Error(err))
		return deliveryRetry
	}
	defer resp.Body.Close()
	_, _ = io.ReadAll(resp.Body) // drain for connection reuse

	w.log.Info("notify worker delivery response",
		zap.String(constvars.LoggingSubscriptionKey, subscription.ID),
		zap.String("delivery_id", deliveryID),
		zap.Int("status_code", resp.StatusCode))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return deliveryOK
	case http.StatusUnauthorized, http.StatusForbidden:
		// The subscriber rejected our credentials; retrying with a fresh
		// token may succeed, so the failure budget is not charged.
		return deliveryDeferred
	default:
		return deliveryRetry
	}
}

// settle closes out one fetched event: ack on success, reenqueue or dead-letter
// otherwise. The replacement is published before the original is acked so the
// event can never be lost between the two queues.
func (w *Worker) settle(ctx context.Context, item eventqueue.QueuedItem, event models.RosterEvent, outcome deliveryResult) {
	switch outcome {
	case deliveryOK:
		w.ack(ctx, item)
		w.log.Info("notify worker event delivered to all subscribers",
			zap.String(constvars.LoggingEventTypeKey, event.Type))
	case deliveryDeferred:
		if _, err := w.queue.Reenqueue(ctx, &eventqueue.ReenqueueInput{Event: event}); err != nil {
			w.log.Info("notify worker reenqueue failed",
				zap.String(constvars.LoggingEventTypeKey, event.Type),
				zap.Error(err))
			return
		}
		w.ack(ctx, item)
		w.log.Info("notify worker event returned to tail without incrementing failed count",
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Int("failed_count", event.FailedCount))
	case deliveryRetry:
		event.FailedCount++
		if event.FailedCount >= w.cfg.Webhook.ThrottleRetry {
			if _, err := w.queue.EnqueueToDeadQueue(ctx, &eventqueue.EnqueueToDLQInput{Event: event}); err != nil {
				w.log.Info("notify worker enqueue to DLQ failed",
					zap.String(constvars.LoggingEventTypeKey, event.Type),
					zap.Error(err))
				return
			}
			w.ack(ctx, item)
			w.log.Info("notify worker moved event to DLQ",
				zap.String(constvars.LoggingEventTypeKey, event.Type),
				zap.Int("failed_count", event.FailedCount))
			return
		}
		if _, err := w.queue.Reenqueue(ctx, &eventqueue.ReenqueueInput{Event: event}); err != nil {
			w.log.Info("notify worker reenqueue failed",
				zap.String(constvars.LoggingEventTypeKey, event.Type),
				zap.Error(err))
			return
		}
		w.ack(ctx, item)
		w.log.Info("notify worker retryable failure; incremented failed count and requeued",
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Int("failed_count", event.FailedCount))
	}
}

func (w *Worker) ack(ctx context.Context, item eventqueue.QueuedItem) {
	if _, err := w.queue.AckMessage(ctx, &eventqueue.AckMessageInput{DeliveryTag: item.DeliveryTag}); err != nil {
		w.log.Info("notify worker ack failed", zap.Error(err))
	}
}

// destLimiter returns the per-destination smoother, creating it on first use.
// The budget is the configured per-minute rate with an equal burst.
func (w *Worker) destLimiter(subscriptionID string) *rate.Limiter {
	w.mu.Lock()
	defer w.mu.Unlock()

	limiter, ok := w.destLimiters[subscriptionID]
	if !ok {
		perMinute := w.cfg.Webhook.RateLimit
		if perMinute <= 0 {
			perMinute = 60
		}
		limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
		w.destLimiters[subscriptionID] = limiter
	}
	return limiter
}
