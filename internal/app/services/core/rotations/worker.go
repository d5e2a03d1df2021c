package rotations

import (
	"context"
	"time"

	"rosta-service/internal/app/config"
	"rosta-service/internal/app/contracts"
	"rosta-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker runs the materializer on a schedule so active rotations keep a
// rolling horizon of concrete shifts.
type Worker struct {
	log             *zap.Logger
	cfg             *config.InternalConfig
	locker          contracts.LockerService
	rotationUsecase contracts.RotationUsecase
	cron            *cron.Cron
	runCtx          context.Context
	cancel          context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerService contracts.LockerService, rotationUsecase contracts.RotationUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerService, rotationUsecase: rotationUsecase}
}

// Start schedules the materializer with the configured cron spec, falling
// back to @daily when the spec does not parse.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Rotation.CronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("rotations.worker: failed to schedule with provided cron spec; falling back to @daily",
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the cron scheduler to drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := time.Duration(w.cfg.Rotation.LockTTLInSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyRotationWorkerLock, ttl)
	if err != nil {
		w.log.Warn("rotations.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("rotations.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyRotationWorkerLock, token)

	// Keep the lock alive while the expansion runs longer than its TTL.
	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, constvars.RedisKeyRotationWorkerLock, token, ttl); err != nil {
					w.log.Warn("rotations.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	result, err := w.rotationUsecase.Materialize(ctx)
	if err != nil {
		w.log.Error("rotations.worker: materialization failed", zap.Error(err))
		return
	}
	w.log.Info("rotations.worker: materialization finished",
		zap.Int("rotations_seen", result.RotationsSeen),
		zap.Int("shifts_written", result.ShiftsWritten),
		zap.Int("days_skipped", result.DaysSkipped),
	)
}
