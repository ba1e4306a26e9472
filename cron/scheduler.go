package cron

import (
	"context"
	"time"

	"grocli/services/reminder"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// dispatchLockKey guards against overlapping dispatch cycles. The managed
// platform serialized scheduled triggers for us; self-hosted, the lock
// makes that assumption explicit.
const dispatchLockKey = "reminder:dispatch:lock"

const dispatchLockTTL = 2 * time.Minute

// DispatchScheduler triggers the reminder dispatch cycle on a fixed cadence.
type DispatchScheduler struct {
	engine     *cron.Cron
	dispatcher *reminder.Dispatcher
	lock       *redis.Client
	spec       string
	logger     *zap.Logger
}

func NewDispatchScheduler(dispatcher *reminder.Dispatcher, lockClient *redis.Client, spec string, logger *zap.Logger) *DispatchScheduler {
	return &DispatchScheduler{
		engine:     cron.New(),
		dispatcher: dispatcher,
		lock:       lockClient,
		spec:       spec,
		logger:     logger,
	}
}

// Start registers the dispatch job and starts the cron engine.
func (s *DispatchScheduler) Start() error {
	if _, err := s.engine.AddFunc(s.spec, s.tick); err != nil {
		return err
	}
	s.engine.Start()
	s.logger.Info("reminder dispatch scheduler started", zap.String("spec", s.spec))
	return nil
}

// Stop halts the cron engine and waits for a running cycle to finish.
func (s *DispatchScheduler) Stop() {
	ctx := s.engine.Stop()
	<-ctx.Done()
	s.logger.Info("reminder dispatch scheduler stopped")
}

func (s *DispatchScheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchLockTTL)
	defer cancel()

	acquired, err := s.lock.SetNX(ctx, dispatchLockKey, "1", dispatchLockTTL).Result()
	if err != nil {
		// Redis being down should not silence reminders; run unguarded.
		s.logger.Warn("dispatch lock unavailable, running without it", zap.Error(err))
	} else if !acquired {
		s.logger.Info("previous dispatch cycle still running, skipping tick")
		return
	} else {
		defer s.lock.Del(ctx, dispatchLockKey)
	}

	if _, err := s.dispatcher.RunCycle(ctx); err != nil {
		// The whole invocation is abandoned; the next tick retries wholesale.
		s.logger.Error("dispatch cycle failed", zap.Error(err))
	}
}
