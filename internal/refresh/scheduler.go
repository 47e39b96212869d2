// Package refresh keeps order and tracking state current without user
// action: a fixed interval plus manual triggers for became-active events,
// with bounded, coalesced fetches instead of ad hoc timers per view.
package refresh

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"skydish-core/internal/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Func performs one refresh pass. Errors are logged and superseded by the
// next refresh; the scheduler never retries on its own.
type Func func(ctx context.Context) error

type Scheduler struct {
	fn       Func
	interval time.Duration
	cron     *cron.Cron
	inFlight atomic.Bool

	// triggers bounds became-active refreshes under rapid focus-toggling.
	triggers *rate.Limiter
}

func NewScheduler(interval time.Duration, fn Func) *Scheduler {
	return &Scheduler{
		fn:       fn,
		interval: interval,
		cron:     cron.New(),
		triggers: rate.NewLimiter(rate.Every(2*time.Second), 3),
	}
}

// Start begins the fixed-interval refresh.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		s.tryRun(context.Background(), "interval")
	})
	if err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}

	s.cron.Start()
	logger.L().Info("refresh scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop stops the interval; an in-flight refresh finishes on its own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	logger.L().Info("refresh scheduler stopped")
}

// Trigger requests an immediate refresh, e.g. when the consuming view
// regains focus. Bursts are rate-bounded and anything arriving while a fetch
// is in flight is dropped, not queued.
func (s *Scheduler) Trigger(ctx context.Context) {
	if !s.triggers.Allow() {
		logger.FromCtx(ctx).Debug("refresh trigger rate-bounded")
		return
	}
	s.tryRun(ctx, "trigger")
}

// tryRun claims the in-flight slot before spawning the fetch, so a request
// arriving mid-fetch is dropped right here instead of queuing behind it.
func (s *Scheduler) tryRun(ctx context.Context, reason string) {
	if !s.inFlight.CompareAndSwap(false, true) {
		logger.FromCtx(ctx).Debug("refresh coalesced", zap.String("reason", reason))
		return
	}

	go func() {
		defer s.inFlight.Store(false)

		if err := s.fn(ctx); err != nil {
			logger.FromCtx(ctx).Warn("refresh failed",
				zap.String("reason", reason),
				zap.Error(err),
			)
		}
	}()
}
