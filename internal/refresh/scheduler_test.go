package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestTrigger_RunsRefresh(t *testing.T) {
	var count atomic.Int32
	s := NewScheduler(time.Hour, func(ctx context.Context) error {
		count.Add(1)
		return nil
	})

	s.Trigger(context.Background())

	assert.Eventually(t, func() bool {
		return count.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestTrigger_CoalescesWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var count atomic.Int32

	s := NewScheduler(time.Hour, func(ctx context.Context) error {
		count.Add(1)
		started <- struct{}{}
		<-release
		return nil
	})
	s.triggers = rate.NewLimiter(rate.Inf, 0)

	s.Trigger(context.Background())
	<-started

	// Arrives while the first fetch is still in flight: dropped, not queued.
	// The Trigger call itself claims the slot, so the drop is decided before
	// any goroutine gets scheduled.
	s.Trigger(context.Background())
	s.Trigger(context.Background())
	release <- struct{}{}

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load())

	// Once the slot is free the next trigger runs again.
	s.Trigger(context.Background())
	<-started
	release <- struct{}{}
	assert.Eventually(t, func() bool { return count.Load() == 2 }, time.Second, 10*time.Millisecond)
}

func TestTrigger_RateBounded(t *testing.T) {
	var count atomic.Int32
	s := NewScheduler(time.Hour, func(ctx context.Context) error {
		count.Add(1)
		return nil
	})
	s.triggers = rate.NewLimiter(rate.Every(time.Minute), 1)

	for i := 0; i < 10; i++ {
		s.Trigger(context.Background())
	}

	assert.Eventually(t, func() bool {
		return count.Load() == 1
	}, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load())
}

func TestRun_ErrorDoesNotStopScheduler(t *testing.T) {
	var count atomic.Int32
	s := NewScheduler(time.Hour, func(ctx context.Context) error {
		count.Add(1)
		return errors.New("transient")
	})
	s.triggers = rate.NewLimiter(rate.Inf, 0)

	s.Trigger(context.Background())
	assert.Eventually(t, func() bool { return count.Load() == 1 }, time.Second, 10*time.Millisecond)

	// The failure is superseded by the next trigger.
	s.Trigger(context.Background())
	assert.Eventually(t, func() bool { return count.Load() == 2 }, time.Second, 10*time.Millisecond)
}

func TestStartStop(t *testing.T) {
	var count atomic.Int32
	s := NewScheduler(time.Second, func(ctx context.Context) error {
		count.Add(1)
		return nil
	})

	assert.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return count.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
}
