// Package agent owns the background monitoring schedule: it periodically runs
// an inventory check and exposes start/stop lifecycle control. A single
// worker goroutine runs per agent; all state transitions go through the
// mutex.
package agent

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-inventory-agent/internal/pkg/clock"
)

const (
	// DefaultInterval is the check interval when none is configured.
	DefaultInterval = 3600 * time.Second
	// errCooldown is how long the loop pauses after a failed check before
	// resuming the normal schedule.
	errCooldown = 60 * time.Second
	// stopWait bounds how long Stop blocks for the loop to exit.
	stopWait = time.Second
	// pollStep is the granularity at which waits observe cancellation.
	pollStep = time.Second
)

// Checker runs one inventory check and reports how many notifications were
// added.
type Checker interface {
	RunCheck(ctx context.Context) (int, error)
}

// Agent is the monitoring scheduler. Zero state is Stopped; Start and Stop
// move between Stopped and Running. Invalid lifecycle calls log a warning and
// change nothing.
type Agent struct {
	checker  Checker
	clock    clock.Clock
	interval time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func New(checker Checker, clk clock.Clock, interval time.Duration) *Agent {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Agent{checker: checker, clock: clk, interval: interval}
}

// Start launches the scheduling loop plus one immediate out-of-band check so
// the first observation is not delayed by a full interval. A zero interval
// keeps the current setting. Starting a running agent is a no-op warning.
func (a *Agent) Start(interval time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		slog.Warn("monitoring agent is already running")
		return
	}
	if interval > 0 {
		a.interval = interval
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})
	a.running = true

	go a.loop(ctx, a.done)
	go a.check(ctx)

	slog.Info("inventory monitoring started", "interval", a.interval)
}

// Stop clears the running flag and waits (bounded) for the loop to observe it.
// Stopping a stopped agent is a no-op warning.
func (a *Agent) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		slog.Warn("monitoring agent is not running")
		return
	}
	a.running = false
	cancel, done := a.cancel, a.done
	a.mu.Unlock()

	cancel()
	select {
	case <-done:
	case <-a.clock.After(stopWait):
		slog.Warn("monitoring loop did not exit within stop wait")
	}
	slog.Info("inventory monitoring stopped")
}

// Running reports whether the scheduling loop is active.
func (a *Agent) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Interval returns the current check interval.
func (a *Agent) Interval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval
}

func (a *Agent) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	for ctx.Err() == nil {
		if err := a.check(ctx); err != nil {
			if !a.wait(ctx, errCooldown) {
				return
			}
			continue
		}
		if !a.wait(ctx, a.Interval()) {
			return
		}
	}
}

// check runs one cycle. The check itself is shielded from cancellation: a
// stop lets an in-flight check run to completion and only interrupts the
// waits.
func (a *Agent) check(ctx context.Context) error {
	if _, err := a.checker.RunCheck(context.WithoutCancel(ctx)); err != nil {
		slog.Error("inventory check failed", "err", err)
		return err
	}
	return nil
}

// wait sleeps for d in pollStep increments, returning false once ctx is
// cancelled so a stop is observed within about one step.
func (a *Agent) wait(ctx context.Context, d time.Duration) bool {
	for elapsed := time.Duration(0); elapsed < d; elapsed += pollStep {
		step := pollStep
		if remaining := d - elapsed; remaining < step {
			step = remaining
		}
		select {
		case <-ctx.Done():
			return false
		case <-a.clock.After(step):
		}
	}
	return ctx.Err() == nil
}
