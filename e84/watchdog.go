package e84

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/arloliu/go-e84/logger"
	"github.com/arloliu/go-e84/mclock"
	"github.com/arloliu/go-e84/timer"
	"github.com/puzpuzpuz/xsync/v3"
)

// watchBehavior stops a disarmed budget from reporting time since the clock origin.
const watchBehavior = timer.ZeroWhenStopped

// watch guards the timer of a single budget. timer.Timer has no locking of its own.
type watch struct {
	mu      sync.Mutex
	timer   timer.Timer
	alarmed bool
}

// Watchdog supervises the E84 budgets of one load port.
//
// Each budget is backed by its own timer.Timer. All methods are safe for concurrent use.
type Watchdog struct {
	watches  *xsync.MapOf[TimeoutID, *watch]
	handlers []AlarmHandler
	logger   logger.Logger
	clock    *mclock.Clock
	metrics  WatchdogMetrics
}

// WatchdogOption is a functional option for configuring a Watchdog.
type WatchdogOption interface {
	apply(*Watchdog) error
}

type watchdogOptFunc func(*Watchdog) error

func (f watchdogOptFunc) apply(w *Watchdog) error { return f(w) }

// WithLogger sets the logger of the watchdog.
func WithLogger(l logger.Logger) WatchdogOption {
	return watchdogOptFunc(func(w *Watchdog) error {
		if l == nil {
			return errors.New("e84: logger is nil")
		}
		w.logger = l
		return nil
	})
}

// WithAlarmHandler adds handlers invoked for every raised alarm.
func WithAlarmHandler(handlers ...AlarmHandler) WatchdogOption {
	return watchdogOptFunc(func(w *Watchdog) error {
		for _, h := range handlers {
			if h != nil {
				w.handlers = append(w.handlers, h)
			}
		}
		return nil
	})
}

// WithClock sets the clock used by Run. The process-wide mclock clock is used by default.
func WithClock(c *mclock.Clock) WatchdogOption {
	return watchdogOptFunc(func(w *Watchdog) error {
		if c == nil {
			return errors.New("e84: clock is nil")
		}
		w.clock = c
		return nil
	})
}

// NewWatchdog creates a watchdog with every budget disarmed.
func NewWatchdog(values TimeoutValues, opts ...WatchdogOption) (*Watchdog, error) {
	w := &Watchdog{
		watches: xsync.NewMapOf[TimeoutID, *watch](),
		logger:  logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(w); err != nil {
			return nil, err
		}
	}

	for _, id := range AllTimeouts() {
		w.watches.Store(id, &watch{timer: timer.New(values.Get(id), watchBehavior)})
	}

	return w, nil
}

// Metrics returns the watchdog metrics.
func (w *Watchdog) Metrics() *WatchdogMetrics {
	return &w.metrics
}

// Timeout returns the configured duration of a budget.
func (w *Watchdog) Timeout(id TimeoutID) time.Duration {
	wt, ok := w.watches.Load(id)
	if !ok {
		return 0
	}
	wt.mu.Lock()
	defer wt.mu.Unlock()

	return wt.timer.Interval()
}

// SetTimeout changes the duration of a budget. An armed budget is measured against
// the new duration from its original arm time.
func (w *Watchdog) SetTimeout(id TimeoutID, d time.Duration) error {
	if err := validateTimeout(id, d); err != nil {
		return err
	}

	wt, _ := w.watches.Load(id)
	wt.mu.Lock()
	defer wt.mu.Unlock()
	wt.timer.SetInterval(d)
	w.logger.Debug("e84 timeout changed", "id", id, "timeout", d)

	return nil
}

// Arm starts supervising a budget at now. Arming an armed budget restarts it.
//
// now must not be mclock.Zero; such a call returns an error wrapping ErrInvalidArmTime
// and leaves the budget unchanged.
func (w *Watchdog) Arm(id TimeoutID, now mclock.Timestamp) error {
	wt, err := w.load(id)
	if err != nil {
		return err
	}
	if now.IsZero() {
		return fmt.Errorf("e84: %w: %s", ErrInvalidArmTime, id)
	}

	wt.mu.Lock()
	wasArmed := !wt.timer.IsStopped()
	wt.timer.Start(now)
	wt.alarmed = false
	limit := wt.timer.Interval()
	wt.mu.Unlock()

	w.metrics.incArmCount()
	if !wasArmed {
		w.metrics.incArmedGauge()
	}
	w.logger.Debug("e84 timeout armed", "id", id, "timeout", limit, "rearm", wasArmed)

	return nil
}

// Disarm stops supervising a budget and returns the time it was armed for.
// Disarming a disarmed budget returns 0.
func (w *Watchdog) Disarm(id TimeoutID, now mclock.Timestamp) (time.Duration, error) {
	wt, err := w.load(id)
	if err != nil {
		return 0, err
	}

	wt.mu.Lock()
	if wt.timer.IsStopped() {
		wt.mu.Unlock()
		return 0, nil
	}
	wt.timer.Stop(now)
	wt.alarmed = false
	elapsed := wt.timer.ElapsedAtLastTrigger()
	wt.mu.Unlock()

	w.metrics.incDisarmCount()
	w.metrics.decArmedGauge()
	w.logger.Debug("e84 timeout disarmed", "id", id, "elapsed", elapsed)

	return elapsed, nil
}

// DisarmAll disarms every budget, e.g. when a handoff is aborted.
func (w *Watchdog) DisarmAll(now mclock.Timestamp) {
	for _, id := range AllTimeouts() {
		_, _ = w.Disarm(id, now)
	}
}

// IsArmed reports whether a budget is armed.
func (w *Watchdog) IsArmed(id TimeoutID) bool {
	wt, ok := w.watches.Load(id)
	if !ok {
		return false
	}
	wt.mu.Lock()
	defer wt.mu.Unlock()

	return !wt.timer.IsStopped()
}

// Expired reports whether an armed budget has run out at now.
// For TD budgets this means the minimum delay has passed.
func (w *Watchdog) Expired(id TimeoutID, now mclock.Timestamp) bool {
	wt, ok := w.watches.Load(id)
	if !ok {
		return false
	}
	wt.mu.Lock()
	defer wt.mu.Unlock()

	return wt.timer.IsTriggered(now)
}

// Elapsed returns the time since a budget was armed, or 0 if it is disarmed.
func (w *Watchdog) Elapsed(id TimeoutID, now mclock.Timestamp) time.Duration {
	wt, ok := w.watches.Load(id)
	if !ok {
		return 0
	}
	wt.mu.Lock()
	defer wt.mu.Unlock()

	return wt.timer.Elapsed(now)
}

// Remaining returns the time left before an armed budget runs out, or 0.
func (w *Watchdog) Remaining(id TimeoutID, now mclock.Timestamp) time.Duration {
	wt, ok := w.watches.Load(id)
	if !ok {
		return 0
	}
	wt.mu.Lock()
	defer wt.mu.Unlock()

	return wt.timer.RemainingTime(now)
}

// Poll checks every armed TA/TP budget at now and returns the alarms raised by this
// call, ordered by budget. Each arm raises at most one alarm. Registered alarm
// handlers are invoked before Poll returns.
func (w *Watchdog) Poll(now mclock.Timestamp) []Alarm {
	w.metrics.incPollCount()

	var alarms []Alarm
	w.watches.Range(func(id TimeoutID, wt *watch) bool {
		if !id.RaisesAlarm() {
			return true
		}

		wt.mu.Lock()
		defer wt.mu.Unlock()
		if wt.alarmed || !wt.timer.IsTriggered(now) {
			return true
		}
		wt.alarmed = true
		alarms = append(alarms, Alarm{
			ID:      id,
			Limit:   wt.timer.Interval(),
			Elapsed: wt.timer.ElapsedAtLastTrigger(),
			At:      now,
		})

		return true
	})

	slices.SortFunc(alarms, func(a, b Alarm) int { return int(a.ID) - int(b.ID) })

	for _, alarm := range alarms {
		w.metrics.incAlarmCount()
		w.logger.Warn("e84 timeout alarm",
			"id", alarm.ID, "kind", alarm.ID.Kind(),
			"timeout", alarm.Limit, "elapsed", alarm.Elapsed,
		)
		for _, h := range w.handlers {
			h(alarm)
		}
	}

	return alarms
}

// Run polls the watchdog every period using its clock until ctx is done.
//
// It returns an error wrapping mclock.ErrClockUnavailable if no clock was configured
// and the process-wide clock cannot be initialized, otherwise ctx.Err().
func (w *Watchdog) Run(ctx context.Context, period time.Duration) error {
	if period <= 0 {
		return fmt.Errorf("e84: invalid poll period %s", period)
	}

	clk := w.clock
	if clk == nil {
		if err := mclock.Initialize(); err != nil {
			return err
		}
		clk = mclock.Default()
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	w.logger.Debug("e84 watchdog started", "period", period)
	defer w.logger.Debug("e84 watchdog terminated")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Poll(clk.Now())
		}
	}
}

func (w *Watchdog) load(id TimeoutID) (*watch, error) {
	wt, ok := w.watches.Load(id)
	if !ok {
		return nil, fmt.Errorf("e84: %w: %s", ErrUnknownTimeout, id)
	}

	return wt, nil
}
