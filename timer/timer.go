package timer

import (
	"time"

	"github.com/arloliu/go-e84/mclock"
)

// Timer is a restartable interval timer driven by caller-supplied timestamps.
//
// The zero value is a stopped timer with a zero interval and no behavior flags.
type Timer struct {
	interval             time.Duration
	behavior             Behavior
	lastTrigger          mclock.Timestamp
	nextTrigger          mclock.Timestamp
	elapsedAtLastTrigger time.Duration
	wasTriggered         bool
}

// New returns a stopped timer with the given interval and behavior.
func New(interval time.Duration, behavior Behavior) Timer {
	return Timer{
		interval:    interval,
		behavior:    behavior,
		nextTrigger: mclock.Zero.Add(interval),
	}
}

// Start (re)starts the timer at now, clearing the elapsed time captured at the
// last trigger.
func (t *Timer) Start(now mclock.Timestamp) {
	t.lastTrigger = now
	t.nextTrigger = now.Add(t.interval)
	t.elapsedAtLastTrigger = 0
	t.wasTriggered = false
}

// StartWithInterval sets the interval and then starts the timer at now.
func (t *Timer) StartWithInterval(now mclock.Timestamp, interval time.Duration) {
	t.interval = interval
	t.Start(now)
}

// Reset restarts the timer at now. It is equivalent to Start.
func (t *Timer) Reset(now mclock.Timestamp) {
	t.Start(now)
}

// Stop stops the timer and records the time elapsed since its last start or trigger,
// retrievable with ElapsedAtLastTrigger. Stopping a stopped timer has no effect.
func (t *Timer) Stop(now mclock.Timestamp) {
	if t.IsStopped() {
		return
	}

	t.elapsedAtLastTrigger = t.Elapsed(now)
	t.lastTrigger = mclock.Zero
}

// IsStopped reports whether the timer has never been started or has been stopped.
func (t *Timer) IsStopped() bool {
	return t.lastTrigger.IsZero()
}

// IsRunning reports whether the timer is started and its interval allows it to
// trigger: a positive interval, or a zero interval with ZeroIntervalRuns set.
// A started timer with a negative interval is not running.
func (t *Timer) IsRunning() bool {
	if t.IsStopped() {
		return false
	}

	switch {
	case t.interval > 0:
		return true
	case t.interval == 0:
		return t.behavior.Has(ZeroIntervalRuns)
	default:
		return false
	}
}

// IsTriggered polls the timer at now and reports whether it has triggered, i.e.
// whether now is past the next trigger point.
//
// Polling may change the timer state. The first poll observing a trigger records
// the elapsed time for ElapsedAtLastTrigger. With AutoReset the next trigger point
// advances by one interval; if that point is already behind now, the timer instead
// restarts from now so a late poll reports a single trigger rather than a backlog.
// Without AutoReset a triggered timer keeps reporting true until restarted.
//
// A timer in IntervalMeasurement mode never triggers.
func (t *Timer) IsTriggered(now mclock.Timestamp) bool {
	if !t.IsRunning() || t.behavior.Has(IntervalMeasurement) {
		return false
	}

	triggered := now.After(t.nextTrigger)
	if triggered && !t.wasTriggered {
		t.elapsedAtLastTrigger = now.Diff(t.lastTrigger)
	}
	t.wasTriggered = triggered

	if triggered && t.behavior.Has(AutoReset) {
		t.lastTrigger = t.nextTrigger
		t.nextTrigger = t.nextTrigger.Add(t.interval)
		if t.nextTrigger.Before(now) {
			t.rebase(now)
		}
	}

	return triggered
}

// rebase restarts the schedule at now and clears the edge latch.
// elapsedAtLastTrigger keeps the value captured by the current poll.
func (t *Timer) rebase(now mclock.Timestamp) {
	t.lastTrigger = now
	t.nextTrigger = now.Add(t.interval)
	t.wasTriggered = false
}

// Elapsed returns the time since the timer was last started or triggered.
// It never changes the timer state.
//
// For a stopped timer it returns 0 when ZeroWhenStopped is set, otherwise the
// time since the clock origin.
func (t *Timer) Elapsed(now mclock.Timestamp) time.Duration {
	if t.IsStopped() {
		if t.behavior.Has(ZeroWhenStopped) {
			return 0
		}
		return now.Diff(mclock.Zero)
	}

	return now.Diff(t.lastTrigger)
}

// Lap returns the same value as Elapsed. In IntervalMeasurement mode it also
// restarts a started timer at now, so consecutive laps measure the time between
// calls.
func (t *Timer) Lap(now mclock.Timestamp) time.Duration {
	elapsed := t.Elapsed(now)
	if t.behavior.Has(IntervalMeasurement) && !t.IsStopped() {
		t.Start(now)
	}

	return elapsed
}

// ElapsedAtLastTrigger returns the elapsed time captured by the poll that first
// observed the current trigger, or by the last Stop. It is 0 after Start.
func (t *Timer) ElapsedAtLastTrigger() time.Duration {
	return t.elapsedAtLastTrigger
}

// RemainingTime returns the time left until the next trigger point while the timer
// is running and not triggered, otherwise 0. It does not change the timer state.
func (t *Timer) RemainingTime(now mclock.Timestamp) time.Duration {
	if !t.IsRunning() || now.After(t.nextTrigger) {
		return 0
	}

	return t.nextTrigger.Diff(now)
}

// SetInterval changes the interval and recomputes the next trigger point from the
// last start or trigger, whether or not the timer is running.
func (t *Timer) SetInterval(interval time.Duration) {
	t.interval = interval
	t.nextTrigger = t.lastTrigger.Add(interval)
}

// Interval returns the configured interval.
func (t *Timer) Interval() time.Duration { return t.interval }

// SetBehavior replaces the behavior flags.
func (t *Timer) SetBehavior(b Behavior) { t.behavior = b }

// Behavior returns the behavior flags.
func (t *Timer) Behavior() Behavior { return t.behavior }

// LastTrigger returns the time of the last start or trigger, or mclock.Zero if stopped.
func (t *Timer) LastTrigger() mclock.Timestamp { return t.lastTrigger }

// NextTrigger returns the time after which the timer triggers.
func (t *Timer) NextTrigger() mclock.Timestamp { return t.nextTrigger }
