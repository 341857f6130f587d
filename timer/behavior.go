package timer

import "strings"

// Behavior is a set of flags adjusting how a Timer runs and reports elapsed time.
type Behavior uint8

const (
	// AutoReset reschedules the timer by one interval every time it triggers.
	AutoReset Behavior = 1 << iota
	// ZeroWhenStopped makes Elapsed return 0 while the timer is stopped.
	ZeroWhenStopped
	// ZeroIntervalRuns lets a timer with a zero interval run and trigger.
	ZeroIntervalRuns
	// IntervalMeasurement turns the timer into a self-restarting stopwatch that never triggers.
	IntervalMeasurement
)

// DefaultBehavior is the behavior used by New when none is given.
const DefaultBehavior Behavior = 0

var behaviorNames = []struct {
	flag Behavior
	name string
}{
	{AutoReset, "auto-reset"},
	{ZeroWhenStopped, "zero-when-stopped"},
	{ZeroIntervalRuns, "zero-interval-runs"},
	{IntervalMeasurement, "interval-measurement"},
}

// Has reports whether all flags in f are set in b.
func (b Behavior) Has(f Behavior) bool { return b&f == f }

// With returns b with the flags in f set.
func (b Behavior) With(f Behavior) Behavior { return b | f }

// Without returns b with the flags in f cleared.
func (b Behavior) Without(f Behavior) Behavior { return b &^ f }

// String returns the flag names joined by "|", or "none".
func (b Behavior) String() string {
	if b == 0 {
		return "none"
	}

	names := make([]string, 0, len(behaviorNames))
	for _, bn := range behaviorNames {
		if b.Has(bn.flag) {
			names = append(names, bn.name)
		}
	}
	if len(names) == 0 {
		return "unknown"
	}

	return strings.Join(names, "|")
}
