// Package timer implements a restartable, poll-driven interval timer.
//
// A Timer never reads a clock on its own. Every operation that depends on time takes
// the current mclock.Timestamp from the caller, so the state of a Timer is a pure
// function of the operations applied to it and the timestamps supplied. Tests can
// replay synthetic timestamp sequences; production code passes mclock.Now().
//
// A Timer is either stopped or running. A running timer triggers once the supplied
// time passes its next trigger point, i.e. after more than one interval has elapsed
// since it was started. The behavior is tuned with independent flags:
//
//   - AutoReset: a trigger immediately schedules the next one, one interval later.
//     When polling lagged by more than a full interval, the missed periods collapse
//     into a single trigger and the timer restarts from the poll time.
//   - ZeroWhenStopped: Elapsed reports 0 for a stopped timer instead of the time
//     since the clock origin.
//   - ZeroIntervalRuns: a zero interval is considered running and triggers on any
//     poll later than the start time. Without it a zero interval never triggers.
//   - IntervalMeasurement: the timer never triggers and acts as a stopwatch; Lap
//     returns the time since the previous lap and restarts the timer.
//
// A negative interval disables the timer regardless of flags.
//
// Timer is a value type without internal locking. Concurrent owners must copy it
// or guard it with their own mutex.
package timer
