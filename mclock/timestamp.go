package mclock

import (
	"math"
	"time"
)

// Timestamp is a point in monotonic time, in nanoseconds since the clock origin.
type Timestamp int64

// Zero is the "never set" sentinel. A reading that happens to equal the clock
// origin is indistinguishable from Zero and is treated as unset by convention.
const Zero Timestamp = 0

// FromSeconds returns the Timestamp that lies s seconds after the clock origin,
// rounded to the nearest nanosecond.
func FromSeconds(s float64) Timestamp {
	return Timestamp(math.Round(s * float64(time.Second)))
}

// FromDuration returns the Timestamp that lies d after the clock origin.
func FromDuration(d time.Duration) Timestamp {
	return Timestamp(d)
}

// IsZero reports whether t is the Zero sentinel.
func (t Timestamp) IsZero() bool { return t == Zero }

// Add returns t+d.
func (t Timestamp) Add(d time.Duration) Timestamp { return t + Timestamp(d) }

// Sub returns t-d.
func (t Timestamp) Sub(d time.Duration) Timestamp { return t - Timestamp(d) }

// Diff returns the signed duration t-o.
func (t Timestamp) Diff(o Timestamp) time.Duration { return time.Duration(t - o) }

// Before reports whether t is earlier than o.
func (t Timestamp) Before(o Timestamp) bool { return t < o }

// After reports whether t is later than o.
func (t Timestamp) After(o Timestamp) bool { return t > o }

// Equal reports whether t and o are the same instant.
func (t Timestamp) Equal(o Timestamp) bool { return t == o }

// Compare returns -1 if t is before o, +1 if t is after o, and 0 if they are equal.
func (t Timestamp) Compare(o Timestamp) int {
	switch {
	case t < o:
		return -1
	case t > o:
		return 1
	default:
		return 0
	}
}

// Seconds returns t as fractional seconds since the clock origin.
func (t Timestamp) Seconds() float64 { return time.Duration(t).Seconds() }

// Duration returns the time elapsed from the clock origin to t.
func (t Timestamp) Duration() time.Duration { return time.Duration(t) }

// String returns t formatted as an offset from the clock origin, e.g. "mono+1.5s".
func (t Timestamp) String() string {
	if t.IsZero() {
		return "mono(zero)"
	}
	if t < 0 {
		return "mono" + time.Duration(t).String()
	}

	return "mono+" + time.Duration(t).String()
}
