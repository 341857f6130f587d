package mclock

import (
	"fmt"
	"math"
	"math/bits"
	"sync"
	"time"

	"github.com/arloliu/go-e84/logger"
)

const nanosPerSecond = uint64(time.Second)

// Counter is a platform high-resolution counter.
type Counter interface {
	// Frequency returns the number of ticks per second.
	// It is queried once, when a Clock is created.
	Frequency() (uint64, error)
	// Ticks returns the current raw counter value. It must never decrease.
	Ticks() uint64
}

// Clock converts raw counter ticks into Timestamps using a frequency calibrated once
// at construction. A Clock is read-only after NewClock returns and is safe for
// concurrent use.
type Clock struct {
	counter Counter
	freq    uint64
	origin  uint64
}

// NewClock calibrates a clock from the given counter.
//
// The origin is one tick before the current tick count, so every reading is
// after Zero. It returns an error wrapping
// ErrClockUnavailable if the counter cannot report a usable frequency.
func NewClock(c Counter) (*Clock, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil counter", ErrClockUnavailable)
	}

	freq, err := c.Frequency()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClockUnavailable, err)
	}
	if freq == 0 {
		return nil, fmt.Errorf("%w: counter frequency is zero", ErrClockUnavailable)
	}

	return &Clock{counter: c, freq: freq, origin: c.Ticks() - 1}, nil
}

// Frequency returns the calibrated counter frequency in ticks per second.
func (c *Clock) Frequency() uint64 { return c.freq }

// Now returns the current monotonic time. It never blocks and never fails.
func (c *Clock) Now() Timestamp {
	return c.scale(c.counter.Ticks() - c.origin)
}

// Since returns the duration elapsed from t to now.
func (c *Clock) Since(t Timestamp) time.Duration {
	return c.Now().Diff(t)
}

// scale converts ticks into nanoseconds: ticks * 1e9 / freq, saturating at MaxInt64.
func (c *Clock) scale(ticks uint64) Timestamp {
	if c.freq == nanosPerSecond {
		if ticks > math.MaxInt64 {
			return Timestamp(math.MaxInt64)
		}
		return Timestamp(ticks)
	}

	hi, lo := bits.Mul64(ticks, nanosPerSecond)
	if hi >= c.freq {
		return Timestamp(math.MaxInt64)
	}
	ns, _ := bits.Div64(hi, lo, c.freq)
	if ns > math.MaxInt64 {
		return Timestamp(math.MaxInt64)
	}

	return Timestamp(ns)
}

var (
	defaultOnce  sync.Once
	defaultClock *Clock
	defaultErr   error
)

// Initialize calibrates the process-wide clock from SystemCounter.
//
// Only the first call does any work; later calls return the same result.
func Initialize() error {
	defaultOnce.Do(func() {
		defaultClock, defaultErr = NewClock(SystemCounter())
		if defaultErr != nil {
			logger.Error("failed to initialize monotonic clock", "error", defaultErr)
			return
		}
		logger.Debug("monotonic clock initialized", "frequency", defaultClock.freq)
	})

	return defaultErr
}

// Default returns the process-wide clock, initializing it on first use.
//
// It panics with an error wrapping ErrClockUnavailable if the platform has no
// usable monotonic counter.
func Default() *Clock {
	if err := Initialize(); err != nil {
		panic(err)
	}

	return defaultClock
}

// Now returns the current time of the process-wide clock.
func Now() Timestamp {
	return Default().Now()
}

// Since returns the duration elapsed from t according to the process-wide clock.
func Since(t Timestamp) time.Duration {
	return Default().Since(t)
}
