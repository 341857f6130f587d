package mclock

import "github.com/aristanetworks/goarista/monotime"

type systemCounter struct{}

// SystemCounter returns the platform monotonic counter.
//
// Ticks are nanoseconds of the runtime monotonic clock; on Linux the frequency
// is only reported after CLOCK_MONOTONIC has been verified to be usable.
func SystemCounter() Counter { return systemCounter{} }

func (systemCounter) Ticks() uint64 { return monotime.Now() }

func (systemCounter) Frequency() (uint64, error) {
	if err := probeMonotonic(); err != nil {
		return 0, err
	}

	return nanosPerSecond, nil
}
