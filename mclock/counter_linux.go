//go:build linux

package mclock

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

func probeMonotonic() error {
	var res unix.Timespec
	if err := unix.ClockGetres(unix.CLOCK_MONOTONIC, &res); err != nil {
		return fmt.Errorf("clock_getres(CLOCK_MONOTONIC): %w", err)
	}
	if res.Nano() <= 0 {
		return errors.New("CLOCK_MONOTONIC reports no resolution")
	}

	return nil
}
