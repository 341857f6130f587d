//go:build !linux

package mclock

import (
	"errors"

	"github.com/aristanetworks/goarista/monotime"
)

func probeMonotonic() error {
	if monotime.Now() == 0 {
		return errors.New("runtime monotonic clock not running")
	}

	return nil
}
