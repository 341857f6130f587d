package mclock

import "errors"

// ErrClockUnavailable indicates that the platform has no usable high-resolution counter.
//
// It is a process initialization error; there is no degraded mode without a monotonic clock.
var ErrClockUnavailable = errors.New("monotonic clock unavailable")
