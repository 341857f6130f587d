package e84

import "errors"

var (
	// ErrUnknownTimeout indicates a timeout identifier that is not one of TA1–TA3, TP1–TP6 or TD0–TD1.
	ErrUnknownTimeout = errors.New("unknown E84 timeout")

	// ErrTimeoutOutOfRange indicates a timeout value outside [0, MaxTimeout].
	ErrTimeoutOutOfRange = errors.New("E84 timeout value out of range")

	// ErrInvalidTimeoutValue indicates a timeout value that is neither a duration string nor a number of seconds.
	ErrInvalidTimeoutValue = errors.New("invalid E84 timeout value")

	// ErrInvalidArmTime indicates an attempt to arm a budget at the Zero timestamp.
	ErrInvalidArmTime = errors.New("E84 arm time is the zero timestamp")

	// ErrTimeout is matched by every Alarm with errors.Is.
	ErrTimeout = errors.New("E84 handoff timeout")
)
