package e84

import (
	"fmt"
	"time"

	"github.com/arloliu/go-e84/mclock"
)

// Alarm reports an expired E84 budget.
//
// Alarm implements error and matches ErrTimeout with errors.Is.
type Alarm struct {
	// ID is the expired budget.
	ID TimeoutID
	// Limit is the configured budget duration.
	Limit time.Duration
	// Elapsed is the time since the budget was armed, measured at the poll that detected the expiry.
	Elapsed time.Duration
	// At is the poll time that detected the expiry.
	At mclock.Timestamp
}

// AlarmHandler is a function type invoked for every raised alarm.
//
// Note: the handler is invoked synchronously from Poll. Take care with long-running implementations.
type AlarmHandler func(alarm Alarm)

func (a Alarm) Error() string {
	return fmt.Sprintf("%s timeout: elapsed %s exceeds %s", a.ID, a.Elapsed, a.Limit)
}

// Unwrap returns ErrTimeout.
func (a Alarm) Unwrap() error { return ErrTimeout }
