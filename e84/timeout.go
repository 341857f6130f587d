package e84

import (
	"fmt"
	"strings"
)

// TimeoutID identifies an E84 timing budget.
type TimeoutID uint8

// E84 timing budgets.
const (
	// TA1 is the time from VALID on until L_REQ or U_REQ turns on.
	TA1 TimeoutID = iota
	// TA2 is the time from TR_REQ on until READY turns on.
	TA2
	// TA3 is the time from COMPT on until READY turns off.
	TA3
	// TP1 is the time from L_REQ or U_REQ on until TR_REQ turns on.
	TP1
	// TP2 is the time from READY on until BUSY turns on.
	TP2
	// TP3 is the time from BUSY on until the carrier is detected or removed.
	TP3
	// TP4 is the time from L_REQ or U_REQ off until BUSY turns off.
	TP4
	// TP5 is the time from READY off until VALID turns off.
	TP5
	// TP6 is the time from VALID off until VALID turns on again in continuous handoff.
	TP6
	// TD0 is the delay from CS_0 on until VALID may turn on.
	TD0
	// TD1 is the delay from VALID off until VALID may turn on again in continuous handoff.
	TD1

	timeoutCount
)

var timeoutNames = [timeoutCount]string{
	TA1: "TA1", TA2: "TA2", TA3: "TA3",
	TP1: "TP1", TP2: "TP2", TP3: "TP3", TP4: "TP4", TP5: "TP5", TP6: "TP6",
	TD0: "TD0", TD1: "TD1",
}

// Kind classifies a timing budget by who supervises it.
type Kind uint8

const (
	// ActiveTimeout is supervised by the active equipment (AMHS vehicle).
	ActiveTimeout Kind = iota
	// PassiveTimeout is supervised by the passive equipment (load port).
	PassiveTimeout
	// Delay is a minimum wait rather than a maximum duration; it never raises an alarm.
	Delay
)

// String returns string representation of the kind.
func (k Kind) String() string {
	switch k {
	case ActiveTimeout:
		return "active"
	case PassiveTimeout:
		return "passive"
	case Delay:
		return "delay"
	default:
		return "unknown"
	}
}

// AllTimeouts returns every timing budget in declaration order.
func AllTimeouts() []TimeoutID {
	ids := make([]TimeoutID, 0, timeoutCount)
	for id := TA1; id < timeoutCount; id++ {
		ids = append(ids, id)
	}

	return ids
}

// IsValid reports whether id names a known budget.
func (id TimeoutID) IsValid() bool { return id < timeoutCount }

// String returns the budget name, e.g. "TP3".
func (id TimeoutID) String() string {
	if !id.IsValid() {
		return fmt.Sprintf("TimeoutID(%d)", uint8(id))
	}

	return timeoutNames[id]
}

// Kind returns the kind of the budget.
func (id TimeoutID) Kind() Kind {
	switch {
	case id <= TA3:
		return ActiveTimeout
	case id <= TP6:
		return PassiveTimeout
	default:
		return Delay
	}
}

// RaisesAlarm reports whether expiry of the budget is a handoff error.
func (id TimeoutID) RaisesAlarm() bool {
	return id.IsValid() && id.Kind() != Delay
}

// ParseTimeoutID parses a budget name case-insensitively.
func ParseTimeoutID(s string) (TimeoutID, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for id, n := range timeoutNames {
		if n == name {
			return TimeoutID(id), nil
		}
	}

	return 0, fmt.Errorf("e84: %w: %q", ErrUnknownTimeout, s)
}
