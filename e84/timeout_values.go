package e84

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Default timeout values commonly used for SEMI E84 handoffs.
const (
	DefaultTA1 = 2 * time.Second
	DefaultTA2 = 2 * time.Second
	DefaultTA3 = 2 * time.Second

	DefaultTP1 = 2 * time.Second
	DefaultTP2 = 2 * time.Second
	DefaultTP3 = 60 * time.Second
	DefaultTP4 = 60 * time.Second
	DefaultTP5 = 2 * time.Second
	DefaultTP6 = 2 * time.Second

	DefaultTD0 = 100 * time.Millisecond
	DefaultTD1 = 1 * time.Second
)

// MaxTimeout is the largest accepted budget. A zero budget disables supervision of that transition.
const MaxTimeout = 999 * time.Second

var defaultTimeouts = [timeoutCount]time.Duration{
	TA1: DefaultTA1, TA2: DefaultTA2, TA3: DefaultTA3,
	TP1: DefaultTP1, TP2: DefaultTP2, TP3: DefaultTP3, TP4: DefaultTP4, TP5: DefaultTP5, TP6: DefaultTP6,
	TD0: DefaultTD0, TD1: DefaultTD1,
}

// TimeoutValues holds the configured duration of every E84 budget.
//
// It is a plain value; copy it freely.
type TimeoutValues struct {
	values [timeoutCount]time.Duration
}

// TimeoutOption is a functional option for configuring TimeoutValues.
type TimeoutOption interface {
	apply(*TimeoutValues) error
}

type timeoutOptFunc func(*TimeoutValues) error

func (f timeoutOptFunc) apply(v *TimeoutValues) error { return f(v) }

// WithTimeout sets the duration of a single budget.
func WithTimeout(id TimeoutID, d time.Duration) TimeoutOption {
	return timeoutOptFunc(func(v *TimeoutValues) error {
		return v.Set(id, d)
	})
}

// WithTimeouts sets several budgets at once.
func WithTimeouts(values map[TimeoutID]time.Duration) TimeoutOption {
	return timeoutOptFunc(func(v *TimeoutValues) error {
		for id, d := range values {
			if err := v.Set(id, d); err != nil {
				return err
			}
		}
		return nil
	})
}

// DefaultTimeoutValues returns the default budgets.
func DefaultTimeoutValues() TimeoutValues {
	return TimeoutValues{values: defaultTimeouts}
}

// NewTimeoutValues returns the default budgets with the given options applied in order.
func NewTimeoutValues(opts ...TimeoutOption) (TimeoutValues, error) {
	v := DefaultTimeoutValues()
	for _, opt := range opts {
		if err := opt.apply(&v); err != nil {
			return TimeoutValues{}, err
		}
	}

	return v, nil
}

// Get returns the duration of the budget, or 0 for an unknown id.
func (v TimeoutValues) Get(id TimeoutID) time.Duration {
	if !id.IsValid() {
		return 0
	}

	return v.values[id]
}

// Set changes the duration of a budget after validating it.
func (v *TimeoutValues) Set(id TimeoutID, d time.Duration) error {
	if err := validateTimeout(id, d); err != nil {
		return err
	}
	v.values[id] = d

	return nil
}

func validateTimeout(id TimeoutID, d time.Duration) error {
	if !id.IsValid() {
		return fmt.Errorf("e84: %w: %s", ErrUnknownTimeout, id)
	}
	if d < 0 || d > MaxTimeout {
		return fmt.Errorf("e84: %w: %s=%s, should be in range of [0, %s]", ErrTimeoutOutOfRange, id, d, MaxTimeout)
	}

	return nil
}

// timeoutFile mirrors the YAML layout of a timeout configuration file.
type timeoutFile struct {
	Timeouts map[string]any `yaml:"timeouts"`
}

// ParseTimeoutValues parses a YAML document into TimeoutValues.
//
// Budgets missing from the document keep their defaults. Each value is either a Go
// duration string ("1500ms", "2s") or a number of seconds (2, 0.1).
func ParseTimeoutValues(data []byte) (TimeoutValues, error) {
	var file timeoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return TimeoutValues{}, fmt.Errorf("e84: parse timeout values: %w", err)
	}

	v := DefaultTimeoutValues()
	for name, raw := range file.Timeouts {
		id, err := ParseTimeoutID(name)
		if err != nil {
			return TimeoutValues{}, err
		}
		d, err := toDuration(raw)
		if err != nil {
			return TimeoutValues{}, fmt.Errorf("e84: %s: %w", id, err)
		}
		if err := v.Set(id, d); err != nil {
			return TimeoutValues{}, err
		}
	}

	return v, nil
}

// LoadTimeoutValues reads and parses a YAML timeout configuration file.
func LoadTimeoutValues(path string) (TimeoutValues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TimeoutValues{}, fmt.Errorf("e84: read timeout values: %w", err)
	}

	return ParseTimeoutValues(data)
}

// MarshalYAML encodes the budgets in declaration order as duration strings.
func (v TimeoutValues) MarshalYAML() ([]byte, error) {
	items := make(yaml.MapSlice, 0, timeoutCount)
	for _, id := range AllTimeouts() {
		items = append(items, yaml.MapItem{Key: id.String(), Value: v.values[id].String()})
	}

	return yaml.Marshal(yaml.MapSlice{{Key: "timeouts", Value: items}})
}

func toDuration(raw any) (time.Duration, error) {
	switch val := raw.(type) {
	case string:
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, errors.Join(ErrInvalidTimeoutValue, err)
		}
		return d, nil
	case uint64:
		return secondsToDuration(float64(val))
	case int64:
		return secondsToDuration(float64(val))
	case int:
		return secondsToDuration(float64(val))
	case float64:
		return secondsToDuration(val)
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeoutValue, raw)
	}
}

func secondsToDuration(sec float64) (time.Duration, error) {
	if math.IsNaN(sec) || math.IsInf(sec, 0) || math.Abs(sec) > float64(math.MaxInt64/int64(time.Second)) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeoutValue, sec)
	}

	return time.Duration(math.Round(sec * float64(time.Second))), nil
}
