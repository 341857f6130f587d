package e84

import (
	"sync/atomic"
)

// WatchdogMetrics contains atomic metrics for a watchdog.
// NewCollector exposes them to prometheus.
type WatchdogMetrics struct {
	// ArmCount indicates the number of budgets armed.
	ArmCount atomic.Uint64
	// DisarmCount indicates the number of armed budgets disarmed.
	DisarmCount atomic.Uint64
	// PollCount indicates the number of Poll calls.
	PollCount atomic.Uint64
	// AlarmCount indicates the number of alarms raised.
	AlarmCount atomic.Uint64
	// ArmedGauge indicates the number of budgets currently armed.
	ArmedGauge atomic.Int64
}

func (m *WatchdogMetrics) incArmCount() {
	m.ArmCount.Add(1)
}

func (m *WatchdogMetrics) incDisarmCount() {
	m.DisarmCount.Add(1)
}

func (m *WatchdogMetrics) incPollCount() {
	m.PollCount.Add(1)
}

func (m *WatchdogMetrics) incAlarmCount() {
	m.AlarmCount.Add(1)
}

func (m *WatchdogMetrics) incArmedGauge() {
	m.ArmedGauge.Add(1)
}

func (m *WatchdogMetrics) decArmedGauge() {
	m.ArmedGauge.Add(-1)
}
