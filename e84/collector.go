package e84

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports WatchdogMetrics as prometheus metrics.
type Collector struct {
	metrics *WatchdogMetrics

	armTotal    *prometheus.Desc
	disarmTotal *prometheus.Desc
	pollTotal   *prometheus.Desc
	alarmTotal  *prometheus.Desc
	armed       *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for the metrics of w. constLabels, e.g. the load
// port number, are attached to every exported metric.
func NewCollector(w *Watchdog, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("e84", "watchdog", name), help, nil, constLabels)
	}

	return &Collector{
		metrics:     w.Metrics(),
		armTotal:    desc("arms_total", "Number of E84 budgets armed."),
		disarmTotal: desc("disarms_total", "Number of armed E84 budgets disarmed."),
		pollTotal:   desc("polls_total", "Number of watchdog polls."),
		alarmTotal:  desc("alarms_total", "Number of E84 timeout alarms raised."),
		armed:       desc("armed", "Number of E84 budgets currently armed."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.armTotal
	ch <- c.disarmTotal
	ch <- c.pollTotal
	ch <- c.alarmTotal
	ch <- c.armed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.armTotal, prometheus.CounterValue, float64(c.metrics.ArmCount.Load()))
	ch <- prometheus.MustNewConstMetric(c.disarmTotal, prometheus.CounterValue, float64(c.metrics.DisarmCount.Load()))
	ch <- prometheus.MustNewConstMetric(c.pollTotal, prometheus.CounterValue, float64(c.metrics.PollCount.Load()))
	ch <- prometheus.MustNewConstMetric(c.alarmTotal, prometheus.CounterValue, float64(c.metrics.AlarmCount.Load()))
	ch <- prometheus.MustNewConstMetric(c.armed, prometheus.GaugeValue, float64(c.metrics.ArmedGauge.Load()))
}
