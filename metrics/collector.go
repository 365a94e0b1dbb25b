// FILE: lixenwraith/tlog/metrics/collector.go
// Package metrics exports logger counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/tlog"
)

// StatsSource is anything that can report logger statistics; *tlog.Logger satisfies it
type StatsSource interface {
	Stats() tlog.Stats
}

var _ prometheus.Collector = (*Collector)(nil)

// Collector reads a fresh Stats snapshot on every scrape
type Collector struct {
	source StatsSource

	enqueued     *prometheus.Desc
	written      *prometheus.Desc
	writeErrors  *prometheus.Desc
	flushErrors  *prometheus.Desc
	dropped      *prometheus.Desc
	drains       *prometheus.Desc
	rotations    *prometheus.Desc
	rotateErrors *prometheus.Desc
	suppressed   *prometheus.Desc
	lastBacklog  *prometheus.Desc
	currentWait  *prometheus.Desc
	queueLength  *prometheus.Desc
	workerState  *prometheus.Desc
	uptime       *prometheus.Desc
}

// NewCollector creates a collector for source. Metric names are prefixed
// with namespace (default "tlog"); constLabels distinguish several loggers
// in one registry.
func NewCollector(source StatsSource, namespace string, constLabels prometheus.Labels) *Collector {
	if namespace == "" {
		namespace = "tlog"
	}
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, labels, constLabels)
	}

	return &Collector{
		source:       source,
		enqueued:     desc("enqueued_total", "Lines accepted into the queue."),
		written:      desc("written_total", "Lines accepted by the sink."),
		writeErrors:  desc("write_errors_total", "Lines the sink rejected."),
		flushErrors:  desc("flush_errors_total", "Failed sink flushes."),
		dropped:      desc("dropped_total", "Lines rejected after shutdown."),
		drains:       desc("drains_total", "Completed drain passes."),
		rotations:    desc("rotations_total", "Successful sink rotations."),
		rotateErrors: desc("rotate_errors_total", "Failed sink rotations."),
		suppressed:   desc("suppressed_reports_total", "Internal error reports dropped by the rate limit."),
		lastBacklog:  desc("last_backlog", "Lines drained by the latest pass."),
		currentWait:  desc("current_wait_seconds", "Wait chosen by the timeout policy after the latest pass."),
		queueLength:  desc("queue_length", "Lines currently queued."),
		workerState:  desc("worker_state", "1 for the current worker state.", "state"),
		uptime:       desc("uptime_seconds", "Time since the logger started."),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		c.enqueued, c.written, c.writeErrors, c.flushErrors, c.dropped, c.drains,
		c.rotations, c.rotateErrors, c.suppressed,
		c.lastBacklog, c.currentWait, c.queueLength, c.workerState, c.uptime,
	} {
		ch <- d
	}
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()

	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	gauge := func(d *prometheus.Desc, v float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v, labels...)
	}

	counter(c.enqueued, s.Enqueued)
	counter(c.written, s.Written)
	counter(c.writeErrors, s.WriteErrors)
	counter(c.flushErrors, s.FlushErrors)
	counter(c.dropped, s.Dropped)
	counter(c.drains, s.Drains)
	counter(c.rotations, s.Rotations)
	counter(c.rotateErrors, s.RotateErrors)
	counter(c.suppressed, s.Suppressed)

	gauge(c.lastBacklog, float64(s.LastBacklog))
	gauge(c.currentWait, s.CurrentWait.Seconds())
	gauge(c.queueLength, float64(s.QueueLength))
	gauge(c.uptime, s.Uptime.Seconds())

	for _, st := range []tlog.WorkerState{tlog.WorkerDraining, tlog.WorkerIdle, tlog.WorkerExiting, tlog.WorkerStopped} {
		v := 0.0
		if st == s.State {
			v = 1
		}
		gauge(c.workerState, v, st.String())
	}
}
