// Package metrics holds the Prometheus instruments of a bib2lod run. Each
// Metrics value owns a private registry, so runs and tests never share
// counters.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bib2lod"

// File outcomes.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Metrics are the run instruments.
type Metrics struct {
	Registry *prometheus.Registry

	// Files counts processed files. Labels: action, status.
	Files *prometheus.CounterVec
	// TriplesRead counts statements parsed. Labels: action.
	TriplesRead *prometheus.CounterVec
	// TriplesWritten counts statements serialized. Labels: action.
	TriplesWritten *prometheus.CounterVec
	// ResourcesConverted counts converted resources. Labels: type.
	ResourcesConverted *prometheus.CounterVec
	// ResourcesDeduped counts resources merged into another. Labels: type.
	ResourcesDeduped *prometheus.CounterVec
	// ActionDuration measures whole actions. Labels: action.
	ActionDuration *prometheus.HistogramVec
}

// New registers the instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		Files: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_total",
			Help:      "Files processed by action and outcome",
		}, []string{"action", "status"}),
		TriplesRead: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "triples_read_total",
			Help:      "Statements read by action",
		}, []string{"action"}),
		TriplesWritten: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "triples_written_total",
			Help:      "Statements written by action",
		}, []string{"action"}),
		ResourcesConverted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resources_converted_total",
			Help:      "Resources converted by Bibframe type",
		}, []string{"type"}),
		ResourcesDeduped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resources_deduped_total",
			Help:      "Resources replaced by a canonical resource, by type",
		}, []string{"type"}),
		ActionDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "Wall time of each action",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900, 3600},
		}, []string{"action"}),
	}
}

// RecordFile counts one file of action with its outcome and statement counts.
func (m *Metrics) RecordFile(action, status string, read, written int) {
	m.Files.WithLabelValues(action, status).Inc()
	m.TriplesRead.WithLabelValues(action).Add(float64(read))
	m.TriplesWritten.WithLabelValues(action).Add(float64(written))
}

// RecordConverted adds per-type conversion counts.
func (m *Metrics) RecordConverted(counts map[string]int) {
	for typ, n := range counts {
		m.ResourcesConverted.WithLabelValues(typ).Add(float64(n))
	}
}

// RecordDeduped adds per-type dedupe counts.
func (m *Metrics) RecordDeduped(counts map[string]int) {
	for typ, n := range counts {
		m.ResourcesDeduped.WithLabelValues(typ).Add(float64(n))
	}
}

// ObserveAction records how long action took since start.
func (m *Metrics) ObserveAction(action string, start time.Time) {
	m.ActionDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
}

// WriteTextfile writes the registry in the Prometheus text format, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
