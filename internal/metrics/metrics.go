package metrics

import (
	"time"

	"minigrep/internal/search"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	scans    *prometheus.CounterVec
	matches  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		scans: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minigrep",
			Name:      "scans_total",
			Help:      "Completed file scans by matching mode.",
		}, []string{"mode"}),
		matches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minigrep",
			Name:      "matched_lines_total",
			Help:      "Lines reported as matches by matching mode.",
		}, []string{"mode"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minigrep",
			Name:      "failures_total",
			Help:      "Searches that failed before scanning, by error kind.",
		}, []string{"kind"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "minigrep",
			Name:      "scan_duration_seconds",
			Help:      "Time spent scanning file content in memory.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"mode"}),
	}
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (m *Metrics) ObserveScan(mode search.Mode, matched int, took time.Duration) {
	m.scans.WithLabelValues(mode.String()).Inc()
	m.matches.WithLabelValues(mode.String()).Add(float64(matched))
	m.duration.WithLabelValues(mode.String()).Observe(took.Seconds())
}

func (m *Metrics) ObserveFailure(kind string) {
	m.failures.WithLabelValues(kind).Inc()
}
