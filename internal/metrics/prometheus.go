// Package metrics holds the prometheus collectors for a generation run:
// per-stage duration and a count of completed worlds, so an operator can
// chart how generation time scales with grid size and plate count.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all the prometheus collectors for the generator.
type Metrics struct {
	StageDuration   *prometheus.HistogramVec
	WorldsGenerated *prometheus.CounterVec
	ActiveRuns      prometheus.Gauge
}

// NewMetrics initializes and returns a new Metrics struct.
func NewMetrics() *Metrics {
	return &Metrics{
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "worldgen_stage_duration_seconds",
			Help:    "Duration of each generation stage in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		}, []string{"stage"}),
		WorldsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worldgen_worlds_generated_total",
			Help: "Total number of worlds generated, by completed generation level",
		}, []string{"level"}),
		ActiveRuns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "worldgen_active_runs",
			Help: "Number of generation runs currently in progress",
		}),
	}
}

// Register registers all metrics with the provided registry.
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.StageDuration, m.WorldsGenerated, m.ActiveRuns)
}

// StageTimer starts timing a named stage and returns a func that records
// its observed duration. A nil *Metrics (the default when no metrics are
// wired in) makes the returned func a no-op.
func (m *Metrics) StageTimer(stage string) func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}
}
