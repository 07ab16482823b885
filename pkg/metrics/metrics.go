package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for registrations and traceability lookups.
type Metrics struct {
	// Registration attempts by entity and outcome (created, rejected, failed)
	Registrations *prometheus.CounterVec

	// Completeness verdicts computed for snapshots
	Completeness *prometheus.CounterVec

	SnapshotLatency prometheus.Histogram
}

// New registers the metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Registrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "traza_registrations_total",
			Help: "Registration attempts by entity and outcome",
		}, []string{"entity", "outcome"}),

		Completeness: f.NewCounterVec(prometheus.CounterOpts{
			Name: "traza_completeness_total",
			Help: "Traceability completeness verdicts",
		}, []string{"complete"}),

		SnapshotLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "traza_snapshot_duration_seconds",
			Help:    "Duration of traceability snapshot assembly",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncRegistration(entity, outcome string) {
	if m != nil {
		m.Registrations.WithLabelValues(entity, outcome).Inc()
	}
}

func (m *Metrics) IncCompleteness(complete bool) {
	if m != nil {
		label := "false"
		if complete {
			label = "true"
		}
		m.Completeness.WithLabelValues(label).Inc()
	}
}

func (m *Metrics) ObserveSnapshot(d time.Duration) {
	if m != nil {
		m.SnapshotLatency.Observe(d.Seconds())
	}
}
