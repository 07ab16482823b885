package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.IncRegistration("lot", "created")
	m.IncRegistration("lot", "created")
	m.IncCompleteness(true)
	m.IncCompleteness(false)
	m.ObserveSnapshot(3 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Registrations.WithLabelValues("lot", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Completeness.WithLabelValues("true")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SnapshotLatency))
}

func TestNilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncRegistration("lot", "failed")
		m.IncCompleteness(true)
		m.ObserveSnapshot(time.Second)
	})
}
