package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSIFMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSIFMetrics(reg)

	m.Decrypt(ResultOK)
	m.Decrypt(ResultOK)
	m.Decrypt(ResultShared)
	m.CacheHit()
	m.Expired()
	m.Write(ResultStale)
	m.Fetch(ResultTimeout)
	m.ArmedTimers(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.decrypts.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decrypts.WithLabelValues(ResultShared)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.expiries))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.writes.WithLabelValues(ResultStale)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetches.WithLabelValues(ResultTimeout)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.timers))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestSIFMetrics_NilIsNoop(t *testing.T) {
	var m *SIFMetrics
	assert.NotPanics(t, func() {
		m.Decrypt(ResultOK)
		m.CacheHit()
		m.Expired()
		m.Write(ResultApplied)
		m.Fetch(ResultError)
		m.ArmedTimers(1)
	})
}
