// Package metrics exposes Prometheus collectors for the secure field
// lifecycle: decryptions, cache hits, expiries, re-encryption writes and
// companion fetches.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultStale    = "stale"
	ResultShared   = "shared"
	ResultTimeout  = "timeout"
	ResultApplied  = "applied"
	ResultRejected = "rejected"
)

// SIFMetrics groups the lifecycle collectors. A nil *SIFMetrics is valid
// and records nothing, so components can be built without metrics.
type SIFMetrics struct {
	decrypts  *prometheus.CounterVec
	cacheHits prometheus.Counter
	expiries  prometheus.Counter
	writes    *prometheus.CounterVec
	fetches   *prometheus.CounterVec
	timers    prometheus.Gauge
}

// NewSIFMetrics creates the collectors and registers them in reg.
// Pass prometheus.NewRegistry() in tests to avoid global state.
func NewSIFMetrics(reg prometheus.Registerer) *SIFMetrics {
	m := &SIFMetrics{
		decrypts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sif",
			Name:      "decrypt_total",
			Help:      "Decrypt outcomes by result (ok, error, stale, shared).",
		}, []string{"result"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sif",
			Name:      "cache_hits_total",
			Help:      "Reads served from the decrypted field cache.",
		}),
		expiries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sif",
			Name:      "expiries_total",
			Help:      "Expiry timers that fired.",
		}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sif",
			Name:      "reencrypt_writes_total",
			Help:      "Re-encryption writes by result (applied, stale, error).",
		}, []string{"result"}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sif",
			Name:      "companion_fetch_total",
			Help:      "Companion fetches by result (ok, error, timeout).",
		}, []string{"result"}),
		timers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sif",
			Name:      "expiry_timers",
			Help:      "Currently armed expiry timers.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.decrypts, m.cacheHits, m.expiries, m.writes, m.fetches, m.timers)
	}
	return m
}

func (m *SIFMetrics) Decrypt(result string) {
	if m == nil {
		return
	}
	m.decrypts.WithLabelValues(result).Inc()
}

func (m *SIFMetrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *SIFMetrics) Expired() {
	if m == nil {
		return
	}
	m.expiries.Inc()
}

func (m *SIFMetrics) Write(result string) {
	if m == nil {
		return
	}
	m.writes.WithLabelValues(result).Inc()
}

func (m *SIFMetrics) Fetch(result string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(result).Inc()
}

// ArmedTimers sets the armed-timer gauge.
func (m *SIFMetrics) ArmedTimers(n int) {
	if m == nil {
		return
	}
	m.timers.Set(float64(n))
}
