// Package metrics exposes prometheus counters for key derivation, per-unit
// transforms and HTTP traffic. A nil *Metrics records nothing.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Key derivation results
const (
	DerivationHit   = "hit"
	DerivationMiss  = "miss"
	DerivationError = "error"
)

// Metrics holds the collectors registered on one registry
type Metrics struct {
	registry *prometheus.Registry

	unitsTotal          *prometheus.CounterVec
	keyDerivationsTotal *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		unitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toyrsa",
			Name:      "units_total",
			Help:      "Code units encrypted or decrypted",
		}, []string{"operation"}),
		keyDerivationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toyrsa",
			Name:      "key_derivations_total",
			Help:      "Key derivation requests by cache result",
		}, []string{"strategy", "result"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toyrsa",
			Name:      "http_requests_total",
			Help:      "HTTP requests processed",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "toyrsa",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	for _, c := range []prometheus.Collector{
		m.unitsTotal,
		m.keyDerivationsTotal,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		collectors.NewGoCollector(),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return m, nil
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// AddUnits counts n code units for operation.
func (m *Metrics) AddUnits(operation string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.unitsTotal.WithLabelValues(operation).Add(float64(n))
}

// KeyDerivation counts one key derivation lookup.
func (m *Metrics) KeyDerivation(strategy, result string) {
	if m == nil {
		return
	}
	m.keyDerivationsTotal.WithLabelValues(strategy, result).Inc()
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
