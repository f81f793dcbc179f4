//go:build unit
// +build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.AddUnits("encryption", 5)
	m.AddUnits("encryption", 0)
	m.KeyDerivation("fixed", DerivationMiss)
	m.KeyDerivation("fixed", DerivationHit)
	m.KeyDerivation("fixed", DerivationHit)
	m.ObserveRequest(http.MethodPost, "/api/v1/toyrsa/encrypt", http.StatusCreated, 5*time.Millisecond)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.unitsTotal.WithLabelValues("encryption")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.keyDerivationsTotal.WithLabelValues("fixed", DerivationHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/toyrsa/encrypt", "201")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.AddUnits("decryption", 3)
		m.KeyDerivation("coprime", DerivationError)
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	m.AddUnits("decryption", 2)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `toyrsa_units_total{operation="decryption"} 2`)
}
