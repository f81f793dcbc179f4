//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	keyService := new(MockKeyService)
	encryptionService := new(MockEncryptionService)
	decryptionService := new(MockDecryptionService)
	artifactService := new(MockArtifactService)

	keyService.On("Derive", mock.Anything, mock.Anything).Return(toyrsa.NewKeyState(61, 53, 17, 2753), nil)
	encryptionService.On("EncryptText", mock.Anything, mock.Anything, mock.Anything).
		Return(&toyrsa.EncryptionResult{Ciphertext: "2790"}, nil)
	decryptionService.On("DecryptText", mock.Anything, mock.Anything, mock.Anything).
		Return(&toyrsa.DecryptionResult{Plaintext: []byte("A")}, nil)
	artifactService.On("List", mock.Anything, mock.Anything).Return([]*artifacts.ArtifactMeta{}, nil)
	artifactService.On("GetByID", mock.Anything, mock.Anything).Return(&artifacts.ArtifactMeta{ID: "x"}, nil)
	artifactService.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)

	m, err := metrics.New()
	require.NoError(t, err)

	r := gin.New()
	SetupRoutes(r, keyService, encryptionService, decryptionService, artifactService, m)

	tests := []struct {
		method string
		url    string
		body   string
		status int
	}{
		{http.MethodPost, "/api/v1/toyrsa/keys", `{}`, http.StatusOK},
		{http.MethodPost, "/api/v1/toyrsa/encrypt", `{"text": "A"}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/toyrsa/decrypt", `{"ciphertext": "2790"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/toyrsa/artifacts", "", http.StatusOK},
		{http.MethodGet, "/api/v1/toyrsa/artifacts/x", "", http.StatusOK},
		{http.MethodDelete, "/api/v1/toyrsa/artifacts/x", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}

	t.Run("Metrics", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `toyrsa_http_requests_total{method="POST",path="/api/v1/toyrsa/encrypt",status="201"} 1`)
	})
}

func TestSetupRoutes_WithoutMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, new(MockKeyService), new(MockEncryptionService), new(MockDecryptionService), new(MockArtifactService), nil)

	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
