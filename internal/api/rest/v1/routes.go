package v1

import (
	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1. m may be nil to disable /metrics.
func SetupRoutes(r *gin.Engine,
	keyService toyrsa.KeyService,
	encryptionService toyrsa.EncryptionService,
	decryptionService toyrsa.DecryptionService,
	artifactService artifacts.ArtifactService,
	m *metrics.Metrics) {

	v1 := r.Group(BasePath)
	if m != nil {
		v1.Use(MetricsMiddleware(m))
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	toyRSAHandler := NewToyRSAHandler(keyService, encryptionService, decryptionService)
	v1.POST("/keys", toyRSAHandler.DeriveKeys)
	v1.POST("/encrypt", toyRSAHandler.Encrypt)
	v1.POST("/decrypt", toyRSAHandler.Decrypt)

	artifactHandler := NewArtifactHandler(artifactService)
	v1.GET("/artifacts", artifactHandler.ListMetadata)
	v1.GET("/artifacts/:id", artifactHandler.GetMetadataByID)
	v1.DELETE("/artifacts/:id", artifactHandler.DeleteByID)
}
