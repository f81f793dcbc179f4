package v1

import (
	"time"

	"github.com/MGTheTrain/toy-rsa/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records every request under its route template
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(ctx.Request.Method, path, ctx.Writer.Status(), time.Since(start))
	}
}
