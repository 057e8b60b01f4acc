package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"crashvault/internal/metrics"
)

// Timing feeds the ingestion latency histogram, labeled by route
// pattern. Registered on the ingestion routes only.
func (m Middleware) Timing() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveIngestDuration(c.FullPath(), time.Since(start))
	}
}
