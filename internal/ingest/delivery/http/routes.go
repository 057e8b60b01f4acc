package http

import (
	"github.com/gin-gonic/gin"

	"crashvault/internal/middleware"
)

// RegisterRoutes registers the ingestion endpoints on the engine
// directly: the legacy aliases do not share one prefix, so a router
// group cannot carry them.
func RegisterRoutes(r *gin.Engine, h *handler, mw middleware.Middleware) {
	timed := mw.Timing()

	r.POST("/api/v1/events", timed, h.Submit)
	r.POST("/api/v1/errors", timed, h.Submit)
	r.POST("/api/events", timed, h.Submit)
	r.POST("/api/v1/batch", timed, h.SubmitBatch)
	r.GET("/api/v1/stats", timed, h.Stats)
}
