package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	issues := rg.Group("/issues")
	{
		issues.GET("", h.List)
		issues.GET("/:id", h.Detail)
		issues.PATCH("/:id", h.Update)
		issues.DELETE("/:id", h.Purge)
	}
}
