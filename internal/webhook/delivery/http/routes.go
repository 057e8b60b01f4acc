package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	hooks := rg.Group("/webhooks")
	{
		hooks.GET("", h.List)
		hooks.POST("", h.Add)
		hooks.DELETE("/:id", h.Remove)
		hooks.PATCH("/:id", h.Toggle)
		hooks.POST("/:id/test", h.Test)
	}
}
