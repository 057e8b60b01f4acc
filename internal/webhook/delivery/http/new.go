package http

import (
	"github.com/gin-gonic/gin"

	"crashvault/internal/webhook"
	"crashvault/pkg/log"
)

// Handler is the public interface for the webhook HTTP delivery layer.
type Handler interface {
	Add(c *gin.Context)
	List(c *gin.Context)
	Remove(c *gin.Context)
	Toggle(c *gin.Context)
	Test(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc webhook.UseCase
}

// New creates a new HTTP handler for the webhook domain.
func New(l log.Logger, uc webhook.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
