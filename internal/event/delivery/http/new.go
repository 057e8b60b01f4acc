package http

import (
	"github.com/gin-gonic/gin"

	"crashvault/internal/event"
	"crashvault/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc event.UseCase
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
