package http

import (
	"github.com/gin-gonic/gin"

	"crashvault/internal/event"
	"crashvault/internal/issue"
	"crashvault/pkg/log"
)

// Handler is the public interface for the issue HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Purge(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      issue.UseCase
	eventUC event.UseCase
}

// New creates a new HTTP handler for the issue domain. The event
// usecase supplies the issue's events on the detail view.
func New(l log.Logger, uc issue.UseCase, eventUC event.UseCase) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		eventUC: eventUC,
	}
}
