package http

import (
	"github.com/gin-gonic/gin"

	"crashvault/internal/ingest"
	"crashvault/pkg/log"
)

// Handler is the public interface for the ingestion HTTP delivery layer.
type Handler interface {
	Submit(c *gin.Context)
	SubmitBatch(c *gin.Context)
	Stats(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc ingest.UseCase
}

// New creates a new HTTP handler for the ingestion API.
func New(l log.Logger, uc ingest.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
