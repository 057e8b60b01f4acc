package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "crashvault/internal/event/delivery/http"
)

// setupEventDomain initializes the event domain and registers its routes.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup) error {
	if srv.events == nil {
		srv.l.Infof(ctx, "Event use case not configured, skipping event routes")
		return nil
	}

	h := eventHTTP.New(srv.l, srv.events)
	eventHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
