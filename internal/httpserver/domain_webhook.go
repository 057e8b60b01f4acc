package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	webhookHTTP "crashvault/internal/webhook/delivery/http"
)

// setupWebhookDomain initializes the webhook domain and registers its routes.
func (srv HTTPServer) setupWebhookDomain(ctx context.Context, api *gin.RouterGroup) error {
	if srv.webhooks == nil {
		srv.l.Infof(ctx, "Webhook use case not configured, skipping webhook routes")
		return nil
	}

	h := webhookHTTP.New(srv.l, srv.webhooks)
	webhookHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Webhook domain registered")
	return nil
}
