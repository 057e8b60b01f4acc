package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	issueHTTP "crashvault/internal/issue/delivery/http"
)

// setupIssueDomain initializes the issue domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, srv.mydomainUC)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
//
// Use cases come in through Config so the dispatcher and sweeper work
// against the same instances as the API.
func (srv HTTPServer) setupIssueDomain(ctx context.Context, api *gin.RouterGroup) error {
	if srv.issues == nil {
		srv.l.Infof(ctx, "Issue use case not configured, skipping issue routes")
		return nil
	}

	// 1. HTTP Handler
	h := issueHTTP.New(srv.l, srv.issues, srv.events)

	// 2. Routes: registers /api/v1/issues
	issueHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Issue domain registered")
	return nil
}
