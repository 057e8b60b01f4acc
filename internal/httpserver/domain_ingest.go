package httpserver

import (
	"context"

	ingestHTTP "crashvault/internal/ingest/delivery/http"
)

// setupIngestDomain wires the ingestion endpoints. They register on the
// engine rather than the /api/v1 group because the legacy aliases live
// outside that prefix.
func (srv HTTPServer) setupIngestDomain(ctx context.Context) error {
	if srv.ingest == nil {
		srv.l.Infof(ctx, "Ingest use case not configured, skipping ingestion routes")
		return nil
	}

	h := ingestHTTP.New(srv.l, srv.ingest)
	ingestHTTP.RegisterRoutes(srv.gin, h, srv.mw)

	srv.l.Infof(ctx, "Ingest domain registered")
	return nil
}
