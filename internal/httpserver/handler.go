package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.CORS())
	srv.gin.Use(srv.mw.BodyLimit())
	srv.gin.Use(srv.mw.RateLimit())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/api/health", srv.healthCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	srv.gin.NoRoute(srv.notFound)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	if err := srv.setupIngestDomain(ctx); err != nil {
		return err
	}
	if err := srv.setupIssueDomain(ctx, api); err != nil {
		return err
	}
	if err := srv.setupEventDomain(ctx, api); err != nil {
		return err
	}
	if err := srv.setupWebhookDomain(ctx, api); err != nil {
		return err
	}

	// Live feed
	if srv.hub != nil {
		api.GET("/stream", srv.hub.ServeWS)
		srv.l.Infof(ctx, "Live event feed registered at GET /api/v1/stream")
	} else {
		srv.l.Infof(ctx, "Stream hub not configured, skipping live feed route")
	}

	return nil
}
