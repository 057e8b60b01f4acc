package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"crashvault/internal/event"
	"crashvault/internal/ingest"
	"crashvault/internal/issue"
	"crashvault/internal/middleware"
	"crashvault/internal/stream"
	"crashvault/internal/vault"
	"crashvault/internal/webhook"
	"crashvault/pkg/log"
)

// defaultMaxBodyBytes caps request bodies when the config leaves it unset.
const defaultMaxBodyBytes = 1 << 20

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin  *gin.Engine
	l    log.Logger
	port int
	mode string

	// Storage
	vault *vault.Vault

	// Domain use cases. The background workers share these instances,
	// so the caller builds them once and hands them in.
	issues   issue.UseCase
	events   event.UseCase
	webhooks webhook.UseCase
	ingest   ingest.UseCase

	// Live feed
	hub *stream.Hub

	mw middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger log.Logger
	Port   int
	Mode   string

	Vault *vault.Vault

	Issues   issue.UseCase
	Events   event.UseCase
	Webhooks webhook.UseCase
	Ingest   ingest.UseCase

	Hub *stream.Hub

	MaxBodyBytes int64
	RatePerMin   int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}

	srv := &HTTPServer{
		l:        logger,
		gin:      gin.New(),
		port:     cfg.Port,
		mode:     cfg.Mode,
		vault:    cfg.Vault,
		issues:   cfg.Issues,
		events:   cfg.Events,
		webhooks: cfg.Webhooks,
		ingest:   cfg.Ingest,
		hub:      cfg.Hub,
		mw:       middleware.New(logger, cfg.MaxBodyBytes, cfg.RatePerMin),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.vault == nil {
		return errors.New("vault is required")
	}
	return nil
}
