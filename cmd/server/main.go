package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"crashvault/config"
	_ "crashvault/docs" // Swagger docs
	eventFS "crashvault/internal/event/repository/vaultfs"
	eventUC "crashvault/internal/event/usecase"
	"crashvault/internal/httpserver"
	ingestUC "crashvault/internal/ingest/usecase"
	issueFS "crashvault/internal/issue/repository/vaultfs"
	issueUC "crashvault/internal/issue/usecase"
	"crashvault/internal/retention"
	"crashvault/internal/stream"
	"crashvault/internal/vault"
	webhookFS "crashvault/internal/webhook/repository/vaultfs"
	webhookUC "crashvault/internal/webhook/usecase"
	"crashvault/pkg/log"
)

// @title       CrashVault API
// @description Local-first error tracking: file-backed event vault with issue dedup and webhook fan-out.
// @version     1
// @host        localhost:5678
// @schemes     http
func main() {
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting CrashVault...")
	logger.Infof(ctx, "Vault root: %s", cfg.Vault.Root)

	// 3. Vault storage
	v := vault.New(cfg.Vault.Root)
	if err := v.EnsureDirs(); err != nil {
		logger.Error(ctx, "Failed to prepare vault: ", err)
		return
	}

	// 4. Domain use cases. Built once here: the issue index and the
	// subscription config serialize mutations in-process, so the API
	// and the background workers must share these instances.
	events := eventUC.New(eventFS.New(v, logger), logger)
	issues := issueUC.New(issueFS.New(v, logger), events, logger)
	webhooks := webhookUC.New(webhookFS.New(v, logger), logger)
	ingest := ingestUC.New(issues, events, webhooks, logger)

	// 5. Live feed: hub plus the vault watcher that feeds it
	hub := stream.NewHub(logger)
	go hub.Run(ctx)

	watcher := stream.NewWatcher(v, hub, logger)
	go func() {
		if wErr := watcher.Run(ctx); wErr != nil {
			logger.Errorf(ctx, "Stream watcher stopped: %v", wErr)
		}
	}()

	// 6. Retention sweeper
	sweeper := retention.New(retention.Config{
		Enabled:    cfg.Retention.Enabled,
		Schedule:   cfg.Retention.Schedule,
		MaxAgeDays: cfg.Retention.MaxAgeDays,
	}, events, logger)
	go func() {
		if sErr := sweeper.Run(ctx); sErr != nil {
			logger.Errorf(ctx, "Retention sweeper stopped: %v", sErr)
		}
	}()

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Vault:        v,
		Issues:       issues,
		Events:       events,
		Webhooks:     webhooks,
		Ingest:       ingest,
		Hub:          hub,
		MaxBodyBytes: cfg.Ingest.MaxBodyBytes,
		RatePerMin:   cfg.Ingest.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
