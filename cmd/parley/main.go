// Parley server — synthesizes expert panels, runs multi-agent
// discussions, and serves their state over HTTP and WebSocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/parleyhq/parley/pkg/api"
	"github.com/parleyhq/parley/pkg/cleanup"
	"github.com/parleyhq/parley/pkg/config"
	"github.com/parleyhq/parley/pkg/consensus"
	"github.com/parleyhq/parley/pkg/database"
	"github.com/parleyhq/parley/pkg/events"
	"github.com/parleyhq/parley/pkg/gateway"
	"github.com/parleyhq/parley/pkg/orchestrator"
	"github.com/parleyhq/parley/pkg/roles"
	"github.com/parleyhq/parley/pkg/services"
	"github.com/parleyhq/parley/pkg/version"
)

const (
	httpDrainTimeout     = 10 * time.Second
	engineGraceTimeout   = 15 * time.Second
	orphanRecoverTimeout = 30 * time.Second
)

func main() {
	configPath := flag.String("config", "", "Path to parley.yaml (default: $PARLEY_CONFIG, then ./parley.yaml)")
	flag.Parse()

	// .env is optional; a missing file is normal in containers.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	cfg, err := config.Initialize(*configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})))
	slog.Info("Starting parley", "version", version.Full(), "http_port", cfg.Server.HTTPPort)

	ctx := context.Background()

	// Database is optional: DB_DISABLED=true runs the engine registry-only.
	var (
		dbClient          *database.Client
		discussionService *services.DiscussionService
		store             orchestrator.Store
		perfReader        api.PerformanceReader
	)
	if cfg.DBDisabled {
		slog.Warn("Database disabled, discussions will not be persisted")
	} else {
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			slog.Error("Failed to load database config", "error", err)
			os.Exit(1)
		}
		dbClient, err = database.NewClient(ctx, dbConfig)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		slog.Info("Connected to PostgreSQL database")

		discussionService = services.NewDiscussionService(dbClient.Client)
		store = discussionService
		perfReader = discussionService

		// Rows still 'active' belong to a previous process; their loops
		// are gone and will never resume.
		recoverCtx, cancel := context.WithTimeout(ctx, orphanRecoverTimeout)
		if _, err := discussionService.RecoverOrphans(recoverCtx); err != nil {
			slog.Error("Failed to recover orphaned discussions", "error", err)
		}
		cancel()
	}

	gw := gateway.NewHTTPClient(gateway.Config{
		APIKey:       cfg.LLM.APIKey,
		BaseURL:      cfg.LLM.BaseURL,
		Timeout:      cfg.Discussion.PerCallTimeout(),
		Referrer:     cfg.LLM.Referrer,
		AppName:      cfg.LLM.AppName,
		ModelAliases: cfg.LLM.ModelAliases,
	})
	synthesizer := roles.NewSynthesizer(gw, cfg.LLM.MetaModelID, cfg.LLM.DefaultPanelModelIDs)
	evaluator := consensus.NewEvaluator(gw, cfg.LLM.MetaModelID, cfg.Discussion.ConsensusThreshold)
	bus := events.NewBus(cfg.Discussion.SubscriberQueueBound)

	engine := orchestrator.New(orchestrator.Config{
		MetaModelID:        cfg.LLM.MetaModelID,
		DefaultMaxTurns:    cfg.Discussion.MaxTurns,
		PerCallTimeout:     cfg.Discussion.PerCallTimeout(),
		SpeakerPickTimeout: cfg.Discussion.SpeakerPickTimeout(),
	}, gw, synthesizer, evaluator, bus, store)

	var retention *cleanup.Service
	if discussionService != nil {
		retention = cleanup.NewService(cfg.Retention, discussionService)
		retention.Start(ctx)
		defer retention.Stop()
	}

	apiServer := api.NewServer(engine, perfReader, dbClient, cfg.Server.AllowedWSOrigins, cfg.LLM)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: apiServer.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("HTTP server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: drain HTTP first so no new discussions arrive,
	// then give running loops a grace window, then end all event streams.
	drainCtx, drainCancel := context.WithTimeout(ctx, httpDrainTimeout)
	if err := httpServer.Shutdown(drainCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	drainCancel()

	engineCtx, engineCancel := context.WithTimeout(ctx, engineGraceTimeout)
	if err := engine.Shutdown(engineCtx); err != nil {
		slog.Warn("Engine shutdown incomplete", "error", err)
	}
	engineCancel()

	slog.Info("Shutdown complete")
}
