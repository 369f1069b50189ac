// Dialectic server: runs reasoning sessions over an HTTP API, streams
// their events over WebSocket, and persists every cycle to PostgreSQL.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dialectic-dev/dialectic/pkg/agent"
	"github.com/dialectic-dev/dialectic/pkg/api"
	"github.com/dialectic-dev/dialectic/pkg/cleanup"
	"github.com/dialectic-dev/dialectic/pkg/config"
	"github.com/dialectic-dev/dialectic/pkg/database"
	"github.com/dialectic-dev/dialectic/pkg/dispatch"
	"github.com/dialectic-dev/dialectic/pkg/embedding"
	"github.com/dialectic-dev/dialectic/pkg/events"
	"github.com/dialectic-dev/dialectic/pkg/registry"
	"github.com/dialectic-dev/dialectic/pkg/runner"
	"github.com/dialectic-dev/dialectic/pkg/scheduler"
	"github.com/dialectic-dev/dialectic/pkg/services"
	"github.com/dialectic-dev/dialectic/pkg/summarize"
	"github.com/dialectic-dev/dialectic/pkg/trajectory"
	"github.com/dialectic-dev/dialectic/pkg/version"
)

func main() {
	configPath := flag.String("config", "dialectic.yaml", "Path to service configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Starting dialectic", "version", version.Full(), "addr", cfg.Server.Addr, "embedder", cfg.Embedder.Mode)

	ctx := context.Background()

	dbClient, err := database.NewClient(ctx, database.FromServiceConfig(cfg.Database))
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

	// Embedding backend. grpc dials lazily; the first embed call connects.
	var embedder embedding.Embedder
	switch cfg.Embedder.Mode {
	case "grpc":
		grpcEmbedder, err := embedding.NewGRPCClient(cfg.Embedder.Addr, cfg.Embedder.Dimension)
		if err != nil {
			slog.Error("Failed to initialize embedding client", "addr", cfg.Embedder.Addr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := grpcEmbedder.Close(); err != nil {
				slog.Error("Error closing embedding client", "error", err)
			}
		}()
		embedder = grpcEmbedder
	default:
		embedder = embedding.NewLocalEmbedder(cfg.Embedder.Dimension)
	}
	cache := embedding.NewCache(embedder)

	// Persistence services.
	blackboardService := services.NewBlackboardService(dbClient.Client)
	contributionService := services.NewContributionService(dbClient.Client)
	trajectoryService := services.NewTrajectoryService(dbClient.Client)
	transitionService := services.NewTransitionService(dbClient.Client)
	summaryService := services.NewSummaryService(dbClient.Client)
	costService := services.NewCostService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// Event fan-out.
	bus := events.NewBus()
	publisher := events.NewPublisher(bus, eventService)
	connManager := events.NewConnectionManager(bus, eventService, 10*time.Second)

	// Retention.
	cleanupService := cleanup.NewService(cfg.Retention, eventService)
	cleanupService.Start(ctx)

	// Engine wiring.
	agents := agent.NewBuiltinRegistry(config.DefaultModelPool)
	trajectoryStore := trajectory.NewStore(cache, trajectoryService)
	runnerDeps := runner.Deps{
		Scheduler:      scheduler.New(nil),
		Dispatcher:     dispatch.New(agents, contributionService),
		Trajectory:     trajectoryStore,
		Publisher:      publisher,
		Blackboards:    blackboardService,
		Contributions:  contributionService,
		Costs:          costService,
		Summarizer:     summarize.NewSummarizer(summaryService, publisher),
		ChangeDetector: summarize.NewChangeDetector(transitionService, publisher),
	}
	sessionRegistry := registry.New(runnerDeps, bus, cfg.SessionDefaults)

	// HTTP server.
	apiServer := api.NewServer(sessionRegistry, api.Services{
		Blackboards:   blackboardService,
		Contributions: contributionService,
		Trajectories:  trajectoryService,
		Transitions:   transitionService,
		Summaries:     summaryService,
	}, dbClient, connManager, cfg.Server.AllowedWSOrigins)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: apiServer.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or server failure.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		slog.Info("Shutting down", "signal", sig.String())
	case err := <-errCh:
		slog.Error("HTTP server error", "error", err)
	}

	// Stop sessions first so their final events flush, then the HTTP
	// server, then the bus.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sessionRegistry.StopAll(shutdownCtx)
	cleanupService.Stop()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	bus.Close()
	slog.Info("Shutdown complete")
}
