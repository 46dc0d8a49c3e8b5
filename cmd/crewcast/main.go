// crewcast orchestrator server — provides the HTTP API, manages queue
// workers, and drives production pipelines from topic intake to publish.
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

	"github.com/crewcast/crewcast/pkg/api"
	"github.com/crewcast/crewcast/pkg/config"
	"github.com/crewcast/crewcast/pkg/database"
	"github.com/crewcast/crewcast/pkg/events"
	"github.com/crewcast/crewcast/pkg/handler"
	"github.com/crewcast/crewcast/pkg/queue"
	"github.com/crewcast/crewcast/pkg/services"
	"github.com/crewcast/crewcast/pkg/store"
	"github.com/crewcast/crewcast/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configPath := flag.String("config",
		getEnv("CREWCAST_CONFIG", "./deploy/config/crewcast.yaml"),
		"Path to configuration file")
	flag.Parse()

	// Load .env from the working directory, if present.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	podID := resolvePodID()
	slog.Info("Starting crewcast",
		"version", version.Full(),
		"pod_id", podID,
		"config", *configPath)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
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

	// 3. Wire stores, events, and domain services
	entStore := store.NewEntStore(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB())
	pipelineService := services.NewPipelineService(entStore, publisher)
	attributionService := services.NewAttributionService(entStore)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup for this pod's previous workers
	if err := queue.CleanupStartupOrphans(ctx, entStore, pipelineService, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 5. Register stage handlers
	handlers := handler.NewRegistry()
	if err := handler.RegisterSimulated(handlers); err != nil {
		slog.Error("Failed to register stage handlers", "error", err)
		os.Exit(1)
	}

	// 6. Start worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, pipelineService, entStore, handlers, cfg.Queue, cfg.Stages.DryRun)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Create HTTP server
	server := api.NewServer(pipelineService, attributionService, dbClient, workerPool)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 8. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("crewcast started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"dry_run", cfg.Stages.DryRun)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: drain workers first, then the HTTP server.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete stages will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
