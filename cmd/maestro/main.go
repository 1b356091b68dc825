// Maestro mission server. Serves the HTTP API, runs the queue worker pool
// that executes research missions, and streams progress over WebSocket.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/maestro-research/maestro/pkg/agent"
	"github.com/maestro-research/maestro/pkg/api"
	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/consistency"
	"github.com/maestro-research/maestro/pkg/contextstore"
	"github.com/maestro-research/maestro/pkg/controller"
	"github.com/maestro-research/maestro/pkg/database"
	"github.com/maestro-research/maestro/pkg/events"
	"github.com/maestro-research/maestro/pkg/lifecycle"
	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/queue"
	"github.com/maestro-research/maestro/pkg/services"
	"github.com/maestro-research/maestro/pkg/tools"
	"github.com/maestro-research/maestro/pkg/version"
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
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Maestro",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
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

	// 3. One-time startup orphan cleanup: missions this pod abandoned on a
	// previous run are marked failed before workers start claiming.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal, continue
	}

	// 4. Event streaming infrastructure
	eventService := services.NewEventService(dbClient.Client)
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Context store and lifecycle manager
	store := contextstore.New(dbClient.Client, eventPublisher)
	if n, err := store.LoadActive(ctx); err != nil {
		slog.Warn("Failed to preload active missions", "error", err)
	} else if n > 0 {
		slog.Info("Preloaded active mission contexts", "count", n)
	}
	lifecycleManager := lifecycle.NewManager(store)

	// 6. LLM dispatch and retrieval tools
	dispatcher := llm.NewDispatcher(cfg)

	embed, err := tools.BuildEmbeddingFunc(cfg)
	if err != nil {
		slog.Warn("Embedding backend unavailable, falling back to lexical similarity", "error", err)
		embed = nil
	}

	docStore, err := tools.NewDocStore(cfg.Tools.DocStore, embed)
	if err != nil {
		slog.Error("Failed to open document store", "error", err)
		os.Exit(1)
	}

	registry := tools.NewRegistry(eventPublisher, store)
	registry.Register(tools.NewCalculatorTool())
	registry.Register(tools.NewDocumentSearchTool(docStore))
	registry.Register(tools.NewReadDocumentTool(docStore))

	searcher := tools.NewTavilySearcher(cfg.Tools.WebSearch)
	registry.Register(tools.NewWebSearchTool(searcher))
	registry.Register(tools.NewIntelligentWebSearchTool(searcher))

	fetcher := tools.NewFetcher(*cfg.Tools.WebFetch, eventPublisher)
	registry.Register(tools.NewWebFetchTool(fetcher))
	slog.Info("Tool registry initialized")

	// 7. Agents and mission controller
	missionController := controller.New(store, lifecycleManager, controller.Agents{
		Analyzer:   agent.NewAnalysisAgent(dispatcher, store),
		Planner:    agent.NewPlannerAgent(dispatcher, store),
		Researcher: agent.NewResearchAgent(dispatcher, registry, store, embed),
		Reflector:  agent.NewReflectionAgent(dispatcher, store),
		Assigner:   agent.NewAssignmentAgent(dispatcher, store, embed),
		Writer:     agent.NewWritingAgent(dispatcher, store),
		Citations:  agent.NewCitationAgent(store),
	})

	// 8. Worker pool
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, missionController, lifecycleManager, store)
	if err := workerPool.Start(runCtx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Domain services, retention sweep, HTTP server
	missionService := services.NewMissionService(dbClient.Client, store, lifecycleManager)
	reportService := services.NewReportService(dbClient.Client, store)

	consistencyService := consistency.NewService(cfg.Retention, dbClient.Client, missionService, eventService)
	consistencyService.Start(ctx)
	defer consistencyService.Stop()

	httpServer := api.NewServer(api.Deps{
		MissionService:   missionService,
		ReportService:    reportService,
		DB:               dbClient,
		ConnManager:      connManager,
		Pool:             workerPool,
		DashboardURL:     cfg.DashboardURL,
		AllowedWSOrigins: cfg.AllowedWSOrigins,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Maestro started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop accepting work, interrupt active missions
	// cooperatively, then drain workers under the shutdown timeout.
	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancelShutdown()

	if stopped := lifecycleManager.StopAll(shutdownCtx); stopped > 0 {
		slog.Info("Stopped active missions", "count", stopped)
	}
	cancelRun()

	poolDone := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(poolDone)
	}()
	select {
	case <-poolDone:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded")
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	}

	slog.Info("Maestro shutdown complete")
}
