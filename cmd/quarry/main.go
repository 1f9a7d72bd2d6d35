// Quarry orchestrator server — provides the HTTP API, manages queue workers,
// and drives completion runs end to end.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/quarryhq/quarry/pkg/agent"
	"github.com/quarryhq/quarry/pkg/api"
	"github.com/quarryhq/quarry/pkg/cleanup"
	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/database"
	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/masking"
	"github.com/quarryhq/quarry/pkg/mcp"
	"github.com/quarryhq/quarry/pkg/metrics"
	"github.com/quarryhq/quarry/pkg/planner"
	"github.com/quarryhq/quarry/pkg/queue"
	"github.com/quarryhq/quarry/pkg/resources"
	"github.com/quarryhq/quarry/pkg/services"
	"github.com/quarryhq/quarry/pkg/tools"
	"github.com/quarryhq/quarry/pkg/tools/builtin"
	"github.com/quarryhq/quarry/pkg/version"
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
		getEnv("CONFIG_DIR", "./config"),
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

	podID := resolvePodID()

	slog.Info("Starting quarry",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"datasources", stats.DataSources,
		"tool_overrides", stats.ToolOverrides)

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

	// 3. One-time startup orphan recovery: completions claimed by a previous
	// incarnation of this pod are failed over before workers start.
	if err := queue.RecoverStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to recover startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Masking and domain services
	maskingService := masking.NewService(cfg.DataSources, cfg.Masking)

	executionService := services.NewExecutionService(dbClient.Client)
	decisionService := services.NewDecisionService(dbClient.Client)
	toolService := services.NewToolService(dbClient.Client)
	blockService := services.NewBlockService(dbClient.Client)
	snapshotService := services.NewSnapshotService(dbClient.Client)
	completionService := services.NewCompletionService(dbClient.Client)
	reportService := services.NewReportService(dbClient.Client)
	instructionService := services.NewInstructionService(dbClient.Client)
	scoreService := services.NewScoreService(dbClient.Client)
	usageService := services.NewUsageService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Planner sidecar client.
	// Note: grpc.NewClient uses lazy dialing; the connection happens on the
	// first RPC call.
	plannerClient, err := planner.NewGRPCClient(cfg.Planner.Addr)
	if err != nil {
		slog.Error("Failed to initialize planner client", "addr", cfg.Planner.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := plannerClient.Close(); err != nil {
			slog.Error("Error closing planner client", "error", err)
		}
	}()
	plannerAdapter := planner.NewAdapter(plannerClient, planner.GenerationConfig{
		Model:       cfg.Planner.Model,
		Temperature: cfg.Planner.Temperature,
		MaxTokens:   cfg.Planner.MaxTokens,
	}, nil)
	slog.Info("Planner client initialized", "addr", cfg.Planner.Addr, "model", cfg.Planner.Model)

	// 6. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	hub := events.NewHub(events.NewEventServiceAdapter(eventService))

	// Dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), hub)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	hub.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 7. Metrics registry
	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)

	// 8. Data-source gateway over MCP.
	// Eager validation: creating the gateway connects every configured
	// source, so a broken datasources.yaml fails the boot instead of the
	// first run that needs it.
	sourceNames := cfg.DataSourceNames()
	mcpFactory := mcp.NewClientFactory(cfg.DataSources)
	gateway, err := mcpFactory.CreateGateway(ctx, sourceNames, maskingService)
	if err != nil {
		slog.Error("Data source startup validation failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := gateway.Close(); err != nil {
			slog.Error("Error closing data source gateway", "error", err)
		}
	}()
	slog.Info("Data sources connected", "count", len(sourceNames))

	var healthMonitor *mcp.HealthMonitor
	if len(sourceNames) > 0 {
		healthMonitor = mcp.NewHealthMonitor(mcpFactory, sourceNames)
		healthMonitor.Start(ctx)
		defer healthMonitor.Stop()
		slog.Info("Data source health monitor started")
	}

	// 9. Tool runtime
	toolRegistry := tools.NewRegistry(cfg.Tools)
	if err := builtin.Register(toolRegistry); err != nil {
		slog.Error("Failed to register builtin tools", "error", err)
		os.Exit(1)
	}
	platform := agent.NewArtifactPlatform(usageService, eventPublisher, executionService, nil)
	runner := tools.NewRunner(toolRegistry, tools.NewStageDispatcher(platform, nil),
		tools.TimeoutPolicy{}, tools.RetryPolicy{}, nil)

	// 10. Context hub sources, including the metadata resource fetcher
	resourceFetcher := resources.NewFetcher(cfg.Resources, nil)
	hubSources := agent.NewHubSources(
		gateway,
		usageService,
		instructionService,
		toolService,
		completionService,
		toolService,
		resourceFetcher,
		nil,
	)

	// 11. Agent runtime and worker pool
	runtime := &agent.Runtime{
		Config: cfg,
		Services: agent.Services{
			Executions:   executionService,
			Decisions:    decisionService,
			Tools:        toolService,
			ToolHistory:  toolService,
			Snapshots:    snapshotService,
			Blocks:       blockService,
			Completions:  completionService,
			Reports:      reportService,
			Instructions: instructionService,
			Scores:       scoreService,
			Usage:        usageService,
		},
		Planner:     plannerAdapter,
		Completer:   plannerClient,
		Registry:    toolRegistry,
		Runner:      runner,
		Sources:     hubSources,
		DataSources: gateway,
		Platform:    platform,
		Publisher:   eventPublisher,
		Masker:      maskingService,
		Metrics:     m,
	}

	executor := queue.NewLoopExecutor(runtime)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, eventPublisher, hub, m)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 12. Background retention
	cleanupService := cleanup.NewService(cfg.Retention, eventService, snapshotService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 13. HTTP server
	gin.SetMode(gin.ReleaseMode)
	httpServer := api.NewServer(cfg, dbClient, workerPool, hub)
	httpServer.SetEventPublisher(eventPublisher)
	httpServer.SetPlannerClient(plannerClient)
	httpServer.SetMetrics(m, registry)
	if healthMonitor != nil {
		httpServer.SetHealthMonitor(healthMonitor)
	}

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.Server.ListenAddr
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Quarry started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 14. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 15. Graceful shutdown: stop claiming, let active runs finish inside the
	// budget, then close the HTTP surface.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
