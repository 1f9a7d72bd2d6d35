package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/pkg/agent"
	"github.com/quarryhq/quarry/pkg/api"
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

	testdb "github.com/quarryhq/quarry/test/database"
	"github.com/quarryhq/quarry/test/util"
)

// TestApp is a fully wired quarry instance backed by a scripted planner and
// (optionally) in-memory MCP data sources, serving its HTTP API on a random
// loopback port.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client
	Planner   *ScriptedPlanner
	Gateway   *mcp.Gateway

	EventPublisher *events.EventPublisher
	Hub            *events.Hub
	WorkerPool     *queue.WorkerPool
	Server         *api.Server

	BaseURL string
	WSURL   string

	t *testing.T
}

type testAppConfig struct {
	cfg          *config.Config
	agentCfg     *config.AgentConfig
	planner      *ScriptedPlanner
	mcpServers   map[string]map[string]mcpsdk.ToolHandler
	workerCount  int
	dbClient     *database.Client
	podID        string
	extraTools   []tools.Tool
	toolTimeouts tools.TimeoutPolicy
}

// TestAppOption customizes a TestApp before startup.
type TestAppOption func(*testAppConfig)

// WithConfig replaces the default test configuration entirely.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(tc *testAppConfig) { tc.cfg = cfg }
}

// WithAgentConfig overrides the loop bounds and post-step flags.
func WithAgentConfig(agentCfg *config.AgentConfig) TestAppOption {
	return func(tc *testAppConfig) { tc.agentCfg = agentCfg }
}

// WithPlanner supplies a pre-scripted planner (useful when several apps must
// share one script).
func WithPlanner(p *ScriptedPlanner) TestAppOption {
	return func(tc *testAppConfig) { tc.planner = p }
}

// WithMCPServers wires in-memory MCP data sources, keyed source name ->
// tool name -> handler.
func WithMCPServers(servers map[string]map[string]mcpsdk.ToolHandler) TestAppOption {
	return func(tc *testAppConfig) { tc.mcpServers = servers }
}

// WithWorkerCount sets the queue worker count (default 1).
func WithWorkerCount(n int) TestAppOption {
	return func(tc *testAppConfig) { tc.workerCount = n }
}

// WithDBClient reuses an existing database client instead of provisioning a
// fresh schema. Multi-replica tests point several apps at one schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(tc *testAppConfig) { tc.dbClient = client }
}

// WithPodID overrides the pod identifier used for queue claims.
func WithPodID(podID string) TestAppOption {
	return func(tc *testAppConfig) { tc.podID = podID }
}

// WithExtraTools registers additional tools alongside the builtins.
func WithExtraTools(extra ...tools.Tool) TestAppOption {
	return func(tc *testAppConfig) { tc.extraTools = append(tc.extraTools, extra...) }
}

// WithToolTimeouts overrides the runner's timeout policy.
func WithToolTimeouts(policy tools.TimeoutPolicy) TestAppOption {
	return func(tc *testAppConfig) { tc.toolTimeouts = policy }
}

// defaultTestConfig returns a config tuned for fast polling and with the
// background judge passes disabled; tests opt back in per scenario.
func defaultTestConfig(workerCount int) *config.Config {
	agentCfg := config.DefaultAgentConfig()
	agentCfg.ScoringEnabled = config.BoolPtr(false)
	agentCfg.SuggestionsEnabled = config.BoolPtr(false)

	queueCfg := config.DefaultQueueConfig()
	queueCfg.WorkerCount = workerCount
	queueCfg.MaxConcurrentRuns = 8
	queueCfg.PollInterval = 100 * time.Millisecond
	queueCfg.PollIntervalJitter = 50 * time.Millisecond
	queueCfg.RunTimeout = 30 * time.Second
	queueCfg.GracefulShutdownTimeout = 10 * time.Second
	queueCfg.HeartbeatInterval = 5 * time.Second
	queueCfg.OrphanThreshold = time.Minute
	queueCfg.OrphanScanInterval = time.Minute

	return &config.Config{
		Server:      config.DefaultServerConfig(),
		Agent:       agentCfg,
		Planner:     config.DefaultPlannerConfig(),
		Context:     config.DefaultContextConfig(),
		Tools:       &config.ToolsConfig{},
		Queue:       queueCfg,
		Retention:   config.DefaultRetentionConfig(),
		Resources:   config.DefaultResourcesConfig(),
		Masking:     config.DefaultOutputMaskingConfig(),
		DataSources: config.NewDataSourceRegistry(nil),
	}
}

// StartTestApp boots a TestApp and registers shutdown with t.Cleanup.
func StartTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	ctx := context.Background()

	tc := &testAppConfig{workerCount: 1}
	for _, opt := range opts {
		opt(tc)
	}

	cfg := tc.cfg
	if cfg == nil {
		cfg = defaultTestConfig(tc.workerCount)
	}
	if tc.agentCfg != nil {
		cfg.Agent = tc.agentCfg
	}
	cfg.Queue.WorkerCount = tc.workerCount

	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-%s", t.Name())
	}

	dbClient := tc.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}

	require.NoError(t, queue.RecoverStartupOrphans(ctx, dbClient.Client, podID))

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

	scripted := tc.planner
	if scripted == nil {
		scripted = NewScriptedPlanner()
	}
	plannerAdapter := planner.NewAdapter(scripted, planner.GenerationConfig{
		Model: "test-model",
	}, nil)

	eventPublisher := events.NewEventPublisher(dbClient.DB())
	hub := events.NewHub(events.NewEventServiceAdapter(eventService))

	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), hub)
	require.NoError(t, notifyListener.Start(ctx))
	hub.SetListener(notifyListener)

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)

	var gateway *mcp.Gateway
	var dataSources tools.DataSources
	if len(tc.mcpServers) > 0 {
		sourceNames := make([]string, 0, len(tc.mcpServers))
		sources := map[string]config.DataSourceConfig{}
		for name := range tc.mcpServers {
			sourceNames = append(sourceNames, name)
			sources[name] = config.DataSourceConfig{
				Transport: config.TransportStdio,
				Command:   "mock",
			}
		}
		cfg.DataSources = config.NewDataSourceRegistry(sources)

		factory := SetupInMemoryMCP(t, tc.mcpServers)
		var err error
		gateway, err = factory.CreateGateway(ctx, sourceNames, maskingService)
		require.NoError(t, err)
		dataSources = gateway
	}

	toolRegistry := tools.NewRegistry(cfg.Tools)
	require.NoError(t, builtin.Register(toolRegistry))
	for _, tool := range tc.extraTools {
		require.NoError(t, toolRegistry.Register(tool))
	}

	platform := agent.NewArtifactPlatform(usageService, eventPublisher, executionService, nil)
	runner := tools.NewRunner(toolRegistry, tools.NewStageDispatcher(platform, nil),
		tc.toolTimeouts, tools.RetryPolicy{}, nil)

	resourceFetcher := resources.NewFetcher(cfg.Resources, nil)
	hubSources := agent.NewHubSources(
		dataSources,
		usageService,
		instructionService,
		toolService,
		completionService,
		toolService,
		resourceFetcher,
		nil,
	)

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
		Completer:   scripted,
		Registry:    toolRegistry,
		Runner:      runner,
		Sources:     hubSources,
		DataSources: dataSources,
		Platform:    platform,
		Publisher:   eventPublisher,
		Masker:      maskingService,
		Metrics:     m,
	}

	executor := queue.NewLoopExecutor(runtime)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, eventPublisher, hub, m)
	require.NoError(t, workerPool.Start(ctx))

	server := api.NewServer(cfg, dbClient, workerPool, hub)
	server.SetEventPublisher(eventPublisher)
	server.SetMetrics(m, registry)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()
	app := &TestApp{
		Config:         cfg,
		DBClient:       dbClient,
		EntClient:      dbClient.Client,
		Planner:        scripted,
		Gateway:        gateway,
		EventPublisher: eventPublisher,
		Hub:            hub,
		WorkerPool:     workerPool,
		Server:         server,
		BaseURL:        "http://" + addr,
		WSURL:          "ws://" + addr + "/api/v1/stream/ws",
		t:              t,
	}

	t.Cleanup(func() {
		workerPool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		notifyListener.Stop(shutdownCtx)
		if gateway != nil {
			_ = gateway.Close()
		}
	})

	return app
}
