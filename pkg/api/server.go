// Package api exposes the HTTP surface: completion submission and reads,
// instruction management, the SSE/WebSocket event stream, health and
// metrics. Handlers stay thin; behavior lives in pkg/services and the
// event fan-out in pkg/events.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/database"
	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/mcp"
	"github.com/quarryhq/quarry/pkg/metrics"
	"github.com/quarryhq/quarry/pkg/planner"
	"github.com/quarryhq/quarry/pkg/queue"
	"github.com/quarryhq/quarry/pkg/services"
)

// Server is the API server. Construct with NewServer, attach optional
// collaborators with the Set* methods, then Start.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client

	completionService  *services.CompletionService
	reportService      *services.ReportService
	blockService       *services.BlockService
	executionService   *services.ExecutionService
	decisionService    *services.DecisionService
	toolService        *services.ToolService
	instructionService *services.InstructionService

	workerPool *queue.WorkerPool
	hub        *events.Hub

	// Optional collaborators, attached via setters before Start.
	eventPublisher *events.EventPublisher
	healthMonitor  *mcp.HealthMonitor
	plannerClient  *planner.GRPCClient
	metrics        *metrics.Metrics
	gatherer       prometheus.Gatherer

	engine *gin.Engine
	srv    *http.Server
}

// NewServer creates the API server and registers its routes. hub may be nil
// (the stream endpoints return 503), workerPool may be nil (health omits the
// pool check).
func NewServer(cfg *config.Config, dbClient *database.Client, workerPool *queue.WorkerPool, hub *events.Hub) *Server {
	s := &Server{
		cfg:        cfg,
		dbClient:   dbClient,
		workerPool: workerPool,
		hub:        hub,
	}

	if dbClient != nil {
		s.completionService = services.NewCompletionService(dbClient.Client)
		s.reportService = services.NewReportService(dbClient.Client)
		s.blockService = services.NewBlockService(dbClient.Client)
		s.executionService = services.NewExecutionService(dbClient.Client)
		s.decisionService = services.NewDecisionService(dbClient.Client)
		s.toolService = services.NewToolService(dbClient.Client)
		s.instructionService = services.NewInstructionService(dbClient.Client)
	}

	s.engine = s.buildEngine()
	return s
}

// SetEventPublisher attaches the publisher used by the cancel endpoint to
// broadcast sigkills to worker pods.
func (s *Server) SetEventPublisher(p *events.EventPublisher) {
	s.eventPublisher = p
}

// SetHealthMonitor attaches the data source health monitor.
func (s *Server) SetHealthMonitor(m *mcp.HealthMonitor) {
	s.healthMonitor = m
}

// SetPlannerClient attaches the planner client whose connectivity state is
// reported by the health endpoint.
func (s *Server) SetPlannerClient(c *planner.GRPCClient) {
	s.plannerClient = c
}

// SetMetrics attaches the Prometheus collectors and the gatherer backing
// GET /metrics. Must be called before Start for the endpoint to exist.
func (s *Server) SetMetrics(m *metrics.Metrics, g prometheus.Gatherer) {
	s.metrics = m
	s.gatherer = g
}

// buildEngine assembles the gin engine with middleware and routes.
func (s *Server) buildEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())
	engine.Use(securityHeaders())
	engine.Use(s.httpMetrics())

	engine.GET("/api/v1/health", s.healthHandler)

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/reports/:report_id/completions", s.createCompletionHandler)
		v1.GET("/reports/:report_id", s.getReportHandler)
		v1.GET("/reports", s.listReportsHandler)

		v1.GET("/completions", s.listCompletionsHandler)
		v1.GET("/completions/:id", s.getCompletionHandler)
		v1.GET("/completions/:id/blocks", s.listBlocksHandler)
		v1.GET("/completions/:id/stream", s.streamCompletionHandler)
		v1.POST("/completions/:id/cancel", s.cancelCompletionHandler)

		v1.GET("/executions/:id", s.getExecutionHandler)

		v1.GET("/instructions", s.listInstructionsHandler)
		v1.POST("/instructions", s.createInstructionHandler)
		v1.PATCH("/instructions/:id", s.updateInstructionHandler)

		v1.GET("/stream/ws", s.wsHandler)
	}

	return engine
}

// Start begins serving on addr. Blocks until the listener fails or Shutdown
// is called. The /metrics route is mounted here so SetMetrics can run after
// construction.
func (s *Server) Start(addr string) error {
	if s.gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.srv.ListenAndServe()
}

// StartWithListener serves on an already-bound listener. Used by tests that
// need an OS-assigned port before the server starts accepting.
func (s *Server) StartWithListener(ln net.Listener) error {
	if s.gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	s.srv = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.srv.Serve(ln)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
