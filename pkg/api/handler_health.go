package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quarryhq/quarry/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /api/v1/health. Database failure makes the
// service unhealthy (503); a sick worker pool only degrades it. Planner and
// data source states are reported but never affect the status code, so the
// orchestrator does not restart quarry when an external service is down.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
	}
	if s.cfg != nil {
		stats := s.cfg.Stats()
		resp.Configuration = ConfigurationStats{
			DataSources:   stats.DataSources,
			ToolOverrides: stats.ToolOverrides,
		}
	}

	if s.dbClient != nil {
		dbHealth, err := s.dbClient.Health(ctx)
		resp.Database = dbHealth
		if err != nil {
			resp.Status = healthStatusUnhealthy
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	if s.workerPool != nil {
		poolHealth := s.workerPool.Health()
		resp.WorkerPool = poolHealth
		if !poolHealth.IsHealthy {
			resp.Status = healthStatusDegraded
		}
	}

	if s.plannerClient != nil {
		resp.Planner = s.plannerClient.State()
	}
	if s.healthMonitor != nil {
		resp.DataSources = s.healthMonitor.Statuses()
	}

	c.JSON(http.StatusOK, resp)
}
