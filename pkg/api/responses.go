package api

import (
	"github.com/quarryhq/quarry/pkg/database"
	"github.com/quarryhq/quarry/pkg/mcp"
	"github.com/quarryhq/quarry/pkg/queue"
)

// CompletionAcceptedResponse is returned by POST /api/v1/reports/:report_id/completions.
type CompletionAcceptedResponse struct {
	CompletionID string `json:"completion_id"`
	ReportID     string `json:"report_id"`
	Status       string `json:"status"`
}

// CancelResponse is returned by POST /api/v1/completions/:id/cancel.
type CancelResponse struct {
	CompletionID string `json:"completion_id"`
	Message      string `json:"message"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status        string                       `json:"status"`
	Version       string                       `json:"version"`
	Database      *database.HealthStatus       `json:"database"`
	Configuration ConfigurationStats           `json:"configuration"`
	WorkerPool    *queue.PoolHealth            `json:"worker_pool,omitempty"`
	Planner       string                       `json:"planner,omitempty"`
	DataSources   map[string]*mcp.SourceHealth `json:"data_sources,omitempty"`
}

// ConfigurationStats contains counts of loaded configuration items.
type ConfigurationStats struct {
	DataSources   int `json:"data_sources"`
	ToolOverrides int `json:"tool_overrides"`
}
