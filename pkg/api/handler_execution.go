package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quarryhq/quarry/ent"
)

// ExecutionDetailResponse is returned by GET /api/v1/executions/:id. Tool
// executions are summarized: arguments and raw results stay out of the
// response, full rows are reachable through the block list.
type ExecutionDetailResponse struct {
	Execution *ent.AgentExecution    `json:"execution"`
	Decisions []*ent.PlanDecision    `json:"decisions"`
	Tools     []ToolExecutionSummary `json:"tools"`
}

// ToolExecutionSummary is the compact view of a tool execution.
type ToolExecutionSummary struct {
	ID            string     `json:"id"`
	Seq           int        `json:"seq"`
	ToolName      string     `json:"tool_name"`
	ToolAction    *string    `json:"tool_action,omitempty"`
	Status        string     `json:"status"`
	Success       bool       `json:"success"`
	AttemptNumber int        `json:"attempt_number"`
	ResultSummary *string    `json:"result_summary,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	DurationMs    *int       `json:"duration_ms,omitempty"`
}

// getExecutionHandler handles GET /api/v1/executions/:id. Returns the
// execution row together with its plan decisions and tool executions in
// seq order.
func (s *Server) getExecutionHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "execution id is required"})
		return
	}

	execution, err := s.executionService.GetExecution(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}

	decisions, err := s.decisionService.ListDecisions(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}

	tools, err := s.toolService.ListToolExecutions(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}

	resp := ExecutionDetailResponse{
		Execution: execution,
		Decisions: decisions,
		Tools:     make([]ToolExecutionSummary, 0, len(tools)),
	}
	for _, te := range tools {
		resp.Tools = append(resp.Tools, summarizeToolExecution(te))
	}
	c.JSON(http.StatusOK, resp)
}

// summarizeToolExecution maps a tool execution row to its compact view.
func summarizeToolExecution(te *ent.ToolExecution) ToolExecutionSummary {
	return ToolExecutionSummary{
		ID:            te.ID,
		Seq:           te.Seq,
		ToolName:      te.ToolName,
		ToolAction:    te.ToolAction,
		Status:        string(te.Status),
		Success:       te.Success,
		AttemptNumber: te.AttemptNumber,
		ResultSummary: te.ResultSummary,
		ErrorMessage:  te.ErrorMessage,
		StartedAt:     te.StartedAt,
		CompletedAt:   te.CompletedAt,
		DurationMs:    te.DurationMs,
	}
}
