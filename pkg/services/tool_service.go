package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/quarryhq/quarry/pkg/models"
)

// ToolService persists tool invocations. Rows are created at dispatch time
// and transitioned exactly once to success or error; a run killed mid-tool
// leaves the row in_progress as its audit trail.
type ToolService struct {
	client *ent.Client
}

// NewToolService creates a new ToolService
func NewToolService(client *ent.Client) *ToolService {
	return &ToolService{client: client}
}

// StartToolExecution records a tool invocation at dispatch time.
func (s *ToolService) StartToolExecution(httpCtx context.Context, req models.StartToolExecutionRequest) (*ent.ToolExecution, error) {
	if req.AgentExecutionID == "" {
		return nil, NewValidationError("agent_execution_id", "required")
	}
	if req.Seq <= 0 {
		return nil, NewValidationError("seq", "must be positive")
	}
	if req.ToolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	args := req.Arguments
	if args == nil {
		args = map[string]any{}
	}
	attempt := req.AttemptNumber
	if attempt < 1 {
		attempt = 1
	}

	builder := s.client.ToolExecution.Create().
		SetID(uuid.New().String()).
		SetAgentExecutionID(req.AgentExecutionID).
		SetSeq(req.Seq).
		SetToolName(req.ToolName).
		SetArguments(args).
		SetStatus(toolexecution.StatusInProgress).
		SetAttemptNumber(attempt).
		SetMaxRetries(req.MaxRetries).
		SetStartedAt(time.Now())

	if req.PlanDecisionID != "" {
		builder = builder.SetPlanDecisionID(req.PlanDecisionID)
	}
	if req.ToolAction != "" {
		builder = builder.SetToolAction(req.ToolAction)
	}

	execution, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to start tool execution: %w", err)
	}

	return execution, nil
}

// FinishToolExecution transitions a tool row to its terminal state and
// computes duration_ms from the recorded start. Finishing an already-finished
// row is a no-op that returns the stored row.
func (s *ToolService) FinishToolExecution(httpCtx context.Context, req models.FinishToolExecutionRequest) (*ent.ToolExecution, error) {
	if req.ToolExecutionID == "" {
		return nil, NewValidationError("tool_execution_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	execution, err := s.client.ToolExecution.Get(ctx, req.ToolExecutionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tool execution: %w", err)
	}
	if execution.Status != toolexecution.StatusInProgress {
		return execution, nil
	}

	status := toolexecution.StatusError
	if req.Success {
		status = toolexecution.StatusSuccess
	}

	now := time.Now()
	builder := execution.Update().
		SetStatus(status).
		SetSuccess(req.Success).
		SetCompletedAt(now).
		SetDurationMs(int(now.Sub(execution.StartedAt).Milliseconds()))

	if req.ResultSummary != "" {
		builder = builder.SetResultSummary(req.ResultSummary)
	}
	if req.ResultJSON != nil {
		builder = builder.SetResultJSON(req.ResultJSON)
	}
	if req.ErrorMessage != "" {
		builder = builder.SetErrorMessage(req.ErrorMessage)
	}
	if req.CreatedWidgetID != "" {
		builder = builder.SetCreatedWidgetID(req.CreatedWidgetID)
	}
	if req.CreatedStepID != "" {
		builder = builder.SetCreatedStepID(req.CreatedStepID)
	}
	if len(req.CreatedVisualizationIDs) > 0 {
		builder = builder.SetCreatedVisualizationIds(req.CreatedVisualizationIDs)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finish tool execution: %w", err)
	}

	return updated, nil
}

// GetToolExecution retrieves a tool execution by ID.
func (s *ToolService) GetToolExecution(ctx context.Context, toolExecutionID string) (*ent.ToolExecution, error) {
	execution, err := s.client.ToolExecution.Get(ctx, toolExecutionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tool execution: %w", err)
	}

	return execution, nil
}

// ListToolExecutions retrieves all tool executions for an execution in seq
// order.
func (s *ToolService) ListToolExecutions(ctx context.Context, executionID string) ([]*ent.ToolExecution, error) {
	executions, err := s.client.ToolExecution.Query().
		Where(toolexecution.AgentExecutionIDEQ(executionID)).
		Order(ent.Asc(toolexecution.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool executions: %w", err)
	}

	return executions, nil
}

// PreviousToolInReport finds the most recent tool started strictly before
// the given time anywhere in the report. The instruction-suggestion trigger
// uses it to detect a clarify → create_widget lineage across turns.
func (s *ToolService) PreviousToolInReport(ctx context.Context, reportID string, before time.Time) (*ent.ToolExecution, error) {
	execution, err := s.client.ToolExecution.Query().
		Where(
			toolexecution.HasAgentExecutionWith(agentexecution.ReportIDEQ(reportID)),
			toolexecution.StartedAtLT(before),
		).
		Order(ent.Desc(toolexecution.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get previous tool: %w", err)
	}

	return execution, nil
}

// RecentSuccessfulByTool retrieves the organization's latest successful runs
// of one tool, newest first. Snippet recall feeds these into the context hub.
func (s *ToolService) RecentSuccessfulByTool(ctx context.Context, organizationID, toolName string, limit int) ([]*ent.ToolExecution, error) {
	if limit <= 0 {
		limit = 20
	}

	executions, err := s.client.ToolExecution.Query().
		Where(
			toolexecution.HasAgentExecutionWith(agentexecution.OrganizationIDEQ(organizationID)),
			toolexecution.ToolNameEQ(toolName),
			toolexecution.StatusEQ(toolexecution.StatusSuccess),
		).
		Order(ent.Desc(toolexecution.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent tool executions: %w", err)
	}

	return executions, nil
}

// RecentSuccessfulInReport retrieves the report's latest successful tool
// runs across every execution, newest first. The conversation section of
// the context hub derives its widget and query listings from these rows.
func (s *ToolService) RecentSuccessfulInReport(ctx context.Context, reportID string, limit int) ([]*ent.ToolExecution, error) {
	if limit <= 0 {
		limit = 50
	}

	executions, err := s.client.ToolExecution.Query().
		Where(
			toolexecution.HasAgentExecutionWith(agentexecution.ReportIDEQ(reportID)),
			toolexecution.StatusEQ(toolexecution.StatusSuccess),
		).
		Order(ent.Desc(toolexecution.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list report tool executions: %w", err)
	}

	return executions, nil
}
