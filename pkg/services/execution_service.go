package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/pkg/models"
)

// ExecutionService manages agent execution lifecycle and the per-run event
// sequence. Each execution has exactly one writer (the loop that owns it), so
// sequence allocation and terminal transitions never race within a run.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// CreateAgentExecution opens a run for a claimed completion.
func (s *ExecutionService) CreateAgentExecution(httpCtx context.Context, req models.CreateAgentExecutionRequest) (*ent.AgentExecution, error) {
	if req.CompletionID == "" {
		return nil, NewValidationError("completion_id", "required")
	}
	if req.ReportID == "" {
		return nil, NewValidationError("report_id", "required")
	}
	if req.OrganizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	// Detached from the caller: a dropped HTTP connection must not lose the row.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.AgentExecution.Create().
		SetID(uuid.New().String()).
		SetCompletionID(req.CompletionID).
		SetReportID(req.ReportID).
		SetOrganizationID(req.OrganizationID).
		SetUserID(req.UserID).
		SetStatus(agentexecution.StatusInProgress).
		SetStartedAt(time.Now())

	if req.Config != nil {
		builder = builder.SetConfig(req.Config)
	}

	execution, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create agent execution: %w", err)
	}

	return execution, nil
}

// GetExecution retrieves an execution by ID.
func (s *ExecutionService) GetExecution(ctx context.Context, executionID string) (*ent.AgentExecution, error) {
	execution, err := s.client.AgentExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}

	return execution, nil
}

// GetExecutionsByCompletion retrieves all executions for a completion,
// oldest first.
func (s *ExecutionService) GetExecutionsByCompletion(ctx context.Context, completionID string) ([]*ent.AgentExecution, error) {
	executions, err := s.client.AgentExecution.Query().
		Where(agentexecution.CompletionIDEQ(completionID)).
		Order(ent.Asc(agentexecution.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get executions: %w", err)
	}

	return executions, nil
}

// NextSeq bumps the run's sequence cursor and returns the new value. The
// bump is a single UPDATE, so the returned value is unique even if multiple
// callers raced; ordering of events within a run is guaranteed by the
// single-writer loop, not by this method.
func (s *ExecutionService) NextSeq(httpCtx context.Context, executionID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	execution, err := s.client.AgentExecution.UpdateOneID(executionID).
		AddLatestSeq(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to allocate seq: %w", err)
	}

	return execution.LatestSeq, nil
}

// FinishExecution writes the terminal status for a run. Terminal statuses
// are write-once: finishing an already-finished execution returns
// ErrAlreadyFinalized and leaves the row untouched.
func (s *ExecutionService) FinishExecution(httpCtx context.Context, req models.FinishAgentExecutionRequest) (*ent.AgentExecution, error) {
	if req.AgentExecutionID == "" {
		return nil, NewValidationError("agent_execution_id", "required")
	}
	status := agentexecution.Status(req.Status)
	if err := agentexecution.StatusValidator(status); err != nil {
		return nil, NewValidationError("status", err.Error())
	}
	if status == agentexecution.StatusInProgress {
		return nil, NewValidationError("status", "must be terminal")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	execution, err := s.client.AgentExecution.Get(ctx, req.AgentExecutionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	if execution.Status != agentexecution.StatusInProgress {
		return nil, ErrAlreadyFinalized
	}

	now := time.Now()
	builder := execution.Update().
		SetStatus(status).
		SetCompletedAt(now).
		SetTotalDurationMs(int(now.Sub(execution.StartedAt).Milliseconds()))

	if req.ErrorMessage != "" {
		builder = builder.SetErrorMessage(req.ErrorMessage)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finish execution: %w", err)
	}

	return updated, nil
}
