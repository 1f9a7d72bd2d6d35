package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/pkg/models"
)

// BlockService persists the render-ready transcript blocks projected from
// decisions and tool executions. Upserts are keyed on (agent_execution_id,
// loop_index, source_type) and skip the write entirely when nothing changed,
// so updated_at doubles as a cheap change signal for consumers.
type BlockService struct {
	client *ent.Client
}

// NewBlockService creates a new BlockService
func NewBlockService(client *ent.Client) *BlockService {
	return &BlockService{client: client}
}

// UpsertDecisionBlock creates or updates the decision block for one loop
// iteration. The returned bool reports whether a row was actually written.
func (s *BlockService) UpsertDecisionBlock(httpCtx context.Context, req models.UpsertDecisionBlockRequest) (*ent.CompletionBlock, bool, error) {
	if req.CompletionID == "" {
		return nil, false, NewValidationError("completion_id", "required")
	}
	if req.AgentExecutionID == "" {
		return nil, false, NewValidationError("agent_execution_id", "required")
	}
	if req.Title == "" {
		return nil, false, NewValidationError("title", "required")
	}
	status := completionblock.Status(req.Status)
	if err := completionblock.StatusValidator(status); err != nil {
		return nil, false, NewValidationError("status", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.CompletionBlock.Query().
		Where(
			completionblock.AgentExecutionIDEQ(req.AgentExecutionID),
			completionblock.LoopIndexEQ(req.LoopIndex),
			completionblock.SourceTypeEQ(completionblock.SourceTypeDecision),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query block: %w", err)
	}

	if existing == nil {
		builder := s.client.CompletionBlock.Create().
			SetID(uuid.New().String()).
			SetCompletionID(req.CompletionID).
			SetAgentExecutionID(req.AgentExecutionID).
			SetSourceType(completionblock.SourceTypeDecision).
			SetBlockIndex(req.BlockIndex).
			SetLoopIndex(req.LoopIndex).
			SetTitle(req.Title).
			SetStatus(status).
			SetStartedAt(time.Now())

		if req.PlanDecisionID != "" {
			builder = builder.SetPlanDecisionID(req.PlanDecisionID)
		}
		if req.Icon != "" {
			builder = builder.SetIcon(req.Icon)
		}
		if req.Content != "" {
			builder = builder.SetContent(req.Content)
		}
		if req.Reasoning != "" {
			builder = builder.SetReasoning(req.Reasoning)
		}
		if req.CompletedAt != nil {
			builder = builder.SetCompletedAt(*req.CompletedAt)
		}

		block, createErr := builder.Save(ctx)
		if createErr != nil {
			if ent.IsConstraintError(createErr) {
				return nil, false, ErrAlreadyExists
			}
			return nil, false, fmt.Errorf("failed to create block: %w", createErr)
		}
		return block, true, nil
	}

	builder := existing.Update()
	changed := false

	if req.Title != existing.Title {
		builder = builder.SetTitle(req.Title)
		changed = true
	}
	if status != existing.Status {
		builder = builder.SetStatus(status)
		changed = true
	}
	if req.Icon != "" && req.Icon != existing.Icon {
		builder = builder.SetIcon(req.Icon)
		changed = true
	}
	if req.Content != "" && req.Content != textOrEmpty(existing.Content) {
		builder = builder.SetContent(req.Content)
		changed = true
	}
	if req.Reasoning != "" && req.Reasoning != textOrEmpty(existing.Reasoning) {
		builder = builder.SetReasoning(req.Reasoning)
		changed = true
	}
	if req.CompletedAt != nil && existing.CompletedAt == nil {
		builder = builder.SetCompletedAt(*req.CompletedAt)
		changed = true
	}

	if !changed {
		return existing, false, nil
	}

	block, err := builder.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update block: %w", err)
	}

	return block, true, nil
}

// AnnotateToolBlock folds a tool execution into the decision block that
// requested it: the title gains "→ <tool_name>", the status follows the tool
// and completed_at is copied from the tool record. When the decision block
// is missing (its pre-creation failed) a tool-sourced block is created so
// the invocation still shows up in the transcript.
func (s *BlockService) AnnotateToolBlock(httpCtx context.Context, req models.AnnotateToolBlockRequest) (*ent.CompletionBlock, bool, error) {
	if req.AgentExecutionID == "" {
		return nil, false, NewValidationError("agent_execution_id", "required")
	}
	if req.ToolName == "" {
		return nil, false, NewValidationError("tool_name", "required")
	}
	status := completionblock.Status(req.Status)
	if err := completionblock.StatusValidator(status); err != nil {
		return nil, false, NewValidationError("status", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.CompletionBlock.Query().
		Where(
			completionblock.AgentExecutionIDEQ(req.AgentExecutionID),
			completionblock.PlanDecisionIDEQ(req.PlanDecisionID),
			completionblock.SourceTypeEQ(completionblock.SourceTypeDecision),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query block: %w", err)
	}

	if existing == nil {
		if req.CompletionID == "" {
			return nil, false, NewValidationError("completion_id", "required")
		}
		builder := s.client.CompletionBlock.Create().
			SetID(uuid.New().String()).
			SetCompletionID(req.CompletionID).
			SetAgentExecutionID(req.AgentExecutionID).
			SetSourceType(completionblock.SourceTypeTool).
			SetToolExecutionID(req.ToolExecutionID).
			SetBlockIndex(req.BlockIndex).
			SetLoopIndex(req.LoopIndex).
			SetTitle(req.ToolName).
			SetStatus(status).
			SetStartedAt(time.Now())

		if req.PlanDecisionID != "" {
			builder = builder.SetPlanDecisionID(req.PlanDecisionID)
		}
		if req.CompletedAt != nil {
			builder = builder.SetCompletedAt(*req.CompletedAt)
		}

		block, createErr := builder.Save(ctx)
		if createErr != nil {
			if ent.IsConstraintError(createErr) {
				return nil, false, ErrAlreadyExists
			}
			return nil, false, fmt.Errorf("failed to create tool block: %w", createErr)
		}
		return block, true, nil
	}

	builder := existing.Update()
	changed := false

	suffix := " → " + req.ToolName
	if !strings.Contains(existing.Title, suffix) {
		builder = builder.SetTitle(existing.Title + suffix)
		changed = true
	}
	if status != existing.Status {
		builder = builder.SetStatus(status)
		changed = true
	}
	if req.ToolExecutionID != "" && req.ToolExecutionID != textOrEmpty(existing.ToolExecutionID) {
		builder = builder.SetToolExecutionID(req.ToolExecutionID)
		changed = true
	}
	if req.CompletedAt != nil && existing.CompletedAt == nil {
		builder = builder.SetCompletedAt(*req.CompletedAt)
		changed = true
	}

	if !changed {
		return existing, false, nil
	}

	block, err := builder.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to annotate block: %w", err)
	}

	return block, true, nil
}

// ListBlocks retrieves all blocks of a completion in transcript order.
func (s *BlockService) ListBlocks(ctx context.Context, completionID string) ([]*ent.CompletionBlock, error) {
	blocks, err := s.client.CompletionBlock.Query().
		Where(completionblock.CompletionIDEQ(completionID)).
		Order(ent.Asc(completionblock.FieldBlockIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}

	return blocks, nil
}

// ListExecutionBlocks retrieves all blocks of one execution in transcript
// order.
func (s *BlockService) ListExecutionBlocks(ctx context.Context, executionID string) ([]*ent.CompletionBlock, error) {
	blocks, err := s.client.CompletionBlock.Query().
		Where(completionblock.AgentExecutionIDEQ(executionID)).
		Order(ent.Asc(completionblock.FieldBlockIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list execution blocks: %w", err)
	}

	return blocks, nil
}

// MarkErrorOnLatestBlock flips the highest-indexed block of an execution to
// error and appends the message to its content, once.
func (s *BlockService) MarkErrorOnLatestBlock(httpCtx context.Context, executionID, msg string) (*ent.CompletionBlock, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	latest, err := s.client.CompletionBlock.Query().
		Where(completionblock.AgentExecutionIDEQ(executionID)).
		Order(ent.Desc(completionblock.FieldBlockIndex)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest block: %w", err)
	}

	notice := fmt.Sprintf("\n\nError: %s", msg)
	builder := latest.Update().SetStatus(completionblock.StatusError)

	content := textOrEmpty(latest.Content)
	if !strings.Contains(content, notice) {
		builder = builder.SetContent(content + notice)
	}

	block, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark block error: %w", err)
	}

	return block, nil
}

// MarkInFlightStopped flips every in_progress block of an execution to
// stopped. Called on sigkill so the transcript shows where the run was cut.
func (s *BlockService) MarkInFlightStopped(httpCtx context.Context, executionID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.CompletionBlock.Update().
		Where(
			completionblock.AgentExecutionIDEQ(executionID),
			completionblock.StatusEQ(completionblock.StatusInProgress),
		).
		SetStatus(completionblock.StatusStopped).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to stop blocks: %w", err)
	}

	return count, nil
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
