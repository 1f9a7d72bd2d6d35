package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/pkg/models"
)

// CompletionService manages completion lifecycle: enqueue, status
// transitions, sigkill flagging and the queue-coordination fields workers
// lean on. Claiming itself lives in pkg/queue, which needs row locking.
type CompletionService struct {
	client *ent.Client
}

// NewCompletionService creates a new CompletionService
func NewCompletionService(client *ent.Client) *CompletionService {
	return &CompletionService{client: client}
}

// CreateCompletion enqueues a user turn.
func (s *CompletionService) CreateCompletion(httpCtx context.Context, req models.CreateCompletionRequest) (*ent.Completion, error) {
	if req.ReportID == "" {
		return nil, NewValidationError("report_id", "required")
	}
	if req.OrganizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Prompt.Content == "" {
		return nil, NewValidationError("prompt.content", "required")
	}

	prompt, err := promptToMap(req.Prompt)
	if err != nil {
		return nil, NewValidationError("prompt", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.Completion.Create().
		SetID(uuid.New().String()).
		SetReportID(req.ReportID).
		SetOrganizationID(req.OrganizationID).
		SetUserID(req.UserID).
		SetStatus(completion.StatusQueued).
		SetPrompt(prompt).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create completion: %w", err)
	}

	return created, nil
}

// GetCompletion retrieves a completion by ID.
func (s *CompletionService) GetCompletion(ctx context.Context, completionID string) (*ent.Completion, error) {
	c, err := s.client.Completion.Get(ctx, completionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get completion: %w", err)
	}

	return c, nil
}

// GetCompletionWithBlocks retrieves a completion with its blocks loaded in
// transcript order.
func (s *CompletionService) GetCompletionWithBlocks(ctx context.Context, completionID string) (*ent.Completion, error) {
	c, err := s.client.Completion.Query().
		Where(completion.IDEQ(completionID)).
		WithBlocks(func(q *ent.CompletionBlockQuery) {
			q.Order(ent.Asc(completionblock.FieldBlockIndex))
		}).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get completion: %w", err)
	}

	return c, nil
}

// ListCompletions retrieves completions matching the filters, newest first,
// with a total count for pagination.
func (s *CompletionService) ListCompletions(ctx context.Context, filters models.CompletionFilters) (*models.CompletionListResponse, error) {
	query := s.client.Completion.Query()

	if filters.ReportID != "" {
		query = query.Where(completion.ReportIDEQ(filters.ReportID))
	}
	if filters.OrganizationID != "" {
		query = query.Where(completion.OrganizationIDEQ(filters.OrganizationID))
	}
	if filters.Status != "" {
		status := completion.Status(filters.Status)
		if err := completion.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		query = query.Where(completion.StatusEQ(status))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count completions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	completions, err := query.
		Order(ent.Desc(completion.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}

	return &models.CompletionListResponse{
		Completions: completions,
		TotalCount:  total,
		Limit:       limit,
		Offset:      offset,
	}, nil
}

// UpdateStatus transitions a completion. Terminal statuses (completed,
// stopped, error) are write-once; moving a finished row returns
// ErrAlreadyFinalized. Transitions back to queued are not allowed.
func (s *CompletionService) UpdateStatus(httpCtx context.Context, completionID, status, errorMessage string) (*ent.Completion, error) {
	target := completion.Status(status)
	if err := completion.StatusValidator(target); err != nil {
		return nil, NewValidationError("status", err.Error())
	}
	if target == completion.StatusQueued {
		return nil, NewValidationError("status", "cannot transition back to queued")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := s.client.Completion.Get(ctx, completionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get completion: %w", err)
	}
	if isTerminalCompletionStatus(c.Status) {
		return nil, ErrAlreadyFinalized
	}

	builder := c.Update().SetStatus(target)
	if errorMessage != "" {
		builder = builder.SetErrorMessage(errorMessage)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update completion status: %w", err)
	}

	return updated, nil
}

// UpdateContent writes the rebuilt assistant message and reasoning. Blocks
// only grow, so empty strings mean "nothing projected yet" and leave the
// stored values alone.
func (s *CompletionService) UpdateContent(httpCtx context.Context, completionID, content, reasoning string) (*ent.Completion, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Completion.UpdateOneID(completionID)
	if content != "" {
		builder = builder.SetContent(content)
	}
	if reasoning != "" {
		builder = builder.SetReasoning(reasoning)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update completion content: %w", err)
	}

	return updated, nil
}

// RequestSigkill flags the completion for cancellation. The returned bool
// reports whether this call set the flag; repeated requests and requests
// against finished completions are no-ops.
func (s *CompletionService) RequestSigkill(httpCtx context.Context, completionID string) (*ent.Completion, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := s.client.Completion.Get(ctx, completionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to get completion: %w", err)
	}
	if c.SigkillAt != nil || isTerminalCompletionStatus(c.Status) {
		return c, false, nil
	}

	updated, err := c.Update().
		SetSigkillAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to set sigkill: %w", err)
	}

	return updated, true, nil
}

// Heartbeat refreshes the worker liveness timestamp for a claimed
// completion.
func (s *CompletionService) Heartbeat(httpCtx context.Context, completionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Completion.UpdateOneID(completionID).
		SetHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to heartbeat completion: %w", err)
	}

	return nil
}

// CountForReport returns how many completions the report holds. The first
// turn of a report triggers title synthesis.
func (s *CompletionService) CountForReport(ctx context.Context, reportID string) (int, error) {
	count, err := s.client.Completion.Query().
		Where(completion.ReportIDEQ(reportID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count completions: %w", err)
	}

	return count, nil
}

// CountQueued returns the current queue depth.
func (s *CompletionService) CountQueued(ctx context.Context) (int, error) {
	count, err := s.client.Completion.Query().
		Where(completion.StatusEQ(completion.StatusQueued)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued completions: %w", err)
	}

	return count, nil
}

func isTerminalCompletionStatus(status completion.Status) bool {
	switch status {
	case completion.StatusCompleted, completion.StatusStopped, completion.StatusError:
		return true
	default:
		return false
	}
}

func promptToMap(p models.PromptSpec) (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("not JSON-serializable: %w", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("not JSON round-trippable: %w", err)
	}

	return m, nil
}
