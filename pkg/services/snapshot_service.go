package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/contextsnapshot"
	"github.com/quarryhq/quarry/pkg/models"
)

// SnapshotService persists frozen context views for audit and replay.
// Snapshots are append-only; callers treat write failures as non-fatal.
type SnapshotService struct {
	client *ent.Client
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(client *ent.Client) *SnapshotService {
	return &SnapshotService{client: client}
}

// SaveContextSnapshot appends one snapshot for a run.
func (s *SnapshotService) SaveContextSnapshot(httpCtx context.Context, req models.SaveContextSnapshotRequest) (*ent.ContextSnapshot, error) {
	if req.AgentExecutionID == "" {
		return nil, NewValidationError("agent_execution_id", "required")
	}
	kind := contextsnapshot.Kind(req.Kind)
	if err := contextsnapshot.KindValidator(kind); err != nil {
		return nil, NewValidationError("kind", err.Error())
	}

	view, err := jsonSafeView(req.ContextView)
	if err != nil {
		return nil, NewValidationError("context_view", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ContextSnapshot.Create().
		SetID(uuid.New().String()).
		SetAgentExecutionID(req.AgentExecutionID).
		SetKind(kind).
		SetLoopIndex(req.LoopIndex).
		SetContextView(view).
		SetCreatedAt(time.Now())

	if req.PromptText != "" {
		builder = builder.SetPromptText(req.PromptText)
	}
	if req.PromptTokens != nil {
		builder = builder.SetPromptTokens(*req.PromptTokens)
	}

	snapshot, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	return snapshot, nil
}

// ListSnapshots retrieves all snapshots of an execution, oldest first.
func (s *SnapshotService) ListSnapshots(ctx context.Context, executionID string) ([]*ent.ContextSnapshot, error) {
	snapshots, err := s.client.ContextSnapshot.Query().
		Where(contextsnapshot.AgentExecutionIDEQ(executionID)).
		Order(ent.Asc(contextsnapshot.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	return snapshots, nil
}

// LatestSnapshot retrieves the newest snapshot of one kind for an execution.
func (s *SnapshotService) LatestSnapshot(ctx context.Context, executionID string, kind string) (*ent.ContextSnapshot, error) {
	k := contextsnapshot.Kind(kind)
	if err := contextsnapshot.KindValidator(k); err != nil {
		return nil, NewValidationError("kind", err.Error())
	}

	snapshot, err := s.client.ContextSnapshot.Query().
		Where(
			contextsnapshot.AgentExecutionIDEQ(executionID),
			contextsnapshot.KindEQ(k),
		).
		Order(ent.Desc(contextsnapshot.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return snapshot, nil
}

// DeleteSnapshotsOlderThan prunes snapshots past the retention window and
// returns how many were removed.
func (s *SnapshotService) DeleteSnapshotsOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.ContextSnapshot.Delete().
		Where(contextsnapshot.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete snapshots: %w", err)
	}

	return count, nil
}

// jsonSafeView round-trips the view through JSON so values land in the row
// exactly as readers will get them back: timestamps become RFC 3339 strings,
// structs become plain maps, and anything unserializable is caught here
// instead of deep inside the driver.
func jsonSafeView(view map[string]any) (map[string]any, error) {
	if view == nil {
		return map[string]any{}, nil
	}

	raw, err := json.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("not JSON-serializable: %w", err)
	}

	var safe map[string]any
	if err := json.Unmarshal(raw, &safe); err != nil {
		return nil, fmt.Errorf("not JSON round-trippable: %w", err)
	}

	return safe, nil
}
