package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/executionscore"
)

// ScoreService persists judge-produced quality scores. A score row starts
// pending when the judge run is kicked off and resolves exactly once to
// completed or failed.
type ScoreService struct {
	client *ent.Client
}

// NewScoreService creates a new ScoreService
func NewScoreService(client *ent.Client) *ScoreService {
	return &ScoreService{client: client}
}

// CreatePendingScore reserves the score slot for one kind of judgement.
// Each run can hold at most one score per kind.
func (s *ScoreService) CreatePendingScore(httpCtx context.Context, executionID, kind string) (*ent.ExecutionScore, error) {
	if executionID == "" {
		return nil, NewValidationError("agent_execution_id", "required")
	}
	k := executionscore.Kind(kind)
	if err := executionscore.KindValidator(k); err != nil {
		return nil, NewValidationError("kind", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	score, err := s.client.ExecutionScore.Create().
		SetID(uuid.New().String()).
		SetAgentExecutionID(executionID).
		SetKind(k).
		SetStatus(executionscore.StatusPending).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create score: %w", err)
	}

	return score, nil
}

// CompleteScore resolves a pending score with the judge's verdict.
func (s *ScoreService) CompleteScore(httpCtx context.Context, scoreID string, score int, rationale string) (*ent.ExecutionScore, error) {
	if score < 0 || score > 100 {
		return nil, NewValidationError("score", "must be between 0 and 100")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.pendingScore(ctx, scoreID)
	if err != nil {
		return nil, err
	}

	builder := row.Update().
		SetScore(score).
		SetStatus(executionscore.StatusCompleted).
		SetCompletedAt(time.Now())

	if rationale != "" {
		builder = builder.SetRationale(rationale)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete score: %w", err)
	}

	return updated, nil
}

// FailScore resolves a pending score after a judge failure.
func (s *ScoreService) FailScore(httpCtx context.Context, scoreID, errorMessage string) (*ent.ExecutionScore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.pendingScore(ctx, scoreID)
	if err != nil {
		return nil, err
	}

	builder := row.Update().
		SetStatus(executionscore.StatusFailed).
		SetCompletedAt(time.Now())

	if errorMessage != "" {
		builder = builder.SetErrorMessage(errorMessage)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fail score: %w", err)
	}

	return updated, nil
}

// ListScores retrieves all scores for an execution.
func (s *ScoreService) ListScores(ctx context.Context, executionID string) ([]*ent.ExecutionScore, error) {
	scores, err := s.client.ExecutionScore.Query().
		Where(executionscore.AgentExecutionIDEQ(executionID)).
		Order(ent.Asc(executionscore.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	return scores, nil
}

func (s *ScoreService) pendingScore(ctx context.Context, scoreID string) (*ent.ExecutionScore, error) {
	row, err := s.client.ExecutionScore.Get(ctx, scoreID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}
	if row.Status != executionscore.StatusPending {
		return nil, ErrAlreadyFinalized
	}

	return row, nil
}
