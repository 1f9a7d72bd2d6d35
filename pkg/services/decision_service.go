package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/pkg/models"
)

// DecisionService persists planner decisions. A decision row is created as a
// skeleton when its seq is pinned, then partial and final planner outputs
// land on the same row keyed by (agent_execution_id, seq).
type DecisionService struct {
	client *ent.Client
}

// NewDecisionService creates a new DecisionService
func NewDecisionService(client *ent.Client) *DecisionService {
	return &DecisionService{client: client}
}

// SavePlanDecision upserts the decision at its pinned seq. Text fields only
// ever grow during streaming, so empty request fields leave the stored values
// untouched rather than clearing them.
func (s *DecisionService) SavePlanDecision(httpCtx context.Context, req models.SavePlanDecisionRequest) (*ent.PlanDecision, error) {
	if req.AgentExecutionID == "" {
		return nil, NewValidationError("agent_execution_id", "required")
	}
	if req.Seq <= 0 {
		return nil, NewValidationError("seq", "must be positive")
	}
	if req.PlanType != "" && !req.PlanType.Valid() {
		return nil, NewValidationError("plan_type", "must be research or action")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.PlanDecision.Query().
		Where(
			plandecision.AgentExecutionIDEQ(req.AgentExecutionID),
			plandecision.SeqEQ(req.Seq),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query decision: %w", err)
	}

	if existing == nil {
		decision, createErr := s.createDecision(ctx, req)
		if createErr == nil {
			return decision, nil
		}
		// A lost create race falls through to the update path.
		if !ent.IsConstraintError(createErr) {
			return nil, createErr
		}
		existing, err = s.client.PlanDecision.Query().
			Where(
				plandecision.AgentExecutionIDEQ(req.AgentExecutionID),
				plandecision.SeqEQ(req.Seq),
			).
			First(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to re-query decision: %w", err)
		}
	}

	builder := existing.Update().
		SetAnalysisComplete(req.AnalysisComplete)
	if req.PlanType != "" {
		builder = builder.SetPlanType(plandecision.PlanType(req.PlanType))
	}
	if req.Reasoning != "" {
		builder = builder.SetReasoning(req.Reasoning)
	}
	if req.Assistant != "" {
		builder = builder.SetAssistant(req.Assistant)
	}
	if req.FinalAnswer != "" {
		builder = builder.SetFinalAnswer(req.FinalAnswer)
	}
	if req.ActionName != "" {
		builder = builder.SetActionName(req.ActionName)
	}
	if req.ActionArgs != nil {
		builder = builder.SetActionArgs(req.ActionArgs)
	}
	if req.Metrics != nil {
		builder = builder.SetMetrics(decisionMetricsMap(req.Metrics))
	}

	decision, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update decision: %w", err)
	}

	return decision, nil
}

func (s *DecisionService) createDecision(ctx context.Context, req models.SavePlanDecisionRequest) (*ent.PlanDecision, error) {
	builder := s.client.PlanDecision.Create().
		SetID(uuid.New().String()).
		SetAgentExecutionID(req.AgentExecutionID).
		SetSeq(req.Seq).
		SetLoopIndex(req.LoopIndex).
		SetAnalysisComplete(req.AnalysisComplete).
		SetCreatedAt(time.Now())

	if req.PlanType != "" {
		builder = builder.SetPlanType(plandecision.PlanType(req.PlanType))
	}
	if req.Reasoning != "" {
		builder = builder.SetReasoning(req.Reasoning)
	}
	if req.Assistant != "" {
		builder = builder.SetAssistant(req.Assistant)
	}
	if req.FinalAnswer != "" {
		builder = builder.SetFinalAnswer(req.FinalAnswer)
	}
	if req.ActionName != "" {
		builder = builder.SetActionName(req.ActionName)
	}
	if req.ActionArgs != nil {
		builder = builder.SetActionArgs(req.ActionArgs)
	}
	if req.Metrics != nil {
		builder = builder.SetMetrics(decisionMetricsMap(req.Metrics))
	}

	decision, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create decision: %w", err)
	}

	return decision, nil
}

// GetDecision retrieves a decision by ID.
func (s *DecisionService) GetDecision(ctx context.Context, decisionID string) (*ent.PlanDecision, error) {
	decision, err := s.client.PlanDecision.Get(ctx, decisionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}

	return decision, nil
}

// ListDecisions retrieves all decisions for an execution in seq order.
func (s *DecisionService) ListDecisions(ctx context.Context, executionID string) ([]*ent.PlanDecision, error) {
	decisions, err := s.client.PlanDecision.Query().
		Where(plandecision.AgentExecutionIDEQ(executionID)).
		Order(ent.Asc(plandecision.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}

	return decisions, nil
}

// LatestDecision retrieves the highest-seq decision of an execution. Used
// for report title synthesis, which summarizes the last plan.
func (s *DecisionService) LatestDecision(ctx context.Context, executionID string) (*ent.PlanDecision, error) {
	decision, err := s.client.PlanDecision.Query().
		Where(plandecision.AgentExecutionIDEQ(executionID)).
		Order(ent.Desc(plandecision.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest decision: %w", err)
	}

	return decision, nil
}

func decisionMetricsMap(m *models.DecisionMetrics) map[string]any {
	return map[string]any{
		"input_tokens":  m.InputTokens,
		"output_tokens": m.OutputTokens,
		"total_tokens":  m.TotalTokens,
		"latency_ms":    m.LatencyMs,
	}
}
