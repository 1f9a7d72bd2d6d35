package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/pkg/models"
	testdb "github.com/quarryhq/quarry/test/database"
)

func TestDecisionService_SavePlanDecision(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDecisionService(client.Client)
	ctx := context.Background()

	t.Run("partial then final land on the same row", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		// Skeleton written when the seq is pinned
		skeleton, err := service.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
			AgentExecutionID: exec.ID,
			Seq:              1,
			LoopIndex:        0,
		})
		require.NoError(t, err)
		assert.Equal(t, plandecision.PlanTypeResearch, skeleton.PlanType)
		assert.False(t, skeleton.AnalysisComplete)

		// Streaming partial adds reasoning
		partial, err := service.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
			AgentExecutionID: exec.ID,
			Seq:              1,
			LoopIndex:        0,
			Reasoning:        "Need the monthly revenue table first.",
		})
		require.NoError(t, err)
		assert.Equal(t, skeleton.ID, partial.ID)

		// Final decision carries the action and metrics
		final, err := service.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
			AgentExecutionID: exec.ID,
			Seq:              1,
			LoopIndex:        0,
			PlanType:         models.PlanTypeResearch,
			Reasoning:        "Need the monthly revenue table first.",
			ActionName:       "execute_query",
			ActionArgs:       map[string]any{"sql": "select 1"},
			Metrics:          &models.DecisionMetrics{InputTokens: 900, OutputTokens: 120, TotalTokens: 1020, LatencyMs: 340},
		})
		require.NoError(t, err)
		assert.Equal(t, skeleton.ID, final.ID)
		require.NotNil(t, final.ActionName)
		assert.Equal(t, "execute_query", *final.ActionName)
		assert.Equal(t, "select 1", final.ActionArgs["sql"])
		assert.EqualValues(t, 1020, final.Metrics["total_tokens"])
	})

	t.Run("empty fields never clear stored values", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		_, err := service.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
			AgentExecutionID: exec.ID,
			Seq:              2,
			LoopIndex:        1,
			Assistant:        "Here is what I found so far.",
		})
		require.NoError(t, err)

		updated, err := service.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
			AgentExecutionID: exec.ID,
			Seq:              2,
			LoopIndex:        1,
			AnalysisComplete: true,
			FinalAnswer:      "Revenue grew 12% month over month.",
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Assistant)
		assert.Equal(t, "Here is what I found so far.", *updated.Assistant)
		require.NotNil(t, updated.FinalAnswer)
		assert.True(t, updated.AnalysisComplete)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.SavePlanDecision(ctx, models.SavePlanDecisionRequest{Seq: 1})
		requireValidationError(t, err, "agent_execution_id")

		_, err = service.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
			AgentExecutionID: uuid.New().String(),
			Seq:              0,
		})
		requireValidationError(t, err, "seq")

		_, err = service.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
			AgentExecutionID: uuid.New().String(),
			Seq:              1,
			PlanType:         models.PlanType("guess"),
		})
		requireValidationError(t, err, "plan_type")
	})
}

func TestDecisionService_ListDecisions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDecisionService(client.Client)
	ctx := context.Background()

	exec := newExecutionFixture(t, client.Client)

	// Inserted out of order; listing is by seq
	for _, seq := range []int{5, 1, 3} {
		_, err := service.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
			AgentExecutionID: exec.ID,
			Seq:              seq,
			LoopIndex:        seq,
		})
		require.NoError(t, err)
	}

	decisions, err := service.ListDecisions(ctx, exec.ID)
	require.NoError(t, err)
	require.Len(t, decisions, 3)
	assert.Equal(t, 1, decisions[0].Seq)
	assert.Equal(t, 3, decisions[1].Seq)
	assert.Equal(t, 5, decisions[2].Seq)

	latest, err := service.LatestDecision(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, latest.Seq)
}

func TestDecisionService_LatestDecision_Empty(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDecisionService(client.Client)

	exec := newExecutionFixture(t, client.Client)

	_, err := service.LatestDecision(context.Background(), exec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
