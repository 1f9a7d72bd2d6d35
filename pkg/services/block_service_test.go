package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/pkg/models"
	testdb "github.com/quarryhq/quarry/test/database"
)

func decisionBlockRequest(exec *ent.AgentExecution, loopIndex int) models.UpsertDecisionBlockRequest {
	return models.UpsertDecisionBlockRequest{
		CompletionID:     exec.CompletionID,
		AgentExecutionID: exec.ID,
		LoopIndex:        loopIndex,
		BlockIndex:       loopIndex,
		Title:            "Planning",
		Status:           string(completionblock.StatusInProgress),
	}
}

func TestBlockService_UpsertDecisionBlock(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBlockService(client.Client)
	ctx := context.Background()

	t.Run("creates then updates the same row", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		block, changed, err := service.UpsertDecisionBlock(ctx, decisionBlockRequest(exec, 0))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, completionblock.SourceTypeDecision, block.SourceType)

		// Streaming grows the content on the same row
		req := decisionBlockRequest(exec, 0)
		req.Content = "Looking at monthly revenue."
		updated, changed, err := service.UpsertDecisionBlock(ctx, req)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, block.ID, updated.ID)
		require.NotNil(t, updated.Content)
		assert.Equal(t, "Looking at monthly revenue.", *updated.Content)
	})

	t.Run("identical upsert writes nothing", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		req := decisionBlockRequest(exec, 1)
		req.Content = "stable"
		_, _, err := service.UpsertDecisionBlock(ctx, req)
		require.NoError(t, err)

		_, changed, err := service.UpsertDecisionBlock(ctx, req)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("completed_at is write-once", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		first := time.Now().Add(-time.Minute)
		req := decisionBlockRequest(exec, 2)
		req.Status = string(completionblock.StatusCompleted)
		req.CompletedAt = &first
		block, _, err := service.UpsertDecisionBlock(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, block.CompletedAt)

		later := time.Now()
		req.CompletedAt = &later
		block, changed, err := service.UpsertDecisionBlock(ctx, req)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, first.Unix(), block.CompletedAt.Unix())
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, _, err := service.UpsertDecisionBlock(ctx, models.UpsertDecisionBlockRequest{
			AgentExecutionID: "x",
			Title:            "t",
			Status:           "in_progress",
		})
		requireValidationError(t, err, "completion_id")

		_, _, err = service.UpsertDecisionBlock(ctx, models.UpsertDecisionBlockRequest{
			CompletionID:     "x",
			AgentExecutionID: "y",
			Title:            "t",
			Status:           "running",
		})
		requireValidationError(t, err, "status")
	})
}

func TestBlockService_AnnotateToolBlock(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBlockService(client.Client)
	ctx := context.Background()

	t.Run("folds the tool into its decision block", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)
		decisions := NewDecisionService(client.Client)

		decision, err := decisions.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
			AgentExecutionID: exec.ID,
			Seq:              1,
			LoopIndex:        0,
		})
		require.NoError(t, err)

		req := decisionBlockRequest(exec, 0)
		req.PlanDecisionID = decision.ID
		block, _, err := service.UpsertDecisionBlock(ctx, req)
		require.NoError(t, err)

		annotated, changed, err := service.AnnotateToolBlock(ctx, models.AnnotateToolBlockRequest{
			CompletionID:     exec.CompletionID,
			AgentExecutionID: exec.ID,
			PlanDecisionID:   decision.ID,
			ToolName:         "execute_query",
			LoopIndex:        0,
			BlockIndex:       0,
			Status:           string(completionblock.StatusInProgress),
		})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, block.ID, annotated.ID)
		assert.Equal(t, "Planning → execute_query", annotated.Title)

		// Re-annotating does not stack the suffix
		annotated, _, err = service.AnnotateToolBlock(ctx, models.AnnotateToolBlockRequest{
			CompletionID:     exec.CompletionID,
			AgentExecutionID: exec.ID,
			PlanDecisionID:   decision.ID,
			ToolName:         "execute_query",
			LoopIndex:        0,
			BlockIndex:       0,
			Status:           string(completionblock.StatusCompleted),
		})
		require.NoError(t, err)
		assert.Equal(t, "Planning → execute_query", annotated.Title)
		assert.Equal(t, completionblock.StatusCompleted, annotated.Status)
	})

	t.Run("creates a tool block when the decision block is missing", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		block, changed, err := service.AnnotateToolBlock(ctx, models.AnnotateToolBlockRequest{
			CompletionID:     exec.CompletionID,
			AgentExecutionID: exec.ID,
			ToolName:         "create_widget",
			LoopIndex:        0,
			BlockIndex:       0,
			Status:           string(completionblock.StatusInProgress),
		})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, completionblock.SourceTypeTool, block.SourceType)
		assert.Equal(t, "create_widget", block.Title)
	})
}

func TestBlockService_ListBlocks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBlockService(client.Client)
	completions := NewCompletionService(client.Client)
	ctx := context.Background()

	exec := newExecutionFixture(t, client.Client)

	for _, idx := range []int{2, 0, 1} {
		req := decisionBlockRequest(exec, idx)
		req.BlockIndex = idx
		_, _, err := service.UpsertDecisionBlock(ctx, req)
		require.NoError(t, err)
	}

	blocks, err := service.ListBlocks(ctx, exec.CompletionID)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	for i, b := range blocks {
		assert.Equal(t, i, b.BlockIndex)
	}

	// Eager-loaded blocks come back in the same order
	withBlocks, err := completions.GetCompletionWithBlocks(ctx, exec.CompletionID)
	require.NoError(t, err)
	require.Len(t, withBlocks.Edges.Blocks, 3)
	assert.Equal(t, 0, withBlocks.Edges.Blocks[0].BlockIndex)
}

func TestBlockService_MarkErrorOnLatestBlock(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBlockService(client.Client)
	ctx := context.Background()

	exec := newExecutionFixture(t, client.Client)

	for _, idx := range []int{0, 1} {
		_, _, err := service.UpsertDecisionBlock(ctx, decisionBlockRequest(exec, idx))
		require.NoError(t, err)
	}

	block, err := service.MarkErrorOnLatestBlock(ctx, exec.ID, "query timed out")
	require.NoError(t, err)
	assert.Equal(t, 1, block.BlockIndex)
	assert.Equal(t, completionblock.StatusError, block.Status)
	require.NotNil(t, block.Content)
	assert.Contains(t, *block.Content, "query timed out")

	// Repeating appends nothing
	block, err = service.MarkErrorOnLatestBlock(ctx, exec.ID, "query timed out")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(*block.Content, "query timed out"))
}

func TestBlockService_MarkInFlightStopped(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBlockService(client.Client)
	ctx := context.Background()

	exec := newExecutionFixture(t, client.Client)

	done := decisionBlockRequest(exec, 0)
	done.Status = string(completionblock.StatusCompleted)
	_, _, err := service.UpsertDecisionBlock(ctx, done)
	require.NoError(t, err)

	_, _, err = service.UpsertDecisionBlock(ctx, decisionBlockRequest(exec, 1))
	require.NoError(t, err)

	count, err := service.MarkInFlightStopped(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	blocks, err := service.ListExecutionBlocks(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, completionblock.StatusCompleted, blocks[0].Status)
	assert.Equal(t, completionblock.StatusStopped, blocks[1].Status)
}
