package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/quarryhq/quarry/pkg/models"
	testdb "github.com/quarryhq/quarry/test/database"
)

// TestServiceIntegration drives one completion through the whole run the way
// the worker does, across every service that touches it.
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	reportService := NewReportService(client.Client)
	completionService := NewCompletionService(client.Client)
	executionService := NewExecutionService(client.Client)
	decisionService := NewDecisionService(client.Client)
	toolService := NewToolService(client.Client)
	blockService := NewBlockService(client.Client)
	snapshotService := NewSnapshotService(client.Client)
	scoreService := NewScoreService(client.Client)
	usageService := NewUsageService(client.Client)
	eventService := NewEventService(client.Client)

	t.Run("full completion lifecycle", func(t *testing.T) {
		// 1. The first completion of a conversation races its report into existence
		reportID := uuid.New().String()
		report, err := reportService.EnsureReport(ctx, reportID, testOrgID, testUserID)
		require.NoError(t, err)
		assert.Equal(t, reportID, report.ID)

		// 2. Enqueue the completion
		comp, err := completionService.CreateCompletion(ctx, models.CreateCompletionRequest{
			ReportID:       reportID,
			OrganizationID: testOrgID,
			UserID:         testUserID,
			Prompt: models.PromptSpec{
				Content: "How did revenue trend over the last two quarters?",
				Mode:    "analysis",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, completion.StatusQueued, comp.Status)

		// 3. A worker claims it
		comp, err = completionService.UpdateStatus(ctx, comp.ID, "in_progress", "")
		require.NoError(t, err)
		assert.Equal(t, completion.StatusInProgress, comp.Status)

		// 4. The run starts
		exec, err := executionService.CreateAgentExecution(ctx, models.CreateAgentExecutionRequest{
			CompletionID:   comp.ID,
			ReportID:       reportID,
			OrganizationID: testOrgID,
			UserID:         testUserID,
			Config:         map[string]any{"max_loops": 15},
		})
		require.NoError(t, err)

		// 5. Loop 0: the planner decides to run a query
		seq, err := executionService.NextSeq(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, seq)

		decision, err := decisionService.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
			AgentExecutionID: exec.ID,
			Seq:              seq,
			LoopIndex:        0,
			PlanType:         models.PlanTypeResearch,
			Reasoning:        "Need quarterly revenue before answering",
			ActionName:       "execute_query",
			ActionArgs:       map[string]any{"sql": "select quarter, sum(amount) from orders group by 1"},
			Metrics:          &models.DecisionMetrics{InputTokens: 900, OutputTokens: 120, TotalTokens: 1020},
		})
		require.NoError(t, err)

		// 6. The decision streams into a UI block
		block, changed, err := blockService.UpsertDecisionBlock(ctx, models.UpsertDecisionBlockRequest{
			CompletionID:     comp.ID,
			AgentExecutionID: exec.ID,
			PlanDecisionID:   decision.ID,
			LoopIndex:        0,
			BlockIndex:       0,
			Title:            "Looking at quarterly revenue",
			Status:           string(completionblock.StatusInProgress),
			Reasoning:        "Need quarterly revenue before answering",
		})
		require.NoError(t, err)
		assert.True(t, changed)

		// 7. The tool dispatches under its own seq
		toolSeq, err := executionService.NextSeq(ctx, exec.ID)
		require.NoError(t, err)
		tool, err := toolService.StartToolExecution(ctx, models.StartToolExecutionRequest{
			AgentExecutionID: exec.ID,
			PlanDecisionID:   decision.ID,
			Seq:              toolSeq,
			ToolName:         "execute_query",
			Arguments:        map[string]any{"sql": "select quarter, sum(amount) from orders group by 1"},
		})
		require.NoError(t, err)

		// 8. The block picks up the tool annotation
		annotated, changed, err := blockService.AnnotateToolBlock(ctx, models.AnnotateToolBlockRequest{
			CompletionID:     comp.ID,
			AgentExecutionID: exec.ID,
			PlanDecisionID:   decision.ID,
			ToolExecutionID:  tool.ID,
			ToolName:         "execute_query",
			LoopIndex:        0,
			BlockIndex:       0,
			Status:           string(completionblock.StatusInProgress),
		})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, block.ID, annotated.ID)
		assert.Contains(t, annotated.Title, "execute_query")

		// 9. The tool succeeds and its tables are recorded
		_, err = toolService.FinishToolExecution(ctx, models.FinishToolExecutionRequest{
			ToolExecutionID: tool.ID,
			Success:         true,
			ResultSummary:   "8 rows",
			ResultJSON:      map[string]any{"rows": 8},
		})
		require.NoError(t, err)

		_, err = usageService.RecordTableUsage(ctx, models.RecordTableUsageRequest{
			OrganizationID:   testOrgID,
			Datasource:       "warehouse",
			Tables:           []string{"orders"},
			Success:          true,
			AgentExecutionID: exec.ID,
		})
		require.NoError(t, err)

		// 10. The post-tool context is frozen for audit
		_, err = snapshotService.SaveContextSnapshot(ctx, models.SaveContextSnapshotRequest{
			AgentExecutionID: exec.ID,
			Kind:             "post_tool",
			LoopIndex:        0,
			ContextView:      map[string]any{"tools_run": 1},
		})
		require.NoError(t, err)

		// 11. Loop 1: the planner has what it needs and finishes
		finalSeq, err := executionService.NextSeq(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, finalSeq)

		_, err = decisionService.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
			AgentExecutionID: exec.ID,
			Seq:              finalSeq,
			LoopIndex:        1,
			PlanType:         models.PlanTypeResearch,
			AnalysisComplete: true,
			FinalAnswer:      "Revenue grew 12% QoQ, driven by the enterprise tier.",
		})
		require.NoError(t, err)

		completedAt := time.Now()
		_, _, err = blockService.UpsertDecisionBlock(ctx, models.UpsertDecisionBlockRequest{
			CompletionID:     comp.ID,
			AgentExecutionID: exec.ID,
			LoopIndex:        1,
			BlockIndex:       1,
			Title:            "Summarizing the trend",
			Status:           string(completionblock.StatusCompleted),
			CompletedAt:      &completedAt,
		})
		require.NoError(t, err)

		// 12. The answer lands on the completion
		comp, err = completionService.UpdateContent(ctx, comp.ID,
			"Revenue grew 12% QoQ, driven by the enterprise tier.",
			"Compared the last two quarters from the orders table.")
		require.NoError(t, err)
		require.NotNil(t, comp.Content)

		// 13. The run finishes, then the completion
		finished, err := executionService.FinishExecution(ctx, models.FinishAgentExecutionRequest{
			AgentExecutionID: exec.ID,
			Status:           "success",
		})
		require.NoError(t, err)
		assert.Equal(t, agentexecution.StatusSuccess, finished.Status)
		require.NotNil(t, finished.TotalDurationMs)

		comp, err = completionService.UpdateStatus(ctx, comp.ID, "completed", "")
		require.NoError(t, err)
		assert.Equal(t, completion.StatusCompleted, comp.Status)

		// 14. The judge scores the finished run
		pending, err := scoreService.CreatePendingScore(ctx, exec.ID, "response_quality")
		require.NoError(t, err)
		_, err = scoreService.CompleteScore(ctx, pending.ID, 90, "grounded in the right table")
		require.NoError(t, err)

		// 15. Everything reads back consistently
		withBlocks, err := completionService.GetCompletionWithBlocks(ctx, comp.ID)
		require.NoError(t, err)
		require.Len(t, withBlocks.Edges.Blocks, 2)
		assert.Equal(t, completionblock.StatusCompleted, withBlocks.Edges.Blocks[1].Status)

		decisions, err := decisionService.ListDecisions(ctx, exec.ID)
		require.NoError(t, err)
		require.Len(t, decisions, 2)
		assert.True(t, decisions[1].AnalysisComplete)

		tools, err := toolService.ListToolExecutions(ctx, exec.ID)
		require.NoError(t, err)
		require.Len(t, tools, 1)
		assert.Equal(t, toolexecution.StatusSuccess, tools[0].Status)

		snapshots, err := snapshotService.ListSnapshots(ctx, exec.ID)
		require.NoError(t, err)
		assert.Len(t, snapshots, 1)

		scores, err := scoreService.ListScores(ctx, exec.ID)
		require.NoError(t, err)
		require.Len(t, scores, 1)
		require.NotNil(t, scores[0].Score)
		assert.Equal(t, 90, *scores[0].Score)

		// 16. Retention reclaims the outbox once the completion is terminal
		seedEvent(t, client.Client, "completion:"+comp.ID, comp.ID, map[string]any{"type": "completion.status"})
		count, err := eventService.CleanupCompletionEvents(ctx, comp.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
