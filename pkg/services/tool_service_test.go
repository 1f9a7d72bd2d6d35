package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/quarryhq/quarry/pkg/models"
	testdb "github.com/quarryhq/quarry/test/database"
)

func TestToolService_StartToolExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewToolService(client.Client)
	ctx := context.Background()

	t.Run("records the invocation at dispatch", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		tool, err := service.StartToolExecution(ctx, models.StartToolExecutionRequest{
			AgentExecutionID: exec.ID,
			Seq:              1,
			ToolName:         "execute_query",
			ToolAction:       "run",
			Arguments:        map[string]any{"sql": "select count(*) from orders"},
			MaxRetries:       2,
		})
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusInProgress, tool.Status)
		assert.Equal(t, 1, tool.AttemptNumber)
		assert.False(t, tool.Success)
		assert.Nil(t, tool.CompletedAt)
	})

	t.Run("duplicate seq returns ErrAlreadyExists", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		req := models.StartToolExecutionRequest{
			AgentExecutionID: exec.ID,
			Seq:              7,
			ToolName:         "execute_query",
		}
		_, err := service.StartToolExecution(ctx, req)
		require.NoError(t, err)

		_, err = service.StartToolExecution(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.StartToolExecution(ctx, models.StartToolExecutionRequest{
			Seq:      1,
			ToolName: "execute_query",
		})
		requireValidationError(t, err, "agent_execution_id")

		_, err = service.StartToolExecution(ctx, models.StartToolExecutionRequest{
			AgentExecutionID: uuid.New().String(),
			Seq:              1,
		})
		requireValidationError(t, err, "tool_name")
	})
}

func TestToolService_FinishToolExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewToolService(client.Client)
	ctx := context.Background()

	start := func(t *testing.T, seq int) string {
		t.Helper()
		exec := newExecutionFixture(t, client.Client)
		tool, err := service.StartToolExecution(ctx, models.StartToolExecutionRequest{
			AgentExecutionID: exec.ID,
			Seq:              seq,
			ToolName:         "create_widget",
			Arguments:        map[string]any{"title": "Monthly revenue"},
		})
		require.NoError(t, err)
		return tool.ID
	}

	t.Run("success records results and duration", func(t *testing.T) {
		id := start(t, 1)

		finished, err := service.FinishToolExecution(ctx, models.FinishToolExecutionRequest{
			ToolExecutionID: id,
			Success:         true,
			ResultSummary:   "widget created",
			ResultJSON:      map[string]any{"widget_id": "w-1"},
			CreatedWidgetID: "w-1",
		})
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusSuccess, finished.Status)
		assert.True(t, finished.Success)
		require.NotNil(t, finished.CompletedAt)
		require.NotNil(t, finished.DurationMs)
		assert.GreaterOrEqual(t, *finished.DurationMs, 0)
		require.NotNil(t, finished.CreatedWidgetID)
		assert.Equal(t, "w-1", *finished.CreatedWidgetID)
	})

	t.Run("failure records the error", func(t *testing.T) {
		id := start(t, 2)

		finished, err := service.FinishToolExecution(ctx, models.FinishToolExecutionRequest{
			ToolExecutionID: id,
			Success:         false,
			ErrorMessage:    "relation does not exist",
		})
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusError, finished.Status)
		require.NotNil(t, finished.ErrorMessage)
		assert.Equal(t, "relation does not exist", *finished.ErrorMessage)
	})

	t.Run("finishing twice is a no-op", func(t *testing.T) {
		id := start(t, 3)

		first, err := service.FinishToolExecution(ctx, models.FinishToolExecutionRequest{
			ToolExecutionID: id,
			Success:         true,
		})
		require.NoError(t, err)

		second, err := service.FinishToolExecution(ctx, models.FinishToolExecutionRequest{
			ToolExecutionID: id,
			Success:         false,
			ErrorMessage:    "late failure",
		})
		require.NoError(t, err)
		assert.Equal(t, first.Status, second.Status)
		assert.True(t, second.Success)
		assert.Nil(t, second.ErrorMessage)
	})

	t.Run("unknown ID returns ErrNotFound", func(t *testing.T) {
		_, err := service.FinishToolExecution(ctx, models.FinishToolExecutionRequest{
			ToolExecutionID: uuid.New().String(),
			Success:         true,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestToolService_Queries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewToolService(client.Client)
	ctx := context.Background()

	exec := newExecutionFixture(t, client.Client)

	finish := func(t *testing.T, id string, success bool) {
		t.Helper()
		_, err := service.FinishToolExecution(ctx, models.FinishToolExecutionRequest{
			ToolExecutionID: id,
			Success:         success,
		})
		require.NoError(t, err)
	}

	// Two successful queries and one failed widget creation
	for seq, spec := range map[int]struct {
		name    string
		success bool
	}{
		1: {"execute_query", true},
		2: {"create_widget", false},
		3: {"execute_query", true},
	} {
		tool, err := service.StartToolExecution(ctx, models.StartToolExecutionRequest{
			AgentExecutionID: exec.ID,
			Seq:              seq,
			ToolName:         spec.name,
		})
		require.NoError(t, err)
		finish(t, tool.ID, spec.success)
	}

	t.Run("lists in seq order", func(t *testing.T) {
		tools, err := service.ListToolExecutions(ctx, exec.ID)
		require.NoError(t, err)
		require.Len(t, tools, 3)
		assert.Equal(t, 1, tools[0].Seq)
		assert.Equal(t, 3, tools[2].Seq)
	})

	t.Run("recent successful by tool is scoped and filtered", func(t *testing.T) {
		tools, err := service.RecentSuccessfulByTool(ctx, testOrgID, "execute_query", 10)
		require.NoError(t, err)
		assert.Len(t, tools, 2)

		none, err := service.RecentSuccessfulByTool(ctx, "org-other", "execute_query", 10)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("recent successful in report skips failures", func(t *testing.T) {
		tools, err := service.RecentSuccessfulInReport(ctx, exec.ReportID, 10)
		require.NoError(t, err)
		require.Len(t, tools, 2)
		for _, tool := range tools {
			assert.Equal(t, toolexecution.StatusSuccess, tool.Status)
		}
	})

	t.Run("previous tool in report walks backward", func(t *testing.T) {
		previous, err := service.PreviousToolInReport(ctx, exec.ReportID, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.NotEmpty(t, previous.ID)

		_, err = service.PreviousToolInReport(ctx, exec.ReportID, time.Now().Add(-time.Hour))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
