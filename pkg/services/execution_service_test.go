package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/pkg/models"
	testdb "github.com/quarryhq/quarry/test/database"
)

func TestExecutionService_CreateAgentExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	t.Run("opens an in_progress run", func(t *testing.T) {
		c := newCompletionFixture(t, client.Client)

		exec, err := service.CreateAgentExecution(ctx, models.CreateAgentExecutionRequest{
			CompletionID:   c.ID,
			ReportID:       c.ReportID,
			OrganizationID: testOrgID,
			UserID:         testUserID,
			Config:         map[string]any{"max_loops": 12},
		})
		require.NoError(t, err)
		assert.Equal(t, agentexecution.StatusInProgress, exec.Status)
		assert.Equal(t, 0, exec.LatestSeq)
		assert.Equal(t, c.ReportID, exec.ReportID)
		assert.Nil(t, exec.CompletedAt)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateAgentExecution(ctx, models.CreateAgentExecutionRequest{
			ReportID:       uuid.New().String(),
			OrganizationID: testOrgID,
			UserID:         testUserID,
		})
		requireValidationError(t, err, "completion_id")
	})
}

func TestExecutionService_NextSeq(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	exec := newExecutionFixture(t, client.Client)

	t.Run("allocates monotonically", func(t *testing.T) {
		for want := 1; want <= 3; want++ {
			seq, err := service.NextSeq(ctx, exec.ID)
			require.NoError(t, err)
			assert.Equal(t, want, seq)
		}
	})

	t.Run("unknown execution returns ErrNotFound", func(t *testing.T) {
		_, err := service.NextSeq(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExecutionService_FinishExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	t.Run("writes terminal status with duration", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		finished, err := service.FinishExecution(ctx, models.FinishAgentExecutionRequest{
			AgentExecutionID: exec.ID,
			Status:           string(agentexecution.StatusSuccess),
		})
		require.NoError(t, err)
		assert.Equal(t, agentexecution.StatusSuccess, finished.Status)
		require.NotNil(t, finished.CompletedAt)
		require.NotNil(t, finished.TotalDurationMs)
		assert.GreaterOrEqual(t, *finished.TotalDurationMs, 0)
	})

	t.Run("terminal status is write-once", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		_, err := service.FinishExecution(ctx, models.FinishAgentExecutionRequest{
			AgentExecutionID: exec.ID,
			Status:           string(agentexecution.StatusSigkill),
		})
		require.NoError(t, err)

		_, err = service.FinishExecution(ctx, models.FinishAgentExecutionRequest{
			AgentExecutionID: exec.ID,
			Status:           string(agentexecution.StatusSuccess),
		})
		assert.ErrorIs(t, err, ErrAlreadyFinalized)

		got, err := service.GetExecution(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, agentexecution.StatusSigkill, got.Status)
	})

	t.Run("stores the error message", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		finished, err := service.FinishExecution(ctx, models.FinishAgentExecutionRequest{
			AgentExecutionID: exec.ID,
			Status:           string(agentexecution.StatusError),
			ErrorMessage:     "loop budget exhausted",
		})
		require.NoError(t, err)
		require.NotNil(t, finished.ErrorMessage)
		assert.Equal(t, "loop budget exhausted", *finished.ErrorMessage)
	})

	t.Run("rejects in_progress as target", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		_, err := service.FinishExecution(ctx, models.FinishAgentExecutionRequest{
			AgentExecutionID: exec.ID,
			Status:           string(agentexecution.StatusInProgress),
		})
		requireValidationError(t, err, "status")
	})
}

func TestExecutionService_GetExecutionsByCompletion(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	c := newCompletionFixture(t, client.Client)

	// A retried completion accumulates executions
	for i := 0; i < 2; i++ {
		_, err := service.CreateAgentExecution(ctx, models.CreateAgentExecutionRequest{
			CompletionID:   c.ID,
			ReportID:       c.ReportID,
			OrganizationID: testOrgID,
			UserID:         testUserID,
		})
		require.NoError(t, err)
	}

	execs, err := service.GetExecutionsByCompletion(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, execs, 2)
	assert.False(t, execs[1].StartedAt.Before(execs[0].StartedAt))
}
