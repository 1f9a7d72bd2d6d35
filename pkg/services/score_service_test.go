package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/executionscore"
	testdb "github.com/quarryhq/quarry/test/database"
)

func TestScoreService_CreatePendingScore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScoreService(client.Client)
	ctx := context.Background()

	t.Run("reserves the slot as pending", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		score, err := service.CreatePendingScore(ctx, exec.ID, "response_quality")
		require.NoError(t, err)
		assert.Equal(t, executionscore.StatusPending, score.Status)
		assert.Equal(t, executionscore.KindResponseQuality, score.Kind)
		assert.Nil(t, score.Score)
		assert.Nil(t, score.CompletedAt)
	})

	t.Run("one score per kind per run", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		_, err := service.CreatePendingScore(ctx, exec.ID, "context_effectiveness")
		require.NoError(t, err)

		_, err = service.CreatePendingScore(ctx, exec.ID, "context_effectiveness")
		assert.ErrorIs(t, err, ErrAlreadyExists)

		// A different kind still fits
		_, err = service.CreatePendingScore(ctx, exec.ID, "instruction_effectiveness")
		assert.NoError(t, err)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.CreatePendingScore(ctx, "", "response_quality")
		requireValidationError(t, err, "agent_execution_id")

		exec := newExecutionFixture(t, client.Client)
		_, err = service.CreatePendingScore(ctx, exec.ID, "vibes")
		requireValidationError(t, err, "kind")
	})
}

func TestScoreService_CompleteScore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScoreService(client.Client)
	ctx := context.Background()

	t.Run("records the verdict", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)
		pending, err := service.CreatePendingScore(ctx, exec.ID, "response_quality")
		require.NoError(t, err)

		completed, err := service.CompleteScore(ctx, pending.ID, 85, "answer cites the right tables")
		require.NoError(t, err)
		assert.Equal(t, executionscore.StatusCompleted, completed.Status)
		require.NotNil(t, completed.Score)
		assert.Equal(t, 85, *completed.Score)
		require.NotNil(t, completed.Rationale)
		assert.Equal(t, "answer cites the right tables", *completed.Rationale)
		assert.NotNil(t, completed.CompletedAt)
	})

	t.Run("resolves exactly once", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)
		pending, err := service.CreatePendingScore(ctx, exec.ID, "response_quality")
		require.NoError(t, err)

		_, err = service.CompleteScore(ctx, pending.ID, 40, "")
		require.NoError(t, err)

		_, err = service.CompleteScore(ctx, pending.ID, 90, "second opinion")
		assert.ErrorIs(t, err, ErrAlreadyFinalized)

		stored, err := client.ExecutionScore.Get(ctx, pending.ID)
		require.NoError(t, err)
		assert.Equal(t, 40, *stored.Score)
	})

	t.Run("rejects out-of-range scores", func(t *testing.T) {
		_, err := service.CompleteScore(ctx, uuid.New().String(), 101, "")
		requireValidationError(t, err, "score")

		_, err = service.CompleteScore(ctx, uuid.New().String(), -1, "")
		requireValidationError(t, err, "score")
	})

	t.Run("unknown ID returns ErrNotFound", func(t *testing.T) {
		_, err := service.CompleteScore(ctx, uuid.New().String(), 50, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestScoreService_FailScore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScoreService(client.Client)
	ctx := context.Background()

	t.Run("records the judge failure", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)
		pending, err := service.CreatePendingScore(ctx, exec.ID, "instruction_effectiveness")
		require.NoError(t, err)

		failed, err := service.FailScore(ctx, pending.ID, "judge run timed out")
		require.NoError(t, err)
		assert.Equal(t, executionscore.StatusFailed, failed.Status)
		assert.Nil(t, failed.Score)
		require.NotNil(t, failed.ErrorMessage)
		assert.Equal(t, "judge run timed out", *failed.ErrorMessage)
	})

	t.Run("cannot fail a completed score", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)
		pending, err := service.CreatePendingScore(ctx, exec.ID, "instruction_effectiveness")
		require.NoError(t, err)

		_, err = service.CompleteScore(ctx, pending.ID, 70, "")
		require.NoError(t, err)

		_, err = service.FailScore(ctx, pending.ID, "late failure")
		assert.ErrorIs(t, err, ErrAlreadyFinalized)
	})
}

func TestScoreService_ListScores(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScoreService(client.Client)
	ctx := context.Background()

	exec := newExecutionFixture(t, client.Client)
	for _, kind := range []string{"instruction_effectiveness", "context_effectiveness", "response_quality"} {
		_, err := service.CreatePendingScore(ctx, exec.ID, kind)
		require.NoError(t, err)
	}

	scores, err := service.ListScores(ctx, exec.ID)
	require.NoError(t, err)
	assert.Len(t, scores, 3)

	other, err := service.ListScores(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, other)
}
