package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/contextsnapshot"
	"github.com/quarryhq/quarry/pkg/models"
	testdb "github.com/quarryhq/quarry/test/database"
)

func TestSnapshotService_SaveContextSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSnapshotService(client.Client)
	ctx := context.Background()

	t.Run("appends a snapshot", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)
		tokens := 1420

		snapshot, err := service.SaveContextSnapshot(ctx, models.SaveContextSnapshotRequest{
			AgentExecutionID: exec.ID,
			Kind:             "initial",
			LoopIndex:        0,
			ContextView: map[string]any{
				"sections": []any{"environment", "conversation"},
			},
			PromptText:   "## Environment\n...",
			PromptTokens: &tokens,
		})
		require.NoError(t, err)
		assert.Equal(t, contextsnapshot.KindInitial, snapshot.Kind)
		assert.Equal(t, 0, snapshot.LoopIndex)
		require.NotNil(t, snapshot.PromptTokens)
		assert.Equal(t, 1420, *snapshot.PromptTokens)
	})

	t.Run("view is stored as its JSON image", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)
		captured := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

		snapshot, err := service.SaveContextSnapshot(ctx, models.SaveContextSnapshotRequest{
			AgentExecutionID: exec.ID,
			Kind:             "pre_tool",
			LoopIndex:        1,
			ContextView: map[string]any{
				"captured_at": captured,
				"loop":        1,
			},
		})
		require.NoError(t, err)

		// Timestamps land as RFC 3339 strings and numbers as float64,
		// exactly what readers get back from the JSON column.
		assert.Equal(t, "2026-03-14T09:26:53Z", snapshot.ContextView["captured_at"])
		assert.Equal(t, float64(1), snapshot.ContextView["loop"])
	})

	t.Run("nil view stores an empty object", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		snapshot, err := service.SaveContextSnapshot(ctx, models.SaveContextSnapshotRequest{
			AgentExecutionID: exec.ID,
			Kind:             "final",
		})
		require.NoError(t, err)
		assert.NotNil(t, snapshot.ContextView)
		assert.Empty(t, snapshot.ContextView)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.SaveContextSnapshot(ctx, models.SaveContextSnapshotRequest{Kind: "initial"})
		requireValidationError(t, err, "agent_execution_id")

		exec := newExecutionFixture(t, client.Client)
		_, err = service.SaveContextSnapshot(ctx, models.SaveContextSnapshotRequest{
			AgentExecutionID: exec.ID,
			Kind:             "midway",
		})
		requireValidationError(t, err, "kind")

		_, err = service.SaveContextSnapshot(ctx, models.SaveContextSnapshotRequest{
			AgentExecutionID: exec.ID,
			Kind:             "initial",
			ContextView:      map[string]any{"ch": make(chan int)},
		})
		requireValidationError(t, err, "context_view")
	})
}

func TestSnapshotService_Queries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSnapshotService(client.Client)
	ctx := context.Background()

	exec := newExecutionFixture(t, client.Client)

	save := func(t *testing.T, kind string, loopIndex int) *ent.ContextSnapshot {
		t.Helper()
		snapshot, err := service.SaveContextSnapshot(ctx, models.SaveContextSnapshotRequest{
			AgentExecutionID: exec.ID,
			Kind:             kind,
			LoopIndex:        loopIndex,
			ContextView:      map[string]any{"loop": loopIndex},
		})
		require.NoError(t, err)
		return snapshot
	}

	save(t, "initial", 0)
	save(t, "pre_tool", 0)
	save(t, "pre_tool", 1)
	last := save(t, "final", 1)

	t.Run("lists oldest first", func(t *testing.T) {
		snapshots, err := service.ListSnapshots(ctx, exec.ID)
		require.NoError(t, err)
		require.Len(t, snapshots, 4)
		assert.Equal(t, contextsnapshot.KindInitial, snapshots[0].Kind)
		assert.Equal(t, contextsnapshot.KindFinal, snapshots[3].Kind)
	})

	t.Run("latest snapshot is per kind", func(t *testing.T) {
		snapshot, err := service.LatestSnapshot(ctx, exec.ID, "pre_tool")
		require.NoError(t, err)
		assert.Equal(t, 1, snapshot.LoopIndex)

		final, err := service.LatestSnapshot(ctx, exec.ID, "final")
		require.NoError(t, err)
		assert.Equal(t, last.ID, final.ID)

		_, err = service.LatestSnapshot(ctx, exec.ID, "post_tool")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.LatestSnapshot(ctx, exec.ID, "midway")
		requireValidationError(t, err, "kind")
	})

	t.Run("prunes past the retention window", func(t *testing.T) {
		old := newExecutionFixture(t, client.Client)
		// created_at is immutable, so seed the stale row directly
		_, err := client.ContextSnapshot.Create().
			SetID(uuid.New().String()).
			SetAgentExecutionID(old.ID).
			SetKind(contextsnapshot.KindInitial).
			SetContextView(map[string]any{}).
			SetCreatedAt(time.Now().Add(-48 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		deleted, err := service.DeleteSnapshotsOlderThan(ctx, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)

		remaining, err := service.ListSnapshots(ctx, exec.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 4)

		none, err := service.ListSnapshots(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
