package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	testdb "github.com/quarryhq/quarry/test/database"
)

// Outbox inserts live in the publisher, so these tests seed rows directly.
func seedEvent(t *testing.T, client *ent.Client, channel, completionID string, payload map[string]any) *ent.Event {
	t.Helper()
	builder := client.Event.Create().
		SetChannel(channel).
		SetPayload(payload)
	if completionID != "" {
		builder = builder.SetCompletionID(completionID)
	}
	evt, err := builder.Save(context.Background())
	require.NoError(t, err)
	return evt
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	completionID := uuid.New().String()
	channel := "completion:" + completionID

	first := seedEvent(t, client.Client, channel, completionID, map[string]any{"type": "block.delta", "seq": 1})
	second := seedEvent(t, client.Client, channel, completionID, map[string]any{"type": "block.delta", "seq": 2})
	third := seedEvent(t, client.Client, channel, completionID, map[string]any{"type": "completion.status", "seq": 3})
	seedEvent(t, client.Client, "completions", "", map[string]any{"type": "queue.depth"})

	t.Run("replays rows after the last seen id in insertion order", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, first.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, second.ID, events[0].ID)
		assert.Equal(t, third.ID, events[1].ID)
	})

	t.Run("zero sinceID replays the whole channel", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("channels do not bleed into each other", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "completions", 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "queue.depth", events[0].Payload["type"])
	})

	t.Run("limit caps the replay", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, first.ID, events[0].ID)
	})

	t.Run("unknown channel replays nothing", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "completion:"+uuid.New().String(), 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_CleanupCompletionEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	completionID := uuid.New().String()
	otherID := uuid.New().String()

	for i := range 3 {
		seedEvent(t, client.Client, "completion:"+completionID, completionID, map[string]any{"seq": i})
	}
	seedEvent(t, client.Client, "completion:"+otherID, otherID, map[string]any{"seq": 0})

	count, err := service.CleanupCompletionEvents(ctx, completionID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	remaining, err := service.GetEventsSince(ctx, "completion:"+completionID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	kept, err := service.GetEventsSince(ctx, "completion:"+otherID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestEventService_CleanupExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	completionID := uuid.New().String()
	channel := "completion:" + completionID

	// created_at is immutable, so seed the expired row directly
	_, err := client.Event.Create().
		SetChannel(channel).
		SetCompletionID(completionID).
		SetPayload(map[string]any{"seq": 0}).
		SetCreatedAt(time.Now().Add(-8 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	fresh := seedEvent(t, client.Client, channel, completionID, map[string]any{"seq": 1})

	count, err := service.CleanupExpiredEvents(ctx, 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := service.GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}
