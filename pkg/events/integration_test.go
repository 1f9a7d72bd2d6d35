package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/quarryhq/quarry/pkg/database"
	"github.com/quarryhq/quarry/pkg/services"
	testdb "github.com/quarryhq/quarry/test/database"
	"github.com/quarryhq/quarry/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamTestEnv holds all wired-up components for an integration test.
type streamTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	hub          *Hub
	listener     *NotifyListener
	completionID string
	channel      string // completion:<completionID>
}

// setupStreamTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamTest(t *testing.T) *streamTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	completionID := uuid.New().String()
	channel := CompletionChannel(completionID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	hub := NewHub(NewEventServiceAdapter(eventService))

	// The NotifyListener needs the base connection string (no schema
	// search_path) because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, hub)
	require.NoError(t, listener.Start(ctx))
	hub.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	return &streamTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		hub:          hub,
		listener:     listener,
		completionID: completionID,
		channel:      channel,
	}
}

// subscribe attaches a subscriber to the given channels (defaulting to the
// env's completion channel). Subscribe blocks until LISTEN is active on the
// dedicated connection, so events published afterwards cannot be missed.
func (env *streamTestEnv) subscribe(t *testing.T, channels ...string) *Subscriber {
	t.Helper()
	if len(channels) == 0 {
		channels = []string{env.channel}
	}

	sub, err := env.hub.Subscribe(context.Background(), channels...)
	require.NoError(t, err)
	t.Cleanup(func() { env.hub.Unsubscribe(sub) })

	for _, channel := range channels {
		require.True(t, env.listener.isListening(channel),
			"LISTEN should be active for %s before Subscribe returns", channel)
	}
	return sub
}

// readFrameFor reads frames until one for the given completion arrives.
// The global completions channel is cluster-wide, so frames from concurrent
// test runs sharing the database may interleave and are skipped.
func readFrameFor(t *testing.T, sub *Subscriber, completionID string) map[string]any {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case data, ok := <-sub.Events():
			require.True(t, ok, "subscriber channel closed while waiting for frame")
			var msg map[string]any
			require.NoError(t, json.Unmarshal(data, &msg))
			if msg["completion_id"] == completionID {
				return msg
			}
		case <-deadline:
			t.Fatalf("timed out waiting for frame of completion %s", completionID)
			return nil
		}
	}
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamTest(t)
	ctx := context.Background()

	// Publish first event (decision final)
	err := env.publisher.PublishDecisionFinal(ctx, DecisionFinalPayload{
		BasePayload: NewBase(EventTypeDecisionFinal, env.completionID, "exec-1", 1),
		Data: DecisionData{
			PlanDecisionID: "dec-1",
			LoopIndex:      0,
			PlanType:       plandecision.PlanTypeResearch,
			Reasoning:      "first event",
			ActionName:     "describe_table",
		},
	})
	require.NoError(t, err)

	// Publish second event (tool finished)
	err = env.publisher.PublishToolFinished(ctx, ToolFinishedPayload{
		BasePayload: NewBase(EventTypeToolFinished, env.completionID, "exec-1", 2),
		Data: ToolFinishedData{
			ToolExecutionID: "tool-1",
			ToolName:        "describe_table",
			Status:          toolexecution.StatusSuccess,
			Success:         true,
			ResultSummary:   "second event",
		},
	})
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.completionID, events[0].CompletionID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeDecisionFinal, events[0].Payload["event"])

	data0, ok := events[0].Payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "first event", data0["reasoning"])

	assert.Equal(t, EventTypeToolFinished, events[1].Payload["event"])
	data1, ok := events[1].Payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "second event", data1["result_summary"])
	assert.Equal(t, "success", data1["status"], "finished event should persist the tool status")

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamTest(t)
	ctx := context.Background()

	// Publish transient events only
	err := env.publisher.PublishDecisionPartial(ctx, DecisionPartialPayload{
		BasePayload: NewBase(EventTypeDecisionPartial, env.completionID, "exec-1", 1),
		Data:        DecisionData{PlanDecisionID: "dec-1", Reasoning: "token data"},
	})
	require.NoError(t, err)

	err = env.publisher.PublishToolProgress(ctx, ToolProgressPayload{
		BasePayload: NewBase(EventTypeToolProgress, env.completionID, "exec-1", 2),
		Data:        ToolProgressData{ToolExecutionID: "tool-1", Stage: "column_added"},
	})
	require.NoError(t, err)

	// Query DB — should have zero persisted events
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEndDelivery(t *testing.T) {
	env := setupStreamTest(t)
	ctx := context.Background()

	sub := env.subscribe(t)

	// Persistent event: arrives via pg_notify → listener → hub with the
	// outbox row id injected.
	err := env.publisher.PublishDecisionFinal(ctx, DecisionFinalPayload{
		BasePayload: NewBase(EventTypeDecisionFinal, env.completionID, "exec-1", 1),
		Data: DecisionData{
			PlanDecisionID: "dec-1",
			PlanType:       plandecision.PlanTypeResearch,
			Reasoning:      "hello from publisher",
		},
	})
	require.NoError(t, err)

	msg := readFrameFor(t, sub, env.completionID)
	assert.Equal(t, EventTypeDecisionFinal, msg["event"])
	assert.NotNil(t, msg["db_event_id"], "persistent frame should carry db_event_id")
	data, ok := msg["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello from publisher", data["reasoning"])

	// Transient event: same path, no db_event_id, nothing persisted.
	err = env.publisher.PublishToolPartial(ctx, ToolPartialPayload{
		BasePayload: NewBase(EventTypeToolPartial, env.completionID, "exec-1", 2),
		Data:        ToolPartialData{ToolExecutionID: "tool-1", Delta: "streaming token"},
	})
	require.NoError(t, err)

	msg = readFrameFor(t, sub, env.completionID)
	assert.Equal(t, EventTypeToolPartial, msg["event"])
	assert.Nil(t, msg["db_event_id"], "transient frame should not carry db_event_id")
}

func TestIntegration_LifecycleFansOutToGlobalChannel(t *testing.T) {
	env := setupStreamTest(t)
	ctx := context.Background()

	subLocal := env.subscribe(t)
	subGlobal := env.subscribe(t, GlobalCompletionsChannel)

	// The sigkill broadcast: persisted on the completion channel, mirrored
	// transiently on the global channel where worker pods listen.
	sigkillAt := time.Now().UTC().Format(time.RFC3339Nano)
	err := env.publisher.PublishCompletionUpdate(ctx, CompletionUpdatePayload{
		BasePayload: NewBase(EventTypeCompletionUpdate, env.completionID, "", 0),
		Data:        CompletionUpdateData{SigkillAt: sigkillAt},
	})
	require.NoError(t, err)

	localMsg := readFrameFor(t, subLocal, env.completionID)
	assert.Equal(t, EventTypeCompletionUpdate, localMsg["event"])
	assert.NotNil(t, localMsg["db_event_id"], "completion channel copy is persistent")

	globalMsg := readFrameFor(t, subGlobal, env.completionID)
	assert.Equal(t, EventTypeCompletionUpdate, globalMsg["event"])
	assert.Nil(t, globalMsg["db_event_id"], "global channel copy is transient")
	globalData, ok := globalMsg["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, sigkillAt, globalData["sigkill_at"])

	// Only the completion channel copy lands in the outbox.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeCompletionUpdate, events[0].Payload["event"])

	// Terminal lifecycle event reaches the global channel too.
	err = env.publisher.PublishCompletionFinished(ctx, CompletionFinishedPayload{
		BasePayload: NewBase(EventTypeCompletionFinished, env.completionID, "", 0),
		Data:        CompletionLifecycleData{Status: completion.StatusCompleted},
	})
	require.NoError(t, err)

	finMsg := readFrameFor(t, subGlobal, env.completionID)
	assert.Equal(t, EventTypeCompletionFinished, finMsg["event"])
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishDecisionFinal(ctx, DecisionFinalPayload{
			BasePayload: NewBase(EventTypeDecisionFinal, env.completionID, "exec-1", i),
			Data:        DecisionData{PlanDecisionID: uuid.New().String(), LoopIndex: i - 1},
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Full catchup replays everything in order, injecting db_event_id.
	var frames []map[string]any
	hasMore, err := env.hub.Catchup(ctx, env.channel, 0, func(data []byte) error {
		var msg map[string]any
		require.NoError(t, json.Unmarshal(data, &msg))
		frames = append(frames, msg)
		return nil
	})
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.Len(t, frames, 3)
	for i, frame := range frames {
		assert.Equal(t, EventTypeDecisionFinal, frame["event"])
		assert.Equal(t, float64(i+1), frame["seq"])
		assert.Equal(t, float64(allEvents[i].ID), frame["db_event_id"])
	}

	// Catchup from the first event's ID — should return only events 2 and 3.
	frames = frames[:0]
	hasMore, err = env.hub.Catchup(ctx, env.channel, firstEventID, func(data []byte) error {
		var msg map[string]any
		require.NoError(t, json.Unmarshal(data, &msg))
		frames = append(frames, msg)
		return nil
	})
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.Len(t, frames, 2)
	assert.Equal(t, float64(2), frames[0]["seq"])
	assert.Equal(t, float64(3), frames[1]["seq"])
}

func TestIntegration_TruncatedNotifyKeepsFullPayloadInDB(t *testing.T) {
	env := setupStreamTest(t)
	ctx := context.Background()

	sub := env.subscribe(t)

	// A block whose content blows past the 8000-byte NOTIFY limit.
	bigContent := strings.Repeat("y", 9000)
	err := env.publisher.PublishBlockUpsert(ctx, BlockUpsertPayload{
		BasePayload: NewBase(EventTypeBlockUpsert, env.completionID, "exec-1", 1),
		Data: BlockData{
			BlockID:    "blk-big",
			BlockIndex: 10,
			Content:    bigContent,
		},
	})
	require.NoError(t, err)

	// The NOTIFY frame arrives truncated with routing fields only.
	msg := readFrameFor(t, sub, env.completionID)
	assert.Equal(t, EventTypeBlockUpsert, msg["event"])
	assert.Equal(t, true, msg["truncated"])
	assert.NotNil(t, msg["db_event_id"])
	assert.NotContains(t, msg, "data")

	// The outbox row still holds the full payload for catchup.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	data, ok := events[0].Payload["data"].(map[string]any)
	require.True(t, ok)
	content, ok := data["content"].(string)
	require.True(t, ok)
	assert.Len(t, content, 9000, "persisted payload must not be truncated")
}

func TestIntegration_UnsubscribeResubscribeKeepsListen(t *testing.T) {
	// Rapid unsubscribe/resubscribe (e.g. React StrictMode double render)
	// must not drop the LISTEN out from under the new subscriber.
	env := setupStreamTest(t)
	ctx := context.Background()

	sub1 := env.subscribe(t)
	env.hub.Unsubscribe(sub1)
	sub2 := env.subscribe(t)

	err := env.publisher.PublishDecisionFinal(ctx, DecisionFinalPayload{
		BasePayload: NewBase(EventTypeDecisionFinal, env.completionID, "exec-1", 1),
		Data:        DecisionData{PlanDecisionID: "dec-1", Reasoning: "after resubscribe"},
	})
	require.NoError(t, err)

	msg := readFrameFor(t, sub2, env.completionID)
	assert.Equal(t, EventTypeDecisionFinal, msg["event"])
}
