package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, _ int, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

// readFrame reads one frame from the subscriber with a timeout.
func readFrame(t *testing.T, sub *Subscriber) map[string]any {
	t.Helper()
	select {
	case data, ok := <-sub.Events():
		require.True(t, ok, "subscriber channel closed unexpectedly")
		var msg map[string]any
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event frame")
		return nil
	}
}

// assertNoFrame asserts nothing arrives on the subscriber within the window.
func assertNoFrame(t *testing.T, sub *Subscriber) {
	t.Helper()
	select {
	case data, ok := <-sub.Events():
		if ok {
			t.Fatalf("unexpected frame: %s", data)
		}
	case <-time.After(200 * time.Millisecond):
	}
}

func TestHub_SubscribeAndBroadcast(t *testing.T) {
	hub := NewHub(&mockCatchupQuerier{})

	sub, err := hub.Subscribe(context.Background(), "completion:test-123")
	require.NoError(t, err)
	t.Cleanup(func() { hub.Unsubscribe(sub) })

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, 1, hub.ActiveSubscribers())
	assert.Equal(t, 1, hub.subscriberCount("completion:test-123"))

	payload, _ := json.Marshal(map[string]string{"event": "test", "data": "hello"})
	hub.Broadcast("completion:test-123", payload)

	msg := readFrame(t, sub)
	assert.Equal(t, "test", msg["event"])
	assert.Equal(t, "hello", msg["data"])
}

func TestHub_BroadcastToMultipleSubscribers(t *testing.T) {
	hub := NewHub(&mockCatchupQuerier{})
	channel := "completion:broadcast-test"

	sub1, err := hub.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	sub2, err := hub.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	t.Cleanup(func() {
		hub.Unsubscribe(sub1)
		hub.Unsubscribe(sub2)
	})

	payload, _ := json.Marshal(map[string]string{"event": "test"})
	hub.Broadcast(channel, payload)

	msg1 := readFrame(t, sub1)
	msg2 := readFrame(t, sub2)
	assert.Equal(t, "test", msg1["event"])
	assert.Equal(t, "test", msg2["event"])
}

func TestHub_MultipleChannels(t *testing.T) {
	// One subscriber attached to both a completion channel and the global
	// channel — the shape the SSE handler uses for list views.
	hub := NewHub(&mockCatchupQuerier{})

	sub, err := hub.Subscribe(context.Background(), "completion:ch1", GlobalCompletionsChannel)
	require.NoError(t, err)
	t.Cleanup(func() { hub.Unsubscribe(sub) })

	assert.Equal(t, 1, hub.subscriberCount("completion:ch1"))
	assert.Equal(t, 1, hub.subscriberCount(GlobalCompletionsChannel))

	payload1, _ := json.Marshal(map[string]string{"channel": "ch1"})
	hub.Broadcast("completion:ch1", payload1)
	msg := readFrame(t, sub)
	assert.Equal(t, "ch1", msg["channel"])

	payload2, _ := json.Marshal(map[string]string{"channel": "global"})
	hub.Broadcast(GlobalCompletionsChannel, payload2)
	msg2 := readFrame(t, sub)
	assert.Equal(t, "global", msg2["channel"])
}

func TestHub_ChannelIsolation(t *testing.T) {
	hub := NewHub(&mockCatchupQuerier{})

	sub, err := hub.Subscribe(context.Background(), "completion:mine")
	require.NoError(t, err)
	t.Cleanup(func() { hub.Unsubscribe(sub) })

	payload, _ := json.Marshal(map[string]string{"event": "other"})
	hub.Broadcast("completion:other", payload)

	assertNoFrame(t, sub)
}

func TestHub_BroadcastToNonExistentChannel(t *testing.T) {
	hub := NewHub(&mockCatchupQuerier{})

	// Should not panic
	payload, _ := json.Marshal(map[string]string{"event": "test"})
	hub.Broadcast("nonexistent-channel", payload)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub(&mockCatchupQuerier{})
	channel := "completion:unsub-test"

	sub, err := hub.Subscribe(context.Background(), channel)
	require.NoError(t, err)

	hub.Unsubscribe(sub)

	assert.Equal(t, 0, hub.ActiveSubscribers())
	assert.Equal(t, 0, hub.subscriberCount(channel))
	assert.False(t, sub.Overflowed())

	// Delivery channel is closed.
	_, ok := <-sub.Events()
	assert.False(t, ok, "Events() should be closed after Unsubscribe")

	// Broadcast after unsubscribe should not panic or deliver.
	payload, _ := json.Marshal(map[string]string{"event": "should-not-receive"})
	hub.Broadcast(channel, payload)

	// Double unsubscribe is a no-op.
	hub.Unsubscribe(sub)
}

func TestHub_RemoveDetachesOneChannel(t *testing.T) {
	hub := NewHub(&mockCatchupQuerier{})

	sub, err := hub.Subscribe(context.Background(), "completion:keep", "completion:drop")
	require.NoError(t, err)
	t.Cleanup(func() { hub.Unsubscribe(sub) })

	hub.Remove(sub, "completion:drop")
	assert.Equal(t, 0, hub.subscriberCount("completion:drop"))
	assert.Equal(t, 1, hub.subscriberCount("completion:keep"))

	// Dropped channel no longer delivers.
	payload, _ := json.Marshal(map[string]string{"channel": "drop"})
	hub.Broadcast("completion:drop", payload)
	assertNoFrame(t, sub)

	// Kept channel still delivers.
	payload2, _ := json.Marshal(map[string]string{"channel": "keep"})
	hub.Broadcast("completion:keep", payload2)
	msg := readFrame(t, sub)
	assert.Equal(t, "keep", msg["channel"])
}

func TestHub_SlowSubscriberIsDropped(t *testing.T) {
	hub := NewHub(&mockCatchupQuerier{})
	channel := "completion:overflow-test"

	sub, err := hub.Subscribe(context.Background(), channel)
	require.NoError(t, err)

	// Fill the buffer without reading, then one more to trigger the drop.
	payload, _ := json.Marshal(map[string]string{"event": "flood"})
	for i := 0; i < subscriberBuffer+1; i++ {
		hub.Broadcast(channel, payload)
	}

	// Broadcast drops the subscriber synchronously when its buffer is full.
	assert.True(t, sub.Overflowed())
	assert.Equal(t, 0, hub.ActiveSubscribers())
	assert.Equal(t, 0, hub.subscriberCount(channel))

	// The buffered frames are still drainable; the channel closes after.
	received := 0
	for range sub.Events() {
		received++
	}
	assert.Equal(t, subscriberBuffer, received)
}

func TestHub_ConcurrentBroadcast(t *testing.T) {
	hub := NewHub(&mockCatchupQuerier{})
	channel := "completion:concurrent-test"

	sub, err := hub.Subscribe(context.Background(), channel)
	require.NoError(t, err)
	t.Cleanup(func() { hub.Unsubscribe(sub) })

	// Broadcast 20 messages concurrently
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]any{"event": "concurrent", "idx": idx})
			hub.Broadcast(channel, payload)
		}(i)
	}
	wg.Wait()

	// Read all 20 messages (order may vary due to concurrency)
	for i := 0; i < 20; i++ {
		msg := readFrame(t, sub)
		assert.Equal(t, "concurrent", msg["event"])
	}
}

func TestHub_SubscribeFailsWhenListenFails(t *testing.T) {
	// A listener that was never started rejects LISTEN; Subscribe must
	// surface the error and leave no half-registered subscriber behind.
	hub := NewHub(&mockCatchupQuerier{})
	listener := NewNotifyListener("host=localhost dbname=test", hub)
	hub.SetListener(listener)

	sub, err := hub.Subscribe(context.Background(), "completion:fail-test")
	assert.Error(t, err)
	assert.Nil(t, sub)
	assert.Equal(t, 0, hub.ActiveSubscribers())
	assert.Equal(t, 0, hub.subscriberCount("completion:fail-test"))
}

func TestHub_Catchup(t *testing.T) {
	t.Run("replays events in order with db_event_id injected", func(t *testing.T) {
		events := []CatchupEvent{
			{ID: 10, Payload: map[string]interface{}{"event": "decision.final", "seq": float64(1)}},
			{ID: 11, Payload: map[string]interface{}{"event": "tool.started", "seq": float64(2)}},
			{ID: 12, Payload: map[string]interface{}{"event": "tool.finished", "seq": float64(3)}},
		}
		hub := NewHub(&mockCatchupQuerier{events: events})

		var received []map[string]any
		hasMore, err := hub.Catchup(context.Background(), "completion:catchup-test", 9, func(data []byte) error {
			var msg map[string]any
			require.NoError(t, json.Unmarshal(data, &msg))
			received = append(received, msg)
			return nil
		})
		require.NoError(t, err)
		assert.False(t, hasMore)
		require.Len(t, received, 3)

		assert.Equal(t, "decision.final", received[0]["event"])
		assert.Equal(t, float64(10), received[0]["db_event_id"])
		assert.Equal(t, "tool.started", received[1]["event"])
		assert.Equal(t, float64(11), received[1]["db_event_id"])
		assert.Equal(t, float64(12), received[2]["db_event_id"])
	})

	t.Run("reports overflow past the limit", func(t *testing.T) {
		manyEvents := make([]CatchupEvent, catchupLimit+5)
		for i := range manyEvents {
			manyEvents[i] = CatchupEvent{
				ID:      i + 1,
				Payload: map[string]interface{}{"event": "test", "seq": i},
			}
		}
		hub := NewHub(&mockCatchupQuerier{events: manyEvents})

		received := 0
		hasMore, err := hub.Catchup(context.Background(), "completion:overflow", 0, func([]byte) error {
			received++
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hasMore, "expected overflow past catchup limit")
		assert.Equal(t, catchupLimit, received)
	})

	t.Run("propagates querier errors", func(t *testing.T) {
		hub := NewHub(&mockCatchupQuerier{err: fmt.Errorf("database unreachable")})

		hasMore, err := hub.Catchup(context.Background(), "completion:err", 0, func([]byte) error {
			t.Fatal("send should not be called when the query fails")
			return nil
		})
		assert.Error(t, err)
		assert.False(t, hasMore)
		assert.Contains(t, err.Error(), "database unreachable")
	})

	t.Run("stops on send error", func(t *testing.T) {
		events := []CatchupEvent{
			{ID: 1, Payload: map[string]interface{}{"seq": float64(1)}},
			{ID: 2, Payload: map[string]interface{}{"seq": float64(2)}},
		}
		hub := NewHub(&mockCatchupQuerier{events: events})

		sent := 0
		_, err := hub.Catchup(context.Background(), "completion:send-err", 0, func([]byte) error {
			sent++
			return fmt.Errorf("client went away")
		})
		assert.Error(t, err)
		assert.Equal(t, 1, sent, "send loop should stop after the first error")
	})

	t.Run("nil querier is a no-op", func(t *testing.T) {
		hub := NewHub(nil)

		hasMore, err := hub.Catchup(context.Background(), "completion:nil", 0, func([]byte) error {
			t.Fatal("send should not be called without a querier")
			return nil
		})
		require.NoError(t, err)
		assert.False(t, hasMore)
	})
}
