package e2e

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"
)

// WSClient is a test client for the multiplexed WebSocket stream. Protocol
// frames (connection.established, subscription.confirmed, pong, ...) and
// event envelopes are collected separately.
type WSClient struct {
	conn   *websocket.Conn
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	events   []StreamEvent
	protocol []map[string]any
}

// DialWS connects to the app's WebSocket endpoint and starts the read loop.
func (app *TestApp) DialWS(t *testing.T) *WSClient {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	conn, _, err := websocket.Dial(ctx, app.WSURL, nil)
	require.NoError(t, err)
	conn.SetReadLimit(1 << 20)

	c := &WSClient{
		conn:   conn,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go c.readLoop(ctx)

	// The server greets before accepting commands.
	c.waitForProtocol(t, "connection.established", 5*time.Second)

	t.Cleanup(c.Close)
	return c
}

func (c *WSClient) readLoop(ctx context.Context) {
	defer close(c.done)
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			return
		}
		frame := map[string]any{}
		if err := json.Unmarshal(data, &frame); err != nil {
			continue
		}
		c.mu.Lock()
		if event, ok := frame["event"].(string); ok {
			id := 0
			if raw, ok := frame["db_event_id"].(float64); ok {
				id = int(raw)
			}
			c.events = append(c.events, StreamEvent{
				ID:    id,
				Event: event,
				Data:  frame,
				Raw:   data,
			})
		} else {
			c.protocol = append(c.protocol, frame)
		}
		c.mu.Unlock()
	}
}

// Subscribe subscribes to a channel and waits for its confirmation frame.
// The server then replays the channel's outbox automatically.
func (c *WSClient) Subscribe(t *testing.T, channel string) {
	t.Helper()
	c.send(t, map[string]any{"action": "subscribe", "channel": channel})
	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		for _, f := range c.protocol {
			if f["type"] == "subscription.confirmed" && f["channel"] == channel {
				return true
			}
		}
		return false
	}, 5*time.Second, 20*time.Millisecond, "subscription to %q never confirmed", channel)
}

// Catchup requests an outbox replay on a channel from the given cursor.
func (c *WSClient) Catchup(t *testing.T, channel string, lastEventID int) {
	t.Helper()
	c.send(t, map[string]any{
		"action":        "catchup",
		"channel":       channel,
		"last_event_id": lastEventID,
	})
}

func (c *WSClient) send(t *testing.T, msg map[string]any) {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.conn.Write(ctx, websocket.MessageText, data))
}

// Events returns a snapshot of the event envelopes received so far.
func (c *WSClient) Events() []StreamEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]StreamEvent, len(c.events))
	copy(out, c.events)
	return out
}

// EventsByType returns received envelopes of one event type.
func (c *WSClient) EventsByType(event string) []StreamEvent {
	return framesOfType(c.Events(), event)
}

// WaitForEvent blocks until an envelope matching the predicate arrives.
func (c *WSClient) WaitForEvent(t *testing.T, timeout time.Duration, match func(StreamEvent) bool) StreamEvent {
	t.Helper()
	var found StreamEvent
	require.Eventually(t, func() bool {
		for _, f := range c.Events() {
			if match(f) {
				found = f
				return true
			}
		}
		return false
	}, timeout, 50*time.Millisecond, "no matching envelope arrived")
	return found
}

// WaitForEventType blocks until an envelope of the given type arrives.
func (c *WSClient) WaitForEventType(t *testing.T, event string, timeout time.Duration) StreamEvent {
	t.Helper()
	return c.WaitForEvent(t, timeout, func(f StreamEvent) bool { return f.Event == event })
}

func (c *WSClient) waitForProtocol(t *testing.T, frameType string, timeout time.Duration) {
	t.Helper()
	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		for _, f := range c.protocol {
			if f["type"] == frameType {
				return true
			}
		}
		return false
	}, timeout, 20*time.Millisecond, "no %q protocol frame arrived", frameType)
}

// Close tears down the connection and waits for the read loop to exit.
func (c *WSClient) Close() {
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
	c.cancel()
	<-c.done
}
