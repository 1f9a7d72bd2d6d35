package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/quarryhq/quarry/pkg/events"
)

// wsWriteTimeout bounds a single WebSocket write so one stalled client
// cannot pin a goroutine.
const wsWriteTimeout = 10 * time.Second

// wsClientMessage is a message from a WebSocket client.
//
// Actions:
//   - subscribe: join a channel (confirmed, then auto catchup from 0)
//   - unsubscribe: leave a channel
//   - catchup: replay events on a channel after last_event_id
//   - ping: liveness check, answered with pong
type wsClientMessage struct {
	Action      string `json:"action"`
	Channel     string `json:"channel,omitempty"`
	LastEventID *int   `json:"last_event_id,omitempty"`
}

// wsSession is one WebSocket connection attached to the hub.
type wsSession struct {
	id   string
	hub  *events.Hub
	conn *websocket.Conn
	sub  *events.Subscriber

	ctx    context.Context
	cancel context.CancelFunc
}

// serveWebSocket runs one upgraded connection until it closes. Live frames
// from the hub and protocol replies from the read loop both write to the
// connection; the websocket library serializes concurrent writes.
func (s *Server) serveWebSocket(parentCtx context.Context, conn *websocket.Conn, initialChannels []string) {
	ctx, cancel := context.WithCancel(parentCtx)
	sess := &wsSession{
		id:     uuid.New().String(),
		hub:    s.hub,
		conn:   conn,
		ctx:    ctx,
		cancel: cancel,
	}
	defer sess.close()

	sub, err := s.hub.Subscribe(ctx)
	if err != nil {
		return
	}
	sess.sub = sub

	sess.sendJSON(map[string]string{
		"type":          "connection.established",
		"connection_id": sess.id,
	})

	go sess.forwardEvents()

	for _, channel := range initialChannels {
		sess.subscribe(ctx, channel)
	}

	// Read loop; exits when the connection closes.
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg wsClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", sess.id, "error", err)
			continue
		}
		sess.handleMessage(ctx, &msg)
	}
}

// handleMessage dispatches one client message.
func (sess *wsSession) handleMessage(ctx context.Context, msg *wsClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			sess.sendJSON(map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		sess.subscribe(ctx, msg.Channel)

	case "unsubscribe":
		if msg.Channel == "" {
			sess.sendJSON(map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		sess.hub.Remove(sess.sub, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			sess.sendJSON(map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			sess.catchup(ctx, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		sess.sendJSON(map[string]string{"type": "pong"})
	}
}

// subscribe attaches the session to a channel, confirms, and auto-replays
// all prior events so late subscribers don't miss anything. The LISTEN
// inside Add completes before the confirmation is sent, so events published
// after the confirmation are guaranteed to arrive.
func (sess *wsSession) subscribe(ctx context.Context, channel string) {
	if err := sess.hub.Add(ctx, sess.sub, channel); err != nil {
		sess.sendJSON(map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "failed to subscribe to channel",
		})
		return
	}
	sess.sendJSON(map[string]string{
		"type":    "subscription.confirmed",
		"channel": channel,
	})
	sess.catchup(ctx, channel, 0)
}

// catchup replays persisted events on the channel after lastEventID. If more
// events were missed than one pass returns, the client is told to do a full
// REST reload instead of paginating catchup requests.
func (sess *wsSession) catchup(ctx context.Context, channel string, lastEventID int) {
	hasMore, err := sess.hub.Catchup(ctx, channel, lastEventID, sess.sendRaw)
	if err != nil {
		slog.Error("Catchup failed", "connection_id", sess.id, "channel", channel, "error", err)
		return
	}
	if hasMore {
		sess.sendJSON(map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

// forwardEvents pumps live frames from the hub subscriber to the client.
// Exits when the subscriber is removed; if removal was an overflow drop the
// connection is closed so the client reconnects and catches up.
func (sess *wsSession) forwardEvents() {
	for frame := range sess.sub.Events() {
		if err := sess.sendRaw(frame); err != nil {
			sess.cancel()
			return
		}
	}
	if sess.sub.Overflowed() {
		sess.sendJSON(map[string]string{
			"type":    "error",
			"message": "event buffer overflow; reconnect and catch up",
		})
		sess.cancel()
	}
}

// sendJSON marshals and sends one protocol message.
func (sess *wsSession) sendJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", sess.id, "error", err)
		return
	}
	if err := sess.sendRaw(data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", sess.id, "error", err)
	}
}

// sendRaw sends raw bytes with a write timeout.
func (sess *wsSession) sendRaw(data []byte) error {
	writeCtx, cancel := context.WithTimeout(sess.ctx, wsWriteTimeout)
	defer cancel()
	return sess.conn.Write(writeCtx, websocket.MessageText, data)
}

// close tears the session down: detaches from the hub (closing the
// subscriber channel, which stops forwardEvents) and closes the socket.
func (sess *wsSession) close() {
	sess.cancel()
	if sess.sub != nil {
		sess.hub.Unsubscribe(sess.sub)
	}
	_ = sess.conn.Close(websocket.StatusNormalClosure, "")
}
