package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quarryhq/quarry/pkg/events"
)

// sseKeepAliveInterval is how often a comment line is written on an idle
// stream so intermediaries do not time out the connection.
const sseKeepAliveInterval = 15 * time.Second

// sseFrameMeta is the slice of the event envelope the stream handler needs:
// the event type to detect terminal frames and the outbox id for the SSE id
// field.
type sseFrameMeta struct {
	Event     string `json:"event"`
	DBEventID int    `json:"db_event_id"`
}

// streamCompletionHandler handles GET /api/v1/completions/:id/stream. Serves
// the completion's event channel over SSE: catchup from Last-Event-ID (or
// the last_event_id query parameter), then live frames until the completion
// reaches a terminal event or the client disconnects. The SSE id field
// carries the outbox row id, so EventSource reconnects resume without gaps.
func (s *Server) streamCompletionHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "completion id is required"})
		return
	}
	if s.hub == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "event streaming is not available"})
		return
	}

	// Resolve before upgrading: an unknown completion is a plain 404.
	completion, err := s.completionService.GetCompletion(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}

	sinceID, ok := parseLastEventID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "last_event_id must be a non-negative integer"})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "streaming unsupported"})
		return
	}

	channel := events.CompletionChannel(completion.ID)
	ctx := c.Request.Context()

	// Subscribe before catchup so nothing published in between is missed.
	// The overlap can duplicate frames; clients dedupe by db_event_id.
	sub, err := s.hub.Subscribe(ctx, channel)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "subscription failed"})
		return
	}
	defer s.hub.Unsubscribe(sub)

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	terminal := false
	send := func(frame []byte) error {
		meta := frameMeta(frame)
		if err := writeSSEFrame(c.Writer, meta.DBEventID, frame); err != nil {
			return err
		}
		flusher.Flush()
		if meta.DBEventID > sinceID {
			sinceID = meta.DBEventID
		}
		if isTerminalEvent(meta.Event) {
			terminal = true
		}
		return nil
	}

	// SSE clients cannot page, so drain the backlog here. Each pass advances
	// sinceID past what it replayed.
	for {
		hasMore, err := s.hub.Catchup(ctx, channel, sinceID, send)
		if err != nil || terminal {
			return
		}
		if !hasMore {
			break
		}
	}

	keepAlive := time.NewTicker(sseKeepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(c.Writer, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case frame, open := <-sub.Events():
			if !open {
				// Dropped for falling behind; the client reconnects with
				// Last-Event-ID and replays the gap.
				return
			}
			if err := send(frame); err != nil || terminal {
				return
			}
		}
	}
}

// parseLastEventID reads the catchup cursor from the Last-Event-ID header
// (set by EventSource on reconnect) or the last_event_id query parameter.
func parseLastEventID(c *gin.Context) (int, bool) {
	raw := c.GetHeader("Last-Event-ID")
	if raw == "" {
		raw = c.Query("last_event_id")
	}
	if raw == "" {
		return 0, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}

// frameMeta extracts the event type and outbox id from a frame. Malformed
// frames yield a zero meta and are forwarded as-is.
func frameMeta(frame []byte) sseFrameMeta {
	var meta sseFrameMeta
	_ = json.Unmarshal(frame, &meta)
	return meta
}

// isTerminalEvent reports whether the stream is complete after this event.
func isTerminalEvent(event string) bool {
	return event == events.EventTypeCompletionFinished || event == events.EventTypeCompletionError
}

// writeSSEFrame writes one SSE event. The id line is omitted for transient
// frames, which have no outbox row.
func writeSSEFrame(w http.ResponseWriter, dbEventID int, data []byte) error {
	if dbEventID > 0 {
		if _, err := fmt.Fprintf(w, "id: %d\n", dbEventID); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
