package e2e

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// StreamEvent is one parsed frame from an SSE or WebSocket stream.
type StreamEvent struct {
	ID    int            // outbox row id; 0 for transient frames
	Event string         // event type from the envelope
	Data  map[string]any // full decoded envelope
	Raw   []byte
}

// SSECollector consumes a completion's SSE stream in the background,
// buffering every frame it sees.
type SSECollector struct {
	mu     sync.Mutex
	frames []StreamEvent
	done   chan struct{}
	cancel context.CancelFunc
	err    error
}

// OpenStream starts collecting the SSE stream of a completion. Pass sinceID 0
// for a live subscription from now, or a Last-Event-ID cursor to replay the
// outbox first.
func (app *TestApp) OpenStream(t *testing.T, completionID string, sinceID int) *SSECollector {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	c := &SSECollector{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	url := fmt.Sprintf("%s/api/v1/completions/%s/stream", app.BaseURL, completionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	if sinceID > 0 {
		req.Header.Set("Last-Event-ID", strconv.Itoa(sinceID))
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	go func() {
		defer close(c.done)
		defer resp.Body.Close()
		c.readLoop(resp.Body)
	}()

	t.Cleanup(c.Close)
	return c
}

func (c *SSECollector) readLoop(body io.Reader) {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var id int
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			id = 0
		case strings.HasPrefix(line, ":"):
			// keep-alive comment
		case strings.HasPrefix(line, "id: "):
			id, _ = strconv.Atoi(strings.TrimPrefix(line, "id: "))
		case strings.HasPrefix(line, "data: "):
			raw := strings.TrimPrefix(line, "data: ")
			envelope := map[string]any{}
			if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
				continue
			}
			event, _ := envelope["event"].(string)
			c.mu.Lock()
			c.frames = append(c.frames, StreamEvent{
				ID:    id,
				Event: event,
				Data:  envelope,
				Raw:   []byte(raw),
			})
			c.mu.Unlock()
		}
	}
	c.mu.Lock()
	c.err = scanner.Err()
	c.mu.Unlock()
}

// Events returns a snapshot of the frames collected so far.
func (c *SSECollector) Events() []StreamEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]StreamEvent, len(c.frames))
	copy(out, c.frames)
	return out
}

// EventsByType returns collected frames of one event type.
func (c *SSECollector) EventsByType(event string) []StreamEvent {
	return framesOfType(c.Events(), event)
}

// WaitForEventType blocks until a frame of the given type arrives.
func (c *SSECollector) WaitForEventType(t *testing.T, event string, timeout time.Duration) StreamEvent {
	t.Helper()
	var found StreamEvent
	require.Eventually(t, func() bool {
		for _, f := range c.Events() {
			if f.Event == event {
				found = f
				return true
			}
		}
		return false
	}, timeout, 50*time.Millisecond, "no %q frame arrived", event)
	return found
}

// WaitForTerminal blocks until the stream carries a completion.finished or
// completion.error frame.
func (c *SSECollector) WaitForTerminal(t *testing.T, timeout time.Duration) StreamEvent {
	t.Helper()
	var found StreamEvent
	require.Eventually(t, func() bool {
		for _, f := range c.Events() {
			if f.Event == "completion.finished" || f.Event == "completion.error" {
				found = f
				return true
			}
		}
		return false
	}, timeout, 50*time.Millisecond, "no terminal frame arrived")
	return found
}

// Close stops the collector and waits for the reader to exit.
func (c *SSECollector) Close() {
	c.cancel()
	<-c.done
}

// CollectStream opens the stream with a catchup cursor and returns every
// frame once a terminal event arrives. Only persistent frames survive this
// path; transient frames need a live OpenStream before the run starts.
func (app *TestApp) CollectStream(t *testing.T, completionID string, sinceID int) []StreamEvent {
	t.Helper()
	c := app.OpenStream(t, completionID, sinceID)
	c.WaitForTerminal(t, waitTimeout)
	frames := c.Events()
	c.Close()
	return frames
}
