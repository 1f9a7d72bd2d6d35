package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/quarryhq/quarry/pkg/events"
)

func TestParseLastEventID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		query    string
		expectID int
		expectOK bool
	}{
		{name: "absent defaults to zero", expectID: 0, expectOK: true},
		{name: "header is used", header: "42", expectID: 42, expectOK: true},
		{name: "query is used", query: "7", expectID: 7, expectOK: true},
		{name: "header beats query", header: "42", query: "7", expectID: 42, expectOK: true},
		{name: "non-numeric rejected", header: "abc", expectOK: false},
		{name: "negative rejected", header: "-1", expectOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/stream"
			if tt.query != "" {
				target += "?last_event_id=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set("Last-Event-ID", tt.header)
			}
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = req

			id, ok := parseLastEventID(c)
			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK {
				assert.Equal(t, tt.expectID, id)
			}
		})
	}
}

func TestFrameMeta(t *testing.T) {
	meta := frameMeta([]byte(`{"event":"block.upsert","db_event_id":17,"data":{}}`))
	assert.Equal(t, "block.upsert", meta.Event)
	assert.Equal(t, 17, meta.DBEventID)

	// Malformed frames yield a zero meta rather than an error.
	meta = frameMeta([]byte("not json"))
	assert.Empty(t, meta.Event)
	assert.Zero(t, meta.DBEventID)
}

func TestIsTerminalEvent(t *testing.T) {
	assert.True(t, isTerminalEvent(events.EventTypeCompletionFinished))
	assert.True(t, isTerminalEvent(events.EventTypeCompletionError))
	assert.False(t, isTerminalEvent(events.EventTypeCompletionStarted))
	assert.False(t, isTerminalEvent("block.upsert"))
}

func TestWriteSSEFrame(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.NoError(t, writeSSEFrame(rec, 5, []byte(`{"event":"x"}`)))
	assert.Equal(t, "id: 5\ndata: {\"event\":\"x\"}\n\n", rec.Body.String())

	// Transient frames have no outbox row and no id line.
	rec = httptest.NewRecorder()
	assert.NoError(t, writeSSEFrame(rec, 0, []byte(`{"event":"y"}`)))
	assert.Equal(t, "data: {\"event\":\"y\"}\n\n", rec.Body.String())
}
