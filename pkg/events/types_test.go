package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionChannel(t *testing.T) {
	tests := []struct {
		name         string
		completionID string
		want         string
	}{
		{
			name:         "formats completion channel correctly",
			completionID: "abc-123",
			want:         "completion:abc-123",
		},
		{
			name:         "handles UUID format",
			completionID: "550e8400-e29b-41d4-a716-446655440000",
			want:         "completion:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:         "handles empty string",
			completionID: "",
			want:         "completion:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionChannel(tt.completionID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct across both delivery
	// classes; a collision would let a transient frame impersonate a
	// persistent one.
	types := []string{
		EventTypeDecisionFinal,
		EventTypeBlockUpsert,
		EventTypeToolStarted,
		EventTypeToolFinished,
		EventTypePlannerRetry,
		EventTypeCompletionStarted,
		EventTypeCompletionFinished,
		EventTypeCompletionError,
		EventTypeQueryCreated,
		EventTypeVisualizationCreated,
		EventTypeVisualizationUpdated,
		EventTypeSuggestStarted,
		EventTypeSuggestFinished,
		EventTypeCompletionUpdate,
		EventTypeDecisionPartial,
		EventTypeBlockDelta,
		EventTypeToolProgress,
		EventTypeToolPartial,
		EventTypeToolStdout,
		EventTypeSuggestPartial,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestGlobalCompletionsChannel(t *testing.T) {
	assert.Equal(t, "completions", GlobalCompletionsChannel)
}
