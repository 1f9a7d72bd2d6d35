package events

import (
	"encoding/json"
	"testing"

	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(ToolFinishedPayload{
			BasePayload: BasePayload{
				Event:        EventTypeToolFinished,
				CompletionID: "abc-123",
				Seq:          4,
			},
			Data: ToolFinishedData{
				ToolExecutionID: "tool-1",
				ToolName:        "execute_query",
				Status:          toolexecution.StatusSuccess,
				Success:         true,
			},
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeToolFinished)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'a'
		}
		payload, _ := json.Marshal(BlockUpsertPayload{
			BasePayload: BasePayload{
				Event:        EventTypeBlockUpsert,
				CompletionID: "abc-123",
				Seq:          4,
			},
			Data: BlockData{
				BlockID: "blk-123",
				Content: string(longContent),
			},
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(ToolPartialPayload{
			BasePayload: BasePayload{
				Event: EventTypeToolPartial,
			},
			Data: ToolPartialData{Delta: "hello"},
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'x'
		}
		payload, _ := json.Marshal(BlockUpsertPayload{
			BasePayload: BasePayload{
				Event:            EventTypeBlockUpsert,
				CompletionID:     "comp-789",
				AgentExecutionID: "exec-456",
				Seq:              12,
			},
			Data: BlockData{
				BlockID: "blk-456",
				Content: string(longContent),
			},
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeBlockUpsert)
		assert.Contains(t, result, "comp-789")
		assert.Contains(t, result, "exec-456")
		assert.Contains(t, result, `"seq":12`)
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to BlockUpsertPayload, the base overhead grows
		// and the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(BlockUpsertPayload{
			BasePayload: BasePayload{Event: "t"},
		})
		contentSize := 7900 - len(base) - 20
		content := make([]byte, contentSize)
		for i := range content {
			content[i] = 'b'
		}
		payload, _ := json.Marshal(BlockUpsertPayload{
			BasePayload: BasePayload{Event: "t"},
			Data:        BlockData{Content: string(content)},
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(DecisionFinalPayload{
			BasePayload: BasePayload{
				Event:        EventTypeDecisionFinal,
				CompletionID: "comp-1",
				Seq:          3,
			},
			Data: DecisionData{PlanDecisionID: "dec-1"},
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "dec-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'x'
		}
		payload, _ := json.Marshal(BlockUpsertPayload{
			BasePayload: BasePayload{
				Event:        EventTypeBlockUpsert,
				CompletionID: "comp-789",
				Seq:          6,
			},
			Data: BlockData{
				BlockID: "blk-456",
				Content: string(longContent),
			},
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "comp-789")
	})

	t.Run("truncated payload without agent_execution_id omits it", func(t *testing.T) {
		longMessage := make([]byte, 8000)
		for i := range longMessage {
			longMessage[i] = 'x'
		}
		payload, _ := json.Marshal(CompletionErrorPayload{
			BasePayload: BasePayload{
				Event:        EventTypeCompletionError,
				CompletionID: "comp-1",
			},
			Data: CompletionLifecycleData{ErrorMessage: string(longMessage)},
		})

		result, err := injectDBEventIDAndTruncate(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
		assert.NotContains(t, result, "agent_execution_id")
	})
}

func TestBuildTruncatedPayload(t *testing.T) {
	t.Run("keeps only envelope fields", func(t *testing.T) {
		payload, _ := json.Marshal(BlockUpsertPayload{
			BasePayload: BasePayload{
				Event:            EventTypeBlockUpsert,
				CompletionID:     "comp-1",
				AgentExecutionID: "exec-1",
				Seq:              7,
				Timestamp:        "2026-01-01T00:00:00Z",
			},
			Data: BlockData{
				BlockID:    "blk-1",
				SourceType: completionblock.SourceTypeDecision,
				Content:    "secret block content",
			},
		})

		result, err := buildTruncatedPayload(payload)
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &parsed))
		assert.Equal(t, EventTypeBlockUpsert, parsed["event"])
		assert.Equal(t, "comp-1", parsed["completion_id"])
		assert.Equal(t, "exec-1", parsed["agent_execution_id"])
		assert.Equal(t, float64(7), parsed["seq"])
		assert.Equal(t, true, parsed["truncated"])
		assert.NotContains(t, parsed, "data")
		assert.NotContains(t, result, "secret block content")
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := buildTruncatedPayload([]byte("not json"))
		assert.Error(t, err)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}
