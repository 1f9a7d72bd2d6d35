package events

import (
	"encoding/json"
	"testing"

	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompletionChannelPayloads_ContainEnvelope is a contract test between
// the backend and the SSE/WebSocket clients.
//
// Clients route incoming frames by the top-level `event` and `completion_id`
// fields, and order them by `seq`. Truncation recovery depends on the same
// fields: buildTruncatedPayload extracts them from the marshaled JSON, so a
// payload struct that buries them inside `data` would produce unroutable
// truncated frames.
//
// All payload structs embed BasePayload which guarantees the envelope is at
// the top level. This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A call site that forgets to populate the BasePayload fields
func TestCompletionChannelPayloads_ContainEnvelope(t *testing.T) {
	const testCompletionID = "comp-contract-test"
	base := func(event string) BasePayload {
		return BasePayload{
			Event:            event,
			CompletionID:     testCompletionID,
			AgentExecutionID: "exec-contract-test",
			Seq:              3,
			Timestamp:        "2026-01-01T00:00:00Z",
		}
	}

	// Every payload type that flows through CompletionChannel(completionID).
	// If you add a new payload, add it here — the test will fail if the
	// envelope is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "DecisionPartialPayload",
			payload: DecisionPartialPayload{
				BasePayload: base(EventTypeDecisionPartial),
				Data:        DecisionData{PlanDecisionID: "dec-1", PlanType: plandecision.PlanTypeResearch, Reasoning: "thinking"},
			},
		},
		{
			name: "DecisionFinalPayload",
			payload: DecisionFinalPayload{
				BasePayload: base(EventTypeDecisionFinal),
				Data:        DecisionData{PlanDecisionID: "dec-1", PlanType: plandecision.PlanTypeResearch},
			},
		},
		{
			name: "BlockUpsertPayload",
			payload: BlockUpsertPayload{
				BasePayload: base(EventTypeBlockUpsert),
				Data:        BlockData{BlockID: "blk-1", SourceType: completionblock.SourceTypeDecision, Status: completionblock.StatusInProgress},
			},
		},
		{
			name: "BlockDeltaPayload",
			payload: BlockDeltaPayload{
				BasePayload: base(EventTypeBlockDelta),
				Data:        BlockDeltaData{BlockID: "blk-1", Field: "content", Delta: "x"},
			},
		},
		{
			name: "ToolStartedPayload",
			payload: ToolStartedPayload{
				BasePayload: base(EventTypeToolStarted),
				Data:        ToolStartedData{ToolExecutionID: "tool-1", ToolName: "execute_query", AttemptNumber: 1},
			},
		},
		{
			name: "ToolProgressPayload",
			payload: ToolProgressPayload{
				BasePayload: base(EventTypeToolProgress),
				Data:        ToolProgressData{ToolExecutionID: "tool-1", Stage: "column_added"},
			},
		},
		{
			name: "ToolPartialPayload",
			payload: ToolPartialPayload{
				BasePayload: base(EventTypeToolPartial),
				Data:        ToolPartialData{ToolExecutionID: "tool-1", Delta: "token"},
			},
		},
		{
			name: "ToolStdoutPayload",
			payload: ToolStdoutPayload{
				BasePayload: base(EventTypeToolStdout),
				Data:        ToolStdoutData{ToolExecutionID: "tool-1", Line: "loaded 10 rows"},
			},
		},
		{
			name: "ToolFinishedPayload",
			payload: ToolFinishedPayload{
				BasePayload: base(EventTypeToolFinished),
				Data:        ToolFinishedData{ToolExecutionID: "tool-1", ToolName: "execute_query", Status: toolexecution.StatusSuccess, Success: true},
			},
		},
		{
			name: "PlannerRetryPayload",
			payload: PlannerRetryPayload{
				BasePayload: base(EventTypePlannerRetry),
				Data:        PlannerRetryData{Kind: "validation_error", Attempt: 1, MaxAttempts: 2},
			},
		},
		{
			name: "CompletionStartedPayload",
			payload: CompletionStartedPayload{
				BasePayload: base(EventTypeCompletionStarted),
				Data:        CompletionLifecycleData{ReportID: "rpt-1", Status: completion.StatusInProgress},
			},
		},
		{
			name: "CompletionFinishedPayload",
			payload: CompletionFinishedPayload{
				BasePayload: base(EventTypeCompletionFinished),
				Data:        CompletionLifecycleData{Status: completion.StatusCompleted},
			},
		},
		{
			name: "CompletionErrorPayload",
			payload: CompletionErrorPayload{
				BasePayload: base(EventTypeCompletionError),
				Data:        CompletionLifecycleData{Status: completion.StatusError, ErrorMessage: "boom"},
			},
		},
		{
			name: "CompletionUpdatePayload",
			payload: CompletionUpdatePayload{
				BasePayload: base(EventTypeCompletionUpdate),
				Data:        CompletionUpdateData{SigkillAt: "2026-01-01T00:00:00Z"},
			},
		},
		{
			name: "ArtifactPayload",
			payload: ArtifactPayload{
				BasePayload: base(EventTypeQueryCreated),
				Data:        ArtifactData{ToolExecutionID: "tool-1", QueryID: "qry-1"},
			},
		},
		{
			name: "SuggestPayload",
			payload: SuggestPayload{
				BasePayload: base(EventTypeSuggestFinished),
				Data:        SuggestData{Count: 1, InstructionIDs: []string{"ins-1"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(raw, &parsed), "failed to unmarshal %s", tt.name)

			event, ok := parsed["event"]
			assert.True(t, ok,
				"%s JSON is missing \"event\" field — clients cannot route this frame", tt.name)
			assert.NotEmpty(t, event, "%s event has empty value", tt.name)

			cid, ok := parsed["completion_id"]
			assert.True(t, ok,
				"%s JSON is missing \"completion_id\" field — clients cannot route this frame", tt.name)
			assert.Equal(t, testCompletionID, cid,
				"%s completion_id has wrong value", tt.name)

			_, ok = parsed["seq"]
			assert.True(t, ok, "%s JSON is missing \"seq\" field", tt.name)

			_, ok = parsed["data"]
			assert.True(t, ok, "%s JSON is missing \"data\" field", tt.name)
		})
	}
}

// TestBasePayload_OmitsEmptyAgentExecutionID verifies queue-level frames
// (published before any agent execution exists) marshal without an empty
// agent_execution_id key.
func TestBasePayload_OmitsEmptyAgentExecutionID(t *testing.T) {
	payload := CompletionStartedPayload{
		BasePayload: BasePayload{
			Event:        EventTypeCompletionStarted,
			CompletionID: "comp-1",
			Timestamp:    "2026-01-01T00:00:00Z",
		},
		Data: CompletionLifecycleData{ReportID: "rpt-1", Status: completion.StatusInProgress},
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))

	_, ok := parsed["agent_execution_id"]
	assert.False(t, ok, "empty agent_execution_id should be omitted from the wire")
}
