// Package events provides real-time event delivery for completion streams via
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution, with an outbox table
// for catchup.
//
// ════════════════════════════════════════════════════════════════
// Event Delivery Patterns
// ════════════════════════════════════════════════════════════════
//
// Every frame has the same envelope:
//
//	{event, completion_id, agent_execution_id, seq, timestamp, data}
//
// and is published on the completion's channel ("completion:<id>"). Events
// fall into two delivery classes:
//
// Pattern 1 — PERSISTENT (outbox row + NOTIFY in one transaction):
//
//	decision.final, block.upsert, tool.started, tool.finished,
//	planner.retry, completion.started, completion.finished,
//	completion.error, query.created, visualization.created,
//	visualization.updated, instructions.suggest.started,
//	instructions.suggest.finished, update_completion
//
//	The outbox row id is injected into the NOTIFY payload as db_event_id
//	and doubles as the SSE event id, so a reconnecting client resumes with
//	Last-Event-ID and replays exactly the persistent events it missed.
//
// Pattern 2 — TRANSIENT (NOTIFY only, never stored):
//
//	decision.partial, block.delta.artifact, tool.progress, tool.partial,
//	tool.stdout, instructions.suggest.partial
//
//	High-frequency streaming traffic. Lost frames are recovered through
//	state, not replay: every block.delta.artifact is subsumed by the next
//	persistent block.upsert, and decision.partial by decision.final.
//
// Lifecycle events (completion.started/finished/error, update_completion) are
// additionally broadcast transiently on the global "completions" channel so
// worker pods and list views observe every run without per-completion
// subscriptions.
package events

// Persistent event types (outbox + NOTIFY).
const (
	EventTypeDecisionFinal        = "decision.final"
	EventTypeBlockUpsert          = "block.upsert"
	EventTypeToolStarted          = "tool.started"
	EventTypeToolFinished         = "tool.finished"
	EventTypePlannerRetry         = "planner.retry"
	EventTypeCompletionStarted    = "completion.started"
	EventTypeCompletionFinished   = "completion.finished"
	EventTypeCompletionError      = "completion.error"
	EventTypeQueryCreated         = "query.created"
	EventTypeVisualizationCreated = "visualization.created"
	EventTypeVisualizationUpdated = "visualization.updated"
	EventTypeSuggestStarted       = "instructions.suggest.started"
	EventTypeSuggestFinished      = "instructions.suggest.finished"

	// Cancellation broadcast. Carries the sigkill timestamp; every pod's
	// listener resolves it to a local cancel.
	EventTypeCompletionUpdate = "update_completion"
)

// Transient event types (NOTIFY only, no outbox row).
const (
	EventTypeDecisionPartial = "decision.partial"
	EventTypeBlockDelta      = "block.delta.artifact"
	EventTypeToolProgress    = "tool.progress"
	EventTypeToolPartial     = "tool.partial"
	EventTypeToolStdout      = "tool.stdout"
	EventTypeSuggestPartial  = "instructions.suggest.partial"
)

// GlobalCompletionsChannel carries lifecycle events for all completions.
// Worker pods subscribe to it for sigkill broadcasts; list views subscribe
// for live status.
const GlobalCompletionsChannel = "completions"

// CompletionChannel returns the channel name for a completion's event stream.
// Format: "completion:{completion_id}"
func CompletionChannel(completionID string) string {
	return "completion:" + completionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "completion:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
