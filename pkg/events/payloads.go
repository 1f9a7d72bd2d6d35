package events

import (
	"time"

	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/toolexecution"
)

// BasePayload is the envelope shared by every published frame. Embedding it
// in a payload struct yields the wire shape
// {event, completion_id, agent_execution_id, seq, timestamp, data}.
type BasePayload struct {
	Event            string `json:"event"`
	CompletionID     string `json:"completion_id"`
	AgentExecutionID string `json:"agent_execution_id,omitempty"` // empty for queue-level events
	Seq              int    `json:"seq"`
	Timestamp        string `json:"timestamp"` // RFC3339Nano
}

// NewBase stamps an envelope for the given event. Seq is the per-run sequence
// allocated by the persistence gateway; pass 0 for events outside a run.
func NewBase(event, completionID, agentExecutionID string, seq int) BasePayload {
	return BasePayload{
		Event:            event,
		CompletionID:     completionID,
		AgentExecutionID: agentExecutionID,
		Seq:              seq,
		Timestamp:        time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// DecisionData carries the current state of a plan decision. Partial frames
// hold whatever has streamed so far; the final frame holds the full decision.
type DecisionData struct {
	PlanDecisionID   string                `json:"plan_decision_id"`
	LoopIndex        int                   `json:"loop_index"`
	PlanType         plandecision.PlanType `json:"plan_type"`
	AnalysisComplete bool                  `json:"analysis_complete"`
	Reasoning        string                `json:"reasoning,omitempty"`
	Assistant        string                `json:"assistant,omitempty"`
	FinalAnswer      string                `json:"final_answer,omitempty"`
	ActionName       string                `json:"action_name,omitempty"`
	ActionArgs       map[string]any        `json:"action_args,omitempty"`
	Metrics          map[string]any        `json:"metrics,omitempty"`
}

// DecisionPartialPayload is the payload for decision.partial events.
// Transient; emitted only when the partial has non-empty reasoning or
// assistant text.
type DecisionPartialPayload struct {
	BasePayload
	Data DecisionData `json:"data"`
}

// DecisionFinalPayload is the payload for decision.final events.
type DecisionFinalPayload struct {
	BasePayload
	Data DecisionData `json:"data"`
}

// BlockData is the full render state of a completion block, carried by
// block.upsert. It subsumes any block.delta.artifact frames lost before it.
type BlockData struct {
	BlockID         string                     `json:"block_id"`
	BlockIndex      int                        `json:"block_index"`
	LoopIndex       int                        `json:"loop_index"`
	SourceType      completionblock.SourceType `json:"source_type"`
	PlanDecisionID  string                     `json:"plan_decision_id,omitempty"`
	ToolExecutionID string                     `json:"tool_execution_id,omitempty"`
	Title           string                     `json:"title"`
	Status          completionblock.Status     `json:"status"`
	Icon            string                     `json:"icon"`
	Content         string                     `json:"content,omitempty"`
	Reasoning       string                     `json:"reasoning,omitempty"`
	CompletedAt     string                     `json:"completed_at,omitempty"` // RFC3339Nano
}

// BlockUpsertPayload is the payload for block.upsert events.
type BlockUpsertPayload struct {
	BasePayload
	Data BlockData `json:"data"`
}

// BlockDeltaData carries one throttled streamer emission for a block text
// field. When Replace is false Delta extends the previous text; when true
// Snapshot replaces it wholesale.
type BlockDeltaData struct {
	BlockID  string `json:"block_id"`
	Field    string `json:"field"` // "content" or "reasoning"
	Delta    string `json:"delta,omitempty"`
	Snapshot string `json:"snapshot,omitempty"`
	Replace  bool   `json:"replace"`
}

// BlockDeltaPayload is the payload for block.delta.artifact events. Transient.
type BlockDeltaPayload struct {
	BasePayload
	Data BlockDeltaData `json:"data"`
}

// ToolStartedData is carried by tool.started.
type ToolStartedData struct {
	ToolExecutionID string         `json:"tool_execution_id"`
	ToolName        string         `json:"tool_name"`
	ToolAction      string         `json:"tool_action,omitempty"`
	LoopIndex       int            `json:"loop_index"`
	AttemptNumber   int            `json:"attempt_number"`
	Arguments       map[string]any `json:"arguments,omitempty"` // masked before publish
}

// ToolStartedPayload is the payload for tool.started events.
type ToolStartedPayload struct {
	BasePayload
	Data ToolStartedData `json:"data"`
}

// ToolProgressData is carried by tool.progress. Stage names drive the
// side-effect handlers on the loop side; clients use them for step displays.
type ToolProgressData struct {
	ToolExecutionID string         `json:"tool_execution_id"`
	Stage           string         `json:"stage"`
	Detail          map[string]any `json:"detail,omitempty"`
}

// ToolProgressPayload is the payload for tool.progress events. Transient.
type ToolProgressPayload struct {
	BasePayload
	Data ToolProgressData `json:"data"`
}

// ToolPartialData is carried by tool.partial (incremental tool text).
type ToolPartialData struct {
	ToolExecutionID string `json:"tool_execution_id"`
	Delta           string `json:"delta"`
}

// ToolPartialPayload is the payload for tool.partial events. Transient.
type ToolPartialPayload struct {
	BasePayload
	Data ToolPartialData `json:"data"`
}

// ToolStdoutData is carried by tool.stdout (tool process output lines).
type ToolStdoutData struct {
	ToolExecutionID string `json:"tool_execution_id"`
	Line            string `json:"line"` // masked before publish
}

// ToolStdoutPayload is the payload for tool.stdout events. Transient.
type ToolStdoutPayload struct {
	BasePayload
	Data ToolStdoutData `json:"data"`
}

// ToolFinishedData is carried by tool.finished. ResultJSON has widget_data
// stripped; QueryID is attached for preview hydration.
type ToolFinishedData struct {
	ToolExecutionID         string               `json:"tool_execution_id"`
	ToolName                string               `json:"tool_name"`
	Status                  toolexecution.Status `json:"status"`
	Success                 bool                 `json:"success"`
	ResultSummary           string               `json:"result_summary,omitempty"`
	ResultJSON              map[string]any       `json:"result_json,omitempty"`
	ErrorMessage            string               `json:"error_message,omitempty"`
	DurationMs              int                  `json:"duration_ms"`
	QueryID                 string               `json:"query_id,omitempty"`
	CreatedWidgetID         string               `json:"created_widget_id,omitempty"`
	CreatedStepID           string               `json:"created_step_id,omitempty"`
	CreatedVisualizationIDs []string             `json:"created_visualization_ids,omitempty"`
}

// ToolFinishedPayload is the payload for tool.finished events.
type ToolFinishedPayload struct {
	BasePayload
	Data ToolFinishedData `json:"data"`
}

// PlannerRetryData is carried by planner.retry.
type PlannerRetryData struct {
	Kind        string `json:"kind"` // validation_error, missing_action, ...
	Attempt     int    `json:"attempt"`
	MaxAttempts int    `json:"max_attempts"`
	Message     string `json:"message,omitempty"`
}

// PlannerRetryPayload is the payload for planner.retry events.
type PlannerRetryPayload struct {
	BasePayload
	Data PlannerRetryData `json:"data"`
}

// CompletionLifecycleData is shared by completion.started, completion.finished
// and completion.error.
type CompletionLifecycleData struct {
	ReportID     string            `json:"report_id,omitempty"`
	Status       completion.Status `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

// CompletionStartedPayload is the payload for completion.started events.
// Also broadcast transiently on the global completions channel.
type CompletionStartedPayload struct {
	BasePayload
	Data CompletionLifecycleData `json:"data"`
}

// CompletionFinishedPayload is the payload for completion.finished events,
// the terminator frame of a run's stream.
type CompletionFinishedPayload struct {
	BasePayload
	Data CompletionLifecycleData `json:"data"`
}

// CompletionErrorPayload is the payload for completion.error events
// (fatal persistence failures surfaced mid-run).
type CompletionErrorPayload struct {
	BasePayload
	Data CompletionLifecycleData `json:"data"`
}

// CompletionUpdateData is carried by update_completion broadcasts. Pods
// holding the run translate SigkillAt into a local cancellation.
type CompletionUpdateData struct {
	SigkillAt string `json:"sigkill_at"` // RFC3339Nano
}

// CompletionUpdatePayload is the payload for update_completion events.
type CompletionUpdatePayload struct {
	BasePayload
	Data CompletionUpdateData `json:"data"`
}

// ArtifactData is shared by query.created, visualization.created and
// visualization.updated.
type ArtifactData struct {
	ToolExecutionID string `json:"tool_execution_id,omitempty"`
	QueryID         string `json:"query_id,omitempty"`
	WidgetID        string `json:"widget_id,omitempty"`
	StepID          string `json:"step_id,omitempty"`
	VisualizationID string `json:"visualization_id,omitempty"`
}

// ArtifactPayload is the payload for artifact lifecycle events. The concrete
// event name lives in the envelope.
type ArtifactPayload struct {
	BasePayload
	Data ArtifactData `json:"data"`
}

// SuggestData is shared by the instructions.suggest.* events.
type SuggestData struct {
	Index          int      `json:"index,omitempty"`
	Text           string   `json:"text,omitempty"`
	Count          int      `json:"count,omitempty"`
	InstructionIDs []string `json:"instruction_ids,omitempty"`
}

// SuggestPayload is the payload for instructions.suggest.{started,partial,
// finished} events. Partial frames are transient.
type SuggestPayload struct {
	BasePayload
	Data SuggestData `json:"data"`
}
