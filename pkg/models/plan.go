// Package models defines the domain types shared across layers: planner
// decisions, observations, request/response shapes for the services, and the
// plan-type vocabulary that gates tool selection.
package models

// PlanType partitions tools into read-only research work and state-changing
// actions. The planner declares one per decision; the registry gates tool
// selection on it.
type PlanType string

const (
	PlanTypeResearch PlanType = "research"
	PlanTypeAction   PlanType = "action"
)

// Valid reports whether the plan type is one of the known values.
func (p PlanType) Valid() bool {
	return p == PlanTypeResearch || p == PlanTypeAction
}

// PlanAction is the tool invocation a decision asks for.
type PlanAction struct {
	Name      string         `json:"name"`
	Type      string         `json:"type,omitempty"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// DecisionMetrics carries planner-reported usage for a single decision.
type DecisionMetrics struct {
	InputTokens  int   `json:"input_tokens,omitempty"`
	OutputTokens int   `json:"output_tokens,omitempty"`
	TotalTokens  int   `json:"total_tokens,omitempty"`
	LatencyMs    int64 `json:"latency_ms,omitempty"`
}

// DecisionError describes a planner-side failure (malformed output, provider
// error). The orchestrator treats decisions carrying one as retryable.
type DecisionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PlannerDecision is the typed planner output. During streaming the adapter
// yields partials of this struct whose fields populate monotonically; the
// final decision is schema-validated before it reaches the loop.
type PlannerDecision struct {
	PlanType         PlanType         `json:"plan_type"`
	ReasoningMessage string           `json:"reasoning_message,omitempty"`
	AssistantMessage string           `json:"assistant_message,omitempty"`
	AnalysisComplete bool             `json:"analysis_complete"`
	FinalAnswer      string           `json:"final_answer,omitempty"`
	Action           *PlanAction      `json:"action,omitempty"`
	Metrics          *DecisionMetrics `json:"metrics,omitempty"`
	Error            *DecisionError   `json:"error,omitempty"`
}

// HasStreamableText reports whether the partial carries user-visible text.
// Partial decision events are emitted only when this is true.
func (d *PlannerDecision) HasStreamableText() bool {
	return d.ReasoningMessage != "" || d.AssistantMessage != ""
}

// Content returns the block content for this decision: the final answer when
// present, otherwise the assistant message.
func (d *PlannerDecision) Content() string {
	if d.FinalAnswer != "" {
		return d.FinalAnswer
	}
	return d.AssistantMessage
}
