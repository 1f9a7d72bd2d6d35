package models

import "time"

// UpsertDecisionBlockRequest writes the projected block for a plan decision.
// The key is (agent_execution_id, loop_index, source_type=decision); repeated
// upserts during streaming land on the same row.
type UpsertDecisionBlockRequest struct {
	CompletionID     string     `json:"completion_id"`
	AgentExecutionID string     `json:"agent_execution_id"`
	PlanDecisionID   string     `json:"plan_decision_id"`
	LoopIndex        int        `json:"loop_index"`
	BlockIndex       int        `json:"block_index"`
	Title            string     `json:"title"`
	Status           string     `json:"status"`
	Icon             string     `json:"icon,omitempty"`
	Content          string     `json:"content,omitempty"`
	Reasoning        string     `json:"reasoning,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// AnnotateToolBlockRequest folds a tool execution into the decision block
// that requested it. When no decision block exists (skeleton pre-creation
// failed) a tool-sourced block is created instead, using the fallback fields.
type AnnotateToolBlockRequest struct {
	CompletionID     string     `json:"completion_id"`
	AgentExecutionID string     `json:"agent_execution_id"`
	PlanDecisionID   string     `json:"plan_decision_id"`
	ToolExecutionID  string     `json:"tool_execution_id"`
	ToolName         string     `json:"tool_name"`
	LoopIndex        int        `json:"loop_index"`
	BlockIndex       int        `json:"block_index"`
	Status           string     `json:"status"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}
