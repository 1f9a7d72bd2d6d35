package models

// SaveContextSnapshotRequest appends one frozen context view for a run.
// Kind is one of initial, pre_tool, post_tool, final.
type SaveContextSnapshotRequest struct {
	AgentExecutionID string         `json:"agent_execution_id"`
	Kind             string         `json:"kind"`
	LoopIndex        int            `json:"loop_index"`
	ContextView      map[string]any `json:"context_view"`
	PromptText       string         `json:"prompt_text,omitempty"`
	PromptTokens     *int           `json:"prompt_tokens,omitempty"`
}
