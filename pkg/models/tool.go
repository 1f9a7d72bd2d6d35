package models

// StartToolExecutionRequest records a tool invocation at dispatch time.
type StartToolExecutionRequest struct {
	AgentExecutionID string         `json:"agent_execution_id"`
	PlanDecisionID   string         `json:"plan_decision_id,omitempty"`
	Seq              int            `json:"seq"`
	ToolName         string         `json:"tool_name"`
	ToolAction       string         `json:"tool_action,omitempty"`
	Arguments        map[string]any `json:"arguments"`
	AttemptNumber    int            `json:"attempt_number"`
	MaxRetries       int            `json:"max_retries"`
}

// FinishToolExecutionRequest transitions a tool row to its terminal state.
type FinishToolExecutionRequest struct {
	ToolExecutionID         string         `json:"tool_execution_id"`
	Success                 bool           `json:"success"`
	ResultSummary           string         `json:"result_summary,omitempty"`
	ResultJSON              map[string]any `json:"result_json,omitempty"`
	ErrorMessage            string         `json:"error_message,omitempty"`
	CreatedWidgetID         string         `json:"created_widget_id,omitempty"`
	CreatedStepID           string         `json:"created_step_id,omitempty"`
	CreatedVisualizationIDs []string       `json:"created_visualization_ids,omitempty"`
}
