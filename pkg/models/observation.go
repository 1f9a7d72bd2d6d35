package models

import "time"

// Error taxonomy codes, carried in ObservationError.Code, DecisionError.Code,
// and event payloads.
const (
	ErrCodeInputValidation = "input_validation_error"
	ErrCodeValidation      = "validation_error"
	ErrCodeMissingAction   = "missing_action"
	ErrCodeResolve         = "resolve_error"
	ErrCodeTimeout         = "timeout"
	ErrCodeExecution       = "execution_failure"
	ErrCodeCancelled       = "cancelled"
)

// ObservationError classifies a tool failure inside an observation.
type ObservationError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// Observation is the closed-schema record of a tool outcome fed back into
// the next planner call. Summary is mandatory; everything else is optional
// and downstream code branches on presence, never on raw map keys.
type Observation struct {
	Summary                 string            `json:"summary"`
	Error                   *ObservationError `json:"error,omitempty"`
	AnalysisComplete        *bool             `json:"analysis_complete,omitempty"`
	FinalAnswer             string            `json:"final_answer,omitempty"`
	Artifacts               map[string]any    `json:"artifacts,omitempty"`
	StepID                  string            `json:"step_id,omitempty"`
	WidgetID                string            `json:"widget_id,omitempty"`
	CreatedVisualizationIDs []string          `json:"created_visualization_ids,omitempty"`
}

// Failed reports whether the observation carries an error.
func (o *Observation) Failed() bool {
	return o != nil && o.Error != nil
}

// ToolObservation is one entry in the accumulator's history: an observation
// plus the invocation that produced it, numbered in execution order.
type ToolObservation struct {
	ExecutionNumber int            `json:"execution_number"`
	ToolName        string         `json:"tool_name"`
	ToolInput       map[string]any `json:"tool_input,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
	Observation     *Observation   `json:"observation"`
}
