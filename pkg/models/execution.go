package models

// CreateAgentExecutionRequest opens a run for a claimed completion. The
// identity triple is denormalized from the completion so report-wide lineage
// queries never need a join back through it.
type CreateAgentExecutionRequest struct {
	CompletionID   string         `json:"completion_id"`
	ReportID       string         `json:"report_id"`
	OrganizationID string         `json:"organization_id"`
	UserID         string         `json:"user_id"`
	Config         map[string]any `json:"config,omitempty"`
}

// FinishAgentExecutionRequest closes a run with its terminal status. Status
// must be one of success, error, sigkill.
type FinishAgentExecutionRequest struct {
	AgentExecutionID string `json:"agent_execution_id"`
	Status           string `json:"status"`
	ErrorMessage     string `json:"error_message,omitempty"`
}
