package models

// RecordTableUsageRequest logs which tables a query touched and whether the
// query succeeded. One row is written per table so ranking aggregates stay
// per-table.
type RecordTableUsageRequest struct {
	OrganizationID   string   `json:"organization_id"`
	Datasource       string   `json:"datasource"`
	Tables           []string `json:"tables"`
	Success          bool     `json:"success"`
	StepID           string   `json:"step_id,omitempty"`
	AgentExecutionID string   `json:"agent_execution_id,omitempty"`
}
