package models

// InstructionCreate is the request body accepted when an instruction is
// submitted over the API. Organization and source are set server-side.
type InstructionCreate struct {
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
	LoadMode string `json:"load_mode,omitempty"`
}

// CreateInstructionRequest adds an organization instruction. User-authored
// instructions activate immediately; suggested ones land as drafts pending
// review. LoadMode defaults to always.
type CreateInstructionRequest struct {
	OrganizationID   string `json:"organization_id"`
	Text             string `json:"text"`
	Category         string `json:"category,omitempty"`
	LoadMode         string `json:"load_mode,omitempty"`
	Source           string `json:"source,omitempty"`
	AgentExecutionID string `json:"agent_execution_id,omitempty"`
}

// UpdateInstructionRequest patches an instruction; nil fields are left
// untouched.
type UpdateInstructionRequest struct {
	Text     *string `json:"text,omitempty"`
	Category *string `json:"category,omitempty"`
	LoadMode *string `json:"load_mode,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// InstructionFilters narrows instruction listings.
type InstructionFilters struct {
	Status   string `json:"status,omitempty"`
	LoadMode string `json:"load_mode,omitempty"`
	Source   string `json:"source,omitempty"`
}
