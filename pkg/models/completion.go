package models

import (
	"encoding/json"

	"github.com/quarryhq/quarry/ent"
)

// PromptSpec is the user-facing prompt payload inside CompletionCreate.
type PromptSpec struct {
	Content  string   `json:"content"`
	WidgetID string   `json:"widget_id,omitempty"`
	StepID   string   `json:"step_id,omitempty"`
	Mentions []string `json:"mentions,omitempty"`
	Mode     string   `json:"mode,omitempty"`
	ModelID  string   `json:"model_id,omitempty"`
}

// CompletionCreate is the request body accepted when a user turn is
// submitted. Collaborator identity (report, organization, user) comes from
// the route and headers, not the body.
type CompletionCreate struct {
	Prompt PromptSpec `json:"prompt"`
}

// PromptSpecFromMap decodes the prompt payload stored on a completion row.
// Unknown keys are dropped; a nil or malformed map yields a zero spec.
func PromptSpecFromMap(m map[string]any) PromptSpec {
	var spec PromptSpec
	raw, err := json.Marshal(m)
	if err != nil {
		return spec
	}
	_ = json.Unmarshal(raw, &spec)
	return spec
}

// CreateCompletionRequest contains everything the completion service needs
// to enqueue a turn.
type CreateCompletionRequest struct {
	ReportID       string     `json:"report_id"`
	OrganizationID string     `json:"organization_id"`
	UserID         string     `json:"user_id"`
	Prompt         PromptSpec `json:"prompt"`
}

// CompletionFilters narrows completion listings. Zero values mean "no
// filter"; pagination defaults are applied by the service.
type CompletionFilters struct {
	ReportID       string `json:"report_id,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
	Status         string `json:"status,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
}

// CompletionResponse wraps a Completion with optional loaded edges.
type CompletionResponse struct {
	*ent.Completion
}

// CompletionListResponse contains a paginated completion list.
type CompletionListResponse struct {
	Completions []*ent.Completion `json:"completions"`
	TotalCount  int               `json:"total_count"`
	Limit       int               `json:"limit"`
	Offset      int               `json:"offset"`
}
