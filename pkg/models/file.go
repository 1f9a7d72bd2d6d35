package models

// UploadedFile describes a file attached to a report. Only the inferred
// schema travels through the agent; file contents stay with the platform.
type UploadedFile struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	ContentType string         `json:"content_type,omitempty"`
	Schema      map[string]any `json:"schema,omitempty"`
}
