package models

// CreateReportRequest opens a report container. ReportID is optional; when
// set (client-minted IDs) the service creates the row under that ID.
type CreateReportRequest struct {
	ReportID       string `json:"report_id,omitempty"`
	OrganizationID string `json:"organization_id"`
	UserID         string `json:"user_id"`
	Title          string `json:"title,omitempty"`
}
