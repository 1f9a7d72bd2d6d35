package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/report"
	"github.com/quarryhq/quarry/pkg/models"
)

// ReportService manages the conversation containers completions hang off.
type ReportService struct {
	client *ent.Client
}

// NewReportService creates a new ReportService
func NewReportService(client *ent.Client) *ReportService {
	return &ReportService{client: client}
}

// CreateReport creates a report, honoring a client-minted ID when given.
func (s *ReportService) CreateReport(httpCtx context.Context, req models.CreateReportRequest) (*ent.Report, error) {
	if req.OrganizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	reportID := req.ReportID
	if reportID == "" {
		reportID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Report.Create().
		SetID(reportID).
		SetOrganizationID(req.OrganizationID).
		SetUserID(req.UserID).
		SetCreatedAt(time.Now())

	if req.Title != "" {
		builder = builder.SetTitle(req.Title)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return created, nil
}

// GetReport retrieves a report scoped to an organization. A report owned by
// a different organization reads as not found.
func (s *ReportService) GetReport(ctx context.Context, reportID, organizationID string) (*ent.Report, error) {
	r, err := s.client.Report.Query().
		Where(
			report.IDEQ(reportID),
			report.OrganizationIDEQ(organizationID),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return r, nil
}

// EnsureReport fetches the report or creates it under the given ID. Clients
// mint report IDs up front, so the first completion of a fresh conversation
// races its container into existence here.
func (s *ReportService) EnsureReport(httpCtx context.Context, reportID, organizationID, userID string) (*ent.Report, error) {
	if reportID == "" {
		return nil, NewValidationError("report_id", "required")
	}

	r, err := s.GetReport(httpCtx, reportID, organizationID)
	if err == nil {
		return r, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	created, err := s.CreateReport(httpCtx, models.CreateReportRequest{
		ReportID:       reportID,
		OrganizationID: organizationID,
		UserID:         userID,
	})
	if err == ErrAlreadyExists {
		return s.GetReport(httpCtx, reportID, organizationID)
	}

	return created, err
}

// SetTitle writes the synthesized report title.
func (s *ReportService) SetTitle(httpCtx context.Context, reportID, title string) (*ent.Report, error) {
	if title == "" {
		return nil, NewValidationError("title", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := s.client.Report.UpdateOneID(reportID).
		SetTitle(title).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set report title: %w", err)
	}

	return updated, nil
}

// ListReports retrieves an organization's reports, newest first.
func (s *ReportService) ListReports(ctx context.Context, organizationID string, limit, offset int) ([]*ent.Report, int, error) {
	if organizationID == "" {
		return nil, 0, NewValidationError("organization_id", "required")
	}

	query := s.client.Report.Query().
		Where(report.OrganizationIDEQ(organizationID))

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	reports, err := query.
		Order(ent.Desc(report.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}

	return reports, total, nil
}
