package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/tableusage"
	"github.com/quarryhq/quarry/pkg/models"
)

// UsageService records which tables queries touch. The schema ranker reads
// the raw rows back and computes its decayed aggregates in memory, so this
// service stays a thin ledger.
type UsageService struct {
	client *ent.Client
}

// NewUsageService creates a new UsageService
func NewUsageService(client *ent.Client) *UsageService {
	return &UsageService{client: client}
}

// RecordTableUsage writes one usage row per referenced table.
func (s *UsageService) RecordTableUsage(httpCtx context.Context, req models.RecordTableUsageRequest) ([]*ent.TableUsage, error) {
	if req.OrganizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}
	if req.Datasource == "" {
		return nil, NewValidationError("datasource", "required")
	}
	if len(req.Tables) == 0 {
		return nil, NewValidationError("tables", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	builders := make([]*ent.TableUsageCreate, 0, len(req.Tables))
	for _, table := range req.Tables {
		if table == "" {
			continue
		}
		builder := s.client.TableUsage.Create().
			SetID(uuid.New().String()).
			SetOrganizationID(req.OrganizationID).
			SetDatasource(req.Datasource).
			SetTableName(table).
			SetSuccess(req.Success).
			SetCreatedAt(now)

		if req.StepID != "" {
			builder = builder.SetStepID(req.StepID)
		}
		if req.AgentExecutionID != "" {
			builder = builder.SetAgentExecutionID(req.AgentExecutionID)
		}
		builders = append(builders, builder)
	}
	if len(builders) == 0 {
		return nil, NewValidationError("tables", "required")
	}

	rows, err := s.client.TableUsage.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record table usage: %w", err)
	}

	return rows, nil
}

// SetFeedback applies a net thumbs value to one usage row.
func (s *UsageService) SetFeedback(httpCtx context.Context, usageID string, feedback int) (*ent.TableUsage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := s.client.TableUsage.UpdateOneID(usageID).
		SetFeedback(feedback).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set feedback: %w", err)
	}

	return updated, nil
}

// RecentUsage retrieves the usage rows of one datasource since the cutoff,
// newest first. Rows older than the ranking window contribute nothing to the
// decayed aggregates, so they are never loaded.
func (s *UsageService) RecentUsage(ctx context.Context, organizationID, datasource string, since time.Time) ([]*ent.TableUsage, error) {
	if organizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}
	if datasource == "" {
		return nil, NewValidationError("datasource", "required")
	}

	rows, err := s.client.TableUsage.Query().
		Where(
			tableusage.OrganizationIDEQ(organizationID),
			tableusage.DatasourceEQ(datasource),
			tableusage.CreatedAtGTE(since),
		).
		Order(ent.Desc(tableusage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent usage: %w", err)
	}

	return rows, nil
}
