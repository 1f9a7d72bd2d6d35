package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/models"
	testdb "github.com/quarryhq/quarry/test/database"
)

func TestUsageService_RecordTableUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUsageService(client.Client)
	ctx := context.Background()

	t.Run("writes one row per table", func(t *testing.T) {
		rows, err := service.RecordTableUsage(ctx, models.RecordTableUsageRequest{
			OrganizationID: testOrgID,
			Datasource:     "warehouse",
			Tables:         []string{"orders", "customers", "order_items"},
			Success:        true,
			StepID:         "step-1",
		})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for _, row := range rows {
			assert.Equal(t, "warehouse", row.Datasource)
			assert.True(t, row.Success)
			assert.Equal(t, 0, row.Feedback)
			require.NotNil(t, row.StepID)
			assert.Equal(t, "step-1", *row.StepID)
			assert.Nil(t, row.AgentExecutionID)
		}
	})

	t.Run("skips empty table names", func(t *testing.T) {
		rows, err := service.RecordTableUsage(ctx, models.RecordTableUsageRequest{
			OrganizationID: testOrgID,
			Datasource:     "warehouse",
			Tables:         []string{"orders", "", "refunds"},
			Success:        false,
		})
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.RecordTableUsage(ctx, models.RecordTableUsageRequest{
			Datasource: "warehouse",
			Tables:     []string{"orders"},
		})
		requireValidationError(t, err, "organization_id")

		_, err = service.RecordTableUsage(ctx, models.RecordTableUsageRequest{
			OrganizationID: testOrgID,
			Tables:         []string{"orders"},
		})
		requireValidationError(t, err, "datasource")

		_, err = service.RecordTableUsage(ctx, models.RecordTableUsageRequest{
			OrganizationID: testOrgID,
			Datasource:     "warehouse",
		})
		requireValidationError(t, err, "tables")

		// All-blank table lists collapse to nothing
		_, err = service.RecordTableUsage(ctx, models.RecordTableUsageRequest{
			OrganizationID: testOrgID,
			Datasource:     "warehouse",
			Tables:         []string{"", ""},
		})
		requireValidationError(t, err, "tables")
	})
}

func TestUsageService_SetFeedback(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUsageService(client.Client)
	ctx := context.Background()

	rows, err := service.RecordTableUsage(ctx, models.RecordTableUsageRequest{
		OrganizationID: testOrgID,
		Datasource:     "warehouse",
		Tables:         []string{"orders"},
		Success:        true,
	})
	require.NoError(t, err)

	updated, err := service.SetFeedback(ctx, rows[0].ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Feedback)

	updated, err = service.SetFeedback(ctx, rows[0].ID, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, updated.Feedback)

	_, err = service.SetFeedback(ctx, uuid.New().String(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsageService_RecentUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUsageService(client.Client)
	ctx := context.Background()

	_, err := service.RecordTableUsage(ctx, models.RecordTableUsageRequest{
		OrganizationID: testOrgID,
		Datasource:     "warehouse",
		Tables:         []string{"orders", "customers"},
		Success:        true,
	})
	require.NoError(t, err)

	_, err = service.RecordTableUsage(ctx, models.RecordTableUsageRequest{
		OrganizationID: testOrgID,
		Datasource:     "events",
		Tables:         []string{"page_views"},
		Success:        true,
	})
	require.NoError(t, err)

	// created_at is immutable, so seed the out-of-window row directly
	_, err = client.TableUsage.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(testOrgID).
		SetDatasource("warehouse").
		SetTableName("legacy_orders").
		SetSuccess(true).
		SetCreatedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	t.Run("scopes to organization and datasource within the window", func(t *testing.T) {
		rows, err := service.RecentUsage(ctx, testOrgID, "warehouse", time.Now().Add(-30*24*time.Hour))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Equal(t, "warehouse", row.Datasource)
			assert.NotEqual(t, "legacy_orders", row.TableName)
		}
	})

	t.Run("widening the window picks up older rows", func(t *testing.T) {
		rows, err := service.RecentUsage(ctx, testOrgID, "warehouse", time.Now().Add(-90*24*time.Hour))
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("unknown organization sees nothing", func(t *testing.T) {
		rows, err := service.RecentUsage(ctx, "org-other", "warehouse", time.Time{})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.RecentUsage(ctx, "", "warehouse", time.Time{})
		requireValidationError(t, err, "organization_id")

		_, err = service.RecentUsage(ctx, testOrgID, "", time.Time{})
		requireValidationError(t, err, "datasource")
	})
}
