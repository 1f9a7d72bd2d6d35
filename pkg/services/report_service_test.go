package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/pkg/models"
	testdb "github.com/quarryhq/quarry/test/database"
)

func TestReportService_CreateReport(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReportService(client.Client)
	ctx := context.Background()

	t.Run("honors a client-minted ID", func(t *testing.T) {
		minted := uuid.New().String()

		created, err := service.CreateReport(ctx, models.CreateReportRequest{
			ReportID:       minted,
			OrganizationID: testOrgID,
			UserID:         testUserID,
			Title:          "Q3 revenue deep dive",
		})
		require.NoError(t, err)
		assert.Equal(t, minted, created.ID)
		require.NotNil(t, created.Title)
		assert.Equal(t, "Q3 revenue deep dive", *created.Title)
	})

	t.Run("mints an ID when none given", func(t *testing.T) {
		created, err := service.CreateReport(ctx, models.CreateReportRequest{
			OrganizationID: testOrgID,
			UserID:         testUserID,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Nil(t, created.Title)
	})

	t.Run("duplicate ID returns ErrAlreadyExists", func(t *testing.T) {
		minted := uuid.New().String()
		req := models.CreateReportRequest{
			ReportID:       minted,
			OrganizationID: testOrgID,
			UserID:         testUserID,
		}

		_, err := service.CreateReport(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateReport(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.CreateReport(ctx, models.CreateReportRequest{UserID: testUserID})
		requireValidationError(t, err, "organization_id")

		_, err = service.CreateReport(ctx, models.CreateReportRequest{OrganizationID: testOrgID})
		requireValidationError(t, err, "user_id")
	})
}

func TestReportService_GetReport(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReportService(client.Client)
	ctx := context.Background()

	created, err := service.CreateReport(ctx, models.CreateReportRequest{
		OrganizationID: testOrgID,
		UserID:         testUserID,
	})
	require.NoError(t, err)

	t.Run("scoped to the owning organization", func(t *testing.T) {
		found, err := service.GetReport(ctx, created.ID, testOrgID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("another organization reads not found", func(t *testing.T) {
		_, err := service.GetReport(ctx, created.ID, "org-other")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReportService_EnsureReport(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReportService(client.Client)
	ctx := context.Background()

	t.Run("creates the container on first sight", func(t *testing.T) {
		minted := uuid.New().String()

		ensured, err := service.EnsureReport(ctx, minted, testOrgID, testUserID)
		require.NoError(t, err)
		assert.Equal(t, minted, ensured.ID)
		assert.Equal(t, testOrgID, ensured.OrganizationID)
	})

	t.Run("reuses the existing container", func(t *testing.T) {
		minted := uuid.New().String()

		first, err := service.EnsureReport(ctx, minted, testOrgID, testUserID)
		require.NoError(t, err)

		second, err := service.EnsureReport(ctx, minted, testOrgID, "user-someone-else")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, testUserID, second.UserID)

		reports, total, err := service.ListReports(ctx, testOrgID, 100, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, reports, 2)
	})

	t.Run("requires a report ID", func(t *testing.T) {
		_, err := service.EnsureReport(ctx, "", testOrgID, testUserID)
		requireValidationError(t, err, "report_id")
	})
}

func TestReportService_SetTitle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReportService(client.Client)
	ctx := context.Background()

	created, err := service.CreateReport(ctx, models.CreateReportRequest{
		OrganizationID: testOrgID,
		UserID:         testUserID,
	})
	require.NoError(t, err)

	updated, err := service.SetTitle(ctx, created.ID, "Churn by signup cohort")
	require.NoError(t, err)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "Churn by signup cohort", *updated.Title)

	_, err = service.SetTitle(ctx, created.ID, "")
	requireValidationError(t, err, "title")

	_, err = service.SetTitle(ctx, uuid.New().String(), "Orphan title")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportService_ListReports(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReportService(client.Client)
	ctx := context.Background()

	var last *ent.Report
	for range 3 {
		created, err := service.CreateReport(ctx, models.CreateReportRequest{
			OrganizationID: testOrgID,
			UserID:         testUserID,
		})
		require.NoError(t, err)
		last = created
	}

	_, err := service.CreateReport(ctx, models.CreateReportRequest{
		OrganizationID: "org-other",
		UserID:         testUserID,
	})
	require.NoError(t, err)

	t.Run("newest first, scoped to the organization", func(t *testing.T) {
		reports, total, err := service.ListReports(ctx, testOrgID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, reports, 3)
		assert.Equal(t, last.ID, reports[0].ID)
	})

	t.Run("pagination slices without changing the total", func(t *testing.T) {
		reports, total, err := service.ListReports(ctx, testOrgID, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, reports, 1)
	})

	t.Run("requires an organization", func(t *testing.T) {
		_, _, err := service.ListReports(ctx, "", 10, 0)
		requireValidationError(t, err, "organization_id")
	})
}
