package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/pkg/models"
	testdb "github.com/quarryhq/quarry/test/database"
)

func TestCompletionService_CreateCompletion(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompletionService(client.Client)
	ctx := context.Background()

	t.Run("creates queued completion", func(t *testing.T) {
		report, err := NewReportService(client.Client).EnsureReport(ctx, uuid.New().String(), testOrgID, testUserID)
		require.NoError(t, err)

		created, err := service.CreateCompletion(ctx, models.CreateCompletionRequest{
			ReportID:       report.ID,
			OrganizationID: testOrgID,
			UserID:         testUserID,
			Prompt:         models.PromptSpec{Content: "top customers by spend", Mode: "analysis"},
		})
		require.NoError(t, err)
		assert.Equal(t, completion.StatusQueued, created.Status)
		assert.Equal(t, testOrgID, created.OrganizationID)
		assert.Equal(t, "top customers by spend", created.Prompt["content"])
		assert.Equal(t, "analysis", created.Prompt["mode"])
		assert.Nil(t, created.SigkillAt)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateCompletion(ctx, models.CreateCompletionRequest{
			OrganizationID: testOrgID,
			UserID:         testUserID,
			Prompt:         models.PromptSpec{Content: "x"},
		})
		requireValidationError(t, err, "report_id")

		_, err = service.CreateCompletion(ctx, models.CreateCompletionRequest{
			ReportID:       uuid.New().String(),
			OrganizationID: testOrgID,
			UserID:         testUserID,
		})
		requireValidationError(t, err, "prompt.content")
	})
}

func TestCompletionService_GetCompletion(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompletionService(client.Client)
	ctx := context.Background()

	created := newCompletionFixture(t, client.Client)

	t.Run("retrieves by ID", func(t *testing.T) {
		got, err := service.GetCompletion(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("unknown ID returns ErrNotFound", func(t *testing.T) {
		_, err := service.GetCompletion(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCompletionService_ListCompletions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompletionService(client.Client)
	ctx := context.Background()

	first := newCompletionFixture(t, client.Client)
	second := newCompletionFixture(t, client.Client)

	t.Run("filters by report", func(t *testing.T) {
		resp, err := service.ListCompletions(ctx, models.CompletionFilters{ReportID: first.ReportID})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, first.ID, resp.Completions[0].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		_, err := service.UpdateStatus(ctx, second.ID, string(completion.StatusInProgress), "")
		require.NoError(t, err)

		resp, err := service.ListCompletions(ctx, models.CompletionFilters{Status: string(completion.StatusInProgress)})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, second.ID, resp.Completions[0].ID)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := service.ListCompletions(ctx, models.CompletionFilters{Status: "sleeping"})
		requireValidationError(t, err, "status")
	})

	t.Run("applies pagination defaults", func(t *testing.T) {
		resp, err := service.ListCompletions(ctx, models.CompletionFilters{OrganizationID: testOrgID})
		require.NoError(t, err)
		assert.Equal(t, 20, resp.Limit)
		assert.Equal(t, 0, resp.Offset)
		assert.Equal(t, 2, resp.TotalCount)
	})
}

func TestCompletionService_UpdateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompletionService(client.Client)
	ctx := context.Background()

	t.Run("transitions queued to in_progress to completed", func(t *testing.T) {
		c := newCompletionFixture(t, client.Client)

		updated, err := service.UpdateStatus(ctx, c.ID, string(completion.StatusInProgress), "")
		require.NoError(t, err)
		assert.Equal(t, completion.StatusInProgress, updated.Status)

		updated, err = service.UpdateStatus(ctx, c.ID, string(completion.StatusCompleted), "")
		require.NoError(t, err)
		assert.Equal(t, completion.StatusCompleted, updated.Status)
	})

	t.Run("terminal status is write-once", func(t *testing.T) {
		c := newCompletionFixture(t, client.Client)
		_, err := service.UpdateStatus(ctx, c.ID, string(completion.StatusError), "planner unreachable")
		require.NoError(t, err)

		_, err = service.UpdateStatus(ctx, c.ID, string(completion.StatusCompleted), "")
		assert.ErrorIs(t, err, ErrAlreadyFinalized)

		got, err := service.GetCompletion(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, completion.StatusError, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "planner unreachable", *got.ErrorMessage)
	})

	t.Run("cannot transition back to queued", func(t *testing.T) {
		c := newCompletionFixture(t, client.Client)
		_, err := service.UpdateStatus(ctx, c.ID, string(completion.StatusQueued), "")
		requireValidationError(t, err, "status")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		c := newCompletionFixture(t, client.Client)
		_, err := service.UpdateStatus(ctx, c.ID, "paused", "")
		requireValidationError(t, err, "status")
	})
}

func TestCompletionService_UpdateContent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompletionService(client.Client)
	ctx := context.Background()

	c := newCompletionFixture(t, client.Client)

	t.Run("writes content and reasoning", func(t *testing.T) {
		updated, err := service.UpdateContent(ctx, c.ID, "Revenue grew 12%.", "Checked monthly totals.")
		require.NoError(t, err)
		require.NotNil(t, updated.Content)
		assert.Equal(t, "Revenue grew 12%.", *updated.Content)
	})

	t.Run("empty fields leave stored values alone", func(t *testing.T) {
		updated, err := service.UpdateContent(ctx, c.ID, "", "")
		require.NoError(t, err)
		require.NotNil(t, updated.Content)
		assert.Equal(t, "Revenue grew 12%.", *updated.Content)
		require.NotNil(t, updated.Reasoning)
		assert.Equal(t, "Checked monthly totals.", *updated.Reasoning)
	})
}

func TestCompletionService_RequestSigkill(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompletionService(client.Client)
	ctx := context.Background()

	t.Run("sets the flag once", func(t *testing.T) {
		c := newCompletionFixture(t, client.Client)

		updated, applied, err := service.RequestSigkill(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, applied)
		assert.NotNil(t, updated.SigkillAt)

		again, applied, err := service.RequestSigkill(ctx, c.ID)
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, updated.SigkillAt.Unix(), again.SigkillAt.Unix())
	})

	t.Run("finished completion is a no-op", func(t *testing.T) {
		c := newCompletionFixture(t, client.Client)
		_, err := service.UpdateStatus(ctx, c.ID, string(completion.StatusCompleted), "")
		require.NoError(t, err)

		got, applied, err := service.RequestSigkill(ctx, c.ID)
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Nil(t, got.SigkillAt)
	})

	t.Run("unknown ID returns ErrNotFound", func(t *testing.T) {
		_, _, err := service.RequestSigkill(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCompletionService_Counts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompletionService(client.Client)
	ctx := context.Background()

	c := newCompletionFixture(t, client.Client)

	count, err := service.CountForReport(ctx, c.ReportID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	queued, err := service.CountQueued(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, queued)

	_, err = service.UpdateStatus(ctx, c.ID, string(completion.StatusInProgress), "")
	require.NoError(t, err)

	queued, err = service.CountQueued(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, queued)
}
