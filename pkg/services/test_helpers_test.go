package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/pkg/models"
)

const (
	testOrgID  = "org-test"
	testUserID = "user-test"
)

// newCompletionFixture creates the report and queued completion most service
// tests hang off.
func newCompletionFixture(t *testing.T, client *ent.Client) *ent.Completion {
	t.Helper()
	ctx := context.Background()

	reportID := uuid.New().String()
	_, err := NewReportService(client).EnsureReport(ctx, reportID, testOrgID, testUserID)
	require.NoError(t, err)

	c, err := NewCompletionService(client).CreateCompletion(ctx, models.CreateCompletionRequest{
		ReportID:       reportID,
		OrganizationID: testOrgID,
		UserID:         testUserID,
		Prompt:         models.PromptSpec{Content: "show me revenue by month"},
	})
	require.NoError(t, err)
	return c
}

// newExecutionFixture creates a full report → completion → execution chain.
func newExecutionFixture(t *testing.T, client *ent.Client) *ent.AgentExecution {
	t.Helper()
	c := newCompletionFixture(t, client)

	exec, err := NewExecutionService(client).CreateAgentExecution(context.Background(), models.CreateAgentExecutionRequest{
		CompletionID:   c.ID,
		ReportID:       c.ReportID,
		OrganizationID: testOrgID,
		UserID:         testUserID,
	})
	require.NoError(t, err)
	return exec
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, field, vErr.Field)
}
