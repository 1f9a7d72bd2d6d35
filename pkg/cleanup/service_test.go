package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/contextsnapshot"
	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/services"
	testdb "github.com/quarryhq/quarry/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		EventTTL:              1 * time.Hour,
		SnapshotRetentionDays: 30,
		CleanupInterval:       1 * time.Hour,
	}
}

func newExecution(t *testing.T, client *ent.Client) *ent.AgentExecution {
	t.Helper()
	ctx := context.Background()

	report, err := services.NewReportService(client).EnsureReport(ctx, uuid.New().String(), "org-test", "user-test")
	require.NoError(t, err)

	comp, err := services.NewCompletionService(client).CreateCompletion(ctx, models.CreateCompletionRequest{
		ReportID:       report.ID,
		OrganizationID: "org-test",
		UserID:         "user-test",
		Prompt:         models.PromptSpec{Content: "show me revenue"},
	})
	require.NoError(t, err)

	exec, err := services.NewExecutionService(client).CreateAgentExecution(ctx, models.CreateAgentExecutionRequest{
		CompletionID:   comp.ID,
		ReportID:       report.ID,
		OrganizationID: "org-test",
		UserID:         "user-test",
	})
	require.NoError(t, err)
	return exec
}

func TestService_CleansUpExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	snapshotService := services.NewSnapshotService(client.Client)
	ctx := context.Background()

	completionID := uuid.New().String()

	// An event past the TTL (2 hours ago)
	_, err := client.Event.Create().
		SetChannel("completion:" + completionID).
		SetCompletionID(completionID).
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// A recent event
	_, err = client.Event.Create().
		SetChannel("completion:" + completionID).
		SetCompletionID(completionID).
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), eventService, snapshotService)
	svc.runAll(ctx)

	events, err := eventService.GetEventsSince(ctx, "completion:"+completionID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "expired event should be deleted, recent event preserved")
}

func TestService_CleansUpOldSnapshots(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	snapshotService := services.NewSnapshotService(client.Client)
	ctx := context.Background()

	exec := newExecution(t, client.Client)

	// A snapshot past the retention window (40 days ago)
	_, err := client.ContextSnapshot.Create().
		SetID(uuid.New().String()).
		SetAgentExecutionID(exec.ID).
		SetKind(contextsnapshot.KindInitial).
		SetContextView(map[string]any{}).
		SetCreatedAt(time.Now().AddDate(0, 0, -40)).
		Save(ctx)
	require.NoError(t, err)

	// A recent snapshot
	fresh, err := snapshotService.SaveContextSnapshot(ctx, models.SaveContextSnapshotRequest{
		AgentExecutionID: exec.ID,
		Kind:             "final",
		ContextView:      map[string]any{},
	})
	require.NoError(t, err)

	svc := NewService(retentionConfig(), eventService, snapshotService)
	svc.runAll(ctx)

	snapshots, err := snapshotService.ListSnapshots(ctx, exec.ID)
	require.NoError(t, err)
	require.Len(t, snapshots, 1, "old snapshot should be deleted, recent snapshot preserved")
	assert.Equal(t, fresh.ID, snapshots[0].ID)
}

func TestService_StartAndStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(retentionConfig(),
		services.NewEventService(client.Client),
		services.NewSnapshotService(client.Client))

	svc.Start(context.Background())
	svc.Stop()

	// Stop on a never-started service is a no-op
	NewService(retentionConfig(), nil, nil).Stop()
}
