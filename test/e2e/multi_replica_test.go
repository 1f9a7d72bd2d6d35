package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/completion"
	testdb "github.com/quarryhq/quarry/test/database"
)

// TestMultiReplicaClaiming points two pods at one schema and checks that
// every queued completion is claimed exactly once.
func TestMultiReplicaClaiming(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	scripted := NewScriptedPlanner()
	for i := 0; i < 3; i++ {
		scripted.AddDecision(answerDecision("Answered."))
	}

	podA := StartTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("pod-a"),
		WithPlanner(scripted))
	podB := StartTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("pod-b"),
		WithPlanner(scripted))

	ids := []string{
		podA.SubmitCompletion(t, newReportID(), "Question one"),
		podB.SubmitCompletion(t, newReportID(), "Question two"),
		podA.SubmitCompletion(t, newReportID(), "Question three"),
	}

	claimants := map[string]bool{}
	for _, id := range ids {
		row := podA.WaitForCompletionStatus(t, id, completion.StatusCompleted)
		claimedBy := deref(row.ClaimedBy)
		assert.Contains(t, []string{"pod-a", "pod-b"}, claimedBy)
		claimants[claimedBy] = true
	}
	require.NotEmpty(t, claimants)
	assert.Equal(t, 3, scripted.PlanCallCount(), "each completion planned exactly once")
}

// TestCrossPodCancellation cancels through one pod a run that another pod
// owns; the broadcast must reach the owner and stop the run.
func TestCrossPodCancellation(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	scripted := NewScriptedPlanner()
	scripted.AddDecision(researchDecision("long_export", map[string]any{}))

	started := make(chan struct{}, 2)
	podA := StartTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("pod-a"),
		WithPlanner(scripted),
		WithExtraTools(blockingTool{started: started}))
	podB := StartTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("pod-b"),
		WithPlanner(scripted),
		WithExtraTools(blockingTool{started: started}))

	completionID := podA.SubmitCompletion(t, newReportID(), "Export everything")

	select {
	case <-started:
	case <-time.After(waitTimeout):
		t.Fatal("tool never started on either pod")
	}

	// Issue the cancel through the pod that does NOT own the run.
	row, err := podA.EntClient.Completion.Get(context.Background(), completionID)
	require.NoError(t, err)
	require.NotNil(t, row.ClaimedBy)
	canceller := podA
	if *row.ClaimedBy == "pod-a" {
		canceller = podB
	}
	msg := canceller.CancelCompletion(t, completionID)
	assert.Equal(t, "cancellation requested", msg)

	final := podA.WaitForCompletionStatus(t, completionID, completion.StatusStopped)
	assert.Equal(t, completion.StatusStopped, final.Status)
}
