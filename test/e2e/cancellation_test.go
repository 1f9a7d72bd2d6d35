package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/toolexecution"
)

// TestSigkillMidTool cancels a run while a tool holds its stream open. The
// run must land in stopped with the tool row closed as cancelled.
func TestSigkillMidTool(t *testing.T) {
	started := make(chan struct{}, 1)
	app := StartTestApp(t, WithExtraTools(blockingTool{started: started}))
	app.Planner.AddDecision(researchDecision("long_export", map[string]any{}))

	completionID := app.SubmitCompletion(t, newReportID(), "Export everything")

	select {
	case <-started:
	case <-time.After(waitTimeout):
		t.Fatal("tool never started")
	}

	msg := app.CancelCompletion(t, completionID)
	assert.Equal(t, "cancellation requested", msg)

	row := app.WaitForCompletionStatus(t, completionID, completion.StatusStopped)
	require.NotNil(t, row.SigkillAt)

	exec := app.singleExecution(t, completionID)
	assert.Equal(t, agentexecution.StatusSigkill, exec.Status)

	toolRows := app.QueryToolExecutions(t, exec.ID)
	require.Len(t, toolRows, 1)
	assert.Equal(t, toolexecution.StatusError, toolRows[0].Status)
	assert.Equal(t, "cancelled", deref(toolRows[0].ErrorMessage))

	frames := app.CollectStream(t, completionID, 0)
	terminal := framesOfType(frames, "completion.finished")
	require.Len(t, terminal, 1)
	assert.Equal(t, "stopped", completionStatusString(terminal[0]))
}

// TestSigkillMidPlanning cancels a run while the planner stream is open,
// before any decision text arrives.
func TestSigkillMidPlanning(t *testing.T) {
	app := StartTestApp(t)
	planning := make(chan struct{}, 1)
	app.Planner.AddPlan(PlanEntry{BlockUntilCancelled: true, OnBlock: planning})

	completionID := app.SubmitCompletion(t, newReportID(), "Think for a while")

	select {
	case <-planning:
	case <-time.After(waitTimeout):
		t.Fatal("planner never entered the blocked stream")
	}

	app.CancelCompletion(t, completionID)
	app.WaitForCompletionStatus(t, completionID, completion.StatusStopped)

	exec := app.singleExecution(t, completionID)
	assert.Equal(t, agentexecution.StatusSigkill, exec.Status)

	// Only the pinned skeleton row exists; the stream never finalized it.
	decisions := app.QueryDecisions(t, exec.ID)
	require.Len(t, decisions, 1)
	assert.False(t, decisions[0].AnalysisComplete)
	assert.Empty(t, app.QueryToolExecutions(t, exec.ID))
}

// TestSigkillBeforeStart stamps sigkill_at on a queued completion before any
// worker claims it. The claim bridge must stop the run without touching the
// planner.
func TestSigkillBeforeStart(t *testing.T) {
	app := StartTestApp(t)

	row := app.CreateQueuedCompletion(t, newReportID(), true)
	final := app.WaitForCompletionStatus(t, row.ID, completion.StatusStopped)
	assert.Equal(t, completion.StatusStopped, final.Status)

	assert.Equal(t, 0, app.Planner.PlanCallCount(), "a pre-killed run never plans")
	for _, exec := range app.QueryExecutions(t, row.ID) {
		assert.Empty(t, app.QueryDecisions(t, exec.ID))
	}
}

// TestCancelTerminalNoOp cancels an already-finished completion; the request
// is acknowledged but changes nothing.
func TestCancelTerminalNoOp(t *testing.T) {
	app := StartTestApp(t)
	app.Planner.AddDecision(answerDecision("Done already."))

	completionID := app.SubmitCompletion(t, newReportID(), "Quick one")
	app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)

	msg := app.CancelCompletion(t, completionID)
	assert.Equal(t, "cancellation already requested or completion is finished", msg)

	row := app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)
	assert.Equal(t, completion.StatusCompleted, row.Status)
	assert.Nil(t, row.SigkillAt)
}
