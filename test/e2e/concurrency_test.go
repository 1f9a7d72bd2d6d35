package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/completion"
)

// TestConcurrentCompletions runs two completions on separate reports through
// a two-worker pool and checks that their event streams stay isolated.
func TestConcurrentCompletions(t *testing.T) {
	app := StartTestApp(t, WithWorkerCount(2))
	app.Planner.AddDecision(answerDecision("First answer."))
	app.Planner.AddDecision(answerDecision("Second answer."))

	firstID := app.SubmitCompletion(t, newReportID(), "First question")
	secondID := app.SubmitCompletion(t, newReportID(), "Second question")

	app.WaitForCompletionStatus(t, firstID, completion.StatusCompleted)
	app.WaitForCompletionStatus(t, secondID, completion.StatusCompleted)

	// Each run produced exactly one execution with one sealed decision.
	for _, id := range []string{firstID, secondID} {
		exec := app.singleExecution(t, id)
		decisions := app.QueryDecisions(t, exec.ID)
		require.Len(t, decisions, 1)
		assert.Equal(t, 1, decisions[0].Seq)
		assert.True(t, decisions[0].AnalysisComplete)
	}

	// A completion's channel only ever carries its own frames.
	for _, id := range []string{firstID, secondID} {
		frames := app.CollectStream(t, id, 0)
		require.NotEmpty(t, frames)
		for _, f := range frames {
			assert.Equal(t, id, f.Data["completion_id"],
				"frame %q leaked across completion channels", f.Event)
		}
	}

	// Both answers were consumed, one per run.
	assert.Equal(t, 2, app.Planner.PlanCallCount())
}
