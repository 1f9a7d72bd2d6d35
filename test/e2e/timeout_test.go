package e2e

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/quarryhq/quarry/pkg/tools"
)

// fastTimeouts keeps the silent-tool tests quick.
func fastTimeouts() tools.TimeoutPolicy {
	return tools.TimeoutPolicy{
		Start: 300 * time.Millisecond,
		Idle:  500 * time.Millisecond,
		Hard:  2 * time.Second,
	}
}

// TestToolStartTimeout runs a tool that never emits anything. The runner's
// start timer fails the attempt and the loop observes the timeout.
func TestToolStartTimeout(t *testing.T) {
	app := StartTestApp(t,
		WithExtraTools(silentTool{}),
		WithToolTimeouts(fastTimeouts()))
	app.Planner.AddDecision(researchDecision("slow_probe", map[string]any{}))
	app.Planner.AddDecision(answerDecision("The probe is unreachable."))

	completionID := app.SubmitCompletion(t, newReportID(), "Probe the source")
	row := app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)
	assert.Contains(t, deref(row.Content), "The probe is unreachable.")

	exec := app.singleExecution(t, completionID)
	toolRows := app.QueryToolExecutions(t, exec.ID)
	require.Len(t, toolRows, 2, "the failed probe and the answer")
	probe := toolRows[0]
	assert.Equal(t, "slow_probe", probe.ToolName)
	assert.Equal(t, toolexecution.StatusError, probe.Status)
	assert.Contains(t, deref(probe.ErrorMessage), "no tool event within")
}

// TestIdempotentRetryOnTimeout gives the silent tool one retry; the second
// attempt responds and the row ends successful.
func TestIdempotentRetryOnTimeout(t *testing.T) {
	var calls atomic.Int32
	app := StartTestApp(t,
		WithExtraTools(silentTool{maxRetries: 1, calls: &calls, failFirst: true}),
		WithToolTimeouts(fastTimeouts()))
	app.Planner.AddDecision(researchDecision("slow_probe", map[string]any{}))
	app.Planner.AddDecision(answerDecision("The probe answered on the retry."))

	completionID := app.SubmitCompletion(t, newReportID(), "Probe the source")
	app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)

	exec := app.singleExecution(t, completionID)
	toolRows := app.QueryToolExecutions(t, exec.ID)
	require.Len(t, toolRows, 2)
	probe := toolRows[0]
	assert.Equal(t, "slow_probe", probe.ToolName)
	assert.Equal(t, toolexecution.StatusSuccess, probe.Status)
	assert.True(t, probe.Success)
	assert.Equal(t, int32(2), calls.Load(), "the tool ran twice")
}
