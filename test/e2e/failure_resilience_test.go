package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/completion"
)

// TestUnknownToolObservation lets the planner name a tool that does not
// exist. The miss becomes an observation and the loop keeps going.
func TestUnknownToolObservation(t *testing.T) {
	app := StartTestApp(t)
	app.Planner.AddDecision(researchDecision("summon_dragon", map[string]any{"name": "Edmund"}))
	app.Planner.AddDecision(answerDecision("No dragons here, but the numbers are fine."))

	completionID := app.SubmitCompletion(t, newReportID(), "Summon something")
	row := app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)
	assert.Contains(t, deref(row.Content), "numbers are fine")

	exec := app.singleExecution(t, completionID)
	require.Len(t, app.QueryDecisions(t, exec.ID), 2)

	// The unresolved tool never got a row; only answer_question ran.
	toolRows := app.QueryToolExecutions(t, exec.ID)
	require.Len(t, toolRows, 1)
	assert.Equal(t, "answer_question", toolRows[0].ToolName)
	assert.Equal(t, 2, app.Planner.PlanCallCount())
}

// TestArgumentValidationObservation sends schema-invalid arguments. The
// validation failure is observed without dispatching the tool.
func TestArgumentValidationObservation(t *testing.T) {
	app := StartTestApp(t)
	// create_widget requires source, query and data_model.
	app.Planner.AddDecision(actionDecision("create_widget", map[string]any{
		"query": "select 1",
	}))
	app.Planner.AddDecision(answerDecision("Could not build the widget from that."))

	completionID := app.SubmitCompletion(t, newReportID(), "Chart it")
	app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)

	exec := app.singleExecution(t, completionID)
	toolRows := app.QueryToolExecutions(t, exec.ID)
	require.Len(t, toolRows, 1, "the invalid call never became a tool execution")
	assert.Equal(t, "answer_question", toolRows[0].ToolName)

	frames := app.CollectStream(t, completionID, 0)
	assert.Empty(t, framesOfType(frames, "planner.retry"),
		"argument validation is an observation, not a planner fault")
}

// TestMissingActionRetry sends an action plan without an action, which is a
// planner fault and spends one retry.
func TestMissingActionRetry(t *testing.T) {
	app := StartTestApp(t)
	app.Planner.AddDecision(map[string]any{
		"plan_type":         "action",
		"analysis_complete": false,
		"reasoning_message": "Something should happen here.",
	})
	app.Planner.AddDecision(answerDecision("Recovered with a direct answer."))

	completionID := app.SubmitCompletion(t, newReportID(), "Do something")
	app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)
	assert.Equal(t, 2, app.Planner.PlanCallCount())

	frames := app.CollectStream(t, completionID, 0)
	retries := framesOfType(frames, "planner.retry")
	require.Len(t, retries, 1)
	data, _ := retries[0].Data["data"].(map[string]any)
	require.NotNil(t, data)
	assert.Equal(t, "missing_action", data["kind"])
}
