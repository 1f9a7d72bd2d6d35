package e2e

import (
	"context"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/instruction"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/quarryhq/quarry/pkg/config"
)

// quietAgentConfig returns the default loop bounds with the background judge
// passes disabled.
func quietAgentConfig() *config.AgentConfig {
	cfg := config.DefaultAgentConfig()
	cfg.ScoringEnabled = config.BoolPtr(false)
	cfg.SuggestionsEnabled = config.BoolPtr(false)
	return cfg
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TestDirectAnswerFlow drives the smallest possible run: one decision that
// routes the text through answer_question, which closes the analysis from
// its observation.
func TestDirectAnswerFlow(t *testing.T) {
	app := StartTestApp(t)
	app.Planner.AddDecision(answerDecision("Revenue grew 12% month over month."))

	reportID := newReportID()
	completionID := app.SubmitCompletion(t, reportID, "How did revenue develop last month?")

	row := app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)
	assert.Contains(t, deref(row.Content), "Revenue grew 12%")

	exec := app.singleExecution(t, completionID)
	assert.Equal(t, agentexecution.StatusSuccess, exec.Status)

	// The breaker seal rewrites the decision with the tool's final answer.
	decisions := app.QueryDecisions(t, exec.ID)
	require.Len(t, decisions, 1)
	assert.True(t, decisions[0].AnalysisComplete)
	assert.Equal(t, "Revenue grew 12% month over month.", deref(decisions[0].FinalAnswer))

	toolRows := app.QueryToolExecutions(t, exec.ID)
	require.Len(t, toolRows, 1)
	assert.Equal(t, "answer_question", toolRows[0].ToolName)
	assert.Equal(t, toolexecution.StatusSuccess, toolRows[0].Status)
	assert.True(t, toolRows[0].Success)

	// Decision block at seq 1, tool block at seq 2.
	blocks := app.QueryBlocks(t, completionID)
	require.Len(t, blocks, 2)
	assert.Equal(t, 10, blocks[0].BlockIndex)
	assert.Equal(t, completionblock.SourceTypeDecision, blocks[0].SourceType)
	assert.Equal(t, 20, blocks[1].BlockIndex)
	assert.Equal(t, completionblock.SourceTypeTool, blocks[1].SourceType)

	frames := app.CollectStream(t, completionID, 0)
	requireEventOrder(t, frames,
		"completion.started", "decision.final", "tool.started", "tool.finished", "completion.finished")
	requireIncreasingEventIDs(t, frames)
	requireIncreasingSeqs(t, frames)
	terminal := framesOfType(frames, "completion.finished")
	require.Len(t, terminal, 1)
	assert.Equal(t, "completed", completionStatusString(terminal[0]))

	// First completion on a report earns a synthesized title.
	report, err := app.EntClient.Report.Get(context.Background(), reportID)
	require.NoError(t, err)
	assert.Equal(t, "Test Report", deref(report.Title))
	assert.Equal(t, 1, app.Planner.CompleteCallsMatching("name analytics reports"))

	// A second completion on the same report leaves the title alone.
	app.Planner.AddDecision(answerDecision("It grew again."))
	secondID := app.SubmitCompletion(t, reportID, "And the month before?")
	app.WaitForCompletionStatus(t, secondID, completion.StatusCompleted)
	assert.Equal(t, 1, app.Planner.CompleteCallsMatching("name analytics reports"),
		"title synthesis only runs for a report's first completion")
}

// TestWidgetFlow runs the create_widget stage progression against an
// in-memory warehouse and checks the artifact trail.
func TestWidgetFlow(t *testing.T) {
	app := StartTestApp(t, WithMCPServers(map[string]map[string]mcpsdk.ToolHandler{
		"warehouse": WarehouseServer(`[{"day":"2026-08-01","amount":120}]`),
	}))

	app.Planner.AddDecision(actionDecision("create_widget", map[string]any{
		"title":  "Orders by day",
		"source": "warehouse",
		"query":  "select day, sum(amount) as amount from orders group by 1",
		"data_model": map[string]any{
			"type":    "bar",
			"columns": []any{map[string]any{"name": "day"}, map[string]any{"name": "amount"}},
			"series":  []any{map[string]any{"column": "amount"}},
		},
	}))
	app.Planner.AddDecision(closingDecision("Created an orders-by-day widget."))

	reportID := newReportID()
	completionID := app.SubmitCompletion(t, reportID, "Chart orders by day")
	app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)

	exec := app.singleExecution(t, completionID)
	toolRows := app.QueryToolExecutions(t, exec.ID)
	require.Len(t, toolRows, 1)
	widget := toolRows[0]
	assert.Equal(t, "create_widget", widget.ToolName)
	assert.True(t, widget.Success)
	assert.NotEmpty(t, deref(widget.CreatedWidgetID))
	assert.NotEmpty(t, deref(widget.CreatedStepID))
	assert.NotEmpty(t, widget.CreatedVisualizationIds)

	frames := app.CollectStream(t, completionID, 0)
	assert.Len(t, framesOfType(frames, "query.created"), 1)
	assert.Len(t, framesOfType(frames, "visualization.created"), 1)
	assert.Len(t, framesOfType(frames, "visualization.updated"), 1)
	requireEventOrder(t, frames,
		"query.created", "visualization.created", "visualization.updated", "tool.finished")
}

// TestPlannerRetryRecovery feeds one malformed planner response and checks
// that the loop spends one retry and then finishes normally.
func TestPlannerRetryRecovery(t *testing.T) {
	app := StartTestApp(t)
	app.Planner.AddPlan(PlanEntry{Text: "this is not a decision"})
	app.Planner.AddDecision(answerDecision("Recovered after a retry."))

	completionID := app.SubmitCompletion(t, newReportID(), "Summarize the funnel")
	row := app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)
	assert.Contains(t, deref(row.Content), "Recovered after a retry.")
	assert.Equal(t, 2, app.Planner.PlanCallCount())

	frames := app.CollectStream(t, completionID, 0)
	retries := framesOfType(frames, "planner.retry")
	require.Len(t, retries, 1)
	data, _ := retries[0].Data["data"].(map[string]any)
	require.NotNil(t, data)
	assert.Equal(t, "validation_error", data["kind"])
	assert.Equal(t, float64(1), data["attempt"])
	assert.Equal(t, float64(2), data["max_attempts"])
}

// TestPlannerRetryBudgetExhausted burns the whole retry budget on malformed
// responses. The run still ends as completed, with no answer.
func TestPlannerRetryBudgetExhausted(t *testing.T) {
	app := StartTestApp(t)
	for i := 0; i < 3; i++ {
		app.Planner.AddPlan(PlanEntry{Text: "garbage"})
	}

	completionID := app.SubmitCompletion(t, newReportID(), "Summarize the funnel")
	app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)

	exec := app.singleExecution(t, completionID)
	assert.Equal(t, agentexecution.StatusSuccess, exec.Status)
	assert.Equal(t, 3, app.Planner.PlanCallCount())

	frames := app.CollectStream(t, completionID, 0)
	assert.Len(t, framesOfType(frames, "planner.retry"), 2,
		"the third fault exhausts the budget without another retry event")
	assert.Empty(t, app.QueryToolExecutions(t, exec.ID))
}

// TestToolFailureBreaker lets the same tool fail three times in a row and
// checks the synthesized closure.
func TestToolFailureBreaker(t *testing.T) {
	app := StartTestApp(t, WithExtraTools(brokenTool{}))
	for i := 0; i < 3; i++ {
		app.Planner.AddDecision(researchDecision("broken_query", map[string]any{"attempt": i + 1}))
	}

	completionID := app.SubmitCompletion(t, newReportID(), "Query the broken table")
	row := app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)
	assert.Contains(t, deref(row.Content), "failed 3 times in a row")
	assert.Contains(t, deref(row.Content), "relation does not exist")

	exec := app.singleExecution(t, completionID)
	toolRows := app.QueryToolExecutions(t, exec.ID)
	require.Len(t, toolRows, 3)
	for _, tr := range toolRows {
		assert.Equal(t, toolexecution.StatusError, tr.Status)
		assert.False(t, tr.Success)
	}

	decisions := app.QueryDecisions(t, exec.ID)
	require.Len(t, decisions, 3)
	last := decisions[len(decisions)-1]
	assert.True(t, last.AnalysisComplete, "the breaker seals the last decision")
	assert.Contains(t, deref(last.FinalAnswer), "failed 3 times in a row")
}

// TestRepetitionBreaker repeats one successful step with identical arguments
// until the loop declares the goal achieved.
func TestRepetitionBreaker(t *testing.T) {
	app := StartTestApp(t, WithExtraTools(echoTool{}))
	for i := 0; i < 2; i++ {
		app.Planner.AddDecision(researchDecision("echo", map[string]any{"message": "same thing"}))
	}

	completionID := app.SubmitCompletion(t, newReportID(), "Do the thing")
	row := app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)
	assert.Contains(t, deref(row.Content), "repeated the same successful")

	exec := app.singleExecution(t, completionID)
	toolRows := app.QueryToolExecutions(t, exec.ID)
	require.Len(t, toolRows, 2)
	for _, tr := range toolRows {
		assert.True(t, tr.Success)
	}
	assert.Equal(t, 2, app.Planner.PlanCallCount())
}

// TestStepLimitTermination caps the loop at three iterations and varies the
// arguments so no breaker fires first.
func TestStepLimitTermination(t *testing.T) {
	agentCfg := quietAgentConfig()
	agentCfg.StepLimit = 3
	agentCfg.MaxRepeatedSuccesses = 5

	app := StartTestApp(t, WithExtraTools(echoTool{}), WithAgentConfig(agentCfg))
	for i := 0; i < 3; i++ {
		app.Planner.AddDecision(researchDecision("echo", map[string]any{"step": i + 1}))
	}

	completionID := app.SubmitCompletion(t, newReportID(), "Keep going")
	app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)

	exec := app.singleExecution(t, completionID)
	assert.Equal(t, agentexecution.StatusSuccess, exec.Status)
	assert.Len(t, app.QueryDecisions(t, exec.ID), 3)
	assert.Len(t, app.QueryToolExecutions(t, exec.ID), 3)
	assert.Equal(t, 3, app.Planner.PlanCallCount(), "the loop stops at the step limit")
}

// TestSuggestionTrigger recovers a widget build from a transient data-source
// error, which makes the run propose a durable instruction draft.
func TestSuggestionTrigger(t *testing.T) {
	agentCfg := quietAgentConfig()
	agentCfg.SuggestionsEnabled = config.BoolPtr(true)

	app := StartTestApp(t,
		WithAgentConfig(agentCfg),
		WithMCPServers(map[string]map[string]mcpsdk.ToolHandler{
			"warehouse": {
				"execute": FailThenSucceedHandler(1,
					"warehouse temporarily unavailable, try again",
					`[{"day":"2026-08-01","amount":120}]`),
				"list_tables": StaticToolHandler(`[{"name":"orders","columns":[{"name":"id","type":"int"}]}]`),
			},
		}))
	app.Planner.SetSuggestReply(`[{"text":"Always use the orders fact table for revenue questions."}]`)

	app.Planner.AddDecision(actionDecision("create_widget", map[string]any{
		"source": "warehouse",
		"query":  "select day, sum(amount) from orders group by 1",
		"data_model": map[string]any{
			"type":    "line",
			"columns": []any{map[string]any{"name": "day"}},
			"series":  []any{map[string]any{"column": "amount"}},
		},
	}))
	app.Planner.AddDecision(closingDecision("Built the chart after one retry."))

	completionID := app.SubmitCompletion(t, newReportID(), "Chart revenue by day")
	app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)

	exec := app.singleExecution(t, completionID)
	toolRows := app.QueryToolExecutions(t, exec.ID)
	require.Len(t, toolRows, 1)
	assert.True(t, toolRows[0].Success)
	errs, _ := toolRows[0].ResultJSON["errors"].([]interface{})
	assert.NotEmpty(t, errs, "the recovered attempt leaves its error in the output")

	drafts := app.QuerySuggestedDrafts(t, "default")
	require.Len(t, drafts, 1)
	assert.Contains(t, drafts[0].Text, "orders fact table")
	assert.Equal(t, exec.ID, deref(drafts[0].AgentExecutionID))
	assert.Equal(t, instruction.StatusDraft, drafts[0].Status)

	frames := app.CollectStream(t, completionID, 0)
	requireEventOrder(t, frames,
		"instructions.suggest.started", "instructions.suggest.finished", "completion.finished")
}
