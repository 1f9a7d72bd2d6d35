package agent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/quarryhq/quarry/pkg/masking"
	"github.com/quarryhq/quarry/pkg/models"
)

func newTestEmitter(sink *fakeSink, execs *fakeExecutions) *emitter {
	return newEmitter(sink, execs, masking.NewService(nil, nil), "comp-1", "exec-1",
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEmitter_PersistentFramesAllocateFreshSeqs(t *testing.T) {
	sink := &fakeSink{}
	execs := &fakeExecutions{}
	e := newTestEmitter(sink, execs)
	ctx := context.Background()

	e.decisionFinal(ctx, "dec-1", 0, &models.PlannerDecision{PlanType: models.PlanTypeResearch})
	e.plannerRetry(ctx, models.ErrCodeValidation, 1, 2, "bad json")
	e.completionFinished(ctx, "rep-1", "completed", "")

	require.Len(t, sink.decisionFinals, 1)
	assert.Equal(t, 1, sink.decisionFinals[0].Seq)
	require.Len(t, sink.plannerRetries, 1)
	assert.Equal(t, 2, sink.plannerRetries[0].Seq)
	require.Len(t, sink.completionFinisheds, 1)
	assert.Equal(t, 3, sink.completionFinisheds[0].Seq)

	assert.Equal(t, "comp-1", sink.decisionFinals[0].CompletionID)
	assert.Equal(t, "exec-1", sink.decisionFinals[0].AgentExecutionID)
	assert.NotEmpty(t, sink.decisionFinals[0].Timestamp)
}

func TestEmitter_TransientFramesAllocateFreshSeqs(t *testing.T) {
	sink := &fakeSink{}
	execs := &fakeExecutions{}
	e := newTestEmitter(sink, execs)
	ctx := context.Background()

	e.decisionPartial(ctx, "dec-1", 0, &models.PlannerDecision{ReasoningMessage: "thinking"})
	e.toolProgress(ctx, "tool-1", "executing", map[string]any{"attempt": 1})
	e.toolPartial(ctx, "tool-1", "select reg")
	e.toolStdout(ctx, "tool-1", "12 rows")

	require.Len(t, sink.decisionPartials, 1)
	assert.Equal(t, 1, sink.decisionPartials[0].Seq)
	require.Len(t, sink.toolProgress, 1)
	assert.Equal(t, 2, sink.toolProgress[0].Seq)
	require.Len(t, sink.toolPartials, 1)
	assert.Equal(t, 3, sink.toolPartials[0].Seq)
	require.Len(t, sink.toolStdouts, 1)
	assert.Equal(t, 4, sink.toolStdouts[0].Seq)

	assert.Equal(t, "dec-1", sink.decisionPartials[0].Data.PlanDecisionID)
	assert.Equal(t, "tool-1", sink.toolProgress[0].Data.ToolExecutionID)
}

func TestEmitter_SeqFallbackKeepsFramesOrdered(t *testing.T) {
	sink := &fakeSink{}
	execs := &fakeExecutions{seqErr: errors.New("seq backend down")}
	e := newTestEmitter(sink, execs)
	ctx := context.Background()

	e.decisionFinal(ctx, "dec-1", 0, &models.PlannerDecision{})
	e.decisionFinal(ctx, "dec-2", 1, &models.PlannerDecision{})

	require.Len(t, sink.decisionFinals, 2)
	assert.Equal(t, 1, sink.decisionFinals[0].Seq)
	assert.Equal(t, 2, sink.decisionFinals[1].Seq)
}

func TestEmitter_ToolStartedMasksCredentialArguments(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEmitter(sink, &fakeExecutions{})
	args := map[string]any{
		"query":       "select 1",
		"db_password": "hunter2",
	}
	row := &ent.ToolExecution{
		ID:            "tool-1",
		ToolName:      "execute_query",
		ToolAction:    strPtr("tool"),
		Arguments:     args,
		AttemptNumber: 1,
	}

	e.toolStarted(context.Background(), row, 3)

	require.Len(t, sink.toolStarteds, 1)
	data := sink.toolStarteds[0].Data
	assert.Equal(t, "tool-1", data.ToolExecutionID)
	assert.Equal(t, "tool", data.ToolAction)
	assert.Equal(t, 3, data.LoopIndex)
	assert.Equal(t, "select 1", data.Arguments["query"])
	assert.Equal(t, masking.MaskedValue, data.Arguments["db_password"])
	assert.Equal(t, "hunter2", args["db_password"], "the stored row keeps the raw value")
}

func TestEmitter_ToolFinishedFlattensRow(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEmitter(sink, &fakeExecutions{})
	ms := 340
	now := time.Now()
	row := &ent.ToolExecution{
		ID:                      "tool-1",
		ToolName:                "create_widget",
		Status:                  toolexecution.StatusSuccess,
		Success:                 true,
		ResultSummary:           strPtr("widget created"),
		ResultJSON:              map[string]any{"widget_data": map[string]any{"rows": 40}, "columns": []any{"region"}},
		CreatedWidgetID:         strPtr("w-1"),
		CreatedStepID:           strPtr("st-1"),
		CreatedVisualizationIds: []string{"viz-1", "viz-2"},
		DurationMs:              &ms,
		CompletedAt:             &now,
	}

	e.toolFinished(context.Background(), row, "q-1")

	require.Len(t, sink.toolFinisheds, 1)
	data := sink.toolFinisheds[0].Data
	assert.Equal(t, toolexecution.StatusSuccess, data.Status)
	assert.True(t, data.Success)
	assert.Equal(t, "widget created", data.ResultSummary)
	assert.Equal(t, 340, data.DurationMs)
	assert.Equal(t, "q-1", data.QueryID)
	assert.Equal(t, "w-1", data.CreatedWidgetID)
	assert.Equal(t, "st-1", data.CreatedStepID)
	assert.Equal(t, []string{"viz-1", "viz-2"}, data.CreatedVisualizationIDs)
	assert.NotContains(t, data.ResultJSON, "widget_data")
	assert.Contains(t, data.ResultJSON, "columns")
	assert.Contains(t, row.ResultJSON, "widget_data", "stripping works on a copy")
}

func TestEmitter_ToolFinishedHandlesBareRow(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEmitter(sink, &fakeExecutions{})
	row := &ent.ToolExecution{
		ID:       "tool-1",
		ToolName: "execute_query",
		Status:   toolexecution.StatusError,
	}

	e.toolFinished(context.Background(), row, "")

	require.Len(t, sink.toolFinisheds, 1)
	data := sink.toolFinisheds[0].Data
	assert.Empty(t, data.ResultSummary)
	assert.Empty(t, data.ErrorMessage)
	assert.Zero(t, data.DurationMs)
	assert.Nil(t, data.ResultJSON)
}

func TestEmitter_DecisionDataCarriesActionAndMetrics(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEmitter(sink, &fakeExecutions{})
	dec := &models.PlannerDecision{
		PlanType:         models.PlanTypeAction,
		ReasoningMessage: "build the widget",
		AssistantMessage: "Building a widget now",
		Action: &models.PlanAction{
			Name:      "create_widget",
			Arguments: map[string]any{"title": "Revenue"},
		},
		Metrics: &models.DecisionMetrics{
			InputTokens:  1200,
			OutputTokens: 80,
			TotalTokens:  1280,
			LatencyMs:    950,
		},
	}

	e.decisionFinal(context.Background(), "dec-3", 2, dec)

	require.Len(t, sink.decisionFinals, 1)
	data := sink.decisionFinals[0].Data
	assert.Equal(t, "dec-3", data.PlanDecisionID)
	assert.Equal(t, 2, data.LoopIndex)
	assert.Equal(t, plandecision.PlanTypeAction, data.PlanType)
	assert.Equal(t, "create_widget", data.ActionName)
	assert.Equal(t, map[string]any{"title": "Revenue"}, data.ActionArgs)
	assert.Equal(t, 1200, data.Metrics["input_tokens"])
	assert.Equal(t, int64(950), data.Metrics["latency_ms"])
}

func TestStripWidgetData(t *testing.T) {
	assert.Nil(t, stripWidgetData(nil))

	plain := map[string]any{"columns": []any{"a"}}
	assert.Equal(t, plain, stripWidgetData(plain))

	full := map[string]any{"widget_data": "bulk", "summary": "ok"}
	stripped := stripWidgetData(full)
	assert.Equal(t, map[string]any{"summary": "ok"}, stripped)
	assert.Contains(t, full, "widget_data")
}
