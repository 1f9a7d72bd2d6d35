package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/mcp"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

func widgetArgs() map[string]any {
	return map[string]any{
		"title":  "Revenue by month",
		"source": "warehouse",
		"query":  "select month, revenue from monthly_revenue",
		"data_model": map[string]any{
			"type": "bar",
			"columns": []any{
				map[string]any{"name": "month", "type": "date"},
				map[string]any{"name": "revenue", "type": "number"},
			},
			"series": []any{
				map[string]any{"x": "month", "y": "revenue"},
			},
		},
	}
}

func TestCreateWidget_FullProgression(t *testing.T) {
	src := textSource("month,revenue\n2026-01,12000")
	platform := &stubPlatform{}
	rtc := newRuntime(src, platform)

	result, events := runTool(t, CreateWidget{}, widgetArgs(), rtc)

	require.False(t, result.Failed())
	assert.Equal(t, []string{
		tools.StageDataModelTypeDetermined,
		tools.StageColumnAdded,
		tools.StageColumnAdded,
		tools.StageSeriesConfigured,
		tools.StageWidgetCreationNeeded,
	}, platform.stageList())

	var stages []string
	for _, ev := range events {
		require.Equal(t, tools.EventProgress, ev.Kind)
		stages = append(stages, ev.Stage)
	}
	assert.Len(t, stages, 5, "every stage reaches subscribers")

	assert.Equal(t, "widget-1", result.Output["widget_id"])
	assert.Equal(t, "step-1", result.Output["step_id"])
	assert.Equal(t, "query-1", result.Output["query_id"])
	assert.Equal(t, []string{"viz-1"}, result.Output["visualization_ids"])
	assert.Equal(t, []string{}, result.Output["errors"], "errors list present even when empty")
	assert.Contains(t, result.Output["widget_data"], "12000")

	assert.Equal(t, "step-1", result.Observation.StepID)
	assert.Equal(t, "widget-1", result.Observation.WidgetID)
	assert.Equal(t, []string{"viz-1"}, result.Observation.CreatedVisualizationIDs)
	assert.NotNil(t, result.Observation.Artifacts["data_model"], "planner sees the data model")

	assert.Equal(t, []bool{true}, platform.finalized)
}

func TestCreateWidget_RecoversTransientQueryFailure(t *testing.T) {
	src := &fakeSources{execute: func(call int, source, tool string, args map[string]any) (*mcp.Result, error) {
		if call == 1 {
			return &mcp.Result{Content: "canceling statement due to statement timeout", IsError: true}, nil
		}
		return &mcp.Result{Content: "month,revenue\n2026-01,12000"}, nil
	}}
	platform := &stubPlatform{}
	rtc := newRuntime(src, platform)

	result, _ := runTool(t, CreateWidget{}, widgetArgs(), rtc)

	require.False(t, result.Failed())
	errs, ok := result.Output["errors"].([]string)
	require.True(t, ok)
	require.Len(t, errs, 1, "the failed attempt is on record")
	assert.Contains(t, errs[0], "statement timeout")
	assert.Len(t, src.calls, 2)
}

func TestCreateWidget_BadQueryFails(t *testing.T) {
	src := errorSource(`column "revenu" does not exist`)
	platform := &stubPlatform{}
	rtc := newRuntime(src, platform)

	result, _ := runTool(t, CreateWidget{}, widgetArgs(), rtc)

	require.True(t, result.Failed())
	assert.Equal(t, models.ErrCodeExecution, result.Observation.Error.Code)
	assert.Contains(t, result.Observation.Error.Message, "revenu")
	assert.Len(t, src.calls, 1, "logic errors do not retry")

	// The failed run still reports the artifacts created before the query,
	// and usage bookkeeping ran with success=false.
	assert.Equal(t, "step-1", result.Observation.StepID)
	assert.Equal(t, []bool{false}, platform.finalized)
}

func TestCreateWidget_MissingDataModel(t *testing.T) {
	args := widgetArgs()
	delete(args, "data_model")

	result, _ := runTool(t, CreateWidget{}, args, newRuntime(textSource("x"), &stubPlatform{}))

	require.True(t, result.Failed())
	assert.Contains(t, result.Observation.Error.Message, "data_model")
}

func TestCreateData_StreamsBlockCompletion(t *testing.T) {
	src := textSource("region,total\nEMEA,8200\nAPAC,6100")
	platform := &stubPlatform{}
	rtc := newRuntime(src, platform)

	result, events := runTool(t, CreateData{}, map[string]any{
		"title":  "Regional totals",
		"source": "warehouse",
		"query":  "select region, total from regional_totals",
		"blocks": []any{
			map[string]any{"type": "table", "title": "Totals"},
			map[string]any{"type": "summary"},
		},
	}, rtc)

	require.False(t, result.Failed())
	// One handled stage creates the step, the block completions are
	// stream-only.
	assert.Equal(t, []string{tools.StageDataModelTypeDetermined}, platform.stageList())

	var blockEvents int
	for _, ev := range events {
		if ev.Stage == tools.StageBlockCompleted {
			blockEvents++
		}
	}
	assert.Equal(t, 2, blockEvents)
	assert.Equal(t, "step-1", result.Output["step_id"])
	assert.Contains(t, result.Observation.Summary, "2 data block(s)")
}

func TestCreateAndExecuteCode_StreamsStdout(t *testing.T) {
	src := textSource("loading rows\ntransforming\nwrote 120 rows")
	platform := &stubPlatform{}
	rtc := newRuntime(src, platform)

	result, events := runTool(t, CreateAndExecuteCode{}, map[string]any{
		"source": "warehouse",
		"code":   "df = load('orders')\nwrite(df.groupby('month').sum())",
	}, rtc)

	require.False(t, result.Failed())
	var stdout []string
	for _, ev := range events {
		if ev.Kind == tools.EventStdout {
			stdout = append(stdout, ev.Text)
		}
	}
	assert.Equal(t, []string{"loading rows", "transforming", "wrote 120 rows"}, stdout)
	assert.Equal(t, []string{"warehouse/execute_code"}, src.calls)
	assert.Equal(t, "step-1", result.Observation.StepID)
	assert.Contains(t, result.Observation.Summary, "code executed")
}

func TestCreateAndExecuteCode_ExecutionError(t *testing.T) {
	src := errorSource("Traceback (most recent call last):\nKeyError: 'month'")
	rtc := newRuntime(src, &stubPlatform{})

	result, events := runTool(t, CreateAndExecuteCode{}, map[string]any{
		"source": "warehouse",
		"code":   "df['month']",
	}, rtc)

	require.True(t, result.Failed())
	assert.Equal(t, models.ErrCodeExecution, result.Observation.Error.Code)
	assert.Contains(t, result.Observation.Error.Message, "KeyError")

	var sawTraceback bool
	for _, ev := range events {
		if ev.Kind == tools.EventStdout && ev.Text == "Traceback (most recent call last):" {
			sawTraceback = true
		}
	}
	assert.True(t, sawTraceback, "stderr-style output still streams before the failure")
}
