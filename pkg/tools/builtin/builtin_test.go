package builtin

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/mcp"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

// fakeSources scripts the data-source gateway. Query routes through Execute
// with the gateway's execute tool, matching the real implementation.
type fakeSources struct {
	mu      sync.Mutex
	calls   []string
	execute func(call int, source, tool string, args map[string]any) (*mcp.Result, error)
}

func (f *fakeSources) Execute(ctx context.Context, source, tool string, args map[string]any) (*mcp.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, source+"/"+tool)
	call := len(f.calls)
	f.mu.Unlock()
	return f.execute(call, source, tool, args)
}

func (f *fakeSources) Query(ctx context.Context, source, query string) (*mcp.Result, error) {
	return f.Execute(ctx, source, mcp.ExecuteTool, map[string]any{"query": query})
}

func (f *fakeSources) Sources() []string { return []string{"warehouse"} }

func textSource(content string) *fakeSources {
	return &fakeSources{execute: func(int, string, string, map[string]any) (*mcp.Result, error) {
		return &mcp.Result{Content: content}, nil
	}}
}

func errorSource(content string) *fakeSources {
	return &fakeSources{execute: func(int, string, string, map[string]any) (*mcp.Result, error) {
		return &mcp.Result{Content: content, IsError: true}, nil
	}}
}

// stubPlatform mints predictable ids for stage handlers.
type stubPlatform struct {
	mu        sync.Mutex
	stages    []string
	finalized []bool
}

func (p *stubPlatform) note(stage string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stages = append(p.stages, stage)
}

func (p *stubPlatform) CreateDataModel(ctx context.Context, scope tools.Scope, state *tools.ArtifactState, detail map[string]any) error {
	p.note(tools.StageDataModelTypeDetermined)
	state.QueryID = "query-1"
	state.StepID = "step-1"
	return nil
}

func (p *stubPlatform) AddColumn(ctx context.Context, scope tools.Scope, state *tools.ArtifactState, detail map[string]any) error {
	p.note(tools.StageColumnAdded)
	return nil
}

func (p *stubPlatform) ConfigureSeries(ctx context.Context, scope tools.Scope, state *tools.ArtifactState, detail map[string]any) error {
	p.note(tools.StageSeriesConfigured)
	if state.VisualizationID == "" {
		state.VisualizationID = "viz-1"
		state.CreatedVisualizationIDs = append(state.CreatedVisualizationIDs, "viz-1")
	}
	return nil
}

func (p *stubPlatform) PrepareWidget(ctx context.Context, scope tools.Scope, state *tools.ArtifactState, detail map[string]any) error {
	p.note(tools.StageWidgetCreationNeeded)
	state.WidgetID = "widget-1"
	return nil
}

func (p *stubPlatform) FinalizeArtifacts(ctx context.Context, scope tools.Scope, state *tools.ArtifactState, success bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finalized = append(p.finalized, success)
	return nil
}

func (p *stubPlatform) stageList() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.stages...)
}

// runTool executes one builtin through the full runtime so tests cover the
// registry gating, stage dispatch, and id stamping together.
func runTool(t *testing.T, tool tools.Tool, args map[string]any, rtc *tools.RuntimeContext) (*tools.RunResult, []tools.Event) {
	t.Helper()
	registry := tools.NewRegistry(nil)
	require.NoError(t, registry.Register(tool))

	runner := tools.NewRunner(registry, tools.NewStageDispatcher(rtc.Platform, nil),
		tools.TimeoutPolicy{Start: 5 * time.Second, Idle: 5 * time.Second, Hard: 30 * time.Second},
		tools.RetryPolicy{Backoff: time.Millisecond, Multiplier: 1, Jitter: time.Millisecond},
		nil)

	var mu sync.Mutex
	var events []tools.Event
	result, err := runner.Run(context.Background(), tool.Metadata().Name, args, rtc, func(ev tools.Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	})
	require.NoError(t, err)
	return result, events
}

func newRuntime(sources tools.DataSources, platform tools.Platform) *tools.RuntimeContext {
	return &tools.RuntimeContext{
		Scope: tools.Scope{
			OrganizationID:   "org-1",
			ReportID:         "report-1",
			AgentExecutionID: "exec-1",
			ToolExecutionID:  "te-1",
		},
		Sources:   sources,
		Platform:  platform,
		Artifacts: &tools.ArtifactState{},
	}
}

func TestRegisterAddsAllBuiltins(t *testing.T) {
	registry := tools.NewRegistry(nil)
	require.NoError(t, Register(registry))

	assert.Equal(t, []string{
		"answer_question",
		"clarify",
		"create_and_execute_code",
		"create_data",
		"create_widget",
		"describe_table",
		"execute_query",
	}, registry.Names())

	// Research planners must not see action-only tools.
	for _, d := range registry.CatalogForPlanType(models.PlanTypeResearch) {
		assert.NotContains(t, []string{"create_widget", "create_data", "create_and_execute_code"}, d.Name)
	}
}

func TestAnswerQuestion_StreamsAnswer(t *testing.T) {
	answer := strings.Repeat("Revenue grew steadily through the quarter. ", 12)
	rtc := newRuntime(nil, nil)

	result, events := runTool(t, AnswerQuestion{}, map[string]any{"answer": answer}, rtc)

	require.False(t, result.Failed())
	var streamed strings.Builder
	for _, ev := range events {
		require.Equal(t, tools.EventPartial, ev.Kind)
		streamed.WriteString(ev.Text)
	}
	assert.Equal(t, answer, streamed.String(), "partials reassemble the full answer")
	assert.Equal(t, answer, result.Observation.FinalAnswer)
	require.NotNil(t, result.Observation.AnalysisComplete)
	assert.True(t, *result.Observation.AnalysisComplete)
	assert.Equal(t, answer, result.Output["answer"])
}

func TestAnswerQuestion_MissingArgument(t *testing.T) {
	result, _ := runTool(t, AnswerQuestion{}, map[string]any{}, newRuntime(nil, nil))

	require.True(t, result.Failed())
	assert.Equal(t, models.ErrCodeExecution, result.Observation.Error.Code)
	assert.Contains(t, result.Observation.Error.Message, "answer")
}

func TestClarify_AsksQuestion(t *testing.T) {
	question := "Which fiscal year should the comparison cover?"
	result, events := runTool(t, Clarify{}, map[string]any{"question": question}, newRuntime(nil, nil))

	require.False(t, result.Failed())
	require.Len(t, events, 1)
	assert.Equal(t, question, events[0].Text)
	assert.Equal(t, question, result.Observation.FinalAnswer)
	assert.Contains(t, result.Observation.Summary, "asked the user")
}

func TestDescribeTable_ReturnsDescription(t *testing.T) {
	src := textSource("orders: id bigint, amount numeric, created_at timestamptz")
	rtc := newRuntime(src, nil)

	result, _ := runTool(t, DescribeTable{}, map[string]any{
		"source": "warehouse",
		"table":  "orders",
	}, rtc)

	require.False(t, result.Failed())
	assert.Contains(t, result.Observation.Summary, "amount numeric")
	assert.Equal(t, []string{"warehouse/describe_table"}, src.calls)
	assert.Contains(t, result.Output["description"], "orders:")
}

func TestDescribeTable_SourceError(t *testing.T) {
	rtc := newRuntime(errorSource(`relation "ordes" does not exist`), nil)

	result, _ := runTool(t, DescribeTable{}, map[string]any{
		"source": "warehouse",
		"table":  "ordes",
	}, rtc)

	require.True(t, result.Failed())
	assert.Equal(t, models.ErrCodeExecution, result.Observation.Error.Code)
	assert.Contains(t, result.Observation.Error.Message, "does not exist")
}

func TestExecuteQuery_ObservesResult(t *testing.T) {
	src := textSource("month,revenue\n2026-01,12000\n2026-02,15400")
	rtc := newRuntime(src, nil)

	result, _ := runTool(t, ExecuteQuery{}, map[string]any{
		"source": "warehouse",
		"query":  "select month, revenue from monthly_revenue",
	}, rtc)

	require.False(t, result.Failed())
	assert.Contains(t, result.Observation.Summary, "15400")
	assert.Equal(t, []string{"warehouse/" + mcp.ExecuteTool}, src.calls)
	assert.Equal(t, "select month, revenue from monthly_revenue",
		result.Observation.Artifacts["query"])
}

func TestExecuteQuery_QueryError(t *testing.T) {
	rtc := newRuntime(errorSource("syntax error at or near \"selct\""), nil)

	result, _ := runTool(t, ExecuteQuery{}, map[string]any{
		"source": "warehouse",
		"query":  "selct 1",
	}, rtc)

	require.True(t, result.Failed())
	assert.Equal(t, "query failed", result.Observation.Summary)
	assert.Contains(t, result.Observation.Error.Message, "syntax error")
}
