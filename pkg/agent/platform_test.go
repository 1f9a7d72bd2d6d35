package agent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/tools"
)

func newTestPlatform(usage *fakeUsage, sink *fakeSink, execs *fakeExecutions) *ArtifactPlatform {
	return NewArtifactPlatform(usage, sink, execs, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testScope() tools.Scope {
	return tools.Scope{
		OrganizationID:   "org-1",
		UserID:           "user-1",
		ReportID:         "rep-1",
		CompletionID:     "comp-1",
		AgentExecutionID: "exec-1",
		ToolExecutionID:  "tool-1",
	}
}

func TestArtifactPlatform_StageProgression(t *testing.T) {
	sink := &fakeSink{}
	execs := &fakeExecutions{}
	usage := &fakeUsage{}
	p := newTestPlatform(usage, sink, execs)
	ctx := context.Background()
	scope := testScope()
	state := &tools.ArtifactState{}

	require.NoError(t, p.CreateDataModel(ctx, scope, state, map[string]any{
		"source":          "warehouse",
		"query":           "select region, sum(total) from orders group by 1",
		"data_model_type": "table",
	}))
	require.NotEmpty(t, state.QueryID)
	require.NotEmpty(t, state.StepID)
	assert.Equal(t, map[string]any{
		"source": "warehouse",
		"sql":    "select region, sum(total) from orders group by 1",
	}, state.Query)
	assert.Equal(t, "table", state.Step["type"])

	queryID := state.QueryID
	require.NoError(t, p.CreateDataModel(ctx, scope, state, map[string]any{"query": "select 2"}))
	assert.Equal(t, queryID, state.QueryID, "replayed stage events keep the minted ids")

	require.NoError(t, p.AddColumn(ctx, scope, state, map[string]any{"column": map[string]any{"name": "region"}}))
	require.NoError(t, p.AddColumn(ctx, scope, state, map[string]any{"column": map[string]any{"name": "total"}}))
	require.NoError(t, p.AddColumn(ctx, scope, state, map[string]any{"note": "no column key"}))
	assert.Len(t, state.Step["columns"], 2)

	require.NoError(t, p.ConfigureSeries(ctx, scope, state, map[string]any{"series": map[string]any{"metric": "total"}}))
	require.NotEmpty(t, state.VisualizationID)
	require.NoError(t, p.ConfigureSeries(ctx, scope, state, map[string]any{"series": map[string]any{"metric": "count"}}))
	assert.Len(t, state.Visualization["series"], 2)
	assert.Equal(t, []string{state.VisualizationID}, state.CreatedVisualizationIDs)

	require.NoError(t, p.PrepareWidget(ctx, scope, state, map[string]any{"title": "Revenue by region"}))
	require.NotEmpty(t, state.WidgetID)
	widgetID := state.WidgetID
	require.NoError(t, p.PrepareWidget(ctx, scope, state, map[string]any{"title": "ignored"}))
	assert.Equal(t, widgetID, state.WidgetID)
	assert.Equal(t, "Revenue by region", state.Visualization["title"])

	require.NoError(t, p.FinalizeArtifacts(ctx, scope, state, true))

	require.Len(t, sink.artifacts, 3, "one frame per milestone, not per stage event")
	assert.Equal(t, events.EventTypeQueryCreated, sink.artifacts[0].Event)
	assert.Equal(t, events.ArtifactData{
		ToolExecutionID: "tool-1",
		QueryID:         state.QueryID,
		StepID:          state.StepID,
	}, sink.artifacts[0].Data)
	assert.Equal(t, events.EventTypeVisualizationCreated, sink.artifacts[1].Event)
	assert.Equal(t, state.VisualizationID, sink.artifacts[1].Data.VisualizationID)
	assert.Equal(t, events.EventTypeVisualizationUpdated, sink.artifacts[2].Event)
	assert.Equal(t, widgetID, sink.artifacts[2].Data.WidgetID)
	for i, frame := range sink.artifacts {
		assert.Equal(t, i+1, frame.Seq)
		assert.Equal(t, "comp-1", frame.CompletionID)
		assert.Equal(t, "exec-1", frame.AgentExecutionID)
	}

	require.Len(t, usage.records, 1)
	rec := usage.records[0]
	assert.Equal(t, "org-1", rec.OrganizationID)
	assert.Equal(t, "warehouse", rec.Datasource)
	assert.Equal(t, []string{"orders"}, rec.Tables)
	assert.True(t, rec.Success)
	assert.Equal(t, state.StepID, rec.StepID)
	assert.Equal(t, "exec-1", rec.AgentExecutionID)
}

func TestArtifactPlatform_FailedRunRecordsUsageWithoutUpdateFrame(t *testing.T) {
	sink := &fakeSink{}
	usage := &fakeUsage{}
	p := newTestPlatform(usage, sink, &fakeExecutions{})
	ctx := context.Background()
	scope := testScope()
	state := &tools.ArtifactState{}

	require.NoError(t, p.CreateDataModel(ctx, scope, state, map[string]any{
		"source": "warehouse",
		"query":  "select * from orders join refunds on refunds.order_id = orders.id",
	}))
	require.NoError(t, p.ConfigureSeries(ctx, scope, state, map[string]any{"series": map[string]any{}}))
	require.NoError(t, p.FinalizeArtifacts(ctx, scope, state, false))

	require.Len(t, sink.artifacts, 2)
	assert.Equal(t, events.EventTypeQueryCreated, sink.artifacts[0].Event)
	assert.Equal(t, events.EventTypeVisualizationCreated, sink.artifacts[1].Event)

	require.Len(t, usage.records, 1, "failed runs still teach the ranker")
	assert.False(t, usage.records[0].Success)
	assert.Equal(t, []string{"orders", "refunds"}, usage.records[0].Tables)
}

func TestArtifactPlatform_SeqFailureSkipsFrames(t *testing.T) {
	sink := &fakeSink{}
	usage := &fakeUsage{}
	p := newTestPlatform(usage, sink, &fakeExecutions{seqErr: errors.New("seq backend down")})
	ctx := context.Background()
	scope := testScope()
	state := &tools.ArtifactState{}

	require.NoError(t, p.CreateDataModel(ctx, scope, state, map[string]any{
		"source": "warehouse",
		"query":  "select * from orders",
	}))
	require.NoError(t, p.ConfigureSeries(ctx, scope, state, map[string]any{"series": map[string]any{}}))
	require.NoError(t, p.FinalizeArtifacts(ctx, scope, state, true))

	assert.NotEmpty(t, state.QueryID, "ids are minted even when frames cannot go out")
	assert.NotEmpty(t, state.VisualizationID)
	assert.Empty(t, sink.artifacts)
	require.Len(t, usage.records, 1)
}

func TestArtifactPlatform_NilStateIsNoop(t *testing.T) {
	sink := &fakeSink{}
	usage := &fakeUsage{}
	p := newTestPlatform(usage, sink, &fakeExecutions{})
	ctx := context.Background()
	scope := testScope()

	require.NoError(t, p.CreateDataModel(ctx, scope, nil, nil))
	require.NoError(t, p.AddColumn(ctx, scope, nil, nil))
	require.NoError(t, p.ConfigureSeries(ctx, scope, nil, nil))
	require.NoError(t, p.PrepareWidget(ctx, scope, nil, nil))
	require.NoError(t, p.FinalizeArtifacts(ctx, scope, nil, true))

	assert.Empty(t, sink.artifacts)
	assert.Empty(t, usage.records)
}

func TestArtifactPlatform_NoUsageWithoutTables(t *testing.T) {
	usage := &fakeUsage{}
	p := newTestPlatform(usage, &fakeSink{}, &fakeExecutions{})
	ctx := context.Background()
	scope := testScope()
	state := &tools.ArtifactState{}

	require.NoError(t, p.CreateDataModel(ctx, scope, state, map[string]any{"source": "warehouse"}))
	require.NoError(t, p.FinalizeArtifacts(ctx, scope, state, true))

	assert.Empty(t, usage.records)
}

func TestTablesFromSQL(t *testing.T) {
	cases := []struct {
		name string
		sql  string
		want []string
	}{
		{name: "empty", sql: ""},
		{name: "no tables", sql: "show tables"},
		{
			name: "simple select",
			sql:  "select * from orders",
			want: []string{"orders"},
		},
		{
			name: "join with qualified names",
			sql:  "SELECT o.id FROM analytics.orders o JOIN customers c ON c.id = o.customer_id",
			want: []string{"analytics.orders", "customers"},
		},
		{
			name: "left join",
			sql:  "select * from orders left join refunds on refunds.order_id = orders.id",
			want: []string{"orders", "refunds"},
		},
		{
			name: "repeats deduped",
			sql:  "select 1 from orders union all select 2 from orders",
			want: []string{"orders"},
		},
		{
			name: "subquery contributes inner table",
			sql:  "select * from (select * from line_items) t",
			want: []string{"line_items"},
		},
		{
			name: "cte name slips through",
			sql:  "with recent as (select * from orders) select * from recent",
			want: []string{"orders", "recent"},
		},
		{
			name: "trailing dot trimmed",
			sql:  "select * from orders.",
			want: []string{"orders"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tablesFromSQL(tc.sql)
			if len(tc.want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
