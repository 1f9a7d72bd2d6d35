package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/instruction"
	"github.com/quarryhq/quarry/pkg/contexthub"
	"github.com/quarryhq/quarry/pkg/mcp"
	"github.com/quarryhq/quarry/pkg/models"
)

type fakeDataSources struct {
	sources []string
	results map[string]*mcp.Result
	errs    map[string]error
	calls   []string
}

func (f *fakeDataSources) Sources() []string { return f.sources }

func (f *fakeDataSources) Execute(_ context.Context, source, tool string, _ map[string]any) (*mcp.Result, error) {
	key := source + ":" + tool
	f.calls = append(f.calls, key)
	if err := f.errs[key]; err != nil {
		return nil, err
	}
	return f.results[key], nil
}

func (f *fakeDataSources) Query(ctx context.Context, source, query string) (*mcp.Result, error) {
	return f.Execute(ctx, source, "execute_query", map[string]any{"query": query})
}

type fakeUsageReader struct {
	rows []*ent.TableUsage
	err  error
}

func (f *fakeUsageReader) RecentUsage(context.Context, string, string, time.Time) ([]*ent.TableUsage, error) {
	return f.rows, f.err
}

type fakeInstructionReader struct {
	rows []*ent.Instruction
}

func (f *fakeInstructionReader) ActiveInstructions(context.Context, string) ([]*ent.Instruction, error) {
	return f.rows, nil
}

type fakeSnippetReader struct {
	rows     []*ent.ToolExecution
	err      error
	gotTool  string
	gotLimit int
}

func (f *fakeSnippetReader) RecentSuccessfulByTool(_ context.Context, _, toolName string, limit int) ([]*ent.ToolExecution, error) {
	f.gotTool = toolName
	f.gotLimit = limit
	return f.rows, f.err
}

type fakeConversationReader struct {
	resp       *models.CompletionListResponse
	err        error
	gotFilters models.CompletionFilters
}

func (f *fakeConversationReader) ListCompletions(_ context.Context, filters models.CompletionFilters) (*models.CompletionListResponse, error) {
	f.gotFilters = filters
	return f.resp, f.err
}

type fakeReportToolReader struct {
	rows []*ent.ToolExecution
}

func (f *fakeReportToolReader) RecentSuccessfulInReport(context.Context, string, int) ([]*ent.ToolExecution, error) {
	return f.rows, nil
}

func TestNewHubSources_WiresOnlyProvidedInputs(t *testing.T) {
	empty := NewHubSources(nil, nil, nil, nil, nil, nil, nil, nil)
	assert.Nil(t, empty.Schema)
	assert.Nil(t, empty.Usage)
	assert.Nil(t, empty.Instructions)
	assert.Nil(t, empty.Snippets)
	assert.Nil(t, empty.Conversation)
	assert.Nil(t, empty.Resources)

	full := NewHubSources(
		&fakeDataSources{},
		&fakeUsageReader{},
		&fakeInstructionReader{},
		&fakeSnippetReader{},
		&fakeConversationReader{},
		&fakeReportToolReader{},
		nil,
		nil,
	)
	assert.NotNil(t, full.Schema)
	assert.NotNil(t, full.Usage)
	assert.NotNil(t, full.Instructions)
	assert.NotNil(t, full.Snippets)
	assert.NotNil(t, full.Conversation)

	toolsOnly := NewHubSources(nil, nil, nil, nil, nil, &fakeReportToolReader{}, nil, nil)
	assert.NotNil(t, toolsOnly.Conversation, "report tool rows alone still back the conversation section")
}

func TestSchemaSource_BuildsCatalogPerSource(t *testing.T) {
	data := &fakeDataSources{
		sources: []string{"warehouse", "files"},
		results: map[string]*mcp.Result{
			"warehouse:list_tables": {Content: `[
				{"name": "orders", "description": "Order facts", "columns": [
					{"name": "id", "type": "uuid"},
					{"name": "total", "type": "numeric"}
				]},
				{"name": ""}
			]`},
			"files:list_tables": {Content: `[{"name": "events"}]`},
		},
	}
	src := NewHubSources(data, nil, nil, nil, nil, nil, nil, nil).Schema

	catalogs, err := src.Schemas(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, catalogs, 2)

	warehouse := catalogs["warehouse"]
	require.Len(t, warehouse, 1, "nameless entries are dropped")
	assert.Equal(t, contexthub.TableSchema{
		Source:      "warehouse",
		Name:        "orders",
		Description: "Order facts",
		Columns: []contexthub.TableColumn{
			{Name: "id", Type: "uuid"},
			{Name: "total", Type: "numeric"},
		},
	}, warehouse[0])

	files := catalogs["files"]
	require.Len(t, files, 1)
	assert.Empty(t, files[0].Columns)
	assert.Equal(t, []string{"warehouse:list_tables", "files:list_tables"}, data.calls)
}

func TestSchemaSource_SkipsBrokenSources(t *testing.T) {
	data := &fakeDataSources{
		sources: []string{"down", "refusing", "garbled", "healthy"},
		errs:    map[string]error{"down:list_tables": errors.New("connect timeout")},
		results: map[string]*mcp.Result{
			"refusing:list_tables": {Content: "no such tool", IsError: true},
			"garbled:list_tables":  {Content: "{not json"},
			"healthy:list_tables":  {Content: `[{"name": "orders"}]`},
		},
	}
	src := NewHubSources(data, nil, nil, nil, nil, nil, nil, nil).Schema

	catalogs, err := src.Schemas(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, catalogs, 1)
	assert.Equal(t, "orders", catalogs["healthy"][0].Name)
}

func TestSchemaSource_AllSourcesFailing(t *testing.T) {
	boom := errors.New("connect timeout")
	data := &fakeDataSources{
		sources: []string{"a", "b"},
		errs:    map[string]error{"a:list_tables": boom, "b:list_tables": boom},
	}
	src := NewHubSources(data, nil, nil, nil, nil, nil, nil, nil).Schema

	catalogs, err := src.Schemas(context.Background(), "org-1")
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, catalogs)

	// Sources answering with tool-level errors are skipped without failing
	// the build; the catalog just comes back empty.
	refusing := &fakeDataSources{
		sources: []string{"a"},
		results: map[string]*mcp.Result{"a:list_tables": {Content: "denied", IsError: true}},
	}
	src = NewHubSources(refusing, nil, nil, nil, nil, nil, nil, nil).Schema
	catalogs, err = src.Schemas(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Empty(t, catalogs)
}

func TestUsageSource_MapsRows(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	reader := &fakeUsageReader{rows: []*ent.TableUsage{
		{TableName: "orders", Success: true, Feedback: 2, CreatedAt: at},
		{TableName: "customers", Success: false, CreatedAt: at.Add(time.Minute)},
	}}
	src := NewHubSources(nil, reader, nil, nil, nil, nil, nil, nil).Usage

	events, err := src.Usage(context.Background(), "org-1", "warehouse", at.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, contexthub.UsageEvent{TableName: "orders", Success: true, Feedback: 2, CreatedAt: at}, events[0])
	assert.False(t, events[1].Success)
}

func TestInstructionSource_MapsRows(t *testing.T) {
	reader := &fakeInstructionReader{rows: []*ent.Instruction{
		{ID: "inst-1", Text: "Prefer the orders table for revenue.", Category: strPtr("sql"), LoadMode: instruction.LoadModeAlways},
		{ID: "inst-2", Text: "Keep charts simple.", LoadMode: instruction.LoadModeIntelligent},
	}}
	src := NewHubSources(nil, nil, reader, nil, nil, nil, nil, nil).Instructions

	items, err := src.ActiveInstructions(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, contexthub.Instruction{
		ID:       "inst-1",
		Text:     "Prefer the orders table for revenue.",
		Category: "sql",
		LoadMode: "always",
	}, items[0])
	assert.Empty(t, items[1].Category)
	assert.Equal(t, "intelligent", items[1].LoadMode)
}

func TestSnippetSource_GroupsRowsByStep(t *testing.T) {
	t1 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(-time.Hour)
	reader := &fakeSnippetReader{rows: []*ent.ToolExecution{
		{
			CreatedStepID: strPtr("st-1"),
			Arguments:     map[string]any{"code": "df.groupby('region').sum()"},
			ResultJSON:    map[string]any{"columns": []any{"region", "total"}},
			CompletedAt:   &t1,
		},
		{
			CreatedStepID: strPtr("st-2"),
			Arguments:     map[string]any{"code": "plot(df)"},
			ResultJSON:    map[string]any{"errors": []any{"TypeError: no numeric data"}},
			StartedAt:     t2,
		},
		{
			CreatedStepID: strPtr("st-1"),
			ResultJSON:    map[string]any{"errors": []any{"stale failure"}},
		},
		{Arguments: map[string]any{"code": "orphan"}},
	}}
	src := NewHubSources(nil, nil, nil, reader, nil, nil, nil, nil).Snippets

	snippets, err := src.Snippets(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, "create_and_execute_code", reader.gotTool)
	assert.Equal(t, snippetFetchLimit, reader.gotLimit)
	require.Len(t, snippets, 2)

	first := snippets[0]
	assert.Equal(t, "st-1", first.StepID)
	assert.Equal(t, "df.groupby('region').sum()", first.Code)
	assert.Equal(t, []string{"region", "total"}, first.Columns)
	assert.Equal(t, 2, first.Successes)
	assert.Equal(t, 1, first.Failures)
	assert.Equal(t, t1, first.LastUsedAt)
	assert.Empty(t, first.LastError, "only the newest row's error is surfaced")

	second := snippets[1]
	assert.Equal(t, "st-2", second.StepID)
	assert.Equal(t, 1, second.Failures)
	assert.Equal(t, "TypeError: no numeric data", second.LastError)
	assert.Equal(t, t2, second.LastUsedAt, "unfinished rows date from their start")
}

func TestConversationSource_RecentMessagesOldestFirst(t *testing.T) {
	base := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	reader := &fakeConversationReader{resp: &models.CompletionListResponse{
		Completions: []*ent.Completion{
			{
				Status:    completion.StatusInProgress,
				Prompt:    map[string]any{"content": "And this quarter?"},
				CreatedAt: base.Add(2 * time.Minute),
			},
			{
				Status:    completion.StatusCompleted,
				Prompt:    map[string]any{"content": "Show revenue"},
				Content:   strPtr("Revenue grew 12%."),
				CreatedAt: base.Add(time.Minute),
			},
			{
				Status:    completion.StatusStopped,
				Prompt:    map[string]any{"content": "Hi"},
				CreatedAt: base,
			},
		},
	}}
	src := NewHubSources(nil, nil, nil, nil, reader, nil, nil, nil).Conversation

	messages, err := src.RecentMessages(context.Background(), "rep-1", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, reader.gotFilters.Limit)
	assert.Equal(t, "rep-1", reader.gotFilters.ReportID)

	require.Len(t, messages, 3, "the in-flight turn stays out of its own context")
	assert.Equal(t, contexthub.Message{Role: "user", Content: "Hi", CreatedAt: base}, messages[0])
	assert.Equal(t, "user", messages[1].Role)
	assert.Equal(t, "Show revenue", messages[1].Content)
	assert.Equal(t, "assistant", messages[2].Role)
	assert.Equal(t, "Revenue grew 12%.", messages[2].Content)

	_, err = src.RecentMessages(context.Background(), "rep-1", 0)
	require.NoError(t, err)
	assert.Equal(t, conversationFetchLimit, reader.gotFilters.Limit)
}

func TestConversationSource_WidgetsDeduped(t *testing.T) {
	reader := &fakeReportToolReader{rows: []*ent.ToolExecution{
		{
			CreatedWidgetID: strPtr("w-1"),
			Arguments: map[string]any{
				"title":      "Revenue by region",
				"data_model": map[string]any{"type": "bar"},
			},
		},
		{CreatedWidgetID: strPtr("w-1"), Arguments: map[string]any{"title": "stale duplicate"}},
		{Arguments: map[string]any{"title": "no widget"}},
		{CreatedWidgetID: strPtr("w-2"), Arguments: map[string]any{"title": "Orders"}},
	}}
	src := NewHubSources(nil, nil, nil, nil, nil, reader, nil, nil).Conversation

	widgets, err := src.Widgets(context.Background(), "rep-1")
	require.NoError(t, err)
	require.Len(t, widgets, 2)
	assert.Equal(t, contexthub.WidgetSummary{ID: "w-1", Title: "Revenue by region", Type: "bar"}, widgets[0])
	assert.Equal(t, contexthub.WidgetSummary{ID: "w-2", Title: "Orders"}, widgets[1])
}

func TestConversationSource_RecentQueries(t *testing.T) {
	started := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	reader := &fakeReportToolReader{rows: []*ent.ToolExecution{
		{Arguments: map[string]any{"query": "select 1", "source": "warehouse"}, StartedAt: started},
		{Arguments: map[string]any{"title": "Widget"}},
		{Arguments: map[string]any{"query": "select 2"}},
		{Arguments: map[string]any{"query": "select 3"}},
	}}
	src := NewHubSources(nil, nil, nil, nil, nil, reader, nil, nil).Conversation

	queries, err := src.RecentQueries(context.Background(), "rep-1", 2)
	require.NoError(t, err)
	require.Len(t, queries, 2)
	assert.Equal(t, contexthub.QueryRecord{Query: "select 1", Source: "warehouse", CreatedAt: started}, queries[0])
	assert.Equal(t, "select 2", queries[1].Query)
	assert.Empty(t, queries[1].Source)
}

func TestConversationSource_NilReadersReturnNothing(t *testing.T) {
	src := &conversationSource{}
	for name, call := range map[string]func() (int, error){
		"messages": func() (int, error) {
			out, err := src.RecentMessages(context.Background(), "rep-1", 5)
			return len(out), err
		},
		"widgets": func() (int, error) {
			out, err := src.Widgets(context.Background(), "rep-1")
			return len(out), err
		},
		"queries": func() (int, error) {
			out, err := src.RecentQueries(context.Background(), "rep-1", 5)
			return len(out), err
		},
	} {
		n, err := call()
		assert.NoError(t, err, name)
		assert.Zero(t, n, name)
	}
}

func TestStringsFrom(t *testing.T) {
	m := map[string]any{
		"typed":   []string{"a", "b"},
		"generic": []any{"a", 7, "", "b"},
		"scalar":  "x",
	}
	assert.Equal(t, []string{"a", "b"}, stringsFrom(m, "typed"))
	assert.Equal(t, []string{"a", "b"}, stringsFrom(m, "generic"), "non-strings and blanks are dropped")
	assert.Nil(t, stringsFrom(m, "scalar"))
	assert.Nil(t, stringsFrom(m, "absent"))
	assert.Nil(t, stringsFrom(nil, "typed"))
}
