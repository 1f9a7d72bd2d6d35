package contexthub

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/models"
)

// fakeSources implements every hub source backed by in-memory fixtures.
type fakeSources struct {
	schemas     map[string][]TableSchema
	schemaCalls int

	usage    []UsageEvent
	usageErr error

	instructions []Instruction

	resources     []Resource
	resourceIndex []string

	snippets []Snippet

	messages     []Message
	messageCalls int
	widgets      []WidgetSummary
	queries      []QueryRecord
}

func (f *fakeSources) Schemas(_ context.Context, _ string) (map[string][]TableSchema, error) {
	f.schemaCalls++
	return f.schemas, nil
}

func (f *fakeSources) Usage(_ context.Context, _, _ string, _ time.Time) ([]UsageEvent, error) {
	if f.usageErr != nil {
		return nil, f.usageErr
	}
	return f.usage, nil
}

func (f *fakeSources) ActiveInstructions(_ context.Context, _ string) ([]Instruction, error) {
	return f.instructions, nil
}

func (f *fakeSources) Resources(_ context.Context, _ string) ([]Resource, []string, error) {
	return f.resources, f.resourceIndex, nil
}

func (f *fakeSources) Snippets(_ context.Context, _ string) ([]Snippet, error) {
	return f.snippets, nil
}

func (f *fakeSources) RecentMessages(_ context.Context, _ string, _ int) ([]Message, error) {
	f.messageCalls++
	return f.messages, nil
}

func (f *fakeSources) Widgets(_ context.Context, _ string) ([]WidgetSummary, error) {
	return f.widgets, nil
}

func (f *fakeSources) RecentQueries(_ context.Context, _ string, _ int) ([]QueryRecord, error) {
	return f.queries, nil
}

func (f *fakeSources) bundle() Sources {
	return Sources{
		Schema:       f,
		Usage:        f,
		Instructions: f,
		Resources:    f,
		Snippets:     f,
		Conversation: f,
	}
}

func testResearchContext() ResearchContext {
	return ResearchContext{
		OrganizationID:   "org-1",
		ReportID:         "report-1",
		CompletionID:     "comp-1",
		AgentExecutionID: "exec-1",
		UserMessage:      "show me revenue by month",
		Mode:             "analyst",
		Mentions:         []string{"@q3-board"},
	}
}

func TestHub_StaticPrimedOnceWarmRebuilt(t *testing.T) {
	fs := &fakeSources{
		schemas: map[string][]TableSchema{
			"warehouse": {table("orders", "id", "customer_id", "total")},
		},
		messages: []Message{{Role: "user", Content: "earlier question"}},
	}
	acc := NewAccumulator()
	hub := NewHub(fs.bundle(), nil, acc, nil)

	first, err := hub.BuildContext(context.Background(), Spec{}, testResearchContext(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Warm.Observations.Count)

	acc.AddToolObservation("execute_query", nil, &models.Observation{Summary: "42 rows"})

	second, err := hub.BuildContext(context.Background(), Spec{}, testResearchContext(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, fs.schemaCalls, "static tier primes once")
	assert.Equal(t, 2, fs.messageCalls, "warm tier rebuilds per loop")
	assert.Equal(t, 1, second.Warm.Observations.Count)
	assert.Contains(t, second.Warm.Observations.Rendered, "42 rows")
	assert.Equal(t, 1, second.Meta.LoopIndex)
}

func TestHub_SchemaRankingUsesUsageStats(t *testing.T) {
	fs := &fakeSources{
		schemas: map[string][]TableSchema{
			"warehouse": {
				table("customers", "id", "email"),
				table("orders", "id", "customer_id", "total"),
			},
		},
		usage: []UsageEvent{
			{TableName: "orders", Success: true, CreatedAt: time.Now().UTC().Add(-24 * time.Hour)},
			{TableName: "orders", Success: true, CreatedAt: time.Now().UTC().Add(-48 * time.Hour)},
		},
	}
	hub := NewHub(fs.bundle(), nil, nil, nil)

	view, err := hub.BuildContext(context.Background(), Spec{}, testResearchContext(), 0)
	require.NoError(t, err)

	require.Len(t, view.Static.Schemas.Sources, 1)
	src := view.Static.Schemas.Sources[0]
	assert.False(t, src.Flat)
	require.NotEmpty(t, src.Ranked)
	assert.Equal(t, "orders", src.Ranked[0].Name)
	assert.Contains(t, view.RenderSection(SectionSchemas), "score")
}

func TestHub_FlatRenderingWhenStatsUnavailable(t *testing.T) {
	fs := &fakeSources{
		schemas: map[string][]TableSchema{
			"warehouse": {table("orders", "id", "customer_id", "total")},
		},
		usageErr: errors.New("stats store down"),
	}
	hub := NewHub(fs.bundle(), nil, nil, nil)

	view, err := hub.BuildContext(context.Background(), Spec{}, testResearchContext(), 0)
	require.NoError(t, err)

	require.Len(t, view.Static.Schemas.Sources, 1)
	assert.True(t, view.Static.Schemas.Sources[0].Flat)
	assert.NotContains(t, view.RenderSection(SectionSchemas), "score")
}

func TestHub_BudgetDegradesSchemasFirst(t *testing.T) {
	wide := make([]TableColumn, 40)
	for i := range wide {
		wide[i] = TableColumn{Name: strings.Repeat("c", 30), Type: "text"}
	}
	var tables []TableSchema
	for _, name := range []string{"alpha", "beta", "gamma", "delta"} {
		tables = append(tables, TableSchema{Source: "warehouse", Name: name, Columns: wide})
	}
	fs := &fakeSources{schemas: map[string][]TableSchema{"warehouse": tables}}
	hub := NewHub(fs.bundle(), nil, nil, nil)

	view, err := hub.BuildContext(context.Background(), Spec{TokenBudget: 300}, testResearchContext(), 0)
	require.NoError(t, err)

	assert.True(t, view.Static.Schemas.Compact)
	assert.Equal(t, []string{SectionSchemas}, view.Meta.Degraded)
	assert.LessOrEqual(t, view.Meta.TokenEstimate, 300)

	rendered := view.RenderSection(SectionSchemas)
	assert.Contains(t, rendered, "Tables: ")
	assert.NotContains(t, rendered, strings.Repeat("c", 30))
}

func TestHub_PruneToRequestedSections(t *testing.T) {
	fs := &fakeSources{
		schemas:  map[string][]TableSchema{"warehouse": {table("orders", "id")}},
		messages: []Message{{Role: "user", Content: "earlier"}},
	}
	hub := NewHub(fs.bundle(), nil, nil, nil)

	view, err := hub.BuildContext(context.Background(), Spec{
		Sections: []string{SectionSchemas, SectionObservations},
	}, testResearchContext(), 0)
	require.NoError(t, err)

	assert.NotEmpty(t, view.Static.Schemas.Sources)
	assert.Empty(t, view.Warm.Messages.Messages)
	assert.Empty(t, view.Warm.Mentions.Mentions)
}

func TestHub_RefreshSchemasReRanks(t *testing.T) {
	fs := &fakeSources{
		schemas: map[string][]TableSchema{
			"warehouse": {
				table("customers", "id", "email"),
				table("orders", "id", "customer_id", "total"),
			},
		},
	}
	hub := NewHub(fs.bundle(), nil, nil, nil)

	_, err := hub.BuildContext(context.Background(), Spec{}, testResearchContext(), 0)
	require.NoError(t, err)

	// A tool run just recorded heavy usage for orders.
	fs.usage = []UsageEvent{
		{TableName: "customers", Success: true, CreatedAt: time.Now().UTC()},
		{TableName: "customers", Success: true, CreatedAt: time.Now().UTC()},
		{TableName: "customers", Success: true, CreatedAt: time.Now().UTC()},
	}
	require.NoError(t, hub.RefreshSchemas(context.Background()))
	assert.Equal(t, 2, fs.schemaCalls)

	// The next build sees the re-ranked static tier.
	next, err := hub.BuildContext(context.Background(), Spec{}, testResearchContext(), 1)
	require.NoError(t, err)
	assert.Equal(t, "customers", next.Static.Schemas.Sources[0].Ranked[0].Name)
}

func TestHub_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hub := NewHub(Sources{}, nil, nil, nil)
	_, err := hub.BuildContext(ctx, Spec{}, testResearchContext(), 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHub_NilSourcesYieldEmptySections(t *testing.T) {
	hub := NewHub(Sources{}, nil, nil, nil)

	view, err := hub.BuildContext(context.Background(), Spec{}, testResearchContext(), 0)
	require.NoError(t, err)

	assert.Empty(t, view.RenderSection(SectionSchemas))
	assert.Empty(t, view.RenderSection(SectionMessages))
	assert.Equal(t, []string{"@q3-board"}, view.Warm.Mentions.Mentions)
}

func TestHub_ConfigTopKsApply(t *testing.T) {
	fs := &fakeSources{
		schemas: map[string][]TableSchema{
			"warehouse": {
				table("a", "id"), table("b", "id"), table("c", "id"),
			},
		},
	}
	cfg := config.DefaultContextConfig()
	cfg.SchemaTopK = 1
	hub := NewHub(fs.bundle(), cfg, nil, nil)

	view, err := hub.BuildContext(context.Background(), Spec{}, testResearchContext(), 0)
	require.NoError(t, err)

	src := view.Static.Schemas.Sources[0]
	assert.Len(t, src.Ranked, 1)
	assert.Len(t, src.Index, 2)
}
