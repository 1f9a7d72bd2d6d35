package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/models"
)

const querySchema = `{
	"type": "object",
	"properties": {
		"query": {"type": "string"},
		"limit": {"type": "integer", "minimum": 1}
	},
	"required": ["query"],
	"additionalProperties": false
}`

// fakeTool is a scriptable tool for registry and runner tests.
type fakeTool struct {
	meta Metadata
	run  func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event
}

func (f *fakeTool) Metadata() Metadata { return f.meta }

func (f *fakeTool) RunStream(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
	if f.run != nil {
		return f.run(ctx, args, rtc)
	}
	ch := make(chan Event, 1)
	ch <- End(nil, &models.Observation{Summary: "done"})
	close(ch)
	return ch
}

func researchTool(name string) *fakeTool {
	return &fakeTool{meta: Metadata{
		Name:        name,
		Description: "test tool " + name,
		Category:    CategoryResearch,
	}}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(&fakeTool{meta: Metadata{
		Name:        "execute_query",
		Description: "Runs SQL against a data source",
		Category:    CategoryResearch,
		InputSchema: querySchema,
		MaxRetries:  2,
		Idempotent:  true,
	}}))

	_, meta, err := r.Get("execute_query")
	require.NoError(t, err)
	assert.Equal(t, "execute_query", meta.Name)
	assert.Equal(t, 2, meta.MaxRetries)
	assert.True(t, meta.Idempotent)

	_, _, err = r.Get("unknown_tool")
	assert.ErrorContains(t, err, "not registered")
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(researchTool("describe_table")))
	err := r.Register(researchTool("describe_table"))
	assert.ErrorContains(t, err, "already registered")
}

func TestRegistry_RejectsInvalidMetadata(t *testing.T) {
	r := NewRegistry(nil)

	err := r.Register(&fakeTool{meta: Metadata{Category: CategoryResearch}})
	assert.ErrorContains(t, err, "name")

	err = r.Register(&fakeTool{meta: Metadata{Name: "x", Category: Category("weird")}})
	assert.ErrorContains(t, err, "category")
}

func TestRegistry_RejectsBadSchema(t *testing.T) {
	r := NewRegistry(nil)
	err := r.Register(&fakeTool{meta: Metadata{
		Name:        "broken",
		Category:    CategoryResearch,
		InputSchema: `{"type": `,
	}})
	assert.ErrorContains(t, err, "input schema")
}

func TestRegistry_AppliesOverrides(t *testing.T) {
	timeout := 120
	retries := 5
	idempotent := true
	disabled := true
	cfg := &config.ToolsConfig{Overrides: map[string]config.ToolOverride{
		"execute_query": {
			TimeoutSeconds: &timeout,
			MaxRetries:     &retries,
			Idempotent:     &idempotent,
		},
		"create_widget": {Disabled: &disabled},
	}}

	r := NewRegistry(cfg)
	require.NoError(t, r.Register(&fakeTool{meta: Metadata{
		Name:           "execute_query",
		Category:       CategoryResearch,
		TimeoutSeconds: 30,
	}}))
	require.NoError(t, r.Register(&fakeTool{meta: Metadata{
		Name:     "create_widget",
		Category: CategoryAction,
	}}))

	_, meta, err := r.Get("execute_query")
	require.NoError(t, err)
	assert.Equal(t, 120, meta.TimeoutSeconds)
	assert.Equal(t, 5, meta.MaxRetries)
	assert.True(t, meta.Idempotent)

	_, _, err = r.Get("create_widget")
	assert.Error(t, err, "disabled tools are invisible")
	assert.False(t, r.ValidateToolForPlanType("create_widget", models.PlanTypeAction))
	assert.Equal(t, []string{"execute_query"}, r.Names())
}

func TestRegistry_CatalogForPlanType(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(&fakeTool{meta: Metadata{
		Name: "describe_table", Category: CategoryResearch, Description: "describe",
	}}))
	require.NoError(t, r.Register(&fakeTool{meta: Metadata{
		Name: "create_widget", Category: CategoryAction, Description: "create",
	}}))
	require.NoError(t, r.Register(&fakeTool{meta: Metadata{
		Name: "answer_question", Category: CategoryBoth, Description: "answer",
		Tags: []string{"terminal"},
	}}))

	research := r.CatalogForPlanType(models.PlanTypeResearch)
	names := make([]string, 0, len(research))
	for _, d := range research {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"answer_question", "describe_table"}, names)

	action := r.CatalogForPlanType(models.PlanTypeAction)
	names = names[:0]
	for _, d := range action {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"answer_question", "create_widget"}, names)
}

func TestRegistry_ValidateToolForPlanType(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(&fakeTool{meta: Metadata{
		Name: "execute_query", Category: CategoryResearch,
	}}))

	assert.True(t, r.ValidateToolForPlanType("execute_query", models.PlanTypeResearch))
	assert.False(t, r.ValidateToolForPlanType("execute_query", models.PlanTypeAction))
	assert.False(t, r.ValidateToolForPlanType("missing", models.PlanTypeResearch))
}

func TestRegistry_ValidateArguments(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(&fakeTool{meta: Metadata{
		Name:        "execute_query",
		Category:    CategoryResearch,
		InputSchema: querySchema,
	}}))
	require.NoError(t, r.Register(researchTool("schemaless")))

	assert.NoError(t, r.ValidateArguments("execute_query", map[string]any{
		"query": "select count(*) from orders",
		"limit": 100,
	}))

	err := r.ValidateArguments("execute_query", map[string]any{"limit": 5})
	assert.ErrorContains(t, err, "rejected by schema")

	err = r.ValidateArguments("execute_query", map[string]any{
		"query":   "select 1",
		"surplus": true,
	})
	assert.ErrorContains(t, err, "rejected by schema")

	assert.NoError(t, r.ValidateArguments("schemaless", map[string]any{"anything": 1}))
	assert.NoError(t, r.ValidateArguments("schemaless", nil))

	err = r.ValidateArguments("missing", nil)
	assert.ErrorContains(t, err, "not registered")
}
