package contexthub

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/models"
)

func TestSchemaSectionRender(t *testing.T) {
	section := SchemaSection{
		Sources: []SourceSchemas{{
			Source: "warehouse",
			Ranked: []RankedTable{{
				TableSchema: TableSchema{
					Name:        "orders",
					Columns:     []TableColumn{{Name: "id", Type: "uuid"}, {Name: "total", Type: "numeric"}},
					Description: "Orders placed through checkout.",
				},
				Score: 0.63,
			}},
			Index: []string{"raw_events", "tmp_backfill"},
		}},
	}

	rendered := section.Render()
	assert.Contains(t, rendered, "### Source: warehouse")
	assert.Contains(t, rendered, "<!-- SCHEMAS START -->")
	assert.Contains(t, rendered, "- orders (score 0.63): Orders placed through checkout.")
	assert.Contains(t, rendered, "id uuid, total numeric")
	assert.Contains(t, rendered, "Other tables: raw_events, tmp_backfill")

	section.Sources[0].Flat = true
	assert.NotContains(t, section.Render(), "score")

	section.Compact = true
	compact := section.Render()
	assert.Contains(t, compact, "Tables: orders, raw_events, tmp_backfill")
	assert.NotContains(t, compact, "uuid")
}

func TestInstructionSectionRenderIncludesHeader(t *testing.T) {
	section := InstructionSection{Items: []LoadedInstruction{
		{Instruction: Instruction{Text: "Timezone is UTC."}, LoadReason: "always"},
		{Instruction: Instruction{Text: "Use net_revenue."}, LoadReason: "search_match:0.40"},
	}}

	rendered := section.Render()
	assert.True(t, strings.HasPrefix(rendered, "## Organization Instructions\n"))
	assert.Contains(t, rendered, "- [always] Timezone is UTC.")
	assert.Contains(t, rendered, "- [search_match:0.40] Use net_revenue.")

	assert.Equal(t, "", InstructionSection{}.Render())
}

func TestResourceSectionRender(t *testing.T) {
	section := ResourceSection{
		Items: []Resource{{
			Repo:    "analytics-dbt",
			Path:    "models/revenue.md",
			Title:   "Revenue model",
			Content: "Monthly grain, net of refunds.",
		}},
		Index: []string{"analytics-dbt/models/churn.md"},
	}

	rendered := section.Render()
	assert.Contains(t, rendered, "### analytics-dbt/models/revenue.md")
	assert.Contains(t, rendered, "<!-- RESOURCE START -->")
	assert.Contains(t, rendered, "Monthly grain, net of refunds.")
	assert.Contains(t, rendered, "Available resources: analytics-dbt/models/churn.md")

	section.Compact = true
	compact := section.Render()
	assert.NotContains(t, compact, "Monthly grain")
	assert.Contains(t, compact, "analytics-dbt/models/revenue.md, analytics-dbt/models/churn.md")
}

func TestCodeSectionRender(t *testing.T) {
	section := CodeSection{
		Snippets: []ScoredSnippet{{
			Snippet: Snippet{StepID: "step-1", Columns: []string{"month", "revenue"}, Code: "df.groupby('month')"},
			Score:   0.91,
		}},
		Failed: []ScoredSnippet{{
			Snippet:      Snippet{StepID: "step-2"},
			Score:        0.55,
			ErrorExcerpt: "KeyError: 'month'",
		}},
	}

	rendered := section.Render()
	assert.Contains(t, rendered, "### Code that worked on similar data")
	assert.Contains(t, rendered, "step step-1 (score 0.91, columns: month, revenue)")
	assert.Contains(t, rendered, "df.groupby('month')")
	assert.Contains(t, rendered, "### Code that failed on similar data")
	assert.Contains(t, rendered, "step step-2 (score 0.55): KeyError: 'month'")

	section.Compact = true
	assert.NotContains(t, section.Render(), "df.groupby")
}

func TestWarmSectionRenders(t *testing.T) {
	messages := MessageSection{Messages: []Message{
		{Role: "user", Content: "show revenue"},
		{Role: "assistant", Content: "here it is"},
	}}
	assert.Equal(t, "- user: show revenue\n- assistant: here it is\n", messages.Render())

	widgets := WidgetSection{Widgets: []WidgetSummary{{ID: "w1", Title: "Revenue", Type: "line"}}}
	assert.Equal(t, "- w1: Revenue (line)\n", widgets.Render())

	queries := QuerySection{Queries: []QueryRecord{{
		Query:  "SELECT month,\n       sum(total)\nFROM orders",
		Source: "warehouse",
	}}}
	assert.Equal(t, "- [warehouse] SELECT month, sum(total) FROM orders\n", queries.Render())

	assert.Equal(t, "- @q3\n", MentionSection{Mentions: []string{"@q3"}}.Render())
	assert.Equal(t, "", EntitySection{}.Render())
}

func TestFileSectionRender(t *testing.T) {
	section := FileSection{Files: []models.UploadedFile{{
		Name:        "targets.csv",
		ContentType: "text/csv",
		Schema:      map[string]any{"month": "date"},
	}}}

	rendered := section.Render()
	assert.Contains(t, rendered, "- targets.csv (text/csv) schema: ")
	assert.Contains(t, rendered, `"month":"date"`)
}

func TestContextView_RenderSectionNames(t *testing.T) {
	view := &ContextView{}
	view.Warm.Observations = ObservationSection{Count: 1, Rendered: "1. execute_query: ok"}

	assert.Equal(t, "1. execute_query: ok", view.RenderSection(SectionObservations))
	assert.Equal(t, "", view.RenderSection("not_a_section"))
}

func TestContextView_DictIsJSONSafe(t *testing.T) {
	view := &ContextView{
		Meta: ViewMeta{
			OrganizationID: "org-1",
			BuiltAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	view.Warm.Messages = MessageSection{Messages: []Message{{
		Role: "user", Content: "hi", CreatedAt: time.Date(2026, 3, 1, 11, 59, 0, 0, time.UTC),
	}}}

	dict := view.Dict()

	meta, ok := dict["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "org-1", meta["organization_id"])
	assert.Equal(t, "2026-03-01T12:00:00Z", meta["built_at"])

	// The whole dict must round-trip through encoding/json unchanged in
	// type, since it lands in a jsonb column.
	_, err := json.Marshal(dict)
	require.NoError(t, err)
}
