package contexthub

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/quarryhq/quarry/pkg/models"
)

// Section names accepted by ContextView.RenderSection.
const (
	SectionSchemas      = "schemas"
	SectionInstructions = "instructions"
	SectionResources    = "resources"
	SectionCode         = "code"
	SectionFiles        = "files"
	SectionMessages     = "messages"
	SectionObservations = "observations"
	SectionWidgets      = "widgets"
	SectionMentions     = "mentions"
	SectionEntities     = "entities"
	SectionQueries      = "queries"
)

// queryExcerptLimit bounds a recalled query rendered into the prompt.
const queryExcerptLimit = 200

// ContextView is the typed context bundle the planner and the tools see.
// The static tier is primed once per run; the warm tier is rebuilt each
// loop iteration.
type ContextView struct {
	Static StaticContext `json:"static"`
	Warm   WarmContext   `json:"warm"`
	Meta   ViewMeta      `json:"meta"`
}

// StaticContext holds the sections that survive the whole run.
type StaticContext struct {
	Schemas      SchemaSection      `json:"schemas"`
	Instructions InstructionSection `json:"instructions"`
	Resources    ResourceSection    `json:"resources"`
	Code         CodeSection        `json:"code"`
	Files        FileSection        `json:"files"`
}

// WarmContext holds the sections rebuilt on every loop iteration.
type WarmContext struct {
	Messages     MessageSection     `json:"messages"`
	Observations ObservationSection `json:"observations"`
	Widgets      WidgetSection      `json:"widgets"`
	Mentions     MentionSection     `json:"mentions"`
	Entities     EntitySection      `json:"entities"`
	Queries      QuerySection       `json:"queries"`
}

// ViewMeta records where and when the view was built.
type ViewMeta struct {
	OrganizationID   string    `json:"organization_id"`
	ReportID         string    `json:"report_id,omitempty"`
	CompletionID     string    `json:"completion_id,omitempty"`
	AgentExecutionID string    `json:"agent_execution_id,omitempty"`
	LoopIndex        int       `json:"loop_index"`
	Mode             string    `json:"mode,omitempty"`
	BuiltAt          time.Time `json:"built_at"`
	TokenEstimate    int       `json:"token_estimate"`

	// Degraded lists sections rendered in compact form to fit the budget.
	Degraded []string `json:"degraded,omitempty"`
}

// RenderSection renders one named section to its prompt text form. Unknown
// names render empty.
func (v *ContextView) RenderSection(name string) string {
	switch name {
	case SectionSchemas:
		return v.Static.Schemas.Render()
	case SectionInstructions:
		return v.Static.Instructions.Render()
	case SectionResources:
		return v.Static.Resources.Render()
	case SectionCode:
		return v.Static.Code.Render()
	case SectionFiles:
		return v.Static.Files.Render()
	case SectionMessages:
		return v.Warm.Messages.Render()
	case SectionObservations:
		return v.Warm.Observations.Render()
	case SectionWidgets:
		return v.Warm.Widgets.Render()
	case SectionMentions:
		return v.Warm.Mentions.Render()
	case SectionEntities:
		return v.Warm.Entities.Render()
	case SectionQueries:
		return v.Warm.Queries.Render()
	default:
		return ""
	}
}

// Dict serializes the view for snapshot persistence. Timestamps come out
// as RFC 3339 strings so the result is JSON-safe as-is.
func (v *ContextView) Dict() map[string]any {
	payload, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(payload, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// TokenEstimate approximates the token cost of all rendered sections.
func (v *ContextView) TokenEstimate() int {
	total := 0
	for _, name := range []string{
		SectionSchemas, SectionInstructions, SectionResources,
		SectionCode, SectionFiles, SectionMessages, SectionObservations,
		SectionWidgets, SectionMentions, SectionEntities, SectionQueries,
	} {
		total += estimateTokens(v.RenderSection(name))
	}
	return total
}

// estimateTokens approximates tokens from byte length. Close enough for
// budget degradation decisions.
func estimateTokens(s string) int {
	return len(s) / 4
}

// ─────────────────────────────────────────────────────────────────────────────
// Static sections
// ─────────────────────────────────────────────────────────────────────────────

// SourceSchemas is one data source's slice of the catalog: the ranked
// Top-K tables plus a compact index of the rest. Flat marks sources
// rendered without usage stats.
type SourceSchemas struct {
	Source string        `json:"source"`
	Ranked []RankedTable `json:"ranked,omitempty"`
	Index  []string      `json:"index,omitempty"`
	Flat   bool          `json:"flat,omitempty"`
}

// SchemaSection renders the warehouse catalog. Compact drops column
// detail and keeps only table names.
type SchemaSection struct {
	Sources []SourceSchemas `json:"sources,omitempty"`
	Compact bool            `json:"compact,omitempty"`
}

func (s SchemaSection) Render() string {
	if len(s.Sources) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, src := range s.Sources {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("### Source: ")
		sb.WriteString(src.Source)
		sb.WriteString("\n")

		if s.Compact {
			names := make([]string, 0, len(src.Ranked)+len(src.Index))
			for _, t := range src.Ranked {
				names = append(names, t.Name)
			}
			names = append(names, src.Index...)
			sb.WriteString("Tables: ")
			sb.WriteString(strings.Join(names, ", "))
			sb.WriteString("\n")
			continue
		}

		sb.WriteString("<!-- SCHEMAS START -->\n")
		for _, t := range src.Ranked {
			renderTable(&sb, t, src.Flat)
		}
		sb.WriteString("<!-- SCHEMAS END -->\n")
		if len(src.Index) > 0 {
			sb.WriteString("Other tables: ")
			sb.WriteString(strings.Join(src.Index, ", "))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderTable(sb *strings.Builder, t RankedTable, flat bool) {
	sb.WriteString("- ")
	sb.WriteString(t.Name)
	if !flat {
		fmt.Fprintf(sb, " (score %.2f)", t.Score)
	}
	if t.Description != "" {
		sb.WriteString(": ")
		sb.WriteString(t.Description)
	}
	sb.WriteString("\n")
	if len(t.Columns) > 0 {
		cols := make([]string, 0, len(t.Columns))
		for _, c := range t.Columns {
			if c.Type != "" {
				cols = append(cols, c.Name+" "+c.Type)
			} else {
				cols = append(cols, c.Name)
			}
		}
		sb.WriteString("    ")
		sb.WriteString(strings.Join(cols, ", "))
		sb.WriteString("\n")
	}
}

// InstructionSection carries the loaded organization instructions. Unlike
// the other sections its render includes the header, because the block
// lands in the system prompt where no section frame is added around it.
type InstructionSection struct {
	Items []LoadedInstruction `json:"items,omitempty"`
}

func (s InstructionSection) Render() string {
	if len(s.Items) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Organization Instructions\n")
	for _, item := range s.Items {
		sb.WriteString("- [")
		sb.WriteString(item.LoadReason)
		sb.WriteString("] ")
		sb.WriteString(item.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Resource is one fetched metadata document (a dbt model description, a
// metric definition, a wiki page).
type Resource struct {
	Repo    string `json:"repo"`
	Path    string `json:"path"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// ResourceSection renders the per-repo Top-K resources plus an index of
// the rest. Compact keeps only the index.
type ResourceSection struct {
	Items   []Resource `json:"items,omitempty"`
	Index   []string   `json:"index,omitempty"`
	Compact bool       `json:"compact,omitempty"`
}

func (s ResourceSection) Render() string {
	if len(s.Items) == 0 && len(s.Index) == 0 {
		return ""
	}
	var sb strings.Builder
	if !s.Compact {
		for _, r := range s.Items {
			sb.WriteString("### ")
			sb.WriteString(r.Repo)
			sb.WriteString("/")
			sb.WriteString(r.Path)
			if r.Title != "" {
				sb.WriteString(" - ")
				sb.WriteString(r.Title)
			}
			sb.WriteString("\n")
			if r.Content != "" {
				sb.WriteString("<!-- RESOURCE START -->\n")
				sb.WriteString(r.Content)
				sb.WriteString("\n<!-- RESOURCE END -->\n")
			}
		}
	}
	index := s.Index
	if s.Compact {
		index = make([]string, 0, len(s.Items)+len(s.Index))
		for _, r := range s.Items {
			index = append(index, r.Repo+"/"+r.Path)
		}
		index = append(index, s.Index...)
	}
	if len(index) > 0 {
		sb.WriteString("Available resources: ")
		sb.WriteString(strings.Join(index, ", "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// CodeSection renders recalled code snippets: what worked on similar
// column sets and what failed, with one-line error excerpts. Compact keeps
// only step identities and scores.
type CodeSection struct {
	Snippets []ScoredSnippet `json:"snippets,omitempty"`
	Failed   []ScoredSnippet `json:"failed,omitempty"`
	Compact  bool            `json:"compact,omitempty"`
}

func (s CodeSection) Render() string {
	if len(s.Snippets) == 0 && len(s.Failed) == 0 {
		return ""
	}
	var sb strings.Builder
	if len(s.Snippets) > 0 {
		sb.WriteString("### Code that worked on similar data\n")
		for _, sn := range s.Snippets {
			fmt.Fprintf(&sb, "- step %s (score %.2f, columns: %s)\n", sn.StepID, sn.Score, strings.Join(sn.Columns, ", "))
			if !s.Compact && sn.Code != "" {
				sb.WriteString("```\n")
				sb.WriteString(sn.Code)
				sb.WriteString("\n```\n")
			}
		}
	}
	if len(s.Failed) > 0 {
		sb.WriteString("### Code that failed on similar data\n")
		for _, sn := range s.Failed {
			fmt.Fprintf(&sb, "- step %s (score %.2f)", sn.StepID, sn.Score)
			if sn.ErrorExcerpt != "" {
				sb.WriteString(": ")
				sb.WriteString(sn.ErrorExcerpt)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// FileSection lists the uploaded files with their inferred schemas.
type FileSection struct {
	Files []models.UploadedFile `json:"files,omitempty"`
}

func (s FileSection) Render() string {
	if len(s.Files) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, f := range s.Files {
		sb.WriteString("- ")
		sb.WriteString(f.Name)
		if f.ContentType != "" {
			sb.WriteString(" (")
			sb.WriteString(f.ContentType)
			sb.WriteString(")")
		}
		if len(f.Schema) > 0 {
			if payload, err := json.Marshal(f.Schema); err == nil {
				sb.WriteString(" schema: ")
				sb.Write(payload)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Warm sections
// ─────────────────────────────────────────────────────────────────────────────

// Message is one prior conversation turn.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// MessageSection renders the recent conversation window, oldest first.
type MessageSection struct {
	Messages []Message `json:"messages,omitempty"`
}

func (s MessageSection) Render() string {
	if len(s.Messages) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, m := range s.Messages {
		sb.WriteString("- ")
		sb.WriteString(m.Role)
		sb.WriteString(": ")
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ObservationSection carries the accumulator's rendering of recent tool
// outcomes.
type ObservationSection struct {
	Count    int    `json:"count"`
	Rendered string `json:"rendered,omitempty"`
}

func (s ObservationSection) Render() string {
	return s.Rendered
}

// WidgetSummary identifies one widget already on the report.
type WidgetSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type,omitempty"`
}

// WidgetSection lists the report's current widgets.
type WidgetSection struct {
	Widgets []WidgetSummary `json:"widgets,omitempty"`
}

func (s WidgetSection) Render() string {
	if len(s.Widgets) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, w := range s.Widgets {
		sb.WriteString("- ")
		sb.WriteString(w.ID)
		sb.WriteString(": ")
		sb.WriteString(w.Title)
		if w.Type != "" {
			sb.WriteString(" (")
			sb.WriteString(w.Type)
			sb.WriteString(")")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// MentionSection lists the current turn's explicit references.
type MentionSection struct {
	Mentions []string `json:"mentions,omitempty"`
}

func (s MentionSection) Render() string {
	return renderList(s.Mentions)
}

// EntitySection lists the entities detected in the current turn.
type EntitySection struct {
	Entities []string `json:"entities,omitempty"`
}

func (s EntitySection) Render() string {
	return renderList(s.Entities)
}

// QueryRecord is one query already executed in this conversation.
type QueryRecord struct {
	Query     string    `json:"query"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// QuerySection lists recent queries, flattened to one line each.
type QuerySection struct {
	Queries []QueryRecord `json:"queries,omitempty"`
}

func (s QuerySection) Render() string {
	if len(s.Queries) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, q := range s.Queries {
		sb.WriteString("- ")
		if q.Source != "" {
			sb.WriteString("[")
			sb.WriteString(q.Source)
			sb.WriteString("] ")
		}
		sb.WriteString(oneLine(q.Query, queryExcerptLimit))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}
