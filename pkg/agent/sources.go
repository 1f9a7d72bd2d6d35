package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/pkg/contexthub"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

// How many historical tool rows the snippet and conversation adapters pull
// before mapping. Selection and budgeting happen in the hub, not here.
const (
	snippetFetchLimit      = 100
	conversationFetchLimit = 50
)

// UsageReader reads recorded table usage.
type UsageReader interface {
	RecentUsage(ctx context.Context, organizationID, datasource string, since time.Time) ([]*ent.TableUsage, error)
}

// InstructionReader reads the organization's active instructions.
type InstructionReader interface {
	ActiveInstructions(ctx context.Context, organizationID string) ([]*ent.Instruction, error)
}

// SnippetReader reads the historical tool rows backing code recall.
type SnippetReader interface {
	RecentSuccessfulByTool(ctx context.Context, organizationID, toolName string, limit int) ([]*ent.ToolExecution, error)
}

// ConversationReader reads the report's completion history.
type ConversationReader interface {
	ListCompletions(ctx context.Context, filters models.CompletionFilters) (*models.CompletionListResponse, error)
}

// ReportToolReader reads the report's successful tool rows across runs.
type ReportToolReader interface {
	RecentSuccessfulInReport(ctx context.Context, reportID string, limit int) ([]*ent.ToolExecution, error)
}

// NewHubSources assembles the context hub's providers from the data-source
// gateway, the service layer, and the resource fetcher. Any nil input
// leaves the corresponding section empty.
func NewHubSources(
	data tools.DataSources,
	usage UsageReader,
	instructions InstructionReader,
	snippets SnippetReader,
	completions ConversationReader,
	reportTools ReportToolReader,
	resources contexthub.ResourceSource,
	logger *slog.Logger,
) contexthub.Sources {
	if logger == nil {
		logger = slog.Default()
	}
	s := contexthub.Sources{Resources: resources}
	if data != nil {
		s.Schema = &schemaSource{data: data, logger: logger.With("component", "schema_source")}
	}
	if usage != nil {
		s.Usage = &usageSource{usage: usage}
	}
	if instructions != nil {
		s.Instructions = &instructionSource{instructions: instructions}
	}
	if snippets != nil {
		s.Snippets = &snippetSource{tools: snippets}
	}
	if completions != nil || reportTools != nil {
		s.Conversation = &conversationSource{completions: completions, tools: reportTools}
	}
	return s
}

// schemaSource builds the table catalog by asking every connected data
// source for its tables. Sources that fail to answer are skipped so one
// broken connection does not blank the whole schema section.
type schemaSource struct {
	data   tools.DataSources
	logger *slog.Logger
}

// catalogTable is the JSON shape the list_tables source tool returns.
type catalogTable struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Columns     []struct {
		Name string `json:"name"`
		Type string `json:"type,omitempty"`
	} `json:"columns,omitempty"`
}

func (s *schemaSource) Schemas(ctx context.Context, organizationID string) (map[string][]contexthub.TableSchema, error) {
	names := s.data.Sources()
	catalogs := make(map[string][]contexthub.TableSchema, len(names))
	var firstErr error
	for _, source := range names {
		res, err := s.data.Execute(ctx, source, "list_tables", nil)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			s.logger.Warn("Failed to list tables", "source", source, "error", err)
			continue
		}
		if res.IsError {
			s.logger.Warn("list_tables returned an error", "source", source, "detail", res.Content)
			continue
		}
		var listed []catalogTable
		if err := json.Unmarshal([]byte(res.Content), &listed); err != nil {
			s.logger.Warn("Unparseable table catalog", "source", source, "error", err)
			continue
		}
		schemas := make([]contexthub.TableSchema, 0, len(listed))
		for _, t := range listed {
			if t.Name == "" {
				continue
			}
			schema := contexthub.TableSchema{
				Source:      source,
				Name:        t.Name,
				Description: t.Description,
			}
			for _, c := range t.Columns {
				schema.Columns = append(schema.Columns, contexthub.TableColumn{Name: c.Name, Type: c.Type})
			}
			schemas = append(schemas, schema)
		}
		catalogs[source] = schemas
	}
	if len(catalogs) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return catalogs, nil
}

type usageSource struct {
	usage UsageReader
}

func (s *usageSource) Usage(ctx context.Context, organizationID, datasource string, since time.Time) ([]contexthub.UsageEvent, error) {
	rows, err := s.usage.RecentUsage(ctx, organizationID, datasource, since)
	if err != nil {
		return nil, err
	}
	events := make([]contexthub.UsageEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, contexthub.UsageEvent{
			TableName: row.TableName,
			Success:   row.Success,
			Feedback:  row.Feedback,
			CreatedAt: row.CreatedAt,
		})
	}
	return events, nil
}

type instructionSource struct {
	instructions InstructionReader
}

func (s *instructionSource) ActiveInstructions(ctx context.Context, organizationID string) ([]contexthub.Instruction, error) {
	rows, err := s.instructions.ActiveInstructions(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	items := make([]contexthub.Instruction, 0, len(rows))
	for _, row := range rows {
		items = append(items, contexthub.Instruction{
			ID:       row.ID,
			Text:     row.Text,
			Category: deref(row.Category),
			LoadMode: string(row.LoadMode),
		})
	}
	return items, nil
}

// snippetSource derives the code recall corpus from historical
// create_and_execute_code rows. Rows arrive newest first; one snippet per
// step, counting repeat runs and carrying the latest internal error.
type snippetSource struct {
	tools SnippetReader
}

func (s *snippetSource) Snippets(ctx context.Context, organizationID string) ([]contexthub.Snippet, error) {
	rows, err := s.tools.RecentSuccessfulByTool(ctx, organizationID, "create_and_execute_code", snippetFetchLimit)
	if err != nil {
		return nil, err
	}
	byStep := make(map[string]int)
	snippets := make([]contexthub.Snippet, 0, len(rows))
	for _, row := range rows {
		stepID := deref(row.CreatedStepID)
		if stepID == "" {
			continue
		}
		errs := stringsFrom(row.ResultJSON, "errors")
		if i, seen := byStep[stepID]; seen {
			snippets[i].Successes++
			snippets[i].Failures += len(errs)
			continue
		}
		sn := contexthub.Snippet{
			StepID:     stepID,
			Code:       stringFrom(row.Arguments, "code"),
			Columns:    stringsFrom(row.ResultJSON, "columns"),
			Successes:  1,
			Failures:   len(errs),
			LastUsedAt: row.StartedAt,
		}
		if row.CompletedAt != nil {
			sn.LastUsedAt = *row.CompletedAt
		}
		if len(errs) > 0 {
			sn.LastError = errs[len(errs)-1]
		}
		byStep[stepID] = len(snippets)
		snippets = append(snippets, sn)
	}
	return snippets, nil
}

// conversationSource reads the report's dialogue and artifacts back out of
// completion and tool rows.
type conversationSource struct {
	completions ConversationReader
	tools       ReportToolReader
}

func (s *conversationSource) RecentMessages(ctx context.Context, reportID string, limit int) ([]contexthub.Message, error) {
	if s.completions == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = conversationFetchLimit
	}
	resp, err := s.completions.ListCompletions(ctx, models.CompletionFilters{ReportID: reportID, Limit: limit})
	if err != nil {
		return nil, err
	}
	// Rows come newest first; the window renders oldest first. Unfinished
	// rows are the in-flight turn and stay out of its own context.
	messages := make([]contexthub.Message, 0, 2*len(resp.Completions))
	for i := len(resp.Completions) - 1; i >= 0; i-- {
		row := resp.Completions[i]
		switch row.Status {
		case "completed", "stopped", "error":
		default:
			continue
		}
		prompt := models.PromptSpecFromMap(row.Prompt)
		if prompt.Content != "" {
			messages = append(messages, contexthub.Message{
				Role:      "user",
				Content:   prompt.Content,
				CreatedAt: row.CreatedAt,
			})
		}
		if content := deref(row.Content); content != "" {
			messages = append(messages, contexthub.Message{
				Role:      "assistant",
				Content:   content,
				CreatedAt: row.CreatedAt,
			})
		}
	}
	return messages, nil
}

func (s *conversationSource) Widgets(ctx context.Context, reportID string) ([]contexthub.WidgetSummary, error) {
	if s.tools == nil {
		return nil, nil
	}
	rows, err := s.tools.RecentSuccessfulInReport(ctx, reportID, conversationFetchLimit)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	widgets := make([]contexthub.WidgetSummary, 0, len(rows))
	for _, row := range rows {
		id := deref(row.CreatedWidgetID)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		w := contexthub.WidgetSummary{
			ID:    id,
			Title: stringFrom(row.Arguments, "title"),
		}
		if dm, ok := row.Arguments["data_model"].(map[string]any); ok {
			w.Type = stringFrom(dm, "type")
		}
		widgets = append(widgets, w)
	}
	return widgets, nil
}

func (s *conversationSource) RecentQueries(ctx context.Context, reportID string, limit int) ([]contexthub.QueryRecord, error) {
	if s.tools == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = conversationFetchLimit
	}
	rows, err := s.tools.RecentSuccessfulInReport(ctx, reportID, conversationFetchLimit)
	if err != nil {
		return nil, err
	}
	queries := make([]contexthub.QueryRecord, 0, limit)
	for _, row := range rows {
		query := stringFrom(row.Arguments, "query")
		if query == "" {
			continue
		}
		queries = append(queries, contexthub.QueryRecord{
			Query:     query,
			Source:    stringFrom(row.Arguments, "source"),
			CreatedAt: row.StartedAt,
		})
		if len(queries) == limit {
			break
		}
	}
	return queries, nil
}

func stringFrom(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// deref safely dereferences a *string, returning "" if nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func stringsFrom(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
