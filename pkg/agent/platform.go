package agent

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

// ArtifactPlatform implements tools.Platform over the event stream and the
// usage log. Stage handlers mint artifact ids and announce them; the final
// visualization.updated goes out once per successful run from
// FinalizeArtifacts. Publish failures are logged and swallowed, so a
// stalled event channel never fails a tool that already did its work.
type ArtifactPlatform struct {
	usage  UsageStore
	sink   EventSink
	seqs   ExecutionStore
	logger *slog.Logger
}

func NewArtifactPlatform(usage UsageStore, sink EventSink, seqs ExecutionStore, logger *slog.Logger) *ArtifactPlatform {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArtifactPlatform{
		usage:  usage,
		sink:   sink,
		seqs:   seqs,
		logger: logger.With("component", "artifact_platform"),
	}
}

// CreateDataModel mints the query and step backing the chosen data model
// and announces the query. Replays with ids already minted are no-ops.
func (p *ArtifactPlatform) CreateDataModel(ctx context.Context, scope tools.Scope, state *tools.ArtifactState, detail map[string]any) error {
	if state == nil || state.QueryID != "" {
		return nil
	}
	state.QueryID = uuid.New().String()
	state.StepID = uuid.New().String()

	if state.Query == nil {
		query := map[string]any{}
		if source := stringFrom(detail, "source"); source != "" {
			query["source"] = source
		}
		if sql := stringFrom(detail, "query"); sql != "" {
			query["sql"] = sql
		}
		state.Query = query
	}
	if state.Step == nil {
		state.Step = map[string]any{}
	}
	if t := stringFrom(detail, "data_model_type"); t != "" {
		state.Step["type"] = t
	}

	p.emit(ctx, scope, events.EventTypeQueryCreated, events.ArtifactData{
		ToolExecutionID: scope.ToolExecutionID,
		QueryID:         state.QueryID,
		StepID:          state.StepID,
	})
	return nil
}

// AddColumn appends one column to the step's data model.
func (p *ArtifactPlatform) AddColumn(ctx context.Context, scope tools.Scope, state *tools.ArtifactState, detail map[string]any) error {
	if state == nil {
		return nil
	}
	col, ok := detail["column"]
	if !ok || col == nil {
		return nil
	}
	if state.Step == nil {
		state.Step = map[string]any{}
	}
	cols, _ := state.Step["columns"].([]any)
	state.Step["columns"] = append(cols, col)
	return nil
}

// ConfigureSeries creates the visualization on its first call and folds
// later series into it. Only the creation is announced; the finished shape
// goes out as visualization.updated from FinalizeArtifacts.
func (p *ArtifactPlatform) ConfigureSeries(ctx context.Context, scope tools.Scope, state *tools.ArtifactState, detail map[string]any) error {
	if state == nil {
		return nil
	}
	created := state.VisualizationID == ""
	if created {
		state.VisualizationID = uuid.New().String()
		state.CreatedVisualizationIDs = append(state.CreatedVisualizationIDs, state.VisualizationID)
		state.Visualization = map[string]any{}
	}
	if series, ok := detail["series"]; ok && series != nil {
		existing, _ := state.Visualization["series"].([]any)
		state.Visualization["series"] = append(existing, series)
	}
	if created {
		p.emit(ctx, scope, events.EventTypeVisualizationCreated, events.ArtifactData{
			ToolExecutionID: scope.ToolExecutionID,
			QueryID:         state.QueryID,
			StepID:          state.StepID,
			VisualizationID: state.VisualizationID,
		})
	}
	return nil
}

// PrepareWidget mints the widget hosting the finished visualization. The
// widget id travels on the tool's terminal observation, not its own event.
func (p *ArtifactPlatform) PrepareWidget(ctx context.Context, scope tools.Scope, state *tools.ArtifactState, detail map[string]any) error {
	if state == nil || state.WidgetID != "" {
		return nil
	}
	state.WidgetID = uuid.New().String()
	if title := stringFrom(detail, "title"); title != "" {
		if state.Visualization == nil {
			state.Visualization = map[string]any{}
		}
		state.Visualization["title"] = title
	}
	return nil
}

// FinalizeArtifacts records table usage from the step's query and, on
// success, announces the settled visualization. Failed runs keep their
// usage rows (success=false) so ranking learns from them too.
func (p *ArtifactPlatform) FinalizeArtifacts(ctx context.Context, scope tools.Scope, state *tools.ArtifactState, success bool) error {
	if state == nil {
		return nil
	}

	p.recordUsage(ctx, scope, state, success)

	if success && state.VisualizationID != "" {
		p.emit(ctx, scope, events.EventTypeVisualizationUpdated, events.ArtifactData{
			ToolExecutionID: scope.ToolExecutionID,
			QueryID:         state.QueryID,
			WidgetID:        state.WidgetID,
			StepID:          state.StepID,
			VisualizationID: state.VisualizationID,
		})
	}
	return nil
}

func (p *ArtifactPlatform) recordUsage(ctx context.Context, scope tools.Scope, state *tools.ArtifactState, success bool) {
	if p.usage == nil || state.Query == nil {
		return
	}
	source := stringFrom(state.Query, "source")
	tables := tablesFromSQL(stringFrom(state.Query, "sql"))
	if source == "" || len(tables) == 0 {
		return
	}
	_, err := p.usage.RecordTableUsage(ctx, models.RecordTableUsageRequest{
		OrganizationID:   scope.OrganizationID,
		Datasource:       source,
		Tables:           tables,
		Success:          success,
		StepID:           state.StepID,
		AgentExecutionID: scope.AgentExecutionID,
	})
	if err != nil {
		p.logger.Warn("Failed to record table usage",
			"datasource", source, "tables", len(tables), "error", err)
	}
}

// emit publishes one artifact frame at a fresh seq. A failed seq allocation
// skips the frame; the ids still reach clients on the tool's terminal row.
func (p *ArtifactPlatform) emit(ctx context.Context, scope tools.Scope, event string, data events.ArtifactData) {
	if p.sink == nil {
		return
	}
	seq, err := p.seqs.NextSeq(ctx, scope.AgentExecutionID)
	if err != nil {
		p.logger.Warn("Seq allocation failed, skipping artifact event",
			"event", event, "agent_execution_id", scope.AgentExecutionID, "error", err)
		return
	}
	payload := events.ArtifactPayload{
		BasePayload: events.NewBase(event, scope.CompletionID, scope.AgentExecutionID, seq),
		Data:        data,
	}
	if err := p.sink.PublishArtifact(ctx, payload); err != nil {
		p.logger.Warn("Event publish failed", "event", event, "completion_id", scope.CompletionID, "error", err)
	}
}

var tablePattern = regexp.MustCompile(`(?i)\b(?:from|join)\s+([A-Za-z_][\w.]*)`)

// tablesFromSQL extracts the table identifiers a query reads, in order of
// first mention. Subqueries contribute their inner tables through the same
// scan; CTE names slip through and simply never match a catalog entry.
func tablesFromSQL(sql string) []string {
	if sql == "" {
		return nil
	}
	matches := tablePattern.FindAllStringSubmatch(sql, -1)
	seen := make(map[string]bool, len(matches))
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimRight(m[1], ".")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		tables = append(tables, name)
	}
	return tables
}
