package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

const widgetSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string", "description": "Widget title shown on the report."},
		"source": {"type": "string", "description": "Data source backing the widget."},
		"query": {"type": "string", "description": "Query producing the widget's data."},
		"data_model": {
			"type": "object",
			"properties": {
				"type": {"type": "string", "description": "Data model type, e.g. bar, line, table, metric."},
				"columns": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"name": {"type": "string"},
							"type": {"type": "string"},
							"expression": {"type": "string"}
						},
						"required": ["name"]
					}
				},
				"series": {"type": "array", "items": {"type": "object"}}
			},
			"required": ["type"]
		}
	},
	"required": ["source", "query", "data_model"],
	"additionalProperties": false
}`

// Query attempts within one widget build. Each failed attempt lands in the
// result's errors list so reviewers can see the recovery path.
const widgetQueryAttempts = 3

// CreateWidget builds a report widget: it walks the stage progression that
// creates the query, step, and visualization, executes the backing query,
// and publishes the finished widget through the platform.
type CreateWidget struct{}

func (CreateWidget) Metadata() tools.Metadata {
	return tools.Metadata{
		Name:           "create_widget",
		Description:    "Create a report widget from a data model and query. Emits the widget build stages and returns the created artifact ids.",
		Version:        "1.0.0",
		InputSchema:    widgetSchema,
		Category:       tools.CategoryAction,
		MaxRetries:     1,
		TimeoutSeconds: 180,
	}
}

func (CreateWidget) RunStream(ctx context.Context, args map[string]any, rtc *tools.RuntimeContext) <-chan tools.Event {
	ch := make(chan tools.Event)
	go func() {
		defer close(ch)
		source, err := requireString(args, "source")
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return
		}
		query, err := requireString(args, "query")
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return
		}
		dataModel := mapArg(args, "data_model")
		if dataModel == nil {
			send(ctx, ch, tools.Fail(fmt.Errorf("missing required argument %q", "data_model")))
			return
		}
		title := stringArg(args, "title")
		if title == "" {
			title = "Untitled widget"
		}

		if rtc.Sources == nil {
			send(ctx, ch, tools.Fail(errNoSources))
			return
		}
		state := rtc.Artifacts
		if state == nil {
			state = &tools.ArtifactState{}
			rtc.Artifacts = state
		}
		state.Query = map[string]any{"source": source, "sql": query}

		if !send(ctx, ch, tools.Start()) {
			return
		}

		// Stage progression. The runner routes each stage to its platform
		// handler before the event reaches subscribers.
		if !send(ctx, ch, tools.Progress(tools.StageDataModelTypeDetermined, map[string]any{
			"data_model_type": stringArg(dataModel, "type"),
			"source":          source,
			"query":           query,
			"title":           title,
		})) {
			return
		}
		for _, col := range sliceArg(dataModel, "columns") {
			if !send(ctx, ch, tools.Progress(tools.StageColumnAdded, map[string]any{"column": col})) {
				return
			}
		}
		for i, series := range sliceArg(dataModel, "series") {
			if !send(ctx, ch, tools.Progress(tools.StageSeriesConfigured, map[string]any{
				"index":  i,
				"series": series,
			})) {
				return
			}
		}
		if !send(ctx, ch, tools.Progress(tools.StageWidgetCreationNeeded, map[string]any{"title": title})) {
			return
		}

		widgetData, ok, aborted := runWidgetQuery(ctx, ch, rtc, state, source, query)
		if aborted {
			return
		}
		if !ok {
			last := ""
			if len(state.Errors) > 0 {
				last = state.Errors[len(state.Errors)-1]
			}
			send(ctx, ch, tools.End(
				widgetOutput(state, title),
				&models.Observation{
					Summary: "widget query failed",
					Error: &models.ObservationError{
						Code:    models.ErrCodeExecution,
						Message: last,
					},
					Artifacts: map[string]any{"data_model": dataModel, "errors": state.ErrorList()},
				},
			))
			return
		}

		send(ctx, ch, tools.End(
			widgetOutputWithData(state, title, widgetData),
			&models.Observation{
				Summary: fmt.Sprintf("created widget %q from %s", title, source),
				Artifacts: map[string]any{
					"data_model": dataModel,
					"errors":     state.ErrorList(),
				},
			},
		))
	}()
	return ch
}

// runWidgetQuery executes the backing query with bounded internal retries.
// Failed attempts accumulate in state.Errors; only error content that looks
// transient earns another attempt. ok reports a usable result, aborted means
// a transport failure was already sent and the run must stop.
func runWidgetQuery(ctx context.Context, ch chan<- tools.Event, rtc *tools.RuntimeContext, state *tools.ArtifactState, source, query string) (data string, ok, aborted bool) {
	for attempt := 1; attempt <= widgetQueryAttempts; attempt++ {
		res, err := rtc.Sources.Query(ctx, source, query)
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return "", false, true
		}
		if !res.IsError {
			return res.Content, true, false
		}
		state.AddError(excerpt(res.Content, 300))
		if !transientResult(res.Content) {
			break
		}
	}
	return "", false, false
}

// transientResult reports whether a data-source error message is worth an
// immediate retry. Logic errors like bad SQL are not.
func transientResult(content string) bool {
	lower := strings.ToLower(content)
	for _, marker := range []string{
		"timeout",
		"timed out",
		"deadlock",
		"connection",
		"temporarily unavailable",
		"too many requests",
		"try again",
	} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Artifact ids are stamped onto the output by the runtime once the stage
// handlers have settled; the tool only reports what it owns.
func widgetOutput(state *tools.ArtifactState, title string) map[string]any {
	return map[string]any{
		"errors": state.ErrorList(),
		"title":  title,
	}
}

func widgetOutputWithData(state *tools.ArtifactState, title, data string) map[string]any {
	out := widgetOutput(state, title)
	out["widget_data"] = data
	return out
}
