package builtin

import (
	"context"

	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

const executeQuerySchema = `{
	"type": "object",
	"properties": {
		"source": {"type": "string", "description": "Data source name."},
		"query": {"type": "string", "description": "Query to run, in the source's native dialect."}
	},
	"required": ["source", "query"],
	"additionalProperties": false
}`

// ExecuteQuery runs an exploratory query and hands the result to the
// planner through the observation.
type ExecuteQuery struct{}

func (ExecuteQuery) Metadata() tools.Metadata {
	return tools.Metadata{
		Name:           "execute_query",
		Description:    "Run a read-only query against a data source and observe the result. Use for exploration before building widgets.",
		Version:        "1.0.0",
		InputSchema:    executeQuerySchema,
		Category:       tools.CategoryResearch,
		MaxRetries:     2,
		TimeoutSeconds: 120,
		Idempotent:     true,
	}
}

func (ExecuteQuery) RunStream(ctx context.Context, args map[string]any, rtc *tools.RuntimeContext) <-chan tools.Event {
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
		if rtc.Sources == nil {
			send(ctx, ch, tools.Fail(errNoSources))
			return
		}

		if !send(ctx, ch, tools.Start()) {
			return
		}

		res, err := rtc.Sources.Query(ctx, source, query)
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return
		}
		if res.IsError {
			send(ctx, ch, tools.End(
				map[string]any{"source": source, "query": query},
				&models.Observation{
					Summary: "query failed",
					Error: &models.ObservationError{
						Code:    models.ErrCodeExecution,
						Message: excerpt(res.Content, summaryLimit),
					},
					Artifacts: map[string]any{"query": query, "source": source},
				},
			))
			return
		}

		send(ctx, ch, tools.End(
			map[string]any{"source": source, "query": query, "result": res.Content},
			&models.Observation{
				Summary:   excerpt(res.Content, summaryLimit),
				Artifacts: map[string]any{"query": query, "source": source},
			},
		))
	}()
	return ch
}
