package builtin

import (
	"context"

	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

const describeSchema = `{
	"type": "object",
	"properties": {
		"source": {"type": "string", "description": "Data source name."},
		"table": {"type": "string", "description": "Table to describe."}
	},
	"required": ["source", "table"],
	"additionalProperties": false
}`

// DescribeTable reads a table's live definition from the data source,
// complementing the ranked schema context with current detail.
type DescribeTable struct{}

func (DescribeTable) Metadata() tools.Metadata {
	return tools.Metadata{
		Name:           "describe_table",
		Description:    "Fetch the current columns, types, and row estimates for one table from a data source.",
		Version:        "1.0.0",
		InputSchema:    describeSchema,
		Category:       tools.CategoryResearch,
		MaxRetries:     1,
		TimeoutSeconds: 60,
		Idempotent:     true,
	}
}

func (DescribeTable) RunStream(ctx context.Context, args map[string]any, rtc *tools.RuntimeContext) <-chan tools.Event {
	ch := make(chan tools.Event)
	go func() {
		defer close(ch)
		source, err := requireString(args, "source")
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return
		}
		table, err := requireString(args, "table")
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

		res, err := rtc.Sources.Execute(ctx, source, "describe_table", map[string]any{"table": table})
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return
		}
		if res.IsError {
			send(ctx, ch, tools.End(
				map[string]any{"source": source, "table": table},
				&models.Observation{
					Summary: "describe_table failed for " + table,
					Error: &models.ObservationError{
						Code:    models.ErrCodeExecution,
						Message: excerpt(res.Content, summaryLimit),
					},
				},
			))
			return
		}

		send(ctx, ch, tools.End(
			map[string]any{"source": source, "table": table, "description": res.Content},
			&models.Observation{
				Summary:   excerpt(res.Content, summaryLimit),
				Artifacts: map[string]any{"source": source, "table": table},
			},
		))
	}()
	return ch
}
