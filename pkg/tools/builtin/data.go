package builtin

import (
	"context"
	"fmt"

	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

const createDataSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string", "description": "Title for the data section."},
		"source": {"type": "string", "description": "Data source backing the blocks."},
		"query": {"type": "string", "description": "Query producing the data."},
		"blocks": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"type": {"type": "string"},
					"title": {"type": "string"}
				}
			},
			"description": "Dashboard data blocks to derive from the result. One summary block when omitted."
		}
	},
	"required": ["source", "query"],
	"additionalProperties": false
}`

// CreateData materializes query results as dashboard data blocks. Block
// completion is stream-only: subscribers see each block land, but no
// collaborator call hangs off the stage.
type CreateData struct{}

func (CreateData) Metadata() tools.Metadata {
	return tools.Metadata{
		Name:           "create_data",
		Description:    "Run a query and publish its result as dashboard data blocks on the report.",
		Version:        "1.0.0",
		InputSchema:    createDataSchema,
		Category:       tools.CategoryAction,
		MaxRetries:     1,
		TimeoutSeconds: 180,
	}
}

func (CreateData) RunStream(ctx context.Context, args map[string]any, rtc *tools.RuntimeContext) <-chan tools.Event {
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
		title := stringArg(args, "title")
		if title == "" {
			title = "Data"
		}
		blocks := sliceArg(args, "blocks")
		if len(blocks) == 0 {
			blocks = []any{map[string]any{"type": "summary", "title": title}}
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
		if !send(ctx, ch, tools.Progress(tools.StageDataModelTypeDetermined, map[string]any{
			"data_model_type": "data",
			"source":          source,
			"query":           query,
			"title":           title,
		})) {
			return
		}

		res, err := rtc.Sources.Query(ctx, source, query)
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return
		}
		if res.IsError {
			state.AddError(excerpt(res.Content, 300))
			send(ctx, ch, tools.End(
				map[string]any{"errors": state.ErrorList()},
				&models.Observation{
					Summary: "data query failed",
					Error: &models.ObservationError{
						Code:    models.ErrCodeExecution,
						Message: excerpt(res.Content, summaryLimit),
					},
				},
			))
			return
		}

		for i, block := range blocks {
			if !send(ctx, ch, tools.Progress(tools.StageBlockCompleted, map[string]any{
				"index": i,
				"block": block,
			})) {
				return
			}
		}

		send(ctx, ch, tools.End(
			map[string]any{
				"blocks": len(blocks),
				"data":   res.Content,
				"errors": state.ErrorList(),
			},
			&models.Observation{
				Summary:   fmt.Sprintf("published %d data block(s) from %s", len(blocks), source),
				Artifacts: map[string]any{"blocks": len(blocks), "source": source},
			},
		))
	}()
	return ch
}
