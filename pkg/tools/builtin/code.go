package builtin

import (
	"context"
	"strings"

	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

const executeCodeSchema = `{
	"type": "object",
	"properties": {
		"source": {"type": "string", "description": "Data source whose runtime executes the code."},
		"code": {"type": "string", "description": "Code to run."},
		"language": {"type": "string", "description": "Language hint, defaults to python."}
	},
	"required": ["source", "code"],
	"additionalProperties": false
}`

// Stdout lines streamed before the rest is folded into the result.
const maxStdoutLines = 50

// CreateAndExecuteCode runs planner-written code in a data source's runtime
// and records the resulting step. Successful and failed runs both feed the
// snippet corpora that ground later code generation.
type CreateAndExecuteCode struct{}

func (CreateAndExecuteCode) Metadata() tools.Metadata {
	return tools.Metadata{
		Name:           "create_and_execute_code",
		Description:    "Create a code step and execute it in the data source's runtime. Use for transformations a single query cannot express.",
		Version:        "1.0.0",
		InputSchema:    executeCodeSchema,
		Category:       tools.CategoryAction,
		TimeoutSeconds: 300,
	}
}

func (CreateAndExecuteCode) RunStream(ctx context.Context, args map[string]any, rtc *tools.RuntimeContext) <-chan tools.Event {
	ch := make(chan tools.Event)
	go func() {
		defer close(ch)
		source, err := requireString(args, "source")
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return
		}
		code, err := requireString(args, "code")
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return
		}
		if rtc.Sources == nil {
			send(ctx, ch, tools.Fail(errNoSources))
			return
		}
		language := stringArg(args, "language")
		if language == "" {
			language = "python"
		}

		state := rtc.Artifacts
		if state == nil {
			state = &tools.ArtifactState{}
			rtc.Artifacts = state
		}
		state.Step = map[string]any{"language": language, "code": code}

		if !send(ctx, ch, tools.Start()) {
			return
		}
		if !send(ctx, ch, tools.Progress(tools.StageDataModelTypeDetermined, map[string]any{
			"data_model_type": "code",
			"source":          source,
			"language":        language,
		})) {
			return
		}

		res, err := rtc.Sources.Execute(ctx, source, "execute_code", map[string]any{
			"code":     code,
			"language": language,
		})
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return
		}

		lines := strings.Split(strings.TrimRight(res.Content, "\n"), "\n")
		for i, line := range lines {
			if i == maxStdoutLines {
				break
			}
			if !send(ctx, ch, tools.Stdout(line)) {
				return
			}
		}

		if res.IsError {
			state.AddError(excerpt(res.Content, 300))
			send(ctx, ch, tools.End(
				map[string]any{
					"language": language,
					"stdout":   res.Content,
					"errors":   state.ErrorList(),
				},
				&models.Observation{
					Summary: "code execution failed",
					Error: &models.ObservationError{
						Code:    models.ErrCodeExecution,
						Message: excerpt(res.Content, summaryLimit),
					},
					Artifacts: map[string]any{"language": language, "source": source},
				},
			))
			return
		}

		send(ctx, ch, tools.End(
			map[string]any{
				"language": language,
				"stdout":   res.Content,
				"errors":   state.ErrorList(),
			},
			&models.Observation{
				Summary:   "code executed: " + excerpt(res.Content, summaryLimit),
				Artifacts: map[string]any{"language": language, "source": source},
			},
		))
	}()
	return ch
}
