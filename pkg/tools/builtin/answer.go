package builtin

import (
	"context"

	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

const answerSchema = `{
	"type": "object",
	"properties": {
		"answer": {"type": "string", "description": "The full answer to stream to the user."}
	},
	"required": ["answer"],
	"additionalProperties": false
}`

// AnswerQuestion delivers the planner's final answer as streamed text. It is
// terminal: the decision that selects it also sets analysis_complete.
type AnswerQuestion struct{}

func (AnswerQuestion) Metadata() tools.Metadata {
	return tools.Metadata{
		Name:              "answer_question",
		Description:       "Answer the user's question directly with text. Use when no data work is needed or the analysis is already complete.",
		Version:           "1.0.0",
		InputSchema:       answerSchema,
		Category:          tools.CategoryBoth,
		TimeoutSeconds:    60,
		Idempotent:        true,
		ObservationPolicy: tools.ObserveNever,
		Tags:              []string{"terminal"},
	}
}

func (AnswerQuestion) RunStream(ctx context.Context, args map[string]any, rtc *tools.RuntimeContext) <-chan tools.Event {
	ch := make(chan tools.Event)
	go func() {
		defer close(ch)
		answer, err := requireString(args, "answer")
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return
		}

		if !send(ctx, ch, tools.Start()) {
			return
		}
		for _, chunk := range chunkText(answer, 240) {
			if !send(ctx, ch, tools.Partial(chunk)) {
				return
			}
		}

		complete := true
		send(ctx, ch, tools.End(
			map[string]any{"answer": answer},
			&models.Observation{
				Summary:          excerpt(answer, summaryLimit),
				AnalysisComplete: &complete,
				FinalAnswer:      answer,
			},
		))
	}()
	return ch
}
