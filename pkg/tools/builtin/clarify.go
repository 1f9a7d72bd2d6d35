package builtin

import (
	"context"

	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

const clarifySchema = `{
	"type": "object",
	"properties": {
		"question": {"type": "string", "description": "The clarifying question to put to the user."}
	},
	"required": ["question"],
	"additionalProperties": false
}`

// Clarify ends the turn by asking the user a question instead of acting on
// an ambiguous request.
type Clarify struct{}

func (Clarify) Metadata() tools.Metadata {
	return tools.Metadata{
		Name:              "clarify",
		Description:       "Ask the user a clarifying question when the request is ambiguous or missing details needed to proceed.",
		Version:           "1.0.0",
		InputSchema:       clarifySchema,
		Category:          tools.CategoryBoth,
		TimeoutSeconds:    30,
		Idempotent:        true,
		ObservationPolicy: tools.ObserveNever,
		Tags:              []string{"terminal"},
	}
}

func (Clarify) RunStream(ctx context.Context, args map[string]any, rtc *tools.RuntimeContext) <-chan tools.Event {
	ch := make(chan tools.Event)
	go func() {
		defer close(ch)
		question, err := requireString(args, "question")
		if err != nil {
			send(ctx, ch, tools.Fail(err))
			return
		}

		if !send(ctx, ch, tools.Start()) {
			return
		}
		if !send(ctx, ch, tools.Partial(question)) {
			return
		}

		complete := true
		send(ctx, ch, tools.End(
			map[string]any{"question": question},
			&models.Observation{
				Summary:          "asked the user: " + excerpt(question, summaryLimit),
				AnalysisComplete: &complete,
				FinalAnswer:      question,
			},
		))
	}()
	return ch
}
