package tools

import "github.com/quarryhq/quarry/pkg/models"

// EventKind tags one frame of a tool's run stream.
type EventKind string

const (
	EventStart    EventKind = "tool.start"
	EventProgress EventKind = "tool.progress"
	EventPartial  EventKind = "tool.partial"
	EventStdout   EventKind = "tool.stdout"
	EventEnd      EventKind = "tool.end"
	EventError    EventKind = "tool.error"
)

// Event is one frame of a tool's run stream. A well-behaved run emits
// EventStart, any number of progress/partial/stdout frames, and exactly one
// EventEnd carrying the observation. EventError aborts the attempt. A stream
// that closes without EventEnd or EventError is an execution failure.
type Event struct {
	Kind EventKind

	// Stage and Detail accompany EventProgress. Stage names drive the
	// side-effect handlers.
	Stage  string
	Detail map[string]any

	// Text accompanies EventPartial and EventStdout.
	Text string

	// Output and Observation accompany EventEnd. Observation is mandatory.
	Output      map[string]any
	Observation *models.Observation

	// Err accompanies EventError.
	Err error
}

// Frame constructors keep tool implementations terse.

func Start() Event { return Event{Kind: EventStart} }

func Progress(stage string, detail map[string]any) Event {
	return Event{Kind: EventProgress, Stage: stage, Detail: detail}
}

func Partial(text string) Event { return Event{Kind: EventPartial, Text: text} }

func Stdout(line string) Event { return Event{Kind: EventStdout, Text: line} }

func End(output map[string]any, obs *models.Observation) Event {
	return Event{Kind: EventEnd, Output: output, Observation: obs}
}

func Fail(err error) Event { return Event{Kind: EventError, Err: err} }
