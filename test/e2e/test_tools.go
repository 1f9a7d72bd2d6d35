package e2e

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

// echoTool succeeds immediately and echoes its arguments back in the output.
type echoTool struct{}

func (echoTool) Metadata() tools.Metadata {
	return tools.Metadata{
		Name:        "echo",
		Description: "Echo the arguments back.",
		Version:     "1.0.0",
		InputSchema: `{"type":"object"}`,
		Category:    tools.CategoryResearch,
	}
}

func (echoTool) RunStream(ctx context.Context, args map[string]any, _ *tools.RuntimeContext) <-chan tools.Event {
	ch := make(chan tools.Event, 2)
	ch <- tools.Start()
	ch <- tools.End(
		map[string]any{"echo": args},
		&models.Observation{Summary: fmt.Sprintf("echoed %d argument(s)", len(args))},
	)
	close(ch)
	return ch
}

// brokenTool always finishes with an execution failure.
type brokenTool struct{}

func (brokenTool) Metadata() tools.Metadata {
	return tools.Metadata{
		Name:        "broken_query",
		Description: "Always fails with an execution error.",
		Version:     "1.0.0",
		InputSchema: `{"type":"object"}`,
		Category:    tools.CategoryResearch,
	}
}

func (brokenTool) RunStream(ctx context.Context, _ map[string]any, _ *tools.RuntimeContext) <-chan tools.Event {
	ch := make(chan tools.Event, 2)
	ch <- tools.Start()
	ch <- tools.End(
		map[string]any{},
		&models.Observation{
			Summary: "query execution failed",
			Error: &models.ObservationError{
				Code:    models.ErrCodeExecution,
				Message: "relation does not exist",
			},
		},
	)
	close(ch)
	return ch
}

// blockingTool signals started and then holds the stream open until the run
// context is cancelled.
type blockingTool struct {
	started chan<- struct{}
}

func (blockingTool) Metadata() tools.Metadata {
	return tools.Metadata{
		Name:        "long_export",
		Description: "Blocks until cancelled.",
		Version:     "1.0.0",
		InputSchema: `{"type":"object"}`,
		Category:    tools.CategoryResearch,
	}
}

func (b blockingTool) RunStream(ctx context.Context, _ map[string]any, _ *tools.RuntimeContext) <-chan tools.Event {
	ch := make(chan tools.Event, 1)
	ch <- tools.Start()
	if b.started != nil {
		b.started <- struct{}{}
	}
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}

// silentTool never emits any event, so the runner's start timer fires.
type silentTool struct {
	maxRetries int
	calls      *atomic.Int32 // optional invocation counter
	failFirst  bool          // stay silent only on the first call
}

func (s silentTool) Metadata() tools.Metadata {
	return tools.Metadata{
		Name:        "slow_probe",
		Description: "Emits nothing until its attempts run out.",
		Version:     "1.0.0",
		InputSchema: `{"type":"object"}`,
		Category:    tools.CategoryResearch,
		MaxRetries:  s.maxRetries,
		Idempotent:  true,
	}
}

func (s silentTool) RunStream(ctx context.Context, _ map[string]any, _ *tools.RuntimeContext) <-chan tools.Event {
	call := int32(1)
	if s.calls != nil {
		call = s.calls.Add(1)
	}

	if s.failFirst && call > 1 {
		ch := make(chan tools.Event, 2)
		ch <- tools.Start()
		ch <- tools.End(
			map[string]any{"attempt": call},
			&models.Observation{Summary: "probe responded"},
		)
		close(ch)
		return ch
	}

	ch := make(chan tools.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}
