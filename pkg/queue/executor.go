package queue

import (
	"context"

	"github.com/quarryhq/quarry/pkg/agent"
)

// LoopExecutor adapts the agent loop to the RunExecutor interface consumed
// by workers.
type LoopExecutor struct {
	loop *agent.Loop
}

// NewLoopExecutor creates the production executor backed by the agent runtime.
func NewLoopExecutor(rt *agent.Runtime) *LoopExecutor {
	return &LoopExecutor{loop: agent.NewLoop(rt)}
}

// Execute runs one completion through the agent loop.
func (e *LoopExecutor) Execute(ctx context.Context, run *agent.Run) error {
	return e.loop.Run(ctx, run)
}
