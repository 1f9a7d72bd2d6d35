package agent

import (
	"sync/atomic"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/pkg/models"
)

// Signal is the per-run sigkill flag. The listener goroutine sets it when an
// update_completion frame names this completion; the loop polls it at every
// suspension point. Setting it twice is harmless.
type Signal struct {
	fired atomic.Bool
}

// Set raises the signal.
func (s *Signal) Set() {
	s.fired.Store(true)
}

// Signalled reports whether the signal has been raised.
func (s *Signal) Signalled() bool {
	return s.fired.Load()
}

// Run identifies one claimed completion turn. The queue builds it after the
// claim transaction commits and hands it to Loop.Run.
type Run struct {
	Completion *ent.Completion
	Prompt     models.PromptSpec
	Sigkill    *Signal
}

// NewRun builds a Run from a claimed completion row, decoding the stored
// prompt payload.
func NewRun(completion *ent.Completion) *Run {
	return &Run{
		Completion: completion,
		Prompt:     models.PromptSpecFromMap(completion.Prompt),
		Sigkill:    &Signal{},
	}
}
