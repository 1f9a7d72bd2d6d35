package agent

import (
	"encoding/json"
	"fmt"
)

// loopState carries the counters and breaker history for one run.
type loopState struct {
	// invalidRetries counts planner-side recoverable failures: input
	// validation, malformed output, and missing actions share one budget.
	invalidRetries int

	// failedTools counts error observations per tool name.
	failedTools map[string]int

	// actionHistory holds fingerprints of successful actions in order.
	actionHistory []string

	// analysisComplete latches once the planner or a breaker ends the run.
	analysisComplete bool

	// finalAnswer holds the text behind analysisComplete, including
	// breaker-synthesized summaries.
	finalAnswer string

	// usedCreateWidget and widgetRecovered feed the suggestion trigger:
	// the first marks any create_widget invocation this run, the second a
	// create_widget that succeeded with a non-empty internal error list.
	usedCreateWidget bool
	widgetRecovered  bool
}

func newLoopState() *loopState {
	return &loopState{failedTools: make(map[string]int)}
}

// recordFailure bumps the failure count for a tool and returns the new
// count.
func (s *loopState) recordFailure(toolName string) int {
	s.failedTools[toolName]++
	return s.failedTools[toolName]
}

// recordSuccess appends the action fingerprint to the history.
func (s *loopState) recordSuccess(toolName string, args map[string]any) {
	s.actionHistory = append(s.actionHistory, actionFingerprint(toolName, args))
}

// repeatedSuccesses reports whether the last n history entries are
// identical. Always false for n < 2 or a shorter history.
func (s *loopState) repeatedSuccesses(n int) bool {
	if n < 2 || len(s.actionHistory) < n {
		return false
	}
	last := s.actionHistory[len(s.actionHistory)-1]
	for i := len(s.actionHistory) - n; i < len(s.actionHistory); i++ {
		if s.actionHistory[i] != last {
			return false
		}
	}
	return true
}

// finish latches the terminal answer. The first answer wins; later breaker
// firings in the same iteration do not overwrite it.
func (s *loopState) finish(answer string) {
	if s.analysisComplete {
		return
	}
	s.analysisComplete = true
	s.finalAnswer = answer
}

// actionFingerprint identifies a tool invocation by name and arguments.
// encoding/json sorts map keys, so equal argument sets fingerprint equally
// regardless of insertion order.
func actionFingerprint(toolName string, args map[string]any) string {
	raw, err := json.Marshal(args)
	if err != nil {
		raw = []byte("{}")
	}
	return fmt.Sprintf("%s:%s", toolName, raw)
}
