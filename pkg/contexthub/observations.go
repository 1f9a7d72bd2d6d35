package contexthub

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/quarryhq/quarry/pkg/models"
)

// Accumulator keeps a run's tool observations in execution order. It is the
// observation history the planner and the tools see; the loop decides
// whether to record at all (tools with observation_policy=never are
// skipped before the accumulator is reached).
type Accumulator struct {
	mu           sync.Mutex
	observations []models.ToolObservation
	nextNumber   int
}

// NewAccumulator returns an empty accumulator for one run.
func NewAccumulator() *Accumulator {
	return &Accumulator{nextNumber: 1}
}

// AddToolObservation appends an observation, assigning the next execution
// number.
func (a *Accumulator) AddToolObservation(toolName string, input map[string]any, obs *models.Observation) models.ToolObservation {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry := models.ToolObservation{
		ExecutionNumber: a.nextNumber,
		ToolName:        toolName,
		ToolInput:       input,
		Timestamp:       time.Now().UTC(),
		Observation:     obs,
	}
	a.nextNumber++
	a.observations = append(a.observations, entry)
	return entry
}

// History returns a copy of every recorded observation, oldest first.
func (a *Accumulator) History() []models.ToolObservation {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.ToolObservation, len(a.observations))
	copy(out, a.observations)
	return out
}

// Last returns the most recent observation, or nil.
func (a *Accumulator) Last() *models.ToolObservation {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.observations) == 0 {
		return nil
	}
	last := a.observations[len(a.observations)-1]
	return &last
}

// ToDict serializes the history for the planner's past_observations.
func (a *Accumulator) ToDict() []map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]map[string]any, 0, len(a.observations))
	for _, entry := range a.observations {
		d := map[string]any{
			"execution_number": entry.ExecutionNumber,
			"tool_name":        entry.ToolName,
			"timestamp":        entry.Timestamp.Format(time.RFC3339),
		}
		if len(entry.ToolInput) > 0 {
			d["tool_input"] = entry.ToolInput
		}
		if entry.Observation != nil {
			d["summary"] = entry.Observation.Summary
			if entry.Observation.Error != nil {
				d["error"] = map[string]any{
					"code":    entry.Observation.Error.Code,
					"message": entry.Observation.Error.Message,
				}
			}
			if entry.Observation.StepID != "" {
				d["step_id"] = entry.Observation.StepID
			}
			if entry.Observation.WidgetID != "" {
				d["widget_id"] = entry.Observation.WidgetID
			}
			if len(entry.Observation.Artifacts) > 0 {
				d["artifacts"] = entry.Observation.Artifacts
			}
		}
		out = append(out, d)
	}
	return out
}

// BuildContext renders the last max observations as prompt text, one
// summary line each. max <= 0 renders everything.
func (a *Accumulator) BuildContext(max int) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.observations) == 0 {
		return ""
	}
	entries := a.observations
	if max > 0 && len(entries) > max {
		entries = entries[len(entries)-max:]
	}

	var sb strings.Builder
	for _, entry := range entries {
		summary := ""
		if entry.Observation != nil {
			summary = entry.Observation.Summary
		}
		fmt.Fprintf(&sb, "%d. %s: %s\n", entry.ExecutionNumber, entry.ToolName, summary)
	}
	return strings.TrimRight(sb.String(), "\n")
}
