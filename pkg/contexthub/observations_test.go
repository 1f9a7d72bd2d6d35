package contexthub

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/models"
)

func TestAccumulator_NumbersExecutionsMonotonically(t *testing.T) {
	acc := NewAccumulator()

	first := acc.AddToolObservation("execute_query", map[string]any{"query": "select 1"}, &models.Observation{Summary: "1 row"})
	second := acc.AddToolObservation("create_widget", nil, &models.Observation{Summary: "widget created"})

	assert.Equal(t, 1, first.ExecutionNumber)
	assert.Equal(t, 2, second.ExecutionNumber)

	last := acc.Last()
	require.NotNil(t, last)
	assert.Equal(t, "create_widget", last.ToolName)
}

func TestAccumulator_HistoryIsACopy(t *testing.T) {
	acc := NewAccumulator()
	acc.AddToolObservation("execute_query", nil, &models.Observation{Summary: "ok"})

	history := acc.History()
	require.Len(t, history, 1)
	history[0].ToolName = "mutated"

	assert.Equal(t, "execute_query", acc.History()[0].ToolName)
}

func TestAccumulator_EmptyState(t *testing.T) {
	acc := NewAccumulator()

	assert.Nil(t, acc.Last())
	assert.Empty(t, acc.History())
	assert.Empty(t, acc.ToDict())
	assert.Equal(t, "", acc.BuildContext(5))
}

func TestAccumulator_ToDict(t *testing.T) {
	acc := NewAccumulator()
	acc.AddToolObservation("execute_query", map[string]any{"query": "select 1"}, &models.Observation{
		Summary: "1 row",
		StepID:  "step-9",
	})
	acc.AddToolObservation("run_code", nil, &models.Observation{
		Summary: "failed",
		Error:   &models.ObservationError{Code: models.ErrCodeExecution, Message: "exit 1"},
	})

	dicts := acc.ToDict()
	require.Len(t, dicts, 2)

	assert.Equal(t, 1, dicts[0]["execution_number"])
	assert.Equal(t, "execute_query", dicts[0]["tool_name"])
	assert.Equal(t, "1 row", dicts[0]["summary"])
	assert.Equal(t, "step-9", dicts[0]["step_id"])
	assert.Contains(t, dicts[0], "tool_input")

	errPayload, ok := dicts[1]["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, models.ErrCodeExecution, errPayload["code"])
	assert.NotContains(t, dicts[1], "tool_input")
}

func TestAccumulator_BuildContextWindowsHistory(t *testing.T) {
	acc := NewAccumulator()
	for i := 1; i <= 7; i++ {
		acc.AddToolObservation("execute_query", nil, &models.Observation{
			Summary: fmt.Sprintf("result %d", i),
		})
	}

	rendered := acc.BuildContext(5)

	assert.NotContains(t, rendered, "result 2")
	assert.Contains(t, rendered, "3. execute_query: result 3")
	assert.Contains(t, rendered, "7. execute_query: result 7")

	full := acc.BuildContext(0)
	assert.Contains(t, full, "1. execute_query: result 1")
}
