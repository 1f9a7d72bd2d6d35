package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopState_RecordFailureCountsPerTool(t *testing.T) {
	s := newLoopState()

	assert.Equal(t, 1, s.recordFailure("create_widget"))
	assert.Equal(t, 2, s.recordFailure("create_widget"))
	assert.Equal(t, 1, s.recordFailure("execute_query"))
	assert.Equal(t, 3, s.recordFailure("create_widget"))
}

func TestLoopState_RepeatedSuccesses(t *testing.T) {
	args := map[string]any{"source": "warehouse", "query": "select 1"}

	t.Run("identical tail trips", func(t *testing.T) {
		s := newLoopState()
		s.recordSuccess("execute_query", args)
		s.recordSuccess("execute_query", args)
		assert.True(t, s.repeatedSuccesses(2))
	})

	t.Run("different args do not trip", func(t *testing.T) {
		s := newLoopState()
		s.recordSuccess("execute_query", args)
		s.recordSuccess("execute_query", map[string]any{"source": "warehouse", "query": "select 2"})
		assert.False(t, s.repeatedSuccesses(2))
	})

	t.Run("short history never trips", func(t *testing.T) {
		s := newLoopState()
		s.recordSuccess("execute_query", args)
		assert.False(t, s.repeatedSuccesses(2))
	})

	t.Run("n below two never trips", func(t *testing.T) {
		s := newLoopState()
		s.recordSuccess("execute_query", args)
		s.recordSuccess("execute_query", args)
		assert.False(t, s.repeatedSuccesses(1))
		assert.False(t, s.repeatedSuccesses(0))
	})

	t.Run("earlier noise is ignored", func(t *testing.T) {
		s := newLoopState()
		s.recordSuccess("describe_table", map[string]any{"table": "orders"})
		s.recordSuccess("execute_query", args)
		s.recordSuccess("execute_query", args)
		assert.True(t, s.repeatedSuccesses(2))
	})
}

func TestLoopState_FinishFirstAnswerWins(t *testing.T) {
	s := newLoopState()

	s.finish("the real answer")
	s.finish("a later overwrite")

	assert.True(t, s.analysisComplete)
	assert.Equal(t, "the real answer", s.finalAnswer)
}

func TestActionFingerprint_KeyOrderIndependent(t *testing.T) {
	a := actionFingerprint("execute_query", map[string]any{"query": "select 1", "source": "warehouse"})
	b := actionFingerprint("execute_query", map[string]any{"source": "warehouse", "query": "select 1"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, actionFingerprint("describe_table", map[string]any{"query": "select 1", "source": "warehouse"}))
}
