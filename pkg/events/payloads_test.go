package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBase(t *testing.T) {
	t.Run("stamps all envelope fields", func(t *testing.T) {
		base := NewBase(EventTypeDecisionFinal, "comp-1", "exec-1", 7)

		assert.Equal(t, EventTypeDecisionFinal, base.Event)
		assert.Equal(t, "comp-1", base.CompletionID)
		assert.Equal(t, "exec-1", base.AgentExecutionID)
		assert.Equal(t, 7, base.Seq)

		ts, err := time.Parse(time.RFC3339Nano, base.Timestamp)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, ts.Location())
		assert.WithinDuration(t, time.Now(), ts, 5*time.Second)
	})

	t.Run("queue-level events carry no execution id", func(t *testing.T) {
		base := NewBase(EventTypeCompletionStarted, "comp-1", "", 0)

		assert.Empty(t, base.AgentExecutionID)
		assert.Zero(t, base.Seq)
	})
}

func TestDecisionPayloads(t *testing.T) {
	t.Run("final payload carries full decision", func(t *testing.T) {
		payload := DecisionFinalPayload{
			BasePayload: NewBase(EventTypeDecisionFinal, "comp-1", "exec-1", 3),
			Data: DecisionData{
				PlanDecisionID:   "dec-1",
				LoopIndex:        2,
				PlanType:         plandecision.PlanTypeAction,
				AnalysisComplete: false,
				Reasoning:        "Revenue drop needs a widget",
				ActionName:       "create_widget",
				ActionArgs:       map[string]any{"widget_type": "line"},
				Metrics:          map[string]any{"input_tokens": float64(1200)},
			},
		}

		assert.Equal(t, EventTypeDecisionFinal, payload.Event)
		assert.Equal(t, "dec-1", payload.Data.PlanDecisionID)
		assert.Equal(t, 2, payload.Data.LoopIndex)
		assert.Equal(t, plandecision.PlanTypeAction, payload.Data.PlanType)
		assert.False(t, payload.Data.AnalysisComplete)
		assert.Equal(t, "create_widget", payload.Data.ActionName)
		require.NotNil(t, payload.Data.ActionArgs)
		assert.Equal(t, "line", payload.Data.ActionArgs["widget_type"])
	})

	t.Run("terminal decision has final answer and no action", func(t *testing.T) {
		payload := DecisionFinalPayload{
			BasePayload: NewBase(EventTypeDecisionFinal, "comp-1", "exec-1", 9),
			Data: DecisionData{
				PlanDecisionID:   "dec-9",
				LoopIndex:        4,
				PlanType:         plandecision.PlanTypeResearch,
				AnalysisComplete: true,
				FinalAnswer:      "Churn is concentrated in the EU region.",
			},
		}

		assert.True(t, payload.Data.AnalysisComplete)
		assert.Empty(t, payload.Data.ActionName)
		assert.NotEmpty(t, payload.Data.FinalAnswer)
	})

	t.Run("partial payload omits empty optional fields on the wire", func(t *testing.T) {
		payload := DecisionPartialPayload{
			BasePayload: NewBase(EventTypeDecisionPartial, "comp-1", "exec-1", 3),
			Data: DecisionData{
				PlanDecisionID: "dec-1",
				LoopIndex:      0,
				PlanType:       plandecision.PlanTypeResearch,
				Reasoning:      "Looking at the sch",
			},
		}

		raw, err := json.Marshal(payload)
		require.NoError(t, err)

		var msg map[string]any
		require.NoError(t, json.Unmarshal(raw, &msg))
		data, ok := msg["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Looking at the sch", data["reasoning"])
		assert.NotContains(t, data, "final_answer")
		assert.NotContains(t, data, "action_name")
		assert.NotContains(t, data, "metrics")
	})

	t.Run("supports both plan types", func(t *testing.T) {
		for _, planType := range []plandecision.PlanType{
			plandecision.PlanTypeResearch,
			plandecision.PlanTypeAction,
		} {
			payload := DecisionFinalPayload{
				BasePayload: NewBase(EventTypeDecisionFinal, "comp-1", "exec-1", 1),
				Data:        DecisionData{PlanDecisionID: "dec-1", PlanType: planType},
			}
			assert.Equal(t, planType, payload.Data.PlanType)
		}
	})
}

func TestBlockUpsertPayload(t *testing.T) {
	t.Run("carries full render state", func(t *testing.T) {
		payload := BlockUpsertPayload{
			BasePayload: NewBase(EventTypeBlockUpsert, "comp-1", "exec-1", 4),
			Data: BlockData{
				BlockID:        "blk-1",
				BlockIndex:     40,
				LoopIndex:      1,
				SourceType:     completionblock.SourceTypeDecision,
				PlanDecisionID: "dec-1",
				Title:          "Planning (research)",
				Status:         completionblock.StatusInProgress,
				Icon:           "brain",
				Content:        "**brain Planning (research)**",
				Reasoning:      "Checking available tables",
			},
		}

		assert.Equal(t, "blk-1", payload.Data.BlockID)
		assert.Equal(t, 40, payload.Data.BlockIndex)
		assert.Equal(t, completionblock.SourceTypeDecision, payload.Data.SourceType)
		assert.Equal(t, completionblock.StatusInProgress, payload.Data.Status)
		assert.Equal(t, "Planning (research)", payload.Data.Title)
	})

	t.Run("tool block references tool execution", func(t *testing.T) {
		payload := BlockUpsertPayload{
			BasePayload: NewBase(EventTypeBlockUpsert, "comp-1", "exec-1", 6),
			Data: BlockData{
				BlockID:         "blk-2",
				BlockIndex:      60,
				LoopIndex:       1,
				SourceType:      completionblock.SourceTypeTool,
				ToolExecutionID: "tool-1",
				Title:           "Planning (action) → create_widget",
				Status:          completionblock.StatusCompleted,
				Icon:            "hammer",
				CompletedAt:     time.Now().UTC().Format(time.RFC3339Nano),
			},
		}

		assert.Equal(t, completionblock.SourceTypeTool, payload.Data.SourceType)
		assert.Equal(t, "tool-1", payload.Data.ToolExecutionID)
		assert.Empty(t, payload.Data.PlanDecisionID)
		assert.NotEmpty(t, payload.Data.CompletedAt)
	})

	t.Run("supports all block statuses", func(t *testing.T) {
		statuses := []completionblock.Status{
			completionblock.StatusInProgress,
			completionblock.StatusCompleted,
			completionblock.StatusError,
			completionblock.StatusStopped,
		}

		for _, status := range statuses {
			payload := BlockUpsertPayload{
				BasePayload: NewBase(EventTypeBlockUpsert, "comp-1", "exec-1", 1),
				Data:        BlockData{BlockID: "blk-1", Status: status},
			}
			assert.Equal(t, status, payload.Data.Status)
		}
	})
}

func TestBlockDeltaPayload(t *testing.T) {
	t.Run("append delta extends previous text", func(t *testing.T) {
		payload := BlockDeltaPayload{
			BasePayload: NewBase(EventTypeBlockDelta, "comp-1", "exec-1", 4),
			Data: BlockDeltaData{
				BlockID: "blk-1",
				Field:   "reasoning",
				Delta:   " and the orders table",
				Replace: false,
			},
		}

		assert.False(t, payload.Data.Replace)
		assert.NotEmpty(t, payload.Data.Delta)
		assert.Empty(t, payload.Data.Snapshot)
	})

	t.Run("replace carries full snapshot", func(t *testing.T) {
		payload := BlockDeltaPayload{
			BasePayload: NewBase(EventTypeBlockDelta, "comp-1", "exec-1", 4),
			Data: BlockDeltaData{
				BlockID:  "blk-1",
				Field:    "content",
				Snapshot: "**brain Planning (research)**\n\nrewritten",
				Replace:  true,
			},
		}

		assert.True(t, payload.Data.Replace)
		assert.Empty(t, payload.Data.Delta)
		assert.NotEmpty(t, payload.Data.Snapshot)
	})

	t.Run("replace flag always present on the wire", func(t *testing.T) {
		// Clients branch on replace; an omitted field would default to
		// append and corrupt the rendered text.
		payload := BlockDeltaPayload{
			BasePayload: NewBase(EventTypeBlockDelta, "comp-1", "exec-1", 4),
			Data:        BlockDeltaData{BlockID: "blk-1", Field: "content", Delta: "x"},
		}

		raw, err := json.Marshal(payload)
		require.NoError(t, err)

		var msg map[string]any
		require.NoError(t, json.Unmarshal(raw, &msg))
		data, ok := msg["data"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, data, "replace")
		assert.Equal(t, false, data["replace"])
	})
}

func TestToolPayloads(t *testing.T) {
	t.Run("started payload carries masked arguments", func(t *testing.T) {
		payload := ToolStartedPayload{
			BasePayload: NewBase(EventTypeToolStarted, "comp-1", "exec-1", 5),
			Data: ToolStartedData{
				ToolExecutionID: "tool-1",
				ToolName:        "execute_query",
				ToolAction:      "query",
				LoopIndex:       1,
				AttemptNumber:   1,
				Arguments:       map[string]any{"sql": "SELECT 1", "api_key": "***MASKED***"},
			},
		}

		assert.Equal(t, "execute_query", payload.Data.ToolName)
		assert.Equal(t, 1, payload.Data.AttemptNumber)
		assert.Equal(t, "***MASKED***", payload.Data.Arguments["api_key"])
	})

	t.Run("finished payload for success", func(t *testing.T) {
		payload := ToolFinishedPayload{
			BasePayload: NewBase(EventTypeToolFinished, "comp-1", "exec-1", 6),
			Data: ToolFinishedData{
				ToolExecutionID: "tool-1",
				ToolName:        "create_widget",
				Status:          toolexecution.StatusSuccess,
				Success:         true,
				ResultSummary:   "Created widget 'Revenue by region'",
				ResultJSON:      map[string]any{"widget_id": "wdg-1"},
				DurationMs:      842,
				QueryID:         "qry-1",
				CreatedWidgetID: "wdg-1",
			},
		}

		assert.Equal(t, toolexecution.StatusSuccess, payload.Data.Status)
		assert.True(t, payload.Data.Success)
		assert.Equal(t, 842, payload.Data.DurationMs)
		assert.Equal(t, "wdg-1", payload.Data.CreatedWidgetID)
		assert.Empty(t, payload.Data.ErrorMessage)
	})

	t.Run("finished payload for failure", func(t *testing.T) {
		payload := ToolFinishedPayload{
			BasePayload: NewBase(EventTypeToolFinished, "comp-1", "exec-1", 6),
			Data: ToolFinishedData{
				ToolExecutionID: "tool-2",
				ToolName:        "execute_query",
				Status:          toolexecution.StatusError,
				Success:         false,
				ErrorMessage:    "relation \"orderz\" does not exist",
				DurationMs:      120,
			},
		}

		assert.Equal(t, toolexecution.StatusError, payload.Data.Status)
		assert.False(t, payload.Data.Success)
		assert.Contains(t, payload.Data.ErrorMessage, "does not exist")
		assert.Empty(t, payload.Data.CreatedWidgetID)
	})

	t.Run("progress payload names the stage", func(t *testing.T) {
		payload := ToolProgressPayload{
			BasePayload: NewBase(EventTypeToolProgress, "comp-1", "exec-1", 5),
			Data: ToolProgressData{
				ToolExecutionID: "tool-1",
				Stage:           "column_added",
				Detail:          map[string]any{"column": "region"},
			},
		}

		assert.Equal(t, "column_added", payload.Data.Stage)
		assert.Equal(t, "region", payload.Data.Detail["column"])
	})
}

func TestPlannerRetryPayload(t *testing.T) {
	payload := PlannerRetryPayload{
		BasePayload: NewBase(EventTypePlannerRetry, "comp-1", "exec-1", 2),
		Data: PlannerRetryData{
			Kind:        "validation_error",
			Attempt:     1,
			MaxAttempts: 2,
			Message:     "missing required field: plan_type",
		},
	}

	assert.Equal(t, "validation_error", payload.Data.Kind)
	assert.Equal(t, 1, payload.Data.Attempt)
	assert.Equal(t, 2, payload.Data.MaxAttempts)
}

func TestCompletionLifecyclePayloads(t *testing.T) {
	t.Run("started payload", func(t *testing.T) {
		payload := CompletionStartedPayload{
			BasePayload: NewBase(EventTypeCompletionStarted, "comp-1", "", 0),
			Data: CompletionLifecycleData{
				ReportID: "rpt-1",
				Status:   completion.StatusInProgress,
			},
		}

		assert.Equal(t, "rpt-1", payload.Data.ReportID)
		assert.Equal(t, completion.StatusInProgress, payload.Data.Status)
	})

	t.Run("error payload carries the message", func(t *testing.T) {
		payload := CompletionErrorPayload{
			BasePayload: NewBase(EventTypeCompletionError, "comp-1", "exec-1", 11),
			Data: CompletionLifecycleData{
				Status:       completion.StatusError,
				ErrorMessage: "persisting decision failed",
			},
		}

		assert.Equal(t, completion.StatusError, payload.Data.Status)
		assert.NotEmpty(t, payload.Data.ErrorMessage)
	})

	t.Run("supports all terminal statuses", func(t *testing.T) {
		statuses := []completion.Status{
			completion.StatusCompleted,
			completion.StatusStopped,
			completion.StatusError,
		}

		for _, status := range statuses {
			payload := CompletionFinishedPayload{
				BasePayload: NewBase(EventTypeCompletionFinished, "comp-1", "", 0),
				Data:        CompletionLifecycleData{Status: status},
			}
			assert.Equal(t, status, payload.Data.Status)
		}
	})

	t.Run("update payload carries sigkill timestamp", func(t *testing.T) {
		now := time.Now().UTC().Format(time.RFC3339Nano)
		payload := CompletionUpdatePayload{
			BasePayload: NewBase(EventTypeCompletionUpdate, "comp-1", "", 0),
			Data:        CompletionUpdateData{SigkillAt: now},
		}

		assert.Equal(t, EventTypeCompletionUpdate, payload.Event)
		assert.Equal(t, now, payload.Data.SigkillAt)
	})
}

func TestArtifactPayload(t *testing.T) {
	t.Run("query created", func(t *testing.T) {
		payload := ArtifactPayload{
			BasePayload: NewBase(EventTypeQueryCreated, "comp-1", "exec-1", 5),
			Data: ArtifactData{
				ToolExecutionID: "tool-1",
				QueryID:         "qry-1",
			},
		}

		assert.Equal(t, EventTypeQueryCreated, payload.Event)
		assert.Equal(t, "qry-1", payload.Data.QueryID)
		assert.Empty(t, payload.Data.VisualizationID)
	})

	t.Run("visualization lifecycle shares the struct", func(t *testing.T) {
		for _, event := range []string{EventTypeVisualizationCreated, EventTypeVisualizationUpdated} {
			payload := ArtifactPayload{
				BasePayload: NewBase(event, "comp-1", "exec-1", 5),
				Data: ArtifactData{
					WidgetID:        "wdg-1",
					VisualizationID: "viz-1",
				},
			}
			assert.Equal(t, event, payload.Event)
			assert.Equal(t, "viz-1", payload.Data.VisualizationID)
		}
	})
}

func TestSuggestPayload(t *testing.T) {
	t.Run("partial carries one suggestion", func(t *testing.T) {
		payload := SuggestPayload{
			BasePayload: NewBase(EventTypeSuggestPartial, "comp-1", "exec-1", 12),
			Data: SuggestData{
				Index: 1,
				Text:  "Prefer the orders_v2 table for revenue questions",
			},
		}

		assert.Equal(t, 1, payload.Data.Index)
		assert.NotEmpty(t, payload.Data.Text)
	})

	t.Run("finished carries the stored instruction ids", func(t *testing.T) {
		payload := SuggestPayload{
			BasePayload: NewBase(EventTypeSuggestFinished, "comp-1", "exec-1", 13),
			Data: SuggestData{
				Count:          2,
				InstructionIDs: []string{"ins-1", "ins-2"},
			},
		}

		assert.Equal(t, 2, payload.Data.Count)
		assert.Len(t, payload.Data.InstructionIDs, 2)
	})
}
