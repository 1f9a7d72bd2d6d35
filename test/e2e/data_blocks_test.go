package e2e

import (
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/pkg/events"
)

// TestDataBlockStreaming drives create_data with two blocks and watches the
// stream-only block.completed stages arrive live. The planner is gated so
// the subscription is in place before the tool runs.
func TestDataBlockStreaming(t *testing.T) {
	app := StartTestApp(t, WithMCPServers(map[string]map[string]mcpsdk.ToolHandler{
		"warehouse": WarehouseServer(`[{"region":"EMEA","amount":310}]`),
	}))

	gate := make(chan struct{})
	planning := make(chan struct{}, 1)
	app.Planner.AddPlan(PlanEntry{
		Text:    mustDecisionJSON(actionDecision("create_data", map[string]any{
			"source": "warehouse",
			"query":  "select region, sum(amount) as amount from orders group by 1",
			"blocks": []any{
				map[string]any{"type": "table", "title": "By region"},
				map[string]any{"type": "summary", "title": "Highlights"},
			},
		})),
		WaitCh:  gate,
		OnBlock: planning,
	})
	app.Planner.AddDecision(closingDecision("Published the regional breakdown."))

	completionID := app.SubmitCompletion(t, newReportID(), "Break revenue down by region")

	select {
	case <-planning:
	case <-time.After(waitTimeout):
		t.Fatal("planner was never consulted")
	}

	ws := app.DialWS(t)
	ws.Subscribe(t, events.CompletionChannel(completionID))
	close(gate)

	ws.WaitForEventType(t, "completion.finished", waitTimeout)
	app.WaitForCompletionStatus(t, completionID, completion.StatusCompleted)

	// Stream-only stages: two block.completed progress frames, no outbox row.
	var blockFrames []StreamEvent
	for _, f := range ws.EventsByType("tool.progress") {
		data, _ := f.Data["data"].(map[string]any)
		if data != nil && data["stage"] == "block.completed" {
			assert.Zero(t, f.ID, "block.completed is transient")
			blockFrames = append(blockFrames, f)
		}
	}
	require.Len(t, blockFrames, 2)

	// Transient frames mint their own seqs, so the live stream climbs
	// strictly even between the persistent frames.
	requireIncreasingSeqs(t, ws.Events())

	assert.Len(t, ws.EventsByType("query.created"), 1)
	assert.Empty(t, ws.EventsByType("visualization.created"),
		"data blocks do not create a visualization")
	assert.Empty(t, ws.EventsByType("visualization.updated"))

	exec := app.singleExecution(t, completionID)
	toolRows := app.QueryToolExecutions(t, exec.ID)
	require.Len(t, toolRows, 1)
	data := toolRows[0]
	assert.Equal(t, "create_data", data.ToolName)
	assert.True(t, data.Success)
	assert.Equal(t, float64(2), data.ResultJSON["blocks"])
	assert.Contains(t, deref(data.ResultSummary), "published 2 data block(s)")
}
