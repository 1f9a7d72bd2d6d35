package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/contextsnapshot"
	"github.com/quarryhq/quarry/ent/executionscore"
	"github.com/quarryhq/quarry/ent/instruction"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/toolexecution"
)

const (
	waitTimeout  = 30 * time.Second
	waitInterval = 100 * time.Millisecond
)

// postJSON posts body to path and decodes the response, requiring wantStatus.
func (app *TestApp) postJSON(t *testing.T, path string, body any, wantStatus int) map[string]any {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(app.BaseURL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "POST %s: %s", path, data)

	out := map[string]any{}
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &out))
	}
	return out
}

// getJSON fetches path and decodes the response, requiring wantStatus.
func (app *TestApp) getJSON(t *testing.T, path string, wantStatus int) map[string]any {
	t.Helper()

	resp, err := http.Get(app.BaseURL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "GET %s: %s", path, data)

	out := map[string]any{}
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &out))
	}
	return out
}

// SubmitCompletion submits a prompt against a report and returns the accepted
// completion ID. The report row is auto-created by the API.
func (app *TestApp) SubmitCompletion(t *testing.T, reportID, content string) string {
	t.Helper()

	body := map[string]any{"prompt": map[string]any{"content": content}}
	out := app.postJSON(t, "/api/v1/reports/"+reportID+"/completions", body, http.StatusAccepted)

	completionID, _ := out["completion_id"].(string)
	require.NotEmpty(t, completionID, "accepted response carries completion_id")
	return completionID
}

// CancelCompletion requests a sigkill and returns the response message.
func (app *TestApp) CancelCompletion(t *testing.T, completionID string) string {
	t.Helper()
	out := app.postJSON(t, "/api/v1/completions/"+completionID+"/cancel", nil, http.StatusAccepted)
	msg, _ := out["message"].(string)
	return msg
}

// GetCompletion fetches one completion (with blocks) through the API.
func (app *TestApp) GetCompletion(t *testing.T, completionID string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/api/v1/completions/"+completionID, http.StatusOK)
}

// GetBlocks fetches the block list for a completion through the API.
func (app *TestApp) GetBlocks(t *testing.T, completionID string) []any {
	t.Helper()
	out := app.getJSON(t, "/api/v1/completions/"+completionID+"/blocks", http.StatusOK)
	blocks, _ := out["blocks"].([]any)
	return blocks
}

// CreateQueuedCompletion inserts a queued completion row directly, bypassing
// the API. withSigkill stamps sigkill_at before any worker can claim it.
func (app *TestApp) CreateQueuedCompletion(t *testing.T, reportID string, withSigkill bool) *ent.Completion {
	t.Helper()
	ctx := context.Background()

	_, err := app.EntClient.Report.Create().
		SetID(reportID).
		SetOrganizationID("org-1").
		SetUserID("user-1").
		Save(ctx)
	require.NoError(t, err)

	create := app.EntClient.Completion.Create().
		SetID(uuid.New().String()).
		SetReportID(reportID).
		SetOrganizationID("org-1").
		SetUserID("user-1").
		SetPrompt(map[string]interface{}{"content": "run the numbers"})
	if withSigkill {
		create = create.SetSigkillAt(time.Now().UTC())
	}
	row, err := create.Save(ctx)
	require.NoError(t, err)
	return row
}

// WaitForCompletionStatus polls until the completion reaches one of the
// expected statuses and returns the final row.
func (app *TestApp) WaitForCompletionStatus(t *testing.T, completionID string, expected ...completion.Status) *ent.Completion {
	t.Helper()
	ctx := context.Background()

	var row *ent.Completion
	require.Eventually(t, func() bool {
		var err error
		row, err = app.EntClient.Completion.Get(ctx, completionID)
		if err != nil {
			return false
		}
		for _, want := range expected {
			if row.Status == want {
				return true
			}
		}
		return false
	}, waitTimeout, waitInterval,
		"completion %s never reached %v", completionID, expected)
	return row
}

// QueryExecutions returns the agent executions of a completion, oldest first.
func (app *TestApp) QueryExecutions(t *testing.T, completionID string) []*ent.AgentExecution {
	t.Helper()
	rows, err := app.EntClient.AgentExecution.Query().
		Where(agentexecution.CompletionID(completionID)).
		Order(ent.Asc(agentexecution.FieldStartedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// QueryDecisions returns the plan decisions of an execution ordered by seq.
func (app *TestApp) QueryDecisions(t *testing.T, executionID string) []*ent.PlanDecision {
	t.Helper()
	rows, err := app.EntClient.PlanDecision.Query().
		Where(plandecision.AgentExecutionID(executionID)).
		Order(ent.Asc(plandecision.FieldSeq)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// QueryToolExecutions returns the tool executions of an execution ordered by seq.
func (app *TestApp) QueryToolExecutions(t *testing.T, executionID string) []*ent.ToolExecution {
	t.Helper()
	rows, err := app.EntClient.ToolExecution.Query().
		Where(toolexecution.AgentExecutionID(executionID)).
		Order(ent.Asc(toolexecution.FieldSeq)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// QueryBlocks returns a completion's blocks ordered by block index.
func (app *TestApp) QueryBlocks(t *testing.T, completionID string) []*ent.CompletionBlock {
	t.Helper()
	rows, err := app.EntClient.CompletionBlock.Query().
		Where(completionblock.CompletionID(completionID)).
		Order(ent.Asc(completionblock.FieldBlockIndex)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// QuerySnapshots returns an execution's context snapshots, oldest first.
func (app *TestApp) QuerySnapshots(t *testing.T, executionID string) []*ent.ContextSnapshot {
	t.Helper()
	rows, err := app.EntClient.ContextSnapshot.Query().
		Where(contextsnapshot.AgentExecutionID(executionID)).
		Order(ent.Asc(contextsnapshot.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// QueryScores returns an execution's judge scores.
func (app *TestApp) QueryScores(t *testing.T, executionID string) []*ent.ExecutionScore {
	t.Helper()
	rows, err := app.EntClient.ExecutionScore.Query().
		Where(executionscore.AgentExecutionID(executionID)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// QuerySuggestedDrafts returns an org's suggested draft instructions.
func (app *TestApp) QuerySuggestedDrafts(t *testing.T, orgID string) []*ent.Instruction {
	t.Helper()
	rows, err := app.EntClient.Instruction.Query().
		Where(
			instruction.OrganizationID(orgID),
			instruction.SourceEQ(instruction.SourceSuggested),
		).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// singleExecution asserts the completion produced exactly one execution and
// returns it.
func (app *TestApp) singleExecution(t *testing.T, completionID string) *ent.AgentExecution {
	t.Helper()
	execs := app.QueryExecutions(t, completionID)
	require.Len(t, execs, 1, "completion should have exactly one agent execution")
	return execs[0]
}

// newReportID returns a fresh report identifier.
func newReportID() string {
	return uuid.New().String()
}

// eventNames extracts the event type from each stream frame, in order.
func eventNames(frames []StreamEvent) []string {
	names := make([]string, 0, len(frames))
	for _, f := range frames {
		names = append(names, f.Event)
	}
	return names
}

// framesOfType filters stream frames by event type.
func framesOfType(frames []StreamEvent, event string) []StreamEvent {
	var out []StreamEvent
	for _, f := range frames {
		if f.Event == event {
			out = append(out, f)
		}
	}
	return out
}

// requireEventOrder asserts that want appears as a subsequence of the frame
// event types.
func requireEventOrder(t *testing.T, frames []StreamEvent, want ...string) {
	t.Helper()
	got := eventNames(frames)
	i := 0
	for _, name := range got {
		if i < len(want) && name == want[i] {
			i++
		}
	}
	require.Equal(t, len(want), i,
		"event order %v not found as a subsequence of %v", want, got)
}

// requireIncreasingEventIDs asserts outbox IDs are strictly increasing across
// the persistent frames.
func requireIncreasingEventIDs(t *testing.T, frames []StreamEvent) {
	t.Helper()
	last := 0
	for _, f := range frames {
		if f.ID == 0 {
			continue // transient frame, no outbox row
		}
		require.Greater(t, f.ID, last, "db_event_id must be strictly increasing")
		last = f.ID
	}
}

// requireIncreasingSeqs asserts envelope seqs climb strictly within each
// agent execution, transient frames included.
func requireIncreasingSeqs(t *testing.T, frames []StreamEvent) {
	t.Helper()
	last := make(map[string]float64)
	for _, f := range frames {
		execID, _ := f.Data["agent_execution_id"].(string)
		seq, ok := f.Data["seq"].(float64)
		if execID == "" || !ok {
			continue
		}
		require.Greater(t, seq, last[execID],
			"seq must be strictly increasing within execution %s (event %s)", execID, f.Event)
		last[execID] = seq
	}
}

// completionStatusString reads data.status from a completion lifecycle frame.
func completionStatusString(f StreamEvent) string {
	data, _ := f.Data["data"].(map[string]any)
	if data == nil {
		return ""
	}
	s, _ := data["status"].(string)
	return s
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}
