package api

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/event"
	"github.com/quarryhq/quarry/pkg/database"
	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/services"
	testdb "github.com/quarryhq/quarry/test/database"
)

const testOrg = "org-integration"

// apiTestEnv wires a server against a real PostgreSQL database
// (testcontainers locally, service container in CI). No worker pool: rows
// stay queued, which is exactly what the HTTP layer should observe.
type apiTestEnv struct {
	dbClient  *database.Client
	hub       *events.Hub
	publisher *events.EventPublisher
	server    *Server
}

func setupAPITest(t *testing.T) *apiTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbClient := testdb.NewTestClient(t)
	eventService := services.NewEventService(dbClient.Client)
	hub := events.NewHub(events.NewEventServiceAdapter(eventService))
	publisher := events.NewEventPublisher(dbClient.DB())

	s := NewServer(nil, dbClient, nil, hub)
	s.SetEventPublisher(publisher)

	return &apiTestEnv{
		dbClient:  dbClient,
		hub:       hub,
		publisher: publisher,
		server:    s,
	}
}

// request performs one in-process request with the test organization header.
func (env *apiTestEnv) request(t *testing.T, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Organization-ID", testOrg)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()
	env.server.engine.ServeHTTP(rec, req)
	return rec
}

// submitCompletion creates a completion through the API and returns its id.
func (env *apiTestEnv) submitCompletion(t *testing.T, reportID, prompt string) string {
	t.Helper()
	body := fmt.Sprintf(`{"prompt":{"content":%q}}`, prompt)
	rec := env.request(t, http.MethodPost, "/api/v1/reports/"+reportID+"/completions", body)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp CompletionAcceptedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.CompletionID)
	return resp.CompletionID
}

func TestIntegration_SubmitCompletion(t *testing.T) {
	env := setupAPITest(t)
	ctx := context.Background()
	reportID := uuid.New().String()

	body := `{"prompt":{"content":"summarize revenue by quarter","mode":"agent"}}`
	rec := env.request(t, http.MethodPost, "/api/v1/reports/"+reportID+"/completions", body)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp CompletionAcceptedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, reportID, resp.ReportID)
	assert.Equal(t, "queued", resp.Status)

	// The completion row is queued with the submitted prompt.
	row, err := env.dbClient.Client.Completion.Get(ctx, resp.CompletionID)
	require.NoError(t, err)
	assert.Equal(t, completion.StatusQueued, row.Status)
	assert.Equal(t, testOrg, row.OrganizationID)
	assert.Equal(t, "summarize revenue by quarter", row.Prompt["content"])

	// First submission created the report; the second reuses it.
	report, err := env.dbClient.Client.Report.Get(ctx, reportID)
	require.NoError(t, err)
	assert.Equal(t, testOrg, report.OrganizationID)

	env.submitCompletion(t, reportID, "now break it down by region")
	count, err := env.dbClient.Client.Report.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIntegration_GetCompletion(t *testing.T) {
	env := setupAPITest(t)

	rec := env.request(t, http.MethodGet, "/api/v1/completions/"+uuid.New().String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	id := env.submitCompletion(t, uuid.New().String(), "what changed last week")

	rec = env.request(t, http.MethodGet, "/api/v1/completions/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id)

	// Known completion without blocks: empty array, not 404.
	rec = env.request(t, http.MethodGet, "/api/v1/completions/"+id+"/blocks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var blocksResp struct {
		CompletionID string            `json:"completion_id"`
		Blocks       []json.RawMessage `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blocksResp))
	assert.Equal(t, id, blocksResp.CompletionID)
	assert.Empty(t, blocksResp.Blocks)

	rec = env.request(t, http.MethodGet, "/api/v1/completions/"+uuid.New().String()+"/blocks", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIntegration_ListCompletions(t *testing.T) {
	env := setupAPITest(t)

	reportA := uuid.New().String()
	reportB := uuid.New().String()
	env.submitCompletion(t, reportA, "first question")
	env.submitCompletion(t, reportA, "second question")
	env.submitCompletion(t, reportB, "unrelated question")

	rec := env.request(t, http.MethodGet, "/api/v1/completions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all struct {
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Equal(t, 3, all.TotalCount)

	rec = env.request(t, http.MethodGet, "/api/v1/completions?report_id="+reportA, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered struct {
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	assert.Equal(t, 2, filtered.TotalCount)

	// Reports are listed per organization.
	rec = env.request(t, http.MethodGet, "/api/v1/reports", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var reports struct {
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	assert.Equal(t, 2, reports.TotalCount)
}

func TestIntegration_CancelCompletion(t *testing.T) {
	env := setupAPITest(t)
	ctx := context.Background()

	id := env.submitCompletion(t, uuid.New().String(), "long running analysis")

	rec := env.request(t, http.MethodPost, "/api/v1/completions/"+id+"/cancel", "")
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "cancellation requested")

	row, err := env.dbClient.Client.Completion.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, row.SigkillAt)

	// The sigkill broadcast went through the outbox on the completion channel.
	evts, err := env.dbClient.Client.Event.Query().
		Where(event.ChannelEQ(events.CompletionChannel(id))).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, events.EventTypeCompletionUpdate, evts[0].Payload["event"])

	// Repeating the cancel is a no-op, not an error.
	rec = env.request(t, http.MethodPost, "/api/v1/completions/"+id+"/cancel", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "already requested")

	rec = env.request(t, http.MethodPost, "/api/v1/completions/"+uuid.New().String()+"/cancel", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIntegration_ExecutionDetail(t *testing.T) {
	env := setupAPITest(t)
	ctx := context.Background()

	completionID := env.submitCompletion(t, uuid.New().String(), "inspect the funnel")
	row, err := env.dbClient.Client.Completion.Get(ctx, completionID)
	require.NoError(t, err)

	exec, err := env.dbClient.Client.AgentExecution.Create().
		SetID(uuid.New().String()).
		SetCompletionID(completionID).
		SetReportID(row.ReportID).
		SetOrganizationID(row.OrganizationID).
		SetUserID(row.UserID).
		Save(ctx)
	require.NoError(t, err)

	_, err = env.dbClient.Client.PlanDecision.Create().
		SetID(uuid.New().String()).
		SetAgentExecutionID(exec.ID).
		SetSeq(1).
		SetLoopIndex(0).
		SetReasoning("need the raw numbers first").
		Save(ctx)
	require.NoError(t, err)

	_, err = env.dbClient.Client.ToolExecution.Create().
		SetID(uuid.New().String()).
		SetAgentExecutionID(exec.ID).
		SetSeq(2).
		SetToolName("execute_query").
		SetArguments(map[string]interface{}{"sql": "select 1"}).
		Save(ctx)
	require.NoError(t, err)

	rec := env.request(t, http.MethodGet, "/api/v1/executions/"+exec.ID, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Decisions []json.RawMessage      `json:"decisions"`
		Tools     []ToolExecutionSummary `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Decisions, 1)
	require.Len(t, resp.Tools, 1)
	assert.Equal(t, "execute_query", resp.Tools[0].ToolName)

	// Summaries leave the heavy columns out of the response.
	assert.NotContains(t, rec.Body.String(), "select 1")

	rec = env.request(t, http.MethodGet, "/api/v1/executions/"+uuid.New().String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIntegration_InstructionLifecycle(t *testing.T) {
	env := setupAPITest(t)

	rec := env.request(t, http.MethodPost, "/api/v1/instructions",
		`{"text":"always report amounts in EUR","category":"formatting"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Source string `json:"source"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, "user", created.Source)

	rec = env.request(t, http.MethodGet, "/api/v1/instructions?status=active", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID)

	rec = env.request(t, http.MethodPatch, "/api/v1/instructions/"+created.ID, `{"status":"archived"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"archived"`)

	rec = env.request(t, http.MethodGet, "/api/v1/instructions?status=active", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), created.ID)

	rec = env.request(t, http.MethodPatch, "/api/v1/instructions/"+uuid.New().String(), `{"status":"archived"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIntegration_StreamReplaysAndTerminates(t *testing.T) {
	env := setupAPITest(t)
	ctx := context.Background()

	id := env.submitCompletion(t, uuid.New().String(), "stream me")

	require.NoError(t, env.publisher.PublishCompletionStarted(ctx, events.CompletionStartedPayload{
		BasePayload: events.NewBase(events.EventTypeCompletionStarted, id, "exec-1", 1),
		Data:        events.CompletionLifecycleData{Status: completion.StatusInProgress},
	}))
	require.NoError(t, env.publisher.PublishCompletionFinished(ctx, events.CompletionFinishedPayload{
		BasePayload: events.NewBase(events.EventTypeCompletionFinished, id, "exec-1", 2),
		Data:        events.CompletionLifecycleData{Status: completion.StatusCompleted},
	}))

	// Catchup replays both persisted frames; the terminator ends the stream,
	// so the request completes synchronously.
	rec := env.request(t, http.MethodGet, "/api/v1/completions/"+id+"/stream", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, events.EventTypeCompletionStarted)
	assert.Contains(t, body, events.EventTypeCompletionFinished)
	assert.Contains(t, body, "id: ")
}

func TestIntegration_StreamLiveBroadcast(t *testing.T) {
	env := setupAPITest(t)

	id := env.submitCompletion(t, uuid.New().String(), "stream me live")
	channel := events.CompletionChannel(id)

	ts := httptest.NewServer(env.server.engine)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/completions/" + id + "/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Wait for the handler to attach before broadcasting.
	require.Eventually(t, func() bool {
		return env.hub.ActiveSubscribers() == 1
	}, 5*time.Second, 10*time.Millisecond)

	started, err := json.Marshal(events.CompletionStartedPayload{
		BasePayload: events.NewBase(events.EventTypeCompletionStarted, id, "exec-1", 1),
		Data:        events.CompletionLifecycleData{Status: completion.StatusInProgress},
	})
	require.NoError(t, err)
	finished, err := json.Marshal(events.CompletionFinishedPayload{
		BasePayload: events.NewBase(events.EventTypeCompletionFinished, id, "exec-1", 2),
		Data:        events.CompletionLifecycleData{Status: completion.StatusCompleted},
	})
	require.NoError(t, err)

	env.hub.Broadcast(channel, started)
	env.hub.Broadcast(channel, finished)

	// The terminator closes the response; reading to EOF must finish.
	scanner := bufio.NewScanner(resp.Body)
	var lines []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not terminate after the completion.finished frame")
	}

	body := strings.Join(lines, "\n")
	assert.Contains(t, body, events.EventTypeCompletionStarted)
	assert.Contains(t, body, events.EventTypeCompletionFinished)
}

func TestIntegration_WebSocketSubscribeAndReceive(t *testing.T) {
	env := setupAPITest(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := env.submitCompletion(t, uuid.New().String(), "watch me over ws")
	channel := events.CompletionChannel(id)

	ts := httptest.NewServer(env.server.engine)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/v1/stream/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	readMessage := func() map[string]any {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)
		var msg map[string]any
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	}

	msg := readMessage()
	assert.Equal(t, "connection.established", msg["type"])

	require.NoError(t, conn.Write(ctx, websocket.MessageText,
		[]byte(fmt.Sprintf(`{"action":"subscribe","channel":%q}`, channel))))

	msg = readMessage()
	require.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, channel, msg["channel"])

	frame, err := json.Marshal(events.CompletionStartedPayload{
		BasePayload: events.NewBase(events.EventTypeCompletionStarted, id, "exec-1", 1),
		Data:        events.CompletionLifecycleData{Status: completion.StatusInProgress},
	})
	require.NoError(t, err)
	env.hub.Broadcast(channel, frame)

	msg = readMessage()
	assert.Equal(t, events.EventTypeCompletionStarted, msg["event"])
	assert.Equal(t, id, msg["completion_id"])

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"action":"ping"}`)))
	msg = readMessage()
	assert.Equal(t, "pong", msg["type"])
}
