package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewMetrics(reg), reg
}

func TestNewMetrics(t *testing.T) {
	m, reg := newTestMetrics(t)

	require.NotNil(t, m)
	assert.NotNil(t, m.CompletionCounter)
	assert.NotNil(t, m.CompletionDuration)
	assert.NotNil(t, m.LoopIterations)
	assert.NotNil(t, m.PlannerRequestCounter)
	assert.NotNil(t, m.PlannerRequestDuration)
	assert.NotNil(t, m.PlannerRetryCounter)
	assert.NotNil(t, m.PlannerTokens)
	assert.NotNil(t, m.ToolExecutionCounter)
	assert.NotNil(t, m.ToolExecutionDuration)
	assert.NotNil(t, m.ToolRetryCounter)
	assert.NotNil(t, m.EventCounter)
	assert.NotNil(t, m.EventSubscribers)
	assert.NotNil(t, m.QueueDepth)
	assert.NotNil(t, m.QueueClaimCounter)
	assert.NotNil(t, m.ScoringDuration)
	assert.NotNil(t, m.HTTPRequestCounter)
	assert.NotNil(t, m.HTTPRequestDuration)

	// Registering the same collectors twice must fail, proving they all
	// landed in the registry we passed in rather than the default one.
	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestRecordCompletion(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordCompletion("completed", 12.5, 3)
	m.RecordCompletion("completed", 30.0, 5)
	m.RecordCompletion("error", 2.0, 1)

	expected := `
		# HELP quarry_completions_total Total number of finished completion runs by terminal status
		# TYPE quarry_completions_total counter
		quarry_completions_total{status="completed"} 2
		quarry_completions_total{status="error"} 1
	`
	err := testutil.CollectAndCompare(m.CompletionCounter, strings.NewReader(expected))
	require.NoError(t, err)

	// One histogram series per status, plus the single iteration histogram
	assert.Equal(t, 2, testutil.CollectAndCount(m.CompletionDuration))
	assert.Equal(t, 1, testutil.CollectAndCount(m.LoopIterations))
}

func TestRecordPlannerRequest(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordPlannerRequest("research", "success", 1.5, 1200, 300)
	m.RecordPlannerRequest("research", "success", 2.5, 800, 150)
	m.RecordPlannerRequest("action", "error", 0.3, 0, 0)

	expected := `
		# HELP quarry_planner_requests_total Total number of planner calls by plan type and status
		# TYPE quarry_planner_requests_total counter
		quarry_planner_requests_total{plan_type="action",status="error"} 1
		quarry_planner_requests_total{plan_type="research",status="success"} 2
	`
	err := testutil.CollectAndCompare(m.PlannerRequestCounter, strings.NewReader(expected))
	require.NoError(t, err)

	expectedTokens := `
		# HELP quarry_planner_tokens_total Total number of planner tokens by type
		# TYPE quarry_planner_tokens_total counter
		quarry_planner_tokens_total{type="completion"} 450
		quarry_planner_tokens_total{type="prompt"} 2000
	`
	err = testutil.CollectAndCompare(m.PlannerTokens, strings.NewReader(expectedTokens))
	require.NoError(t, err)
}

func TestRecordPlannerRequest_ZeroTokensNotCounted(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordPlannerRequest("research", "error", 0.1, 0, 0)

	// Failed calls report no usage; the token counter must stay empty so
	// dashboards do not show zero-valued series per type.
	assert.Equal(t, 0, testutil.CollectAndCount(m.PlannerTokens))
}

func TestRecordPlannerRetry(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordPlannerRetry("validation_error")
	m.RecordPlannerRetry("validation_error")
	m.RecordPlannerRetry("stream_error")

	expected := `
		# HELP quarry_planner_retries_total Total number of planner retries by retry kind
		# TYPE quarry_planner_retries_total counter
		quarry_planner_retries_total{kind="stream_error"} 1
		quarry_planner_retries_total{kind="validation_error"} 2
	`
	err := testutil.CollectAndCompare(m.PlannerRetryCounter, strings.NewReader(expected))
	require.NoError(t, err)
}

func TestRecordToolExecution(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordToolExecution("execute_query", "success", 0.8)
	m.RecordToolExecution("execute_query", "success", 1.2)
	m.RecordToolExecution("execute_query", "error", 0.1)
	m.RecordToolExecution("create_widget", "success", 0.4)
	m.RecordToolRetry("execute_query")

	expected := `
		# HELP quarry_tool_executions_total Total number of tool executions by tool name and status
		# TYPE quarry_tool_executions_total counter
		quarry_tool_executions_total{status="error",tool_name="execute_query"} 1
		quarry_tool_executions_total{status="success",tool_name="create_widget"} 1
		quarry_tool_executions_total{status="success",tool_name="execute_query"} 2
	`
	err := testutil.CollectAndCompare(m.ToolExecutionCounter, strings.NewReader(expected))
	require.NoError(t, err)

	expectedRetries := `
		# HELP quarry_tool_retries_total Total number of tool retry attempts by tool name
		# TYPE quarry_tool_retries_total counter
		quarry_tool_retries_total{tool_name="execute_query"} 1
	`
	err = testutil.CollectAndCompare(m.ToolRetryCounter, strings.NewReader(expectedRetries))
	require.NoError(t, err)

	// One histogram series per tool name
	assert.Equal(t, 2, testutil.CollectAndCount(m.ToolExecutionDuration))
}

func TestEventPublished(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.EventPublished("decision.final", "persistent")
	m.EventPublished("decision.partial", "transient")
	m.EventPublished("decision.partial", "transient")
	m.EventPublished("tool.finished", "persistent")

	expected := `
		# HELP quarry_events_published_total Total number of published stream events by event and delivery class
		# TYPE quarry_events_published_total counter
		quarry_events_published_total{class="persistent",event="decision.final"} 1
		quarry_events_published_total{class="persistent",event="tool.finished"} 1
		quarry_events_published_total{class="transient",event="decision.partial"} 2
	`
	err := testutil.CollectAndCompare(m.EventCounter, strings.NewReader(expected))
	require.NoError(t, err)
}

func TestSubscriberGauge(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.SubscriberConnected("sse")
	m.SubscriberConnected("sse")
	m.SubscriberConnected("ws")
	m.SubscriberDisconnected("sse")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventSubscribers.WithLabelValues("sse")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventSubscribers.WithLabelValues("ws")))

	m.SubscriberDisconnected("sse")
	m.SubscriberDisconnected("ws")

	assert.Equal(t, 0.0, testutil.ToFloat64(m.EventSubscribers.WithLabelValues("sse")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.EventSubscribers.WithLabelValues("ws")))
}

func TestQueueMetrics(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.SetQueueDepth(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(m.QueueDepth))

	m.SetQueueDepth(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.QueueDepth))

	m.RecordQueueClaim("claimed")
	m.RecordQueueClaim("claimed")
	m.RecordQueueClaim("empty")
	m.RecordQueueClaim("orphan_recovered")

	expected := `
		# HELP quarry_queue_claims_total Total number of queue claim attempts by outcome
		# TYPE quarry_queue_claims_total counter
		quarry_queue_claims_total{outcome="claimed"} 2
		quarry_queue_claims_total{outcome="empty"} 1
		quarry_queue_claims_total{outcome="orphan_recovered"} 1
	`
	err := testutil.CollectAndCompare(m.QueueClaimCounter, strings.NewReader(expected))
	require.NoError(t, err)
}

func TestRecordScoring(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordScoring("response_quality", 1.2)
	m.RecordScoring("instruction_effectiveness", 0.8)
	m.RecordScoring("instruction_effectiveness", 0.9)

	assert.Equal(t, 2, testutil.CollectAndCount(m.ScoringDuration))
}

func TestRecordHTTPRequest(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordHTTPRequest("POST", "/api/v1/completions", "201", 0.02)
	m.RecordHTTPRequest("GET", "/api/v1/completions/:id/stream", "200", 0.001)
	m.RecordHTTPRequest("POST", "/api/v1/completions", "201", 0.03)

	expected := `
		# HELP quarry_http_requests_total Total number of HTTP requests
		# TYPE quarry_http_requests_total counter
		quarry_http_requests_total{method="GET",path="/api/v1/completions/:id/stream",status_code="200"} 1
		quarry_http_requests_total{method="POST",path="/api/v1/completions",status_code="201"} 2
	`
	err := testutil.CollectAndCompare(m.HTTPRequestCounter, strings.NewReader(expected))
	require.NoError(t, err)

	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestNilMetricsIsNoOp(t *testing.T) {
	var m *Metrics

	// Unmetered components pass nil; every recording method must be a no-op.
	assert.NotPanics(t, func() {
		m.RecordCompletion("completed", 1.0, 2)
		m.RecordPlannerRequest("research", "success", 0.5, 100, 50)
		m.RecordPlannerRetry("validation_error")
		m.RecordToolExecution("execute_query", "success", 0.2)
		m.RecordToolRetry("execute_query")
		m.EventPublished("decision.final", "persistent")
		m.SubscriberConnected("sse")
		m.SubscriberDisconnected("sse")
		m.SetQueueDepth(3)
		m.RecordQueueClaim("claimed")
		m.RecordScoring("response_quality", 0.1)
		m.RecordHTTPRequest("GET", "/healthz", "200", 0.001)
	})
}
