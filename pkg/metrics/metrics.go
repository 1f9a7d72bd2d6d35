// Package metrics exposes Prometheus collectors for the completion runtime.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
//
// The collectors track:
//   - Completion throughput and wall time by terminal status
//   - Planner request latency, retries and token consumption
//   - Tool execution patterns and latencies
//   - Event stream volume and live subscriber counts
//   - Queue depth and claim outcomes for the worker pool
//
// All recording methods are safe to call on a nil *Metrics, so components
// can run unmetered in tests.
type Metrics struct {
	// CompletionCounter counts finished completion runs.
	// Labels: status (completed|stopped|error)
	CompletionCounter *prometheus.CounterVec

	// CompletionDuration measures completion run wall time in seconds.
	// Labels: status
	// Buckets: 0.5s .. 600s
	CompletionDuration *prometheus.HistogramVec

	// LoopIterations counts plan→act→observe iterations per run.
	// Buckets: 1 .. 15 (the runtime iteration ceiling)
	LoopIterations prometheus.Histogram

	// PlannerRequestCounter counts planner calls.
	// Labels: plan_type (research|action), status (success|error)
	PlannerRequestCounter *prometheus.CounterVec

	// PlannerRequestDuration measures planner call latency in seconds.
	// Labels: plan_type
	// Buckets: 0.1s .. 120s
	PlannerRequestDuration *prometheus.HistogramVec

	// PlannerRetryCounter counts planner retries by retry kind.
	// Labels: kind (validation_error|missing_action|stream_error)
	PlannerRetryCounter *prometheus.CounterVec

	// PlannerTokens tracks token consumption reported by the planner.
	// Labels: type (prompt|completion)
	PlannerTokens *prometheus.CounterVec

	// ToolExecutionCounter counts tool invocations.
	// Labels: tool_name, status (success|error)
	ToolExecutionCounter *prometheus.CounterVec

	// ToolExecutionDuration measures tool execution time in seconds.
	// Labels: tool_name
	// Buckets: 0.01s .. 60s
	ToolExecutionDuration *prometheus.HistogramVec

	// ToolRetryCounter counts tool retry attempts (not first attempts).
	// Labels: tool_name
	ToolRetryCounter *prometheus.CounterVec

	// EventCounter counts published stream events.
	// Labels: event, class (persistent|transient)
	EventCounter *prometheus.CounterVec

	// EventSubscribers is a gauge of attached stream subscribers.
	// Labels: transport (sse|ws)
	EventSubscribers *prometheus.GaugeVec

	// QueueDepth is a gauge of completions waiting in the queue.
	QueueDepth prometheus.Gauge

	// QueueClaimCounter counts queue claim attempts.
	// Labels: outcome (claimed|empty|orphan_recovered)
	QueueClaimCounter *prometheus.CounterVec

	// ScoringDuration measures post-run scoring latency in seconds.
	// Labels: kind (instruction_effectiveness|context_effectiveness|response_quality)
	ScoringDuration *prometheus.HistogramVec

	// HTTPRequestCounter counts HTTP requests.
	// Labels: method, path, status_code
	HTTPRequestCounter *prometheus.CounterVec

	// HTTPRequestDuration measures HTTP request latency in seconds.
	// Labels: method, path, status_code
	// Buckets: 0.001s .. 5s
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all collectors with the given registerer.
// Call once at startup with prometheus.DefaultRegisterer; tests pass a fresh
// prometheus.NewRegistry().
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CompletionCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_completions_total",
				Help: "Total number of finished completion runs by terminal status",
			},
			[]string{"status"},
		),

		CompletionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quarry_completion_duration_seconds",
				Help:    "Wall time of completion runs in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"status"},
		),

		LoopIterations: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "quarry_loop_iterations",
				Help:    "Plan-act-observe iterations per completion run",
				Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10, 12, 15},
			},
		),

		PlannerRequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_planner_requests_total",
				Help: "Total number of planner calls by plan type and status",
			},
			[]string{"plan_type", "status"},
		),

		PlannerRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quarry_planner_request_duration_seconds",
				Help:    "Duration of planner calls in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
			},
			[]string{"plan_type"},
		),

		PlannerRetryCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_planner_retries_total",
				Help: "Total number of planner retries by retry kind",
			},
			[]string{"kind"},
		),

		PlannerTokens: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_planner_tokens_total",
				Help: "Total number of planner tokens by type",
			},
			[]string{"type"},
		),

		ToolExecutionCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_tool_executions_total",
				Help: "Total number of tool executions by tool name and status",
			},
			[]string{"tool_name", "status"},
		),

		ToolExecutionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quarry_tool_execution_duration_seconds",
				Help:    "Duration of tool executions in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
			},
			[]string{"tool_name"},
		),

		ToolRetryCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_tool_retries_total",
				Help: "Total number of tool retry attempts by tool name",
			},
			[]string{"tool_name"},
		),

		EventCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_events_published_total",
				Help: "Total number of published stream events by event and delivery class",
			},
			[]string{"event", "class"},
		),

		EventSubscribers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "quarry_event_subscribers",
				Help: "Current number of attached stream subscribers by transport",
			},
			[]string{"transport"},
		),

		QueueDepth: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "quarry_queue_depth",
				Help: "Current number of completions waiting in the queue",
			},
		),

		QueueClaimCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_queue_claims_total",
				Help: "Total number of queue claim attempts by outcome",
			},
			[]string{"outcome"},
		),

		ScoringDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quarry_scoring_duration_seconds",
				Help:    "Duration of post-run scoring in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"kind"},
		),

		HTTPRequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quarry_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "path", "status_code"},
		),
	}
}

// RecordCompletion records a finished run with its terminal status, wall
// time and iteration count.
func (m *Metrics) RecordCompletion(status string, durationSeconds float64, iterations int) {
	if m == nil {
		return
	}
	m.CompletionCounter.WithLabelValues(status).Inc()
	m.CompletionDuration.WithLabelValues(status).Observe(durationSeconds)
	m.LoopIterations.Observe(float64(iterations))
}

// RecordPlannerRequest records one planner call.
func (m *Metrics) RecordPlannerRequest(planType, status string, durationSeconds float64, promptTokens, completionTokens int) {
	if m == nil {
		return
	}
	m.PlannerRequestCounter.WithLabelValues(planType, status).Inc()
	m.PlannerRequestDuration.WithLabelValues(planType).Observe(durationSeconds)
	if promptTokens > 0 {
		m.PlannerTokens.WithLabelValues("prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		m.PlannerTokens.WithLabelValues("completion").Add(float64(completionTokens))
	}
}

// RecordPlannerRetry counts one planner retry of the given kind.
func (m *Metrics) RecordPlannerRetry(kind string) {
	if m == nil {
		return
	}
	m.PlannerRetryCounter.WithLabelValues(kind).Inc()
}

// RecordToolExecution records one tool execution attempt outcome.
func (m *Metrics) RecordToolExecution(toolName, status string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.ToolExecutionCounter.WithLabelValues(toolName, status).Inc()
	m.ToolExecutionDuration.WithLabelValues(toolName).Observe(durationSeconds)
}

// RecordToolRetry counts one tool retry attempt.
func (m *Metrics) RecordToolRetry(toolName string) {
	if m == nil {
		return
	}
	m.ToolRetryCounter.WithLabelValues(toolName).Inc()
}

// EventPublished counts one published stream event.
// class is "persistent" or "transient".
func (m *Metrics) EventPublished(event, class string) {
	if m == nil {
		return
	}
	m.EventCounter.WithLabelValues(event, class).Inc()
}

// SubscriberConnected increments the subscriber gauge for a transport.
func (m *Metrics) SubscriberConnected(transport string) {
	if m == nil {
		return
	}
	m.EventSubscribers.WithLabelValues(transport).Inc()
}

// SubscriberDisconnected decrements the subscriber gauge for a transport.
func (m *Metrics) SubscriberDisconnected(transport string) {
	if m == nil {
		return
	}
	m.EventSubscribers.WithLabelValues(transport).Dec()
}

// SetQueueDepth records the current number of queued completions.
func (m *Metrics) SetQueueDepth(depth int) {
	if m == nil {
		return
	}
	m.QueueDepth.Set(float64(depth))
}

// RecordQueueClaim counts one claim attempt outcome.
func (m *Metrics) RecordQueueClaim(outcome string) {
	if m == nil {
		return
	}
	m.QueueClaimCounter.WithLabelValues(outcome).Inc()
}

// RecordScoring records one post-run scoring pass.
func (m *Metrics) RecordScoring(kind string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.ScoringDuration.WithLabelValues(kind).Observe(durationSeconds)
}

// RecordHTTPRequest records one handled HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestCounter.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(durationSeconds)
}
