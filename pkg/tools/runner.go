package tools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"strings"
	"time"

	"github.com/quarryhq/quarry/pkg/models"
)

// TimeoutPolicy bounds a single attempt. Start fires when no event arrives
// after invocation, Idle on silence between events, Hard on wall clock from
// invocation. A tool's TimeoutSeconds metadata overrides Hard.
type TimeoutPolicy struct {
	Start time.Duration
	Idle  time.Duration
	Hard  time.Duration
}

// RetryPolicy spaces attempts as Backoff * Multiplier^(attempt-1) plus a
// uniform jitter in [0, Jitter). MaxAttempts comes from tool metadata.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
	Multiplier  float64
	Jitter      time.Duration
}

// Defaults applied when a policy field is zero.
const (
	defaultStartTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultHardTimeout  = 5 * time.Minute
	defaultBackoff      = 500 * time.Millisecond
	defaultMultiplier   = 2.0
	defaultJitter       = 250 * time.Millisecond
)

func (p TimeoutPolicy) normalized() TimeoutPolicy {
	if p.Start <= 0 {
		p.Start = defaultStartTimeout
	}
	if p.Idle <= 0 {
		p.Idle = defaultIdleTimeout
	}
	if p.Hard <= 0 {
		p.Hard = defaultHardTimeout
	}
	return p
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.Backoff <= 0 {
		p.Backoff = defaultBackoff
	}
	if p.Multiplier <= 0 {
		p.Multiplier = defaultMultiplier
	}
	if p.Jitter < 0 {
		p.Jitter = defaultJitter
	}
	return p
}

// delay computes the backoff before the attempt following the given one.
func (p RetryPolicy) delay(attempt int) time.Duration {
	backoff := float64(p.Backoff) * math.Pow(p.Multiplier, float64(attempt-1))
	d := time.Duration(backoff)
	if p.Jitter > 0 {
		d += time.Duration(rand.Int64N(int64(p.Jitter)))
	}
	return d
}

// RunResult is the outcome of a tool run after all attempts. Cancelled runs
// carry a synthetic observation and must not produce a finished event.
type RunResult struct {
	Observation models.Observation
	Output      map[string]any
	Attempts    int
	Cancelled   bool
}

// Failed reports whether the run ended with an error observation.
func (r *RunResult) Failed() bool {
	return r.Observation.Failed()
}

// Runner drives one tool execution: it consumes the tool's event stream,
// applies stage side effects, enforces timeouts, and retries failed attempts
// within policy. Progress, partial, and stdout events are forwarded to the
// caller's emit func; start and terminal events are consumed here.
type Runner struct {
	registry   *Registry
	dispatcher *StageDispatcher
	timeouts   TimeoutPolicy
	retry      RetryPolicy
	logger     *slog.Logger
}

// NewRunner creates a runner. Zero policy fields take defaults.
func NewRunner(registry *Registry, dispatcher *StageDispatcher, timeouts TimeoutPolicy, retry RetryPolicy, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		registry:   registry,
		dispatcher: dispatcher,
		timeouts:   timeouts.normalized(),
		retry:      retry.normalized(),
		logger:     logger.With("component", "tool_runner"),
	}
}

// Run executes the named tool to completion. It returns an error only when
// the tool is not registered; every other failure mode is reported through
// the result's observation so the loop can observe it.
func (r *Runner) Run(ctx context.Context, name string, args map[string]any, rtc *RuntimeContext, emit func(Event)) (*RunResult, error) {
	tool, meta, err := r.registry.Get(name)
	if err != nil {
		return nil, err
	}
	if emit == nil {
		emit = func(Event) {}
	}
	// Idempotence state spans retry attempts, then dies with the run.
	defer r.dispatcher.Release(rtc.Scope.ToolExecutionID)

	policy := r.retry
	policy.MaxAttempts = meta.MaxRetries + 1

	var last attemptResult
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		last = r.runAttempt(ctx, tool, meta, args, rtc, emit)
		last.attempt = attempt

		if last.cancelled {
			return &RunResult{
				Observation: cancelledObservation(),
				Attempts:    attempt,
				Cancelled:   true,
			}, nil
		}
		if last.err == nil {
			return &RunResult{
				Observation: *last.observation,
				Output:      last.output,
				Attempts:    attempt,
			}, nil
		}

		if attempt == policy.MaxAttempts || !retryAllowed(meta, last) {
			break
		}

		delay := policy.delay(attempt)
		r.logger.Warn("Retrying tool after failed attempt",
			"tool", meta.Name,
			"attempt", attempt,
			"max_attempts", policy.MaxAttempts,
			"delay", delay,
			"error", last.err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return &RunResult{
				Observation: cancelledObservation(),
				Attempts:    attempt,
				Cancelled:   true,
			}, nil
		}
	}

	r.logger.Error("Tool run failed",
		"tool", meta.Name,
		"attempts", last.attempt,
		"code", last.errCode,
		"error", last.err)
	return &RunResult{
		Observation: failureObservation(last),
		Attempts:    last.attempt,
	}, nil
}

type attemptResult struct {
	attempt     int
	output      map[string]any
	observation *models.Observation
	err         error
	errCode     string
	cancelled   bool
}

func (r *Runner) runAttempt(ctx context.Context, tool Tool, meta Metadata, args map[string]any, rtc *RuntimeContext, emit func(Event)) attemptResult {
	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := tool.RunStream(attemptCtx, args, rtc)
	drain := func() {
		cancel()
		go func() {
			for range events {
			}
		}()
	}

	hard := r.timeouts.Hard
	if meta.TimeoutSeconds > 0 {
		hard = time.Duration(meta.TimeoutSeconds) * time.Second
	}
	hardTimer := time.NewTimer(hard)
	defer hardTimer.Stop()

	// Doubles as the start timeout until the first event lands.
	idleTimer := time.NewTimer(r.timeouts.Start)
	defer idleTimer.Stop()
	armed := r.timeouts.Start

	result := attemptResult{}
	sideEffects := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				result.err = errors.New("tool stream ended without a result")
				result.errCode = models.ErrCodeExecution
				return result
			}
			resetTimer(idleTimer, r.timeouts.Idle)
			armed = r.timeouts.Idle

			switch ev.Kind {
			case EventStart:
				// Consumed: it only proves the tool is alive.
			case EventProgress:
				if r.dispatcher.handlerFor(ev.Stage) != nil {
					sideEffects = true
				}
				if err := r.dispatcher.Dispatch(ctx, rtc, ev.Stage, ev.Detail); err != nil {
					drain()
					result.err = err
					result.errCode = models.ErrCodeExecution
					return result
				}
				emit(ev)
			case EventPartial, EventStdout:
				emit(ev)
			case EventEnd:
				if ev.Observation == nil {
					result.err = errors.New("tool ended without an observation")
					result.errCode = models.ErrCodeExecution
					return result
				}
				result.output = ev.Output
				result.observation = ev.Observation
				// Handlers run in this goroutine, so by the time the end
				// event lands every minted id is visible here. Tools never
				// read those fields themselves.
				if sideEffects {
					result.output = stampArtifacts(result.output, result.observation, rtc.Artifacts)
					if err := r.finalize(ctx, rtc, !result.observation.Failed()); err != nil {
						result.output, result.observation = nil, nil
						result.err = err
						result.errCode = models.ErrCodeExecution
						return result
					}
				}
				return result
			case EventError:
				err := ev.Err
				if err == nil {
					err = errors.New("tool reported an unspecified error")
				}
				drain()
				result.err = err
				result.errCode = models.ErrCodeExecution
				return result
			}

		case <-idleTimer.C:
			drain()
			result.err = fmt.Errorf("no tool event within %s", armed)
			result.errCode = models.ErrCodeTimeout
			return result

		case <-hardTimer.C:
			drain()
			result.err = fmt.Errorf("tool exceeded hard timeout of %s", hard)
			result.errCode = models.ErrCodeTimeout
			return result

		case <-ctx.Done():
			drain()
			result.cancelled = true
			return result
		}
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}

// retryAllowed implements the retry gate: idempotent tools always retry,
// everything else only on errors classified transient.
func retryAllowed(meta Metadata, last attemptResult) bool {
	if meta.Idempotent {
		return true
	}
	if last.errCode == models.ErrCodeTimeout {
		return true
	}
	return isTransient(last.err)
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"timeout",
		"temporarily unavailable",
		"too many requests",
		"rate limit",
		"service unavailable",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// finalize publishes the finished artifacts. Table usage is recorded for
// failed runs too, so a failure-path error only logs.
func (r *Runner) finalize(ctx context.Context, rtc *RuntimeContext, success bool) error {
	if rtc.Platform == nil {
		return nil
	}
	if err := rtc.Platform.FinalizeArtifacts(ctx, rtc.Scope, rtc.Artifacts, success); err != nil {
		if success {
			return fmt.Errorf("finalize artifacts: %w", err)
		}
		r.logger.Warn("Artifact finalize after failed tool", "error", err)
	}
	return nil
}

// stampArtifacts fills handler-minted artifact ids into the terminal
// observation and output without overwriting anything the tool set.
func stampArtifacts(output map[string]any, obs *models.Observation, state *ArtifactState) map[string]any {
	if state == nil {
		return output
	}
	if obs.StepID == "" {
		obs.StepID = state.StepID
	}
	if obs.WidgetID == "" {
		obs.WidgetID = state.WidgetID
	}
	if len(obs.CreatedVisualizationIDs) == 0 {
		obs.CreatedVisualizationIDs = state.CreatedVisualizationIDs
	}

	if output == nil {
		output = make(map[string]any)
	}
	setID := func(key, val string) {
		if val == "" {
			return
		}
		if _, exists := output[key]; !exists {
			output[key] = val
		}
	}
	setID("widget_id", state.WidgetID)
	setID("step_id", state.StepID)
	setID("query_id", state.QueryID)
	if _, exists := output["visualization_ids"]; !exists && len(state.CreatedVisualizationIDs) > 0 {
		output["visualization_ids"] = state.CreatedVisualizationIDs
	}
	return output
}

func cancelledObservation() models.Observation {
	return models.Observation{
		Summary: "cancelled",
		Error: &models.ObservationError{
			Code:    models.ErrCodeCancelled,
			Message: "run cancelled before the tool finished",
		},
	}
}

func failureObservation(last attemptResult) models.Observation {
	summary := "execution failed"
	if last.errCode == models.ErrCodeTimeout {
		summary = "timeout"
	}
	msg := ""
	if last.err != nil {
		msg = last.err.Error()
	}
	return models.Observation{
		Summary: summary,
		Error: &models.ObservationError{
			Code:    last.errCode,
			Message: msg,
		},
	}
}
