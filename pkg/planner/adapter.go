// Package planner drives one planning call end to end: it assembles the
// prompt and tool catalog from rendered context sections, streams raw model
// output from the sidecar over gRPC, and decodes the stream into typed plan
// decisions. Raw model JSON never crosses the package boundary; consumers
// see tokens, monotonically growing partial decisions, and one validated
// final decision.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quarryhq/quarry/pkg/models"
)

// Update is one element of the decision stream produced by Stream.
type Update interface {
	updateType() UpdateType
}

// UpdateType identifies the kind of stream update.
type UpdateType string

const (
	UpdateTypeToken   UpdateType = "token"
	UpdateTypePartial UpdateType = "partial"
	UpdateTypeFinal   UpdateType = "final"
)

// TokenUpdate carries raw model text. The loop ignores it; it exists for
// debugging taps and token-level observers.
type TokenUpdate struct{ Text string }

// PartialUpdate carries a partial decision whose fields grow monotonically
// across the stream.
type PartialUpdate struct{ Decision *models.PlannerDecision }

// FinalUpdate carries the final decision, schema-validated or marked with a
// validation error. Exactly one is emitted per stream, always last.
type FinalUpdate struct{ Decision *models.PlannerDecision }

func (u *TokenUpdate) updateType() UpdateType   { return UpdateTypeToken }
func (u *PartialUpdate) updateType() UpdateType { return UpdateTypePartial }
func (u *FinalUpdate) updateType() UpdateType   { return UpdateTypeFinal }

// Adapter turns one planning call into a stream of typed decision updates.
type Adapter struct {
	client   Client
	defaults GenerationConfig
	logger   *slog.Logger
}

// NewAdapter wraps a planner client with prompt assembly and decoding.
// The generation config is applied to every call.
func NewAdapter(client Client, defaults GenerationConfig, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		client:   client,
		defaults: defaults,
		logger:   logger.With("component", "planner_adapter"),
	}
}

// Stream validates the input, issues the planning call, and returns the
// update stream. The channel closes after the final update. Input and
// transport failures are returned as errors; decode and provider failures
// arrive in-stream as a final decision carrying an error, which the loop
// treats as retryable.
func (a *Adapter) Stream(ctx context.Context, in *Input) (<-chan Update, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	req, err := in.Request(a.defaults)
	if err != nil {
		return nil, err
	}

	chunks, err := a.client.Plan(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("planner call failed: %w", err)
	}

	out := make(chan Update, 32)
	go a.pump(ctx, chunks, out)
	return out, nil
}

func (a *Adapter) pump(ctx context.Context, chunks <-chan Chunk, out chan<- Update) {
	defer close(out)

	dec := NewDecoder()
	started := time.Now()
	var usage *UsageChunk

	for chunk := range chunks {
		switch c := chunk.(type) {
		case *TokenChunk:
			if !a.send(ctx, out, &TokenUpdate{Text: c.Text}) {
				return
			}
			if partial := dec.Feed(c.Text); partial != nil {
				if !a.send(ctx, out, &PartialUpdate{Decision: partial}) {
					return
				}
			}
		case *UsageChunk:
			usage = c
		case *ErrorChunk:
			a.logger.Error("Planner stream failed",
				"code", c.Code, "error", c.Message, "retryable", c.Retryable)
			final := failedDecision(c)
			final.Metrics = metricsFrom(usage, time.Since(started))
			a.send(ctx, out, &FinalUpdate{Decision: final})
			return
		}
	}

	final, err := dec.Final()
	if err != nil {
		a.logger.Error("Decision schema unavailable", "error", err)
		final = invalidDecision(err.Error())
	}
	final.Metrics = metricsFrom(usage, time.Since(started))
	a.send(ctx, out, &FinalUpdate{Decision: final})
}

func (a *Adapter) send(ctx context.Context, out chan<- Update, u Update) bool {
	select {
	case out <- u:
		return true
	case <-ctx.Done():
		return false
	}
}

func failedDecision(c *ErrorChunk) *models.PlannerDecision {
	code := c.Code
	if code == "" {
		code = models.ErrCodeValidation
	}
	return &models.PlannerDecision{
		Error: &models.DecisionError{Code: code, Message: c.Message},
	}
}

func metricsFrom(usage *UsageChunk, elapsed time.Duration) *models.DecisionMetrics {
	m := &models.DecisionMetrics{LatencyMs: elapsed.Milliseconds()}
	if usage != nil {
		m.InputTokens = int(usage.InputTokens)
		m.OutputTokens = int(usage.OutputTokens)
		m.TotalTokens = int(usage.TotalTokens)
	}
	return m
}
