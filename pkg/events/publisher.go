package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes completion stream events.
// Persistent events are stored in the events outbox then broadcast via
// NOTIFY in the same transaction. Transient events (streaming deltas) are
// broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. Internally, payloads are marshaled to JSON and routed to the
// channel derived from the completion id via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Decision events ---

// PublishDecisionPartial broadcasts a decision.partial transient event.
// High-frequency; the decision.final frame subsumes lost partials.
func (p *EventPublisher) PublishDecisionPartial(ctx context.Context, payload DecisionPartialPayload) error {
	return p.publishTransient(ctx, payload.CompletionID, payload)
}

// PublishDecisionFinal persists and broadcasts a decision.final event.
func (p *EventPublisher) PublishDecisionFinal(ctx context.Context, payload DecisionFinalPayload) error {
	return p.publishPersistent(ctx, payload.CompletionID, payload)
}

// --- Block events ---

// PublishBlockUpsert persists and broadcasts a block.upsert event carrying
// the full render state of one block.
func (p *EventPublisher) PublishBlockUpsert(ctx context.Context, payload BlockUpsertPayload) error {
	return p.publishPersistent(ctx, payload.CompletionID, payload)
}

// PublishBlockDelta broadcasts a block.delta.artifact transient event.
func (p *EventPublisher) PublishBlockDelta(ctx context.Context, payload BlockDeltaPayload) error {
	return p.publishTransient(ctx, payload.CompletionID, payload)
}

// --- Tool events ---

// PublishToolStarted persists and broadcasts a tool.started event.
func (p *EventPublisher) PublishToolStarted(ctx context.Context, payload ToolStartedPayload) error {
	return p.publishPersistent(ctx, payload.CompletionID, payload)
}

// PublishToolProgress broadcasts a tool.progress transient event.
func (p *EventPublisher) PublishToolProgress(ctx context.Context, payload ToolProgressPayload) error {
	return p.publishTransient(ctx, payload.CompletionID, payload)
}

// PublishToolPartial broadcasts a tool.partial transient event.
func (p *EventPublisher) PublishToolPartial(ctx context.Context, payload ToolPartialPayload) error {
	return p.publishTransient(ctx, payload.CompletionID, payload)
}

// PublishToolStdout broadcasts a tool.stdout transient event.
func (p *EventPublisher) PublishToolStdout(ctx context.Context, payload ToolStdoutPayload) error {
	return p.publishTransient(ctx, payload.CompletionID, payload)
}

// PublishToolFinished persists and broadcasts a tool.finished event.
func (p *EventPublisher) PublishToolFinished(ctx context.Context, payload ToolFinishedPayload) error {
	return p.publishPersistent(ctx, payload.CompletionID, payload)
}

// --- Planner events ---

// PublishPlannerRetry persists and broadcasts a planner.retry event.
func (p *EventPublisher) PublishPlannerRetry(ctx context.Context, payload PlannerRetryPayload) error {
	return p.publishPersistent(ctx, payload.CompletionID, payload)
}

// --- Completion lifecycle events ---

// PublishCompletionStarted persists a completion.started event on the
// completion channel and broadcasts a transient copy to the global channel.
func (p *EventPublisher) PublishCompletionStarted(ctx context.Context, payload CompletionStartedPayload) error {
	return p.publishLifecycle(ctx, payload.CompletionID, payload)
}

// PublishCompletionFinished persists the stream terminator and broadcasts a
// transient copy to the global channel.
func (p *EventPublisher) PublishCompletionFinished(ctx context.Context, payload CompletionFinishedPayload) error {
	return p.publishLifecycle(ctx, payload.CompletionID, payload)
}

// PublishCompletionError persists a completion.error event and broadcasts a
// transient copy to the global channel.
func (p *EventPublisher) PublishCompletionError(ctx context.Context, payload CompletionErrorPayload) error {
	return p.publishLifecycle(ctx, payload.CompletionID, payload)
}

// PublishCompletionUpdate persists an update_completion event (the sigkill
// broadcast) and fans a transient copy to the global channel where every
// worker pod listens.
func (p *EventPublisher) PublishCompletionUpdate(ctx context.Context, payload CompletionUpdatePayload) error {
	return p.publishLifecycle(ctx, payload.CompletionID, payload)
}

// --- Artifact events ---

// PublishArtifact persists and broadcasts a query.created,
// visualization.created or visualization.updated event; the concrete name
// rides in the envelope.
func (p *EventPublisher) PublishArtifact(ctx context.Context, payload ArtifactPayload) error {
	return p.publishPersistent(ctx, payload.CompletionID, payload)
}

// --- Instruction suggestion events ---

// PublishSuggestStarted persists and broadcasts instructions.suggest.started.
func (p *EventPublisher) PublishSuggestStarted(ctx context.Context, payload SuggestPayload) error {
	return p.publishPersistent(ctx, payload.CompletionID, payload)
}

// PublishSuggestPartial broadcasts a transient instructions.suggest.partial.
func (p *EventPublisher) PublishSuggestPartial(ctx context.Context, payload SuggestPayload) error {
	return p.publishTransient(ctx, payload.CompletionID, payload)
}

// PublishSuggestFinished persists and broadcasts instructions.suggest.finished.
func (p *EventPublisher) PublishSuggestFinished(ctx context.Context, payload SuggestPayload) error {
	return p.publishPersistent(ctx, payload.CompletionID, payload)
}

// --- Internal core methods ---

func (p *EventPublisher) publishPersistent(ctx context.Context, completionID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return p.persistAndNotify(ctx, completionID, CompletionChannel(completionID), payloadJSON)
}

func (p *EventPublisher) publishTransient(ctx context.Context, completionID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return p.notifyOnly(ctx, CompletionChannel(completionID), payloadJSON)
}

// publishLifecycle persists on the completion channel and broadcasts a
// transient copy on the global channel. Both publishes are best-effort: if
// the persistent one fails, the transient one is still attempted. Returns the
// first error encountered (if any).
func (p *EventPublisher) publishLifecycle(ctx context.Context, completionID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, completionID, CompletionChannel(completionID), payloadJSON); err != nil {
		slog.Warn("Failed to publish lifecycle event to completion channel",
			"completion_id", completionID, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalCompletionsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish lifecycle event to global channel",
			"completion_id", completionID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// persistAndNotify persists a pre-marshaled event to the outbox and
// broadcasts via NOTIFY in a single transaction (pg_notify is transactional,
// held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, completionID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to the events outbox (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (channel, completion_id, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		channel, completionID, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, keeping only the envelope fields the client needs to
// fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Event            string `json:"event"`
		CompletionID     string `json:"completion_id"`
		AgentExecutionID string `json:"agent_execution_id"`
		Seq              int    `json:"seq"`
		DBEventID        *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"event":         routing.Event,
		"completion_id": routing.CompletionID,
		"seq":           routing.Seq,
		"truncated":     true,
	}
	if routing.AgentExecutionID != "" {
		truncated["agent_execution_id"] = routing.AgentExecutionID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
