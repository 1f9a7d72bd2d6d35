package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/pkg/agent"
	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/metrics"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes completions.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  RunExecutor
	pool      RunRegistry
	publisher *events.EventPublisher
	metrics   *metrics.Metrics
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu                  sync.RWMutex
	status              WorkerStatus
	currentCompletionID string
	runsProcessed       int
	lastActivity        time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run registration.
type RunRegistry interface {
	RegisterRun(completionID string, cancel context.CancelFunc, sigkill *agent.Signal)
	UnregisterRun(completionID string)
}

// NewWorker creates a new queue worker.
// publisher may be nil (lifecycle events for recovered runs are skipped).
// m may be nil (metrics disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, pool RunRegistry, publisher *events.EventPublisher, m *metrics.Metrics) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		publisher:    publisher,
		metrics:      m,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                  w.id,
		Status:              string(w.status),
		CurrentCompletionID: w.currentCompletionID,
		RunsProcessed:       w.runsProcessed,
		LastActivity:        w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a completion, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check (best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Completion.Query().
		Where(completion.StatusEQ(completion.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		w.metrics.RecordQueueClaim("at_capacity")
		return ErrAtCapacity
	}

	claimed, err := w.claimNextRun(ctx)
	if err != nil {
		if errors.Is(err, ErrNoRunsAvailable) {
			w.metrics.RecordQueueClaim("empty")
		}
		return err
	}
	w.metrics.RecordQueueClaim("claimed")

	w.process(ctx, claimed)
	return nil
}

// process drives one claimed completion through the executor and recovers
// whatever the executor abandoned.
func (w *Worker) process(ctx context.Context, claimed *ent.Completion) {
	log := slog.With("completion_id", claimed.ID, "worker_id", w.id)
	log.Info("Run claimed")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	run := agent.NewRun(claimed)

	// A sigkill requested while the completion was still queued is persisted
	// but never broadcast to a holder; honor it on claim.
	if claimed.SigkillAt != nil {
		run.Sigkill.Set()
	}

	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// Register the cancel handle for sigkill broadcast routing.
	w.pool.RegisterRun(claimed.ID, cancelRun, run.Sigkill)
	defer w.pool.UnregisterRun(claimed.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	// The loop finalizes rows and events itself for every termination it can
	// see; only abandonment comes back here.
	err := w.executor.Execute(runCtx, run)

	cancelHeartbeat()

	switch {
	case err == nil:
		log.Info("Run processing complete")
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("Run timed out, finalizing as error", "timeout", w.config.RunTimeout)
		w.failTimedOutRun(context.Background(), claimed)
	case errors.Is(err, context.Canceled):
		if run.Sigkill.Signalled() {
			// Cancellation raced ahead of the loop's own sigkill finalizer.
			log.Warn("Run cancelled before the loop could finalize, stopping it here")
			w.stopAbandonedRun(context.Background(), claimed)
		} else {
			log.Info("Run abandoned for shutdown, re-queueing")
			w.requeueRun(context.Background(), claimed)
		}
	default:
		// Fatal persistence failure; the loop already finalized what it could.
		log.Error("Run failed", "error", err)
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()
}

// claimNextRun atomically claims the oldest queued completion using
// FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.Completion, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	row, err := tx.Completion.Query().
		Where(completion.StatusEQ(completion.StatusQueued)).
		Order(ent.Asc(completion.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query queued completion: %w", err)
	}

	// Claim: set in_progress plus the claim fields driving orphan detection.
	now := time.Now()
	row, err = row.Update().
		SetStatus(completion.StatusInProgress).
		SetClaimedBy(w.podID).
		SetClaimedAt(now).
		SetHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim completion: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return row, nil
}

// runHeartbeat periodically refreshes heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, completionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Completion.UpdateOneID(completionID).
				SetHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "completion_id", completionID, "error", err)
			}
		}
	}
}

// failTimedOutRun finalizes a run whose context hit RunTimeout: open rows are
// closed, the completion goes terminal error, and subscribers get the error
// frame the loop never reached.
func (w *Worker) failTimedOutRun(ctx context.Context, row *ent.Completion) {
	message := fmt.Sprintf("run timed out after %v", w.config.RunTimeout)
	closeAbandonedRun(ctx, w.client, row.ID, agentexecution.StatusError, message)

	// Status predicate keeps this write-once against a finalizer race.
	n, err := w.client.Completion.Update().
		Where(
			completion.IDEQ(row.ID),
			completion.StatusEQ(completion.StatusInProgress),
		).
		SetStatus(completion.StatusError).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to fail timed out completion", "completion_id", row.ID, "error", err)
		return
	}
	if n == 0 {
		return
	}
	w.metrics.RecordCompletion(string(completion.StatusError), w.config.RunTimeout.Seconds(), 0)
	w.publishLifecycle(row, completion.StatusError, message)
}

// stopAbandonedRun finalizes a sigkilled run the loop could not close out.
func (w *Worker) stopAbandonedRun(ctx context.Context, row *ent.Completion) {
	closeAbandonedRun(ctx, w.client, row.ID, agentexecution.StatusSigkill, "")

	n, err := w.client.Completion.Update().
		Where(
			completion.IDEQ(row.ID),
			completion.StatusEQ(completion.StatusInProgress),
		).
		SetStatus(completion.StatusStopped).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to stop abandoned completion", "completion_id", row.ID, "error", err)
		return
	}
	if n == 0 {
		return
	}
	w.publishLifecycle(row, completion.StatusStopped, "")
}

// requeueRun pushes an abandoned completion back to the queue for another
// pod. Open execution rows are closed first so the next claim starts a fresh
// execution.
func (w *Worker) requeueRun(ctx context.Context, row *ent.Completion) {
	closeAbandonedRun(ctx, w.client, row.ID, agentexecution.StatusError, "completion re-queued after pod shutdown")

	if _, err := requeueCompletion(ctx, w.client, row.ID); err != nil {
		slog.Error("Failed to re-queue completion", "completion_id", row.ID, "error", err)
	}
}

// publishLifecycle emits the terminal frame for a run finalized by the
// worker instead of the loop. Seq 0 marks an out-of-run event.
func (w *Worker) publishLifecycle(row *ent.Completion, status completion.Status, errorMessage string) {
	if w.publisher == nil {
		return
	}
	data := events.CompletionLifecycleData{
		ReportID:     row.ReportID,
		Status:       status,
		ErrorMessage: errorMessage,
	}
	var err error
	if status == completion.StatusError {
		err = w.publisher.PublishCompletionError(context.Background(), events.CompletionErrorPayload{
			BasePayload: events.NewBase(events.EventTypeCompletionError, row.ID, "", 0),
			Data:        data,
		})
	} else {
		err = w.publisher.PublishCompletionFinished(context.Background(), events.CompletionFinishedPayload{
			BasePayload: events.NewBase(events.EventTypeCompletionFinished, row.ID, "", 0),
			Data:        data,
		})
	}
	if err != nil {
		slog.Warn("Failed to publish terminal frame for recovered run",
			"completion_id", row.ID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, completionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentCompletionID = completionID
	w.lastActivity = time.Now()
}
