package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/toolexecution"
)

// orphanState tracks orphan recovery metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanScans periodically recovers completions whose claimant stopped
// heartbeating, and refreshes the queue depth gauge. All pods run this
// independently; the status predicates make double recovery harmless.
func (p *WorkerPool) runOrphanScans(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverOrphans(ctx); err != nil {
				slog.Error("Orphan recovery failed", "error", err)
			}
			p.updateQueueDepth(ctx)
		}
	}
}

// recoverOrphans finds in_progress completions with stale heartbeats and
// pushes them back to the queue. Rows claimed before the heartbeat column
// ever got written fall back to the claim time.
func (p *WorkerPool) recoverOrphans(ctx context.Context) error {
	cutoff := time.Now().Add(-p.config.OrphanThreshold)

	orphaned, err := p.client.Completion.Query().
		Where(
			completion.StatusEQ(completion.StatusInProgress),
			completion.Or(
				completion.HeartbeatAtLT(cutoff),
				completion.And(
					completion.HeartbeatAtIsNil(),
					completion.ClaimedAtLT(cutoff),
				),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned completions: %w", err)
	}

	if len(orphaned) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned completions", "count", len(orphaned))

	recovered := 0
	for _, row := range orphaned {
		if err := p.recoverOrphanedRun(ctx, row); err != nil {
			slog.Error("Failed to recover orphaned completion",
				"completion_id", row.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun closes out the dead claimant's rows and re-queues a
// single completion.
func (p *WorkerPool) recoverOrphanedRun(ctx context.Context, row *ent.Completion) error {
	lastHeartbeat := "never"
	if row.HeartbeatAt != nil {
		lastHeartbeat = row.HeartbeatAt.Format(time.RFC3339)
	}
	claimedBy := "unknown"
	if row.ClaimedBy != nil {
		claimedBy = *row.ClaimedBy
	}

	closeAbandonedRun(ctx, p.client, row.ID, agentexecution.StatusError,
		fmt.Sprintf("orphaned: no heartbeat from pod %s since %s", claimedBy, lastHeartbeat))

	n, err := requeueCompletion(ctx, p.client, row.ID)
	if err != nil {
		return fmt.Errorf("failed to re-queue orphaned completion: %w", err)
	}
	if n > 0 {
		slog.Warn("Orphaned completion re-queued",
			"completion_id", row.ID,
			"old_pod", claimedBy,
			"last_heartbeat", lastHeartbeat)
	}
	return nil
}

// RecoverStartupOrphans re-queues completions claimed by this pod before it
// restarted. Called once during startup, before the worker pool begins
// processing.
func RecoverStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	rows, err := client.Completion.Query().
		Where(
			completion.StatusEQ(completion.StatusInProgress),
			completion.ClaimedByEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(rows) == 0 {
		return nil
	}

	slog.Warn("Found completions claimed before restart",
		"pod_id", podID,
		"count", len(rows))

	for _, row := range rows {
		closeAbandonedRun(ctx, client, row.ID, agentexecution.StatusError,
			fmt.Sprintf("pod %s restarted while the run was in progress", podID))

		if _, err := requeueCompletion(ctx, client, row.ID); err != nil {
			slog.Error("Failed to re-queue startup orphan",
				"completion_id", row.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan re-queued", "completion_id", row.ID)
	}

	return nil
}

// requeueCompletion pushes an in_progress completion back to queued and
// clears its claim fields. Returns the number of rows updated (0 when a
// finalizer won the race).
func requeueCompletion(ctx context.Context, client *ent.Client, completionID string) (int, error) {
	return client.Completion.Update().
		Where(
			completion.IDEQ(completionID),
			completion.StatusEQ(completion.StatusInProgress),
		).
		SetStatus(completion.StatusQueued).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearHeartbeatAt().
		Save(ctx)
}

// closeAbandonedRun closes the open rows of a run that ended without the
// loop's own finalizer: in-flight tool executions go to error, open agent
// executions get execStatus, and in-flight blocks are stopped. Failures are
// logged and skipped; the rows stay recoverable on the next scan.
func closeAbandonedRun(ctx context.Context, client *ent.Client, completionID string, execStatus agentexecution.Status, message string) {
	now := time.Now()

	execIDs, err := client.AgentExecution.Query().
		Where(
			agentexecution.CompletionIDEQ(completionID),
			agentexecution.StatusEQ(agentexecution.StatusInProgress),
		).
		IDs(ctx)
	if err != nil {
		slog.Warn("Failed to query open executions for recovery",
			"completion_id", completionID, "error", err)
		return
	}
	if len(execIDs) == 0 {
		return
	}

	// In-flight tools never got their terminal event; close the rows so the
	// projection shows them failed rather than forever running.
	if _, err := client.ToolExecution.Update().
		Where(
			toolexecution.AgentExecutionIDIn(execIDs...),
			toolexecution.StatusEQ(toolexecution.StatusInProgress),
		).
		SetStatus(toolexecution.StatusError).
		SetErrorMessage("run interrupted before the tool finished").
		SetCompletedAt(now).
		Save(ctx); err != nil {
		slog.Warn("Failed to close in-flight tool executions",
			"completion_id", completionID, "error", err)
	}

	execUpdate := client.AgentExecution.Update().
		Where(agentexecution.IDIn(execIDs...)).
		SetStatus(execStatus).
		SetCompletedAt(now)
	if message != "" {
		execUpdate = execUpdate.SetErrorMessage(message)
	}
	if _, err := execUpdate.Save(ctx); err != nil {
		slog.Warn("Failed to close abandoned executions",
			"completion_id", completionID, "error", err)
	}

	if _, err := client.CompletionBlock.Update().
		Where(
			completionblock.CompletionIDEQ(completionID),
			completionblock.StatusEQ(completionblock.StatusInProgress),
		).
		SetStatus(completionblock.StatusStopped).
		SetCompletedAt(now).
		Save(ctx); err != nil {
		slog.Warn("Failed to stop abandoned blocks",
			"completion_id", completionID, "error", err)
	}
}

// updateQueueDepth refreshes the queue depth gauge.
func (p *WorkerPool) updateQueueDepth(ctx context.Context) {
	depth, err := p.client.Completion.Query().
		Where(completion.StatusEQ(completion.StatusQueued)).
		Count(ctx)
	if err != nil {
		slog.Warn("Failed to query queue depth", "error", err)
		return
	}
	p.metrics.SetQueueDepth(depth)
}
