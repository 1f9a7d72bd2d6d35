package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/quarryhq/quarry/pkg/agent"
	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/events"
	testdb "github.com/quarryhq/quarry/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestReport creates the report a completion hangs off.
func createTestReport(ctx context.Context, t *testing.T, client *ent.Client) *ent.Report {
	t.Helper()
	report, err := client.Report.Create().
		SetID(uuid.New().String()).
		SetOrganizationID("org-1").
		SetUserID("user-1").
		Save(ctx)
	require.NoError(t, err)
	return report
}

// createTestCompletion creates a completion in queued status.
func createTestCompletion(ctx context.Context, t *testing.T, client *ent.Client, reportID string) *ent.Completion {
	t.Helper()
	row, err := client.Completion.Create().
		SetID(uuid.New().String()).
		SetReportID(reportID).
		SetOrganizationID("org-1").
		SetUserID("user-1").
		SetPrompt(map[string]interface{}{"content": "run the numbers"}).
		Save(ctx)
	require.NoError(t, err)
	return row
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentRuns:       10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		RunTimeout:              30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		OrphanThreshold:         2 * time.Second,
		OrphanScanInterval:      time.Hour, // scans are triggered manually in tests
	}
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

// TestForUpdateSkipLockedClaiming tests that a worker atomically claims the
// oldest queued completion and stamps the claim fields.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	report := createTestReport(ctx, t, client)
	older := createTestCompletion(ctx, t, client, report.ID)
	time.Sleep(10 * time.Millisecond)
	newer := createTestCompletion(ctx, t, client, report.ID)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil, nil)

	claimed, err := w.claimNextRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the queued completion")
	assert.Equal(t, older.ID, claimed.ID, "claims are FIFO by created_at")
	assert.Equal(t, completion.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "test-pod", *claimed.ClaimedBy)
	assert.NotNil(t, claimed.ClaimedAt)
	assert.NotNil(t, claimed.HeartbeatAt)

	claimed2, err := w.claimNextRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, claimed2.ID)

	// Queue drained
	claimed3, err := w.claimNextRun(ctx)
	assert.ErrorIs(t, err, ErrNoRunsAvailable)
	assert.Nil(t, claimed3, "no more queued completions should be available")
}

// TestConcurrentClaimsDistinctCompletions tests that concurrent workers never
// claim the same completion.
func TestConcurrentClaimsDistinctCompletions(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	report := createTestReport(ctx, t, client)
	queued := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		row := createTestCompletion(ctx, t, client, report.ID)
		queued[row.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil, nil, nil)
			row, err := w.claimNextRun(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, row.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Len(t, claimed, 5, "all 5 completions should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "completion %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := queued[id]
		assert.True(t, ok, "claimed completion %s was not in the original set", id)
	}
}

// TestOrphanRecovery tests that stale in_progress completions are re-queued
// and their open rows closed.
func TestOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	report := createTestReport(ctx, t, client)

	// Simulate a crash: in_progress with a stale heartbeat, plus the open
	// execution, block, and tool rows the dead pod left behind.
	stale := time.Now().Add(-10 * time.Minute)
	orphan := createTestCompletion(ctx, t, client, report.ID)
	orphan, err := orphan.Update().
		SetStatus(completion.StatusInProgress).
		SetClaimedBy("crashed-pod").
		SetClaimedAt(stale).
		SetHeartbeatAt(stale).
		Save(ctx)
	require.NoError(t, err)

	exec, err := client.AgentExecution.Create().
		SetID(uuid.New().String()).
		SetCompletionID(orphan.ID).
		SetReportID(report.ID).
		SetOrganizationID("org-1").
		SetUserID("user-1").
		Save(ctx)
	require.NoError(t, err)

	block, err := client.CompletionBlock.Create().
		SetID(uuid.New().String()).
		SetCompletionID(orphan.ID).
		SetAgentExecutionID(exec.ID).
		SetBlockIndex(0).
		SetLoopIndex(0).
		SetTitle("Analyzing revenue").
		Save(ctx)
	require.NoError(t, err)

	tool, err := client.ToolExecution.Create().
		SetID(uuid.New().String()).
		SetAgentExecutionID(exec.ID).
		SetSeq(2).
		SetToolName("execute_query").
		SetArguments(map[string]interface{}{"query": "select 1"}).
		Save(ctx)
	require.NoError(t, err)

	// A healthy run on another pod must not be touched.
	healthy := createTestCompletion(ctx, t, client, report.ID)
	_, err = healthy.Update().
		SetStatus(completion.StatusInProgress).
		SetClaimedBy("live-pod").
		SetClaimedAt(time.Now()).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: cfg,
	}

	require.NoError(t, pool.recoverOrphans(ctx))

	recovered, err := client.Completion.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, completion.StatusQueued, recovered.Status, "orphan goes back to the queue")
	assert.Nil(t, recovered.ClaimedBy)
	assert.Nil(t, recovered.ClaimedAt)
	assert.Nil(t, recovered.HeartbeatAt)

	closedExec, err := client.AgentExecution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, agentexecution.StatusError, closedExec.Status)
	assert.NotNil(t, closedExec.CompletedAt)
	require.NotNil(t, closedExec.ErrorMessage)
	assert.Contains(t, *closedExec.ErrorMessage, "no heartbeat from pod crashed-pod")

	closedTool, err := client.ToolExecution.Get(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, toolexecution.StatusError, closedTool.Status)
	assert.NotNil(t, closedTool.CompletedAt)

	closedBlock, err := client.CompletionBlock.Get(ctx, block.ID)
	require.NoError(t, err)
	assert.Equal(t, completionblock.StatusStopped, closedBlock.Status)
	assert.NotNil(t, closedBlock.CompletedAt)

	untouched, err := client.Completion.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, completion.StatusInProgress, untouched.Status, "healthy runs keep their claim")

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	assert.False(t, pool.orphans.lastOrphanScan.IsZero())
	pool.orphans.mu.Unlock()

	// A second scan finds nothing new.
	require.NoError(t, pool.recoverOrphans(ctx))
	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestStartupOrphanRecovery tests the one-time re-queue of completions this
// pod held before restarting.
func TestStartupOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	report := createTestReport(ctx, t, client)
	podID := "startup-test-pod"

	mine := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		row := createTestCompletion(ctx, t, client, report.ID)
		_, err := row.Update().
			SetStatus(completion.StatusInProgress).
			SetClaimedBy(podID).
			SetClaimedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
		mine = append(mine, row.ID)
	}

	other := createTestCompletion(ctx, t, client, report.ID)
	_, err := other.Update().
		SetStatus(completion.StatusInProgress).
		SetClaimedBy("other-pod").
		SetClaimedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, RecoverStartupOrphans(ctx, client, podID))

	for _, id := range mine {
		row, err := client.Completion.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, completion.StatusQueued, row.Status, "completion %s should be re-queued", id)
		assert.Nil(t, row.ClaimedBy)
	}

	untouched, err := client.Completion.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, completion.StatusInProgress, untouched.Status, "other pod's run should be untouched")
}

// mockExecutor finalizes completions the way the real loop does: terminal
// status written from inside Execute, sigkill honored as stopped.
type mockExecutor struct {
	client     *ent.Client
	processed  atomic.Int64
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, run *agent.Run) error {
	m.processed.Add(1)
	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	if run.Sigkill.Signalled() {
		return m.finalize(run, completion.StatusStopped)
	}

	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return m.interrupted(ctx, run)
		}
	} else {
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return m.interrupted(ctx, run)
		}
	}

	return m.finalize(run, completion.StatusCompleted)
}

func (m *mockExecutor) interrupted(ctx context.Context, run *agent.Run) error {
	if run.Sigkill.Signalled() {
		return m.finalize(run, completion.StatusStopped)
	}
	return ctx.Err()
}

func (m *mockExecutor) finalize(run *agent.Run, status completion.Status) error {
	return m.client.Completion.UpdateOneID(run.Completion.ID).
		SetStatus(status).
		Exec(context.Background())
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	report := createTestReport(ctx, t, client)
	for i := 0; i < 3; i++ {
		createTestCompletion(ctx, t, client, report.ID)
	}

	cfg := intTestQueueConfig()
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{client: client}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil, nil, nil)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for completions to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	done, err := client.Completion.Query().
		Where(completion.StatusEQ(completion.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, done, "all 3 completions should finish")

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.True(t, health.DBReachable)
}

// TestCapacityLimits tests that the global concurrent run limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	report := createTestReport(ctx, t, client)
	for i := 0; i < 5; i++ {
		createTestCompletion(ctx, t, client, report.ID)
	}

	// Workers match MaxConcurrentRuns to avoid startup races.
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentRuns = 2
	cfg.PollInterval = 50 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &mockExecutor{client: client, releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil, nil, nil)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for runs to reach the concurrency cap",
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentRuns) })

	// Give the pollers a chance to overshoot, then verify they did not.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int64(cfg.MaxConcurrentRuns), executor.inProgress.Load(),
		"no claims past MaxConcurrentRuns")

	dbInProgress, err := client.Completion.Query().
		Where(completion.StatusEQ(completion.StatusInProgress)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentRuns, dbInProgress)

	close(releaseCh)

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for all completions to be processed",
		func() bool { return executor.processed.Load() >= 5 })

	pool.Stop()

	done, err := client.Completion.Query().
		Where(completion.StatusEQ(completion.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, done, "all 5 completions should finish")
}

// TestHeartbeatUpdates tests that the heartbeat goroutine refreshes
// heartbeat_at.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	report := createTestReport(ctx, t, client)
	createTestCompletion(ctx, t, client, report.ID)

	cfg := intTestQueueConfig()
	cfg.HeartbeatInterval = 50 * time.Millisecond
	w := NewWorker("hb-worker", "test-pod", client, cfg, nil, nil, nil, nil)

	claimed, err := w.claimNextRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed.HeartbeatAt)
	initial := *claimed.HeartbeatAt

	hbCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go w.runHeartbeat(hbCtx, claimed.ID)

	awaitCondition(t, 5*time.Second, 25*time.Millisecond,
		"waiting for a heartbeat update",
		func() bool {
			row, err := client.Completion.Get(ctx, claimed.ID)
			return err == nil && row.HeartbeatAt != nil && row.HeartbeatAt.After(initial)
		})
}

// TestSigkillBroadcastCancelsRun tests cancel routing end to end: a global
// channel broadcast interrupts the local run and the executor finalizes it
// as stopped.
func TestSigkillBroadcastCancelsRun(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	report := createTestReport(ctx, t, client)
	row := createTestCompletion(ctx, t, client, report.ID)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	hub := events.NewHub(nil)
	executor := &mockExecutor{client: client, releaseCh: make(chan struct{})}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil, hub, nil)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 5*time.Second, 25*time.Millisecond,
		"waiting for the run to start",
		func() bool { return executor.inProgress.Load() == 1 })

	frame, err := json.Marshal(events.CompletionUpdatePayload{
		BasePayload: events.NewBase(events.EventTypeCompletionUpdate, row.ID, "", 0),
		Data:        events.CompletionUpdateData{SigkillAt: time.Now().UTC().Format(time.RFC3339Nano)},
	})
	require.NoError(t, err)

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for the broadcast to stop the run",
		func() bool {
			hub.Broadcast(events.GlobalCompletionsChannel, frame)
			updated, err := client.Completion.Get(ctx, row.ID)
			return err == nil && updated.Status == completion.StatusStopped
		})
}

// TestShutdownRequeuesActiveRuns tests that cancelling the pool's context
// mid-run pushes the claimed completion back to the queue.
func TestShutdownRequeuesActiveRuns(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	report := createTestReport(ctx, t, client)
	row := createTestCompletion(ctx, t, client, report.ID)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{client: client, releaseCh: make(chan struct{})}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil, nil, nil)

	poolCtx, cancelPool := context.WithCancel(ctx)
	require.NoError(t, pool.Start(poolCtx))

	awaitCondition(t, 5*time.Second, 25*time.Millisecond,
		"waiting for the run to start",
		func() bool { return executor.inProgress.Load() == 1 })

	// Simulate the graceful shutdown deadline expiring.
	cancelPool()
	pool.Stop()

	requeued, err := client.Completion.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, completion.StatusQueued, requeued.Status, "abandoned run goes back to the queue")
	assert.Nil(t, requeued.ClaimedBy)
	assert.Nil(t, requeued.HeartbeatAt)
}
