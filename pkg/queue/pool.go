package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/pkg/agent"
	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/metrics"
)

// runHandle pairs the cancel function for a claimed run with its sigkill
// signal. Setting the signal before cancelling lets the loop tell a sigkill
// apart from plain context death.
type runHandle struct {
	cancel  context.CancelFunc
	sigkill *agent.Signal
}

// WorkerPool manages a pool of queue workers plus the background tasks that
// keep the queue honest: orphan recovery and sigkill broadcast routing.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  RunExecutor
	publisher *events.EventPublisher
	hub       *events.Hub
	metrics   *metrics.Metrics
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Run cancel registry: completion_id → handle
	activeRuns map[string]runHandle
	mu         sync.RWMutex
	started    bool

	// Orphan recovery state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool. hub may be nil (sigkill
// broadcasts from other pods are not routed); publisher and m may be nil.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, publisher *events.EventPublisher, hub *events.Hub, m *metrics.Metrics) *WorkerPool {
	return &WorkerPool{
		podID:      podID,
		client:     client,
		config:     cfg,
		executor:   executor,
		publisher:  publisher,
		hub:        hub,
		metrics:    m,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		stopCh:     make(chan struct{}),
		activeRuns: make(map[string]runHandle),
	}
}

// Start spawns worker goroutines, the orphan recovery loop, and the
// cancellation watcher. It is safe to call multiple times; subsequent calls
// are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p, p.publisher, p.metrics)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanScans(ctx)
	}()

	if p.hub != nil {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.watchCancellations(ctx)
		}()
	}

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish. Workers
// abandon their current runs, which are re-queued for another pod.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveRunIDs()
	if len(active) > 0 {
		slog.Info("Abandoning active runs for re-queue",
			"count", len(active),
			"completion_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterRun stores the cancel handle for sigkill routing.
func (p *WorkerPool) RegisterRun(completionID string, cancel context.CancelFunc, sigkill *agent.Signal) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeRuns[completionID] = runHandle{cancel: cancel, sigkill: sigkill}
}

// UnregisterRun removes the cancel handle when processing ends.
func (p *WorkerPool) UnregisterRun(completionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeRuns, completionID)
}

// CancelRun interrupts a run held by this pod. Returns true if the run was
// found here; false means some other pod holds it (or it already finished).
func (p *WorkerPool) CancelRun(completionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	handle, ok := p.activeRuns[completionID]
	if !ok {
		return false
	}
	// Order matters: the loop reads the signal when its context dies to
	// decide between the sigkill and abandonment paths.
	handle.sigkill.Set()
	handle.cancel()
	return true
}

// watchCancellations routes update_completion broadcasts to the local cancel
// registry. Every pod subscribes to the global channel; the pod holding the
// run acts, the rest see a registry miss.
func (p *WorkerPool) watchCancellations(ctx context.Context) {
	for {
		sub, err := p.hub.Subscribe(ctx, events.GlobalCompletionsChannel)
		if err != nil {
			slog.Error("Failed to subscribe to cancellation broadcasts", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-p.stopCh:
				return
			case <-time.After(time.Second):
				continue
			}
		}

		again := p.consumeCancellations(ctx, sub)
		p.hub.Unsubscribe(sub)
		if !again {
			return
		}
		slog.Warn("Cancellation subscriber dropped, resubscribing", "pod_id", p.podID)
	}
}

// consumeCancellations reads frames until shutdown (returns false) or until
// the hub drops the subscriber for falling behind (returns true).
func (p *WorkerPool) consumeCancellations(ctx context.Context, sub *events.Subscriber) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case <-p.stopCh:
			return false
		case frame, ok := <-sub.Events():
			if !ok {
				return true
			}
			p.routeCancellation(frame)
		}
	}
}

// routeCancellation inspects one global-channel frame and cancels the run
// locally if this pod holds it. Frames other than update_completion pass
// through untouched.
func (p *WorkerPool) routeCancellation(frame []byte) {
	var payload events.CompletionUpdatePayload
	if err := json.Unmarshal(frame, &payload); err != nil {
		return
	}
	if payload.Event != events.EventTypeCompletionUpdate {
		return
	}
	if p.CancelRun(payload.CompletionID) {
		slog.Info("Sigkill broadcast cancelled local run",
			"completion_id", payload.CompletionID,
			"pod_id", p.podID)
	}
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Completion.Query().
		Where(completion.StatusEQ(completion.StatusQueued)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeRuns, errA := p.client.Completion.Query().
		Where(
			completion.StatusEQ(completion.StatusInProgress),
			completion.ClaimedByEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active runs for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status: if the DB is unreachable the pool
	// cannot claim, heartbeat, or finalize.
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeRuns <= p.config.MaxConcurrentRuns && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active runs query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveRuns:       activeRuns,
		MaxConcurrent:    p.config.MaxConcurrentRuns,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveRunIDs returns IDs of runs currently held by this pod (for logging).
func (p *WorkerPool) getActiveRunIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeRuns))
	for id := range p.activeRuns {
		ids = append(ids, id)
	}
	return ids
}
