// Package queue claims queued completions and drives them through the agent
// loop. Claiming uses FOR UPDATE SKIP LOCKED so any number of pods can poll
// the same table without double-running a completion.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/quarryhq/quarry/pkg/agent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no queued completions are waiting.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor drives one claimed completion to a terminal state.
//
// The executor owns the run lifecycle internally: execution rows, blocks,
// decisions, tool executions, and events are written progressively while the
// loop runs, and normal terminations (including sigkill and breaker exits)
// finalize the completion before returning. The worker only handles
// claiming, heartbeats, and recovery of runs the executor had to abandon
// (timeout or shutdown).
type RunExecutor interface {
	Execute(ctx context.Context, run *agent.Run) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                  string    `json:"id"`
	Status              string    `json:"status"` // "idle" or "working"
	CurrentCompletionID string    `json:"current_completion_id,omitempty"`
	RunsProcessed       int       `json:"runs_processed"`
	LastActivity        time.Time `json:"last_activity"`
}
