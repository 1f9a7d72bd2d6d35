package config

import "time"

// QueueConfig contains queue and worker pool configuration. These values
// control how queued completions are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and claims completions.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRuns is the global limit of in-flight executions across
	// ALL replicas. Enforced by a database COUNT(*) check before claiming.
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// PollInterval is the base interval for checking queued completions.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval so
	// replicas do not poll in lockstep.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// RunTimeout is the maximum wall-clock time for one execution.
	RunTimeout time.Duration `yaml:"run_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active runs to
	// finish during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes heartbeat_at on the
	// completion it is processing.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanThreshold is how long a claimed completion can go without a
	// heartbeat before it is considered orphaned and re-queued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// OrphanScanInterval is how often each pool scans for orphaned
	// completions left behind by crashed or partitioned pods.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		MaxConcurrentRuns:       8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RunTimeout:              10 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
		HeartbeatInterval:       15 * time.Second,
		OrphanThreshold:         2 * time.Minute,
		OrphanScanInterval:      time.Minute,
	}
}
