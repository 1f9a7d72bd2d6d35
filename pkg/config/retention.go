package config

import "time"

// RetentionConfig controls how long auxiliary rows are kept.
type RetentionConfig struct {
	// EventTTL is how long outbox events stay available for catchup.
	EventTTL time.Duration `yaml:"event_ttl"`

	// SnapshotRetentionDays is how long context snapshots are kept.
	SnapshotRetentionDays int `yaml:"snapshot_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:              6 * time.Hour,
		SnapshotRetentionDays: 30,
		CleanupInterval:       1 * time.Hour,
	}
}
