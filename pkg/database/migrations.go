package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search across assistant answers and the
// rendered transcript blocks.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for completion content full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_completions_content_gin
		ON completions USING gin(to_tsvector('english', COALESCE(content, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create completion content GIN index: %w", err)
	}

	// GIN index for block content full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_completion_blocks_content_gin
		ON completion_blocks USING gin(to_tsvector('english', COALESCE(content, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create block content GIN index: %w", err)
	}

	return nil
}

// CreateQueueIndexes creates PostgreSQL partial indexes for the completion
// queue that Ent cannot express. Claiming scans only queued rows in FIFO
// order and orphan recovery scans only in-progress rows by heartbeat age, so
// both predicates get a dedicated partial index.
func CreateQueueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS completion_queued_created_at
		ON completions (created_at)
		WHERE status = 'queued'`)
	if err != nil {
		return fmt.Errorf("failed to create queued claim index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS completion_in_progress_heartbeat_at
		ON completions (heartbeat_at)
		WHERE status = 'in_progress'`)
	if err != nil {
		return fmt.Errorf("failed to create orphan detection index: %w", err)
	}

	return nil
}
