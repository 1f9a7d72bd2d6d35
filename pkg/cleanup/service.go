// Package cleanup enforces data retention in the background.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes outbox Event rows past their catchup TTL
//   - Removes context snapshots past the retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config          *config.RetentionConfig
	eventService    *services.EventService
	snapshotService *services.SnapshotService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	eventService *services.EventService,
	snapshotService *services.SnapshotService,
) *Service {
	return &Service{
		config:          cfg,
		eventService:    eventService,
		snapshotService: snapshotService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"snapshot_retention_days", s.config.SnapshotRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupExpiredEvents(ctx)
	s.cleanupOldSnapshots(ctx)
}

func (s *Service) cleanupExpiredEvents(_ context.Context) {
	count, err := s.eventService.CleanupExpiredEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up expired events", "count", count)
	}
}

func (s *Service) cleanupOldSnapshots(_ context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.SnapshotRetentionDays)
	count, err := s.snapshotService.DeleteSnapshotsOlderThan(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: snapshot cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up old snapshots", "count", count)
	}
}
