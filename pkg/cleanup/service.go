// Package cleanup provides the data retention loop.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/parleyhq/parley/pkg/config"
	"github.com/parleyhq/parley/pkg/services"
)

// Service periodically deletes terminal discussions older than the
// configured retention window. Active discussions are never touched.
// Deletion is idempotent and safe to run from multiple replicas.
type Service struct {
	config  config.RetentionConfig
	service *services.DiscussionService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, service *services.DiscussionService) *Service {
	return &Service{
		config:  cfg,
		service: service,
	}
}

// Start launches the background cleanup loop. A zero retention window
// means retention is disabled and Start is a no-op.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	if s.config.DiscussionRetentionDays <= 0 {
		slog.Info("Discussion retention disabled")
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"discussion_retention_days", s.config.DiscussionRetentionDays,
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

	s.deleteExpired(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.deleteExpired(ctx)
		}
	}
}

// deleteExpired uses a background context so an in-flight delete is not
// torn down mid-statement when the loop context is cancelled.
func (s *Service) deleteExpired(_ context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.DiscussionRetentionDays)
	count, err := s.service.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: delete expired discussions failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired discussions", "count", count)
	}
}
