// Package cleanup enforces the durable-event retention policy.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/dialectic-dev/dialectic/pkg/config"
)

// EventPruner deletes durable events past their TTL. Implemented by
// services.EventService.
type EventPruner interface {
	CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error)
}

// Service periodically deletes expired durable event rows. The event log
// exists for WebSocket catchup replays; rows past the TTL are dead weight.
// Deletion is idempotent and safe to run from multiple replicas.
type Service struct {
	config config.RetentionConfig
	events EventPruner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, events EventPruner) *Service {
	return &Service{config: cfg, events: events}
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

	s.pruneExpiredEvents(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pruneExpiredEvents(ctx)
		}
	}
}

func (s *Service) pruneExpiredEvents(ctx context.Context) {
	count, err := s.events.CleanupExpiredEvents(ctx, s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired events", "count", count)
	}
}
