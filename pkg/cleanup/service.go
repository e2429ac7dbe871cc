// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/maestro-hq/maestro/pkg/config"
	"github.com/maestro-hq/maestro/pkg/events"
	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes sessions past the retention window
//   - Removes expired stored execution contexts
//   - Evicts agents whose heartbeats have gone stale
//   - Prunes event catch-up rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config   *config.Orchestration
	sessions *services.SessionService
	contexts *services.ContextService
	registry *registry.Registry
	events   *events.EventStore

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service. contexts, registry, and events may
// each be nil; the corresponding sweep is then skipped.
func NewService(
	cfg *config.Orchestration,
	sessions *services.SessionService,
	contexts *services.ContextService,
	reg *registry.Registry,
	store *events.EventStore,
) *Service {
	return &Service{
		config:   cfg,
		sessions: sessions,
		contexts: contexts,
		registry: reg,
		events:   store,
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
		"session_retention_days", s.config.SessionRetentionDays,
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

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes every configured sweep once.
func (s *Service) RunAll(ctx context.Context) {
	s.softDeleteOldSessions(ctx)
	s.sweepExpiredContexts(ctx)
	s.evictStaleAgents(ctx)
	s.pruneStoredEvents(ctx)
}

func (s *Service) softDeleteOldSessions(ctx context.Context) {
	count, err := s.sessions.SoftDeleteOldSessions(ctx, s.config.SessionRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete sessions failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old sessions", "count", count)
	}
}

func (s *Service) sweepExpiredContexts(ctx context.Context) {
	if s.contexts == nil {
		return
	}
	count, err := s.contexts.SweepExpired(ctx)
	if err != nil {
		slog.Error("Retention: context sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: swept expired contexts", "count", count)
	}
}

func (s *Service) evictStaleAgents(ctx context.Context) {
	if s.registry == nil {
		return
	}
	if removed := s.registry.CleanupStaleAgents(ctx, 0); len(removed) > 0 {
		slog.Info("Retention: evicted stale agents", "count", len(removed), "agent_ids", removed)
	}
}

func (s *Service) pruneStoredEvents(ctx context.Context) {
	if s.events == nil {
		return
	}
	count, err := s.events.DeleteOlderThan(ctx, time.Now().Add(-s.config.EventTTL))
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned stored events", "count", count)
	}
}
