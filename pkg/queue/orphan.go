package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/pkg/services"
)

// orphanState carries sweep bookkeeping for the health snapshot.
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

func (s *orphanState) record(recovered int) {
	s.mu.Lock()
	s.lastOrphanScan = time.Now()
	s.orphansRecovered += recovered
	s.mu.Unlock()
}

// runOrphanDetection sweeps on the configured interval. Every pod sweeps;
// MarkOrphaned is status-asserted so concurrent sweeps cannot double-mark.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.sweepOrphans(ctx); err != nil {
				slog.Error("Orphan sweep failed", "error", err)
			}
		}
	}
}

// sweepOrphans marks claimed sessions with stale heartbeats as orphaned.
// Orphaned sessions stay recoverable through retry.
func (p *WorkerPool) sweepOrphans(ctx context.Context) error {
	stale, err := p.sessions.FindOrphanedSessions(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned sessions: %w", err)
	}
	if len(stale) == 0 {
		p.orphans.record(0)
		return nil
	}

	slog.Warn("Detected orphaned sessions", "count", len(stale))
	recovered := 0
	for _, sess := range stale {
		// Losing the status race to a live worker is fine.
		if err := p.sessions.MarkOrphaned(ctx, sess); err != nil {
			slog.Error("Failed to recover orphaned session", "session_id", sess.ID, "error", err)
			continue
		}
		recovered++
	}
	p.orphans.record(recovered)
	return nil
}

// CleanupStartupOrphans marks sessions this pod still owned when its
// previous incarnation died. Runs once at startup, before the pool starts.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, sessions *services.SessionService, podID string) error {
	leftovers, err := client.Session.Query().
		Where(
			session.StatusIn(session.StatusQueued, session.StatusRunning),
			session.PodIDEQ(podID),
			session.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(leftovers) == 0 {
		return nil
	}

	slog.Warn("Found sessions left over from previous run", "pod_id", podID, "count", len(leftovers))
	for _, sess := range leftovers {
		if err := sessions.MarkOrphaned(ctx, sess); err != nil {
			slog.Error("Failed to mark startup orphan", "session_id", sess.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "session_id", sess.ID)
	}
	return nil
}
