package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/pkg/config"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes sessions.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	sessions *services.SessionService
	config   *config.Orchestration
	runner   Runner
	pool     SessionRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentSessionID  string
	sessionsProcessed int
	lastActivity      time.Time
}

// SessionRegistry is the subset of WorkerPool used by Worker for session
// registration.
type SessionRegistry interface {
	RegisterSession(sessionID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, sessions *services.SessionService, cfg *config.Orchestration, runner Runner, pool SessionRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		sessions:     sessions,
		config:       cfg,
		runner:       runner,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentSessionID:  w.currentSessionID,
		SessionsProcessed: w.sessionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSessionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing session", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a session, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Replica capacity check (best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Session.Query().
		Where(
			session.StatusEQ(session.StatusRunning),
			session.PodIDEQ(w.podID),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active sessions: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentSessions {
		return ErrAtCapacity
	}

	claimed, err := w.sessions.ClaimNextPendingSession(ctx, w.podID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return ErrNoSessionsAvailable
		}
		return fmt.Errorf("claiming session: %w", err)
	}

	log := slog.With("session_id", claimed.ID, "worker_id", w.id)
	log.Info("Session claimed")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Session context bounded by the duration budget plus slack for
	// claiming and bookkeeping; the runner enforces the exact budget.
	budget := time.Duration(claimed.MaxDurationSeconds)*time.Second + time.Minute
	sessionCtx, cancelSession := context.WithTimeout(ctx, budget)
	defer cancelSession()

	// Register cancel function for API-triggered cancellation.
	w.pool.RegisterSession(claimed.ID, cancelSession)
	defer w.pool.UnregisterSession(claimed.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(sessionCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	runErr := w.runner.Execute(sessionCtx, claimed)
	cancelHeartbeat()

	// The runner normally lands the session in a terminal state itself.
	// If it errored out, settle the session on a background context — the
	// session context may already be cancelled.
	if runErr != nil {
		log.Error("Runner failed", "error", runErr)
		w.settleAfterRunnerError(context.Background(), claimed.ID, sessionCtx.Err(), runErr)
	}

	w.mu.Lock()
	w.sessionsProcessed++
	w.mu.Unlock()

	log.Info("Session processing complete")
	return nil
}

// settleAfterRunnerError moves a session the runner abandoned mid-flight to a
// terminal state. Sessions the runner already settled are left alone.
func (w *Worker) settleAfterRunnerError(ctx context.Context, sessionID string, ctxErr, runErr error) {
	sess, err := w.sessions.GetSession(ctx, sessionID)
	if err != nil {
		slog.Error("Failed to load session for settlement", "session_id", sessionID, "error", err)
		return
	}
	status := domain.SessionStatus(sess.Status)
	if status != domain.SessionQueued && status != domain.SessionRunning {
		return
	}

	switch {
	case errors.Is(ctxErr, context.DeadlineExceeded):
		if _, err := w.sessions.TransitionStatus(ctx, sessionID, domain.SessionTimeout, "worker deadline exceeded"); err != nil {
			slog.Error("Failed to time out abandoned session", "session_id", sessionID, "error", err)
		}
	case errors.Is(ctxErr, context.Canceled):
		if _, err := w.sessions.CancelSession(ctx, sessionID, "worker cancelled"); err != nil {
			slog.Error("Failed to cancel abandoned session", "session_id", sessionID, "error", err)
		}
	default:
		if _, err := w.sessions.FailSession(ctx, sessionID, services.FailureInfo{
			Message:   runErr.Error(),
			Source:    "worker",
			Retryable: true,
		}); err != nil {
			slog.Error("Failed to fail abandoned session", "session_id", sessionID, "error", err)
		}
	}
}

// runHeartbeat periodically stamps last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.sessions.Heartbeat(ctx, sessionID); err != nil {
				slog.Warn("Heartbeat update failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}
