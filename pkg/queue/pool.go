package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/pkg/config"
	"github.com/maestro-hq/maestro/pkg/services"
)

// WorkerPool owns this replica's workers, the per-session cancel registry,
// and the orphan detection loop.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	sessions *services.SessionService
	config   *config.Orchestration
	runner   Runner
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// cancels maps session id to the cancel function interrupting its
	// runner. Entries exist only while the session runs on this pod.
	mu      sync.RWMutex
	cancels map[string]context.CancelFunc

	orphans orphanState
}

// NewWorkerPool creates a pool sized by cfg.WorkerCount. Start must be
// called before it processes anything.
func NewWorkerPool(podID string, client *ent.Client, sessions *services.SessionService, cfg *config.Orchestration, runner Runner) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		client:   client,
		sessions: sessions,
		config:   cfg,
		runner:   runner,
		workers:  make([]*Worker, 0, cfg.WorkerCount),
		stopCh:   make(chan struct{}),
		cancels:  make(map[string]context.CancelFunc),
	}
}

// Start launches the workers and the orphan detection loop. Calling Start
// on a started pool is a no-op.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)
	for i := 0; i < p.config.WorkerCount; i++ {
		w := NewWorker(fmt.Sprintf("%s-worker-%d", p.podID, i), p.podID, p.client, p.sessions, p.config, p.runner, p)
		p.workers = append(p.workers, w)
		w.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()
	return nil
}

// Stop drains the pool: workers finish their current session before
// exiting, then the orphan loop is stopped.
func (p *WorkerPool) Stop() {
	if active := p.activeIDs(); len(active) > 0 {
		slog.Info("Draining active sessions", "count", len(active), "session_ids", active)
	}
	for _, w := range p.workers {
		w.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Worker pool stopped", "pod_id", p.podID)
}

// RegisterSession records the cancel function for a session this pod just
// started running.
func (p *WorkerPool) RegisterSession(sessionID string, cancel context.CancelFunc) {
	p.mu.Lock()
	p.cancels[sessionID] = cancel
	p.mu.Unlock()
}

// UnregisterSession drops the cancel entry once the session settles.
func (p *WorkerPool) UnregisterSession(sessionID string) {
	p.mu.Lock()
	delete(p.cancels, sessionID)
	p.mu.Unlock()
}

// CancelSession interrupts a session's runner if it is executing on this
// pod. Reports whether the session was found here.
func (p *WorkerPool) CancelSession(sessionID string) bool {
	p.mu.RLock()
	cancel, ok := p.cancels[sessionID]
	p.mu.RUnlock()
	if ok {
		cancel()
	}
	return ok
}

// Health snapshots the pool. Unreachable storage makes the pool unhealthy
// since workers cannot claim or settle anything without it.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQueue := p.client.Session.Query().
		Where(
			session.Or(
				session.StatusEQ(session.StatusPending),
				session.And(session.StatusEQ(session.StatusQueued), session.PodIDIsNil()),
			),
			session.DeletedAtIsNil(),
		).
		Count(ctx)
	running, errRunning := p.client.Session.Query().
		Where(
			session.StatusEQ(session.StatusRunning),
			session.PodIDEQ(p.podID),
		).
		Count(ctx)

	workers := make([]WorkerHealth, len(p.workers))
	busy := 0
	for i, w := range p.workers {
		workers[i] = w.Health()
		if workers[i].Status == string(WorkerStatusWorking) {
			busy++
		}
	}

	p.orphans.mu.Lock()
	lastScan := p.orphans.lastOrphanScan
	recovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	h := &PoolHealth{
		IsHealthy:        len(p.workers) > 0 && running <= p.config.MaxConcurrentSessions,
		PodID:            p.podID,
		WorkerCount:      len(p.workers),
		BusyWorkers:      busy,
		ActiveSessions:   running,
		MaxConcurrent:    p.config.MaxConcurrentSessions,
		QueueDepth:       queueDepth,
		DBReachable:      true,
		Workers:          workers,
		LastOrphanScan:   lastScan,
		OrphansRecovered: recovered,
	}
	if err := firstError(errQueue, errRunning); err != nil {
		slog.Error("Pool health query failed", "pod_id", p.podID, "error", err)
		h.IsHealthy = false
		h.DBReachable = false
		h.DBError = err.Error()
	}
	return h
}

func (p *WorkerPool) activeIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.cancels))
	for id := range p.cancels {
		ids = append(ids, id)
	}
	return ids
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
