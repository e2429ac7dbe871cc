package executor

import (
	"context"
	"log/slog"
	"time"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/events"
	"github.com/maestro-hq/maestro/pkg/services"
)

// AtRiskWindow is how close to its duration budget a running session gets
// before the monitor flags it.
const AtRiskWindow = 5 * time.Minute

// Monitor periodically sweeps running sessions, timing out those past their
// duration budget and flagging those about to reach it.
type Monitor struct {
	client    *ent.Client
	sessions  *services.SessionService
	publisher *events.EventPublisher
	interval  time.Duration
	logger    *slog.Logger
}

// NewMonitor creates a monitor. publisher may be nil.
func NewMonitor(client *ent.Client, sessions *services.SessionService, publisher *events.EventPublisher, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{
		client:    client,
		sessions:  sessions,
		publisher: publisher,
		interval:  interval,
		logger:    slog.With("component", "session_monitor"),
	}
}

// Start runs the sweep loop until the context is cancelled.
func (m *Monitor) Start(ctx context.Context) {
	m.logger.Info("Session monitor started", "interval", m.interval)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Session monitor stopped")
			return
		case <-ticker.C:
			timedOut, atRisk, err := m.Sweep(ctx)
			if err != nil {
				m.logger.Error("Sweep failed", "error", err)
			} else if timedOut > 0 || atRisk > 0 {
				m.logger.Info("Sweep finished", "timed_out", timedOut, "at_risk", atRisk)
			}
		}
	}
}

// Sweep examines every running session once. It returns how many sessions it
// timed out and how many it flagged as at risk.
func (m *Monitor) Sweep(ctx context.Context) (timedOut, atRisk int, err error) {
	running, err := m.sessions.RunningSessions(ctx)
	if err != nil {
		return 0, 0, err
	}

	now := time.Now()
	for _, sess := range running {
		startedAt := m.startedAt(ctx, sess)
		budget := time.Duration(sess.MaxDurationSeconds) * time.Second
		elapsed := now.Sub(startedAt)

		switch {
		case elapsed > budget:
			// A live executor may hold the execution lock; the transition
			// then conflicts and the next sweep retries.
			if _, terr := m.sessions.TransitionStatus(ctx, sess.ID, domain.SessionTimeout, "duration budget exceeded"); terr != nil {
				m.logger.Warn("Failed to time out session",
					"session_id", sess.ID, "elapsed", elapsed, "error", terr)
				continue
			}
			m.logger.Info("Session timed out", "session_id", sess.ID,
				"elapsed", elapsed, "budget", budget)
			timedOut++
		case budget-elapsed < AtRiskWindow:
			m.logger.Warn("Session approaching duration budget",
				"session_id", sess.ID, "remaining", budget-elapsed)
			m.publishAtRisk(ctx, sess.ID, elapsed, budget)
			atRisk++
		}
	}
	return timedOut, atRisk, nil
}

// startedAt prefers the metrics start stamp; sessions running without one
// fall back to their last status change.
func (m *Monitor) startedAt(ctx context.Context, sess *ent.Session) time.Time {
	if sess.MetricsID != nil && *sess.MetricsID != "" {
		if metrics, err := m.client.SessionMetrics.Get(ctx, *sess.MetricsID); err == nil && metrics.StartedAt != nil {
			return *metrics.StartedAt
		}
	}
	return sess.StatusUpdatedAt
}

func (m *Monitor) publishAtRisk(ctx context.Context, sessionID string, elapsed, budget time.Duration) {
	if m.publisher == nil {
		return
	}
	err := m.publisher.PublishSessionProgress(ctx, sessionID, events.SessionProgressPayload{
		SessionID: sessionID,
		Phase:     "at_risk",
		Percent:   100 * elapsed.Seconds() / budget.Seconds(),
		Timestamp: time.Now(),
	})
	if err != nil {
		m.logger.Debug("Failed to publish at-risk event", "session_id", sessionID, "error", err)
	}
}
