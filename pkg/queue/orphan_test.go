package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/pkg/domain"
)

// claimWithStaleHeartbeat claims the next pending session for podID and
// backdates its heartbeat past the orphan threshold.
func (e *queueEnv) claimWithStaleHeartbeat(t *testing.T, podID string, age time.Duration) *ent.Session {
	t.Helper()
	claimed, err := e.sessions.ClaimNextPendingSession(e.ctx, podID)
	require.NoError(t, err)
	require.NoError(t, e.client.Session.UpdateOneID(claimed.ID).
		SetLastHeartbeatAt(time.Now().Add(-age)).
		Exec(e.ctx))
	return claimed
}

func TestDetectAndRecoverOrphans(t *testing.T) {
	env := newQueueEnv(t)
	env.createSession(t, "Implement retention sweep")
	stale := env.claimWithStaleHeartbeat(t, "pod-dead", 10*time.Minute)

	// A live session must survive the scan.
	live := env.createSession(t, "Create tenant report")
	_, err := env.sessions.ClaimNextPendingSession(env.ctx, "pod-live")
	require.NoError(t, err)

	pool := NewWorkerPool("pod-scan", env.client, env.sessions, env.config, nil)
	require.NoError(t, pool.sweepOrphans(context.Background()))

	orphaned, err := env.sessions.GetSession(env.ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, "orphaned", string(orphaned.Status))

	survivor, err := env.sessions.GetSession(env.ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, "queued", string(survivor.Status))

	pool.orphans.mu.Lock()
	defer pool.orphans.mu.Unlock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	assert.False(t, pool.orphans.lastOrphanScan.IsZero())
}

func TestCleanupStartupOrphans(t *testing.T) {
	env := newQueueEnv(t)
	env.createSession(t, "Debug ingestion stall")
	mine := env.claimWithStaleHeartbeat(t, "pod-restarted", time.Minute)

	env.createSession(t, "Design quota dashboard")
	other, err := env.sessions.ClaimNextPendingSession(env.ctx, "pod-other")
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(context.Background(), env.client, env.sessions, "pod-restarted"))

	reclaimed, err := env.sessions.GetSession(env.ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, "orphaned", string(reclaimed.Status))

	untouched, err := env.sessions.GetSession(env.ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "queued", string(untouched.Status))
}

func TestOrphanedSessionIsRecoverable(t *testing.T) {
	env := newQueueEnv(t)
	sess := env.createSession(t, "Implement backfill job")
	claimed := env.claimWithStaleHeartbeat(t, "pod-dead", 10*time.Minute)
	require.Equal(t, sess.ID, claimed.ID)

	orphans, err := env.sessions.FindOrphanedSessions(env.ctx, env.config.OrphanThreshold)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	require.NoError(t, env.sessions.MarkOrphaned(env.ctx, orphans[0]))

	reloaded, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "orphaned", string(reloaded.Status))
	assert.Nil(t, reloaded.PodID)
	assert.True(t, domain.SessionStatus(reloaded.Status).IsTerminal())
	assert.False(t, domain.SessionStatus(reloaded.Status).IsActive())
}
