package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/pkg/config"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/services"
	"github.com/maestro-hq/maestro/pkg/tenancy"
	"github.com/maestro-hq/maestro/test/util"
)

// runnerFunc adapts a function to the Runner interface.
type runnerFunc func(ctx context.Context, sess *ent.Session) error

func (f runnerFunc) Execute(ctx context.Context, sess *ent.Session) error { return f(ctx, sess) }

type queueEnv struct {
	ctx      context.Context
	client   *ent.Client
	sessions *services.SessionService
	config   *config.Orchestration
}

func newQueueEnv(t *testing.T) *queueEnv {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	tenants := services.NewTenantService(client)
	tenant, err := tenants.CreateTenant(context.Background(), services.CreateTenantRequest{
		Name:                  "Queue Tenant",
		Slug:                  "queue-tenant",
		MaxConcurrentSessions: 50,
	})
	require.NoError(t, err)

	return &queueEnv{
		ctx:      tenancy.WithTenant(context.Background(), tenant.ID),
		client:   client,
		sessions: services.NewSessionService(client, tenants, nil, nil),
		config: &config.Orchestration{
			WorkerCount:             1,
			MaxConcurrentSessions:   5,
			PollInterval:            20 * time.Millisecond,
			HeartbeatInterval:       20 * time.Millisecond,
			OrphanDetectionInterval: time.Hour,
			OrphanThreshold:         time.Minute,
		},
	}
}

func (e *queueEnv) createSession(t *testing.T, title string) *ent.Session {
	t.Helper()
	sess, err := e.sessions.CreateSession(e.ctx, services.CreateSessionRequest{
		Title:         title,
		InitialPrompt: "Orchestrate the work described by " + title,
	})
	require.NoError(t, err)
	return sess
}

func (e *queueEnv) waitForStatus(t *testing.T, sessionID string, want domain.SessionStatus) {
	t.Helper()
	require.Eventually(t, func() bool {
		sess, err := e.sessions.GetSession(context.Background(), sessionID)
		return err == nil && domain.SessionStatus(sess.Status) == want
	}, 10*time.Second, 25*time.Millisecond, "session never reached %s", want)
}

func TestWorker_ProcessesPendingSession(t *testing.T) {
	env := newQueueEnv(t)
	sess := env.createSession(t, "Implement invoice importer")

	runner := runnerFunc(func(ctx context.Context, claimed *ent.Session) error {
		if _, err := env.sessions.ApplyTransition(ctx, claimed.ID, domain.SessionRunning, "worker started"); err != nil {
			return err
		}
		_, err := env.sessions.CompleteSession(ctx, claimed.ID, services.CompletionResult{
			SuccessRate: 1, Confidence: 0.9, TotalTokens: 10,
		})
		return err
	})

	pool := NewWorkerPool("pod-q1", env.client, env.sessions, env.config, runner)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	env.waitForStatus(t, sess.ID, domain.SessionCompleted)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 1, health.WorkerCount)
	assert.Equal(t, 0, health.QueueDepth)
}

func TestWorker_SettlesSessionAfterRunnerError(t *testing.T) {
	env := newQueueEnv(t)
	sess := env.createSession(t, "Build export scheduler")

	runner := runnerFunc(func(ctx context.Context, claimed *ent.Session) error {
		// Leave the session claimed but unfinished.
		return errors.New("runner crashed")
	})

	pool := NewWorkerPool("pod-q2", env.client, env.sessions, env.config, runner)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	env.waitForStatus(t, sess.ID, domain.SessionFailed)
}

func TestPool_CancelSessionStopsRunner(t *testing.T) {
	env := newQueueEnv(t)
	sess := env.createSession(t, "Review compliance report")

	started := make(chan struct{})
	runner := runnerFunc(func(ctx context.Context, claimed *ent.Session) error {
		if _, err := env.sessions.ApplyTransition(ctx, claimed.ID, domain.SessionRunning, "worker started"); err != nil {
			return err
		}
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})

	pool := NewWorkerPool("pod-q3", env.client, env.sessions, env.config, runner)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	select {
	case <-started:
	case <-time.After(10 * time.Second):
		t.Fatal("runner never started")
	}
	require.True(t, pool.CancelSession(sess.ID))

	// A cancelled running session lands in stopped.
	env.waitForStatus(t, sess.ID, domain.SessionStopped)
	assert.False(t, pool.CancelSession("unknown-session"))
}

func TestWorker_HeartbeatsWhileRunning(t *testing.T) {
	env := newQueueEnv(t)
	sess := env.createSession(t, "Migrate audit archive")

	release := make(chan struct{})
	runner := runnerFunc(func(ctx context.Context, claimed *ent.Session) error {
		if _, err := env.sessions.ApplyTransition(ctx, claimed.ID, domain.SessionRunning, "worker started"); err != nil {
			return err
		}
		<-release
		_, err := env.sessions.CompleteSession(ctx, claimed.ID, services.CompletionResult{SuccessRate: 1, Confidence: 1})
		return err
	})

	pool := NewWorkerPool("pod-q4", env.client, env.sessions, env.config, runner)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	env.waitForStatus(t, sess.ID, domain.SessionRunning)

	claimHeartbeat := func() time.Time {
		reloaded, err := env.sessions.GetSession(context.Background(), sess.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.LastHeartbeatAt)
		return *reloaded.LastHeartbeatAt
	}
	first := claimHeartbeat()
	require.Eventually(t, func() bool {
		return claimHeartbeat().After(first)
	}, 10*time.Second, 25*time.Millisecond, "heartbeat never advanced")

	close(release)
	env.waitForStatus(t, sess.ID, domain.SessionCompleted)
}
