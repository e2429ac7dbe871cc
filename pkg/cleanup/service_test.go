package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/pkg/config"
	"github.com/maestro-hq/maestro/pkg/contextstore"
	"github.com/maestro-hq/maestro/pkg/events"
	"github.com/maestro-hq/maestro/pkg/services"
	"github.com/maestro-hq/maestro/pkg/tenancy"
	"github.com/maestro-hq/maestro/test/util"
)

type cleanupEnv struct {
	ctx      context.Context
	client   *ent.Client
	service  *Service
	sessions *services.SessionService
	contexts *services.ContextService
	store    *events.EventStore
}

func newCleanupEnv(t *testing.T) *cleanupEnv {
	t.Helper()
	client, db := util.SetupTestDatabase(t)

	tenants := services.NewTenantService(client)
	tenant, err := tenants.CreateTenant(context.Background(), services.CreateTenantRequest{
		Name:                  "Retention Tenant",
		Slug:                  "retention-tenant",
		MaxConcurrentSessions: 10,
	})
	require.NoError(t, err)

	sessions := services.NewSessionService(client, tenants, nil, nil)
	contexts := services.NewContextService(client)
	store := events.NewEventStore(db)

	cfg := &config.Orchestration{
		SessionRetentionDays: 30,
		EventTTL:             time.Hour,
		CleanupInterval:      time.Hour,
	}

	return &cleanupEnv{
		ctx:      tenancy.WithTenant(context.Background(), tenant.ID),
		client:   client,
		service:  NewService(cfg, sessions, contexts, nil, store),
		sessions: sessions,
		contexts: contexts,
		store:    store,
	}
}

func (e *cleanupEnv) createSession(t *testing.T, title string) *ent.Session {
	t.Helper()
	sess, err := e.sessions.CreateSession(e.ctx, services.CreateSessionRequest{
		Title:         title,
		InitialPrompt: "Orchestrate the work described by " + title,
	})
	require.NoError(t, err)
	return sess
}

func TestRunAllSoftDeletesOldTerminalSessions(t *testing.T) {
	env := newCleanupEnv(t)

	old := env.createSession(t, "Archive last quarter's exports")
	_, err := env.sessions.CancelSession(env.ctx, old.ID, "superseded")
	require.NoError(t, err)
	require.NoError(t, env.client.Session.UpdateOneID(old.ID).
		SetStatusUpdatedAt(time.Now().Add(-45*24*time.Hour)).
		Exec(env.ctx))

	recent := env.createSession(t, "Migrate the current exports")
	_, err = env.sessions.CancelSession(env.ctx, recent.ID, "superseded")
	require.NoError(t, err)

	env.service.RunAll(env.ctx)

	deleted, err := env.client.Session.Query().
		Where(session.IDEQ(old.ID)).Only(env.ctx)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)

	kept, err := env.client.Session.Query().
		Where(session.IDEQ(recent.ID)).Only(env.ctx)
	require.NoError(t, err)
	assert.Nil(t, kept.DeletedAt)
}

func TestRunAllPreservesActiveSessions(t *testing.T) {
	env := newCleanupEnv(t)

	sess := env.createSession(t, "Long-lived maintenance plan")
	require.NoError(t, env.client.Session.UpdateOneID(sess.ID).
		SetStatusUpdatedAt(time.Now().Add(-45*24*time.Hour)).
		Exec(env.ctx))

	env.service.RunAll(env.ctx)

	kept, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", string(kept.Status))
}

func TestRunAllSweepsExpiredContexts(t *testing.T) {
	env := newCleanupEnv(t)

	expired, err := env.contexts.CreateContext(env.ctx, services.CreateContextRequest{
		Scope: contextstore.ScopeTemporary,
		Data:  map[string]any{"scratch": true},
		TTL:   time.Minute,
	})
	require.NoError(t, err)
	require.NoError(t, env.client.ExecutionContext.UpdateOneID(expired.ID).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Exec(env.ctx))

	live, err := env.contexts.CreateContext(env.ctx, services.CreateContextRequest{
		Scope: contextstore.ScopeGlobal,
		Data:  map[string]any{"style": "go"},
	})
	require.NoError(t, err)

	env.service.RunAll(env.ctx)

	_, err = env.contexts.GetContext(env.ctx, expired.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = env.contexts.GetContext(env.ctx, live.ID)
	assert.NoError(t, err)
}

func TestRunAllPrunesOldStoredEvents(t *testing.T) {
	env := newCleanupEnv(t)

	_, err := env.client.Event.Create().
		SetID(1).
		SetChannel("sessions").
		SetEventType("session.progress").
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(env.ctx)
	require.NoError(t, err)
	_, err = env.client.Event.Create().
		SetID(2).
		SetChannel("sessions").
		SetEventType("session.progress").
		SetCreatedAt(time.Now()).
		Save(env.ctx)
	require.NoError(t, err)

	env.service.RunAll(env.ctx)

	remaining, err := env.store.FetchSince(env.ctx, "sessions", 0, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.EqualValues(t, 2, remaining[0].ID)
}
