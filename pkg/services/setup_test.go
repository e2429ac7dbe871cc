package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/pkg/tenancy"
	"github.com/maestro-hq/maestro/test/util"
)

// testEnv bundles the services under test with a tenant-scoped context.
type testEnv struct {
	client      *ent.Client
	ctx         context.Context
	tenant      *ent.Tenant
	tenants     *TenantService
	sessions    *SessionService
	checkpoints *CheckpointService
	tasks       *TaskService
	contexts    *ContextService
	finetuning  *FineTuningService
}

// newTestEnv spins up an isolated schema and a tenant with room for many
// concurrent sessions. Lock manager and publisher are nil; the services
// degrade to single-replica behavior, which is what these tests exercise.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	tenants := NewTenantService(client)
	tenant, err := tenants.CreateTenant(context.Background(), CreateTenantRequest{
		Name:                  "Test Tenant",
		Slug:                  "test-tenant",
		MaxConcurrentSessions: 50,
	})
	require.NoError(t, err)

	return &testEnv{
		client:      client,
		ctx:         tenancy.WithTenant(context.Background(), tenant.ID),
		tenant:      tenant,
		tenants:     tenants,
		sessions:    NewSessionService(client, tenants, nil, nil),
		checkpoints: NewCheckpointService(client, nil),
		tasks:       NewTaskService(client, nil),
		contexts:    NewContextService(client),
		finetuning:  NewFineTuningService(client, nil),
	}
}

// tenantCtx returns a background context scoped to the given tenant.
func tenantCtx(tenantID string) context.Context {
	return tenancy.WithTenant(context.Background(), tenantID)
}

// createSession creates a pending session with sensible defaults.
func (e *testEnv) createSession(t *testing.T, title string) *ent.Session {
	t.Helper()
	sess, err := e.sessions.CreateSession(e.ctx, CreateSessionRequest{
		Title:         title,
		InitialPrompt: "Orchestrate the work described by " + title,
	})
	require.NoError(t, err)
	return sess
}

// runSession drives a session to running: claim then queued → running.
func (e *testEnv) runSession(t *testing.T, id string) *ent.Session {
	t.Helper()
	_, err := e.sessions.ClaimNextPendingSession(e.ctx, "pod-test")
	require.NoError(t, err)
	sess, err := e.sessions.ApplyTransition(e.ctx, id, "running", "worker started")
	require.NoError(t, err)
	return sess
}
