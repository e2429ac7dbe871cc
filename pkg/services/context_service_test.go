package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/pkg/contextstore"
)

func TestCreateContext_ScopeRules(t *testing.T) {
	env := newTestEnv(t)

	// session scope requires a session id
	_, err := env.contexts.CreateContext(env.ctx, CreateContextRequest{
		Scope: contextstore.ScopeSession,
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	sess := env.createSession(t, "Orchestrate context host")
	ec, err := env.contexts.CreateContext(env.ctx, CreateContextRequest{
		Scope:     contextstore.ScopeSession,
		SessionID: sess.ID,
		Data:      map[string]any{"phase": "init"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ec.Version)
	assert.Equal(t, env.tenant.ID, ec.TenantID)
}

func TestContext_TemporaryTTL(t *testing.T) {
	env := newTestEnv(t)

	ec, err := env.contexts.CreateContext(env.ctx, CreateContextRequest{
		Scope: contextstore.ScopeTemporary,
	})
	require.NoError(t, err)
	assert.False(t, ec.ExpiresAt.IsZero())

	expired, err := env.contexts.CreateContext(env.ctx, CreateContextRequest{
		Scope: contextstore.ScopeTemporary,
		TTL:   time.Millisecond,
	})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = env.contexts.GetContext(env.ctx, expired.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := env.contexts.SweepExpired(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestContext_SetGetDelete(t *testing.T) {
	env := newTestEnv(t)

	ec, err := env.contexts.CreateContext(env.ctx, CreateContextRequest{
		Scope: contextstore.ScopeGlobal,
	})
	require.NoError(t, err)

	updated, err := env.contexts.SetValue(env.ctx, ec.ID, "build.target.os", "linux")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)

	reloaded, err := env.contexts.GetContext(env.ctx, ec.ID)
	require.NoError(t, err)
	v, ok := reloaded.Get("build.target.os")
	require.True(t, ok)
	assert.Equal(t, "linux", v)
	require.Len(t, reloaded.History, 1)
	assert.Equal(t, "set", reloaded.History[0].Op)

	updated, err = env.contexts.DeleteValue(env.ctx, ec.ID, "build.target.os")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Version)

	_, err = env.contexts.DeleteValue(env.ctx, ec.ID, "build.target.os")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestContext_PathNotTraversable(t *testing.T) {
	env := newTestEnv(t)

	ec, err := env.contexts.CreateContext(env.ctx, CreateContextRequest{
		Scope: contextstore.ScopeGlobal,
		Data:  map[string]any{"leaf": "value"},
	})
	require.NoError(t, err)

	_, err = env.contexts.SetValue(env.ctx, ec.ID, "leaf.nested", 1)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestMergeContexts(t *testing.T) {
	env := newTestEnv(t)

	target, err := env.contexts.CreateContext(env.ctx, CreateContextRequest{
		Scope: contextstore.ScopeGlobal,
		Data:  map[string]any{"region": "us-east", "replicas": 2},
	})
	require.NoError(t, err)
	source, err := env.contexts.CreateContext(env.ctx, CreateContextRequest{
		Scope: contextstore.ScopeGlobal,
		Data:  map[string]any{"region": "eu-west", "debug": true},
	})
	require.NoError(t, err)

	result, err := env.contexts.MergeContexts(env.ctx, target.ID, source.ID, contextstore.PreferSource)
	require.NoError(t, err)
	assert.Equal(t, []string{"region"}, result.Conflicts)

	merged, err := env.contexts.GetContext(env.ctx, result.Context.ID)
	require.NoError(t, err)
	region, _ := merged.Get("region")
	assert.Equal(t, "eu-west", region)
	debug, _ := merged.Get("debug")
	assert.Equal(t, true, debug)
}

func TestMergeContexts_CrossTenantRejected(t *testing.T) {
	env := newTestEnv(t)

	other, err := env.tenants.CreateTenant(env.ctx, CreateTenantRequest{
		Name: "Other", Slug: "other",
	})
	require.NoError(t, err)

	target, err := env.contexts.CreateContext(env.ctx, CreateContextRequest{
		Scope: contextstore.ScopeGlobal,
	})
	require.NoError(t, err)
	source, err := env.contexts.CreateContext(tenantCtx(other.ID), CreateContextRequest{
		Scope: contextstore.ScopeGlobal,
	})
	require.NoError(t, err)

	// other tenant's context is invisible here
	_, err = env.contexts.MergeContexts(env.ctx, target.ID, source.ID, contextstore.DeepMerge)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListContexts(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.contexts.CreateContext(env.ctx, CreateContextRequest{Scope: contextstore.ScopeGlobal})
	require.NoError(t, err)
	_, err = env.contexts.CreateContext(env.ctx, CreateContextRequest{
		Scope: contextstore.ScopeAgent, AgentID: "agent-1",
	})
	require.NoError(t, err)

	all, err := env.contexts.ListContexts(env.ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	agents, err := env.contexts.ListContexts(env.ctx, contextstore.ScopeAgent, "")
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "agent-1", agents[0].AgentID)
}

func TestDeleteContext(t *testing.T) {
	env := newTestEnv(t)

	ec, err := env.contexts.CreateContext(env.ctx, CreateContextRequest{Scope: contextstore.ScopeGlobal})
	require.NoError(t, err)

	require.NoError(t, env.contexts.DeleteContext(env.ctx, ec.ID))
	err = env.contexts.DeleteContext(env.ctx, ec.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
