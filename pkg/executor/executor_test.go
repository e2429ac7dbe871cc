package executor

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/eap"
	"github.com/maestro-hq/maestro/pkg/executil"
	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/services"
	"github.com/maestro-hq/maestro/pkg/tenancy"
	"github.com/maestro-hq/maestro/test/util"
)

type fakePort struct {
	result *executil.Result
	err    error
	calls  int
}

func (f *fakePort) Execute(ctx context.Context, sessionID, prompt, model, additionalPrompt string) (*executil.Result, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakePort) Close() error { return nil }

type fakeDispatcher struct {
	result   *eap.TaskResult
	err      error
	endpoint string
	token    string
}

func (f *fakeDispatcher) DispatchTask(ctx context.Context, endpoint, token string, assignment eap.TaskAssignment) (*eap.TaskResult, error) {
	f.endpoint = endpoint
	f.token = token
	return f.result, f.err
}

type execEnv struct {
	ctx      context.Context
	client   *ent.Client
	sessions *services.SessionService
	registry *registry.Registry
}

func newExecEnv(t *testing.T) *execEnv {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	tenants := services.NewTenantService(client)
	tenant, err := tenants.CreateTenant(context.Background(), services.CreateTenantRequest{
		Name:                  "Exec Tenant",
		Slug:                  "exec-tenant",
		MaxConcurrentSessions: 50,
	})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return &execEnv{
		ctx:      tenancy.WithTenant(context.Background(), tenant.ID),
		client:   client,
		sessions: services.NewSessionService(client, tenants, nil, nil),
		registry: registry.NewRegistry(rdb, slog.Default()),
	}
}

func (e *execEnv) registerAgent(t *testing.T, name string, metadata map[string]string) *registry.Agent {
	t.Helper()
	agent := &registry.Agent{
		ID:                 "agent-" + name,
		TenantID:           "exec-tenant",
		Name:               name,
		Type:               domain.AgentImplementer,
		Capabilities:       []domain.Capability{domain.CapCodeGeneration},
		MaxConcurrentTasks: 4,
		Metadata:           metadata,
	}
	require.NoError(t, e.registry.Register(e.ctx, agent))
	return agent
}

func (e *execEnv) claimSession(t *testing.T, agentConfig map[string]any) *ent.Session {
	t.Helper()
	_, err := e.sessions.CreateSession(e.ctx, services.CreateSessionRequest{
		Title:         "Migrate billing exports",
		InitialPrompt: "Move the nightly billing export to the new pipeline",
		AgentConfig:   agentConfig,
	})
	require.NoError(t, err)
	claimed, err := e.sessions.ClaimNextPendingSession(e.ctx, "pod-exec")
	require.NoError(t, err)
	return claimed
}

func TestExecute_InternalSuccess(t *testing.T) {
	env := newExecEnv(t)
	env.registerAgent(t, "AGENT-builder", nil)
	sess := env.claimSession(t, map[string]any{"AGENT-builder": map[string]any{}})

	port := &fakePort{result: &executil.Result{
		ExecutionID: "exec-1",
		TokensUsed:  1200,
		CostUSD:     0.42,
	}}
	exec := NewSessionExecutor(env.sessions, env.registry, nil, port, nil, nil)

	require.NoError(t, exec.Execute(env.ctx, sess))
	assert.Equal(t, 1, port.calls)

	final, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(final.Status))

	require.NotNil(t, final.MetricsID)
	metrics, err := env.client.SessionMetrics.Get(env.ctx, *final.MetricsID)
	require.NoError(t, err)
	assert.Equal(t, 1200, metrics.TotalTokens)
	assert.InDelta(t, 0.42, metrics.CostUsd, 1e-9)

	agent, err := env.registry.GetByName("AGENT-builder")
	require.NoError(t, err)
	assert.Equal(t, 1, agent.Metrics.TotalTasks)
	assert.Equal(t, 1, agent.Metrics.SuccessfulTasks)
	assert.Equal(t, 0, agent.CurrentTasks)
}

func TestExecute_InternalTimeout(t *testing.T) {
	env := newExecEnv(t)
	env.registerAgent(t, "AGENT-builder", nil)
	sess := env.claimSession(t, map[string]any{"AGENT-builder": map[string]any{}})

	port := &fakePort{err: executil.ErrExecutionTimeout}
	exec := NewSessionExecutor(env.sessions, env.registry, nil, port, nil, nil)

	require.NoError(t, exec.Execute(env.ctx, sess))

	final, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "timeout", string(final.Status))

	agent, err := env.registry.GetByName("AGENT-builder")
	require.NoError(t, err)
	assert.Equal(t, 1, agent.Metrics.FailedTasks)
}

func TestExecute_InternalFailure(t *testing.T) {
	env := newExecEnv(t)
	env.registerAgent(t, "AGENT-builder", nil)
	sess := env.claimSession(t, map[string]any{"AGENT-builder": map[string]any{}})

	port := &fakePort{err: errors.New("sidecar unavailable")}
	exec := NewSessionExecutor(env.sessions, env.registry, nil, port, nil, nil)

	require.NoError(t, exec.Execute(env.ctx, sess))

	final, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(final.Status))
}

func TestExecute_ExternalSuccess(t *testing.T) {
	env := newExecEnv(t)
	env.registerAgent(t, "AGENT-remote", map[string]string{
		registry.MetaIsExternal:  "true",
		registry.MetaEndpointURL: "http://agents.example.com/eap",
		registry.MetaAuthToken:   "tok-123",
	})
	sess := env.claimSession(t, map[string]any{"AGENT-remote": map[string]any{}})

	dispatcher := &fakeDispatcher{result: &eap.TaskResult{
		TaskID:     sess.ID,
		Status:     eap.StatusCompleted,
		TokensUsed: 900,
		CostUSD:    0.3,
		OutputData: map[string]any{"success_rate": 0.95, "confidence": 0.7},
	}}
	exec := NewSessionExecutor(env.sessions, env.registry, dispatcher, nil, nil, nil)

	require.NoError(t, exec.Execute(env.ctx, sess))
	assert.Equal(t, "http://agents.example.com/eap", dispatcher.endpoint)
	assert.Equal(t, "tok-123", dispatcher.token)

	final, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(final.Status))

	metrics, err := env.client.SessionMetrics.Get(env.ctx, *final.MetricsID)
	require.NoError(t, err)
	require.NotNil(t, metrics.SuccessRate)
	require.NotNil(t, metrics.Confidence)
	assert.InDelta(t, 0.95, *metrics.SuccessRate, 1e-9)
	assert.InDelta(t, 0.7, *metrics.Confidence, 1e-9)
}

func TestExecute_ExternalAgentReportsFailure(t *testing.T) {
	env := newExecEnv(t)
	env.registerAgent(t, "AGENT-remote", map[string]string{
		registry.MetaIsExternal:  "true",
		registry.MetaEndpointURL: "http://agents.example.com/eap",
	})
	sess := env.claimSession(t, map[string]any{"AGENT-remote": map[string]any{}})

	dispatcher := &fakeDispatcher{result: &eap.TaskResult{
		TaskID:       sess.ID,
		Status:       eap.StatusFailed,
		ErrorMessage: "agent crashed mid-task",
	}}
	exec := NewSessionExecutor(env.sessions, env.registry, dispatcher, nil, nil, nil)

	require.NoError(t, exec.Execute(env.ctx, sess))

	final, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(final.Status))

	// A single external failure leaves the session failed with the attempt
	// counted and the error typed and retryable.
	metrics, err := env.client.SessionMetrics.Get(env.ctx, *final.MetricsID)
	require.NoError(t, err)
	require.NotNil(t, metrics.Error)
	assert.Equal(t, "agent crashed mid-task", metrics.Error["message"])
	assert.Equal(t, "RuntimeError", metrics.Error["type"])
	assert.Equal(t, true, metrics.Error["retryable"])
	assert.Equal(t, 1, metrics.RetryCount)
}

func TestExecute_NoAgentConfigured(t *testing.T) {
	env := newExecEnv(t)
	sess := env.claimSession(t, nil)

	exec := NewSessionExecutor(env.sessions, env.registry, nil, &fakePort{}, nil, nil)
	require.NoError(t, exec.Execute(env.ctx, sess))

	final, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(final.Status))
}

func TestExecute_UnknownAgent(t *testing.T) {
	env := newExecEnv(t)
	sess := env.claimSession(t, map[string]any{"AGENT-ghost": map[string]any{}})

	port := &fakePort{}
	exec := NewSessionExecutor(env.sessions, env.registry, nil, port, nil, nil)
	require.NoError(t, exec.Execute(env.ctx, sess))

	assert.Equal(t, 0, port.calls)
	final, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(final.Status))
}

func TestResolveAgentName(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]any
		want string
	}{
		{"nil config", nil, ""},
		{"single agent", map[string]any{"AGENT-a": map[string]any{}}, "AGENT-a"},
		{"sorted first wins", map[string]any{"AGENT-z": nil, "AGENT-a": nil}, "AGENT-a"},
		{"reserved keys skipped", map[string]any{"model": "gpt", "AGENT-b": nil}, "AGENT-b"},
		{"default_agent fallback", map[string]any{"default_agent": "AGENT-d", "model": "gpt"}, "AGENT-d"},
		{"only reserved, no default", map[string]any{"model": "gpt"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveAgentName(tt.cfg))
		})
	}
}

func TestMonitor_SweepTimesOutOverdueSessions(t *testing.T) {
	env := newExecEnv(t)
	_, err := env.sessions.CreateSession(env.ctx, services.CreateSessionRequest{
		Title:              "Review ledger reconciliation",
		InitialPrompt:      "Reconcile the ledger against bank statements",
		MaxDurationSeconds: 60,
	})
	require.NoError(t, err)
	claimed, err := env.sessions.ClaimNextPendingSession(env.ctx, "pod-mon")
	require.NoError(t, err)
	sess, err := env.sessions.ApplyTransition(env.ctx, claimed.ID, domain.SessionRunning, "worker started")
	require.NoError(t, err)

	// Backdate the start far past the 60-second budget.
	require.NotNil(t, sess.MetricsID)
	require.NoError(t, env.client.SessionMetrics.UpdateOneID(*sess.MetricsID).
		SetStartedAt(time.Now().Add(-time.Hour)).
		Exec(env.ctx))

	monitor := NewMonitor(env.client, env.sessions, nil, time.Second)
	timedOut, atRisk, err := monitor.Sweep(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, timedOut)
	assert.Equal(t, 0, atRisk)

	final, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "timeout", string(final.Status))
}

func TestMonitor_SweepFlagsAtRiskSessions(t *testing.T) {
	env := newExecEnv(t)
	_, err := env.sessions.CreateSession(env.ctx, services.CreateSessionRequest{
		Title:              "Build deployment checklist",
		InitialPrompt:      "Draft the deployment checklist for the release",
		MaxDurationSeconds: 600,
	})
	require.NoError(t, err)
	claimed, err := env.sessions.ClaimNextPendingSession(env.ctx, "pod-mon")
	require.NoError(t, err)
	sess, err := env.sessions.ApplyTransition(env.ctx, claimed.ID, domain.SessionRunning, "worker started")
	require.NoError(t, err)

	// 400 of 600 seconds elapsed leaves under five minutes remaining.
	require.NoError(t, env.client.SessionMetrics.UpdateOneID(*sess.MetricsID).
		SetStartedAt(time.Now().Add(-400 * time.Second)).
		Exec(env.ctx))

	monitor := NewMonitor(env.client, env.sessions, nil, time.Second)
	timedOut, atRisk, err := monitor.Sweep(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, timedOut)
	assert.Equal(t, 1, atRisk)

	final, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "running", string(final.Status))
}
