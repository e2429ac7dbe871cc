package registry

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/pkg/domain"
)

func newTestRegistry(t *testing.T) (*Registry, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRegistry(client, nil), mr
}

func testAgent(id, name string) *Agent {
	return &Agent{
		ID:       id,
		TenantID: "tenant-1",
		Name:     name,
		Type:     domain.AgentImplementer,
		Capabilities: []domain.Capability{
			domain.CapCodeGeneration,
			domain.CapTestGeneration,
		},
		Tier:               domain.TierCompetent,
		MaxConcurrentTasks: 4,
	}
}

func TestRegisterAndGet(t *testing.T) {
	r, mr := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, testAgent("a1", "AGENT-builder-1")))

	got, err := r.Get("a1")
	require.NoError(t, err)
	assert.Equal(t, "AGENT-builder-1", got.Name)
	assert.Equal(t, domain.LoadIdle, got.LoadLevel)
	assert.False(t, got.LastHeartbeat.IsZero())

	byName, err := r.GetByName("AGENT-builder-1")
	require.NoError(t, err)
	assert.Equal(t, "a1", byName.ID)

	// durable record written with TTL
	assert.True(t, mr.Exists("agent:a1"))
	ttl := mr.TTL("agent:a1")
	assert.Greater(t, ttl, 290*time.Second)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Agent)
		field  string
	}{
		{"missing tenant", func(a *Agent) { a.TenantID = "" }, "tenant_id"},
		{"generic name", func(a *Agent) { a.Name = "agent" }, "name"},
		{"unknown type", func(a *Agent) { a.Type = "wizard" }, "type"},
		{"no capabilities", func(a *Agent) { a.Capabilities = nil }, "capabilities"},
		{"unknown capability", func(a *Agent) {
			a.Capabilities = []domain.Capability{"time_travel"}
		}, "capabilities"},
		{"primary capability not allowed for type", func(a *Agent) {
			a.Capabilities = []domain.Capability{domain.CapDeployment}
		}, "capabilities"},
		{"zero concurrency", func(a *Agent) { a.MaxConcurrentTasks = 0 }, "max_concurrent_tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testAgent("ax", "AGENT-x")
			tt.mutate(a)
			err := r.Register(ctx, a)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, testAgent("a1", "AGENT-one")))
	assert.ErrorIs(t, r.Register(ctx, testAgent("a1", "AGENT-other")), ErrAgentExists)
	assert.ErrorIs(t, r.Register(ctx, testAgent("a2", "AGENT-one")), ErrAgentExists)
}

func TestDeregister(t *testing.T) {
	r, mr := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, testAgent("a1", "AGENT-one")))
	require.NoError(t, r.Deregister(ctx, "a1"))

	_, err := r.Get("a1")
	assert.ErrorIs(t, err, ErrAgentNotFound)
	assert.Empty(t, r.FindByCapability(domain.CapCodeGeneration))
	assert.False(t, mr.Exists("agent:a1"))

	assert.ErrorIs(t, r.Deregister(ctx, "a1"), ErrAgentNotFound)
}

func TestFindByCapabilities(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	coder := testAgent("a1", "AGENT-coder")
	reviewer := testAgent("a2", "AGENT-reviewer")
	reviewer.Type = domain.AgentReviewer
	reviewer.Capabilities = []domain.Capability{domain.CapCodeReview, domain.CapTestGeneration}
	require.NoError(t, r.Register(ctx, coder))
	require.NoError(t, r.Register(ctx, reviewer))

	both := []domain.Capability{domain.CapCodeGeneration, domain.CapTestGeneration}

	all := r.FindByCapabilities(both, true)
	require.Len(t, all, 1)
	assert.Equal(t, "a1", all[0].ID)

	any := r.FindByCapabilities(both, false)
	assert.Len(t, any, 2)
}

func TestFindAvailableExcludesSaturatedAndDegraded(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	free := testAgent("a1", "AGENT-free")
	busy := testAgent("a2", "AGENT-busy")
	busy.CurrentTasks = 4
	degraded := testAgent("a3", "AGENT-degraded")
	degraded.Tier = domain.TierDegraded
	require.NoError(t, r.Register(ctx, free))
	require.NoError(t, r.Register(ctx, busy))
	require.NoError(t, r.Register(ctx, degraded))

	available := r.FindAvailable()
	require.Len(t, available, 1)
	assert.Equal(t, "a1", available[0].ID)
}

func TestTaskCountDrivesLoadLevel(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, testAgent("a1", "AGENT-one")))

	require.NoError(t, r.IncrementTaskCount(ctx, "a1"))
	require.NoError(t, r.IncrementTaskCount(ctx, "a1"))
	got, _ := r.Get("a1")
	assert.Equal(t, 2, got.CurrentTasks)
	assert.Equal(t, domain.LoadOptimal, got.LoadLevel)

	require.NoError(t, r.IncrementTaskCount(ctx, "a1"))
	require.NoError(t, r.IncrementTaskCount(ctx, "a1"))
	got, _ = r.Get("a1")
	assert.Equal(t, domain.LoadOverloaded, got.LoadLevel)
	assert.False(t, got.IsAvailable())

	for i := 0; i < 10; i++ {
		require.NoError(t, r.DecrementTaskCount(ctx, "a1"))
	}
	got, _ = r.Get("a1")
	assert.Equal(t, 0, got.CurrentTasks, "decrement floors at zero")
	assert.Equal(t, domain.LoadIdle, got.LoadLevel)
}

func TestRecordTaskResultMetricsAndTier(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, testAgent("a1", "AGENT-one")))

	// 1 success, 2 partial, 2 failures: rate = (1 + 0.5*2)/5 = 0.4 — stays.
	require.NoError(t, r.RecordTaskResult(ctx, "a1", OutcomeSuccess, 10*time.Second, 100, 0.01))
	require.NoError(t, r.RecordTaskResult(ctx, "a1", OutcomePartial, 20*time.Second, 200, 0.02))
	require.NoError(t, r.RecordTaskResult(ctx, "a1", OutcomePartial, 30*time.Second, 300, 0.03))
	require.NoError(t, r.RecordTaskResult(ctx, "a1", OutcomeFailure, 40*time.Second, 400, 0.04))
	require.NoError(t, r.RecordTaskResult(ctx, "a1", OutcomeFailure, 50*time.Second, 500, 0.05))

	got, _ := r.Get("a1")
	assert.Equal(t, 5, got.Metrics.TotalTasks)
	assert.InDelta(t, 0.4, got.Metrics.SuccessRate(), 1e-9)
	assert.InDelta(t, 30.0, got.Metrics.AvgDurationSeconds, 1e-9)
	assert.InDelta(t, 300.0, got.Metrics.AvgTokens, 1e-9)
	assert.Equal(t, domain.TierCompetent, got.Tier)

	// Two more failures drop the rate to 2/7 < 0.3: breaker demotes.
	require.NoError(t, r.RecordTaskResult(ctx, "a1", OutcomeFailure, time.Second, 0, 0))
	require.NoError(t, r.RecordTaskResult(ctx, "a1", OutcomeFailure, time.Second, 0, 0))
	got, _ = r.Get("a1")
	assert.Equal(t, domain.TierDegraded, got.Tier)
	assert.Empty(t, r.FindAvailable())

	// Recovery: successes until rate > 0.5 promotes to trainee only.
	for i := 0; i < 6; i++ {
		require.NoError(t, r.RecordTaskResult(ctx, "a1", OutcomeSuccess, time.Second, 0, 0))
	}
	got, _ = r.Get("a1")
	assert.Greater(t, got.Metrics.SuccessRate(), 0.5)
	assert.Equal(t, domain.TierTrainee, got.Tier)
	assert.Contains(t, idsOf(r.FindByTier(domain.TierTrainee)), "a1")
}

func TestHeartbeatRefreshesRecordTTL(t *testing.T) {
	r, mr := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, testAgent("a1", "AGENT-one")))
	mr.FastForward(200 * time.Second)
	require.NoError(t, r.UpdateHeartbeat(ctx, "a1"))
	assert.Greater(t, mr.TTL("agent:a1"), 290*time.Second)

	assert.ErrorIs(t, r.UpdateHeartbeat(ctx, "missing"), ErrAgentNotFound)
}

func TestCleanupStaleAgents(t *testing.T) {
	r, mr := newTestRegistry(t)
	ctx := context.Background()

	fresh := testAgent("a1", "AGENT-fresh")
	stale := testAgent("a2", "AGENT-stale")
	orphan := testAgent("a3", "AGENT-orphan")
	require.NoError(t, r.Register(ctx, fresh))
	require.NoError(t, r.Register(ctx, stale))
	require.NoError(t, r.Register(ctx, orphan))

	// a2 misses heartbeats; a3 keeps its index entry but its durable record
	// expired out from under it.
	r.mu.Lock()
	r.byID["a2"].LastHeartbeat = time.Now().Add(-10 * time.Minute)
	r.mu.Unlock()
	mr.Del("agent:a3")

	removed := r.CleanupStaleAgents(ctx, 5*time.Minute)
	assert.ElementsMatch(t, []string{"a2", "a3"}, removed)

	_, err := r.Get("a1")
	assert.NoError(t, err)
	_, err = r.Get("a2")
	assert.ErrorIs(t, err, ErrAgentNotFound)
	_, err = r.Get("a3")
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestStatisticsCached(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, testAgent("a1", "AGENT-one")))
	require.NoError(t, r.IncrementTaskCount(ctx, "a1"))

	stats := r.Statistics()
	assert.Equal(t, 1, stats.TotalAgents)
	assert.Equal(t, 1, stats.AvailableAgents)
	assert.Equal(t, 4, stats.TotalCapacity)
	assert.Equal(t, 1, stats.UsedCapacity)
	assert.InDelta(t, 0.25, stats.MeanUtilization, 1e-9)
	assert.Equal(t, 1, stats.ByType[domain.AgentImplementer])

	// Mutations invalidate the cache; a cached read without mutation does not
	// recompute.
	cached := r.Statistics()
	assert.Equal(t, stats.GeneratedAt, cached.GeneratedAt)

	require.NoError(t, r.Register(ctx, testAgent("a2", "AGENT-two")))
	assert.Equal(t, 2, r.Statistics().TotalAgents)
}

func TestUpdateReindexes(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, testAgent("a1", "AGENT-one")))

	updated := testAgent("a1", "AGENT-one")
	updated.Capabilities = []domain.Capability{domain.CapRefactoring}
	updated.Tier = domain.TierAdvanced
	require.NoError(t, r.Update(ctx, updated))

	assert.Empty(t, r.FindByCapability(domain.CapCodeGeneration))
	assert.Len(t, r.FindByCapability(domain.CapRefactoring), 1)
	assert.Len(t, r.FindByTier(domain.TierAdvanced), 1)
	assert.Empty(t, r.FindByTier(domain.TierCompetent))

	crossTenant := testAgent("a1", "AGENT-one")
	crossTenant.TenantID = "tenant-2"
	assert.Error(t, r.Update(ctx, crossTenant))
}

func idsOf(agents []*Agent) []string {
	out := make([]string, len(agents))
	for i, a := range agents {
		out[i] = a.ID
	}
	return out
}
