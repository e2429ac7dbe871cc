package router

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/registry"
)

func newTestRouter(t *testing.T) (*Router, *registry.Registry) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	reg := registry.NewRegistry(client, nil)
	return NewRouter(reg, nil), reg
}

func routingAgent(id, name string, tier domain.PerformanceTier, caps ...domain.Capability) *registry.Agent {
	return &registry.Agent{
		ID:                 id,
		TenantID:           "tenant-1",
		Name:               name,
		Type:               domain.AgentImplementer,
		Capabilities:       caps,
		Tier:               tier,
		MaxConcurrentTasks: 4,
	}
}

func TestRouteScoring(t *testing.T) {
	r, reg := newTestRouter(t)
	ctx := context.Background()

	required := []domain.Capability{domain.CapCodeGeneration, domain.CapTestGeneration}

	a := routingAgent("a", "AGENT-a", domain.TierElite, required...)
	b := routingAgent("b", "AGENT-b", domain.TierCompetent, required...)
	b.CurrentTasks = 2 // optimal
	c := routingAgent("c", "AGENT-c", domain.TierDegraded, required...)
	require.NoError(t, reg.Register(ctx, a))
	require.NoError(t, reg.Register(ctx, b))
	require.NoError(t, reg.Register(ctx, c))

	decision, err := r.Route(Request{RequiredCapabilities: required})
	require.NoError(t, err)

	// elite + full coverage + idle + available = 0.4 + 0.3 + 0.2 + 0.1
	assert.Equal(t, "a", decision.Agent.ID)
	assert.InDelta(t, 1.0, decision.Score, 1e-9)

	// degraded is filtered, not merely outranked
	require.Len(t, decision.Alternates, 1)
	assert.Equal(t, "b", decision.Alternates[0].Agent.ID)
	assert.InDelta(t, 0.4*0.6+0.3*1+0.2*0.8+0.1*1, decision.Alternates[0].Score, 1e-9)

	assert.Contains(t, decision.Reason, "AGENT-a")
	assert.Contains(t, decision.Reason, "capabilities 2/2")
}

func TestRoutePreferenceBonuses(t *testing.T) {
	r, reg := newTestRouter(t)
	ctx := context.Background()

	required := []domain.Capability{domain.CapCodeGeneration}

	plain := routingAgent("a", "AGENT-a", domain.TierAdvanced, domain.CapCodeGeneration)
	preferred := routingAgent("b", "AGENT-b", domain.TierAdvanced, domain.CapCodeGeneration)
	preferred.Metadata = map[string]string{registry.MetaAgentType: "implementer"}
	require.NoError(t, reg.Register(ctx, plain))
	require.NoError(t, reg.Register(ctx, preferred))

	decision, err := r.Route(Request{
		RequiredCapabilities: required,
		PreferredIDs:         []string{"b"},
		PreferredType:        domain.AgentImplementer,
	})
	require.NoError(t, err)
	assert.Equal(t, "b", decision.Agent.ID)
	require.Len(t, decision.Alternates, 1)
	assert.InDelta(t, 0.15, decision.Score-decision.Alternates[0].Score, 1e-9)
}

func TestRouteMinTierFilter(t *testing.T) {
	r, reg := newTestRouter(t)
	ctx := context.Background()

	trainee := routingAgent("a", "AGENT-a", domain.TierTrainee, domain.CapCodeGeneration)
	competent := routingAgent("b", "AGENT-b", domain.TierCompetent, domain.CapCodeGeneration)
	require.NoError(t, reg.Register(ctx, trainee))
	require.NoError(t, reg.Register(ctx, competent))

	decision, err := r.Route(Request{
		RequiredCapabilities: []domain.Capability{domain.CapCodeGeneration},
		MinTier:              domain.TierCompetent,
	})
	require.NoError(t, err)
	assert.Equal(t, "b", decision.Agent.ID)
	assert.Empty(t, decision.Alternates)
}

func TestRouteBreakerFiltersByMetrics(t *testing.T) {
	r, reg := newTestRouter(t)
	ctx := context.Background()

	// Tier still reads competent, but 1/6 success rate trips the breaker.
	tripped := routingAgent("a", "AGENT-a", domain.TierCompetent, domain.CapCodeGeneration)
	tripped.Metrics = registry.PerformanceMetrics{TotalTasks: 6, SuccessfulTasks: 1, FailedTasks: 5}
	require.NoError(t, reg.Register(ctx, tripped))

	_, err := r.Route(Request{RequiredCapabilities: []domain.Capability{domain.CapCodeGeneration}})
	assert.ErrorIs(t, err, ErrNoSuitableAgent)
}

func TestRoutePartialCoverageFallback(t *testing.T) {
	r, reg := newTestRouter(t)
	ctx := context.Background()

	partial := routingAgent("a", "AGENT-a", domain.TierAdvanced, domain.CapCodeGeneration)
	require.NoError(t, reg.Register(ctx, partial))

	decision, err := r.Route(Request{
		RequiredCapabilities: []domain.Capability{domain.CapCodeGeneration, domain.CapTestGeneration},
	})
	require.NoError(t, err)
	assert.Equal(t, "a", decision.Agent.ID)
	assert.Contains(t, decision.Reason, "capabilities 1/2")
}

func TestRouteNoCandidates(t *testing.T) {
	r, _ := newTestRouter(t)

	_, err := r.Route(Request{RequiredCapabilities: []domain.Capability{domain.CapDeployment}})
	assert.ErrorIs(t, err, ErrNoSuitableAgent)

	_, err = r.Route(Request{})
	assert.ErrorIs(t, err, ErrNoSuitableAgent)
}

func TestRouteAlternatesCapped(t *testing.T) {
	r, reg := newTestRouter(t)
	ctx := context.Background()

	tiers := []domain.PerformanceTier{
		domain.TierElite, domain.TierAdvanced, domain.TierCompetent,
		domain.TierTrainee, domain.TierTrainee, domain.TierTrainee,
	}
	for i, tier := range tiers {
		a := routingAgent(
			string(rune('a'+i)), "AGENT-"+string(rune('a'+i)), tier, domain.CapCodeGeneration)
		require.NoError(t, reg.Register(ctx, a))
	}

	decision, err := r.Route(Request{RequiredCapabilities: []domain.Capability{domain.CapCodeGeneration}})
	require.NoError(t, err)
	assert.Equal(t, "a", decision.Agent.ID)
	assert.Len(t, decision.Alternates, 3)
}

func TestRebalance(t *testing.T) {
	r, reg := newTestRouter(t)
	ctx := context.Background()

	overloaded := routingAgent("a", "AGENT-a", domain.TierCompetent, domain.CapCodeGeneration)
	overloaded.MaxConcurrentTasks = 2
	overloaded.CurrentTasks = 4
	idle := routingAgent("b", "AGENT-b", domain.TierCompetent, domain.CapCodeGeneration)
	idle.MaxConcurrentTasks = 4
	require.NoError(t, reg.Register(ctx, overloaded))
	require.NoError(t, reg.Register(ctx, idle))

	report := r.Rebalance()
	assert.Equal(t, []string{"a"}, report.OverloadedAgents)
	assert.Equal(t, 2, report.ExcessTasks)
	assert.Equal(t, 2, report.Reassignable)
	assert.Equal(t, 2, report.Targets["b"])

	// before: (4/2 + 0/4)/2 = 1.0 ; after: (2/2 + 2/4)/2 = 0.75
	assert.InDelta(t, 1.0, report.UtilizationBefore, 1e-9)
	assert.InDelta(t, 0.75, report.UtilizationAfter, 1e-9)
}

func TestRebalanceNothingToDo(t *testing.T) {
	r, reg := newTestRouter(t)
	ctx := context.Background()

	a := routingAgent("a", "AGENT-a", domain.TierCompetent, domain.CapCodeGeneration)
	a.CurrentTasks = 1
	require.NoError(t, reg.Register(ctx, a))

	report := r.Rebalance()
	assert.Empty(t, report.OverloadedAgents)
	assert.Equal(t, report.UtilizationBefore, report.UtilizationAfter)
}
