// Package router selects the best available agent for a capability set.
// Candidates come from the registry's in-memory indexes; scoring combines
// tier, capability coverage, load, and availability, with small bonuses for
// caller preferences.
package router

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/registry"
)

// ErrNoSuitableAgent indicates no registered agent survived filtering.
var ErrNoSuitableAgent = errors.New("no suitable agent")

// Scoring weights and preference bonuses.
const (
	weightTier         = 0.4
	weightCapability   = 0.3
	weightLoad         = 0.2
	weightAvailability = 0.1

	bonusPreferredID   = 0.10
	bonusPreferredType = 0.05

	maxAlternates = 3
)

// Request describes one routing decision.
type Request struct {
	RequiredCapabilities []domain.Capability
	PreferredType        domain.AgentType
	PreferredIDs         []string
	MinTier              domain.PerformanceTier
	EstimatedComplexity  float64
}

// Candidate is one scored agent.
type Candidate struct {
	Agent *registry.Agent
	Score float64
}

// Decision is the routing outcome: the winner, up to three alternates in
// descending score order, and a human-readable reason.
type Decision struct {
	Agent      *registry.Agent
	Score      float64
	Alternates []Candidate
	Reason     string
}

// Router scores registry agents against routing requests.
type Router struct {
	registry *registry.Registry
	logger   *slog.Logger
}

// NewRouter creates a router over the given registry.
func NewRouter(reg *registry.Registry, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{registry: reg, logger: logger.With("component", "router")}
}

// Route picks the best agent for the request. Agents below the minimum tier
// or tripped by the circuit breaker never route.
func (r *Router) Route(req Request) (*Decision, error) {
	if len(req.RequiredCapabilities) == 0 {
		return nil, fmt.Errorf("%w: no required capabilities", ErrNoSuitableAgent)
	}

	candidates := r.registry.FindByCapabilities(req.RequiredCapabilities, true)
	if len(candidates) == 0 {
		// Relax to partial matches; capability_match scoring will rank
		// fuller coverage first.
		candidates = r.registry.FindByCapabilities(req.RequiredCapabilities, false)
	}

	scored := make([]Candidate, 0, len(candidates))
	for _, a := range candidates {
		if !r.eligible(a, req.MinTier) {
			continue
		}
		scored = append(scored, Candidate{Agent: a, Score: r.score(a, req)})
	}
	if len(scored) == 0 {
		return nil, fmt.Errorf("%w for capabilities %v", ErrNoSuitableAgent, req.RequiredCapabilities)
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	winner := scored[0]
	alternates := scored[1:]
	if len(alternates) > maxAlternates {
		alternates = alternates[:maxAlternates]
	}

	decision := &Decision{
		Agent:      winner.Agent,
		Score:      winner.Score,
		Alternates: alternates,
		Reason:     r.reason(winner, req),
	}
	r.logger.Debug("Routing decision",
		"agent_id", winner.Agent.ID, "score", winner.Score,
		"alternates", len(alternates))
	return decision, nil
}

// eligible filters out agents that must never route: below the minimum tier,
// degraded (including breaker-tripped agents whose stored tier has not yet
// caught up with their metrics), or unavailable.
func (r *Router) eligible(a *registry.Agent, minTier domain.PerformanceTier) bool {
	effective := domain.BreakerTier(a.Tier, a.Metrics.TotalTasks, a.Metrics.SuccessRate())
	if effective == domain.TierDegraded {
		return false
	}
	if minTier != "" && domain.TierRank(effective) < domain.TierRank(minTier) {
		return false
	}
	return a.IsAvailable()
}

func (r *Router) score(a *registry.Agent, req Request) float64 {
	matched := 0
	for _, c := range req.RequiredCapabilities {
		if a.HasCapability(c) {
			matched++
		}
	}
	capabilityMatch := float64(matched) / float64(len(req.RequiredCapabilities))

	availability := 0.0
	if a.IsAvailable() {
		availability = 1.0
	}

	score := weightTier*domain.TierScore(a.Tier) +
		weightCapability*capabilityMatch +
		weightLoad*domain.LoadScore(a.LoadLevel) +
		weightAvailability*availability

	for _, id := range req.PreferredIDs {
		if id == a.ID {
			score += bonusPreferredID
			break
		}
	}
	if req.PreferredType != "" && domain.AgentType(a.Metadata[registry.MetaAgentType]) == req.PreferredType {
		score += bonusPreferredType
	}
	return score
}

func (r *Router) reason(c Candidate, req Request) string {
	matched := 0
	for _, cap := range req.RequiredCapabilities {
		if c.Agent.HasCapability(cap) {
			matched++
		}
	}
	parts := []string{
		fmt.Sprintf("tier %s", c.Agent.Tier),
		fmt.Sprintf("capabilities %d/%d", matched, len(req.RequiredCapabilities)),
		fmt.Sprintf("load %s", c.Agent.LoadLevel),
		fmt.Sprintf("score %.3f", c.Score),
	}
	return fmt.Sprintf("selected %s: %s", c.Agent.Name, strings.Join(parts, ", "))
}
