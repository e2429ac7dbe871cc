// Package registry tracks registered agents. The in-memory maps are the
// primary index for routing; each agent also has a durable JSON record in
// Redis under agent:{id} whose TTL is refreshed on heartbeat, so records of
// dead agents expire on their own.
package registry

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/maestro-hq/maestro/pkg/domain"
)

const (
	// DefaultRecordTTL is how long a durable agent record survives without
	// a heartbeat.
	DefaultRecordTTL = 300 * time.Second

	statsCacheKey = "registry:stats"
	statsCacheTTL = 5 * time.Second
)

// Statistics is an aggregate snapshot of the registry, cached for 5 seconds.
type Statistics struct {
	TotalAgents     int                            `json:"total_agents"`
	AvailableAgents int                            `json:"available_agents"`
	ByType          map[domain.AgentType]int       `json:"by_type"`
	ByTier          map[domain.PerformanceTier]int `json:"by_tier"`
	ByLoadLevel     map[domain.LoadLevel]int       `json:"by_load_level"`
	TotalCapacity   int                            `json:"total_capacity"`
	UsedCapacity    int                            `json:"used_capacity"`
	MeanUtilization float64                        `json:"mean_utilization"`
	GeneratedAt     time.Time                      `json:"generated_at"`
}

// TaskOutcome classifies one finished task for metrics accounting.
type TaskOutcome string

const (
	OutcomeSuccess TaskOutcome = "success"
	OutcomePartial TaskOutcome = "partial"
	OutcomeFailure TaskOutcome = "failure"
)

// Registry is the agent registry. All reads and writes go through the
// RWMutex; Redis writes happen outside the lock.
type Registry struct {
	redis     *redis.Client
	recordTTL time.Duration
	logger    *slog.Logger

	statsCache *gocache.Cache

	// byName maps name → id; the capability and tier maps hold id sets.
	mu           sync.RWMutex
	byID         map[string]*Agent
	byName       map[string]string
	byCapability map[domain.Capability]map[string]bool
	byTier       map[domain.PerformanceTier]map[string]bool
}

// NewRegistry creates a registry backed by the given Redis client.
func NewRegistry(client *redis.Client, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		redis:        client,
		recordTTL:    DefaultRecordTTL,
		logger:       logger.With("component", "registry"),
		statsCache:   gocache.New(statsCacheTTL, time.Minute),
		byID:         make(map[string]*Agent),
		byName:       make(map[string]string),
		byCapability: make(map[domain.Capability]map[string]bool),
		byTier:       make(map[domain.PerformanceTier]map[string]bool),
	}
}

// SetRecordTTL overrides the durable record TTL.
func (r *Registry) SetRecordTTL(ttl time.Duration) { r.recordTTL = ttl }

func recordKey(id string) string { return "agent:" + id }

// Register adds a validated agent to the indexes and writes its durable
// record. Duplicate ids and names are rejected.
func (r *Registry) Register(ctx context.Context, agent *Agent) error {
	if err := agent.Validate(); err != nil {
		return err
	}

	now := time.Now()
	a := agent.clone()
	if a.RegisteredAt.IsZero() {
		a.RegisteredAt = now
	}
	if a.LastHeartbeat.IsZero() {
		a.LastHeartbeat = now
	}
	if a.Tier == "" {
		a.Tier = domain.TierTrainee
	}
	if a.LoadLevel == "" {
		a.LoadLevel = domain.LoadLevelForUtilization(a.CurrentTasks, a.MaxConcurrentTasks)
	}

	r.mu.Lock()
	if _, exists := r.byID[a.ID]; exists {
		r.mu.Unlock()
		return ErrAgentExists
	}
	if _, exists := r.byName[a.Name]; exists {
		r.mu.Unlock()
		return ErrAgentExists
	}
	r.index(a)
	r.mu.Unlock()

	r.invalidateStats()
	if err := r.persist(ctx, a); err != nil {
		r.logger.Warn("Failed to persist agent record", "agent_id", a.ID, "error", err)
	}
	r.logger.Info("Agent registered",
		"agent_id", a.ID, "name", a.Name, "type", a.Type, "tier", a.Tier)
	return nil
}

// Deregister removes the agent from every index and deletes its durable
// record.
func (r *Registry) Deregister(ctx context.Context, id string) error {
	r.mu.Lock()
	a, ok := r.byID[id]
	if ok {
		r.unindex(a)
	}
	r.mu.Unlock()

	if !ok {
		return ErrAgentNotFound
	}
	r.invalidateStats()
	if err := r.redis.Del(ctx, recordKey(id)).Err(); err != nil {
		r.logger.Warn("Failed to delete agent record", "agent_id", id, "error", err)
	}
	r.logger.Info("Agent deregistered", "agent_id", id, "name", a.Name)
	return nil
}

// Get returns a copy of the agent by id.
func (r *Registry) Get(id string) (*Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, ErrAgentNotFound
	}
	return a.clone(), nil
}

// GetByName returns a copy of the agent by its unique name.
func (r *Registry) GetByName(name string) (*Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	if !ok {
		return nil, ErrAgentNotFound
	}
	return r.byID[id].clone(), nil
}

// Update replaces the stored agent with the given state. Identity fields
// (id, tenant) cannot change; the replacement is re-validated and re-indexed.
func (r *Registry) Update(ctx context.Context, agent *Agent) error {
	if err := agent.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	old, ok := r.byID[agent.ID]
	if !ok {
		r.mu.Unlock()
		return ErrAgentNotFound
	}
	if old.TenantID != agent.TenantID {
		r.mu.Unlock()
		return &ValidationError{Field: "tenant_id", Message: "tenant id cannot change"}
	}
	if other, taken := r.byName[agent.Name]; taken && other != agent.ID {
		r.mu.Unlock()
		return ErrAgentExists
	}
	a := agent.clone()
	a.LoadLevel = domain.LoadLevelForUtilization(a.CurrentTasks, a.MaxConcurrentTasks)
	r.unindex(old)
	r.index(a)
	r.mu.Unlock()

	r.invalidateStats()
	if err := r.persist(ctx, a); err != nil {
		r.logger.Warn("Failed to persist agent record", "agent_id", a.ID, "error", err)
	}
	return nil
}

// FindByCapability returns copies of agents advertising the capability.
func (r *Registry) FindByCapability(c domain.Capability) []*Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Agent, 0, len(r.byCapability[c]))
	for id := range r.byCapability[c] {
		out = append(out, r.byID[id].clone())
	}
	return out
}

// FindByCapabilities returns agents matching the capability set. With
// matchAll, every capability must be present; otherwise any one suffices.
func (r *Registry) FindByCapabilities(caps []domain.Capability, matchAll bool) []*Agent {
	if len(caps) == 0 {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, c := range caps {
		for id := range r.byCapability[c] {
			counts[id]++
		}
	}

	need := 1
	if matchAll {
		need = len(caps)
	}
	var out []*Agent
	for id, n := range counts {
		if n >= need {
			out = append(out, r.byID[id].clone())
		}
	}
	return out
}

// FindAvailable returns agents able to take more work.
func (r *Registry) FindAvailable() []*Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Agent
	for _, a := range r.byID {
		if a.IsAvailable() {
			out = append(out, a.clone())
		}
	}
	return out
}

// FindByTier returns agents at the given performance tier.
func (r *Registry) FindByTier(tier domain.PerformanceTier) []*Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Agent, 0, len(r.byTier[tier]))
	for id := range r.byTier[tier] {
		out = append(out, r.byID[id].clone())
	}
	return out
}

// All returns copies of every registered agent.
func (r *Registry) All() []*Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Agent, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a.clone())
	}
	return out
}

// UpdateHeartbeat stamps the agent's heartbeat and refreshes the durable
// record TTL.
func (r *Registry) UpdateHeartbeat(ctx context.Context, id string) error {
	r.mu.Lock()
	a, ok := r.byID[id]
	if ok {
		a.LastHeartbeat = time.Now()
		a = a.clone()
	}
	r.mu.Unlock()

	if !ok {
		return ErrAgentNotFound
	}
	if err := r.persist(ctx, a); err != nil {
		r.logger.Warn("Failed to refresh agent record", "agent_id", id, "error", err)
	}
	return nil
}

// IncrementTaskCount bumps the agent's in-flight task count and recomputes
// its load level.
func (r *Registry) IncrementTaskCount(ctx context.Context, id string) error {
	return r.adjustTaskCount(ctx, id, 1)
}

// DecrementTaskCount lowers the agent's in-flight task count, floored at 0.
func (r *Registry) DecrementTaskCount(ctx context.Context, id string) error {
	return r.adjustTaskCount(ctx, id, -1)
}

func (r *Registry) adjustTaskCount(ctx context.Context, id string, delta int) error {
	r.mu.Lock()
	a, ok := r.byID[id]
	var snapshot *Agent
	if ok {
		a.CurrentTasks += delta
		if a.CurrentTasks < 0 {
			a.CurrentTasks = 0
		}
		a.LoadLevel = domain.LoadLevelForUtilization(a.CurrentTasks, a.MaxConcurrentTasks)
		snapshot = a.clone()
	}
	r.mu.Unlock()

	if !ok {
		return ErrAgentNotFound
	}
	r.invalidateStats()
	if err := r.persist(ctx, snapshot); err != nil {
		r.logger.Warn("Failed to persist agent record", "agent_id", id, "error", err)
	}
	return nil
}

// RecordTaskResult folds one finished task into the agent's rolling metrics
// and applies the tier consequences of its new success rate: five or more
// tasks with a rate below 0.3 demotes to degraded; a degraded agent whose
// rate climbs past 0.5 is promoted to trainee.
func (r *Registry) RecordTaskResult(ctx context.Context, id string, outcome TaskOutcome, duration time.Duration, tokens int, costUSD float64) error {
	r.mu.Lock()
	a, ok := r.byID[id]
	var snapshot *Agent
	if ok {
		m := &a.Metrics
		m.TotalTasks++
		switch outcome {
		case OutcomeSuccess:
			m.SuccessfulTasks++
		case OutcomePartial:
			m.PartialTasks++
		default:
			m.FailedTasks++
		}
		n := float64(m.TotalTasks)
		m.AvgDurationSeconds += (duration.Seconds() - m.AvgDurationSeconds) / n
		m.AvgTokens += (float64(tokens) - m.AvgTokens) / n
		m.AvgCostUSD += (costUSD - m.AvgCostUSD) / n

		if next := domain.BreakerTier(a.Tier, m.TotalTasks, m.SuccessRate()); next != a.Tier {
			r.moveTier(a, next)
		}
		snapshot = a.clone()
	}
	r.mu.Unlock()

	if !ok {
		return ErrAgentNotFound
	}
	r.invalidateStats()
	if err := r.persist(ctx, snapshot); err != nil {
		r.logger.Warn("Failed to persist agent record", "agent_id", id, "error", err)
	}
	return nil
}

// Statistics returns the aggregate snapshot, served from a 5-second cache.
func (r *Registry) Statistics() Statistics {
	if cached, ok := r.statsCache.Get(statsCacheKey); ok {
		return cached.(Statistics)
	}

	r.mu.RLock()
	stats := Statistics{
		ByType:      make(map[domain.AgentType]int),
		ByTier:      make(map[domain.PerformanceTier]int),
		ByLoadLevel: make(map[domain.LoadLevel]int),
		GeneratedAt: time.Now(),
	}
	var utilSum float64
	for _, a := range r.byID {
		stats.TotalAgents++
		stats.ByType[a.Type]++
		stats.ByTier[a.Tier]++
		stats.ByLoadLevel[a.LoadLevel]++
		stats.TotalCapacity += a.MaxConcurrentTasks
		stats.UsedCapacity += a.CurrentTasks
		utilSum += a.Utilization()
		if a.IsAvailable() {
			stats.AvailableAgents++
		}
	}
	if stats.TotalAgents > 0 {
		stats.MeanUtilization = utilSum / float64(stats.TotalAgents)
	}
	r.mu.RUnlock()

	r.statsCache.Set(statsCacheKey, stats, statsCacheTTL)
	return stats
}

// CleanupStaleAgents removes agents whose last heartbeat is older than
// maxAge or whose durable record has expired. Returns the removed ids.
func (r *Registry) CleanupStaleAgents(ctx context.Context, maxAge time.Duration) []string {
	if maxAge <= 0 {
		maxAge = r.recordTTL
	}
	cutoff := time.Now().Add(-maxAge)

	r.mu.RLock()
	candidates := make([]string, 0)
	stale := make([]string, 0)
	for id, a := range r.byID {
		if a.LastHeartbeat.Before(cutoff) {
			stale = append(stale, id)
		} else {
			candidates = append(candidates, id)
		}
	}
	r.mu.RUnlock()

	// Index entries whose durable record expired are orphans too.
	for _, id := range candidates {
		n, err := r.redis.Exists(ctx, recordKey(id)).Result()
		if err == nil && n == 0 {
			stale = append(stale, id)
		}
	}

	var removed []string
	for _, id := range stale {
		if err := r.Deregister(ctx, id); err == nil {
			removed = append(removed, id)
		}
	}
	if len(removed) > 0 {
		r.logger.Info("Cleaned up stale agents", "count", len(removed))
	}
	return removed
}

// --- index maintenance; callers hold r.mu ---

func (r *Registry) index(a *Agent) {
	r.byID[a.ID] = a
	r.byName[a.Name] = a.ID
	for _, c := range a.Capabilities {
		if r.byCapability[c] == nil {
			r.byCapability[c] = make(map[string]bool)
		}
		r.byCapability[c][a.ID] = true
	}
	if r.byTier[a.Tier] == nil {
		r.byTier[a.Tier] = make(map[string]bool)
	}
	r.byTier[a.Tier][a.ID] = true
}

func (r *Registry) unindex(a *Agent) {
	delete(r.byID, a.ID)
	delete(r.byName, a.Name)
	for _, c := range a.Capabilities {
		delete(r.byCapability[c], a.ID)
	}
	delete(r.byTier[a.Tier], a.ID)
}

func (r *Registry) moveTier(a *Agent, tier domain.PerformanceTier) {
	delete(r.byTier[a.Tier], a.ID)
	a.Tier = tier
	if r.byTier[tier] == nil {
		r.byTier[tier] = make(map[string]bool)
	}
	r.byTier[tier][a.ID] = true
	r.logger.Info("Agent tier changed", "agent_id", a.ID, "tier", tier,
		"success_rate", a.Metrics.SuccessRate())
}

func (r *Registry) persist(ctx context.Context, a *Agent) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, recordKey(a.ID), payload, r.recordTTL).Err()
}

func (r *Registry) invalidateStats() {
	r.statsCache.Delete(statsCacheKey)
}
