package registry

import (
	"regexp"
	"time"

	"github.com/maestro-hq/maestro/pkg/domain"
)

// Metadata keys recognized on registered agents.
const (
	MetaIsExternal  = "is_external"
	MetaEndpointURL = "endpoint_url"
	MetaAuthToken   = "auth_token"
	MetaAgentType   = "agent_type"
)

var agentNamePattern = regexp.MustCompile(`^AGENT-[A-Za-z0-9._-]+$`)

// genericNames are rejected as agent names when the AGENT- prefix is absent.
var genericNames = map[string]bool{
	"agent":   true,
	"default": true,
	"test":    true,
	"temp":    true,
	"worker":  true,
}

// PerformanceMetrics is the rolling execution record for one agent. Success
// rate counts partial completions at half weight.
type PerformanceMetrics struct {
	TotalTasks         int     `json:"total_tasks"`
	SuccessfulTasks    int     `json:"successful_tasks"`
	PartialTasks       int     `json:"partial_tasks"`
	FailedTasks        int     `json:"failed_tasks"`
	AvgDurationSeconds float64 `json:"avg_duration_seconds"`
	AvgTokens          float64 `json:"avg_tokens"`
	AvgCostUSD         float64 `json:"avg_cost_usd"`
}

// SuccessRate returns (successful + 0.5*partial) / total, or 0 with no tasks.
func (m PerformanceMetrics) SuccessRate() float64 {
	if m.TotalTasks == 0 {
		return 0
	}
	return (float64(m.SuccessfulTasks) + 0.5*float64(m.PartialTasks)) / float64(m.TotalTasks)
}

// Agent is a runtime registration record. The registry owns the canonical
// in-memory copy; a JSON snapshot lives in Redis under agent:{id} with a
// heartbeat-refreshed TTL.
type Agent struct {
	ID                 string                 `json:"id"`
	TenantID           string                 `json:"tenant_id"`
	Name               string                 `json:"name"`
	Type               domain.AgentType       `json:"type"`
	Capabilities       []domain.Capability    `json:"capabilities"`
	Tier               domain.PerformanceTier `json:"tier"`
	LoadLevel          domain.LoadLevel       `json:"load_level"`
	CurrentTasks       int                    `json:"current_tasks"`
	MaxConcurrentTasks int                    `json:"max_concurrent_tasks"`
	LastHeartbeat      time.Time              `json:"last_heartbeat"`
	RegisteredAt       time.Time              `json:"registered_at"`
	Metadata           map[string]string      `json:"metadata,omitempty"`
	Metrics            PerformanceMetrics     `json:"metrics"`
}

// Validate checks the registration invariants: name shape, known type and
// tier, non-empty capability set with the primary capability allowed for the
// agent's type.
func (a *Agent) Validate() error {
	if a.ID == "" {
		return &ValidationError{Field: "id", Message: "agent id is required"}
	}
	if a.TenantID == "" {
		return &ValidationError{Field: "tenant_id", Message: "tenant id is required"}
	}
	if !validAgentName(a.Name) {
		return &ValidationError{Field: "name", Message: "name must match AGENT-* or be a descriptive non-generic name"}
	}
	if !domain.ValidAgentType(a.Type) {
		return &ValidationError{Field: "type", Message: "unknown agent type: " + string(a.Type)}
	}
	if len(a.Capabilities) == 0 {
		return &ValidationError{Field: "capabilities", Message: "at least one capability is required"}
	}
	for _, c := range a.Capabilities {
		if !domain.ValidCapability(c) {
			return &ValidationError{Field: "capabilities", Message: "unknown capability: " + string(c)}
		}
	}
	if !domain.AllowedPrimaryCapability(a.Type, a.Capabilities[0]) {
		return &ValidationError{
			Field:   "capabilities",
			Message: "primary capability " + string(a.Capabilities[0]) + " not allowed for type " + string(a.Type),
		}
	}
	if a.Tier != "" && !domain.ValidTier(a.Tier) {
		return &ValidationError{Field: "tier", Message: "unknown performance tier: " + string(a.Tier)}
	}
	if a.MaxConcurrentTasks <= 0 {
		return &ValidationError{Field: "max_concurrent_tasks", Message: "max_concurrent_tasks must be positive"}
	}
	return nil
}

func validAgentName(name string) bool {
	if agentNamePattern.MatchString(name) {
		return true
	}
	return len(name) >= 3 && !genericNames[name]
}

// IsAvailable reports whether the agent can take more work: not degraded,
// not overloaded, with spare concurrency.
func (a *Agent) IsAvailable() bool {
	return a.Tier != domain.TierDegraded &&
		a.LoadLevel != domain.LoadOverloaded &&
		a.CurrentTasks < a.MaxConcurrentTasks
}

// Utilization is current/max in [0,1]; 1 when max is unset.
func (a *Agent) Utilization() float64 {
	if a.MaxConcurrentTasks <= 0 {
		return 1
	}
	return float64(a.CurrentTasks) / float64(a.MaxConcurrentTasks)
}

// HasCapability reports whether the agent advertises c.
func (a *Agent) HasCapability(c domain.Capability) bool {
	for _, have := range a.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// IsExternal reports whether the agent runs behind an EAP endpoint.
func (a *Agent) IsExternal() bool {
	return a.Metadata[MetaIsExternal] == "true"
}

// clone returns a deep copy so callers cannot mutate registry state.
func (a *Agent) clone() *Agent {
	cp := *a
	cp.Capabilities = append([]domain.Capability(nil), a.Capabilities...)
	if a.Metadata != nil {
		cp.Metadata = make(map[string]string, len(a.Metadata))
		for k, v := range a.Metadata {
			cp.Metadata[k] = v
		}
	}
	return &cp
}
