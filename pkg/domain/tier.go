package domain

// PerformanceTier is a discrete classification of an agent's quality track
// record. degraded agents are removed from routing.
type PerformanceTier string

// Performance tiers from best to worst.
const (
	TierElite     PerformanceTier = "elite"
	TierAdvanced  PerformanceTier = "advanced"
	TierCompetent PerformanceTier = "competent"
	TierTrainee   PerformanceTier = "trainee"
	TierDegraded  PerformanceTier = "degraded"
)

// TierScore returns the routing score contribution for a tier.
func TierScore(t PerformanceTier) float64 {
	switch t {
	case TierElite:
		return 1.0
	case TierAdvanced:
		return 0.8
	case TierCompetent:
		return 0.6
	case TierTrainee:
		return 0.4
	default:
		return 0.0
	}
}

// TierRank orders tiers for min-tier filtering, higher is better.
func TierRank(t PerformanceTier) int {
	switch t {
	case TierElite:
		return 4
	case TierAdvanced:
		return 3
	case TierCompetent:
		return 2
	case TierTrainee:
		return 1
	default:
		return 0
	}
}

// ValidTier reports whether t is a known performance tier.
func ValidTier(t PerformanceTier) bool {
	switch t {
	case TierElite, TierAdvanced, TierCompetent, TierTrainee, TierDegraded:
		return true
	}
	return false
}

// BreakerTier applies the routing circuit breaker to an agent's rolling
// metrics. It keeps no state of its own: with at least five recorded tasks a
// success rate below 0.3 demotes to degraded, and a degraded agent whose
// rate recovers past 0.5 is promoted to trainee. Otherwise the current tier
// stands.
func BreakerTier(current PerformanceTier, totalTasks int, successRate float64) PerformanceTier {
	switch {
	case current != TierDegraded && totalTasks >= 5 && successRate < 0.3:
		return TierDegraded
	case current == TierDegraded && successRate > 0.5:
		return TierTrainee
	default:
		return current
	}
}

// LoadLevel is a discrete classification of per-agent utilization.
type LoadLevel string

// Load levels from least to most loaded.
const (
	LoadIdle       LoadLevel = "idle"
	LoadOptimal    LoadLevel = "optimal"
	LoadHigh       LoadLevel = "high"
	LoadCritical   LoadLevel = "critical"
	LoadOverloaded LoadLevel = "overloaded"
)

// LoadScore returns the routing score contribution for a load level.
func LoadScore(l LoadLevel) float64 {
	switch l {
	case LoadIdle:
		return 1.0
	case LoadOptimal:
		return 0.8
	case LoadHigh:
		return 0.5
	case LoadCritical:
		return 0.2
	default:
		return 0.0
	}
}

// LoadLevelForUtilization derives the load level from current and maximum
// concurrent task counts. It is the single source of truth for load
// classification.
func LoadLevelForUtilization(current, max int) LoadLevel {
	if max <= 0 || current >= max {
		return LoadOverloaded
	}
	ratio := float64(current) / float64(max)
	switch {
	case ratio == 0:
		return LoadIdle
	case ratio <= 0.5:
		return LoadOptimal
	case ratio <= 0.75:
		return LoadHigh
	default:
		return LoadCritical
	}
}
