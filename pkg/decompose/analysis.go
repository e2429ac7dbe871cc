// Package decompose expands complex tasks into subtask DAGs. Expansion is
// driven by three mechanisms: generic strategies (functional, temporal,
// capability), named templates matched by task kind, and regex pattern rules
// matched against the task text.
package decompose

import (
	"strings"

	"github.com/maestro-hq/maestro/pkg/domain"
)

// complexityKeywords scale the base estimate when they appear in the task
// text. Weights are multiplicative.
var complexityKeywords = map[string]float64{
	"integrate":    1.5,
	"migrate":      1.6,
	"refactor":     1.4,
	"distributed":  1.8,
	"concurrent":   1.6,
	"security":     1.5,
	"performance":  1.4,
	"architecture": 1.7,
	"realtime":     1.5,
	"scale":        1.4,
	"legacy":       1.5,
}

// technicalTerms contribute a smaller per-term scaling factor.
var technicalTerms = []string{
	"api", "database", "cache", "queue", "authentication", "authorization",
	"encryption", "websocket", "grpc", "kubernetes", "microservice",
	"transaction", "index", "schema", "pipeline", "webhook",
}

// capabilityKeywords infer required capabilities from task text.
var capabilityKeywords = map[string]domain.Capability{
	"design":      domain.CapSystemDesign,
	"architect":   domain.CapArchitecturePlanning,
	"requirement": domain.CapRequirementsAnalysis,
	"implement":   domain.CapCodeGeneration,
	"build":       domain.CapCodeGeneration,
	"code":        domain.CapCodeGeneration,
	"test":        domain.CapTestGeneration,
	"document":    domain.CapDocumentation,
	"refactor":    domain.CapRefactoring,
	"review":      domain.CapCodeReview,
	"security":    domain.CapSecurityAudit,
	"audit":       domain.CapSecurityAudit,
	"performance": domain.CapPerformanceAnalysis,
	"debug":       domain.CapDebugging,
	"fix":         domain.CapTroubleshooting,
	"deploy":      domain.CapDeployment,
	"configure":   domain.CapConfiguration,
	"monitor":     domain.CapMonitoring,
	"scale":       domain.CapScaling,
	"optimize":    domain.CapOptimization,
}

// Analysis is the heuristic estimate derived from a task description.
type Analysis struct {
	EstimatedHours float64
	Capabilities   []domain.Capability
	Confidence     float64
}

// AnalyzeDescription estimates effort and required capabilities from free
// text. Base hours are word_count/100, scaled by weighted keyword matches
// and technical-term count, clamped to [1, 24]. Confidence grows with text
// length up to 0.8.
func AnalyzeDescription(title, description string) Analysis {
	text := strings.ToLower(title + " " + description)
	words := strings.Fields(text)
	wordCount := len(words)

	hours := float64(wordCount) / 100

	for keyword, weight := range complexityKeywords {
		if strings.Contains(text, keyword) {
			hours *= weight
		}
	}

	termCount := 0
	for _, term := range technicalTerms {
		if strings.Contains(text, term) {
			termCount++
		}
	}
	hours *= 1 + float64(termCount)*0.1

	if hours < 1 {
		hours = 1
	}
	if hours > 24 {
		hours = 24
	}

	seen := map[domain.Capability]bool{}
	caps := []domain.Capability{}
	for keyword, cap := range capabilityKeywords {
		if strings.Contains(text, keyword) && !seen[cap] {
			seen[cap] = true
			caps = append(caps, cap)
		}
	}

	confidence := 0.3 + float64(wordCount)/500
	if confidence > 0.8 {
		confidence = 0.8
	}

	return Analysis{
		EstimatedHours: hours,
		Capabilities:   caps,
		Confidence:     confidence,
	}
}

// EstimateFromAnalysis converts an analysis into a PERT estimate with a
// ±40% spread around the likely value.
func EstimateFromAnalysis(a Analysis) domain.Estimate {
	return domain.Estimate{
		OptimisticHours:      a.EstimatedHours * 0.6,
		LikelyHours:          a.EstimatedHours,
		PessimisticHours:     a.EstimatedHours * 1.4,
		RequiredCapabilities: a.Capabilities,
		Confidence:           a.Confidence,
		Source:               domain.EstimateAIAnalysis,
	}
}
