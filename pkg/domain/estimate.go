package domain

// EstimateSource records how an estimate was produced.
type EstimateSource string

// Estimate sources.
const (
	EstimateManual        EstimateSource = "manual"
	EstimateAIAnalysis    EstimateSource = "ai_analysis"
	EstimateHistorical    EstimateSource = "historical"
	EstimateDecomposition EstimateSource = "decomposition"
)

// ComplexityLevel buckets expected effort.
type ComplexityLevel string

// Complexity levels by expected hours.
const (
	ComplexityTrivial  ComplexityLevel = "trivial"  // < 0.25h
	ComplexitySimple   ComplexityLevel = "simple"   // < 1h
	ComplexityModerate ComplexityLevel = "moderate" // < 4h
	ComplexityComplex  ComplexityLevel = "complex"  // < 8h
	ComplexityExpert   ComplexityLevel = "expert"   // >= 8h
)

// Estimate is a PERT triple-point estimate for a task, plus the resources
// and capabilities the task is expected to need.
type Estimate struct {
	OptimisticHours      float64        `json:"optimistic_hours"`
	LikelyHours          float64        `json:"likely_hours"`
	PessimisticHours     float64        `json:"pessimistic_hours"`
	EstimatedTokens      int            `json:"estimated_tokens,omitempty"`
	EstimatedCost        float64        `json:"estimated_cost,omitempty"`
	RequiredCapabilities []Capability   `json:"required_capabilities,omitempty"`
	Confidence           float64        `json:"confidence"`
	Source               EstimateSource `json:"source"`
}

// ExpectedHours returns the PERT expected value (O + 4M + P) / 6.
func (e Estimate) ExpectedHours() float64 {
	return (e.OptimisticHours + 4*e.LikelyHours + e.PessimisticHours) / 6
}

// StdDevHours returns the PERT standard deviation (P - O) / 6.
func (e Estimate) StdDevHours() float64 {
	return (e.PessimisticHours - e.OptimisticHours) / 6
}

// Complexity buckets the expected hours into a complexity level.
func (e Estimate) Complexity() ComplexityLevel {
	h := e.ExpectedHours()
	switch {
	case h < 0.25:
		return ComplexityTrivial
	case h < 1:
		return ComplexitySimple
	case h < 4:
		return ComplexityModerate
	case h < 8:
		return ComplexityComplex
	default:
		return ComplexityExpert
	}
}

// UpdateFromExecution folds an actual execution duration back into the
// estimate: the likely value is averaged with the actual, the optimistic and
// pessimistic bounds narrow to min/max, confidence rises by 0.05 capped at
// 0.95, and the source becomes historical. Repeated identical updates
// converge without drifting the likely value.
func (e *Estimate) UpdateFromExecution(actualHours float64) {
	e.LikelyHours = (e.LikelyHours + actualHours) / 2
	if actualHours < e.OptimisticHours {
		e.OptimisticHours = actualHours
	}
	if actualHours > e.PessimisticHours {
		e.PessimisticHours = actualHours
	}
	e.Confidence += 0.05
	if e.Confidence > 0.95 {
		e.Confidence = 0.95
	}
	e.Source = EstimateHistorical
}
