package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatePERT(t *testing.T) {
	e := Estimate{OptimisticHours: 1, LikelyHours: 2, PessimisticHours: 9}
	assert.InDelta(t, 3.0, e.ExpectedHours(), 1e-9) // (1 + 8 + 9) / 6
	assert.InDelta(t, 8.0/6.0, e.StdDevHours(), 1e-9)
}

func TestEstimateComplexity(t *testing.T) {
	tests := []struct {
		likely float64
		want   ComplexityLevel
	}{
		{0.1, ComplexityTrivial},
		{0.5, ComplexitySimple},
		{2, ComplexityModerate},
		{6, ComplexityComplex},
		{10, ComplexityExpert},
	}
	for _, tt := range tests {
		e := Estimate{OptimisticHours: tt.likely, LikelyHours: tt.likely, PessimisticHours: tt.likely}
		assert.Equal(t, tt.want, e.Complexity(), "likely=%v", tt.likely)
	}
}

func TestUpdateFromExecution(t *testing.T) {
	e := Estimate{
		OptimisticHours:  1,
		LikelyHours:      4,
		PessimisticHours: 6,
		Confidence:       0.5,
		Source:           EstimateAIAnalysis,
	}

	e.UpdateFromExecution(8)
	assert.Equal(t, 6.0, e.LikelyHours)
	assert.Equal(t, 1.0, e.OptimisticHours)
	assert.Equal(t, 8.0, e.PessimisticHours) // widened to actual
	assert.InDelta(t, 0.55, e.Confidence, 1e-9)
	assert.Equal(t, EstimateHistorical, e.Source)
}

func TestUpdateFromExecutionConverges(t *testing.T) {
	e := Estimate{OptimisticHours: 2, LikelyHours: 10, PessimisticHours: 12, Confidence: 0.3}

	// Repeated identical updates pull likely toward the actual without drift
	// and monotonically raise confidence up to the cap.
	prev := e.Confidence
	for i := 0; i < 20; i++ {
		e.UpdateFromExecution(4)
		assert.GreaterOrEqual(t, e.Confidence, prev)
		prev = e.Confidence
	}
	assert.InDelta(t, 4.0, e.LikelyHours, 0.01)
	assert.Equal(t, 0.95, e.Confidence)
	assert.Equal(t, 2.0, e.OptimisticHours)
	assert.Equal(t, 12.0, e.PessimisticHours)
}
