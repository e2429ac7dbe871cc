package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedPrimaryCapability(t *testing.T) {
	tests := []struct {
		name string
		typ  AgentType
		cap  Capability
		want bool
	}{
		{"architect system design", AgentArchitect, CapSystemDesign, true},
		{"architect cannot code", AgentArchitect, CapCodeGeneration, false},
		{"implementer code generation", AgentImplementer, CapCodeGeneration, true},
		{"implementer cannot audit", AgentImplementer, CapSecurityAudit, false},
		{"reviewer security audit", AgentReviewer, CapSecurityAudit, true},
		{"debugger root cause", AgentDebugger, CapRootCauseAnalysis, true},
		{"integrator deployment", AgentIntegrator, CapDeployment, true},
		{"orchestrator workflow", AgentOrchestrator, CapWorkflowOrchestration, true},
		{"analyst unrestricted", AgentAnalyst, CapCodeReview, true},
		{"optimizer unrestricted", AgentOptimizer, CapOptimization, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedPrimaryCapability(tt.typ, tt.cap))
		})
	}
}

func TestLoadLevelForUtilization(t *testing.T) {
	assert.Equal(t, LoadIdle, LoadLevelForUtilization(0, 5))
	assert.Equal(t, LoadOptimal, LoadLevelForUtilization(2, 5))
	assert.Equal(t, LoadHigh, LoadLevelForUtilization(3, 5))
	assert.Equal(t, LoadCritical, LoadLevelForUtilization(4, 5))
	assert.Equal(t, LoadOverloaded, LoadLevelForUtilization(5, 5))
	assert.Equal(t, LoadOverloaded, LoadLevelForUtilization(0, 0))
}

func TestTaskTransitions(t *testing.T) {
	assert.True(t, CanTransitionTask(TaskPending, TaskReady))
	assert.True(t, CanTransitionTask(TaskReady, TaskAssigned))
	assert.True(t, CanTransitionTask(TaskAssigned, TaskInProgress))
	assert.True(t, CanTransitionTask(TaskInProgress, TaskBlocked))
	assert.True(t, CanTransitionTask(TaskBlocked, TaskInProgress))
	assert.False(t, CanTransitionTask(TaskPending, TaskInProgress))
	assert.False(t, CanTransitionTask(TaskCompleted, TaskInProgress))
	assert.False(t, CanTransitionTask(TaskSkipped, TaskPending))
}

func TestFineTuningTransitions(t *testing.T) {
	assert.True(t, CanTransitionFineTuning(FineTuningPending, FineTuningQueued))
	assert.True(t, CanTransitionFineTuning(FineTuningRunning, FineTuningEvaluating))
	assert.True(t, CanTransitionFineTuning(FineTuningEvaluating, FineTuningCompleted))
	// Retry path from terminal states.
	assert.True(t, CanTransitionFineTuning(FineTuningFailed, FineTuningPending))
	assert.True(t, CanTransitionFineTuning(FineTuningCancelled, FineTuningPending))
	assert.False(t, CanTransitionFineTuning(FineTuningCompleted, FineTuningPending))
	assert.False(t, CanTransitionFineTuning(FineTuningPending, FineTuningRunning))
}
