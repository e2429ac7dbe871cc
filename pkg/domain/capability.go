package domain

// Capability is a named skill tag drawn from a closed vocabulary.
type Capability string

// Capability vocabulary. Grouped by the agent type they are primary for;
// any capability may appear as a secondary capability on any agent.
const (
	// Architecture
	CapRequirementsAnalysis Capability = "requirements_analysis"
	CapSystemDesign         Capability = "system_design"
	CapArchitecturePlanning Capability = "architecture_planning"
	CapTaskDecomposition    Capability = "task_decomposition"
	// Implementation
	CapCodeGeneration Capability = "code_generation"
	CapTestGeneration Capability = "test_generation"
	CapDocumentation  Capability = "documentation"
	CapRefactoring    Capability = "refactoring"
	// Review
	CapCodeReview          Capability = "code_review"
	CapSecurityAudit       Capability = "security_audit"
	CapPerformanceAnalysis Capability = "performance_analysis"
	CapComplianceCheck     Capability = "compliance_check"
	// Debugging
	CapDebugging         Capability = "debugging"
	CapTroubleshooting   Capability = "troubleshooting"
	CapRootCauseAnalysis Capability = "root_cause_analysis"
	CapOptimization      Capability = "optimization"
	// Integration
	CapDeployment    Capability = "deployment"
	CapConfiguration Capability = "configuration"
	CapMonitoring    Capability = "monitoring"
	CapScaling       Capability = "scaling"
	// Orchestration
	CapWorkflowOrchestration Capability = "workflow_orchestration"
	CapResourceAllocation    Capability = "resource_allocation"
	CapConflictResolution    Capability = "conflict_resolution"
	CapProgressTracking      Capability = "progress_tracking"
)

// AllCapabilities lists the full closed vocabulary.
var AllCapabilities = []Capability{
	CapRequirementsAnalysis, CapSystemDesign, CapArchitecturePlanning, CapTaskDecomposition,
	CapCodeGeneration, CapTestGeneration, CapDocumentation, CapRefactoring,
	CapCodeReview, CapSecurityAudit, CapPerformanceAnalysis, CapComplianceCheck,
	CapDebugging, CapTroubleshooting, CapRootCauseAnalysis, CapOptimization,
	CapDeployment, CapConfiguration, CapMonitoring, CapScaling,
	CapWorkflowOrchestration, CapResourceAllocation, CapConflictResolution, CapProgressTracking,
}

// ValidCapability reports whether c is in the closed vocabulary.
func ValidCapability(c Capability) bool {
	for _, known := range AllCapabilities {
		if known == c {
			return true
		}
	}
	return false
}

// AgentType classifies a registered agent's specialism.
type AgentType string

// Agent types.
const (
	AgentArchitect    AgentType = "architect"
	AgentImplementer  AgentType = "implementer"
	AgentReviewer     AgentType = "reviewer"
	AgentDebugger     AgentType = "debugger"
	AgentIntegrator   AgentType = "integrator"
	AgentOrchestrator AgentType = "orchestrator"
	AgentAnalyst      AgentType = "analyst"
	AgentOptimizer    AgentType = "optimizer"
)

// ValidAgentType reports whether t is a known agent type.
func ValidAgentType(t AgentType) bool {
	switch t {
	case AgentArchitect, AgentImplementer, AgentReviewer, AgentDebugger,
		AgentIntegrator, AgentOrchestrator, AgentAnalyst, AgentOptimizer:
		return true
	}
	return false
}

// primaryCapabilities restricts which capabilities may be primary for each
// agent type. Types without an entry (analyst, optimizer) are unrestricted.
var primaryCapabilities = map[AgentType][]Capability{
	AgentArchitect:    {CapRequirementsAnalysis, CapSystemDesign, CapArchitecturePlanning, CapTaskDecomposition},
	AgentImplementer:  {CapCodeGeneration, CapTestGeneration, CapDocumentation, CapRefactoring},
	AgentReviewer:     {CapCodeReview, CapSecurityAudit, CapPerformanceAnalysis, CapComplianceCheck},
	AgentDebugger:     {CapDebugging, CapTroubleshooting, CapRootCauseAnalysis, CapOptimization},
	AgentIntegrator:   {CapDeployment, CapConfiguration, CapMonitoring, CapScaling},
	AgentOrchestrator: {CapWorkflowOrchestration, CapResourceAllocation, CapConflictResolution, CapProgressTracking},
}

// AllowedPrimaryCapability reports whether cap may be a primary capability of
// an agent of type t. Secondary capabilities are unconstrained.
func AllowedPrimaryCapability(t AgentType, cap Capability) bool {
	allowed, ok := primaryCapabilities[t]
	if !ok {
		return ValidCapability(cap)
	}
	for _, c := range allowed {
		if c == cap {
			return true
		}
	}
	return false
}
