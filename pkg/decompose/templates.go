package decompose

import "github.com/maestro-hq/maestro/pkg/domain"

// Phase is one child-task descriptor within a template.
type Phase struct {
	Name         string
	Hours        float64
	Capabilities []domain.Capability
}

// Template is a named decomposition pattern. A task whose expected hours
// exceed the threshold expands into one child per phase, titled
// "{parent_title} - {phase}".
type Template struct {
	Name                string
	ComplexityThreshold float64
	Strategy            Strategy
	MaxDepth            int
	Phases              []Phase
}

// builtinTemplates are the named patterns known to the engine.
var builtinTemplates = map[string]Template{
	"web-service-implementation": {
		Name:                "web-service-implementation",
		ComplexityThreshold: 4,
		Strategy:            StrategyTemporal,
		MaxDepth:            3,
		Phases: []Phase{
			{Name: "API Design", Hours: 2, Capabilities: []domain.Capability{domain.CapSystemDesign}},
			{Name: "Data Layer", Hours: 4, Capabilities: []domain.Capability{domain.CapCodeGeneration}},
			{Name: "Business Logic", Hours: 6, Capabilities: []domain.Capability{domain.CapCodeGeneration}},
			{Name: "API Endpoints", Hours: 4, Capabilities: []domain.Capability{domain.CapCodeGeneration}},
			{Name: "Tests", Hours: 3, Capabilities: []domain.Capability{domain.CapTestGeneration}},
			{Name: "Documentation", Hours: 1, Capabilities: []domain.Capability{domain.CapDocumentation}},
		},
	},
	"refactoring-task": {
		Name:                "refactoring-task",
		ComplexityThreshold: 3,
		Strategy:            StrategyFunctional,
		MaxDepth:            2,
		Phases: []Phase{
			{Name: "Analyze Current Code", Hours: 2, Capabilities: []domain.Capability{domain.CapCodeReview}},
			{Name: "Refactor Implementation", Hours: 5, Capabilities: []domain.Capability{domain.CapRefactoring}},
			{Name: "Verify Tests", Hours: 2, Capabilities: []domain.Capability{domain.CapTestGeneration}},
		},
	},
}

// TemplateByName returns a built-in template.
func TemplateByName(name string) (Template, bool) {
	tpl, ok := builtinTemplates[name]
	return tpl, ok
}
