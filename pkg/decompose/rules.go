package decompose

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/taskgraph"
)

// Expansion names the pattern a rule selects.
type Expansion string

// Known rule expansions.
const (
	ExpansionMicroservice Expansion = "microservice_pattern"
	ExpansionCRUD         Expansion = "crud_pattern"
	ExpansionUIComponents Expansion = "ui_components"
	ExpansionSecurity     Expansion = "security_pattern"
	ExpansionDefault      Expansion = "default"
)

// Rule matches task text against a pattern and selects an expansion. Rules
// are evaluated in descending priority order; the first match wins.
type Rule struct {
	Name      string
	Pattern   *regexp.Regexp
	Priority  int
	Expansion Expansion
}

var builtinRules = []Rule{
	{
		Name:      "microservice",
		Pattern:   regexp.MustCompile(`(?i)\bmicroservices?\b`),
		Priority:  100,
		Expansion: ExpansionMicroservice,
	},
	{
		Name:      "security",
		Pattern:   regexp.MustCompile(`(?i)\b(security|authentication|authorization|encryption)\b`),
		Priority:  90,
		Expansion: ExpansionSecurity,
	},
	{
		Name:      "crud",
		Pattern:   regexp.MustCompile(`(?i)\bcrud\b|\b(create|read|update|delete)\b.*\b(api|endpoint|resource)\b`),
		Priority:  80,
		Expansion: ExpansionCRUD,
	},
	{
		Name:      "ui",
		Pattern:   regexp.MustCompile(`(?i)\b(ui|frontend|dashboard|form|interface)\b`),
		Priority:  70,
		Expansion: ExpansionUIComponents,
	},
}

// MatchRule returns the highest-priority rule matching title+description,
// or the default expansion when nothing matches.
func MatchRule(title, description string) Expansion {
	text := title + " " + description
	rules := make([]Rule, len(builtinRules))
	copy(rules, builtinRules)
	sort.Slice(rules, func(i, j int) bool { return rules[i].Priority > rules[j].Priority })

	for _, rule := range rules {
		if rule.Pattern.MatchString(text) {
			return rule.Expansion
		}
	}
	return ExpansionDefault
}

// sharedComponents are the infrastructure children every microservice
// expansion produces alongside its services.
var sharedComponents = []string{"auth", "database", "api_gateway"}

// expandMicroservice produces N service children plus the shared components;
// each service takes a start-to-start dependency on every shared component.
func (e *Engine) expandMicroservice(parent *taskgraph.Task, serviceCount int) error {
	components := make([]*taskgraph.Task, 0, len(sharedComponents))
	for _, name := range sharedComponents {
		child := e.newChild(parent, fmt.Sprintf("Build shared %s component", name), 4,
			[]domain.Capability{domain.CapCodeGeneration})
		if err := parent.AddChild(child); err != nil {
			return err
		}
		components = append(components, child)
	}

	for i := 1; i <= serviceCount; i++ {
		svc := e.newChild(parent, fmt.Sprintf("Implement service %d", i), 6,
			[]domain.Capability{domain.CapCodeGeneration, domain.CapSystemDesign})
		if err := parent.AddChild(svc); err != nil {
			return err
		}
		for _, comp := range components {
			if err := svc.AddDependency(comp.ID, taskgraph.StartToStart); err != nil {
				return err
			}
		}
	}
	return nil
}

// expandCRUD produces the four operations plus tests, chained finish-to-start.
func (e *Engine) expandCRUD(parent *taskgraph.Task) error {
	ops := []string{"create", "read", "update", "delete"}
	var prev *taskgraph.Task
	for _, op := range ops {
		child := e.newChild(parent, fmt.Sprintf("Implement %s operation", op), 2,
			[]domain.Capability{domain.CapCodeGeneration})
		if err := parent.AddChild(child); err != nil {
			return err
		}
		if prev != nil {
			if err := child.AddDependency(prev.ID, taskgraph.FinishToStart); err != nil {
				return err
			}
		}
		prev = child
	}

	tests := e.newChild(parent, "Write tests for CRUD operations", 3,
		[]domain.Capability{domain.CapTestGeneration})
	if err := parent.AddChild(tests); err != nil {
		return err
	}
	return tests.AddDependency(prev.ID, taskgraph.FinishToStart)
}

// expandUIComponents produces a layout child that forms/tables/charts all
// depend on.
func (e *Engine) expandUIComponents(parent *taskgraph.Task) error {
	layout := e.newChild(parent, "Build layout structure", 3,
		[]domain.Capability{domain.CapCodeGeneration, domain.CapSystemDesign})
	if err := parent.AddChild(layout); err != nil {
		return err
	}

	for _, name := range []string{"forms", "tables", "charts"} {
		child := e.newChild(parent, fmt.Sprintf("Implement %s components", name), 3,
			[]domain.Capability{domain.CapCodeGeneration})
		if err := parent.AddChild(child); err != nil {
			return err
		}
		if err := child.AddDependency(layout.ID, taskgraph.FinishToStart); err != nil {
			return err
		}
	}
	return nil
}

// securityPhases are sequential; hour estimates scale with security_level.
var securityPhases = []Phase{
	{Name: "Threat Modeling", Hours: 2, Capabilities: []domain.Capability{domain.CapSecurityAudit}},
	{Name: "Implement Controls", Hours: 4, Capabilities: []domain.Capability{domain.CapCodeGeneration}},
	{Name: "Security Testing", Hours: 3, Capabilities: []domain.Capability{domain.CapSecurityAudit, domain.CapTestGeneration}},
	{Name: "Compliance Review", Hours: 2, Capabilities: []domain.Capability{domain.CapComplianceCheck}},
}

// expandSecurity produces sequential phases, each scaled by the
// security-level multiplier (1.0 when unset).
func (e *Engine) expandSecurity(parent *taskgraph.Task, securityLevel float64) error {
	if securityLevel <= 0 {
		securityLevel = 1.0
	}
	var prev *taskgraph.Task
	for _, phase := range securityPhases {
		child := e.newChild(parent, fmt.Sprintf("%s - %s", parent.Title, phase.Name),
			phase.Hours*securityLevel, phase.Capabilities)
		if err := parent.AddChild(child); err != nil {
			return err
		}
		if prev != nil {
			if err := child.AddDependency(prev.ID, taskgraph.FinishToStart); err != nil {
				return err
			}
		}
		prev = child
	}
	return nil
}
