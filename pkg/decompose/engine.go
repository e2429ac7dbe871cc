package decompose

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/taskgraph"
)

// Strategy selects how a task is split.
type Strategy string

// Decomposition strategies.
const (
	StrategyFunctional Strategy = "functional"
	StrategyTemporal   Strategy = "temporal"
	StrategyCapability Strategy = "capability"
)

// Options bound a decomposition run.
type Options struct {
	Strategy Strategy
	// MaxDepth bounds recursive decomposition below the input task.
	MaxDepth int
	// TargetComplexityHours stops recursion once a child's expected hours
	// fall at or below this value.
	TargetComplexityHours float64
	// SecurityLevel scales security_pattern phase estimates.
	SecurityLevel float64
	// ServiceCount sets how many services microservice_pattern produces.
	ServiceCount int
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		Strategy:              StrategyFunctional,
		MaxDepth:              3,
		TargetComplexityHours: 4,
		SecurityLevel:         1.0,
		ServiceCount:          3,
	}
}

// Engine expands complex tasks into subtask DAGs.
type Engine struct {
	logger    *slog.Logger
	templates map[string]Template
}

// NewEngine creates a decomposition engine with the built-in templates.
func NewEngine() *Engine {
	return &Engine{logger: slog.Default(), templates: builtinTemplates}
}

// NewEngineWithTemplates creates an engine with a custom template set, e.g.
// from LoadTemplates.
func NewEngineWithTemplates(templates map[string]Template) *Engine {
	if templates == nil {
		templates = builtinTemplates
	}
	return &Engine{logger: slog.Default(), templates: templates}
}

// newChild constructs a child task with a PERT estimate sourced from
// decomposition.
func (e *Engine) newChild(parent *taskgraph.Task, title string, hours float64, caps []domain.Capability) *taskgraph.Task {
	return &taskgraph.Task{
		ID:       uuid.New().String(),
		Title:    title,
		Status:   domain.TaskPending,
		Priority: parent.Priority,
		Estimate: domain.Estimate{
			OptimisticHours:      hours * 0.6,
			LikelyHours:          hours,
			PessimisticHours:     hours * 1.4,
			RequiredCapabilities: caps,
			Confidence:           0.6,
			Source:               domain.EstimateDecomposition,
		},
	}
}

// Decompose expands the task according to its matched rule or the requested
// strategy. The resulting graph is validated; on any failure the task is
// returned to its pre-decomposition state.
func (e *Engine) Decompose(task *taskgraph.Task, opts Options) error {
	if opts.MaxDepth <= 0 {
		opts = DefaultOptions()
	}

	log := e.logger.With("task_id", task.ID, "strategy", string(opts.Strategy))

	savedChildren := task.Children
	task.Children = nil

	expand := func() error {
		switch MatchRule(task.Title, task.Description) {
		case ExpansionMicroservice:
			return e.expandMicroservice(task, opts.ServiceCount)
		case ExpansionCRUD:
			return e.expandCRUD(task)
		case ExpansionUIComponents:
			return e.expandUIComponents(task)
		case ExpansionSecurity:
			return e.expandSecurity(task, opts.SecurityLevel)
		default:
			return e.expandByStrategy(task, opts)
		}
	}

	if err := expand(); err != nil {
		task.Children = savedChildren
		return err
	}

	if err := task.ValidateDependencies(); err != nil {
		task.Children = savedChildren
		return err
	}

	log.Info("Task decomposed", "children", len(task.Children))
	return nil
}

// ApplyTemplate expands the task using a named template. Tasks below the
// template's complexity threshold are left unchanged.
func (e *Engine) ApplyTemplate(task *taskgraph.Task, templateName string) error {
	tpl, ok := e.templates[templateName]
	if !ok {
		return fmt.Errorf("unknown decomposition template %q", templateName)
	}
	if task.Estimate.ExpectedHours() <= tpl.ComplexityThreshold {
		return nil
	}

	savedChildren := task.Children
	task.Children = nil

	var prev *taskgraph.Task
	for _, phase := range tpl.Phases {
		child := e.newChild(task, fmt.Sprintf("%s - %s", task.Title, phase.Name), phase.Hours, phase.Capabilities)
		if err := task.AddChild(child); err != nil {
			task.Children = savedChildren
			return err
		}
		if tpl.Strategy == StrategyTemporal && prev != nil {
			if err := child.AddDependency(prev.ID, taskgraph.FinishToStart); err != nil {
				task.Children = savedChildren
				return err
			}
		}
		prev = child
	}

	if err := task.ValidateDependencies(); err != nil {
		task.Children = savedChildren
		return err
	}
	return nil
}

// expandByStrategy is the generic expansion used when no rule matches.
func (e *Engine) expandByStrategy(task *taskgraph.Task, opts Options) error {
	analysis := AnalyzeDescription(task.Title, task.Description)
	if analysis.EstimatedHours <= opts.TargetComplexityHours {
		// Simple enough already; produce no children.
		return nil
	}

	switch opts.Strategy {
	case StrategyTemporal:
		return e.expandTemporal(task, analysis, opts)
	case StrategyCapability:
		return e.expandCapability(task, analysis, opts)
	default:
		return e.expandFunctional(task, analysis, opts)
	}
}

// functionalPhases are the generic functional split applied when no
// domain-specific rule matches.
var functionalPhases = []Phase{
	{Name: "Design", Hours: 0.2, Capabilities: []domain.Capability{domain.CapSystemDesign}},
	{Name: "Implementation", Hours: 0.5, Capabilities: []domain.Capability{domain.CapCodeGeneration}},
	{Name: "Testing", Hours: 0.2, Capabilities: []domain.Capability{domain.CapTestGeneration}},
	{Name: "Documentation", Hours: 0.1, Capabilities: []domain.Capability{domain.CapDocumentation}},
}

func (e *Engine) expandFunctional(task *taskgraph.Task, analysis Analysis, opts Options) error {
	for _, phase := range functionalPhases {
		child := e.newChild(task, fmt.Sprintf("%s - %s", task.Title, phase.Name),
			analysis.EstimatedHours*phase.Hours, phase.Capabilities)
		if err := task.AddChild(child); err != nil {
			return err
		}
		if err := e.recurse(child, opts); err != nil {
			return err
		}
	}
	return nil
}

// expandTemporal splits into sequential phases chained finish-to-start.
func (e *Engine) expandTemporal(task *taskgraph.Task, analysis Analysis, opts Options) error {
	var prev *taskgraph.Task
	for _, phase := range functionalPhases {
		child := e.newChild(task, fmt.Sprintf("%s - %s", task.Title, phase.Name),
			analysis.EstimatedHours*phase.Hours, phase.Capabilities)
		if err := task.AddChild(child); err != nil {
			return err
		}
		if prev != nil {
			if err := child.AddDependency(prev.ID, taskgraph.FinishToStart); err != nil {
				return err
			}
		}
		if err := e.recurse(child, opts); err != nil {
			return err
		}
		prev = child
	}
	return nil
}

// expandCapability groups work by the capabilities the analysis inferred,
// one child per capability.
func (e *Engine) expandCapability(task *taskgraph.Task, analysis Analysis, opts Options) error {
	caps := analysis.Capabilities
	if len(caps) == 0 {
		caps = []domain.Capability{domain.CapCodeGeneration}
	}
	share := analysis.EstimatedHours / float64(len(caps))
	for _, cap := range caps {
		child := e.newChild(task, fmt.Sprintf("%s - %s work", task.Title, cap), share,
			[]domain.Capability{cap})
		if err := task.AddChild(child); err != nil {
			return err
		}
		if err := e.recurse(child, opts); err != nil {
			return err
		}
	}
	return nil
}

// recurse decomposes a child further while depth and complexity budgets allow.
func (e *Engine) recurse(child *taskgraph.Task, opts Options) error {
	if opts.MaxDepth <= 1 || child.Estimate.ExpectedHours() <= opts.TargetComplexityHours {
		return nil
	}
	childOpts := opts
	childOpts.MaxDepth--
	return e.expandByStrategy(child, childOpts)
}
