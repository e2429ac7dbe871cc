package decompose

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/maestro-hq/maestro/pkg/domain"
)

// templateFile is the YAML shape of a user template overlay.
type templateFile struct {
	Templates map[string]templateSpec `yaml:"templates"`
}

type templateSpec struct {
	ComplexityThreshold float64     `yaml:"complexity_threshold"`
	Strategy            string      `yaml:"strategy"`
	MaxDepth            int         `yaml:"max_depth"`
	Phases              []phaseSpec `yaml:"phases"`
}

type phaseSpec struct {
	Name         string   `yaml:"name"`
	Hours        float64  `yaml:"hours"`
	Capabilities []string `yaml:"capabilities"`
}

// LoadTemplates reads user templates from a YAML file and merges them over
// the builtins. A user template with the same name wins field by field:
// fields it leaves unset keep the builtin values.
func LoadTemplates(path string) (map[string]Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}

	var file templateFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", path, err)
	}

	merged := make(map[string]Template, len(builtinTemplates)+len(file.Templates))
	for name, spec := range file.Templates {
		tpl, err := spec.toTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", name, err)
		}
		merged[name] = tpl
	}
	if err := mergo.Merge(&merged, builtinTemplates); err != nil {
		return nil, fmt.Errorf("failed to merge templates: %w", err)
	}
	return merged, nil
}

func (s templateSpec) toTemplate(name string) (Template, error) {
	strategy := Strategy(s.Strategy)
	if s.Strategy == "" {
		strategy = StrategyFunctional
	}
	switch strategy {
	case StrategyFunctional, StrategyTemporal, StrategyCapability:
	default:
		return Template{}, fmt.Errorf("unknown strategy %q", s.Strategy)
	}

	tpl := Template{
		Name:                name,
		ComplexityThreshold: s.ComplexityThreshold,
		Strategy:            strategy,
		MaxDepth:            s.MaxDepth,
	}
	for _, p := range s.Phases {
		if p.Name == "" {
			return Template{}, fmt.Errorf("phase without a name")
		}
		if p.Hours <= 0 {
			return Template{}, fmt.Errorf("phase %q: hours must be positive", p.Name)
		}
		phase := Phase{Name: p.Name, Hours: p.Hours}
		for _, c := range p.Capabilities {
			cap := domain.Capability(c)
			if !domain.ValidCapability(cap) {
				return Template{}, fmt.Errorf("phase %q: unknown capability %q", p.Name, c)
			}
			phase.Capabilities = append(phase.Capabilities, cap)
		}
		tpl.Phases = append(tpl.Phases, phase)
	}
	return tpl, nil
}
