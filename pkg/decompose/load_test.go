package decompose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplateFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTemplates_MergesOverBuiltins(t *testing.T) {
	path := writeTemplateFile(t, `
templates:
  data-pipeline:
    complexity_threshold: 5
    strategy: temporal
    max_depth: 2
    phases:
      - name: Extract
        hours: 2
        capabilities: [code_generation]
      - name: Transform
        hours: 4
        capabilities: [code_generation]
      - name: Load
        hours: 2
        capabilities: [code_generation, test_generation]
`)

	templates, err := LoadTemplates(path)
	require.NoError(t, err)

	// user template present
	pipeline, ok := templates["data-pipeline"]
	require.True(t, ok)
	assert.Equal(t, StrategyTemporal, pipeline.Strategy)
	require.Len(t, pipeline.Phases, 3)

	// builtins survive
	_, ok = templates["web-service-implementation"]
	assert.True(t, ok)
	_, ok = templates["refactoring-task"]
	assert.True(t, ok)
}

func TestLoadTemplates_UserOverridesBuiltin(t *testing.T) {
	path := writeTemplateFile(t, `
templates:
  refactoring-task:
    complexity_threshold: 10
`)

	templates, err := LoadTemplates(path)
	require.NoError(t, err)

	tpl := templates["refactoring-task"]
	assert.Equal(t, 10.0, tpl.ComplexityThreshold)
	// fields the user left unset keep the builtin values
	assert.Equal(t, StrategyFunctional, tpl.Strategy)
	assert.Len(t, tpl.Phases, 3)
}

func TestLoadTemplates_RejectsUnknownCapability(t *testing.T) {
	path := writeTemplateFile(t, `
templates:
  bad:
    phases:
      - name: Phase
        hours: 1
        capabilities: [telekinesis]
`)

	_, err := LoadTemplates(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telekinesis")
}

func TestLoadTemplates_RejectsUnknownStrategy(t *testing.T) {
	path := writeTemplateFile(t, `
templates:
  bad:
    strategy: chaotic
`)

	_, err := LoadTemplates(path)
	require.Error(t, err)
}

func TestLoadTemplates_MissingFile(t *testing.T) {
	_, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestEngineWithTemplates_ApplyCustom(t *testing.T) {
	path := writeTemplateFile(t, `
templates:
  data-pipeline:
    complexity_threshold: 1
    strategy: temporal
    phases:
      - name: Extract
        hours: 2
      - name: Load
        hours: 2
`)
	templates, err := LoadTemplates(path)
	require.NoError(t, err)

	engine := NewEngineWithTemplates(templates)
	task := rootTask("Build ingestion pipeline", "", 8)
	require.NoError(t, engine.ApplyTemplate(task, "data-pipeline"))
	require.Len(t, task.Children, 2)
	// temporal templates chain phases finish-to-start
	assert.Len(t, task.Children[1].Dependencies, 1)
}
