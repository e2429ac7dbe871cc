package decompose

import (
	"strings"
	"testing"

	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/taskgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootTask(title, description string, hours float64) *taskgraph.Task {
	return &taskgraph.Task{
		ID:          "root",
		Title:       title,
		Description: description,
		Status:      domain.TaskPending,
		Priority:    domain.PriorityMedium,
		Estimate: domain.Estimate{
			OptimisticHours:  hours,
			LikelyHours:      hours,
			PessimisticHours: hours,
			Source:           domain.EstimateManual,
		},
	}
}

func TestMatchRule(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        Expansion
	}{
		{"microservice wins", "Implement microservice platform", "", ExpansionMicroservice},
		{"security", "Implement authentication layer", "", ExpansionSecurity},
		{"crud", "Build CRUD endpoints", "", ExpansionCRUD},
		{"ui", "Create dashboard frontend", "", ExpansionUIComponents},
		{"default", "Implement data importer", "parse files", ExpansionDefault},
		{"priority ordering", "Implement microservice with authentication", "", ExpansionMicroservice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchRule(tt.title, tt.description))
		})
	}
}

func TestMicroservicePattern(t *testing.T) {
	engine := NewEngine()
	task := rootTask("Implement microservice", "split the monolith into microservices", 12)

	require.NoError(t, engine.Decompose(task, DefaultOptions()))

	// 3 services + 3 shared components
	require.Len(t, task.Children, 6)

	services := 0
	components := 0
	for _, child := range task.Children {
		if strings.HasPrefix(child.Title, "Implement service") {
			services++
			// every service start-to-start depends on each shared component
			require.Len(t, child.Dependencies, 3)
			for _, dep := range child.Dependencies {
				assert.Equal(t, taskgraph.StartToStart, dep.Type)
			}
		} else {
			components++
			assert.Empty(t, child.Dependencies)
		}
	}
	assert.Equal(t, 3, services)
	assert.Equal(t, 3, components)
	assert.NoError(t, task.ValidateDependencies())
}

func TestMicroserviceCycleRejected(t *testing.T) {
	engine := NewEngine()
	task := rootTask("Implement microservice", "", 12)
	require.NoError(t, engine.Decompose(task, DefaultOptions()))

	var service, gateway *taskgraph.Task
	for _, child := range task.Children {
		if strings.HasPrefix(child.Title, "Implement service 1") {
			service = child
		}
		if strings.Contains(child.Title, "api_gateway") {
			gateway = child
		}
	}
	require.NotNil(t, service)
	require.NotNil(t, gateway)

	// service1 already depends on api_gateway; the reverse edge closes a
	// cycle and must be rejected leaving the graph unchanged.
	before := len(gateway.Dependencies)
	err := gateway.AddDependency(service.ID, taskgraph.FinishToStart)
	assert.ErrorIs(t, err, taskgraph.ErrDependencyCycle)
	assert.Len(t, gateway.Dependencies, before)
	assert.NoError(t, task.ValidateDependencies())
}

func TestCRUDPattern(t *testing.T) {
	engine := NewEngine()
	task := rootTask("Build CRUD api for accounts", "", 8)
	require.NoError(t, engine.Decompose(task, DefaultOptions()))

	require.Len(t, task.Children, 5) // 4 operations + tests
	for i, child := range task.Children[1:] {
		require.Len(t, child.Dependencies, 1, "child %d", i+1)
		assert.Equal(t, taskgraph.FinishToStart, child.Dependencies[0].Type)
		assert.Equal(t, task.Children[i].ID, child.Dependencies[0].TaskID)
	}
}

func TestSecurityPatternScaling(t *testing.T) {
	engine := NewEngine()
	task := rootTask("Implement encryption at rest", "", 8)

	opts := DefaultOptions()
	opts.SecurityLevel = 2.0
	require.NoError(t, engine.Decompose(task, opts))

	require.Len(t, task.Children, len(securityPhases))
	for i, child := range task.Children {
		assert.InDelta(t, securityPhases[i].Hours*2.0, child.Estimate.LikelyHours, 1e-9)
		if i > 0 {
			require.Len(t, child.Dependencies, 1)
			assert.Equal(t, task.Children[i-1].ID, child.Dependencies[0].TaskID)
		}
	}
}

func TestTemporalStrategyChainsPhases(t *testing.T) {
	engine := NewEngine()
	task := rootTask("Develop data export pipeline", strings.Repeat("transform and load records ", 40), 10)

	opts := DefaultOptions()
	opts.Strategy = StrategyTemporal
	opts.MaxDepth = 1
	opts.TargetComplexityHours = 1
	require.NoError(t, engine.Decompose(task, opts))

	require.Len(t, task.Children, 4)
	for i := 1; i < len(task.Children); i++ {
		require.Len(t, task.Children[i].Dependencies, 1)
		assert.Equal(t, task.Children[i-1].ID, task.Children[i].Dependencies[0].TaskID)
		assert.Equal(t, taskgraph.FinishToStart, task.Children[i].Dependencies[0].Type)
	}
	assert.Equal(t, domain.EstimateDecomposition, task.Children[0].Estimate.Source)
}

func TestApplyTemplate(t *testing.T) {
	engine := NewEngine()

	t.Run("expands above threshold", func(t *testing.T) {
		task := rootTask("Implement billing service", "", 10)
		require.NoError(t, engine.ApplyTemplate(task, "web-service-implementation"))
		require.Len(t, task.Children, 6)
		assert.Equal(t, "Implement billing service - API Design", task.Children[0].Title)
		// temporal template: consecutive phases chained finish-to-start
		require.Len(t, task.Children[1].Dependencies, 1)
		assert.Equal(t, task.Children[0].ID, task.Children[1].Dependencies[0].TaskID)
	})

	t.Run("below threshold leaves task unchanged", func(t *testing.T) {
		task := rootTask("Implement small fix", "", 2)
		require.NoError(t, engine.ApplyTemplate(task, "web-service-implementation"))
		assert.Empty(t, task.Children)
	})

	t.Run("unknown template", func(t *testing.T) {
		task := rootTask("Implement thing", "", 10)
		assert.Error(t, engine.ApplyTemplate(task, "no-such-template"))
	})
}

func TestAnalyzeDescription(t *testing.T) {
	t.Run("clamps to minimum", func(t *testing.T) {
		a := AnalyzeDescription("Fix typo", "")
		assert.Equal(t, 1.0, a.EstimatedHours)
	})

	t.Run("keywords scale the estimate", func(t *testing.T) {
		plain := AnalyzeDescription("Implement widget", strings.Repeat("word ", 300))
		loaded := AnalyzeDescription("Implement widget", strings.Repeat("word ", 300)+" distributed security architecture")
		assert.Greater(t, loaded.EstimatedHours, plain.EstimatedHours)
	})

	t.Run("clamps to maximum", func(t *testing.T) {
		a := AnalyzeDescription("Migrate legacy distributed architecture", strings.Repeat("database cache queue pipeline ", 500))
		assert.Equal(t, 24.0, a.EstimatedHours)
	})

	t.Run("confidence grows with length up to cap", func(t *testing.T) {
		short := AnalyzeDescription("Implement x", "small")
		long := AnalyzeDescription("Implement x", strings.Repeat("detail ", 400))
		assert.Less(t, short.Confidence, long.Confidence)
		assert.Equal(t, 0.8, long.Confidence)
	})

	t.Run("infers capabilities", func(t *testing.T) {
		a := AnalyzeDescription("Implement and test the deploy pipeline", "")
		assert.Contains(t, a.Capabilities, domain.CapCodeGeneration)
		assert.Contains(t, a.Capabilities, domain.CapTestGeneration)
		assert.Contains(t, a.Capabilities, domain.CapDeployment)
	})
}
