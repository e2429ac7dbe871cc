package taskgraph

import (
	"fmt"
	"testing"
	"time"

	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(id string, hours float64) *Task {
	return &Task{
		ID:     id,
		Title:  "Implement " + id,
		Status: domain.TaskPending,
		Estimate: domain.Estimate{
			OptimisticHours:  hours,
			LikelyHours:      hours,
			PessimisticHours: hours,
		},
	}
}

func TestAddDependency(t *testing.T) {
	root := newTask("root", 1)
	a := newTask("a", 1)
	b := newTask("b", 1)
	require.NoError(t, root.AddChild(a))
	require.NoError(t, root.AddChild(b))

	t.Run("rejects self dependency", func(t *testing.T) {
		err := a.AddDependency("a", FinishToStart)
		assert.ErrorIs(t, err, ErrSelfDependency)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		require.NoError(t, a.AddDependency("b", FinishToStart))
		err := a.AddDependency("b", StartToStart)
		assert.ErrorIs(t, err, ErrDuplicateDependency)
	})

	t.Run("rejects cycle and leaves graph unchanged", func(t *testing.T) {
		before := len(b.Dependencies)
		err := b.AddDependency("a", FinishToStart) // a already depends on b
		assert.ErrorIs(t, err, ErrDependencyCycle)
		assert.Len(t, b.Dependencies, before)
		assert.NoError(t, root.ValidateDependencies())
	})
}

func TestValidateDependencies(t *testing.T) {
	root := newTask("root", 0)
	tasks := make([]*Task, 4)
	for i := range tasks {
		tasks[i] = newTask(fmt.Sprintf("t%d", i), 1)
		require.NoError(t, root.AddChild(tasks[i]))
	}

	// Chain t1 → t0, t2 → t1, t3 → t2 is a DAG.
	require.NoError(t, tasks[1].AddDependency("t0", FinishToStart))
	require.NoError(t, tasks[2].AddDependency("t1", FinishToStart))
	require.NoError(t, tasks[3].AddDependency("t2", FinishToStart))
	assert.NoError(t, root.ValidateDependencies())

	order, err := root.TopologicalOrder()
	require.NoError(t, err)
	pos := map[string]int{}
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos["t0"], pos["t1"])
	assert.Less(t, pos["t1"], pos["t2"])
	assert.Less(t, pos["t2"], pos["t3"])
}

func TestValidateDependenciesIgnoresExternalEdges(t *testing.T) {
	// Edges to tasks outside the local tree are the service layer's problem.
	root := newTask("root", 0)
	a := newTask("a", 1)
	require.NoError(t, root.AddChild(a))
	a.Dependencies = append(a.Dependencies, Dependency{TaskID: "elsewhere", Type: FinishToStart})
	assert.NoError(t, root.ValidateDependencies())
}

func TestCriticalPath(t *testing.T) {
	root := newTask("root", 0)
	a := newTask("a", 2)
	b := newTask("b", 5)
	c := newTask("c", 1)
	d := newTask("d", 3)
	for _, task := range []*Task{a, b, c, d} {
		require.NoError(t, root.AddChild(task))
	}
	// a → b → d (2+5+3=10) vs a → c → d (2+1+3=6)
	require.NoError(t, b.AddDependency("a", FinishToStart))
	require.NoError(t, c.AddDependency("a", FinishToStart))
	require.NoError(t, d.AddDependency("b", FinishToStart))
	require.NoError(t, d.AddDependency("c", FinishToStart))

	path, hours, err := root.CriticalPath()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, path)
	assert.InDelta(t, 10.0, hours, 1e-9)
}

func TestCanStart(t *testing.T) {
	a := newTask("a", 1)
	b := newTask("b", 1)
	lookup := func(id string) *Task {
		if id == "a" {
			return a
		}
		return nil
	}

	b.Dependencies = []Dependency{{TaskID: "a", Type: FinishToStart}}
	assert.False(t, b.CanStart(lookup), "unfinished finish_to_start dependency blocks start")

	a.Status = domain.TaskCompleted
	assert.True(t, b.CanStart(lookup))

	t.Run("start_to_start satisfied by started prerequisite", func(t *testing.T) {
		a.Status = domain.TaskInProgress
		now := time.Now()
		a.StartedAt = &now
		b.Dependencies = []Dependency{{TaskID: "a", Type: StartToStart}}
		assert.True(t, b.CanStart(lookup))
	})

	t.Run("unknown prerequisite is unsatisfied", func(t *testing.T) {
		b.Dependencies = []Dependency{{TaskID: "missing", Type: FinishToStart}}
		assert.False(t, b.CanStart(lookup))
	})

	t.Run("non-startable status", func(t *testing.T) {
		b.Dependencies = nil
		b.Status = domain.TaskInProgress
		assert.False(t, b.CanStart(lookup))
	})
}

func TestHierarchyDepthBound(t *testing.T) {
	root := newTask("d0", 1)
	current := root
	for i := 1; i <= MaxHierarchyDepth; i++ {
		child := newTask(fmt.Sprintf("d%d", i), 1)
		require.NoError(t, current.AddChild(child))
		current = child
	}
	err := current.AddChild(newTask("too-deep", 1))
	assert.ErrorIs(t, err, ErrHierarchyTooDeep)
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Implement OAuth2 flow"))
	assert.NoError(t, ValidateTitle("refactor session executor"))
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle("OAuth2 flow"))
}
