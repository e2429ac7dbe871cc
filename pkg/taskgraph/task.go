// Package taskgraph models work units and their dependency structure: typed
// dependency edges, cycle detection over a task tree, readiness evaluation,
// and critical-path analysis weighted by PERT expected hours.
package taskgraph

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maestro-hq/maestro/pkg/domain"
)

// Sentinel errors for graph mutations.
var (
	// ErrSelfDependency indicates a task depending on itself.
	ErrSelfDependency = errors.New("task cannot depend on itself")

	// ErrDuplicateDependency indicates an edge that already exists.
	ErrDuplicateDependency = errors.New("dependency already exists")

	// ErrDependencyCycle indicates the dependency graph is not a DAG.
	ErrDependencyCycle = errors.New("task dependency cycle detected")

	// ErrHierarchyTooDeep indicates the decomposition hierarchy exceeds
	// the maximum allowed depth.
	ErrHierarchyTooDeep = errors.New("task hierarchy exceeds maximum depth")
)

// MaxHierarchyDepth bounds how deep a decomposition tree may grow.
const MaxHierarchyDepth = 10

// DependencyType describes how a dependency gates its dependent.
type DependencyType string

// Dependency types.
const (
	FinishToStart  DependencyType = "finish_to_start"
	StartToStart   DependencyType = "start_to_start"
	FinishToFinish DependencyType = "finish_to_finish"
	StartToFinish  DependencyType = "start_to_finish"
)

// Dependency is a typed edge from a task to one of its prerequisites.
type Dependency struct {
	TaskID string         `json:"task_id"`
	Type   DependencyType `json:"type"`
}

// Task is an in-memory work unit within a session. The durable form lives in
// the tasks table; this type carries the graph logic.
type Task struct {
	ID            string
	TenantID      string
	SessionID     string
	ParentID      string
	Title         string
	Description   string
	Status        domain.TaskStatus
	Priority      domain.Priority
	Estimate      domain.Estimate
	Dependencies  []Dependency
	Dependents    []string
	AssignedAgent string
	StartedAt     *time.Time
	CompletedAt   *time.Time
	FailedAt      *time.Time
	Children      []*Task

	// parent backlink, maintained for in-memory trees built via AddChild.
	// Not serialized.
	parent *Task
}

// ValidateTitle checks that a task title is actionable: non-empty and
// beginning with a verb from the closed action-verb list.
func ValidateTitle(title string) error {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return fmt.Errorf("task title must not be empty")
	}
	if !domain.IsActionVerb(strings.ToLower(fields[0])) {
		return fmt.Errorf("task title must begin with an action verb, got %q", fields[0])
	}
	return nil
}

// AddDependency links the task to a prerequisite. Self-dependencies and
// duplicates are rejected; the edge is validated against the task's local
// graph so a cycle-introducing edge leaves the graph unchanged.
func (t *Task) AddDependency(taskID string, depType DependencyType) error {
	if taskID == t.ID {
		return ErrSelfDependency
	}
	for _, dep := range t.Dependencies {
		if dep.TaskID == taskID {
			return ErrDuplicateDependency
		}
	}

	t.Dependencies = append(t.Dependencies, Dependency{TaskID: taskID, Type: depType})
	if err := t.Root().ValidateDependencies(); err != nil {
		t.Dependencies = t.Dependencies[:len(t.Dependencies)-1]
		return err
	}
	return nil
}

// Root walks parent backlinks to the top of the loaded tree. A detached task
// is its own root.
func (t *Task) Root() *Task {
	root := t
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// RemoveDependency deletes the edge to taskID if present.
func (t *Task) RemoveDependency(taskID string) {
	for i, dep := range t.Dependencies {
		if dep.TaskID == taskID {
			t.Dependencies = append(t.Dependencies[:i], t.Dependencies[i+1:]...)
			return
		}
	}
}

// AddChild attaches a subtask, enforcing the hierarchy depth bound.
func (t *Task) AddChild(child *Task) error {
	if t.Depth()+1+child.height() > MaxHierarchyDepth {
		return ErrHierarchyTooDeep
	}
	child.ParentID = t.ID
	child.SessionID = t.SessionID
	child.TenantID = t.TenantID
	child.parent = t
	t.Children = append(t.Children, child)
	return nil
}

// Depth returns how many ancestors the task has within its loaded tree.
// A root task has depth 0. Computed from the in-memory tree only.
func (t *Task) Depth() int {
	depth := 0
	for p := t.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// height returns the longest chain of descendants below the task.
func (t *Task) height() int {
	max := 0
	for _, c := range t.Children {
		if h := c.height() + 1; h > max {
			max = h
		}
	}
	return max
}

// Walk visits the task and all descendants depth-first.
func (t *Task) Walk(fn func(*Task)) {
	fn(t)
	for _, c := range t.Children {
		c.Walk(fn)
	}
}

// CanStart reports whether the task may begin given the state of its
// dependencies. The lookup resolves dependency task IDs to tasks; unknown
// IDs are treated as unsatisfied.
func (t *Task) CanStart(lookup func(id string) *Task) bool {
	if t.Status != domain.TaskPending && t.Status != domain.TaskReady {
		return false
	}
	for _, dep := range t.Dependencies {
		prereq := lookup(dep.TaskID)
		if prereq == nil || !dependencySatisfied(dep.Type, prereq) {
			return false
		}
	}
	return true
}

// dependencySatisfied evaluates one typed edge against its prerequisite.
// start_to_finish and finish_to_finish gate the dependent's completion, not
// its start, so they never block starting.
func dependencySatisfied(depType DependencyType, prereq *Task) bool {
	switch depType {
	case FinishToStart:
		return prereq.Status == domain.TaskCompleted || prereq.Status == domain.TaskSkipped
	case StartToStart:
		return prereq.StartedAt != nil || prereq.Status == domain.TaskCompleted || prereq.Status == domain.TaskSkipped
	case FinishToFinish, StartToFinish:
		return true
	default:
		return false
	}
}
