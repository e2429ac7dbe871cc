package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/pkg/decompose"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/taskgraph"
)

func (e *testEnv) createTask(t *testing.T, sessionID, title string) *ent.Task {
	t.Helper()
	task, err := e.tasks.CreateTask(e.ctx, CreateTaskRequest{
		SessionID: sessionID,
		Title:     title,
	})
	require.NoError(t, err)
	return task
}

func TestCreateTask_TitleMustBeActionable(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate task creation")

	_, err := env.tasks.CreateTask(env.ctx, CreateTaskRequest{
		SessionID: sess.ID,
		Title:     "the database layer",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	task := env.createTask(t, sess.ID, "Implement database layer")
	assert.Equal(t, "pending", string(task.Status))
	assert.Equal(t, "medium", string(task.Priority))
}

func TestCreateTask_CapabilityVocabulary(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate capability checks")

	_, err := env.tasks.CreateTask(env.ctx, CreateTaskRequest{
		SessionID:            sess.ID,
		Title:                "Implement feature flag service",
		RequiredCapabilities: []string{"mind_reading"},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	task, err := env.tasks.CreateTask(env.ctx, CreateTaskRequest{
		SessionID:            sess.ID,
		Title:                "Implement feature flag service",
		RequiredCapabilities: []string{"code_generation", "test_generation"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"code_generation", "test_generation"}, task.RequiredCapabilities)
}

func TestTaskLifecycle(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate task lifecycle")
	task := env.createTask(t, sess.ID, "Implement ingestion job")

	agent := &registry.Agent{
		ID:           "agent-1",
		Type:         domain.AgentImplementer,
		Capabilities: []domain.Capability{domain.CapCodeGeneration},
	}
	assigned, err := env.tasks.AssignTask(env.ctx, task.ID, agent)
	require.NoError(t, err)
	assert.Equal(t, "assigned", string(assigned.Status))
	require.NotNil(t, assigned.AssignedAgentID)
	assert.Equal(t, "agent-1", *assigned.AssignedAgentID)

	started, err := env.tasks.UpdateTaskStatus(env.ctx, task.ID, domain.TaskInProgress)
	require.NoError(t, err)
	assert.NotNil(t, started.StartedAt)

	done, err := env.tasks.CompleteTask(env.ctx, task.ID,
		map[string]any{"rows": 100}, []string{"s3://bucket/output.json"})
	require.NoError(t, err)
	assert.Equal(t, "completed", string(done.Status))
	assert.NotNil(t, done.CompletedAt)
	assert.Equal(t, []string{"s3://bucket/output.json"}, done.Artifacts)
}

func TestTaskTransition_Invalid(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate invalid transitions")
	task := env.createTask(t, sess.ID, "Implement something gated")

	_, err := env.tasks.UpdateTaskStatus(env.ctx, task.ID, domain.TaskCompleted)
	require.Error(t, err)
	var te *TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "task", te.Entity)
}

func TestAssignTask_CapabilityMismatch(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate capability mismatch")

	task, err := env.tasks.CreateTask(env.ctx, CreateTaskRequest{
		SessionID:            sess.ID,
		Title:                "Review security posture",
		RequiredCapabilities: []string{"security_audit"},
	})
	require.NoError(t, err)

	agent := &registry.Agent{
		ID:           "agent-impl",
		Type:         domain.AgentImplementer,
		Capabilities: []domain.Capability{domain.CapCodeGeneration},
	}
	_, err = env.tasks.AssignTask(env.ctx, task.ID, agent)
	require.Error(t, err)
	var ce *CapabilityError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "security_audit", ce.Capability)
}

func TestAddDependency(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate dependency wiring")
	a := env.createTask(t, sess.ID, "Design schema first")
	b := env.createTask(t, sess.ID, "Implement schema second")

	require.NoError(t, env.tasks.AddDependency(env.ctx, b.ID, a.ID, taskgraph.FinishToStart))

	// duplicate
	err := env.tasks.AddDependency(env.ctx, b.ID, a.ID, taskgraph.FinishToStart)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// self
	err = env.tasks.AddDependency(env.ctx, a.ID, a.ID, taskgraph.FinishToStart)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// cycle a -> b while b -> a exists
	err = env.tasks.AddDependency(env.ctx, a.ID, b.ID, taskgraph.FinishToStart)
	require.Error(t, err)
	assert.ErrorIs(t, err, taskgraph.ErrDependencyCycle)

	// backlink recorded on the prerequisite
	reloaded, err := env.tasks.GetTask(env.ctx, a.ID)
	require.NoError(t, err)
	assert.Contains(t, reloaded.Dependents, b.ID)
}

func TestRemoveDependency(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate dependency removal")
	a := env.createTask(t, sess.ID, "Design the pipeline")
	b := env.createTask(t, sess.ID, "Build the pipeline")

	require.NoError(t, env.tasks.AddDependency(env.ctx, b.ID, a.ID, taskgraph.FinishToStart))
	require.NoError(t, env.tasks.RemoveDependency(env.ctx, b.ID, a.ID))

	reloaded, err := env.tasks.GetTask(env.ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Dependencies)
}

func TestReadyTasks(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate readiness checks")
	a := env.createTask(t, sess.ID, "Design data model")
	b := env.createTask(t, sess.ID, "Implement data model")
	require.NoError(t, env.tasks.AddDependency(env.ctx, b.ID, a.ID, taskgraph.FinishToStart))

	ready, err := env.tasks.ReadyTasks(env.ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, a.ID, ready[0].ID)

	// drive a to completed; b becomes ready
	agent := &registry.Agent{ID: "agent-1", Type: domain.AgentImplementer,
		Capabilities: []domain.Capability{domain.CapCodeGeneration}}
	_, err = env.tasks.AssignTask(env.ctx, a.ID, agent)
	require.NoError(t, err)
	_, err = env.tasks.UpdateTaskStatus(env.ctx, a.ID, domain.TaskInProgress)
	require.NoError(t, err)
	_, err = env.tasks.CompleteTask(env.ctx, a.ID, nil, nil)
	require.NoError(t, err)

	ready, err = env.tasks.ReadyTasks(env.ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, b.ID, ready[0].ID)
}

func TestDecomposeTask_CRUDRule(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate decomposition")
	task := env.createTask(t, sess.ID, "Implement CRUD endpoints for orders")

	children, err := env.tasks.DecomposeTask(env.ctx, task.ID, decompose.DefaultOptions())
	require.NoError(t, err)
	// four operations plus the test task
	require.Len(t, children, 5)

	for _, child := range children {
		require.NotNil(t, child.ParentTaskID)
		assert.Equal(t, task.ID, *child.ParentTaskID)
		assert.Equal(t, sess.ID, child.SessionID)
	}

	// the chained operations carry finish_to_start edges
	withDeps := 0
	for _, child := range children {
		if len(child.Dependencies) > 0 {
			withDeps++
		}
	}
	assert.Equal(t, 4, withDeps)
}

func TestCreateTask_ParentDepthBound(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate deep task tree")

	parentID := ""
	var lastErr error
	for i := 0; i < taskgraph.MaxHierarchyDepth+1; i++ {
		task, err := env.tasks.CreateTask(env.ctx, CreateTaskRequest{
			SessionID:    sess.ID,
			Title:        "Implement nested layer",
			ParentTaskID: parentID,
		})
		if err != nil {
			lastErr = err
			break
		}
		parentID = task.ID
	}
	require.Error(t, lastErr)
	assert.True(t, IsValidationError(lastErr))
}
