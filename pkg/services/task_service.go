package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/ent/task"
	"github.com/maestro-hq/maestro/pkg/decompose"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/events"
	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/taskgraph"
	"github.com/maestro-hq/maestro/pkg/tenancy"
)

// TaskService manages the work units inside a session: creation, typed
// dependencies with session-wide cycle detection, lifecycle transitions,
// assignment, and rule-based decomposition into subtask DAGs.
type TaskService struct {
	client    *ent.Client
	engine    *decompose.Engine
	publisher *events.EventPublisher
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService. publisher may be nil.
func NewTaskService(client *ent.Client, publisher *events.EventPublisher) *TaskService {
	return &TaskService{
		client:    client,
		engine:    decompose.NewEngine(),
		publisher: publisher,
		logger:    slog.With("component", "task_service"),
	}
}

// CreateTaskRequest carries the fields for task creation.
type CreateTaskRequest struct {
	SessionID            string
	ParentTaskID         string
	Title                string
	Description          string
	Priority             string
	Estimate             *domain.Estimate
	RequiredCapabilities []string
}

// CreateTask creates a task within a session. The title must begin with an
// action verb; required capabilities come from the closed vocabulary.
func (s *TaskService) CreateTask(ctx context.Context, req CreateTaskRequest) (*ent.Task, error) {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return nil, NewValidationError("tenant_id", "required")
	}

	if err := taskgraph.ValidateTitle(req.Title); err != nil {
		return nil, NewValidationError("title", err.Error())
	}
	if req.Priority == "" {
		req.Priority = string(domain.PriorityMedium)
	}
	if !domain.ValidPriority(domain.Priority(req.Priority)) {
		return nil, NewValidationError("priority", fmt.Sprintf("unknown priority %q", req.Priority))
	}
	for _, c := range req.RequiredCapabilities {
		if !domain.ValidCapability(domain.Capability(c)) {
			return nil, NewValidationError("required_capabilities", fmt.Sprintf("unknown capability %q", c))
		}
	}

	sess, err := s.client.Session.Query().
		Where(
			session.IDEQ(req.SessionID),
			session.TenantIDEQ(tenantID),
			session.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if domain.SessionStatus(sess.Status).IsTerminal() {
		return nil, NewValidationError("session_id", "cannot add tasks to a terminal session")
	}

	if req.ParentTaskID != "" {
		parent, err := s.getOwnedTask(ctx, tenantID, req.ParentTaskID)
		if err != nil {
			if err == ErrNotFound {
				return nil, NewValidationError("parent_task_id", "parent task not found")
			}
			return nil, err
		}
		if parent.SessionID != req.SessionID {
			return nil, NewValidationError("parent_task_id", "parent task belongs to a different session")
		}
		depth, err := s.taskDepth(ctx, parent)
		if err != nil {
			return nil, err
		}
		if depth+1 >= taskgraph.MaxHierarchyDepth {
			return nil, NewValidationError("parent_task_id",
				fmt.Sprintf("task hierarchy exceeds depth %d", taskgraph.MaxHierarchyDepth))
		}
	}

	builder := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetSessionID(req.SessionID).
		SetTitle(req.Title).
		SetPriority(task.Priority(req.Priority)).
		SetStatus(task.StatusPending)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.ParentTaskID != "" {
		builder.SetParentTaskID(req.ParentTaskID)
	}
	if req.Estimate != nil {
		builder.SetEstimate(estimateToMap(*req.Estimate))
	}
	if len(req.RequiredCapabilities) > 0 {
		builder.SetRequiredCapabilities(req.RequiredCapabilities)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// taskDepth counts ancestors above the given task.
func (s *TaskService) taskDepth(ctx context.Context, t *ent.Task) (int, error) {
	depth := 0
	cur := t
	for cur.ParentTaskID != nil && *cur.ParentTaskID != "" {
		depth++
		if depth >= taskgraph.MaxHierarchyDepth {
			return depth, nil
		}
		parent, err := s.client.Task.Get(ctx, *cur.ParentTaskID)
		if err != nil {
			if ent.IsNotFound(err) {
				return depth, nil
			}
			return 0, fmt.Errorf("failed to walk task ancestry: %w", err)
		}
		cur = parent
	}
	return depth, nil
}

// GetTask retrieves a task scoped to the tenant in ctx.
func (s *TaskService) GetTask(ctx context.Context, id string) (*ent.Task, error) {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return nil, NewValidationError("tenant_id", "required")
	}
	return s.getOwnedTask(ctx, tenantID, id)
}

func (s *TaskService) getOwnedTask(ctx context.Context, tenantID, id string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(task.IDEQ(id), task.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasks returns a session's tasks in creation order.
func (s *TaskService) ListTasks(ctx context.Context, sessionID string) ([]*ent.Task, error) {
	query := s.client.Task.Query().Where(task.SessionIDEQ(sessionID))
	if tenantID := tenancy.TenantID(ctx); tenantID != "" {
		query = query.Where(task.TenantIDEQ(tenantID))
	}
	tasks, err := query.Order(ent.Asc(task.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTaskStatus transitions a task, stamping the lifecycle timestamps.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id string, to domain.TaskStatus) (*ent.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transitionTask(ctx, t, to, nil)
}

func (s *TaskService) transitionTask(ctx context.Context, t *ent.Task, to domain.TaskStatus, mutate func(*ent.TaskUpdateOne)) (*ent.Task, error) {
	from := domain.TaskStatus(t.Status)
	if !domain.CanTransitionTask(from, to) {
		return nil, &TransitionError{Entity: "task", From: string(from), To: string(to)}
	}

	update := s.client.Task.UpdateOneID(t.ID).SetStatus(task.Status(to))
	now := time.Now()
	switch to {
	case domain.TaskInProgress:
		if t.StartedAt == nil {
			update.SetStartedAt(now)
		}
	case domain.TaskCompleted:
		update.SetCompletedAt(now)
	case domain.TaskFailed:
		update.SetFailedAt(now)
	}
	if mutate != nil {
		mutate(update)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition task: %w", err)
	}

	s.publishTaskStatus(ctx, updated, string(from))
	return updated, nil
}

// CompleteTask finishes a task and records its result and artifacts.
func (s *TaskService) CompleteTask(ctx context.Context, id string, result map[string]any, artifacts []string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transitionTask(ctx, t, domain.TaskCompleted, func(u *ent.TaskUpdateOne) {
		if result != nil {
			u.SetResult(result)
		}
		if len(artifacts) > 0 {
			u.SetArtifacts(artifacts)
		}
	})
}

// FailTask fails a task and records the error message.
func (s *TaskService) FailTask(ctx context.Context, id string, errMsg string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transitionTask(ctx, t, domain.TaskFailed, func(u *ent.TaskUpdateOne) {
		u.SetError(errMsg)
	})
}

// AssignTask hands a task to an agent. Every required capability must be
// covered by the agent, and the task must be assignable from its current
// status.
func (s *TaskService) AssignTask(ctx context.Context, id string, agent *registry.Agent) (*ent.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, c := range t.RequiredCapabilities {
		if !agent.HasCapability(domain.Capability(c)) {
			return nil, &CapabilityError{AgentType: string(agent.Type), Capability: c}
		}
	}

	return s.transitionTask(ctx, t, domain.TaskAssigned, func(u *ent.TaskUpdateOne) {
		u.SetAssignedAgentID(agent.ID)
	})
}

// AddDependency adds a typed edge taskID → dependsOnID. Cycle detection
// covers the whole session graph, so a cross-branch cycle is caught before
// anything is written.
func (s *TaskService) AddDependency(ctx context.Context, taskID, dependsOnID string, depType taskgraph.DependencyType) error {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	dep, err := s.GetTask(ctx, dependsOnID)
	if err != nil {
		if err == ErrNotFound {
			return NewValidationError("depends_on", "dependency task not found")
		}
		return err
	}
	if dep.SessionID != t.SessionID {
		return NewValidationError("depends_on", "dependency must be in the same session")
	}

	byID, err := s.loadSessionGraph(ctx, t.SessionID)
	if err != nil {
		return err
	}
	target, ok := byID[taskID]
	if !ok {
		return ErrNotFound
	}
	if err := target.AddDependency(dependsOnID, depType); err != nil {
		switch err {
		case taskgraph.ErrSelfDependency:
			return NewValidationError("depends_on", "task cannot depend on itself")
		case taskgraph.ErrDuplicateDependency:
			return NewValidationError("depends_on", "dependency already exists")
		}
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deps := append(dependenciesToMaps(t), map[string]any{
		"task_id": dependsOnID,
		"type":    string(depType),
	})
	if err := tx.Task.UpdateOneID(t.ID).SetDependencies(deps).Exec(ctx); err != nil {
		return fmt.Errorf("failed to save dependency: %w", err)
	}
	if err := tx.Task.UpdateOneID(dep.ID).
		SetDependents(appendUnique(dep.Dependents, t.ID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to save dependent backlink: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dependency: %w", err)
	}
	return nil
}

// RemoveDependency deletes the edge taskID → dependsOnID if present.
func (s *TaskService) RemoveDependency(ctx context.Context, taskID, dependsOnID string) error {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	kept := make([]map[string]any, 0, len(t.Dependencies))
	for _, d := range t.Dependencies {
		if fmt.Sprint(d["task_id"]) != dependsOnID {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(t.Dependencies) {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.Task.UpdateOneID(t.ID).SetDependencies(kept).Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove dependency: %w", err)
	}
	if dep, err := tx.Task.Get(ctx, dependsOnID); err == nil {
		if err := tx.Task.UpdateOneID(dep.ID).
			SetDependents(removeString(dep.Dependents, t.ID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to remove dependent backlink: %w", err)
		}
	}
	return tx.Commit()
}

// ReadyTasks returns the session's tasks whose dependencies are satisfied
// and that are pending or ready.
func (s *TaskService) ReadyTasks(ctx context.Context, sessionID string) ([]*ent.Task, error) {
	tasks, err := s.ListTasks(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	byID := map[string]*taskgraph.Task{}
	rows := map[string]*ent.Task{}
	for _, row := range tasks {
		byID[row.ID] = entToGraphTask(row)
		rows[row.ID] = row
	}
	lookup := func(id string) *taskgraph.Task { return byID[id] }

	ready := make([]*ent.Task, 0)
	for id, gt := range byID {
		if gt.CanStart(lookup) {
			ready = append(ready, rows[id])
		}
	}
	return ready, nil
}

// DecomposeTask expands a task into persisted subtasks using the rule
// engine, returning the created children in dependency-safe order.
func (s *TaskService) DecomposeTask(ctx context.Context, id string, opts decompose.Options) ([]*ent.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if domain.TaskStatus(t.Status).IsTerminal() {
		return nil, NewValidationError("status", "cannot decompose a terminal task")
	}
	depth, err := s.taskDepth(ctx, t)
	if err != nil {
		return nil, err
	}

	gt := entToGraphTask(t)
	if err := s.engine.Decompose(gt, opts); err != nil {
		return nil, NewValidationError("task", err.Error())
	}
	if len(gt.Children) == 0 {
		return nil, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var created []*ent.Task
	var persist func(parent *ent.Task, children []*taskgraph.Task, depth int) error
	persist = func(parent *ent.Task, children []*taskgraph.Task, depth int) error {
		if depth >= taskgraph.MaxHierarchyDepth {
			return NewValidationError("task",
				fmt.Sprintf("decomposition exceeds hierarchy depth %d", taskgraph.MaxHierarchyDepth))
		}
		for _, child := range children {
			builder := tx.Task.Create().
				SetID(child.ID).
				SetTenantID(t.TenantID).
				SetSessionID(t.SessionID).
				SetParentTaskID(parent.ID).
				SetTitle(child.Title).
				SetStatus(task.StatusPending).
				SetPriority(task.Priority(child.Priority)).
				SetEstimate(estimateToMap(child.Estimate))
			if len(child.Estimate.RequiredCapabilities) > 0 {
				caps := make([]string, len(child.Estimate.RequiredCapabilities))
				for i, c := range child.Estimate.RequiredCapabilities {
					caps[i] = string(c)
				}
				builder.SetRequiredCapabilities(caps)
			}
			if len(child.Dependencies) > 0 {
				deps := make([]map[string]any, len(child.Dependencies))
				for i, d := range child.Dependencies {
					deps[i] = map[string]any{"task_id": d.TaskID, "type": string(d.Type)}
				}
				builder.SetDependencies(deps)
			}
			row, err := builder.Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to persist subtask: %w", err)
			}
			created = append(created, row)
			if err := persist(row, child.Children, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := persist(t, gt.Children, depth+1); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit decomposition: %w", err)
	}
	s.logger.Info("Task decomposed", "task_id", t.ID, "subtasks", len(created))
	return created, nil
}

// loadSessionGraph builds the in-memory graph of every task in the session,
// attached to a synthetic root so cycle detection spans the whole session.
func (s *TaskService) loadSessionGraph(ctx context.Context, sessionID string) (map[string]*taskgraph.Task, error) {
	tasks, err := s.ListTasks(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	root := &taskgraph.Task{ID: "session-root:" + sessionID}
	byID := map[string]*taskgraph.Task{}
	for _, row := range tasks {
		gt := entToGraphTask(row)
		if err := root.AddChild(gt); err != nil {
			return nil, err
		}
		byID[gt.ID] = gt
	}
	return byID, nil
}

// --- conversions between the durable rows and the in-memory graph ---

func entToGraphTask(row *ent.Task) *taskgraph.Task {
	gt := &taskgraph.Task{
		ID:          row.ID,
		TenantID:    row.TenantID,
		SessionID:   row.SessionID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		Priority:    domain.Priority(row.Priority),
		Estimate:    estimateFromMap(row.Estimate),
		Dependents:  append([]string(nil), row.Dependents...),
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
		FailedAt:    row.FailedAt,
	}
	if row.ParentTaskID != nil {
		gt.ParentID = *row.ParentTaskID
	}
	if row.AssignedAgentID != nil {
		gt.AssignedAgent = *row.AssignedAgentID
	}
	for _, d := range row.Dependencies {
		gt.Dependencies = append(gt.Dependencies, taskgraph.Dependency{
			TaskID: fmt.Sprint(d["task_id"]),
			Type:   taskgraph.DependencyType(fmt.Sprint(d["type"])),
		})
	}
	return gt
}

func estimateToMap(e domain.Estimate) map[string]any {
	raw, _ := json.Marshal(e)
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return out
}

func estimateFromMap(m map[string]any) domain.Estimate {
	if m == nil {
		return domain.Estimate{}
	}
	raw, _ := json.Marshal(m)
	var e domain.Estimate
	_ = json.Unmarshal(raw, &e)
	return e
}

func dependenciesToMaps(t *ent.Task) []map[string]any {
	out := make([]map[string]any, 0, len(t.Dependencies))
	out = append(out, t.Dependencies...)
	return out
}

func appendUnique(list []string, v string) []string {
	for _, item := range list {
		if item == v {
			return list
		}
	}
	return append(list, v)
}

func removeString(list []string, v string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}

func (s *TaskService) publishTaskStatus(ctx context.Context, t *ent.Task, previous string) {
	if s.publisher == nil {
		return
	}
	agentID := ""
	if t.AssignedAgentID != nil {
		agentID = *t.AssignedAgentID
	}
	if err := s.publisher.PublishTaskStatus(ctx, t.SessionID, events.TaskStatusPayload{
		TaskID:         t.ID,
		SessionID:      t.SessionID,
		Status:         string(t.Status),
		PreviousStatus: previous,
		AgentID:        agentID,
		Timestamp:      time.Now(),
	}); err != nil {
		s.logger.Warn("Failed to publish task status event",
			"task_id", t.ID, "status", t.Status, "error", err)
	}
}
