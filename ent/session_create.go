// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-hq/maestro/ent/checkpoint"
	"github.com/maestro-hq/maestro/ent/event"
	"github.com/maestro-hq/maestro/ent/executioncontext"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/ent/sessionmetrics"
	"github.com/maestro-hq/maestro/ent/task"
	"github.com/maestro-hq/maestro/ent/tenant"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *SessionCreate) SetTenantID(v string) *SessionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SessionCreate) SetTitle(v string) *SessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SessionCreate) SetDescription(v string) *SessionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SessionCreate) SetNillableDescription(v *string) *SessionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSessionType sets the "session_type" field.
func (_c *SessionCreate) SetSessionType(v session.SessionType) *SessionCreate {
	_c.mutation.SetSessionType(v)
	return _c
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSessionType(v *session.SessionType) *SessionCreate {
	if v != nil {
		_c.SetSessionType(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *SessionCreate) SetPriority(v session.Priority) *SessionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePriority(v *session.Priority) *SessionCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStatusUpdatedAt sets the "status_updated_at" field.
func (_c *SessionCreate) SetStatusUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetStatusUpdatedAt(v)
	return _c
}

// SetNillableStatusUpdatedAt sets the "status_updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatusUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetStatusUpdatedAt(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *SessionCreate) SetParentID(v string) *SessionCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableParentID(v *string) *SessionCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetChildIds sets the "child_ids" field.
func (_c *SessionCreate) SetChildIds(v []string) *SessionCreate {
	_c.mutation.SetChildIds(v)
	return _c
}

// SetAgentConfig sets the "agent_config" field.
func (_c *SessionCreate) SetAgentConfig(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetAgentConfig(v)
	return _c
}

// SetModelConfig sets the "model_config" field.
func (_c *SessionCreate) SetModelConfig(v string) *SessionCreate {
	_c.mutation.SetModelConfig(v)
	return _c
}

// SetNillableModelConfig sets the "model_config" field if the given value is not nil.
func (_c *SessionCreate) SetNillableModelConfig(v *string) *SessionCreate {
	if v != nil {
		_c.SetModelConfig(*v)
	}
	return _c
}

// SetInitialPrompt sets the "initial_prompt" field.
func (_c *SessionCreate) SetInitialPrompt(v string) *SessionCreate {
	_c.mutation.SetInitialPrompt(v)
	return _c
}

// SetMaxDurationSeconds sets the "max_duration_seconds" field.
func (_c *SessionCreate) SetMaxDurationSeconds(v int) *SessionCreate {
	_c.mutation.SetMaxDurationSeconds(v)
	return _c
}

// SetNillableMaxDurationSeconds sets the "max_duration_seconds" field if the given value is not nil.
func (_c *SessionCreate) SetNillableMaxDurationSeconds(v *int) *SessionCreate {
	if v != nil {
		_c.SetMaxDurationSeconds(*v)
	}
	return _c
}

// SetCPULimit sets the "cpu_limit" field.
func (_c *SessionCreate) SetCPULimit(v float64) *SessionCreate {
	_c.mutation.SetCPULimit(v)
	return _c
}

// SetNillableCPULimit sets the "cpu_limit" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCPULimit(v *float64) *SessionCreate {
	if v != nil {
		_c.SetCPULimit(*v)
	}
	return _c
}

// SetMemoryLimitMB sets the "memory_limit_mb" field.
func (_c *SessionCreate) SetMemoryLimitMB(v int) *SessionCreate {
	_c.mutation.SetMemoryLimitMB(v)
	return _c
}

// SetNillableMemoryLimitMB sets the "memory_limit_mb" field if the given value is not nil.
func (_c *SessionCreate) SetNillableMemoryLimitMB(v *int) *SessionCreate {
	if v != nil {
		_c.SetMemoryLimitMB(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *SessionCreate) SetCreatedBy(v string) *SessionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedBy(v *string) *SessionCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *SessionCreate) SetTags(v []string) *SessionCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SessionCreate) SetMetadata(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *SessionCreate) SetVersion(v int) *SessionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *SessionCreate) SetNillableVersion(v *int) *SessionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetMetricsID sets the "metrics_id" field.
func (_c *SessionCreate) SetMetricsID(v string) *SessionCreate {
	_c.mutation.SetMetricsID(v)
	return _c
}

// SetNillableMetricsID sets the "metrics_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableMetricsID(v *string) *SessionCreate {
	if v != nil {
		_c.SetMetricsID(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *SessionCreate) SetPodID(v string) *SessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePodID(v *string) *SessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *SessionCreate) SetLastHeartbeatAt(v time.Time) *SessionCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLastHeartbeatAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *SessionCreate) SetDeletedAt(v time.Time) *SessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableDeletedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *SessionCreate) SetTenant(v *Tenant) *SessionCreate {
	return _c.SetTenantID(v.ID)
}

// SetMetrics sets the "metrics" edge to the SessionMetrics entity.
func (_c *SessionCreate) SetMetrics(v *SessionMetrics) *SessionCreate {
	return _c.SetMetricsID(v.ID)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *SessionCreate) AddCheckpointIDs(ids ...string) *SessionCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *SessionCreate) AddCheckpoints(v ...*Checkpoint) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *SessionCreate) AddTaskIDs(ids ...string) *SessionCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *SessionCreate) AddTasks(v ...*Task) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddContextIDs adds the "contexts" edge to the ExecutionContext entity by IDs.
func (_c *SessionCreate) AddContextIDs(ids ...string) *SessionCreate {
	_c.mutation.AddContextIDs(ids...)
	return _c
}

// AddContexts adds the "contexts" edges to the ExecutionContext entity.
func (_c *SessionCreate) AddContexts(v ...*ExecutionContext) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContextIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *SessionCreate) AddEventIDs(ids ...int64) *SessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *SessionCreate) AddEvents(v ...*Event) *SessionCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.SessionType(); !ok {
		v := session.DefaultSessionType
		_c.mutation.SetSessionType(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := session.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StatusUpdatedAt(); !ok {
		v := session.DefaultStatusUpdatedAt()
		_c.mutation.SetStatusUpdatedAt(v)
	}
	if _, ok := _c.mutation.MaxDurationSeconds(); !ok {
		v := session.DefaultMaxDurationSeconds
		_c.mutation.SetMaxDurationSeconds(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := session.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Session.tenant_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Session.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Session.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionType(); !ok {
		return &ValidationError{Name: "session_type", err: errors.New(`ent: missing required field "Session.session_type"`)}
	}
	if v, ok := _c.mutation.SessionType(); ok {
		if err := session.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "Session.session_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Session.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := session.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Session.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusUpdatedAt(); !ok {
		return &ValidationError{Name: "status_updated_at", err: errors.New(`ent: missing required field "Session.status_updated_at"`)}
	}
	if _, ok := _c.mutation.InitialPrompt(); !ok {
		return &ValidationError{Name: "initial_prompt", err: errors.New(`ent: missing required field "Session.initial_prompt"`)}
	}
	if v, ok := _c.mutation.InitialPrompt(); ok {
		if err := session.InitialPromptValidator(v); err != nil {
			return &ValidationError{Name: "initial_prompt", err: fmt.Errorf(`ent: validator failed for field "Session.initial_prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxDurationSeconds(); !ok {
		return &ValidationError{Name: "max_duration_seconds", err: errors.New(`ent: missing required field "Session.max_duration_seconds"`)}
	}
	if v, ok := _c.mutation.MaxDurationSeconds(); ok {
		if err := session.MaxDurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "max_duration_seconds", err: fmt.Errorf(`ent: validator failed for field "Session.max_duration_seconds": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CPULimit(); ok {
		if err := session.CPULimitValidator(v); err != nil {
			return &ValidationError{Name: "cpu_limit", err: fmt.Errorf(`ent: validator failed for field "Session.cpu_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Session.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "Session.tenant"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(session.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SessionType(); ok {
		_spec.SetField(session.FieldSessionType, field.TypeEnum, value)
		_node.SessionType = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(session.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusUpdatedAt(); ok {
		_spec.SetField(session.FieldStatusUpdatedAt, field.TypeTime, value)
		_node.StatusUpdatedAt = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(session.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.ChildIds(); ok {
		_spec.SetField(session.FieldChildIds, field.TypeJSON, value)
		_node.ChildIds = value
	}
	if value, ok := _c.mutation.AgentConfig(); ok {
		_spec.SetField(session.FieldAgentConfig, field.TypeJSON, value)
		_node.AgentConfig = value
	}
	if value, ok := _c.mutation.ModelConfig(); ok {
		_spec.SetField(session.FieldModelConfig, field.TypeString, value)
		_node.ModelConfig = &value
	}
	if value, ok := _c.mutation.InitialPrompt(); ok {
		_spec.SetField(session.FieldInitialPrompt, field.TypeString, value)
		_node.InitialPrompt = value
	}
	if value, ok := _c.mutation.MaxDurationSeconds(); ok {
		_spec.SetField(session.FieldMaxDurationSeconds, field.TypeInt, value)
		_node.MaxDurationSeconds = value
	}
	if value, ok := _c.mutation.CPULimit(); ok {
		_spec.SetField(session.FieldCPULimit, field.TypeFloat64, value)
		_node.CPULimit = &value
	}
	if value, ok := _c.mutation.MemoryLimitMB(); ok {
		_spec.SetField(session.FieldMemoryLimitMB, field.TypeInt, value)
		_node.MemoryLimitMB = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(session.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(session.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(session.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(session.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(session.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(session.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(session.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.TenantTable,
			Columns: []string{session.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   session.MetricsTable,
			Columns: []string{session.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmetrics.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MetricsID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.CheckpointsTable,
			Columns: []string{session.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.TasksTable,
			Columns: []string{session.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContextsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ContextsTable,
			Columns: []string{session.ContextsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executioncontext.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.EventsTable,
			Columns: []string{session.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
