// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/maestro-hq/maestro/ent/checkpoint"
	"github.com/maestro-hq/maestro/ent/event"
	"github.com/maestro-hq/maestro/ent/executioncontext"
	"github.com/maestro-hq/maestro/ent/predicate"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/ent/sessionmetrics"
	"github.com/maestro-hq/maestro/ent/task"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks     []Hook
	mutation  *SessionMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SessionUpdate) SetTitle(v string) *SessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTitle(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SessionUpdate) SetDescription(v string) *SessionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDescription(v *string) *SessionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SessionUpdate) ClearDescription() *SessionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *SessionUpdate) SetSessionType(v session.SessionType) *SessionUpdate {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSessionType(v *session.SessionType) *SessionUpdate {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SessionUpdate) SetPriority(v session.Priority) *SessionUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePriority(v *session.Priority) *SessionUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusUpdatedAt sets the "status_updated_at" field.
func (_u *SessionUpdate) SetStatusUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetStatusUpdatedAt(v)
	return _u
}

// SetNillableStatusUpdatedAt sets the "status_updated_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatusUpdatedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetStatusUpdatedAt(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *SessionUpdate) SetParentID(v string) *SessionUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableParentID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *SessionUpdate) ClearParentID() *SessionUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetChildIds sets the "child_ids" field.
func (_u *SessionUpdate) SetChildIds(v []string) *SessionUpdate {
	_u.mutation.SetChildIds(v)
	return _u
}

// AppendChildIds appends value to the "child_ids" field.
func (_u *SessionUpdate) AppendChildIds(v []string) *SessionUpdate {
	_u.mutation.AppendChildIds(v)
	return _u
}

// ClearChildIds clears the value of the "child_ids" field.
func (_u *SessionUpdate) ClearChildIds() *SessionUpdate {
	_u.mutation.ClearChildIds()
	return _u
}

// SetAgentConfig sets the "agent_config" field.
func (_u *SessionUpdate) SetAgentConfig(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetAgentConfig(v)
	return _u
}

// ClearAgentConfig clears the value of the "agent_config" field.
func (_u *SessionUpdate) ClearAgentConfig() *SessionUpdate {
	_u.mutation.ClearAgentConfig()
	return _u
}

// SetModelConfig sets the "model_config" field.
func (_u *SessionUpdate) SetModelConfig(v string) *SessionUpdate {
	_u.mutation.SetModelConfig(v)
	return _u
}

// SetNillableModelConfig sets the "model_config" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableModelConfig(v *string) *SessionUpdate {
	if v != nil {
		_u.SetModelConfig(*v)
	}
	return _u
}

// ClearModelConfig clears the value of the "model_config" field.
func (_u *SessionUpdate) ClearModelConfig() *SessionUpdate {
	_u.mutation.ClearModelConfig()
	return _u
}

// SetInitialPrompt sets the "initial_prompt" field.
func (_u *SessionUpdate) SetInitialPrompt(v string) *SessionUpdate {
	_u.mutation.SetInitialPrompt(v)
	return _u
}

// SetNillableInitialPrompt sets the "initial_prompt" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableInitialPrompt(v *string) *SessionUpdate {
	if v != nil {
		_u.SetInitialPrompt(*v)
	}
	return _u
}

// SetMaxDurationSeconds sets the "max_duration_seconds" field.
func (_u *SessionUpdate) SetMaxDurationSeconds(v int) *SessionUpdate {
	_u.mutation.ResetMaxDurationSeconds()
	_u.mutation.SetMaxDurationSeconds(v)
	return _u
}

// SetNillableMaxDurationSeconds sets the "max_duration_seconds" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableMaxDurationSeconds(v *int) *SessionUpdate {
	if v != nil {
		_u.SetMaxDurationSeconds(*v)
	}
	return _u
}

// AddMaxDurationSeconds adds value to the "max_duration_seconds" field.
func (_u *SessionUpdate) AddMaxDurationSeconds(v int) *SessionUpdate {
	_u.mutation.AddMaxDurationSeconds(v)
	return _u
}

// SetCPULimit sets the "cpu_limit" field.
func (_u *SessionUpdate) SetCPULimit(v float64) *SessionUpdate {
	_u.mutation.ResetCPULimit()
	_u.mutation.SetCPULimit(v)
	return _u
}

// SetNillableCPULimit sets the "cpu_limit" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCPULimit(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetCPULimit(*v)
	}
	return _u
}

// AddCPULimit adds value to the "cpu_limit" field.
func (_u *SessionUpdate) AddCPULimit(v float64) *SessionUpdate {
	_u.mutation.AddCPULimit(v)
	return _u
}

// ClearCPULimit clears the value of the "cpu_limit" field.
func (_u *SessionUpdate) ClearCPULimit() *SessionUpdate {
	_u.mutation.ClearCPULimit()
	return _u
}

// SetMemoryLimitMB sets the "memory_limit_mb" field.
func (_u *SessionUpdate) SetMemoryLimitMB(v int) *SessionUpdate {
	_u.mutation.ResetMemoryLimitMB()
	_u.mutation.SetMemoryLimitMB(v)
	return _u
}

// SetNillableMemoryLimitMB sets the "memory_limit_mb" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableMemoryLimitMB(v *int) *SessionUpdate {
	if v != nil {
		_u.SetMemoryLimitMB(*v)
	}
	return _u
}

// AddMemoryLimitMB adds value to the "memory_limit_mb" field.
func (_u *SessionUpdate) AddMemoryLimitMB(v int) *SessionUpdate {
	_u.mutation.AddMemoryLimitMB(v)
	return _u
}

// ClearMemoryLimitMB clears the value of the "memory_limit_mb" field.
func (_u *SessionUpdate) ClearMemoryLimitMB() *SessionUpdate {
	_u.mutation.ClearMemoryLimitMB()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SessionUpdate) SetCreatedBy(v string) *SessionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCreatedBy(v *string) *SessionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *SessionUpdate) ClearCreatedBy() *SessionUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetTags sets the "tags" field.
func (_u *SessionUpdate) SetTags(v []string) *SessionUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *SessionUpdate) AppendTags(v []string) *SessionUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *SessionUpdate) ClearTags() *SessionUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SessionUpdate) SetMetadata(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SessionUpdate) ClearMetadata() *SessionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetVersion sets the "version" field.
func (_u *SessionUpdate) SetVersion(v int) *SessionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableVersion(v *int) *SessionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SessionUpdate) AddVersion(v int) *SessionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetMetricsID sets the "metrics_id" field.
func (_u *SessionUpdate) SetMetricsID(v string) *SessionUpdate {
	_u.mutation.SetMetricsID(v)
	return _u
}

// SetNillableMetricsID sets the "metrics_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableMetricsID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetMetricsID(*v)
	}
	return _u
}

// ClearMetricsID clears the value of the "metrics_id" field.
func (_u *SessionUpdate) ClearMetricsID() *SessionUpdate {
	_u.mutation.ClearMetricsID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *SessionUpdate) SetPodID(v string) *SessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePodID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *SessionUpdate) ClearPodID() *SessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *SessionUpdate) SetLastHeartbeatAt(v time.Time) *SessionUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLastHeartbeatAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *SessionUpdate) ClearLastHeartbeatAt() *SessionUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SessionUpdate) SetDeletedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDeletedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SessionUpdate) ClearDeletedAt() *SessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMetrics sets the "metrics" edge to the SessionMetrics entity.
func (_u *SessionUpdate) SetMetrics(v *SessionMetrics) *SessionUpdate {
	return _u.SetMetricsID(v.ID)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *SessionUpdate) AddCheckpointIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *SessionUpdate) AddCheckpoints(v ...*Checkpoint) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *SessionUpdate) AddTaskIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *SessionUpdate) AddTasks(v ...*Task) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddContextIDs adds the "contexts" edge to the ExecutionContext entity by IDs.
func (_u *SessionUpdate) AddContextIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddContextIDs(ids...)
	return _u
}

// AddContexts adds the "contexts" edges to the ExecutionContext entity.
func (_u *SessionUpdate) AddContexts(v ...*ExecutionContext) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContextIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *SessionUpdate) AddEventIDs(ids ...int64) *SessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *SessionUpdate) AddEvents(v ...*Event) *SessionUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearMetrics clears the "metrics" edge to the SessionMetrics entity.
func (_u *SessionUpdate) ClearMetrics() *SessionUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *SessionUpdate) ClearCheckpoints() *SessionUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *SessionUpdate) RemoveCheckpointIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *SessionUpdate) RemoveCheckpoints(v ...*Checkpoint) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *SessionUpdate) ClearTasks() *SessionUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *SessionUpdate) RemoveTaskIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *SessionUpdate) RemoveTasks(v ...*Task) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearContexts clears all "contexts" edges to the ExecutionContext entity.
func (_u *SessionUpdate) ClearContexts() *SessionUpdate {
	_u.mutation.ClearContexts()
	return _u
}

// RemoveContextIDs removes the "contexts" edge to ExecutionContext entities by IDs.
func (_u *SessionUpdate) RemoveContextIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveContextIDs(ids...)
	return _u
}

// RemoveContexts removes "contexts" edges to ExecutionContext entities.
func (_u *SessionUpdate) RemoveContexts(v ...*ExecutionContext) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContextIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *SessionUpdate) ClearEvents() *SessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *SessionUpdate) RemoveEventIDs(ids ...int64) *SessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *SessionUpdate) RemoveEvents(v ...*Event) *SessionUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Session.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionType(); ok {
		if err := session.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "Session.session_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := session.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Session.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InitialPrompt(); ok {
		if err := session.InitialPromptValidator(v); err != nil {
			return &ValidationError{Name: "initial_prompt", err: fmt.Errorf(`ent: validator failed for field "Session.initial_prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxDurationSeconds(); ok {
		if err := session.MaxDurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "max_duration_seconds", err: fmt.Errorf(`ent: validator failed for field "Session.max_duration_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CPULimit(); ok {
		if err := session.CPULimitValidator(v); err != nil {
			return &ValidationError{Name: "cpu_limit", err: fmt.Errorf(`ent: validator failed for field "Session.cpu_limit": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.tenant"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SessionUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SessionUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(session.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(session.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(session.FieldSessionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(session.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusUpdatedAt(); ok {
		_spec.SetField(session.FieldStatusUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(session.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(session.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.ChildIds(); ok {
		_spec.SetField(session.FieldChildIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChildIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldChildIds, value)
		})
	}
	if _u.mutation.ChildIdsCleared() {
		_spec.ClearField(session.FieldChildIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentConfig(); ok {
		_spec.SetField(session.FieldAgentConfig, field.TypeJSON, value)
	}
	if _u.mutation.AgentConfigCleared() {
		_spec.ClearField(session.FieldAgentConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelConfig(); ok {
		_spec.SetField(session.FieldModelConfig, field.TypeString, value)
	}
	if _u.mutation.ModelConfigCleared() {
		_spec.ClearField(session.FieldModelConfig, field.TypeString)
	}
	if value, ok := _u.mutation.InitialPrompt(); ok {
		_spec.SetField(session.FieldInitialPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxDurationSeconds(); ok {
		_spec.SetField(session.FieldMaxDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDurationSeconds(); ok {
		_spec.AddField(session.FieldMaxDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CPULimit(); ok {
		_spec.SetField(session.FieldCPULimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPULimit(); ok {
		_spec.AddField(session.FieldCPULimit, field.TypeFloat64, value)
	}
	if _u.mutation.CPULimitCleared() {
		_spec.ClearField(session.FieldCPULimit, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MemoryLimitMB(); ok {
		_spec.SetField(session.FieldMemoryLimitMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryLimitMB(); ok {
		_spec.AddField(session.FieldMemoryLimitMB, field.TypeInt, value)
	}
	if _u.mutation.MemoryLimitMBCleared() {
		_spec.ClearField(session.FieldMemoryLimitMB, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(session.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(session.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(session.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(session.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(session.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(session.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(session.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(session.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(session.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(session.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(session.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(session.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(session.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(session.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.MetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContextsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContextsIDs(); len(nodes) > 0 && !_u.mutation.ContextsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContextsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *SessionMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetTitle sets the "title" field.
func (_u *SessionUpdateOne) SetTitle(v string) *SessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTitle(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SessionUpdateOne) SetDescription(v string) *SessionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDescription(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SessionUpdateOne) ClearDescription() *SessionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *SessionUpdateOne) SetSessionType(v session.SessionType) *SessionUpdateOne {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSessionType(v *session.SessionType) *SessionUpdateOne {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SessionUpdateOne) SetPriority(v session.Priority) *SessionUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePriority(v *session.Priority) *SessionUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusUpdatedAt sets the "status_updated_at" field.
func (_u *SessionUpdateOne) SetStatusUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetStatusUpdatedAt(v)
	return _u
}

// SetNillableStatusUpdatedAt sets the "status_updated_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatusUpdatedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetStatusUpdatedAt(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *SessionUpdateOne) SetParentID(v string) *SessionUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableParentID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *SessionUpdateOne) ClearParentID() *SessionUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetChildIds sets the "child_ids" field.
func (_u *SessionUpdateOne) SetChildIds(v []string) *SessionUpdateOne {
	_u.mutation.SetChildIds(v)
	return _u
}

// AppendChildIds appends value to the "child_ids" field.
func (_u *SessionUpdateOne) AppendChildIds(v []string) *SessionUpdateOne {
	_u.mutation.AppendChildIds(v)
	return _u
}

// ClearChildIds clears the value of the "child_ids" field.
func (_u *SessionUpdateOne) ClearChildIds() *SessionUpdateOne {
	_u.mutation.ClearChildIds()
	return _u
}

// SetAgentConfig sets the "agent_config" field.
func (_u *SessionUpdateOne) SetAgentConfig(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetAgentConfig(v)
	return _u
}

// ClearAgentConfig clears the value of the "agent_config" field.
func (_u *SessionUpdateOne) ClearAgentConfig() *SessionUpdateOne {
	_u.mutation.ClearAgentConfig()
	return _u
}

// SetModelConfig sets the "model_config" field.
func (_u *SessionUpdateOne) SetModelConfig(v string) *SessionUpdateOne {
	_u.mutation.SetModelConfig(v)
	return _u
}

// SetNillableModelConfig sets the "model_config" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableModelConfig(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetModelConfig(*v)
	}
	return _u
}

// ClearModelConfig clears the value of the "model_config" field.
func (_u *SessionUpdateOne) ClearModelConfig() *SessionUpdateOne {
	_u.mutation.ClearModelConfig()
	return _u
}

// SetInitialPrompt sets the "initial_prompt" field.
func (_u *SessionUpdateOne) SetInitialPrompt(v string) *SessionUpdateOne {
	_u.mutation.SetInitialPrompt(v)
	return _u
}

// SetNillableInitialPrompt sets the "initial_prompt" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableInitialPrompt(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetInitialPrompt(*v)
	}
	return _u
}

// SetMaxDurationSeconds sets the "max_duration_seconds" field.
func (_u *SessionUpdateOne) SetMaxDurationSeconds(v int) *SessionUpdateOne {
	_u.mutation.ResetMaxDurationSeconds()
	_u.mutation.SetMaxDurationSeconds(v)
	return _u
}

// SetNillableMaxDurationSeconds sets the "max_duration_seconds" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableMaxDurationSeconds(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetMaxDurationSeconds(*v)
	}
	return _u
}

// AddMaxDurationSeconds adds value to the "max_duration_seconds" field.
func (_u *SessionUpdateOne) AddMaxDurationSeconds(v int) *SessionUpdateOne {
	_u.mutation.AddMaxDurationSeconds(v)
	return _u
}

// SetCPULimit sets the "cpu_limit" field.
func (_u *SessionUpdateOne) SetCPULimit(v float64) *SessionUpdateOne {
	_u.mutation.ResetCPULimit()
	_u.mutation.SetCPULimit(v)
	return _u
}

// SetNillableCPULimit sets the "cpu_limit" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCPULimit(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetCPULimit(*v)
	}
	return _u
}

// AddCPULimit adds value to the "cpu_limit" field.
func (_u *SessionUpdateOne) AddCPULimit(v float64) *SessionUpdateOne {
	_u.mutation.AddCPULimit(v)
	return _u
}

// ClearCPULimit clears the value of the "cpu_limit" field.
func (_u *SessionUpdateOne) ClearCPULimit() *SessionUpdateOne {
	_u.mutation.ClearCPULimit()
	return _u
}

// SetMemoryLimitMB sets the "memory_limit_mb" field.
func (_u *SessionUpdateOne) SetMemoryLimitMB(v int) *SessionUpdateOne {
	_u.mutation.ResetMemoryLimitMB()
	_u.mutation.SetMemoryLimitMB(v)
	return _u
}

// SetNillableMemoryLimitMB sets the "memory_limit_mb" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableMemoryLimitMB(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetMemoryLimitMB(*v)
	}
	return _u
}

// AddMemoryLimitMB adds value to the "memory_limit_mb" field.
func (_u *SessionUpdateOne) AddMemoryLimitMB(v int) *SessionUpdateOne {
	_u.mutation.AddMemoryLimitMB(v)
	return _u
}

// ClearMemoryLimitMB clears the value of the "memory_limit_mb" field.
func (_u *SessionUpdateOne) ClearMemoryLimitMB() *SessionUpdateOne {
	_u.mutation.ClearMemoryLimitMB()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SessionUpdateOne) SetCreatedBy(v string) *SessionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCreatedBy(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *SessionUpdateOne) ClearCreatedBy() *SessionUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetTags sets the "tags" field.
func (_u *SessionUpdateOne) SetTags(v []string) *SessionUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *SessionUpdateOne) AppendTags(v []string) *SessionUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *SessionUpdateOne) ClearTags() *SessionUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SessionUpdateOne) SetMetadata(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SessionUpdateOne) ClearMetadata() *SessionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetVersion sets the "version" field.
func (_u *SessionUpdateOne) SetVersion(v int) *SessionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableVersion(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SessionUpdateOne) AddVersion(v int) *SessionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetMetricsID sets the "metrics_id" field.
func (_u *SessionUpdateOne) SetMetricsID(v string) *SessionUpdateOne {
	_u.mutation.SetMetricsID(v)
	return _u
}

// SetNillableMetricsID sets the "metrics_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableMetricsID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetMetricsID(*v)
	}
	return _u
}

// ClearMetricsID clears the value of the "metrics_id" field.
func (_u *SessionUpdateOne) ClearMetricsID() *SessionUpdateOne {
	_u.mutation.ClearMetricsID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *SessionUpdateOne) SetPodID(v string) *SessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePodID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *SessionUpdateOne) ClearPodID() *SessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *SessionUpdateOne) SetLastHeartbeatAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *SessionUpdateOne) ClearLastHeartbeatAt() *SessionUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SessionUpdateOne) SetDeletedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDeletedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SessionUpdateOne) ClearDeletedAt() *SessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMetrics sets the "metrics" edge to the SessionMetrics entity.
func (_u *SessionUpdateOne) SetMetrics(v *SessionMetrics) *SessionUpdateOne {
	return _u.SetMetricsID(v.ID)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *SessionUpdateOne) AddCheckpointIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *SessionUpdateOne) AddCheckpoints(v ...*Checkpoint) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *SessionUpdateOne) AddTaskIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *SessionUpdateOne) AddTasks(v ...*Task) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddContextIDs adds the "contexts" edge to the ExecutionContext entity by IDs.
func (_u *SessionUpdateOne) AddContextIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddContextIDs(ids...)
	return _u
}

// AddContexts adds the "contexts" edges to the ExecutionContext entity.
func (_u *SessionUpdateOne) AddContexts(v ...*ExecutionContext) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContextIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *SessionUpdateOne) AddEventIDs(ids ...int64) *SessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *SessionUpdateOne) AddEvents(v ...*Event) *SessionUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearMetrics clears the "metrics" edge to the SessionMetrics entity.
func (_u *SessionUpdateOne) ClearMetrics() *SessionUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *SessionUpdateOne) ClearCheckpoints() *SessionUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *SessionUpdateOne) RemoveCheckpointIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *SessionUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *SessionUpdateOne) ClearTasks() *SessionUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *SessionUpdateOne) RemoveTaskIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *SessionUpdateOne) RemoveTasks(v ...*Task) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearContexts clears all "contexts" edges to the ExecutionContext entity.
func (_u *SessionUpdateOne) ClearContexts() *SessionUpdateOne {
	_u.mutation.ClearContexts()
	return _u
}

// RemoveContextIDs removes the "contexts" edge to ExecutionContext entities by IDs.
func (_u *SessionUpdateOne) RemoveContextIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveContextIDs(ids...)
	return _u
}

// RemoveContexts removes "contexts" edges to ExecutionContext entities.
func (_u *SessionUpdateOne) RemoveContexts(v ...*ExecutionContext) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContextIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *SessionUpdateOne) ClearEvents() *SessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *SessionUpdateOne) RemoveEventIDs(ids ...int64) *SessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *SessionUpdateOne) RemoveEvents(v ...*Event) *SessionUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Session.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionType(); ok {
		if err := session.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "Session.session_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := session.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Session.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InitialPrompt(); ok {
		if err := session.InitialPromptValidator(v); err != nil {
			return &ValidationError{Name: "initial_prompt", err: fmt.Errorf(`ent: validator failed for field "Session.initial_prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxDurationSeconds(); ok {
		if err := session.MaxDurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "max_duration_seconds", err: fmt.Errorf(`ent: validator failed for field "Session.max_duration_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CPULimit(); ok {
		if err := session.CPULimitValidator(v); err != nil {
			return &ValidationError{Name: "cpu_limit", err: fmt.Errorf(`ent: validator failed for field "Session.cpu_limit": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.tenant"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SessionUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SessionUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(session.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(session.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(session.FieldSessionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(session.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusUpdatedAt(); ok {
		_spec.SetField(session.FieldStatusUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(session.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(session.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.ChildIds(); ok {
		_spec.SetField(session.FieldChildIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChildIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldChildIds, value)
		})
	}
	if _u.mutation.ChildIdsCleared() {
		_spec.ClearField(session.FieldChildIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentConfig(); ok {
		_spec.SetField(session.FieldAgentConfig, field.TypeJSON, value)
	}
	if _u.mutation.AgentConfigCleared() {
		_spec.ClearField(session.FieldAgentConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelConfig(); ok {
		_spec.SetField(session.FieldModelConfig, field.TypeString, value)
	}
	if _u.mutation.ModelConfigCleared() {
		_spec.ClearField(session.FieldModelConfig, field.TypeString)
	}
	if value, ok := _u.mutation.InitialPrompt(); ok {
		_spec.SetField(session.FieldInitialPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxDurationSeconds(); ok {
		_spec.SetField(session.FieldMaxDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDurationSeconds(); ok {
		_spec.AddField(session.FieldMaxDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CPULimit(); ok {
		_spec.SetField(session.FieldCPULimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPULimit(); ok {
		_spec.AddField(session.FieldCPULimit, field.TypeFloat64, value)
	}
	if _u.mutation.CPULimitCleared() {
		_spec.ClearField(session.FieldCPULimit, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MemoryLimitMB(); ok {
		_spec.SetField(session.FieldMemoryLimitMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryLimitMB(); ok {
		_spec.AddField(session.FieldMemoryLimitMB, field.TypeInt, value)
	}
	if _u.mutation.MemoryLimitMBCleared() {
		_spec.ClearField(session.FieldMemoryLimitMB, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(session.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(session.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(session.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(session.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(session.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(session.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(session.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(session.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(session.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(session.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(session.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(session.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(session.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(session.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.MetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContextsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContextsIDs(); len(nodes) > 0 && !_u.mutation.ContextsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContextsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
