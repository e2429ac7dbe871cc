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
	"github.com/maestro-hq/maestro/ent/predicate"
	"github.com/maestro-hq/maestro/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks     []Hook
	mutation  *TaskMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdate) SetParentTaskID(v string) *TaskUpdate {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableParentTaskID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdate) ClearParentTaskID() *TaskUpdate {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v task.Priority) *TaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *task.Priority) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetEstimate sets the "estimate" field.
func (_u *TaskUpdate) SetEstimate(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetEstimate(v)
	return _u
}

// ClearEstimate clears the value of the "estimate" field.
func (_u *TaskUpdate) ClearEstimate() *TaskUpdate {
	_u.mutation.ClearEstimate()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *TaskUpdate) SetDependencies(v []map[string]interface{}) *TaskUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *TaskUpdate) AppendDependencies(v []map[string]interface{}) *TaskUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *TaskUpdate) ClearDependencies() *TaskUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetDependents sets the "dependents" field.
func (_u *TaskUpdate) SetDependents(v []string) *TaskUpdate {
	_u.mutation.SetDependents(v)
	return _u
}

// AppendDependents appends value to the "dependents" field.
func (_u *TaskUpdate) AppendDependents(v []string) *TaskUpdate {
	_u.mutation.AppendDependents(v)
	return _u
}

// ClearDependents clears the value of the "dependents" field.
func (_u *TaskUpdate) ClearDependents() *TaskUpdate {
	_u.mutation.ClearDependents()
	return _u
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (_u *TaskUpdate) SetRequiredCapabilities(v []string) *TaskUpdate {
	_u.mutation.SetRequiredCapabilities(v)
	return _u
}

// AppendRequiredCapabilities appends value to the "required_capabilities" field.
func (_u *TaskUpdate) AppendRequiredCapabilities(v []string) *TaskUpdate {
	_u.mutation.AppendRequiredCapabilities(v)
	return _u
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (_u *TaskUpdate) ClearRequiredCapabilities() *TaskUpdate {
	_u.mutation.ClearRequiredCapabilities()
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdate) SetAssignedAgentID(v string) *TaskUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedAgentID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdate) ClearAssignedAgentID() *TaskUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *TaskUpdate) SetFailedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFailedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *TaskUpdate) ClearFailedAt() *TaskUpdate {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdate) SetResult(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdate) ClearResult() *TaskUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *TaskUpdate) SetError(v string) *TaskUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableError(v *string) *TaskUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TaskUpdate) ClearError() *TaskUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *TaskUpdate) SetArtifacts(v []string) *TaskUpdate {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *TaskUpdate) AppendArtifacts(v []string) *TaskUpdate {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *TaskUpdate) ClearArtifacts() *TaskUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.tenant"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.session"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *TaskUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *TaskUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Estimate(); ok {
		_spec.SetField(task.FieldEstimate, field.TypeJSON, value)
	}
	if _u.mutation.EstimateCleared() {
		_spec.ClearField(task.FieldEstimate, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(task.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(task.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependents(); ok {
		_spec.SetField(task.FieldDependents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependents, value)
		})
	}
	if _u.mutation.DependentsCleared() {
		_spec.ClearField(task.FieldDependents, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiredCapabilities(); ok {
		_spec.SetField(task.FieldRequiredCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldRequiredCapabilities, value)
		})
	}
	if _u.mutation.RequiredCapabilitiesCleared() {
		_spec.ClearField(task.FieldRequiredCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(task.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(task.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(task.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(task.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(task.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(task.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *TaskMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdateOne) SetParentTaskID(v string) *TaskUpdateOne {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParentTaskID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdateOne) ClearParentTaskID() *TaskUpdateOne {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v task.Priority) *TaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *task.Priority) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetEstimate sets the "estimate" field.
func (_u *TaskUpdateOne) SetEstimate(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetEstimate(v)
	return _u
}

// ClearEstimate clears the value of the "estimate" field.
func (_u *TaskUpdateOne) ClearEstimate() *TaskUpdateOne {
	_u.mutation.ClearEstimate()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *TaskUpdateOne) SetDependencies(v []map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *TaskUpdateOne) AppendDependencies(v []map[string]interface{}) *TaskUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *TaskUpdateOne) ClearDependencies() *TaskUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetDependents sets the "dependents" field.
func (_u *TaskUpdateOne) SetDependents(v []string) *TaskUpdateOne {
	_u.mutation.SetDependents(v)
	return _u
}

// AppendDependents appends value to the "dependents" field.
func (_u *TaskUpdateOne) AppendDependents(v []string) *TaskUpdateOne {
	_u.mutation.AppendDependents(v)
	return _u
}

// ClearDependents clears the value of the "dependents" field.
func (_u *TaskUpdateOne) ClearDependents() *TaskUpdateOne {
	_u.mutation.ClearDependents()
	return _u
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (_u *TaskUpdateOne) SetRequiredCapabilities(v []string) *TaskUpdateOne {
	_u.mutation.SetRequiredCapabilities(v)
	return _u
}

// AppendRequiredCapabilities appends value to the "required_capabilities" field.
func (_u *TaskUpdateOne) AppendRequiredCapabilities(v []string) *TaskUpdateOne {
	_u.mutation.AppendRequiredCapabilities(v)
	return _u
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (_u *TaskUpdateOne) ClearRequiredCapabilities() *TaskUpdateOne {
	_u.mutation.ClearRequiredCapabilities()
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdateOne) SetAssignedAgentID(v string) *TaskUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedAgentID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdateOne) ClearAssignedAgentID() *TaskUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *TaskUpdateOne) SetFailedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFailedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *TaskUpdateOne) ClearFailedAt() *TaskUpdateOne {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdateOne) SetResult(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdateOne) ClearResult() *TaskUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *TaskUpdateOne) SetError(v string) *TaskUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableError(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TaskUpdateOne) ClearError() *TaskUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *TaskUpdateOne) SetArtifacts(v []string) *TaskUpdateOne {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *TaskUpdateOne) AppendArtifacts(v []string) *TaskUpdateOne {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *TaskUpdateOne) ClearArtifacts() *TaskUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.tenant"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.session"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *TaskUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *TaskUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Estimate(); ok {
		_spec.SetField(task.FieldEstimate, field.TypeJSON, value)
	}
	if _u.mutation.EstimateCleared() {
		_spec.ClearField(task.FieldEstimate, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(task.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(task.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependents(); ok {
		_spec.SetField(task.FieldDependents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependents, value)
		})
	}
	if _u.mutation.DependentsCleared() {
		_spec.ClearField(task.FieldDependents, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiredCapabilities(); ok {
		_spec.SetField(task.FieldRequiredCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldRequiredCapabilities, value)
		})
	}
	if _u.mutation.RequiredCapabilitiesCleared() {
		_spec.ClearField(task.FieldRequiredCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(task.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(task.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(task.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(task.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(task.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(task.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
