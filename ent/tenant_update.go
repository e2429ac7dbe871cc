// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-hq/maestro/ent/executioncontext"
	"github.com/maestro-hq/maestro/ent/finetuningjob"
	"github.com/maestro-hq/maestro/ent/predicate"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/ent/task"
	"github.com/maestro-hq/maestro/ent/tenant"
)

// TenantUpdate is the builder for updating Tenant entities.
type TenantUpdate struct {
	config
	hooks     []Hook
	mutation  *TenantMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdate) Where(ps ...predicate.Tenant) *TenantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TenantUpdate) SetName(v string) *TenantUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableName(v *string) *TenantUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TenantUpdate) SetSlug(v string) *TenantUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableSlug(v *string) *TenantUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetMaxConcurrentSessions sets the "max_concurrent_sessions" field.
func (_u *TenantUpdate) SetMaxConcurrentSessions(v int) *TenantUpdate {
	_u.mutation.ResetMaxConcurrentSessions()
	_u.mutation.SetMaxConcurrentSessions(v)
	return _u
}

// SetNillableMaxConcurrentSessions sets the "max_concurrent_sessions" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableMaxConcurrentSessions(v *int) *TenantUpdate {
	if v != nil {
		_u.SetMaxConcurrentSessions(*v)
	}
	return _u
}

// AddMaxConcurrentSessions adds value to the "max_concurrent_sessions" field.
func (_u *TenantUpdate) AddMaxConcurrentSessions(v int) *TenantUpdate {
	_u.mutation.AddMaxConcurrentSessions(v)
	return _u
}

// SetMaxTokensPerMonth sets the "max_tokens_per_month" field.
func (_u *TenantUpdate) SetMaxTokensPerMonth(v int64) *TenantUpdate {
	_u.mutation.ResetMaxTokensPerMonth()
	_u.mutation.SetMaxTokensPerMonth(v)
	return _u
}

// SetNillableMaxTokensPerMonth sets the "max_tokens_per_month" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableMaxTokensPerMonth(v *int64) *TenantUpdate {
	if v != nil {
		_u.SetMaxTokensPerMonth(*v)
	}
	return _u
}

// AddMaxTokensPerMonth adds value to the "max_tokens_per_month" field.
func (_u *TenantUpdate) AddMaxTokensPerMonth(v int64) *TenantUpdate {
	_u.mutation.AddMaxTokensPerMonth(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *TenantUpdate) SetActive(v bool) *TenantUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableActive(v *bool) *TenantUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantUpdate) SetUpdatedAt(v time.Time) *TenantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *TenantUpdate) AddSessionIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *TenantUpdate) AddSessions(v ...*Session) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *TenantUpdate) AddTaskIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *TenantUpdate) AddTasks(v ...*Task) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddContextIDs adds the "contexts" edge to the ExecutionContext entity by IDs.
func (_u *TenantUpdate) AddContextIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddContextIDs(ids...)
	return _u
}

// AddContexts adds the "contexts" edges to the ExecutionContext entity.
func (_u *TenantUpdate) AddContexts(v ...*ExecutionContext) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContextIDs(ids...)
}

// AddFineTuningJobIDs adds the "fine_tuning_jobs" edge to the FineTuningJob entity by IDs.
func (_u *TenantUpdate) AddFineTuningJobIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddFineTuningJobIDs(ids...)
	return _u
}

// AddFineTuningJobs adds the "fine_tuning_jobs" edges to the FineTuningJob entity.
func (_u *TenantUpdate) AddFineTuningJobs(v ...*FineTuningJob) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFineTuningJobIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdate) Mutation() *TenantMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *TenantUpdate) ClearSessions() *TenantUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *TenantUpdate) RemoveSessionIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *TenantUpdate) RemoveSessions(v ...*Session) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *TenantUpdate) ClearTasks() *TenantUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *TenantUpdate) RemoveTaskIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *TenantUpdate) RemoveTasks(v ...*Task) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearContexts clears all "contexts" edges to the ExecutionContext entity.
func (_u *TenantUpdate) ClearContexts() *TenantUpdate {
	_u.mutation.ClearContexts()
	return _u
}

// RemoveContextIDs removes the "contexts" edge to ExecutionContext entities by IDs.
func (_u *TenantUpdate) RemoveContextIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveContextIDs(ids...)
	return _u
}

// RemoveContexts removes "contexts" edges to ExecutionContext entities.
func (_u *TenantUpdate) RemoveContexts(v ...*ExecutionContext) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContextIDs(ids...)
}

// ClearFineTuningJobs clears all "fine_tuning_jobs" edges to the FineTuningJob entity.
func (_u *TenantUpdate) ClearFineTuningJobs() *TenantUpdate {
	_u.mutation.ClearFineTuningJobs()
	return _u
}

// RemoveFineTuningJobIDs removes the "fine_tuning_jobs" edge to FineTuningJob entities by IDs.
func (_u *TenantUpdate) RemoveFineTuningJobIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveFineTuningJobIDs(ids...)
	return _u
}

// RemoveFineTuningJobs removes "fine_tuning_jobs" edges to FineTuningJob entities.
func (_u *TenantUpdate) RemoveFineTuningJobs(v ...*FineTuningJob) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFineTuningJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tenant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tenant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := tenant.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Tenant.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxConcurrentSessions(); ok {
		if err := tenant.MaxConcurrentSessionsValidator(v); err != nil {
			return &ValidationError{Name: "max_concurrent_sessions", err: fmt.Errorf(`ent: validator failed for field "Tenant.max_concurrent_sessions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokensPerMonth(); ok {
		if err := tenant.MaxTokensPerMonthValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens_per_month", err: fmt.Errorf(`ent: validator failed for field "Tenant.max_tokens_per_month": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *TenantUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *TenantUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *TenantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(tenant.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxConcurrentSessions(); ok {
		_spec.SetField(tenant.FieldMaxConcurrentSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrentSessions(); ok {
		_spec.AddField(tenant.FieldMaxConcurrentSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxTokensPerMonth(); ok {
		_spec.SetField(tenant.FieldMaxTokensPerMonth, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMaxTokensPerMonth(); ok {
		_spec.AddField(tenant.FieldMaxTokensPerMonth, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(tenant.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SessionsTable,
			Columns: []string{tenant.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SessionsTable,
			Columns: []string{tenant.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SessionsTable,
			Columns: []string{tenant.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
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
			Table:   tenant.TasksTable,
			Columns: []string{tenant.TasksColumn},
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
			Table:   tenant.TasksTable,
			Columns: []string{tenant.TasksColumn},
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
			Table:   tenant.TasksTable,
			Columns: []string{tenant.TasksColumn},
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
			Table:   tenant.ContextsTable,
			Columns: []string{tenant.ContextsColumn},
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
			Table:   tenant.ContextsTable,
			Columns: []string{tenant.ContextsColumn},
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
			Table:   tenant.ContextsTable,
			Columns: []string{tenant.ContextsColumn},
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
	if _u.mutation.FineTuningJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.FineTuningJobsTable,
			Columns: []string{tenant.FineTuningJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(finetuningjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFineTuningJobsIDs(); len(nodes) > 0 && !_u.mutation.FineTuningJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.FineTuningJobsTable,
			Columns: []string{tenant.FineTuningJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(finetuningjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FineTuningJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.FineTuningJobsTable,
			Columns: []string{tenant.FineTuningJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(finetuningjob.FieldID, field.TypeString),
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
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantUpdateOne is the builder for updating a single Tenant entity.
type TenantUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *TenantMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetName sets the "name" field.
func (_u *TenantUpdateOne) SetName(v string) *TenantUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableName(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TenantUpdateOne) SetSlug(v string) *TenantUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableSlug(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetMaxConcurrentSessions sets the "max_concurrent_sessions" field.
func (_u *TenantUpdateOne) SetMaxConcurrentSessions(v int) *TenantUpdateOne {
	_u.mutation.ResetMaxConcurrentSessions()
	_u.mutation.SetMaxConcurrentSessions(v)
	return _u
}

// SetNillableMaxConcurrentSessions sets the "max_concurrent_sessions" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableMaxConcurrentSessions(v *int) *TenantUpdateOne {
	if v != nil {
		_u.SetMaxConcurrentSessions(*v)
	}
	return _u
}

// AddMaxConcurrentSessions adds value to the "max_concurrent_sessions" field.
func (_u *TenantUpdateOne) AddMaxConcurrentSessions(v int) *TenantUpdateOne {
	_u.mutation.AddMaxConcurrentSessions(v)
	return _u
}

// SetMaxTokensPerMonth sets the "max_tokens_per_month" field.
func (_u *TenantUpdateOne) SetMaxTokensPerMonth(v int64) *TenantUpdateOne {
	_u.mutation.ResetMaxTokensPerMonth()
	_u.mutation.SetMaxTokensPerMonth(v)
	return _u
}

// SetNillableMaxTokensPerMonth sets the "max_tokens_per_month" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableMaxTokensPerMonth(v *int64) *TenantUpdateOne {
	if v != nil {
		_u.SetMaxTokensPerMonth(*v)
	}
	return _u
}

// AddMaxTokensPerMonth adds value to the "max_tokens_per_month" field.
func (_u *TenantUpdateOne) AddMaxTokensPerMonth(v int64) *TenantUpdateOne {
	_u.mutation.AddMaxTokensPerMonth(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *TenantUpdateOne) SetActive(v bool) *TenantUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableActive(v *bool) *TenantUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantUpdateOne) SetUpdatedAt(v time.Time) *TenantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *TenantUpdateOne) AddSessionIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *TenantUpdateOne) AddSessions(v ...*Session) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *TenantUpdateOne) AddTaskIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *TenantUpdateOne) AddTasks(v ...*Task) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddContextIDs adds the "contexts" edge to the ExecutionContext entity by IDs.
func (_u *TenantUpdateOne) AddContextIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddContextIDs(ids...)
	return _u
}

// AddContexts adds the "contexts" edges to the ExecutionContext entity.
func (_u *TenantUpdateOne) AddContexts(v ...*ExecutionContext) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContextIDs(ids...)
}

// AddFineTuningJobIDs adds the "fine_tuning_jobs" edge to the FineTuningJob entity by IDs.
func (_u *TenantUpdateOne) AddFineTuningJobIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddFineTuningJobIDs(ids...)
	return _u
}

// AddFineTuningJobs adds the "fine_tuning_jobs" edges to the FineTuningJob entity.
func (_u *TenantUpdateOne) AddFineTuningJobs(v ...*FineTuningJob) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFineTuningJobIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdateOne) Mutation() *TenantMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *TenantUpdateOne) ClearSessions() *TenantUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *TenantUpdateOne) RemoveSessionIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *TenantUpdateOne) RemoveSessions(v ...*Session) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *TenantUpdateOne) ClearTasks() *TenantUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *TenantUpdateOne) RemoveTaskIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *TenantUpdateOne) RemoveTasks(v ...*Task) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearContexts clears all "contexts" edges to the ExecutionContext entity.
func (_u *TenantUpdateOne) ClearContexts() *TenantUpdateOne {
	_u.mutation.ClearContexts()
	return _u
}

// RemoveContextIDs removes the "contexts" edge to ExecutionContext entities by IDs.
func (_u *TenantUpdateOne) RemoveContextIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveContextIDs(ids...)
	return _u
}

// RemoveContexts removes "contexts" edges to ExecutionContext entities.
func (_u *TenantUpdateOne) RemoveContexts(v ...*ExecutionContext) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContextIDs(ids...)
}

// ClearFineTuningJobs clears all "fine_tuning_jobs" edges to the FineTuningJob entity.
func (_u *TenantUpdateOne) ClearFineTuningJobs() *TenantUpdateOne {
	_u.mutation.ClearFineTuningJobs()
	return _u
}

// RemoveFineTuningJobIDs removes the "fine_tuning_jobs" edge to FineTuningJob entities by IDs.
func (_u *TenantUpdateOne) RemoveFineTuningJobIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveFineTuningJobIDs(ids...)
	return _u
}

// RemoveFineTuningJobs removes "fine_tuning_jobs" edges to FineTuningJob entities.
func (_u *TenantUpdateOne) RemoveFineTuningJobs(v ...*FineTuningJob) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFineTuningJobIDs(ids...)
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdateOne) Where(ps ...predicate.Tenant) *TenantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantUpdateOne) Select(field string, fields ...string) *TenantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tenant entity.
func (_u *TenantUpdateOne) Save(ctx context.Context) (*Tenant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdateOne) SaveX(ctx context.Context) *Tenant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tenant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tenant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := tenant.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Tenant.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxConcurrentSessions(); ok {
		if err := tenant.MaxConcurrentSessionsValidator(v); err != nil {
			return &ValidationError{Name: "max_concurrent_sessions", err: fmt.Errorf(`ent: validator failed for field "Tenant.max_concurrent_sessions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokensPerMonth(); ok {
		if err := tenant.MaxTokensPerMonthValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens_per_month", err: fmt.Errorf(`ent: validator failed for field "Tenant.max_tokens_per_month": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *TenantUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *TenantUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *TenantUpdateOne) sqlSave(ctx context.Context) (_node *Tenant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tenant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenant.FieldID)
		for _, f := range fields {
			if !tenant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenant.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(tenant.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxConcurrentSessions(); ok {
		_spec.SetField(tenant.FieldMaxConcurrentSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrentSessions(); ok {
		_spec.AddField(tenant.FieldMaxConcurrentSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxTokensPerMonth(); ok {
		_spec.SetField(tenant.FieldMaxTokensPerMonth, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMaxTokensPerMonth(); ok {
		_spec.AddField(tenant.FieldMaxTokensPerMonth, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(tenant.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SessionsTable,
			Columns: []string{tenant.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SessionsTable,
			Columns: []string{tenant.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SessionsTable,
			Columns: []string{tenant.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
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
			Table:   tenant.TasksTable,
			Columns: []string{tenant.TasksColumn},
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
			Table:   tenant.TasksTable,
			Columns: []string{tenant.TasksColumn},
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
			Table:   tenant.TasksTable,
			Columns: []string{tenant.TasksColumn},
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
			Table:   tenant.ContextsTable,
			Columns: []string{tenant.ContextsColumn},
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
			Table:   tenant.ContextsTable,
			Columns: []string{tenant.ContextsColumn},
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
			Table:   tenant.ContextsTable,
			Columns: []string{tenant.ContextsColumn},
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
	if _u.mutation.FineTuningJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.FineTuningJobsTable,
			Columns: []string{tenant.FineTuningJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(finetuningjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFineTuningJobsIDs(); len(nodes) > 0 && !_u.mutation.FineTuningJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.FineTuningJobsTable,
			Columns: []string{tenant.FineTuningJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(finetuningjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FineTuningJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.FineTuningJobsTable,
			Columns: []string{tenant.FineTuningJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(finetuningjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Tenant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
