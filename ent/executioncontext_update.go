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
	"github.com/maestro-hq/maestro/ent/executioncontext"
	"github.com/maestro-hq/maestro/ent/predicate"
	"github.com/maestro-hq/maestro/ent/session"
)

// ExecutionContextUpdate is the builder for updating ExecutionContext entities.
type ExecutionContextUpdate struct {
	config
	hooks     []Hook
	mutation  *ExecutionContextMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ExecutionContextUpdate builder.
func (_u *ExecutionContextUpdate) Where(ps ...predicate.ExecutionContext) *ExecutionContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExecutionContextUpdate) SetSessionID(v string) *ExecutionContextUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExecutionContextUpdate) SetNillableSessionID(v *string) *ExecutionContextUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExecutionContextUpdate) ClearSessionID() *ExecutionContextUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ExecutionContextUpdate) SetAgentID(v string) *ExecutionContextUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ExecutionContextUpdate) SetNillableAgentID(v *string) *ExecutionContextUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ExecutionContextUpdate) ClearAgentID() *ExecutionContextUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetScope sets the "scope" field.
func (_u *ExecutionContextUpdate) SetScope(v executioncontext.Scope) *ExecutionContextUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ExecutionContextUpdate) SetNillableScope(v *executioncontext.Scope) *ExecutionContextUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ExecutionContextUpdate) SetData(v map[string]interface{}) *ExecutionContextUpdate {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ExecutionContextUpdate) ClearData() *ExecutionContextUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ExecutionContextUpdate) SetVersion(v int) *ExecutionContextUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ExecutionContextUpdate) SetNillableVersion(v *int) *ExecutionContextUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ExecutionContextUpdate) AddVersion(v int) *ExecutionContextUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ExecutionContextUpdate) SetCreatedBy(v string) *ExecutionContextUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ExecutionContextUpdate) SetNillableCreatedBy(v *string) *ExecutionContextUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ExecutionContextUpdate) ClearCreatedBy() *ExecutionContextUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExecutionContextUpdate) SetMetadata(v map[string]interface{}) *ExecutionContextUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExecutionContextUpdate) ClearMetadata() *ExecutionContextUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetHistory sets the "history" field.
func (_u *ExecutionContextUpdate) SetHistory(v []map[string]interface{}) *ExecutionContextUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ExecutionContextUpdate) AppendHistory(v []map[string]interface{}) *ExecutionContextUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ExecutionContextUpdate) ClearHistory() *ExecutionContextUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ExecutionContextUpdate) SetExpiresAt(v time.Time) *ExecutionContextUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ExecutionContextUpdate) SetNillableExpiresAt(v *time.Time) *ExecutionContextUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ExecutionContextUpdate) ClearExpiresAt() *ExecutionContextUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExecutionContextUpdate) SetUpdatedAt(v time.Time) *ExecutionContextUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *ExecutionContextUpdate) SetSession(v *Session) *ExecutionContextUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ExecutionContextMutation object of the builder.
func (_u *ExecutionContextUpdate) Mutation() *ExecutionContextMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *ExecutionContextUpdate) ClearSession() *ExecutionContextUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionContextUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExecutionContextUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := executioncontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionContextUpdate) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := executioncontext.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExecutionContext.scope": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionContext.tenant"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *ExecutionContextUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ExecutionContextUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *ExecutionContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executioncontext.Table, executioncontext.Columns, sqlgraph.NewFieldSpec(executioncontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(executioncontext.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(executioncontext.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(executioncontext.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(executioncontext.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(executioncontext.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(executioncontext.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(executioncontext.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(executioncontext.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(executioncontext.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(executioncontext.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(executioncontext.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(executioncontext.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executioncontext.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(executioncontext.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(executioncontext.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(executioncontext.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(executioncontext.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executioncontext.SessionTable,
			Columns: []string{executioncontext.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executioncontext.SessionTable,
			Columns: []string{executioncontext.SessionColumn},
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
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executioncontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionContextUpdateOne is the builder for updating a single ExecutionContext entity.
type ExecutionContextUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *ExecutionContextMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetSessionID sets the "session_id" field.
func (_u *ExecutionContextUpdateOne) SetSessionID(v string) *ExecutionContextUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExecutionContextUpdateOne) SetNillableSessionID(v *string) *ExecutionContextUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExecutionContextUpdateOne) ClearSessionID() *ExecutionContextUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ExecutionContextUpdateOne) SetAgentID(v string) *ExecutionContextUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ExecutionContextUpdateOne) SetNillableAgentID(v *string) *ExecutionContextUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ExecutionContextUpdateOne) ClearAgentID() *ExecutionContextUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetScope sets the "scope" field.
func (_u *ExecutionContextUpdateOne) SetScope(v executioncontext.Scope) *ExecutionContextUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ExecutionContextUpdateOne) SetNillableScope(v *executioncontext.Scope) *ExecutionContextUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ExecutionContextUpdateOne) SetData(v map[string]interface{}) *ExecutionContextUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ExecutionContextUpdateOne) ClearData() *ExecutionContextUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ExecutionContextUpdateOne) SetVersion(v int) *ExecutionContextUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ExecutionContextUpdateOne) SetNillableVersion(v *int) *ExecutionContextUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ExecutionContextUpdateOne) AddVersion(v int) *ExecutionContextUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ExecutionContextUpdateOne) SetCreatedBy(v string) *ExecutionContextUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ExecutionContextUpdateOne) SetNillableCreatedBy(v *string) *ExecutionContextUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ExecutionContextUpdateOne) ClearCreatedBy() *ExecutionContextUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExecutionContextUpdateOne) SetMetadata(v map[string]interface{}) *ExecutionContextUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExecutionContextUpdateOne) ClearMetadata() *ExecutionContextUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetHistory sets the "history" field.
func (_u *ExecutionContextUpdateOne) SetHistory(v []map[string]interface{}) *ExecutionContextUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ExecutionContextUpdateOne) AppendHistory(v []map[string]interface{}) *ExecutionContextUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ExecutionContextUpdateOne) ClearHistory() *ExecutionContextUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ExecutionContextUpdateOne) SetExpiresAt(v time.Time) *ExecutionContextUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ExecutionContextUpdateOne) SetNillableExpiresAt(v *time.Time) *ExecutionContextUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ExecutionContextUpdateOne) ClearExpiresAt() *ExecutionContextUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExecutionContextUpdateOne) SetUpdatedAt(v time.Time) *ExecutionContextUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *ExecutionContextUpdateOne) SetSession(v *Session) *ExecutionContextUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ExecutionContextMutation object of the builder.
func (_u *ExecutionContextUpdateOne) Mutation() *ExecutionContextMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *ExecutionContextUpdateOne) ClearSession() *ExecutionContextUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the ExecutionContextUpdate builder.
func (_u *ExecutionContextUpdateOne) Where(ps ...predicate.ExecutionContext) *ExecutionContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionContextUpdateOne) Select(field string, fields ...string) *ExecutionContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionContext entity.
func (_u *ExecutionContextUpdateOne) Save(ctx context.Context) (*ExecutionContext, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionContextUpdateOne) SaveX(ctx context.Context) *ExecutionContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExecutionContextUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := executioncontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionContextUpdateOne) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := executioncontext.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExecutionContext.scope": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionContext.tenant"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *ExecutionContextUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ExecutionContextUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *ExecutionContextUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionContext, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executioncontext.Table, executioncontext.Columns, sqlgraph.NewFieldSpec(executioncontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executioncontext.FieldID)
		for _, f := range fields {
			if !executioncontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executioncontext.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(executioncontext.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(executioncontext.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(executioncontext.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(executioncontext.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(executioncontext.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(executioncontext.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(executioncontext.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(executioncontext.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(executioncontext.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(executioncontext.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(executioncontext.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(executioncontext.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executioncontext.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(executioncontext.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(executioncontext.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(executioncontext.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(executioncontext.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executioncontext.SessionTable,
			Columns: []string{executioncontext.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executioncontext.SessionTable,
			Columns: []string{executioncontext.SessionColumn},
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
	_spec.AddModifiers(_u.modifiers...)
	_node = &ExecutionContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executioncontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
