// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-hq/maestro/ent/executioncontext"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/ent/tenant"
)

// ExecutionContextCreate is the builder for creating a ExecutionContext entity.
type ExecutionContextCreate struct {
	config
	mutation *ExecutionContextMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ExecutionContextCreate) SetTenantID(v string) *ExecutionContextCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExecutionContextCreate) SetSessionID(v string) *ExecutionContextCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ExecutionContextCreate) SetNillableSessionID(v *string) *ExecutionContextCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ExecutionContextCreate) SetAgentID(v string) *ExecutionContextCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *ExecutionContextCreate) SetNillableAgentID(v *string) *ExecutionContextCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetScope sets the "scope" field.
func (_c *ExecutionContextCreate) SetScope(v executioncontext.Scope) *ExecutionContextCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *ExecutionContextCreate) SetNillableScope(v *executioncontext.Scope) *ExecutionContextCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *ExecutionContextCreate) SetData(v map[string]interface{}) *ExecutionContextCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ExecutionContextCreate) SetVersion(v int) *ExecutionContextCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ExecutionContextCreate) SetNillableVersion(v *int) *ExecutionContextCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ExecutionContextCreate) SetCreatedBy(v string) *ExecutionContextCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *ExecutionContextCreate) SetNillableCreatedBy(v *string) *ExecutionContextCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ExecutionContextCreate) SetMetadata(v map[string]interface{}) *ExecutionContextCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetHistory sets the "history" field.
func (_c *ExecutionContextCreate) SetHistory(v []map[string]interface{}) *ExecutionContextCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ExecutionContextCreate) SetExpiresAt(v time.Time) *ExecutionContextCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ExecutionContextCreate) SetNillableExpiresAt(v *time.Time) *ExecutionContextCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionContextCreate) SetCreatedAt(v time.Time) *ExecutionContextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionContextCreate) SetNillableCreatedAt(v *time.Time) *ExecutionContextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExecutionContextCreate) SetUpdatedAt(v time.Time) *ExecutionContextCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExecutionContextCreate) SetNillableUpdatedAt(v *time.Time) *ExecutionContextCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionContextCreate) SetID(v string) *ExecutionContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *ExecutionContextCreate) SetTenant(v *Tenant) *ExecutionContextCreate {
	return _c.SetTenantID(v.ID)
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ExecutionContextCreate) SetSession(v *Session) *ExecutionContextCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ExecutionContextMutation object of the builder.
func (_c *ExecutionContextCreate) Mutation() *ExecutionContextMutation {
	return _c.mutation
}

// Save creates the ExecutionContext in the database.
func (_c *ExecutionContextCreate) Save(ctx context.Context) (*ExecutionContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionContextCreate) SaveX(ctx context.Context) *ExecutionContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionContextCreate) defaults() {
	if _, ok := _c.mutation.Scope(); !ok {
		v := executioncontext.DefaultScope
		_c.mutation.SetScope(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := executioncontext.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executioncontext.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := executioncontext.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionContextCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ExecutionContext.tenant_id"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "ExecutionContext.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := executioncontext.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExecutionContext.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ExecutionContext.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionContext.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExecutionContext.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "ExecutionContext.tenant"`)}
	}
	return nil
}

func (_c *ExecutionContextCreate) sqlSave(ctx context.Context) (*ExecutionContext, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionContextCreate) createSpec() (*ExecutionContext, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executioncontext.Table, sqlgraph.NewFieldSpec(executioncontext.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(executioncontext.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(executioncontext.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(executioncontext.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(executioncontext.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(executioncontext.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(executioncontext.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(executioncontext.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(executioncontext.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executioncontext.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(executioncontext.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executioncontext.TenantTable,
			Columns: []string{executioncontext.TenantColumn},
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
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionContextCreateBulk is the builder for creating many ExecutionContext entities in bulk.
type ExecutionContextCreateBulk struct {
	config
	err      error
	builders []*ExecutionContextCreate
}

// Save creates the ExecutionContext entities in the database.
func (_c *ExecutionContextCreateBulk) Save(ctx context.Context) ([]*ExecutionContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionContextMutation)
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
func (_c *ExecutionContextCreateBulk) SaveX(ctx context.Context) []*ExecutionContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
