// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-hq/maestro/ent/finetuningjob"
	"github.com/maestro-hq/maestro/ent/tenant"
)

// FineTuningJobCreate is the builder for creating a FineTuningJob entity.
type FineTuningJobCreate struct {
	config
	mutation *FineTuningJobMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *FineTuningJobCreate) SetTenantID(v string) *FineTuningJobCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *FineTuningJobCreate) SetName(v string) *FineTuningJobCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FineTuningJobCreate) SetStatus(v finetuningjob.Status) *FineTuningJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FineTuningJobCreate) SetNillableStatus(v *finetuningjob.Status) *FineTuningJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBaseModel sets the "base_model" field.
func (_c *FineTuningJobCreate) SetBaseModel(v string) *FineTuningJobCreate {
	_c.mutation.SetBaseModel(v)
	return _c
}

// SetTunedModel sets the "tuned_model" field.
func (_c *FineTuningJobCreate) SetTunedModel(v string) *FineTuningJobCreate {
	_c.mutation.SetTunedModel(v)
	return _c
}

// SetNillableTunedModel sets the "tuned_model" field if the given value is not nil.
func (_c *FineTuningJobCreate) SetNillableTunedModel(v *string) *FineTuningJobCreate {
	if v != nil {
		_c.SetTunedModel(*v)
	}
	return _c
}

// SetDatasetInfo sets the "dataset_info" field.
func (_c *FineTuningJobCreate) SetDatasetInfo(v map[string]interface{}) *FineTuningJobCreate {
	_c.mutation.SetDatasetInfo(v)
	return _c
}

// SetHyperparameters sets the "hyperparameters" field.
func (_c *FineTuningJobCreate) SetHyperparameters(v map[string]interface{}) *FineTuningJobCreate {
	_c.mutation.SetHyperparameters(v)
	return _c
}

// SetEvaluation sets the "evaluation" field.
func (_c *FineTuningJobCreate) SetEvaluation(v map[string]interface{}) *FineTuningJobCreate {
	_c.mutation.SetEvaluation(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FineTuningJobCreate) SetErrorMessage(v string) *FineTuningJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *FineTuningJobCreate) SetNillableErrorMessage(v *string) *FineTuningJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *FineTuningJobCreate) SetRetryCount(v int) *FineTuningJobCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *FineTuningJobCreate) SetNillableRetryCount(v *int) *FineTuningJobCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *FineTuningJobCreate) SetStartedAt(v time.Time) *FineTuningJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *FineTuningJobCreate) SetNillableStartedAt(v *time.Time) *FineTuningJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *FineTuningJobCreate) SetCompletedAt(v time.Time) *FineTuningJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *FineTuningJobCreate) SetNillableCompletedAt(v *time.Time) *FineTuningJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FineTuningJobCreate) SetCreatedAt(v time.Time) *FineTuningJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FineTuningJobCreate) SetNillableCreatedAt(v *time.Time) *FineTuningJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FineTuningJobCreate) SetUpdatedAt(v time.Time) *FineTuningJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FineTuningJobCreate) SetNillableUpdatedAt(v *time.Time) *FineTuningJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FineTuningJobCreate) SetID(v string) *FineTuningJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *FineTuningJobCreate) SetTenant(v *Tenant) *FineTuningJobCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the FineTuningJobMutation object of the builder.
func (_c *FineTuningJobCreate) Mutation() *FineTuningJobMutation {
	return _c.mutation
}

// Save creates the FineTuningJob in the database.
func (_c *FineTuningJobCreate) Save(ctx context.Context) (*FineTuningJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FineTuningJobCreate) SaveX(ctx context.Context) *FineTuningJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FineTuningJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FineTuningJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FineTuningJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := finetuningjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := finetuningjob.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := finetuningjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := finetuningjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FineTuningJobCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "FineTuningJob.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "FineTuningJob.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := finetuningjob.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FineTuningJob.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FineTuningJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := finetuningjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FineTuningJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaseModel(); !ok {
		return &ValidationError{Name: "base_model", err: errors.New(`ent: missing required field "FineTuningJob.base_model"`)}
	}
	if v, ok := _c.mutation.BaseModel(); ok {
		if err := finetuningjob.BaseModelValidator(v); err != nil {
			return &ValidationError{Name: "base_model", err: fmt.Errorf(`ent: validator failed for field "FineTuningJob.base_model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "FineTuningJob.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FineTuningJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FineTuningJob.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "FineTuningJob.tenant"`)}
	}
	return nil
}

func (_c *FineTuningJobCreate) sqlSave(ctx context.Context) (*FineTuningJob, error) {
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
			return nil, fmt.Errorf("unexpected FineTuningJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FineTuningJobCreate) createSpec() (*FineTuningJob, *sqlgraph.CreateSpec) {
	var (
		_node = &FineTuningJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(finetuningjob.Table, sqlgraph.NewFieldSpec(finetuningjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(finetuningjob.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(finetuningjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BaseModel(); ok {
		_spec.SetField(finetuningjob.FieldBaseModel, field.TypeString, value)
		_node.BaseModel = value
	}
	if value, ok := _c.mutation.TunedModel(); ok {
		_spec.SetField(finetuningjob.FieldTunedModel, field.TypeString, value)
		_node.TunedModel = &value
	}
	if value, ok := _c.mutation.DatasetInfo(); ok {
		_spec.SetField(finetuningjob.FieldDatasetInfo, field.TypeJSON, value)
		_node.DatasetInfo = value
	}
	if value, ok := _c.mutation.Hyperparameters(); ok {
		_spec.SetField(finetuningjob.FieldHyperparameters, field.TypeJSON, value)
		_node.Hyperparameters = value
	}
	if value, ok := _c.mutation.Evaluation(); ok {
		_spec.SetField(finetuningjob.FieldEvaluation, field.TypeJSON, value)
		_node.Evaluation = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(finetuningjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(finetuningjob.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(finetuningjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(finetuningjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(finetuningjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(finetuningjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   finetuningjob.TenantTable,
			Columns: []string{finetuningjob.TenantColumn},
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
	return _node, _spec
}

// FineTuningJobCreateBulk is the builder for creating many FineTuningJob entities in bulk.
type FineTuningJobCreateBulk struct {
	config
	err      error
	builders []*FineTuningJobCreate
}

// Save creates the FineTuningJob entities in the database.
func (_c *FineTuningJobCreateBulk) Save(ctx context.Context) ([]*FineTuningJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FineTuningJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FineTuningJobMutation)
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
func (_c *FineTuningJobCreateBulk) SaveX(ctx context.Context) []*FineTuningJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FineTuningJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FineTuningJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
