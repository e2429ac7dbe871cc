// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/ent/sessionmetrics"
)

// SessionMetricsCreate is the builder for creating a SessionMetrics entity.
type SessionMetricsCreate struct {
	config
	mutation *SessionMetricsMutation
	hooks    []Hook
}

// SetQueuedAt sets the "queued_at" field.
func (_c *SessionMetricsCreate) SetQueuedAt(v time.Time) *SessionMetricsCreate {
	_c.mutation.SetQueuedAt(v)
	return _c
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableQueuedAt(v *time.Time) *SessionMetricsCreate {
	if v != nil {
		_c.SetQueuedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionMetricsCreate) SetStartedAt(v time.Time) *SessionMetricsCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableStartedAt(v *time.Time) *SessionMetricsCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionMetricsCreate) SetCompletedAt(v time.Time) *SessionMetricsCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableCompletedAt(v *time.Time) *SessionMetricsCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetFailedAt sets the "failed_at" field.
func (_c *SessionMetricsCreate) SetFailedAt(v time.Time) *SessionMetricsCreate {
	_c.mutation.SetFailedAt(v)
	return _c
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableFailedAt(v *time.Time) *SessionMetricsCreate {
	if v != nil {
		_c.SetFailedAt(*v)
	}
	return _c
}

// SetSuccessRate sets the "success_rate" field.
func (_c *SessionMetricsCreate) SetSuccessRate(v float64) *SessionMetricsCreate {
	_c.mutation.SetSuccessRate(v)
	return _c
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableSuccessRate(v *float64) *SessionMetricsCreate {
	if v != nil {
		_c.SetSuccessRate(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SessionMetricsCreate) SetConfidence(v float64) *SessionMetricsCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableConfidence(v *float64) *SessionMetricsCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *SessionMetricsCreate) SetTotalTokens(v int) *SessionMetricsCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableTotalTokens(v *int) *SessionMetricsCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *SessionMetricsCreate) SetCostUsd(v float64) *SessionMetricsCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableCostUsd(v *float64) *SessionMetricsCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetAPICalls sets the "api_calls" field.
func (_c *SessionMetricsCreate) SetAPICalls(v int) *SessionMetricsCreate {
	_c.mutation.SetAPICalls(v)
	return _c
}

// SetNillableAPICalls sets the "api_calls" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableAPICalls(v *int) *SessionMetricsCreate {
	if v != nil {
		_c.SetAPICalls(*v)
	}
	return _c
}

// SetAPIErrors sets the "api_errors" field.
func (_c *SessionMetricsCreate) SetAPIErrors(v int) *SessionMetricsCreate {
	_c.mutation.SetAPIErrors(v)
	return _c
}

// SetNillableAPIErrors sets the "api_errors" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableAPIErrors(v *int) *SessionMetricsCreate {
	if v != nil {
		_c.SetAPIErrors(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *SessionMetricsCreate) SetRetryCount(v int) *SessionMetricsCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableRetryCount(v *int) *SessionMetricsCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetCheckpointCount sets the "checkpoint_count" field.
func (_c *SessionMetricsCreate) SetCheckpointCount(v int) *SessionMetricsCreate {
	_c.mutation.SetCheckpointCount(v)
	return _c
}

// SetNillableCheckpointCount sets the "checkpoint_count" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableCheckpointCount(v *int) *SessionMetricsCreate {
	if v != nil {
		_c.SetCheckpointCount(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *SessionMetricsCreate) SetResult(v map[string]interface{}) *SessionMetricsCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetError sets the "error" field.
func (_c *SessionMetricsCreate) SetError(v map[string]interface{}) *SessionMetricsCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *SessionMetricsCreate) SetWarnings(v []string) *SessionMetricsCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionMetricsCreate) SetCreatedAt(v time.Time) *SessionMetricsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableCreatedAt(v *time.Time) *SessionMetricsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionMetricsCreate) SetUpdatedAt(v time.Time) *SessionMetricsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableUpdatedAt(v *time.Time) *SessionMetricsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionMetricsCreate) SetID(v string) *SessionMetricsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_c *SessionMetricsCreate) SetSessionID(id string) *SessionMetricsCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetNillableSessionID sets the "session" edge to the Session entity by ID if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableSessionID(id *string) *SessionMetricsCreate {
	if id != nil {
		_c = _c.SetSessionID(*id)
	}
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *SessionMetricsCreate) SetSession(v *Session) *SessionMetricsCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SessionMetricsMutation object of the builder.
func (_c *SessionMetricsCreate) Mutation() *SessionMetricsMutation {
	return _c.mutation
}

// Save creates the SessionMetrics in the database.
func (_c *SessionMetricsCreate) Save(ctx context.Context) (*SessionMetrics, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionMetricsCreate) SaveX(ctx context.Context) *SessionMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMetricsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMetricsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionMetricsCreate) defaults() {
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := sessionmetrics.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := sessionmetrics.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.APICalls(); !ok {
		v := sessionmetrics.DefaultAPICalls
		_c.mutation.SetAPICalls(v)
	}
	if _, ok := _c.mutation.APIErrors(); !ok {
		v := sessionmetrics.DefaultAPIErrors
		_c.mutation.SetAPIErrors(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := sessionmetrics.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CheckpointCount(); !ok {
		v := sessionmetrics.DefaultCheckpointCount
		_c.mutation.SetCheckpointCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionmetrics.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionmetrics.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionMetricsCreate) check() error {
	if v, ok := _c.mutation.SuccessRate(); ok {
		if err := sessionmetrics.SuccessRateValidator(v); err != nil {
			return &ValidationError{Name: "success_rate", err: fmt.Errorf(`ent: validator failed for field "SessionMetrics.success_rate": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := sessionmetrics.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "SessionMetrics.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "SessionMetrics.total_tokens"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "SessionMetrics.cost_usd"`)}
	}
	if _, ok := _c.mutation.APICalls(); !ok {
		return &ValidationError{Name: "api_calls", err: errors.New(`ent: missing required field "SessionMetrics.api_calls"`)}
	}
	if _, ok := _c.mutation.APIErrors(); !ok {
		return &ValidationError{Name: "api_errors", err: errors.New(`ent: missing required field "SessionMetrics.api_errors"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "SessionMetrics.retry_count"`)}
	}
	if _, ok := _c.mutation.CheckpointCount(); !ok {
		return &ValidationError{Name: "checkpoint_count", err: errors.New(`ent: missing required field "SessionMetrics.checkpoint_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionMetrics.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionMetrics.updated_at"`)}
	}
	return nil
}

func (_c *SessionMetricsCreate) sqlSave(ctx context.Context) (*SessionMetrics, error) {
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
			return nil, fmt.Errorf("unexpected SessionMetrics.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionMetricsCreate) createSpec() (*SessionMetrics, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionMetrics{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionmetrics.Table, sqlgraph.NewFieldSpec(sessionmetrics.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QueuedAt(); ok {
		_spec.SetField(sessionmetrics.FieldQueuedAt, field.TypeTime, value)
		_node.QueuedAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sessionmetrics.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(sessionmetrics.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.FailedAt(); ok {
		_spec.SetField(sessionmetrics.FieldFailedAt, field.TypeTime, value)
		_node.FailedAt = &value
	}
	if value, ok := _c.mutation.SuccessRate(); ok {
		_spec.SetField(sessionmetrics.FieldSuccessRate, field.TypeFloat64, value)
		_node.SuccessRate = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(sessionmetrics.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(sessionmetrics.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(sessionmetrics.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.APICalls(); ok {
		_spec.SetField(sessionmetrics.FieldAPICalls, field.TypeInt, value)
		_node.APICalls = value
	}
	if value, ok := _c.mutation.APIErrors(); ok {
		_spec.SetField(sessionmetrics.FieldAPIErrors, field.TypeInt, value)
		_node.APIErrors = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(sessionmetrics.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.CheckpointCount(); ok {
		_spec.SetField(sessionmetrics.FieldCheckpointCount, field.TypeInt, value)
		_node.CheckpointCount = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(sessionmetrics.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(sessionmetrics.FieldError, field.TypeJSON, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(sessionmetrics.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionmetrics.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmetrics.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   sessionmetrics.SessionTable,
			Columns: []string{sessionmetrics.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionMetricsCreateBulk is the builder for creating many SessionMetrics entities in bulk.
type SessionMetricsCreateBulk struct {
	config
	err      error
	builders []*SessionMetricsCreate
}

// Save creates the SessionMetrics entities in the database.
func (_c *SessionMetricsCreateBulk) Save(ctx context.Context) ([]*SessionMetrics, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionMetrics, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMetricsMutation)
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
func (_c *SessionMetricsCreateBulk) SaveX(ctx context.Context) []*SessionMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMetricsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMetricsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
