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
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/ent/sessionmetrics"
)

// SessionMetricsUpdate is the builder for updating SessionMetrics entities.
type SessionMetricsUpdate struct {
	config
	hooks     []Hook
	mutation  *SessionMetricsMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the SessionMetricsUpdate builder.
func (_u *SessionMetricsUpdate) Where(ps ...predicate.SessionMetrics) *SessionMetricsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQueuedAt sets the "queued_at" field.
func (_u *SessionMetricsUpdate) SetQueuedAt(v time.Time) *SessionMetricsUpdate {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableQueuedAt(v *time.Time) *SessionMetricsUpdate {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (_u *SessionMetricsUpdate) ClearQueuedAt() *SessionMetricsUpdate {
	_u.mutation.ClearQueuedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionMetricsUpdate) SetStartedAt(v time.Time) *SessionMetricsUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableStartedAt(v *time.Time) *SessionMetricsUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionMetricsUpdate) ClearStartedAt() *SessionMetricsUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionMetricsUpdate) SetCompletedAt(v time.Time) *SessionMetricsUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableCompletedAt(v *time.Time) *SessionMetricsUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionMetricsUpdate) ClearCompletedAt() *SessionMetricsUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *SessionMetricsUpdate) SetFailedAt(v time.Time) *SessionMetricsUpdate {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableFailedAt(v *time.Time) *SessionMetricsUpdate {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *SessionMetricsUpdate) ClearFailedAt() *SessionMetricsUpdate {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *SessionMetricsUpdate) SetSuccessRate(v float64) *SessionMetricsUpdate {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableSuccessRate(v *float64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *SessionMetricsUpdate) AddSuccessRate(v float64) *SessionMetricsUpdate {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// ClearSuccessRate clears the value of the "success_rate" field.
func (_u *SessionMetricsUpdate) ClearSuccessRate() *SessionMetricsUpdate {
	_u.mutation.ClearSuccessRate()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SessionMetricsUpdate) SetConfidence(v float64) *SessionMetricsUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableConfidence(v *float64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SessionMetricsUpdate) AddConfidence(v float64) *SessionMetricsUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *SessionMetricsUpdate) ClearConfidence() *SessionMetricsUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *SessionMetricsUpdate) SetTotalTokens(v int) *SessionMetricsUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableTotalTokens(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *SessionMetricsUpdate) AddTotalTokens(v int) *SessionMetricsUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *SessionMetricsUpdate) SetCostUsd(v float64) *SessionMetricsUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableCostUsd(v *float64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *SessionMetricsUpdate) AddCostUsd(v float64) *SessionMetricsUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetAPICalls sets the "api_calls" field.
func (_u *SessionMetricsUpdate) SetAPICalls(v int) *SessionMetricsUpdate {
	_u.mutation.ResetAPICalls()
	_u.mutation.SetAPICalls(v)
	return _u
}

// SetNillableAPICalls sets the "api_calls" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableAPICalls(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetAPICalls(*v)
	}
	return _u
}

// AddAPICalls adds value to the "api_calls" field.
func (_u *SessionMetricsUpdate) AddAPICalls(v int) *SessionMetricsUpdate {
	_u.mutation.AddAPICalls(v)
	return _u
}

// SetAPIErrors sets the "api_errors" field.
func (_u *SessionMetricsUpdate) SetAPIErrors(v int) *SessionMetricsUpdate {
	_u.mutation.ResetAPIErrors()
	_u.mutation.SetAPIErrors(v)
	return _u
}

// SetNillableAPIErrors sets the "api_errors" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableAPIErrors(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetAPIErrors(*v)
	}
	return _u
}

// AddAPIErrors adds value to the "api_errors" field.
func (_u *SessionMetricsUpdate) AddAPIErrors(v int) *SessionMetricsUpdate {
	_u.mutation.AddAPIErrors(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SessionMetricsUpdate) SetRetryCount(v int) *SessionMetricsUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableRetryCount(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SessionMetricsUpdate) AddRetryCount(v int) *SessionMetricsUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCheckpointCount sets the "checkpoint_count" field.
func (_u *SessionMetricsUpdate) SetCheckpointCount(v int) *SessionMetricsUpdate {
	_u.mutation.ResetCheckpointCount()
	_u.mutation.SetCheckpointCount(v)
	return _u
}

// SetNillableCheckpointCount sets the "checkpoint_count" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableCheckpointCount(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetCheckpointCount(*v)
	}
	return _u
}

// AddCheckpointCount adds value to the "checkpoint_count" field.
func (_u *SessionMetricsUpdate) AddCheckpointCount(v int) *SessionMetricsUpdate {
	_u.mutation.AddCheckpointCount(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *SessionMetricsUpdate) SetResult(v map[string]interface{}) *SessionMetricsUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *SessionMetricsUpdate) ClearResult() *SessionMetricsUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *SessionMetricsUpdate) SetError(v map[string]interface{}) *SessionMetricsUpdate {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SessionMetricsUpdate) ClearError() *SessionMetricsUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *SessionMetricsUpdate) SetWarnings(v []string) *SessionMetricsUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *SessionMetricsUpdate) AppendWarnings(v []string) *SessionMetricsUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *SessionMetricsUpdate) ClearWarnings() *SessionMetricsUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionMetricsUpdate) SetUpdatedAt(v time.Time) *SessionMetricsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *SessionMetricsUpdate) SetSessionID(id string) *SessionMetricsUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the Session entity by ID if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableSessionID(id *string) *SessionMetricsUpdate {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *SessionMetricsUpdate) SetSession(v *Session) *SessionMetricsUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SessionMetricsMutation object of the builder.
func (_u *SessionMetricsUpdate) Mutation() *SessionMetricsMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *SessionMetricsUpdate) ClearSession() *SessionMetricsUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionMetricsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMetricsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionMetricsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMetricsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionMetricsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionmetrics.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMetricsUpdate) check() error {
	if v, ok := _u.mutation.SuccessRate(); ok {
		if err := sessionmetrics.SuccessRateValidator(v); err != nil {
			return &ValidationError{Name: "success_rate", err: fmt.Errorf(`ent: validator failed for field "SessionMetrics.success_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := sessionmetrics.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "SessionMetrics.confidence": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SessionMetricsUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SessionMetricsUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SessionMetricsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmetrics.Table, sessionmetrics.Columns, sqlgraph.NewFieldSpec(sessionmetrics.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(sessionmetrics.FieldQueuedAt, field.TypeTime, value)
	}
	if _u.mutation.QueuedAtCleared() {
		_spec.ClearField(sessionmetrics.FieldQueuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionmetrics.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sessionmetrics.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sessionmetrics.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sessionmetrics.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(sessionmetrics.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(sessionmetrics.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(sessionmetrics.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(sessionmetrics.FieldSuccessRate, field.TypeFloat64, value)
	}
	if _u.mutation.SuccessRateCleared() {
		_spec.ClearField(sessionmetrics.FieldSuccessRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(sessionmetrics.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(sessionmetrics.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(sessionmetrics.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(sessionmetrics.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(sessionmetrics.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(sessionmetrics.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(sessionmetrics.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.APICalls(); ok {
		_spec.SetField(sessionmetrics.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPICalls(); ok {
		_spec.AddField(sessionmetrics.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APIErrors(); ok {
		_spec.SetField(sessionmetrics.FieldAPIErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPIErrors(); ok {
		_spec.AddField(sessionmetrics.FieldAPIErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(sessionmetrics.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(sessionmetrics.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CheckpointCount(); ok {
		_spec.SetField(sessionmetrics.FieldCheckpointCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCheckpointCount(); ok {
		_spec.AddField(sessionmetrics.FieldCheckpointCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(sessionmetrics.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(sessionmetrics.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(sessionmetrics.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(sessionmetrics.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(sessionmetrics.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionmetrics.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(sessionmetrics.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmetrics.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionMetricsUpdateOne is the builder for updating a single SessionMetrics entity.
type SessionMetricsUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *SessionMetricsMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetQueuedAt sets the "queued_at" field.
func (_u *SessionMetricsUpdateOne) SetQueuedAt(v time.Time) *SessionMetricsUpdateOne {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableQueuedAt(v *time.Time) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (_u *SessionMetricsUpdateOne) ClearQueuedAt() *SessionMetricsUpdateOne {
	_u.mutation.ClearQueuedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionMetricsUpdateOne) SetStartedAt(v time.Time) *SessionMetricsUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableStartedAt(v *time.Time) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionMetricsUpdateOne) ClearStartedAt() *SessionMetricsUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionMetricsUpdateOne) SetCompletedAt(v time.Time) *SessionMetricsUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableCompletedAt(v *time.Time) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionMetricsUpdateOne) ClearCompletedAt() *SessionMetricsUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *SessionMetricsUpdateOne) SetFailedAt(v time.Time) *SessionMetricsUpdateOne {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableFailedAt(v *time.Time) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *SessionMetricsUpdateOne) ClearFailedAt() *SessionMetricsUpdateOne {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *SessionMetricsUpdateOne) SetSuccessRate(v float64) *SessionMetricsUpdateOne {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableSuccessRate(v *float64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *SessionMetricsUpdateOne) AddSuccessRate(v float64) *SessionMetricsUpdateOne {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// ClearSuccessRate clears the value of the "success_rate" field.
func (_u *SessionMetricsUpdateOne) ClearSuccessRate() *SessionMetricsUpdateOne {
	_u.mutation.ClearSuccessRate()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SessionMetricsUpdateOne) SetConfidence(v float64) *SessionMetricsUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableConfidence(v *float64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SessionMetricsUpdateOne) AddConfidence(v float64) *SessionMetricsUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *SessionMetricsUpdateOne) ClearConfidence() *SessionMetricsUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *SessionMetricsUpdateOne) SetTotalTokens(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableTotalTokens(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *SessionMetricsUpdateOne) AddTotalTokens(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *SessionMetricsUpdateOne) SetCostUsd(v float64) *SessionMetricsUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableCostUsd(v *float64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *SessionMetricsUpdateOne) AddCostUsd(v float64) *SessionMetricsUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetAPICalls sets the "api_calls" field.
func (_u *SessionMetricsUpdateOne) SetAPICalls(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetAPICalls()
	_u.mutation.SetAPICalls(v)
	return _u
}

// SetNillableAPICalls sets the "api_calls" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableAPICalls(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetAPICalls(*v)
	}
	return _u
}

// AddAPICalls adds value to the "api_calls" field.
func (_u *SessionMetricsUpdateOne) AddAPICalls(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddAPICalls(v)
	return _u
}

// SetAPIErrors sets the "api_errors" field.
func (_u *SessionMetricsUpdateOne) SetAPIErrors(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetAPIErrors()
	_u.mutation.SetAPIErrors(v)
	return _u
}

// SetNillableAPIErrors sets the "api_errors" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableAPIErrors(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetAPIErrors(*v)
	}
	return _u
}

// AddAPIErrors adds value to the "api_errors" field.
func (_u *SessionMetricsUpdateOne) AddAPIErrors(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddAPIErrors(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SessionMetricsUpdateOne) SetRetryCount(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableRetryCount(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SessionMetricsUpdateOne) AddRetryCount(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCheckpointCount sets the "checkpoint_count" field.
func (_u *SessionMetricsUpdateOne) SetCheckpointCount(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetCheckpointCount()
	_u.mutation.SetCheckpointCount(v)
	return _u
}

// SetNillableCheckpointCount sets the "checkpoint_count" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableCheckpointCount(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetCheckpointCount(*v)
	}
	return _u
}

// AddCheckpointCount adds value to the "checkpoint_count" field.
func (_u *SessionMetricsUpdateOne) AddCheckpointCount(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddCheckpointCount(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *SessionMetricsUpdateOne) SetResult(v map[string]interface{}) *SessionMetricsUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *SessionMetricsUpdateOne) ClearResult() *SessionMetricsUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *SessionMetricsUpdateOne) SetError(v map[string]interface{}) *SessionMetricsUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SessionMetricsUpdateOne) ClearError() *SessionMetricsUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *SessionMetricsUpdateOne) SetWarnings(v []string) *SessionMetricsUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *SessionMetricsUpdateOne) AppendWarnings(v []string) *SessionMetricsUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *SessionMetricsUpdateOne) ClearWarnings() *SessionMetricsUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionMetricsUpdateOne) SetUpdatedAt(v time.Time) *SessionMetricsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *SessionMetricsUpdateOne) SetSessionID(id string) *SessionMetricsUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the Session entity by ID if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableSessionID(id *string) *SessionMetricsUpdateOne {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *SessionMetricsUpdateOne) SetSession(v *Session) *SessionMetricsUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SessionMetricsMutation object of the builder.
func (_u *SessionMetricsUpdateOne) Mutation() *SessionMetricsMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *SessionMetricsUpdateOne) ClearSession() *SessionMetricsUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the SessionMetricsUpdate builder.
func (_u *SessionMetricsUpdateOne) Where(ps ...predicate.SessionMetrics) *SessionMetricsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionMetricsUpdateOne) Select(field string, fields ...string) *SessionMetricsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionMetrics entity.
func (_u *SessionMetricsUpdateOne) Save(ctx context.Context) (*SessionMetrics, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMetricsUpdateOne) SaveX(ctx context.Context) *SessionMetrics {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionMetricsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMetricsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionMetricsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionmetrics.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMetricsUpdateOne) check() error {
	if v, ok := _u.mutation.SuccessRate(); ok {
		if err := sessionmetrics.SuccessRateValidator(v); err != nil {
			return &ValidationError{Name: "success_rate", err: fmt.Errorf(`ent: validator failed for field "SessionMetrics.success_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := sessionmetrics.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "SessionMetrics.confidence": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SessionMetricsUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SessionMetricsUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SessionMetricsUpdateOne) sqlSave(ctx context.Context) (_node *SessionMetrics, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmetrics.Table, sessionmetrics.Columns, sqlgraph.NewFieldSpec(sessionmetrics.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionMetrics.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionmetrics.FieldID)
		for _, f := range fields {
			if !sessionmetrics.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionmetrics.FieldID {
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
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(sessionmetrics.FieldQueuedAt, field.TypeTime, value)
	}
	if _u.mutation.QueuedAtCleared() {
		_spec.ClearField(sessionmetrics.FieldQueuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionmetrics.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sessionmetrics.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sessionmetrics.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sessionmetrics.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(sessionmetrics.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(sessionmetrics.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(sessionmetrics.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(sessionmetrics.FieldSuccessRate, field.TypeFloat64, value)
	}
	if _u.mutation.SuccessRateCleared() {
		_spec.ClearField(sessionmetrics.FieldSuccessRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(sessionmetrics.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(sessionmetrics.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(sessionmetrics.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(sessionmetrics.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(sessionmetrics.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(sessionmetrics.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(sessionmetrics.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.APICalls(); ok {
		_spec.SetField(sessionmetrics.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPICalls(); ok {
		_spec.AddField(sessionmetrics.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APIErrors(); ok {
		_spec.SetField(sessionmetrics.FieldAPIErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPIErrors(); ok {
		_spec.AddField(sessionmetrics.FieldAPIErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(sessionmetrics.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(sessionmetrics.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CheckpointCount(); ok {
		_spec.SetField(sessionmetrics.FieldCheckpointCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCheckpointCount(); ok {
		_spec.AddField(sessionmetrics.FieldCheckpointCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(sessionmetrics.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(sessionmetrics.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(sessionmetrics.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(sessionmetrics.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(sessionmetrics.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionmetrics.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(sessionmetrics.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmetrics.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &SessionMetrics{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
