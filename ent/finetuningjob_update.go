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
	"github.com/maestro-hq/maestro/ent/finetuningjob"
	"github.com/maestro-hq/maestro/ent/predicate"
)

// FineTuningJobUpdate is the builder for updating FineTuningJob entities.
type FineTuningJobUpdate struct {
	config
	hooks     []Hook
	mutation  *FineTuningJobMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the FineTuningJobUpdate builder.
func (_u *FineTuningJobUpdate) Where(ps ...predicate.FineTuningJob) *FineTuningJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *FineTuningJobUpdate) SetName(v string) *FineTuningJobUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FineTuningJobUpdate) SetNillableName(v *string) *FineTuningJobUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FineTuningJobUpdate) SetStatus(v finetuningjob.Status) *FineTuningJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FineTuningJobUpdate) SetNillableStatus(v *finetuningjob.Status) *FineTuningJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBaseModel sets the "base_model" field.
func (_u *FineTuningJobUpdate) SetBaseModel(v string) *FineTuningJobUpdate {
	_u.mutation.SetBaseModel(v)
	return _u
}

// SetNillableBaseModel sets the "base_model" field if the given value is not nil.
func (_u *FineTuningJobUpdate) SetNillableBaseModel(v *string) *FineTuningJobUpdate {
	if v != nil {
		_u.SetBaseModel(*v)
	}
	return _u
}

// SetTunedModel sets the "tuned_model" field.
func (_u *FineTuningJobUpdate) SetTunedModel(v string) *FineTuningJobUpdate {
	_u.mutation.SetTunedModel(v)
	return _u
}

// SetNillableTunedModel sets the "tuned_model" field if the given value is not nil.
func (_u *FineTuningJobUpdate) SetNillableTunedModel(v *string) *FineTuningJobUpdate {
	if v != nil {
		_u.SetTunedModel(*v)
	}
	return _u
}

// ClearTunedModel clears the value of the "tuned_model" field.
func (_u *FineTuningJobUpdate) ClearTunedModel() *FineTuningJobUpdate {
	_u.mutation.ClearTunedModel()
	return _u
}

// SetDatasetInfo sets the "dataset_info" field.
func (_u *FineTuningJobUpdate) SetDatasetInfo(v map[string]interface{}) *FineTuningJobUpdate {
	_u.mutation.SetDatasetInfo(v)
	return _u
}

// ClearDatasetInfo clears the value of the "dataset_info" field.
func (_u *FineTuningJobUpdate) ClearDatasetInfo() *FineTuningJobUpdate {
	_u.mutation.ClearDatasetInfo()
	return _u
}

// SetHyperparameters sets the "hyperparameters" field.
func (_u *FineTuningJobUpdate) SetHyperparameters(v map[string]interface{}) *FineTuningJobUpdate {
	_u.mutation.SetHyperparameters(v)
	return _u
}

// ClearHyperparameters clears the value of the "hyperparameters" field.
func (_u *FineTuningJobUpdate) ClearHyperparameters() *FineTuningJobUpdate {
	_u.mutation.ClearHyperparameters()
	return _u
}

// SetEvaluation sets the "evaluation" field.
func (_u *FineTuningJobUpdate) SetEvaluation(v map[string]interface{}) *FineTuningJobUpdate {
	_u.mutation.SetEvaluation(v)
	return _u
}

// ClearEvaluation clears the value of the "evaluation" field.
func (_u *FineTuningJobUpdate) ClearEvaluation() *FineTuningJobUpdate {
	_u.mutation.ClearEvaluation()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FineTuningJobUpdate) SetErrorMessage(v string) *FineTuningJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FineTuningJobUpdate) SetNillableErrorMessage(v *string) *FineTuningJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FineTuningJobUpdate) ClearErrorMessage() *FineTuningJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *FineTuningJobUpdate) SetRetryCount(v int) *FineTuningJobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *FineTuningJobUpdate) SetNillableRetryCount(v *int) *FineTuningJobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *FineTuningJobUpdate) AddRetryCount(v int) *FineTuningJobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *FineTuningJobUpdate) SetStartedAt(v time.Time) *FineTuningJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *FineTuningJobUpdate) SetNillableStartedAt(v *time.Time) *FineTuningJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *FineTuningJobUpdate) ClearStartedAt() *FineTuningJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FineTuningJobUpdate) SetCompletedAt(v time.Time) *FineTuningJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FineTuningJobUpdate) SetNillableCompletedAt(v *time.Time) *FineTuningJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FineTuningJobUpdate) ClearCompletedAt() *FineTuningJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FineTuningJobUpdate) SetUpdatedAt(v time.Time) *FineTuningJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FineTuningJobMutation object of the builder.
func (_u *FineTuningJobUpdate) Mutation() *FineTuningJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FineTuningJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FineTuningJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FineTuningJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FineTuningJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FineTuningJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := finetuningjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FineTuningJobUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := finetuningjob.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FineTuningJob.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := finetuningjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FineTuningJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseModel(); ok {
		if err := finetuningjob.BaseModelValidator(v); err != nil {
			return &ValidationError{Name: "base_model", err: fmt.Errorf(`ent: validator failed for field "FineTuningJob.base_model": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FineTuningJob.tenant"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *FineTuningJobUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *FineTuningJobUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *FineTuningJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finetuningjob.Table, finetuningjob.Columns, sqlgraph.NewFieldSpec(finetuningjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(finetuningjob.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(finetuningjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaseModel(); ok {
		_spec.SetField(finetuningjob.FieldBaseModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TunedModel(); ok {
		_spec.SetField(finetuningjob.FieldTunedModel, field.TypeString, value)
	}
	if _u.mutation.TunedModelCleared() {
		_spec.ClearField(finetuningjob.FieldTunedModel, field.TypeString)
	}
	if value, ok := _u.mutation.DatasetInfo(); ok {
		_spec.SetField(finetuningjob.FieldDatasetInfo, field.TypeJSON, value)
	}
	if _u.mutation.DatasetInfoCleared() {
		_spec.ClearField(finetuningjob.FieldDatasetInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.Hyperparameters(); ok {
		_spec.SetField(finetuningjob.FieldHyperparameters, field.TypeJSON, value)
	}
	if _u.mutation.HyperparametersCleared() {
		_spec.ClearField(finetuningjob.FieldHyperparameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evaluation(); ok {
		_spec.SetField(finetuningjob.FieldEvaluation, field.TypeJSON, value)
	}
	if _u.mutation.EvaluationCleared() {
		_spec.ClearField(finetuningjob.FieldEvaluation, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(finetuningjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(finetuningjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(finetuningjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(finetuningjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(finetuningjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(finetuningjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(finetuningjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(finetuningjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(finetuningjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finetuningjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FineTuningJobUpdateOne is the builder for updating a single FineTuningJob entity.
type FineTuningJobUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *FineTuningJobMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetName sets the "name" field.
func (_u *FineTuningJobUpdateOne) SetName(v string) *FineTuningJobUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FineTuningJobUpdateOne) SetNillableName(v *string) *FineTuningJobUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FineTuningJobUpdateOne) SetStatus(v finetuningjob.Status) *FineTuningJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FineTuningJobUpdateOne) SetNillableStatus(v *finetuningjob.Status) *FineTuningJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBaseModel sets the "base_model" field.
func (_u *FineTuningJobUpdateOne) SetBaseModel(v string) *FineTuningJobUpdateOne {
	_u.mutation.SetBaseModel(v)
	return _u
}

// SetNillableBaseModel sets the "base_model" field if the given value is not nil.
func (_u *FineTuningJobUpdateOne) SetNillableBaseModel(v *string) *FineTuningJobUpdateOne {
	if v != nil {
		_u.SetBaseModel(*v)
	}
	return _u
}

// SetTunedModel sets the "tuned_model" field.
func (_u *FineTuningJobUpdateOne) SetTunedModel(v string) *FineTuningJobUpdateOne {
	_u.mutation.SetTunedModel(v)
	return _u
}

// SetNillableTunedModel sets the "tuned_model" field if the given value is not nil.
func (_u *FineTuningJobUpdateOne) SetNillableTunedModel(v *string) *FineTuningJobUpdateOne {
	if v != nil {
		_u.SetTunedModel(*v)
	}
	return _u
}

// ClearTunedModel clears the value of the "tuned_model" field.
func (_u *FineTuningJobUpdateOne) ClearTunedModel() *FineTuningJobUpdateOne {
	_u.mutation.ClearTunedModel()
	return _u
}

// SetDatasetInfo sets the "dataset_info" field.
func (_u *FineTuningJobUpdateOne) SetDatasetInfo(v map[string]interface{}) *FineTuningJobUpdateOne {
	_u.mutation.SetDatasetInfo(v)
	return _u
}

// ClearDatasetInfo clears the value of the "dataset_info" field.
func (_u *FineTuningJobUpdateOne) ClearDatasetInfo() *FineTuningJobUpdateOne {
	_u.mutation.ClearDatasetInfo()
	return _u
}

// SetHyperparameters sets the "hyperparameters" field.
func (_u *FineTuningJobUpdateOne) SetHyperparameters(v map[string]interface{}) *FineTuningJobUpdateOne {
	_u.mutation.SetHyperparameters(v)
	return _u
}

// ClearHyperparameters clears the value of the "hyperparameters" field.
func (_u *FineTuningJobUpdateOne) ClearHyperparameters() *FineTuningJobUpdateOne {
	_u.mutation.ClearHyperparameters()
	return _u
}

// SetEvaluation sets the "evaluation" field.
func (_u *FineTuningJobUpdateOne) SetEvaluation(v map[string]interface{}) *FineTuningJobUpdateOne {
	_u.mutation.SetEvaluation(v)
	return _u
}

// ClearEvaluation clears the value of the "evaluation" field.
func (_u *FineTuningJobUpdateOne) ClearEvaluation() *FineTuningJobUpdateOne {
	_u.mutation.ClearEvaluation()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FineTuningJobUpdateOne) SetErrorMessage(v string) *FineTuningJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FineTuningJobUpdateOne) SetNillableErrorMessage(v *string) *FineTuningJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FineTuningJobUpdateOne) ClearErrorMessage() *FineTuningJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *FineTuningJobUpdateOne) SetRetryCount(v int) *FineTuningJobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *FineTuningJobUpdateOne) SetNillableRetryCount(v *int) *FineTuningJobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *FineTuningJobUpdateOne) AddRetryCount(v int) *FineTuningJobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *FineTuningJobUpdateOne) SetStartedAt(v time.Time) *FineTuningJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *FineTuningJobUpdateOne) SetNillableStartedAt(v *time.Time) *FineTuningJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *FineTuningJobUpdateOne) ClearStartedAt() *FineTuningJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FineTuningJobUpdateOne) SetCompletedAt(v time.Time) *FineTuningJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FineTuningJobUpdateOne) SetNillableCompletedAt(v *time.Time) *FineTuningJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FineTuningJobUpdateOne) ClearCompletedAt() *FineTuningJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FineTuningJobUpdateOne) SetUpdatedAt(v time.Time) *FineTuningJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FineTuningJobMutation object of the builder.
func (_u *FineTuningJobUpdateOne) Mutation() *FineTuningJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the FineTuningJobUpdate builder.
func (_u *FineTuningJobUpdateOne) Where(ps ...predicate.FineTuningJob) *FineTuningJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FineTuningJobUpdateOne) Select(field string, fields ...string) *FineTuningJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FineTuningJob entity.
func (_u *FineTuningJobUpdateOne) Save(ctx context.Context) (*FineTuningJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FineTuningJobUpdateOne) SaveX(ctx context.Context) *FineTuningJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FineTuningJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FineTuningJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FineTuningJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := finetuningjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FineTuningJobUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := finetuningjob.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FineTuningJob.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := finetuningjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FineTuningJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseModel(); ok {
		if err := finetuningjob.BaseModelValidator(v); err != nil {
			return &ValidationError{Name: "base_model", err: fmt.Errorf(`ent: validator failed for field "FineTuningJob.base_model": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FineTuningJob.tenant"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *FineTuningJobUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *FineTuningJobUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *FineTuningJobUpdateOne) sqlSave(ctx context.Context) (_node *FineTuningJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finetuningjob.Table, finetuningjob.Columns, sqlgraph.NewFieldSpec(finetuningjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FineTuningJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, finetuningjob.FieldID)
		for _, f := range fields {
			if !finetuningjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != finetuningjob.FieldID {
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
		_spec.SetField(finetuningjob.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(finetuningjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaseModel(); ok {
		_spec.SetField(finetuningjob.FieldBaseModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TunedModel(); ok {
		_spec.SetField(finetuningjob.FieldTunedModel, field.TypeString, value)
	}
	if _u.mutation.TunedModelCleared() {
		_spec.ClearField(finetuningjob.FieldTunedModel, field.TypeString)
	}
	if value, ok := _u.mutation.DatasetInfo(); ok {
		_spec.SetField(finetuningjob.FieldDatasetInfo, field.TypeJSON, value)
	}
	if _u.mutation.DatasetInfoCleared() {
		_spec.ClearField(finetuningjob.FieldDatasetInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.Hyperparameters(); ok {
		_spec.SetField(finetuningjob.FieldHyperparameters, field.TypeJSON, value)
	}
	if _u.mutation.HyperparametersCleared() {
		_spec.ClearField(finetuningjob.FieldHyperparameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evaluation(); ok {
		_spec.SetField(finetuningjob.FieldEvaluation, field.TypeJSON, value)
	}
	if _u.mutation.EvaluationCleared() {
		_spec.ClearField(finetuningjob.FieldEvaluation, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(finetuningjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(finetuningjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(finetuningjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(finetuningjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(finetuningjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(finetuningjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(finetuningjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(finetuningjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(finetuningjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &FineTuningJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finetuningjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
