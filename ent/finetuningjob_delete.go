// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-hq/maestro/ent/finetuningjob"
	"github.com/maestro-hq/maestro/ent/predicate"
)

// FineTuningJobDelete is the builder for deleting a FineTuningJob entity.
type FineTuningJobDelete struct {
	config
	hooks    []Hook
	mutation *FineTuningJobMutation
}

// Where appends a list predicates to the FineTuningJobDelete builder.
func (_d *FineTuningJobDelete) Where(ps ...predicate.FineTuningJob) *FineTuningJobDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FineTuningJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FineTuningJobDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FineTuningJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(finetuningjob.Table, sqlgraph.NewFieldSpec(finetuningjob.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FineTuningJobDeleteOne is the builder for deleting a single FineTuningJob entity.
type FineTuningJobDeleteOne struct {
	_d *FineTuningJobDelete
}

// Where appends a list predicates to the FineTuningJobDelete builder.
func (_d *FineTuningJobDeleteOne) Where(ps ...predicate.FineTuningJob) *FineTuningJobDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FineTuningJobDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{finetuningjob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FineTuningJobDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
