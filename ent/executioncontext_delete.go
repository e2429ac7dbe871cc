// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-hq/maestro/ent/executioncontext"
	"github.com/maestro-hq/maestro/ent/predicate"
)

// ExecutionContextDelete is the builder for deleting a ExecutionContext entity.
type ExecutionContextDelete struct {
	config
	hooks    []Hook
	mutation *ExecutionContextMutation
}

// Where appends a list predicates to the ExecutionContextDelete builder.
func (_d *ExecutionContextDelete) Where(ps ...predicate.ExecutionContext) *ExecutionContextDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExecutionContextDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExecutionContextDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExecutionContextDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(executioncontext.Table, sqlgraph.NewFieldSpec(executioncontext.FieldID, field.TypeString))
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

// ExecutionContextDeleteOne is the builder for deleting a single ExecutionContext entity.
type ExecutionContextDeleteOne struct {
	_d *ExecutionContextDelete
}

// Where appends a list predicates to the ExecutionContextDelete builder.
func (_d *ExecutionContextDeleteOne) Where(ps ...predicate.ExecutionContext) *ExecutionContextDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExecutionContextDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{executioncontext.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExecutionContextDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
