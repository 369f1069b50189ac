// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/predicate"
	"github.com/dialectic-dev/dialectic/ent/trajectorypoint"
)

// TrajectoryPointDelete is the builder for deleting a TrajectoryPoint entity.
type TrajectoryPointDelete struct {
	config
	hooks    []Hook
	mutation *TrajectoryPointMutation
}

// Where appends a list predicates to the TrajectoryPointDelete builder.
func (_d *TrajectoryPointDelete) Where(ps ...predicate.TrajectoryPoint) *TrajectoryPointDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TrajectoryPointDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TrajectoryPointDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TrajectoryPointDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(trajectorypoint.Table, sqlgraph.NewFieldSpec(trajectorypoint.FieldID, field.TypeInt))
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

// TrajectoryPointDeleteOne is the builder for deleting a single TrajectoryPoint entity.
type TrajectoryPointDeleteOne struct {
	_d *TrajectoryPointDelete
}

// Where appends a list predicates to the TrajectoryPointDelete builder.
func (_d *TrajectoryPointDeleteOne) Where(ps ...predicate.TrajectoryPoint) *TrajectoryPointDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TrajectoryPointDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{trajectorypoint.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TrajectoryPointDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
