// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/blackboardsnapshot"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// BlackboardSnapshotDelete is the builder for deleting a BlackboardSnapshot entity.
type BlackboardSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *BlackboardSnapshotMutation
}

// Where appends a list predicates to the BlackboardSnapshotDelete builder.
func (_d *BlackboardSnapshotDelete) Where(ps ...predicate.BlackboardSnapshot) *BlackboardSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BlackboardSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlackboardSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BlackboardSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blackboardsnapshot.Table, sqlgraph.NewFieldSpec(blackboardsnapshot.FieldID, field.TypeInt))
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

// BlackboardSnapshotDeleteOne is the builder for deleting a single BlackboardSnapshot entity.
type BlackboardSnapshotDeleteOne struct {
	_d *BlackboardSnapshotDelete
}

// Where appends a list predicates to the BlackboardSnapshotDelete builder.
func (_d *BlackboardSnapshotDeleteOne) Where(ps ...predicate.BlackboardSnapshot) *BlackboardSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BlackboardSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blackboardsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlackboardSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
