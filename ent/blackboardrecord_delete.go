// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/blackboardrecord"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// BlackboardRecordDelete is the builder for deleting a BlackboardRecord entity.
type BlackboardRecordDelete struct {
	config
	hooks    []Hook
	mutation *BlackboardRecordMutation
}

// Where appends a list predicates to the BlackboardRecordDelete builder.
func (_d *BlackboardRecordDelete) Where(ps ...predicate.BlackboardRecord) *BlackboardRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BlackboardRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlackboardRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BlackboardRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blackboardrecord.Table, sqlgraph.NewFieldSpec(blackboardrecord.FieldID, field.TypeString))
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

// BlackboardRecordDeleteOne is the builder for deleting a single BlackboardRecord entity.
type BlackboardRecordDeleteOne struct {
	_d *BlackboardRecordDelete
}

// Where appends a list predicates to the BlackboardRecordDelete builder.
func (_d *BlackboardRecordDeleteOne) Where(ps ...predicate.BlackboardRecord) *BlackboardRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BlackboardRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blackboardrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlackboardRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
