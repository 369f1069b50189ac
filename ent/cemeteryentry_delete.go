// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/cemeteryentry"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// CemeteryEntryDelete is the builder for deleting a CemeteryEntry entity.
type CemeteryEntryDelete struct {
	config
	hooks    []Hook
	mutation *CemeteryEntryMutation
}

// Where appends a list predicates to the CemeteryEntryDelete builder.
func (_d *CemeteryEntryDelete) Where(ps ...predicate.CemeteryEntry) *CemeteryEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CemeteryEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CemeteryEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CemeteryEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cemeteryentry.Table, sqlgraph.NewFieldSpec(cemeteryentry.FieldID, field.TypeInt))
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

// CemeteryEntryDeleteOne is the builder for deleting a single CemeteryEntry entity.
type CemeteryEntryDeleteOne struct {
	_d *CemeteryEntryDelete
}

// Where appends a list predicates to the CemeteryEntryDelete builder.
func (_d *CemeteryEntryDeleteOne) Where(ps ...predicate.CemeteryEntry) *CemeteryEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CemeteryEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cemeteryentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CemeteryEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
