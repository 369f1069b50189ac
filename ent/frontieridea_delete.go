// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/frontieridea"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// FrontierIdeaDelete is the builder for deleting a FrontierIdea entity.
type FrontierIdeaDelete struct {
	config
	hooks    []Hook
	mutation *FrontierIdeaMutation
}

// Where appends a list predicates to the FrontierIdeaDelete builder.
func (_d *FrontierIdeaDelete) Where(ps ...predicate.FrontierIdea) *FrontierIdeaDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FrontierIdeaDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FrontierIdeaDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FrontierIdeaDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(frontieridea.Table, sqlgraph.NewFieldSpec(frontieridea.FieldID, field.TypeInt))
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

// FrontierIdeaDeleteOne is the builder for deleting a single FrontierIdea entity.
type FrontierIdeaDeleteOne struct {
	_d *FrontierIdeaDelete
}

// Where appends a list predicates to the FrontierIdeaDelete builder.
func (_d *FrontierIdeaDeleteOne) Where(ps ...predicate.FrontierIdea) *FrontierIdeaDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FrontierIdeaDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{frontieridea.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FrontierIdeaDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
