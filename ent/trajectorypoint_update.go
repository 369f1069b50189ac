// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/predicate"
	"github.com/dialectic-dev/dialectic/ent/trajectorypoint"
)

// TrajectoryPointUpdate is the builder for updating TrajectoryPoint entities.
type TrajectoryPointUpdate struct {
	config
	hooks    []Hook
	mutation *TrajectoryPointMutation
}

// Where appends a list predicates to the TrajectoryPointUpdate builder.
func (_u *TrajectoryPointUpdate) Where(ps ...predicate.TrajectoryPoint) *TrajectoryPointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the TrajectoryPointMutation object of the builder.
func (_u *TrajectoryPointUpdate) Mutation() *TrajectoryPointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrajectoryPointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrajectoryPointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrajectoryPointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrajectoryPointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrajectoryPointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(trajectorypoint.Table, trajectorypoint.Columns, sqlgraph.NewFieldSpec(trajectorypoint.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trajectorypoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrajectoryPointUpdateOne is the builder for updating a single TrajectoryPoint entity.
type TrajectoryPointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrajectoryPointMutation
}

// Mutation returns the TrajectoryPointMutation object of the builder.
func (_u *TrajectoryPointUpdateOne) Mutation() *TrajectoryPointMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrajectoryPointUpdate builder.
func (_u *TrajectoryPointUpdateOne) Where(ps ...predicate.TrajectoryPoint) *TrajectoryPointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrajectoryPointUpdateOne) Select(field string, fields ...string) *TrajectoryPointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrajectoryPoint entity.
func (_u *TrajectoryPointUpdateOne) Save(ctx context.Context) (*TrajectoryPoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrajectoryPointUpdateOne) SaveX(ctx context.Context) *TrajectoryPoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrajectoryPointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrajectoryPointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrajectoryPointUpdateOne) sqlSave(ctx context.Context) (_node *TrajectoryPoint, err error) {
	_spec := sqlgraph.NewUpdateSpec(trajectorypoint.Table, trajectorypoint.Columns, sqlgraph.NewFieldSpec(trajectorypoint.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrajectoryPoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trajectorypoint.FieldID)
		for _, f := range fields {
			if !trajectorypoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trajectorypoint.FieldID {
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
	_node = &TrajectoryPoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trajectorypoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
