// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/blackboardsnapshot"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// BlackboardSnapshotUpdate is the builder for updating BlackboardSnapshot entities.
type BlackboardSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *BlackboardSnapshotMutation
}

// Where appends a list predicates to the BlackboardSnapshotUpdate builder.
func (_u *BlackboardSnapshotUpdate) Where(ps ...predicate.BlackboardSnapshot) *BlackboardSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the BlackboardSnapshotMutation object of the builder.
func (_u *BlackboardSnapshotUpdate) Mutation() *BlackboardSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlackboardSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlackboardSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlackboardSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlackboardSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BlackboardSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(blackboardsnapshot.Table, blackboardsnapshot.Columns, sqlgraph.NewFieldSpec(blackboardsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blackboardsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlackboardSnapshotUpdateOne is the builder for updating a single BlackboardSnapshot entity.
type BlackboardSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlackboardSnapshotMutation
}

// Mutation returns the BlackboardSnapshotMutation object of the builder.
func (_u *BlackboardSnapshotUpdateOne) Mutation() *BlackboardSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the BlackboardSnapshotUpdate builder.
func (_u *BlackboardSnapshotUpdateOne) Where(ps ...predicate.BlackboardSnapshot) *BlackboardSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlackboardSnapshotUpdateOne) Select(field string, fields ...string) *BlackboardSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlackboardSnapshot entity.
func (_u *BlackboardSnapshotUpdateOne) Save(ctx context.Context) (*BlackboardSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlackboardSnapshotUpdateOne) SaveX(ctx context.Context) *BlackboardSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlackboardSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlackboardSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BlackboardSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *BlackboardSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(blackboardsnapshot.Table, blackboardsnapshot.Columns, sqlgraph.NewFieldSpec(blackboardsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlackboardSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blackboardsnapshot.FieldID)
		for _, f := range fields {
			if !blackboardsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blackboardsnapshot.FieldID {
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
	_node = &BlackboardSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blackboardsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
