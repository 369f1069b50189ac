// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/claimtransition"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// ClaimTransitionUpdate is the builder for updating ClaimTransition entities.
type ClaimTransitionUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimTransitionMutation
}

// Where appends a list predicates to the ClaimTransitionUpdate builder.
func (_u *ClaimTransitionUpdate) Where(ps ...predicate.ClaimTransition) *ClaimTransitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ClaimTransitionMutation object of the builder.
func (_u *ClaimTransitionUpdate) Mutation() *ClaimTransitionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimTransitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimTransitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimTransitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimTransitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ClaimTransitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(claimtransition.Table, claimtransition.Columns, sqlgraph.NewFieldSpec(claimtransition.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.FromClaimCleared() {
		_spec.ClearField(claimtransition.FieldFromClaim, field.TypeString)
	}
	if _u.mutation.ToClaimCleared() {
		_spec.ClearField(claimtransition.FieldToClaim, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claimtransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimTransitionUpdateOne is the builder for updating a single ClaimTransition entity.
type ClaimTransitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimTransitionMutation
}

// Mutation returns the ClaimTransitionMutation object of the builder.
func (_u *ClaimTransitionUpdateOne) Mutation() *ClaimTransitionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClaimTransitionUpdate builder.
func (_u *ClaimTransitionUpdateOne) Where(ps ...predicate.ClaimTransition) *ClaimTransitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimTransitionUpdateOne) Select(field string, fields ...string) *ClaimTransitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClaimTransition entity.
func (_u *ClaimTransitionUpdateOne) Save(ctx context.Context) (*ClaimTransition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimTransitionUpdateOne) SaveX(ctx context.Context) *ClaimTransition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimTransitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimTransitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ClaimTransitionUpdateOne) sqlSave(ctx context.Context) (_node *ClaimTransition, err error) {
	_spec := sqlgraph.NewUpdateSpec(claimtransition.Table, claimtransition.Columns, sqlgraph.NewFieldSpec(claimtransition.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClaimTransition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claimtransition.FieldID)
		for _, f := range fields {
			if !claimtransition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claimtransition.FieldID {
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
	if _u.mutation.FromClaimCleared() {
		_spec.ClearField(claimtransition.FieldFromClaim, field.TypeString)
	}
	if _u.mutation.ToClaimCleared() {
		_spec.ClearField(claimtransition.FieldToClaim, field.TypeString)
	}
	_node = &ClaimTransition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claimtransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
