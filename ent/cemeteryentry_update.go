// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/cemeteryentry"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// CemeteryEntryUpdate is the builder for updating CemeteryEntry entities.
type CemeteryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CemeteryEntryMutation
}

// Where appends a list predicates to the CemeteryEntryUpdate builder.
func (_u *CemeteryEntryUpdate) Where(ps ...predicate.CemeteryEntry) *CemeteryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CemeteryEntryMutation object of the builder.
func (_u *CemeteryEntryUpdate) Mutation() *CemeteryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CemeteryEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CemeteryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CemeteryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CemeteryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CemeteryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(cemeteryentry.Table, cemeteryentry.Columns, sqlgraph.NewFieldSpec(cemeteryentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cemeteryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CemeteryEntryUpdateOne is the builder for updating a single CemeteryEntry entity.
type CemeteryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CemeteryEntryMutation
}

// Mutation returns the CemeteryEntryMutation object of the builder.
func (_u *CemeteryEntryUpdateOne) Mutation() *CemeteryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CemeteryEntryUpdate builder.
func (_u *CemeteryEntryUpdateOne) Where(ps ...predicate.CemeteryEntry) *CemeteryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CemeteryEntryUpdateOne) Select(field string, fields ...string) *CemeteryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CemeteryEntry entity.
func (_u *CemeteryEntryUpdateOne) Save(ctx context.Context) (*CemeteryEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CemeteryEntryUpdateOne) SaveX(ctx context.Context) *CemeteryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CemeteryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CemeteryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CemeteryEntryUpdateOne) sqlSave(ctx context.Context) (_node *CemeteryEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(cemeteryentry.Table, cemeteryentry.Columns, sqlgraph.NewFieldSpec(cemeteryentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CemeteryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cemeteryentry.FieldID)
		for _, f := range fields {
			if !cemeteryentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cemeteryentry.FieldID {
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
	_node = &CemeteryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cemeteryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
