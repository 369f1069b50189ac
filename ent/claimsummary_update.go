// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/claimsummary"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// ClaimSummaryUpdate is the builder for updating ClaimSummary entities.
type ClaimSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimSummaryMutation
}

// Where appends a list predicates to the ClaimSummaryUpdate builder.
func (_u *ClaimSummaryUpdate) Where(ps ...predicate.ClaimSummary) *ClaimSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ClaimSummaryUpdate) SetSummary(v string) *ClaimSummaryUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ClaimSummaryUpdate) SetNillableSummary(v *string) *ClaimSummaryUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetCycle sets the "cycle" field.
func (_u *ClaimSummaryUpdate) SetCycle(v int) *ClaimSummaryUpdate {
	_u.mutation.ResetCycle()
	_u.mutation.SetCycle(v)
	return _u
}

// SetNillableCycle sets the "cycle" field if the given value is not nil.
func (_u *ClaimSummaryUpdate) SetNillableCycle(v *int) *ClaimSummaryUpdate {
	if v != nil {
		_u.SetCycle(*v)
	}
	return _u
}

// AddCycle adds value to the "cycle" field.
func (_u *ClaimSummaryUpdate) AddCycle(v int) *ClaimSummaryUpdate {
	_u.mutation.AddCycle(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimSummaryUpdate) SetUpdatedAt(v time.Time) *ClaimSummaryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ClaimSummaryMutation object of the builder.
func (_u *ClaimSummaryUpdate) Mutation() *ClaimSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimSummaryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimSummaryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claimsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ClaimSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(claimsummary.Table, claimsummary.Columns, sqlgraph.NewFieldSpec(claimsummary.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(claimsummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cycle(); ok {
		_spec.SetField(claimsummary.FieldCycle, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycle(); ok {
		_spec.AddField(claimsummary.FieldCycle, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claimsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claimsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimSummaryUpdateOne is the builder for updating a single ClaimSummary entity.
type ClaimSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimSummaryMutation
}

// SetSummary sets the "summary" field.
func (_u *ClaimSummaryUpdateOne) SetSummary(v string) *ClaimSummaryUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ClaimSummaryUpdateOne) SetNillableSummary(v *string) *ClaimSummaryUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetCycle sets the "cycle" field.
func (_u *ClaimSummaryUpdateOne) SetCycle(v int) *ClaimSummaryUpdateOne {
	_u.mutation.ResetCycle()
	_u.mutation.SetCycle(v)
	return _u
}

// SetNillableCycle sets the "cycle" field if the given value is not nil.
func (_u *ClaimSummaryUpdateOne) SetNillableCycle(v *int) *ClaimSummaryUpdateOne {
	if v != nil {
		_u.SetCycle(*v)
	}
	return _u
}

// AddCycle adds value to the "cycle" field.
func (_u *ClaimSummaryUpdateOne) AddCycle(v int) *ClaimSummaryUpdateOne {
	_u.mutation.AddCycle(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimSummaryUpdateOne) SetUpdatedAt(v time.Time) *ClaimSummaryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ClaimSummaryMutation object of the builder.
func (_u *ClaimSummaryUpdateOne) Mutation() *ClaimSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClaimSummaryUpdate builder.
func (_u *ClaimSummaryUpdateOne) Where(ps ...predicate.ClaimSummary) *ClaimSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimSummaryUpdateOne) Select(field string, fields ...string) *ClaimSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClaimSummary entity.
func (_u *ClaimSummaryUpdateOne) Save(ctx context.Context) (*ClaimSummary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimSummaryUpdateOne) SaveX(ctx context.Context) *ClaimSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimSummaryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claimsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ClaimSummaryUpdateOne) sqlSave(ctx context.Context) (_node *ClaimSummary, err error) {
	_spec := sqlgraph.NewUpdateSpec(claimsummary.Table, claimsummary.Columns, sqlgraph.NewFieldSpec(claimsummary.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClaimSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claimsummary.FieldID)
		for _, f := range fields {
			if !claimsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claimsummary.FieldID {
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
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(claimsummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cycle(); ok {
		_spec.SetField(claimsummary.FieldCycle, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycle(); ok {
		_spec.AddField(claimsummary.FieldCycle, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claimsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ClaimSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claimsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
