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
	"github.com/dialectic-dev/dialectic/ent/frontieridea"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// FrontierIdeaUpdate is the builder for updating FrontierIdea entities.
type FrontierIdeaUpdate struct {
	config
	hooks    []Hook
	mutation *FrontierIdeaMutation
}

// Where appends a list predicates to the FrontierIdeaUpdate builder.
func (_u *FrontierIdeaUpdate) Where(ps ...predicate.FrontierIdea) *FrontierIdeaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSponsorCount sets the "sponsor_count" field.
func (_u *FrontierIdeaUpdate) SetSponsorCount(v int) *FrontierIdeaUpdate {
	_u.mutation.ResetSponsorCount()
	_u.mutation.SetSponsorCount(v)
	return _u
}

// SetNillableSponsorCount sets the "sponsor_count" field if the given value is not nil.
func (_u *FrontierIdeaUpdate) SetNillableSponsorCount(v *int) *FrontierIdeaUpdate {
	if v != nil {
		_u.SetSponsorCount(*v)
	}
	return _u
}

// AddSponsorCount adds value to the "sponsor_count" field.
func (_u *FrontierIdeaUpdate) AddSponsorCount(v int) *FrontierIdeaUpdate {
	_u.mutation.AddSponsorCount(v)
	return _u
}

// SetCyclesAlive sets the "cycles_alive" field.
func (_u *FrontierIdeaUpdate) SetCyclesAlive(v int) *FrontierIdeaUpdate {
	_u.mutation.ResetCyclesAlive()
	_u.mutation.SetCyclesAlive(v)
	return _u
}

// SetNillableCyclesAlive sets the "cycles_alive" field if the given value is not nil.
func (_u *FrontierIdeaUpdate) SetNillableCyclesAlive(v *int) *FrontierIdeaUpdate {
	if v != nil {
		_u.SetCyclesAlive(*v)
	}
	return _u
}

// AddCyclesAlive adds value to the "cycles_alive" field.
func (_u *FrontierIdeaUpdate) AddCyclesAlive(v int) *FrontierIdeaUpdate {
	_u.mutation.AddCyclesAlive(v)
	return _u
}

// SetActivated sets the "activated" field.
func (_u *FrontierIdeaUpdate) SetActivated(v bool) *FrontierIdeaUpdate {
	_u.mutation.SetActivated(v)
	return _u
}

// SetNillableActivated sets the "activated" field if the given value is not nil.
func (_u *FrontierIdeaUpdate) SetNillableActivated(v *bool) *FrontierIdeaUpdate {
	if v != nil {
		_u.SetActivated(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FrontierIdeaUpdate) SetUpdatedAt(v time.Time) *FrontierIdeaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FrontierIdeaMutation object of the builder.
func (_u *FrontierIdeaUpdate) Mutation() *FrontierIdeaMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FrontierIdeaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FrontierIdeaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FrontierIdeaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FrontierIdeaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FrontierIdeaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := frontieridea.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *FrontierIdeaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(frontieridea.Table, frontieridea.Columns, sqlgraph.NewFieldSpec(frontieridea.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SponsorCount(); ok {
		_spec.SetField(frontieridea.FieldSponsorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSponsorCount(); ok {
		_spec.AddField(frontieridea.FieldSponsorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CyclesAlive(); ok {
		_spec.SetField(frontieridea.FieldCyclesAlive, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCyclesAlive(); ok {
		_spec.AddField(frontieridea.FieldCyclesAlive, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Activated(); ok {
		_spec.SetField(frontieridea.FieldActivated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(frontieridea.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{frontieridea.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FrontierIdeaUpdateOne is the builder for updating a single FrontierIdea entity.
type FrontierIdeaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FrontierIdeaMutation
}

// SetSponsorCount sets the "sponsor_count" field.
func (_u *FrontierIdeaUpdateOne) SetSponsorCount(v int) *FrontierIdeaUpdateOne {
	_u.mutation.ResetSponsorCount()
	_u.mutation.SetSponsorCount(v)
	return _u
}

// SetNillableSponsorCount sets the "sponsor_count" field if the given value is not nil.
func (_u *FrontierIdeaUpdateOne) SetNillableSponsorCount(v *int) *FrontierIdeaUpdateOne {
	if v != nil {
		_u.SetSponsorCount(*v)
	}
	return _u
}

// AddSponsorCount adds value to the "sponsor_count" field.
func (_u *FrontierIdeaUpdateOne) AddSponsorCount(v int) *FrontierIdeaUpdateOne {
	_u.mutation.AddSponsorCount(v)
	return _u
}

// SetCyclesAlive sets the "cycles_alive" field.
func (_u *FrontierIdeaUpdateOne) SetCyclesAlive(v int) *FrontierIdeaUpdateOne {
	_u.mutation.ResetCyclesAlive()
	_u.mutation.SetCyclesAlive(v)
	return _u
}

// SetNillableCyclesAlive sets the "cycles_alive" field if the given value is not nil.
func (_u *FrontierIdeaUpdateOne) SetNillableCyclesAlive(v *int) *FrontierIdeaUpdateOne {
	if v != nil {
		_u.SetCyclesAlive(*v)
	}
	return _u
}

// AddCyclesAlive adds value to the "cycles_alive" field.
func (_u *FrontierIdeaUpdateOne) AddCyclesAlive(v int) *FrontierIdeaUpdateOne {
	_u.mutation.AddCyclesAlive(v)
	return _u
}

// SetActivated sets the "activated" field.
func (_u *FrontierIdeaUpdateOne) SetActivated(v bool) *FrontierIdeaUpdateOne {
	_u.mutation.SetActivated(v)
	return _u
}

// SetNillableActivated sets the "activated" field if the given value is not nil.
func (_u *FrontierIdeaUpdateOne) SetNillableActivated(v *bool) *FrontierIdeaUpdateOne {
	if v != nil {
		_u.SetActivated(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FrontierIdeaUpdateOne) SetUpdatedAt(v time.Time) *FrontierIdeaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FrontierIdeaMutation object of the builder.
func (_u *FrontierIdeaUpdateOne) Mutation() *FrontierIdeaMutation {
	return _u.mutation
}

// Where appends a list predicates to the FrontierIdeaUpdate builder.
func (_u *FrontierIdeaUpdateOne) Where(ps ...predicate.FrontierIdea) *FrontierIdeaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FrontierIdeaUpdateOne) Select(field string, fields ...string) *FrontierIdeaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FrontierIdea entity.
func (_u *FrontierIdeaUpdateOne) Save(ctx context.Context) (*FrontierIdea, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FrontierIdeaUpdateOne) SaveX(ctx context.Context) *FrontierIdea {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FrontierIdeaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FrontierIdeaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FrontierIdeaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := frontieridea.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *FrontierIdeaUpdateOne) sqlSave(ctx context.Context) (_node *FrontierIdea, err error) {
	_spec := sqlgraph.NewUpdateSpec(frontieridea.Table, frontieridea.Columns, sqlgraph.NewFieldSpec(frontieridea.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FrontierIdea.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, frontieridea.FieldID)
		for _, f := range fields {
			if !frontieridea.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != frontieridea.FieldID {
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
	if value, ok := _u.mutation.SponsorCount(); ok {
		_spec.SetField(frontieridea.FieldSponsorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSponsorCount(); ok {
		_spec.AddField(frontieridea.FieldSponsorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CyclesAlive(); ok {
		_spec.SetField(frontieridea.FieldCyclesAlive, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCyclesAlive(); ok {
		_spec.AddField(frontieridea.FieldCyclesAlive, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Activated(); ok {
		_spec.SetField(frontieridea.FieldActivated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(frontieridea.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FrontierIdea{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{frontieridea.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
