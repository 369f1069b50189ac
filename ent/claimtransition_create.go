// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/claimtransition"
)

// ClaimTransitionCreate is the builder for creating a ClaimTransition entity.
type ClaimTransitionCreate struct {
	config
	mutation *ClaimTransitionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ClaimTransitionCreate) SetSessionID(v string) *ClaimTransitionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCycle sets the "cycle" field.
func (_c *ClaimTransitionCreate) SetCycle(v int) *ClaimTransitionCreate {
	_c.mutation.SetCycle(v)
	return _c
}

// SetTransition sets the "transition" field.
func (_c *ClaimTransitionCreate) SetTransition(v claimtransition.Transition) *ClaimTransitionCreate {
	_c.mutation.SetTransition(v)
	return _c
}

// SetFromClaim sets the "from_claim" field.
func (_c *ClaimTransitionCreate) SetFromClaim(v string) *ClaimTransitionCreate {
	_c.mutation.SetFromClaim(v)
	return _c
}

// SetNillableFromClaim sets the "from_claim" field if the given value is not nil.
func (_c *ClaimTransitionCreate) SetNillableFromClaim(v *string) *ClaimTransitionCreate {
	if v != nil {
		_c.SetFromClaim(*v)
	}
	return _c
}

// SetToClaim sets the "to_claim" field.
func (_c *ClaimTransitionCreate) SetToClaim(v string) *ClaimTransitionCreate {
	_c.mutation.SetToClaim(v)
	return _c
}

// SetNillableToClaim sets the "to_claim" field if the given value is not nil.
func (_c *ClaimTransitionCreate) SetNillableToClaim(v *string) *ClaimTransitionCreate {
	if v != nil {
		_c.SetToClaim(*v)
	}
	return _c
}

// SetFromSupport sets the "from_support" field.
func (_c *ClaimTransitionCreate) SetFromSupport(v float64) *ClaimTransitionCreate {
	_c.mutation.SetFromSupport(v)
	return _c
}

// SetNillableFromSupport sets the "from_support" field if the given value is not nil.
func (_c *ClaimTransitionCreate) SetNillableFromSupport(v *float64) *ClaimTransitionCreate {
	if v != nil {
		_c.SetFromSupport(*v)
	}
	return _c
}

// SetToSupport sets the "to_support" field.
func (_c *ClaimTransitionCreate) SetToSupport(v float64) *ClaimTransitionCreate {
	_c.mutation.SetToSupport(v)
	return _c
}

// SetNillableToSupport sets the "to_support" field if the given value is not nil.
func (_c *ClaimTransitionCreate) SetNillableToSupport(v *float64) *ClaimTransitionCreate {
	if v != nil {
		_c.SetToSupport(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClaimTransitionCreate) SetCreatedAt(v time.Time) *ClaimTransitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClaimTransitionCreate) SetNillableCreatedAt(v *time.Time) *ClaimTransitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ClaimTransitionMutation object of the builder.
func (_c *ClaimTransitionCreate) Mutation() *ClaimTransitionMutation {
	return _c.mutation
}

// Save creates the ClaimTransition in the database.
func (_c *ClaimTransitionCreate) Save(ctx context.Context) (*ClaimTransition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimTransitionCreate) SaveX(ctx context.Context) *ClaimTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimTransitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimTransitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimTransitionCreate) defaults() {
	if _, ok := _c.mutation.FromSupport(); !ok {
		v := claimtransition.DefaultFromSupport
		_c.mutation.SetFromSupport(v)
	}
	if _, ok := _c.mutation.ToSupport(); !ok {
		v := claimtransition.DefaultToSupport
		_c.mutation.SetToSupport(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := claimtransition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimTransitionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ClaimTransition.session_id"`)}
	}
	if _, ok := _c.mutation.Cycle(); !ok {
		return &ValidationError{Name: "cycle", err: errors.New(`ent: missing required field "ClaimTransition.cycle"`)}
	}
	if _, ok := _c.mutation.Transition(); !ok {
		return &ValidationError{Name: "transition", err: errors.New(`ent: missing required field "ClaimTransition.transition"`)}
	}
	if v, ok := _c.mutation.Transition(); ok {
		if err := claimtransition.TransitionValidator(v); err != nil {
			return &ValidationError{Name: "transition", err: fmt.Errorf(`ent: validator failed for field "ClaimTransition.transition": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromSupport(); !ok {
		return &ValidationError{Name: "from_support", err: errors.New(`ent: missing required field "ClaimTransition.from_support"`)}
	}
	if _, ok := _c.mutation.ToSupport(); !ok {
		return &ValidationError{Name: "to_support", err: errors.New(`ent: missing required field "ClaimTransition.to_support"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClaimTransition.created_at"`)}
	}
	return nil
}

func (_c *ClaimTransitionCreate) sqlSave(ctx context.Context) (*ClaimTransition, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClaimTransitionCreate) createSpec() (*ClaimTransition, *sqlgraph.CreateSpec) {
	var (
		_node = &ClaimTransition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claimtransition.Table, sqlgraph.NewFieldSpec(claimtransition.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(claimtransition.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Cycle(); ok {
		_spec.SetField(claimtransition.FieldCycle, field.TypeInt, value)
		_node.Cycle = value
	}
	if value, ok := _c.mutation.Transition(); ok {
		_spec.SetField(claimtransition.FieldTransition, field.TypeEnum, value)
		_node.Transition = value
	}
	if value, ok := _c.mutation.FromClaim(); ok {
		_spec.SetField(claimtransition.FieldFromClaim, field.TypeString, value)
		_node.FromClaim = value
	}
	if value, ok := _c.mutation.ToClaim(); ok {
		_spec.SetField(claimtransition.FieldToClaim, field.TypeString, value)
		_node.ToClaim = value
	}
	if value, ok := _c.mutation.FromSupport(); ok {
		_spec.SetField(claimtransition.FieldFromSupport, field.TypeFloat64, value)
		_node.FromSupport = value
	}
	if value, ok := _c.mutation.ToSupport(); ok {
		_spec.SetField(claimtransition.FieldToSupport, field.TypeFloat64, value)
		_node.ToSupport = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(claimtransition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ClaimTransitionCreateBulk is the builder for creating many ClaimTransition entities in bulk.
type ClaimTransitionCreateBulk struct {
	config
	err      error
	builders []*ClaimTransitionCreate
}

// Save creates the ClaimTransition entities in the database.
func (_c *ClaimTransitionCreateBulk) Save(ctx context.Context) ([]*ClaimTransition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClaimTransition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimTransitionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ClaimTransitionCreateBulk) SaveX(ctx context.Context) []*ClaimTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimTransitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimTransitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
