// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/cemeteryentry"
)

// CemeteryEntryCreate is the builder for creating a CemeteryEntry entity.
type CemeteryEntryCreate struct {
	config
	mutation *CemeteryEntryMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *CemeteryEntryCreate) SetSessionID(v string) *CemeteryEntryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetClaim sets the "claim" field.
func (_c *CemeteryEntryCreate) SetClaim(v string) *CemeteryEntryCreate {
	_c.mutation.SetClaim(v)
	return _c
}

// SetCauseOfDeath sets the "cause_of_death" field.
func (_c *CemeteryEntryCreate) SetCauseOfDeath(v string) *CemeteryEntryCreate {
	_c.mutation.SetCauseOfDeath(v)
	return _c
}

// SetFinalSupport sets the "final_support" field.
func (_c *CemeteryEntryCreate) SetFinalSupport(v float64) *CemeteryEntryCreate {
	_c.mutation.SetFinalSupport(v)
	return _c
}

// SetCycleKilled sets the "cycle_killed" field.
func (_c *CemeteryEntryCreate) SetCycleKilled(v int) *CemeteryEntryCreate {
	_c.mutation.SetCycleKilled(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CemeteryEntryCreate) SetCreatedAt(v time.Time) *CemeteryEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CemeteryEntryCreate) SetNillableCreatedAt(v *time.Time) *CemeteryEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CemeteryEntryMutation object of the builder.
func (_c *CemeteryEntryCreate) Mutation() *CemeteryEntryMutation {
	return _c.mutation
}

// Save creates the CemeteryEntry in the database.
func (_c *CemeteryEntryCreate) Save(ctx context.Context) (*CemeteryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CemeteryEntryCreate) SaveX(ctx context.Context) *CemeteryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CemeteryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CemeteryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CemeteryEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cemeteryentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CemeteryEntryCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CemeteryEntry.session_id"`)}
	}
	if _, ok := _c.mutation.Claim(); !ok {
		return &ValidationError{Name: "claim", err: errors.New(`ent: missing required field "CemeteryEntry.claim"`)}
	}
	if _, ok := _c.mutation.CauseOfDeath(); !ok {
		return &ValidationError{Name: "cause_of_death", err: errors.New(`ent: missing required field "CemeteryEntry.cause_of_death"`)}
	}
	if _, ok := _c.mutation.FinalSupport(); !ok {
		return &ValidationError{Name: "final_support", err: errors.New(`ent: missing required field "CemeteryEntry.final_support"`)}
	}
	if _, ok := _c.mutation.CycleKilled(); !ok {
		return &ValidationError{Name: "cycle_killed", err: errors.New(`ent: missing required field "CemeteryEntry.cycle_killed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CemeteryEntry.created_at"`)}
	}
	return nil
}

func (_c *CemeteryEntryCreate) sqlSave(ctx context.Context) (*CemeteryEntry, error) {
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

func (_c *CemeteryEntryCreate) createSpec() (*CemeteryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CemeteryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cemeteryentry.Table, sqlgraph.NewFieldSpec(cemeteryentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(cemeteryentry.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Claim(); ok {
		_spec.SetField(cemeteryentry.FieldClaim, field.TypeString, value)
		_node.Claim = value
	}
	if value, ok := _c.mutation.CauseOfDeath(); ok {
		_spec.SetField(cemeteryentry.FieldCauseOfDeath, field.TypeString, value)
		_node.CauseOfDeath = value
	}
	if value, ok := _c.mutation.FinalSupport(); ok {
		_spec.SetField(cemeteryentry.FieldFinalSupport, field.TypeFloat64, value)
		_node.FinalSupport = value
	}
	if value, ok := _c.mutation.CycleKilled(); ok {
		_spec.SetField(cemeteryentry.FieldCycleKilled, field.TypeInt, value)
		_node.CycleKilled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cemeteryentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CemeteryEntryCreateBulk is the builder for creating many CemeteryEntry entities in bulk.
type CemeteryEntryCreateBulk struct {
	config
	err      error
	builders []*CemeteryEntryCreate
}

// Save creates the CemeteryEntry entities in the database.
func (_c *CemeteryEntryCreateBulk) Save(ctx context.Context) ([]*CemeteryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CemeteryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CemeteryEntryMutation)
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
func (_c *CemeteryEntryCreateBulk) SaveX(ctx context.Context) []*CemeteryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CemeteryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CemeteryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
