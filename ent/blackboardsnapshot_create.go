// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/blackboardsnapshot"
)

// BlackboardSnapshotCreate is the builder for creating a BlackboardSnapshot entity.
type BlackboardSnapshotCreate struct {
	config
	mutation *BlackboardSnapshotMutation
	hooks    []Hook
}

// SetBlackboardID sets the "blackboard_id" field.
func (_c *BlackboardSnapshotCreate) SetBlackboardID(v string) *BlackboardSnapshotCreate {
	_c.mutation.SetBlackboardID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *BlackboardSnapshotCreate) SetSessionID(v string) *BlackboardSnapshotCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCycle sets the "cycle" field.
func (_c *BlackboardSnapshotCreate) SetCycle(v int) *BlackboardSnapshotCreate {
	_c.mutation.SetCycle(v)
	return _c
}

// SetState sets the "state" field.
func (_c *BlackboardSnapshotCreate) SetState(v map[string]interface{}) *BlackboardSnapshotCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlackboardSnapshotCreate) SetCreatedAt(v time.Time) *BlackboardSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlackboardSnapshotCreate) SetNillableCreatedAt(v *time.Time) *BlackboardSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BlackboardSnapshotMutation object of the builder.
func (_c *BlackboardSnapshotCreate) Mutation() *BlackboardSnapshotMutation {
	return _c.mutation
}

// Save creates the BlackboardSnapshot in the database.
func (_c *BlackboardSnapshotCreate) Save(ctx context.Context) (*BlackboardSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlackboardSnapshotCreate) SaveX(ctx context.Context) *BlackboardSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlackboardSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlackboardSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlackboardSnapshotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blackboardsnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlackboardSnapshotCreate) check() error {
	if _, ok := _c.mutation.BlackboardID(); !ok {
		return &ValidationError{Name: "blackboard_id", err: errors.New(`ent: missing required field "BlackboardSnapshot.blackboard_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "BlackboardSnapshot.session_id"`)}
	}
	if _, ok := _c.mutation.Cycle(); !ok {
		return &ValidationError{Name: "cycle", err: errors.New(`ent: missing required field "BlackboardSnapshot.cycle"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "BlackboardSnapshot.state"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BlackboardSnapshot.created_at"`)}
	}
	return nil
}

func (_c *BlackboardSnapshotCreate) sqlSave(ctx context.Context) (*BlackboardSnapshot, error) {
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

func (_c *BlackboardSnapshotCreate) createSpec() (*BlackboardSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &BlackboardSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blackboardsnapshot.Table, sqlgraph.NewFieldSpec(blackboardsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BlackboardID(); ok {
		_spec.SetField(blackboardsnapshot.FieldBlackboardID, field.TypeString, value)
		_node.BlackboardID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(blackboardsnapshot.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Cycle(); ok {
		_spec.SetField(blackboardsnapshot.FieldCycle, field.TypeInt, value)
		_node.Cycle = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(blackboardsnapshot.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blackboardsnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BlackboardSnapshotCreateBulk is the builder for creating many BlackboardSnapshot entities in bulk.
type BlackboardSnapshotCreateBulk struct {
	config
	err      error
	builders []*BlackboardSnapshotCreate
}

// Save creates the BlackboardSnapshot entities in the database.
func (_c *BlackboardSnapshotCreateBulk) Save(ctx context.Context) ([]*BlackboardSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlackboardSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlackboardSnapshotMutation)
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
func (_c *BlackboardSnapshotCreateBulk) SaveX(ctx context.Context) []*BlackboardSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlackboardSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlackboardSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
