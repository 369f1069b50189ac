// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/llmcost"
)

// LLMCostCreate is the builder for creating a LLMCost entity.
type LLMCostCreate struct {
	config
	mutation *LLMCostMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *LLMCostCreate) SetSessionID(v string) *LLMCostCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCycle sets the "cycle" field.
func (_c *LLMCostCreate) SetCycle(v int) *LLMCostCreate {
	_c.mutation.SetCycle(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *LLMCostCreate) SetRole(v string) *LLMCostCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMCostCreate) SetModel(v string) *LLMCostCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *LLMCostCreate) SetCostUsd(v float64) *LLMCostCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMCostCreate) SetCreatedAt(v time.Time) *LLMCostCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMCostCreate) SetNillableCreatedAt(v *time.Time) *LLMCostCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LLMCostMutation object of the builder.
func (_c *LLMCostCreate) Mutation() *LLMCostMutation {
	return _c.mutation
}

// Save creates the LLMCost in the database.
func (_c *LLMCostCreate) Save(ctx context.Context) (*LLMCost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMCostCreate) SaveX(ctx context.Context) *LLMCost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMCostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMCostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMCostCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmcost.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMCostCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LLMCost.session_id"`)}
	}
	if _, ok := _c.mutation.Cycle(); !ok {
		return &ValidationError{Name: "cycle", err: errors.New(`ent: missing required field "LLMCost.cycle"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "LLMCost.role"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMCost.model"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "LLMCost.cost_usd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMCost.created_at"`)}
	}
	return nil
}

func (_c *LLMCostCreate) sqlSave(ctx context.Context) (*LLMCost, error) {
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

func (_c *LLMCostCreate) createSpec() (*LLMCost, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMCost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmcost.Table, sqlgraph.NewFieldSpec(llmcost.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(llmcost.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Cycle(); ok {
		_spec.SetField(llmcost.FieldCycle, field.TypeInt, value)
		_node.Cycle = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(llmcost.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmcost.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(llmcost.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmcost.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LLMCostCreateBulk is the builder for creating many LLMCost entities in bulk.
type LLMCostCreateBulk struct {
	config
	err      error
	builders []*LLMCostCreate
}

// Save creates the LLMCost entities in the database.
func (_c *LLMCostCreateBulk) Save(ctx context.Context) ([]*LLMCost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMCost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMCostMutation)
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
func (_c *LLMCostCreateBulk) SaveX(ctx context.Context) []*LLMCost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMCostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMCostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
