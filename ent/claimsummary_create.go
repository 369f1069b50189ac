// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/claimsummary"
)

// ClaimSummaryCreate is the builder for creating a ClaimSummary entity.
type ClaimSummaryCreate struct {
	config
	mutation *ClaimSummaryMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ClaimSummaryCreate) SetSessionID(v string) *ClaimSummaryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ClaimSummaryCreate) SetSummary(v string) *ClaimSummaryCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetCycle sets the "cycle" field.
func (_c *ClaimSummaryCreate) SetCycle(v int) *ClaimSummaryCreate {
	_c.mutation.SetCycle(v)
	return _c
}

// SetNillableCycle sets the "cycle" field if the given value is not nil.
func (_c *ClaimSummaryCreate) SetNillableCycle(v *int) *ClaimSummaryCreate {
	if v != nil {
		_c.SetCycle(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClaimSummaryCreate) SetUpdatedAt(v time.Time) *ClaimSummaryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClaimSummaryCreate) SetNillableUpdatedAt(v *time.Time) *ClaimSummaryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ClaimSummaryMutation object of the builder.
func (_c *ClaimSummaryCreate) Mutation() *ClaimSummaryMutation {
	return _c.mutation
}

// Save creates the ClaimSummary in the database.
func (_c *ClaimSummaryCreate) Save(ctx context.Context) (*ClaimSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimSummaryCreate) SaveX(ctx context.Context) *ClaimSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimSummaryCreate) defaults() {
	if _, ok := _c.mutation.Cycle(); !ok {
		v := claimsummary.DefaultCycle
		_c.mutation.SetCycle(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := claimsummary.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimSummaryCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ClaimSummary.session_id"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "ClaimSummary.summary"`)}
	}
	if _, ok := _c.mutation.Cycle(); !ok {
		return &ValidationError{Name: "cycle", err: errors.New(`ent: missing required field "ClaimSummary.cycle"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ClaimSummary.updated_at"`)}
	}
	return nil
}

func (_c *ClaimSummaryCreate) sqlSave(ctx context.Context) (*ClaimSummary, error) {
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

func (_c *ClaimSummaryCreate) createSpec() (*ClaimSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &ClaimSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claimsummary.Table, sqlgraph.NewFieldSpec(claimsummary.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(claimsummary.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(claimsummary.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Cycle(); ok {
		_spec.SetField(claimsummary.FieldCycle, field.TypeInt, value)
		_node.Cycle = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(claimsummary.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ClaimSummaryCreateBulk is the builder for creating many ClaimSummary entities in bulk.
type ClaimSummaryCreateBulk struct {
	config
	err      error
	builders []*ClaimSummaryCreate
}

// Save creates the ClaimSummary entities in the database.
func (_c *ClaimSummaryCreateBulk) Save(ctx context.Context) ([]*ClaimSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClaimSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimSummaryMutation)
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
func (_c *ClaimSummaryCreateBulk) SaveX(ctx context.Context) []*ClaimSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
