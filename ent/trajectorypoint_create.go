// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/trajectorypoint"
)

// TrajectoryPointCreate is the builder for creating a TrajectoryPoint entity.
type TrajectoryPointCreate struct {
	config
	mutation *TrajectoryPointMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TrajectoryPointCreate) SetSessionID(v string) *TrajectoryPointCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCycleNumber sets the "cycle_number" field.
func (_c *TrajectoryPointCreate) SetCycleNumber(v int) *TrajectoryPointCreate {
	_c.mutation.SetCycleNumber(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *TrajectoryPointCreate) SetEmbedding(v []byte) *TrajectoryPointCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetClaimText sets the "claim_text" field.
func (_c *TrajectoryPointCreate) SetClaimText(v string) *TrajectoryPointCreate {
	_c.mutation.SetClaimText(v)
	return _c
}

// SetSupportStrength sets the "support_strength" field.
func (_c *TrajectoryPointCreate) SetSupportStrength(v float64) *TrajectoryPointCreate {
	_c.mutation.SetSupportStrength(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrajectoryPointCreate) SetCreatedAt(v time.Time) *TrajectoryPointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrajectoryPointCreate) SetNillableCreatedAt(v *time.Time) *TrajectoryPointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TrajectoryPointMutation object of the builder.
func (_c *TrajectoryPointCreate) Mutation() *TrajectoryPointMutation {
	return _c.mutation
}

// Save creates the TrajectoryPoint in the database.
func (_c *TrajectoryPointCreate) Save(ctx context.Context) (*TrajectoryPoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrajectoryPointCreate) SaveX(ctx context.Context) *TrajectoryPoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrajectoryPointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrajectoryPointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrajectoryPointCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trajectorypoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrajectoryPointCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TrajectoryPoint.session_id"`)}
	}
	if _, ok := _c.mutation.CycleNumber(); !ok {
		return &ValidationError{Name: "cycle_number", err: errors.New(`ent: missing required field "TrajectoryPoint.cycle_number"`)}
	}
	if _, ok := _c.mutation.Embedding(); !ok {
		return &ValidationError{Name: "embedding", err: errors.New(`ent: missing required field "TrajectoryPoint.embedding"`)}
	}
	if _, ok := _c.mutation.ClaimText(); !ok {
		return &ValidationError{Name: "claim_text", err: errors.New(`ent: missing required field "TrajectoryPoint.claim_text"`)}
	}
	if _, ok := _c.mutation.SupportStrength(); !ok {
		return &ValidationError{Name: "support_strength", err: errors.New(`ent: missing required field "TrajectoryPoint.support_strength"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrajectoryPoint.created_at"`)}
	}
	return nil
}

func (_c *TrajectoryPointCreate) sqlSave(ctx context.Context) (*TrajectoryPoint, error) {
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

func (_c *TrajectoryPointCreate) createSpec() (*TrajectoryPoint, *sqlgraph.CreateSpec) {
	var (
		_node = &TrajectoryPoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trajectorypoint.Table, sqlgraph.NewFieldSpec(trajectorypoint.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(trajectorypoint.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CycleNumber(); ok {
		_spec.SetField(trajectorypoint.FieldCycleNumber, field.TypeInt, value)
		_node.CycleNumber = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(trajectorypoint.FieldEmbedding, field.TypeBytes, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.ClaimText(); ok {
		_spec.SetField(trajectorypoint.FieldClaimText, field.TypeString, value)
		_node.ClaimText = value
	}
	if value, ok := _c.mutation.SupportStrength(); ok {
		_spec.SetField(trajectorypoint.FieldSupportStrength, field.TypeFloat64, value)
		_node.SupportStrength = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trajectorypoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TrajectoryPointCreateBulk is the builder for creating many TrajectoryPoint entities in bulk.
type TrajectoryPointCreateBulk struct {
	config
	err      error
	builders []*TrajectoryPointCreate
}

// Save creates the TrajectoryPoint entities in the database.
func (_c *TrajectoryPointCreateBulk) Save(ctx context.Context) ([]*TrajectoryPoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrajectoryPoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrajectoryPointMutation)
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
func (_c *TrajectoryPointCreateBulk) SaveX(ctx context.Context) []*TrajectoryPoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrajectoryPointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrajectoryPointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
