// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/agentcontribution"
)

// AgentContributionCreate is the builder for creating a AgentContribution entity.
type AgentContributionCreate struct {
	config
	mutation *AgentContributionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AgentContributionCreate) SetSessionID(v string) *AgentContributionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCycle sets the "cycle" field.
func (_c *AgentContributionCreate) SetCycle(v int) *AgentContributionCreate {
	_c.mutation.SetCycle(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AgentContributionCreate) SetRole(v string) *AgentContributionCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *AgentContributionCreate) SetModel(v string) *AgentContributionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *AgentContributionCreate) SetNillableModel(v *string) *AgentContributionCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *AgentContributionCreate) SetOutput(v map[string]interface{}) *AgentContributionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetConfidenceDelta sets the "confidence_delta" field.
func (_c *AgentContributionCreate) SetConfidenceDelta(v float64) *AgentContributionCreate {
	_c.mutation.SetConfidenceDelta(v)
	return _c
}

// SetNillableConfidenceDelta sets the "confidence_delta" field if the given value is not nil.
func (_c *AgentContributionCreate) SetNillableConfidenceDelta(v *float64) *AgentContributionCreate {
	if v != nil {
		_c.SetConfidenceDelta(*v)
	}
	return _c
}

// SetAccepted sets the "accepted" field.
func (_c *AgentContributionCreate) SetAccepted(v bool) *AgentContributionCreate {
	_c.mutation.SetAccepted(v)
	return _c
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_c *AgentContributionCreate) SetNillableAccepted(v *bool) *AgentContributionCreate {
	if v != nil {
		_c.SetAccepted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentContributionCreate) SetCreatedAt(v time.Time) *AgentContributionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentContributionCreate) SetNillableCreatedAt(v *time.Time) *AgentContributionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentContributionCreate) SetID(v string) *AgentContributionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentContributionMutation object of the builder.
func (_c *AgentContributionCreate) Mutation() *AgentContributionMutation {
	return _c.mutation
}

// Save creates the AgentContribution in the database.
func (_c *AgentContributionCreate) Save(ctx context.Context) (*AgentContribution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentContributionCreate) SaveX(ctx context.Context) *AgentContribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContributionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContributionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentContributionCreate) defaults() {
	if _, ok := _c.mutation.ConfidenceDelta(); !ok {
		v := agentcontribution.DefaultConfidenceDelta
		_c.mutation.SetConfidenceDelta(v)
	}
	if _, ok := _c.mutation.Accepted(); !ok {
		v := agentcontribution.DefaultAccepted
		_c.mutation.SetAccepted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentcontribution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentContributionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgentContribution.session_id"`)}
	}
	if _, ok := _c.mutation.Cycle(); !ok {
		return &ValidationError{Name: "cycle", err: errors.New(`ent: missing required field "AgentContribution.cycle"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "AgentContribution.role"`)}
	}
	if _, ok := _c.mutation.ConfidenceDelta(); !ok {
		return &ValidationError{Name: "confidence_delta", err: errors.New(`ent: missing required field "AgentContribution.confidence_delta"`)}
	}
	if _, ok := _c.mutation.Accepted(); !ok {
		return &ValidationError{Name: "accepted", err: errors.New(`ent: missing required field "AgentContribution.accepted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentContribution.created_at"`)}
	}
	return nil
}

func (_c *AgentContributionCreate) sqlSave(ctx context.Context) (*AgentContribution, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentContribution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentContributionCreate) createSpec() (*AgentContribution, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentContribution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentcontribution.Table, sqlgraph.NewFieldSpec(agentcontribution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(agentcontribution.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Cycle(); ok {
		_spec.SetField(agentcontribution.FieldCycle, field.TypeInt, value)
		_node.Cycle = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agentcontribution.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(agentcontribution.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(agentcontribution.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.ConfidenceDelta(); ok {
		_spec.SetField(agentcontribution.FieldConfidenceDelta, field.TypeFloat64, value)
		_node.ConfidenceDelta = value
	}
	if value, ok := _c.mutation.Accepted(); ok {
		_spec.SetField(agentcontribution.FieldAccepted, field.TypeBool, value)
		_node.Accepted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentcontribution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AgentContributionCreateBulk is the builder for creating many AgentContribution entities in bulk.
type AgentContributionCreateBulk struct {
	config
	err      error
	builders []*AgentContributionCreate
}

// Save creates the AgentContribution entities in the database.
func (_c *AgentContributionCreateBulk) Save(ctx context.Context) ([]*AgentContribution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentContribution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentContributionMutation)
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
func (_c *AgentContributionCreateBulk) SaveX(ctx context.Context) []*AgentContribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContributionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContributionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
