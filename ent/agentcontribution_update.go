// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/agentcontribution"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// AgentContributionUpdate is the builder for updating AgentContribution entities.
type AgentContributionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentContributionMutation
}

// Where appends a list predicates to the AgentContributionUpdate builder.
func (_u *AgentContributionUpdate) Where(ps ...predicate.AgentContribution) *AgentContributionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentContributionUpdate) SetModel(v string) *AgentContributionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentContributionUpdate) SetNillableModel(v *string) *AgentContributionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentContributionUpdate) ClearModel() *AgentContributionUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentContributionUpdate) SetOutput(v map[string]interface{}) *AgentContributionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentContributionUpdate) ClearOutput() *AgentContributionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetConfidenceDelta sets the "confidence_delta" field.
func (_u *AgentContributionUpdate) SetConfidenceDelta(v float64) *AgentContributionUpdate {
	_u.mutation.ResetConfidenceDelta()
	_u.mutation.SetConfidenceDelta(v)
	return _u
}

// SetNillableConfidenceDelta sets the "confidence_delta" field if the given value is not nil.
func (_u *AgentContributionUpdate) SetNillableConfidenceDelta(v *float64) *AgentContributionUpdate {
	if v != nil {
		_u.SetConfidenceDelta(*v)
	}
	return _u
}

// AddConfidenceDelta adds value to the "confidence_delta" field.
func (_u *AgentContributionUpdate) AddConfidenceDelta(v float64) *AgentContributionUpdate {
	_u.mutation.AddConfidenceDelta(v)
	return _u
}

// SetAccepted sets the "accepted" field.
func (_u *AgentContributionUpdate) SetAccepted(v bool) *AgentContributionUpdate {
	_u.mutation.SetAccepted(v)
	return _u
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_u *AgentContributionUpdate) SetNillableAccepted(v *bool) *AgentContributionUpdate {
	if v != nil {
		_u.SetAccepted(*v)
	}
	return _u
}

// Mutation returns the AgentContributionMutation object of the builder.
func (_u *AgentContributionUpdate) Mutation() *AgentContributionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentContributionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContributionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentContributionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContributionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentContributionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentcontribution.Table, agentcontribution.Columns, sqlgraph.NewFieldSpec(agentcontribution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentcontribution.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentcontribution.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentcontribution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentcontribution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceDelta(); ok {
		_spec.SetField(agentcontribution.FieldConfidenceDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceDelta(); ok {
		_spec.AddField(agentcontribution.FieldConfidenceDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accepted(); ok {
		_spec.SetField(agentcontribution.FieldAccepted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentContributionUpdateOne is the builder for updating a single AgentContribution entity.
type AgentContributionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentContributionMutation
}

// SetModel sets the "model" field.
func (_u *AgentContributionUpdateOne) SetModel(v string) *AgentContributionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentContributionUpdateOne) SetNillableModel(v *string) *AgentContributionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentContributionUpdateOne) ClearModel() *AgentContributionUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentContributionUpdateOne) SetOutput(v map[string]interface{}) *AgentContributionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentContributionUpdateOne) ClearOutput() *AgentContributionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetConfidenceDelta sets the "confidence_delta" field.
func (_u *AgentContributionUpdateOne) SetConfidenceDelta(v float64) *AgentContributionUpdateOne {
	_u.mutation.ResetConfidenceDelta()
	_u.mutation.SetConfidenceDelta(v)
	return _u
}

// SetNillableConfidenceDelta sets the "confidence_delta" field if the given value is not nil.
func (_u *AgentContributionUpdateOne) SetNillableConfidenceDelta(v *float64) *AgentContributionUpdateOne {
	if v != nil {
		_u.SetConfidenceDelta(*v)
	}
	return _u
}

// AddConfidenceDelta adds value to the "confidence_delta" field.
func (_u *AgentContributionUpdateOne) AddConfidenceDelta(v float64) *AgentContributionUpdateOne {
	_u.mutation.AddConfidenceDelta(v)
	return _u
}

// SetAccepted sets the "accepted" field.
func (_u *AgentContributionUpdateOne) SetAccepted(v bool) *AgentContributionUpdateOne {
	_u.mutation.SetAccepted(v)
	return _u
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_u *AgentContributionUpdateOne) SetNillableAccepted(v *bool) *AgentContributionUpdateOne {
	if v != nil {
		_u.SetAccepted(*v)
	}
	return _u
}

// Mutation returns the AgentContributionMutation object of the builder.
func (_u *AgentContributionUpdateOne) Mutation() *AgentContributionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentContributionUpdate builder.
func (_u *AgentContributionUpdateOne) Where(ps ...predicate.AgentContribution) *AgentContributionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentContributionUpdateOne) Select(field string, fields ...string) *AgentContributionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentContribution entity.
func (_u *AgentContributionUpdateOne) Save(ctx context.Context) (*AgentContribution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContributionUpdateOne) SaveX(ctx context.Context) *AgentContribution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentContributionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContributionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentContributionUpdateOne) sqlSave(ctx context.Context) (_node *AgentContribution, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentcontribution.Table, agentcontribution.Columns, sqlgraph.NewFieldSpec(agentcontribution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentContribution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentcontribution.FieldID)
		for _, f := range fields {
			if !agentcontribution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentcontribution.FieldID {
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
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentcontribution.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentcontribution.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentcontribution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentcontribution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceDelta(); ok {
		_spec.SetField(agentcontribution.FieldConfidenceDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceDelta(); ok {
		_spec.AddField(agentcontribution.FieldConfidenceDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accepted(); ok {
		_spec.SetField(agentcontribution.FieldAccepted, field.TypeBool, value)
	}
	_node = &AgentContribution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
