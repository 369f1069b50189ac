// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/blackboardrecord"
)

// BlackboardRecordCreate is the builder for creating a BlackboardRecord entity.
type BlackboardRecordCreate struct {
	config
	mutation *BlackboardRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *BlackboardRecordCreate) SetSessionID(v string) *BlackboardRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSeedClaim sets the "seed_claim" field.
func (_c *BlackboardRecordCreate) SetSeedClaim(v string) *BlackboardRecordCreate {
	_c.mutation.SetSeedClaim(v)
	return _c
}

// SetCurrentClaim sets the "current_claim" field.
func (_c *BlackboardRecordCreate) SetCurrentClaim(v string) *BlackboardRecordCreate {
	_c.mutation.SetCurrentClaim(v)
	return _c
}

// SetNillableCurrentClaim sets the "current_claim" field if the given value is not nil.
func (_c *BlackboardRecordCreate) SetNillableCurrentClaim(v *string) *BlackboardRecordCreate {
	if v != nil {
		_c.SetCurrentClaim(*v)
	}
	return _c
}

// SetSupportStrength sets the "support_strength" field.
func (_c *BlackboardRecordCreate) SetSupportStrength(v float64) *BlackboardRecordCreate {
	_c.mutation.SetSupportStrength(v)
	return _c
}

// SetNillableSupportStrength sets the "support_strength" field if the given value is not nil.
func (_c *BlackboardRecordCreate) SetNillableSupportStrength(v *float64) *BlackboardRecordCreate {
	if v != nil {
		_c.SetSupportStrength(*v)
	}
	return _c
}

// SetActiveObjection sets the "active_objection" field.
func (_c *BlackboardRecordCreate) SetActiveObjection(v string) *BlackboardRecordCreate {
	_c.mutation.SetActiveObjection(v)
	return _c
}

// SetNillableActiveObjection sets the "active_objection" field if the given value is not nil.
func (_c *BlackboardRecordCreate) SetNillableActiveObjection(v *string) *BlackboardRecordCreate {
	if v != nil {
		_c.SetActiveObjection(*v)
	}
	return _c
}

// SetAnalogyOfRecord sets the "analogy_of_record" field.
func (_c *BlackboardRecordCreate) SetAnalogyOfRecord(v string) *BlackboardRecordCreate {
	_c.mutation.SetAnalogyOfRecord(v)
	return _c
}

// SetNillableAnalogyOfRecord sets the "analogy_of_record" field if the given value is not nil.
func (_c *BlackboardRecordCreate) SetNillableAnalogyOfRecord(v *string) *BlackboardRecordCreate {
	if v != nil {
		_c.SetAnalogyOfRecord(*v)
	}
	return _c
}

// SetCycleCount sets the "cycle_count" field.
func (_c *BlackboardRecordCreate) SetCycleCount(v int) *BlackboardRecordCreate {
	_c.mutation.SetCycleCount(v)
	return _c
}

// SetNillableCycleCount sets the "cycle_count" field if the given value is not nil.
func (_c *BlackboardRecordCreate) SetNillableCycleCount(v *int) *BlackboardRecordCreate {
	if v != nil {
		_c.SetCycleCount(*v)
	}
	return _c
}

// SetFrontierPool sets the "frontier_pool" field.
func (_c *BlackboardRecordCreate) SetFrontierPool(v []map[string]interface{}) *BlackboardRecordCreate {
	_c.mutation.SetFrontierPool(v)
	return _c
}

// SetCemetery sets the "cemetery" field.
func (_c *BlackboardRecordCreate) SetCemetery(v []map[string]interface{}) *BlackboardRecordCreate {
	_c.mutation.SetCemetery(v)
	return _c
}

// SetGraduatedClaims sets the "graduated_claims" field.
func (_c *BlackboardRecordCreate) SetGraduatedClaims(v []map[string]interface{}) *BlackboardRecordCreate {
	_c.mutation.SetGraduatedClaims(v)
	return _c
}

// SetTranslatorFrameworks sets the "translator_frameworks" field.
func (_c *BlackboardRecordCreate) SetTranslatorFrameworks(v []string) *BlackboardRecordCreate {
	_c.mutation.SetTranslatorFrameworks(v)
	return _c
}

// SetCostLimitUsd sets the "cost_limit_usd" field.
func (_c *BlackboardRecordCreate) SetCostLimitUsd(v float64) *BlackboardRecordCreate {
	_c.mutation.SetCostLimitUsd(v)
	return _c
}

// SetNillableCostLimitUsd sets the "cost_limit_usd" field if the given value is not nil.
func (_c *BlackboardRecordCreate) SetNillableCostLimitUsd(v *float64) *BlackboardRecordCreate {
	if v != nil {
		_c.SetCostLimitUsd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlackboardRecordCreate) SetCreatedAt(v time.Time) *BlackboardRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlackboardRecordCreate) SetNillableCreatedAt(v *time.Time) *BlackboardRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BlackboardRecordCreate) SetUpdatedAt(v time.Time) *BlackboardRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BlackboardRecordCreate) SetNillableUpdatedAt(v *time.Time) *BlackboardRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlackboardRecordCreate) SetID(v string) *BlackboardRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BlackboardRecordMutation object of the builder.
func (_c *BlackboardRecordCreate) Mutation() *BlackboardRecordMutation {
	return _c.mutation
}

// Save creates the BlackboardRecord in the database.
func (_c *BlackboardRecordCreate) Save(ctx context.Context) (*BlackboardRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlackboardRecordCreate) SaveX(ctx context.Context) *BlackboardRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlackboardRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlackboardRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlackboardRecordCreate) defaults() {
	if _, ok := _c.mutation.SupportStrength(); !ok {
		v := blackboardrecord.DefaultSupportStrength
		_c.mutation.SetSupportStrength(v)
	}
	if _, ok := _c.mutation.CycleCount(); !ok {
		v := blackboardrecord.DefaultCycleCount
		_c.mutation.SetCycleCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blackboardrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := blackboardrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlackboardRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "BlackboardRecord.session_id"`)}
	}
	if _, ok := _c.mutation.SeedClaim(); !ok {
		return &ValidationError{Name: "seed_claim", err: errors.New(`ent: missing required field "BlackboardRecord.seed_claim"`)}
	}
	if _, ok := _c.mutation.SupportStrength(); !ok {
		return &ValidationError{Name: "support_strength", err: errors.New(`ent: missing required field "BlackboardRecord.support_strength"`)}
	}
	if _, ok := _c.mutation.CycleCount(); !ok {
		return &ValidationError{Name: "cycle_count", err: errors.New(`ent: missing required field "BlackboardRecord.cycle_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BlackboardRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BlackboardRecord.updated_at"`)}
	}
	return nil
}

func (_c *BlackboardRecordCreate) sqlSave(ctx context.Context) (*BlackboardRecord, error) {
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
			return nil, fmt.Errorf("unexpected BlackboardRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlackboardRecordCreate) createSpec() (*BlackboardRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &BlackboardRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blackboardrecord.Table, sqlgraph.NewFieldSpec(blackboardrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(blackboardrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SeedClaim(); ok {
		_spec.SetField(blackboardrecord.FieldSeedClaim, field.TypeString, value)
		_node.SeedClaim = value
	}
	if value, ok := _c.mutation.CurrentClaim(); ok {
		_spec.SetField(blackboardrecord.FieldCurrentClaim, field.TypeString, value)
		_node.CurrentClaim = value
	}
	if value, ok := _c.mutation.SupportStrength(); ok {
		_spec.SetField(blackboardrecord.FieldSupportStrength, field.TypeFloat64, value)
		_node.SupportStrength = value
	}
	if value, ok := _c.mutation.ActiveObjection(); ok {
		_spec.SetField(blackboardrecord.FieldActiveObjection, field.TypeString, value)
		_node.ActiveObjection = value
	}
	if value, ok := _c.mutation.AnalogyOfRecord(); ok {
		_spec.SetField(blackboardrecord.FieldAnalogyOfRecord, field.TypeString, value)
		_node.AnalogyOfRecord = value
	}
	if value, ok := _c.mutation.CycleCount(); ok {
		_spec.SetField(blackboardrecord.FieldCycleCount, field.TypeInt, value)
		_node.CycleCount = value
	}
	if value, ok := _c.mutation.FrontierPool(); ok {
		_spec.SetField(blackboardrecord.FieldFrontierPool, field.TypeJSON, value)
		_node.FrontierPool = value
	}
	if value, ok := _c.mutation.Cemetery(); ok {
		_spec.SetField(blackboardrecord.FieldCemetery, field.TypeJSON, value)
		_node.Cemetery = value
	}
	if value, ok := _c.mutation.GraduatedClaims(); ok {
		_spec.SetField(blackboardrecord.FieldGraduatedClaims, field.TypeJSON, value)
		_node.GraduatedClaims = value
	}
	if value, ok := _c.mutation.TranslatorFrameworks(); ok {
		_spec.SetField(blackboardrecord.FieldTranslatorFrameworks, field.TypeJSON, value)
		_node.TranslatorFrameworks = value
	}
	if value, ok := _c.mutation.CostLimitUsd(); ok {
		_spec.SetField(blackboardrecord.FieldCostLimitUsd, field.TypeFloat64, value)
		_node.CostLimitUsd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blackboardrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(blackboardrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BlackboardRecordCreateBulk is the builder for creating many BlackboardRecord entities in bulk.
type BlackboardRecordCreateBulk struct {
	config
	err      error
	builders []*BlackboardRecordCreate
}

// Save creates the BlackboardRecord entities in the database.
func (_c *BlackboardRecordCreateBulk) Save(ctx context.Context) ([]*BlackboardRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlackboardRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlackboardRecordMutation)
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
func (_c *BlackboardRecordCreateBulk) SaveX(ctx context.Context) []*BlackboardRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlackboardRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlackboardRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
