// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialectic-dev/dialectic/ent/frontieridea"
)

// FrontierIdeaCreate is the builder for creating a FrontierIdea entity.
type FrontierIdeaCreate struct {
	config
	mutation *FrontierIdeaMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *FrontierIdeaCreate) SetSessionID(v string) *FrontierIdeaCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetIdeaID sets the "idea_id" field.
func (_c *FrontierIdeaCreate) SetIdeaID(v string) *FrontierIdeaCreate {
	_c.mutation.SetIdeaID(v)
	return _c
}

// SetIdeaText sets the "idea_text" field.
func (_c *FrontierIdeaCreate) SetIdeaText(v string) *FrontierIdeaCreate {
	_c.mutation.SetIdeaText(v)
	return _c
}

// SetSponsorCount sets the "sponsor_count" field.
func (_c *FrontierIdeaCreate) SetSponsorCount(v int) *FrontierIdeaCreate {
	_c.mutation.SetSponsorCount(v)
	return _c
}

// SetNillableSponsorCount sets the "sponsor_count" field if the given value is not nil.
func (_c *FrontierIdeaCreate) SetNillableSponsorCount(v *int) *FrontierIdeaCreate {
	if v != nil {
		_c.SetSponsorCount(*v)
	}
	return _c
}

// SetCyclesAlive sets the "cycles_alive" field.
func (_c *FrontierIdeaCreate) SetCyclesAlive(v int) *FrontierIdeaCreate {
	_c.mutation.SetCyclesAlive(v)
	return _c
}

// SetNillableCyclesAlive sets the "cycles_alive" field if the given value is not nil.
func (_c *FrontierIdeaCreate) SetNillableCyclesAlive(v *int) *FrontierIdeaCreate {
	if v != nil {
		_c.SetCyclesAlive(*v)
	}
	return _c
}

// SetActivated sets the "activated" field.
func (_c *FrontierIdeaCreate) SetActivated(v bool) *FrontierIdeaCreate {
	_c.mutation.SetActivated(v)
	return _c
}

// SetNillableActivated sets the "activated" field if the given value is not nil.
func (_c *FrontierIdeaCreate) SetNillableActivated(v *bool) *FrontierIdeaCreate {
	if v != nil {
		_c.SetActivated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FrontierIdeaCreate) SetCreatedAt(v time.Time) *FrontierIdeaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FrontierIdeaCreate) SetNillableCreatedAt(v *time.Time) *FrontierIdeaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FrontierIdeaCreate) SetUpdatedAt(v time.Time) *FrontierIdeaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FrontierIdeaCreate) SetNillableUpdatedAt(v *time.Time) *FrontierIdeaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the FrontierIdeaMutation object of the builder.
func (_c *FrontierIdeaCreate) Mutation() *FrontierIdeaMutation {
	return _c.mutation
}

// Save creates the FrontierIdea in the database.
func (_c *FrontierIdeaCreate) Save(ctx context.Context) (*FrontierIdea, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FrontierIdeaCreate) SaveX(ctx context.Context) *FrontierIdea {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FrontierIdeaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FrontierIdeaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FrontierIdeaCreate) defaults() {
	if _, ok := _c.mutation.SponsorCount(); !ok {
		v := frontieridea.DefaultSponsorCount
		_c.mutation.SetSponsorCount(v)
	}
	if _, ok := _c.mutation.CyclesAlive(); !ok {
		v := frontieridea.DefaultCyclesAlive
		_c.mutation.SetCyclesAlive(v)
	}
	if _, ok := _c.mutation.Activated(); !ok {
		v := frontieridea.DefaultActivated
		_c.mutation.SetActivated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := frontieridea.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := frontieridea.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FrontierIdeaCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "FrontierIdea.session_id"`)}
	}
	if _, ok := _c.mutation.IdeaID(); !ok {
		return &ValidationError{Name: "idea_id", err: errors.New(`ent: missing required field "FrontierIdea.idea_id"`)}
	}
	if _, ok := _c.mutation.IdeaText(); !ok {
		return &ValidationError{Name: "idea_text", err: errors.New(`ent: missing required field "FrontierIdea.idea_text"`)}
	}
	if _, ok := _c.mutation.SponsorCount(); !ok {
		return &ValidationError{Name: "sponsor_count", err: errors.New(`ent: missing required field "FrontierIdea.sponsor_count"`)}
	}
	if _, ok := _c.mutation.CyclesAlive(); !ok {
		return &ValidationError{Name: "cycles_alive", err: errors.New(`ent: missing required field "FrontierIdea.cycles_alive"`)}
	}
	if _, ok := _c.mutation.Activated(); !ok {
		return &ValidationError{Name: "activated", err: errors.New(`ent: missing required field "FrontierIdea.activated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FrontierIdea.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FrontierIdea.updated_at"`)}
	}
	return nil
}

func (_c *FrontierIdeaCreate) sqlSave(ctx context.Context) (*FrontierIdea, error) {
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

func (_c *FrontierIdeaCreate) createSpec() (*FrontierIdea, *sqlgraph.CreateSpec) {
	var (
		_node = &FrontierIdea{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(frontieridea.Table, sqlgraph.NewFieldSpec(frontieridea.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(frontieridea.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.IdeaID(); ok {
		_spec.SetField(frontieridea.FieldIdeaID, field.TypeString, value)
		_node.IdeaID = value
	}
	if value, ok := _c.mutation.IdeaText(); ok {
		_spec.SetField(frontieridea.FieldIdeaText, field.TypeString, value)
		_node.IdeaText = value
	}
	if value, ok := _c.mutation.SponsorCount(); ok {
		_spec.SetField(frontieridea.FieldSponsorCount, field.TypeInt, value)
		_node.SponsorCount = value
	}
	if value, ok := _c.mutation.CyclesAlive(); ok {
		_spec.SetField(frontieridea.FieldCyclesAlive, field.TypeInt, value)
		_node.CyclesAlive = value
	}
	if value, ok := _c.mutation.Activated(); ok {
		_spec.SetField(frontieridea.FieldActivated, field.TypeBool, value)
		_node.Activated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(frontieridea.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(frontieridea.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// FrontierIdeaCreateBulk is the builder for creating many FrontierIdea entities in bulk.
type FrontierIdeaCreateBulk struct {
	config
	err      error
	builders []*FrontierIdeaCreate
}

// Save creates the FrontierIdea entities in the database.
func (_c *FrontierIdeaCreateBulk) Save(ctx context.Context) ([]*FrontierIdea, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FrontierIdea, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FrontierIdeaMutation)
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
func (_c *FrontierIdeaCreateBulk) SaveX(ctx context.Context) []*FrontierIdea {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FrontierIdeaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FrontierIdeaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
