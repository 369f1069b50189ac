// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/agentcontribution"
	"github.com/dialectic-dev/dialectic/ent/blackboardrecord"
	"github.com/dialectic-dev/dialectic/ent/blackboardsnapshot"
	"github.com/dialectic-dev/dialectic/ent/cemeteryentry"
	"github.com/dialectic-dev/dialectic/ent/claimsummary"
	"github.com/dialectic-dev/dialectic/ent/claimtransition"
	"github.com/dialectic-dev/dialectic/ent/event"
	"github.com/dialectic-dev/dialectic/ent/frontieridea"
	"github.com/dialectic-dev/dialectic/ent/llmcost"
	"github.com/dialectic-dev/dialectic/ent/predicate"
	"github.com/dialectic-dev/dialectic/ent/trajectorypoint"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentContribution  = "AgentContribution"
	TypeBlackboardRecord   = "BlackboardRecord"
	TypeBlackboardSnapshot = "BlackboardSnapshot"
	TypeCemeteryEntry      = "CemeteryEntry"
	TypeClaimSummary       = "ClaimSummary"
	TypeClaimTransition    = "ClaimTransition"
	TypeEvent              = "Event"
	TypeFrontierIdea       = "FrontierIdea"
	TypeLLMCost            = "LLMCost"
	TypeTrajectoryPoint    = "TrajectoryPoint"
)

// AgentContributionMutation represents an operation that mutates the AgentContribution nodes in the graph.
type AgentContributionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	session_id          *string
	cycle               *int
	addcycle            *int
	role                *string
	model               *string
	output              *map[string]interface{}
	confidence_delta    *float64
	addconfidence_delta *float64
	accepted            *bool
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AgentContribution, error)
	predicates          []predicate.AgentContribution
}

var _ ent.Mutation = (*AgentContributionMutation)(nil)

// agentcontributionOption allows management of the mutation configuration using functional options.
type agentcontributionOption func(*AgentContributionMutation)

// newAgentContributionMutation creates new mutation for the AgentContribution entity.
func newAgentContributionMutation(c config, op Op, opts ...agentcontributionOption) *AgentContributionMutation {
	m := &AgentContributionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentContribution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentContributionID sets the ID field of the mutation.
func withAgentContributionID(id string) agentcontributionOption {
	return func(m *AgentContributionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentContribution
		)
		m.oldValue = func(ctx context.Context) (*AgentContribution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentContribution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentContribution sets the old AgentContribution of the mutation.
func withAgentContribution(node *AgentContribution) agentcontributionOption {
	return func(m *AgentContributionMutation) {
		m.oldValue = func(context.Context) (*AgentContribution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentContributionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentContributionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentContribution entities.
func (m *AgentContributionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentContributionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentContributionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentContribution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AgentContributionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentContributionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentContribution entity.
// If the AgentContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContributionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentContributionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetCycle sets the "cycle" field.
func (m *AgentContributionMutation) SetCycle(i int) {
	m.cycle = &i
	m.addcycle = nil
}

// Cycle returns the value of the "cycle" field in the mutation.
func (m *AgentContributionMutation) Cycle() (r int, exists bool) {
	v := m.cycle
	if v == nil {
		return
	}
	return *v, true
}

// OldCycle returns the old "cycle" field's value of the AgentContribution entity.
// If the AgentContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContributionMutation) OldCycle(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycle: %w", err)
	}
	return oldValue.Cycle, nil
}

// AddCycle adds i to the "cycle" field.
func (m *AgentContributionMutation) AddCycle(i int) {
	if m.addcycle != nil {
		*m.addcycle += i
	} else {
		m.addcycle = &i
	}
}

// AddedCycle returns the value that was added to the "cycle" field in this mutation.
func (m *AgentContributionMutation) AddedCycle() (r int, exists bool) {
	v := m.addcycle
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycle resets all changes to the "cycle" field.
func (m *AgentContributionMutation) ResetCycle() {
	m.cycle = nil
	m.addcycle = nil
}

// SetRole sets the "role" field.
func (m *AgentContributionMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentContributionMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the AgentContribution entity.
// If the AgentContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContributionMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentContributionMutation) ResetRole() {
	m.role = nil
}

// SetModel sets the "model" field.
func (m *AgentContributionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentContributionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentContribution entity.
// If the AgentContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContributionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AgentContributionMutation) ClearModel() {
	m.model = nil
	m.clearedFields[agentcontribution.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AgentContributionMutation) ModelCleared() bool {
	_, ok := m.clearedFields[agentcontribution.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AgentContributionMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, agentcontribution.FieldModel)
}

// SetOutput sets the "output" field.
func (m *AgentContributionMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *AgentContributionMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the AgentContribution entity.
// If the AgentContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContributionMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *AgentContributionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[agentcontribution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *AgentContributionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[agentcontribution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *AgentContributionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, agentcontribution.FieldOutput)
}

// SetConfidenceDelta sets the "confidence_delta" field.
func (m *AgentContributionMutation) SetConfidenceDelta(f float64) {
	m.confidence_delta = &f
	m.addconfidence_delta = nil
}

// ConfidenceDelta returns the value of the "confidence_delta" field in the mutation.
func (m *AgentContributionMutation) ConfidenceDelta() (r float64, exists bool) {
	v := m.confidence_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceDelta returns the old "confidence_delta" field's value of the AgentContribution entity.
// If the AgentContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContributionMutation) OldConfidenceDelta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceDelta: %w", err)
	}
	return oldValue.ConfidenceDelta, nil
}

// AddConfidenceDelta adds f to the "confidence_delta" field.
func (m *AgentContributionMutation) AddConfidenceDelta(f float64) {
	if m.addconfidence_delta != nil {
		*m.addconfidence_delta += f
	} else {
		m.addconfidence_delta = &f
	}
}

// AddedConfidenceDelta returns the value that was added to the "confidence_delta" field in this mutation.
func (m *AgentContributionMutation) AddedConfidenceDelta() (r float64, exists bool) {
	v := m.addconfidence_delta
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceDelta resets all changes to the "confidence_delta" field.
func (m *AgentContributionMutation) ResetConfidenceDelta() {
	m.confidence_delta = nil
	m.addconfidence_delta = nil
}

// SetAccepted sets the "accepted" field.
func (m *AgentContributionMutation) SetAccepted(b bool) {
	m.accepted = &b
}

// Accepted returns the value of the "accepted" field in the mutation.
func (m *AgentContributionMutation) Accepted() (r bool, exists bool) {
	v := m.accepted
	if v == nil {
		return
	}
	return *v, true
}

// OldAccepted returns the old "accepted" field's value of the AgentContribution entity.
// If the AgentContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContributionMutation) OldAccepted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccepted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccepted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccepted: %w", err)
	}
	return oldValue.Accepted, nil
}

// ResetAccepted resets all changes to the "accepted" field.
func (m *AgentContributionMutation) ResetAccepted() {
	m.accepted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentContributionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentContributionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentContribution entity.
// If the AgentContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContributionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentContributionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentContributionMutation builder.
func (m *AgentContributionMutation) Where(ps ...predicate.AgentContribution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentContributionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentContributionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentContribution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentContributionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentContributionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentContribution).
func (m *AgentContributionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentContributionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, agentcontribution.FieldSessionID)
	}
	if m.cycle != nil {
		fields = append(fields, agentcontribution.FieldCycle)
	}
	if m.role != nil {
		fields = append(fields, agentcontribution.FieldRole)
	}
	if m.model != nil {
		fields = append(fields, agentcontribution.FieldModel)
	}
	if m.output != nil {
		fields = append(fields, agentcontribution.FieldOutput)
	}
	if m.confidence_delta != nil {
		fields = append(fields, agentcontribution.FieldConfidenceDelta)
	}
	if m.accepted != nil {
		fields = append(fields, agentcontribution.FieldAccepted)
	}
	if m.created_at != nil {
		fields = append(fields, agentcontribution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentContributionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentcontribution.FieldSessionID:
		return m.SessionID()
	case agentcontribution.FieldCycle:
		return m.Cycle()
	case agentcontribution.FieldRole:
		return m.Role()
	case agentcontribution.FieldModel:
		return m.Model()
	case agentcontribution.FieldOutput:
		return m.Output()
	case agentcontribution.FieldConfidenceDelta:
		return m.ConfidenceDelta()
	case agentcontribution.FieldAccepted:
		return m.Accepted()
	case agentcontribution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentContributionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentcontribution.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentcontribution.FieldCycle:
		return m.OldCycle(ctx)
	case agentcontribution.FieldRole:
		return m.OldRole(ctx)
	case agentcontribution.FieldModel:
		return m.OldModel(ctx)
	case agentcontribution.FieldOutput:
		return m.OldOutput(ctx)
	case agentcontribution.FieldConfidenceDelta:
		return m.OldConfidenceDelta(ctx)
	case agentcontribution.FieldAccepted:
		return m.OldAccepted(ctx)
	case agentcontribution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentContribution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentContributionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentcontribution.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentcontribution.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycle(v)
		return nil
	case agentcontribution.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agentcontribution.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agentcontribution.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case agentcontribution.FieldConfidenceDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceDelta(v)
		return nil
	case agentcontribution.FieldAccepted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccepted(v)
		return nil
	case agentcontribution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentContribution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentContributionMutation) AddedFields() []string {
	var fields []string
	if m.addcycle != nil {
		fields = append(fields, agentcontribution.FieldCycle)
	}
	if m.addconfidence_delta != nil {
		fields = append(fields, agentcontribution.FieldConfidenceDelta)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentContributionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentcontribution.FieldCycle:
		return m.AddedCycle()
	case agentcontribution.FieldConfidenceDelta:
		return m.AddedConfidenceDelta()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentContributionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentcontribution.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycle(v)
		return nil
	case agentcontribution.FieldConfidenceDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceDelta(v)
		return nil
	}
	return fmt.Errorf("unknown AgentContribution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentContributionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentcontribution.FieldModel) {
		fields = append(fields, agentcontribution.FieldModel)
	}
	if m.FieldCleared(agentcontribution.FieldOutput) {
		fields = append(fields, agentcontribution.FieldOutput)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentContributionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentContributionMutation) ClearField(name string) error {
	switch name {
	case agentcontribution.FieldModel:
		m.ClearModel()
		return nil
	case agentcontribution.FieldOutput:
		m.ClearOutput()
		return nil
	}
	return fmt.Errorf("unknown AgentContribution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentContributionMutation) ResetField(name string) error {
	switch name {
	case agentcontribution.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentcontribution.FieldCycle:
		m.ResetCycle()
		return nil
	case agentcontribution.FieldRole:
		m.ResetRole()
		return nil
	case agentcontribution.FieldModel:
		m.ResetModel()
		return nil
	case agentcontribution.FieldOutput:
		m.ResetOutput()
		return nil
	case agentcontribution.FieldConfidenceDelta:
		m.ResetConfidenceDelta()
		return nil
	case agentcontribution.FieldAccepted:
		m.ResetAccepted()
		return nil
	case agentcontribution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentContribution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentContributionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentContributionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentContributionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentContributionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentContributionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentContributionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentContributionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentContribution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentContributionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentContribution edge %s", name)
}

// BlackboardRecordMutation represents an operation that mutates the BlackboardRecord nodes in the graph.
type BlackboardRecordMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	session_id                  *string
	seed_claim                  *string
	current_claim               *string
	support_strength            *float64
	addsupport_strength         *float64
	active_objection            *string
	analogy_of_record           *string
	cycle_count                 *int
	addcycle_count              *int
	frontier_pool               *[]map[string]interface{}
	appendfrontier_pool         []map[string]interface{}
	cemetery                    *[]map[string]interface{}
	appendcemetery              []map[string]interface{}
	graduated_claims            *[]map[string]interface{}
	appendgraduated_claims      []map[string]interface{}
	translator_frameworks       *[]string
	appendtranslator_frameworks []string
	cost_limit_usd              *float64
	addcost_limit_usd           *float64
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*BlackboardRecord, error)
	predicates                  []predicate.BlackboardRecord
}

var _ ent.Mutation = (*BlackboardRecordMutation)(nil)

// blackboardrecordOption allows management of the mutation configuration using functional options.
type blackboardrecordOption func(*BlackboardRecordMutation)

// newBlackboardRecordMutation creates new mutation for the BlackboardRecord entity.
func newBlackboardRecordMutation(c config, op Op, opts ...blackboardrecordOption) *BlackboardRecordMutation {
	m := &BlackboardRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeBlackboardRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlackboardRecordID sets the ID field of the mutation.
func withBlackboardRecordID(id string) blackboardrecordOption {
	return func(m *BlackboardRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *BlackboardRecord
		)
		m.oldValue = func(ctx context.Context) (*BlackboardRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlackboardRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlackboardRecord sets the old BlackboardRecord of the mutation.
func withBlackboardRecord(node *BlackboardRecord) blackboardrecordOption {
	return func(m *BlackboardRecordMutation) {
		m.oldValue = func(context.Context) (*BlackboardRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlackboardRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlackboardRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlackboardRecord entities.
func (m *BlackboardRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlackboardRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlackboardRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlackboardRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *BlackboardRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *BlackboardRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *BlackboardRecordMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSeedClaim sets the "seed_claim" field.
func (m *BlackboardRecordMutation) SetSeedClaim(s string) {
	m.seed_claim = &s
}

// SeedClaim returns the value of the "seed_claim" field in the mutation.
func (m *BlackboardRecordMutation) SeedClaim() (r string, exists bool) {
	v := m.seed_claim
	if v == nil {
		return
	}
	return *v, true
}

// OldSeedClaim returns the old "seed_claim" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldSeedClaim(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeedClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeedClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeedClaim: %w", err)
	}
	return oldValue.SeedClaim, nil
}

// ResetSeedClaim resets all changes to the "seed_claim" field.
func (m *BlackboardRecordMutation) ResetSeedClaim() {
	m.seed_claim = nil
}

// SetCurrentClaim sets the "current_claim" field.
func (m *BlackboardRecordMutation) SetCurrentClaim(s string) {
	m.current_claim = &s
}

// CurrentClaim returns the value of the "current_claim" field in the mutation.
func (m *BlackboardRecordMutation) CurrentClaim() (r string, exists bool) {
	v := m.current_claim
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentClaim returns the old "current_claim" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldCurrentClaim(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentClaim: %w", err)
	}
	return oldValue.CurrentClaim, nil
}

// ClearCurrentClaim clears the value of the "current_claim" field.
func (m *BlackboardRecordMutation) ClearCurrentClaim() {
	m.current_claim = nil
	m.clearedFields[blackboardrecord.FieldCurrentClaim] = struct{}{}
}

// CurrentClaimCleared returns if the "current_claim" field was cleared in this mutation.
func (m *BlackboardRecordMutation) CurrentClaimCleared() bool {
	_, ok := m.clearedFields[blackboardrecord.FieldCurrentClaim]
	return ok
}

// ResetCurrentClaim resets all changes to the "current_claim" field.
func (m *BlackboardRecordMutation) ResetCurrentClaim() {
	m.current_claim = nil
	delete(m.clearedFields, blackboardrecord.FieldCurrentClaim)
}

// SetSupportStrength sets the "support_strength" field.
func (m *BlackboardRecordMutation) SetSupportStrength(f float64) {
	m.support_strength = &f
	m.addsupport_strength = nil
}

// SupportStrength returns the value of the "support_strength" field in the mutation.
func (m *BlackboardRecordMutation) SupportStrength() (r float64, exists bool) {
	v := m.support_strength
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportStrength returns the old "support_strength" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldSupportStrength(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportStrength: %w", err)
	}
	return oldValue.SupportStrength, nil
}

// AddSupportStrength adds f to the "support_strength" field.
func (m *BlackboardRecordMutation) AddSupportStrength(f float64) {
	if m.addsupport_strength != nil {
		*m.addsupport_strength += f
	} else {
		m.addsupport_strength = &f
	}
}

// AddedSupportStrength returns the value that was added to the "support_strength" field in this mutation.
func (m *BlackboardRecordMutation) AddedSupportStrength() (r float64, exists bool) {
	v := m.addsupport_strength
	if v == nil {
		return
	}
	return *v, true
}

// ResetSupportStrength resets all changes to the "support_strength" field.
func (m *BlackboardRecordMutation) ResetSupportStrength() {
	m.support_strength = nil
	m.addsupport_strength = nil
}

// SetActiveObjection sets the "active_objection" field.
func (m *BlackboardRecordMutation) SetActiveObjection(s string) {
	m.active_objection = &s
}

// ActiveObjection returns the value of the "active_objection" field in the mutation.
func (m *BlackboardRecordMutation) ActiveObjection() (r string, exists bool) {
	v := m.active_objection
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveObjection returns the old "active_objection" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldActiveObjection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveObjection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveObjection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveObjection: %w", err)
	}
	return oldValue.ActiveObjection, nil
}

// ClearActiveObjection clears the value of the "active_objection" field.
func (m *BlackboardRecordMutation) ClearActiveObjection() {
	m.active_objection = nil
	m.clearedFields[blackboardrecord.FieldActiveObjection] = struct{}{}
}

// ActiveObjectionCleared returns if the "active_objection" field was cleared in this mutation.
func (m *BlackboardRecordMutation) ActiveObjectionCleared() bool {
	_, ok := m.clearedFields[blackboardrecord.FieldActiveObjection]
	return ok
}

// ResetActiveObjection resets all changes to the "active_objection" field.
func (m *BlackboardRecordMutation) ResetActiveObjection() {
	m.active_objection = nil
	delete(m.clearedFields, blackboardrecord.FieldActiveObjection)
}

// SetAnalogyOfRecord sets the "analogy_of_record" field.
func (m *BlackboardRecordMutation) SetAnalogyOfRecord(s string) {
	m.analogy_of_record = &s
}

// AnalogyOfRecord returns the value of the "analogy_of_record" field in the mutation.
func (m *BlackboardRecordMutation) AnalogyOfRecord() (r string, exists bool) {
	v := m.analogy_of_record
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalogyOfRecord returns the old "analogy_of_record" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldAnalogyOfRecord(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalogyOfRecord is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalogyOfRecord requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalogyOfRecord: %w", err)
	}
	return oldValue.AnalogyOfRecord, nil
}

// ClearAnalogyOfRecord clears the value of the "analogy_of_record" field.
func (m *BlackboardRecordMutation) ClearAnalogyOfRecord() {
	m.analogy_of_record = nil
	m.clearedFields[blackboardrecord.FieldAnalogyOfRecord] = struct{}{}
}

// AnalogyOfRecordCleared returns if the "analogy_of_record" field was cleared in this mutation.
func (m *BlackboardRecordMutation) AnalogyOfRecordCleared() bool {
	_, ok := m.clearedFields[blackboardrecord.FieldAnalogyOfRecord]
	return ok
}

// ResetAnalogyOfRecord resets all changes to the "analogy_of_record" field.
func (m *BlackboardRecordMutation) ResetAnalogyOfRecord() {
	m.analogy_of_record = nil
	delete(m.clearedFields, blackboardrecord.FieldAnalogyOfRecord)
}

// SetCycleCount sets the "cycle_count" field.
func (m *BlackboardRecordMutation) SetCycleCount(i int) {
	m.cycle_count = &i
	m.addcycle_count = nil
}

// CycleCount returns the value of the "cycle_count" field in the mutation.
func (m *BlackboardRecordMutation) CycleCount() (r int, exists bool) {
	v := m.cycle_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCycleCount returns the old "cycle_count" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldCycleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycleCount: %w", err)
	}
	return oldValue.CycleCount, nil
}

// AddCycleCount adds i to the "cycle_count" field.
func (m *BlackboardRecordMutation) AddCycleCount(i int) {
	if m.addcycle_count != nil {
		*m.addcycle_count += i
	} else {
		m.addcycle_count = &i
	}
}

// AddedCycleCount returns the value that was added to the "cycle_count" field in this mutation.
func (m *BlackboardRecordMutation) AddedCycleCount() (r int, exists bool) {
	v := m.addcycle_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycleCount resets all changes to the "cycle_count" field.
func (m *BlackboardRecordMutation) ResetCycleCount() {
	m.cycle_count = nil
	m.addcycle_count = nil
}

// SetFrontierPool sets the "frontier_pool" field.
func (m *BlackboardRecordMutation) SetFrontierPool(value []map[string]interface{}) {
	m.frontier_pool = &value
	m.appendfrontier_pool = nil
}

// FrontierPool returns the value of the "frontier_pool" field in the mutation.
func (m *BlackboardRecordMutation) FrontierPool() (r []map[string]interface{}, exists bool) {
	v := m.frontier_pool
	if v == nil {
		return
	}
	return *v, true
}

// OldFrontierPool returns the old "frontier_pool" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldFrontierPool(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrontierPool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrontierPool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrontierPool: %w", err)
	}
	return oldValue.FrontierPool, nil
}

// AppendFrontierPool adds value to the "frontier_pool" field.
func (m *BlackboardRecordMutation) AppendFrontierPool(value []map[string]interface{}) {
	m.appendfrontier_pool = append(m.appendfrontier_pool, value...)
}

// AppendedFrontierPool returns the list of values that were appended to the "frontier_pool" field in this mutation.
func (m *BlackboardRecordMutation) AppendedFrontierPool() ([]map[string]interface{}, bool) {
	if len(m.appendfrontier_pool) == 0 {
		return nil, false
	}
	return m.appendfrontier_pool, true
}

// ClearFrontierPool clears the value of the "frontier_pool" field.
func (m *BlackboardRecordMutation) ClearFrontierPool() {
	m.frontier_pool = nil
	m.appendfrontier_pool = nil
	m.clearedFields[blackboardrecord.FieldFrontierPool] = struct{}{}
}

// FrontierPoolCleared returns if the "frontier_pool" field was cleared in this mutation.
func (m *BlackboardRecordMutation) FrontierPoolCleared() bool {
	_, ok := m.clearedFields[blackboardrecord.FieldFrontierPool]
	return ok
}

// ResetFrontierPool resets all changes to the "frontier_pool" field.
func (m *BlackboardRecordMutation) ResetFrontierPool() {
	m.frontier_pool = nil
	m.appendfrontier_pool = nil
	delete(m.clearedFields, blackboardrecord.FieldFrontierPool)
}

// SetCemetery sets the "cemetery" field.
func (m *BlackboardRecordMutation) SetCemetery(value []map[string]interface{}) {
	m.cemetery = &value
	m.appendcemetery = nil
}

// Cemetery returns the value of the "cemetery" field in the mutation.
func (m *BlackboardRecordMutation) Cemetery() (r []map[string]interface{}, exists bool) {
	v := m.cemetery
	if v == nil {
		return
	}
	return *v, true
}

// OldCemetery returns the old "cemetery" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldCemetery(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCemetery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCemetery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCemetery: %w", err)
	}
	return oldValue.Cemetery, nil
}

// AppendCemetery adds value to the "cemetery" field.
func (m *BlackboardRecordMutation) AppendCemetery(value []map[string]interface{}) {
	m.appendcemetery = append(m.appendcemetery, value...)
}

// AppendedCemetery returns the list of values that were appended to the "cemetery" field in this mutation.
func (m *BlackboardRecordMutation) AppendedCemetery() ([]map[string]interface{}, bool) {
	if len(m.appendcemetery) == 0 {
		return nil, false
	}
	return m.appendcemetery, true
}

// ClearCemetery clears the value of the "cemetery" field.
func (m *BlackboardRecordMutation) ClearCemetery() {
	m.cemetery = nil
	m.appendcemetery = nil
	m.clearedFields[blackboardrecord.FieldCemetery] = struct{}{}
}

// CemeteryCleared returns if the "cemetery" field was cleared in this mutation.
func (m *BlackboardRecordMutation) CemeteryCleared() bool {
	_, ok := m.clearedFields[blackboardrecord.FieldCemetery]
	return ok
}

// ResetCemetery resets all changes to the "cemetery" field.
func (m *BlackboardRecordMutation) ResetCemetery() {
	m.cemetery = nil
	m.appendcemetery = nil
	delete(m.clearedFields, blackboardrecord.FieldCemetery)
}

// SetGraduatedClaims sets the "graduated_claims" field.
func (m *BlackboardRecordMutation) SetGraduatedClaims(value []map[string]interface{}) {
	m.graduated_claims = &value
	m.appendgraduated_claims = nil
}

// GraduatedClaims returns the value of the "graduated_claims" field in the mutation.
func (m *BlackboardRecordMutation) GraduatedClaims() (r []map[string]interface{}, exists bool) {
	v := m.graduated_claims
	if v == nil {
		return
	}
	return *v, true
}

// OldGraduatedClaims returns the old "graduated_claims" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldGraduatedClaims(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraduatedClaims is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraduatedClaims requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraduatedClaims: %w", err)
	}
	return oldValue.GraduatedClaims, nil
}

// AppendGraduatedClaims adds value to the "graduated_claims" field.
func (m *BlackboardRecordMutation) AppendGraduatedClaims(value []map[string]interface{}) {
	m.appendgraduated_claims = append(m.appendgraduated_claims, value...)
}

// AppendedGraduatedClaims returns the list of values that were appended to the "graduated_claims" field in this mutation.
func (m *BlackboardRecordMutation) AppendedGraduatedClaims() ([]map[string]interface{}, bool) {
	if len(m.appendgraduated_claims) == 0 {
		return nil, false
	}
	return m.appendgraduated_claims, true
}

// ClearGraduatedClaims clears the value of the "graduated_claims" field.
func (m *BlackboardRecordMutation) ClearGraduatedClaims() {
	m.graduated_claims = nil
	m.appendgraduated_claims = nil
	m.clearedFields[blackboardrecord.FieldGraduatedClaims] = struct{}{}
}

// GraduatedClaimsCleared returns if the "graduated_claims" field was cleared in this mutation.
func (m *BlackboardRecordMutation) GraduatedClaimsCleared() bool {
	_, ok := m.clearedFields[blackboardrecord.FieldGraduatedClaims]
	return ok
}

// ResetGraduatedClaims resets all changes to the "graduated_claims" field.
func (m *BlackboardRecordMutation) ResetGraduatedClaims() {
	m.graduated_claims = nil
	m.appendgraduated_claims = nil
	delete(m.clearedFields, blackboardrecord.FieldGraduatedClaims)
}

// SetTranslatorFrameworks sets the "translator_frameworks" field.
func (m *BlackboardRecordMutation) SetTranslatorFrameworks(s []string) {
	m.translator_frameworks = &s
	m.appendtranslator_frameworks = nil
}

// TranslatorFrameworks returns the value of the "translator_frameworks" field in the mutation.
func (m *BlackboardRecordMutation) TranslatorFrameworks() (r []string, exists bool) {
	v := m.translator_frameworks
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslatorFrameworks returns the old "translator_frameworks" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldTranslatorFrameworks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslatorFrameworks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslatorFrameworks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslatorFrameworks: %w", err)
	}
	return oldValue.TranslatorFrameworks, nil
}

// AppendTranslatorFrameworks adds s to the "translator_frameworks" field.
func (m *BlackboardRecordMutation) AppendTranslatorFrameworks(s []string) {
	m.appendtranslator_frameworks = append(m.appendtranslator_frameworks, s...)
}

// AppendedTranslatorFrameworks returns the list of values that were appended to the "translator_frameworks" field in this mutation.
func (m *BlackboardRecordMutation) AppendedTranslatorFrameworks() ([]string, bool) {
	if len(m.appendtranslator_frameworks) == 0 {
		return nil, false
	}
	return m.appendtranslator_frameworks, true
}

// ClearTranslatorFrameworks clears the value of the "translator_frameworks" field.
func (m *BlackboardRecordMutation) ClearTranslatorFrameworks() {
	m.translator_frameworks = nil
	m.appendtranslator_frameworks = nil
	m.clearedFields[blackboardrecord.FieldTranslatorFrameworks] = struct{}{}
}

// TranslatorFrameworksCleared returns if the "translator_frameworks" field was cleared in this mutation.
func (m *BlackboardRecordMutation) TranslatorFrameworksCleared() bool {
	_, ok := m.clearedFields[blackboardrecord.FieldTranslatorFrameworks]
	return ok
}

// ResetTranslatorFrameworks resets all changes to the "translator_frameworks" field.
func (m *BlackboardRecordMutation) ResetTranslatorFrameworks() {
	m.translator_frameworks = nil
	m.appendtranslator_frameworks = nil
	delete(m.clearedFields, blackboardrecord.FieldTranslatorFrameworks)
}

// SetCostLimitUsd sets the "cost_limit_usd" field.
func (m *BlackboardRecordMutation) SetCostLimitUsd(f float64) {
	m.cost_limit_usd = &f
	m.addcost_limit_usd = nil
}

// CostLimitUsd returns the value of the "cost_limit_usd" field in the mutation.
func (m *BlackboardRecordMutation) CostLimitUsd() (r float64, exists bool) {
	v := m.cost_limit_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostLimitUsd returns the old "cost_limit_usd" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldCostLimitUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostLimitUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostLimitUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostLimitUsd: %w", err)
	}
	return oldValue.CostLimitUsd, nil
}

// AddCostLimitUsd adds f to the "cost_limit_usd" field.
func (m *BlackboardRecordMutation) AddCostLimitUsd(f float64) {
	if m.addcost_limit_usd != nil {
		*m.addcost_limit_usd += f
	} else {
		m.addcost_limit_usd = &f
	}
}

// AddedCostLimitUsd returns the value that was added to the "cost_limit_usd" field in this mutation.
func (m *BlackboardRecordMutation) AddedCostLimitUsd() (r float64, exists bool) {
	v := m.addcost_limit_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearCostLimitUsd clears the value of the "cost_limit_usd" field.
func (m *BlackboardRecordMutation) ClearCostLimitUsd() {
	m.cost_limit_usd = nil
	m.addcost_limit_usd = nil
	m.clearedFields[blackboardrecord.FieldCostLimitUsd] = struct{}{}
}

// CostLimitUsdCleared returns if the "cost_limit_usd" field was cleared in this mutation.
func (m *BlackboardRecordMutation) CostLimitUsdCleared() bool {
	_, ok := m.clearedFields[blackboardrecord.FieldCostLimitUsd]
	return ok
}

// ResetCostLimitUsd resets all changes to the "cost_limit_usd" field.
func (m *BlackboardRecordMutation) ResetCostLimitUsd() {
	m.cost_limit_usd = nil
	m.addcost_limit_usd = nil
	delete(m.clearedFields, blackboardrecord.FieldCostLimitUsd)
}

// SetCreatedAt sets the "created_at" field.
func (m *BlackboardRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlackboardRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlackboardRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BlackboardRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BlackboardRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BlackboardRecord entity.
// If the BlackboardRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BlackboardRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BlackboardRecordMutation builder.
func (m *BlackboardRecordMutation) Where(ps ...predicate.BlackboardRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlackboardRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlackboardRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlackboardRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlackboardRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlackboardRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlackboardRecord).
func (m *BlackboardRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlackboardRecordMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.session_id != nil {
		fields = append(fields, blackboardrecord.FieldSessionID)
	}
	if m.seed_claim != nil {
		fields = append(fields, blackboardrecord.FieldSeedClaim)
	}
	if m.current_claim != nil {
		fields = append(fields, blackboardrecord.FieldCurrentClaim)
	}
	if m.support_strength != nil {
		fields = append(fields, blackboardrecord.FieldSupportStrength)
	}
	if m.active_objection != nil {
		fields = append(fields, blackboardrecord.FieldActiveObjection)
	}
	if m.analogy_of_record != nil {
		fields = append(fields, blackboardrecord.FieldAnalogyOfRecord)
	}
	if m.cycle_count != nil {
		fields = append(fields, blackboardrecord.FieldCycleCount)
	}
	if m.frontier_pool != nil {
		fields = append(fields, blackboardrecord.FieldFrontierPool)
	}
	if m.cemetery != nil {
		fields = append(fields, blackboardrecord.FieldCemetery)
	}
	if m.graduated_claims != nil {
		fields = append(fields, blackboardrecord.FieldGraduatedClaims)
	}
	if m.translator_frameworks != nil {
		fields = append(fields, blackboardrecord.FieldTranslatorFrameworks)
	}
	if m.cost_limit_usd != nil {
		fields = append(fields, blackboardrecord.FieldCostLimitUsd)
	}
	if m.created_at != nil {
		fields = append(fields, blackboardrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, blackboardrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlackboardRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blackboardrecord.FieldSessionID:
		return m.SessionID()
	case blackboardrecord.FieldSeedClaim:
		return m.SeedClaim()
	case blackboardrecord.FieldCurrentClaim:
		return m.CurrentClaim()
	case blackboardrecord.FieldSupportStrength:
		return m.SupportStrength()
	case blackboardrecord.FieldActiveObjection:
		return m.ActiveObjection()
	case blackboardrecord.FieldAnalogyOfRecord:
		return m.AnalogyOfRecord()
	case blackboardrecord.FieldCycleCount:
		return m.CycleCount()
	case blackboardrecord.FieldFrontierPool:
		return m.FrontierPool()
	case blackboardrecord.FieldCemetery:
		return m.Cemetery()
	case blackboardrecord.FieldGraduatedClaims:
		return m.GraduatedClaims()
	case blackboardrecord.FieldTranslatorFrameworks:
		return m.TranslatorFrameworks()
	case blackboardrecord.FieldCostLimitUsd:
		return m.CostLimitUsd()
	case blackboardrecord.FieldCreatedAt:
		return m.CreatedAt()
	case blackboardrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlackboardRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blackboardrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case blackboardrecord.FieldSeedClaim:
		return m.OldSeedClaim(ctx)
	case blackboardrecord.FieldCurrentClaim:
		return m.OldCurrentClaim(ctx)
	case blackboardrecord.FieldSupportStrength:
		return m.OldSupportStrength(ctx)
	case blackboardrecord.FieldActiveObjection:
		return m.OldActiveObjection(ctx)
	case blackboardrecord.FieldAnalogyOfRecord:
		return m.OldAnalogyOfRecord(ctx)
	case blackboardrecord.FieldCycleCount:
		return m.OldCycleCount(ctx)
	case blackboardrecord.FieldFrontierPool:
		return m.OldFrontierPool(ctx)
	case blackboardrecord.FieldCemetery:
		return m.OldCemetery(ctx)
	case blackboardrecord.FieldGraduatedClaims:
		return m.OldGraduatedClaims(ctx)
	case blackboardrecord.FieldTranslatorFrameworks:
		return m.OldTranslatorFrameworks(ctx)
	case blackboardrecord.FieldCostLimitUsd:
		return m.OldCostLimitUsd(ctx)
	case blackboardrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case blackboardrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BlackboardRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlackboardRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blackboardrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case blackboardrecord.FieldSeedClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeedClaim(v)
		return nil
	case blackboardrecord.FieldCurrentClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentClaim(v)
		return nil
	case blackboardrecord.FieldSupportStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportStrength(v)
		return nil
	case blackboardrecord.FieldActiveObjection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveObjection(v)
		return nil
	case blackboardrecord.FieldAnalogyOfRecord:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalogyOfRecord(v)
		return nil
	case blackboardrecord.FieldCycleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycleCount(v)
		return nil
	case blackboardrecord.FieldFrontierPool:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrontierPool(v)
		return nil
	case blackboardrecord.FieldCemetery:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCemetery(v)
		return nil
	case blackboardrecord.FieldGraduatedClaims:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraduatedClaims(v)
		return nil
	case blackboardrecord.FieldTranslatorFrameworks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslatorFrameworks(v)
		return nil
	case blackboardrecord.FieldCostLimitUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostLimitUsd(v)
		return nil
	case blackboardrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case blackboardrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BlackboardRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlackboardRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsupport_strength != nil {
		fields = append(fields, blackboardrecord.FieldSupportStrength)
	}
	if m.addcycle_count != nil {
		fields = append(fields, blackboardrecord.FieldCycleCount)
	}
	if m.addcost_limit_usd != nil {
		fields = append(fields, blackboardrecord.FieldCostLimitUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlackboardRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blackboardrecord.FieldSupportStrength:
		return m.AddedSupportStrength()
	case blackboardrecord.FieldCycleCount:
		return m.AddedCycleCount()
	case blackboardrecord.FieldCostLimitUsd:
		return m.AddedCostLimitUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlackboardRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blackboardrecord.FieldSupportStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupportStrength(v)
		return nil
	case blackboardrecord.FieldCycleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycleCount(v)
		return nil
	case blackboardrecord.FieldCostLimitUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostLimitUsd(v)
		return nil
	}
	return fmt.Errorf("unknown BlackboardRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlackboardRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blackboardrecord.FieldCurrentClaim) {
		fields = append(fields, blackboardrecord.FieldCurrentClaim)
	}
	if m.FieldCleared(blackboardrecord.FieldActiveObjection) {
		fields = append(fields, blackboardrecord.FieldActiveObjection)
	}
	if m.FieldCleared(blackboardrecord.FieldAnalogyOfRecord) {
		fields = append(fields, blackboardrecord.FieldAnalogyOfRecord)
	}
	if m.FieldCleared(blackboardrecord.FieldFrontierPool) {
		fields = append(fields, blackboardrecord.FieldFrontierPool)
	}
	if m.FieldCleared(blackboardrecord.FieldCemetery) {
		fields = append(fields, blackboardrecord.FieldCemetery)
	}
	if m.FieldCleared(blackboardrecord.FieldGraduatedClaims) {
		fields = append(fields, blackboardrecord.FieldGraduatedClaims)
	}
	if m.FieldCleared(blackboardrecord.FieldTranslatorFrameworks) {
		fields = append(fields, blackboardrecord.FieldTranslatorFrameworks)
	}
	if m.FieldCleared(blackboardrecord.FieldCostLimitUsd) {
		fields = append(fields, blackboardrecord.FieldCostLimitUsd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlackboardRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlackboardRecordMutation) ClearField(name string) error {
	switch name {
	case blackboardrecord.FieldCurrentClaim:
		m.ClearCurrentClaim()
		return nil
	case blackboardrecord.FieldActiveObjection:
		m.ClearActiveObjection()
		return nil
	case blackboardrecord.FieldAnalogyOfRecord:
		m.ClearAnalogyOfRecord()
		return nil
	case blackboardrecord.FieldFrontierPool:
		m.ClearFrontierPool()
		return nil
	case blackboardrecord.FieldCemetery:
		m.ClearCemetery()
		return nil
	case blackboardrecord.FieldGraduatedClaims:
		m.ClearGraduatedClaims()
		return nil
	case blackboardrecord.FieldTranslatorFrameworks:
		m.ClearTranslatorFrameworks()
		return nil
	case blackboardrecord.FieldCostLimitUsd:
		m.ClearCostLimitUsd()
		return nil
	}
	return fmt.Errorf("unknown BlackboardRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlackboardRecordMutation) ResetField(name string) error {
	switch name {
	case blackboardrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case blackboardrecord.FieldSeedClaim:
		m.ResetSeedClaim()
		return nil
	case blackboardrecord.FieldCurrentClaim:
		m.ResetCurrentClaim()
		return nil
	case blackboardrecord.FieldSupportStrength:
		m.ResetSupportStrength()
		return nil
	case blackboardrecord.FieldActiveObjection:
		m.ResetActiveObjection()
		return nil
	case blackboardrecord.FieldAnalogyOfRecord:
		m.ResetAnalogyOfRecord()
		return nil
	case blackboardrecord.FieldCycleCount:
		m.ResetCycleCount()
		return nil
	case blackboardrecord.FieldFrontierPool:
		m.ResetFrontierPool()
		return nil
	case blackboardrecord.FieldCemetery:
		m.ResetCemetery()
		return nil
	case blackboardrecord.FieldGraduatedClaims:
		m.ResetGraduatedClaims()
		return nil
	case blackboardrecord.FieldTranslatorFrameworks:
		m.ResetTranslatorFrameworks()
		return nil
	case blackboardrecord.FieldCostLimitUsd:
		m.ResetCostLimitUsd()
		return nil
	case blackboardrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case blackboardrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BlackboardRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlackboardRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlackboardRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlackboardRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlackboardRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlackboardRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlackboardRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlackboardRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BlackboardRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlackboardRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BlackboardRecord edge %s", name)
}

// BlackboardSnapshotMutation represents an operation that mutates the BlackboardSnapshot nodes in the graph.
type BlackboardSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	blackboard_id *string
	session_id    *string
	cycle         *int
	addcycle      *int
	state         *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BlackboardSnapshot, error)
	predicates    []predicate.BlackboardSnapshot
}

var _ ent.Mutation = (*BlackboardSnapshotMutation)(nil)

// blackboardsnapshotOption allows management of the mutation configuration using functional options.
type blackboardsnapshotOption func(*BlackboardSnapshotMutation)

// newBlackboardSnapshotMutation creates new mutation for the BlackboardSnapshot entity.
func newBlackboardSnapshotMutation(c config, op Op, opts ...blackboardsnapshotOption) *BlackboardSnapshotMutation {
	m := &BlackboardSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeBlackboardSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlackboardSnapshotID sets the ID field of the mutation.
func withBlackboardSnapshotID(id int) blackboardsnapshotOption {
	return func(m *BlackboardSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *BlackboardSnapshot
		)
		m.oldValue = func(ctx context.Context) (*BlackboardSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlackboardSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlackboardSnapshot sets the old BlackboardSnapshot of the mutation.
func withBlackboardSnapshot(node *BlackboardSnapshot) blackboardsnapshotOption {
	return func(m *BlackboardSnapshotMutation) {
		m.oldValue = func(context.Context) (*BlackboardSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlackboardSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlackboardSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlackboardSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlackboardSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlackboardSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlackboardID sets the "blackboard_id" field.
func (m *BlackboardSnapshotMutation) SetBlackboardID(s string) {
	m.blackboard_id = &s
}

// BlackboardID returns the value of the "blackboard_id" field in the mutation.
func (m *BlackboardSnapshotMutation) BlackboardID() (r string, exists bool) {
	v := m.blackboard_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlackboardID returns the old "blackboard_id" field's value of the BlackboardSnapshot entity.
// If the BlackboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardSnapshotMutation) OldBlackboardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlackboardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlackboardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlackboardID: %w", err)
	}
	return oldValue.BlackboardID, nil
}

// ResetBlackboardID resets all changes to the "blackboard_id" field.
func (m *BlackboardSnapshotMutation) ResetBlackboardID() {
	m.blackboard_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *BlackboardSnapshotMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *BlackboardSnapshotMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the BlackboardSnapshot entity.
// If the BlackboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardSnapshotMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *BlackboardSnapshotMutation) ResetSessionID() {
	m.session_id = nil
}

// SetCycle sets the "cycle" field.
func (m *BlackboardSnapshotMutation) SetCycle(i int) {
	m.cycle = &i
	m.addcycle = nil
}

// Cycle returns the value of the "cycle" field in the mutation.
func (m *BlackboardSnapshotMutation) Cycle() (r int, exists bool) {
	v := m.cycle
	if v == nil {
		return
	}
	return *v, true
}

// OldCycle returns the old "cycle" field's value of the BlackboardSnapshot entity.
// If the BlackboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardSnapshotMutation) OldCycle(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycle: %w", err)
	}
	return oldValue.Cycle, nil
}

// AddCycle adds i to the "cycle" field.
func (m *BlackboardSnapshotMutation) AddCycle(i int) {
	if m.addcycle != nil {
		*m.addcycle += i
	} else {
		m.addcycle = &i
	}
}

// AddedCycle returns the value that was added to the "cycle" field in this mutation.
func (m *BlackboardSnapshotMutation) AddedCycle() (r int, exists bool) {
	v := m.addcycle
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycle resets all changes to the "cycle" field.
func (m *BlackboardSnapshotMutation) ResetCycle() {
	m.cycle = nil
	m.addcycle = nil
}

// SetState sets the "state" field.
func (m *BlackboardSnapshotMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *BlackboardSnapshotMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the BlackboardSnapshot entity.
// If the BlackboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardSnapshotMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *BlackboardSnapshotMutation) ResetState() {
	m.state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BlackboardSnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlackboardSnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlackboardSnapshot entity.
// If the BlackboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlackboardSnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlackboardSnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BlackboardSnapshotMutation builder.
func (m *BlackboardSnapshotMutation) Where(ps ...predicate.BlackboardSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlackboardSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlackboardSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlackboardSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlackboardSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlackboardSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlackboardSnapshot).
func (m *BlackboardSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlackboardSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.blackboard_id != nil {
		fields = append(fields, blackboardsnapshot.FieldBlackboardID)
	}
	if m.session_id != nil {
		fields = append(fields, blackboardsnapshot.FieldSessionID)
	}
	if m.cycle != nil {
		fields = append(fields, blackboardsnapshot.FieldCycle)
	}
	if m.state != nil {
		fields = append(fields, blackboardsnapshot.FieldState)
	}
	if m.created_at != nil {
		fields = append(fields, blackboardsnapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlackboardSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blackboardsnapshot.FieldBlackboardID:
		return m.BlackboardID()
	case blackboardsnapshot.FieldSessionID:
		return m.SessionID()
	case blackboardsnapshot.FieldCycle:
		return m.Cycle()
	case blackboardsnapshot.FieldState:
		return m.State()
	case blackboardsnapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlackboardSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blackboardsnapshot.FieldBlackboardID:
		return m.OldBlackboardID(ctx)
	case blackboardsnapshot.FieldSessionID:
		return m.OldSessionID(ctx)
	case blackboardsnapshot.FieldCycle:
		return m.OldCycle(ctx)
	case blackboardsnapshot.FieldState:
		return m.OldState(ctx)
	case blackboardsnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BlackboardSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlackboardSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blackboardsnapshot.FieldBlackboardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlackboardID(v)
		return nil
	case blackboardsnapshot.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case blackboardsnapshot.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycle(v)
		return nil
	case blackboardsnapshot.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case blackboardsnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BlackboardSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlackboardSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addcycle != nil {
		fields = append(fields, blackboardsnapshot.FieldCycle)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlackboardSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blackboardsnapshot.FieldCycle:
		return m.AddedCycle()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlackboardSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blackboardsnapshot.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycle(v)
		return nil
	}
	return fmt.Errorf("unknown BlackboardSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlackboardSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlackboardSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlackboardSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BlackboardSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlackboardSnapshotMutation) ResetField(name string) error {
	switch name {
	case blackboardsnapshot.FieldBlackboardID:
		m.ResetBlackboardID()
		return nil
	case blackboardsnapshot.FieldSessionID:
		m.ResetSessionID()
		return nil
	case blackboardsnapshot.FieldCycle:
		m.ResetCycle()
		return nil
	case blackboardsnapshot.FieldState:
		m.ResetState()
		return nil
	case blackboardsnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BlackboardSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlackboardSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlackboardSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlackboardSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlackboardSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlackboardSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlackboardSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlackboardSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BlackboardSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlackboardSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BlackboardSnapshot edge %s", name)
}

// CemeteryEntryMutation represents an operation that mutates the CemeteryEntry nodes in the graph.
type CemeteryEntryMutation struct {
	config
	op               Op
	typ              string
	id               *int
	session_id       *string
	claim            *string
	cause_of_death   *string
	final_support    *float64
	addfinal_support *float64
	cycle_killed     *int
	addcycle_killed  *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*CemeteryEntry, error)
	predicates       []predicate.CemeteryEntry
}

var _ ent.Mutation = (*CemeteryEntryMutation)(nil)

// cemeteryentryOption allows management of the mutation configuration using functional options.
type cemeteryentryOption func(*CemeteryEntryMutation)

// newCemeteryEntryMutation creates new mutation for the CemeteryEntry entity.
func newCemeteryEntryMutation(c config, op Op, opts ...cemeteryentryOption) *CemeteryEntryMutation {
	m := &CemeteryEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCemeteryEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCemeteryEntryID sets the ID field of the mutation.
func withCemeteryEntryID(id int) cemeteryentryOption {
	return func(m *CemeteryEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CemeteryEntry
		)
		m.oldValue = func(ctx context.Context) (*CemeteryEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CemeteryEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCemeteryEntry sets the old CemeteryEntry of the mutation.
func withCemeteryEntry(node *CemeteryEntry) cemeteryentryOption {
	return func(m *CemeteryEntryMutation) {
		m.oldValue = func(context.Context) (*CemeteryEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CemeteryEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CemeteryEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CemeteryEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CemeteryEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CemeteryEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *CemeteryEntryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CemeteryEntryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the CemeteryEntry entity.
// If the CemeteryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CemeteryEntryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CemeteryEntryMutation) ResetSessionID() {
	m.session_id = nil
}

// SetClaim sets the "claim" field.
func (m *CemeteryEntryMutation) SetClaim(s string) {
	m.claim = &s
}

// Claim returns the value of the "claim" field in the mutation.
func (m *CemeteryEntryMutation) Claim() (r string, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaim returns the old "claim" field's value of the CemeteryEntry entity.
// If the CemeteryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CemeteryEntryMutation) OldClaim(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaim: %w", err)
	}
	return oldValue.Claim, nil
}

// ResetClaim resets all changes to the "claim" field.
func (m *CemeteryEntryMutation) ResetClaim() {
	m.claim = nil
}

// SetCauseOfDeath sets the "cause_of_death" field.
func (m *CemeteryEntryMutation) SetCauseOfDeath(s string) {
	m.cause_of_death = &s
}

// CauseOfDeath returns the value of the "cause_of_death" field in the mutation.
func (m *CemeteryEntryMutation) CauseOfDeath() (r string, exists bool) {
	v := m.cause_of_death
	if v == nil {
		return
	}
	return *v, true
}

// OldCauseOfDeath returns the old "cause_of_death" field's value of the CemeteryEntry entity.
// If the CemeteryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CemeteryEntryMutation) OldCauseOfDeath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCauseOfDeath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCauseOfDeath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCauseOfDeath: %w", err)
	}
	return oldValue.CauseOfDeath, nil
}

// ResetCauseOfDeath resets all changes to the "cause_of_death" field.
func (m *CemeteryEntryMutation) ResetCauseOfDeath() {
	m.cause_of_death = nil
}

// SetFinalSupport sets the "final_support" field.
func (m *CemeteryEntryMutation) SetFinalSupport(f float64) {
	m.final_support = &f
	m.addfinal_support = nil
}

// FinalSupport returns the value of the "final_support" field in the mutation.
func (m *CemeteryEntryMutation) FinalSupport() (r float64, exists bool) {
	v := m.final_support
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalSupport returns the old "final_support" field's value of the CemeteryEntry entity.
// If the CemeteryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CemeteryEntryMutation) OldFinalSupport(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalSupport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalSupport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalSupport: %w", err)
	}
	return oldValue.FinalSupport, nil
}

// AddFinalSupport adds f to the "final_support" field.
func (m *CemeteryEntryMutation) AddFinalSupport(f float64) {
	if m.addfinal_support != nil {
		*m.addfinal_support += f
	} else {
		m.addfinal_support = &f
	}
}

// AddedFinalSupport returns the value that was added to the "final_support" field in this mutation.
func (m *CemeteryEntryMutation) AddedFinalSupport() (r float64, exists bool) {
	v := m.addfinal_support
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalSupport resets all changes to the "final_support" field.
func (m *CemeteryEntryMutation) ResetFinalSupport() {
	m.final_support = nil
	m.addfinal_support = nil
}

// SetCycleKilled sets the "cycle_killed" field.
func (m *CemeteryEntryMutation) SetCycleKilled(i int) {
	m.cycle_killed = &i
	m.addcycle_killed = nil
}

// CycleKilled returns the value of the "cycle_killed" field in the mutation.
func (m *CemeteryEntryMutation) CycleKilled() (r int, exists bool) {
	v := m.cycle_killed
	if v == nil {
		return
	}
	return *v, true
}

// OldCycleKilled returns the old "cycle_killed" field's value of the CemeteryEntry entity.
// If the CemeteryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CemeteryEntryMutation) OldCycleKilled(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycleKilled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycleKilled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycleKilled: %w", err)
	}
	return oldValue.CycleKilled, nil
}

// AddCycleKilled adds i to the "cycle_killed" field.
func (m *CemeteryEntryMutation) AddCycleKilled(i int) {
	if m.addcycle_killed != nil {
		*m.addcycle_killed += i
	} else {
		m.addcycle_killed = &i
	}
}

// AddedCycleKilled returns the value that was added to the "cycle_killed" field in this mutation.
func (m *CemeteryEntryMutation) AddedCycleKilled() (r int, exists bool) {
	v := m.addcycle_killed
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycleKilled resets all changes to the "cycle_killed" field.
func (m *CemeteryEntryMutation) ResetCycleKilled() {
	m.cycle_killed = nil
	m.addcycle_killed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CemeteryEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CemeteryEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CemeteryEntry entity.
// If the CemeteryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CemeteryEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CemeteryEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CemeteryEntryMutation builder.
func (m *CemeteryEntryMutation) Where(ps ...predicate.CemeteryEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CemeteryEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CemeteryEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CemeteryEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CemeteryEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CemeteryEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CemeteryEntry).
func (m *CemeteryEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CemeteryEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, cemeteryentry.FieldSessionID)
	}
	if m.claim != nil {
		fields = append(fields, cemeteryentry.FieldClaim)
	}
	if m.cause_of_death != nil {
		fields = append(fields, cemeteryentry.FieldCauseOfDeath)
	}
	if m.final_support != nil {
		fields = append(fields, cemeteryentry.FieldFinalSupport)
	}
	if m.cycle_killed != nil {
		fields = append(fields, cemeteryentry.FieldCycleKilled)
	}
	if m.created_at != nil {
		fields = append(fields, cemeteryentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CemeteryEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cemeteryentry.FieldSessionID:
		return m.SessionID()
	case cemeteryentry.FieldClaim:
		return m.Claim()
	case cemeteryentry.FieldCauseOfDeath:
		return m.CauseOfDeath()
	case cemeteryentry.FieldFinalSupport:
		return m.FinalSupport()
	case cemeteryentry.FieldCycleKilled:
		return m.CycleKilled()
	case cemeteryentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CemeteryEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cemeteryentry.FieldSessionID:
		return m.OldSessionID(ctx)
	case cemeteryentry.FieldClaim:
		return m.OldClaim(ctx)
	case cemeteryentry.FieldCauseOfDeath:
		return m.OldCauseOfDeath(ctx)
	case cemeteryentry.FieldFinalSupport:
		return m.OldFinalSupport(ctx)
	case cemeteryentry.FieldCycleKilled:
		return m.OldCycleKilled(ctx)
	case cemeteryentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CemeteryEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CemeteryEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cemeteryentry.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case cemeteryentry.FieldClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaim(v)
		return nil
	case cemeteryentry.FieldCauseOfDeath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCauseOfDeath(v)
		return nil
	case cemeteryentry.FieldFinalSupport:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalSupport(v)
		return nil
	case cemeteryentry.FieldCycleKilled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycleKilled(v)
		return nil
	case cemeteryentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CemeteryEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CemeteryEntryMutation) AddedFields() []string {
	var fields []string
	if m.addfinal_support != nil {
		fields = append(fields, cemeteryentry.FieldFinalSupport)
	}
	if m.addcycle_killed != nil {
		fields = append(fields, cemeteryentry.FieldCycleKilled)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CemeteryEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cemeteryentry.FieldFinalSupport:
		return m.AddedFinalSupport()
	case cemeteryentry.FieldCycleKilled:
		return m.AddedCycleKilled()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CemeteryEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cemeteryentry.FieldFinalSupport:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalSupport(v)
		return nil
	case cemeteryentry.FieldCycleKilled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycleKilled(v)
		return nil
	}
	return fmt.Errorf("unknown CemeteryEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CemeteryEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CemeteryEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CemeteryEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CemeteryEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CemeteryEntryMutation) ResetField(name string) error {
	switch name {
	case cemeteryentry.FieldSessionID:
		m.ResetSessionID()
		return nil
	case cemeteryentry.FieldClaim:
		m.ResetClaim()
		return nil
	case cemeteryentry.FieldCauseOfDeath:
		m.ResetCauseOfDeath()
		return nil
	case cemeteryentry.FieldFinalSupport:
		m.ResetFinalSupport()
		return nil
	case cemeteryentry.FieldCycleKilled:
		m.ResetCycleKilled()
		return nil
	case cemeteryentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CemeteryEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CemeteryEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CemeteryEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CemeteryEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CemeteryEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CemeteryEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CemeteryEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CemeteryEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CemeteryEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CemeteryEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CemeteryEntry edge %s", name)
}

// ClaimSummaryMutation represents an operation that mutates the ClaimSummary nodes in the graph.
type ClaimSummaryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	summary       *string
	cycle         *int
	addcycle      *int
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ClaimSummary, error)
	predicates    []predicate.ClaimSummary
}

var _ ent.Mutation = (*ClaimSummaryMutation)(nil)

// claimsummaryOption allows management of the mutation configuration using functional options.
type claimsummaryOption func(*ClaimSummaryMutation)

// newClaimSummaryMutation creates new mutation for the ClaimSummary entity.
func newClaimSummaryMutation(c config, op Op, opts ...claimsummaryOption) *ClaimSummaryMutation {
	m := &ClaimSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeClaimSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimSummaryID sets the ID field of the mutation.
func withClaimSummaryID(id int) claimsummaryOption {
	return func(m *ClaimSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *ClaimSummary
		)
		m.oldValue = func(ctx context.Context) (*ClaimSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClaimSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaimSummary sets the old ClaimSummary of the mutation.
func withClaimSummary(node *ClaimSummary) claimsummaryOption {
	return func(m *ClaimSummaryMutation) {
		m.oldValue = func(context.Context) (*ClaimSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimSummaryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimSummaryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClaimSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ClaimSummaryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ClaimSummaryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ClaimSummary entity.
// If the ClaimSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimSummaryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ClaimSummaryMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSummary sets the "summary" field.
func (m *ClaimSummaryMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ClaimSummaryMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ClaimSummary entity.
// If the ClaimSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimSummaryMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *ClaimSummaryMutation) ResetSummary() {
	m.summary = nil
}

// SetCycle sets the "cycle" field.
func (m *ClaimSummaryMutation) SetCycle(i int) {
	m.cycle = &i
	m.addcycle = nil
}

// Cycle returns the value of the "cycle" field in the mutation.
func (m *ClaimSummaryMutation) Cycle() (r int, exists bool) {
	v := m.cycle
	if v == nil {
		return
	}
	return *v, true
}

// OldCycle returns the old "cycle" field's value of the ClaimSummary entity.
// If the ClaimSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimSummaryMutation) OldCycle(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycle: %w", err)
	}
	return oldValue.Cycle, nil
}

// AddCycle adds i to the "cycle" field.
func (m *ClaimSummaryMutation) AddCycle(i int) {
	if m.addcycle != nil {
		*m.addcycle += i
	} else {
		m.addcycle = &i
	}
}

// AddedCycle returns the value that was added to the "cycle" field in this mutation.
func (m *ClaimSummaryMutation) AddedCycle() (r int, exists bool) {
	v := m.addcycle
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycle resets all changes to the "cycle" field.
func (m *ClaimSummaryMutation) ResetCycle() {
	m.cycle = nil
	m.addcycle = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClaimSummaryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClaimSummaryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClaimSummary entity.
// If the ClaimSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimSummaryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClaimSummaryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ClaimSummaryMutation builder.
func (m *ClaimSummaryMutation) Where(ps ...predicate.ClaimSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClaimSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClaimSummary).
func (m *ClaimSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimSummaryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, claimsummary.FieldSessionID)
	}
	if m.summary != nil {
		fields = append(fields, claimsummary.FieldSummary)
	}
	if m.cycle != nil {
		fields = append(fields, claimsummary.FieldCycle)
	}
	if m.updated_at != nil {
		fields = append(fields, claimsummary.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claimsummary.FieldSessionID:
		return m.SessionID()
	case claimsummary.FieldSummary:
		return m.Summary()
	case claimsummary.FieldCycle:
		return m.Cycle()
	case claimsummary.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claimsummary.FieldSessionID:
		return m.OldSessionID(ctx)
	case claimsummary.FieldSummary:
		return m.OldSummary(ctx)
	case claimsummary.FieldCycle:
		return m.OldCycle(ctx)
	case claimsummary.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClaimSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claimsummary.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case claimsummary.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case claimsummary.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycle(v)
		return nil
	case claimsummary.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimSummaryMutation) AddedFields() []string {
	var fields []string
	if m.addcycle != nil {
		fields = append(fields, claimsummary.FieldCycle)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case claimsummary.FieldCycle:
		return m.AddedCycle()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case claimsummary.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycle(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimSummaryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimSummaryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClaimSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimSummaryMutation) ResetField(name string) error {
	switch name {
	case claimsummary.FieldSessionID:
		m.ResetSessionID()
		return nil
	case claimsummary.FieldSummary:
		m.ResetSummary()
		return nil
	case claimsummary.FieldCycle:
		m.ResetCycle()
		return nil
	case claimsummary.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClaimSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimSummaryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimSummaryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimSummaryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClaimSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimSummaryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClaimSummary edge %s", name)
}

// ClaimTransitionMutation represents an operation that mutates the ClaimTransition nodes in the graph.
type ClaimTransitionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	session_id      *string
	cycle           *int
	addcycle        *int
	transition      *claimtransition.Transition
	from_claim      *string
	to_claim        *string
	from_support    *float64
	addfrom_support *float64
	to_support      *float64
	addto_support   *float64
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ClaimTransition, error)
	predicates      []predicate.ClaimTransition
}

var _ ent.Mutation = (*ClaimTransitionMutation)(nil)

// claimtransitionOption allows management of the mutation configuration using functional options.
type claimtransitionOption func(*ClaimTransitionMutation)

// newClaimTransitionMutation creates new mutation for the ClaimTransition entity.
func newClaimTransitionMutation(c config, op Op, opts ...claimtransitionOption) *ClaimTransitionMutation {
	m := &ClaimTransitionMutation{
		config:        c,
		op:            op,
		typ:           TypeClaimTransition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimTransitionID sets the ID field of the mutation.
func withClaimTransitionID(id int) claimtransitionOption {
	return func(m *ClaimTransitionMutation) {
		var (
			err   error
			once  sync.Once
			value *ClaimTransition
		)
		m.oldValue = func(ctx context.Context) (*ClaimTransition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClaimTransition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaimTransition sets the old ClaimTransition of the mutation.
func withClaimTransition(node *ClaimTransition) claimtransitionOption {
	return func(m *ClaimTransitionMutation) {
		m.oldValue = func(context.Context) (*ClaimTransition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimTransitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimTransitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimTransitionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimTransitionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClaimTransition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ClaimTransitionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ClaimTransitionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ClaimTransition entity.
// If the ClaimTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimTransitionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ClaimTransitionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetCycle sets the "cycle" field.
func (m *ClaimTransitionMutation) SetCycle(i int) {
	m.cycle = &i
	m.addcycle = nil
}

// Cycle returns the value of the "cycle" field in the mutation.
func (m *ClaimTransitionMutation) Cycle() (r int, exists bool) {
	v := m.cycle
	if v == nil {
		return
	}
	return *v, true
}

// OldCycle returns the old "cycle" field's value of the ClaimTransition entity.
// If the ClaimTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimTransitionMutation) OldCycle(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycle: %w", err)
	}
	return oldValue.Cycle, nil
}

// AddCycle adds i to the "cycle" field.
func (m *ClaimTransitionMutation) AddCycle(i int) {
	if m.addcycle != nil {
		*m.addcycle += i
	} else {
		m.addcycle = &i
	}
}

// AddedCycle returns the value that was added to the "cycle" field in this mutation.
func (m *ClaimTransitionMutation) AddedCycle() (r int, exists bool) {
	v := m.addcycle
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycle resets all changes to the "cycle" field.
func (m *ClaimTransitionMutation) ResetCycle() {
	m.cycle = nil
	m.addcycle = nil
}

// SetTransition sets the "transition" field.
func (m *ClaimTransitionMutation) SetTransition(c claimtransition.Transition) {
	m.transition = &c
}

// Transition returns the value of the "transition" field in the mutation.
func (m *ClaimTransitionMutation) Transition() (r claimtransition.Transition, exists bool) {
	v := m.transition
	if v == nil {
		return
	}
	return *v, true
}

// OldTransition returns the old "transition" field's value of the ClaimTransition entity.
// If the ClaimTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimTransitionMutation) OldTransition(ctx context.Context) (v claimtransition.Transition, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransition: %w", err)
	}
	return oldValue.Transition, nil
}

// ResetTransition resets all changes to the "transition" field.
func (m *ClaimTransitionMutation) ResetTransition() {
	m.transition = nil
}

// SetFromClaim sets the "from_claim" field.
func (m *ClaimTransitionMutation) SetFromClaim(s string) {
	m.from_claim = &s
}

// FromClaim returns the value of the "from_claim" field in the mutation.
func (m *ClaimTransitionMutation) FromClaim() (r string, exists bool) {
	v := m.from_claim
	if v == nil {
		return
	}
	return *v, true
}

// OldFromClaim returns the old "from_claim" field's value of the ClaimTransition entity.
// If the ClaimTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimTransitionMutation) OldFromClaim(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromClaim: %w", err)
	}
	return oldValue.FromClaim, nil
}

// ClearFromClaim clears the value of the "from_claim" field.
func (m *ClaimTransitionMutation) ClearFromClaim() {
	m.from_claim = nil
	m.clearedFields[claimtransition.FieldFromClaim] = struct{}{}
}

// FromClaimCleared returns if the "from_claim" field was cleared in this mutation.
func (m *ClaimTransitionMutation) FromClaimCleared() bool {
	_, ok := m.clearedFields[claimtransition.FieldFromClaim]
	return ok
}

// ResetFromClaim resets all changes to the "from_claim" field.
func (m *ClaimTransitionMutation) ResetFromClaim() {
	m.from_claim = nil
	delete(m.clearedFields, claimtransition.FieldFromClaim)
}

// SetToClaim sets the "to_claim" field.
func (m *ClaimTransitionMutation) SetToClaim(s string) {
	m.to_claim = &s
}

// ToClaim returns the value of the "to_claim" field in the mutation.
func (m *ClaimTransitionMutation) ToClaim() (r string, exists bool) {
	v := m.to_claim
	if v == nil {
		return
	}
	return *v, true
}

// OldToClaim returns the old "to_claim" field's value of the ClaimTransition entity.
// If the ClaimTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimTransitionMutation) OldToClaim(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToClaim: %w", err)
	}
	return oldValue.ToClaim, nil
}

// ClearToClaim clears the value of the "to_claim" field.
func (m *ClaimTransitionMutation) ClearToClaim() {
	m.to_claim = nil
	m.clearedFields[claimtransition.FieldToClaim] = struct{}{}
}

// ToClaimCleared returns if the "to_claim" field was cleared in this mutation.
func (m *ClaimTransitionMutation) ToClaimCleared() bool {
	_, ok := m.clearedFields[claimtransition.FieldToClaim]
	return ok
}

// ResetToClaim resets all changes to the "to_claim" field.
func (m *ClaimTransitionMutation) ResetToClaim() {
	m.to_claim = nil
	delete(m.clearedFields, claimtransition.FieldToClaim)
}

// SetFromSupport sets the "from_support" field.
func (m *ClaimTransitionMutation) SetFromSupport(f float64) {
	m.from_support = &f
	m.addfrom_support = nil
}

// FromSupport returns the value of the "from_support" field in the mutation.
func (m *ClaimTransitionMutation) FromSupport() (r float64, exists bool) {
	v := m.from_support
	if v == nil {
		return
	}
	return *v, true
}

// OldFromSupport returns the old "from_support" field's value of the ClaimTransition entity.
// If the ClaimTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimTransitionMutation) OldFromSupport(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromSupport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromSupport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromSupport: %w", err)
	}
	return oldValue.FromSupport, nil
}

// AddFromSupport adds f to the "from_support" field.
func (m *ClaimTransitionMutation) AddFromSupport(f float64) {
	if m.addfrom_support != nil {
		*m.addfrom_support += f
	} else {
		m.addfrom_support = &f
	}
}

// AddedFromSupport returns the value that was added to the "from_support" field in this mutation.
func (m *ClaimTransitionMutation) AddedFromSupport() (r float64, exists bool) {
	v := m.addfrom_support
	if v == nil {
		return
	}
	return *v, true
}

// ResetFromSupport resets all changes to the "from_support" field.
func (m *ClaimTransitionMutation) ResetFromSupport() {
	m.from_support = nil
	m.addfrom_support = nil
}

// SetToSupport sets the "to_support" field.
func (m *ClaimTransitionMutation) SetToSupport(f float64) {
	m.to_support = &f
	m.addto_support = nil
}

// ToSupport returns the value of the "to_support" field in the mutation.
func (m *ClaimTransitionMutation) ToSupport() (r float64, exists bool) {
	v := m.to_support
	if v == nil {
		return
	}
	return *v, true
}

// OldToSupport returns the old "to_support" field's value of the ClaimTransition entity.
// If the ClaimTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimTransitionMutation) OldToSupport(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToSupport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToSupport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToSupport: %w", err)
	}
	return oldValue.ToSupport, nil
}

// AddToSupport adds f to the "to_support" field.
func (m *ClaimTransitionMutation) AddToSupport(f float64) {
	if m.addto_support != nil {
		*m.addto_support += f
	} else {
		m.addto_support = &f
	}
}

// AddedToSupport returns the value that was added to the "to_support" field in this mutation.
func (m *ClaimTransitionMutation) AddedToSupport() (r float64, exists bool) {
	v := m.addto_support
	if v == nil {
		return
	}
	return *v, true
}

// ResetToSupport resets all changes to the "to_support" field.
func (m *ClaimTransitionMutation) ResetToSupport() {
	m.to_support = nil
	m.addto_support = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimTransitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimTransitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClaimTransition entity.
// If the ClaimTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimTransitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimTransitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ClaimTransitionMutation builder.
func (m *ClaimTransitionMutation) Where(ps ...predicate.ClaimTransition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimTransitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimTransitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClaimTransition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimTransitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimTransitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClaimTransition).
func (m *ClaimTransitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimTransitionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, claimtransition.FieldSessionID)
	}
	if m.cycle != nil {
		fields = append(fields, claimtransition.FieldCycle)
	}
	if m.transition != nil {
		fields = append(fields, claimtransition.FieldTransition)
	}
	if m.from_claim != nil {
		fields = append(fields, claimtransition.FieldFromClaim)
	}
	if m.to_claim != nil {
		fields = append(fields, claimtransition.FieldToClaim)
	}
	if m.from_support != nil {
		fields = append(fields, claimtransition.FieldFromSupport)
	}
	if m.to_support != nil {
		fields = append(fields, claimtransition.FieldToSupport)
	}
	if m.created_at != nil {
		fields = append(fields, claimtransition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimTransitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claimtransition.FieldSessionID:
		return m.SessionID()
	case claimtransition.FieldCycle:
		return m.Cycle()
	case claimtransition.FieldTransition:
		return m.Transition()
	case claimtransition.FieldFromClaim:
		return m.FromClaim()
	case claimtransition.FieldToClaim:
		return m.ToClaim()
	case claimtransition.FieldFromSupport:
		return m.FromSupport()
	case claimtransition.FieldToSupport:
		return m.ToSupport()
	case claimtransition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimTransitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claimtransition.FieldSessionID:
		return m.OldSessionID(ctx)
	case claimtransition.FieldCycle:
		return m.OldCycle(ctx)
	case claimtransition.FieldTransition:
		return m.OldTransition(ctx)
	case claimtransition.FieldFromClaim:
		return m.OldFromClaim(ctx)
	case claimtransition.FieldToClaim:
		return m.OldToClaim(ctx)
	case claimtransition.FieldFromSupport:
		return m.OldFromSupport(ctx)
	case claimtransition.FieldToSupport:
		return m.OldToSupport(ctx)
	case claimtransition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClaimTransition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimTransitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claimtransition.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case claimtransition.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycle(v)
		return nil
	case claimtransition.FieldTransition:
		v, ok := value.(claimtransition.Transition)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransition(v)
		return nil
	case claimtransition.FieldFromClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromClaim(v)
		return nil
	case claimtransition.FieldToClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToClaim(v)
		return nil
	case claimtransition.FieldFromSupport:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromSupport(v)
		return nil
	case claimtransition.FieldToSupport:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToSupport(v)
		return nil
	case claimtransition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimTransition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimTransitionMutation) AddedFields() []string {
	var fields []string
	if m.addcycle != nil {
		fields = append(fields, claimtransition.FieldCycle)
	}
	if m.addfrom_support != nil {
		fields = append(fields, claimtransition.FieldFromSupport)
	}
	if m.addto_support != nil {
		fields = append(fields, claimtransition.FieldToSupport)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimTransitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case claimtransition.FieldCycle:
		return m.AddedCycle()
	case claimtransition.FieldFromSupport:
		return m.AddedFromSupport()
	case claimtransition.FieldToSupport:
		return m.AddedToSupport()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimTransitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case claimtransition.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycle(v)
		return nil
	case claimtransition.FieldFromSupport:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFromSupport(v)
		return nil
	case claimtransition.FieldToSupport:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToSupport(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimTransition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimTransitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(claimtransition.FieldFromClaim) {
		fields = append(fields, claimtransition.FieldFromClaim)
	}
	if m.FieldCleared(claimtransition.FieldToClaim) {
		fields = append(fields, claimtransition.FieldToClaim)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimTransitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimTransitionMutation) ClearField(name string) error {
	switch name {
	case claimtransition.FieldFromClaim:
		m.ClearFromClaim()
		return nil
	case claimtransition.FieldToClaim:
		m.ClearToClaim()
		return nil
	}
	return fmt.Errorf("unknown ClaimTransition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimTransitionMutation) ResetField(name string) error {
	switch name {
	case claimtransition.FieldSessionID:
		m.ResetSessionID()
		return nil
	case claimtransition.FieldCycle:
		m.ResetCycle()
		return nil
	case claimtransition.FieldTransition:
		m.ResetTransition()
		return nil
	case claimtransition.FieldFromClaim:
		m.ResetFromClaim()
		return nil
	case claimtransition.FieldToClaim:
		m.ResetToClaim()
		return nil
	case claimtransition.FieldFromSupport:
		m.ResetFromSupport()
		return nil
	case claimtransition.FieldToSupport:
		m.ResetToSupport()
		return nil
	case claimtransition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClaimTransition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimTransitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimTransitionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimTransitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimTransitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimTransitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimTransitionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimTransitionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClaimTransition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimTransitionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClaimTransition edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	topic         *string
	payload       *[]byte
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTopic sets the "topic" field.
func (m *EventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *EventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *EventMutation) ResetTopic() {
	m.topic = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.topic != nil {
		fields = append(fields, event.FieldTopic)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldTopic:
		return m.Topic()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldTopic:
		return m.OldTopic(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case event.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldTopic:
		m.ResetTopic()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// FrontierIdeaMutation represents an operation that mutates the FrontierIdea nodes in the graph.
type FrontierIdeaMutation struct {
	config
	op               Op
	typ              string
	id               *int
	session_id       *string
	idea_id          *string
	idea_text        *string
	sponsor_count    *int
	addsponsor_count *int
	cycles_alive     *int
	addcycles_alive  *int
	activated        *bool
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*FrontierIdea, error)
	predicates       []predicate.FrontierIdea
}

var _ ent.Mutation = (*FrontierIdeaMutation)(nil)

// frontierideaOption allows management of the mutation configuration using functional options.
type frontierideaOption func(*FrontierIdeaMutation)

// newFrontierIdeaMutation creates new mutation for the FrontierIdea entity.
func newFrontierIdeaMutation(c config, op Op, opts ...frontierideaOption) *FrontierIdeaMutation {
	m := &FrontierIdeaMutation{
		config:        c,
		op:            op,
		typ:           TypeFrontierIdea,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFrontierIdeaID sets the ID field of the mutation.
func withFrontierIdeaID(id int) frontierideaOption {
	return func(m *FrontierIdeaMutation) {
		var (
			err   error
			once  sync.Once
			value *FrontierIdea
		)
		m.oldValue = func(ctx context.Context) (*FrontierIdea, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FrontierIdea.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFrontierIdea sets the old FrontierIdea of the mutation.
func withFrontierIdea(node *FrontierIdea) frontierideaOption {
	return func(m *FrontierIdeaMutation) {
		m.oldValue = func(context.Context) (*FrontierIdea, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FrontierIdeaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FrontierIdeaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FrontierIdeaMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FrontierIdeaMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FrontierIdea.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *FrontierIdeaMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *FrontierIdeaMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the FrontierIdea entity.
// If the FrontierIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrontierIdeaMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *FrontierIdeaMutation) ResetSessionID() {
	m.session_id = nil
}

// SetIdeaID sets the "idea_id" field.
func (m *FrontierIdeaMutation) SetIdeaID(s string) {
	m.idea_id = &s
}

// IdeaID returns the value of the "idea_id" field in the mutation.
func (m *FrontierIdeaMutation) IdeaID() (r string, exists bool) {
	v := m.idea_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIdeaID returns the old "idea_id" field's value of the FrontierIdea entity.
// If the FrontierIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrontierIdeaMutation) OldIdeaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdeaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdeaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdeaID: %w", err)
	}
	return oldValue.IdeaID, nil
}

// ResetIdeaID resets all changes to the "idea_id" field.
func (m *FrontierIdeaMutation) ResetIdeaID() {
	m.idea_id = nil
}

// SetIdeaText sets the "idea_text" field.
func (m *FrontierIdeaMutation) SetIdeaText(s string) {
	m.idea_text = &s
}

// IdeaText returns the value of the "idea_text" field in the mutation.
func (m *FrontierIdeaMutation) IdeaText() (r string, exists bool) {
	v := m.idea_text
	if v == nil {
		return
	}
	return *v, true
}

// OldIdeaText returns the old "idea_text" field's value of the FrontierIdea entity.
// If the FrontierIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrontierIdeaMutation) OldIdeaText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdeaText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdeaText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdeaText: %w", err)
	}
	return oldValue.IdeaText, nil
}

// ResetIdeaText resets all changes to the "idea_text" field.
func (m *FrontierIdeaMutation) ResetIdeaText() {
	m.idea_text = nil
}

// SetSponsorCount sets the "sponsor_count" field.
func (m *FrontierIdeaMutation) SetSponsorCount(i int) {
	m.sponsor_count = &i
	m.addsponsor_count = nil
}

// SponsorCount returns the value of the "sponsor_count" field in the mutation.
func (m *FrontierIdeaMutation) SponsorCount() (r int, exists bool) {
	v := m.sponsor_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSponsorCount returns the old "sponsor_count" field's value of the FrontierIdea entity.
// If the FrontierIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrontierIdeaMutation) OldSponsorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSponsorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSponsorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSponsorCount: %w", err)
	}
	return oldValue.SponsorCount, nil
}

// AddSponsorCount adds i to the "sponsor_count" field.
func (m *FrontierIdeaMutation) AddSponsorCount(i int) {
	if m.addsponsor_count != nil {
		*m.addsponsor_count += i
	} else {
		m.addsponsor_count = &i
	}
}

// AddedSponsorCount returns the value that was added to the "sponsor_count" field in this mutation.
func (m *FrontierIdeaMutation) AddedSponsorCount() (r int, exists bool) {
	v := m.addsponsor_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSponsorCount resets all changes to the "sponsor_count" field.
func (m *FrontierIdeaMutation) ResetSponsorCount() {
	m.sponsor_count = nil
	m.addsponsor_count = nil
}

// SetCyclesAlive sets the "cycles_alive" field.
func (m *FrontierIdeaMutation) SetCyclesAlive(i int) {
	m.cycles_alive = &i
	m.addcycles_alive = nil
}

// CyclesAlive returns the value of the "cycles_alive" field in the mutation.
func (m *FrontierIdeaMutation) CyclesAlive() (r int, exists bool) {
	v := m.cycles_alive
	if v == nil {
		return
	}
	return *v, true
}

// OldCyclesAlive returns the old "cycles_alive" field's value of the FrontierIdea entity.
// If the FrontierIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrontierIdeaMutation) OldCyclesAlive(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCyclesAlive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCyclesAlive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCyclesAlive: %w", err)
	}
	return oldValue.CyclesAlive, nil
}

// AddCyclesAlive adds i to the "cycles_alive" field.
func (m *FrontierIdeaMutation) AddCyclesAlive(i int) {
	if m.addcycles_alive != nil {
		*m.addcycles_alive += i
	} else {
		m.addcycles_alive = &i
	}
}

// AddedCyclesAlive returns the value that was added to the "cycles_alive" field in this mutation.
func (m *FrontierIdeaMutation) AddedCyclesAlive() (r int, exists bool) {
	v := m.addcycles_alive
	if v == nil {
		return
	}
	return *v, true
}

// ResetCyclesAlive resets all changes to the "cycles_alive" field.
func (m *FrontierIdeaMutation) ResetCyclesAlive() {
	m.cycles_alive = nil
	m.addcycles_alive = nil
}

// SetActivated sets the "activated" field.
func (m *FrontierIdeaMutation) SetActivated(b bool) {
	m.activated = &b
}

// Activated returns the value of the "activated" field in the mutation.
func (m *FrontierIdeaMutation) Activated() (r bool, exists bool) {
	v := m.activated
	if v == nil {
		return
	}
	return *v, true
}

// OldActivated returns the old "activated" field's value of the FrontierIdea entity.
// If the FrontierIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrontierIdeaMutation) OldActivated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivated: %w", err)
	}
	return oldValue.Activated, nil
}

// ResetActivated resets all changes to the "activated" field.
func (m *FrontierIdeaMutation) ResetActivated() {
	m.activated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FrontierIdeaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FrontierIdeaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FrontierIdea entity.
// If the FrontierIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrontierIdeaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FrontierIdeaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FrontierIdeaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FrontierIdeaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FrontierIdea entity.
// If the FrontierIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrontierIdeaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FrontierIdeaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FrontierIdeaMutation builder.
func (m *FrontierIdeaMutation) Where(ps ...predicate.FrontierIdea) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FrontierIdeaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FrontierIdeaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FrontierIdea, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FrontierIdeaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FrontierIdeaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FrontierIdea).
func (m *FrontierIdeaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FrontierIdeaMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, frontieridea.FieldSessionID)
	}
	if m.idea_id != nil {
		fields = append(fields, frontieridea.FieldIdeaID)
	}
	if m.idea_text != nil {
		fields = append(fields, frontieridea.FieldIdeaText)
	}
	if m.sponsor_count != nil {
		fields = append(fields, frontieridea.FieldSponsorCount)
	}
	if m.cycles_alive != nil {
		fields = append(fields, frontieridea.FieldCyclesAlive)
	}
	if m.activated != nil {
		fields = append(fields, frontieridea.FieldActivated)
	}
	if m.created_at != nil {
		fields = append(fields, frontieridea.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, frontieridea.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FrontierIdeaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case frontieridea.FieldSessionID:
		return m.SessionID()
	case frontieridea.FieldIdeaID:
		return m.IdeaID()
	case frontieridea.FieldIdeaText:
		return m.IdeaText()
	case frontieridea.FieldSponsorCount:
		return m.SponsorCount()
	case frontieridea.FieldCyclesAlive:
		return m.CyclesAlive()
	case frontieridea.FieldActivated:
		return m.Activated()
	case frontieridea.FieldCreatedAt:
		return m.CreatedAt()
	case frontieridea.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FrontierIdeaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case frontieridea.FieldSessionID:
		return m.OldSessionID(ctx)
	case frontieridea.FieldIdeaID:
		return m.OldIdeaID(ctx)
	case frontieridea.FieldIdeaText:
		return m.OldIdeaText(ctx)
	case frontieridea.FieldSponsorCount:
		return m.OldSponsorCount(ctx)
	case frontieridea.FieldCyclesAlive:
		return m.OldCyclesAlive(ctx)
	case frontieridea.FieldActivated:
		return m.OldActivated(ctx)
	case frontieridea.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case frontieridea.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FrontierIdea field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FrontierIdeaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case frontieridea.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case frontieridea.FieldIdeaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdeaID(v)
		return nil
	case frontieridea.FieldIdeaText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdeaText(v)
		return nil
	case frontieridea.FieldSponsorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSponsorCount(v)
		return nil
	case frontieridea.FieldCyclesAlive:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCyclesAlive(v)
		return nil
	case frontieridea.FieldActivated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivated(v)
		return nil
	case frontieridea.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case frontieridea.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FrontierIdea field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FrontierIdeaMutation) AddedFields() []string {
	var fields []string
	if m.addsponsor_count != nil {
		fields = append(fields, frontieridea.FieldSponsorCount)
	}
	if m.addcycles_alive != nil {
		fields = append(fields, frontieridea.FieldCyclesAlive)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FrontierIdeaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case frontieridea.FieldSponsorCount:
		return m.AddedSponsorCount()
	case frontieridea.FieldCyclesAlive:
		return m.AddedCyclesAlive()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FrontierIdeaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case frontieridea.FieldSponsorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSponsorCount(v)
		return nil
	case frontieridea.FieldCyclesAlive:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCyclesAlive(v)
		return nil
	}
	return fmt.Errorf("unknown FrontierIdea numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FrontierIdeaMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FrontierIdeaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FrontierIdeaMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FrontierIdea nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FrontierIdeaMutation) ResetField(name string) error {
	switch name {
	case frontieridea.FieldSessionID:
		m.ResetSessionID()
		return nil
	case frontieridea.FieldIdeaID:
		m.ResetIdeaID()
		return nil
	case frontieridea.FieldIdeaText:
		m.ResetIdeaText()
		return nil
	case frontieridea.FieldSponsorCount:
		m.ResetSponsorCount()
		return nil
	case frontieridea.FieldCyclesAlive:
		m.ResetCyclesAlive()
		return nil
	case frontieridea.FieldActivated:
		m.ResetActivated()
		return nil
	case frontieridea.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case frontieridea.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FrontierIdea field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FrontierIdeaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FrontierIdeaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FrontierIdeaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FrontierIdeaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FrontierIdeaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FrontierIdeaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FrontierIdeaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FrontierIdea unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FrontierIdeaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FrontierIdea edge %s", name)
}

// LLMCostMutation represents an operation that mutates the LLMCost nodes in the graph.
type LLMCostMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	cycle         *int
	addcycle      *int
	role          *string
	model         *string
	cost_usd      *float64
	addcost_usd   *float64
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LLMCost, error)
	predicates    []predicate.LLMCost
}

var _ ent.Mutation = (*LLMCostMutation)(nil)

// llmcostOption allows management of the mutation configuration using functional options.
type llmcostOption func(*LLMCostMutation)

// newLLMCostMutation creates new mutation for the LLMCost entity.
func newLLMCostMutation(c config, op Op, opts ...llmcostOption) *LLMCostMutation {
	m := &LLMCostMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMCost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMCostID sets the ID field of the mutation.
func withLLMCostID(id int) llmcostOption {
	return func(m *LLMCostMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMCost
		)
		m.oldValue = func(ctx context.Context) (*LLMCost, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMCost.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMCost sets the old LLMCost of the mutation.
func withLLMCost(node *LLMCost) llmcostOption {
	return func(m *LLMCostMutation) {
		m.oldValue = func(context.Context) (*LLMCost, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMCostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMCostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMCostMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMCostMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMCost.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *LLMCostMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LLMCostMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LLMCost entity.
// If the LLMCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCostMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LLMCostMutation) ResetSessionID() {
	m.session_id = nil
}

// SetCycle sets the "cycle" field.
func (m *LLMCostMutation) SetCycle(i int) {
	m.cycle = &i
	m.addcycle = nil
}

// Cycle returns the value of the "cycle" field in the mutation.
func (m *LLMCostMutation) Cycle() (r int, exists bool) {
	v := m.cycle
	if v == nil {
		return
	}
	return *v, true
}

// OldCycle returns the old "cycle" field's value of the LLMCost entity.
// If the LLMCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCostMutation) OldCycle(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycle: %w", err)
	}
	return oldValue.Cycle, nil
}

// AddCycle adds i to the "cycle" field.
func (m *LLMCostMutation) AddCycle(i int) {
	if m.addcycle != nil {
		*m.addcycle += i
	} else {
		m.addcycle = &i
	}
}

// AddedCycle returns the value that was added to the "cycle" field in this mutation.
func (m *LLMCostMutation) AddedCycle() (r int, exists bool) {
	v := m.addcycle
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycle resets all changes to the "cycle" field.
func (m *LLMCostMutation) ResetCycle() {
	m.cycle = nil
	m.addcycle = nil
}

// SetRole sets the "role" field.
func (m *LLMCostMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *LLMCostMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the LLMCost entity.
// If the LLMCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCostMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *LLMCostMutation) ResetRole() {
	m.role = nil
}

// SetModel sets the "model" field.
func (m *LLMCostMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMCostMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMCost entity.
// If the LLMCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCostMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMCostMutation) ResetModel() {
	m.model = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *LLMCostMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *LLMCostMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the LLMCost entity.
// If the LLMCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCostMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *LLMCostMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *LLMCostMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *LLMCostMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMCostMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMCostMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMCost entity.
// If the LLMCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCostMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMCostMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMCostMutation builder.
func (m *LLMCostMutation) Where(ps ...predicate.LLMCost) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMCostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMCostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMCost, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMCostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMCostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMCost).
func (m *LLMCostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMCostMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, llmcost.FieldSessionID)
	}
	if m.cycle != nil {
		fields = append(fields, llmcost.FieldCycle)
	}
	if m.role != nil {
		fields = append(fields, llmcost.FieldRole)
	}
	if m.model != nil {
		fields = append(fields, llmcost.FieldModel)
	}
	if m.cost_usd != nil {
		fields = append(fields, llmcost.FieldCostUsd)
	}
	if m.created_at != nil {
		fields = append(fields, llmcost.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMCostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmcost.FieldSessionID:
		return m.SessionID()
	case llmcost.FieldCycle:
		return m.Cycle()
	case llmcost.FieldRole:
		return m.Role()
	case llmcost.FieldModel:
		return m.Model()
	case llmcost.FieldCostUsd:
		return m.CostUsd()
	case llmcost.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMCostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmcost.FieldSessionID:
		return m.OldSessionID(ctx)
	case llmcost.FieldCycle:
		return m.OldCycle(ctx)
	case llmcost.FieldRole:
		return m.OldRole(ctx)
	case llmcost.FieldModel:
		return m.OldModel(ctx)
	case llmcost.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case llmcost.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMCost field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmcost.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case llmcost.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycle(v)
		return nil
	case llmcost.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case llmcost.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmcost.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case llmcost.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMCost field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMCostMutation) AddedFields() []string {
	var fields []string
	if m.addcycle != nil {
		fields = append(fields, llmcost.FieldCycle)
	}
	if m.addcost_usd != nil {
		fields = append(fields, llmcost.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMCostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmcost.FieldCycle:
		return m.AddedCycle()
	case llmcost.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmcost.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycle(v)
		return nil
	case llmcost.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown LLMCost numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMCostMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMCostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMCostMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMCost nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMCostMutation) ResetField(name string) error {
	switch name {
	case llmcost.FieldSessionID:
		m.ResetSessionID()
		return nil
	case llmcost.FieldCycle:
		m.ResetCycle()
		return nil
	case llmcost.FieldRole:
		m.ResetRole()
		return nil
	case llmcost.FieldModel:
		m.ResetModel()
		return nil
	case llmcost.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case llmcost.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMCost field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMCostMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMCostMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMCostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMCostMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMCostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMCostMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMCostMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMCost unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMCostMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMCost edge %s", name)
}

// TrajectoryPointMutation represents an operation that mutates the TrajectoryPoint nodes in the graph.
type TrajectoryPointMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	session_id          *string
	cycle_number        *int
	addcycle_number     *int
	embedding           *[]byte
	claim_text          *string
	support_strength    *float64
	addsupport_strength *float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*TrajectoryPoint, error)
	predicates          []predicate.TrajectoryPoint
}

var _ ent.Mutation = (*TrajectoryPointMutation)(nil)

// trajectorypointOption allows management of the mutation configuration using functional options.
type trajectorypointOption func(*TrajectoryPointMutation)

// newTrajectoryPointMutation creates new mutation for the TrajectoryPoint entity.
func newTrajectoryPointMutation(c config, op Op, opts ...trajectorypointOption) *TrajectoryPointMutation {
	m := &TrajectoryPointMutation{
		config:        c,
		op:            op,
		typ:           TypeTrajectoryPoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrajectoryPointID sets the ID field of the mutation.
func withTrajectoryPointID(id int) trajectorypointOption {
	return func(m *TrajectoryPointMutation) {
		var (
			err   error
			once  sync.Once
			value *TrajectoryPoint
		)
		m.oldValue = func(ctx context.Context) (*TrajectoryPoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrajectoryPoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrajectoryPoint sets the old TrajectoryPoint of the mutation.
func withTrajectoryPoint(node *TrajectoryPoint) trajectorypointOption {
	return func(m *TrajectoryPointMutation) {
		m.oldValue = func(context.Context) (*TrajectoryPoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrajectoryPointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrajectoryPointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrajectoryPointMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrajectoryPointMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrajectoryPoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TrajectoryPointMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TrajectoryPointMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TrajectoryPoint entity.
// If the TrajectoryPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryPointMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TrajectoryPointMutation) ResetSessionID() {
	m.session_id = nil
}

// SetCycleNumber sets the "cycle_number" field.
func (m *TrajectoryPointMutation) SetCycleNumber(i int) {
	m.cycle_number = &i
	m.addcycle_number = nil
}

// CycleNumber returns the value of the "cycle_number" field in the mutation.
func (m *TrajectoryPointMutation) CycleNumber() (r int, exists bool) {
	v := m.cycle_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCycleNumber returns the old "cycle_number" field's value of the TrajectoryPoint entity.
// If the TrajectoryPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryPointMutation) OldCycleNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycleNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycleNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycleNumber: %w", err)
	}
	return oldValue.CycleNumber, nil
}

// AddCycleNumber adds i to the "cycle_number" field.
func (m *TrajectoryPointMutation) AddCycleNumber(i int) {
	if m.addcycle_number != nil {
		*m.addcycle_number += i
	} else {
		m.addcycle_number = &i
	}
}

// AddedCycleNumber returns the value that was added to the "cycle_number" field in this mutation.
func (m *TrajectoryPointMutation) AddedCycleNumber() (r int, exists bool) {
	v := m.addcycle_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycleNumber resets all changes to the "cycle_number" field.
func (m *TrajectoryPointMutation) ResetCycleNumber() {
	m.cycle_number = nil
	m.addcycle_number = nil
}

// SetEmbedding sets the "embedding" field.
func (m *TrajectoryPointMutation) SetEmbedding(b []byte) {
	m.embedding = &b
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *TrajectoryPointMutation) Embedding() (r []byte, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the TrajectoryPoint entity.
// If the TrajectoryPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryPointMutation) OldEmbedding(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *TrajectoryPointMutation) ResetEmbedding() {
	m.embedding = nil
}

// SetClaimText sets the "claim_text" field.
func (m *TrajectoryPointMutation) SetClaimText(s string) {
	m.claim_text = &s
}

// ClaimText returns the value of the "claim_text" field in the mutation.
func (m *TrajectoryPointMutation) ClaimText() (r string, exists bool) {
	v := m.claim_text
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimText returns the old "claim_text" field's value of the TrajectoryPoint entity.
// If the TrajectoryPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryPointMutation) OldClaimText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimText: %w", err)
	}
	return oldValue.ClaimText, nil
}

// ResetClaimText resets all changes to the "claim_text" field.
func (m *TrajectoryPointMutation) ResetClaimText() {
	m.claim_text = nil
}

// SetSupportStrength sets the "support_strength" field.
func (m *TrajectoryPointMutation) SetSupportStrength(f float64) {
	m.support_strength = &f
	m.addsupport_strength = nil
}

// SupportStrength returns the value of the "support_strength" field in the mutation.
func (m *TrajectoryPointMutation) SupportStrength() (r float64, exists bool) {
	v := m.support_strength
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportStrength returns the old "support_strength" field's value of the TrajectoryPoint entity.
// If the TrajectoryPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryPointMutation) OldSupportStrength(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportStrength: %w", err)
	}
	return oldValue.SupportStrength, nil
}

// AddSupportStrength adds f to the "support_strength" field.
func (m *TrajectoryPointMutation) AddSupportStrength(f float64) {
	if m.addsupport_strength != nil {
		*m.addsupport_strength += f
	} else {
		m.addsupport_strength = &f
	}
}

// AddedSupportStrength returns the value that was added to the "support_strength" field in this mutation.
func (m *TrajectoryPointMutation) AddedSupportStrength() (r float64, exists bool) {
	v := m.addsupport_strength
	if v == nil {
		return
	}
	return *v, true
}

// ResetSupportStrength resets all changes to the "support_strength" field.
func (m *TrajectoryPointMutation) ResetSupportStrength() {
	m.support_strength = nil
	m.addsupport_strength = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrajectoryPointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrajectoryPointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrajectoryPoint entity.
// If the TrajectoryPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryPointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrajectoryPointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TrajectoryPointMutation builder.
func (m *TrajectoryPointMutation) Where(ps ...predicate.TrajectoryPoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrajectoryPointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrajectoryPointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrajectoryPoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrajectoryPointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrajectoryPointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrajectoryPoint).
func (m *TrajectoryPointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrajectoryPointMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, trajectorypoint.FieldSessionID)
	}
	if m.cycle_number != nil {
		fields = append(fields, trajectorypoint.FieldCycleNumber)
	}
	if m.embedding != nil {
		fields = append(fields, trajectorypoint.FieldEmbedding)
	}
	if m.claim_text != nil {
		fields = append(fields, trajectorypoint.FieldClaimText)
	}
	if m.support_strength != nil {
		fields = append(fields, trajectorypoint.FieldSupportStrength)
	}
	if m.created_at != nil {
		fields = append(fields, trajectorypoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrajectoryPointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trajectorypoint.FieldSessionID:
		return m.SessionID()
	case trajectorypoint.FieldCycleNumber:
		return m.CycleNumber()
	case trajectorypoint.FieldEmbedding:
		return m.Embedding()
	case trajectorypoint.FieldClaimText:
		return m.ClaimText()
	case trajectorypoint.FieldSupportStrength:
		return m.SupportStrength()
	case trajectorypoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrajectoryPointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trajectorypoint.FieldSessionID:
		return m.OldSessionID(ctx)
	case trajectorypoint.FieldCycleNumber:
		return m.OldCycleNumber(ctx)
	case trajectorypoint.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case trajectorypoint.FieldClaimText:
		return m.OldClaimText(ctx)
	case trajectorypoint.FieldSupportStrength:
		return m.OldSupportStrength(ctx)
	case trajectorypoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrajectoryPoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrajectoryPointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trajectorypoint.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case trajectorypoint.FieldCycleNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycleNumber(v)
		return nil
	case trajectorypoint.FieldEmbedding:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case trajectorypoint.FieldClaimText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimText(v)
		return nil
	case trajectorypoint.FieldSupportStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportStrength(v)
		return nil
	case trajectorypoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrajectoryPoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrajectoryPointMutation) AddedFields() []string {
	var fields []string
	if m.addcycle_number != nil {
		fields = append(fields, trajectorypoint.FieldCycleNumber)
	}
	if m.addsupport_strength != nil {
		fields = append(fields, trajectorypoint.FieldSupportStrength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrajectoryPointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trajectorypoint.FieldCycleNumber:
		return m.AddedCycleNumber()
	case trajectorypoint.FieldSupportStrength:
		return m.AddedSupportStrength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrajectoryPointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trajectorypoint.FieldCycleNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycleNumber(v)
		return nil
	case trajectorypoint.FieldSupportStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupportStrength(v)
		return nil
	}
	return fmt.Errorf("unknown TrajectoryPoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrajectoryPointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrajectoryPointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrajectoryPointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrajectoryPoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrajectoryPointMutation) ResetField(name string) error {
	switch name {
	case trajectorypoint.FieldSessionID:
		m.ResetSessionID()
		return nil
	case trajectorypoint.FieldCycleNumber:
		m.ResetCycleNumber()
		return nil
	case trajectorypoint.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case trajectorypoint.FieldClaimText:
		m.ResetClaimText()
		return nil
	case trajectorypoint.FieldSupportStrength:
		m.ResetSupportStrength()
		return nil
	case trajectorypoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrajectoryPoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrajectoryPointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrajectoryPointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrajectoryPointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrajectoryPointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrajectoryPointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrajectoryPointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrajectoryPointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrajectoryPoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrajectoryPointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrajectoryPoint edge %s", name)
}
