// Code generated by ent, DO NOT EDIT.

package agentcontribution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldSessionID, v))
}

// Cycle applies equality check predicate on the "cycle" field. It's identical to CycleEQ.
func Cycle(v int) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldCycle, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldRole, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldModel, v))
}

// ConfidenceDelta applies equality check predicate on the "confidence_delta" field. It's identical to ConfidenceDeltaEQ.
func ConfidenceDelta(v float64) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldConfidenceDelta, v))
}

// Accepted applies equality check predicate on the "accepted" field. It's identical to AcceptedEQ.
func Accepted(v bool) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldAccepted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldContainsFold(FieldSessionID, v))
}

// CycleEQ applies the EQ predicate on the "cycle" field.
func CycleEQ(v int) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldCycle, v))
}

// CycleNEQ applies the NEQ predicate on the "cycle" field.
func CycleNEQ(v int) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNEQ(FieldCycle, v))
}

// CycleIn applies the In predicate on the "cycle" field.
func CycleIn(vs ...int) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldIn(FieldCycle, vs...))
}

// CycleNotIn applies the NotIn predicate on the "cycle" field.
func CycleNotIn(vs ...int) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNotIn(FieldCycle, vs...))
}

// CycleGT applies the GT predicate on the "cycle" field.
func CycleGT(v int) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGT(FieldCycle, v))
}

// CycleGTE applies the GTE predicate on the "cycle" field.
func CycleGTE(v int) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGTE(FieldCycle, v))
}

// CycleLT applies the LT predicate on the "cycle" field.
func CycleLT(v int) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLT(FieldCycle, v))
}

// CycleLTE applies the LTE predicate on the "cycle" field.
func CycleLTE(v int) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLTE(FieldCycle, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldContainsFold(FieldRole, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldContainsFold(FieldModel, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNotNull(FieldOutput))
}

// ConfidenceDeltaEQ applies the EQ predicate on the "confidence_delta" field.
func ConfidenceDeltaEQ(v float64) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldConfidenceDelta, v))
}

// ConfidenceDeltaNEQ applies the NEQ predicate on the "confidence_delta" field.
func ConfidenceDeltaNEQ(v float64) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNEQ(FieldConfidenceDelta, v))
}

// ConfidenceDeltaIn applies the In predicate on the "confidence_delta" field.
func ConfidenceDeltaIn(vs ...float64) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldIn(FieldConfidenceDelta, vs...))
}

// ConfidenceDeltaNotIn applies the NotIn predicate on the "confidence_delta" field.
func ConfidenceDeltaNotIn(vs ...float64) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNotIn(FieldConfidenceDelta, vs...))
}

// ConfidenceDeltaGT applies the GT predicate on the "confidence_delta" field.
func ConfidenceDeltaGT(v float64) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGT(FieldConfidenceDelta, v))
}

// ConfidenceDeltaGTE applies the GTE predicate on the "confidence_delta" field.
func ConfidenceDeltaGTE(v float64) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGTE(FieldConfidenceDelta, v))
}

// ConfidenceDeltaLT applies the LT predicate on the "confidence_delta" field.
func ConfidenceDeltaLT(v float64) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLT(FieldConfidenceDelta, v))
}

// ConfidenceDeltaLTE applies the LTE predicate on the "confidence_delta" field.
func ConfidenceDeltaLTE(v float64) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLTE(FieldConfidenceDelta, v))
}

// AcceptedEQ applies the EQ predicate on the "accepted" field.
func AcceptedEQ(v bool) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldAccepted, v))
}

// AcceptedNEQ applies the NEQ predicate on the "accepted" field.
func AcceptedNEQ(v bool) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNEQ(FieldAccepted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentContribution {
	return predicate.AgentContribution(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentContribution) predicate.AgentContribution {
	return predicate.AgentContribution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentContribution) predicate.AgentContribution {
	return predicate.AgentContribution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentContribution) predicate.AgentContribution {
	return predicate.AgentContribution(sql.NotPredicates(p))
}
