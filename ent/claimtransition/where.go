// Code generated by ent, DO NOT EDIT.

package claimtransition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldSessionID, v))
}

// Cycle applies equality check predicate on the "cycle" field. It's identical to CycleEQ.
func Cycle(v int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldCycle, v))
}

// FromClaim applies equality check predicate on the "from_claim" field. It's identical to FromClaimEQ.
func FromClaim(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldFromClaim, v))
}

// ToClaim applies equality check predicate on the "to_claim" field. It's identical to ToClaimEQ.
func ToClaim(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldToClaim, v))
}

// FromSupport applies equality check predicate on the "from_support" field. It's identical to FromSupportEQ.
func FromSupport(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldFromSupport, v))
}

// ToSupport applies equality check predicate on the "to_support" field. It's identical to ToSupportEQ.
func ToSupport(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldToSupport, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldContainsFold(FieldSessionID, v))
}

// CycleEQ applies the EQ predicate on the "cycle" field.
func CycleEQ(v int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldCycle, v))
}

// CycleNEQ applies the NEQ predicate on the "cycle" field.
func CycleNEQ(v int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNEQ(FieldCycle, v))
}

// CycleIn applies the In predicate on the "cycle" field.
func CycleIn(vs ...int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldIn(FieldCycle, vs...))
}

// CycleNotIn applies the NotIn predicate on the "cycle" field.
func CycleNotIn(vs ...int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNotIn(FieldCycle, vs...))
}

// CycleGT applies the GT predicate on the "cycle" field.
func CycleGT(v int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGT(FieldCycle, v))
}

// CycleGTE applies the GTE predicate on the "cycle" field.
func CycleGTE(v int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGTE(FieldCycle, v))
}

// CycleLT applies the LT predicate on the "cycle" field.
func CycleLT(v int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLT(FieldCycle, v))
}

// CycleLTE applies the LTE predicate on the "cycle" field.
func CycleLTE(v int) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLTE(FieldCycle, v))
}

// TransitionEQ applies the EQ predicate on the "transition" field.
func TransitionEQ(v Transition) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldTransition, v))
}

// TransitionNEQ applies the NEQ predicate on the "transition" field.
func TransitionNEQ(v Transition) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNEQ(FieldTransition, v))
}

// TransitionIn applies the In predicate on the "transition" field.
func TransitionIn(vs ...Transition) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldIn(FieldTransition, vs...))
}

// TransitionNotIn applies the NotIn predicate on the "transition" field.
func TransitionNotIn(vs ...Transition) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNotIn(FieldTransition, vs...))
}

// FromClaimEQ applies the EQ predicate on the "from_claim" field.
func FromClaimEQ(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldFromClaim, v))
}

// FromClaimNEQ applies the NEQ predicate on the "from_claim" field.
func FromClaimNEQ(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNEQ(FieldFromClaim, v))
}

// FromClaimIn applies the In predicate on the "from_claim" field.
func FromClaimIn(vs ...string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldIn(FieldFromClaim, vs...))
}

// FromClaimNotIn applies the NotIn predicate on the "from_claim" field.
func FromClaimNotIn(vs ...string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNotIn(FieldFromClaim, vs...))
}

// FromClaimGT applies the GT predicate on the "from_claim" field.
func FromClaimGT(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGT(FieldFromClaim, v))
}

// FromClaimGTE applies the GTE predicate on the "from_claim" field.
func FromClaimGTE(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGTE(FieldFromClaim, v))
}

// FromClaimLT applies the LT predicate on the "from_claim" field.
func FromClaimLT(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLT(FieldFromClaim, v))
}

// FromClaimLTE applies the LTE predicate on the "from_claim" field.
func FromClaimLTE(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLTE(FieldFromClaim, v))
}

// FromClaimContains applies the Contains predicate on the "from_claim" field.
func FromClaimContains(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldContains(FieldFromClaim, v))
}

// FromClaimHasPrefix applies the HasPrefix predicate on the "from_claim" field.
func FromClaimHasPrefix(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldHasPrefix(FieldFromClaim, v))
}

// FromClaimHasSuffix applies the HasSuffix predicate on the "from_claim" field.
func FromClaimHasSuffix(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldHasSuffix(FieldFromClaim, v))
}

// FromClaimIsNil applies the IsNil predicate on the "from_claim" field.
func FromClaimIsNil() predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldIsNull(FieldFromClaim))
}

// FromClaimNotNil applies the NotNil predicate on the "from_claim" field.
func FromClaimNotNil() predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNotNull(FieldFromClaim))
}

// FromClaimEqualFold applies the EqualFold predicate on the "from_claim" field.
func FromClaimEqualFold(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEqualFold(FieldFromClaim, v))
}

// FromClaimContainsFold applies the ContainsFold predicate on the "from_claim" field.
func FromClaimContainsFold(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldContainsFold(FieldFromClaim, v))
}

// ToClaimEQ applies the EQ predicate on the "to_claim" field.
func ToClaimEQ(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldToClaim, v))
}

// ToClaimNEQ applies the NEQ predicate on the "to_claim" field.
func ToClaimNEQ(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNEQ(FieldToClaim, v))
}

// ToClaimIn applies the In predicate on the "to_claim" field.
func ToClaimIn(vs ...string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldIn(FieldToClaim, vs...))
}

// ToClaimNotIn applies the NotIn predicate on the "to_claim" field.
func ToClaimNotIn(vs ...string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNotIn(FieldToClaim, vs...))
}

// ToClaimGT applies the GT predicate on the "to_claim" field.
func ToClaimGT(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGT(FieldToClaim, v))
}

// ToClaimGTE applies the GTE predicate on the "to_claim" field.
func ToClaimGTE(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGTE(FieldToClaim, v))
}

// ToClaimLT applies the LT predicate on the "to_claim" field.
func ToClaimLT(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLT(FieldToClaim, v))
}

// ToClaimLTE applies the LTE predicate on the "to_claim" field.
func ToClaimLTE(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLTE(FieldToClaim, v))
}

// ToClaimContains applies the Contains predicate on the "to_claim" field.
func ToClaimContains(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldContains(FieldToClaim, v))
}

// ToClaimHasPrefix applies the HasPrefix predicate on the "to_claim" field.
func ToClaimHasPrefix(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldHasPrefix(FieldToClaim, v))
}

// ToClaimHasSuffix applies the HasSuffix predicate on the "to_claim" field.
func ToClaimHasSuffix(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldHasSuffix(FieldToClaim, v))
}

// ToClaimIsNil applies the IsNil predicate on the "to_claim" field.
func ToClaimIsNil() predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldIsNull(FieldToClaim))
}

// ToClaimNotNil applies the NotNil predicate on the "to_claim" field.
func ToClaimNotNil() predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNotNull(FieldToClaim))
}

// ToClaimEqualFold applies the EqualFold predicate on the "to_claim" field.
func ToClaimEqualFold(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEqualFold(FieldToClaim, v))
}

// ToClaimContainsFold applies the ContainsFold predicate on the "to_claim" field.
func ToClaimContainsFold(v string) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldContainsFold(FieldToClaim, v))
}

// FromSupportEQ applies the EQ predicate on the "from_support" field.
func FromSupportEQ(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldFromSupport, v))
}

// FromSupportNEQ applies the NEQ predicate on the "from_support" field.
func FromSupportNEQ(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNEQ(FieldFromSupport, v))
}

// FromSupportIn applies the In predicate on the "from_support" field.
func FromSupportIn(vs ...float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldIn(FieldFromSupport, vs...))
}

// FromSupportNotIn applies the NotIn predicate on the "from_support" field.
func FromSupportNotIn(vs ...float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNotIn(FieldFromSupport, vs...))
}

// FromSupportGT applies the GT predicate on the "from_support" field.
func FromSupportGT(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGT(FieldFromSupport, v))
}

// FromSupportGTE applies the GTE predicate on the "from_support" field.
func FromSupportGTE(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGTE(FieldFromSupport, v))
}

// FromSupportLT applies the LT predicate on the "from_support" field.
func FromSupportLT(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLT(FieldFromSupport, v))
}

// FromSupportLTE applies the LTE predicate on the "from_support" field.
func FromSupportLTE(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLTE(FieldFromSupport, v))
}

// ToSupportEQ applies the EQ predicate on the "to_support" field.
func ToSupportEQ(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldToSupport, v))
}

// ToSupportNEQ applies the NEQ predicate on the "to_support" field.
func ToSupportNEQ(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNEQ(FieldToSupport, v))
}

// ToSupportIn applies the In predicate on the "to_support" field.
func ToSupportIn(vs ...float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldIn(FieldToSupport, vs...))
}

// ToSupportNotIn applies the NotIn predicate on the "to_support" field.
func ToSupportNotIn(vs ...float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNotIn(FieldToSupport, vs...))
}

// ToSupportGT applies the GT predicate on the "to_support" field.
func ToSupportGT(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGT(FieldToSupport, v))
}

// ToSupportGTE applies the GTE predicate on the "to_support" field.
func ToSupportGTE(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGTE(FieldToSupport, v))
}

// ToSupportLT applies the LT predicate on the "to_support" field.
func ToSupportLT(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLT(FieldToSupport, v))
}

// ToSupportLTE applies the LTE predicate on the "to_support" field.
func ToSupportLTE(v float64) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLTE(FieldToSupport, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClaimTransition) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClaimTransition) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClaimTransition) predicate.ClaimTransition {
	return predicate.ClaimTransition(sql.NotPredicates(p))
}
