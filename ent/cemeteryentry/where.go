// Code generated by ent, DO NOT EDIT.

package cemeteryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldSessionID, v))
}

// Claim applies equality check predicate on the "claim" field. It's identical to ClaimEQ.
func Claim(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldClaim, v))
}

// CauseOfDeath applies equality check predicate on the "cause_of_death" field. It's identical to CauseOfDeathEQ.
func CauseOfDeath(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldCauseOfDeath, v))
}

// FinalSupport applies equality check predicate on the "final_support" field. It's identical to FinalSupportEQ.
func FinalSupport(v float64) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldFinalSupport, v))
}

// CycleKilled applies equality check predicate on the "cycle_killed" field. It's identical to CycleKilledEQ.
func CycleKilled(v int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldCycleKilled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldContainsFold(FieldSessionID, v))
}

// ClaimEQ applies the EQ predicate on the "claim" field.
func ClaimEQ(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldClaim, v))
}

// ClaimNEQ applies the NEQ predicate on the "claim" field.
func ClaimNEQ(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNEQ(FieldClaim, v))
}

// ClaimIn applies the In predicate on the "claim" field.
func ClaimIn(vs ...string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldIn(FieldClaim, vs...))
}

// ClaimNotIn applies the NotIn predicate on the "claim" field.
func ClaimNotIn(vs ...string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNotIn(FieldClaim, vs...))
}

// ClaimGT applies the GT predicate on the "claim" field.
func ClaimGT(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGT(FieldClaim, v))
}

// ClaimGTE applies the GTE predicate on the "claim" field.
func ClaimGTE(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGTE(FieldClaim, v))
}

// ClaimLT applies the LT predicate on the "claim" field.
func ClaimLT(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLT(FieldClaim, v))
}

// ClaimLTE applies the LTE predicate on the "claim" field.
func ClaimLTE(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLTE(FieldClaim, v))
}

// ClaimContains applies the Contains predicate on the "claim" field.
func ClaimContains(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldContains(FieldClaim, v))
}

// ClaimHasPrefix applies the HasPrefix predicate on the "claim" field.
func ClaimHasPrefix(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldHasPrefix(FieldClaim, v))
}

// ClaimHasSuffix applies the HasSuffix predicate on the "claim" field.
func ClaimHasSuffix(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldHasSuffix(FieldClaim, v))
}

// ClaimEqualFold applies the EqualFold predicate on the "claim" field.
func ClaimEqualFold(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEqualFold(FieldClaim, v))
}

// ClaimContainsFold applies the ContainsFold predicate on the "claim" field.
func ClaimContainsFold(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldContainsFold(FieldClaim, v))
}

// CauseOfDeathEQ applies the EQ predicate on the "cause_of_death" field.
func CauseOfDeathEQ(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldCauseOfDeath, v))
}

// CauseOfDeathNEQ applies the NEQ predicate on the "cause_of_death" field.
func CauseOfDeathNEQ(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNEQ(FieldCauseOfDeath, v))
}

// CauseOfDeathIn applies the In predicate on the "cause_of_death" field.
func CauseOfDeathIn(vs ...string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldIn(FieldCauseOfDeath, vs...))
}

// CauseOfDeathNotIn applies the NotIn predicate on the "cause_of_death" field.
func CauseOfDeathNotIn(vs ...string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNotIn(FieldCauseOfDeath, vs...))
}

// CauseOfDeathGT applies the GT predicate on the "cause_of_death" field.
func CauseOfDeathGT(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGT(FieldCauseOfDeath, v))
}

// CauseOfDeathGTE applies the GTE predicate on the "cause_of_death" field.
func CauseOfDeathGTE(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGTE(FieldCauseOfDeath, v))
}

// CauseOfDeathLT applies the LT predicate on the "cause_of_death" field.
func CauseOfDeathLT(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLT(FieldCauseOfDeath, v))
}

// CauseOfDeathLTE applies the LTE predicate on the "cause_of_death" field.
func CauseOfDeathLTE(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLTE(FieldCauseOfDeath, v))
}

// CauseOfDeathContains applies the Contains predicate on the "cause_of_death" field.
func CauseOfDeathContains(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldContains(FieldCauseOfDeath, v))
}

// CauseOfDeathHasPrefix applies the HasPrefix predicate on the "cause_of_death" field.
func CauseOfDeathHasPrefix(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldHasPrefix(FieldCauseOfDeath, v))
}

// CauseOfDeathHasSuffix applies the HasSuffix predicate on the "cause_of_death" field.
func CauseOfDeathHasSuffix(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldHasSuffix(FieldCauseOfDeath, v))
}

// CauseOfDeathEqualFold applies the EqualFold predicate on the "cause_of_death" field.
func CauseOfDeathEqualFold(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEqualFold(FieldCauseOfDeath, v))
}

// CauseOfDeathContainsFold applies the ContainsFold predicate on the "cause_of_death" field.
func CauseOfDeathContainsFold(v string) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldContainsFold(FieldCauseOfDeath, v))
}

// FinalSupportEQ applies the EQ predicate on the "final_support" field.
func FinalSupportEQ(v float64) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldFinalSupport, v))
}

// FinalSupportNEQ applies the NEQ predicate on the "final_support" field.
func FinalSupportNEQ(v float64) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNEQ(FieldFinalSupport, v))
}

// FinalSupportIn applies the In predicate on the "final_support" field.
func FinalSupportIn(vs ...float64) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldIn(FieldFinalSupport, vs...))
}

// FinalSupportNotIn applies the NotIn predicate on the "final_support" field.
func FinalSupportNotIn(vs ...float64) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNotIn(FieldFinalSupport, vs...))
}

// FinalSupportGT applies the GT predicate on the "final_support" field.
func FinalSupportGT(v float64) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGT(FieldFinalSupport, v))
}

// FinalSupportGTE applies the GTE predicate on the "final_support" field.
func FinalSupportGTE(v float64) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGTE(FieldFinalSupport, v))
}

// FinalSupportLT applies the LT predicate on the "final_support" field.
func FinalSupportLT(v float64) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLT(FieldFinalSupport, v))
}

// FinalSupportLTE applies the LTE predicate on the "final_support" field.
func FinalSupportLTE(v float64) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLTE(FieldFinalSupport, v))
}

// CycleKilledEQ applies the EQ predicate on the "cycle_killed" field.
func CycleKilledEQ(v int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldCycleKilled, v))
}

// CycleKilledNEQ applies the NEQ predicate on the "cycle_killed" field.
func CycleKilledNEQ(v int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNEQ(FieldCycleKilled, v))
}

// CycleKilledIn applies the In predicate on the "cycle_killed" field.
func CycleKilledIn(vs ...int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldIn(FieldCycleKilled, vs...))
}

// CycleKilledNotIn applies the NotIn predicate on the "cycle_killed" field.
func CycleKilledNotIn(vs ...int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNotIn(FieldCycleKilled, vs...))
}

// CycleKilledGT applies the GT predicate on the "cycle_killed" field.
func CycleKilledGT(v int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGT(FieldCycleKilled, v))
}

// CycleKilledGTE applies the GTE predicate on the "cycle_killed" field.
func CycleKilledGTE(v int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGTE(FieldCycleKilled, v))
}

// CycleKilledLT applies the LT predicate on the "cycle_killed" field.
func CycleKilledLT(v int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLT(FieldCycleKilled, v))
}

// CycleKilledLTE applies the LTE predicate on the "cycle_killed" field.
func CycleKilledLTE(v int) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLTE(FieldCycleKilled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CemeteryEntry) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CemeteryEntry) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CemeteryEntry) predicate.CemeteryEntry {
	return predicate.CemeteryEntry(sql.NotPredicates(p))
}
