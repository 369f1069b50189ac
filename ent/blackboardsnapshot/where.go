// Code generated by ent, DO NOT EDIT.

package blackboardsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldLTE(FieldID, id))
}

// BlackboardID applies equality check predicate on the "blackboard_id" field. It's identical to BlackboardIDEQ.
func BlackboardID(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEQ(FieldBlackboardID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// Cycle applies equality check predicate on the "cycle" field. It's identical to CycleEQ.
func Cycle(v int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEQ(FieldCycle, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// BlackboardIDEQ applies the EQ predicate on the "blackboard_id" field.
func BlackboardIDEQ(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEQ(FieldBlackboardID, v))
}

// BlackboardIDNEQ applies the NEQ predicate on the "blackboard_id" field.
func BlackboardIDNEQ(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldNEQ(FieldBlackboardID, v))
}

// BlackboardIDIn applies the In predicate on the "blackboard_id" field.
func BlackboardIDIn(vs ...string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldIn(FieldBlackboardID, vs...))
}

// BlackboardIDNotIn applies the NotIn predicate on the "blackboard_id" field.
func BlackboardIDNotIn(vs ...string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldNotIn(FieldBlackboardID, vs...))
}

// BlackboardIDGT applies the GT predicate on the "blackboard_id" field.
func BlackboardIDGT(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldGT(FieldBlackboardID, v))
}

// BlackboardIDGTE applies the GTE predicate on the "blackboard_id" field.
func BlackboardIDGTE(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldGTE(FieldBlackboardID, v))
}

// BlackboardIDLT applies the LT predicate on the "blackboard_id" field.
func BlackboardIDLT(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldLT(FieldBlackboardID, v))
}

// BlackboardIDLTE applies the LTE predicate on the "blackboard_id" field.
func BlackboardIDLTE(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldLTE(FieldBlackboardID, v))
}

// BlackboardIDContains applies the Contains predicate on the "blackboard_id" field.
func BlackboardIDContains(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldContains(FieldBlackboardID, v))
}

// BlackboardIDHasPrefix applies the HasPrefix predicate on the "blackboard_id" field.
func BlackboardIDHasPrefix(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldHasPrefix(FieldBlackboardID, v))
}

// BlackboardIDHasSuffix applies the HasSuffix predicate on the "blackboard_id" field.
func BlackboardIDHasSuffix(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldHasSuffix(FieldBlackboardID, v))
}

// BlackboardIDEqualFold applies the EqualFold predicate on the "blackboard_id" field.
func BlackboardIDEqualFold(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEqualFold(FieldBlackboardID, v))
}

// BlackboardIDContainsFold applies the ContainsFold predicate on the "blackboard_id" field.
func BlackboardIDContainsFold(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldContainsFold(FieldBlackboardID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldContainsFold(FieldSessionID, v))
}

// CycleEQ applies the EQ predicate on the "cycle" field.
func CycleEQ(v int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEQ(FieldCycle, v))
}

// CycleNEQ applies the NEQ predicate on the "cycle" field.
func CycleNEQ(v int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldNEQ(FieldCycle, v))
}

// CycleIn applies the In predicate on the "cycle" field.
func CycleIn(vs ...int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldIn(FieldCycle, vs...))
}

// CycleNotIn applies the NotIn predicate on the "cycle" field.
func CycleNotIn(vs ...int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldNotIn(FieldCycle, vs...))
}

// CycleGT applies the GT predicate on the "cycle" field.
func CycleGT(v int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldGT(FieldCycle, v))
}

// CycleGTE applies the GTE predicate on the "cycle" field.
func CycleGTE(v int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldGTE(FieldCycle, v))
}

// CycleLT applies the LT predicate on the "cycle" field.
func CycleLT(v int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldLT(FieldCycle, v))
}

// CycleLTE applies the LTE predicate on the "cycle" field.
func CycleLTE(v int) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldLTE(FieldCycle, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlackboardSnapshot) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlackboardSnapshot) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlackboardSnapshot) predicate.BlackboardSnapshot {
	return predicate.BlackboardSnapshot(sql.NotPredicates(p))
}
