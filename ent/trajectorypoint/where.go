// Code generated by ent, DO NOT EDIT.

package trajectorypoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldSessionID, v))
}

// CycleNumber applies equality check predicate on the "cycle_number" field. It's identical to CycleNumberEQ.
func CycleNumber(v int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldCycleNumber, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v []byte) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldEmbedding, v))
}

// ClaimText applies equality check predicate on the "claim_text" field. It's identical to ClaimTextEQ.
func ClaimText(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldClaimText, v))
}

// SupportStrength applies equality check predicate on the "support_strength" field. It's identical to SupportStrengthEQ.
func SupportStrength(v float64) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldSupportStrength, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldContainsFold(FieldSessionID, v))
}

// CycleNumberEQ applies the EQ predicate on the "cycle_number" field.
func CycleNumberEQ(v int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldCycleNumber, v))
}

// CycleNumberNEQ applies the NEQ predicate on the "cycle_number" field.
func CycleNumberNEQ(v int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNEQ(FieldCycleNumber, v))
}

// CycleNumberIn applies the In predicate on the "cycle_number" field.
func CycleNumberIn(vs ...int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldIn(FieldCycleNumber, vs...))
}

// CycleNumberNotIn applies the NotIn predicate on the "cycle_number" field.
func CycleNumberNotIn(vs ...int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNotIn(FieldCycleNumber, vs...))
}

// CycleNumberGT applies the GT predicate on the "cycle_number" field.
func CycleNumberGT(v int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGT(FieldCycleNumber, v))
}

// CycleNumberGTE applies the GTE predicate on the "cycle_number" field.
func CycleNumberGTE(v int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGTE(FieldCycleNumber, v))
}

// CycleNumberLT applies the LT predicate on the "cycle_number" field.
func CycleNumberLT(v int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLT(FieldCycleNumber, v))
}

// CycleNumberLTE applies the LTE predicate on the "cycle_number" field.
func CycleNumberLTE(v int) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLTE(FieldCycleNumber, v))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v []byte) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v []byte) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...[]byte) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...[]byte) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v []byte) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v []byte) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v []byte) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v []byte) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLTE(FieldEmbedding, v))
}

// ClaimTextEQ applies the EQ predicate on the "claim_text" field.
func ClaimTextEQ(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldClaimText, v))
}

// ClaimTextNEQ applies the NEQ predicate on the "claim_text" field.
func ClaimTextNEQ(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNEQ(FieldClaimText, v))
}

// ClaimTextIn applies the In predicate on the "claim_text" field.
func ClaimTextIn(vs ...string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldIn(FieldClaimText, vs...))
}

// ClaimTextNotIn applies the NotIn predicate on the "claim_text" field.
func ClaimTextNotIn(vs ...string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNotIn(FieldClaimText, vs...))
}

// ClaimTextGT applies the GT predicate on the "claim_text" field.
func ClaimTextGT(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGT(FieldClaimText, v))
}

// ClaimTextGTE applies the GTE predicate on the "claim_text" field.
func ClaimTextGTE(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGTE(FieldClaimText, v))
}

// ClaimTextLT applies the LT predicate on the "claim_text" field.
func ClaimTextLT(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLT(FieldClaimText, v))
}

// ClaimTextLTE applies the LTE predicate on the "claim_text" field.
func ClaimTextLTE(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLTE(FieldClaimText, v))
}

// ClaimTextContains applies the Contains predicate on the "claim_text" field.
func ClaimTextContains(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldContains(FieldClaimText, v))
}

// ClaimTextHasPrefix applies the HasPrefix predicate on the "claim_text" field.
func ClaimTextHasPrefix(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldHasPrefix(FieldClaimText, v))
}

// ClaimTextHasSuffix applies the HasSuffix predicate on the "claim_text" field.
func ClaimTextHasSuffix(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldHasSuffix(FieldClaimText, v))
}

// ClaimTextEqualFold applies the EqualFold predicate on the "claim_text" field.
func ClaimTextEqualFold(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEqualFold(FieldClaimText, v))
}

// ClaimTextContainsFold applies the ContainsFold predicate on the "claim_text" field.
func ClaimTextContainsFold(v string) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldContainsFold(FieldClaimText, v))
}

// SupportStrengthEQ applies the EQ predicate on the "support_strength" field.
func SupportStrengthEQ(v float64) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldSupportStrength, v))
}

// SupportStrengthNEQ applies the NEQ predicate on the "support_strength" field.
func SupportStrengthNEQ(v float64) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNEQ(FieldSupportStrength, v))
}

// SupportStrengthIn applies the In predicate on the "support_strength" field.
func SupportStrengthIn(vs ...float64) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldIn(FieldSupportStrength, vs...))
}

// SupportStrengthNotIn applies the NotIn predicate on the "support_strength" field.
func SupportStrengthNotIn(vs ...float64) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNotIn(FieldSupportStrength, vs...))
}

// SupportStrengthGT applies the GT predicate on the "support_strength" field.
func SupportStrengthGT(v float64) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGT(FieldSupportStrength, v))
}

// SupportStrengthGTE applies the GTE predicate on the "support_strength" field.
func SupportStrengthGTE(v float64) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGTE(FieldSupportStrength, v))
}

// SupportStrengthLT applies the LT predicate on the "support_strength" field.
func SupportStrengthLT(v float64) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLT(FieldSupportStrength, v))
}

// SupportStrengthLTE applies the LTE predicate on the "support_strength" field.
func SupportStrengthLTE(v float64) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLTE(FieldSupportStrength, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrajectoryPoint) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrajectoryPoint) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrajectoryPoint) predicate.TrajectoryPoint {
	return predicate.TrajectoryPoint(sql.NotPredicates(p))
}
