// Code generated by ent, DO NOT EDIT.

package frontieridea

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldSessionID, v))
}

// IdeaID applies equality check predicate on the "idea_id" field. It's identical to IdeaIDEQ.
func IdeaID(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldIdeaID, v))
}

// IdeaText applies equality check predicate on the "idea_text" field. It's identical to IdeaTextEQ.
func IdeaText(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldIdeaText, v))
}

// SponsorCount applies equality check predicate on the "sponsor_count" field. It's identical to SponsorCountEQ.
func SponsorCount(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldSponsorCount, v))
}

// CyclesAlive applies equality check predicate on the "cycles_alive" field. It's identical to CyclesAliveEQ.
func CyclesAlive(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldCyclesAlive, v))
}

// Activated applies equality check predicate on the "activated" field. It's identical to ActivatedEQ.
func Activated(v bool) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldActivated, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldContainsFold(FieldSessionID, v))
}

// IdeaIDEQ applies the EQ predicate on the "idea_id" field.
func IdeaIDEQ(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldIdeaID, v))
}

// IdeaIDNEQ applies the NEQ predicate on the "idea_id" field.
func IdeaIDNEQ(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNEQ(FieldIdeaID, v))
}

// IdeaIDIn applies the In predicate on the "idea_id" field.
func IdeaIDIn(vs ...string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldIn(FieldIdeaID, vs...))
}

// IdeaIDNotIn applies the NotIn predicate on the "idea_id" field.
func IdeaIDNotIn(vs ...string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNotIn(FieldIdeaID, vs...))
}

// IdeaIDGT applies the GT predicate on the "idea_id" field.
func IdeaIDGT(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGT(FieldIdeaID, v))
}

// IdeaIDGTE applies the GTE predicate on the "idea_id" field.
func IdeaIDGTE(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGTE(FieldIdeaID, v))
}

// IdeaIDLT applies the LT predicate on the "idea_id" field.
func IdeaIDLT(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLT(FieldIdeaID, v))
}

// IdeaIDLTE applies the LTE predicate on the "idea_id" field.
func IdeaIDLTE(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLTE(FieldIdeaID, v))
}

// IdeaIDContains applies the Contains predicate on the "idea_id" field.
func IdeaIDContains(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldContains(FieldIdeaID, v))
}

// IdeaIDHasPrefix applies the HasPrefix predicate on the "idea_id" field.
func IdeaIDHasPrefix(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldHasPrefix(FieldIdeaID, v))
}

// IdeaIDHasSuffix applies the HasSuffix predicate on the "idea_id" field.
func IdeaIDHasSuffix(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldHasSuffix(FieldIdeaID, v))
}

// IdeaIDEqualFold applies the EqualFold predicate on the "idea_id" field.
func IdeaIDEqualFold(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEqualFold(FieldIdeaID, v))
}

// IdeaIDContainsFold applies the ContainsFold predicate on the "idea_id" field.
func IdeaIDContainsFold(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldContainsFold(FieldIdeaID, v))
}

// IdeaTextEQ applies the EQ predicate on the "idea_text" field.
func IdeaTextEQ(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldIdeaText, v))
}

// IdeaTextNEQ applies the NEQ predicate on the "idea_text" field.
func IdeaTextNEQ(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNEQ(FieldIdeaText, v))
}

// IdeaTextIn applies the In predicate on the "idea_text" field.
func IdeaTextIn(vs ...string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldIn(FieldIdeaText, vs...))
}

// IdeaTextNotIn applies the NotIn predicate on the "idea_text" field.
func IdeaTextNotIn(vs ...string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNotIn(FieldIdeaText, vs...))
}

// IdeaTextGT applies the GT predicate on the "idea_text" field.
func IdeaTextGT(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGT(FieldIdeaText, v))
}

// IdeaTextGTE applies the GTE predicate on the "idea_text" field.
func IdeaTextGTE(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGTE(FieldIdeaText, v))
}

// IdeaTextLT applies the LT predicate on the "idea_text" field.
func IdeaTextLT(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLT(FieldIdeaText, v))
}

// IdeaTextLTE applies the LTE predicate on the "idea_text" field.
func IdeaTextLTE(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLTE(FieldIdeaText, v))
}

// IdeaTextContains applies the Contains predicate on the "idea_text" field.
func IdeaTextContains(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldContains(FieldIdeaText, v))
}

// IdeaTextHasPrefix applies the HasPrefix predicate on the "idea_text" field.
func IdeaTextHasPrefix(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldHasPrefix(FieldIdeaText, v))
}

// IdeaTextHasSuffix applies the HasSuffix predicate on the "idea_text" field.
func IdeaTextHasSuffix(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldHasSuffix(FieldIdeaText, v))
}

// IdeaTextEqualFold applies the EqualFold predicate on the "idea_text" field.
func IdeaTextEqualFold(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEqualFold(FieldIdeaText, v))
}

// IdeaTextContainsFold applies the ContainsFold predicate on the "idea_text" field.
func IdeaTextContainsFold(v string) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldContainsFold(FieldIdeaText, v))
}

// SponsorCountEQ applies the EQ predicate on the "sponsor_count" field.
func SponsorCountEQ(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldSponsorCount, v))
}

// SponsorCountNEQ applies the NEQ predicate on the "sponsor_count" field.
func SponsorCountNEQ(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNEQ(FieldSponsorCount, v))
}

// SponsorCountIn applies the In predicate on the "sponsor_count" field.
func SponsorCountIn(vs ...int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldIn(FieldSponsorCount, vs...))
}

// SponsorCountNotIn applies the NotIn predicate on the "sponsor_count" field.
func SponsorCountNotIn(vs ...int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNotIn(FieldSponsorCount, vs...))
}

// SponsorCountGT applies the GT predicate on the "sponsor_count" field.
func SponsorCountGT(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGT(FieldSponsorCount, v))
}

// SponsorCountGTE applies the GTE predicate on the "sponsor_count" field.
func SponsorCountGTE(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGTE(FieldSponsorCount, v))
}

// SponsorCountLT applies the LT predicate on the "sponsor_count" field.
func SponsorCountLT(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLT(FieldSponsorCount, v))
}

// SponsorCountLTE applies the LTE predicate on the "sponsor_count" field.
func SponsorCountLTE(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLTE(FieldSponsorCount, v))
}

// CyclesAliveEQ applies the EQ predicate on the "cycles_alive" field.
func CyclesAliveEQ(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldCyclesAlive, v))
}

// CyclesAliveNEQ applies the NEQ predicate on the "cycles_alive" field.
func CyclesAliveNEQ(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNEQ(FieldCyclesAlive, v))
}

// CyclesAliveIn applies the In predicate on the "cycles_alive" field.
func CyclesAliveIn(vs ...int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldIn(FieldCyclesAlive, vs...))
}

// CyclesAliveNotIn applies the NotIn predicate on the "cycles_alive" field.
func CyclesAliveNotIn(vs ...int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNotIn(FieldCyclesAlive, vs...))
}

// CyclesAliveGT applies the GT predicate on the "cycles_alive" field.
func CyclesAliveGT(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGT(FieldCyclesAlive, v))
}

// CyclesAliveGTE applies the GTE predicate on the "cycles_alive" field.
func CyclesAliveGTE(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGTE(FieldCyclesAlive, v))
}

// CyclesAliveLT applies the LT predicate on the "cycles_alive" field.
func CyclesAliveLT(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLT(FieldCyclesAlive, v))
}

// CyclesAliveLTE applies the LTE predicate on the "cycles_alive" field.
func CyclesAliveLTE(v int) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLTE(FieldCyclesAlive, v))
}

// ActivatedEQ applies the EQ predicate on the "activated" field.
func ActivatedEQ(v bool) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldActivated, v))
}

// ActivatedNEQ applies the NEQ predicate on the "activated" field.
func ActivatedNEQ(v bool) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNEQ(FieldActivated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FrontierIdea) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FrontierIdea) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FrontierIdea) predicate.FrontierIdea {
	return predicate.FrontierIdea(sql.NotPredicates(p))
}
