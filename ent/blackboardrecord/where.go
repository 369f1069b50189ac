// Code generated by ent, DO NOT EDIT.

package blackboardrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldSessionID, v))
}

// SeedClaim applies equality check predicate on the "seed_claim" field. It's identical to SeedClaimEQ.
func SeedClaim(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldSeedClaim, v))
}

// CurrentClaim applies equality check predicate on the "current_claim" field. It's identical to CurrentClaimEQ.
func CurrentClaim(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldCurrentClaim, v))
}

// SupportStrength applies equality check predicate on the "support_strength" field. It's identical to SupportStrengthEQ.
func SupportStrength(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldSupportStrength, v))
}

// ActiveObjection applies equality check predicate on the "active_objection" field. It's identical to ActiveObjectionEQ.
func ActiveObjection(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldActiveObjection, v))
}

// AnalogyOfRecord applies equality check predicate on the "analogy_of_record" field. It's identical to AnalogyOfRecordEQ.
func AnalogyOfRecord(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldAnalogyOfRecord, v))
}

// CycleCount applies equality check predicate on the "cycle_count" field. It's identical to CycleCountEQ.
func CycleCount(v int) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldCycleCount, v))
}

// CostLimitUsd applies equality check predicate on the "cost_limit_usd" field. It's identical to CostLimitUsdEQ.
func CostLimitUsd(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldCostLimitUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// SeedClaimEQ applies the EQ predicate on the "seed_claim" field.
func SeedClaimEQ(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldSeedClaim, v))
}

// SeedClaimNEQ applies the NEQ predicate on the "seed_claim" field.
func SeedClaimNEQ(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNEQ(FieldSeedClaim, v))
}

// SeedClaimIn applies the In predicate on the "seed_claim" field.
func SeedClaimIn(vs ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIn(FieldSeedClaim, vs...))
}

// SeedClaimNotIn applies the NotIn predicate on the "seed_claim" field.
func SeedClaimNotIn(vs ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotIn(FieldSeedClaim, vs...))
}

// SeedClaimGT applies the GT predicate on the "seed_claim" field.
func SeedClaimGT(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGT(FieldSeedClaim, v))
}

// SeedClaimGTE applies the GTE predicate on the "seed_claim" field.
func SeedClaimGTE(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGTE(FieldSeedClaim, v))
}

// SeedClaimLT applies the LT predicate on the "seed_claim" field.
func SeedClaimLT(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLT(FieldSeedClaim, v))
}

// SeedClaimLTE applies the LTE predicate on the "seed_claim" field.
func SeedClaimLTE(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLTE(FieldSeedClaim, v))
}

// SeedClaimContains applies the Contains predicate on the "seed_claim" field.
func SeedClaimContains(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldContains(FieldSeedClaim, v))
}

// SeedClaimHasPrefix applies the HasPrefix predicate on the "seed_claim" field.
func SeedClaimHasPrefix(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldHasPrefix(FieldSeedClaim, v))
}

// SeedClaimHasSuffix applies the HasSuffix predicate on the "seed_claim" field.
func SeedClaimHasSuffix(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldHasSuffix(FieldSeedClaim, v))
}

// SeedClaimEqualFold applies the EqualFold predicate on the "seed_claim" field.
func SeedClaimEqualFold(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEqualFold(FieldSeedClaim, v))
}

// SeedClaimContainsFold applies the ContainsFold predicate on the "seed_claim" field.
func SeedClaimContainsFold(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldContainsFold(FieldSeedClaim, v))
}

// CurrentClaimEQ applies the EQ predicate on the "current_claim" field.
func CurrentClaimEQ(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldCurrentClaim, v))
}

// CurrentClaimNEQ applies the NEQ predicate on the "current_claim" field.
func CurrentClaimNEQ(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNEQ(FieldCurrentClaim, v))
}

// CurrentClaimIn applies the In predicate on the "current_claim" field.
func CurrentClaimIn(vs ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIn(FieldCurrentClaim, vs...))
}

// CurrentClaimNotIn applies the NotIn predicate on the "current_claim" field.
func CurrentClaimNotIn(vs ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotIn(FieldCurrentClaim, vs...))
}

// CurrentClaimGT applies the GT predicate on the "current_claim" field.
func CurrentClaimGT(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGT(FieldCurrentClaim, v))
}

// CurrentClaimGTE applies the GTE predicate on the "current_claim" field.
func CurrentClaimGTE(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGTE(FieldCurrentClaim, v))
}

// CurrentClaimLT applies the LT predicate on the "current_claim" field.
func CurrentClaimLT(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLT(FieldCurrentClaim, v))
}

// CurrentClaimLTE applies the LTE predicate on the "current_claim" field.
func CurrentClaimLTE(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLTE(FieldCurrentClaim, v))
}

// CurrentClaimContains applies the Contains predicate on the "current_claim" field.
func CurrentClaimContains(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldContains(FieldCurrentClaim, v))
}

// CurrentClaimHasPrefix applies the HasPrefix predicate on the "current_claim" field.
func CurrentClaimHasPrefix(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldHasPrefix(FieldCurrentClaim, v))
}

// CurrentClaimHasSuffix applies the HasSuffix predicate on the "current_claim" field.
func CurrentClaimHasSuffix(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldHasSuffix(FieldCurrentClaim, v))
}

// CurrentClaimIsNil applies the IsNil predicate on the "current_claim" field.
func CurrentClaimIsNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIsNull(FieldCurrentClaim))
}

// CurrentClaimNotNil applies the NotNil predicate on the "current_claim" field.
func CurrentClaimNotNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotNull(FieldCurrentClaim))
}

// CurrentClaimEqualFold applies the EqualFold predicate on the "current_claim" field.
func CurrentClaimEqualFold(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEqualFold(FieldCurrentClaim, v))
}

// CurrentClaimContainsFold applies the ContainsFold predicate on the "current_claim" field.
func CurrentClaimContainsFold(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldContainsFold(FieldCurrentClaim, v))
}

// SupportStrengthEQ applies the EQ predicate on the "support_strength" field.
func SupportStrengthEQ(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldSupportStrength, v))
}

// SupportStrengthNEQ applies the NEQ predicate on the "support_strength" field.
func SupportStrengthNEQ(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNEQ(FieldSupportStrength, v))
}

// SupportStrengthIn applies the In predicate on the "support_strength" field.
func SupportStrengthIn(vs ...float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIn(FieldSupportStrength, vs...))
}

// SupportStrengthNotIn applies the NotIn predicate on the "support_strength" field.
func SupportStrengthNotIn(vs ...float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotIn(FieldSupportStrength, vs...))
}

// SupportStrengthGT applies the GT predicate on the "support_strength" field.
func SupportStrengthGT(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGT(FieldSupportStrength, v))
}

// SupportStrengthGTE applies the GTE predicate on the "support_strength" field.
func SupportStrengthGTE(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGTE(FieldSupportStrength, v))
}

// SupportStrengthLT applies the LT predicate on the "support_strength" field.
func SupportStrengthLT(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLT(FieldSupportStrength, v))
}

// SupportStrengthLTE applies the LTE predicate on the "support_strength" field.
func SupportStrengthLTE(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLTE(FieldSupportStrength, v))
}

// ActiveObjectionEQ applies the EQ predicate on the "active_objection" field.
func ActiveObjectionEQ(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldActiveObjection, v))
}

// ActiveObjectionNEQ applies the NEQ predicate on the "active_objection" field.
func ActiveObjectionNEQ(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNEQ(FieldActiveObjection, v))
}

// ActiveObjectionIn applies the In predicate on the "active_objection" field.
func ActiveObjectionIn(vs ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIn(FieldActiveObjection, vs...))
}

// ActiveObjectionNotIn applies the NotIn predicate on the "active_objection" field.
func ActiveObjectionNotIn(vs ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotIn(FieldActiveObjection, vs...))
}

// ActiveObjectionGT applies the GT predicate on the "active_objection" field.
func ActiveObjectionGT(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGT(FieldActiveObjection, v))
}

// ActiveObjectionGTE applies the GTE predicate on the "active_objection" field.
func ActiveObjectionGTE(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGTE(FieldActiveObjection, v))
}

// ActiveObjectionLT applies the LT predicate on the "active_objection" field.
func ActiveObjectionLT(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLT(FieldActiveObjection, v))
}

// ActiveObjectionLTE applies the LTE predicate on the "active_objection" field.
func ActiveObjectionLTE(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLTE(FieldActiveObjection, v))
}

// ActiveObjectionContains applies the Contains predicate on the "active_objection" field.
func ActiveObjectionContains(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldContains(FieldActiveObjection, v))
}

// ActiveObjectionHasPrefix applies the HasPrefix predicate on the "active_objection" field.
func ActiveObjectionHasPrefix(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldHasPrefix(FieldActiveObjection, v))
}

// ActiveObjectionHasSuffix applies the HasSuffix predicate on the "active_objection" field.
func ActiveObjectionHasSuffix(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldHasSuffix(FieldActiveObjection, v))
}

// ActiveObjectionIsNil applies the IsNil predicate on the "active_objection" field.
func ActiveObjectionIsNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIsNull(FieldActiveObjection))
}

// ActiveObjectionNotNil applies the NotNil predicate on the "active_objection" field.
func ActiveObjectionNotNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotNull(FieldActiveObjection))
}

// ActiveObjectionEqualFold applies the EqualFold predicate on the "active_objection" field.
func ActiveObjectionEqualFold(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEqualFold(FieldActiveObjection, v))
}

// ActiveObjectionContainsFold applies the ContainsFold predicate on the "active_objection" field.
func ActiveObjectionContainsFold(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldContainsFold(FieldActiveObjection, v))
}

// AnalogyOfRecordEQ applies the EQ predicate on the "analogy_of_record" field.
func AnalogyOfRecordEQ(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldAnalogyOfRecord, v))
}

// AnalogyOfRecordNEQ applies the NEQ predicate on the "analogy_of_record" field.
func AnalogyOfRecordNEQ(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNEQ(FieldAnalogyOfRecord, v))
}

// AnalogyOfRecordIn applies the In predicate on the "analogy_of_record" field.
func AnalogyOfRecordIn(vs ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIn(FieldAnalogyOfRecord, vs...))
}

// AnalogyOfRecordNotIn applies the NotIn predicate on the "analogy_of_record" field.
func AnalogyOfRecordNotIn(vs ...string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotIn(FieldAnalogyOfRecord, vs...))
}

// AnalogyOfRecordGT applies the GT predicate on the "analogy_of_record" field.
func AnalogyOfRecordGT(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGT(FieldAnalogyOfRecord, v))
}

// AnalogyOfRecordGTE applies the GTE predicate on the "analogy_of_record" field.
func AnalogyOfRecordGTE(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGTE(FieldAnalogyOfRecord, v))
}

// AnalogyOfRecordLT applies the LT predicate on the "analogy_of_record" field.
func AnalogyOfRecordLT(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLT(FieldAnalogyOfRecord, v))
}

// AnalogyOfRecordLTE applies the LTE predicate on the "analogy_of_record" field.
func AnalogyOfRecordLTE(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLTE(FieldAnalogyOfRecord, v))
}

// AnalogyOfRecordContains applies the Contains predicate on the "analogy_of_record" field.
func AnalogyOfRecordContains(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldContains(FieldAnalogyOfRecord, v))
}

// AnalogyOfRecordHasPrefix applies the HasPrefix predicate on the "analogy_of_record" field.
func AnalogyOfRecordHasPrefix(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldHasPrefix(FieldAnalogyOfRecord, v))
}

// AnalogyOfRecordHasSuffix applies the HasSuffix predicate on the "analogy_of_record" field.
func AnalogyOfRecordHasSuffix(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldHasSuffix(FieldAnalogyOfRecord, v))
}

// AnalogyOfRecordIsNil applies the IsNil predicate on the "analogy_of_record" field.
func AnalogyOfRecordIsNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIsNull(FieldAnalogyOfRecord))
}

// AnalogyOfRecordNotNil applies the NotNil predicate on the "analogy_of_record" field.
func AnalogyOfRecordNotNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotNull(FieldAnalogyOfRecord))
}

// AnalogyOfRecordEqualFold applies the EqualFold predicate on the "analogy_of_record" field.
func AnalogyOfRecordEqualFold(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEqualFold(FieldAnalogyOfRecord, v))
}

// AnalogyOfRecordContainsFold applies the ContainsFold predicate on the "analogy_of_record" field.
func AnalogyOfRecordContainsFold(v string) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldContainsFold(FieldAnalogyOfRecord, v))
}

// CycleCountEQ applies the EQ predicate on the "cycle_count" field.
func CycleCountEQ(v int) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldCycleCount, v))
}

// CycleCountNEQ applies the NEQ predicate on the "cycle_count" field.
func CycleCountNEQ(v int) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNEQ(FieldCycleCount, v))
}

// CycleCountIn applies the In predicate on the "cycle_count" field.
func CycleCountIn(vs ...int) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIn(FieldCycleCount, vs...))
}

// CycleCountNotIn applies the NotIn predicate on the "cycle_count" field.
func CycleCountNotIn(vs ...int) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotIn(FieldCycleCount, vs...))
}

// CycleCountGT applies the GT predicate on the "cycle_count" field.
func CycleCountGT(v int) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGT(FieldCycleCount, v))
}

// CycleCountGTE applies the GTE predicate on the "cycle_count" field.
func CycleCountGTE(v int) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGTE(FieldCycleCount, v))
}

// CycleCountLT applies the LT predicate on the "cycle_count" field.
func CycleCountLT(v int) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLT(FieldCycleCount, v))
}

// CycleCountLTE applies the LTE predicate on the "cycle_count" field.
func CycleCountLTE(v int) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLTE(FieldCycleCount, v))
}

// FrontierPoolIsNil applies the IsNil predicate on the "frontier_pool" field.
func FrontierPoolIsNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIsNull(FieldFrontierPool))
}

// FrontierPoolNotNil applies the NotNil predicate on the "frontier_pool" field.
func FrontierPoolNotNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotNull(FieldFrontierPool))
}

// CemeteryIsNil applies the IsNil predicate on the "cemetery" field.
func CemeteryIsNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIsNull(FieldCemetery))
}

// CemeteryNotNil applies the NotNil predicate on the "cemetery" field.
func CemeteryNotNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotNull(FieldCemetery))
}

// GraduatedClaimsIsNil applies the IsNil predicate on the "graduated_claims" field.
func GraduatedClaimsIsNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIsNull(FieldGraduatedClaims))
}

// GraduatedClaimsNotNil applies the NotNil predicate on the "graduated_claims" field.
func GraduatedClaimsNotNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotNull(FieldGraduatedClaims))
}

// TranslatorFrameworksIsNil applies the IsNil predicate on the "translator_frameworks" field.
func TranslatorFrameworksIsNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIsNull(FieldTranslatorFrameworks))
}

// TranslatorFrameworksNotNil applies the NotNil predicate on the "translator_frameworks" field.
func TranslatorFrameworksNotNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotNull(FieldTranslatorFrameworks))
}

// CostLimitUsdEQ applies the EQ predicate on the "cost_limit_usd" field.
func CostLimitUsdEQ(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldCostLimitUsd, v))
}

// CostLimitUsdNEQ applies the NEQ predicate on the "cost_limit_usd" field.
func CostLimitUsdNEQ(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNEQ(FieldCostLimitUsd, v))
}

// CostLimitUsdIn applies the In predicate on the "cost_limit_usd" field.
func CostLimitUsdIn(vs ...float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIn(FieldCostLimitUsd, vs...))
}

// CostLimitUsdNotIn applies the NotIn predicate on the "cost_limit_usd" field.
func CostLimitUsdNotIn(vs ...float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotIn(FieldCostLimitUsd, vs...))
}

// CostLimitUsdGT applies the GT predicate on the "cost_limit_usd" field.
func CostLimitUsdGT(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGT(FieldCostLimitUsd, v))
}

// CostLimitUsdGTE applies the GTE predicate on the "cost_limit_usd" field.
func CostLimitUsdGTE(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGTE(FieldCostLimitUsd, v))
}

// CostLimitUsdLT applies the LT predicate on the "cost_limit_usd" field.
func CostLimitUsdLT(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLT(FieldCostLimitUsd, v))
}

// CostLimitUsdLTE applies the LTE predicate on the "cost_limit_usd" field.
func CostLimitUsdLTE(v float64) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLTE(FieldCostLimitUsd, v))
}

// CostLimitUsdIsNil applies the IsNil predicate on the "cost_limit_usd" field.
func CostLimitUsdIsNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIsNull(FieldCostLimitUsd))
}

// CostLimitUsdNotNil applies the NotNil predicate on the "cost_limit_usd" field.
func CostLimitUsdNotNil() predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotNull(FieldCostLimitUsd))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlackboardRecord) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlackboardRecord) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlackboardRecord) predicate.BlackboardRecord {
	return predicate.BlackboardRecord(sql.NotPredicates(p))
}
