// Code generated by ent, DO NOT EDIT.

package blackboardrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the blackboardrecord type in the database.
	Label = "blackboard_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "blackboard_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSeedClaim holds the string denoting the seed_claim field in the database.
	FieldSeedClaim = "seed_claim"
	// FieldCurrentClaim holds the string denoting the current_claim field in the database.
	FieldCurrentClaim = "current_claim"
	// FieldSupportStrength holds the string denoting the support_strength field in the database.
	FieldSupportStrength = "support_strength"
	// FieldActiveObjection holds the string denoting the active_objection field in the database.
	FieldActiveObjection = "active_objection"
	// FieldAnalogyOfRecord holds the string denoting the analogy_of_record field in the database.
	FieldAnalogyOfRecord = "analogy_of_record"
	// FieldCycleCount holds the string denoting the cycle_count field in the database.
	FieldCycleCount = "cycle_count"
	// FieldFrontierPool holds the string denoting the frontier_pool field in the database.
	FieldFrontierPool = "frontier_pool"
	// FieldCemetery holds the string denoting the cemetery field in the database.
	FieldCemetery = "cemetery"
	// FieldGraduatedClaims holds the string denoting the graduated_claims field in the database.
	FieldGraduatedClaims = "graduated_claims"
	// FieldTranslatorFrameworks holds the string denoting the translator_frameworks field in the database.
	FieldTranslatorFrameworks = "translator_frameworks"
	// FieldCostLimitUsd holds the string denoting the cost_limit_usd field in the database.
	FieldCostLimitUsd = "cost_limit_usd"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the blackboardrecord in the database.
	Table = "blackboard_records"
)

// Columns holds all SQL columns for blackboardrecord fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldSeedClaim,
	FieldCurrentClaim,
	FieldSupportStrength,
	FieldActiveObjection,
	FieldAnalogyOfRecord,
	FieldCycleCount,
	FieldFrontierPool,
	FieldCemetery,
	FieldGraduatedClaims,
	FieldTranslatorFrameworks,
	FieldCostLimitUsd,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSupportStrength holds the default value on creation for the "support_strength" field.
	DefaultSupportStrength float64
	// DefaultCycleCount holds the default value on creation for the "cycle_count" field.
	DefaultCycleCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the BlackboardRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySeedClaim orders the results by the seed_claim field.
func BySeedClaim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeedClaim, opts...).ToFunc()
}

// ByCurrentClaim orders the results by the current_claim field.
func ByCurrentClaim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentClaim, opts...).ToFunc()
}

// BySupportStrength orders the results by the support_strength field.
func BySupportStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupportStrength, opts...).ToFunc()
}

// ByActiveObjection orders the results by the active_objection field.
func ByActiveObjection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveObjection, opts...).ToFunc()
}

// ByAnalogyOfRecord orders the results by the analogy_of_record field.
func ByAnalogyOfRecord(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalogyOfRecord, opts...).ToFunc()
}

// ByCycleCount orders the results by the cycle_count field.
func ByCycleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleCount, opts...).ToFunc()
}

// ByCostLimitUsd orders the results by the cost_limit_usd field.
func ByCostLimitUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostLimitUsd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
