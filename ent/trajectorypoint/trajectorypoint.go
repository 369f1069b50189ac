// Code generated by ent, DO NOT EDIT.

package trajectorypoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trajectorypoint type in the database.
	Label = "trajectory_point"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCycleNumber holds the string denoting the cycle_number field in the database.
	FieldCycleNumber = "cycle_number"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldClaimText holds the string denoting the claim_text field in the database.
	FieldClaimText = "claim_text"
	// FieldSupportStrength holds the string denoting the support_strength field in the database.
	FieldSupportStrength = "support_strength"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the trajectorypoint in the database.
	Table = "trajectory_points"
)

// Columns holds all SQL columns for trajectorypoint fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldCycleNumber,
	FieldEmbedding,
	FieldClaimText,
	FieldSupportStrength,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TrajectoryPoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCycleNumber orders the results by the cycle_number field.
func ByCycleNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleNumber, opts...).ToFunc()
}

// ByClaimText orders the results by the claim_text field.
func ByClaimText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimText, opts...).ToFunc()
}

// BySupportStrength orders the results by the support_strength field.
func BySupportStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupportStrength, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
