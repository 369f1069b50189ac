// Code generated by ent, DO NOT EDIT.

package agentcontribution

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentcontribution type in the database.
	Label = "agent_contribution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "contribution_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCycle holds the string denoting the cycle field in the database.
	FieldCycle = "cycle"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldConfidenceDelta holds the string denoting the confidence_delta field in the database.
	FieldConfidenceDelta = "confidence_delta"
	// FieldAccepted holds the string denoting the accepted field in the database.
	FieldAccepted = "accepted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the agentcontribution in the database.
	Table = "agent_contributions"
)

// Columns holds all SQL columns for agentcontribution fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldCycle,
	FieldRole,
	FieldModel,
	FieldOutput,
	FieldConfidenceDelta,
	FieldAccepted,
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
	// DefaultConfidenceDelta holds the default value on creation for the "confidence_delta" field.
	DefaultConfidenceDelta float64
	// DefaultAccepted holds the default value on creation for the "accepted" field.
	DefaultAccepted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentContribution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCycle orders the results by the cycle field.
func ByCycle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycle, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByConfidenceDelta orders the results by the confidence_delta field.
func ByConfidenceDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceDelta, opts...).ToFunc()
}

// ByAccepted orders the results by the accepted field.
func ByAccepted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccepted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
