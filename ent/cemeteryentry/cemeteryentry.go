// Code generated by ent, DO NOT EDIT.

package cemeteryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cemeteryentry type in the database.
	Label = "cemetery_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldClaim holds the string denoting the claim field in the database.
	FieldClaim = "claim"
	// FieldCauseOfDeath holds the string denoting the cause_of_death field in the database.
	FieldCauseOfDeath = "cause_of_death"
	// FieldFinalSupport holds the string denoting the final_support field in the database.
	FieldFinalSupport = "final_support"
	// FieldCycleKilled holds the string denoting the cycle_killed field in the database.
	FieldCycleKilled = "cycle_killed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the cemeteryentry in the database.
	Table = "cemetery_entries"
)

// Columns holds all SQL columns for cemeteryentry fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldClaim,
	FieldCauseOfDeath,
	FieldFinalSupport,
	FieldCycleKilled,
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

// OrderOption defines the ordering options for the CemeteryEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByClaim orders the results by the claim field.
func ByClaim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaim, opts...).ToFunc()
}

// ByCauseOfDeath orders the results by the cause_of_death field.
func ByCauseOfDeath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCauseOfDeath, opts...).ToFunc()
}

// ByFinalSupport orders the results by the final_support field.
func ByFinalSupport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalSupport, opts...).ToFunc()
}

// ByCycleKilled orders the results by the cycle_killed field.
func ByCycleKilled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleKilled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
