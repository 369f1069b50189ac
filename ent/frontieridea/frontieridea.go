// Code generated by ent, DO NOT EDIT.

package frontieridea

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the frontieridea type in the database.
	Label = "frontier_idea"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldIdeaID holds the string denoting the idea_id field in the database.
	FieldIdeaID = "idea_id"
	// FieldIdeaText holds the string denoting the idea_text field in the database.
	FieldIdeaText = "idea_text"
	// FieldSponsorCount holds the string denoting the sponsor_count field in the database.
	FieldSponsorCount = "sponsor_count"
	// FieldCyclesAlive holds the string denoting the cycles_alive field in the database.
	FieldCyclesAlive = "cycles_alive"
	// FieldActivated holds the string denoting the activated field in the database.
	FieldActivated = "activated"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the frontieridea in the database.
	Table = "frontier_ideas"
)

// Columns holds all SQL columns for frontieridea fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldIdeaID,
	FieldIdeaText,
	FieldSponsorCount,
	FieldCyclesAlive,
	FieldActivated,
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
	// DefaultSponsorCount holds the default value on creation for the "sponsor_count" field.
	DefaultSponsorCount int
	// DefaultCyclesAlive holds the default value on creation for the "cycles_alive" field.
	DefaultCyclesAlive int
	// DefaultActivated holds the default value on creation for the "activated" field.
	DefaultActivated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the FrontierIdea queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByIdeaID orders the results by the idea_id field.
func ByIdeaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdeaID, opts...).ToFunc()
}

// ByIdeaText orders the results by the idea_text field.
func ByIdeaText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdeaText, opts...).ToFunc()
}

// BySponsorCount orders the results by the sponsor_count field.
func BySponsorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSponsorCount, opts...).ToFunc()
}

// ByCyclesAlive orders the results by the cycles_alive field.
func ByCyclesAlive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCyclesAlive, opts...).ToFunc()
}

// ByActivated orders the results by the activated field.
func ByActivated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivated, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
