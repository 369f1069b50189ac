// Code generated by ent, DO NOT EDIT.

package claimtransition

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the claimtransition type in the database.
	Label = "claim_transition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCycle holds the string denoting the cycle field in the database.
	FieldCycle = "cycle"
	// FieldTransition holds the string denoting the transition field in the database.
	FieldTransition = "transition"
	// FieldFromClaim holds the string denoting the from_claim field in the database.
	FieldFromClaim = "from_claim"
	// FieldToClaim holds the string denoting the to_claim field in the database.
	FieldToClaim = "to_claim"
	// FieldFromSupport holds the string denoting the from_support field in the database.
	FieldFromSupport = "from_support"
	// FieldToSupport holds the string denoting the to_support field in the database.
	FieldToSupport = "to_support"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the claimtransition in the database.
	Table = "claim_transitions"
)

// Columns holds all SQL columns for claimtransition fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldCycle,
	FieldTransition,
	FieldFromClaim,
	FieldToClaim,
	FieldFromSupport,
	FieldToSupport,
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
	// DefaultFromSupport holds the default value on creation for the "from_support" field.
	DefaultFromSupport float64
	// DefaultToSupport holds the default value on creation for the "to_support" field.
	DefaultToSupport float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Transition defines the type for the "transition" enum field.
type Transition string

// Transition values.
const (
	TransitionRefinement   Transition = "refinement"
	TransitionPivot        Transition = "pivot"
	TransitionDeath        Transition = "death"
	TransitionResurrection Transition = "resurrection"
	TransitionGraduation   Transition = "graduation"
)

func (t Transition) String() string {
	return string(t)
}

// TransitionValidator is a validator for the "transition" field enum values. It is called by the builders before save.
func TransitionValidator(t Transition) error {
	switch t {
	case TransitionRefinement, TransitionPivot, TransitionDeath, TransitionResurrection, TransitionGraduation:
		return nil
	default:
		return fmt.Errorf("claimtransition: invalid enum value for transition field: %q", t)
	}
}

// OrderOption defines the ordering options for the ClaimTransition queries.
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

// ByTransition orders the results by the transition field.
func ByTransition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransition, opts...).ToFunc()
}

// ByFromClaim orders the results by the from_claim field.
func ByFromClaim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromClaim, opts...).ToFunc()
}

// ByToClaim orders the results by the to_claim field.
func ByToClaim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToClaim, opts...).ToFunc()
}

// ByFromSupport orders the results by the from_support field.
func ByFromSupport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromSupport, opts...).ToFunc()
}

// ByToSupport orders the results by the to_support field.
func ByToSupport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToSupport, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
