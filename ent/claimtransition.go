// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/claimtransition"
)

// ClaimTransition is the model entity for the ClaimTransition schema.
type ClaimTransition struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Cycle holds the value of the "cycle" field.
	Cycle int `json:"cycle,omitempty"`
	// Transition holds the value of the "transition" field.
	Transition claimtransition.Transition `json:"transition,omitempty"`
	// FromClaim holds the value of the "from_claim" field.
	FromClaim string `json:"from_claim,omitempty"`
	// ToClaim holds the value of the "to_claim" field.
	ToClaim string `json:"to_claim,omitempty"`
	// FromSupport holds the value of the "from_support" field.
	FromSupport float64 `json:"from_support,omitempty"`
	// ToSupport holds the value of the "to_support" field.
	ToSupport float64 `json:"to_support,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClaimTransition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case claimtransition.FieldFromSupport, claimtransition.FieldToSupport:
			values[i] = new(sql.NullFloat64)
		case claimtransition.FieldID, claimtransition.FieldCycle:
			values[i] = new(sql.NullInt64)
		case claimtransition.FieldSessionID, claimtransition.FieldTransition, claimtransition.FieldFromClaim, claimtransition.FieldToClaim:
			values[i] = new(sql.NullString)
		case claimtransition.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClaimTransition fields.
func (_m *ClaimTransition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case claimtransition.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case claimtransition.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case claimtransition.FieldCycle:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycle", values[i])
			} else if value.Valid {
				_m.Cycle = int(value.Int64)
			}
		case claimtransition.FieldTransition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transition", values[i])
			} else if value.Valid {
				_m.Transition = claimtransition.Transition(value.String)
			}
		case claimtransition.FieldFromClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_claim", values[i])
			} else if value.Valid {
				_m.FromClaim = value.String
			}
		case claimtransition.FieldToClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_claim", values[i])
			} else if value.Valid {
				_m.ToClaim = value.String
			}
		case claimtransition.FieldFromSupport:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field from_support", values[i])
			} else if value.Valid {
				_m.FromSupport = value.Float64
			}
		case claimtransition.FieldToSupport:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field to_support", values[i])
			} else if value.Valid {
				_m.ToSupport = value.Float64
			}
		case claimtransition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClaimTransition.
// This includes values selected through modifiers, order, etc.
func (_m *ClaimTransition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ClaimTransition.
// Note that you need to call ClaimTransition.Unwrap() before calling this method if this ClaimTransition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClaimTransition) Update() *ClaimTransitionUpdateOne {
	return NewClaimTransitionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClaimTransition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClaimTransition) Unwrap() *ClaimTransition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClaimTransition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClaimTransition) String() string {
	var builder strings.Builder
	builder.WriteString("ClaimTransition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("cycle=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cycle))
	builder.WriteString(", ")
	builder.WriteString("transition=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transition))
	builder.WriteString(", ")
	builder.WriteString("from_claim=")
	builder.WriteString(_m.FromClaim)
	builder.WriteString(", ")
	builder.WriteString("to_claim=")
	builder.WriteString(_m.ToClaim)
	builder.WriteString(", ")
	builder.WriteString("from_support=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromSupport))
	builder.WriteString(", ")
	builder.WriteString("to_support=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToSupport))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClaimTransitions is a parsable slice of ClaimTransition.
type ClaimTransitions []*ClaimTransition
