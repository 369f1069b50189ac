// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/cemeteryentry"
)

// CemeteryEntry is the model entity for the CemeteryEntry schema.
type CemeteryEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Full-text searchable
	Claim string `json:"claim,omitempty"`
	// CauseOfDeath holds the value of the "cause_of_death" field.
	CauseOfDeath string `json:"cause_of_death,omitempty"`
	// FinalSupport holds the value of the "final_support" field.
	FinalSupport float64 `json:"final_support,omitempty"`
	// CycleKilled holds the value of the "cycle_killed" field.
	CycleKilled int `json:"cycle_killed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CemeteryEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cemeteryentry.FieldFinalSupport:
			values[i] = new(sql.NullFloat64)
		case cemeteryentry.FieldID, cemeteryentry.FieldCycleKilled:
			values[i] = new(sql.NullInt64)
		case cemeteryentry.FieldSessionID, cemeteryentry.FieldClaim, cemeteryentry.FieldCauseOfDeath:
			values[i] = new(sql.NullString)
		case cemeteryentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CemeteryEntry fields.
func (_m *CemeteryEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cemeteryentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cemeteryentry.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case cemeteryentry.FieldClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim", values[i])
			} else if value.Valid {
				_m.Claim = value.String
			}
		case cemeteryentry.FieldCauseOfDeath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cause_of_death", values[i])
			} else if value.Valid {
				_m.CauseOfDeath = value.String
			}
		case cemeteryentry.FieldFinalSupport:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_support", values[i])
			} else if value.Valid {
				_m.FinalSupport = value.Float64
			}
		case cemeteryentry.FieldCycleKilled:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_killed", values[i])
			} else if value.Valid {
				_m.CycleKilled = int(value.Int64)
			}
		case cemeteryentry.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CemeteryEntry.
// This includes values selected through modifiers, order, etc.
func (_m *CemeteryEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CemeteryEntry.
// Note that you need to call CemeteryEntry.Unwrap() before calling this method if this CemeteryEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CemeteryEntry) Update() *CemeteryEntryUpdateOne {
	return NewCemeteryEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CemeteryEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CemeteryEntry) Unwrap() *CemeteryEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CemeteryEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CemeteryEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CemeteryEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("claim=")
	builder.WriteString(_m.Claim)
	builder.WriteString(", ")
	builder.WriteString("cause_of_death=")
	builder.WriteString(_m.CauseOfDeath)
	builder.WriteString(", ")
	builder.WriteString("final_support=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalSupport))
	builder.WriteString(", ")
	builder.WriteString("cycle_killed=")
	builder.WriteString(fmt.Sprintf("%v", _m.CycleKilled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CemeteryEntries is a parsable slice of CemeteryEntry.
type CemeteryEntries []*CemeteryEntry
