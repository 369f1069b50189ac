// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/frontieridea"
)

// FrontierIdea is the model entity for the FrontierIdea schema.
type FrontierIdea struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// IdeaID holds the value of the "idea_id" field.
	IdeaID string `json:"idea_id,omitempty"`
	// IdeaText holds the value of the "idea_text" field.
	IdeaText string `json:"idea_text,omitempty"`
	// SponsorCount holds the value of the "sponsor_count" field.
	SponsorCount int `json:"sponsor_count,omitempty"`
	// CyclesAlive holds the value of the "cycles_alive" field.
	CyclesAlive int `json:"cycles_alive,omitempty"`
	// Activated holds the value of the "activated" field.
	Activated bool `json:"activated,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FrontierIdea) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case frontieridea.FieldActivated:
			values[i] = new(sql.NullBool)
		case frontieridea.FieldID, frontieridea.FieldSponsorCount, frontieridea.FieldCyclesAlive:
			values[i] = new(sql.NullInt64)
		case frontieridea.FieldSessionID, frontieridea.FieldIdeaID, frontieridea.FieldIdeaText:
			values[i] = new(sql.NullString)
		case frontieridea.FieldCreatedAt, frontieridea.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FrontierIdea fields.
func (_m *FrontierIdea) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case frontieridea.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case frontieridea.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case frontieridea.FieldIdeaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idea_id", values[i])
			} else if value.Valid {
				_m.IdeaID = value.String
			}
		case frontieridea.FieldIdeaText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idea_text", values[i])
			} else if value.Valid {
				_m.IdeaText = value.String
			}
		case frontieridea.FieldSponsorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sponsor_count", values[i])
			} else if value.Valid {
				_m.SponsorCount = int(value.Int64)
			}
		case frontieridea.FieldCyclesAlive:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycles_alive", values[i])
			} else if value.Valid {
				_m.CyclesAlive = int(value.Int64)
			}
		case frontieridea.FieldActivated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field activated", values[i])
			} else if value.Valid {
				_m.Activated = value.Bool
			}
		case frontieridea.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case frontieridea.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FrontierIdea.
// This includes values selected through modifiers, order, etc.
func (_m *FrontierIdea) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FrontierIdea.
// Note that you need to call FrontierIdea.Unwrap() before calling this method if this FrontierIdea
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FrontierIdea) Update() *FrontierIdeaUpdateOne {
	return NewFrontierIdeaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FrontierIdea entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FrontierIdea) Unwrap() *FrontierIdea {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FrontierIdea is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FrontierIdea) String() string {
	var builder strings.Builder
	builder.WriteString("FrontierIdea(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("idea_id=")
	builder.WriteString(_m.IdeaID)
	builder.WriteString(", ")
	builder.WriteString("idea_text=")
	builder.WriteString(_m.IdeaText)
	builder.WriteString(", ")
	builder.WriteString("sponsor_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SponsorCount))
	builder.WriteString(", ")
	builder.WriteString("cycles_alive=")
	builder.WriteString(fmt.Sprintf("%v", _m.CyclesAlive))
	builder.WriteString(", ")
	builder.WriteString("activated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Activated))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FrontierIdeas is a parsable slice of FrontierIdea.
type FrontierIdeas []*FrontierIdea
