// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/trajectorypoint"
)

// TrajectoryPoint is the model entity for the TrajectoryPoint schema.
type TrajectoryPoint struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// CycleNumber holds the value of the "cycle_number" field.
	CycleNumber int `json:"cycle_number,omitempty"`
	// Little-endian float32 vector
	Embedding []byte `json:"embedding,omitempty"`
	// ClaimText holds the value of the "claim_text" field.
	ClaimText string `json:"claim_text,omitempty"`
	// SupportStrength holds the value of the "support_strength" field.
	SupportStrength float64 `json:"support_strength,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrajectoryPoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trajectorypoint.FieldEmbedding:
			values[i] = new([]byte)
		case trajectorypoint.FieldSupportStrength:
			values[i] = new(sql.NullFloat64)
		case trajectorypoint.FieldID, trajectorypoint.FieldCycleNumber:
			values[i] = new(sql.NullInt64)
		case trajectorypoint.FieldSessionID, trajectorypoint.FieldClaimText:
			values[i] = new(sql.NullString)
		case trajectorypoint.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrajectoryPoint fields.
func (_m *TrajectoryPoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trajectorypoint.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trajectorypoint.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case trajectorypoint.FieldCycleNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_number", values[i])
			} else if value.Valid {
				_m.CycleNumber = int(value.Int64)
			}
		case trajectorypoint.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		case trajectorypoint.FieldClaimText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_text", values[i])
			} else if value.Valid {
				_m.ClaimText = value.String
			}
		case trajectorypoint.FieldSupportStrength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field support_strength", values[i])
			} else if value.Valid {
				_m.SupportStrength = value.Float64
			}
		case trajectorypoint.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TrajectoryPoint.
// This includes values selected through modifiers, order, etc.
func (_m *TrajectoryPoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrajectoryPoint.
// Note that you need to call TrajectoryPoint.Unwrap() before calling this method if this TrajectoryPoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrajectoryPoint) Update() *TrajectoryPointUpdateOne {
	return NewTrajectoryPointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrajectoryPoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrajectoryPoint) Unwrap() *TrajectoryPoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrajectoryPoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrajectoryPoint) String() string {
	var builder strings.Builder
	builder.WriteString("TrajectoryPoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("cycle_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.CycleNumber))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("claim_text=")
	builder.WriteString(_m.ClaimText)
	builder.WriteString(", ")
	builder.WriteString("support_strength=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupportStrength))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrajectoryPoints is a parsable slice of TrajectoryPoint.
type TrajectoryPoints []*TrajectoryPoint
