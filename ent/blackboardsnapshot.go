// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/blackboardsnapshot"
)

// BlackboardSnapshot is the model entity for the BlackboardSnapshot schema.
type BlackboardSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// BlackboardID holds the value of the "blackboard_id" field.
	BlackboardID string `json:"blackboard_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Cycle holds the value of the "cycle" field.
	Cycle int `json:"cycle,omitempty"`
	// Full blackboard state as taken at the end of the cycle
	State map[string]interface{} `json:"state,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlackboardSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blackboardsnapshot.FieldState:
			values[i] = new([]byte)
		case blackboardsnapshot.FieldID, blackboardsnapshot.FieldCycle:
			values[i] = new(sql.NullInt64)
		case blackboardsnapshot.FieldBlackboardID, blackboardsnapshot.FieldSessionID:
			values[i] = new(sql.NullString)
		case blackboardsnapshot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlackboardSnapshot fields.
func (_m *BlackboardSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blackboardsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case blackboardsnapshot.FieldBlackboardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blackboard_id", values[i])
			} else if value.Valid {
				_m.BlackboardID = value.String
			}
		case blackboardsnapshot.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case blackboardsnapshot.FieldCycle:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycle", values[i])
			} else if value.Valid {
				_m.Cycle = int(value.Int64)
			}
		case blackboardsnapshot.FieldState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.State); err != nil {
					return fmt.Errorf("unmarshal field state: %w", err)
				}
			}
		case blackboardsnapshot.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BlackboardSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *BlackboardSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BlackboardSnapshot.
// Note that you need to call BlackboardSnapshot.Unwrap() before calling this method if this BlackboardSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlackboardSnapshot) Update() *BlackboardSnapshotUpdateOne {
	return NewBlackboardSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlackboardSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlackboardSnapshot) Unwrap() *BlackboardSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlackboardSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlackboardSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("BlackboardSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("blackboard_id=")
	builder.WriteString(_m.BlackboardID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("cycle=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cycle))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BlackboardSnapshots is a parsable slice of BlackboardSnapshot.
type BlackboardSnapshots []*BlackboardSnapshot
