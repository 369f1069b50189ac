// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/agentcontribution"
)

// AgentContribution is the model entity for the AgentContribution schema.
type AgentContribution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Cycle holds the value of the "cycle" field.
	Cycle int `json:"cycle,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Opaque model identifier from the session's pool
	Model string `json:"model,omitempty"`
	// Output holds the value of the "output" field.
	Output map[string]interface{} `json:"output,omitempty"`
	// ConfidenceDelta holds the value of the "confidence_delta" field.
	ConfidenceDelta float64 `json:"confidence_delta,omitempty"`
	// Accepted holds the value of the "accepted" field.
	Accepted bool `json:"accepted,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentContribution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentcontribution.FieldOutput:
			values[i] = new([]byte)
		case agentcontribution.FieldAccepted:
			values[i] = new(sql.NullBool)
		case agentcontribution.FieldConfidenceDelta:
			values[i] = new(sql.NullFloat64)
		case agentcontribution.FieldCycle:
			values[i] = new(sql.NullInt64)
		case agentcontribution.FieldID, agentcontribution.FieldSessionID, agentcontribution.FieldRole, agentcontribution.FieldModel:
			values[i] = new(sql.NullString)
		case agentcontribution.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentContribution fields.
func (_m *AgentContribution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentcontribution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentcontribution.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case agentcontribution.FieldCycle:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycle", values[i])
			} else if value.Valid {
				_m.Cycle = int(value.Int64)
			}
		case agentcontribution.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case agentcontribution.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case agentcontribution.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case agentcontribution.FieldConfidenceDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_delta", values[i])
			} else if value.Valid {
				_m.ConfidenceDelta = value.Float64
			}
		case agentcontribution.FieldAccepted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field accepted", values[i])
			} else if value.Valid {
				_m.Accepted = value.Bool
			}
		case agentcontribution.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentContribution.
// This includes values selected through modifiers, order, etc.
func (_m *AgentContribution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentContribution.
// Note that you need to call AgentContribution.Unwrap() before calling this method if this AgentContribution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentContribution) Update() *AgentContributionUpdateOne {
	return NewAgentContributionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentContribution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentContribution) Unwrap() *AgentContribution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentContribution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentContribution) String() string {
	var builder strings.Builder
	builder.WriteString("AgentContribution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("cycle=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cycle))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", _m.Output))
	builder.WriteString(", ")
	builder.WriteString("confidence_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceDelta))
	builder.WriteString(", ")
	builder.WriteString("accepted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accepted))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentContributions is a parsable slice of AgentContribution.
type AgentContributions []*AgentContribution
