// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/blackboardrecord"
)

// BlackboardRecord is the model entity for the BlackboardRecord schema.
type BlackboardRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// SeedClaim holds the value of the "seed_claim" field.
	SeedClaim string `json:"seed_claim,omitempty"`
	// Empty while the claim is dead (full-text searchable)
	CurrentClaim string `json:"current_claim,omitempty"`
	// SupportStrength holds the value of the "support_strength" field.
	SupportStrength float64 `json:"support_strength,omitempty"`
	// ActiveObjection holds the value of the "active_objection" field.
	ActiveObjection string `json:"active_objection,omitempty"`
	// AnalogyOfRecord holds the value of the "analogy_of_record" field.
	AnalogyOfRecord string `json:"analogy_of_record,omitempty"`
	// CycleCount holds the value of the "cycle_count" field.
	CycleCount int `json:"cycle_count,omitempty"`
	// FrontierPool holds the value of the "frontier_pool" field.
	FrontierPool []map[string]interface{} `json:"frontier_pool,omitempty"`
	// Cemetery holds the value of the "cemetery" field.
	Cemetery []map[string]interface{} `json:"cemetery,omitempty"`
	// GraduatedClaims holds the value of the "graduated_claims" field.
	GraduatedClaims []map[string]interface{} `json:"graduated_claims,omitempty"`
	// TranslatorFrameworks holds the value of the "translator_frameworks" field.
	TranslatorFrameworks []string `json:"translator_frameworks,omitempty"`
	// CostLimitUsd holds the value of the "cost_limit_usd" field.
	CostLimitUsd float64 `json:"cost_limit_usd,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlackboardRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blackboardrecord.FieldFrontierPool, blackboardrecord.FieldCemetery, blackboardrecord.FieldGraduatedClaims, blackboardrecord.FieldTranslatorFrameworks:
			values[i] = new([]byte)
		case blackboardrecord.FieldSupportStrength, blackboardrecord.FieldCostLimitUsd:
			values[i] = new(sql.NullFloat64)
		case blackboardrecord.FieldCycleCount:
			values[i] = new(sql.NullInt64)
		case blackboardrecord.FieldID, blackboardrecord.FieldSessionID, blackboardrecord.FieldSeedClaim, blackboardrecord.FieldCurrentClaim, blackboardrecord.FieldActiveObjection, blackboardrecord.FieldAnalogyOfRecord:
			values[i] = new(sql.NullString)
		case blackboardrecord.FieldCreatedAt, blackboardrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlackboardRecord fields.
func (_m *BlackboardRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blackboardrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case blackboardrecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case blackboardrecord.FieldSeedClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seed_claim", values[i])
			} else if value.Valid {
				_m.SeedClaim = value.String
			}
		case blackboardrecord.FieldCurrentClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_claim", values[i])
			} else if value.Valid {
				_m.CurrentClaim = value.String
			}
		case blackboardrecord.FieldSupportStrength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field support_strength", values[i])
			} else if value.Valid {
				_m.SupportStrength = value.Float64
			}
		case blackboardrecord.FieldActiveObjection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_objection", values[i])
			} else if value.Valid {
				_m.ActiveObjection = value.String
			}
		case blackboardrecord.FieldAnalogyOfRecord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analogy_of_record", values[i])
			} else if value.Valid {
				_m.AnalogyOfRecord = value.String
			}
		case blackboardrecord.FieldCycleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_count", values[i])
			} else if value.Valid {
				_m.CycleCount = int(value.Int64)
			}
		case blackboardrecord.FieldFrontierPool:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field frontier_pool", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FrontierPool); err != nil {
					return fmt.Errorf("unmarshal field frontier_pool: %w", err)
				}
			}
		case blackboardrecord.FieldCemetery:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cemetery", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Cemetery); err != nil {
					return fmt.Errorf("unmarshal field cemetery: %w", err)
				}
			}
		case blackboardrecord.FieldGraduatedClaims:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field graduated_claims", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GraduatedClaims); err != nil {
					return fmt.Errorf("unmarshal field graduated_claims: %w", err)
				}
			}
		case blackboardrecord.FieldTranslatorFrameworks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field translator_frameworks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TranslatorFrameworks); err != nil {
					return fmt.Errorf("unmarshal field translator_frameworks: %w", err)
				}
			}
		case blackboardrecord.FieldCostLimitUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_limit_usd", values[i])
			} else if value.Valid {
				_m.CostLimitUsd = value.Float64
			}
		case blackboardrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case blackboardrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BlackboardRecord.
// This includes values selected through modifiers, order, etc.
func (_m *BlackboardRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BlackboardRecord.
// Note that you need to call BlackboardRecord.Unwrap() before calling this method if this BlackboardRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlackboardRecord) Update() *BlackboardRecordUpdateOne {
	return NewBlackboardRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlackboardRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlackboardRecord) Unwrap() *BlackboardRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlackboardRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlackboardRecord) String() string {
	var builder strings.Builder
	builder.WriteString("BlackboardRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("seed_claim=")
	builder.WriteString(_m.SeedClaim)
	builder.WriteString(", ")
	builder.WriteString("current_claim=")
	builder.WriteString(_m.CurrentClaim)
	builder.WriteString(", ")
	builder.WriteString("support_strength=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupportStrength))
	builder.WriteString(", ")
	builder.WriteString("active_objection=")
	builder.WriteString(_m.ActiveObjection)
	builder.WriteString(", ")
	builder.WriteString("analogy_of_record=")
	builder.WriteString(_m.AnalogyOfRecord)
	builder.WriteString(", ")
	builder.WriteString("cycle_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CycleCount))
	builder.WriteString(", ")
	builder.WriteString("frontier_pool=")
	builder.WriteString(fmt.Sprintf("%v", _m.FrontierPool))
	builder.WriteString(", ")
	builder.WriteString("cemetery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cemetery))
	builder.WriteString(", ")
	builder.WriteString("graduated_claims=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraduatedClaims))
	builder.WriteString(", ")
	builder.WriteString("translator_frameworks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranslatorFrameworks))
	builder.WriteString(", ")
	builder.WriteString("cost_limit_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostLimitUsd))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BlackboardRecords is a parsable slice of BlackboardRecord.
type BlackboardRecords []*BlackboardRecord
