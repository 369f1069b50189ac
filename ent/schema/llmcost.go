package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMCost holds the schema definition for the LLMCost entity: one accrual
// row per billed agent call, summed against the session's advisory limit.
type LLMCost struct {
	ent.Schema
}

// Fields of the LLMCost.
func (LLMCost) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.Int("cycle").
			Immutable(),
		field.String("role").
			Immutable(),
		field.String("model").
			Immutable(),
		field.Float("cost_usd").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LLMCost.
func (LLMCost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "cycle"),
	}
}
