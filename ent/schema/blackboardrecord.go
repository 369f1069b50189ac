package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlackboardRecord holds the schema definition for the BlackboardRecord
// entity: one mutable row per session, rewritten at the end of every cycle.
type BlackboardRecord struct {
	ent.Schema
}

// Fields of the BlackboardRecord.
func (BlackboardRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("blackboard_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique().
			Immutable(),
		field.Text("seed_claim"),
		field.Text("current_claim").
			Optional().
			Comment("Empty while the claim is dead (full-text searchable)"),
		field.Float("support_strength").
			Default(0.5),
		field.Text("active_objection").
			Optional(),
		field.Text("analogy_of_record").
			Optional(),
		field.Int("cycle_count").
			Default(0),
		field.JSON("frontier_pool", []map[string]interface{}{}).
			Optional(),
		field.JSON("cemetery", []map[string]interface{}{}).
			Optional(),
		field.JSON("graduated_claims", []map[string]interface{}{}).
			Optional(),
		field.JSON("translator_frameworks", []string{}).
			Optional(),
		field.Float("cost_limit_usd").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the BlackboardRecord.
func (BlackboardRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("updated_at"),
	}
}
