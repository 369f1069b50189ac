package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentContribution holds the schema definition for the AgentContribution
// entity: one row per agent proposal, flagged accepted after arbitration.
type AgentContribution struct {
	ent.Schema
}

// Fields of the AgentContribution.
func (AgentContribution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("contribution_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("cycle").
			Immutable(),
		field.String("role").
			Immutable(),
		field.String("model").
			Optional().
			Comment("Opaque model identifier from the session's pool"),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.Float("confidence_delta").
			Default(0),
		field.Bool("accepted").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentContribution.
func (AgentContribution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "cycle"),
		index.Fields("session_id", "accepted"),
		index.Fields("role"),
	}
}
