package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlackboardSnapshot holds the schema definition for the
// BlackboardSnapshot entity: append-only history, one row per completed
// cycle, for post-hoc analysis.
type BlackboardSnapshot struct {
	ent.Schema
}

// Fields of the BlackboardSnapshot.
func (BlackboardSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("blackboard_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("cycle").
			Immutable(),
		field.JSON("state", map[string]interface{}{}).
			Immutable().
			Comment("Full blackboard state as taken at the end of the cycle"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BlackboardSnapshot.
func (BlackboardSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "cycle"),
		index.Fields("blackboard_id"),
	}
}
