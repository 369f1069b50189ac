package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FrontierIdea holds the schema definition for the FrontierIdea entity:
// the persisted mirror of a session's frontier pool.
type FrontierIdea struct {
	ent.Schema
}

// Fields of the FrontierIdea.
func (FrontierIdea) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.String("idea_id").
			Immutable(),
		field.Text("idea_text").
			Immutable(),
		field.Int("sponsor_count").
			Default(0),
		field.Int("cycles_alive").
			Default(0),
		field.Bool("activated").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the FrontierIdea.
func (FrontierIdea) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "idea_id").
			Unique(),
		index.Fields("session_id", "activated"),
	}
}
