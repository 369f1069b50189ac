package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CemeteryEntry holds the schema definition for the CemeteryEntry entity:
// the persisted mirror of a session's dead claims. Append-only.
type CemeteryEntry struct {
	ent.Schema
}

// Fields of the CemeteryEntry.
func (CemeteryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.Text("claim").
			Immutable().
			Comment("Full-text searchable"),
		field.String("cause_of_death").
			Immutable(),
		field.Float("final_support").
			Immutable(),
		field.Int("cycle_killed").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CemeteryEntry.
func (CemeteryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "cycle_killed"),
	}
}
