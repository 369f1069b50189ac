package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClaimTransition holds the schema definition for the ClaimTransition
// entity: a classified claim movement detected between cycle boundaries.
type ClaimTransition struct {
	ent.Schema
}

// Fields of the ClaimTransition.
func (ClaimTransition) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.Int("cycle").
			Immutable(),
		field.Enum("transition").
			Values("refinement", "pivot", "death", "resurrection", "graduation").
			Immutable(),
		field.Text("from_claim").
			Optional().
			Immutable(),
		field.Text("to_claim").
			Optional().
			Immutable(),
		field.Float("from_support").
			Default(0).
			Immutable(),
		field.Float("to_support").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ClaimTransition.
func (ClaimTransition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "cycle"),
		index.Fields("transition"),
	}
}
