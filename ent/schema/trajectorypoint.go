package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrajectoryPoint holds the schema definition for the TrajectoryPoint
// entity: one embedded claim per completed cycle, append-only.
type TrajectoryPoint struct {
	ent.Schema
}

// Fields of the TrajectoryPoint.
func (TrajectoryPoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.Int("cycle_number").
			Immutable(),
		field.Bytes("embedding").
			Immutable().
			Comment("Little-endian float32 vector"),
		field.Text("claim_text").
			Immutable(),
		field.Float("support_strength").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TrajectoryPoint.
func (TrajectoryPoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "cycle_number").
			Unique(),
	}
}
