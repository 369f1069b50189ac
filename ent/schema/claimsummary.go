package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ClaimSummary holds the schema definition for the ClaimSummary entity:
// the rolling best-effort summary of a session's reasoning so far.
type ClaimSummary struct {
	ent.Schema
}

// Fields of the ClaimSummary.
func (ClaimSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable(),
		field.Text("summary"),
		field.Int("cycle").
			Default(0).
			Comment("Cycle the summary was last refreshed at"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
