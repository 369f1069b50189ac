package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: durable event
// rows served to WebSocket clients catching up after a reconnect. The
// auto-increment id doubles as the catchup cursor.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.String("topic").
			Immutable(),
		field.Bytes("payload").
			Immutable().
			Comment("Marshalled event JSON as broadcast"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("session_id"),
		index.Fields("created_at"),
	}
}
