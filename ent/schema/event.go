package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for transient realtime events.
// Rows back the WebSocket catchup query and are deleted shortly after a
// mission reaches a terminal status.
type Event struct {
	ent.Schema
}

// Fields of the Event. The default auto-increment int id doubles as the
// client-visible db_event_id for catchup position tracking.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("mission_id"),
		field.String("channel"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("events").
			Field("mission_id").
			Unique().
			Required(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("mission_id"),
		index.Fields("created_at"),
	}
}
