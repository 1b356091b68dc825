package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/maestro-research/maestro/pkg/models"
)

// Mission holds the schema definition for the Mission entity.
// The mutable MissionContext is stored as a JSON blob on the row; the
// execution log and report versions live in their own tables.
type Mission struct {
	ent.Schema
}

// Fields of the Mission.
func (Mission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mission_id").
			Unique().
			Immutable(),
		field.String("chat_id"),
		field.String("user_id"),
		field.Text("user_request"),
		field.Enum("status").
			Values("pending", "planning", "running", "paused", "stopped", "completed", "failed").
			Default("pending"),
		field.String("error_info").
			Optional().
			Nillable(),
		field.JSON("context_data", &models.MissionContext{}).
			Comment("Serialized MissionContext (excludes the execution log)"),
		field.Int("current_report_version").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the mission"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Mission.
func (Mission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("log_entries", MissionLogEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("report_versions", ReportVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Mission.
func (Mission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
		index.Fields("chat_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
