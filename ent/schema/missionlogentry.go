package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MissionLogEntry holds the schema definition for execution log entries.
// This is the most write-heavy table; entries are append-only and ordered
// by (mission_id, sequence).
type MissionLogEntry struct {
	ent.Schema
}

// Fields of the MissionLogEntry.
func (MissionLogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("mission_id"),
		field.Int("sequence").
			Comment("Strictly increasing per mission; assigned by the context store"),
		field.Time("timestamp"),
		field.String("agent_name"),
		field.String("action"),
		field.Text("input_summary").
			Optional(),
		field.Text("output_summary").
			Optional(),
		field.Enum("status").
			Values("success", "failure", "warning"),
		field.Text("error_message").
			Optional(),
		field.Text("full_input").
			Optional(),
		field.Text("full_output").
			Optional(),
		field.JSON("model_details", map[string]interface{}{}).
			Optional(),
		field.JSON("tool_calls", []map[string]interface{}{}).
			Optional(),
		field.JSON("file_interactions", []map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the MissionLogEntry.
func (MissionLogEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("log_entries").
			Field("mission_id").
			Unique().
			Required(),
	}
}

// Indexes of the MissionLogEntry.
func (MissionLogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mission_id", "sequence").
			Unique(),
		index.Fields("mission_id", "timestamp"),
	}
}
