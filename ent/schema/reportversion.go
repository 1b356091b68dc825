package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReportVersion holds the schema definition for versioned research reports.
// (mission_id, version) is unique and at most one row per mission has
// is_current = true; the context store flips the flag in the same
// transaction that inserts a new version.
type ReportVersion struct {
	ent.Schema
}

// Fields of the ReportVersion.
func (ReportVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_version_id").
			Unique().
			Immutable(),
		field.String("mission_id"),
		field.Int("version"),
		field.String("title"),
		field.Text("content"),
		field.Text("revision_notes").
			Optional(),
		field.Bool("is_current").
			Default(false),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the ReportVersion.
func (ReportVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("report_versions").
			Field("mission_id").
			Unique().
			Required(),
	}
}

// Indexes of the ReportVersion.
func (ReportVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mission_id", "version").
			Unique(),
		index.Fields("mission_id", "is_current"),
	}
}
