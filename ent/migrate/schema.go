// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "mission_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_missions_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_mission_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// MissionsColumns holds the columns for the "missions" table.
	MissionsColumns = []*schema.Column{
		{Name: "mission_id", Type: field.TypeString, Unique: true},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "user_request", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "planning", "running", "paused", "stopped", "completed", "failed"}, Default: "pending"},
		{Name: "error_info", Type: field.TypeString, Nullable: true},
		{Name: "context_data", Type: field.TypeJSON},
		{Name: "current_report_version", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// MissionsTable holds the schema information for the "missions" table.
	MissionsTable = &schema.Table{
		Name:       "missions",
		Columns:    MissionsColumns,
		PrimaryKey: []*schema.Column{MissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mission_status",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[4]},
			},
			{
				Name:    "mission_user_id",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[2]},
			},
			{
				Name:    "mission_chat_id",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[1]},
			},
			{
				Name:    "mission_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[4], MissionsColumns[8]},
			},
			{
				Name:    "mission_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[4], MissionsColumns[13]},
			},
			{
				Name:    "mission_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// MissionLogEntriesColumns holds the columns for the "mission_log_entries" table.
	MissionLogEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "input_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failure", "warning"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "full_input", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "full_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model_details", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "file_interactions", Type: field.TypeJSON, Nullable: true},
		{Name: "mission_id", Type: field.TypeString},
	}
	// MissionLogEntriesTable holds the schema information for the "mission_log_entries" table.
	MissionLogEntriesTable = &schema.Table{
		Name:       "mission_log_entries",
		Columns:    MissionLogEntriesColumns,
		PrimaryKey: []*schema.Column{MissionLogEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mission_log_entries_missions_log_entries",
				Columns:    []*schema.Column{MissionLogEntriesColumns[14]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "missionlogentry_mission_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{MissionLogEntriesColumns[14], MissionLogEntriesColumns[1]},
			},
			{
				Name:    "missionlogentry_mission_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MissionLogEntriesColumns[14], MissionLogEntriesColumns[2]},
			},
		},
	}
	// ReportVersionsColumns holds the columns for the "report_versions" table.
	ReportVersionsColumns = []*schema.Column{
		{Name: "report_version_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "revision_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_current", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "mission_id", Type: field.TypeString},
	}
	// ReportVersionsTable holds the schema information for the "report_versions" table.
	ReportVersionsTable = &schema.Table{
		Name:       "report_versions",
		Columns:    ReportVersionsColumns,
		PrimaryKey: []*schema.Column{ReportVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_versions_missions_report_versions",
				Columns:    []*schema.Column{ReportVersionsColumns[8]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reportversion_mission_id_version",
				Unique:  true,
				Columns: []*schema.Column{ReportVersionsColumns[8], ReportVersionsColumns[1]},
			},
			{
				Name:    "reportversion_mission_id_is_current",
				Unique:  false,
				Columns: []*schema.Column{ReportVersionsColumns[8], ReportVersionsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		MissionsTable,
		MissionLogEntriesTable,
		ReportVersionsTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = MissionsTable
	MissionLogEntriesTable.ForeignKeys[0].RefTable = MissionsTable
	ReportVersionsTable.ForeignKeys[0].RefTable = MissionsTable
}
