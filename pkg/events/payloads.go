package events

import (
	"github.com/maestro-research/maestro/pkg/models"
)

// MissionStatusPayload is the payload for status_changed events.
// Published when a mission transitions between lifecycle states.
type MissionStatusPayload struct {
	Type      string               `json:"type"`       // always EventTypeMissionStatus
	MissionID string               `json:"mission_id"` // mission UUID
	Status    models.MissionStatus `json:"status"`     // pending, planning, running, paused, stopped, completed, failed
	ErrorInfo string               `json:"error_info,omitempty"`
	Timestamp string               `json:"timestamp"` // RFC3339Nano
}

// LogEntryPayload is the payload for log_entry events.
// Published for every execution log append, in sequence order.
type LogEntryPayload struct {
	Type          string              `json:"type"`     // always EventTypeLogEntry
	EntryID       string              `json:"entry_id"` // log entry UUID
	MissionID     string              `json:"mission_id"`
	Sequence      int                 `json:"sequence"` // strictly increasing per mission
	AgentName     string              `json:"agent_name"`
	Action        string              `json:"action"`
	InputSummary  string              `json:"input_summary,omitempty"`
	OutputSummary string              `json:"output_summary,omitempty"`
	Status        models.RecordStatus `json:"status"` // success, failure, warning
	ErrorMessage  string              `json:"error_message,omitempty"`
	Timestamp     string              `json:"timestamp"` // RFC3339Nano
}

// StatsUpdatedPayload is the payload for stats_updated events.
// Carries the full aggregated counters, not a delta.
type StatsUpdatedPayload struct {
	Type      string             `json:"type"` // always EventTypeStatsUpdated
	MissionID string             `json:"mission_id"`
	Stats     models.MissionStats `json:"stats"`
	Timestamp string             `json:"timestamp"` // RFC3339Nano
}

// PlanUpdatedPayload is the payload for plan_updated events.
// Published when the outline is stored or revised.
type PlanUpdatedPayload struct {
	Type      string                `json:"type"` // always EventTypePlanUpdated
	MissionID string                `json:"mission_id"`
	Plan      *models.ReportSection `json:"plan"` // synthetic root
	Revision  int                   `json:"revision"`
	Timestamp string                `json:"timestamp"` // RFC3339Nano
}

// NotesUpdatedPayload is the payload for notes_updated events.
// Published on note upserts and discards. Carries counts, not note bodies;
// clients fetch notes via REST when they need content.
type NotesUpdatedPayload struct {
	Type          string   `json:"type"` // always EventTypeNotesUpdated
	MissionID     string   `json:"mission_id"`
	UpsertedIDs   []string `json:"upserted_ids,omitempty"`
	DiscardedIDs  []string `json:"discarded_ids,omitempty"`
	TotalNotes    int      `json:"total_notes"`
	ActiveNotes   int      `json:"active_notes"`
	Timestamp     string   `json:"timestamp"` // RFC3339Nano
}

// SectionUpdatedPayload is the payload for section_updated events.
// Published when a section's draft content is written or revised.
type SectionUpdatedPayload struct {
	Type      string `json:"type"` // always EventTypeSectionUpdate
	MissionID string `json:"mission_id"`
	SectionID string `json:"section_id"`
	Title     string `json:"title"`
	Pass      int    `json:"pass,omitempty"` // writing pass number
	Timestamp string `json:"timestamp"`      // RFC3339Nano
}

// ReportVersionPayload is the payload for report_version_added events.
// Published when a new assembled report version is stored.
type ReportVersionPayload struct {
	Type      string `json:"type"` // always EventTypeReportVersion
	MissionID string `json:"mission_id"`
	Version   int    `json:"version"`
	Title     string `json:"title"`
	IsCurrent bool   `json:"is_current"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// GoalPadUpdatedPayload is the payload for goal_pad_updated transient events.
type GoalPadUpdatedPayload struct {
	Type      string            `json:"type"` // always EventTypeGoalPadUpdated
	MissionID string            `json:"mission_id"`
	Goals     []models.GoalEntry `json:"goals"`
	Timestamp string            `json:"timestamp"` // RFC3339Nano
}

// ThoughtPadUpdatedPayload is the payload for thought_pad_updated transient events.
type ThoughtPadUpdatedPayload struct {
	Type      string                `json:"type"` // always EventTypeThoughtPadUpdated
	MissionID string                `json:"mission_id"`
	Thoughts  []models.ThoughtEntry `json:"thoughts"`
	Timestamp string                `json:"timestamp"` // RFC3339Nano
}

// ToolCallPayload is the payload for tool_call_start / tool_call_complete
// transient events. High-frequency, ephemeral.
type ToolCallPayload struct {
	Type       string         `json:"type"`    // EventTypeToolCallStarted or EventTypeToolCallCompleted
	CallID     string         `json:"call_id"` // correlates started/completed pairs
	MissionID  string         `json:"mission_id"`
	ToolName   string         `json:"tool_name"`
	AgentName  string         `json:"agent_name,omitempty"`
	Arguments  map[string]any `json:"arguments,omitempty"`
	ResultSize int            `json:"result_size,omitempty"` // bytes, completed only
	Error      string         `json:"error,omitempty"`       // completed only
	Timestamp  string         `json:"timestamp"`             // RFC3339Nano
}

// WebFetchPayload is the payload for web_fetch transient events.
type WebFetchPayload struct {
	Type      string `json:"type"` // EventTypeWebFetchStarted / Completed / CacheHit
	MissionID string `json:"mission_id"`
	URL       string `json:"url"`
	Error     string `json:"error,omitempty"` // completed only
	Timestamp string `json:"timestamp"`       // RFC3339Nano
}
