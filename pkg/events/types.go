// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Event Lifecycle Patterns
// ════════════════════════════════════════════════════════════════
//
// Mission events follow one of two patterns:
//
// Pattern 1 — PERSISTENT (stored in DB + NOTIFY):
//
//	status_changed, log_entry, plan_updated, notes_updated,
//	section_updated, report_version_added, stats_updated
//
//	The event row's auto-increment id is delivered as db_event_id (and
//	doubles as the message's _msg_id) so reconnecting clients can request
//	a catchup from their last seen position. Rows are deleted shortly
//	after the mission reaches a terminal status.
//
// Pattern 2 — TRANSIENT (NOTIFY only, no DB persistence):
//
//	goal_pad_updated, thought_pad_updated, tool_call_start,
//	tool_call_complete, web_fetch_*
//
//	High-frequency progress signals. Lost on reconnect by design; the
//	authoritative state is always recoverable from the mission context
//	via REST.
//
// ════════════════════════════════════════════════════════════════
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Mission lifecycle
	EventTypeMissionStatus = "status_changed"

	// Execution log append
	EventTypeLogEntry = "log_entry"

	// Artifact updates
	EventTypePlanUpdated   = "plan_updated"
	EventTypeNotesUpdated  = "notes_updated"
	EventTypeSectionUpdate = "section_updated"
	EventTypeReportVersion = "report_version_added"

	// Aggregated cost/token counters
	EventTypeStatsUpdated = "stats_updated"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	EventTypeGoalPadUpdated    = "goal_pad_updated"
	EventTypeThoughtPadUpdated = "thought_pad_updated"

	EventTypeToolCallStarted   = "tool_call_start"
	EventTypeToolCallCompleted = "tool_call_complete"

	EventTypeWebFetchStarted   = "web_fetch_start"
	EventTypeWebFetchCompleted = "web_fetch_complete"
	EventTypeWebFetchCacheHit  = "web_fetch_cache_hit"
)

// GlobalMissionsChannel is the channel for mission-level status events.
// The mission list page subscribes to this for real-time updates.
const GlobalMissionsChannel = "missions"

// MissionChannel returns the channel name for a specific mission's events.
// Format: "mission:{mission_id}"
func MissionChannel(missionID string) string {
	return "mission:" + missionID
}

// UserChannel returns the channel name for direct-to-user messages.
// Format: "user:{user_id}"
func UserChannel(userID string) string {
	return "user:" + userID
}

// WritingSessionChannel returns the channel name for a writing session.
// Format: "writing:{session_id}". Writing sessions allow only one live
// connection; see ConnectionManager.
func WritingSessionChannel(sessionID string) string {
	return "writing:" + sessionID
}

// Connection types a client may register as.
const (
	ConnectionTypeResearch = "research"
	ConnectionTypeWriting  = "writing"
	ConnectionTypeDocument = "document"
)

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action         string `json:"action"`                    // "register", "subscribe", "unsubscribe", "catchup", "ping"
	UserID         string `json:"user_id,omitempty"`         // for register
	ConnectionType string `json:"connection_type,omitempty"` // for register: research, writing, document
	SessionID      string `json:"session_id,omitempty"`      // for register (writing connections)
	Channel        string `json:"channel,omitempty"`         // Channel name (e.g., "mission:abc-123")
	LastEventID    *int   `json:"last_event_id,omitempty"`   // For catchup
}
