package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "mission channel",
			got:  MissionChannel("abc-123"),
			want: "mission:abc-123",
		},
		{
			name: "mission channel with UUID",
			got:  MissionChannel("550e8400-e29b-41d4-a716-446655440000"),
			want: "mission:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name: "user channel",
			got:  UserChannel("user-9"),
			want: "user:user-9",
		},
		{
			name: "writing session channel",
			got:  WritingSessionChannel("sess-7"),
			want: "writing:sess-7",
		},
		{
			name: "empty mission id",
			got:  MissionChannel(""),
			want: "mission:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Event types must be non-empty and distinct.
	types := []string{
		EventTypeMissionStatus,
		EventTypeLogEntry,
		EventTypePlanUpdated,
		EventTypeNotesUpdated,
		EventTypeSectionUpdate,
		EventTypeReportVersion,
		EventTypeStatsUpdated,
		EventTypeGoalPadUpdated,
		EventTypeThoughtPadUpdated,
		EventTypeToolCallStarted,
		EventTypeToolCallCompleted,
		EventTypeWebFetchStarted,
		EventTypeWebFetchCompleted,
		EventTypeWebFetchCacheHit,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

// Wire names are a published contract with WebSocket clients; renaming a
// constant's value is a breaking change.
func TestEventTypeWireNames(t *testing.T) {
	assert.Equal(t, "status_changed", EventTypeMissionStatus)
	assert.Equal(t, "log_entry", EventTypeLogEntry)
	assert.Equal(t, "plan_updated", EventTypePlanUpdated)
	assert.Equal(t, "notes_updated", EventTypeNotesUpdated)
	assert.Equal(t, "section_updated", EventTypeSectionUpdate)
	assert.Equal(t, "report_version_added", EventTypeReportVersion)
	assert.Equal(t, "stats_updated", EventTypeStatsUpdated)
	assert.Equal(t, "tool_call_start", EventTypeToolCallStarted)
	assert.Equal(t, "tool_call_complete", EventTypeToolCallCompleted)
	assert.Equal(t, "web_fetch_start", EventTypeWebFetchStarted)
	assert.Equal(t, "web_fetch_complete", EventTypeWebFetchCompleted)
	assert.Equal(t, "web_fetch_cache_hit", EventTypeWebFetchCacheHit)
}

func TestConnectionTypeConstants(t *testing.T) {
	assert.Equal(t, "research", ConnectionTypeResearch)
	assert.Equal(t, "writing", ConnectionTypeWriting)
	assert.Equal(t, "document", ConnectionTypeDocument)
}

func TestGlobalMissionsChannel(t *testing.T) {
	assert.Equal(t, "missions", GlobalMissionsChannel)
}
