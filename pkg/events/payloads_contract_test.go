package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/models"
)

// TestMissionChannelPayloads_ContainMissionID is a contract test between the
// Go backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `data.mission_id` in
// the JSON payload. ANY payload broadcast on a mission-specific channel
// (mission:{id}) MUST include a non-empty `mission_id` field, or the frontend
// silently drops it.
//
// If you add a new payload that flows through a mission channel, add it
// here — the test will fail if mission_id is missing.
func TestMissionChannelPayloads_ContainMissionID(t *testing.T) {
	const testMissionID = "mission-contract-test"

	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "MissionStatusPayload",
			payload: MissionStatusPayload{
				Type:      EventTypeMissionStatus,
				MissionID: testMissionID,
				Status:    models.StatusRunning,
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "LogEntryPayload",
			payload: LogEntryPayload{
				Type:      EventTypeLogEntry,
				EntryID:   "entry-1",
				MissionID: testMissionID,
				Sequence:  1,
				AgentName: "ResearchAgent",
				Action:    "web_search",
				Status:    models.RecordSuccess,
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "StatsUpdatedPayload",
			payload: StatsUpdatedPayload{
				Type:      EventTypeStatsUpdated,
				MissionID: testMissionID,
				Stats:     models.MissionStats{Cost: 0.12, PromptTokens: 1000},
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "PlanUpdatedPayload",
			payload: PlanUpdatedPayload{
				Type:      EventTypePlanUpdated,
				MissionID: testMissionID,
				Plan:      &models.ReportSection{SectionID: "root", Title: "Report"},
				Revision:  1,
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "NotesUpdatedPayload",
			payload: NotesUpdatedPayload{
				Type:        EventTypeNotesUpdated,
				MissionID:   testMissionID,
				UpsertedIDs: []string{"note-1"},
				TotalNotes:  1,
				ActiveNotes: 1,
				Timestamp:   "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "SectionUpdatedPayload",
			payload: SectionUpdatedPayload{
				Type:      EventTypeSectionUpdate,
				MissionID: testMissionID,
				SectionID: "sec-1",
				Title:     "Background",
				Pass:      1,
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "ReportVersionPayload",
			payload: ReportVersionPayload{
				Type:      EventTypeReportVersion,
				MissionID: testMissionID,
				Version:   2,
				Title:     "Draft v2",
				IsCurrent: true,
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "GoalPadUpdatedPayload",
			payload: GoalPadUpdatedPayload{
				Type:      EventTypeGoalPadUpdated,
				MissionID: testMissionID,
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "ThoughtPadUpdatedPayload",
			payload: ThoughtPadUpdatedPayload{
				Type:      EventTypeThoughtPadUpdated,
				MissionID: testMissionID,
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "ToolCallPayload",
			payload: ToolCallPayload{
				Type:      EventTypeToolCallStarted,
				CallID:    "call-1",
				MissionID: testMissionID,
				ToolName:  "web_search",
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "WebFetchPayload",
			payload: WebFetchPayload{
				Type:      EventTypeWebFetchStarted,
				MissionID: testMissionID,
				URL:       "https://example.com/paper.pdf",
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			mid, ok := parsed["mission_id"]
			assert.True(t, ok,
				"%s JSON is missing \"mission_id\" field — frontend WS routing will silently drop this event", tt.name)
			assert.Equal(t, testMissionID, mid,
				"%s mission_id has wrong value", tt.name)
		})
	}
}
