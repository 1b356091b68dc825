package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/models"
)

func TestMissionStatusPayload(t *testing.T) {
	t.Run("error info is omitted when empty", func(t *testing.T) {
		payload := MissionStatusPayload{
			Type:      EventTypeMissionStatus,
			MissionID: "m-1",
			Status:    models.StatusCompleted,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "error_info")
	})

	t.Run("error info is carried for failed missions", func(t *testing.T) {
		payload := MissionStatusPayload{
			Type:      EventTypeMissionStatus,
			MissionID: "m-1",
			Status:    models.StatusFailed,
			ErrorInfo: "planner exhausted retries",
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.Contains(t, string(data), "planner exhausted retries")
	})
}

func TestLogEntryPayload_JSON(t *testing.T) {
	payload := LogEntryPayload{
		Type:          EventTypeLogEntry,
		EntryID:       "entry-1",
		MissionID:     "m-1",
		Sequence:      7,
		AgentName:     "ResearchAgent",
		Action:        "document_search",
		InputSummary:  "query: solid-state electrolytes",
		OutputSummary: "4 chunks retrieved",
		Status:        models.RecordSuccess,
		Timestamp:     "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded LogEntryPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeLogEntry, decoded.Type)
	assert.Equal(t, "m-1", decoded.MissionID)
	assert.Equal(t, 7, decoded.Sequence)
	assert.Equal(t, "ResearchAgent", decoded.AgentName)
	assert.Equal(t, models.RecordSuccess, decoded.Status)
	assert.Equal(t, "2026-02-10T12:00:00Z", decoded.Timestamp)
}

func TestLogEntryPayload_FailureCarriesErrorMessage(t *testing.T) {
	payload := LogEntryPayload{
		Type:         EventTypeLogEntry,
		EntryID:      "entry-2",
		MissionID:    "m-1",
		Sequence:     8,
		AgentName:    "WritingAgent",
		Action:       "write_section",
		Status:       models.RecordFailure,
		ErrorMessage: "model returned malformed JSON after 4 attempts",
		Timestamp:    "2026-02-10T12:01:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(data), "malformed JSON")
}

func TestStatsUpdatedPayload_CarriesFullCounters(t *testing.T) {
	// Stats events carry the full aggregate, not a delta. Clients replace
	// their local copy wholesale.
	payload := StatsUpdatedPayload{
		Type:      EventTypeStatsUpdated,
		MissionID: "m-1",
		Stats: models.MissionStats{
			Cost:             1.23,
			PromptTokens:     50000,
			CompletionTokens: 12000,
			NativeTokens:     64000,
			WebSearchCalls:   9,
			DocSearchCalls:   4,
		},
		Timestamp: "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded StatsUpdatedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 1.23, decoded.Stats.Cost)
	assert.Equal(t, 50000, decoded.Stats.PromptTokens)
	assert.Equal(t, 9, decoded.Stats.WebSearchCalls)
	assert.Equal(t, 4, decoded.Stats.DocSearchCalls)
}

func TestPlanUpdatedPayload_NestedOutline(t *testing.T) {
	payload := PlanUpdatedPayload{
		Type:      EventTypePlanUpdated,
		MissionID: "m-1",
		Plan: &models.ReportSection{
			SectionID: "root",
			Title:     "Report",
			Subsections: []models.ReportSection{
				{SectionID: "intro", Title: "Introduction"},
				{
					SectionID: "body",
					Title:     "Findings",
					Subsections: []models.ReportSection{
						{SectionID: "body-1", Title: "Mechanisms"},
					},
				},
			},
		},
		Revision:  2,
		Timestamp: "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded PlanUpdatedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.NotNil(t, decoded.Plan)
	require.Len(t, decoded.Plan.Subsections, 2)
	assert.Equal(t, "Mechanisms", decoded.Plan.Subsections[1].Subsections[0].Title)
	assert.Equal(t, 2, decoded.Revision)
}

func TestNotesUpdatedPayload_CountsNotBodies(t *testing.T) {
	// Note events carry IDs and counts only. Clients fetch note content via
	// REST; keeping bodies out of the payload keeps it well under the NOTIFY
	// size limit even for bulk discards.
	payload := NotesUpdatedPayload{
		Type:         EventTypeNotesUpdated,
		MissionID:    "m-1",
		DiscardedIDs: []string{"n-1", "n-2", "n-3"},
		TotalNotes:   40,
		ActiveNotes:  37,
		Timestamp:    "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.NotContains(t, parsed, "content")
	assert.NotContains(t, parsed, "upserted_ids")
	assert.Equal(t, float64(37), parsed["active_notes"])
}

func TestToolCallPayload_StartedOmitsResultFields(t *testing.T) {
	started := ToolCallPayload{
		Type:      EventTypeToolCallStarted,
		CallID:    "call-1",
		MissionID: "m-1",
		ToolName:  "calculator",
		AgentName: "ResearchAgent",
		Arguments: map[string]any{"expression": "2^20"},
		Timestamp: "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(started)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "result_size")
	assert.NotContains(t, string(data), `"error"`)

	completed := ToolCallPayload{
		Type:       EventTypeToolCallCompleted,
		CallID:     "call-1",
		MissionID:  "m-1",
		ToolName:   "calculator",
		ResultSize: 7,
		Timestamp:  "2026-02-10T12:00:01Z",
	}

	data, err = json.Marshal(completed)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"result_size":7`)
}

func TestGoalPadUpdatedPayload_JSON(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	payload := GoalPadUpdatedPayload{
		Type:      EventTypeGoalPadUpdated,
		MissionID: "m-1",
		Goals: []models.GoalEntry{
			{ID: "g-1", Timestamp: now, Text: "Compare cathode chemistries", SourceAgent: "PlannerAgent"},
		},
		Timestamp: now.Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded GoalPadUpdatedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Goals, 1)
	assert.Equal(t, "Compare cathode chemistries", decoded.Goals[0].Text)
	assert.Equal(t, "PlannerAgent", decoded.Goals[0].SourceAgent)
}

func TestWebFetchPayload_JSON(t *testing.T) {
	payload := WebFetchPayload{
		Type:      EventTypeWebFetchCacheHit,
		MissionID: "m-1",
		URL:       "https://example.org/review",
		Timestamp: "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded WebFetchPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, EventTypeWebFetchCacheHit, decoded.Type)
	assert.Equal(t, "https://example.org/review", decoded.URL)
	assert.Empty(t, decoded.Error)
}
