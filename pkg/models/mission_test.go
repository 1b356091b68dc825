package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to MissionStatus
		want     bool
	}{
		{StatusPending, StatusPlanning, true},
		{StatusPending, StatusRunning, false},
		{StatusPending, StatusStopped, false},
		{StatusPlanning, StatusRunning, true},
		{StatusPlanning, StatusPaused, true},
		{StatusPlanning, StatusStopped, true},
		{StatusRunning, StatusPaused, true},
		{StatusRunning, StatusCompleted, true},
		{StatusRunning, StatusStopped, true},
		{StatusPaused, StatusRunning, true},
		{StatusPaused, StatusPlanning, true},
		{StatusPaused, StatusStopped, true},
		{StatusPaused, StatusCompleted, false},
		{StatusCompleted, StatusRunning, false},
		{StatusStopped, StatusRunning, false},
		{StatusRunning, StatusRunning, false},

		// Any non-terminal state may fail.
		{StatusPending, StatusFailed, true},
		{StatusPlanning, StatusFailed, true},
		{StatusRunning, StatusFailed, true},
		{StatusPaused, StatusFailed, true},
		{StatusCompleted, StatusFailed, false},
		{StatusFailed, StatusFailed, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestMissionStatusIsTerminal(t *testing.T) {
	for _, s := range []MissionStatus{StatusStopped, StatusCompleted, StatusFailed} {
		assert.True(t, s.IsTerminal(), string(s))
	}
	for _, s := range []MissionStatus{StatusPending, StatusPlanning, StatusRunning, StatusPaused} {
		assert.False(t, s.IsTerminal(), string(s))
	}
}

func testOutline() *ReportSection {
	return &ReportSection{
		SectionID: "root",
		Subsections: []ReportSection{
			{
				SectionID: "s1",
				Subsections: []ReportSection{
					{SectionID: "s1a"},
					{SectionID: "s1b"},
				},
			},
			{SectionID: "s2"},
		},
	}
}

func TestReportSectionWalkOrder(t *testing.T) {
	var visited []string
	testOutline().Walk(func(s *ReportSection) bool {
		visited = append(visited, s.SectionID)
		return true
	})
	assert.Equal(t, []string{"root", "s1", "s1a", "s1b", "s2"}, visited)
}

func TestReportSectionWalkStops(t *testing.T) {
	var visited []string
	testOutline().Walk(func(s *ReportSection) bool {
		visited = append(visited, s.SectionID)
		return s.SectionID != "s1a"
	})
	assert.Equal(t, []string{"root", "s1", "s1a"}, visited)
}

func TestReportSectionDepth(t *testing.T) {
	assert.Equal(t, 3, testOutline().Depth())
	assert.Equal(t, 1, (&ReportSection{SectionID: "leaf"}).Depth())
}

func TestMissionContextLookups(t *testing.T) {
	mc := &MissionContext{
		Plan: testOutline(),
		Notes: []Note{
			{NoteID: "n1", Content: "kept"},
			{NoteID: "n2", Content: "dropped", Discarded: true},
			{NoteID: "n3", Content: "kept too"},
		},
	}

	require.NotNil(t, mc.SectionByID("s1b"))
	assert.Nil(t, mc.SectionByID("nope"))

	require.NotNil(t, mc.NoteByID("n2"))
	assert.Nil(t, mc.NoteByID("nope"))

	active := mc.ActiveNotes()
	require.Len(t, active, 2)
	assert.Equal(t, "n1", active[0].NoteID)
	assert.Equal(t, "n3", active[1].NoteID)
}

func TestMissionContextCloneIsDeep(t *testing.T) {
	mc := &MissionContext{
		MissionID: "m-1",
		Status:    StatusRunning,
		Plan:      testOutline(),
		Notes: []Note{
			{NoteID: "n1", SourceMetadata: map[string]any{"url": "https://example.com"}},
		},
		ReportContent: map[string]string{"s1": "draft"},
		GoalPad:       []GoalEntry{{ID: "g1", Text: "goal", Timestamp: time.Now()}},
		ThoughtPad:    []ThoughtEntry{{ID: "t1", Text: "thought"}},
	}

	cp := mc.Clone()

	// Mutating the clone must not touch the original.
	cp.Plan.Subsections[0].Title = "changed"
	cp.Notes[0].SourceMetadata["url"] = "https://other.example"
	cp.ReportContent["s1"] = "changed"
	cp.GoalPad[0].Text = "changed"

	assert.Empty(t, mc.Plan.Subsections[0].Title)
	assert.Equal(t, "https://example.com", mc.Notes[0].SourceMetadata["url"])
	assert.Equal(t, "draft", mc.ReportContent["s1"])
	assert.Equal(t, "goal", mc.GoalPad[0].Text)
}

func TestMissionSettingsApplyDefaults(t *testing.T) {
	defaults := DefaultMissionSettings()

	t.Run("zero values are filled", func(t *testing.T) {
		var s MissionSettings
		s.ApplyDefaults(defaults)
		assert.Equal(t, defaults, s)
	})

	t.Run("set values are preserved", func(t *testing.T) {
		s := MissionSettings{WritingPasses: 5, MaxConcurrentRequests: 2}
		s.ApplyDefaults(defaults)
		assert.Equal(t, 5, s.WritingPasses)
		assert.Equal(t, 2, s.MaxConcurrentRequests)
		assert.Equal(t, defaults.StructuredResearchRounds, s.StructuredResearchRounds)
	})

	t.Run("explicit zero survives for roundable keys", func(t *testing.T) {
		s := MissionSettings{Explicit: map[string]bool{
			"structured_research_rounds": true,
			"writing_passes":             true,
		}}
		s.ApplyDefaults(defaults)
		assert.Zero(t, s.StructuredResearchRounds)
		assert.Zero(t, s.WritingPasses)
	})
}
