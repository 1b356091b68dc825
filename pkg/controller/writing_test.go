package controller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/models"
)

func layoutOutline() *models.ReportSection {
	return &models.ReportSection{Subsections: []models.ReportSection{
		{SectionID: "sec_a", Title: "Alpha", ResearchStrategy: models.StrategyContentBased},
		{SectionID: "sec_b", Title: "Beta", ResearchStrategy: models.StrategySynthesize,
			Subsections: []models.ReportSection{
				{SectionID: "sec_b1", Title: "Beta one", ResearchStrategy: models.StrategyResearchBased},
				{SectionID: "sec_b2", Title: "Beta two", ResearchStrategy: models.StrategyResearchBased},
			}},
	}}
}

func TestBuildLayout(t *testing.T) {
	layout := buildLayout(layoutOutline())

	assert.Len(t, layout.ordered, 4)
	assert.Equal(t, 1, layout.depth["sec_a"])
	assert.Equal(t, 2, layout.depth["sec_b1"])

	research := layout.byStrategy(models.StrategyResearchBased)
	require.Len(t, research, 2)
	assert.Equal(t, "sec_b1", research[0].SectionID)

	assert.Equal(t, []string{"Beta two"}, layout.siblingTitles("sec_b1"))
	assert.Equal(t, []string{"Beta"}, layout.siblingTitles("sec_a"))
	assert.Empty(t, layout.siblingTitles("unknown"))
}

func TestAssembleReport(t *testing.T) {
	mc := &models.MissionContext{
		Plan: layoutOutline(),
		ReportContent: map[string]string{
			"sec_a":  "Opening words.",
			"sec_b1": "First detail.",
			"sec_b2": "Second detail.",
		},
	}

	report := assembleReport(mc)

	assert.Contains(t, report, "# Alpha\n\nOpening words.")
	assert.Contains(t, report, "## Beta one\n\nFirst detail.")
	// Beta itself has no content yet; its heading still appears.
	assert.Contains(t, report, "# Beta\n")
	assert.Less(t, strings.Index(report, "# Alpha"), strings.Index(report, "# Beta"))
	assert.Less(t, strings.Index(report, "Beta one"), strings.Index(report, "Beta two"))
}

func TestAssembleReport_EmptyPlan(t *testing.T) {
	assert.Equal(t, "", assembleReport(&models.MissionContext{}))
}

func TestReportTitle(t *testing.T) {
	assert.Equal(t, "Short request",
		reportTitle(&models.MissionContext{UserRequest: "  Short request "}))
	assert.Equal(t, "Research Report", reportTitle(&models.MissionContext{}))

	long := strings.Repeat("x", 120)
	title := reportTitle(&models.MissionContext{UserRequest: long})
	assert.Len(t, []rune(title), 81)
}

func TestNotesForSection(t *testing.T) {
	mc := &models.MissionContext{
		Notes: []models.Note{
			{NoteID: "note_1", Content: "keep"},
			{NoteID: "note_2", Content: "discarded", Discarded: true},
		},
	}
	section := &models.ReportSection{
		SectionID:         "sec_x",
		AssociatedNoteIDs: []string{"note_1", "note_2", "note_ghost"},
	}

	notes := notesForSection(mc, section)
	require.Len(t, notes, 1)
	assert.Equal(t, "note_1", notes[0].NoteID)
}
