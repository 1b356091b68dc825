package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

func assignmentOutline() *models.ReportSection {
	return &models.ReportSection{Subsections: []models.ReportSection{
		{SectionID: "sec_batt", Title: "Battery storage", Description: "Battery cathode chemistry and storage capacity.", ResearchStrategy: models.StrategyResearchBased},
		{SectionID: "sec_solar", Title: "Solar generation", Description: "Solar panel output and grid integration.", ResearchStrategy: models.StrategyResearchBased},
		{SectionID: "sec_intro", Title: "Introduction", Description: "Opens the report.", ResearchStrategy: models.StrategyContentBased},
	}}
}

func assignmentNotes() []models.Note {
	return []models.Note{
		{NoteID: "note_a", Content: "Cathode materials determine battery storage capacity and lifetime."},
		{NoteID: "note_b", Content: "Solar panel output varies with grid integration strategy."},
	}
}

func assignmentsValue(pairs map[string][]string) map[string]any {
	items := []any{}
	for sectionID, noteIDs := range pairs {
		ids := make([]any, len(noteIDs))
		for i, id := range noteIDs {
			ids[i] = id
		}
		items = append(items, map[string]any{"section_id": sectionID, "note_ids": ids})
	}
	return map[string]any{"assignments": items}
}

func TestAssignmentAgent_Assign(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: assignmentsValue(map[string][]string{
		"sec_batt":  {"note_a"},
		"sec_solar": {"note_b"},
	})}}}
	recorder := &fakeRecorder{}
	agent := NewAssignmentAgent(completer, recorder, nil)

	result, err := agent.Assign(context.Background(), "mission-1",
		assignmentOutline(), assignmentNotes(), models.DefaultMissionSettings())
	require.NoError(t, err)

	assert.Equal(t, []string{"note_a"}, result["sec_batt"])
	assert.Equal(t, []string{"note_b"}, result["sec_solar"])

	rec, ok := recorder.lastRecord()
	require.True(t, ok)
	assert.Equal(t, AgentAssignment, rec.AgentName)
}

func TestAssignmentAgent_DuplicateNoteKeepsEarlierSection(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: assignmentsValue(map[string][]string{
		"sec_batt":  {"note_a"},
		"sec_solar": {"note_a", "note_b"},
	})}}}
	agent := NewAssignmentAgent(completer, nil, nil)

	result, err := agent.Assign(context.Background(), "mission-1",
		assignmentOutline(), assignmentNotes(), models.DefaultMissionSettings())
	require.NoError(t, err)

	// note_a appears once, in the section that comes first in outline order.
	assert.Equal(t, []string{"note_a"}, result["sec_batt"])
	assert.Equal(t, []string{"note_b"}, result["sec_solar"])
}

func TestAssignmentAgent_DropsUnknownIDs(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: assignmentsValue(map[string][]string{
		"sec_batt":  {"note_a", "note_ghost"},
		"sec_ghost": {"note_b"},
		// content_based sections never receive notes.
		"sec_intro": {"note_b"},
	})}}}
	agent := NewAssignmentAgent(completer, nil, nil)

	result, err := agent.Assign(context.Background(), "mission-1",
		assignmentOutline(), assignmentNotes(), models.DefaultMissionSettings())
	require.NoError(t, err)

	assert.Equal(t, []string{"note_a"}, result["sec_batt"])
	assert.NotContains(t, result, "sec_ghost")
	assert.NotContains(t, result, "sec_intro")
}

func TestAssignmentAgent_PrefiltersLargeNoteSets(t *testing.T) {
	notes := make([]models.Note, 8)
	for i := range notes {
		notes[i] = models.Note{NoteID: fmt.Sprintf("note_%d", i), Content: "filler content"}
	}
	// One note actually matches the outline and must survive the cut.
	notes[7].Content = "battery cathode storage solar grid integration"

	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: assignmentsValue(nil)}}}
	agent := NewAssignmentAgent(completer, nil, nil)

	settings := models.DefaultMissionSettings()
	settings.MaxNotesForAssignmentReranking = 3

	_, err := agent.Assign(context.Background(), "mission-1", assignmentOutline(), notes, settings)
	require.NoError(t, err)

	require.Len(t, completer.jsonCalls, 1)
	prompt := completer.jsonCalls[0].Messages[1].Content
	assert.Contains(t, prompt, "note_7")
	assert.NotContains(t, prompt, "note_4")
}

func TestAssignmentAgent_SchemaFailureFallsBackToSimilarity(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{err: &llm.Error{Kind: llm.KindSchema, Message: "garbage"}},
	}}
	agent := NewAssignmentAgent(completer, nil, nil)

	result, err := agent.Assign(context.Background(), "mission-1",
		assignmentOutline(), assignmentNotes(), models.DefaultMissionSettings())
	require.NoError(t, err)

	assert.Contains(t, result["sec_batt"], "note_a")
	assert.Contains(t, result["sec_solar"], "note_b")
}

func TestAssignmentAgent_ProviderErrorPropagates(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{err: &llm.Error{Kind: llm.KindConfiguration, Message: "missing key"}},
	}}
	agent := NewAssignmentAgent(completer, nil, nil)

	_, err := agent.Assign(context.Background(), "mission-1",
		assignmentOutline(), assignmentNotes(), models.DefaultMissionSettings())
	require.Error(t, err)
	assert.Equal(t, llm.KindConfiguration, llm.KindOf(err))
}

func TestAssignmentAgent_CoverageFallback(t *testing.T) {
	// Model leaves sec_solar empty; the matching note is still unassigned.
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: assignmentsValue(map[string][]string{
		"sec_batt": {"note_a"},
	})}}}
	agent := NewAssignmentAgent(completer, nil, nil)

	result, err := agent.Assign(context.Background(), "mission-1",
		assignmentOutline(), assignmentNotes(), models.DefaultMissionSettings())
	require.NoError(t, err)

	assert.Equal(t, []string{"note_b"}, result["sec_solar"])
}

func TestAssignmentAgent_EmptyInputs(t *testing.T) {
	agent := NewAssignmentAgent(&fakeCompleter{}, nil, nil)

	result, err := agent.Assign(context.Background(), "mission-1",
		assignmentOutline(), nil, models.DefaultMissionSettings())
	require.NoError(t, err)
	assert.Empty(t, result)

	contentOnly := &models.ReportSection{Subsections: []models.ReportSection{
		{SectionID: "sec_x", Title: "X", ResearchStrategy: models.StrategyContentBased},
	}}
	result, err = agent.Assign(context.Background(), "mission-1",
		contentOnly, assignmentNotes(), models.DefaultMissionSettings())
	require.NoError(t, err)
	assert.Empty(t, result)
}
