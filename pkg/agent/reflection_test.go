package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

func reflectionOutline() *models.ReportSection {
	return &models.ReportSection{Subsections: []models.ReportSection{
		{SectionID: "sec_a", Title: "Alpha", Description: "First.", ResearchStrategy: models.StrategyResearchBased},
		{SectionID: "sec_b", Title: "Beta", Description: "Second.", ResearchStrategy: models.StrategyResearchBased},
		{SectionID: "sec_c", Title: "Gamma", Description: "Third.", ResearchStrategy: models.StrategyResearchBased,
			Subsections: []models.ReportSection{
				{SectionID: "sec_c1", Title: "Gamma One", ResearchStrategy: models.StrategyResearchBased},
			}},
	}}
}

func TestReflectionAgent_Reflect(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: map[string]any{
		"overall_assessment": "Coverage is thin on partitions.",
		"new_questions":      []any{"How do real systems detect partitions?"},
		"proposed_modifications": []any{
			map[string]any{"action": "reframe", "section_id": "sec_a", "title": "Alpha refined"},
		},
		"sections_needing_review": []any{"sec_b"},
		"discard_note_ids":        []any{"note_dup"},
		"generated_thought":       "Check vendor docs for partition handling.",
	}}}}
	recorder := &fakeRecorder{}
	agent := NewReflectionAgent(completer, recorder)

	result, err := agent.Reflect(context.Background(), "mission-1",
		testSection(), nil, reflectionOutline(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Coverage is thin on partitions.", result.OverallAssessment)
	require.Len(t, result.ProposedModifications, 1)
	assert.Equal(t, ModReframe, result.ProposedModifications[0].Action)
	assert.Equal(t, []string{"sec_b"}, result.SectionsNeedingReview)
	assert.Equal(t, []string{"note_dup"}, result.DiscardNoteIDs)
	assert.NotEmpty(t, result.GeneratedThought)

	rec, ok := recorder.lastRecord()
	require.True(t, ok)
	assert.Equal(t, AgentReflection, rec.AgentName)
}

func TestReflectionAgent_SchemaFailureYieldsEmptyResult(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{err: &llm.Error{Kind: llm.KindSchema, Message: "garbage"}},
	}}
	recorder := &fakeRecorder{}
	agent := NewReflectionAgent(completer, recorder)

	result, err := agent.Reflect(context.Background(), "mission-1",
		testSection(), nil, reflectionOutline(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.ProposedModifications)
	assert.Empty(t, result.DiscardNoteIDs)

	rec, ok := recorder.lastRecord()
	require.True(t, ok)
	assert.Equal(t, models.RecordWarning, rec.Status)
}

func TestApplyModification_Add(t *testing.T) {
	outline := reflectionOutline()
	applied := ApplyModification(outline, OutlineModification{
		Action: ModAdd, ParentID: "sec_a", Title: "New child", Description: "d",
	})
	require.True(t, applied)

	section := findSection(outline, "sec_a")
	require.Len(t, section.Subsections, 1)
	assert.Equal(t, "New child", section.Subsections[0].Title)
	assert.NotEmpty(t, section.Subsections[0].SectionID)

	// Top-level add with no parent.
	require.True(t, ApplyModification(outline, OutlineModification{Action: ModAdd, Title: "Top"}))
	assert.Len(t, outline.Subsections, 4)
}

func TestApplyModification_AddRespectsDepthLimit(t *testing.T) {
	outline := &models.ReportSection{Subsections: []models.ReportSection{
		{SectionID: "l1", Title: "L1", Subsections: []models.ReportSection{
			{SectionID: "l2", Title: "L2", Subsections: []models.ReportSection{
				{SectionID: "l3", Title: "L3"},
			}},
		}},
	}}
	assert.False(t, ApplyModification(outline, OutlineModification{
		Action: ModAdd, ParentID: "l3", Title: "Too deep",
	}))
}

func TestApplyModification_Remove(t *testing.T) {
	outline := reflectionOutline()
	require.True(t, ApplyModification(outline, OutlineModification{Action: ModRemove, SectionID: "sec_b"}))
	assert.Nil(t, findSection(outline, "sec_b"))
	assert.Len(t, outline.Subsections, 2)

	assert.False(t, ApplyModification(outline, OutlineModification{Action: ModRemove, SectionID: "ghost"}))
}

func TestApplyModification_Reframe(t *testing.T) {
	outline := reflectionOutline()
	require.True(t, ApplyModification(outline, OutlineModification{
		Action: ModReframe, SectionID: "sec_a", Title: "Renamed", Description: "New description.",
	}))
	section := findSection(outline, "sec_a")
	assert.Equal(t, "Renamed", section.Title)
	assert.Equal(t, "New description.", section.Description)
}

func TestApplyModification_Merge(t *testing.T) {
	outline := reflectionOutline()
	findSection(outline, "sec_b").AssociatedNoteIDs = []string{"note_1"}

	require.True(t, ApplyModification(outline, OutlineModification{
		Action: ModMerge, SectionID: "sec_a", MergeWithID: "sec_b",
	}))

	assert.Nil(t, findSection(outline, "sec_b"))
	section := findSection(outline, "sec_a")
	assert.Contains(t, section.AssociatedNoteIDs, "note_1")
	assert.Contains(t, section.Description, "Second.")

	// Self-merge is rejected.
	assert.False(t, ApplyModification(outline, OutlineModification{
		Action: ModMerge, SectionID: "sec_a", MergeWithID: "sec_a",
	}))
}

func TestApplyModification_Reorder(t *testing.T) {
	outline := reflectionOutline()
	require.True(t, ApplyModification(outline, OutlineModification{
		Action: ModReorder, SectionID: "sec_c", Position: 0,
	}))
	assert.Equal(t, "sec_c", outline.Subsections[0].SectionID)
	assert.Equal(t, "sec_a", outline.Subsections[1].SectionID)

	// Out-of-range positions are rejected.
	assert.False(t, ApplyModification(outline, OutlineModification{
		Action: ModReorder, SectionID: "sec_a", Position: 9,
	}))
}

func TestApplyModification_Split(t *testing.T) {
	outline := reflectionOutline()
	require.True(t, ApplyModification(outline, OutlineModification{
		Action: ModSplit, SectionID: "sec_b", SplitTitles: []string{"Part one", "Part two"},
	}))

	section := findSection(outline, "sec_b")
	assert.Equal(t, models.StrategySynthesize, section.ResearchStrategy)
	require.Len(t, section.Subsections, 2)
	assert.NotEqual(t, section.Subsections[0].SectionID, section.Subsections[1].SectionID)

	// Splitting needs at least two titles.
	assert.False(t, ApplyModification(outline, OutlineModification{
		Action: ModSplit, SectionID: "sec_a", SplitTitles: []string{"only one"},
	}))
}

func TestApplyModification_UnknownAction(t *testing.T) {
	assert.False(t, ApplyModification(reflectionOutline(), OutlineModification{Action: "teleport"}))
}
