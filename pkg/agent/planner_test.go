package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

func draftOutlineValue() map[string]any {
	return map[string]any{
		"sections": []any{
			map[string]any{
				"title":             "Introduction",
				"description":       "Frames the report.",
				"research_strategy": "content_based",
			},
			map[string]any{
				"title":             "Core trade-offs",
				"description":       "The consistency/availability tension.",
				"research_strategy": "research_based",
				"subsections": []any{
					map[string]any{
						"title":             "Partition behavior",
						"description":       "What happens during partitions.",
						"research_strategy": "research_based",
					},
				},
			},
		},
	}
}

func TestPlannerAgent_DraftOutline(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: draftOutlineValue()}}}
	recorder := &fakeRecorder{}
	planner := NewPlannerAgent(completer, recorder)

	outline, err := planner.DraftOutline(context.Background(), testMission(), defaultProfile())
	require.NoError(t, err)

	require.Len(t, outline.Subsections, 2)
	assert.Empty(t, outline.SectionID, "root is synthetic")
	assert.Equal(t, models.StrategyContentBased, outline.Subsections[0].ResearchStrategy)
	require.Len(t, outline.Subsections[1].Subsections, 1)

	// Ids are minted and unique.
	seen := map[string]bool{}
	outline.Walk(func(s *models.ReportSection) bool {
		if s.SectionID != "" {
			assert.False(t, seen[s.SectionID])
			seen[s.SectionID] = true
		}
		return true
	})
	assert.Len(t, seen, 3)
}

func TestPlannerAgent_DraftOutline_NormalizesChildlessSynthesis(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: map[string]any{
		"sections": []any{
			map[string]any{
				"title":             "Overview",
				"description":       "Summary section.",
				"research_strategy": "synthesize_from_subsections",
			},
		},
	}}}}
	planner := NewPlannerAgent(completer, nil)

	outline, err := planner.DraftOutline(context.Background(), testMission(), nil)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyResearchBased, outline.Subsections[0].ResearchStrategy)
}

func TestPlannerAgent_DraftOutline_ClampsDepth(t *testing.T) {
	deep := map[string]any{
		"title": "L1", "description": "d", "research_strategy": "research_based",
		"subsections": []any{map[string]any{
			"title": "L2", "description": "d", "research_strategy": "research_based",
			"subsections": []any{map[string]any{
				"title": "L3", "description": "d", "research_strategy": "research_based",
				"subsections": []any{map[string]any{
					"title": "L4", "description": "d", "research_strategy": "research_based",
				}},
			}},
		}},
	}
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: map[string]any{"sections": []any{deep}}}}}
	planner := NewPlannerAgent(completer, nil)

	outline, err := planner.DraftOutline(context.Background(), testMission(), nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, outline.Depth(), models.MaxOutlineDepth+1)
}

func TestPlannerAgent_DraftOutline_EmptyFails(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: map[string]any{"sections": []any{}}}}}
	planner := NewPlannerAgent(completer, nil)

	_, err := planner.DraftOutline(context.Background(), testMission(), nil)
	assert.Error(t, err)
}

func TestPlannerAgent_ReviseOutline_PreservesKnownIDs(t *testing.T) {
	outline := &models.ReportSection{Subsections: []models.ReportSection{
		{SectionID: "sec_keep", Title: "Kept", Description: "d", ResearchStrategy: models.StrategyResearchBased},
		{SectionID: "sec_drop", Title: "Dropped", Description: "d", ResearchStrategy: models.StrategyResearchBased},
	}}

	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: map[string]any{
		"sections": []any{
			map[string]any{
				"section_id": "sec_keep", "title": "Kept and sharpened",
				"description": "refined", "research_strategy": "research_based",
			},
			map[string]any{
				// The model may not mint its own ids.
				"section_id": "sec_invented", "title": "New theme",
				"description": "from notes", "research_strategy": "research_based",
			},
		},
	}}}}
	planner := NewPlannerAgent(completer, &fakeRecorder{})

	revised, err := planner.ReviseOutline(context.Background(), testMission(), outline, nil)
	require.NoError(t, err)
	require.Len(t, revised.Subsections, 2)
	assert.Equal(t, "sec_keep", revised.Subsections[0].SectionID)
	assert.NotEqual(t, "sec_invented", revised.Subsections[1].SectionID)
	assert.NotEmpty(t, revised.Subsections[1].SectionID)
}

func TestPlannerAgent_ReviseOutline_SchemaFailureKeepsOutline(t *testing.T) {
	outline := &models.ReportSection{Subsections: []models.ReportSection{
		{SectionID: "sec_keep", Title: "Kept", ResearchStrategy: models.StrategyResearchBased},
	}}
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{err: &llm.Error{Kind: llm.KindSchema, Message: "garbage"}},
	}}
	recorder := &fakeRecorder{}
	planner := NewPlannerAgent(completer, recorder)

	revised, err := planner.ReviseOutline(context.Background(), testMission(), outline, nil)
	require.NoError(t, err)
	assert.Same(t, outline, revised)

	rec, ok := recorder.lastRecord()
	require.True(t, ok)
	assert.Equal(t, models.RecordWarning, rec.Status)
}

func TestPlannerAgent_SuggestSettings(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: map[string]any{
		"structured_research_rounds": float64(3),
		"writing_passes":             float64(2),
	}}}}
	planner := NewPlannerAgent(completer, nil)

	suggestions, err := planner.SuggestSettings(context.Background(), testMission(), &models.ReportSection{})
	require.NoError(t, err)
	assert.Equal(t, 3, suggestions.StructuredResearchRounds)
	assert.Equal(t, 2, suggestions.WritingPasses)
}

func TestPlannerAgent_SuggestSettings_FailureIsAdvisory(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{err: &llm.Error{Kind: llm.KindTransient, Message: "overloaded"}},
	}}
	planner := NewPlannerAgent(completer, nil)

	suggestions, err := planner.SuggestSettings(context.Background(), testMission(), &models.ReportSection{})
	require.NoError(t, err)
	assert.Zero(t, suggestions.StructuredResearchRounds)
}
