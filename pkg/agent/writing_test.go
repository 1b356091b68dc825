package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

func TestWritingAgent_WriteSection_ResearchBased(t *testing.T) {
	completer := &fakeCompleter{textSteps: []textStep{
		{text: "The CAP theorem forces a trade-off [note_a1]."},
	}}
	recorder := &fakeRecorder{}
	agent := NewWritingAgent(completer, recorder)

	draft, err := agent.WriteSection(context.Background(), "mission-1", WriteParams{
		Section: testSection(),
		Notes: []models.Note{
			{NoteID: "note_a1", Content: "Partitions force choosing consistency or availability."},
		},
		SiblingTitles: []string{"Historical context"},
		Pass:          1,
	})
	require.NoError(t, err)
	assert.Contains(t, draft, "[note_a1]")

	require.Len(t, completer.textCalls, 1)
	call := completer.textCalls[0]
	assert.Equal(t, config.TierIntelligent, call.Tier)
	prompt := call.Messages[1].Content
	assert.Contains(t, prompt, "[note_a1]")
	assert.Contains(t, prompt, "Partitions force choosing")
	assert.Contains(t, prompt, "Historical context")

	rec, ok := recorder.lastRecord()
	require.True(t, ok)
	assert.Equal(t, AgentWriting, rec.AgentName)
	assert.Equal(t, "Write section (pass 1)", rec.Action)
}

func TestWritingAgent_WriteSection_ContentBased(t *testing.T) {
	completer := &fakeCompleter{textSteps: []textStep{{text: "This report covers two themes."}}}
	agent := NewWritingAgent(completer, nil)

	section := &models.ReportSection{
		SectionID: "sec_intro", Title: "Introduction",
		Description:      "Opens the report.",
		ResearchStrategy: models.StrategyContentBased,
	}
	_, err := agent.WriteSection(context.Background(), "mission-1", WriteParams{
		Section: section,
		Siblings: []SectionDraft{
			{Title: "Battery storage", Content: "Cathodes matter."},
		},
		Pass: 1,
	})
	require.NoError(t, err)

	prompt := completer.textCalls[0].Messages[1].Content
	assert.Contains(t, prompt, "Cathodes matter.")
	assert.Contains(t, prompt, "no new factual claims and no citations")
}

func TestWritingAgent_WriteSection_Synthesize(t *testing.T) {
	completer := &fakeCompleter{textSteps: []textStep{{text: "Together the subsections show..."}}}
	agent := NewWritingAgent(completer, nil)

	section := &models.ReportSection{
		SectionID: "sec_parent", Title: "Storage technologies",
		ResearchStrategy: models.StrategySynthesize,
	}
	_, err := agent.WriteSection(context.Background(), "mission-1", WriteParams{
		Section: section,
		Children: []SectionDraft{
			{Title: "Batteries", Content: "Battery draft."},
			{Title: "Pumped hydro", Content: "Hydro draft."},
		},
		Pass: 1,
	})
	require.NoError(t, err)

	prompt := completer.textCalls[0].Messages[1].Content
	assert.Contains(t, prompt, "Battery draft.")
	assert.Contains(t, prompt, "Hydro draft.")
	assert.Contains(t, prompt, "summary of its subsections")
}

func TestWritingAgent_WriteSection_NoNotes(t *testing.T) {
	completer := &fakeCompleter{textSteps: []textStep{{text: "Little is known here."}}}
	agent := NewWritingAgent(completer, nil)

	_, err := agent.WriteSection(context.Background(), "mission-1", WriteParams{
		Section: testSection(),
		Pass:    1,
	})
	require.NoError(t, err)
	assert.Contains(t, completer.textCalls[0].Messages[1].Content, "no notes were gathered")
}

func TestWritingAgent_WriteSection_RevisionIncludesPriorDraft(t *testing.T) {
	completer := &fakeCompleter{textSteps: []textStep{{text: "Improved draft."}}}
	agent := NewWritingAgent(completer, nil)

	_, err := agent.WriteSection(context.Background(), "mission-1", WriteParams{
		Section:    testSection(),
		PriorDraft: "First attempt at this section.",
		Pass:       2,
	})
	require.NoError(t, err)

	prompt := completer.textCalls[0].Messages[1].Content
	assert.Contains(t, prompt, "First attempt at this section.")
	assert.Contains(t, prompt, "Revise it")
}

func TestWritingAgent_WriteSection_EmptyOutputFails(t *testing.T) {
	completer := &fakeCompleter{textSteps: []textStep{{text: "   \n  "}}}
	agent := NewWritingAgent(completer, nil)

	_, err := agent.WriteSection(context.Background(), "mission-1", WriteParams{
		Section: testSection(), Pass: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestWritingAgent_WriteSection_ProviderErrorPropagates(t *testing.T) {
	completer := &fakeCompleter{textSteps: []textStep{
		{err: &llm.Error{Kind: llm.KindTransient, Message: "overloaded"}},
	}}
	agent := NewWritingAgent(completer, nil)

	_, err := agent.WriteSection(context.Background(), "mission-1", WriteParams{
		Section: testSection(), Pass: 1,
	})
	require.Error(t, err)
	assert.Equal(t, llm.KindTransient, llm.KindOf(err))
}
