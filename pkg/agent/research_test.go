package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
	"github.com/maestro-research/maestro/pkg/tools"
)

func cycleParams() CycleParams {
	return CycleParams{
		Section:       testSection(),
		Round:         1,
		ToolSelection: models.ToolSelection{LocalRAG: true, WebSearch: true},
		Settings:      models.DefaultMissionSettings(),
	}
}

func queriesValue(queries ...string) map[string]any {
	items := make([]any, len(queries))
	for i, q := range queries {
		items[i] = q
	}
	return map[string]any{"queries": items}
}

func TestResearchAgent_Cycle(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{value: queriesValue("cap theorem consistency availability")},
		// One synthesis call per surviving candidate; the last step repeats.
		{value: map[string]any{"note": "Partition tolerance forces a choice between consistency and availability."}},
	}}
	runner := newFakeToolRunner()
	runner.results["document_search"] = []tools.ChunkResult{
		{ChunkID: "chunk-1", DocID: "doc-1", Text: "cap theorem availability consistency partition", Score: 0.9},
	}
	runner.results["intelligent_web_search"] = []tools.WebResult{
		{URL: "https://example.org/cap", Title: "CAP explained", Snippet: "consistency availability partition tolerance", Score: 0.8},
	}
	runner.results["web_fetch"] = &tools.Page{Title: "CAP explained", Text: "full page text about the cap theorem"}
	recorder := &fakeRecorder{}
	agent := NewResearchAgent(completer, runner, recorder, nil)

	result, err := agent.Cycle(context.Background(), "mission-1", cycleParams())
	require.NoError(t, err)

	assert.Equal(t, models.RecordSuccess, result.Status)
	require.Len(t, result.Queries, 1)
	require.Len(t, result.Notes, 2)
	for _, n := range result.Notes {
		assert.NotEmpty(t, n.NoteID)
		assert.Contains(t, n.NoteID, "note_")
		assert.NotEmpty(t, n.Content)
	}

	// One doc search, one web search, one fetch for the web candidate.
	assert.Equal(t, 1, runner.callsFor("document_search"))
	assert.Equal(t, 1, runner.callsFor("intelligent_web_search"))
	assert.Equal(t, 1, runner.callsFor("web_fetch"))

	rec, ok := recorder.lastRecord()
	require.True(t, ok)
	assert.Equal(t, AgentResearch, rec.AgentName)
	assert.Len(t, rec.ToolCalls, 2)
}

func TestResearchAgent_Cycle_DedupesAgainstExistingNotes(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{value: queriesValue("cap theorem")},
		{value: map[string]any{"note": "A note."}},
	}}
	runner := newFakeToolRunner()
	runner.results["document_search"] = []tools.ChunkResult{
		{ChunkID: "chunk-known", DocID: "doc-1", Text: "already seen", Score: 0.9},
	}
	agent := NewResearchAgent(completer, runner, nil, nil)

	params := cycleParams()
	params.ToolSelection.WebSearch = false
	params.ExistingNotes = []models.Note{{NoteID: "note_old", SourceID: "chunk-known"}}

	result, err := agent.Cycle(context.Background(), "mission-1", params)
	require.NoError(t, err)
	assert.Empty(t, result.Notes)
}

func TestResearchAgent_Cycle_DisabledToolsAreSkipped(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: queriesValue("q")}}}
	runner := newFakeToolRunner()
	agent := NewResearchAgent(completer, runner, nil, nil)

	params := cycleParams()
	params.ToolSelection = models.ToolSelection{}

	result, err := agent.Cycle(context.Background(), "mission-1", params)
	require.NoError(t, err)
	assert.Empty(t, result.Notes)
	assert.Empty(t, runner.calls)
}

func TestResearchAgent_Cycle_ToolFailureDegradesToWarning(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{value: queriesValue("cap theorem")},
		{value: map[string]any{"note": "From the web."}},
	}}
	runner := newFakeToolRunner()
	runner.errs["document_search"] = errors.New("vector store down")
	runner.results["intelligent_web_search"] = []tools.WebResult{
		{URL: "https://example.org/cap", Snippet: "cap theorem availability consistency", Score: 0.8},
	}
	agent := NewResearchAgent(completer, runner, nil, nil)

	result, err := agent.Cycle(context.Background(), "mission-1", cycleParams())
	require.NoError(t, err)
	assert.Equal(t, models.RecordWarning, result.Status)
	require.Len(t, result.Notes, 1)
	assert.Equal(t, models.SourceWeb, result.Notes[0].SourceType)
}

func TestResearchAgent_Cycle_EmptyNoteSkipsIrrelevantSource(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{value: queriesValue("cap theorem")},
		{value: map[string]any{"note": ""}},
	}}
	runner := newFakeToolRunner()
	runner.results["document_search"] = []tools.ChunkResult{
		{ChunkID: "chunk-1", DocID: "doc-1", Text: "unrelated content", Score: 0.2},
	}
	agent := NewResearchAgent(completer, runner, nil, nil)

	params := cycleParams()
	params.ToolSelection.WebSearch = false

	result, err := agent.Cycle(context.Background(), "mission-1", params)
	require.NoError(t, err)
	assert.Empty(t, result.Notes)
}

func TestResearchAgent_Cycle_QuerySchemaFailureFallsBackToSection(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{err: &llm.Error{Kind: llm.KindSchema, Message: "garbage"}},
		{value: map[string]any{"note": "Fallback note."}},
	}}
	runner := newFakeToolRunner()
	runner.results["document_search"] = []tools.ChunkResult{
		{ChunkID: "chunk-1", DocID: "doc-1", Text: "cap theorem partition", Score: 0.9},
	}
	agent := NewResearchAgent(completer, runner, nil, nil)

	params := cycleParams()
	params.ToolSelection.WebSearch = false

	result, err := agent.Cycle(context.Background(), "mission-1", params)
	require.NoError(t, err)
	require.Len(t, result.Queries, 1)
	assert.Contains(t, result.Queries[0], params.Section.Title)
	assert.Len(t, result.Notes, 1)
}

func TestResearchAgent_Cycle_ProviderFailureFailsCycle(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{err: &llm.Error{Kind: llm.KindConfiguration, Message: "bad key"}},
	}}
	agent := NewResearchAgent(completer, newFakeToolRunner(), nil, nil)

	_, err := agent.Cycle(context.Background(), "mission-1", cycleParams())
	require.Error(t, err)
	assert.Equal(t, llm.KindConfiguration, llm.KindOf(err))
}

func TestResearchAgent_Cycle_WebFetchFailureFallsBackToSnippet(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{value: queriesValue("cap theorem")},
		{value: map[string]any{"note": "Snippet-derived note."}},
	}}
	runner := newFakeToolRunner()
	runner.results["intelligent_web_search"] = []tools.WebResult{
		{URL: "https://example.org/cap", Snippet: "cap theorem consistency availability", Score: 0.8},
	}
	runner.errs["web_fetch"] = errors.New("timeout")
	agent := NewResearchAgent(completer, runner, nil, nil)

	params := cycleParams()
	params.ToolSelection.LocalRAG = false

	result, err := agent.Cycle(context.Background(), "mission-1", params)
	require.NoError(t, err)
	require.Len(t, result.Notes, 1)
	assert.Equal(t, "https://example.org/cap", result.Notes[0].SourceID)
}

func TestLexicalSimilarity(t *testing.T) {
	assert.Greater(t,
		lexicalSimilarity("cap theorem consistency", "the cap theorem trades consistency for availability"),
		lexicalSimilarity("cap theorem consistency", "gradient descent convergence"))
	assert.Zero(t, lexicalSimilarity("", "anything"))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Zero(t, cosine([]float32{1}, []float32{1, 2}))
}
