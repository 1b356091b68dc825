package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/models"
)

func citationNotes() []models.Note {
	return []models.Note{
		{
			NoteID: "note_doc1", SourceType: models.SourceDocument, SourceID: "chunk-1",
			SourceMetadata: map[string]any{
				"doc_id": "paper-42", "title": "Grid-scale storage", "authors": "Chen et al.", "year": "2023",
			},
		},
		{
			NoteID: "note_doc2", SourceType: models.SourceDocument, SourceID: "chunk-2",
			SourceMetadata: map[string]any{"doc_id": "paper-42", "title": "Grid-scale storage"},
		},
		{
			NoteID: "note_web1", SourceType: models.SourceWeb, SourceID: "https://example.org/cap",
			SourceMetadata: map[string]any{"title": "CAP explained"},
		},
	}
}

func TestProcessCitations(t *testing.T) {
	content := "Storage matters [note_doc1]. So does the web [note_web1]. More storage [note_doc2]."
	result := ProcessCitations(content, citationNotes())

	// Both document notes come from the same paper and share one token.
	docToken := "doc-" + shortHash("paper-42")
	webToken := "web-" + shortHash("https://example.org/cap")
	assert.Contains(t, result.Content, "["+docToken+"]")
	assert.Contains(t, result.Content, "["+webToken+"]")
	assert.NotContains(t, result.Content, "note_")

	require.Len(t, result.References, 2)
	assert.Equal(t, docToken, result.References[0].Token)
	assert.Equal(t, "Grid-scale storage. Chen et al.. 2023", result.References[0].Reference)
	assert.Equal(t, webToken, result.References[1].Token)
	assert.Equal(t, "CAP explained. https://example.org/cap", result.References[1].Reference)
	assert.Empty(t, result.DroppedNotes)
}

func TestProcessCitations_ReferenceOrderIsFirstAppearance(t *testing.T) {
	content := "Web first [note_web1], then a document [note_doc1], then web again [note_web1]."
	result := ProcessCitations(content, citationNotes())

	require.Len(t, result.References, 2)
	assert.Equal(t, "web-"+shortHash("https://example.org/cap"), result.References[0].Token)
	assert.Equal(t, "doc-"+shortHash("paper-42"), result.References[1].Token)
}

func TestProcessCitations_TokensAreStable(t *testing.T) {
	first := ProcessCitations("A [note_doc1].", citationNotes())
	second := ProcessCitations("B [note_doc1] again.", citationNotes())
	require.Len(t, first.References, 1)
	require.Len(t, second.References, 1)
	assert.Equal(t, first.References[0].Token, second.References[0].Token)
}

func TestProcessCitations_InternalNoteResolvesToSources(t *testing.T) {
	notes := append(citationNotes(), models.Note{
		NoteID: "note_synth", SourceType: models.SourceInternal, SourceID: "note_synth",
		SourceMetadata: map[string]any{
			"synthesized_from_notes": []any{"note_doc1", "note_web1"},
		},
	})

	result := ProcessCitations("A synthesized claim [note_synth].", notes)

	docToken := "doc-" + shortHash("paper-42")
	webToken := "web-" + shortHash("https://example.org/cap")
	assert.Contains(t, result.Content, "["+docToken+", "+webToken+"]")
	assert.Len(t, result.References, 2)
	assert.Empty(t, result.DroppedNotes)
}

func TestProcessCitations_CyclicInternalNotesTerminate(t *testing.T) {
	notes := []models.Note{
		{
			NoteID: "note_x", SourceType: models.SourceInternal,
			SourceMetadata: map[string]any{"synthesized_from_notes": []any{"note_y"}},
		},
		{
			NoteID: "note_y", SourceType: models.SourceInternal,
			SourceMetadata: map[string]any{"synthesized_from_notes": []any{"note_x"}},
		},
	}
	result := ProcessCitations("Circular [note_x].", notes)
	assert.Empty(t, result.References)
	assert.Equal(t, []string{"note_x"}, result.DroppedNotes)
}

func TestProcessCitations_UnknownNoteIsDropped(t *testing.T) {
	result := ProcessCitations("Claim [note_ghost] stands.", citationNotes())
	assert.Equal(t, "Claim  stands.", result.Content)
	assert.Equal(t, []string{"note_ghost"}, result.DroppedNotes)
}

func TestProcessCitations_NoBracketsPassThrough(t *testing.T) {
	content := "Plain text with [regular brackets] and no citations."
	result := ProcessCitations(content, citationNotes())
	assert.Equal(t, content, result.Content)
	assert.Empty(t, result.References)
}

func TestCitationAgent_Process_RecordsDroppedNotes(t *testing.T) {
	recorder := &fakeRecorder{}
	agent := NewCitationAgent(recorder)

	result := agent.Process(context.Background(), "mission-1",
		"Missing [note_ghost] here.", citationNotes())
	assert.Equal(t, []string{"note_ghost"}, result.DroppedNotes)

	rec, ok := recorder.lastRecord()
	require.True(t, ok)
	assert.Equal(t, AgentCitation, rec.AgentName)
	assert.Equal(t, models.RecordWarning, rec.Status)
	assert.Contains(t, rec.ErrorMessage, "note_ghost")
}
