package tools

import (
	"context"
	"math"
	"strings"
	"testing"

	chromem "github.com/philippgille/chromem-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/config"
)

// testEmbedding maps texts onto a tiny keyword vocabulary so similarity is
// deterministic without a real embedding backend.
func testEmbedding() chromem.EmbeddingFunc {
	vocab := []string{"battery", "cathode", "solar", "grid", "turbine"}
	return func(_ context.Context, text string) ([]float32, error) {
		vec := make([]float32, len(vocab)+1)
		lower := strings.ToLower(text)
		for i, w := range vocab {
			vec[i] = float32(strings.Count(lower, w))
		}
		vec[len(vocab)] = 0.1
		var norm float64
		for _, v := range vec {
			norm += float64(v) * float64(v)
		}
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
		return vec, nil
	}
}

func newTestDocStore(t *testing.T) *DocStore {
	t.Helper()
	store, err := NewDocStore(&config.DocStoreConfig{TopK: 2}, testEmbedding())
	require.NoError(t, err)
	return store
}

func seedChunks(t *testing.T, store *DocStore) {
	t.Helper()
	require.NoError(t, store.AddChunks(context.Background(), []Chunk{
		{ChunkID: "c1", DocID: "doc-battery", GroupID: "group-energy", Sequence: 0,
			Text: "battery cathode chemistry overview"},
		{ChunkID: "c2", DocID: "doc-battery", GroupID: "group-energy", Sequence: 1,
			Text: "battery pack assembly and cooling"},
		{ChunkID: "c3", DocID: "doc-solar", GroupID: "group-energy", Sequence: 0,
			Text: "solar panel efficiency and grid integration"},
		{ChunkID: "c4", DocID: "doc-wind", GroupID: "group-other", Sequence: 0,
			Text: "turbine blade design"},
	}))
}

func TestDocStore_SearchReturnsRelevantChunks(t *testing.T) {
	store := newTestDocStore(t)
	seedChunks(t, store)

	results, err := store.Search(context.Background(), "battery cathode", 2, SearchFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "c1", results[0].ChunkID)
	assert.Equal(t, "doc-battery", results[0].DocID)
	assert.Greater(t, results[0].Score, float32(0))
}

func TestDocStore_SearchScopedToGroup(t *testing.T) {
	store := newTestDocStore(t)
	seedChunks(t, store)

	results, err := store.Search(context.Background(), "turbine", 4,
		SearchFilter{DocumentGroupID: "group-energy"})
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, "group-energy", r.Metadata["document_group_id"])
	}
}

func TestDocStore_SearchScopedToDocIDs(t *testing.T) {
	store := newTestDocStore(t)
	seedChunks(t, store)

	results, err := store.Search(context.Background(), "battery", 4,
		SearchFilter{DocIDs: []string{"doc-solar"}})
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, "doc-solar", r.DocID)
	}
}

func TestDocStore_SearchEmptyStore(t *testing.T) {
	store := newTestDocStore(t)
	results, err := store.Search(context.Background(), "anything", 3, SearchFilter{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDocStore_SearchRequiresQuery(t *testing.T) {
	store := newTestDocStore(t)
	_, err := store.Search(context.Background(), "  ", 3, SearchFilter{})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestDocStore_AddChunksValidation(t *testing.T) {
	store := newTestDocStore(t)
	err := store.AddChunks(context.Background(), []Chunk{{ChunkID: "", DocID: "d", Text: "x"}})
	assert.ErrorIs(t, err, ErrInvalidArguments)
	err = store.AddChunks(context.Background(), []Chunk{{ChunkID: "c", DocID: "", Text: "x"}})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestDocStore_ReadFullDocument(t *testing.T) {
	store := newTestDocStore(t)
	// Out-of-order inserts are reassembled by sequence.
	require.NoError(t, store.AddChunks(context.Background(), []Chunk{
		{ChunkID: "c2", DocID: "doc-1", Sequence: 1, Text: "second part"},
		{ChunkID: "c1", DocID: "doc-1", Sequence: 0, Text: "first part"},
	}))

	text, err := store.ReadFullDocument("doc-1")
	require.NoError(t, err)
	assert.Equal(t, "first part\n\nsecond part", text)

	_, err = store.ReadFullDocument("ghost")
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestDocStore_Count(t *testing.T) {
	store := newTestDocStore(t)
	assert.Equal(t, 0, store.Count())
	seedChunks(t, store)
	assert.Equal(t, 4, store.Count())
}

func TestDocumentSearchTool_Execute(t *testing.T) {
	store := newTestDocStore(t)
	seedChunks(t, store)
	tool := NewDocumentSearchTool(store)

	result, err := tool.Execute(context.Background(), "mission-1", map[string]any{
		"query":             "battery",
		"k":                 float64(1),
		"document_group_id": "group-energy",
	})
	require.NoError(t, err)
	hits, ok := result.([]ChunkResult)
	require.True(t, ok)
	require.Len(t, hits, 1)
	assert.Equal(t, "doc-battery", hits[0].DocID)

	_, err = tool.Execute(context.Background(), "mission-1", map[string]any{})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestReadDocumentTool_Execute(t *testing.T) {
	store := newTestDocStore(t)
	seedChunks(t, store)
	tool := NewReadDocumentTool(store)

	result, err := tool.Execute(context.Background(), "mission-1", map[string]any{
		"doc_id": "doc-battery",
	})
	require.NoError(t, err)
	text, ok := result.(string)
	require.True(t, ok)
	assert.Contains(t, text, "cathode chemistry")
	assert.Contains(t, text, "pack assembly")

	_, err = tool.Execute(context.Background(), "mission-1", map[string]any{"doc_id": "ghost"})
	assert.ErrorIs(t, err, ErrToolNotFound)
}
