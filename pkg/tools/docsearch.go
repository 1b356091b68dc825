package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	chromem "github.com/philippgille/chromem-go"

	"github.com/maestro-research/maestro/pkg/config"
)

// chunkCollection is the chromem collection holding all document chunks.
const chunkCollection = "doc_chunks"

// Chunk is one indexed slice of a source document.
type Chunk struct {
	ChunkID  string
	DocID    string
	GroupID  string
	Sequence int
	Text     string
	Metadata map[string]string
}

// ChunkResult is a scored search hit.
type ChunkResult struct {
	ChunkID  string            `json:"chunk_id"`
	DocID    string            `json:"doc_id"`
	Text     string            `json:"text"`
	Score    float32           `json:"score"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// SearchFilter narrows document search to a group and/or explicit documents.
type SearchFilter struct {
	DocumentGroupID string
	DocIDs          []string
}

// DocStore wraps the chromem vector store with the chunk schema the research
// pipeline uses. Chunks carry doc_id/group metadata so searches can be
// scoped per mission.
type DocStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	topK       int

	// docChunks indexes chunk ids by document for full-document reads,
	// which chromem cannot answer directly.
	mu        sync.RWMutex
	docChunks map[string][]Chunk
}

// NewDocStore opens (or creates) the vector store. An empty path keeps the
// store in memory, which the tests rely on.
func NewDocStore(cfg *config.DocStoreConfig, embed chromem.EmbeddingFunc) (*DocStore, error) {
	var db *chromem.DB
	var err error
	if cfg.Path != "" {
		db, err = chromem.NewPersistentDB(filepath.Join(cfg.Path, "chromem.gob"), false)
		if err != nil {
			return nil, fmt.Errorf("failed to open vector store: %w", err)
		}
	} else {
		db = chromem.NewDB()
	}

	collection, err := db.GetOrCreateCollection(chunkCollection, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("failed to open chunk collection: %w", err)
	}

	topK := cfg.TopK
	if topK <= 0 {
		topK = 5
	}
	return &DocStore{
		db:         db,
		collection: collection,
		topK:       topK,
		docChunks:  make(map[string][]Chunk),
	}, nil
}

// BuildEmbeddingFunc resolves the embedding backend from configuration. The
// configured provider's key and endpoint are reused for embedding calls.
func BuildEmbeddingFunc(cfg *config.Config) (chromem.EmbeddingFunc, error) {
	dc := cfg.Tools.DocStore
	model := dc.EmbeddingModel
	if model == "" {
		model = string(chromem.EmbeddingModelOpenAI3Small)
	}

	if dc.EmbeddingProvider != "" {
		provider, err := cfg.GetLLMProvider(dc.EmbeddingProvider)
		if err != nil {
			return nil, fmt.Errorf("embedding provider %q is not configured: %w", dc.EmbeddingProvider, err)
		}
		apiKey := os.Getenv(provider.APIKeyEnv)
		if provider.BaseURL != "" {
			return chromem.NewEmbeddingFuncOpenAICompat(provider.BaseURL, apiKey, model, nil), nil
		}
		return chromem.NewEmbeddingFuncOpenAI(apiKey, chromem.EmbeddingModelOpenAI(model)), nil
	}

	return chromem.NewEmbeddingFuncOpenAI(os.Getenv("OPENAI_API_KEY"), chromem.EmbeddingModelOpenAI(model)), nil
}

// AddChunks indexes document chunks for retrieval.
func (s *DocStore) AddChunks(ctx context.Context, chunks []Chunk) error {
	for _, c := range chunks {
		if c.ChunkID == "" || c.DocID == "" {
			return fmt.Errorf("%w: chunk requires chunk_id and doc_id", ErrInvalidArguments)
		}
		meta := map[string]string{
			"doc_id": c.DocID,
		}
		if c.GroupID != "" {
			meta["document_group_id"] = c.GroupID
		}
		for k, v := range c.Metadata {
			meta[k] = v
		}
		if err := s.collection.AddDocument(ctx, chromem.Document{
			ID:       c.ChunkID,
			Content:  c.Text,
			Metadata: meta,
		}); err != nil {
			return fmt.Errorf("failed to index chunk %s: %w", c.ChunkID, err)
		}
	}

	s.mu.Lock()
	for _, c := range chunks {
		s.docChunks[c.DocID] = append(s.docChunks[c.DocID], c)
	}
	s.mu.Unlock()
	return nil
}

// Search returns the top-k chunks most similar to the query, scoped by the
// filter. k defaults to the configured top_k.
func (s *DocStore) Search(ctx context.Context, query string, k int, filter SearchFilter) ([]ChunkResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidArguments)
	}
	if k <= 0 {
		k = s.topK
	}

	var where map[string]string
	if filter.DocumentGroupID != "" {
		where = map[string]string{"document_group_id": filter.DocumentGroupID}
	}

	// chromem rejects nResults greater than the collection size. Over-fetch
	// when a doc_ids post-filter will drop hits.
	limit := k
	if len(filter.DocIDs) > 0 {
		limit = k * 4
	}
	if count := s.collection.Count(); limit > count {
		limit = count
	}
	if limit == 0 {
		return nil, nil
	}

	hits, err := s.collection.Query(ctx, query, limit, where, nil)
	if err != nil {
		return nil, fmt.Errorf("document search failed: %w", err)
	}

	allowed := make(map[string]bool, len(filter.DocIDs))
	for _, id := range filter.DocIDs {
		allowed[id] = true
	}

	results := make([]ChunkResult, 0, k)
	for _, h := range hits {
		docID := h.Metadata["doc_id"]
		if len(allowed) > 0 && !allowed[docID] {
			continue
		}
		results = append(results, ChunkResult{
			ChunkID:  h.ID,
			DocID:    docID,
			Text:     h.Content,
			Score:    h.Similarity,
			Metadata: h.Metadata,
		})
		if len(results) == k {
			break
		}
	}
	return results, nil
}

// ReadFullDocument reassembles a document's text from its indexed chunks in
// sequence order.
func (s *DocStore) ReadFullDocument(docID string) (string, error) {
	s.mu.RLock()
	chunks := append([]Chunk(nil), s.docChunks[docID]...)
	s.mu.RUnlock()
	if len(chunks) == 0 {
		return "", fmt.Errorf("%w: document %s", ErrToolNotFound, docID)
	}

	sort.Slice(chunks, func(i, j int) bool { return chunks[i].Sequence < chunks[j].Sequence })
	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = c.Text
	}
	return strings.Join(parts, "\n\n"), nil
}

// Count returns the number of indexed chunks.
func (s *DocStore) Count() int {
	return s.collection.Count()
}

// documentSearchTool exposes the DocStore through the tool contract.
type documentSearchTool struct {
	store *DocStore
}

// NewDocumentSearchTool wraps a DocStore as the document_search tool.
func NewDocumentSearchTool(store *DocStore) Tool {
	return &documentSearchTool{store: store}
}

func (t *documentSearchTool) Name() string { return "document_search" }

func (t *documentSearchTool) Description() string {
	return "Search the local document store for chunks relevant to a query. " +
		"Supports scoping to a document group or explicit document ids."
}

func (t *documentSearchTool) InputSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"query"},
		"properties": map[string]any{
			"query":             map[string]any{"type": "string"},
			"k":                 map[string]any{"type": "integer"},
			"document_group_id": map[string]any{"type": "string"},
			"doc_ids":           map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
	}
}

func (t *documentSearchTool) Execute(ctx context.Context, _ string, args map[string]any) (any, error) {
	query, err := stringArg(args, "query")
	if err != nil {
		return nil, err
	}

	filter := SearchFilter{}
	if g, ok := args["document_group_id"].(string); ok {
		filter.DocumentGroupID = g
	}
	if raw, ok := args["doc_ids"].([]any); ok {
		for _, v := range raw {
			if id, ok := v.(string); ok {
				filter.DocIDs = append(filter.DocIDs, id)
			}
		}
	}

	return t.store.Search(ctx, query, intArg(args, "k", 0), filter)
}

// readDocumentTool exposes full-document reads through the tool contract.
type readDocumentTool struct {
	store *DocStore
}

// NewReadDocumentTool wraps a DocStore as the read_full_document tool.
func NewReadDocumentTool(store *DocStore) Tool {
	return &readDocumentTool{store: store}
}

func (t *readDocumentTool) Name() string { return "read_full_document" }

func (t *readDocumentTool) Description() string {
	return "Read the full text of an indexed document by id."
}

func (t *readDocumentTool) InputSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"doc_id"},
		"properties": map[string]any{
			"doc_id": map[string]any{"type": "string"},
		},
	}
}

func (t *readDocumentTool) Execute(_ context.Context, _ string, args map[string]any) (any, error) {
	docID, err := stringArg(args, "doc_id")
	if err != nil {
		return nil, err
	}
	return t.store.ReadFullDocument(docID)
}
