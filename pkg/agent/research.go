package agent

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
	"github.com/maestro-research/maestro/pkg/tools"
)

const maxQueriesPerCycle = 3

var queriesSchema = map[string]any{
	"type":     "object",
	"required": []any{"queries"},
	"properties": map[string]any{
		"queries": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
}

var noteSchema = map[string]any{
	"type":     "object",
	"required": []any{"note"},
	"properties": map[string]any{
		"note": map[string]any{"type": "string"},
	},
}

// CycleParams are the inputs to one research cycle over a section.
type CycleParams struct {
	Section         *models.ReportSection
	Round           int // 0 is the exploratory pass
	Goals           []models.GoalEntry
	Thoughts        []models.ThoughtEntry
	ExistingNotes   []models.Note
	ToolSelection   models.ToolSelection
	DocumentGroupID string
	Settings        models.MissionSettings
}

// CycleResult is the outcome of one research cycle. New notes have stable
// ids minted here but are not yet in the mission context; the controller
// upserts them.
type CycleResult struct {
	Queries []string
	Notes   []models.Note
	Status  models.RecordStatus
}

// candidate is one deduplicated retrieval hit awaiting note synthesis.
type candidate struct {
	sourceType models.SourceType
	sourceID   string
	title      string
	text       string
	metadata   map[string]any
	score      float64
}

// ResearchAgent runs search-and-extract cycles over outline sections.
type ResearchAgent struct {
	completer Completer
	tools     ToolRunner
	recorder  Recorder
	embed     chromem.EmbeddingFunc // nil falls back to lexical similarity
}

// NewResearchAgent builds the research agent. recorder and embed may be nil.
func NewResearchAgent(completer Completer, runner ToolRunner, recorder Recorder, embed chromem.EmbeddingFunc) *ResearchAgent {
	return &ResearchAgent{completer: completer, tools: runner, recorder: recorder, embed: embed}
}

// Cycle runs one research pass: generate queries, fan out over the enabled
// tools, deduplicate and rerank the hits, and synthesize a note per
// surviving hit. Tool and synthesis failures degrade the cycle to a warning;
// only a provider failure during query generation fails it.
func (r *ResearchAgent) Cycle(ctx context.Context, missionID string, params CycleParams) (*CycleResult, error) {
	queries, queryResp, err := r.generateQueries(ctx, missionID, params)
	if err != nil {
		return nil, err
	}

	toolCalls := make([]models.ToolCallRecord, 0, len(queries)*2)
	seen := make(map[string]bool, len(params.ExistingNotes))
	for _, n := range params.ExistingNotes {
		seen[n.SourceID] = true
	}

	var candidates []candidate
	hadToolFailure := false
	for _, query := range queries {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		hits, calls, failed := r.runSearches(ctx, missionID, query, params)
		toolCalls = append(toolCalls, calls...)
		hadToolFailure = hadToolFailure || failed
		for _, c := range hits {
			if c.sourceID == "" || seen[c.sourceID] {
				continue
			}
			seen[c.sourceID] = true
			candidates = append(candidates, c)
		}
	}

	r.rerank(ctx, params.Section, candidates)
	limit := docResults(params) + webResults(params)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := &CycleResult{Queries: queries, Status: models.RecordSuccess}
	for _, c := range candidates {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		note, err := r.synthesizeNote(ctx, missionID, params.Section, c)
		if err != nil {
			hadToolFailure = true
			continue
		}
		if note != nil {
			result.Notes = append(result.Notes, *note)
		}
	}
	if hadToolFailure {
		result.Status = models.RecordWarning
	}

	record(ctx, r.recorder, missionID, models.ExecutionRecord{
		AgentName:     AgentResearch,
		Action:        fmt.Sprintf("Research cycle (round %d)", params.Round),
		InputSummary:  fmt.Sprintf("%s: %d queries", params.Section.Title, len(queries)),
		OutputSummary: fmt.Sprintf("%d new notes from %d candidates", len(result.Notes), len(candidates)),
		Status:        result.Status,
		ModelDetails:  modelDetails(queryResp),
		ToolCalls:     toolCalls,
	})
	return result, nil
}

func (r *ResearchAgent) generateQueries(ctx context.Context, missionID string, params CycleParams) ([]string, *llm.Response, error) {
	maxQueries := maxQueriesPerCycle
	if params.Round == 0 && params.Settings.InitialResearchMaxQuestions > 0 &&
		params.Settings.InitialResearchMaxQuestions < maxQueries {
		maxQueries = params.Settings.InitialResearchMaxQuestions
	}

	thoughts := params.Thoughts
	if limit := params.Settings.ThoughtPadContextLimit; limit > 0 && len(thoughts) > limit {
		thoughts = thoughts[len(thoughts)-limit:]
	}

	resp, err := r.completer.CompleteJSON(ctx, missionID, llm.Request{
		Tier:   config.TierFast,
		Schema: queriesSchema,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: researchQuerySystemPrompt},
			{Role: llm.RoleUser, Content: researchQueryPrompt(params.Section, params.Goals, thoughts, maxQueries)},
		},
	})
	if err != nil {
		if llm.KindOf(err) == llm.KindSchema {
			// Degrade to the section itself as the query.
			return []string{params.Section.Title + " " + params.Section.Description}, nil, nil
		}
		return nil, nil, fmt.Errorf("query generation failed: %w", err)
	}

	var parsed struct {
		Queries []string `json:"queries"`
	}
	if err := decodeValue(resp.Value, &parsed); err != nil {
		return []string{params.Section.Title + " " + params.Section.Description}, &resp.Response, nil
	}

	queries := make([]string, 0, maxQueries)
	for _, q := range parsed.Queries {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		queries = append(queries, q)
		if len(queries) == maxQueries {
			break
		}
	}
	if len(queries) == 0 {
		queries = []string{params.Section.Title + " " + params.Section.Description}
	}
	return queries, &resp.Response, nil
}

// runSearches executes the enabled retrieval tools for one query.
func (r *ResearchAgent) runSearches(ctx context.Context, missionID, query string, params CycleParams) ([]candidate, []models.ToolCallRecord, bool) {
	var candidates []candidate
	var calls []models.ToolCallRecord
	failed := false

	if params.ToolSelection.LocalRAG {
		args := map[string]any{"query": query, "k": docResults(params)}
		if params.DocumentGroupID != "" {
			args["document_group_id"] = params.DocumentGroupID
		}
		call := models.ToolCallRecord{ToolName: "document_search", Arguments: args}
		result, err := r.tools.Execute(ctx, missionID, AgentResearch, "document_search", args)
		if err != nil {
			call.Error = err.Error()
			failed = true
		} else if hits, ok := result.([]tools.ChunkResult); ok {
			for _, h := range hits {
				candidates = append(candidates, candidate{
					sourceType: models.SourceDocument,
					sourceID:   h.ChunkID,
					text:       h.Text,
					metadata:   chunkMetadata(h),
					score:      float64(h.Score),
				})
			}
		}
		calls = append(calls, call)
	}

	if params.ToolSelection.WebSearch {
		args := map[string]any{"query": query, "max_results": webResults(params)}
		call := models.ToolCallRecord{ToolName: "intelligent_web_search", Arguments: args}
		result, err := r.tools.Execute(ctx, missionID, AgentResearch, "intelligent_web_search", args)
		if err != nil {
			call.Error = err.Error()
			failed = true
		} else if hits, ok := result.([]tools.WebResult); ok {
			for _, h := range hits {
				candidates = append(candidates, candidate{
					sourceType: models.SourceWeb,
					sourceID:   h.URL,
					title:      h.Title,
					text:       h.Snippet,
					metadata:   map[string]any{"title": h.Title, "url": h.URL},
					score:      h.Score,
				})
			}
		}
		calls = append(calls, call)
	}

	return candidates, calls, failed
}

// rerank orders candidates by similarity to the section description,
// overriding backend-specific scores with one comparable measure.
func (r *ResearchAgent) rerank(ctx context.Context, section *models.ReportSection, candidates []candidate) {
	reference := section.Title + " " + section.Description

	if r.embed != nil {
		if refVec, err := r.embed(ctx, reference); err == nil {
			ok := true
			for i := range candidates {
				vec, err := r.embed(ctx, candidates[i].text)
				if err != nil {
					ok = false
					break
				}
				candidates[i].score = cosine(refVec, vec)
			}
			if ok {
				sortCandidates(candidates)
				return
			}
		}
	}

	for i := range candidates {
		candidates[i].score = lexicalSimilarity(reference, candidates[i].text)
	}
	sortCandidates(candidates)
}

func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
}

// synthesizeNote extracts one self-contained claim from a candidate. Web
// candidates are fetched first; a failed fetch falls back to the snippet.
// A nil note with nil error means the model judged the source irrelevant.
func (r *ResearchAgent) synthesizeNote(ctx context.Context, missionID string, section *models.ReportSection, c candidate) (*models.Note, error) {
	sourceText := c.text
	if c.sourceType == models.SourceWeb {
		if result, err := r.tools.Execute(ctx, missionID, AgentResearch, "web_fetch",
			map[string]any{"url": c.sourceID}); err == nil {
			if page, ok := result.(*tools.Page); ok && page.Text != "" {
				sourceText = page.Text
				if c.title == "" {
					c.title = page.Title
				}
			}
		}
	}

	resp, err := r.completer.CompleteJSON(ctx, missionID, llm.Request{
		Tier:   config.TierFast,
		Schema: noteSchema,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: noteSynthesisSystemPrompt},
			{Role: llm.RoleUser, Content: noteSynthesisPrompt(section, sourceText)},
		},
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Note string `json:"note"`
	}
	if err := decodeValue(resp.Value, &parsed); err != nil {
		return nil, err
	}
	content := strings.TrimSpace(parsed.Note)
	if content == "" {
		return nil, nil
	}

	meta := c.metadata
	if meta == nil {
		meta = map[string]any{}
	}
	if c.title != "" {
		meta["title"] = c.title
	}
	return &models.Note{
		NoteID:         MintNoteID(),
		Content:        content,
		SourceType:     c.sourceType,
		SourceID:       c.sourceID,
		SourceMetadata: meta,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func docResults(params CycleParams) int {
	if params.Round == 0 {
		return orDefault(params.Settings.InitialExplorationDocResults, 5)
	}
	return orDefault(params.Settings.MainResearchDocResults, 5)
}

func webResults(params CycleParams) int {
	if params.Round == 0 {
		return orDefault(params.Settings.InitialExplorationWebResults, 3)
	}
	return orDefault(params.Settings.MainResearchWebResults, 5)
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func chunkMetadata(h tools.ChunkResult) map[string]any {
	meta := map[string]any{"chunk_id": h.ChunkID, "doc_id": h.DocID}
	for k, v := range h.Metadata {
		meta[k] = v
	}
	return meta
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// lexicalSimilarity is the embedding-free fallback: token overlap between
// the reference and the text, normalized by reference vocabulary size.
func lexicalSimilarity(reference, text string) float64 {
	refTokens := tokenSet(reference)
	if len(refTokens) == 0 {
		return 0
	}
	matched := 0
	for token := range tokenSet(text) {
		if refTokens[token] {
			matched++
		}
	}
	return float64(matched) / float64(len(refTokens))
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicodeIsAlnum(r)
	}) {
		if len(tok) > 2 {
			set[tok] = true
		}
	}
	return set
}

func unicodeIsAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
