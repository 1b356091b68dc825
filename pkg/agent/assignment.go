package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	chromem "github.com/philippgille/chromem-go"

	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

// assignmentSimilarityThreshold gates the coverage fallback: a section only
// receives a forced note when some candidate clears this similarity.
const assignmentSimilarityThreshold = 0.15

var assignmentSchema = map[string]any{
	"type":     "object",
	"required": []any{"assignments"},
	"properties": map[string]any{
		"assignments": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"section_id", "note_ids"},
				"properties": map[string]any{
					"section_id": map[string]any{"type": "string"},
					"note_ids":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
		},
	},
}

// AssignmentAgent maps notes onto outline sections before each writing pass.
type AssignmentAgent struct {
	completer Completer
	recorder  Recorder
	embed     chromem.EmbeddingFunc // nil falls back to lexical similarity
}

// NewAssignmentAgent builds the assignment agent. recorder and embed may be
// nil.
func NewAssignmentAgent(completer Completer, recorder Recorder, embed chromem.EmbeddingFunc) *AssignmentAgent {
	return &AssignmentAgent{completer: completer, recorder: recorder, embed: embed}
}

// Assign produces section_id → note_ids over the non-discarded notes. Each
// note lands in at most one section; ties go to the earlier section in
// outline order. Candidate sets above the reranking cap are pre-filtered by
// similarity before the model call. A schema failure degrades to a pure
// similarity assignment.
func (a *AssignmentAgent) Assign(ctx context.Context, missionID string, outline *models.ReportSection, notes []models.Note, settings models.MissionSettings) (map[string][]string, error) {
	sections := assignableSections(outline)
	if len(sections) == 0 || len(notes) == 0 {
		return map[string][]string{}, nil
	}

	if limit := settings.MaxNotesForAssignmentReranking; limit > 0 && len(notes) > limit {
		notes = a.prefilter(ctx, outline, notes, limit)
	}

	assignments, resp, err := a.assignWithModel(ctx, missionID, outline, notes)
	if err != nil {
		if llm.KindOf(err) != llm.KindSchema {
			return nil, fmt.Errorf("note assignment failed: %w", err)
		}
		assignments = a.assignBySimilarity(ctx, sections, notes)
	}

	result := normalizeAssignments(assignments, sections, notes)
	a.ensureCoverage(ctx, result, sections, notes)

	record(ctx, a.recorder, missionID, models.ExecutionRecord{
		AgentName:     AgentAssignment,
		Action:        "Assign notes to sections",
		InputSummary:  fmt.Sprintf("%d notes, %d sections", len(notes), len(sections)),
		OutputSummary: fmt.Sprintf("%d sections received notes", len(result)),
		Status:        models.RecordSuccess,
		ModelDetails:  modelDetails(resp),
	})
	return result, nil
}

func (a *AssignmentAgent) assignWithModel(ctx context.Context, missionID string, outline *models.ReportSection, notes []models.Note) (map[string][]string, *llm.Response, error) {
	resp, err := a.completer.CompleteJSON(ctx, missionID, llm.Request{
		Tier:   config.TierMid,
		Schema: assignmentSchema,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: assignmentSystemPrompt},
			{Role: llm.RoleUser, Content: assignmentPrompt(outline, notes)},
		},
	})
	if err != nil {
		return nil, nil, err
	}

	var parsed struct {
		Assignments []struct {
			SectionID string   `json:"section_id"`
			NoteIDs   []string `json:"note_ids"`
		} `json:"assignments"`
	}
	if err := decodeValue(resp.Value, &parsed); err != nil {
		return nil, &resp.Response, &llm.Error{Kind: llm.KindSchema, Message: "assignment output shape mismatch", Err: err}
	}

	assignments := make(map[string][]string, len(parsed.Assignments))
	for _, entry := range parsed.Assignments {
		assignments[entry.SectionID] = append(assignments[entry.SectionID], entry.NoteIDs...)
	}
	return assignments, &resp.Response, nil
}

// prefilter keeps the cap best-matching notes against the whole outline.
func (a *AssignmentAgent) prefilter(ctx context.Context, outline *models.ReportSection, notes []models.Note, limit int) []models.Note {
	var sb strings.Builder
	writeOutlineText(&sb, outline, 0)
	reference := sb.String()

	type scored struct {
		note  models.Note
		score float64
	}
	ranked := make([]scored, len(notes))
	for i, n := range notes {
		ranked[i] = scored{note: n, score: a.similarity(ctx, reference, n.Content)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	kept := make([]models.Note, 0, limit)
	for _, s := range ranked[:limit] {
		kept = append(kept, s.note)
	}
	return kept
}

// assignBySimilarity is the model-free fallback: each note goes to its
// best-matching section above the threshold.
func (a *AssignmentAgent) assignBySimilarity(ctx context.Context, sections []*models.ReportSection, notes []models.Note) map[string][]string {
	assignments := make(map[string][]string)
	for _, n := range notes {
		bestID := ""
		bestScore := assignmentSimilarityThreshold
		for _, s := range sections {
			// Strict inequality keeps the earlier section on equal scores.
			if score := a.similarity(ctx, s.Title+" "+s.Description, n.Content); score > bestScore {
				bestScore = score
				bestID = s.SectionID
			}
		}
		if bestID != "" {
			assignments[bestID] = append(assignments[bestID], n.NoteID)
		}
	}
	return assignments
}

// ensureCoverage hands each empty research section its best unassigned note
// when one clears the similarity threshold.
func (a *AssignmentAgent) ensureCoverage(ctx context.Context, result map[string][]string, sections []*models.ReportSection, notes []models.Note) {
	assigned := make(map[string]bool)
	for _, ids := range result {
		for _, id := range ids {
			assigned[id] = true
		}
	}

	for _, s := range sections {
		if len(result[s.SectionID]) > 0 || strings.TrimSpace(s.Description) == "" {
			continue
		}
		bestID := ""
		bestScore := assignmentSimilarityThreshold
		for _, n := range notes {
			if assigned[n.NoteID] {
				continue
			}
			if score := a.similarity(ctx, s.Title+" "+s.Description, n.Content); score > bestScore {
				bestScore = score
				bestID = n.NoteID
			}
		}
		if bestID != "" {
			result[s.SectionID] = append(result[s.SectionID], bestID)
			assigned[bestID] = true
		}
	}
}

func (a *AssignmentAgent) similarity(ctx context.Context, reference, text string) float64 {
	if a.embed != nil {
		refVec, err1 := a.embed(ctx, reference)
		vec, err2 := a.embed(ctx, text)
		if err1 == nil && err2 == nil {
			return cosine(refVec, vec)
		}
	}
	return lexicalSimilarity(reference, text)
}

// normalizeAssignments drops unknown sections and notes and enforces the
// at-most-one-section invariant in outline order.
func normalizeAssignments(assignments map[string][]string, sections []*models.ReportSection, notes []models.Note) map[string][]string {
	knownNotes := make(map[string]bool, len(notes))
	for _, n := range notes {
		knownNotes[n.NoteID] = true
	}

	result := make(map[string][]string)
	used := make(map[string]bool)
	for _, s := range sections {
		for _, noteID := range assignments[s.SectionID] {
			if !knownNotes[noteID] || used[noteID] {
				continue
			}
			used[noteID] = true
			result[s.SectionID] = append(result[s.SectionID], noteID)
		}
	}
	return result
}

// assignableSections returns the research_based sections in outline order.
func assignableSections(outline *models.ReportSection) []*models.ReportSection {
	var sections []*models.ReportSection
	outline.Walk(func(s *models.ReportSection) bool {
		if s.SectionID != "" && s.ResearchStrategy == models.StrategyResearchBased {
			sections = append(sections, s)
		}
		return true
	})
	return sections
}
