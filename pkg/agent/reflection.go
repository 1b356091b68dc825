package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

// Outline modification actions reflection may propose.
const (
	ModAdd     = "add"
	ModRemove  = "remove"
	ModMerge   = "merge"
	ModReorder = "reorder"
	ModReframe = "reframe"
	ModSplit   = "split"
)

// OutlineModification is one proposed outline edit. Surviving sections keep
// their ids; add and split mint ids for the new sections only.
type OutlineModification struct {
	Action      string   `json:"action"`
	SectionID   string   `json:"section_id,omitempty"`
	ParentID    string   `json:"parent_id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	MergeWithID string   `json:"merge_with_id,omitempty"`
	Position    int      `json:"position,omitempty"`
	SplitTitles []string `json:"split_titles,omitempty"`
}

// SubsectionTopic is a theme reflection found enough material for.
type SubsectionTopic struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Reasoning       string   `json:"reasoning"`
	RelevantNoteIDs []string `json:"relevant_note_ids,omitempty"`
}

// ReflectionResult is the strict-schema output of one reflection pass. The
// zero value means "nothing to change"; the round proceeds.
type ReflectionResult struct {
	OverallAssessment         string                `json:"overall_assessment"`
	NewQuestions              []string              `json:"new_questions,omitempty"`
	SuggestedSubsectionTopics []SubsectionTopic     `json:"suggested_subsection_topics,omitempty"`
	ProposedModifications     []OutlineModification `json:"proposed_modifications,omitempty"`
	SectionsNeedingReview     []string              `json:"sections_needing_review,omitempty"`
	DiscardNoteIDs            []string              `json:"discard_note_ids,omitempty"`
	GeneratedThought          string                `json:"generated_thought,omitempty"`
}

var reflectionSchema = map[string]any{
	"type":     "object",
	"required": []any{"overall_assessment"},
	"properties": map[string]any{
		"overall_assessment": map[string]any{"type": "string"},
		"new_questions": map[string]any{
			"type": "array", "items": map[string]any{"type": "string"}, "maxItems": 5,
		},
		"suggested_subsection_topics": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"title", "description", "reasoning"},
				"properties": map[string]any{
					"title":             map[string]any{"type": "string"},
					"description":       map[string]any{"type": "string"},
					"reasoning":         map[string]any{"type": "string"},
					"relevant_note_ids": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
		},
		"proposed_modifications": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"action"},
				"properties": map[string]any{
					"action":        map[string]any{"type": "string", "enum": []any{ModAdd, ModRemove, ModMerge, ModReorder, ModReframe, ModSplit}},
					"section_id":    map[string]any{"type": "string"},
					"parent_id":     map[string]any{"type": "string"},
					"title":         map[string]any{"type": "string"},
					"description":   map[string]any{"type": "string"},
					"merge_with_id": map[string]any{"type": "string"},
					"position":      map[string]any{"type": "integer"},
					"split_titles":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
		},
		"sections_needing_review": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"discard_note_ids":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"generated_thought":       map[string]any{"type": "string"},
	},
}

// ReflectionAgent reviews a section's research and proposes adjustments.
type ReflectionAgent struct {
	completer Completer
	recorder  Recorder
}

// NewReflectionAgent builds the reflection agent. recorder may be nil.
func NewReflectionAgent(completer Completer, recorder Recorder) *ReflectionAgent {
	return &ReflectionAgent{completer: completer, recorder: recorder}
}

// Reflect reviews one section. A schema failure returns an empty result and
// logs a warning; the research round proceeds without changes.
func (a *ReflectionAgent) Reflect(ctx context.Context, missionID string, section *models.ReportSection, sectionNotes []models.Note, outline *models.ReportSection, goals []models.GoalEntry) (*ReflectionResult, error) {
	resp, err := a.completer.CompleteJSON(ctx, missionID, llm.Request{
		Tier:   config.TierIntelligent,
		Schema: reflectionSchema,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: reflectionSystemPrompt},
			{Role: llm.RoleUser, Content: reflectionPrompt(section, sectionNotes, outline, goals)},
		},
	})
	if err != nil {
		if llm.KindOf(err) == llm.KindSchema {
			record(ctx, a.recorder, missionID, models.ExecutionRecord{
				AgentName:     AgentReflection,
				Action:        "Reflect on section",
				InputSummary:  section.Title,
				OutputSummary: "Unparseable reflection; no changes",
				Status:        models.RecordWarning,
				ErrorMessage:  err.Error(),
			})
			return &ReflectionResult{}, nil
		}
		return nil, fmt.Errorf("reflection failed: %w", err)
	}

	var result ReflectionResult
	if err := decodeValue(resp.Value, &result); err != nil {
		return &ReflectionResult{}, nil
	}

	record(ctx, a.recorder, missionID, models.ExecutionRecord{
		AgentName:    AgentReflection,
		Action:       "Reflect on section",
		InputSummary: fmt.Sprintf("%s: %d notes", section.Title, len(sectionNotes)),
		OutputSummary: fmt.Sprintf("%d modifications, %d discards, %d review flags",
			len(result.ProposedModifications), len(result.DiscardNoteIDs), len(result.SectionsNeedingReview)),
		Status:       models.RecordSuccess,
		ModelDetails: modelDetails(&resp.Response),
	})
	return &result, nil
}

// ApplyModification performs one outline edit in place. Returns false when
// the edit cannot be applied (unknown target, depth overflow, no-op); a
// skipped edit never corrupts the outline.
func ApplyModification(outline *models.ReportSection, mod OutlineModification) bool {
	switch mod.Action {
	case ModAdd:
		return applyAdd(outline, mod)
	case ModRemove:
		_, ok := removeSection(outline, mod.SectionID)
		return ok
	case ModReframe:
		return applyReframe(outline, mod)
	case ModMerge:
		return applyMerge(outline, mod)
	case ModReorder:
		return applyReorder(outline, mod)
	case ModSplit:
		return applySplit(outline, mod)
	default:
		return false
	}
}

func applyAdd(outline *models.ReportSection, mod OutlineModification) bool {
	if strings.TrimSpace(mod.Title) == "" {
		return false
	}
	parent := outline
	parentDepth := 0
	if mod.ParentID != "" {
		parent = findSection(outline, mod.ParentID)
		if parent == nil {
			return false
		}
		parentDepth = sectionDepth(outline, mod.ParentID)
	}
	if parentDepth >= models.MaxOutlineDepth {
		return false
	}
	parent.Subsections = append(parent.Subsections, models.ReportSection{
		SectionID:        MintSectionID(),
		Title:            mod.Title,
		Description:      mod.Description,
		ResearchStrategy: models.StrategyResearchBased,
	})
	return true
}

func applyReframe(outline *models.ReportSection, mod OutlineModification) bool {
	target := findSection(outline, mod.SectionID)
	if target == nil {
		return false
	}
	if mod.Title != "" {
		target.Title = mod.Title
	}
	if mod.Description != "" {
		target.Description = mod.Description
	}
	return true
}

// applyMerge folds merge_with into the target: its notes and subsections
// move over, then it is removed from the tree.
func applyMerge(outline *models.ReportSection, mod OutlineModification) bool {
	target := findSection(outline, mod.SectionID)
	if target == nil || mod.MergeWithID == "" || mod.MergeWithID == mod.SectionID {
		return false
	}
	donor, ok := removeSection(outline, mod.MergeWithID)
	if !ok {
		return false
	}
	target.AssociatedNoteIDs = append(target.AssociatedNoteIDs, donor.AssociatedNoteIDs...)
	target.Subsections = append(target.Subsections, donor.Subsections...)
	if donor.Description != "" {
		target.Description = strings.TrimSpace(target.Description + " " + donor.Description)
	}
	return true
}

func applyReorder(outline *models.ReportSection, mod OutlineModification) bool {
	parent, idx := findParent(outline, mod.SectionID)
	if parent == nil {
		return false
	}
	pos := mod.Position
	if pos < 0 || pos >= len(parent.Subsections) || pos == idx {
		return false
	}
	moved := parent.Subsections[idx]
	parent.Subsections = append(parent.Subsections[:idx], parent.Subsections[idx+1:]...)
	parent.Subsections = append(parent.Subsections[:pos],
		append([]models.ReportSection{moved}, parent.Subsections[pos:]...)...)
	return true
}

// applySplit turns the target into a synthesis parent over freshly minted
// child sections, one per split title. The target keeps its id.
func applySplit(outline *models.ReportSection, mod OutlineModification) bool {
	target := findSection(outline, mod.SectionID)
	if target == nil || len(mod.SplitTitles) < 2 {
		return false
	}
	if sectionDepth(outline, mod.SectionID) >= models.MaxOutlineDepth {
		return false
	}
	for _, title := range mod.SplitTitles {
		if strings.TrimSpace(title) == "" {
			continue
		}
		target.Subsections = append(target.Subsections, models.ReportSection{
			SectionID:        MintSectionID(),
			Title:            title,
			Description:      target.Description,
			ResearchStrategy: models.StrategyResearchBased,
		})
	}
	if len(target.Subsections) == 0 {
		return false
	}
	target.ResearchStrategy = models.StrategySynthesize
	return true
}

func findSection(outline *models.ReportSection, id string) *models.ReportSection {
	if id == "" {
		return nil
	}
	var found *models.ReportSection
	outline.Walk(func(s *models.ReportSection) bool {
		if s.SectionID == id {
			found = s
			return false
		}
		return true
	})
	return found
}

// findParent returns the parent holding the section and its index there.
func findParent(outline *models.ReportSection, id string) (*models.ReportSection, int) {
	var parent *models.ReportSection
	idx := -1
	outline.Walk(func(s *models.ReportSection) bool {
		for i := range s.Subsections {
			if s.Subsections[i].SectionID == id {
				parent = s
				idx = i
				return false
			}
		}
		return true
	})
	return parent, idx
}

func removeSection(outline *models.ReportSection, id string) (models.ReportSection, bool) {
	parent, idx := findParent(outline, id)
	if parent == nil {
		return models.ReportSection{}, false
	}
	removed := parent.Subsections[idx]
	parent.Subsections = append(parent.Subsections[:idx], parent.Subsections[idx+1:]...)
	return removed, true
}

// sectionDepth returns the 1-based depth of the section below the synthetic
// root, or 0 when absent.
func sectionDepth(outline *models.ReportSection, id string) int {
	var walk func(s *models.ReportSection, depth int) int
	walk = func(s *models.ReportSection, depth int) int {
		if s.SectionID == id {
			return depth
		}
		for i := range s.Subsections {
			if d := walk(&s.Subsections[i], depth+1); d > 0 {
				return d
			}
		}
		return 0
	}
	return walk(outline, 0)
}
