package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

// plannerSection is the outline node shape the model produces. Ids are
// assigned by the planner, never by the model, except during revision where
// the model echoes ids of surviving sections.
type plannerSection struct {
	SectionID        string           `json:"section_id,omitempty"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	ResearchStrategy string           `json:"research_strategy"`
	Subsections      []plannerSection `json:"subsections,omitempty"`
}

type plannerOutline struct {
	Sections []plannerSection `json:"sections"`
}

func outlineSchema(withIDs bool) map[string]any {
	sectionProps := map[string]any{
		"title":             map[string]any{"type": "string"},
		"description":       map[string]any{"type": "string"},
		"research_strategy": map[string]any{"type": "string"},
		"subsections":       map[string]any{"type": "array"},
	}
	if withIDs {
		sectionProps["section_id"] = map[string]any{"type": "string"}
	}
	return map[string]any{
		"type":     "object",
		"required": []any{"sections"},
		"properties": map[string]any{
			"sections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":       "object",
					"required":   []any{"title", "description", "research_strategy"},
					"properties": sectionProps,
				},
			},
		},
	}
}

// SettingSuggestions are the planner's advisory parameter tunings. The
// controller applies a suggestion only when the user left that key at its
// default.
type SettingSuggestions struct {
	StructuredResearchRounds int `json:"structured_research_rounds,omitempty"`
	WritingPasses            int `json:"writing_passes,omitempty"`
	MainResearchDocResults   int `json:"main_research_doc_results,omitempty"`
	MainResearchWebResults   int `json:"main_research_web_results,omitempty"`
}

var settingSuggestionsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"structured_research_rounds": map[string]any{"type": "integer"},
		"writing_passes":             map[string]any{"type": "integer"},
		"main_research_doc_results":  map[string]any{"type": "integer"},
		"main_research_web_results":  map[string]any{"type": "integer"},
	},
}

// PlannerAgent produces and revises the report outline.
type PlannerAgent struct {
	completer Completer
	recorder  Recorder
}

// NewPlannerAgent builds the planner. recorder may be nil.
func NewPlannerAgent(completer Completer, recorder Recorder) *PlannerAgent {
	return &PlannerAgent{completer: completer, recorder: recorder}
}

// DraftOutline produces the initial outline from the request and its
// profile. Section ids are minted here and stay stable for the mission.
func (p *PlannerAgent) DraftOutline(ctx context.Context, mc *models.MissionContext, profile *RequestProfile) (*models.ReportSection, error) {
	resp, err := p.completer.CompleteJSON(ctx, mc.MissionID, llm.Request{
		Tier:   config.TierIntelligent,
		Schema: outlineSchema(false),
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: plannerSystemPrompt},
			{Role: llm.RoleUser, Content: plannerDraftPrompt(mc, profile)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("outline drafting failed: %w", err)
	}

	var parsed plannerOutline
	if err := decodeValue(resp.Value, &parsed); err != nil {
		return nil, err
	}
	outline := buildOutline(parsed.Sections, nil)
	if len(outline.Subsections) == 0 {
		return nil, fmt.Errorf("outline drafting produced no sections")
	}

	record(ctx, p.recorder, mc.MissionID, models.ExecutionRecord{
		AgentName:     AgentPlanner,
		Action:        "Draft outline",
		InputSummary:  summarize(mc.UserRequest, 200),
		OutputSummary: fmt.Sprintf("%d top-level sections", len(outline.Subsections)),
		Status:        models.RecordSuccess,
		ModelDetails:  modelDetails(&resp.Response),
	})
	return outline, nil
}

// ReviseOutline adjusts the outline after exploratory research. Sections the
// model keeps retain their ids; sections it adds get fresh ones. When the
// model's revision is unusable the current outline is kept unchanged.
func (p *PlannerAgent) ReviseOutline(ctx context.Context, mc *models.MissionContext, outline *models.ReportSection, seedNotes []models.Note) (*models.ReportSection, error) {
	resp, err := p.completer.CompleteJSON(ctx, mc.MissionID, llm.Request{
		Tier:   config.TierIntelligent,
		Schema: outlineSchema(true),
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: plannerSystemPrompt},
			{Role: llm.RoleUser, Content: plannerRevisePrompt(outline, seedNotes)},
		},
	})
	if err != nil {
		if llm.KindOf(err) == llm.KindSchema {
			record(ctx, p.recorder, mc.MissionID, models.ExecutionRecord{
				AgentName:     AgentPlanner,
				Action:        "Revise outline",
				OutputSummary: "Unparseable revision; outline kept unchanged",
				Status:        models.RecordWarning,
				ErrorMessage:  err.Error(),
			})
			return outline, nil
		}
		return nil, fmt.Errorf("outline revision failed: %w", err)
	}

	var parsed plannerOutline
	if err := decodeValue(resp.Value, &parsed); err != nil {
		return outline, nil
	}

	known := make(map[string]bool)
	outline.Walk(func(s *models.ReportSection) bool {
		if s.SectionID != "" {
			known[s.SectionID] = true
		}
		return true
	})
	revised := buildOutline(parsed.Sections, known)
	if len(revised.Subsections) == 0 {
		return outline, nil
	}

	record(ctx, p.recorder, mc.MissionID, models.ExecutionRecord{
		AgentName:     AgentPlanner,
		Action:        "Revise outline",
		InputSummary:  fmt.Sprintf("%d seed notes", len(seedNotes)),
		OutputSummary: fmt.Sprintf("%d top-level sections", len(revised.Subsections)),
		Status:        models.RecordSuccess,
		ModelDetails:  modelDetails(&resp.Response),
	})
	return revised, nil
}

// SuggestSettings asks the planner to tune research parameters for this
// request. Only meaningful when auto_optimize_params is enabled; the caller
// decides which suggestions to honor.
func (p *PlannerAgent) SuggestSettings(ctx context.Context, mc *models.MissionContext, outline *models.ReportSection) (*SettingSuggestions, error) {
	var sb strings.Builder
	sb.WriteString("Request:\n" + mc.UserRequest + "\n\nOutline:\n")
	writeOutlineText(&sb, outline, 0)
	sb.WriteString("\nSuggest research parameters proportionate to the scope: " +
		"number of research rounds (1-4), writing passes (1-3), and per-query " +
		"result counts for document and web search.")

	resp, err := p.completer.CompleteJSON(ctx, mc.MissionID, llm.Request{
		Tier:   config.TierFast,
		Schema: settingSuggestionsSchema,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: plannerSystemPrompt},
			{Role: llm.RoleUser, Content: sb.String()},
		},
	})
	if err != nil {
		// Advisory only; any failure means no suggestions.
		return &SettingSuggestions{}, nil
	}
	var suggestions SettingSuggestions
	if err := decodeValue(resp.Value, &suggestions); err != nil {
		return &SettingSuggestions{}, nil
	}
	return &suggestions, nil
}

// buildOutline converts model output into the outline tree under a synthetic
// root, minting ids, normalizing strategies, and clamping depth.
func buildOutline(sections []plannerSection, knownIDs map[string]bool) *models.ReportSection {
	root := &models.ReportSection{}
	seen := make(map[string]bool)
	root.Subsections = convertSections(sections, 1, seen, knownIDs)
	normalizeStrategies(root)
	return root
}

func convertSections(sections []plannerSection, depth int, seen, knownIDs map[string]bool) []models.ReportSection {
	if depth > models.MaxOutlineDepth {
		return nil
	}
	out := make([]models.ReportSection, 0, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		id := s.SectionID
		// Only ids minted earlier survive; anything else gets a fresh one.
		if id == "" || seen[id] || (knownIDs != nil && !knownIDs[id]) {
			id = MintSectionID()
		}
		seen[id] = true
		out = append(out, models.ReportSection{
			SectionID:        id,
			Title:            strings.TrimSpace(s.Title),
			Description:      strings.TrimSpace(s.Description),
			ResearchStrategy: parseStrategy(s.ResearchStrategy),
			Subsections:      convertSections(s.Subsections, depth+1, seen, knownIDs),
		})
	}
	return out
}

// normalizeStrategies downgrades synthesis sections without children to
// research_based so every section stays writable.
func normalizeStrategies(root *models.ReportSection) {
	root.Walk(func(s *models.ReportSection) bool {
		if s.ResearchStrategy == models.StrategySynthesize && len(s.Subsections) == 0 {
			s.ResearchStrategy = models.StrategyResearchBased
		}
		return true
	})
}

func parseStrategy(s string) models.ResearchStrategy {
	switch models.ResearchStrategy(strings.TrimSpace(s)) {
	case models.StrategyContentBased:
		return models.StrategyContentBased
	case models.StrategySynthesize:
		return models.StrategySynthesize
	default:
		return models.StrategyResearchBased
	}
}

// MintSectionID returns a fresh stable section id.
func MintSectionID() string {
	return "sec_" + uuid.New().String()[:8]
}

// MintNoteID returns a fresh stable note id.
func MintNoteID() string {
	return "note_" + uuid.New().String()[:8]
}
