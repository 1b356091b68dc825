package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

// SectionDraft pairs a section with its already-written content. Used to
// feed children into synthesis sections and siblings into content sections.
type SectionDraft struct {
	Title   string
	Content string
}

// WriteParams are the inputs for drafting one section.
type WriteParams struct {
	Section       *models.ReportSection
	Notes         []models.Note  // assigned notes, research_based only
	SiblingTitles []string       // to avoid overlap
	Siblings      []SectionDraft // content for content_based sections
	Children      []SectionDraft // drafts for synthesize sections
	PriorDraft    string         // previous pass's draft, empty on pass 1
	Pass          int            // 1-based writing pass
}

// WritingAgent drafts and revises report sections in markdown.
type WritingAgent struct {
	completer Completer
	recorder  Recorder
}

// NewWritingAgent builds the writing agent. recorder may be nil.
func NewWritingAgent(completer Completer, recorder Recorder) *WritingAgent {
	return &WritingAgent{completer: completer, recorder: recorder}
}

// WriteSection produces the markdown for one section according to its
// research strategy.
func (w *WritingAgent) WriteSection(ctx context.Context, missionID string, params WriteParams) (string, error) {
	resp, err := w.completer.Complete(ctx, missionID, llm.Request{
		Tier: config.TierIntelligent,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: writingSystemPrompt},
			{Role: llm.RoleUser, Content: writingPrompt(params)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("writing section %q failed: %w", params.Section.Title, err)
	}

	draft := strings.TrimSpace(resp.Text)
	if draft == "" {
		return "", fmt.Errorf("writing section %q produced no content", params.Section.Title)
	}

	record(ctx, w.recorder, missionID, models.ExecutionRecord{
		AgentName:     AgentWriting,
		Action:        fmt.Sprintf("Write section (pass %d)", params.Pass),
		InputSummary:  fmt.Sprintf("%s (%s, %d notes)", params.Section.Title, params.Section.ResearchStrategy, len(params.Notes)),
		OutputSummary: summarize(draft, 200),
		Status:        models.RecordSuccess,
		ModelDetails:  modelDetails(resp),
	})
	return draft, nil
}

func writingPrompt(params WriteParams) string {
	var sb strings.Builder
	s := params.Section
	fmt.Fprintf(&sb, "Section to write: %s\n%s\n", s.Title, s.Description)

	if len(params.SiblingTitles) > 0 {
		sb.WriteString("\nOther sections in the report (do not cover their ground):\n")
		for _, t := range params.SiblingTitles {
			sb.WriteString("- " + t + "\n")
		}
	}

	switch s.ResearchStrategy {
	case models.StrategyContentBased:
		sb.WriteString("\nWrite this section using only the content of the sections below. " +
			"Introduce or conclude; add no new factual claims and no citations.\n")
		for _, sib := range params.Siblings {
			fmt.Fprintf(&sb, "\n### %s\n%s\n", sib.Title, sib.Content)
		}
	case models.StrategySynthesize:
		sb.WriteString("\nWrite this section as a summary of its subsections below. " +
			"Add no new factual claims.\n")
		for _, child := range params.Children {
			fmt.Fprintf(&sb, "\n### %s\n%s\n", child.Title, child.Content)
		}
	default:
		sb.WriteString("\nResearch notes (cite by bracketed id):\n")
		for _, n := range params.Notes {
			fmt.Fprintf(&sb, "- [%s] %s\n", n.NoteID, n.Content)
		}
		if len(params.Notes) == 0 {
			sb.WriteString("(no notes were gathered; write a brief honest treatment " +
				"from the section description alone, without citations)\n")
		}
	}

	if params.PriorDraft != "" {
		sb.WriteString("\nPrevious draft of this section:\n" + params.PriorDraft + "\n")
		sb.WriteString("\nRevise it: improve coverage of the notes, flow, and citation " +
			"density. Keep what already works.")
	}
	return sb.String()
}
