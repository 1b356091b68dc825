package agent

import (
	"fmt"
	"strings"

	"github.com/maestro-research/maestro/pkg/models"
)

const analysisSystemPrompt = `You classify research requests for a report-writing system.
Given a user request, infer the desired tone, audience, length, and format,
note any source preferences (for example "peer-reviewed only"), and restate
the request as a short list of concrete research goals.`

func analysisUserPrompt(mc *models.MissionContext) string {
	var sb strings.Builder
	sb.WriteString("Research request:\n")
	sb.WriteString(mc.UserRequest)
	if len(mc.Metadata.FinalQuestions) > 0 {
		sb.WriteString("\n\nThe user confirmed these research questions:\n")
		for _, q := range mc.Metadata.FinalQuestions {
			sb.WriteString("- " + q + "\n")
		}
	}
	return sb.String()
}

const plannerSystemPrompt = `You plan report outlines for a research system.
Produce a hierarchical outline of sections. Each section needs a title, a
one-to-two sentence description of what it covers, and a research strategy:
"research_based" for sections grounded in retrieved sources,
"content_based" for introductions and conclusions written from the rest of
the report, and "synthesize_from_subsections" for parent sections summarizing
their children. Keep the tree at most three levels deep. Do not invent ids.`

func plannerDraftPrompt(mc *models.MissionContext, profile *RequestProfile) string {
	var sb strings.Builder
	sb.WriteString("Research request:\n" + mc.UserRequest + "\n")
	if profile != nil {
		fmt.Fprintf(&sb, "\nDesired tone: %s. Audience: %s. Length: %s. Format: %s.\n",
			profile.Tone, profile.Audience, profile.Length, profile.Format)
		if len(profile.Goals) > 0 {
			sb.WriteString("\nResearch goals:\n")
			for _, g := range profile.Goals {
				sb.WriteString("- " + g + "\n")
			}
		}
	}
	sb.WriteString("\nDraft the outline.")
	return sb.String()
}

func plannerRevisePrompt(outline *models.ReportSection, notes []models.Note) string {
	var sb strings.Builder
	sb.WriteString("Current outline:\n")
	writeOutlineText(&sb, outline, 0)
	sb.WriteString("\nSeed notes gathered during exploration:\n")
	for _, n := range notes {
		fmt.Fprintf(&sb, "- [%s] %s\n", n.NoteID, summarize(n.Content, 240))
	}
	sb.WriteString(`
Revise the outline in light of the notes: tighten descriptions, add sections
for well-supported themes, and drop sections with no plausible coverage.
Keep every surviving section's id unchanged; leave id empty for new sections.`)
	return sb.String()
}

const researchQuerySystemPrompt = `You generate search queries for one report
section. Produce focused, self-contained queries; avoid near-duplicates.`

func researchQueryPrompt(section *models.ReportSection, goals []models.GoalEntry, thoughts []models.ThoughtEntry, maxQueries int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Section: %s\n%s\n", section.Title, section.Description)
	if len(goals) > 0 {
		sb.WriteString("\nActive goals:\n")
		for _, g := range goals {
			sb.WriteString("- " + g.Text + "\n")
		}
	}
	if len(thoughts) > 0 {
		sb.WriteString("\nRecent reminders:\n")
		for _, t := range thoughts {
			sb.WriteString("- " + t.Text + "\n")
		}
	}
	fmt.Fprintf(&sb, "\nGenerate up to %d search queries.", maxQueries)
	return sb.String()
}

const noteSynthesisSystemPrompt = `You extract research notes. Given a source
passage and a report section, write one self-contained note: a claim that
stands on its own, specific enough to cite. If the passage is irrelevant to
the section, return an empty note.`

func noteSynthesisPrompt(section *models.ReportSection, sourceText string) string {
	return fmt.Sprintf("Section: %s\n%s\n\nSource passage:\n%s\n\nExtract the note.",
		section.Title, section.Description, summarize(sourceText, 4000))
}

const reflectionSystemPrompt = `You review the research gathered for one
report section and decide what to do next. Assess coverage, pose new
questions worth researching, suggest subsection topics where the material
supports them, propose outline modifications, flag sections needing another
research pass, list redundant or irrelevant note ids to discard, and leave
one short reminder for future agents.`

func reflectionPrompt(section *models.ReportSection, notes []models.Note, outline *models.ReportSection, goals []models.GoalEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Section under review: %s (%s)\n%s\n", section.Title, section.SectionID, section.Description)
	sb.WriteString("\nNotes gathered for it:\n")
	for _, n := range notes {
		fmt.Fprintf(&sb, "- [%s] %s\n", n.NoteID, summarize(n.Content, 240))
	}
	sb.WriteString("\nFull outline:\n")
	writeOutlineText(&sb, outline, 0)
	if len(goals) > 0 {
		sb.WriteString("\nActive goals:\n")
		for _, g := range goals {
			sb.WriteString("- " + g.Text + "\n")
		}
	}
	return sb.String()
}

const assignmentSystemPrompt = `You assign research notes to report sections.
Each note may be assigned to at most one section, the one it supports best.
Research-based sections should receive at least one note when any candidate
is relevant. Do not assign notes to introduction or synthesis sections.`

func assignmentPrompt(outline *models.ReportSection, notes []models.Note) string {
	var sb strings.Builder
	sb.WriteString("Outline:\n")
	writeOutlineText(&sb, outline, 0)
	sb.WriteString("\nNotes:\n")
	for _, n := range notes {
		fmt.Fprintf(&sb, "- [%s] %s\n", n.NoteID, summarize(n.Content, 240))
	}
	sb.WriteString("\nAssign each note to its best section.")
	return sb.String()
}

const writingSystemPrompt = `You write one section of a research report in
markdown. Write only this section's content; no title heading, no preamble.
When a research_based section makes a factual claim, cite the supporting
note with its bracketed id, for example [note_ab12cd], using multiple
brackets for multi-source claims. Never fabricate note ids.`

func writeOutlineText(sb *strings.Builder, s *models.ReportSection, depth int) {
	if s == nil {
		return
	}
	if s.SectionID != "" {
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(sb, "%s- %s (%s, %s): %s\n", indent, s.Title, s.SectionID, s.ResearchStrategy, s.Description)
		depth++
	}
	for i := range s.Subsections {
		writeOutlineText(sb, &s.Subsections[i], depth)
	}
}
