package controller

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/maestro-research/maestro/pkg/agent"
	"github.com/maestro-research/maestro/pkg/models"
)

// writingPhase runs the writing passes, then citation processing over the
// assembled report. Within a pass, research sections are drafted first and
// concurrently; synthesis sections follow bottom-up, and content sections
// last, so every strategy sees the material it needs.
func (r *missionRun) writingPhase(ctx context.Context) error {
	for pass := 1; pass <= r.settings.WritingPasses; pass++ {
		if err := r.writePass(ctx, pass); err != nil {
			return err
		}
	}
	return nil
}

func (r *missionRun) writePass(ctx context.Context, pass int) error {
	if err := r.checkpoint(ctx); err != nil {
		return err
	}

	mc, err := r.snapshot()
	if err != nil {
		return err
	}
	if mc.Plan == nil {
		return fmt.Errorf("mission has no outline to write")
	}

	if err := r.assignNotes(ctx, mc, mc.ActiveNotes()); err != nil {
		r.logger.Warn("Note assignment before writing failed",
			"mission_id", r.missionID, "pass", pass, "error", err)
	}

	mc, err = r.snapshot()
	if err != nil {
		return err
	}

	layout := buildLayout(mc.Plan)
	drafts := &draftSet{contents: mc.ReportContent}

	if err := r.writeResearchSections(ctx, mc, layout, drafts, pass); err != nil {
		return err
	}
	if err := r.writeSynthesisSections(ctx, layout, drafts, pass); err != nil {
		return err
	}
	return r.writeContentSections(ctx, layout, drafts, pass)
}

// writeResearchSections drafts every research_based section concurrently,
// bounded by the per-mission semaphore. A failed section gets placeholder
// text unless an earlier pass already produced content.
func (r *missionRun) writeResearchSections(ctx context.Context, mc *models.MissionContext, layout *outlineLayout, drafts *draftSet, pass int) error {
	sections := layout.byStrategy(models.StrategyResearchBased)
	if len(sections) == 0 {
		return nil
	}

	errs := make([]error, len(sections))
	outputs := make([]string, len(sections))

	var wg sync.WaitGroup
	for i, section := range sections {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			return fmt.Errorf("%w: %v", errMissionInterrupted, err)
		}
		wg.Add(1)
		go func(i int, section *models.ReportSection) {
			defer wg.Done()
			defer r.sem.Release(1)
			if err := r.checkpoint(ctx); err != nil {
				errs[i] = err
				return
			}
			outputs[i], errs[i] = r.agents.Writer.WriteSection(ctx, r.missionID, agent.WriteParams{
				Section:       section,
				Notes:         notesForSection(mc, section),
				SiblingTitles: layout.siblingTitles(section.SectionID),
				PriorDraft:    drafts.get(section.SectionID),
				Pass:          pass,
			})
		}(i, section)
	}
	wg.Wait()

	if err := r.checkpoint(ctx); err != nil {
		return err
	}

	failed := 0
	var firstErr error
	for i, section := range sections {
		if errs[i] != nil {
			failed++
			if firstErr == nil {
				firstErr = errs[i]
			}
			r.logger.Warn("Section writing failed",
				"mission_id", r.missionID, "section_id", section.SectionID,
				"pass", pass, "error", errs[i])
			if drafts.get(section.SectionID) == "" {
				r.storeDraft(ctx, drafts, section.SectionID, placeholderContent, pass)
			}
			continue
		}
		r.storeDraft(ctx, drafts, section.SectionID, outputs[i], pass)
	}
	if failed == len(sections) {
		return fmt.Errorf("writing pass %d failed for every research section: %w", pass, firstErr)
	}
	return nil
}

// writeSynthesisSections drafts synthesize_from_subsections sections deepest
// first, so parents always see finished children.
func (r *missionRun) writeSynthesisSections(ctx context.Context, layout *outlineLayout, drafts *draftSet, pass int) error {
	sections := layout.byStrategy(models.StrategySynthesize)
	sort.SliceStable(sections, func(i, j int) bool {
		return layout.depth[sections[i].SectionID] > layout.depth[sections[j].SectionID]
	})

	for _, section := range sections {
		if err := r.checkpoint(ctx); err != nil {
			return err
		}
		var children []agent.SectionDraft
		for i := range section.Subsections {
			child := &section.Subsections[i]
			children = append(children, agent.SectionDraft{
				Title:   child.Title,
				Content: drafts.get(child.SectionID),
			})
		}
		draft, err := r.agents.Writer.WriteSection(ctx, r.missionID, agent.WriteParams{
			Section:       section,
			SiblingTitles: layout.siblingTitles(section.SectionID),
			Children:      children,
			PriorDraft:    drafts.get(section.SectionID),
			Pass:          pass,
		})
		if err != nil {
			r.logger.Warn("Synthesis section writing failed",
				"mission_id", r.missionID, "section_id", section.SectionID, "error", err)
			continue
		}
		r.storeDraft(ctx, drafts, section.SectionID, draft, pass)
	}
	return nil
}

// writeContentSections drafts content_based sections from their siblings'
// finished drafts.
func (r *missionRun) writeContentSections(ctx context.Context, layout *outlineLayout, drafts *draftSet, pass int) error {
	for _, section := range layout.byStrategy(models.StrategyContentBased) {
		if err := r.checkpoint(ctx); err != nil {
			return err
		}
		var siblings []agent.SectionDraft
		for _, sib := range layout.siblings(section.SectionID) {
			if content := drafts.get(sib.SectionID); content != "" {
				siblings = append(siblings, agent.SectionDraft{Title: sib.Title, Content: content})
			}
		}
		draft, err := r.agents.Writer.WriteSection(ctx, r.missionID, agent.WriteParams{
			Section:       section,
			SiblingTitles: layout.siblingTitles(section.SectionID),
			Siblings:      siblings,
			PriorDraft:    drafts.get(section.SectionID),
			Pass:          pass,
		})
		if err != nil {
			r.logger.Warn("Content section writing failed",
				"mission_id", r.missionID, "section_id", section.SectionID, "error", err)
			continue
		}
		r.storeDraft(ctx, drafts, section.SectionID, draft, pass)
	}
	return nil
}

func (r *missionRun) storeDraft(ctx context.Context, drafts *draftSet, sectionID, content string, pass int) {
	drafts.set(sectionID, content)
	if err := r.store.SetSectionContent(ctx, r.missionID, sectionID, content, pass); err != nil {
		r.logger.Warn("Failed to store section content",
			"mission_id", r.missionID, "section_id", sectionID, "error", err)
	}
}

// finalize assembles the report in outline order, resolves citations, and
// records the result as the current report version.
func (r *missionRun) finalize(ctx context.Context) error {
	if err := r.checkpoint(ctx); err != nil {
		return err
	}

	mc, err := r.snapshot()
	if err != nil {
		return err
	}

	assembled := assembleReport(mc)
	processed := r.agents.Citations.Process(ctx, r.missionID, assembled, mc.Notes)

	content := processed.Content
	if len(processed.References) > 0 {
		var sb strings.Builder
		sb.WriteString(content)
		sb.WriteString("\n\n## References\n\n")
		for _, ref := range processed.References {
			fmt.Fprintf(&sb, "- [%s] %s\n", ref.Token, ref.Reference)
		}
		content = sb.String()
	}

	notes := fmt.Sprintf("Generated in %d writing passes over %d research rounds",
		r.settings.WritingPasses, r.settings.StructuredResearchRounds)
	if _, err := r.store.AddReportVersion(ctx, r.missionID, reportTitle(mc), content, notes, true); err != nil {
		return fmt.Errorf("failed to store report version: %w", err)
	}

	return r.store.UpdateStatus(ctx, r.missionID, models.StatusCompleted, "")
}

// assembleReport walks the outline depth-first and joins headings with each
// section's drafted content.
func assembleReport(mc *models.MissionContext) string {
	if mc.Plan == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(s *models.ReportSection, depth int)
	walk = func(s *models.ReportSection, depth int) {
		if s.SectionID != "" {
			sb.WriteString(strings.Repeat("#", depth) + " " + s.Title + "\n\n")
			if content := mc.ReportContent[s.SectionID]; content != "" {
				sb.WriteString(content + "\n\n")
			}
		}
		for i := range s.Subsections {
			walk(&s.Subsections[i], depth+1)
		}
	}
	walk(mc.Plan, 0)
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func reportTitle(mc *models.MissionContext) string {
	title := strings.TrimSpace(mc.UserRequest)
	runes := []rune(title)
	if len(runes) > 80 {
		title = string(runes[:80]) + "…"
	}
	if title == "" {
		title = "Research Report"
	}
	return title
}

// outlineLayout indexes the outline for sibling and depth lookups.
type outlineLayout struct {
	ordered []*models.ReportSection
	parent  map[string]*models.ReportSection
	depth   map[string]int
}

func buildLayout(root *models.ReportSection) *outlineLayout {
	layout := &outlineLayout{
		parent: make(map[string]*models.ReportSection),
		depth:  make(map[string]int),
	}
	var walk func(s *models.ReportSection, parent *models.ReportSection, depth int)
	walk = func(s, parent *models.ReportSection, depth int) {
		if s.SectionID != "" {
			layout.ordered = append(layout.ordered, s)
			layout.parent[s.SectionID] = parent
			layout.depth[s.SectionID] = depth
		}
		for i := range s.Subsections {
			walk(&s.Subsections[i], s, depth+1)
		}
	}
	walk(root, nil, 0)
	return layout
}

// byStrategy returns the sections of one strategy in outline order.
func (l *outlineLayout) byStrategy(strategy models.ResearchStrategy) []*models.ReportSection {
	var out []*models.ReportSection
	for _, s := range l.ordered {
		if s.ResearchStrategy == strategy {
			out = append(out, s)
		}
	}
	return out
}

// siblings returns the other sections sharing the given section's parent.
func (l *outlineLayout) siblings(sectionID string) []*models.ReportSection {
	parent := l.parent[sectionID]
	if parent == nil {
		return nil
	}
	var out []*models.ReportSection
	for i := range parent.Subsections {
		if s := &parent.Subsections[i]; s.SectionID != sectionID {
			out = append(out, s)
		}
	}
	return out
}

func (l *outlineLayout) siblingTitles(sectionID string) []string {
	var titles []string
	for _, s := range l.siblings(sectionID) {
		titles = append(titles, s.Title)
	}
	return titles
}

// draftSet is the pass-local view of section contents, updated as sections
// finish so later strategies read fresh drafts.
type draftSet struct {
	mu       sync.Mutex
	contents map[string]string
}

func (d *draftSet) get(sectionID string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.contents[sectionID]
}

func (d *draftSet) set(sectionID, content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.contents == nil {
		d.contents = make(map[string]string)
	}
	d.contents[sectionID] = content
}
