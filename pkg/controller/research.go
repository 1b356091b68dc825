package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/maestro-research/maestro/pkg/agent"
	"github.com/maestro-research/maestro/pkg/models"
)

// researchPhase runs the structured research rounds. Each round fans research
// cycles out over the research_based sections, then reflects on each section
// sequentially so outline edits stay ordered.
func (r *missionRun) researchPhase(ctx context.Context) error {
	for round := 1; round <= r.settings.StructuredResearchRounds; round++ {
		if err := r.runRound(ctx, round); err != nil {
			return err
		}
		if err := r.reflectRound(ctx, round); err != nil {
			return err
		}
	}
	return nil
}

// runRound executes one research cycle per research_based section, bounded
// by the per-mission semaphore, and upserts the new notes in outline order
// so note insertion stays deterministic.
func (r *missionRun) runRound(ctx context.Context, round int) error {
	if err := r.checkpoint(ctx); err != nil {
		return err
	}

	mc, err := r.snapshot()
	if err != nil {
		return err
	}
	sections := researchSections(mc.Plan)
	if len(sections) == 0 {
		return nil
	}

	results := make([]*agent.CycleResult, len(sections))
	errs := make([]error, len(sections))

	var wg sync.WaitGroup
	for i, section := range sections {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			return fmt.Errorf("%w: %v", errMissionInterrupted, err)
		}
		wg.Add(1)
		go func(i int, section *models.ReportSection) {
			defer wg.Done()
			defer r.sem.Release(1)
			results[i], errs[i] = r.runCycle(ctx, mc, section, round)
		}(i, section)
	}
	wg.Wait()

	if err := r.checkpoint(ctx); err != nil {
		return err
	}

	// The mission fails only when every section in the round failed.
	failed := 0
	var firstErr error
	for i, section := range sections {
		if errs[i] != nil {
			failed++
			if firstErr == nil {
				firstErr = errs[i]
			}
			r.logger.Warn("Research cycle failed",
				"mission_id", r.missionID, "section_id", section.SectionID,
				"round", round, "error", errs[i])
			continue
		}
		if err := r.storeCycleNotes(ctx, section, results[i]); err != nil {
			return err
		}
	}
	if failed == len(sections) {
		return fmt.Errorf("research round %d failed for every section: %w", round, firstErr)
	}
	return nil
}

// runCycle runs one section's research cycle against a shared snapshot.
func (r *missionRun) runCycle(ctx context.Context, mc *models.MissionContext, section *models.ReportSection, round int) (*agent.CycleResult, error) {
	if err := r.checkpoint(ctx); err != nil {
		return nil, err
	}
	return r.agents.Researcher.Cycle(ctx, r.missionID, agent.CycleParams{
		Section:         section,
		Round:           round,
		Goals:           activeGoals(mc.GoalPad),
		Thoughts:        mc.ThoughtPad,
		ExistingNotes:   mc.ActiveNotes(),
		ToolSelection:   mc.Metadata.ToolSelection,
		DocumentGroupID: mc.Metadata.DocumentGroupID,
		Settings:        r.settings,
	})
}

// storeCycleNotes upserts a cycle's notes and appends them to the section's
// association list.
func (r *missionRun) storeCycleNotes(ctx context.Context, section *models.ReportSection, result *agent.CycleResult) error {
	if result == nil || len(result.Notes) == 0 {
		return nil
	}
	ids := append([]string(nil), section.AssociatedNoteIDs...)
	for _, note := range result.Notes {
		if err := r.store.UpsertNote(ctx, r.missionID, note); err != nil {
			return fmt.Errorf("failed to store note %s: %w", note.NoteID, err)
		}
		ids = append(ids, note.NoteID)
	}
	if err := r.store.SetSectionNotes(ctx, r.missionID, section.SectionID, ids); err != nil {
		r.logger.Warn("Failed to associate notes with section",
			"mission_id", r.missionID, "section_id", section.SectionID, "error", err)
	}
	return nil
}

// reflectRound reflects on each section in outline order, applying at most
// one outline modification per section and re-cycling sections flagged for
// review up to the recycle cap.
func (r *missionRun) reflectRound(ctx context.Context, round int) error {
	mc, err := r.snapshot()
	if err != nil {
		return err
	}

	recycles := make(map[string]int)
	pending := make([]string, 0)
	for _, s := range researchSections(mc.Plan) {
		pending = append(pending, s.SectionID)
	}

	for len(pending) > 0 {
		sectionID := pending[0]
		pending = pending[1:]

		if err := r.checkpoint(ctx); err != nil {
			return err
		}

		mc, err = r.snapshot()
		if err != nil {
			return err
		}
		section := mc.SectionByID(sectionID)
		if section == nil || section.ResearchStrategy != models.StrategyResearchBased {
			continue // removed or reframed by an earlier reflection
		}

		reflection, err := r.agents.Reflector.Reflect(ctx, r.missionID,
			section, notesForSection(mc, section), mc.Plan, activeGoals(mc.GoalPad))
		if err != nil {
			return fmt.Errorf("reflection on section %s failed: %w", sectionID, err)
		}

		r.applyReflection(ctx, mc, sectionID, reflection)

		for _, id := range reflection.SectionsNeedingReview {
			if recycles[id] >= maxSectionRecycles {
				continue
			}
			recycles[id]++
			if err := r.recycleSection(ctx, id, round); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyReflection folds one reflection result into mission state: at most
// one outline modification, the generated thought, new goals, and note
// discards. Store failures here degrade to warnings; the round proceeds.
func (r *missionRun) applyReflection(ctx context.Context, mc *models.MissionContext, sectionID string, reflection *agent.ReflectionResult) {
	for _, mod := range reflection.ProposedModifications {
		if !agent.ApplyModification(mc.Plan, mod) {
			continue
		}
		if err := r.store.StorePlan(ctx, r.missionID, mc.Plan); err != nil {
			r.logger.Warn("Failed to store modified outline",
				"mission_id", r.missionID, "section_id", sectionID, "error", err)
		}
		break // one modification per section per round
	}

	if reflection.GeneratedThought != "" {
		if err := r.store.AddThought(ctx, r.missionID, reflection.GeneratedThought, agent.AgentReflection); err != nil {
			r.logger.Warn("Failed to record thought", "mission_id", r.missionID, "error", err)
		}
	}
	for _, q := range reflection.NewQuestions {
		if _, err := r.store.AddGoal(ctx, r.missionID, q, agent.AgentReflection); err != nil {
			r.logger.Warn("Failed to record goal", "mission_id", r.missionID, "error", err)
		}
	}
	if len(reflection.DiscardNoteIDs) > 0 {
		if err := r.store.DiscardNotes(ctx, r.missionID, reflection.DiscardNoteIDs); err != nil {
			r.logger.Warn("Failed to discard notes", "mission_id", r.missionID, "error", err)
		}
	}
}

// recycleSection re-runs one section's research cycle after a needs_review
// flag. A failed re-cycle is logged and skipped; the original notes stand.
func (r *missionRun) recycleSection(ctx context.Context, sectionID string, round int) error {
	if err := r.checkpoint(ctx); err != nil {
		return err
	}
	mc, err := r.snapshot()
	if err != nil {
		return err
	}
	section := mc.SectionByID(sectionID)
	if section == nil || section.ResearchStrategy != models.StrategyResearchBased {
		return nil
	}

	result, err := r.runCycle(ctx, mc, section, round)
	if err != nil {
		if err := r.checkpoint(ctx); err != nil {
			return err
		}
		r.logger.Warn("Section re-cycle failed",
			"mission_id", r.missionID, "section_id", sectionID, "error", err)
		return nil
	}
	return r.storeCycleNotes(ctx, section, result)
}

func activeGoals(pad []models.GoalEntry) []models.GoalEntry {
	goals := make([]models.GoalEntry, 0, len(pad))
	for _, g := range pad {
		if g.Status == models.GoalActive {
			goals = append(goals, g)
		}
	}
	return goals
}
