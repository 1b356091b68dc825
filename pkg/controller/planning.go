package controller

import (
	"context"
	"fmt"

	"github.com/maestro-research/maestro/pkg/agent"
	"github.com/maestro-research/maestro/pkg/models"
)

// planPhase runs analysis and the three-step planning sequence: draft
// outline, exploratory research, seed assignment plus outline revision.
func (r *missionRun) planPhase(ctx context.Context) error {
	if err := r.checkpoint(ctx); err != nil {
		return err
	}

	mc, err := r.snapshot()
	if err != nil {
		return err
	}

	profile, err := r.agents.Analyzer.Analyze(ctx, mc)
	if err != nil {
		return fmt.Errorf("request analysis failed: %w", err)
	}
	if _, err := r.store.AddGoal(ctx, r.missionID, profile.Goal(), agent.AgentMessenger); err != nil {
		r.logger.Warn("Failed to record analysis goal", "mission_id", r.missionID, "error", err)
	}
	for _, q := range mc.Metadata.InitialQuestions {
		if _, err := r.store.AddGoal(ctx, r.missionID, q, agent.AgentMessenger); err != nil {
			r.logger.Warn("Failed to record initial question", "mission_id", r.missionID, "error", err)
		}
	}

	if err := r.checkpoint(ctx); err != nil {
		return err
	}

	outline, err := r.agents.Planner.DraftOutline(ctx, mc, profile)
	if err != nil {
		return fmt.Errorf("outline drafting failed: %w", err)
	}
	if err := r.store.StorePlan(ctx, r.missionID, outline); err != nil {
		return fmt.Errorf("failed to store draft outline: %w", err)
	}

	r.maybeOptimizeSettings(ctx, mc, outline)

	// Exploratory round 0 collects seed notes across the drafted sections.
	if err := r.runRound(ctx, 0); err != nil {
		return err
	}

	if err := r.checkpoint(ctx); err != nil {
		return err
	}

	mc, err = r.snapshot()
	if err != nil {
		return err
	}
	seedNotes := mc.ActiveNotes()

	if err := r.assignNotes(ctx, mc, seedNotes); err != nil {
		r.logger.Warn("Seed note assignment failed",
			"mission_id", r.missionID, "error", err)
	}

	if r.settings.SkipFinalReplanning {
		return nil
	}

	revised, err := r.agents.Planner.ReviseOutline(ctx, mc, mc.Plan, seedNotes)
	if err != nil {
		return fmt.Errorf("outline revision failed: %w", err)
	}
	if revised != mc.Plan {
		if err := r.store.StorePlan(ctx, r.missionID, revised); err != nil {
			return fmt.Errorf("failed to store revised outline: %w", err)
		}
	}
	return nil
}

// maybeOptimizeSettings asks the planner for setting suggestions and applies
// them to keys the user did not set explicitly. Advisory: any failure keeps
// the current settings.
func (r *missionRun) maybeOptimizeSettings(ctx context.Context, mc *models.MissionContext, outline *models.ReportSection) {
	if !r.settings.AutoOptimizeParams {
		return
	}
	suggestions, err := r.agents.Planner.SuggestSettings(ctx, mc, outline)
	if err != nil || suggestions == nil {
		return
	}

	explicit := r.settings.Explicit
	if v := suggestions.StructuredResearchRounds; v > 0 && !explicit["structured_research_rounds"] {
		r.settings.StructuredResearchRounds = v
	}
	if v := suggestions.WritingPasses; v > 0 && !explicit["writing_passes"] {
		r.settings.WritingPasses = v
	}
	if v := suggestions.MainResearchDocResults; v > 0 && !explicit["main_research_doc_results"] {
		r.settings.MainResearchDocResults = v
	}
	if v := suggestions.MainResearchWebResults; v > 0 && !explicit["main_research_web_results"] {
		r.settings.MainResearchWebResults = v
	}
}

// assignNotes runs note assignment over the given notes and persists the
// resulting section associations.
func (r *missionRun) assignNotes(ctx context.Context, mc *models.MissionContext, notes []models.Note) error {
	if mc.Plan == nil || len(notes) == 0 {
		return nil
	}
	assignments, err := r.agents.Assigner.Assign(ctx, r.missionID, mc.Plan, notes, r.settings)
	if err != nil {
		return err
	}
	for _, s := range researchSections(mc.Plan) {
		if err := r.store.SetSectionNotes(ctx, r.missionID, s.SectionID, assignments[s.SectionID]); err != nil {
			r.logger.Warn("Failed to store section notes",
				"mission_id", r.missionID, "section_id", s.SectionID, "error", err)
		}
	}
	return nil
}
