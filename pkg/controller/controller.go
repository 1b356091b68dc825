// Package controller drives a mission through its phases: analyze, plan,
// structured research rounds, writing passes, and finalization. One
// RunMission call owns one mission from claim to terminal status; all state
// changes go through the context store, and every phase boundary is a
// cooperative suspension point that honors pause and stop.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/semaphore"

	"github.com/maestro-research/maestro/pkg/agent"
	"github.com/maestro-research/maestro/pkg/models"
)

// maxSectionRecycles caps how often a sections_needing_review flag can
// re-run a section's research within one round.
const maxSectionRecycles = 2

// placeholderContent stands in for sections whose writing failed; a later
// pass may replace it.
const placeholderContent = "No research available for this section."

// MissionStore is the slice of the context store the controller mutates
// through. Implemented by contextstore.Store.
type MissionStore interface {
	Get(missionID string) (*models.MissionContext, error)
	UpdateStatus(ctx context.Context, missionID string, status models.MissionStatus, errorInfo string) error
	AppendLog(ctx context.Context, missionID string, rec models.ExecutionRecord) (*models.ExecutionRecord, error)
	StorePlan(ctx context.Context, missionID string, plan *models.ReportSection) error
	UpsertNote(ctx context.Context, missionID string, note models.Note) error
	DiscardNotes(ctx context.Context, missionID string, noteIDs []string) error
	SetSectionContent(ctx context.Context, missionID, sectionID, markdown string, pass int) error
	SetSectionNotes(ctx context.Context, missionID, sectionID string, noteIDs []string) error
	AddGoal(ctx context.Context, missionID, text, sourceAgent string) (string, error)
	AddThought(ctx context.Context, missionID, text, sourceAgent string) error
	AddReportVersion(ctx context.Context, missionID, title, content, revisionNotes string, makeCurrent bool) (int, error)
}

// Gate exposes the lifecycle manager's cooperative-cancellation primitives.
type Gate interface {
	ShouldContinue(ctx context.Context, missionID string) bool
	WaitIfPaused(ctx context.Context, missionID string) error
}

// Analyzer classifies the user request.
type Analyzer interface {
	Analyze(ctx context.Context, mc *models.MissionContext) (*agent.RequestProfile, error)
}

// Planner produces and revises the report outline.
type Planner interface {
	DraftOutline(ctx context.Context, mc *models.MissionContext, profile *agent.RequestProfile) (*models.ReportSection, error)
	ReviseOutline(ctx context.Context, mc *models.MissionContext, outline *models.ReportSection, seedNotes []models.Note) (*models.ReportSection, error)
	SuggestSettings(ctx context.Context, mc *models.MissionContext, outline *models.ReportSection) (*agent.SettingSuggestions, error)
}

// Researcher runs one research cycle over a section.
type Researcher interface {
	Cycle(ctx context.Context, missionID string, params agent.CycleParams) (*agent.CycleResult, error)
}

// Reflector reviews a section's research and proposes adjustments.
type Reflector interface {
	Reflect(ctx context.Context, missionID string, section *models.ReportSection, sectionNotes []models.Note, outline *models.ReportSection, goals []models.GoalEntry) (*agent.ReflectionResult, error)
}

// Assigner maps notes onto outline sections.
type Assigner interface {
	Assign(ctx context.Context, missionID string, outline *models.ReportSection, notes []models.Note, settings models.MissionSettings) (map[string][]string, error)
}

// Writer drafts one section of the report.
type Writer interface {
	WriteSection(ctx context.Context, missionID string, params agent.WriteParams) (string, error)
}

// CitationProcessor rewrites note references in the assembled report.
type CitationProcessor interface {
	Process(ctx context.Context, missionID, content string, notes []models.Note) *agent.CitationResult
}

// Agents bundles the per-phase agents the controller sequences.
type Agents struct {
	Analyzer   Analyzer
	Planner    Planner
	Researcher Researcher
	Reflector  Reflector
	Assigner   Assigner
	Writer     Writer
	Citations  CitationProcessor
}

// Controller is the top-level mission sequencer.
type Controller struct {
	store  MissionStore
	gate   Gate
	agents Agents
	logger *slog.Logger
}

// New creates a Controller.
func New(store MissionStore, gate Gate, agents Agents) *Controller {
	return &Controller{
		store:  store,
		gate:   gate,
		agents: agents,
		logger: slog.With("component", "controller"),
	}
}

// errMissionInterrupted is the sentinel unwound through the phase stack when
// the mission was stopped or its context cancelled. RunMission swallows it:
// the lifecycle manager already persisted the terminal status.
var errMissionInterrupted = errors.New("mission interrupted")

// RunMission executes the full phase sequence for one mission. It returns
// nil on completion and on cooperative interruption; any other error has
// already been recorded as a failed status.
func (c *Controller) RunMission(ctx context.Context, missionID string) error {
	mc, err := c.store.Get(missionID)
	if err != nil {
		return err
	}
	if mc.Status.IsTerminal() {
		c.logger.Info("Mission already terminal, nothing to run",
			"mission_id", missionID, "status", mc.Status)
		return nil
	}

	if mc.Status == models.StatusPending {
		if err := c.store.UpdateStatus(ctx, missionID, models.StatusPlanning, ""); err != nil {
			return err
		}
	}

	settings := mc.Metadata.MissionSettings
	settings.ApplyDefaults(models.DefaultMissionSettings())
	sem := semaphore.NewWeighted(int64(settings.MaxConcurrentRequests))

	run := &missionRun{
		Controller: c,
		missionID:  missionID,
		settings:   settings,
		sem:        sem,
	}

	if err := run.execute(ctx); err != nil {
		if errors.Is(err, errMissionInterrupted) || ctx.Err() != nil {
			c.logger.Info("Mission interrupted", "mission_id", missionID)
			return nil
		}
		c.logger.Error("Mission failed", "mission_id", missionID, "error", err)
		if serr := c.store.UpdateStatus(context.WithoutCancel(ctx), missionID, models.StatusFailed, err.Error()); serr != nil {
			c.logger.Error("Failed to record mission failure",
				"mission_id", missionID, "error", serr)
		}
		return err
	}
	return nil
}

// missionRun carries one execution's per-mission state through the phases.
type missionRun struct {
	*Controller
	missionID string
	settings  models.MissionSettings
	sem       *semaphore.Weighted
}

func (r *missionRun) execute(ctx context.Context) error {
	if err := r.planPhase(ctx); err != nil {
		return err
	}
	if err := r.store.UpdateStatus(ctx, r.missionID, models.StatusRunning, ""); err != nil {
		return err
	}
	if err := r.researchPhase(ctx); err != nil {
		return err
	}
	if err := r.writingPhase(ctx); err != nil {
		return err
	}
	return r.finalize(ctx)
}

// checkpoint blocks while paused and reports interruption. Called before
// every agent invocation and after every suspension point.
func (r *missionRun) checkpoint(ctx context.Context) error {
	if err := r.gate.WaitIfPaused(ctx, r.missionID); err != nil {
		return fmt.Errorf("%w: %v", errMissionInterrupted, err)
	}
	if !r.gate.ShouldContinue(ctx, r.missionID) {
		return errMissionInterrupted
	}
	return nil
}

// snapshot re-reads the mission context.
func (r *missionRun) snapshot() (*models.MissionContext, error) {
	return r.store.Get(r.missionID)
}

// researchSections returns the research_based sections of the outline in
// depth-first outline order.
func researchSections(outline *models.ReportSection) []*models.ReportSection {
	var sections []*models.ReportSection
	if outline == nil {
		return sections
	}
	outline.Walk(func(s *models.ReportSection) bool {
		if s.SectionID != "" && s.ResearchStrategy == models.StrategyResearchBased {
			sections = append(sections, s)
		}
		return true
	})
	return sections
}

// notesForSection resolves a section's associated note ids against the
// mission's notes, skipping discarded ones.
func notesForSection(mc *models.MissionContext, section *models.ReportSection) []models.Note {
	var notes []models.Note
	for _, id := range section.AssociatedNoteIDs {
		if n := mc.NoteByID(id); n != nil && !n.Discarded {
			notes = append(notes, *n)
		}
	}
	return notes
}
