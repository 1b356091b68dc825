package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/agent"
	"github.com/maestro-research/maestro/pkg/models"
)

// fakeStore is an in-memory MissionStore that enforces the status state
// machine like the real context store.
type fakeStore struct {
	mu       sync.Mutex
	mc       *models.MissionContext
	statuses []models.MissionStatus
	reports  []storedReport
	records  []models.ExecutionRecord
	plans    int
}

type storedReport struct {
	title, content, notes string
	current               bool
}

func newFakeStore(mc *models.MissionContext) *fakeStore {
	return &fakeStore{mc: mc}
}

func (f *fakeStore) Get(missionID string) (*models.MissionContext, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mc.MissionID != missionID {
		return nil, fmt.Errorf("mission not found: %s", missionID)
	}
	return f.mc.Clone(), nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, _ string, status models.MissionStatus, errorInfo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !models.CanTransition(f.mc.Status, status) {
		return fmt.Errorf("invalid transition %s -> %s", f.mc.Status, status)
	}
	f.mc.Status = status
	f.mc.ErrorInfo = errorInfo
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeStore) AppendLog(_ context.Context, _ string, rec models.ExecutionRecord) (*models.ExecutionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return &rec, nil
}

func (f *fakeStore) StorePlan(_ context.Context, _ string, plan *models.ReportSection) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mc.Plan = plan
	f.plans++
	return nil
}

func (f *fakeStore) UpsertNote(_ context.Context, _ string, note models.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.mc.Notes {
		if f.mc.Notes[i].NoteID == note.NoteID {
			f.mc.Notes[i] = note
			return nil
		}
	}
	f.mc.Notes = append(f.mc.Notes, note)
	return nil
}

func (f *fakeStore) DiscardNotes(_ context.Context, _ string, noteIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make(map[string]bool, len(noteIDs))
	for _, id := range noteIDs {
		ids[id] = true
	}
	for i := range f.mc.Notes {
		if ids[f.mc.Notes[i].NoteID] {
			f.mc.Notes[i].Discarded = true
		}
	}
	return nil
}

func (f *fakeStore) SetSectionContent(_ context.Context, _ , sectionID, markdown string, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mc.ReportContent == nil {
		f.mc.ReportContent = map[string]string{}
	}
	f.mc.ReportContent[sectionID] = markdown
	return nil
}

func (f *fakeStore) SetSectionNotes(_ context.Context, _, sectionID string, noteIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	section := f.mc.SectionByID(sectionID)
	if section == nil {
		return fmt.Errorf("section not found: %s", sectionID)
	}
	section.AssociatedNoteIDs = append([]string(nil), noteIDs...)
	return nil
}

func (f *fakeStore) AddGoal(_ context.Context, _, text, sourceAgent string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("goal-%d", len(f.mc.GoalPad)+1)
	f.mc.GoalPad = append(f.mc.GoalPad, models.GoalEntry{
		ID: id, Text: text, SourceAgent: sourceAgent,
		Status: models.GoalActive, Timestamp: time.Now().UTC(),
	})
	return id, nil
}

func (f *fakeStore) AddThought(_ context.Context, _, text, sourceAgent string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mc.ThoughtPad = append(f.mc.ThoughtPad, models.ThoughtEntry{
		ID: fmt.Sprintf("thought-%d", len(f.mc.ThoughtPad)+1),
		Text: text, SourceAgent: sourceAgent, Timestamp: time.Now().UTC(),
	})
	return nil
}

func (f *fakeStore) AddReportVersion(_ context.Context, _, title, content, notes string, makeCurrent bool) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, storedReport{title: title, content: content, notes: notes, current: makeCurrent})
	return len(f.reports), nil
}

func (f *fakeStore) status() models.MissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mc.Status
}

// openGate never pauses or stops.
type openGate struct{}

func (openGate) ShouldContinue(ctx context.Context, _ string) bool { return ctx.Err() == nil }
func (openGate) WaitIfPaused(context.Context, string) error        { return nil }

// countingGate stops the mission after a fixed number of checks.
type countingGate struct {
	mu     sync.Mutex
	checks int
	limit  int
}

func (g *countingGate) ShouldContinue(_ context.Context, _ string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checks++
	return g.checks <= g.limit
}

func (g *countingGate) WaitIfPaused(context.Context, string) error { return nil }

type stubAnalyzer struct {
	err error
}

func (s *stubAnalyzer) Analyze(context.Context, *models.MissionContext) (*agent.RequestProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &agent.RequestProfile{Tone: "neutral", Goals: []string{"Answer the request"}}, nil
}

type stubPlanner struct {
	outline     *models.ReportSection
	suggestions *agent.SettingSuggestions
	revised     bool
}

func (s *stubPlanner) DraftOutline(context.Context, *models.MissionContext, *agent.RequestProfile) (*models.ReportSection, error) {
	return s.outline, nil
}

func (s *stubPlanner) ReviseOutline(_ context.Context, _ *models.MissionContext, outline *models.ReportSection, _ []models.Note) (*models.ReportSection, error) {
	s.revised = true
	return outline, nil
}

func (s *stubPlanner) SuggestSettings(context.Context, *models.MissionContext, *models.ReportSection) (*agent.SettingSuggestions, error) {
	if s.suggestions != nil {
		return s.suggestions, nil
	}
	return &agent.SettingSuggestions{}, nil
}

type stubResearcher struct {
	mu     sync.Mutex
	calls  []agent.CycleParams
	err    error
	counts map[string]int
}

func (s *stubResearcher) Cycle(_ context.Context, _ string, params agent.CycleParams) (*agent.CycleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, params)
	if s.err != nil {
		return nil, s.err
	}
	if s.counts == nil {
		s.counts = make(map[string]int)
	}
	s.counts[params.Section.SectionID]++
	noteID := fmt.Sprintf("note_%s_%d", params.Section.SectionID, s.counts[params.Section.SectionID])
	return &agent.CycleResult{
		Queries: []string{params.Section.Title},
		Notes: []models.Note{{
			NoteID:     noteID,
			Content:    "Finding about " + params.Section.Title,
			SourceType: models.SourceWeb,
			SourceID:   "https://example.org/" + noteID,
			SourceMetadata: map[string]any{"title": params.Section.Title},
		}},
		Status: models.RecordSuccess,
	}, nil
}

func (s *stubResearcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type stubReflector struct {
	mu      sync.Mutex
	results []*agent.ReflectionResult
	calls   int
}

func (s *stubReflector) Reflect(context.Context, string, *models.ReportSection, []models.Note, *models.ReportSection, []models.GoalEntry) (*agent.ReflectionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.results) > 0 {
		r := s.results[0]
		s.results = s.results[1:]
		return r, nil
	}
	return &agent.ReflectionResult{OverallAssessment: "fine"}, nil
}

type stubAssigner struct{}

// Assign hands every note to the first research section.
func (stubAssigner) Assign(_ context.Context, _ string, outline *models.ReportSection, notes []models.Note, _ models.MissionSettings) (map[string][]string, error) {
	sections := researchSections(outline)
	if len(sections) == 0 {
		return map[string][]string{}, nil
	}
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.NoteID)
	}
	return map[string][]string{sections[0].SectionID: ids}, nil
}

type stubWriter struct {
	mu      sync.Mutex
	failFor map[string]bool
	calls   []agent.WriteParams
}

func (s *stubWriter) WriteSection(_ context.Context, _ string, params agent.WriteParams) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, params)
	if s.failFor[params.Section.SectionID] {
		return "", errors.New("model refused")
	}
	draft := fmt.Sprintf("Draft of %s (pass %d)", params.Section.Title, params.Pass)
	if len(params.Notes) > 0 {
		draft += fmt.Sprintf(" [%s]", params.Notes[0].NoteID)
	}
	return draft, nil
}

func testOutline() *models.ReportSection {
	return &models.ReportSection{Subsections: []models.ReportSection{
		{SectionID: "sec_intro", Title: "Introduction", Description: "Opens the report.", ResearchStrategy: models.StrategyContentBased},
		{SectionID: "sec_main", Title: "Main findings", Description: "Core research results.", ResearchStrategy: models.StrategyResearchBased},
		{SectionID: "sec_deep", Title: "Deep dive", Description: "Detailed follow-up.", ResearchStrategy: models.StrategyResearchBased},
	}}
}

func controllerMission() *models.MissionContext {
	settings := models.DefaultMissionSettings()
	settings.StructuredResearchRounds = 1
	settings.WritingPasses = 1
	return &models.MissionContext{
		MissionID:     "mission-1",
		UserRequest:   "Summarize recent grid storage research.",
		Status:        models.StatusPlanning,
		Notes:         []models.Note{},
		ReportContent: map[string]string{},
		Metadata: models.MissionMetadata{
			ToolSelection:   models.ToolSelection{LocalRAG: true, WebSearch: true},
			MissionSettings: settings,
		},
	}
}

type testRig struct {
	store      *fakeStore
	planner    *stubPlanner
	researcher *stubResearcher
	reflector  *stubReflector
	writer     *stubWriter
	controller *Controller
}

func newTestRig(mc *models.MissionContext, gate Gate) *testRig {
	rig := &testRig{
		store:      newFakeStore(mc),
		planner:    &stubPlanner{outline: testOutline()},
		researcher: &stubResearcher{},
		reflector:  &stubReflector{},
		writer:     &stubWriter{},
	}
	rig.controller = New(rig.store, gate, Agents{
		Analyzer:   &stubAnalyzer{},
		Planner:    rig.planner,
		Researcher: rig.researcher,
		Reflector:  rig.reflector,
		Assigner:   stubAssigner{},
		Writer:     rig.writer,
		Citations:  agent.NewCitationAgent(nil),
	})
	return rig
}

func TestController_RunMission_CompletesFullPipeline(t *testing.T) {
	rig := newTestRig(controllerMission(), openGate{})

	err := rig.controller.RunMission(context.Background(), "mission-1")
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, rig.store.status())
	assert.Contains(t, rig.store.statuses, models.StatusRunning)

	// Exploration round plus one structured round over two research sections.
	assert.Equal(t, 4, rig.researcher.callCount())
	assert.Equal(t, 2, rig.reflector.calls)
	assert.True(t, rig.planner.revised)

	require.Len(t, rig.store.reports, 1)
	report := rig.store.reports[0]
	assert.True(t, report.current)
	assert.Contains(t, report.title, "grid storage")
	assert.Contains(t, report.content, "# Introduction")
	assert.Contains(t, report.content, "Draft of Main findings")
	assert.Contains(t, report.content, "## References")
	// Section order follows the outline.
	assert.Less(t,
		strings.Index(report.content, "# Introduction"),
		strings.Index(report.content, "# Main findings"))
}

func TestController_RunMission_TerminalMissionIsNoop(t *testing.T) {
	mc := controllerMission()
	mc.Status = models.StatusCompleted
	rig := newTestRig(mc, openGate{})

	require.NoError(t, rig.controller.RunMission(context.Background(), "mission-1"))
	assert.Zero(t, rig.researcher.callCount())
}

func TestController_RunMission_PendingIsClaimed(t *testing.T) {
	mc := controllerMission()
	mc.Status = models.StatusPending
	rig := newTestRig(mc, openGate{})

	require.NoError(t, rig.controller.RunMission(context.Background(), "mission-1"))
	assert.Equal(t, []models.MissionStatus{
		models.StatusPlanning, models.StatusRunning, models.StatusCompleted,
	}, rig.store.statuses)
}

func TestController_RunMission_AnalysisFailureFailsMission(t *testing.T) {
	rig := newTestRig(controllerMission(), openGate{})
	rig.controller.agents.Analyzer = &stubAnalyzer{err: errors.New("provider down")}

	err := rig.controller.RunMission(context.Background(), "mission-1")
	require.Error(t, err)
	assert.Equal(t, models.StatusFailed, rig.store.status())
	assert.Contains(t, rig.store.mc.ErrorInfo, "provider down")
}

func TestController_RunMission_AllCyclesFailingFailsMission(t *testing.T) {
	rig := newTestRig(controllerMission(), openGate{})
	rig.researcher.err = errors.New("search backend down")

	err := rig.controller.RunMission(context.Background(), "mission-1")
	require.Error(t, err)
	assert.Equal(t, models.StatusFailed, rig.store.status())
}

func TestController_RunMission_WriterFailureUsesPlaceholder(t *testing.T) {
	rig := newTestRig(controllerMission(), openGate{})
	rig.writer.failFor = map[string]bool{"sec_deep": true}

	err := rig.controller.RunMission(context.Background(), "mission-1")
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, rig.store.status())
	assert.Equal(t, placeholderContent, rig.store.mc.ReportContent["sec_deep"])
	assert.Contains(t, rig.store.mc.ReportContent["sec_main"], "Draft of Main findings")
}

func TestController_RunMission_StopInterruptsCleanly(t *testing.T) {
	rig := newTestRig(controllerMission(), &countingGate{limit: 3})

	err := rig.controller.RunMission(context.Background(), "mission-1")
	require.NoError(t, err)

	// Neither completed nor failed: the lifecycle manager owns the terminal
	// status on stop.
	assert.NotEqual(t, models.StatusCompleted, rig.store.status())
	assert.NotEqual(t, models.StatusFailed, rig.store.status())
	assert.Empty(t, rig.store.reports)
}

func TestController_ReflectionAppliesOneModificationPerSection(t *testing.T) {
	rig := newTestRig(controllerMission(), openGate{})
	rig.reflector.results = []*agent.ReflectionResult{
		{
			OverallAssessment: "needs a subsection",
			ProposedModifications: []agent.OutlineModification{
				{Action: agent.ModAdd, ParentID: "sec_main", Title: "New angle", Description: "d"},
				{Action: agent.ModAdd, ParentID: "sec_main", Title: "Second angle", Description: "d"},
			},
			GeneratedThought: "Look into pricing data.",
			NewQuestions:     []string{"What do operators pay?"},
		},
	}

	require.NoError(t, rig.controller.RunMission(context.Background(), "mission-1"))

	main := rig.store.mc.SectionByID("sec_main")
	require.NotNil(t, main)
	require.Len(t, main.Subsections, 1, "only the first modification applies")
	assert.Equal(t, "New angle", main.Subsections[0].Title)

	var thoughts []string
	for _, th := range rig.store.mc.ThoughtPad {
		thoughts = append(thoughts, th.Text)
	}
	assert.Contains(t, thoughts, "Look into pricing data.")
}

func TestController_ReflectionDiscardsNotes(t *testing.T) {
	rig := newTestRig(controllerMission(), openGate{})
	rig.reflector.results = []*agent.ReflectionResult{
		{OverallAssessment: "redundant note", DiscardNoteIDs: []string{"note_sec_main_1"}},
	}

	require.NoError(t, rig.controller.RunMission(context.Background(), "mission-1"))

	note := rig.store.mc.NoteByID("note_sec_main_1")
	require.NotNil(t, note)
	assert.True(t, note.Discarded)
}

func TestController_NeedsReviewRecyclesSection(t *testing.T) {
	rig := newTestRig(controllerMission(), openGate{})
	rig.reflector.results = []*agent.ReflectionResult{
		{OverallAssessment: "thin", SectionsNeedingReview: []string{"sec_main"}},
	}

	require.NoError(t, rig.controller.RunMission(context.Background(), "mission-1"))

	// Exploration (2) + structured round (2) + one re-cycle.
	assert.Equal(t, 5, rig.researcher.callCount())
}

func TestController_AutoOptimizeRespectsExplicitSettings(t *testing.T) {
	mc := controllerMission()
	mc.Metadata.MissionSettings.AutoOptimizeParams = true
	mc.Metadata.MissionSettings.WritingPasses = 1
	mc.Metadata.MissionSettings.Explicit = map[string]bool{"writing_passes": true}
	rig := newTestRig(mc, openGate{})
	rig.planner.suggestions = &agent.SettingSuggestions{
		StructuredResearchRounds: 2,
		WritingPasses:            3,
	}

	require.NoError(t, rig.controller.RunMission(context.Background(), "mission-1"))

	// Suggested rounds applied (2 structured rounds x 2 sections + exploration),
	// explicit writing_passes kept at 1.
	assert.Equal(t, 6, rig.researcher.callCount())
	maxPass := 0
	for _, call := range rig.writer.calls {
		if call.Pass > maxPass {
			maxPass = call.Pass
		}
	}
	assert.Equal(t, 1, maxPass)
}
