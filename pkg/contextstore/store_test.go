package contextstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/ent"
	entmission "github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/missionlogentry"
	"github.com/maestro-research/maestro/ent/reportversion"
	"github.com/maestro-research/maestro/pkg/events"
	"github.com/maestro-research/maestro/pkg/models"
	testdb "github.com/maestro-research/maestro/test/database"
)

type storeTestEnv struct {
	store  *Store
	client *ent.Client
}

func setupStore(t *testing.T) *storeTestEnv {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	publisher := events.NewEventPublisher(dbClient.DB())
	return &storeTestEnv{
		store:  New(dbClient.Client, publisher),
		client: dbClient.Client,
	}
}

func (e *storeTestEnv) createMission(t *testing.T) *models.MissionContext {
	t.Helper()
	mc, err := e.store.CreateMission(context.Background(), CreateMissionParams{
		UserRequest:     "Survey recent advances in battery chemistry",
		ChatID:          "chat-1",
		UserID:          "user-1",
		ToolSelection:   models.ToolSelection{LocalRAG: true, WebSearch: true},
		MissionSettings: models.DefaultMissionSettings(),
	})
	require.NoError(t, err)
	return mc
}

func testOutline() *models.ReportSection {
	return &models.ReportSection{
		Title: "root",
		Subsections: []models.ReportSection{
			{
				SectionID:        "sec-intro",
				Title:            "Introduction",
				Description:      "Frame the topic",
				ResearchStrategy: models.StrategyContentBased,
			},
			{
				SectionID:        "sec-solid-state",
				Title:            "Solid-state electrolytes",
				Description:      "Survey solid-state progress",
				ResearchStrategy: models.StrategyResearchBased,
			},
			{
				SectionID:        "sec-overview",
				Title:            "Chemistry overview",
				ResearchStrategy: models.StrategySynthesize,
				Subsections: []models.ReportSection{
					{
						SectionID:        "sec-lithium",
						Title:            "Lithium-ion",
						ResearchStrategy: models.StrategyResearchBased,
					},
				},
			},
		},
	}
}

func TestStore_CreateMissionAndGet(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()

	mc := env.createMission(t)
	assert.NotEmpty(t, mc.MissionID)
	assert.Equal(t, models.StatusPending, mc.Status)
	assert.True(t, mc.Metadata.ToolSelection.LocalRAG)

	// Row is persisted with the context blob.
	row, err := env.client.Mission.Get(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, entmission.StatusPending, row.Status)
	assert.Equal(t, mc.UserRequest, row.ContextData.UserRequest)

	// Get returns an independent snapshot.
	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	snap.UserRequest = "mutated"
	again, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, mc.UserRequest, again.UserRequest)
}

func TestStore_Get_NotFound(t *testing.T) {
	env := setupStore(t)
	_, err := env.store.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdateStatus(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	require.NoError(t, env.store.UpdateStatus(ctx, mc.MissionID, models.StatusPlanning, ""))
	require.NoError(t, env.store.UpdateStatus(ctx, mc.MissionID, models.StatusRunning, ""))

	row, err := env.client.Mission.Get(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, entmission.StatusRunning, row.Status)
	assert.NotNil(t, row.StartedAt)
	assert.Nil(t, row.CompletedAt)

	require.NoError(t, env.store.UpdateStatus(ctx, mc.MissionID, models.StatusCompleted, ""))
	row, err = env.client.Mission.Get(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.NotNil(t, row.CompletedAt)
}

func TestStore_UpdateStatus_RejectsIllegalTransition(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	// pending → running skips planning.
	err := env.store.UpdateStatus(ctx, mc.MissionID, models.StatusRunning, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Status is unchanged in memory and in the DB.
	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, snap.Status)
}

func TestStore_UpdateStatus_FailedRecordsErrorInfo(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	require.NoError(t, env.store.UpdateStatus(ctx, mc.MissionID, models.StatusFailed, "provider rejected the API key"))

	row, err := env.client.Mission.Get(ctx, mc.MissionID)
	require.NoError(t, err)
	require.NotNil(t, row.ErrorInfo)
	assert.Equal(t, "provider rejected the API key", *row.ErrorInfo)
}

func TestStore_AppendLog(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	first, err := env.store.AppendLog(ctx, mc.MissionID, models.ExecutionRecord{
		AgentName:     "planner",
		Action:        "generated outline",
		OutputSummary: "3 sections",
		Status:        models.RecordSuccess,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Sequence)
	assert.NotEmpty(t, first.EntryID)
	assert.False(t, first.Timestamp.IsZero())

	second, err := env.store.AppendLog(ctx, mc.MissionID, models.ExecutionRecord{
		AgentName: "research",
		Action:    "document search",
		Status:    models.RecordWarning,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Sequence)

	rows, err := env.client.MissionLogEntry.Query().
		Where(missionlogentry.MissionIDEQ(mc.MissionID)).
		Order(ent.Asc(missionlogentry.FieldSequence)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "planner", rows[0].AgentName)

	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.Len(t, snap.ExecutionLog, 2)
}

func TestStore_AppendLog_ModelDetailsUpdateStats(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	_, err := env.store.AppendLog(ctx, mc.MissionID, models.ExecutionRecord{
		AgentName: "writing",
		Action:    "drafted section",
		Status:    models.RecordSuccess,
		ModelDetails: &models.ModelDetails{
			ModelName:        "gpt-4o",
			Provider:         "smart-provider",
			Cost:             0.01,
			PromptTokens:     1200,
			CompletionTokens: 400,
		},
	})
	require.NoError(t, err)

	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, snap.Stats.Cost, 1e-9)
	assert.Equal(t, 1200, snap.Stats.PromptTokens)
	assert.Equal(t, 400, snap.Stats.CompletionTokens)
}

func TestStore_AppendLog_UsageCountedOncePerEntry(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	// Two model calls, one entry each; a third entry without model details
	// must not move the totals.
	_, err := env.store.AppendLog(ctx, mc.MissionID, models.ExecutionRecord{
		AgentName: "research", Action: "generated queries", Status: models.RecordSuccess,
		ModelDetails: &models.ModelDetails{Cost: 0.002, PromptTokens: 300, CompletionTokens: 80},
	})
	require.NoError(t, err)
	_, err = env.store.AppendLog(ctx, mc.MissionID, models.ExecutionRecord{
		AgentName: "research", Action: "extracted note", Status: models.RecordSuccess,
		ModelDetails: &models.ModelDetails{Cost: 0.003, PromptTokens: 200, CompletionTokens: 50},
	})
	require.NoError(t, err)
	_, err = env.store.AppendLog(ctx, mc.MissionID, models.ExecutionRecord{
		AgentName: "research", Action: "deduplicated results", Status: models.RecordSuccess,
	})
	require.NoError(t, err)

	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.InDelta(t, 0.005, snap.Stats.Cost, 1e-9)
	assert.Equal(t, 500, snap.Stats.PromptTokens)
	assert.Equal(t, 130, snap.Stats.CompletionTokens)

	// Stats survive a reload from the database.
	row, err := env.client.Mission.Get(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, 500, row.ContextData.Stats.PromptTokens)
}

func TestStore_RecordToolCall(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	require.NoError(t, env.store.RecordToolCall(ctx, mc.MissionID, "web_search"))
	require.NoError(t, env.store.RecordToolCall(ctx, mc.MissionID, "web_search"))
	// The research agent goes through the intelligent wrapper; it counts as
	// a web search too.
	require.NoError(t, env.store.RecordToolCall(ctx, mc.MissionID, "intelligent_web_search"))
	require.NoError(t, env.store.RecordToolCall(ctx, mc.MissionID, "document_search"))
	require.NoError(t, env.store.RecordToolCall(ctx, mc.MissionID, "calculator"))

	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Stats.WebSearchCalls)
	assert.Equal(t, 1, snap.Stats.DocSearchCalls)
}

func TestStore_StorePlan(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	require.NoError(t, env.store.StorePlan(ctx, mc.MissionID, testOutline()))

	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	require.NotNil(t, snap.Plan)
	assert.Len(t, snap.Plan.Subsections, 3)
	assert.NotNil(t, snap.SectionByID("sec-lithium"))
}

func TestStore_StorePlan_RejectsDuplicateSectionIDs(t *testing.T) {
	env := setupStore(t)
	mc := env.createMission(t)

	bad := testOutline()
	bad.Subsections[1].SectionID = "sec-intro"
	err := env.store.StorePlan(context.Background(), mc.MissionID, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate section id")
}

func TestStore_StorePlan_RejectsChildlessSynthesis(t *testing.T) {
	env := setupStore(t)
	mc := env.createMission(t)

	bad := testOutline()
	bad.Subsections[2].Subsections = nil
	err := env.store.StorePlan(context.Background(), mc.MissionID, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subsections")
}

func TestStore_StorePlan_RejectsExcessiveDepth(t *testing.T) {
	env := setupStore(t)
	mc := env.createMission(t)

	deep := &models.ReportSection{
		Title: "root",
		Subsections: []models.ReportSection{{
			SectionID: "a", ResearchStrategy: models.StrategyResearchBased,
			Subsections: []models.ReportSection{{
				SectionID: "b", ResearchStrategy: models.StrategyResearchBased,
				Subsections: []models.ReportSection{{
					SectionID: "c", ResearchStrategy: models.StrategyResearchBased,
					Subsections: []models.ReportSection{{
						SectionID: "d", ResearchStrategy: models.StrategyResearchBased,
					}},
				}},
			}},
		}},
	}
	err := env.store.StorePlan(context.Background(), mc.MissionID, deep)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth")
}

func TestStore_UpsertAndDiscardNotes(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	require.NoError(t, env.store.UpsertNote(ctx, mc.MissionID, models.Note{
		NoteID:     "note-1",
		Content:    "Solid-state cells exceed 400 Wh/kg in lab settings.",
		SourceType: models.SourceDocument,
		SourceID:   "chunk-17",
	}))
	require.NoError(t, env.store.UpsertNote(ctx, mc.MissionID, models.Note{
		NoteID:     "note-2",
		Content:    "Sodium-ion packs entered mass production in 2023.",
		SourceType: models.SourceWeb,
		SourceID:   "https://example.com/sodium",
	}))

	// Upsert replaces in place, preserving order.
	require.NoError(t, env.store.UpsertNote(ctx, mc.MissionID, models.Note{
		NoteID:     "note-1",
		Content:    "Solid-state cells exceed 450 Wh/kg in lab settings.",
		SourceType: models.SourceDocument,
		SourceID:   "chunk-17",
	}))

	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	require.Len(t, snap.Notes, 2)
	assert.Equal(t, "note-1", snap.Notes[0].NoteID)
	assert.Contains(t, snap.Notes[0].Content, "450")

	require.NoError(t, env.store.DiscardNotes(ctx, mc.MissionID, []string{"note-2", "unknown"}))
	snap, err = env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.Len(t, snap.Notes, 2)
	assert.Len(t, snap.ActiveNotes(), 1)
	assert.Equal(t, "note-1", snap.ActiveNotes()[0].NoteID)
}

func TestStore_SetSectionContentAndNotes(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)
	require.NoError(t, env.store.StorePlan(ctx, mc.MissionID, testOutline()))

	require.NoError(t, env.store.SetSectionContent(ctx, mc.MissionID, "sec-solid-state", "## Solid-state\nDrafted text.", 1))
	require.NoError(t, env.store.SetSectionNotes(ctx, mc.MissionID, "sec-solid-state", []string{"note-1", "note-9"}))

	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.Contains(t, snap.ReportContent["sec-solid-state"], "Drafted text")
	assert.Equal(t, []string{"note-1", "note-9"}, snap.SectionByID("sec-solid-state").AssociatedNoteIDs)

	err = env.store.SetSectionContent(ctx, mc.MissionID, "sec-missing", "x", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_GoalPad(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	id, err := env.store.AddGoal(ctx, mc.MissionID, "Cover recycling pathways", "reflection")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NoError(t, env.store.UpdateGoalStatus(ctx, mc.MissionID, id, models.GoalAddressed))

	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	require.Len(t, snap.GoalPad, 1)
	assert.Equal(t, models.GoalAddressed, snap.GoalPad[0].Status)

	err = env.store.UpdateGoalStatus(ctx, mc.MissionID, "missing", models.GoalObsolete)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ThoughtPad_EvictsOldest(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	for i := 0; i < thoughtPadCapacity+5; i++ {
		require.NoError(t, env.store.AddThought(ctx, mc.MissionID, "thought", "research"))
	}

	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.Len(t, snap.ThoughtPad, thoughtPadCapacity)
}

func TestStore_UpdateScratchpad(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	require.NoError(t, env.store.UpdateScratchpad(ctx, mc.MissionID, "working notes"))
	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, "working notes", snap.Scratchpad)
}

func TestStore_ReportVersions(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()
	mc := env.createMission(t)

	v1, err := env.store.AddReportVersion(ctx, mc.MissionID, "Battery report", "# Report v1", "", true)
	require.NoError(t, err)
	assert.Equal(t, 1, v1)

	v2, err := env.store.AddReportVersion(ctx, mc.MissionID, "Battery report", "# Report v2", "tightened intro", true)
	require.NoError(t, err)
	assert.Equal(t, 2, v2)

	// Exactly one current version.
	current, err := env.client.ReportVersion.Query().
		Where(
			reportversion.MissionIDEQ(mc.MissionID),
			reportversion.IsCurrent(true),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, 2, current[0].Version)

	// Flip back to v1.
	require.NoError(t, env.store.SetCurrentReportVersion(ctx, mc.MissionID, 1))
	current, err = env.client.ReportVersion.Query().
		Where(
			reportversion.MissionIDEQ(mc.MissionID),
			reportversion.IsCurrent(true),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, 1, current[0].Version)

	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.CurrentReportVersion)

	err = env.store.SetCurrentReportVersion(ctx, mc.MissionID, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_LoadActive(t *testing.T) {
	env := setupStore(t)
	ctx := context.Background()

	running := env.createMission(t)
	require.NoError(t, env.store.UpdateStatus(ctx, running.MissionID, models.StatusPlanning, ""))
	_, err := env.store.AppendLog(ctx, running.MissionID, models.ExecutionRecord{
		AgentName: "planner", Action: "started", Status: models.RecordSuccess,
	})
	require.NoError(t, err)

	done := env.createMission(t)
	require.NoError(t, env.store.UpdateStatus(ctx, done.MissionID, models.StatusFailed, "boom"))

	// Fresh store over the same database simulates a restart.
	restarted := New(env.client, env.store.publisher)
	loaded, err := restarted.LoadActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)

	assert.True(t, restarted.Has(running.MissionID))
	assert.False(t, restarted.Has(done.MissionID))

	snap, err := restarted.Get(running.MissionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlanning, snap.Status)
	require.Len(t, snap.ExecutionLog, 1)
	assert.Equal(t, "planner", snap.ExecutionLog[0].AgentName)

	// Sequences continue where they left off.
	rec, err := restarted.AppendLog(ctx, running.MissionID, models.ExecutionRecord{
		AgentName: "planner", Action: "resumed", Status: models.RecordSuccess,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Sequence)
}

func TestStore_Release(t *testing.T) {
	env := setupStore(t)
	mc := env.createMission(t)

	assert.True(t, env.store.Has(mc.MissionID))
	env.store.Release(mc.MissionID)
	assert.False(t, env.store.Has(mc.MissionID))

	_, err := env.store.Get(mc.MissionID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Load brings it back.
	_, err = env.store.Load(context.Background(), mc.MissionID)
	require.NoError(t, err)
	assert.True(t, env.store.Has(mc.MissionID))
}
