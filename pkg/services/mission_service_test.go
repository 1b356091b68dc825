package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/ent"
	entmission "github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/pkg/contextstore"
	"github.com/maestro-research/maestro/pkg/events"
	"github.com/maestro-research/maestro/pkg/lifecycle"
	"github.com/maestro-research/maestro/pkg/models"
	testdb "github.com/maestro-research/maestro/test/database"
)

type serviceTestEnv struct {
	client    *ent.Client
	store     *contextstore.Store
	lifecycle *lifecycle.Manager
	missions  *MissionService
	reports   *ReportService
	events    *EventService
}

func setupServices(t *testing.T) *serviceTestEnv {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	publisher := events.NewEventPublisher(dbClient.DB())
	store := contextstore.New(dbClient.Client, publisher)
	lc := lifecycle.NewManager(store)
	return &serviceTestEnv{
		client:    dbClient.Client,
		store:     store,
		lifecycle: lc,
		missions:  NewMissionService(dbClient.Client, store, lc),
		reports:   NewReportService(dbClient.Client, store),
		events:    NewEventService(dbClient.Client),
	}
}

func (e *serviceTestEnv) createMission(t *testing.T) *models.MissionContext {
	t.Helper()
	mc, err := e.missions.CreateMission(context.Background(), models.CreateMissionRequest{
		UserID:        "user-1",
		ChatID:        "chat-1",
		UserRequest:   "Survey recent advances in battery chemistry",
		ToolSelection: models.ToolSelection{LocalRAG: true, WebSearch: true},
	})
	require.NoError(t, err)
	return mc
}

func TestMissionService_CreateMission(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	mc := env.createMission(t)
	assert.Equal(t, models.StatusPending, mc.Status)

	row, err := env.missions.GetMission(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, entmission.StatusPending, row.Status)
	assert.Equal(t, "user-1", row.UserID)
}

func TestMissionService_CreateMission_Validation(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.missions.CreateMission(ctx, models.CreateMissionRequest{UserID: "user-1"})
	assert.True(t, IsValidationError(err))

	_, err = env.missions.CreateMission(ctx, models.CreateMissionRequest{UserRequest: "something"})
	assert.True(t, IsValidationError(err))
}

func TestMissionService_GetMission_NotFound(t *testing.T) {
	env := setupServices(t)
	_, err := env.missions.GetMission(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMissionService_GetMissionContext_FallsBackToRow(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	// Released missions are read from the persisted blob.
	env.store.Release(mc.MissionID)
	got, err := env.missions.GetMissionContext(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, mc.UserRequest, got.UserRequest)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestMissionService_ListMissions(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	a := env.createMission(t)
	env.createMission(t)
	env.createMission(t)
	require.NoError(t, env.store.UpdateStatus(ctx, a.MissionID, models.StatusPlanning, ""))

	list, err := env.missions.ListMissions(ctx, models.MissionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalCount)
	assert.Len(t, list.Missions, 3)

	list, err = env.missions.ListMissions(ctx, models.MissionFilters{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.TotalCount)

	list, err = env.missions.ListMissions(ctx, models.MissionFilters{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalCount)
	assert.Len(t, list.Missions, 1)
}

func TestMissionService_PauseResumeStop(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	require.NoError(t, env.store.UpdateStatus(ctx, mc.MissionID, models.StatusPlanning, ""))
	require.NoError(t, env.store.UpdateStatus(ctx, mc.MissionID, models.StatusRunning, ""))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	env.lifecycle.Register(mc.MissionID, cancel)

	require.NoError(t, env.missions.PauseMission(ctx, mc.MissionID))
	assert.True(t, env.lifecycle.IsPaused(mc.MissionID))
	snap, err := env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaused, snap.Status)

	require.NoError(t, env.missions.ResumeMission(ctx, mc.MissionID))
	assert.False(t, env.lifecycle.IsPaused(mc.MissionID))

	require.NoError(t, env.missions.StopMission(ctx, mc.MissionID))
	assert.Error(t, runCtx.Err(), "stop must cancel the run context")
	snap, err = env.store.Get(mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusStopped, snap.Status)
}

func TestMissionService_PauseNotActive(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	// Not registered with the lifecycle manager on this replica.
	err := env.missions.PauseMission(ctx, mc.MissionID)
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestMissionService_StopPendingWithdraws(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	require.NoError(t, env.missions.StopMission(ctx, mc.MissionID))

	row, err := env.missions.GetMission(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, entmission.StatusStopped, row.Status)
	assert.NotNil(t, row.CompletedAt)

	// The context view agrees with the row, not a stale in-memory copy.
	snap, err := env.missions.GetMissionContext(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusStopped, snap.Status)
	assert.False(t, env.store.Has(mc.MissionID))
}

func TestMissionService_StopTerminalFails(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)
	require.NoError(t, env.missions.StopMission(ctx, mc.MissionID))

	err := env.missions.StopMission(ctx, mc.MissionID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMissionService_GetStats(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	_, err := env.store.AppendLog(ctx, mc.MissionID, models.ExecutionRecord{
		AgentName: "writing",
		Action:    "drafted section",
		Status:    models.RecordSuccess,
		ModelDetails: &models.ModelDetails{
			PromptTokens:     100,
			CompletionTokens: 40,
			Cost:             0.002,
		},
	})
	require.NoError(t, err)
	require.NoError(t, env.store.UpsertNote(ctx, mc.MissionID, models.Note{
		NoteID:     "note-1",
		Content:    "Cathode chemistry improved",
		SourceType: models.SourceWeb,
	}))

	stats, err := env.missions.GetStats(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, 100, stats.Stats.PromptTokens)
	assert.Equal(t, 40, stats.Stats.CompletionTokens)
	assert.Equal(t, 1, stats.TotalNotes)
	assert.Equal(t, 1, stats.ActiveNotes)
}

func TestMissionService_GetLogs(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	for _, action := range []string{"Analyze request", "Draft outline", "Research cycle"} {
		_, err := env.store.AppendLog(ctx, mc.MissionID, models.ExecutionRecord{
			Timestamp: time.Now().UTC(),
			AgentName: "planner",
			Action:    action,
			Status:    models.RecordSuccess,
		})
		require.NoError(t, err)
	}

	page, err := env.missions.GetLogs(ctx, mc.MissionID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, "Analyze request", page.Entries[0].Action)

	page, err = env.missions.GetLogs(ctx, mc.MissionID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "Research cycle", page.Entries[0].Action)
}

func TestMissionService_SoftDeleteOldMissions(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	old := time.Now().Add(-31 * 24 * time.Hour)
	require.NoError(t, env.client.Mission.UpdateOneID(mc.MissionID).
		SetStatus(entmission.StatusCompleted).
		SetCompletedAt(old).
		Exec(ctx))

	count, err := env.missions.SoftDeleteOldMissions(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = env.missions.GetMission(ctx, mc.MissionID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, env.missions.RestoreMission(ctx, mc.MissionID))
	_, err = env.missions.GetMission(ctx, mc.MissionID)
	assert.NoError(t, err)
}
