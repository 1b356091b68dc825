package consistency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/ent"
	entmission "github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/reportversion"
	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/contextstore"
	"github.com/maestro-research/maestro/pkg/events"
	"github.com/maestro-research/maestro/pkg/lifecycle"
	"github.com/maestro-research/maestro/pkg/models"
	"github.com/maestro-research/maestro/pkg/services"
	testdb "github.com/maestro-research/maestro/test/database"
)

type consistencyTestEnv struct {
	client   *ent.Client
	store    *contextstore.Store
	missions *services.MissionService
	events   *services.EventService
	svc      *Service
}

func setupConsistency(t *testing.T) *consistencyTestEnv {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	publisher := events.NewEventPublisher(dbClient.DB())
	store := contextstore.New(dbClient.Client, publisher)
	lc := lifecycle.NewManager(store)
	missionService := services.NewMissionService(dbClient.Client, store, lc)
	eventService := services.NewEventService(dbClient.Client)

	cfg := &config.RetentionConfig{
		MissionRetentionDays: 365,
		EventTTL:             1 * time.Hour,
		CleanupInterval:      1 * time.Hour,
	}
	return &consistencyTestEnv{
		client:   dbClient.Client,
		store:    store,
		missions: missionService,
		events:   eventService,
		svc:      NewService(cfg, dbClient.Client, missionService, eventService),
	}
}

func (e *consistencyTestEnv) createMission(t *testing.T) *models.MissionContext {
	t.Helper()
	mc, err := e.missions.CreateMission(context.Background(), models.CreateMissionRequest{
		UserID:      "user-1",
		UserRequest: "Survey recent advances in battery chemistry",
	})
	require.NoError(t, err)
	return mc
}

func TestService_SoftDeletesOldMissions(t *testing.T) {
	env := setupConsistency(t)
	ctx := context.Background()
	mc := env.createMission(t)

	require.NoError(t, env.client.Mission.UpdateOneID(mc.MissionID).
		SetStatus(entmission.StatusCompleted).
		SetCompletedAt(time.Now().Add(-400*24*time.Hour)).
		Exec(ctx))

	env.svc.runAll(ctx)

	_, err := env.missions.GetMission(ctx, mc.MissionID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PreservesRecentMissions(t *testing.T) {
	env := setupConsistency(t)
	ctx := context.Background()
	mc := env.createMission(t)

	require.NoError(t, env.client.Mission.UpdateOneID(mc.MissionID).
		SetStatus(entmission.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	env.svc.runAll(ctx)

	row, err := env.missions.GetMission(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Nil(t, row.DeletedAt)
}

func TestService_CleansUpOldEvents(t *testing.T) {
	env := setupConsistency(t)
	ctx := context.Background()
	mc := env.createMission(t)

	_, err := env.client.Event.Create().
		SetMissionID(mc.MissionID).
		SetChannel("missions").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = env.client.Event.Create().
		SetMissionID(mc.MissionID).
		SetChannel("missions").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	env.svc.runAll(ctx)

	remaining, err := env.events.GetEventsSince(ctx, "missions", 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "old event should be deleted, recent event preserved")
}

func TestService_RepairsMultipleCurrentVersions(t *testing.T) {
	env := setupConsistency(t)
	ctx := context.Background()
	mc := env.createMission(t)

	_, err := env.store.AddReportVersion(ctx, mc.MissionID, "Report", "v1", "", true)
	require.NoError(t, err)
	_, err = env.store.AddReportVersion(ctx, mc.MissionID, "Report", "v2", "", true)
	require.NoError(t, err)

	// Corrupt the invariant: both versions flagged current.
	_, err = env.client.ReportVersion.Update().
		Where(reportversion.MissionIDEQ(mc.MissionID)).
		SetIsCurrent(true).
		Save(ctx)
	require.NoError(t, err)

	env.svc.runAll(ctx)

	current, err := env.client.ReportVersion.Query().
		Where(
			reportversion.MissionIDEQ(mc.MissionID),
			reportversion.IsCurrent(true),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, 2, current[0].Version, "highest version wins")
}

func TestService_PromotesVersionWhenNoneCurrent(t *testing.T) {
	env := setupConsistency(t)
	ctx := context.Background()
	mc := env.createMission(t)

	_, err := env.store.AddReportVersion(ctx, mc.MissionID, "Report", "v1", "", true)
	require.NoError(t, err)

	// Corrupt the invariant: no current version at all.
	_, err = env.client.ReportVersion.Update().
		Where(reportversion.MissionIDEQ(mc.MissionID)).
		SetIsCurrent(false).
		Save(ctx)
	require.NoError(t, err)

	env.svc.runAll(ctx)

	current, err := env.client.ReportVersion.Query().
		Where(
			reportversion.MissionIDEQ(mc.MissionID),
			reportversion.IsCurrent(true),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, current.Version)

	row, err := env.missions.GetMission(ctx, mc.MissionID)
	require.NoError(t, err)
	require.NotNil(t, row.CurrentReportVersion)
	assert.Equal(t, 1, *row.CurrentReportVersion)
}

func TestService_StartStop(t *testing.T) {
	env := setupConsistency(t)

	env.svc.Start(context.Background())
	assert.NotPanics(t, func() { env.svc.Stop() })
}
