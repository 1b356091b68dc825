package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entmission "github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/database"
	"github.com/maestro-research/maestro/pkg/models"
	testdb "github.com/maestro-research/maestro/test/database"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentMissions:   5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MissionTimeout:          15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

// fakeLoader is an in-memory MissionLoader for unit tests.
type fakeLoader struct {
	mu       sync.Mutex
	contexts map[string]*models.MissionContext
	updates  []statusUpdate
	released []string
	loadErr  error
}

type statusUpdate struct {
	missionID string
	status    models.MissionStatus
	errorInfo string
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{contexts: make(map[string]*models.MissionContext)}
}

func (f *fakeLoader) Load(_ context.Context, missionID string) (*models.MissionContext, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.Get(missionID)
}

func (f *fakeLoader) Get(missionID string) (*models.MissionContext, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mc, ok := f.contexts[missionID]
	if !ok {
		return nil, errors.New("mission not found")
	}
	return mc, nil
}

func (f *fakeLoader) UpdateStatus(_ context.Context, missionID string, status models.MissionStatus, errorInfo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if mc, ok := f.contexts[missionID]; ok {
		mc.Status = status
	}
	f.updates = append(f.updates, statusUpdate{missionID, status, errorInfo})
	return nil
}

func (f *fakeLoader) Release(missionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = append(f.released, missionID)
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentMissionID)
	assert.Equal(t, 0, h.MissionsProcessed)

	w.setStatus(WorkerStatusWorking, "mission-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "mission-abc", h.CurrentMissionID)

	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentMissionID)
}

func TestWorkerSettleTerminalStatus_TerminalIsLeftAlone(t *testing.T) {
	loader := newFakeLoader()
	loader.contexts["m1"] = &models.MissionContext{MissionID: "m1", Status: models.StatusCompleted}
	w := NewWorker("w", "pod", nil, testQueueConfig(), nil, nil, loader)

	w.settleTerminalStatus("m1", context.Background(), nil)

	assert.Empty(t, loader.updates, "terminal missions must not be touched")
}

func TestWorkerSettleTerminalStatus_Timeout(t *testing.T) {
	loader := newFakeLoader()
	loader.contexts["m1"] = &models.MissionContext{MissionID: "m1", Status: models.StatusRunning}
	w := NewWorker("w", "pod", nil, testQueueConfig(), nil, nil, loader)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	w.settleTerminalStatus("m1", ctx, ctx.Err())

	require.Len(t, loader.updates, 1)
	assert.Equal(t, models.StatusFailed, loader.updates[0].status)
	assert.Contains(t, loader.updates[0].errorInfo, "timed out")
}

func TestWorkerSettleTerminalStatus_RunnerError(t *testing.T) {
	loader := newFakeLoader()
	loader.contexts["m1"] = &models.MissionContext{MissionID: "m1", Status: models.StatusPlanning}
	w := NewWorker("w", "pod", nil, testQueueConfig(), nil, nil, loader)

	w.settleTerminalStatus("m1", context.Background(), errors.New("planner exploded"))

	require.Len(t, loader.updates, 1)
	assert.Equal(t, models.StatusFailed, loader.updates[0].status)
	assert.Equal(t, "planner exploded", loader.updates[0].errorInfo)
}

func TestWorkerSettleTerminalStatus_ShutdownStops(t *testing.T) {
	loader := newFakeLoader()
	loader.contexts["m1"] = &models.MissionContext{MissionID: "m1", Status: models.StatusRunning}
	w := NewWorker("w", "pod", nil, testQueueConfig(), nil, nil, loader)

	w.settleTerminalStatus("m1", context.Background(), nil)

	require.Len(t, loader.updates, 1)
	assert.Equal(t, models.StatusStopped, loader.updates[0].status)
}

func createPendingMission(t *testing.T, env *queueTestEnv, id string, createdAt time.Time) {
	t.Helper()
	err := env.client.Mission.Create().
		SetID(id).
		SetChatID("chat-1").
		SetUserID("user-1").
		SetUserRequest("Survey recent advances in battery chemistry").
		SetStatus(entmission.StatusPending).
		SetContextData(&models.MissionContext{MissionID: id, Status: models.StatusPending}).
		SetCreatedAt(createdAt).
		Exec(context.Background())
	require.NoError(t, err)
}

type queueTestEnv struct {
	client *database.Client
}

func setupQueue(t *testing.T) *queueTestEnv {
	t.Helper()
	return &queueTestEnv{client: testdb.NewTestClient(t)}
}

func TestWorkerClaimNextMission(t *testing.T) {
	env := setupQueue(t)
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Minute)
	createPendingMission(t, env, "mission-old", base)
	createPendingMission(t, env, "mission-new", base.Add(30*time.Second))

	w := NewWorker("w-0", "pod-1", env.client.Client, testQueueConfig(), nil, nil, nil)

	// Oldest pending mission is claimed first.
	id, err := w.claimNextMission(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mission-old", id)

	row, err := env.client.Client.Mission.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entmission.StatusPlanning, row.Status)
	require.NotNil(t, row.PodID)
	assert.Equal(t, "pod-1", *row.PodID)
	assert.NotNil(t, row.StartedAt)
	assert.NotNil(t, row.LastInteractionAt)

	// Next claim gets the remaining mission, then the queue is empty.
	id, err = w.claimNextMission(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mission-new", id)

	_, err = w.claimNextMission(ctx)
	assert.ErrorIs(t, err, ErrNoMissionsAvailable)
}

func TestWorkerClaimSkipsSoftDeleted(t *testing.T) {
	env := setupQueue(t)
	ctx := context.Background()
	createPendingMission(t, env, "mission-deleted", time.Now().UTC().Add(-time.Minute))
	require.NoError(t, env.client.Client.Mission.UpdateOneID("mission-deleted").
		SetDeletedAt(time.Now().UTC()).
		Exec(ctx))

	w := NewWorker("w-0", "pod-1", env.client.Client, testQueueConfig(), nil, nil, nil)

	_, err := w.claimNextMission(ctx)
	assert.ErrorIs(t, err, ErrNoMissionsAvailable)
}

func TestWorkerPollAtCapacity(t *testing.T) {
	env := setupQueue(t)
	ctx := context.Background()
	cfg := testQueueConfig()
	cfg.MaxConcurrentMissions = 1

	createPendingMission(t, env, "mission-active", time.Now().UTC().Add(-time.Minute))
	require.NoError(t, env.client.Client.Mission.UpdateOneID("mission-active").
		SetStatus(entmission.StatusRunning).
		Exec(ctx))
	createPendingMission(t, env, "mission-waiting", time.Now().UTC())

	w := NewWorker("w-0", "pod-1", env.client.Client, cfg, nil, nil, nil)

	err := w.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrAtCapacity)
}
