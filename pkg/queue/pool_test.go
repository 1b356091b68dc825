package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entmission "github.com/maestro-research/maestro/ent/mission"
)

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh: make(chan struct{}),
	}

	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}

func claimMission(t *testing.T, env *queueTestEnv, id, podID string, lastHeartbeat time.Time) {
	t.Helper()
	require.NoError(t, env.client.Client.Mission.UpdateOneID(id).
		SetStatus(entmission.StatusRunning).
		SetPodID(podID).
		SetStartedAt(lastHeartbeat).
		SetLastInteractionAt(lastHeartbeat).
		Exec(context.Background()))
}

func TestPoolDetectAndRecoverOrphans(t *testing.T) {
	env := setupQueue(t)
	ctx := context.Background()
	cfg := testQueueConfig()

	now := time.Now().UTC()
	createPendingMission(t, env, "mission-stale", now.Add(-time.Hour))
	claimMission(t, env, "mission-stale", "dead-pod", now.Add(-30*time.Minute))
	createPendingMission(t, env, "mission-fresh", now.Add(-time.Hour))
	claimMission(t, env, "mission-fresh", "live-pod", now)

	pool := NewWorkerPool("pod-1", env.client.Client, cfg, nil, nil, nil)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	stale, err := env.client.Client.Mission.Get(ctx, "mission-stale")
	require.NoError(t, err)
	assert.Equal(t, entmission.StatusFailed, stale.Status)
	require.NotNil(t, stale.ErrorInfo)
	assert.Contains(t, *stale.ErrorInfo, "Orphaned: no heartbeat from pod dead-pod")
	assert.NotNil(t, stale.CompletedAt)

	fresh, err := env.client.Client.Mission.Get(ctx, "mission-fresh")
	require.NoError(t, err)
	assert.Equal(t, entmission.StatusRunning, fresh.Status)

	pool.orphans.mu.Lock()
	defer pool.orphans.mu.Unlock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	assert.False(t, pool.orphans.lastOrphanScan.IsZero())
}

func TestPoolOrphanScanIgnoresPending(t *testing.T) {
	env := setupQueue(t)
	ctx := context.Background()

	// A pending mission has no heartbeat yet and must never be recovered.
	createPendingMission(t, env, "mission-queued", time.Now().UTC().Add(-time.Hour))

	pool := NewWorkerPool("pod-1", env.client.Client, testQueueConfig(), nil, nil, nil)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	row, err := env.client.Client.Mission.Get(ctx, "mission-queued")
	require.NoError(t, err)
	assert.Equal(t, entmission.StatusPending, row.Status)
}

func TestCleanupStartupOrphans(t *testing.T) {
	env := setupQueue(t)
	ctx := context.Background()

	now := time.Now().UTC()
	createPendingMission(t, env, "mission-mine", now.Add(-time.Hour))
	claimMission(t, env, "mission-mine", "pod-1", now)
	createPendingMission(t, env, "mission-theirs", now.Add(-time.Hour))
	claimMission(t, env, "mission-theirs", "pod-2", now)

	require.NoError(t, CleanupStartupOrphans(ctx, env.client.Client, "pod-1"))

	mine, err := env.client.Client.Mission.Get(ctx, "mission-mine")
	require.NoError(t, err)
	assert.Equal(t, entmission.StatusFailed, mine.Status)
	require.NotNil(t, mine.ErrorInfo)
	assert.Contains(t, *mine.ErrorInfo, "pod pod-1 restarted")

	theirs, err := env.client.Client.Mission.Get(ctx, "mission-theirs")
	require.NoError(t, err)
	assert.Equal(t, entmission.StatusRunning, theirs.Status)
}

func TestPoolHealthReportsQueueDepth(t *testing.T) {
	env := setupQueue(t)
	now := time.Now().UTC()
	createPendingMission(t, env, "mission-a", now)
	createPendingMission(t, env, "mission-b", now)
	createPendingMission(t, env, "mission-c", now.Add(-time.Minute))
	claimMission(t, env, "mission-c", "pod-1", now)

	pool := NewWorkerPool("pod-1", env.client.Client, testQueueConfig(), nil, nil, nil)

	health := pool.Health()
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, 2, health.QueueDepth)
	assert.Equal(t, 1, health.ActiveMissions)
	assert.Equal(t, 0, health.TotalWorkers)
}
