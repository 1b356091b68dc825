package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *serviceTestEnv) insertEvent(t *testing.T, missionID, channel string, createdAt time.Time, seq int) int {
	t.Helper()
	evt, err := e.client.Event.Create().
		SetMissionID(missionID).
		SetChannel(channel).
		SetPayload(map[string]interface{}{"seq": seq}).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return evt.ID
}

func TestEventService_GetEventsSince(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)
	channel := fmt.Sprintf("mission:%s", mc.MissionID)

	now := time.Now().UTC()
	var ids []int
	for i := 1; i <= 4; i++ {
		ids = append(ids, env.insertEvent(t, mc.MissionID, channel, now, i))
	}
	// An event on another channel must not leak into the result.
	env.insertEvent(t, mc.MissionID, "missions", now, 99)

	events, err := env.events.GetEventsSince(ctx, channel, ids[1], 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, ids[2], events[0].ID)
	assert.Equal(t, ids[3], events[1].ID)

	events, err = env.events.GetEventsSince(ctx, channel, 0, 3)
	require.NoError(t, err)
	assert.Len(t, events, 3, "limit caps the page size")

	events, err = env.events.GetEventsSince(ctx, channel, ids[3], 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventService_CleanupMissionEvents(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	keep := env.createMission(t)
	drop := env.createMission(t)

	now := time.Now().UTC()
	env.insertEvent(t, keep.MissionID, "missions", now, 1)
	env.insertEvent(t, drop.MissionID, "missions", now, 2)
	env.insertEvent(t, drop.MissionID, fmt.Sprintf("mission:%s", drop.MissionID), now, 3)

	count, err := env.events.CleanupMissionEvents(ctx, drop.MissionID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	remaining, err := env.events.GetEventsSince(ctx, "missions", 0, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.MissionID, remaining[0].MissionID)
}

func TestEventService_CleanupStaleEvents(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	env.insertEvent(t, mc.MissionID, "missions", time.Now().UTC().Add(-48*time.Hour), 1)
	env.insertEvent(t, mc.MissionID, "missions", time.Now().UTC(), 2)

	count, err := env.events.CleanupStaleEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := env.events.GetEventsSince(ctx, "missions", 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
