package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_CurrentAndVersions(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	_, err := env.store.AddReportVersion(ctx, mc.MissionID, "Battery chemistry", "# Draft one", "", true)
	require.NoError(t, err)
	_, err = env.store.AddReportVersion(ctx, mc.MissionID, "Battery chemistry", "# Draft two", "Second writing pass", true)
	require.NoError(t, err)

	current, err := env.reports.GetCurrentReport(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, 2, current.Version)
	assert.Equal(t, "# Draft two", current.Content)

	versions, err := env.reports.ListReportVersions(ctx, mc.MissionID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].Version, "newest first")
	assert.Equal(t, 1, versions[1].Version)

	v1, err := env.reports.GetReportVersion(ctx, mc.MissionID, 1)
	require.NoError(t, err)
	assert.Equal(t, "# Draft one", v1.Content)
}

func TestReportService_GetCurrentReport_NoneYet(t *testing.T) {
	env := setupServices(t)
	mc := env.createMission(t)

	_, err := env.reports.GetCurrentReport(context.Background(), mc.MissionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportService_SetCurrentReportVersion(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	_, err := env.store.AddReportVersion(ctx, mc.MissionID, "Report", "v1", "", true)
	require.NoError(t, err)
	_, err = env.store.AddReportVersion(ctx, mc.MissionID, "Report", "v2", "", true)
	require.NoError(t, err)

	require.NoError(t, env.reports.SetCurrentReportVersion(ctx, mc.MissionID, 1))

	current, err := env.reports.GetCurrentReport(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.Version)

	row, err := env.missions.GetMission(ctx, mc.MissionID)
	require.NoError(t, err)
	require.NotNil(t, row.CurrentReportVersion)
	assert.Equal(t, 1, *row.CurrentReportVersion)
}

func TestReportService_SetCurrentLoadsReleasedMission(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	_, err := env.store.AddReportVersion(ctx, mc.MissionID, "Report", "v1", "", true)
	require.NoError(t, err)
	_, err = env.store.AddReportVersion(ctx, mc.MissionID, "Report", "v2", "", true)
	require.NoError(t, err)

	// Simulate a mission long since released from memory.
	env.store.Release(mc.MissionID)

	require.NoError(t, env.reports.SetCurrentReportVersion(ctx, mc.MissionID, 1))
	current, err := env.reports.GetCurrentReport(ctx, mc.MissionID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.Version)
}

func TestReportService_SetCurrent_UnknownVersion(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	mc := env.createMission(t)

	_, err := env.store.AddReportVersion(ctx, mc.MissionID, "Report", "v1", "", true)
	require.NoError(t, err)

	err = env.reports.SetCurrentReportVersion(ctx, mc.MissionID, 7)
	assert.Error(t, err)
}
