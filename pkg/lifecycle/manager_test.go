package lifecycle

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/models"
)

type statusChange struct {
	missionID string
	status    models.MissionStatus
}

type fakeStatusWriter struct {
	mu      sync.Mutex
	current models.MissionStatus
	changes []statusChange
	err     error
}

func (f *fakeStatusWriter) UpdateStatus(_ context.Context, missionID string, status models.MissionStatus, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes = append(f.changes, statusChange{missionID, status})
	if f.err == nil {
		f.current = status
	}
	return f.err
}

func (f *fakeStatusWriter) Status(string) (models.MissionStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == "" {
		return models.StatusRunning, nil
	}
	return f.current, nil
}

func (f *fakeStatusWriter) last() (statusChange, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.changes) == 0 {
		return statusChange{}, false
	}
	return f.changes[len(f.changes)-1], true
}

func TestManager_RegisterAndCleanup(t *testing.T) {
	m := NewManager(nil)
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.Register("m1", cancel)
	assert.True(t, m.IsRunning("m1"))
	assert.Contains(t, m.ListRunning(), "m1")

	m.Cleanup("m1")
	assert.False(t, m.IsRunning("m1"))
	assert.Empty(t, m.ListRunning())
}

func TestManager_PauseResume(t *testing.T) {
	status := &fakeStatusWriter{}
	m := NewManager(status)
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Register("m1", cancel)

	require.True(t, m.Pause(context.Background(), "m1"))
	assert.True(t, m.IsPaused("m1"))
	change, ok := status.last()
	require.True(t, ok)
	assert.Equal(t, models.StatusPaused, change.status)

	// Pausing again is a no-op that still reports success.
	require.True(t, m.Pause(context.Background(), "m1"))

	require.True(t, m.Resume(context.Background(), "m1"))
	assert.False(t, m.IsPaused("m1"))
	change, ok = status.last()
	require.True(t, ok)
	assert.Equal(t, models.StatusRunning, change.status)

	// Resuming a mission that is not paused fails.
	assert.False(t, m.Resume(context.Background(), "m1"))
}

func TestManager_PauseDuringPlanningResumesToPlanning(t *testing.T) {
	status := &fakeStatusWriter{current: models.StatusPlanning}
	m := NewManager(status)
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Register("m1", cancel)

	require.True(t, m.Pause(context.Background(), "m1"))
	change, ok := status.last()
	require.True(t, ok)
	assert.Equal(t, models.StatusPaused, change.status)

	require.True(t, m.Resume(context.Background(), "m1"))
	change, ok = status.last()
	require.True(t, ok)
	assert.Equal(t, models.StatusPlanning, change.status)
}

func TestManager_PauseUnknownMission(t *testing.T) {
	m := NewManager(nil)
	assert.False(t, m.Pause(context.Background(), "nope"))
	assert.False(t, m.Resume(context.Background(), "nope"))
	assert.False(t, m.Stop(context.Background(), "nope"))
}

func TestManager_Stop(t *testing.T) {
	status := &fakeStatusWriter{}
	m := NewManager(status)
	runCtx, cancel := context.WithCancel(context.Background())
	m.Register("m1", cancel)

	require.True(t, m.Stop(context.Background(), "m1"))

	// Cancel token fired.
	select {
	case <-runCtx.Done():
	default:
		t.Fatal("expected run context to be cancelled")
	}

	change, ok := status.last()
	require.True(t, ok)
	assert.Equal(t, models.StatusStopped, change.status)
}

func TestManager_StopReleasesPausedWorker(t *testing.T) {
	m := NewManager(&fakeStatusWriter{})
	runCtx, cancel := context.WithCancel(context.Background())
	m.Register("m1", cancel)
	require.True(t, m.Pause(context.Background(), "m1"))

	released := make(chan error, 1)
	go func() {
		released <- m.WaitIfPaused(runCtx, "m1")
	}()

	// The waiter is blocked on the pause gate.
	select {
	case <-released:
		t.Fatal("waiter should be blocked while paused")
	case <-time.After(50 * time.Millisecond):
	}

	require.True(t, m.Stop(context.Background(), "m1"))

	select {
	case err := <-released:
		// Either the gate release or the cancellation may win the select;
		// both let the worker observe the stop at its next check.
		if err != nil {
			assert.ErrorIs(t, err, context.Canceled)
		}
	case <-time.After(time.Second):
		t.Fatal("waiter was not released by Stop")
	}
	assert.False(t, m.ShouldContinue(runCtx, "m1"))
}

func TestManager_StopAll(t *testing.T) {
	m := NewManager(&fakeStatusWriter{})
	var cancels []context.CancelFunc
	for _, id := range []string{"m1", "m2", "m3"} {
		_, cancel := context.WithCancel(context.Background())
		cancels = append(cancels, cancel)
		m.Register(id, cancel)
	}
	defer func() {
		for _, c := range cancels {
			c()
		}
	}()

	assert.Equal(t, 3, m.StopAll(context.Background()))
	// Registry entries remain until each worker exits and calls Cleanup.
	assert.Len(t, m.ListRunning(), 3)
}

func TestManager_ShouldContinue(t *testing.T) {
	m := NewManager(nil)
	runCtx, cancel := context.WithCancel(context.Background())
	m.Register("m1", cancel)

	assert.True(t, m.ShouldContinue(runCtx, "m1"))

	cancel()
	assert.False(t, m.ShouldContinue(runCtx, "m1"))

	// Unknown missions never continue.
	assert.False(t, m.ShouldContinue(context.Background(), "ghost"))
}

func TestManager_WaitIfPaused_NotPausedReturnsImmediately(t *testing.T) {
	m := NewManager(nil)
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Register("m1", cancel)

	done := make(chan error, 1)
	go func() { done <- m.WaitIfPaused(context.Background(), "m1") }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("WaitIfPaused blocked on a running mission")
	}
}

func TestManager_WaitIfPaused_ResumedWaiterProceeds(t *testing.T) {
	m := NewManager(&fakeStatusWriter{})
	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Register("m1", cancel)
	require.True(t, m.Pause(context.Background(), "m1"))

	done := make(chan error, 1)
	go func() { done <- m.WaitIfPaused(runCtx, "m1") }()

	select {
	case <-done:
		t.Fatal("waiter should be blocked while paused")
	case <-time.After(50 * time.Millisecond):
	}

	require.True(t, m.Resume(context.Background(), "m1"))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("waiter was not released by Resume")
	}
}

func TestManager_WaitIfPaused_CancellationWins(t *testing.T) {
	m := NewManager(&fakeStatusWriter{})
	runCtx, cancel := context.WithCancel(context.Background())
	m.Register("m1", cancel)
	require.True(t, m.Pause(context.Background(), "m1"))

	done := make(chan error, 1)
	go func() { done <- m.WaitIfPaused(runCtx, "m1") }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("waiter was not released by cancellation")
	}
}

func TestManager_CleanupReleasesPausedWaiters(t *testing.T) {
	m := NewManager(&fakeStatusWriter{})
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Register("m1", cancel)
	require.True(t, m.Pause(context.Background(), "m1"))

	done := make(chan error, 1)
	go func() { done <- m.WaitIfPaused(context.Background(), "m1") }()

	m.Cleanup("m1")
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("waiter was not released by Cleanup")
	}
}
