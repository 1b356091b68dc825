// Package lifecycle tracks the missions currently executing on this replica
// and owns their cancellation and pause primitives. Cancellation is
// cooperative: workers check ShouldContinue at every suspension point and
// exit cleanly; nothing is ever force-killed.
package lifecycle

import (
	"context"
	"log/slog"
	"sync"

	"github.com/maestro-research/maestro/pkg/models"
)

// StatusWriter flips mission statuses on pause/resume/stop. Implemented by
// the context store.
type StatusWriter interface {
	UpdateStatus(ctx context.Context, missionID string, status models.MissionStatus, errorInfo string) error
	Status(missionID string) (models.MissionStatus, error)
}

// handle is the per-mission control block.
type handle struct {
	cancel context.CancelFunc

	mu     sync.Mutex
	paused bool
	// resumeTo is the status the mission was paused from; Resume restores it.
	resumeTo models.MissionStatus
	// gate is closed while the mission may run. Pausing swaps in an open
	// channel; resuming closes it, releasing every WaitIfPaused waiter.
	gate chan struct{}
}

func newHandle(cancel context.CancelFunc) *handle {
	g := make(chan struct{})
	close(g)
	return &handle{cancel: cancel, gate: g}
}

func (h *handle) currentGate() chan struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.gate
}

// Manager is the in-memory registry of running missions.
type Manager struct {
	status StatusWriter
	logger *slog.Logger

	mu       sync.RWMutex
	missions map[string]*handle
}

// NewManager creates a Manager. status may be nil in tests that only
// exercise the registry.
func NewManager(status StatusWriter) *Manager {
	return &Manager{
		status:   status,
		logger:   slog.With("component", "lifecycle"),
		missions: make(map[string]*handle),
	}
}

// Register adds a mission to the registry with its cancel function. Called
// by the worker when it claims a mission, before the run loop starts.
func (m *Manager) Register(missionID string, cancel context.CancelFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.missions[missionID] = newHandle(cancel)
}

// Cleanup removes a mission's tracking entries after its worker has exited.
// Any goroutine still blocked in WaitIfPaused is released.
func (m *Manager) Cleanup(missionID string) {
	m.mu.Lock()
	h, ok := m.missions[missionID]
	delete(m.missions, missionID)
	m.mu.Unlock()
	if ok {
		h.mu.Lock()
		if h.paused {
			h.paused = false
			close(h.gate)
		}
		h.mu.Unlock()
	}
}

// Pause flips the mission to paused and closes its run gate. The worker
// blocks at its next WaitIfPaused call; in-flight work is not interrupted.
// Returns false if the mission is not running on this replica.
func (m *Manager) Pause(ctx context.Context, missionID string) bool {
	h := m.handle(missionID)
	if h == nil {
		return false
	}

	// A pause may land while the planner is still working; remember what to
	// resume to.
	resumeTo := models.StatusRunning
	if m.status != nil {
		if cur, err := m.status.Status(missionID); err == nil && cur == models.StatusPlanning {
			resumeTo = models.StatusPlanning
		}
	}

	h.mu.Lock()
	if h.paused {
		h.mu.Unlock()
		return true
	}
	h.paused = true
	h.resumeTo = resumeTo
	h.gate = make(chan struct{})
	h.mu.Unlock()

	if m.status != nil {
		if err := m.status.UpdateStatus(ctx, missionID, models.StatusPaused, ""); err != nil {
			m.logger.Warn("Failed to persist paused status", "mission_id", missionID, "error", err)
		}
	}
	return true
}

// Resume releases a paused mission's gate and restores the status it was
// paused from. Returns false if the mission is unknown or not paused.
func (m *Manager) Resume(ctx context.Context, missionID string) bool {
	h := m.handle(missionID)
	if h == nil {
		return false
	}

	h.mu.Lock()
	if !h.paused {
		h.mu.Unlock()
		return false
	}
	h.paused = false
	target := h.resumeTo
	close(h.gate)
	h.mu.Unlock()

	if target == "" {
		target = models.StatusRunning
	}
	if m.status != nil {
		if err := m.status.UpdateStatus(ctx, missionID, target, ""); err != nil {
			m.logger.Warn("Failed to persist resumed status", "mission_id", missionID, "error", err)
		}
	}
	return true
}

// Stop flips the mission to stopped and signals its cancel token. A paused
// mission is released first so the worker can observe the cancellation.
// Returns false if the mission is not running on this replica.
func (m *Manager) Stop(ctx context.Context, missionID string) bool {
	h := m.handle(missionID)
	if h == nil {
		return false
	}

	if m.status != nil {
		if err := m.status.UpdateStatus(ctx, missionID, models.StatusStopped, ""); err != nil {
			m.logger.Warn("Failed to persist stopped status", "mission_id", missionID, "error", err)
		}
	}

	h.mu.Lock()
	if h.paused {
		h.paused = false
		close(h.gate)
	}
	h.mu.Unlock()

	h.cancel()
	return true
}

// StopAll signals every registered mission and returns how many were
// signalled. Used during graceful shutdown.
func (m *Manager) StopAll(ctx context.Context) int {
	ids := m.ListRunning()
	count := 0
	for _, id := range ids {
		if m.Stop(ctx, id) {
			count++
		}
	}
	return count
}

// IsRunning reports whether the mission is registered on this replica.
func (m *Manager) IsRunning(missionID string) bool {
	return m.handle(missionID) != nil
}

// IsPaused reports whether the mission is currently paused.
func (m *Manager) IsPaused(missionID string) bool {
	h := m.handle(missionID)
	if h == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paused
}

// ListRunning returns the ids of all registered missions.
func (m *Manager) ListRunning() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.missions))
	for id := range m.missions {
		ids = append(ids, id)
	}
	return ids
}

// ShouldContinue reports whether the mission's work loop may proceed.
// False once the run context is cancelled or the mission was cleaned up.
func (m *Manager) ShouldContinue(ctx context.Context, missionID string) bool {
	if ctx.Err() != nil {
		return false
	}
	return m.IsRunning(missionID)
}

// WaitIfPaused blocks while the mission is paused. Returns the context error
// if the run context is cancelled during the wait; cancellation always wins
// over resumption. A nil return means the caller may proceed.
func (m *Manager) WaitIfPaused(ctx context.Context, missionID string) error {
	for {
		h := m.handle(missionID)
		if h == nil {
			return nil
		}
		gate := h.currentGate()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-gate:
		}
		// Re-check: the mission may have been paused again between the gate
		// release and now.
		if !m.IsPaused(missionID) {
			return nil
		}
	}
}

func (m *Manager) handle(missionID string) *handle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.missions[missionID]
}
