package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/maestro-research/maestro/ent"
	entmission "github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/models"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// activeStatuses are the mission states that count against the global
// concurrency limit.
var activeStatuses = []entmission.Status{
	entmission.StatusPlanning,
	entmission.StatusRunning,
	entmission.StatusPaused,
}

// Worker is a single queue worker that polls for and processes missions.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	runner   MissionRunner
	registry MissionRegistry
	loader   MissionLoader
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentMissionID  string
	missionsProcessed int
	lastActivity      time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, runner MissionRunner, registry MissionRegistry, loader MissionLoader) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		runner:       runner,
		registry:     registry,
		loader:       loader,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish. It is safe to
// call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentMissionID:  w.currentMissionID,
		MissionsProcessed: w.missionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoMissionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing mission", "error", err)
				w.sleep(time.Second) // brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a mission, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check. Best-effort: racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	activeCount, err := w.client.Mission.Query().
		Where(entmission.StatusIn(activeStatuses...)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active missions: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentMissions {
		return ErrAtCapacity
	}

	missionID, err := w.claimNextMission(ctx)
	if err != nil {
		return err
	}

	log := slog.With("mission_id", missionID, "worker_id", w.id)
	log.Info("Mission claimed")

	w.setStatus(WorkerStatusWorking, missionID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Hydrate the context store before the run loop touches the mission.
	if _, err := w.loader.Load(ctx, missionID); err != nil {
		w.markFailed(missionID, fmt.Sprintf("failed to load mission context: %v", err))
		return fmt.Errorf("loading mission %s: %w", missionID, err)
	}

	missionCtx, cancelMission := context.WithTimeout(ctx, w.config.MissionTimeout)
	defer cancelMission()

	w.registry.Register(missionID, cancelMission)
	defer w.registry.Cleanup(missionID)
	defer w.loader.Release(missionID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(missionCtx)
	defer cancelHeartbeat()
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.runHeartbeat(heartbeatCtx, missionID)
	}()

	runErr := w.runner.RunMission(missionCtx, missionID)
	cancelHeartbeat()

	w.settleTerminalStatus(missionID, missionCtx, runErr)

	w.mu.Lock()
	w.missionsProcessed++
	w.mu.Unlock()

	log.Info("Mission processing complete")
	return nil
}

// settleTerminalStatus covers the terminal-state gaps the runner cannot
// write itself: timeouts and shutdown while non-terminal. Completion,
// failure, and explicit stops were already persisted during the run.
func (w *Worker) settleTerminalStatus(missionID string, missionCtx context.Context, runErr error) {
	ctx := context.Background()

	mc, err := w.loader.Get(missionID)
	if err != nil || mc.Status.IsTerminal() {
		return
	}

	switch {
	case errors.Is(missionCtx.Err(), context.DeadlineExceeded):
		w.markFailed(missionID, fmt.Sprintf("mission timed out after %v", w.config.MissionTimeout))
	case runErr != nil:
		w.markFailed(missionID, runErr.Error())
	default:
		// Shutdown or external cancellation without a status write.
		if err := w.loader.UpdateStatus(ctx, missionID, models.StatusStopped, ""); err != nil {
			slog.Warn("Failed to mark interrupted mission stopped",
				"mission_id", missionID, "error", err)
		}
	}
}

func (w *Worker) markFailed(missionID, errorInfo string) {
	if err := w.loader.UpdateStatus(context.Background(), missionID, models.StatusFailed, errorInfo); err != nil {
		slog.Error("Failed to mark mission failed",
			"mission_id", missionID, "error", err)
	}
}

// claimNextMission atomically claims the oldest pending mission using
// FOR UPDATE SKIP LOCKED and flips it to planning with this pod's id.
func (w *Worker) claimNextMission(ctx context.Context) (string, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	mission, err := tx.Mission.Query().
		Where(
			entmission.StatusEQ(entmission.StatusPending),
			entmission.DeletedAtIsNil(),
		).
		Order(ent.Asc(entmission.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNoMissionsAvailable
		}
		return "", fmt.Errorf("failed to query pending mission: %w", err)
	}

	now := time.Now().UTC()
	_, err = mission.Update().
		SetStatus(entmission.StatusPlanning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to claim mission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit claim: %w", err)
	}
	return mission.ID, nil
}

// runHeartbeat periodically refreshes last_interaction_at for orphan
// detection. Runs for the whole mission, including while paused.
func (w *Worker) runHeartbeat(ctx context.Context, missionID string) {
	interval := w.config.HeartbeatInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Mission.UpdateOneID(missionID).
				SetLastInteractionAt(time.Now().UTC()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "mission_id", missionID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, missionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentMissionID = missionID
	w.lastActivity = time.Now()
}
