package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/maestro-research/maestro/ent"
	entmission "github.com/maestro-research/maestro/ent/mission"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned missions.
// All pods run this independently; the recovery writes are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds active missions with stale heartbeats and
// marks them failed. A mission on a dead pod has lost its in-memory agent
// state and cannot be resumed; the user re-runs it.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Mission.Query().
		Where(
			entmission.StatusIn(activeStatuses...),
			entmission.LastInteractionAtNotNil(),
			entmission.LastInteractionAtLT(threshold),
			entmission.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned missions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned missions", "count", len(orphans))

	recovered := 0
	for _, mission := range orphans {
		if err := p.recoverOrphanedMission(ctx, mission); err != nil {
			slog.Error("Failed to recover orphaned mission",
				"mission_id", mission.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedMission marks a single orphaned mission as failed.
func (p *WorkerPool) recoverOrphanedMission(ctx context.Context, mission *ent.Mission) error {
	log := slog.With("mission_id", mission.ID)

	lastHeartbeat := "unknown"
	if mission.LastInteractionAt != nil {
		lastHeartbeat = mission.LastInteractionAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if mission.PodID != nil {
		podID = *mission.PodID
	}

	err := mission.Update().
		SetStatus(entmission.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorInfo(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark mission as failed: %w", err)
	}

	log.Warn("Orphaned mission marked as failed",
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of missions owned by this
// pod that were still active when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Mission.Query().
		Where(
			entmission.StatusIn(activeStatuses...),
			entmission.PodIDEQ(podID),
			entmission.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, mission := range orphans {
		err := mission.Update().
			SetStatus(entmission.StatusFailed).
			SetCompletedAt(now).
			SetErrorInfo(fmt.Sprintf("Orphaned: pod %s restarted while mission was active", podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"mission_id", mission.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan recovered", "mission_id", mission.ID)
	}

	return nil
}
