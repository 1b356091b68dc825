// Package queue provides the mission queue: workers claim pending missions
// from the database with FOR UPDATE SKIP LOCKED, drive them through the
// controller, heartbeat while processing, and recover orphans left behind by
// dead replicas.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/maestro-research/maestro/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoMissionsAvailable indicates no pending missions are in the queue.
	ErrNoMissionsAvailable = errors.New("no missions available")

	// ErrAtCapacity indicates the global concurrent mission limit has been
	// reached.
	ErrAtCapacity = errors.New("at capacity")
)

// MissionRunner executes one claimed mission end to end. The runner owns the
// terminal status for completion and failure; the worker only covers the
// cases the runner cannot see (timeout, shutdown).
type MissionRunner interface {
	RunMission(ctx context.Context, missionID string) error
}

// MissionRegistry is the lifecycle manager surface the worker registers
// claimed missions with.
type MissionRegistry interface {
	Register(missionID string, cancel context.CancelFunc)
	Cleanup(missionID string)
}

// MissionLoader is the context store surface the worker hydrates missions
// through.
type MissionLoader interface {
	Load(ctx context.Context, missionID string) (*models.MissionContext, error)
	Get(missionID string) (*models.MissionContext, error)
	UpdateStatus(ctx context.Context, missionID string, status models.MissionStatus, errorInfo string) error
	Release(missionID string)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveMissions   int            `json:"active_missions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentMissionID  string    `json:"current_mission_id,omitempty"`
	MissionsProcessed int       `json:"missions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
