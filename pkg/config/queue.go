package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how missions are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes missions.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentMissions is the global limit of concurrent missions being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentMissions int `yaml:"max_concurrent_missions"`

	// PollInterval is the base interval for checking pending missions.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MissionTimeout is the maximum time a mission can be processed.
	MissionTimeout time.Duration `yaml:"mission_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active missions
	// to checkpoint during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes its mission's
	// last_interaction_at while processing.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned missions.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a mission can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		MaxConcurrentMissions:   8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MissionTimeout:          4 * time.Hour,
		GracefulShutdownTimeout: 30 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
