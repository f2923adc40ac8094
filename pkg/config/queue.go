package config

import "time"

// QueueConfig contains mission queue and worker pool configuration.
// These values control how pending missions are polled, claimed, and
// redelivered.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and claims missions.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking pending missions.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MissionTimeout is the maximum time one mission execution may take.
	MissionTimeout time.Duration `yaml:"mission_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// missions to complete during shutdown. Should match MissionTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes its claim.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for stalled claims.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a running mission can go without a
	// heartbeat before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// MaxDeliveryAttempts bounds redeliveries of one mission row. Past
	// this the mission is failed through the result handler.
	MaxDeliveryAttempts int `yaml:"max_delivery_attempts"`

	// RetryBackoffBase is the base of the exponential redelivery backoff:
	// next_attempt_at = now + base * 2^(attempts-1).
	RetryBackoffBase time.Duration `yaml:"retry_backoff_base"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MissionTimeout:          2 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
		HeartbeatInterval:       15 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         90 * time.Second,
		MaxDeliveryAttempts:     3,
		RetryBackoffBase:        1 * time.Second,
	}
}
