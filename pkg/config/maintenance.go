package config

import "time"

// MaintenanceConfig tunes the background sweepers.
type MaintenanceConfig struct {
	// StabilityInterval is how often the stability sweeper promotes or
	// expires tracked pairs.
	StabilityInterval time.Duration `yaml:"stability_interval"`

	// ExpiryInterval is how often stale collision events and unanswered
	// matches are expired.
	ExpiryInterval time.Duration `yaml:"expiry_interval"`

	// CollisionMaxAge expires collision events that never reached a
	// terminal state.
	CollisionMaxAge time.Duration `yaml:"collision_max_age"`

	// MatchPendingMaxAge expires matches nobody accepted.
	MatchPendingMaxAge time.Duration `yaml:"match_pending_max_age"`
}

// DefaultMaintenanceConfig returns the built-in sweeper defaults.
func DefaultMaintenanceConfig() *MaintenanceConfig {
	return &MaintenanceConfig{
		StabilityInterval:  5 * time.Second,
		ExpiryInterval:     10 * time.Minute,
		CollisionMaxAge:    48 * time.Hour,
		MatchPendingMaxAge: 24 * time.Hour,
	}
}
