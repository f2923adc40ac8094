package config

import "time"

// LocationConfig tunes location update admission.
type LocationConfig struct {
	// MaxUpdateAge rejects stale client timestamps.
	MaxUpdateAge time.Duration `yaml:"max_update_age"`

	// MinUpdateInterval is the minimum time between admitted updates per
	// user. Tighter than any edge rate limit; enforced by the service.
	MinUpdateInterval time.Duration `yaml:"min_update_interval"`

	// MinMovementMeters is the minimum displacement from the last admitted
	// position for an update to be admitted.
	MinMovementMeters float64 `yaml:"min_movement_meters"`

	// PositionCacheTTL is the lifetime of the cached position in Redis.
	PositionCacheTTL time.Duration `yaml:"position_cache_ttl"`
}

// DefaultLocationConfig returns the built-in admission defaults.
func DefaultLocationConfig() *LocationConfig {
	return &LocationConfig{
		MaxUpdateAge:      30 * time.Second,
		MinUpdateInterval: 3 * time.Second,
		MinMovementMeters: 20,
		PositionCacheTTL:  1 * time.Hour,
	}
}
