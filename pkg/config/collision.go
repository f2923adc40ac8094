package config

import "time"

// CollisionConfig tunes spatial candidate search and stability tracking.
type CollisionConfig struct {
	// MaxSearchRadiusMeters bounds the candidate query regardless of
	// circle radius.
	MaxSearchRadiusMeters float64 `yaml:"max_search_radius_meters"`

	// SearchLimit caps candidates returned per circle, nearest first.
	SearchLimit int `yaml:"search_limit"`

	// MaxCollisionsPerUpdate caps collisions processed per circle per
	// location update, nearest first.
	MaxCollisionsPerUpdate int `yaml:"max_collisions_per_update"`

	// SpatialQueryTimeout is the soft deadline on one candidate query;
	// on expiry the circle contributes no candidates.
	SpatialQueryTimeout time.Duration `yaml:"spatial_query_timeout"`

	// StabilityWindow is how long a pair must stay in collision before it
	// is promoted to stable.
	StabilityWindow time.Duration `yaml:"stability_window"`

	// InactivityWindow is how long a pair may go unseen before scheduled
	// promotion expires it instead.
	InactivityWindow time.Duration `yaml:"inactivity_window"`

	// CacheTTL is the lifetime of the per-pair stability hash in Redis.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// DefaultCollisionConfig returns the built-in detection defaults.
func DefaultCollisionConfig() *CollisionConfig {
	return &CollisionConfig{
		MaxSearchRadiusMeters:  5000,
		SearchLimit:            50,
		MaxCollisionsPerUpdate: 10,
		SpatialQueryTimeout:    5 * time.Second,
		StabilityWindow:        60 * time.Second,
		InactivityWindow:       120 * time.Second,
		CacheTTL:               10 * time.Minute,
	}
}
