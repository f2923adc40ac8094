package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestConfig() *Config {
	return &Config{
		Location:    DefaultLocationConfig(),
		Collision:   DefaultCollisionConfig(),
		AgentMatch:  DefaultAgentMatchConfig(),
		Queue:       DefaultQueueConfig(),
		Observer:    DefaultObserverConfig(),
		Maintenance: DefaultMaintenanceConfig(),
		Interview:   DefaultInterviewConfig(),
		Notify:      DefaultNotifyConfig(),
	}
}

func TestValidateAllDefaults(t *testing.T) {
	// The built-in defaults must validate as-is.
	err := NewValidator(defaultTestConfig()).ValidateAll()
	require.NoError(t, err)
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "zero max update age",
			mutate: func(c *Config) { c.Location.MaxUpdateAge = 0 },
			errMsg: "max_update_age",
		},
		{
			name:   "negative minimum movement",
			mutate: func(c *Config) { c.Location.MinMovementMeters = -1 },
			errMsg: "min_movement_meters",
		},
		{
			name:   "zero search limit",
			mutate: func(c *Config) { c.Collision.SearchLimit = 0 },
			errMsg: "search_limit",
		},
		{
			name:   "inactivity window below stability window",
			mutate: func(c *Config) { c.Collision.InactivityWindow = 30 * time.Second },
			errMsg: "inactivity_window",
		},
		{
			name:   "cache TTL below inactivity window",
			mutate: func(c *Config) { c.Collision.CacheTTL = time.Minute },
			errMsg: "cache_ttl",
		},
		{
			name:   "lock TTL does not cover mission timeout",
			mutate: func(c *Config) { c.AgentMatch.InFlightLockTTL = 30 * time.Second },
			errMsg: "in_flight_lock_ttl",
		},
		{
			name:   "worth-it score above 1",
			mutate: func(c *Config) { c.AgentMatch.DefaultWorthItScore = 1.5 },
			errMsg: "default_worth_it_score",
		},
		{
			name:   "zero workers",
			mutate: func(c *Config) { c.Queue.WorkerCount = 0 },
			errMsg: "worker_count",
		},
		{
			name:   "jitter at poll interval",
			mutate: func(c *Config) { c.Queue.PollIntervalJitter = c.Queue.PollInterval },
			errMsg: "poll_interval_jitter",
		},
		{
			name:   "orphan threshold inside heartbeat budget",
			mutate: func(c *Config) { c.Queue.OrphanThreshold = 20 * time.Second },
			errMsg: "orphan_threshold",
		},
		{
			name:   "zero delivery attempts",
			mutate: func(c *Config) { c.Queue.MaxDeliveryAttempts = 0 },
			errMsg: "max_delivery_attempts",
		},
		{
			name:   "batch size above buffer size",
			mutate: func(c *Config) { c.Observer.BatchSize = c.Observer.BufferSize + 1 },
			errMsg: "batch_size",
		},
		{
			name:   "zero stability interval",
			mutate: func(c *Config) { c.Maintenance.StabilityInterval = 0 },
			errMsg: "stability_interval",
		},
		{
			name:   "missing runtime address",
			mutate: func(c *Config) { c.Interview.RuntimeAddress = "" },
			errMsg: "runtime_address",
		},
		{
			name:   "zero owner turns",
			mutate: func(c *Config) { c.Interview.MaxOwnerTurns = 0 },
			errMsg: "max_owner_turns",
		},
		{
			name: "notify enabled without webhook env name",
			mutate: func(c *Config) {
				c.Notify.Enabled = true
				c.Notify.WebhookURLEnv = ""
			},
			errMsg: "webhook_url_env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultTestConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			var validErr *ValidationError
			assert.ErrorAs(t, err, &validErr)
		})
	}
}

func TestValidateDisabledSectionsSkipped(t *testing.T) {
	cfg := defaultTestConfig()

	// Disabled observer and notify sections are not validated, so broken
	// values in them must not fail initialization.
	cfg.Observer.Enabled = false
	cfg.Observer.BufferSize = 0
	cfg.Notify.Enabled = false
	cfg.Notify.WebhookURLEnv = ""

	err := NewValidator(cfg).ValidateAll()
	assert.NoError(t, err)
}
