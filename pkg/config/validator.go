package config

import (
	"fmt"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateLocation(); err != nil {
		return fmt.Errorf("location validation failed: %w", err)
	}

	if err := v.validateCollision(); err != nil {
		return fmt.Errorf("collision validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	// Agent-match depends on queue values (lock TTL vs mission timeout),
	// so queue is validated first.
	if err := v.validateAgentMatch(); err != nil {
		return fmt.Errorf("agent_match validation failed: %w", err)
	}

	if err := v.validateObserver(); err != nil {
		return fmt.Errorf("observer validation failed: %w", err)
	}

	if err := v.validateMaintenance(); err != nil {
		return fmt.Errorf("maintenance validation failed: %w", err)
	}

	if err := v.validateInterview(); err != nil {
		return fmt.Errorf("interview validation failed: %w", err)
	}

	if err := v.validateNotify(); err != nil {
		return fmt.Errorf("notify validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLocation() error {
	c := v.cfg.Location

	if c.MaxUpdateAge <= 0 {
		return NewValidationError("location", "max_update_age", fmt.Errorf("must be positive"))
	}
	if c.MinUpdateInterval <= 0 {
		return NewValidationError("location", "min_update_interval", fmt.Errorf("must be positive"))
	}
	if c.MinMovementMeters < 0 {
		return NewValidationError("location", "min_movement_meters", fmt.Errorf("must not be negative"))
	}
	if c.PositionCacheTTL <= 0 {
		return NewValidationError("location", "position_cache_ttl", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateCollision() error {
	c := v.cfg.Collision

	if c.MaxSearchRadiusMeters <= 0 {
		return NewValidationError("collision", "max_search_radius_meters", fmt.Errorf("must be positive"))
	}
	if c.SearchLimit < 1 {
		return NewValidationError("collision", "search_limit", fmt.Errorf("must be at least 1"))
	}
	if c.MaxCollisionsPerUpdate < 1 {
		return NewValidationError("collision", "max_collisions_per_update", fmt.Errorf("must be at least 1"))
	}
	if c.SpatialQueryTimeout <= 0 {
		return NewValidationError("collision", "spatial_query_timeout", fmt.Errorf("must be positive"))
	}
	if c.StabilityWindow <= 0 {
		return NewValidationError("collision", "stability_window", fmt.Errorf("must be positive"))
	}
	if c.InactivityWindow < c.StabilityWindow {
		return NewValidationError("collision", "inactivity_window",
			fmt.Errorf("must be at least stability_window (%s), got %s", c.StabilityWindow, c.InactivityWindow))
	}
	// Tracking state must outlive the inactivity window, otherwise pairs
	// vanish from Redis before scheduled promotion can expire them.
	if c.CacheTTL < c.InactivityWindow {
		return NewValidationError("collision", "cache_ttl",
			fmt.Errorf("must be at least inactivity_window (%s), got %s", c.InactivityWindow, c.CacheTTL))
	}

	return nil
}

func (v *ConfigValidator) validateAgentMatch() error {
	c := v.cfg.AgentMatch

	if c.CooldownNotified <= 0 {
		return NewValidationError("agent_match", "cooldown_notified", fmt.Errorf("must be positive"))
	}
	if c.CooldownMatched <= 0 {
		return NewValidationError("agent_match", "cooldown_matched", fmt.Errorf("must be positive"))
	}
	if c.CooldownDeclined <= 0 {
		return NewValidationError("agent_match", "cooldown_declined", fmt.Errorf("must be positive"))
	}
	// The lock guards one mission execution end to end. If it can expire
	// while the mission is still running, a second mission for the same
	// pair can slip in.
	if c.InFlightLockTTL <= v.cfg.Queue.MissionTimeout {
		return NewValidationError("agent_match", "in_flight_lock_ttl",
			fmt.Errorf("must exceed queue mission_timeout (%s), got %s", v.cfg.Queue.MissionTimeout, c.InFlightLockTTL))
	}
	if c.DefaultWorthItScore < 0 || c.DefaultWorthItScore > 1 {
		return NewValidationError("agent_match", "default_worth_it_score",
			fmt.Errorf("must be between 0 and 1, got %g", c.DefaultWorthItScore))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	c := v.cfg.Queue

	if c.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if c.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", fmt.Errorf("must be positive"))
	}
	if c.PollIntervalJitter < 0 {
		return NewValidationError("queue", "poll_interval_jitter", fmt.Errorf("must not be negative"))
	}
	if c.PollIntervalJitter >= c.PollInterval {
		return NewValidationError("queue", "poll_interval_jitter",
			fmt.Errorf("must be below poll_interval (%s), got %s", c.PollInterval, c.PollIntervalJitter))
	}
	if c.MissionTimeout <= 0 {
		return NewValidationError("queue", "mission_timeout", fmt.Errorf("must be positive"))
	}
	if c.GracefulShutdownTimeout <= 0 {
		return NewValidationError("queue", "graceful_shutdown_timeout", fmt.Errorf("must be positive"))
	}
	if c.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "heartbeat_interval", fmt.Errorf("must be positive"))
	}
	if c.OrphanDetectionInterval <= 0 {
		return NewValidationError("queue", "orphan_detection_interval", fmt.Errorf("must be positive"))
	}
	// A healthy worker must heartbeat several times before its claim can
	// be stolen, or orphan recovery redelivers live missions.
	if c.OrphanThreshold <= c.HeartbeatInterval*2 {
		return NewValidationError("queue", "orphan_threshold",
			fmt.Errorf("must exceed twice heartbeat_interval (%s), got %s", c.HeartbeatInterval, c.OrphanThreshold))
	}
	if c.MaxDeliveryAttempts < 1 {
		return NewValidationError("queue", "max_delivery_attempts", fmt.Errorf("must be at least 1"))
	}
	if c.RetryBackoffBase <= 0 {
		return NewValidationError("queue", "retry_backoff_base", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateObserver() error {
	c := v.cfg.Observer
	if !c.Enabled {
		return nil
	}

	if c.BufferSize < 1 {
		return NewValidationError("observer", "buffer_size", fmt.Errorf("must be at least 1"))
	}
	if c.BatchSize < 1 {
		return NewValidationError("observer", "batch_size", fmt.Errorf("must be at least 1"))
	}
	if c.BatchSize > c.BufferSize {
		return NewValidationError("observer", "batch_size",
			fmt.Errorf("must not exceed buffer_size (%d), got %d", c.BufferSize, c.BatchSize))
	}
	if c.BatchWait <= 0 {
		return NewValidationError("observer", "batch_wait", fmt.Errorf("must be positive"))
	}
	if c.StreamMaxLen < 1 {
		return NewValidationError("observer", "stream_max_len", fmt.Errorf("must be at least 1"))
	}
	if c.EventTTL <= 0 {
		return NewValidationError("observer", "event_ttl", fmt.Errorf("must be positive"))
	}
	if c.FailureThreshold < 1 {
		return NewValidationError("observer", "failure_threshold", fmt.Errorf("must be at least 1"))
	}
	if c.FailureWindow <= 0 {
		return NewValidationError("observer", "failure_window", fmt.Errorf("must be positive"))
	}
	if c.ResetTimeout <= 0 {
		return NewValidationError("observer", "reset_timeout", fmt.Errorf("must be positive"))
	}
	if c.SuccessThreshold < 1 {
		return NewValidationError("observer", "success_threshold", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateMaintenance() error {
	c := v.cfg.Maintenance

	if c.StabilityInterval <= 0 {
		return NewValidationError("maintenance", "stability_interval", fmt.Errorf("must be positive"))
	}
	if c.ExpiryInterval <= 0 {
		return NewValidationError("maintenance", "expiry_interval", fmt.Errorf("must be positive"))
	}
	if c.CollisionMaxAge <= 0 {
		return NewValidationError("maintenance", "collision_max_age", fmt.Errorf("must be positive"))
	}
	if c.MatchPendingMaxAge <= 0 {
		return NewValidationError("maintenance", "match_pending_max_age", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateInterview() error {
	c := v.cfg.Interview

	if c.RuntimeAddress == "" {
		return NewValidationError("system.interview", "runtime_address", fmt.Errorf("%w", ErrMissingRequiredField))
	}
	if c.MaxOwnerTurns < 1 {
		return NewValidationError("system.interview", "max_owner_turns", fmt.Errorf("must be at least 1"))
	}
	if c.TurnTimeout <= 0 {
		return NewValidationError("system.interview", "turn_timeout", fmt.Errorf("must be positive"))
	}
	if c.JudgeTimeout <= 0 {
		return NewValidationError("system.interview", "judge_timeout", fmt.Errorf("must be positive"))
	}
	if c.CallRetries < 0 {
		return NewValidationError("system.interview", "call_retries", fmt.Errorf("must not be negative"))
	}
	if c.CallRetries > 0 && c.RetryBackoff <= 0 {
		return NewValidationError("system.interview", "retry_backoff", fmt.Errorf("must be positive when retries are enabled"))
	}

	return nil
}

func (v *ConfigValidator) validateNotify() error {
	c := v.cfg.Notify
	if !c.Enabled {
		return nil
	}

	if c.WebhookURLEnv == "" {
		return NewValidationError("system.notify", "webhook_url_env", fmt.Errorf("%w", ErrMissingRequiredField))
	}
	if c.Timeout <= 0 {
		return NewValidationError("system.notify", "timeout", fmt.Errorf("must be positive"))
	}
	if c.SlackChannel != "" && c.SlackTokenEnv == "" {
		return NewValidationError("system.notify", "slack_token_env", fmt.Errorf("required when slack_channel is set"))
	}

	return nil
}
