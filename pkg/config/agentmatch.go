package config

import "time"

// AgentMatchConfig tunes pair gating and match creation.
type AgentMatchConfig struct {
	// CooldownNotified blocks new missions after a completed mission that
	// produced no match, or a failed mission.
	CooldownNotified time.Duration `yaml:"cooldown_notified"`

	// CooldownMatched blocks new missions after a match was made.
	CooldownMatched time.Duration `yaml:"cooldown_matched"`

	// CooldownDeclined blocks new missions after a user declined a match.
	CooldownDeclined time.Duration `yaml:"cooldown_declined"`

	// InFlightLockTTL is the TTL on the per-pair single-flight lock. Must
	// cover the queue's mission timeout plus slack so a crashed holder
	// cannot block the pair forever.
	InFlightLockTTL time.Duration `yaml:"in_flight_lock_ttl"`

	// DefaultWorthItScore is used when the judge omits a confidence.
	DefaultWorthItScore float64 `yaml:"default_worth_it_score"`
}

// DefaultAgentMatchConfig returns the built-in gating defaults.
func DefaultAgentMatchConfig() *AgentMatchConfig {
	return &AgentMatchConfig{
		CooldownNotified:    6 * time.Hour,
		CooldownMatched:     24 * time.Hour,
		CooldownDeclined:    24 * time.Hour,
		InFlightLockTTL:     2*time.Minute + 30*time.Second,
		DefaultWorthItScore: 0.5,
	}
}
