package config

import "time"

// ObserverConfig tunes the observer event bus.
type ObserverConfig struct {
	// Enabled gates the whole observer layer.
	Enabled bool `yaml:"enabled"`

	// BufferSize is the emit channel capacity. A full buffer drops.
	BufferSize int `yaml:"buffer_size"`

	// BatchSize flushes as soon as this many events are buffered.
	BatchSize int `yaml:"batch_size"`

	// BatchWait flushes a partial batch after this long.
	BatchWait time.Duration `yaml:"batch_wait"`

	// StreamMaxLen is the approximate cap on each event stream.
	StreamMaxLen int64 `yaml:"stream_max_len"`

	// EventTTL is how long individual event records live.
	EventTTL time.Duration `yaml:"event_ttl"`

	// Circuit breaker on the flush path.
	FailureThreshold int           `yaml:"failure_threshold"`
	FailureWindow    time.Duration `yaml:"failure_window"`
	ResetTimeout     time.Duration `yaml:"reset_timeout"`
	SuccessThreshold int           `yaml:"success_threshold"`
}

// DefaultObserverConfig returns the built-in bus defaults.
func DefaultObserverConfig() *ObserverConfig {
	return &ObserverConfig{
		Enabled:          true,
		BufferSize:       1000,
		BatchSize:        50,
		BatchWait:        100 * time.Millisecond,
		StreamMaxLen:     10000,
		EventTTL:         time.Hour,
		FailureThreshold: 5,
		FailureWindow:    60 * time.Second,
		ResetTimeout:     30 * time.Second,
		SuccessThreshold: 3,
	}
}
