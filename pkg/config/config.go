// Package config loads, merges, and validates service configuration.
//
// Configuration comes from a single vennd.yaml in the config directory,
// with {{.ENV_VAR}} template expansion, merged over built-in defaults.
// Database and Redis connection settings stay in environment variables
// (see pkg/database and pkg/kvstore).
package config

// Config is the umbrella configuration object returned by Initialize and
// threaded through the application.
type Config struct {
	configDir string

	Location    *LocationConfig
	Collision   *CollisionConfig
	AgentMatch  *AgentMatchConfig
	Queue       *QueueConfig
	Observer    *ObserverConfig
	Maintenance *MaintenanceConfig
	Interview   *InterviewConfig
	Notify      *NotifyConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
