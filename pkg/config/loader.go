package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// VenndYAMLConfig represents the complete vennd.yaml file structure.
type VenndYAMLConfig struct {
	Location    *LocationConfig    `yaml:"location"`
	Collision   *CollisionConfig   `yaml:"collision"`
	AgentMatch  *AgentMatchConfig  `yaml:"agent_match"`
	Queue       *QueueConfig       `yaml:"queue"`
	Observer    *ObserverConfig    `yaml:"observer"`
	Maintenance *MaintenanceConfig `yaml:"maintenance"`
	System      *SystemYAMLConfig  `yaml:"system"`
}

// SystemYAMLConfig groups external collaborator settings.
type SystemYAMLConfig struct {
	Interview *InterviewConfig `yaml:"interview"`
	Notify    *NotifyConfig    `yaml:"notify"`
}

// Initialize loads, merges, validates, and returns ready-to-use
// configuration. This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load vennd.yaml from configDir
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Merge user values over built-in defaults (per section)
//  4. Validate everything
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"queue_workers", cfg.Queue.WorkerCount,
		"observer_enabled", cfg.Observer.Enabled,
		"notify_enabled", cfg.Notify.Enabled)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	var yamlCfg VenndYAMLConfig
	if err := loadYAML(filepath.Join(configDir, "vennd.yaml"), &yamlCfg); err != nil {
		return nil, NewLoadError("vennd.yaml", err)
	}

	cfg := &Config{
		configDir:   configDir,
		Location:    DefaultLocationConfig(),
		Collision:   DefaultCollisionConfig(),
		AgentMatch:  DefaultAgentMatchConfig(),
		Queue:       DefaultQueueConfig(),
		Observer:    DefaultObserverConfig(),
		Maintenance: DefaultMaintenanceConfig(),
		Interview:   DefaultInterviewConfig(),
		Notify:      DefaultNotifyConfig(),
	}

	// Merge user-provided sections into defaults; non-zero values override.
	var sysInterview *InterviewConfig
	var sysNotify *NotifyConfig
	if yamlCfg.System != nil {
		sysInterview = yamlCfg.System.Interview
		sysNotify = yamlCfg.System.Notify
	}
	if err := mergeAll(
		mergeSection("location", cfg.Location, yamlCfg.Location),
		mergeSection("collision", cfg.Collision, yamlCfg.Collision),
		mergeSection("agent_match", cfg.AgentMatch, yamlCfg.AgentMatch),
		mergeSection("queue", cfg.Queue, yamlCfg.Queue),
		mergeSection("observer", cfg.Observer, yamlCfg.Observer),
		mergeSection("maintenance", cfg.Maintenance, yamlCfg.Maintenance),
		mergeSection("system.interview", cfg.Interview, sysInterview),
		mergeSection("system.notify", cfg.Notify, sysNotify),
	); err != nil {
		return nil, err
	}

	// Booleans cannot ride mergo's non-zero override, so carry explicit
	// flags over directly.
	if yamlCfg.Observer != nil {
		cfg.Observer.Enabled = yamlCfg.Observer.Enabled
	}
	if sysNotify != nil {
		cfg.Notify.Enabled = sysNotify.Enabled
	}

	return cfg, nil
}

// mergeSection merges src over dst when the section is present in YAML.
func mergeSection[T any](name string, dst, src *T) error {
	if src == nil {
		return nil
	}
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge %s config: %w", name, err)
	}
	return nil
}

func mergeAll(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func loadYAML(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes the original data through on template errors so the
	// YAML parser can produce the clearer message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}

func validate(cfg *Config) error {
	return NewValidator(cfg).ValidateAll()
}
