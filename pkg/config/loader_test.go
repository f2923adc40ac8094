package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "vennd.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

func TestInitialize(t *testing.T) {
	configDir := writeConfig(t, `
location:
  min_movement_meters: 35
queue:
  worker_count: 8
system:
  interview:
    runtime_address: "interview.internal:50061"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// User values override defaults.
	assert.Equal(t, float64(35), cfg.Location.MinMovementMeters)
	assert.Equal(t, 8, cfg.Queue.WorkerCount)
	assert.Equal(t, "interview.internal:50061", cfg.Interview.RuntimeAddress)

	// Unset fields keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Location.MaxUpdateAge)
	assert.Equal(t, 60*time.Second, cfg.Collision.StabilityWindow)
	assert.Equal(t, 3, cfg.Queue.MaxDeliveryAttempts)
	assert.Equal(t, 3, cfg.Interview.MaxOwnerTurns)
	assert.Equal(t, configDir, cfg.ConfigDir())
}

func TestInitializeMinimalConfig(t *testing.T) {
	// An empty file yields pure defaults.
	configDir := writeConfig(t, "")

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	assert.Equal(t, DefaultLocationConfig(), cfg.Location)
	assert.Equal(t, DefaultCollisionConfig(), cfg.Collision)
	assert.Equal(t, DefaultAgentMatchConfig(), cfg.AgentMatch)
	assert.Equal(t, DefaultQueueConfig(), cfg.Queue)
	assert.Equal(t, DefaultMaintenanceConfig(), cfg.Maintenance)
	assert.Equal(t, DefaultInterviewConfig(), cfg.Interview)
}

func TestInitializeObserverDisabled(t *testing.T) {
	// Booleans ride the explicit carryover, not mergo, so enabled: false
	// must stick even though it is the zero value.
	configDir := writeConfig(t, `
observer:
  enabled: false
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.False(t, cfg.Observer.Enabled)
	assert.Equal(t, 1000, cfg.Observer.BufferSize)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_INTERVIEW_ADDR", "runtime:50099")

	configDir := writeConfig(t, `
system:
  interview:
    runtime_address: "{{.TEST_INTERVIEW_ADDR}}"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.Equal(t, "runtime:50099", cfg.Interview.RuntimeAddress)
}

func TestInitializeConfigNotFound(t *testing.T) {
	_, err := Initialize(context.Background(), "/nonexistent/directory")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := writeConfig(t, "queue: [broken")

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := writeConfig(t, `
queue:
  worker_count: -2
`)

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "worker_count")
}
