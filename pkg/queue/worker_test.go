package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/models"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MissionTimeout:          30 * time.Second,
		GracefulShutdownTimeout: 30 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		MaxDeliveryAttempts:     3,
		RetryBackoffBase:        1 * time.Second,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentMissionID)
	assert.Equal(t, 0, h.MissionsProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "mission-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "mission-abc", h.CurrentMissionID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentMissionID)
}

func TestWorkerMissionOutcome(t *testing.T) {
	cfg := testQueueConfig()
	cfg.MissionTimeout = 200 * time.Millisecond
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil)

	t.Run("passes a real result through untouched", func(t *testing.T) {
		ctx := context.Background()
		in := &models.MissionResult{Success: true, MatchMade: true}

		out := w.missionOutcome(ctx, in, nil)
		assert.True(t, out.Success)
		assert.True(t, out.MatchMade)
	})

	t.Run("converts an executor error into a failed result", func(t *testing.T) {
		ctx := context.Background()

		out := w.missionOutcome(ctx, nil, errors.New("agent runtime unreachable"))
		assert.False(t, out.Success)
		assert.Contains(t, out.Error, "agent runtime unreachable")
	})

	t.Run("nil result without an error still fails", func(t *testing.T) {
		ctx := context.Background()

		out := w.missionOutcome(ctx, nil, nil)
		assert.False(t, out.Success)
		assert.Contains(t, out.Error, "no result")
	})

	t.Run("timeout wins over the executor's own error", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		<-ctx.Done()

		out := w.missionOutcome(ctx, nil, errors.New("context deadline exceeded"))
		assert.False(t, out.Success)
		assert.Contains(t, out.Error, "timed out")
		assert.Contains(t, out.Error, "200ms")
	})

	t.Run("shutdown cancellation is reported as such", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out := w.missionOutcome(ctx, nil, context.Canceled)
		assert.False(t, out.Success)
		assert.Contains(t, out.Error, "cancelled during shutdown")
	})
}

func TestRedeliveryBackoff(t *testing.T) {
	base := 1 * time.Second
	assert.Equal(t, 1*time.Second, redeliveryBackoff(base, 1))
	assert.Equal(t, 2*time.Second, redeliveryBackoff(base, 2))
	assert.Equal(t, 4*time.Second, redeliveryBackoff(base, 3))
	assert.Equal(t, 1*time.Second, redeliveryBackoff(base, 0), "degenerate input clamps to the first step")
}
