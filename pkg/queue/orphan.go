package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/pkg/models"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runOrphanScan periodically scans for stalled claims.
// All pods run this independently; the recovery updates are status-gated
// so concurrent scanners cannot double-apply them.
func (p *WorkerPool) runOrphanScan(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running missions with stale heartbeats and
// redelivers them: back to pending with exponential backoff, or failed
// through the result handler once the delivery budget is spent.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().UTC().Add(-p.config.OrphanThreshold)

	stalled, err := p.client.InterviewMission.Query().
		Where(
			interviewmission.StatusEQ(interviewmission.StatusRunning),
			interviewmission.LastHeartbeatAtNotNil(),
			interviewmission.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stalled missions: %w", err)
	}

	if len(stalled) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected stalled missions", "count", len(stalled))

	recovered := 0
	for _, mission := range stalled {
		if err := p.redeliverStalledMission(ctx, mission, threshold); err != nil {
			slog.Error("Failed to recover stalled mission",
				"mission_id", mission.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.recovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// redeliverStalledMission handles a single stalled claim.
func (p *WorkerPool) redeliverStalledMission(ctx context.Context, mission *ent.InterviewMission, threshold time.Time) error {
	lastHeartbeat := "unknown"
	if mission.LastHeartbeatAt != nil {
		lastHeartbeat = mission.LastHeartbeatAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if mission.PodID != nil {
		podID = *mission.PodID
	}
	log := slog.With("mission_id", mission.ID, "old_pod_id", podID, "last_heartbeat", lastHeartbeat)

	delivery := mission.DeliveryAttempts + 1
	if delivery > p.config.MaxDeliveryAttempts {
		// Budget spent. Fail through the result handler so the pair gets
		// its cooldown and the in-flight lock is released. The handler's
		// status gate makes this a no-op if the worker finished after all.
		reason := fmt.Sprintf("mission stalled on pod %s (no heartbeat since %s) after %d deliveries",
			podID, lastHeartbeat, mission.DeliveryAttempts)
		if _, err := p.handler.HandleMissionResult(ctx, mission.ID, models.MissionResult{
			Success: false,
			Error:   reason,
		}); err != nil {
			return fmt.Errorf("failed to fail exhausted mission: %w", err)
		}
		log.Warn("Stalled mission failed after exhausting delivery budget",
			"delivery_attempts", mission.DeliveryAttempts)
		return nil
	}

	// Re-queue with exponential backoff. The heartbeat predicate guards
	// against a worker that resumed heartbeating between scan and update.
	n, err := p.client.InterviewMission.Update().
		Where(
			interviewmission.IDEQ(mission.ID),
			interviewmission.StatusEQ(interviewmission.StatusRunning),
			interviewmission.LastHeartbeatAtLT(threshold),
		).
		SetStatus(interviewmission.StatusPending).
		SetDeliveryAttempts(delivery).
		SetNextAttemptAt(time.Now().UTC().Add(redeliveryBackoff(p.config.RetryBackoffBase, delivery))).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-queue stalled mission: %w", err)
	}
	if n == 0 {
		log.Info("Stalled mission resolved itself before recovery")
		return nil
	}

	log.Warn("Stalled mission re-queued for redelivery", "delivery", delivery)
	return nil
}

// redeliveryBackoff computes base * 2^(delivery-1).
func redeliveryBackoff(base time.Duration, delivery int) time.Duration {
	if delivery < 1 {
		delivery = 1
	}
	return base << uint(delivery-1)
}

// CleanupStartupOrphans re-queues missions this pod was running when it
// previously crashed. Called once during startup, before the worker pool
// begins processing. Exhausted rows are left for the periodic scanner,
// which fails them through the result handler on their next stall.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.InterviewMission.Query().
		Where(
			interviewmission.StatusEQ(interviewmission.StatusRunning),
			interviewmission.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now().UTC()
	for _, mission := range orphans {
		delivery := mission.DeliveryAttempts + 1
		err := mission.Update().
			SetStatus(interviewmission.StatusPending).
			SetDeliveryAttempts(delivery).
			SetNextAttemptAt(now).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to re-queue startup orphan",
				"mission_id", mission.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan re-queued", "mission_id", mission.ID, "delivery", delivery)
	}

	return nil
}
