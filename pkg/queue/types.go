// Package queue provides the durable mission queue and its worker pool.
//
// The InterviewMission table IS the queue: inserting a row with
// status=pending enqueues it, and workers claim rows with
// FOR UPDATE SKIP LOCKED. Delivery is at-least-once; the result handler
// is responsible for making redeliveries harmless.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/pkg/models"
)

// ErrNoMissionsAvailable indicates no claimable missions are in the queue.
var ErrNoMissionsAvailable = errors.New("no missions available")

// MissionExecutor runs one interview mission end to end.
//
// The executor owns the interview lifecycle internally:
//   - Runs the owner/visitor turn loop against the agent runtime
//   - Applies per-call timeouts and bounded retries
//   - Asks the judge for a verdict once the conversation ends
//
// It reports the outcome without touching the mission row. The worker
// handles claiming, heartbeat, and handing the outcome to the
// ResultHandler; any error return is converted into a failed result.
type MissionExecutor interface {
	Execute(ctx context.Context, mission *ent.InterviewMission) (*models.MissionResult, error)
}

// ResultHandler applies a mission outcome exactly once per delivery.
// Implementations must tolerate redelivery of the same mission: a
// terminal row is acknowledged without being re-applied.
type ResultHandler interface {
	HandleMissionResult(ctx context.Context, missionID string, result models.MissionResult) (*ent.Match, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	RunningMissions  int            `json:"running_missions"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentMissionID  string    `json:"current_mission_id,omitempty"`
	MissionsProcessed int       `json:"missions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
