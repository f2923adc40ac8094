package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/models"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes missions.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor MissionExecutor
	handler  ResultHandler
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentMissionID  string
	missionsProcessed int
	lastActivity      time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor MissionExecutor, handler ResultHandler) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		handler:      handler,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentMissionID:  w.currentMissionID,
		MissionsProcessed: w.missionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoMissionsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing mission", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next due mission, executes it, and delivers
// the outcome to the result handler exactly once.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	mission, err := w.claimNextMission(ctx)
	if err != nil {
		return err
	}

	log := slog.With("mission_id", mission.ID, "worker_id", w.id)
	log.Info("Mission claimed",
		"circle_pair_key", mission.CirclePairKey,
		"attempt_number", mission.AttemptNumber,
		"delivery_attempts", mission.DeliveryAttempts)

	w.setStatus(WorkerStatusWorking, mission.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	missionCtx, cancelMission := context.WithTimeout(ctx, w.config.MissionTimeout)
	defer cancelMission()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(missionCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, mission.ID)

	result, execErr := w.executor.Execute(missionCtx, mission)
	outcome := w.missionOutcome(missionCtx, result, execErr)

	cancelHeartbeat()

	// Deliver on a background context; the mission context may already be
	// cancelled. A failed delivery leaves the row running with a stale
	// heartbeat, and the orphan scanner redelivers it.
	if _, err := w.handler.HandleMissionResult(context.Background(), mission.ID, outcome); err != nil {
		log.Error("Failed to deliver mission result", "error", err)
		return err
	}

	w.mu.Lock()
	w.missionsProcessed++
	w.mu.Unlock()

	log.Info("Mission processing complete", "success", outcome.Success, "match_made", outcome.MatchMade)
	return nil
}

// missionOutcome converts the executor's return into the result handed to
// the ResultHandler. Executor errors, nil results, timeouts, and shutdown
// cancellation all become failed results.
func (w *Worker) missionOutcome(missionCtx context.Context, result *models.MissionResult, execErr error) models.MissionResult {
	if execErr == nil && result != nil {
		return *result
	}

	var reason string
	switch {
	case errors.Is(missionCtx.Err(), context.DeadlineExceeded):
		reason = fmt.Sprintf("mission timed out after %v", w.config.MissionTimeout)
	case errors.Is(missionCtx.Err(), context.Canceled):
		reason = "mission cancelled during shutdown"
	case execErr != nil:
		reason = execErr.Error()
	default:
		reason = "executor returned no result"
	}

	return models.MissionResult{Success: false, Error: reason}
}

// claimNextMission atomically claims the oldest due mission using
// FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextMission(ctx context.Context) (*ent.InterviewMission, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing; next_attempt_at gates
	// redelivery backoff.
	now := time.Now().UTC()
	mission, err := tx.InterviewMission.Query().
		Where(
			interviewmission.StatusEQ(interviewmission.StatusPending),
			interviewmission.NextAttemptAtLTE(now),
		).
		Order(ent.Asc(interviewmission.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoMissionsAvailable
		}
		return nil, fmt.Errorf("failed to query pending missions: %w", err)
	}

	// Claim: set running, pod_id, started_at, and the first heartbeat.
	mission, err = mission.Update().
		SetStatus(interviewmission.StatusRunning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim mission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return mission, nil
}

// runHeartbeat periodically refreshes this worker's claim for orphan
// detection. Gated on status and pod so a stalled worker cannot refresh
// a claim the orphan scanner already released.
func (w *Worker) runHeartbeat(ctx context.Context, missionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := w.client.InterviewMission.Update().
				Where(
					interviewmission.IDEQ(missionID),
					interviewmission.StatusEQ(interviewmission.StatusRunning),
					interviewmission.PodIDEQ(w.podID),
				).
				SetLastHeartbeatAt(time.Now().UTC()).
				Exec(ctx)
			if err != nil {
				slog.Warn("Heartbeat update failed", "mission_id", missionID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, missionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentMissionID = missionID
	w.lastActivity = time.Now()
}
