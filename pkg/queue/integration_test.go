package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/models"
	testdb "github.com/venn-social/vennd/test/database"
)

// createTestMission enqueues a pending mission (with its backing collision
// row) for the given circle pair key.
func createTestMission(ctx context.Context, t *testing.T, client *ent.Client, pairKey string) *ent.InterviewMission {
	t.Helper()

	ce, err := client.CollisionEvent.Create().
		SetID(uuid.New().String()).
		SetPairKey(pairKey).
		SetCircle1ID(pairKey + "-c1").
		SetCircle2ID(pairKey + "-c2").
		SetUser1ID(pairKey + "-u1").
		SetUser2ID(pairKey + "-u2").
		SetDistanceMeters(30).
		SetFirstSeenAt(time.Now().Add(-time.Minute)).
		SetLastSeenAt(time.Now()).
		SetStatus(collisionevent.StatusMissionCreated).
		Save(ctx)
	require.NoError(t, err)

	mission, err := client.InterviewMission.Create().
		SetID(uuid.New().String()).
		SetCollisionEventID(ce.ID).
		SetOwnerUserID(pairKey + "-u1").
		SetVisitorUserID(pairKey + "-u2").
		SetOwnerCircleID(pairKey + "-c1").
		SetVisitorCircleID(pairKey + "-c2").
		SetCirclePairKey(pairKey).
		SetPayload(map[string]interface{}{"mission_id": "seed"}).
		Save(ctx)
	require.NoError(t, err)
	return mission
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      0,
		MissionTimeout:          30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 1 * time.Hour, // Scans run explicitly in tests
		OrphanThreshold:         90 * time.Second,
		MaxDeliveryAttempts:     3,
		RetryBackoffBase:        1 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// scriptedExecutor counts executions and tracks which missions it saw.
type scriptedExecutor struct {
	processed  atomic.Int64
	missions   sync.Map // mission_id → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
	err        error
	result     *models.MissionResult
}

func (m *scriptedExecutor) Execute(ctx context.Context, mission *ent.InterviewMission) (*models.MissionResult, error) {
	m.processed.Add(1)
	if mission != nil {
		m.missions.Store(mission.ID, struct{}{})
	}

	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		r := *m.result
		return &r, nil
	}
	return &models.MissionResult{Success: true, MatchMade: false}, nil
}

type delivery struct {
	missionID string
	result    models.MissionResult
}

// recordingHandler records deliveries and optionally applies the terminal
// transition the way the real result handler does (status-gated).
type recordingHandler struct {
	mu         sync.Mutex
	deliveries []delivery
	client     *ent.Client // when set, rows are transitioned terminally
	failWith   error
}

func (h *recordingHandler) HandleMissionResult(ctx context.Context, missionID string, result models.MissionResult) (*ent.Match, error) {
	h.mu.Lock()
	h.deliveries = append(h.deliveries, delivery{missionID: missionID, result: result})
	h.mu.Unlock()

	if h.failWith != nil {
		return nil, h.failWith
	}

	if h.client != nil {
		status := interviewmission.StatusCompleted
		if !result.Success {
			status = interviewmission.StatusFailed
		}
		_, err := h.client.InterviewMission.Update().
			Where(
				interviewmission.IDEQ(missionID),
				interviewmission.StatusIn(interviewmission.StatusPending, interviewmission.StatusRunning),
			).
			SetStatus(status).
			SetCompletedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.deliveries)
}

func (h *recordingHandler) last() delivery {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deliveries[len(h.deliveries)-1]
}

// TestMissionClaiming tests the FOR UPDATE SKIP LOCKED claim path.
func TestMissionClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil)

	t.Run("claims a pending mission", func(t *testing.T) {
		mission := createTestMission(ctx, t, client, "claim-pair-1")

		claimed, err := w.claimNextMission(ctx)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, mission.ID, claimed.ID)
		assert.Equal(t, interviewmission.StatusRunning, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "test-pod", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastHeartbeatAt)

		// Nothing left to claim
		_, err = w.claimNextMission(ctx)
		assert.ErrorIs(t, err, ErrNoMissionsAvailable)
	})

	t.Run("missions backed off into the future are not claimable", func(t *testing.T) {
		mission := createTestMission(ctx, t, client, "claim-pair-2")
		err := client.InterviewMission.UpdateOneID(mission.ID).
			SetNextAttemptAt(time.Now().Add(time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		_, err = w.claimNextMission(ctx)
		assert.ErrorIs(t, err, ErrNoMissionsAvailable)
	})

	t.Run("claims the oldest mission first", func(t *testing.T) {
		newer := createTestMission(ctx, t, client, "claim-pair-3")
		older := createTestMission(ctx, t, client, "claim-pair-4")
		err := client.InterviewMission.UpdateOneID(newer.ID).
			SetNextAttemptAt(time.Now().Add(-time.Minute)).
			Exec(ctx)
		require.NoError(t, err)
		// Backdate the second insert so it is the queue head.
		_, err = client.InterviewMission.Delete().Where(interviewmission.IDEQ(older.ID)).Exec(ctx)
		require.NoError(t, err)
		older, err = client.InterviewMission.Create().
			SetID(uuid.New().String()).
			SetCollisionEventID(older.CollisionEventID).
			SetOwnerUserID(older.OwnerUserID).
			SetVisitorUserID(older.VisitorUserID).
			SetOwnerCircleID(older.OwnerCircleID).
			SetVisitorCircleID(older.VisitorCircleID).
			SetCirclePairKey(older.CirclePairKey).
			SetPayload(older.Payload).
			SetCreatedAt(time.Now().Add(-time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		claimed, err := w.claimNextMission(ctx)
		require.NoError(t, err)
		assert.Equal(t, older.ID, claimed.ID, "FIFO by created_at")

		claimed2, err := w.claimNextMission(ctx)
		require.NoError(t, err)
		assert.Equal(t, newer.ID, claimed2.ID)
	})
}

// TestConcurrentClaimsDistinctMissions tests that concurrent workers on
// separate connection pools never claim the same mission.
func TestConcurrentClaimsDistinctMissions(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client1 := shared.NewClient(t).Client
	client2 := shared.NewClient(t).Client
	ctx := context.Background()

	missionIDs := make(map[string]struct{})
	for i := 0; i < 6; i++ {
		m := createTestMission(ctx, t, client1, fmt.Sprintf("conc-pair-%d", i))
		missionIDs[m.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 6)
	errCh := make(chan error, 6)
	var wg sync.WaitGroup

	for i := 0; i < 6; i++ {
		client := client1
		pod := "pod-a"
		if i%2 == 1 {
			client = client2
			pod = "pod-b"
		}
		wg.Add(1)
		go func(workerID int, client *ent.Client, pod string) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), pod, client, cfg, nil, nil)
			mission, err := w.claimNextMission(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, mission.ID)
			mu.Unlock()
		}(i, client, pod)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Len(t, claimed, 6, "all 6 missions should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "mission %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := missionIDs[id]
		assert.True(t, ok, "claimed mission %s was not in original set", id)
	}
}

// TestOrphanRecovery tests stalled-claim redelivery and the delivery budget.
func TestOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = time.Minute

	markStalled := func(t *testing.T, missionID string, staleBy time.Duration, deliveries int) {
		t.Helper()
		err := client.InterviewMission.UpdateOneID(missionID).
			SetStatus(interviewmission.StatusRunning).
			SetPodID("crashed-pod").
			SetStartedAt(time.Now().Add(-staleBy)).
			SetLastHeartbeatAt(time.Now().Add(-staleBy)).
			SetDeliveryAttempts(deliveries).
			Exec(ctx)
		require.NoError(t, err)
	}

	t.Run("requeues a stalled mission with backoff", func(t *testing.T) {
		mission := createTestMission(ctx, t, client, "orphan-pair-1")
		markStalled(t, mission.ID, 10*time.Minute, 0)

		pool := &WorkerPool{podID: "test-pod", client: client, config: cfg}
		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		updated, err := client.InterviewMission.Get(ctx, mission.ID)
		require.NoError(t, err)
		assert.Equal(t, interviewmission.StatusPending, updated.Status)
		assert.Equal(t, 1, updated.DeliveryAttempts)
		assert.WithinDuration(t, time.Now().Add(cfg.RetryBackoffBase), updated.NextAttemptAt, 5*time.Second,
			"first redelivery backs off by the base duration")

		pool.orphans.mu.Lock()
		assert.Equal(t, 1, pool.orphans.recovered)
		pool.orphans.mu.Unlock()
	})

	t.Run("leaves fresh heartbeats alone", func(t *testing.T) {
		mission := createTestMission(ctx, t, client, "orphan-pair-2")
		markStalled(t, mission.ID, 5*time.Second, 0)

		pool := &WorkerPool{podID: "test-pod", client: client, config: cfg}
		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		updated, err := client.InterviewMission.Get(ctx, mission.ID)
		require.NoError(t, err)
		assert.Equal(t, interviewmission.StatusRunning, updated.Status)
		assert.Equal(t, 0, updated.DeliveryAttempts)
	})

	t.Run("fails a mission past its delivery budget", func(t *testing.T) {
		mission := createTestMission(ctx, t, client, "orphan-pair-3")
		markStalled(t, mission.ID, 10*time.Minute, cfg.MaxDeliveryAttempts)

		handler := &recordingHandler{client: client}
		pool := &WorkerPool{podID: "test-pod", client: client, config: cfg, handler: handler}
		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		require.Equal(t, 1, handler.count())
		d := handler.last()
		assert.Equal(t, mission.ID, d.missionID)
		assert.False(t, d.result.Success)
		assert.Contains(t, d.result.Error, "stalled")

		updated, err := client.InterviewMission.Get(ctx, mission.ID)
		require.NoError(t, err)
		assert.Equal(t, interviewmission.StatusFailed, updated.Status)
	})
}

// TestStartupOrphanCleanup tests the one-time startup requeue.
func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	podID := "startup-test-pod"

	mine := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		m := createTestMission(ctx, t, client, fmt.Sprintf("startup-pair-%d", i))
		err := client.InterviewMission.UpdateOneID(m.ID).
			SetStatus(interviewmission.StatusRunning).
			SetPodID(podID).
			Exec(ctx)
		require.NoError(t, err)
		mine = append(mine, m.ID)
	}

	other := createTestMission(ctx, t, client, "startup-pair-other")
	err := client.InterviewMission.UpdateOneID(other.ID).
		SetStatus(interviewmission.StatusRunning).
		SetPodID("other-pod").
		Exec(ctx)
	require.NoError(t, err)

	done := createTestMission(ctx, t, client, "startup-pair-done")
	err = client.InterviewMission.UpdateOneID(done.ID).
		SetStatus(interviewmission.StatusCompleted).
		SetPodID(podID).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client, podID))

	for _, id := range mine {
		m, err := client.InterviewMission.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, interviewmission.StatusPending, m.Status, "own claims are re-queued")
		assert.Equal(t, 1, m.DeliveryAttempts)
		assert.LessOrEqual(t, m.NextAttemptAt.Unix(), time.Now().Unix(), "re-queued claims are immediately claimable")
	}

	otherRow, err := client.InterviewMission.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, interviewmission.StatusRunning, otherRow.Status, "other pod's claim is untouched")

	doneRow, err := client.InterviewMission.Get(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, interviewmission.StatusCompleted, doneRow.Status)
}

// TestPoolEndToEndProcessing tests the full worker pool lifecycle with
// scripted executor and handler.
func TestPoolEndToEndProcessing(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createTestMission(ctx, t, client, fmt.Sprintf("e2e-pair-%d", i))
	}

	cfg := intTestQueueConfig()
	executor := &scriptedExecutor{}
	handler := &recordingHandler{client: client}
	pool := NewWorkerPool("test-pod", client, cfg, executor, handler)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for missions to be processed",
		func() bool { return handler.count() >= 3 })

	pool.Stop()

	completed, err := client.InterviewMission.Query().
		Where(interviewmission.StatusEQ(interviewmission.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, completed, "all 3 missions should be completed")

	// Each mission delivered exactly once
	assert.Equal(t, 3, handler.count())
	seen := make(map[string]struct{})
	handler.mu.Lock()
	for _, d := range handler.deliveries {
		_, dup := seen[d.missionID]
		assert.False(t, dup, "mission %s delivered twice", d.missionID)
		seen[d.missionID] = struct{}{}
	}
	handler.mu.Unlock()

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 0, health.QueueDepth)
}

// TestHeartbeatUpdates tests that the heartbeat goroutine refreshes the claim.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	mission := createTestMission(ctx, t, client, "heartbeat-pair")

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.HeartbeatInterval = 100 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &scriptedExecutor{releaseCh: releaseCh}
	handler := &recordingHandler{client: client}
	pool := NewWorkerPool("test-pod", client, cfg, executor, handler)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for the mission to be claimed",
		func() bool {
			m, err := client.InterviewMission.Get(ctx, mission.ID)
			require.NoError(t, err)
			return m.Status == interviewmission.StatusRunning && m.LastHeartbeatAt != nil
		})

	m1, err := client.InterviewMission.Get(ctx, mission.ID)
	require.NoError(t, err)
	initial := *m1.LastHeartbeatAt

	time.Sleep(250 * time.Millisecond)

	m2, err := client.InterviewMission.Get(ctx, mission.ID)
	require.NoError(t, err)
	require.NotNil(t, m2.LastHeartbeatAt)
	assert.True(t, m2.LastHeartbeatAt.After(initial), "heartbeat should refresh last_heartbeat_at")

	close(releaseCh)
	pool.Stop()

	final, err := client.InterviewMission.Get(ctx, mission.ID)
	require.NoError(t, err)
	assert.Equal(t, interviewmission.StatusCompleted, final.Status)
}

// TestExecutorFailureDelivery tests that executor errors become failed results.
func TestExecutorFailureDelivery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	t.Run("executor error becomes a failed result", func(t *testing.T) {
		createTestMission(ctx, t, client, "execfail-pair-1")

		cfg := intTestQueueConfig()
		executor := &scriptedExecutor{err: fmt.Errorf("agent runtime unreachable")}
		handler := &recordingHandler{client: client}
		w := NewWorker("worker-0", "test-pod", client, cfg, executor, handler)

		require.NoError(t, w.pollAndProcess(ctx))

		require.Equal(t, 1, handler.count())
		d := handler.last()
		assert.False(t, d.result.Success)
		assert.Contains(t, d.result.Error, "agent runtime unreachable")
	})

	t.Run("handler failure leaves the claim running for redelivery", func(t *testing.T) {
		mission := createTestMission(ctx, t, client, "execfail-pair-2")

		cfg := intTestQueueConfig()
		executor := &scriptedExecutor{}
		handler := &recordingHandler{failWith: fmt.Errorf("database unavailable")}
		w := NewWorker("worker-0", "test-pod", client, cfg, executor, handler)

		err := w.pollAndProcess(ctx)
		require.Error(t, err)

		row, getErr := client.InterviewMission.Get(ctx, mission.ID)
		require.NoError(t, getErr)
		assert.Equal(t, interviewmission.StatusRunning, row.Status,
			"undelivered outcome stays claimed; the orphan scanner will redeliver")
		assert.Equal(t, 1, handler.count(), "delivery was attempted exactly once")
	})
}
