// Package e2e provides end-to-end test infrastructure for the vennd pipeline.
package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/pkg/agentmatch"
	"github.com/venn-social/vennd/pkg/collision"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/database"
	"github.com/venn-social/vennd/pkg/interview"
	"github.com/venn-social/vennd/pkg/kvstore"
	"github.com/venn-social/vennd/pkg/location"
	"github.com/venn-social/vennd/pkg/maintenance"
	"github.com/venn-social/vennd/pkg/observer"
	"github.com/venn-social/vennd/pkg/queue"
	testdb "github.com/venn-social/vennd/test/database"
)

// TestApp boots a complete vennd instance for e2e testing: the real
// ingestion, detection, gating, queueing, and maintenance stages wired
// together, with the external agent runtime and notification gateway
// replaced by scripted stand-ins.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Transient state. KV stands in for the Redis instance the daemon
	// would use; BusStore is the observer event sink.
	KV       *kvstore.MemoryStore
	BusStore *kvstore.MemoryStore

	// Mocks / test wiring
	Runtime *ScriptedAgentRuntime
	Judge   *ScriptedJudge
	Gateway *MatchGateway

	// Real pipeline stages
	Bus          *observer.Bus
	MatchService *agentmatch.Service
	Detector     *collision.Detector
	Location     *location.Service
	WorkerPool   *queue.WorkerPool
	Maintenance  *maintenance.Service

	PodID string

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	workerCount int
	podID       string              // custom pod ID (for multi-replica tests)
	dbClient    *database.Client    // injected DB client (for multi-replica tests)
	verdict     *interview.JudgeVerdict
	runtimeDown bool                // every agent turn fails
	noWorkers   bool                // do not start the worker pool
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithWorkerCount sets the number of worker pool goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithPodID overrides the auto-generated pod ID. Required for multi-replica
// tests so each replica gets a distinct identity for mission claiming and
// orphan detection.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used for multi-replica tests where multiple
// TestApp instances share the same database schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithVerdict sets the judge's verdict for every interview in this app.
func WithVerdict(v interview.JudgeVerdict) TestAppOption {
	return func(c *testAppConfig) { c.verdict = &v }
}

// WithRuntimeDown makes every agent turn fail, driving missions through
// the failure path.
func WithRuntimeDown() TestAppOption {
	return func(c *testAppConfig) { c.runtimeDown = true }
}

// WithoutWorkers leaves the worker pool stopped, so missions stay pending
// until the test claims them itself.
func WithoutWorkers() TestAppOption {
	return func(c *testAppConfig) { c.noWorkers = true }
}

// NewTestApp creates and starts a full vennd test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{workerCount: 1}
	for _, opt := range opts {
		opt(tc)
	}

	cfg := defaultTestConfig()
	cfg.Queue.WorkerCount = tc.workerCount

	// 1. Database — need both *database.Client and *ent.Client.
	var dbClient *database.Client
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Transient state and the observer bus.
	kv := kvstore.NewMemoryStore()
	busStore := kvstore.NewMemoryStore()
	bus := observer.NewBus(observer.BusConfigFrom(cfg.Observer), busStore)
	bus.Start()

	// 3. Notification gateway — a capturing HTTP server behind the real
	// webhook client.
	gateway := newMatchGateway(t)

	// 4. Domain services, wired the way the daemon wires them.
	matchService := agentmatch.NewService(entClient, kv, bus, cfg.AgentMatch, gateway.NotifyService())
	detector := collision.NewDetector(dbClient, kv, bus, cfg.Collision, matchService)
	locationService := location.NewService(entClient, kv, bus, cfg.Location, detector)

	// 5. Interview execution — real runner over scripted agents.
	runtime := &ScriptedAgentRuntime{}
	if tc.runtimeDown {
		runtime.failAll = true
	}
	judge := &ScriptedJudge{verdict: defaultVerdict()}
	if tc.verdict != nil {
		judge.verdict = *tc.verdict
	}
	runner := interview.NewRunner(cfg.Interview, runtime, judge)

	// 6. Worker pool.
	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-test-%s", t.Name())
	}
	ctx := context.Background()
	workerPool := queue.NewWorkerPool(podID, entClient, cfg.Queue, runner, matchService)
	if !tc.noWorkers {
		require.NoError(t, workerPool.Start(ctx))
	}

	// 7. Maintenance — started with non-firing intervals; tests drive
	// sweeps explicitly via RunStabilityTick/RunExpiryTick.
	maintenanceService := maintenance.NewService(entClient, detector, bus, cfg.Maintenance)
	maintenanceService.Start(ctx)

	app := &TestApp{
		Config:       cfg,
		DBClient:     dbClient,
		EntClient:    entClient,
		KV:           kv,
		BusStore:     busStore,
		Runtime:      runtime,
		Judge:        judge,
		Gateway:      gateway,
		Bus:          bus,
		MatchService: matchService,
		Detector:     detector,
		Location:     locationService,
		WorkerPool:   workerPool,
		Maintenance:  maintenanceService,
		PodID:        podID,
		t:            t,
	}

	// Register cleanup in reverse-creation order.
	t.Cleanup(func() {
		maintenanceService.Stop()
		workerPool.Stop()
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = bus.Stop(stopCtx)
		// DB cleanup handled by testdb.NewTestClient/SetupTestDatabase
	})

	return app
}

// defaultTestConfig returns service configuration tightened for tests:
// admission gates open, fast polling, sweep loops parked so tests control
// every tick.
func defaultTestConfig() *config.Config {
	cfg := &config.Config{
		Location:    config.DefaultLocationConfig(),
		Collision:   config.DefaultCollisionConfig(),
		AgentMatch:  config.DefaultAgentMatchConfig(),
		Queue:       config.DefaultQueueConfig(),
		Observer:    config.DefaultObserverConfig(),
		Maintenance: config.DefaultMaintenanceConfig(),
		Interview:   config.DefaultInterviewConfig(),
		Notify:      config.DefaultNotifyConfig(),
	}

	// Every update passes the interval and movement gates; stability is
	// forced by backdating, never by sleeping.
	cfg.Location.MinUpdateInterval = 0
	cfg.Location.MinMovementMeters = 0

	cfg.Queue.PollInterval = 100 * time.Millisecond
	cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	cfg.Queue.MissionTimeout = 30 * time.Second
	cfg.Queue.HeartbeatInterval = 5 * time.Second
	cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	cfg.Queue.OrphanDetectionInterval = 1 * time.Minute
	cfg.Queue.OrphanThreshold = 1 * time.Minute

	cfg.Observer.BatchWait = 10 * time.Millisecond

	cfg.Maintenance.StabilityInterval = 1 * time.Hour
	cfg.Maintenance.ExpiryInterval = 1 * time.Hour

	cfg.Interview.MaxOwnerTurns = 2
	cfg.Interview.TurnTimeout = 5 * time.Second
	cfg.Interview.JudgeTimeout = 5 * time.Second
	cfg.Interview.CallRetries = 1
	cfg.Interview.RetryBackoff = time.Millisecond

	return cfg
}

// defaultVerdict is a match-making verdict used unless a test overrides it.
func defaultVerdict() interview.JudgeVerdict {
	confidence := 0.8
	return interview.JudgeVerdict{
		ShouldNotify:     true,
		NotificationText: "You two should meet!",
		SummaryText:      "objectives align",
		Confidence:       &confidence,
	}
}
