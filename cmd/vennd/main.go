// vennd backbone daemon — runs the interview mission workers, the
// maintenance sweepers, and the observer event flusher behind the
// collision-to-match pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/venn-social/vennd/pkg/agentmatch"
	"github.com/venn-social/vennd/pkg/collision"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/database"
	"github.com/venn-social/vennd/pkg/interview"
	"github.com/venn-social/vennd/pkg/kvstore"
	"github.com/venn-social/vennd/pkg/maintenance"
	"github.com/venn-social/vennd/pkg/notify"
	"github.com/venn-social/vennd/pkg/observer"
	"github.com/venn-social/vennd/pkg/queue"
	"github.com/venn-social/vennd/pkg/version"
)

const healthLogInterval = time.Minute

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()

	slog.Info("Starting vennd",
		"version", version.GitCommit,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: requeue missions a previous
	// incarnation of this pod left running.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Initialize Redis-backed transient store
	redisConfig, err := kvstore.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load Redis config", "error", err)
		os.Exit(1)
	}

	kv, err := kvstore.NewClient(ctx, redisConfig)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}()

	// 5. Start the observer event bus
	bus := observer.NewBus(observer.BusConfigFrom(cfg.Observer), kv)
	bus.Start()

	// 6. Wire the match pipeline: notification gateway, agent-match
	// orchestration, collision detection.
	notifier := notify.NewService(cfg.Notify)
	if notifier == nil {
		slog.Info("Match notifications disabled")
	}

	matchService := agentmatch.NewService(dbClient.Client, kv, bus, cfg.AgentMatch, notifier)
	detector := collision.NewDetector(dbClient, kv, bus, cfg.Collision, matchService)
	slog.Info("Services initialized")

	// 7. Create the interview runtime client and mission executor
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// first RPC call
	runtime, err := interview.NewGRPCRuntime(cfg.Interview.RuntimeAddress)
	if err != nil {
		slog.Error("Failed to initialize interview runtime client",
			"addr", cfg.Interview.RuntimeAddress, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := runtime.Close(); err != nil {
			slog.Error("Error closing interview runtime client", "error", err)
		}
	}()
	slog.Info("Interview runtime client initialized", "addr", cfg.Interview.RuntimeAddress)

	runner := interview.NewRunner(cfg.Interview, runtime, runtime)

	// 8. Start the mission worker pool
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, runner, matchService)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Start the maintenance sweepers
	sweeper := maintenance.NewService(dbClient.Client, detector, bus, cfg.Maintenance)
	sweeper.Start(ctx)

	// 10. Periodic health logging
	healthCtx, healthCancel := context.WithCancel(ctx)
	defer healthCancel()
	go logHealth(healthCtx, workerPool, bus)

	slog.Info("vennd started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 12. Graceful shutdown: sweepers first (quick), then workers (wait for
	// in-flight missions), then the bus (flush what is buffered).
	healthCancel()
	sweeper.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete missions will be orphan-recovered")
	}

	busShutdownCtx, busCancel := context.WithTimeout(ctx, 5*time.Second)
	defer busCancel()
	if err := bus.Stop(busShutdownCtx); err != nil {
		slog.Error("Observer bus shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// logHealth periodically reports pool and bus health until ctx is done.
func logHealth(ctx context.Context, pool *queue.WorkerPool, bus *observer.Bus) {
	ticker := time.NewTicker(healthLogInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			health := pool.Health()
			stats := bus.Stats()
			slog.Info("Health",
				"healthy", health.IsHealthy,
				"active_workers", health.ActiveWorkers,
				"running_missions", health.RunningMissions,
				"queue_depth", health.QueueDepth,
				"orphans_recovered", health.OrphansRecovered,
				"events_emitted", stats.Emitted,
				"events_flushed", stats.Flushed,
				"events_dropped", stats.DroppedBufferFull+stats.DroppedBreakerOpen,
				"breaker_state", stats.BreakerState)
		}
	}
}
