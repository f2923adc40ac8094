package util

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/stretchr/testify/require"
)

var (
	sharedRedisURL string
	redisOnce      sync.Once
	redisErr       error

	// Sequential logical DB allocation for test isolation. Redis ships 16
	// logical databases; each test gets one, flushed before use.
	redisDBCounter atomic.Int64
)

// SetupTestRedis returns a connected go-redis client on a private logical
// database, flushed clean. In CI it connects to CI_REDIS_URL; locally it
// starts a shared Redis testcontainer once per package.
func SetupTestRedis(t *testing.T) *goredis.Client {
	t.Helper()
	ctx := context.Background()

	url := getOrCreateSharedRedis(t)

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	opts.DB = int(redisDBCounter.Add(1) % 16)

	client := goredis.NewClient(opts)
	require.NoError(t, client.FlushDB(ctx).Err(), "Failed to flush test redis db")

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

// getOrCreateSharedRedis returns a redis:// URL. In CI, uses CI_REDIS_URL.
// In local dev, creates a shared testcontainer once.
func getOrCreateSharedRedis(t *testing.T) string {
	if ciRedisURL := os.Getenv("CI_REDIS_URL"); ciRedisURL != "" {
		t.Log("Using external Redis from CI_REDIS_URL")
		return ciRedisURL
	}

	redisOnce.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared Redis testcontainer for all tests")

		redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
		if err != nil {
			redisErr = fmt.Errorf("failed to start redis container: %w", err)
			return
		}

		url, err := redisContainer.ConnectionString(ctx)
		if err != nil {
			redisErr = fmt.Errorf("failed to get redis connection string: %w", err)
			return
		}

		sharedRedisURL = url
		t.Logf("Shared redis container ready: %s", sharedRedisURL)
	})

	require.NoError(t, redisErr, "Failed to setup shared redis container")
	return sharedRedisURL
}
