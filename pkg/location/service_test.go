package location

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/geo"
	"github.com/venn-social/vennd/pkg/kvstore"
	"github.com/venn-social/vennd/pkg/models"
	"github.com/venn-social/vennd/pkg/observer"
	testdb "github.com/venn-social/vennd/test/database"
)

// recordingDetector captures what the ingestion service hands to collision
// detection and returns a scripted result.
type recordingDetector struct {
	mu      sync.Mutex
	userIDs []string
	centers []geo.Point
	circles [][]*ent.Circle
	result  []models.DetectedCollision
}

func (d *recordingDetector) DetectCollisionsForUser(_ context.Context, userID string, center geo.Point, circles []*ent.Circle) []models.DetectedCollision {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.userIDs = append(d.userIDs, userID)
	d.centers = append(d.centers, center)
	d.circles = append(d.circles, circles)
	return d.result
}

func (d *recordingDetector) calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.userIDs)
}

func seedUser(t *testing.T, client *ent.Client, id string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetID(id).
		SetDisplayName("User " + id).
		SetEmail(id + "@example.com").
		SetProfile(map[string]interface{}{"interests": []string{"climbing"}}).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func seedCircle(t *testing.T, client *ent.Client, id, ownerID string) *ent.Circle {
	t.Helper()
	now := time.Now().UTC()
	c, err := client.Circle.Create().
		SetID(id).
		SetOwnerUserID(ownerID).
		SetObjective("find a climbing partner").
		SetRadiusMeters(500).
		SetStartAt(now.Add(-time.Hour)).
		SetExpiresAt(now.Add(time.Hour)).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func TestService_UpdateUserLocation_Admission(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("admits first update and persists both copies", func(t *testing.T) {
		seedUser(t, client.Client, "u-first")
		kv := kvstore.NewMemoryStore()
		svc := NewService(client.Client, kv, nil, config.DefaultLocationConfig(), nil)

		res := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID:          "u-first",
			Lat:             40.7128,
			Lon:             -74.0060,
			AccuracyMeters:  12,
			ClientTimestamp: time.Now().UTC(),
		})
		require.False(t, res.Skipped, "first update must be admitted: %+v", res)

		u, err := client.User.Get(ctx, "u-first")
		require.NoError(t, err)
		require.NotNil(t, u.LastLat)
		require.NotNil(t, u.LastLon)
		assert.InDelta(t, 40.7128, *u.LastLat, 1e-9)
		assert.InDelta(t, -74.0060, *u.LastLon, 1e-9)
		assert.NotNil(t, u.PositionUpdatedAt)

		fields, err := kv.HGetAll(ctx, "position:u-first")
		require.NoError(t, err)
		require.NotEmpty(t, fields)
		lat, err := strconv.ParseFloat(fields["lat"], 64)
		require.NoError(t, err)
		assert.InDelta(t, 40.7128, lat, 1e-9)

		ttl, ok := kv.TTL("position:u-first")
		require.True(t, ok, "cached position must carry a TTL")
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		kv := kvstore.NewMemoryStore()
		svc := NewService(client.Client, kv, nil, config.DefaultLocationConfig(), nil)

		tests := []struct {
			name  string
			input UpdateInput
		}{
			{"missing user id", UpdateInput{Lat: 1, Lon: 1, ClientTimestamp: time.Now()}},
			{"latitude out of range", UpdateInput{UserID: "u", Lat: 91, Lon: 0, ClientTimestamp: time.Now()}},
			{"longitude out of range", UpdateInput{UserID: "u", Lat: 0, Lon: -181, ClientTimestamp: time.Now()}},
			{"missing timestamp", UpdateInput{UserID: "u", Lat: 1, Lon: 1}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res := svc.UpdateUserLocation(ctx, tt.input)
				assert.True(t, res.Skipped)
				assert.Equal(t, SkipValidation, res.SkipReason)
				assert.NotEmpty(t, res.Error)
			})
		}
	})

	t.Run("rejects timestamp at the staleness boundary", func(t *testing.T) {
		seedUser(t, client.Client, "u-stale")
		cfg := config.DefaultLocationConfig()
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, cfg, nil)

		res := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID:          "u-stale",
			Lat:             40.0,
			Lon:             -74.0,
			ClientTimestamp: time.Now().UTC().Add(-cfg.MaxUpdateAge),
		})
		assert.True(t, res.Skipped)
		assert.Equal(t, SkipStaleTimestamp, res.SkipReason)
	})

	t.Run("rate limits a second update inside the interval", func(t *testing.T) {
		seedUser(t, client.Client, "u-rate")
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, config.DefaultLocationConfig(), nil)

		first := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID: "u-rate", Lat: 40.0, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
		})
		require.False(t, first.Skipped)

		// Far enough to pass the movement rule; only the interval blocks it.
		second := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID: "u-rate", Lat: 40.01, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
		})
		assert.True(t, second.Skipped)
		assert.Equal(t, SkipRateLimited, second.SkipReason)
	})

	t.Run("skips insufficient movement", func(t *testing.T) {
		seedUser(t, client.Client, "u-move")
		cfg := config.DefaultLocationConfig()
		cfg.MinUpdateInterval = 0
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, cfg, nil)

		first := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID: "u-move", Lat: 40.0, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
		})
		require.False(t, first.Skipped)

		// ~1.1m north, well under the 20m floor.
		second := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID: "u-move", Lat: 40.00001, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
		})
		assert.True(t, second.Skipped)
		assert.Equal(t, SkipInsufficientMovement, second.SkipReason)
	})

	t.Run("admits movement at exactly the threshold", func(t *testing.T) {
		seedUser(t, client.Client, "u-boundary")
		cfg := config.DefaultLocationConfig()
		cfg.MinUpdateInterval = 0
		// Pin the floor to the exact displacement of the second update so the
		// >= comparison is what admits it.
		cfg.MinMovementMeters = geo.Haversine(40.0, -74.0, 40.0002, -74.0)
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, cfg, nil)

		first := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID: "u-boundary", Lat: 40.0, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
		})
		require.False(t, first.Skipped)

		second := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID: "u-boundary", Lat: 40.0002, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
		})
		assert.False(t, second.Skipped, "movement equal to the floor must be admitted: %+v", second)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, config.DefaultLocationConfig(), nil)

		res := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID: "u-ghost", Lat: 40.0, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
		})
		assert.True(t, res.Skipped)
		assert.Equal(t, SkipValidation, res.SkipReason)
		assert.Contains(t, res.Error, "u-ghost")
	})

	t.Run("persistent cache wins over in-process state", func(t *testing.T) {
		seedUser(t, client.Client, "u-diverge")
		cfg := config.DefaultLocationConfig()
		cfg.MinUpdateInterval = 0
		kv := kvstore.NewMemoryStore()
		svc := NewService(client.Client, kv, nil, cfg, nil)

		first := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID: "u-diverge", Lat: 40.0, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
		})
		require.False(t, first.Skipped)

		// Another instance admitted a position ~1.1km away; overwrite the
		// cache behind this instance's back.
		require.NoError(t, kv.HSet(ctx, "position:u-diverge", map[string]string{
			"lat":             "40.01",
			"lon":             "-74.0",
			"accuracy_meters": "10",
			"admitted_at":     strconv.FormatInt(time.Now().UTC().Add(-time.Minute).UnixMilli(), 10),
		}))

		// 2m from the in-process copy but far from the cached one. The cached
		// copy must drive admission.
		res := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID: "u-diverge", Lat: 40.00002, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
		})
		assert.False(t, res.Skipped, "persistent admission state must win: %+v", res)
	})
}

func TestService_UpdateUserLocation_Detection(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("hands live circles to the detector", func(t *testing.T) {
		seedUser(t, client.Client, "u-det")
		live := seedCircle(t, client.Client, "c-live", "u-det")

		now := time.Now().UTC()
		// Paused and not-yet-started circles are not live.
		_, err := client.Circle.Create().
			SetID("c-paused").SetOwnerUserID("u-det").SetObjective("paused").
			SetRadiusMeters(500).SetStartAt(now.Add(-time.Hour)).SetExpiresAt(now.Add(time.Hour)).
			SetStatus("paused").
			Save(ctx)
		require.NoError(t, err)
		_, err = client.Circle.Create().
			SetID("c-future").SetOwnerUserID("u-det").SetObjective("future").
			SetRadiusMeters(500).SetStartAt(now.Add(time.Hour)).SetExpiresAt(now.Add(2 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		det := &recordingDetector{result: []models.DetectedCollision{
			{Circle1ID: "c-live", Circle2ID: "c-peer", User1ID: "u-det", User2ID: "u-peer", DistanceMeters: 42},
		}}
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, config.DefaultLocationConfig(), det)

		res := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID: "u-det", Lat: 40.0, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
		})
		require.False(t, res.Skipped)
		assert.Equal(t, 1, res.CollisionsDetected)

		require.Equal(t, 1, det.calls())
		assert.Equal(t, "u-det", det.userIDs[0])
		assert.InDelta(t, 40.0, det.centers[0].Lat, 1e-9)
		require.Len(t, det.circles[0], 1, "only the live circle enters detection")
		assert.Equal(t, live.ID, det.circles[0][0].ID)
	})

	t.Run("skips detection for users with no live circles", func(t *testing.T) {
		seedUser(t, client.Client, "u-nocircle")
		det := &recordingDetector{}
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, config.DefaultLocationConfig(), det)

		res := svc.UpdateUserLocation(ctx, UpdateInput{
			UserID: "u-nocircle", Lat: 40.0, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
		})
		require.False(t, res.Skipped)
		assert.Equal(t, 0, res.CollisionsDetected)
		assert.Equal(t, 0, det.calls())
	})
}

func TestService_UpdateUserLocation_Events(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedUser(t, client.Client, "u-events")

	kv := kvstore.NewMemoryStore()
	busStore := kvstore.NewMemoryStore()

	busCfg := observer.DefaultConfig()
	busCfg.BatchWait = 10 * time.Millisecond
	bus := observer.NewBus(busCfg, busStore)
	bus.Start()

	cfg := config.DefaultLocationConfig()
	cfg.MinUpdateInterval = 0
	svc := NewService(client.Client, kv, bus, cfg, nil)

	admitted := svc.UpdateUserLocation(ctx, UpdateInput{
		UserID: "u-events", Lat: 40.0, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
	})
	require.False(t, admitted.Skipped)

	skipped := svc.UpdateUserLocation(ctx, UpdateInput{
		UserID: "u-events", Lat: 40.0, Lon: -74.0, ClientTimestamp: time.Now().UTC(),
	})
	require.True(t, skipped.Skipped)
	require.Equal(t, SkipInsufficientMovement, skipped.SkipReason)

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, bus.Stop(stopCtx))

	assert.Len(t, busStore.StreamEntries("observer:events:location.updated"), 1)
	assert.Len(t, busStore.StreamEntries("observer:events:location.skipped"), 1)
	assert.Len(t, busStore.StreamEntries("observer:events:all"), 2)
}
