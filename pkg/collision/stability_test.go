package collision

import (
	"context"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/geo"
	"github.com/venn-social/vennd/pkg/kvstore"
	"github.com/venn-social/vennd/pkg/observer"
	testdb "github.com/venn-social/vennd/test/database"
)

func newEventBus(t *testing.T) (*observer.Bus, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	cfg := observer.DefaultConfig()
	cfg.BatchWait = 10 * time.Millisecond
	bus := observer.NewBus(cfg, store)
	bus.Start()
	return bus, store
}

func stopBus(t *testing.T, bus *observer.Bus) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, bus.Stop(ctx))
}

func hashInt(t *testing.T, fields map[string]string, name string) int64 {
	t.Helper()
	v, err := strconv.ParseInt(fields[name], 10, 64)
	require.NoError(t, err, "field %s", name)
	return v
}

func queueMembers(t *testing.T, kv kvstore.Store) []kvstore.ZMember {
	t.Helper()
	members, err := kv.ZRangeByScore(context.Background(), stabilityQueueKey, 0, math.MaxFloat64, 0)
	require.NoError(t, err)
	return members
}

func setHashTime(t *testing.T, kv kvstore.Store, pairKey, field string, ts time.Time) {
	t.Helper()
	err := kv.HSetField(context.Background(), activePairKey(pairKey), field,
		strconv.FormatInt(ts.UnixMilli(), 10))
	require.NoError(t, err)
}

func TestDetector_StabilityTracking(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("first sighting creates tracking state", func(t *testing.T) {
		lat, lon := testArea(0)
		peerLat := offsetNorth(lat, 300)
		seedUserAt(t, client, "st1-a", lat, lon)
		seedUserAt(t, client, "st1-b", peerLat, lon)
		ca := seedActiveCircle(t, client, "st1-ca", "st1-a", 500)
		seedActiveCircle(t, client, "st1-cb", "st1-b", 500)

		bus, busStore := newEventBus(t)
		kv := kvstore.NewMemoryStore()
		launcher := &recordingLauncher{db: client}
		det := NewDetector(client, kv, bus, config.DefaultCollisionConfig(), launcher)

		got := det.DetectCollisionsForUser(ctx, "st1-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		require.Len(t, got, 1)
		pk := geo.PairKey("st1-ca", "st1-cb")

		fields, err := kv.HGetAll(ctx, activePairKey(pk))
		require.NoError(t, err)
		require.NotEmpty(t, fields)
		assert.Equal(t, "detecting", fields["status"])
		firstSeen := hashInt(t, fields, "first_seen_at")
		assert.Equal(t, firstSeen, hashInt(t, fields, "last_seen_at"))
		dist, err := strconv.ParseFloat(fields["distance"], 64)
		require.NoError(t, err)
		assert.InDelta(t, geo.Haversine(lat, lon, peerLat, lon), dist, 0.5)

		ttl, ok := kv.TTL(activePairKey(pk))
		require.True(t, ok, "stability hash must carry a TTL")
		assert.Greater(t, ttl, time.Duration(0))

		members := queueMembers(t, kv)
		require.Len(t, members, 1)
		assert.Equal(t, pk, members[0].Member)
		assert.InDelta(t, float64(firstSeen), members[0].Score, 1)

		row, err := client.CollisionEvent.Query().
			Where(collisionevent.PairKeyEQ(pk)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, collisionevent.StatusDetecting, row.Status)
		assert.Equal(t, "st1-ca", row.Circle1ID)
		assert.Equal(t, "st1-cb", row.Circle2ID)
		assert.Equal(t, "st1-a", row.User1ID)
		assert.Equal(t, "st1-b", row.User2ID)

		assert.Equal(t, 0, launcher.count(), "tracking alone must not launch")

		stopBus(t, bus)
		assert.Len(t, busStore.StreamEntries("observer:events:collision.detected"), 1)
	})

	t.Run("repeat sighting refreshes last seen without resetting first seen", func(t *testing.T) {
		lat, lon := testArea(1)
		seedUserAt(t, client, "st2-a", lat, lon)
		seedUserAt(t, client, "st2-b", offsetNorth(lat, 300), lon)
		ca := seedActiveCircle(t, client, "st2-ca", "st2-a", 500)
		seedActiveCircle(t, client, "st2-cb", "st2-b", 500)

		kv := kvstore.NewMemoryStore()
		det := NewDetector(client, kv, nil, config.DefaultCollisionConfig(), nil)
		pk := geo.PairKey("st2-ca", "st2-cb")

		got := det.DetectCollisionsForUser(ctx, "st2-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		require.Len(t, got, 1)

		before, err := kv.HGetAll(ctx, activePairKey(pk))
		require.NoError(t, err)
		origFirst := hashInt(t, before, "first_seen_at")
		origRow, err := client.CollisionEvent.Query().Where(collisionevent.PairKeyEQ(pk)).Only(ctx)
		require.NoError(t, err)

		// Make the refresh observable: age last_seen_at and move the peer.
		backThen := time.Now().UTC().Add(-30 * time.Second)
		setHashTime(t, kv, pk, "last_seen_at", backThen)
		newPeerLat := offsetNorth(lat, 350)
		_, err = client.User.UpdateOneID("st2-b").SetLastLat(newPeerLat).Save(ctx)
		require.NoError(t, err)

		got = det.DetectCollisionsForUser(ctx, "st2-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		require.Len(t, got, 1)

		after, err := kv.HGetAll(ctx, activePairKey(pk))
		require.NoError(t, err)
		assert.Equal(t, origFirst, hashInt(t, after, "first_seen_at"))
		assert.Greater(t, hashInt(t, after, "last_seen_at"), backThen.UnixMilli())
		dist, err := strconv.ParseFloat(after["distance"], 64)
		require.NoError(t, err)
		assert.InDelta(t, geo.Haversine(lat, lon, newPeerLat, lon), dist, 0.5)

		row, err := client.CollisionEvent.Query().Where(collisionevent.PairKeyEQ(pk)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, collisionevent.StatusDetecting, row.Status)
		assert.WithinDuration(t, origRow.FirstSeenAt, row.FirstSeenAt, time.Millisecond)
		assert.True(t, row.LastSeenAt.After(origRow.LastSeenAt) || row.LastSeenAt.Equal(origRow.LastSeenAt))
		assert.InDelta(t, geo.Haversine(lat, lon, newPeerLat, lon), row.DistanceMeters, 0.5)

		require.Len(t, queueMembers(t, kv), 1, "repeat sightings must not duplicate the schedule entry")
	})

	t.Run("promotes once the stability window elapses", func(t *testing.T) {
		lat, lon := testArea(2)
		seedUserAt(t, client, "st3-a", lat, lon)
		seedUserAt(t, client, "st3-b", offsetNorth(lat, 300), lon)
		ca := seedActiveCircle(t, client, "st3-ca", "st3-a", 500)
		seedActiveCircle(t, client, "st3-cb", "st3-b", 500)

		bus, busStore := newEventBus(t)
		kv := kvstore.NewMemoryStore()
		cfg := config.DefaultCollisionConfig()
		launcher := &recordingLauncher{db: client, claim: true}
		det := NewDetector(client, kv, bus, cfg, launcher)
		pk := geo.PairKey("st3-ca", "st3-cb")

		got := det.DetectCollisionsForUser(ctx, "st3-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		require.Len(t, got, 1)
		require.Equal(t, 0, launcher.count(), "window not elapsed yet")

		setHashTime(t, kv, pk, "first_seen_at", time.Now().UTC().Add(-cfg.StabilityWindow-time.Minute))

		got = det.DetectCollisionsForUser(ctx, "st3-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		require.Len(t, got, 1)

		require.Equal(t, 1, launcher.count())
		handed := launcher.calls[0]
		assert.Equal(t, "st3-ca", handed.Circle1ID)
		assert.Equal(t, "st3-cb", handed.Circle2ID)

		row, err := client.CollisionEvent.Query().Where(collisionevent.PairKeyEQ(pk)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, collisionevent.StatusMissionCreated, row.Status)

		fields, err := kv.HGetAll(ctx, activePairKey(pk))
		require.NoError(t, err)
		assert.Empty(t, fields, "transient state is cleaned up after handoff")
		assert.Empty(t, queueMembers(t, kv))

		stopBus(t, bus)
		assert.Len(t, busStore.StreamEntries("observer:events:collision.stability_reached"), 1)
	})

	t.Run("a claimed pair never relaunches", func(t *testing.T) {
		lat, lon := testArea(3)
		seedUserAt(t, client, "st4-a", lat, lon)
		seedUserAt(t, client, "st4-b", offsetNorth(lat, 300), lon)
		ca := seedActiveCircle(t, client, "st4-ca", "st4-a", 500)
		seedActiveCircle(t, client, "st4-cb", "st4-b", 500)

		bus, busStore := newEventBus(t)
		kv := kvstore.NewMemoryStore()
		cfg := config.DefaultCollisionConfig()
		launcher := &recordingLauncher{db: client, claim: true}
		det := NewDetector(client, kv, bus, cfg, launcher)
		pk := geo.PairKey("st4-ca", "st4-cb")
		backdated := time.Now().UTC().Add(-cfg.StabilityWindow - time.Minute)

		det.DetectCollisionsForUser(ctx, "st4-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		setHashTime(t, kv, pk, "first_seen_at", backdated)
		det.DetectCollisionsForUser(ctx, "st4-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		require.Equal(t, 1, launcher.count())

		// The pair is still colliding, so detection keeps seeing it. A fresh
		// stability cycle must die at the claimed row instead of relaunching.
		det.DetectCollisionsForUser(ctx, "st4-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		setHashTime(t, kv, pk, "first_seen_at", backdated)
		det.DetectCollisionsForUser(ctx, "st4-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})

		assert.Equal(t, 1, launcher.count(), "claimed pair must not be handed off again")
		row, err := client.CollisionEvent.Query().Where(collisionevent.PairKeyEQ(pk)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, collisionevent.StatusMissionCreated, row.Status)

		fields, err := kv.HGetAll(ctx, activePairKey(pk))
		require.NoError(t, err)
		assert.Empty(t, fields, "losing promoter still cleans up its transient state")
		assert.Empty(t, queueMembers(t, kv))

		stopBus(t, bus)
		assert.Len(t, busStore.StreamEntries("observer:events:collision.stability_reached"), 1)
	})

	t.Run("handoff failure is retried on the next sighting", func(t *testing.T) {
		lat, lon := testArea(4)
		seedUserAt(t, client, "st5-a", lat, lon)
		seedUserAt(t, client, "st5-b", offsetNorth(lat, 300), lon)
		ca := seedActiveCircle(t, client, "st5-ca", "st5-a", 500)
		seedActiveCircle(t, client, "st5-cb", "st5-b", 500)

		bus, busStore := newEventBus(t)
		kv := kvstore.NewMemoryStore()
		cfg := config.DefaultCollisionConfig()
		launcher := &recordingLauncher{db: client, claim: true, failures: 1}
		det := NewDetector(client, kv, bus, cfg, launcher)
		pk := geo.PairKey("st5-ca", "st5-cb")

		det.DetectCollisionsForUser(ctx, "st5-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		setHashTime(t, kv, pk, "first_seen_at", time.Now().UTC().Add(-cfg.StabilityWindow-time.Minute))
		det.DetectCollisionsForUser(ctx, "st5-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})

		require.Equal(t, 1, launcher.count())
		row, err := client.CollisionEvent.Query().Where(collisionevent.PairKeyEQ(pk)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, collisionevent.StatusStable, row.Status, "promotion won but handoff failed")
		fields, err := kv.HGetAll(ctx, activePairKey(pk))
		require.NoError(t, err)
		require.NotEmpty(t, fields, "transient state survives a failed handoff")
		require.Len(t, queueMembers(t, kv), 1)

		// Next sighting finds the stable-but-unclaimed row and retries.
		det.DetectCollisionsForUser(ctx, "st5-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})

		require.Equal(t, 2, launcher.count())
		row, err = client.CollisionEvent.Query().Where(collisionevent.PairKeyEQ(pk)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, collisionevent.StatusMissionCreated, row.Status)
		fields, err = kv.HGetAll(ctx, activePairKey(pk))
		require.NoError(t, err)
		assert.Empty(t, fields)
		assert.Empty(t, queueMembers(t, kv))

		stopBus(t, bus)
		assert.Len(t, busStore.StreamEntries("observer:events:collision.stability_reached"), 1,
			"only the promotion winner announces stability")
	})

	t.Run("a policy denial ends the cycle instead of retrying", func(t *testing.T) {
		lat, lon := testArea(5)
		seedUserAt(t, client, "st6-a", lat, lon)
		seedUserAt(t, client, "st6-b", offsetNorth(lat, 300), lon)
		ca := seedActiveCircle(t, client, "st6-ca", "st6-a", 500)
		seedActiveCircle(t, client, "st6-cb", "st6-b", 500)

		kv := kvstore.NewMemoryStore()
		cfg := config.DefaultCollisionConfig()
		launcher := &recordingLauncher{db: client, deny: true}
		det := NewDetector(client, kv, nil, cfg, launcher)
		pk := geo.PairKey("st6-ca", "st6-cb")

		det.DetectCollisionsForUser(ctx, "st6-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		setHashTime(t, kv, pk, "first_seen_at", time.Now().UTC().Add(-cfg.StabilityWindow-time.Minute))
		det.DetectCollisionsForUser(ctx, "st6-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})

		require.Equal(t, 1, launcher.count())
		fields, err := kv.HGetAll(ctx, activePairKey(pk))
		require.NoError(t, err)
		assert.Empty(t, fields, "denied pairs are cleaned up, not retried")
		assert.Empty(t, queueMembers(t, kv))
	})
}

func TestDetector_RunScheduledPromotion(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("promotes a due pair that stayed fresh", func(t *testing.T) {
		lat, lon := testArea(0)
		seedUserAt(t, client, "sp1-a", lat, lon)
		seedUserAt(t, client, "sp1-b", offsetNorth(lat, 300), lon)
		ca := seedActiveCircle(t, client, "sp1-ca", "sp1-a", 500)
		seedActiveCircle(t, client, "sp1-cb", "sp1-b", 500)

		kv := kvstore.NewMemoryStore()
		launcher := &recordingLauncher{db: client, claim: true}
		det := NewDetector(client, kv, nil, config.DefaultCollisionConfig(), launcher)
		pk := geo.PairKey("sp1-ca", "sp1-cb")

		det.DetectCollisionsForUser(ctx, "sp1-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		require.Equal(t, 0, launcher.count())

		// Both owners went quiet on the update path, but the pair has been
		// together past the window: first seen long ago, last seen just now.
		firstSeen := time.Now().UTC().Add(-5 * time.Minute)
		setHashTime(t, kv, pk, "first_seen_at", firstSeen)
		require.NoError(t, kv.ZAdd(ctx, stabilityQueueKey, pk, float64(firstSeen.UnixMilli())))

		stats, err := det.RunScheduledPromotion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Due)
		assert.Equal(t, 1, stats.Promoted)
		assert.Equal(t, 0, stats.Expired)

		require.Equal(t, 1, launcher.count())
		row, err := client.CollisionEvent.Query().Where(collisionevent.PairKeyEQ(pk)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, collisionevent.StatusMissionCreated, row.Status)
		assert.Empty(t, queueMembers(t, kv))

		// A second pass finds nothing to do.
		stats, err = det.RunScheduledPromotion(ctx)
		require.NoError(t, err)
		assert.Equal(t, SweepStats{}, stats)
		assert.Equal(t, 1, launcher.count())
	})

	t.Run("expires a pair unseen past the inactivity window", func(t *testing.T) {
		lat, lon := testArea(1)
		seedUserAt(t, client, "sp2-a", lat, lon)
		seedUserAt(t, client, "sp2-b", offsetNorth(lat, 300), lon)
		ca := seedActiveCircle(t, client, "sp2-ca", "sp2-a", 500)
		seedActiveCircle(t, client, "sp2-cb", "sp2-b", 500)

		bus, busStore := newEventBus(t)
		kv := kvstore.NewMemoryStore()
		launcher := &recordingLauncher{db: client, claim: true}
		det := NewDetector(client, kv, bus, config.DefaultCollisionConfig(), launcher)
		pk := geo.PairKey("sp2-ca", "sp2-cb")

		det.DetectCollisionsForUser(ctx, "sp2-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})

		firstSeen := time.Now().UTC().Add(-10 * time.Minute)
		setHashTime(t, kv, pk, "first_seen_at", firstSeen)
		setHashTime(t, kv, pk, "last_seen_at", time.Now().UTC().Add(-5*time.Minute))
		require.NoError(t, kv.ZAdd(ctx, stabilityQueueKey, pk, float64(firstSeen.UnixMilli())))

		stats, err := det.RunScheduledPromotion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Due)
		assert.Equal(t, 0, stats.Promoted)
		assert.Equal(t, 1, stats.Expired)

		assert.Equal(t, 0, launcher.count(), "expired pairs never reach the launcher")
		row, err := client.CollisionEvent.Query().Where(collisionevent.PairKeyEQ(pk)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, collisionevent.StatusExpired, row.Status)

		fields, err := kv.HGetAll(ctx, activePairKey(pk))
		require.NoError(t, err)
		assert.Equal(t, "expired", fields["status"], "hash is tombstoned until its TTL reaps it")
		assert.Empty(t, queueMembers(t, kv))

		stopBus(t, bus)
		assert.Len(t, busStore.StreamEntries("observer:events:collision.expired"), 1)
	})

	t.Run("drops schedule entries with no state behind them", func(t *testing.T) {
		kv := kvstore.NewMemoryStore()
		det := NewDetector(client, kv, nil, config.DefaultCollisionConfig(), nil)

		stale := time.Now().UTC().Add(-10 * time.Minute)
		require.NoError(t, kv.ZAdd(ctx, stabilityQueueKey, "ghost-pair", float64(stale.UnixMilli())))

		stats, err := det.RunScheduledPromotion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Due)
		assert.Equal(t, 1, stats.Stale)
		assert.Empty(t, queueMembers(t, kv))
	})
}
