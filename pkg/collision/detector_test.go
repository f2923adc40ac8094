package collision

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/database"
	"github.com/venn-social/vennd/pkg/geo"
	"github.com/venn-social/vennd/pkg/kvstore"
	"github.com/venn-social/vennd/pkg/models"
	testdb "github.com/venn-social/vennd/test/database"
)

// recordingLauncher stands in for the agent-match service. It records every
// handoff; with claim set it advances the durable row the way the real
// launcher does inside its transaction. failures makes the first N calls
// error to exercise retry; deny refuses every call by policy.
type recordingLauncher struct {
	mu       sync.Mutex
	db       *database.Client
	claim    bool
	deny     bool
	failures int
	calls    []models.DetectedCollision
}

func (l *recordingLauncher) CreateMissionForCollision(ctx context.Context, dc models.DetectedCollision) (*ent.InterviewMission, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, dc)
	if l.deny {
		return nil, fmt.Errorf("%w: pair is cooling down", ErrMissionDenied)
	}
	if l.failures > 0 {
		l.failures--
		return nil, fmt.Errorf("mission store unavailable")
	}
	if l.claim {
		pk := geo.PairKey(dc.Circle1ID, dc.Circle2ID)
		_, err := l.db.CollisionEvent.Update().
			Where(
				collisionevent.PairKeyEQ(pk),
				collisionevent.StatusEQ(collisionevent.StatusStable),
			).
			SetStatus(collisionevent.StatusMissionCreated).
			Save(ctx)
		if err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (l *recordingLauncher) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

func seedUserAt(t *testing.T, client *database.Client, id string, lat, lon float64) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetID(id).
		SetDisplayName("User " + id).
		SetEmail(id + "@example.com").
		SetProfile(map[string]interface{}{"interests": []string{"bouldering"}}).
		SetLastLat(lat).
		SetLastLon(lon).
		SetPositionUpdatedAt(time.Now().UTC()).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func seedActiveCircle(t *testing.T, client *database.Client, id, ownerID string, radius float64) *ent.Circle {
	t.Helper()
	now := time.Now().UTC()
	c, err := client.Circle.Create().
		SetID(id).
		SetOwnerUserID(ownerID).
		SetObjective("find a bouldering partner").
		SetRadiusMeters(radius).
		SetStartAt(now.Add(-time.Hour)).
		SetExpiresAt(now.Add(time.Hour)).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

// offsetNorth returns a latitude roughly meters north of lat. One degree of
// latitude is ~111.32km everywhere.
func offsetNorth(lat, meters float64) float64 {
	return lat + meters/111320.0
}

// testArea hands each subtest its own patch of the map, far enough from the
// others that their seeded users never enter one another's search radius.
func testArea(i int) (lat, lon float64) {
	return 40.7128, -74.0060 + float64(i)
}

func TestDetector_DetectCollisionsForUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("detects a peer inside the interaction radius", func(t *testing.T) {
		lat, lon := testArea(0)
		peerLat := offsetNorth(lat, 300)
		seedUserAt(t, client, "det1-a", lat, lon)
		seedUserAt(t, client, "det1-b", peerLat, lon)
		ca := seedActiveCircle(t, client, "det1-ca", "det1-a", 500)
		seedActiveCircle(t, client, "det1-cb", "det1-b", 400)

		det := NewDetector(client, kvstore.NewMemoryStore(), nil, config.DefaultCollisionConfig(), nil)
		got := det.DetectCollisionsForUser(ctx, "det1-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})

		require.Len(t, got, 1)
		dc := got[0]
		assert.Equal(t, "det1-ca", dc.Circle1ID)
		assert.Equal(t, "det1-cb", dc.Circle2ID)
		assert.Equal(t, "det1-a", dc.User1ID)
		assert.Equal(t, "det1-b", dc.User2ID)
		want := geo.Haversine(lat, lon, peerLat, lon)
		assert.InDelta(t, want, dc.DistanceMeters, 0.5)
	})

	t.Run("canonical order does not depend on which side detects", func(t *testing.T) {
		lat, lon := testArea(1)
		seedUserAt(t, client, "det2-a", lat, lon)
		seedUserAt(t, client, "det2-b", offsetNorth(lat, 250), lon)
		// "det2-zz" sorts after "det2-cb", so canonicalization has to swap
		// when zz's owner runs detection.
		cz := seedActiveCircle(t, client, "det2-zz", "det2-a", 500)
		seedActiveCircle(t, client, "det2-cb", "det2-b", 500)

		det := NewDetector(client, kvstore.NewMemoryStore(), nil, config.DefaultCollisionConfig(), nil)
		got := det.DetectCollisionsForUser(ctx, "det2-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{cz})

		require.Len(t, got, 1)
		assert.Equal(t, "det2-cb", got[0].Circle1ID)
		assert.Equal(t, "det2-zz", got[0].Circle2ID)
		assert.Equal(t, "det2-b", got[0].User1ID)
		assert.Equal(t, "det2-a", got[0].User2ID)
	})

	t.Run("ignores peers beyond the circle radius", func(t *testing.T) {
		lat, lon := testArea(2)
		seedUserAt(t, client, "det3-a", lat, lon)
		seedUserAt(t, client, "det3-b", offsetNorth(lat, 300), lon)
		ca := seedActiveCircle(t, client, "det3-ca", "det3-a", 200)
		seedActiveCircle(t, client, "det3-cb", "det3-b", 500)

		det := NewDetector(client, kvstore.NewMemoryStore(), nil, config.DefaultCollisionConfig(), nil)
		got := det.DetectCollisionsForUser(ctx, "det3-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		assert.Empty(t, got)
	})

	t.Run("search radius bounds candidates regardless of circle size", func(t *testing.T) {
		lat, lon := testArea(3)
		seedUserAt(t, client, "det4-a", lat, lon)
		seedUserAt(t, client, "det4-b", offsetNorth(lat, 2000), lon)
		ca := seedActiveCircle(t, client, "det4-ca", "det4-a", 50000)
		seedActiveCircle(t, client, "det4-cb", "det4-b", 50000)

		cfg := config.DefaultCollisionConfig()
		cfg.MaxSearchRadiusMeters = 1000
		det := NewDetector(client, kvstore.NewMemoryStore(), nil, cfg, nil)
		got := det.DetectCollisionsForUser(ctx, "det4-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		assert.Empty(t, got)
	})

	t.Run("never pairs a user's circles with each other", func(t *testing.T) {
		lat, lon := testArea(4)
		seedUserAt(t, client, "det5-a", lat, lon)
		c1 := seedActiveCircle(t, client, "det5-c1", "det5-a", 500)
		seedActiveCircle(t, client, "det5-c2", "det5-a", 500)

		det := NewDetector(client, kvstore.NewMemoryStore(), nil, config.DefaultCollisionConfig(), nil)
		got := det.DetectCollisionsForUser(ctx, "det5-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{c1})
		assert.Empty(t, got)
	})

	t.Run("only live peer circles are candidates", func(t *testing.T) {
		lat, lon := testArea(5)
		now := time.Now().UTC()
		seedUserAt(t, client, "det6-a", lat, lon)
		seedUserAt(t, client, "det6-b", offsetNorth(lat, 200), lon)
		seedUserAt(t, client, "det6-c", offsetNorth(lat, 200), lon)
		ca := seedActiveCircle(t, client, "det6-ca", "det6-a", 500)

		_, err := client.Circle.Create().
			SetID("det6-paused").SetOwnerUserID("det6-b").SetObjective("paused").
			SetRadiusMeters(500).SetStartAt(now.Add(-time.Hour)).SetExpiresAt(now.Add(time.Hour)).
			SetStatus("paused").
			Save(ctx)
		require.NoError(t, err)
		_, err = client.Circle.Create().
			SetID("det6-done").SetOwnerUserID("det6-c").SetObjective("over").
			SetRadiusMeters(500).SetStartAt(now.Add(-2 * time.Hour)).SetExpiresAt(now.Add(-time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		det := NewDetector(client, kvstore.NewMemoryStore(), nil, config.DefaultCollisionConfig(), nil)
		got := det.DetectCollisionsForUser(ctx, "det6-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		assert.Empty(t, got)
	})

	t.Run("peers without a position never appear", func(t *testing.T) {
		lat, lon := testArea(6)
		seedUserAt(t, client, "det7-a", lat, lon)
		_, err := client.User.Create().
			SetID("det7-b").
			SetDisplayName("User det7-b").
			SetEmail("det7-b@example.com").
			SetProfile(map[string]interface{}{}).
			Save(ctx)
		require.NoError(t, err)
		ca := seedActiveCircle(t, client, "det7-ca", "det7-a", 500)
		seedActiveCircle(t, client, "det7-cb", "det7-b", 500)

		det := NewDetector(client, kvstore.NewMemoryStore(), nil, config.DefaultCollisionConfig(), nil)
		got := det.DetectCollisionsForUser(ctx, "det7-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})
		assert.Empty(t, got)
	})

	t.Run("caps collisions per update at the nearest peers", func(t *testing.T) {
		lat, lon := testArea(7)
		seedUserAt(t, client, "det8-a", lat, lon)
		ca := seedActiveCircle(t, client, "det8-ca", "det8-a", 500)
		for i, dist := range []float64{100, 200, 300} {
			id := fmt.Sprintf("det8-p%d", i)
			seedUserAt(t, client, id, offsetNorth(lat, dist), lon)
			seedActiveCircle(t, client, id+"-c", id, 500)
		}

		cfg := config.DefaultCollisionConfig()
		cfg.MaxCollisionsPerUpdate = 2
		det := NewDetector(client, kvstore.NewMemoryStore(), nil, cfg, nil)
		got := det.DetectCollisionsForUser(ctx, "det8-a", geo.Point{Lat: lat, Lon: lon}, []*ent.Circle{ca})

		require.Len(t, got, 2)
		assert.Less(t, got[0].DistanceMeters, got[1].DistanceMeters)
		assert.Less(t, got[1].DistanceMeters, 250.0, "the two nearest peers win the cap")
	})

	t.Run("no circles means no detection", func(t *testing.T) {
		lat, lon := testArea(8)
		det := NewDetector(client, kvstore.NewMemoryStore(), nil, config.DefaultCollisionConfig(), nil)
		got := det.DetectCollisionsForUser(ctx, "det9-a", geo.Point{Lat: lat, Lon: lon}, nil)
		assert.Nil(t, got)
	})
}
