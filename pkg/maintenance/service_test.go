package maintenance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/pkg/collision"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/kvstore"
	"github.com/venn-social/vennd/pkg/observer"
	testdb "github.com/venn-social/vennd/test/database"
)

// countingSweeper records scheduled promotion passes. When block is set it
// parks until released, holding the tick slot open.
type countingSweeper struct {
	mu      sync.Mutex
	calls   int
	block   chan struct{}
	entered chan struct{}
}

func (s *countingSweeper) RunScheduledPromotion(ctx context.Context) (collision.SweepStats, error) {
	s.mu.Lock()
	s.calls++
	block := s.block
	entered := s.entered
	s.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
		}
	}
	return collision.SweepStats{}, nil
}

func (s *countingSweeper) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func seedCollision(ctx context.Context, t *testing.T, client *ent.Client, pairKey string, status collisionevent.Status, age time.Duration) *ent.CollisionEvent {
	t.Helper()

	ce, err := client.CollisionEvent.Create().
		SetID(uuid.New().String()).
		SetPairKey(pairKey).
		SetCircle1ID(pairKey + "-c1").
		SetCircle2ID(pairKey + "-c2").
		SetUser1ID(pairKey + "-u1").
		SetUser2ID(pairKey + "-u2").
		SetDistanceMeters(30).
		SetFirstSeenAt(time.Now().Add(-age)).
		SetLastSeenAt(time.Now().Add(-age)).
		SetStatus(status).
		SetCreatedAt(time.Now().Add(-age)).
		Save(ctx)
	require.NoError(t, err)
	return ce
}

func seedMatch(ctx context.Context, t *testing.T, client *ent.Client, pairKey string, status match.Status, age time.Duration) *ent.Match {
	t.Helper()

	ce := seedCollision(ctx, t, client, pairKey, collisionevent.StatusMatched, age)

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

	m, err := client.Match.Create().
		SetID(uuid.New().String()).
		SetMissionID(mission.ID).
		SetPrimaryUserID(pairKey + "-u1").
		SetSecondaryUserID(pairKey + "-u2").
		SetPrimaryCircleID(pairKey + "-c1").
		SetSecondaryCircleID(pairKey + "-c2").
		SetWorthItScore(0.8).
		SetStatus(status).
		SetCreatedAt(time.Now().Add(-age)).
		Save(ctx)
	require.NoError(t, err)
	return m
}

func newSweepEventBus(t *testing.T) (*observer.Bus, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	cfg := observer.DefaultConfig()
	cfg.BatchWait = 10 * time.Millisecond
	bus := observer.NewBus(cfg, store)
	bus.Start()
	return bus, store
}

func stopSweepBus(t *testing.T, bus *observer.Bus) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, bus.Stop(ctx))
}

func TestService_ExpiresStaleCollisions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	bus, busStore := newSweepEventBus(t)

	stale := seedCollision(ctx, t, client.Client, "mx1", collisionevent.StatusDetecting, 49*time.Hour)
	staleStable := seedCollision(ctx, t, client.Client, "mx2", collisionevent.StatusStable, 49*time.Hour)
	matched := seedCollision(ctx, t, client.Client, "mx3", collisionevent.StatusMatched, 49*time.Hour)
	fresh := seedCollision(ctx, t, client.Client, "mx4", collisionevent.StatusDetecting, time.Hour)

	svc := NewService(client.Client, &countingSweeper{}, bus, config.DefaultMaintenanceConfig())
	svc.RunExpiryTick(ctx)
	stopSweepBus(t, bus)

	for _, id := range []string{stale.ID, staleStable.ID} {
		row, err := client.CollisionEvent.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, collisionevent.StatusExpired, row.Status)
	}

	row, err := client.CollisionEvent.Get(ctx, matched.ID)
	require.NoError(t, err)
	assert.Equal(t, collisionevent.StatusMatched, row.Status, "matched pairs keep their status")

	row, err = client.CollisionEvent.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, collisionevent.StatusDetecting, row.Status, "fresh pairs are untouched")

	assert.Len(t, busStore.StreamEntries("observer:events:collision.expired"), 2)
}

func TestService_ExpiryTickIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	bus, busStore := newSweepEventBus(t)

	seedCollision(ctx, t, client.Client, "mi1", collisionevent.StatusDetecting, 49*time.Hour)

	svc := NewService(client.Client, &countingSweeper{}, bus, config.DefaultMaintenanceConfig())
	svc.RunExpiryTick(ctx)
	svc.RunExpiryTick(ctx)
	stopSweepBus(t, bus)

	assert.Len(t, busStore.StreamEntries("observer:events:collision.expired"), 1,
		"second pass must not re-expire")
}

func TestService_ExpiresUnansweredMatches(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	bus, busStore := newSweepEventBus(t)

	stale := seedMatch(ctx, t, client.Client, "mm1", match.StatusPendingAccept, 25*time.Hour)
	active := seedMatch(ctx, t, client.Client, "mm2", match.StatusActive, 25*time.Hour)
	fresh := seedMatch(ctx, t, client.Client, "mm3", match.StatusPendingAccept, time.Hour)

	svc := NewService(client.Client, &countingSweeper{}, bus, config.DefaultMaintenanceConfig())
	svc.RunExpiryTick(ctx)
	stopSweepBus(t, bus)

	row, err := client.Match.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, match.StatusExpired, row.Status)
	assert.Nil(t, row.RespondedAt, "expiry is not a response")

	row, err = client.Match.Get(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, match.StatusActive, row.Status, "accepted matches never expire")

	row, err = client.Match.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, match.StatusPendingAccept, row.Status)

	entries := busStore.StreamEntries("observer:events:match.expired")
	require.Len(t, entries, 1)
	eventID, ok := entries[0].Values["event_id"].(string)
	require.True(t, ok)
	fields, err := busStore.HGetAll(ctx, "observer:event:"+eventID)
	require.NoError(t, err)
	assert.Contains(t, fields["metadata"], stale.ID)
}

func TestService_StabilityTickRunsPromotion(t *testing.T) {
	client := testdb.NewTestClient(t)
	sweeper := &countingSweeper{}

	svc := NewService(client.Client, sweeper, nil, config.DefaultMaintenanceConfig())
	svc.RunStabilityTick(context.Background())

	assert.Equal(t, 1, sweeper.count())
}

func TestService_SkipsOverlappingStabilityTicks(t *testing.T) {
	client := testdb.NewTestClient(t)
	sweeper := &countingSweeper{
		block:   make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	svc := NewService(client.Client, sweeper, nil, config.DefaultMaintenanceConfig())

	go svc.RunStabilityTick(context.Background())
	<-sweeper.entered

	// The first pass is parked inside the sweeper; this tick must bounce.
	svc.RunStabilityTick(context.Background())
	assert.Equal(t, 1, sweeper.count())

	close(sweeper.block)
}

func TestService_SkipsOverlappingExpiryTicks(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seedCollision(ctx, t, client.Client, "mo1", collisionevent.StatusDetecting, 49*time.Hour)

	svc := NewService(client.Client, &countingSweeper{}, nil, config.DefaultMaintenanceConfig())

	svc.expiryBusy.Store(true)
	svc.RunExpiryTick(ctx)

	row, err := client.CollisionEvent.Query().Where(collisionevent.PairKeyEQ("mo1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, collisionevent.StatusDetecting, row.Status, "tick must be skipped while busy")

	svc.expiryBusy.Store(false)
	svc.RunExpiryTick(ctx)

	row, err = client.CollisionEvent.Query().Where(collisionevent.PairKeyEQ("mo1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, collisionevent.StatusExpired, row.Status)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	sweeper := &countingSweeper{}

	cfg := config.DefaultMaintenanceConfig()
	cfg.StabilityInterval = 20 * time.Millisecond
	cfg.ExpiryInterval = time.Hour

	svc := NewService(client.Client, sweeper, nil, cfg)
	svc.Start(context.Background())

	deadline := time.After(5 * time.Second)
	for sweeper.count() < 3 {
		select {
		case <-deadline:
			t.Fatalf("stability sweeper ran %d times, want at least 3", sweeper.count())
		case <-time.After(10 * time.Millisecond):
		}
	}

	svc.Stop()
	after := sweeper.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, sweeper.count(), "no ticks after Stop")

	// Stop again is a no-op.
	svc.Stop()
}
