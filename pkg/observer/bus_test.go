package observer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venn-social/vennd/pkg/kvstore"
)

func testBusConfig() Config {
	cfg := DefaultConfig()
	cfg.BatchSize = 2
	cfg.BatchWait = 10 * time.Millisecond
	return cfg
}

func TestBus_FlushesEventRecordAndStreams(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	bus := NewBus(testBusConfig(), store)
	bus.Start()
	defer func() { _ = bus.Stop(ctx) }()

	ev := NewEvent(EventCollisionDetected, "user-1")
	ev.RelatedUserID = "user-2"
	ev.CircleID = "circle-9"
	ev.Metadata = map[string]any{"distance_meters": 42.5}
	bus.Emit(ev)
	bus.Emit(NewEvent(EventLocationUpdated, "user-3"))

	require.Eventually(t, func() bool {
		return bus.Stats().Flushed == 2
	}, time.Second, 5*time.Millisecond)

	fields, err := store.HGetAll(ctx, "observer:event:"+ev.ID)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, fields["event_id"])
	assert.Equal(t, "collision.detected", fields["type"])
	assert.Equal(t, "user-1", fields["user_id"])
	assert.Equal(t, "user-2", fields["related_user_id"])
	assert.Equal(t, "circle-9", fields["circle_id"])
	assert.Contains(t, fields["metadata"], "distance_meters")

	ttl, ok := store.TTL("observer:event:" + ev.ID)
	require.True(t, ok, "event record carries a TTL")
	assert.Greater(t, ttl, time.Duration(0))

	assert.Len(t, store.StreamEntries(allEventsStream), 2)
	typed := store.StreamEntries("observer:events:collision.detected")
	require.Len(t, typed, 1)
	assert.Equal(t, ev.ID, typed[0].Values["event_id"])
}

func TestBus_PartialBatchFlushesAfterWait(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	cfg := testBusConfig()
	cfg.BatchSize = 100
	bus := NewBus(cfg, store)
	bus.Start()
	defer func() { _ = bus.Stop(ctx) }()

	bus.Emit(NewEvent(EventMatchCreated, "user-1"))

	require.Eventually(t, func() bool {
		return bus.Stats().Flushed == 1
	}, time.Second, 5*time.Millisecond)
}

func TestBus_DisabledIsNoop(t *testing.T) {
	cfg := testBusConfig()
	cfg.Enabled = false
	bus := NewBus(cfg, kvstore.NewMemoryStore())
	bus.Start()

	bus.Emit(NewEvent(EventLocationUpdated, "user-1"))

	stats := bus.Stats()
	assert.Zero(t, stats.Emitted)
	assert.Zero(t, stats.DroppedBufferFull)
	require.NoError(t, bus.Stop(context.Background()))
}

func TestBus_NilBusIsSafe(t *testing.T) {
	var bus *Bus
	bus.Emit(NewEvent(EventLocationUpdated, "user-1"))
	require.NoError(t, bus.Stop(context.Background()))
	assert.Equal(t, BreakerClosed, bus.Stats().BreakerState)
}

func TestBus_FullBufferDrops(t *testing.T) {
	cfg := testBusConfig()
	cfg.BufferSize = 1
	// Not started: nothing consumes the buffer.
	bus := NewBus(cfg, kvstore.NewMemoryStore())

	bus.Emit(NewEvent(EventLocationUpdated, "user-1"))
	bus.Emit(NewEvent(EventLocationUpdated, "user-2"))

	stats := bus.Stats()
	assert.Equal(t, uint64(1), stats.Emitted)
	assert.Equal(t, uint64(1), stats.DroppedBufferFull)
}

func TestBus_StopDrainsBuffered(t *testing.T) {
	store := kvstore.NewMemoryStore()
	cfg := testBusConfig()
	cfg.BatchSize = 100
	cfg.BatchWait = time.Minute
	bus := NewBus(cfg, store)
	bus.Start()

	for i := 0; i < 3; i++ {
		bus.Emit(NewEvent(EventMissionCreated, "user-1"))
	}
	require.NoError(t, bus.Stop(context.Background()))

	assert.Equal(t, uint64(3), bus.Stats().Flushed)
	assert.Len(t, store.StreamEntries(allEventsStream), 3)
}

// failingStore wraps the in-memory store with a pipeline whose Exec always
// fails, to drive the breaker.
type failingStore struct {
	*kvstore.MemoryStore
}

func (f *failingStore) Pipeline() kvstore.Pipeline { return failingPipeline{} }

type failingPipeline struct{}

func (failingPipeline) HSet(string, map[string]string)     {}
func (failingPipeline) Expire(string, time.Duration)       {}
func (failingPipeline) XAdd(string, int64, map[string]any) {}
func (failingPipeline) Exec(context.Context) error         { return errors.New("store down") }

func TestBus_BreakerOpensAndDrops(t *testing.T) {
	ctx := context.Background()
	cfg := testBusConfig()
	cfg.BatchSize = 1
	cfg.BatchWait = 5 * time.Millisecond
	cfg.Breaker.FailureThreshold = 3
	bus := NewBus(cfg, &failingStore{kvstore.NewMemoryStore()})
	bus.Start()
	defer func() { _ = bus.Stop(ctx) }()

	for i := 0; i < 3; i++ {
		bus.Emit(NewEvent(EventLocationUpdated, "user-1"))
	}
	require.Eventually(t, func() bool {
		return bus.Stats().BreakerState == BreakerOpen
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, uint64(3), bus.Stats().FlushErrors)

	// With the circuit open, further batches are dropped without touching
	// the store.
	bus.Emit(NewEvent(EventLocationUpdated, "user-1"))
	require.Eventually(t, func() bool {
		return bus.Stats().DroppedBreakerOpen >= 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, uint64(3), bus.Stats().FlushErrors, "no new flush attempts while open")
}
