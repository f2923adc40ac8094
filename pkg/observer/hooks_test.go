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

type hookReq struct{ userID string }
type hookRes struct{ count int }

func startedBus(t *testing.T, store kvstore.Store) *Bus {
	t.Helper()
	cfg := testBusConfig()
	cfg.BatchSize = 1
	cfg.BatchWait = 5 * time.Millisecond
	bus := NewBus(cfg, store)
	bus.Start()
	t.Cleanup(func() { _ = bus.Stop(context.Background()) })
	return bus
}

func TestInstrument_EmitsAndPreservesResults(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	bus := startedBus(t, store)

	hook := Hook[hookReq, hookRes]{
		Type:   EventLocationUpdated,
		UserID: func(req hookReq, _ hookRes) string { return req.userID },
		Metadata: func(_ hookReq, res hookRes, _ error) map[string]any {
			return map[string]any{"count": res.count}
		},
	}
	op := func(_ context.Context, _ hookReq) (hookRes, error) {
		return hookRes{count: 7}, nil
	}

	res, err := Instrument(bus, hook, op)(ctx, hookReq{userID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, 7, res.count)

	require.Eventually(t, func() bool {
		return bus.Stats().Flushed == 1
	}, time.Second, 5*time.Millisecond)

	entries := store.StreamEntries("observer:events:location.updated")
	require.Len(t, entries, 1)
	eventID, _ := entries[0].Values["event_id"].(string)
	fields, err := store.HGetAll(ctx, "observer:event:"+eventID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", fields["user_id"])
	assert.Contains(t, fields["metadata"], `"count":7`)
}

func TestInstrument_ErrorSuppressedByDefault(t *testing.T) {
	bus := startedBus(t, kvstore.NewMemoryStore())

	opErr := errors.New("boom")
	op := func(_ context.Context, _ hookReq) (hookRes, error) {
		return hookRes{}, opErr
	}
	hook := Hook[hookReq, hookRes]{Type: EventLocationSkipped}

	_, err := Instrument(bus, hook, op)(context.Background(), hookReq{})
	assert.ErrorIs(t, err, opErr, "wrapper must not swallow the error")
	assert.Zero(t, bus.Stats().Emitted)
}

func TestInstrument_EmitOnErrorAnnotates(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	bus := startedBus(t, store)

	op := func(_ context.Context, _ hookReq) (hookRes, error) {
		return hookRes{}, errors.New("vendor timeout")
	}
	hook := Hook[hookReq, hookRes]{
		Type:        EventMissionFailed,
		UserID:      func(req hookReq, _ hookRes) string { return req.userID },
		EmitOnError: true,
	}

	_, err := Instrument(bus, hook, op)(ctx, hookReq{userID: "user-1"})
	require.Error(t, err)

	require.Eventually(t, func() bool {
		return bus.Stats().Flushed == 1
	}, time.Second, 5*time.Millisecond)

	entries := store.StreamEntries("observer:events:agent_match.mission_failed")
	require.Len(t, entries, 1)
	eventID, _ := entries[0].Values["event_id"].(string)
	fields, err := store.HGetAll(ctx, "observer:event:"+eventID)
	require.NoError(t, err)
	assert.Contains(t, fields["metadata"], "vendor timeout")
}

func TestInstrument_PanickingExtractorRecovered(t *testing.T) {
	bus := startedBus(t, kvstore.NewMemoryStore())

	hook := Hook[hookReq, hookRes]{
		Type:   EventMatchCreated,
		UserID: func(hookReq, hookRes) string { panic("bad extractor") },
	}
	op := func(_ context.Context, _ hookReq) (hookRes, error) {
		return hookRes{count: 3}, nil
	}

	res, err := Instrument(bus, hook, op)(context.Background(), hookReq{})
	require.NoError(t, err, "extractor panic must not surface")
	assert.Equal(t, 3, res.count)
	assert.Zero(t, bus.Stats().Emitted, "panicked event is dropped")
}
