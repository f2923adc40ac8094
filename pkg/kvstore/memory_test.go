package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.True(t, IsNotFound(err))

	require.NoError(t, s.Set(ctx, "k", "v", 0))
	val, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "k", "v", 10*time.Second))

	s.FastForward(9 * time.Second)
	_, err := s.Get(ctx, "k")
	require.NoError(t, err)

	s.FastForward(2 * time.Second)
	_, err = s.Get(ctx, "k")
	assert.True(t, IsNotFound(err))
}

func TestMemoryStore_SetNX(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	ok, err := s.SetNX(ctx, "lock", "a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.SetNX(ctx, "lock", "b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second SetNX on a live key should lose")

	val, err := s.Get(ctx, "lock")
	require.NoError(t, err)
	assert.Equal(t, "a", val)

	// Once the key expires the lock can be taken again.
	s.FastForward(2 * time.Minute)
	ok, err = s.SetNX(ctx, "lock", "c", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStore_Hashes(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	got, err := s.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Empty(t, got, "missing hash reads as empty map")

	require.NoError(t, s.HSet(ctx, "h", map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, s.HSetField(ctx, "h", "b", "3"))

	got, err = s.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "3"}, got)

	require.NoError(t, s.Expire(ctx, "h", time.Second))
	s.FastForward(2 * time.Second)
	got, err = s.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_SortedSets(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.ZAdd(ctx, "z", "c", 30))
	require.NoError(t, s.ZAdd(ctx, "z", "a", 10))
	require.NoError(t, s.ZAdd(ctx, "z", "b", 20))

	members, err := s.ZRangeByScore(ctx, "z", 0, 25, 0)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "a", members[0].Member)
	assert.Equal(t, "b", members[1].Member)

	members, err = s.ZRangeByScore(ctx, "z", 0, 100, 1)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "a", members[0].Member)

	require.NoError(t, s.ZRem(ctx, "z", "a"))
	members, err = s.ZRangeByScore(ctx, "z", 0, 100, 0)
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestMemoryStore_StreamTrim(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.XAdd(ctx, "st", 3, map[string]any{"i": i}))
	}

	entries := s.StreamEntries("st")
	require.Len(t, entries, 3, "stream trimmed to maxLen")
	assert.Equal(t, 2, entries[0].Values["i"], "oldest entries dropped first")
	assert.Equal(t, 4, entries[2].Values["i"])
}

func TestMemoryStore_Pipeline(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	pipe := s.Pipeline()
	pipe.HSet("h", map[string]string{"f": "v"})
	pipe.Expire("h", time.Minute)
	pipe.XAdd("st", 10, map[string]any{"k": "v"})

	// Nothing applied until Exec.
	got, err := s.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, pipe.Exec(ctx))

	got, err = s.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, "v", got["f"])

	ttl, ok := s.TTL("h")
	require.True(t, ok)
	assert.InDelta(t, time.Minute, ttl, float64(time.Second))

	assert.Len(t, s.StreamEntries("st"), 1)
}

func TestMemoryStore_Del(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "a", "1", 0))
	require.NoError(t, s.HSet(ctx, "b", map[string]string{"f": "v"}))
	require.NoError(t, s.Del(ctx, "a", "b"))

	_, err := s.Get(ctx, "a")
	assert.True(t, IsNotFound(err))
	got, err := s.HGetAll(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, got)
}
