// Package kvstore provides the typed key/value and stream capability layer
// over Redis used for transient pipeline state: cached positions, collision
// stability hashes, cooldowns, in-flight locks, and observer event streams.
//
// The Store interface is intentionally narrow — only the operations the
// pipeline needs — so tests can substitute the in-memory implementation.
package kvstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key is missing. Callers can distinguish it
// from transport errors with errors.Is.
var ErrNotFound = errors.New("kvstore: key not found")

// IsNotFound reports whether err indicates a missing key rather than a
// transport failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ZMember is a sorted-set member with its score.
type ZMember struct {
	Member string
	Score  float64
}

// Store is the capability surface over the KV/stream backend.
//
// Hash reads on missing keys return an empty map (Redis semantics); string
// Get on a missing key returns ErrNotFound. All other errors are transport
// errors.
type Store interface {
	// Hashes.
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetField(ctx context.Context, key, field, value string) error

	// Strings.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetNX sets the key only if it does not exist. Returns true when the
	// set won (the caller now holds the key).
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)

	// Sorted sets.
	ZAdd(ctx context.Context, key, member string, score float64) error
	// ZRangeByScore returns members with min <= score <= max, ascending.
	// limit <= 0 means no limit.
	ZRangeByScore(ctx context.Context, key string, min, max float64, limit int64) ([]ZMember, error)
	ZRem(ctx context.Context, key string, members ...string) error

	// Streams.
	// XAdd appends to a stream, trimming to approximately maxLen entries.
	XAdd(ctx context.Context, stream string, maxLen int64, values map[string]any) error

	// Keys.
	Del(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Pipeline returns a batched writer executed in a single round trip.
	Pipeline() Pipeline

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}

// Pipeline batches write commands. Commands are buffered until Exec; a
// pipeline error fails the whole batch.
type Pipeline interface {
	HSet(key string, fields map[string]string)
	Expire(key string, ttl time.Duration)
	XAdd(stream string, maxLen int64, values map[string]any)
	Exec(ctx context.Context) error
}
