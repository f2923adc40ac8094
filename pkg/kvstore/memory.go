package kvstore

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store used in unit tests. It honors TTLs
// against a fake clock that tests advance with FastForward.
type MemoryStore struct {
	mu      sync.Mutex
	strings map[string]string
	hashes  map[string]map[string]string
	zsets   map[string]map[string]float64
	streams map[string][]StreamEntry
	expiry  map[string]time.Time
	offset  time.Duration
}

// StreamEntry is one appended stream record, exposed for test assertions.
type StreamEntry struct {
	Values map[string]any
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		strings: make(map[string]string),
		hashes:  make(map[string]map[string]string),
		zsets:   make(map[string]map[string]float64),
		streams: make(map[string][]StreamEntry),
		expiry:  make(map[string]time.Time),
	}
}

// FastForward advances the store's clock so TTL expiry can be tested
// without sleeping.
func (s *MemoryStore) FastForward(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset += d
}

func (s *MemoryStore) now() time.Time {
	return time.Now().Add(s.offset)
}

// expired reports whether key has a TTL in the past. Caller holds mu.
func (s *MemoryStore) expired(key string) bool {
	at, ok := s.expiry[key]
	return ok && !at.After(s.now())
}

// purge removes an expired key from every keyspace. Caller holds mu.
func (s *MemoryStore) purge(key string) {
	delete(s.strings, key)
	delete(s.hashes, key)
	delete(s.zsets, key)
	delete(s.streams, key)
	delete(s.expiry, key)
}

func (s *MemoryStore) liveCheck(key string) {
	if s.expired(key) {
		s.purge(key)
	}
}

func (s *MemoryStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveCheck(key)
	out := make(map[string]string, len(s.hashes[key]))
	for f, v := range s.hashes[key] {
		out[f] = v
	}
	return out, nil
}

func (s *MemoryStore) HSet(_ context.Context, key string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hsetLocked(key, fields)
	return nil
}

func (s *MemoryStore) hsetLocked(key string, fields map[string]string) {
	s.liveCheck(key)
	h, ok := s.hashes[key]
	if !ok {
		h = make(map[string]string, len(fields))
		s.hashes[key] = h
	}
	for f, v := range fields {
		h[f] = v
	}
}

func (s *MemoryStore) HSetField(_ context.Context, key, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hsetLocked(key, map[string]string{field: value})
	return nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strings[key] = value
	s.applyTTLLocked(key, ttl)
	return nil
}

func (s *MemoryStore) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveCheck(key)
	if _, exists := s.strings[key]; exists {
		return false, nil
	}
	s.strings[key] = value
	s.applyTTLLocked(key, ttl)
	return true, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveCheck(key)
	v, ok := s.strings[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) ZAdd(_ context.Context, key, member string, score float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveCheck(key)
	z, ok := s.zsets[key]
	if !ok {
		z = make(map[string]float64)
		s.zsets[key] = z
	}
	z[member] = score
	return nil
}

func (s *MemoryStore) ZRangeByScore(_ context.Context, key string, min, max float64, limit int64) ([]ZMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveCheck(key)
	var members []ZMember
	for m, score := range s.zsets[key] {
		if score >= min && score <= max {
			members = append(members, ZMember{Member: m, Score: score})
		}
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].Score != members[j].Score {
			return members[i].Score < members[j].Score
		}
		return members[i].Member < members[j].Member
	})
	if limit > 0 && int64(len(members)) > limit {
		members = members[:limit]
	}
	return members, nil
}

func (s *MemoryStore) ZRem(_ context.Context, key string, members ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveCheck(key)
	for _, m := range members {
		delete(s.zsets[key], m)
	}
	return nil
}

func (s *MemoryStore) XAdd(_ context.Context, stream string, maxLen int64, values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.xaddLocked(stream, maxLen, values)
	return nil
}

func (s *MemoryStore) xaddLocked(stream string, maxLen int64, values map[string]any) {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	entries := append(s.streams[stream], StreamEntry{Values: copied})
	if maxLen > 0 && int64(len(entries)) > maxLen {
		entries = entries[int64(len(entries))-maxLen:]
	}
	s.streams[stream] = entries
}

func (s *MemoryStore) Del(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		s.purge(key)
	}
	return nil
}

func (s *MemoryStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveCheck(key)
	if !s.existsLocked(key) {
		return nil
	}
	s.applyTTLLocked(key, ttl)
	return nil
}

func (s *MemoryStore) existsLocked(key string) bool {
	if _, ok := s.strings[key]; ok {
		return true
	}
	if _, ok := s.hashes[key]; ok {
		return true
	}
	if _, ok := s.zsets[key]; ok {
		return true
	}
	_, ok := s.streams[key]
	return ok
}

func (s *MemoryStore) applyTTLLocked(key string, ttl time.Duration) {
	if ttl > 0 {
		s.expiry[key] = s.now().Add(ttl)
	} else {
		delete(s.expiry, key)
	}
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Pipeline() Pipeline {
	return &memoryPipeline{store: s}
}

// StreamEntries returns a copy of a stream's entries for assertions.
func (s *MemoryStore) StreamEntries(stream string) []StreamEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveCheck(stream)
	out := make([]StreamEntry, len(s.streams[stream]))
	copy(out, s.streams[stream])
	return out
}

// TTL returns the remaining lifetime of key, or false when no TTL is set.
func (s *MemoryStore) TTL(key string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.expiry[key]
	if !ok {
		return 0, false
	}
	return at.Sub(s.now()), true
}

type memoryPipeline struct {
	store *MemoryStore
	ops   []func(*MemoryStore)
}

func (p *memoryPipeline) HSet(key string, fields map[string]string) {
	copied := make(map[string]string, len(fields))
	for f, v := range fields {
		copied[f] = v
	}
	p.ops = append(p.ops, func(s *MemoryStore) { s.hsetLocked(key, copied) })
}

func (p *memoryPipeline) Expire(key string, ttl time.Duration) {
	p.ops = append(p.ops, func(s *MemoryStore) {
		if s.existsLocked(key) {
			s.applyTTLLocked(key, ttl)
		}
	})
}

func (p *memoryPipeline) XAdd(stream string, maxLen int64, values map[string]any) {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	p.ops = append(p.ops, func(s *MemoryStore) { s.xaddLocked(stream, maxLen, copied) })
}

func (p *memoryPipeline) Exec(context.Context) error {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	for _, op := range p.ops {
		op(p.store)
	}
	p.ops = nil
	return nil
}
