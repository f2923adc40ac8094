package observer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/kvstore"
)

const allEventsStream = "observer:events:all"

// Config tunes the event bus.
type Config struct {
	// Enabled gates the whole observer layer. When false Emit is a no-op
	// and no flusher runs.
	Enabled bool `yaml:"enabled"`
	// BufferSize is the emit channel capacity. A full buffer drops.
	BufferSize int `yaml:"buffer_size"`
	// BatchSize flushes as soon as this many events are buffered.
	BatchSize int `yaml:"batch_size"`
	// BatchWait flushes a partial batch after this long.
	BatchWait time.Duration `yaml:"batch_wait"`
	// StreamMaxLen is the approximate cap on each event stream.
	StreamMaxLen int64 `yaml:"stream_max_len"`
	// EventTTL is how long individual event records live.
	EventTTL time.Duration `yaml:"event_ttl"`

	Breaker BreakerConfig `yaml:"breaker"`
}

// DefaultConfig returns production bus settings.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		BufferSize:   1000,
		BatchSize:    50,
		BatchWait:    100 * time.Millisecond,
		StreamMaxLen: 10000,
		EventTTL:     time.Hour,
		Breaker:      DefaultBreakerConfig(),
	}
}

// BusConfigFrom maps the application observer settings onto a bus Config.
func BusConfigFrom(c *config.ObserverConfig) Config {
	return Config{
		Enabled:      c.Enabled,
		BufferSize:   c.BufferSize,
		BatchSize:    c.BatchSize,
		BatchWait:    c.BatchWait,
		StreamMaxLen: c.StreamMaxLen,
		EventTTL:     c.EventTTL,
		Breaker: BreakerConfig{
			FailureThreshold: c.FailureThreshold,
			Window:           c.FailureWindow,
			ResetTimeout:     c.ResetTimeout,
			SuccessThreshold: c.SuccessThreshold,
		},
	}
}

// Stats is a point-in-time snapshot of bus counters.
type Stats struct {
	Emitted            uint64
	Flushed            uint64
	DroppedBufferFull  uint64
	DroppedBreakerOpen uint64
	FlushErrors        uint64
	BreakerState       BreakerState
	BreakerOpenCount   uint64
}

// Bus buffers observer events and flushes them to the store in batches.
// Emit never blocks and never returns an error; the observer path is
// strictly best-effort.
type Bus struct {
	cfg     Config
	store   kvstore.Store
	breaker *Breaker

	events  chan Event
	stopCh  chan struct{}
	done    chan struct{}
	started atomic.Bool

	emitted            atomic.Uint64
	flushed            atomic.Uint64
	droppedBufferFull  atomic.Uint64
	droppedBreakerOpen atomic.Uint64
	flushErrors        atomic.Uint64
}

// NewBus creates a bus. Call Start to begin flushing.
func NewBus(cfg Config, store kvstore.Store) *Bus {
	return &Bus{
		cfg:     cfg,
		store:   store,
		breaker: NewBreaker(cfg.Breaker),
		events:  make(chan Event, cfg.BufferSize),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the background flusher. No-op when the bus is disabled.
func (b *Bus) Start() {
	if !b.cfg.Enabled {
		slog.Info("Observer bus disabled")
		return
	}
	if !b.started.CompareAndSwap(false, true) {
		return
	}
	slog.Info("Observer bus started",
		"buffer_size", b.cfg.BufferSize,
		"batch_size", b.cfg.BatchSize,
		"batch_wait", b.cfg.BatchWait)
	go b.run()
}

// Emit enqueues an event for asynchronous flushing. Safe on a nil or
// disabled bus. When the buffer is full the event is dropped and counted.
func (b *Bus) Emit(event Event) {
	if b == nil || !b.cfg.Enabled {
		return
	}
	select {
	case b.events <- event:
		b.emitted.Add(1)
	default:
		b.droppedBufferFull.Add(1)
	}
}

// Stop drains buffered events, flushes them, and waits for the flusher to
// exit or ctx to expire.
func (b *Bus) Stop(ctx context.Context) error {
	if b == nil || !b.started.Load() {
		return nil
	}
	close(b.stopCh)
	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("observer bus did not stop in time: %w", ctx.Err())
	}
}

// Stats returns a snapshot of bus counters.
func (b *Bus) Stats() Stats {
	if b == nil {
		return Stats{BreakerState: BreakerClosed}
	}
	return Stats{
		Emitted:            b.emitted.Load(),
		Flushed:            b.flushed.Load(),
		DroppedBufferFull:  b.droppedBufferFull.Load(),
		DroppedBreakerOpen: b.droppedBreakerOpen.Load(),
		FlushErrors:        b.flushErrors.Load(),
		BreakerState:       b.breaker.State(),
		BreakerOpenCount:   b.breaker.OpenCount(),
	}
}

// run is the flusher loop: flush when a batch fills or when BatchWait
// elapses with a partial batch, whichever comes first.
func (b *Bus) run() {
	defer close(b.done)

	batch := make([]Event, 0, b.cfg.BatchSize)
	timer := time.NewTimer(b.cfg.BatchWait)
	defer timer.Stop()

	for {
		select {
		case ev := <-b.events:
			batch = append(batch, ev)
			if len(batch) >= b.cfg.BatchSize {
				b.flush(batch)
				batch = batch[:0]
				timer.Reset(b.cfg.BatchWait)
			}
		case <-timer.C:
			if len(batch) > 0 {
				b.flush(batch)
				batch = batch[:0]
			}
			timer.Reset(b.cfg.BatchWait)
		case <-b.stopCh:
			b.drain(batch)
			return
		}
	}
}

// drain flushes everything still buffered at shutdown.
func (b *Bus) drain(batch []Event) {
	for {
		select {
		case ev := <-b.events:
			batch = append(batch, ev)
			if len(batch) >= b.cfg.BatchSize {
				b.flush(batch)
				batch = batch[:0]
			}
		default:
			b.flush(batch)
			return
		}
	}
}

// flush writes one batch through a single pipeline: per event, the record
// hash with TTL plus entries on the per-type and global streams. A failing
// batch is discarded, not retried.
func (b *Bus) flush(batch []Event) {
	if len(batch) == 0 {
		return
	}
	if !b.breaker.Allow() {
		b.droppedBreakerOpen.Add(uint64(len(batch)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipe := b.store.Pipeline()
	written := 0
	for _, ev := range batch {
		fields, err := eventFields(ev)
		if err != nil {
			slog.Warn("Failed to encode observer event", "event_id", ev.ID, "type", ev.Type, "error", err)
			continue
		}
		key := eventKey(ev.ID)
		pipe.HSet(key, fields)
		pipe.Expire(key, b.cfg.EventTTL)

		entry := map[string]any{"event_id": ev.ID, "type": string(ev.Type)}
		pipe.XAdd(typeStream(ev.Type), b.cfg.StreamMaxLen, entry)
		pipe.XAdd(allEventsStream, b.cfg.StreamMaxLen, entry)
		written++
	}
	if written == 0 {
		return
	}

	if err := pipe.Exec(ctx); err != nil {
		b.breaker.RecordFailure()
		b.flushErrors.Add(1)
		slog.Warn("Failed to flush observer events", "batch_size", written, "error", err)
		return
	}
	b.breaker.RecordSuccess()
	b.flushed.Add(uint64(written))
}

func eventKey(id string) string {
	return "observer:event:" + id
}

func typeStream(t EventType) string {
	return "observer:events:" + string(t)
}

// eventFields renders an event as a flat hash. Optional fields are omitted
// when empty.
func eventFields(ev Event) (map[string]string, error) {
	fields := map[string]string{
		"event_id":   ev.ID,
		"type":       string(ev.Type),
		"user_id":    ev.UserID,
		"created_at": ev.CreatedAt.Format(time.RFC3339Nano),
	}
	if ev.RelatedUserID != "" {
		fields["related_user_id"] = ev.RelatedUserID
	}
	if ev.CircleID != "" {
		fields["circle_id"] = ev.CircleID
	}
	if len(ev.Metadata) > 0 {
		metadata, err := json.Marshal(ev.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event metadata: %w", err)
		}
		fields["metadata"] = string(metadata)
	}
	return fields, nil
}
