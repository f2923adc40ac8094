package observer

import (
	"sync"
	"time"
)

// BreakerState is the circuit breaker state.
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half_open"
)

// BreakerConfig tunes the flush circuit breaker.
type BreakerConfig struct {
	// FailureThreshold is the number of failures inside Window that opens
	// the circuit.
	FailureThreshold int `yaml:"failure_threshold"`
	// Window is the sliding window failures are counted over.
	Window time.Duration `yaml:"window"`
	// ResetTimeout is how long the circuit stays open before probing.
	ResetTimeout time.Duration `yaml:"reset_timeout"`
	// SuccessThreshold is the number of consecutive half-open successes
	// required to close.
	SuccessThreshold int `yaml:"success_threshold"`
}

// DefaultBreakerConfig returns the production breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		Window:           60 * time.Second,
		ResetTimeout:     30 * time.Second,
		SuccessThreshold: 3,
	}
}

// Breaker is a sliding-window circuit breaker guarding the store flush path.
//
// Closed: flushes pass; FailureThreshold failures within Window open the
// circuit. Open: flushes are rejected until ResetTimeout elapses, then the
// next Allow transitions to half-open. Half-open: flushes pass as probes;
// one failure reopens, SuccessThreshold consecutive successes close.
type Breaker struct {
	cfg BreakerConfig
	now func() time.Time

	mu                sync.Mutex
	state             BreakerState
	failures          []time.Time
	openedAt          time.Time
	halfOpenSuccesses int
	openCount         uint64
}

// NewBreaker creates a closed breaker.
func NewBreaker(cfg BreakerConfig) *Breaker {
	return &Breaker{
		cfg:   cfg,
		now:   time.Now,
		state: BreakerClosed,
	}
}

// Allow reports whether a flush may proceed. While open it returns false
// until ResetTimeout has elapsed, at which point the breaker moves to
// half-open and the call is allowed as a probe.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed, BreakerHalfOpen:
		return true
	case BreakerOpen:
		if b.now().Sub(b.openedAt) >= b.cfg.ResetTimeout {
			b.state = BreakerHalfOpen
			b.halfOpenSuccesses = 0
			return true
		}
		return false
	}
	return true
}

// RecordSuccess notes a successful flush.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		// Successes do not clear the failure window; only time does.
	case BreakerHalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.cfg.SuccessThreshold {
			b.state = BreakerClosed
			b.failures = nil
		}
	}
}

// RecordFailure notes a failed flush, opening the circuit when the windowed
// failure count reaches the threshold or when a half-open probe fails.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	switch b.state {
	case BreakerClosed:
		b.failures = append(b.failures, now)
		b.pruneLocked(now)
		if len(b.failures) >= b.cfg.FailureThreshold {
			b.openLocked(now)
		}
	case BreakerHalfOpen:
		b.openLocked(now)
	case BreakerOpen:
		// Already open; nothing to record.
	}
}

// State returns the current state without side effects.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// OpenCount returns how many times the circuit has opened.
func (b *Breaker) OpenCount() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.openCount
}

// pruneLocked drops failures that fell out of the sliding window.
func (b *Breaker) pruneLocked(now time.Time) {
	cutoff := now.Add(-b.cfg.Window)
	kept := b.failures[:0]
	for _, t := range b.failures {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	b.failures = kept
}

func (b *Breaker) openLocked(now time.Time) {
	b.state = BreakerOpen
	b.openedAt = now
	b.failures = nil
	b.halfOpenSuccesses = 0
	b.openCount++
}
