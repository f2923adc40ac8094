package observer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testBreaker() (*Breaker, *time.Time) {
	b := NewBreaker(BreakerConfig{
		FailureThreshold: 5,
		Window:           time.Minute,
		ResetTimeout:     30 * time.Second,
		SuccessThreshold: 3,
	})
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return clock }
	return b, &clock
}

func TestBreaker_OpensAtThreshold(t *testing.T) {
	b, _ := testBreaker()

	for i := 0; i < 4; i++ {
		b.RecordFailure()
	}
	assert.Equal(t, BreakerClosed, b.State(), "below threshold stays closed")
	assert.True(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State(), "fifth failure in window opens")
	assert.False(t, b.Allow())
	assert.Equal(t, uint64(1), b.OpenCount())
}

func TestBreaker_WindowSlides(t *testing.T) {
	b, clock := testBreaker()

	for i := 0; i < 4; i++ {
		b.RecordFailure()
	}

	// Old failures age out of the window, so four fresh ones still do not
	// reach the threshold.
	*clock = clock.Add(2 * time.Minute)
	for i := 0; i < 4; i++ {
		b.RecordFailure()
	}
	assert.Equal(t, BreakerClosed, b.State())

	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State())
}

func TestBreaker_HalfOpenRecovery(t *testing.T) {
	b, clock := testBreaker()

	for i := 0; i < 5; i++ {
		b.RecordFailure()
	}
	assert.False(t, b.Allow())

	// Reset timeout elapses: next Allow is a half-open probe.
	*clock = clock.Add(31 * time.Second)
	assert.True(t, b.Allow())
	assert.Equal(t, BreakerHalfOpen, b.State())

	b.RecordSuccess()
	b.RecordSuccess()
	assert.Equal(t, BreakerHalfOpen, b.State(), "needs three consecutive successes")

	b.RecordSuccess()
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	b, clock := testBreaker()

	for i := 0; i < 5; i++ {
		b.RecordFailure()
	}
	*clock = clock.Add(31 * time.Second)
	assert.True(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State(), "half-open probe failure reopens")
	assert.False(t, b.Allow())
	assert.Equal(t, uint64(2), b.OpenCount())

	// The reset timer restarts from the reopen.
	*clock = clock.Add(29 * time.Second)
	assert.False(t, b.Allow())
	*clock = clock.Add(2 * time.Second)
	assert.True(t, b.Allow())
}
