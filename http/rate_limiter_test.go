package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	ok, remaining := limiter.Allow("a")
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)

	ok, remaining = limiter.Allow("a")
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)

	ok, _ = limiter.Allow("a")
	assert.False(t, ok)

	// other clients have their own bucket
	ok, _ = limiter.Allow("b")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	ok, remaining = limiter.Allow("a")
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)
}

func TestRateLimiter_ZeroCapacity(t *testing.T) {
	limiter := NewRateLimiter(0, time.Minute)
	defer limiter.Stop()

	ok, _ := limiter.Allow("a")
	assert.False(t, ok)
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(5, time.Minute)
	defer limiter.Stop()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	limiter.Allow("idle")

	now = now.Add(2 * bucketCleanupThreshold)
	limiter.cleanup()

	assert.Empty(t, limiter.clients)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)

	assert.NotPanics(t, func() {
		limiter.Stop()
		limiter.Stop()
	})
}
