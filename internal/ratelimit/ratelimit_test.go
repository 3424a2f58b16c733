package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindow(t *testing.T) {
	t.Run("allows up to max requests inside one window", func(t *testing.T) {
		limiter := NewFixedWindow(5, time.Hour)

		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("1.2.3.4"), "request %d should pass", i+1)
		}
		assert.False(t, limiter.Allow("1.2.3.4"), "6th request inside the window should be rejected")
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter := NewFixedWindow(1, time.Hour)

		assert.True(t, limiter.Allow("1.2.3.4"))
		assert.False(t, limiter.Allow("1.2.3.4"))
		assert.True(t, limiter.Allow("5.6.7.8"))
	})

	t.Run("window resets after the interval", func(t *testing.T) {
		limiter := NewFixedWindow(5, time.Hour)

		current := time.Now()
		limiter.now = func() time.Time { return current }

		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("1.2.3.4"))
		}
		assert.False(t, limiter.Allow("1.2.3.4"))

		current = current.Add(time.Hour + time.Minute)
		assert.True(t, limiter.Allow("1.2.3.4"), "first request of a new window should pass")
	})

	t.Run("prunes expired windows instead of growing forever", func(t *testing.T) {
		limiter := NewFixedWindow(1, time.Hour)

		current := time.Now()
		limiter.now = func() time.Time { return current }

		for i := 0; i < 4096; i++ {
			limiter.Allow(string(rune(i)))
		}

		current = current.Add(2 * time.Hour)
		limiter.Allow("fresh")

		assert.Equal(t, 1, len(limiter.windows))
	})
}
