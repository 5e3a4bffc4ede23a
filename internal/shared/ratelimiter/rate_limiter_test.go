package ratelimiter

import (
	"testing"
	"time"
)

func TestKeyedLimiter_Allow(t *testing.T) {
	t.Run("allows up to the limit within a window", func(t *testing.T) {
		rl := NewKeyedLimiter(3, time.Minute)

		for i := 0; i < 3; i++ {
			if !rl.Allow("a@example.com") {
				t.Fatalf("call %d should be allowed", i+1)
			}
		}
		if rl.Allow("a@example.com") {
			t.Errorf("call over the limit should be denied")
		}
	})

	t.Run("keys are limited independently", func(t *testing.T) {
		rl := NewKeyedLimiter(1, time.Minute)

		if !rl.Allow("a@example.com") {
			t.Fatalf("first key should be allowed")
		}
		if !rl.Allow("b@example.com") {
			t.Errorf("a different key should not share the window")
		}
		if rl.Allow("a@example.com") {
			t.Errorf("first key should now be denied")
		}
	})

	t.Run("window reset allows again", func(t *testing.T) {
		rl := NewKeyedLimiter(1, time.Minute)
		current := time.Unix(1000, 0)
		rl.now = func() time.Time { return current }

		if !rl.Allow("a@example.com") {
			t.Fatalf("first call should be allowed")
		}
		if rl.Allow("a@example.com") {
			t.Fatalf("second call should be denied")
		}

		current = current.Add(time.Minute)
		if !rl.Allow("a@example.com") {
			t.Errorf("call after the window should be allowed")
		}
	})

	t.Run("expired windows are pruned", func(t *testing.T) {
		rl := NewKeyedLimiter(1, time.Minute)
		current := time.Unix(1000, 0)
		rl.now = func() time.Time { return current }

		rl.Allow("a@example.com")
		rl.Allow("b@example.com")

		current = current.Add(2 * time.Minute)
		rl.Allow("c@example.com")

		rl.mu.Lock()
		defer rl.mu.Unlock()
		if len(rl.windows) != 1 {
			t.Errorf("stale windows should be pruned, have %d", len(rl.windows))
		}
	})
}
