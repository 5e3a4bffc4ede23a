package ratelimiter

import (
	"sync"
	"time"
)

// KeyedLimiterは、キー（メールアドレスなど）ごとに固定ウィンドウで
// 操作回数を制限します。上限超過時は待機せず即座に拒否します。
type KeyedLimiter struct {
	mu       sync.Mutex
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか
	windows  map[string]*window
	now      func() time.Time
}

type window struct {
	start time.Time
	count int
}

// NewKeyedLimiterは新しいKeyedLimiterのインスタンスを生成します。
func NewKeyedLimiter(limit int, interval time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Allowはキーの現在のウィンドウ内で上限に達しているかを確認し、
// 許可される場合はカウントを進めてtrueを返します。
func (rl *KeyedLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	// interval を過ぎたウィンドウは作り直す
	w := rl.windows[key]
	if w == nil || now.Sub(w.start) >= rl.interval {
		rl.prune(now)
		rl.windows[key] = &window{start: now, count: 1}
		return true
	}

	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// pruneは期限切れのウィンドウを破棄します。呼び出し側がロックを保持します。
func (rl *KeyedLimiter) prune(now time.Time) {
	for key, w := range rl.windows {
		if now.Sub(w.start) >= rl.interval {
			delete(rl.windows, key)
		}
	}
}
