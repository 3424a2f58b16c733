package ratelimit

import (
	"sync"
	"time"
)

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindow is an in-process per-key fixed window counter. It only
// protects a single instance - a horizontally scaled deployment needs a
// shared counter store behind the Limiter interface instead, otherwise the
// limit is bypassed by spreading requests across instances.
type FixedWindow struct {
	mu       sync.Mutex
	max      int
	interval time.Duration
	windows  map[string]*window

	now func() time.Time
}

func NewFixedWindow(max int, interval time.Duration) *FixedWindow {
	return &FixedWindow{
		max:      max,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

func (f *FixedWindow) Allow(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()

	w, ok := f.windows[key]
	if !ok || now.After(w.resetAt) {
		if len(f.windows) >= 4096 {
			f.prune(now)
		}
		w = &window{resetAt: now.Add(f.interval)}
		f.windows[key] = w
	}

	if w.count >= f.max {
		return false
	}

	w.count++
	return true
}

// prune drops expired windows. Called with the lock held.
func (f *FixedWindow) prune(now time.Time) {
	for key, w := range f.windows {
		if now.After(w.resetAt) {
			delete(f.windows, key)
		}
	}
}
