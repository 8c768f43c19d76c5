// Package ratelimit provides per-user sliding-window admission control.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter admits up to limit requests per user within a sliding window.
// Each user has an independent window guarded by its own mutex, so
// unrelated users never contend.
type Limiter struct {
	limit  int
	window time.Duration

	mu      sync.RWMutex
	windows map[int64]*userWindow
}

type userWindow struct {
	mu    sync.Mutex
	times []time.Time
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		windows: make(map[int64]*userWindow),
	}
}

// Admit reports whether a request arriving at now may proceed. Timestamps
// older than the window are evicted first; an admitted request is recorded,
// a denied one is not.
func (l *Limiter) Admit(userID int64, now time.Time) bool {
	w := l.userWindow(userID)

	w.mu.Lock()
	defer w.mu.Unlock()

	keep := w.times[:0]
	for _, t := range w.times {
		if now.Sub(t) < l.window {
			keep = append(keep, t)
		}
	}
	w.times = keep

	if len(w.times) >= l.limit {
		return false
	}
	w.times = append(w.times, now)
	return true
}

func (l *Limiter) userWindow(userID int64) *userWindow {
	l.mu.RLock()
	w := l.windows[userID]
	l.mu.RUnlock()
	if w != nil {
		return w
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if w = l.windows[userID]; w == nil {
		w = &userWindow{}
		l.windows[userID] = w
	}
	return w
}
