package ratelimit

import (
	"sync"
	"time"
)

// window tracks one client key: how many requests landed inside the live
// window and when that window resets.
type window struct {
	count   int
	resetAt time.Time
}

// memoryLimiter is the process-local [Limiter] implementation. State is not
// shared across replicas, so horizontal scale-out weakens enforcement to
// per-instance ceilings — acceptable for abuse deterrence, not for strict
// quota accounting.
type memoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*window

	limit  int
	period time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewMemoryLimiter constructs a [Limiter] allowing limit requests per key
// within each period-long window.
func NewMemoryLimiter(limit int, period time.Duration) Limiter {
	if limit <= 0 {
		limit = 1
	}
	if period <= 0 {
		period = time.Minute
	}

	return &memoryLimiter{
		entries: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}
}

// Allow implements [Limiter].
func (m *memoryLimiter) Allow(key string) (bool, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	entry, ok := m.entries[key]
	if !ok || !entry.resetAt.After(now) {
		m.entries[key] = &window{count: 1, resetAt: now.Add(m.period)}
		return true, 0
	}

	entry.count++
	if entry.count > m.limit {
		return false, entry.resetAt.Sub(now)
	}

	return true, 0
}

// Purge implements [Limiter]. It sweeps the whole map, dropping windows that
// have already reset, and bounds memory growth between janitor runs.
func (m *memoryLimiter) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, entry := range m.entries {
		if !entry.resetAt.After(now) {
			delete(m.entries, key)
		}
	}
}
