// Package ratelimit provides a fixed-window request limiter for the
// authentication endpoints.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter is the interface adapters use to throttle requests.
type Limiter interface {
	// Allow reports whether one more request is allowed for the key.
	Allow(ctx context.Context, key string) (bool, error)

	// Reset clears the counter for the key.
	Reset(ctx context.Context, key string) error

	// Close releases any resources held by the limiter.
	Close() error
}

// Config holds the limiter parameters.
type Config struct {
	// Rate is the number of requests allowed per window.
	Rate int

	// Window is the length of the counting window.
	Window time.Duration
}

// DefaultConfig allows 10 requests per minute per key.
func DefaultConfig() *Config {
	return &Config{
		Rate:   10,
		Window: time.Minute,
	}
}

type entry struct {
	count    int
	windowAt time.Time
}

// MemoryLimiter is an in-memory fixed-window limiter. A background
// goroutine evicts expired windows; call Close to stop it.
type MemoryLimiter struct {
	mu      sync.RWMutex
	entries map[string]*entry
	rate    int
	window  time.Duration
	done    chan struct{}
}

// Ensure MemoryLimiter implements Limiter
var _ Limiter = (*MemoryLimiter)(nil)

func NewMemoryLimiter(rate int, window time.Duration) *MemoryLimiter {
	ml := &MemoryLimiter{
		entries: make(map[string]*entry),
		rate:    rate,
		window:  window,
		done:    make(chan struct{}),
	}

	go ml.cleanup()

	return ml
}

func (m *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	e, exists := m.entries[key]

	if !exists || now.After(e.windowAt) {
		m.entries[key] = &entry{
			count:    1,
			windowAt: now.Add(m.window),
		}
		return m.rate >= 1, nil
	}

	if e.count >= m.rate {
		return false, nil
	}

	e.count++
	return true, nil
}

func (m *MemoryLimiter) Reset(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// ResetAt returns when the window for key rolls over. Adapters use it for
// the Retry-After header.
func (m *MemoryLimiter) ResetAt(key string) time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, exists := m.entries[key]
	if !exists {
		return time.Now()
	}
	return e.windowAt
}

// Close stops the cleanup goroutine.
func (m *MemoryLimiter) Close() error {
	close(m.done)
	return nil
}

func (m *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(m.window)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.removeExpired()
		}
	}
}

func (m *MemoryLimiter) removeExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, e := range m.entries {
		if now.After(e.windowAt) {
			delete(m.entries, key)
		}
	}
}
