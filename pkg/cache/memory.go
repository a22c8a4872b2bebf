package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is an in-process cache. Expired entries are dropped lazily on read
// and during Set.
type Memory struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	entries map[string]entry
}

// NewMemory creates an empty in-process cache. A nil clock uses the real clock.
func NewMemory(clock clockwork.Clock) *Memory {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Memory{
		clock:   clock,
		entries: make(map[string]entry),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, ErrMiss
	}
	if m.expired(e) {
		delete(m.entries, key)
		return nil, ErrMiss
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

// Set stores value. A non-positive ttl keeps the entry until it is deleted.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep()

	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expires = m.clock.Now().Add(ttl)
	}
	m.entries[key] = e
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Len reports the number of stored entries, including expired ones not yet swept.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }

func (m *Memory) expired(e entry) bool {
	return !e.expires.IsZero() && !m.clock.Now().Before(e.expires)
}

func (m *Memory) sweep() {
	for k, e := range m.entries {
		if m.expired(e) {
			delete(m.entries, k)
		}
	}
}
