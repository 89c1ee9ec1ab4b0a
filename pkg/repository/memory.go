package repository

import (
	"context"
	"sync"
	"time"

	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
)

// memorySweepInterval is the minimum time between two sweeps of expired entries
const memorySweepInterval = time.Minute

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory implements interfaces.Cache with an in-process map
type Memory struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	now       func() time.Time
	nextSweep time.Time
}

// MemoryOption configures Memory
type MemoryOption func(*Memory)

// WithMemoryClock replaces the clock used to expire entries
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory creates an empty memory cache
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ interfaces.Cache = (*Memory)(nil)

// Get returns a copy of the cached value. Expired entries are dropped.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		m.mu.Lock()
		if current, ok := m.entries[key]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}

	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, true, nil
}

// Put stores a copy of value. Expired entries are swept at most once per
// memorySweepInterval.
func (m *Memory) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := m.now()
	entry := memoryEntry{value: make([]byte, len(value))}
	copy(entry.value, value)
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !now.Before(m.nextSweep) {
		m.sweep(now)
		m.nextSweep = now.Add(memorySweepInterval)
	}
	m.entries[key] = entry
	return nil
}

// Sweep removes every expired entry and returns how many were removed
func (m *Memory) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweep(m.now())
}

func (m *Memory) sweep(now time.Time) int {
	removed := 0
	for key, entry := range m.entries {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired or not
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close drops all entries
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoryEntry)
	return nil
}
