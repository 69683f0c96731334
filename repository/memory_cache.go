package repository

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value  string
	expiry time.Time
}

// MemoryCache is an in-process CacheRepository. Stale entries are ignored on
// read rather than actively evicted; the next Set for the same key replaces
// them. The clock is injectable so tests can control expiry.
type MemoryCache struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithClock(time.Now)
}

func NewMemoryCacheWithClock(now func() time.Time) *MemoryCache {
	return &MemoryCache{
		now:     now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return "", false
	}
	if !entry.expiry.IsZero() && !m.now().Before(entry.expiry) {
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiry = m.now().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}
