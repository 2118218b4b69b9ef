package repository

import "sync"

// MemoryCache is the in-process cache used when no redis address is configured.
// It holds at most capacity entries and evicts the oldest key first.
type MemoryCache struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	data     map[string]string
}

// NewMemoryCache creates a cache holding at most capacity entries.
// A capacity of zero or less uses DefaultHistorySize.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &MemoryCache{
		capacity: capacity,
		data:     make(map[string]string),
	}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *MemoryCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// overwriting keeps the key's place in the eviction order
	if _, ok := m.data[key]; ok {
		m.data[key] = value
		return nil
	}

	if len(m.order) >= m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.data, oldest)
	}

	m.order = append(m.order, key)
	m.data[key] = value
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
