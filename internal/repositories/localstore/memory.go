package localstore

import "sync"

// memoryStore is the session-only store used when the device store is unavailable
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an in-process store
func NewMemory() *memoryStore {
	return &memoryStore{
		values: make(map[string]string),
	}
}

func (m *memoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
