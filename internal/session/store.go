package session

import "FoodTechScanner/internal/ports"

// MemoryStore is the in-process key/value session bag. The UI event loop is
// the only mutator, so plain map access is enough; nothing survives the
// process.
type MemoryStore struct {
	values map[string]any
}

var _ ports.SessionStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]any{}}
}

// Get looks a value up by key.
func (m *MemoryStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value under key, replacing any previous value.
func (m *MemoryStore) Set(key string, value any) {
	m.values[key] = value
}
