package highscore

import (
	"context"
	"sync"
)

// MemoryStore keeps scores for the lifetime of the process
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make([]Entry, 0, MaxEntries+1)}
}

// Record adds a run and drops anything beyond the top MaxEntries
func (m *MemoryStore) Record(ctx context.Context, label string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = rank(append(m.entries, Entry{Label: Sanitize(label), Score: score}), MaxEntries)
	return nil
}

// TopN returns up to n entries, highest score first
func (m *MemoryStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	out := make([]Entry, min(n, len(m.entries)))
	copy(out, m.entries)
	return out, nil
}
