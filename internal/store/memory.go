// internal/store/memory.go
//
// In-memory cache of anagram result sets, keyed by normalized query.
// Used by the HTTP server so repeated lookups skip the dictionary scan.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Bounded: once limit entries are held, the oldest one is evicted.
//   - Slices are copied on Save and Get; callers never share storage.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/nagaram/internal/anagram"
)

// ErrNotFound is returned by Get for unknown keys.
var ErrNotFound = errors.New("store: not found")

// Store defines the cache interface for search results.
type Store interface {
	// Save stores results under key, replacing any previous value.
	Save(ctx context.Context, key string, results []anagram.Anagram) error

	// Get returns the results stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]anagram.Anagram, error)
}

type memory struct {
	mu      sync.RWMutex
	limit   int
	order   []string // insertion order, oldest first
	entries map[string][]anagram.Anagram
}

// NewMemoryStore returns a Store holding at most limit entries.
// A limit of zero or less means unbounded.
func NewMemoryStore(limit int) Store {
	return &memory{limit: limit, entries: make(map[string][]anagram.Anagram)}
}

func (m *memory) Save(ctx context.Context, key string, results []anagram.Anagram) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		if m.limit > 0 && len(m.order) >= m.limit {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.entries, oldest)
		}
		m.order = append(m.order, key)
	}
	m.entries[key] = clone(results)
	return nil
}

func (m *memory) Get(ctx context.Context, key string) ([]anagram.Anagram, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.entries[key]; ok {
		return clone(r), nil
	}
	return nil, ErrNotFound
}

func clone(r []anagram.Anagram) []anagram.Anagram {
	out := make([]anagram.Anagram, len(r))
	copy(out, r)
	return out
}
