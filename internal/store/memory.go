package store

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/akbarovs/uybaho/pkg/types"
)

// MemoryStore implements Store with an in-process map. It backs the
// server when no database is configured and the handler tests.
type MemoryStore struct {
	mu       sync.RWMutex
	saved    map[string]domain.SavedProperty
	maxSaved int
	nowFunc  func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithMemoryNowFunc overrides the clock for testing.
func WithMemoryNowFunc(f func() time.Time) MemoryOption {
	return func(m *MemoryStore) { m.nowFunc = f }
}

// NewMemoryStore creates an empty MemoryStore capped at maxSaved entries;
// values below 1 fall back to 10.
func NewMemoryStore(maxSaved int, opts ...MemoryOption) *MemoryStore {
	if maxSaved < 1 {
		maxSaved = 10
	}
	m := &MemoryStore{
		saved:    make(map[string]domain.SavedProperty),
		maxSaved: maxSaved,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SaveProperty stores a saved property, enforcing the cap.
func (m *MemoryStore) SaveProperty(_ context.Context, sp *domain.SavedProperty) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.saved) >= m.maxSaved {
		return ErrLimitReached
	}

	sp.CreatedAt = m.nowFunc()
	m.saved[sp.ID] = *sp
	return nil
}

// GetSaved retrieves a saved property by id.
func (m *MemoryStore) GetSaved(_ context.Context, id string) (*domain.SavedProperty, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sp, ok := m.saved[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sp, nil
}

// ListSaved returns all saved properties, newest first.
func (m *MemoryStore) ListSaved(_ context.Context) ([]domain.SavedProperty, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.SavedProperty, 0, len(m.saved))
	for _, sp := range m.saved {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// DeleteSaved removes a saved property by id.
func (m *MemoryStore) DeleteSaved(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.saved[id]; !ok {
		return ErrNotFound
	}
	delete(m.saved, id)
	return nil
}

// CountSaved returns the number of saved properties.
func (m *MemoryStore) CountSaved(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.saved), nil
}

// DeleteOlderThan removes saved properties created before the cutoff.
func (m *MemoryStore) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, sp := range m.saved {
		if sp.CreatedAt.Before(cutoff) {
			delete(m.saved, id)
			removed++
		}
	}
	return removed, nil
}

// Ping always succeeds for the in-memory store.
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() {}
