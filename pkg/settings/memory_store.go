package settings

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemStore implements Store in memory. Useful for tests.
type InMemStore struct {
	mu   sync.RWMutex
	docs map[string]StoreSettings
}

// NewInMemStore returns an empty in-memory Store.
func NewInMemStore() *InMemStore {
	return &InMemStore{docs: make(map[string]StoreSettings)}
}

// Get retrieves settings by store ID.
func (s *InMemStore) Get(ctx context.Context, storeID string) (StoreSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[storeID]
	if !ok {
		return StoreSettings{}, ErrSettingsNotFound
	}
	return doc, nil
}

// Save creates or replaces the settings document.
func (s *InMemStore) Save(ctx context.Context, doc StoreSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.UpdatedAt = time.Now().UTC()
	s.docs[doc.StoreID] = doc
	return nil
}

// List returns settings for all stores, ordered by store ID for
// deterministic iteration.
func (s *InMemStore) List(ctx context.Context) ([]StoreSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]StoreSettings, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StoreID < out[j].StoreID })
	return out, nil
}
