package entitlement

import (
	"context"
	"sync"
)

// InMemStore implements Store using an in-memory record map.
// Useful for tests and single-process deployments.
type InMemStore struct {
	mu      sync.RWMutex
	records map[string]StoreRecord
}

// NewInMemStore returns an empty in-memory Store.
func NewInMemStore() *InMemStore {
	return &InMemStore{records: make(map[string]StoreRecord)}
}

// Get retrieves a record by store ID.
func (s *InMemStore) Get(ctx context.Context, storeID string) (StoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[storeID]
	if !ok {
		return StoreRecord{}, ErrStoreNotFound
	}
	return rec.Clone(), nil
}

// Insert adds a new record.
func (s *InMemStore) Insert(ctx context.Context, rec StoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.StoreID]; exists {
		return ErrStoreExists
	}
	s.records[rec.StoreID] = rec.Clone()
	return nil
}

// Update replaces the stored record if the version still matches, then
// advances the version.
func (s *InMemStore) Update(ctx context.Context, rec StoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[rec.StoreID]
	if !ok {
		return ErrStoreNotFound
	}
	if current.Version != rec.Version {
		return ErrConflict
	}

	next := rec.Clone()
	next.Version++
	s.records[rec.StoreID] = next
	return nil
}

// CountByPlan returns how many records reference the given plan key.
func (s *InMemStore) CountByPlan(ctx context.Context, planKey string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, rec := range s.records {
		if rec.Plan == planKey {
			n++
		}
	}
	return n, nil
}
