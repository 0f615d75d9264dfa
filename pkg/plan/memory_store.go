package plan

import (
	"context"
	"sync"
)

// InMemStore implements Store using an in-memory plan map.
// Useful for tests and single-process deployments.
type InMemStore struct {
	mu    sync.RWMutex
	plans map[string]Plan
}

// NewInMemStore returns an in-memory Store seeded with deep copies of the
// given plans. Seeding panics on duplicate keys to fail fast at wiring time.
func NewInMemStore(seed ...Plan) *InMemStore {
	s := &InMemStore{plans: make(map[string]Plan, len(seed))}
	for _, p := range seed {
		if _, exists := s.plans[p.Key]; exists {
			panic("plan: duplicate seed key " + p.Key)
		}
		s.plans[p.Key] = p.Clone()
	}
	return s
}

// Load returns a deep copy of all stored plans.
func (s *InMemStore) Load(ctx context.Context) (Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Catalog(s.plans).Clone(), nil
}

// Get retrieves a plan by key.
func (s *InMemStore) Get(ctx context.Context, key string) (Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plans[key]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return p.Clone(), nil
}

// Insert adds a new plan.
func (s *InMemStore) Insert(ctx context.Context, p Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.plans[p.Key]; exists {
		return ErrDuplicateKey
	}
	s.plans[p.Key] = p.Clone()
	return nil
}

// Update replaces the stored plan if the version still matches, then
// advances the version.
func (s *InMemStore) Update(ctx context.Context, p Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.plans[p.Key]
	if !ok {
		return ErrPlanNotFound
	}
	if current.Version != p.Version {
		return ErrConflict
	}

	next := p.Clone()
	next.Version++
	s.plans[p.Key] = next
	return nil
}

// Delete removes a plan by key.
func (s *InMemStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plans[key]; !ok {
		return ErrPlanNotFound
	}
	delete(s.plans, key)
	return nil
}
