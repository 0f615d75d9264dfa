package notification

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemStore implements Store in memory. Useful for tests.
type InMemStore struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]Notification
}

// NewInMemStore returns an empty in-memory Store.
func NewInMemStore() *InMemStore {
	return &InMemStore{docs: make(map[uuid.UUID]Notification)}
}

// List returns all notifications, newest first.
func (s *InMemStore) List(ctx context.Context) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Notification, 0, len(s.docs))
	for _, n := range s.docs {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Get retrieves a notification by ID.
func (s *InMemStore) Get(ctx context.Context, id uuid.UUID) (Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.docs[id]
	if !ok {
		return Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

// Create inserts a new notification.
func (s *InMemStore) Create(ctx context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[n.ID] = n
	return nil
}

// Update replaces an existing notification.
func (s *InMemStore) Update(ctx context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[n.ID]; !ok {
		return ErrNotificationNotFound
	}
	s.docs[n.ID] = n
	return nil
}

// Delete removes a notification.
func (s *InMemStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return ErrNotificationNotFound
	}
	delete(s.docs, id)
	return nil
}
