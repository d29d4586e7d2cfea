package repository

import (
	"context"
	"sync"

	"foodcart_backend/internal/places"
)

// MemoryStore is an in-process place store.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]places.Place
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]places.Place)}
}

var _ places.Store = (*MemoryStore)(nil)

func (s *MemoryStore) Get(_ context.Context, address string) (places.Place, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	place, ok := s.items[address]
	return place, ok, nil
}

func (s *MemoryStore) Put(_ context.Context, place places.Place) error {
	s.mu.Lock()
	s.items[place.Address] = place
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored addresses.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
