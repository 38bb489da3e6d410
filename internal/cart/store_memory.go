package cart

import (
	"context"
	"sync"

	"MiniShop/pkg/kit"
)

type MemStore struct {
	mu    sync.RWMutex
	items []kit.Record
}

func NewMemStore() *MemStore {
	return &MemStore{items: []kit.Record{}}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]kit.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]kit.Record, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemStore) Add(ctx context.Context, item kit.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
	return nil
}

func (s *MemStore) Remove(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]kit.Record, 0, len(s.items))
	for _, it := range s.items {
		if matches(it, id) {
			continue
		}
		kept = append(kept, it)
	}

	removed := len(s.items) - len(kept)
	s.items = kept
	return removed, nil
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
