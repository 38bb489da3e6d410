package product

import (
	"context"
	"sync"

	"MiniShop/pkg/kit"
)

// MemStore is an insertion-ordered product sequence. Duplicate ids are kept.
type MemStore struct {
	mu      sync.RWMutex
	records []kit.Record
}

// NewMemStore returns a store seeded with the default catalogue.
func NewMemStore() *MemStore {
	s := &MemStore{records: make([]kit.Record, 0, len(seed))}
	for _, p := range seed {
		s.records = append(s.records, p.Record())
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]kit.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]kit.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemStore) Add(ctx context.Context, rec kit.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	return nil
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
