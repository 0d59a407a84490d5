package vectorstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used in tests and for running
// without Mongo.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Upsert(_ context.Context, records ...Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.records[r.ID] = r
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (s *MemoryStore) DeleteBySource(_ context.Context, source, recordType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, r := range s.records {
		if r.Metadata["source"] == source && r.Metadata["type"] == recordType {
			delete(s.records, id)
		}
	}
	return nil
}

func (s *MemoryStore) ListByType(_ context.Context, recordType string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Record
	for _, r := range s.records {
		if r.Metadata["type"] == recordType {
			out = append(out, r)
		}
	}
	return out, nil
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
