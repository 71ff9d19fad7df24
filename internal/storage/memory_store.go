package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps records in process memory. Used by the memory backend and in tests.
type MemoryStore struct {
	mutex   sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(_ context.Context, kind RecordKind, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, ok := s.records[recordKey(kind, key)]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) Set(_ context.Context, kind RecordKind, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.records[recordKey(kind, key)] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, kind RecordKind, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.records, recordKey(kind, key))
	return nil
}

func (s *MemoryStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.records)
}
