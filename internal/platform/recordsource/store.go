package recordsource

import (
	"errors"
	"sync"

	"github.com/ehr/recordview/internal/domain/record"
)

var ErrNotFound = errors.New("record not found")

// Store is an in-memory, insertion-ordered record set. It plays the
// external data layer the views forward star and delete intents to.
type Store struct {
	mu      sync.RWMutex
	records []record.Record
}

func NewStore(records []record.Record) *Store {
	s := &Store{records: make([]record.Record, len(records))}
	copy(s.records, records)
	return s
}

// List returns a snapshot of the records in insertion order.
func (s *Store) List() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]record.Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) Get(id string) (record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return record.Record{}, ErrNotFound
	}
	return s.records[i], nil
}

// ToggleStar flips the starred flag and returns the new value.
func (s *Store) ToggleStar(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false, ErrNotFound
	}
	s.records[i].IsStarred = !s.records[i].IsStarred
	return s.records[i].IsStarred, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
