package store

import (
	"errors"
	"strconv"
	"strings"
	"sync"
)

// ErrNotFound is returned when a record is not present in a collection.
// Callers branch on it with errors.Is; it is never a panic or a wrapped
// transport fault.
var ErrNotFound = errors.New("record not found")

// Record is the constraint for entity types held by a Store. Entities
// are value types; WithEntityID returns a copy carrying the given id.
type Record[T any] interface {
	EntityID() int
	WithEntityID(id int) T
}

// Store is an insertion-ordered, id-indexed collection of one entity
// type. It is the sole owner of its records: every read and write goes
// through it, serialized by a single mutex per collection.
type Store[T Record[T]] struct {
	mu      sync.Mutex
	records []T
}

// New creates a store pre-populated with the given seed records. Seed
// records keep the ids they carry; callers are responsible for seeding
// distinct ids.
func New[T Record[T]](seed ...T) *Store[T] {
	s := &Store[T]{}
	s.records = append(s.records, seed...)
	return s
}

// List returns a copy of the full collection in insertion order.
func (s *Store[T]) List() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store[T]) Get(id int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.EntityID() == id {
			return r, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Create allocates the next id, overwriting any id already present on
// the record, appends it to the collection and returns it. The id is
// 1 + the current maximum, or 1 for an empty collection. Deleting the
// highest-numbered record makes its id eligible for reuse; interior
// gaps are never reused.
func (s *Store[T]) Create(record T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, r := range s.records {
		if r.EntityID() > maxID {
			maxID = r.EntityID()
		}
	}
	record = record.WithEntityID(maxID + 1)
	s.records = append(s.records, record)
	return record
}

// Update locates the record with the given id, replaces it with the
// result of merge applied to the current value, and returns the merged
// record. Returns ErrNotFound without mutating anything if the id is
// absent.
func (s *Store[T]) Update(id int, merge func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.EntityID() == id {
			merged := merge(r)
			s.records[i] = merged
			return merged, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Delete removes the record with the given id. Deleting an absent id is
// not an error; the returned flag only reports whether a record was
// actually removed.
func (s *Store[T]) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.EntityID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the current number of records.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// ParseID coerces the external string form of an id, as it arrives from
// routing layers, to its integer form. This is the single coercion
// point for id arguments.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	return id, nil
}
