// Package store contains the in-memory person store.
//
// It is the data layer of the application: a single mutex-guarded,
// insertion-ordered collection of Person records, seeded with a fixed
// data set at startup and discarded when the process exits. There is
// deliberately no persistence behind it.
//
// It handles:
//   - owning the canonical Person record type
//   - guarding all reads/writes so insert/delete are atomic with
//     respect to concurrent lookups
//   - seeding the fixed record set on New
package store

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// Person is the sole entity of the service.
//
// ID is the unique key and must be a syntactically valid UUID; that is
// enforced at the validation layer before a record ever reaches the
// store. Records are immutable once inserted; the only mutation the
// store supports is removal.
type Person struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	GraduationYear int    `json:"graduation_year"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Zip            string `json:"zip"`
	Country        string `json:"country"`
	Avatar         string `json:"avatar"`
}

// Sentinel errors reported by store operations.
//
// These play the role a database driver's error values would play in a
// persistent setup; the storeerr package translates them into HTTP
// error shapes.
var (
	// ErrDuplicateKey is returned by Put when a record with the same
	// id already exists.
	ErrDuplicateKey = errors.New("store: duplicate key")

	// ErrNoRecord is returned by Remove/Get when no record with the
	// given id exists.
	ErrNoRecord = errors.New("store: no record")
)

// Store wraps the in-memory record collection and a logger.
// It provides a simple object you can pass around the app.
//
// persons keeps insertion order; lookups scan linearly, which is fine
// at this scale and keeps order bookkeeping trivial on delete.
type Store struct {
	mu      sync.RWMutex
	persons []Person

	// log is used for lifecycle logs (seed/close).
	log *zerolog.Logger
}

// New creates the store and loads the fixed seed set.
//
// Unlike a database pool there is nothing to connect to or ping; New
// cannot fail.
func New(logger *zerolog.Logger) *Store {
	seed := seedPersons()

	logger.Info().
		Int("records", len(seed)).
		Msg("in-memory person store seeded")

	return &Store{
		persons: seed,
		log:     logger,
	}
}

// All returns a snapshot of every record in insertion order.
//
// The returned slice is a copy, so callers can never observe (or
// cause) a mutation of store internals. It has no failure mode.
func (s *Store) All() []Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Person, len(s.persons))
	copy(out, s.persons)
	return out
}

// Get returns the record with the given id, or ErrNoRecord.
func (s *Store) Get(id string) (Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.persons {
		if p.ID == id {
			return p, nil
		}
	}
	return Person{}, ErrNoRecord
}

// Put appends a record.
//
// The duplicate check and the append happen under the same write lock,
// so a concurrent Put with the same id cannot slip past the check.
func (s *Store) Put(p Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.persons {
		if existing.ID == p.ID {
			return ErrDuplicateKey
		}
	}

	s.persons = append(s.persons, p)
	return nil
}

// Remove deletes the record with the given id, or returns ErrNoRecord.
//
// A repeated remove of the same id therefore reports ErrNoRecord
// rather than silently succeeding.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.persons {
		if p.ID == id {
			s.persons = append(s.persons[:i], s.persons[i+1:]...)
			return nil
		}
	}
	return ErrNoRecord
}

// Len reports the current record count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.persons)
}

// Close releases the record set.
//
// There is no connection to tear down; this exists so the server
// shutdown path treats the data layer uniformly.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Info().
		Int("records", len(s.persons)).
		Msg("closing in-memory person store")

	s.persons = nil
	return nil
}
