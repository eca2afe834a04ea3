package repository

import (
	"strings"

	"github.com/dnaumov/person-api/internal/server"
	"github.com/dnaumov/person-api/internal/store"
	"github.com/dnaumov/person-api/internal/storeerr"
)

// personEntity tags store errors so the error funnel can phrase
// messages for this record type ("Person not found", etc).
const personEntity = "person"

// PersonRepository is the data-access layer for Person records.
//
// All methods are safe for concurrent use; atomicity of the underlying
// mutations is guaranteed by the store.
type PersonRepository struct {
	store *store.Store
}

// NewPersonRepository constructs a PersonRepository from the shared app
// container.
func NewPersonRepository(s *server.Server) *PersonRepository {
	return &PersonRepository{
		store: s.Store,
	}
}

// GetAll returns every record in insertion order. It has no failure
// mode; an empty store yields an empty slice.
func (r *PersonRepository) GetAll() []store.Person {
	return r.store.All()
}

// FindByName returns the records whose first or last name contains the
// given fragment.
//
// Case policy: the match is case-insensitive ("abdel" matches "Abdel").
// No match is not an error; the result is simply empty.
func (r *PersonRepository) FindByName(fragment string) []store.Person {
	needle := strings.ToLower(fragment)

	matches := []store.Person{}
	for _, p := range r.store.All() {
		if strings.Contains(strings.ToLower(p.FirstName), needle) ||
			strings.Contains(strings.ToLower(p.LastName), needle) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindByID returns the record with the given id.
//
// Fails with a NoRecord condition when the id is unknown.
func (r *PersonRepository) FindByID(id string) (store.Person, error) {
	p, err := r.store.Get(id)
	if err != nil {
		return store.Person{}, storeerr.Convert(personEntity, id, err)
	}
	return p, nil
}

// Insert appends a new record.
//
// Fails with a DuplicateKey condition when a record with the same id
// already exists; the store is left unchanged in that case.
func (r *PersonRepository) Insert(p store.Person) error {
	return storeerr.Convert(personEntity, p.ID, r.store.Put(p))
}

// Delete removes the record with the given id.
//
// Fails with a NoRecord condition when the id is unknown, including on
// a repeated delete of the same id.
func (r *PersonRepository) Delete(id string) error {
	return storeerr.Convert(personEntity, id, r.store.Remove(id))
}

// Count reports the current number of records.
func (r *PersonRepository) Count() int {
	return r.store.Len()
}
