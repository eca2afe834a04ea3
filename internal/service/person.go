package service

import (
	"github.com/dnaumov/person-api/internal/repository"
	"github.com/dnaumov/person-api/internal/server"
	"github.com/dnaumov/person-api/internal/store"
)

// PersonService carries the business operations over person records.
//
// Handlers never touch the repository directly; everything goes
// through here, so invariants (like "created records are returned
// exactly as stored") live in one place.
type PersonService struct {
	server *server.Server
	repo   *repository.PersonRepository
}

func NewPersonService(s *server.Server, repo *repository.PersonRepository) *PersonService {
	return &PersonService{
		server: s,
		repo:   repo,
	}
}

// List returns all records in insertion order.
func (ps *PersonService) List() []store.Person {
	return ps.repo.GetAll()
}

// SearchByName returns the records matching the given name fragment.
// The result is possibly empty; no match is not an error.
func (ps *PersonService) SearchByName(fragment string) []store.Person {
	return ps.repo.FindByName(fragment)
}

// Get returns a single record by id, or a not-found condition.
func (ps *PersonService) Get(id string) (store.Person, error) {
	return ps.repo.FindByID(id)
}

// Create inserts a new record and returns it as stored.
//
// A duplicate id surfaces as a conflict condition; the store is left
// unchanged in that case.
func (ps *PersonService) Create(p store.Person) (store.Person, error) {
	if err := ps.repo.Insert(p); err != nil {
		return store.Person{}, err
	}

	ps.server.Logger.Info().
		Str("person_id", p.ID).
		Msg("person created")

	return p, nil
}

// Delete removes a record by id, or reports a not-found condition.
// Records are immutable once created; deletion is the only mutation.
func (ps *PersonService) Delete(id string) error {
	if err := ps.repo.Delete(id); err != nil {
		return err
	}

	ps.server.Logger.Info().
		Str("person_id", id).
		Msg("person deleted")

	return nil
}

// Count reports the current number of records.
func (ps *PersonService) Count() int {
	return ps.repo.Count()
}
