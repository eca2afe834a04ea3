package repository

import (
	"github.com/dnaumov/person-api/internal/server"
)

// Repositories is a container for all repository instances.
//
// Keeping a single container keeps dependency wiring flat: services
// accept one object instead of a growing parameter list.
type Repositories struct {
	Persons *PersonRepository
}

// NewRepositories constructs the repository container.
//
// Parameter:
// - s: application container (the store lives on s.Store, logger on s.Logger)
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Persons: NewPersonRepository(s),
	}
}
