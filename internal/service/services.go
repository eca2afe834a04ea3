package service

import (
	"github.com/dnaumov/person-api/internal/repository"
	"github.com/dnaumov/person-api/internal/server"
)

type Services struct {
	Persons *PersonService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	personService := NewPersonService(s, repos.Persons)

	return &Services{
		Persons: personService,
	}, nil
}
