package handler

import (
	"github.com/dnaumov/person-api/internal/server"
	"github.com/dnaumov/person-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
//
// Mirrors the Middlewares and Services containers: router setup gets
// one object instead of a parameter per handler.
type Handlers struct {
	Persons *PersonHandler // Persons serves the person CRUD endpoints.
	Status  *StatusHandler // Status serves liveness and system endpoints.
}

// NewHandlers constructs the handler container.
//
// Parameters:
// - s: application container (logger/config/store)
// - services: business layer container
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Persons: NewPersonHandler(s, services),
		Status:  NewStatusHandler(s),
	}
}
