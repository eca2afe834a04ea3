package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dnaumov/person-api/internal/handler"
)

// registerPersonRoutes registers the person CRUD surface.
func registerPersonRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/name_search", h.Persons.Search())
	r.GET("/count", h.Persons.Count)

	r.GET("/person", h.Persons.List)
	r.POST("/person", h.Persons.Create())
	r.GET("/person/:id", h.Persons.Get())
	r.DELETE("/person/:id", h.Persons.Delete())
}
