package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dnaumov/person-api/internal/errs"
	"github.com/dnaumov/person-api/internal/server"
	"github.com/dnaumov/person-api/internal/service"
	"github.com/dnaumov/person-api/internal/store"
	"github.com/dnaumov/person-api/internal/validation"
)

// PersonHandler exposes the person CRUD endpoints.
type PersonHandler struct {
	Handler

	persons *service.PersonService
}

// NewPersonHandler constructs a PersonHandler with access to shared
// app dependencies and the person service.
func NewPersonHandler(s *server.Server, services *service.Services) *PersonHandler {
	return &PersonHandler{
		Handler: NewHandler(s),
		persons: services.Persons,
	}
}

// --- Request payloads --------------------------------------------------------

// CreatePersonRequest is the payload for POST /person.
//
// Every field is required; submitting a JSON number where text is
// expected fails at bind time with a field-level error. The id must be
// a syntactically valid UUID and the avatar a URL.
//
// GraduationYear is a pointer so "required" means presence: a year of
// 0 is a valid value and must not be mistaken for a missing field.
type CreatePersonRequest struct {
	ID             string `json:"id" validate:"required,uuid"`
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	GraduationYear *int   `json:"graduation_year" validate:"required"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city" validate:"required"`
	Zip            string `json:"zip" validate:"required"`
	Country        string `json:"country" validate:"required"`
	Avatar         string `json:"avatar" validate:"required,url"`
}

func (r *CreatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// person maps the validated payload onto the storage record.
func (r *CreatePersonRequest) person() store.Person {
	return store.Person{
		ID:             r.ID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		GraduationYear: *r.GraduationYear,
		Address:        r.Address,
		City:           r.City,
		Zip:            r.Zip,
		Country:        r.Country,
		Avatar:         r.Avatar,
	}
}

// NameSearchRequest is the payload for GET /name_search.
type NameSearchRequest struct {
	Q string `query:"q"`
}

// Validate enforces the documented search rules: the fragment is
// required (400 when missing), and numeric-looking input is rejected
// as invalid for a name field (422), even though it arrived as a
// string.
func (r *NameSearchRequest) Validate() error {
	if validation.TrimmedEmpty(r.Q) {
		return errs.NewBadRequestError("Invalid input parameter", []errs.FieldError{
			{Field: "q", Reason: "is required"},
		})
	}

	if validation.IsDigits(r.Q) {
		return errs.NewUnprocessableEntityError("Invalid input parameter", []errs.FieldError{
			{Field: "q", Reason: "must not be numeric"},
		})
	}

	return nil
}

// PersonIDRequest carries the id path segment of GET/DELETE
// /person/:id.
type PersonIDRequest struct {
	ID string `param:"id"`
}

// Validate short-circuits malformed UUIDs with a validation error
// before any store lookup happens.
func (r *PersonIDRequest) Validate() error {
	if !validation.IsValidUUID(r.ID) {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			{Field: "id", Reason: "must be a valid UUID"},
		})
	}

	return nil
}

// --- Endpoints ---------------------------------------------------------------

// Create returns the POST /person handler: 201 with the created
// record, 409 when the id already exists.
func (h *PersonHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}

func (h *PersonHandler) create(c echo.Context, req *CreatePersonRequest) (store.Person, error) {
	return h.persons.Create(req.person())
}

// Search returns the GET /name_search handler: 200 with a (possibly
// empty) array of matches.
func (h *PersonHandler) Search() echo.HandlerFunc {
	return Handle(h.Handler, h.search, http.StatusOK)
}

func (h *PersonHandler) search(c echo.Context, req *NameSearchRequest) ([]store.Person, error) {
	return h.persons.SearchByName(req.Q), nil
}

// Get returns the GET /person/:id handler: 200 with the record, 404
// when the id is unknown.
func (h *PersonHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK)
}

func (h *PersonHandler) get(c echo.Context, req *PersonIDRequest) (store.Person, error) {
	return h.persons.Get(req.ID)
}

// Delete returns the DELETE /person/:id handler: 200 with a
// confirmation payload, 404 when the id is unknown (including a
// repeated delete of the same id).
func (h *PersonHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, h.delete, http.StatusOK)
}

func (h *PersonHandler) delete(c echo.Context, req *PersonIDRequest) (map[string]string, error) {
	if err := h.persons.Delete(req.ID); err != nil {
		return nil, err
	}

	return map[string]string{
		"message": fmt.Sprintf("Person with ID %s deleted", req.ID),
	}, nil
}

// List handles GET /person: the full record set in insertion order.
func (h *PersonHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.persons.List())
}

// Count handles GET /count: the current number of stored records.
func (h *PersonHandler) Count(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{
		"count": h.persons.Count(),
	})
}
