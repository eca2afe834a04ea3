package storeerr

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dnaumov/person-api/internal/errs"
	"github.com/dnaumov/person-api/internal/store"
)

// HandleError converts a low-level store error into an application-level error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - If *storeerr.Error: mapped by Code (DuplicateKey -> 409,
//     NoRecord -> 404)
//   - If a bare store sentinel: mapped the same way with generic wording
//   - Otherwise: errs.NewInternalServerError()
//
// It is called by the global error handler, so repositories and
// services can return store errors as-is.
func HandleError(err error) error {
	// If it's already an HTTPError, don't re-wrap it.
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	// Structured store errors carry entity/key context for friendlier
	// messages.
	var serr *Error
	if errors.As(err, &serr) {
		entityName := humanizeText(serr.Entity)
		if entityName == "" {
			entityName = "Record"
		}

		switch serr.Code {
		case DuplicateKey:
			return errs.NewConflictError(
				fmt.Sprintf("A %s with this id already exists", strings.ToLower(entityName)))

		case NoRecord:
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", entityName))

		default:
			// Unknown store faults should not leak detail to clients.
			return errs.NewInternalServerError()
		}
	}

	// Bare sentinels reaching this point were returned without Convert;
	// map them with generic wording.
	switch {
	case errors.Is(err, store.ErrNoRecord):
		return errs.NewNotFoundError("Resource not found")

	case errors.Is(err, store.ErrDuplicateKey):
		return errs.NewConflictError("A record with this identifier already exists")
	}

	// Default fallback: treat unknown error as 500.
	return errs.NewInternalServerError()
}

// humanizeText converts snake_case (or lower-ish identifiers) into Title Case.
//
// Example:
//
//	"person" -> "Person"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
