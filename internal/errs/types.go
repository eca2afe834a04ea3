package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Parameters:
//   - message: text to send to the client
//   - details: optional slice of field errors (validation errors)
//
// This is the "you sent garbage" case: missing fields, wrong types,
// malformed payloads.
func NewBadRequestError(message string, details []FieldError) *HTTPError {
	return &HTTPError{
		Code:    CodeValidation,
		Message: message,
		Status:  http.StatusBadRequest,
		Details: details,
	}
}

// NewUnprocessableEntityError creates a 422 Unprocessable Entity HTTPError.
//
// Used when the input is syntactically fine but semantically invalid,
// e.g. a numeric-looking value where a name fragment is expected.
func NewUnprocessableEntityError(message string, details []FieldError) *HTTPError {
	return &HTTPError{
		Code:    CodeValidation,
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Details: details,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// The same shape covers both unknown routes and unknown resource ids;
// only the message differs.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    CodeNotFound,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewConflictError creates a 409 Conflict HTTPError.
//
// Raised when a create collides with an existing record id.
func NewConflictError(message string) *HTTPError {
	return &HTTPError{
		Code:    CodeConflict,
		Message: message,
		Status:  http.StatusConflict,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Note: the message is the generic status text, never the real internal
// error message. Clients do not get stack traces or driver detail; the
// original error is logged server-side by the global error handler.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    CodeInternal,
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError converts a generic validation error into a 400 Bad
// Request HTTPError, so call sites can do:
//
//	return errs.ValidationError(err)
//
// and clients get the consistent error structure.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil)
}
