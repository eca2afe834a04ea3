package errs

import "strings"

// Error codes used as the `error` discriminator in response bodies.
//
// Clients switch on these, so they are part of the API contract:
// changing one is a breaking change.
const (
	CodeValidation = "validation_error"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeInternal   = "internal_error"
)

// FieldError represents a single field-level validation failure.
// Example:
//
//	{ "field": "graduation_year", "reason": "is required" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "first_name").
	Field string `json:"field"`

	// Reason is the human-readable explanation.
	Reason string `json:"reason"`
}

// HTTPError is the single error shape the API serves.
//
// It implements the `error` interface via Error() and is serialized
// directly to JSON by the global error handler:
//
//	{ "error": "conflict", "message": "...", "details": [...] }
//
// Fields:
//   - Code: machine-friendly discriminator (e.g. "not_found").
//   - Message: human-friendly message.
//   - Status: HTTP status code; not serialized, it goes on the wire as
//     the response status instead.
//   - Details: per-field validation errors, empty for non-validation
//     failures.
type HTTPError struct {
	Code    string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Status  int          `json:"-"`
	Details []FieldError `json:"details,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It only checks whether target is also a *HTTPError; it does not
// compare Code/Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
//
// Useful when a base error template needs a resource-specific message
// without mutating the original.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Details: e.Details,
	}
}

// MakeLowerCaseWithUnderscores converts an HTTP status text into a stable
// machine-readable code.
//
// Example:
//
//	"Method Not Allowed" -> "method_not_allowed"
//
// Used as a fallback for statuses that do not have a dedicated Code
// constant above.
func MakeLowerCaseWithUnderscores(str string) string {
	return strings.ToLower(strings.ReplaceAll(str, " ", "_"))
}
