// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like required
// fields or UUID formats) defined in struct tags and extracts
// validation errors into the field-level format the client receives.
// Checks that cannot be expressed as tags (e.g. "a name fragment must
// not be numeric") are modeled as CustomValidationErrors.
package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dnaumov/person-api/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,uuid"`)
//   - Implement Validate() error that runs validation.Struct(req)
//   - Return validator.ValidationErrors, CustomValidationErrors for
//     custom cases, or an *errs.HTTPError to force a specific status.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a
// specific field that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// validate is the shared validator instance. Field names in reported
// errors come from json/query/param tags, so clients see the wire
// names, not Go identifiers.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// Struct runs tag-based validation against the given payload.
func Struct(payload any) error {
	return validate.Struct(payload)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from body, query
//     and path parameters.
//  2. payload.Validate() applies validation rules.
//  3. Failures come back as *errs.HTTPError with field-level details,
//     ready for the global error handler.
//
// NOTE: payload must be a pointer to a struct, otherwise binding
// cannot populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	return validateStruct(payload)
}

// bindError converts an Echo bind failure into a validation error.
//
// A JSON type mismatch (e.g. a number submitted where text is
// expected) carries the offending field, which is surfaced as a
// field-level detail instead of a bare message.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errs.NewBadRequestError("Validation failed", []errs.FieldError{
			{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("must be of type %s", jsonTypeName(typeErr.Type)),
			},
		})
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			return errs.NewBadRequestError(msg, nil)
		}
	}

	return errs.NewBadRequestError("Invalid request body", nil)
}

// jsonTypeName renders a Go type as the JSON type a client would
// recognize.
func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	default:
		return t.String()
	}
}

// validateStruct calls v.Validate() and normalizes the result.
//
// An *errs.HTTPError coming out of Validate() is passed through
// unchanged so payloads can force a specific status (the name-search
// digit rule answers 422, not 400).
func validateStruct(v Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	msg, fieldErrors := extractValidationError(err)
	return errs.NewBadRequestError(msg, fieldErrors)
}

// extractValidationError converts validator/custom errors into
// user-friendly per-field messages. Every offending field is reported,
// not just the first.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	switch verr := err.(type) {
	case validator.ValidationErrors:
		for _, ferr := range verr {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field:  strings.ToLower(ferr.Field()),
				Reason: tagMessage(ferr),
			})
		}

	case CustomValidationErrors:
		for _, cerr := range verr {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field:  cerr.Field,
				Reason: cerr.Message,
			})
		}

	default:
		return "Validation failed: " + err.Error(), nil
	}

	return "Validation failed", fieldErrors
}

// tagMessage maps a failed validator tag to a readable reason.
func tagMessage(ferr validator.FieldError) string {
	switch ferr.Tag() {
	case "required":
		return "is required"

	case "min":
		// min means minimum length for strings, minimum value for
		// numbers.
		if ferr.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", ferr.Param())
		}
		return fmt.Sprintf("must be at least %s", ferr.Param())

	case "max":
		if ferr.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", ferr.Param())
		}
		return fmt.Sprintf("must not exceed %s", ferr.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", ferr.Param())

	case "uuid":
		return "must be a valid UUID"

	case "url":
		return "must be a valid URL"

	default:
		if ferr.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", strings.ToLower(ferr.Field()), ferr.Tag(), ferr.Param())
		}
		return fmt.Sprintf("%s: %s", strings.ToLower(ferr.Field()), ferr.Tag())
	}
}
