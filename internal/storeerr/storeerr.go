// Package storeerr classifies errors coming out of the store layer.
//
// It plays the role a SQL-error translator would play in a persistent
// setup: repositories return low-level store errors annotated with
// entity/key context, and the global error handler funnels them through
// HandleError to produce the uniform HTTP error shapes (409 for a
// duplicate key, 404 for a missing record).
package storeerr

import (
	"errors"
	"fmt"

	"github.com/dnaumov/person-api/internal/store"
)

// Code is the category of a store failure.
type Code int

const (
	// Other covers anything not recognized as a known store condition.
	Other Code = iota

	// DuplicateKey means an insert collided with an existing record id.
	DuplicateKey

	// NoRecord means a lookup or delete referenced an id that does not
	// exist.
	NoRecord
)

// Error is the structured store error repositories hand upward.
//
// Fields:
//   - Code: mapped failure category
//   - Entity: what kind of record was involved (e.g. "person")
//   - Key: the record id the operation referenced
//   - storeErr: the underlying store sentinel, kept for Unwrap()
type Error struct {
	Code   Code
	Entity string
	Key    string

	storeErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store error (%s %s): %v", e.Entity, e.Key, e.storeErr)
}

// Unwrap exposes the underlying store sentinel so errors.Is keeps
// working through the chain.
func (e *Error) Unwrap() error {
	return e.storeErr
}

// Convert annotates a store error with entity/key context.
//
// A nil err passes through as nil so repositories can wrap calls
// directly:
//
//	return storeerr.Convert("person", p.ID, r.store.Put(p))
func Convert(entity, key string, err error) error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:     mapCode(err),
		Entity:   entity,
		Key:      key,
		storeErr: err,
	}
}

// mapCode maps store sentinels to failure categories.
func mapCode(err error) Code {
	switch {
	case errors.Is(err, store.ErrDuplicateKey):
		return DuplicateKey
	case errors.Is(err, store.ErrNoRecord):
		return NoRecord
	default:
		return Other
	}
}

// ErrCode reports the mapped storeerr.Code for a given error.
//
// Behavior:
//   - If err can be unwrapped into *storeerr.Error, return its Code.
//   - Otherwise return storeerr.Other.
func ErrCode(err error) Code {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code
	}
	return Other
}
