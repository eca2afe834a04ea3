package validation

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// IsValidUUID checks whether a string parses as a UUID.
//
// Format only; it does not constrain UUID version or variant.
func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// IsDigits reports whether s is non-empty and consists only of digit
// runes, including non-ASCII digits such as Arabic-Indic numerals.
// Used to reject numeric-looking input in text-only fields.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// TrimmedEmpty reports whether s contains no non-whitespace content.
func TrimmedEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
