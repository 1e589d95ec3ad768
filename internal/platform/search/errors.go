package search

import (
	"errors"
	"fmt"
)

// ErrInvalidSearchOperation indicates that a search request is structurally
// or semantically invalid for the parameter it targets: an unsupported
// modifier for the parameter type, too many composite components, a non-eq
// comparator combined with multiple OR values, and so on.
var ErrInvalidSearchOperation = errors.New("invalid search operation")

// ErrInvalidSearchValue indicates that a literal could not be parsed into
// the parameter's declared type.
var ErrInvalidSearchValue = errors.New("invalid search value")

// invalidOperation wraps ErrInvalidSearchOperation with context so callers
// can match it with errors.Is.
func invalidOperation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidSearchOperation, fmt.Sprintf(format, args...))
}

// invalidValue wraps ErrInvalidSearchValue with context.
func invalidValue(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidSearchValue, fmt.Sprintf(format, args...))
}
