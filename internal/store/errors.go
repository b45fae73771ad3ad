package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound maps a backend 404. The UI renders an empty "not
	// found" state instead of crashing.
	ErrNotFound = errors.New("record not found")
	// ErrConflict maps a backend 409, typically a delete on a record
	// with dependents.
	ErrConflict = errors.New("record has dependent records")
)

// APIError carries backend-provided error detail for non-2xx responses
// that are not covered by a sentinel (422 validation failures included).
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
	Pointer    string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	if e.Title != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Title)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// IsValidationError reports whether err is a backend 422.
func IsValidationError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 422
}
