// Package validation checks candidate payloads before they are handed to
// the network layer. Every check returns a field-keyed error map rather
// than a Go error: an empty map means valid, and rule violations are
// never panics or exceptions.
package validation

import "sort"

// Errors maps a field key (e.g. "description", "lines[2].amount") to a
// user-facing message. An empty map means the payload is valid.
type Errors map[string]string

// Add records a message for a field, keeping the first message when the
// field already has one.
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = message
}

// Valid reports whether no errors were recorded.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Fields returns the error keys in stable order, for display.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
