// Package apperr defines the closed error taxonomy shared by every layer.
// Each Kind maps to exactly one catalog entry carrying the human message,
// the default HTTP status, and a stable machine-readable name.
package apperr

import "errors"

// Error is the single error type the validators, use cases, and token layer
// return. Details optionally carries a lower-level diagnostic (for example
// the raw storage error text); the HTTP boundary decides whether to expose it.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Name       string
	Details    string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// New builds an Error from the catalog entry for kind.
func New(kind Kind) *Error {
	entry := catalog[kind]
	return &Error{
		Kind:       kind,
		Message:    entry.Message,
		StatusCode: entry.StatusCode,
		Name:       entry.Name,
	}
}

// WithDetails returns the error with a diagnostic attached.
func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

// From converts any error into an *Error. Unknown errors become
// INTERNAL_ERROR with the original text preserved in Details.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return New(KindInternalError).WithDetails(err.Error())
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
