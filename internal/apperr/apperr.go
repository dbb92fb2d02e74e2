// Package apperr carries the application error taxonomy. Services
// classify failures here; handlers translate kinds to HTTP statuses
// without inspecting messages.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for boundary mapping.
type Kind int

const (
	Validation   Kind = iota // missing or malformed input
	Unauthorized             // no credential presented
	Forbidden                // bad credential or insufficient role
	NotFound
	DuplicateKey // uniqueness violation (sku, registry name, username)
	InUse        // referential guard blocked a registry delete
	Storage      // unexpected persistence failure
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// InUse errors carry the number of products blocking the delete so the
// message can name the exact count.
func NewInUse(entity, name string, count int64) *Error {
	return Newf(InUse, "Cannot delete %s: \"%s\" is in use by %d product(s).", entity, name, count)
}

// KindOf returns the kind of err. Unclassified errors are storage
// failures: surfaced generically, logged in detail server-side.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Storage
}
