package directive

import (
	"github.com/cockroachdb/errors"
)

// ErrMalformed marks directive syntax problems.
var ErrMalformed = errors.New("malformed wrapgen directive")

// ErrDuplicateField marks a field name used twice within one directive.
var ErrDuplicateField = errors.New("duplicate field name")

// FieldError is a problem tied to one field of the directive.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
