package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the validation/normalization pipeline. Callers match
// them with errors.Is; most are produced wrapped in a FieldError that names
// the offending field.
var (
	ErrNotFound             = errors.New("record not found")
	ErrRequiredFieldMissing = errors.New("required field missing")
	ErrEmptyField           = errors.New("field is empty")
	ErrEmptyArray           = errors.New("array must not be empty")
	ErrInvalidElement       = errors.New("array element is empty")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidTime          = errors.New("invalid time")
	ErrInvalidSlug          = errors.New("invalid slug")
	ErrSlugConflict         = errors.New("slug already in use")
	ErrDanglingReference    = errors.New("referenced event does not exist")
)

// FieldError attaches the offending field name and a human-readable reason
// to one of the sentinel errors above. It unwraps to the sentinel, so
// errors.Is(err, domain.ErrInvalidTime) keeps working through it.
type FieldError struct {
	Field  string
	Reason string
	Kind   error
}

func NewFieldError(kind error, field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason, Kind: kind}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}
