package model

import (
	"errors"
)

// Sentinel kinds for record validation errors.
var (
	ErrInvalidRecord = errors.New("invalid record")
)

// FieldError reports the first field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidRecord).
func (e *FieldError) Unwrap() error {
	return ErrInvalidRecord
}
