package service

import (
	"errors"
)

// Sentinel kinds for service errors.
var (
	// ErrNotStarted means Assess was called before Start.
	ErrNotStarted = errors.New("service not started")

	// ErrAssessment wraps any internal failure while producing an
	// assessment (encoding, prediction). Field validation failures are
	// NOT wrapped in this; they surface as *model.FieldError.
	ErrAssessment = errors.New("assessment failed")
)
