package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrAssessmentFailed = errors.New("assessment failed")
)
