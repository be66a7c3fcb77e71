package predict

import (
	"errors"
)

// Sentinel kinds for prediction errors.
var (
	// ErrShapeMismatch means the feature vector length does not match
	// what the loaded classifier expects.
	ErrShapeMismatch = errors.New("feature vector shape mismatch")

	// ErrUnknownCategory means a categorical value has no column in the
	// classifier's encoding.
	ErrUnknownCategory = errors.New("unknown category")
)
