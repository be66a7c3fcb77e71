package artifact

import (
	"errors"
)

// Sentinel kinds for artifact loading errors.
var (
	// ErrSchemaViolation means an artifact file parsed as JSON but does
	// not conform to its schema.
	ErrSchemaViolation = errors.New("artifact schema violation")

	// ErrIncompatibleArtifact means the artifact is well-formed but
	// cannot drive this service: wrong model type or version, internal
	// length mismatches, or encoded names that disagree with the
	// feature names file.
	ErrIncompatibleArtifact = errors.New("incompatible model artifact")
)
