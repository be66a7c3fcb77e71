// Package predict defines the contract for the pre-trained classifier.
package predict

import (
	"context"

	model "github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/model"
)

// Encoder turns an intake record into the classifier's feature vector.
type Encoder interface {
	// Encode produces the feature vector in the classifier's expected
	// order: scaled numerics, one-hot categoricals, passthrough flags.
	Encode(rec model.Record) ([]float64, error)
}

// Predictor scores an encoded feature vector. Implementations may call
// out to an external inference service, so the context is honored.
type Predictor interface {
	// PredictProba returns the probability of the positive class,
	// always in [0, 1].
	PredictProba(ctx context.Context, features []float64) (float64, error)
}

// Model bundles encoding, prediction and introspection of one loaded
// classifier.
type Model interface {
	Encoder
	Predictor

	// FeatureNames returns the encoded feature names in vector order.
	FeatureNames() []string

	// FeatureImportances returns the classifier's importances in
	// artifact order. Models that expose none return an empty slice;
	// callers must treat that as a valid state, not a failure.
	FeatureImportances() []model.Importance
}
