// Package artifact loads the exported classifier artifacts from disk
// and exposes them as a predict.Model.
//
// Two files make up an artifact set: the model file (preprocessing
// parameters, coefficients, intercept, optional importances) and the
// feature names file listing the encoded feature names in vector
// order. Both are schema-validated, then cross-checked: the encoded
// names derived from the preprocessing spec must match the feature
// names file exactly, element by element.
package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Encoded feature name prefixes, matching the exporter's column
// transformer naming.
const (
	numericPrefix     = "num__"
	categoricalPrefix = "cat__"
	passthroughPrefix = "remainder__"
)

// supportedModelType is the only classifier family this build scores.
const supportedModelType = "logistic_regression"

// supportedVersion is the artifact layout version this build reads.
const supportedVersion = 1

// modelArtifact mirrors the model file layout.
type modelArtifact struct {
	ModelType          string            `json:"model_type"`
	Version            int               `json:"version"`
	TrainedAt          string            `json:"trained_at"`
	Preprocessing      preprocessingSpec `json:"preprocessing"`
	Coefficients       []float64         `json:"coefficients"`
	Intercept          float64           `json:"intercept"`
	Classes            []int             `json:"classes"`
	FeatureImportances []float64         `json:"feature_importances"`
}

type preprocessingSpec struct {
	Numeric     numericSpec       `json:"numeric"`
	Categorical []categoricalSpec `json:"categorical"`
	Passthrough []string          `json:"passthrough"`
}

type numericSpec struct {
	Features []string  `json:"features"`
	Means    []float64 `json:"means"`
	Scales   []float64 `json:"scales"`
}

type categoricalSpec struct {
	Feature    string   `json:"feature"`
	Categories []string `json:"categories"`
}

// Load reads, validates and cross-checks the artifact pair, returning
// a ready LogisticModel. The context is honored between the two file
// reads.
func Load(ctx context.Context, modelPath, featureNamesPath string) (*LogisticModel, error) {
	rawModel, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	if err := validateDocument(modelSchemaName, rawModel); err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", modelPath, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	rawNames, err := os.ReadFile(featureNamesPath)
	if err != nil {
		return nil, fmt.Errorf("read feature names: %w", err)
	}
	if err := validateDocument(featureNamesSchemaName, rawNames); err != nil {
		return nil, fmt.Errorf("feature names %s: %w", featureNamesPath, err)
	}

	var art modelArtifact
	if err := json.Unmarshal(rawModel, &art); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	var names []string
	if err := json.Unmarshal(rawNames, &names); err != nil {
		return nil, fmt.Errorf("decode feature names: %w", err)
	}

	return build(art, names)
}

// build cross-checks the decoded artifacts and assembles the model.
func build(art modelArtifact, names []string) (*LogisticModel, error) {
	if art.ModelType != supportedModelType {
		return nil, fmt.Errorf("model type %q, want %q: %w", art.ModelType, supportedModelType, ErrIncompatibleArtifact)
	}
	if art.Version != supportedVersion {
		return nil, fmt.Errorf("artifact version %d, want %d: %w", art.Version, supportedVersion, ErrIncompatibleArtifact)
	}
	if len(art.Classes) > 0 && !(len(art.Classes) == 2 && art.Classes[0] == 0 && art.Classes[1] == 1) {
		return nil, fmt.Errorf("classes %v, want [0 1]: %w", art.Classes, ErrIncompatibleArtifact)
	}

	num := art.Preprocessing.Numeric
	if len(num.Means) != len(num.Features) || len(num.Scales) != len(num.Features) {
		return nil, fmt.Errorf("numeric block: %d features, %d means, %d scales: %w",
			len(num.Features), len(num.Means), len(num.Scales), ErrIncompatibleArtifact)
	}
	for i, s := range num.Scales {
		if s == 0 {
			return nil, fmt.Errorf("scale for %q is zero: %w", num.Features[i], ErrIncompatibleArtifact)
		}
	}

	// Every raw feature the preprocessing references must be one the
	// intake record carries.
	for _, f := range num.Features {
		if _, ok := numericValue(zeroRecord, f); !ok {
			return nil, fmt.Errorf("unknown numeric feature %q: %w", f, ErrIncompatibleArtifact)
		}
	}
	for _, c := range art.Preprocessing.Categorical {
		if _, ok := categoryValue(zeroRecord, c.Feature); !ok {
			return nil, fmt.Errorf("unknown categorical feature %q: %w", c.Feature, ErrIncompatibleArtifact)
		}
	}
	for _, f := range art.Preprocessing.Passthrough {
		if _, ok := flagValue(zeroRecord, f); !ok {
			return nil, fmt.Errorf("unknown passthrough feature %q: %w", f, ErrIncompatibleArtifact)
		}
	}

	derived := deriveNames(art.Preprocessing)
	if len(derived) != len(names) {
		return nil, fmt.Errorf("artifact derives %d encoded features, feature names file has %d: %w",
			len(derived), len(names), ErrIncompatibleArtifact)
	}
	for i, d := range derived {
		if d != names[i] {
			return nil, fmt.Errorf("encoded name mismatch at %d: artifact derives %q, feature names file has %q: %w",
				i, d, names[i], ErrIncompatibleArtifact)
		}
	}

	if len(art.Coefficients) != len(derived) {
		return nil, fmt.Errorf("%d coefficients for %d encoded features: %w",
			len(art.Coefficients), len(derived), ErrIncompatibleArtifact)
	}
	if len(art.FeatureImportances) > 0 && len(art.FeatureImportances) != len(derived) {
		return nil, fmt.Errorf("%d importances for %d encoded features: %w",
			len(art.FeatureImportances), len(derived), ErrIncompatibleArtifact)
	}

	return newLogisticModel(art, derived), nil
}

// deriveNames reconstructs the encoded feature names from the
// preprocessing spec: scaled numerics first, then one-hot categoricals,
// then passthrough flags.
func deriveNames(p preprocessingSpec) []string {
	size := len(p.Numeric.Features) + len(p.Passthrough)
	for _, c := range p.Categorical {
		size += len(c.Categories)
	}

	names := make([]string, 0, size)
	for _, f := range p.Numeric.Features {
		names = append(names, numericPrefix+f)
	}
	for _, c := range p.Categorical {
		for _, cat := range c.Categories {
			names = append(names, categoricalPrefix+c.Feature+"_"+cat)
		}
	}
	for _, f := range p.Passthrough {
		names = append(names, passthroughPrefix+f)
	}
	return names
}
