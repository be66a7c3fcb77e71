package artifact

import (
	"context"
	"fmt"
	"math"

	model "github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/model"
	predict "github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/predict"
)

// zeroRecord is used at load time to probe which raw feature names the
// record type knows about.
var zeroRecord model.Record

// LogisticModel is a loaded logistic regression artifact. It implements
// predict.Model. The struct is immutable after Load, so it is safe for
// concurrent use.
type LogisticModel struct {
	names        []string
	coefficients []float64
	intercept    float64
	trainedAt    string
	numeric      numericSpec
	categorical  []categoricalSpec
	passthrough  []string
	importances  []model.Importance
}

// compile-time contract check
var _ predict.Model = (*LogisticModel)(nil)

func newLogisticModel(art modelArtifact, names []string) *LogisticModel {
	m := &LogisticModel{
		names:        names,
		coefficients: art.Coefficients,
		intercept:    art.Intercept,
		trainedAt:    art.TrainedAt,
		numeric:      art.Preprocessing.Numeric,
		categorical:  art.Preprocessing.Categorical,
		passthrough:  art.Preprocessing.Passthrough,
	}
	if len(art.FeatureImportances) > 0 {
		m.importances = make([]model.Importance, len(names))
		for i, w := range art.FeatureImportances {
			m.importances[i] = model.Importance{Name: names[i], Weight: w}
		}
	}
	return m
}

// Encode produces the feature vector in the artifact's encoded order:
// scaled numerics, one-hot categoricals, passthrough flags.
func (m *LogisticModel) Encode(rec model.Record) ([]float64, error) {
	features := make([]float64, 0, len(m.coefficients))

	for i, f := range m.numeric.Features {
		v, ok := numericValue(rec, f)
		if !ok {
			return nil, fmt.Errorf("numeric feature %q: %w", f, ErrIncompatibleArtifact)
		}
		features = append(features, (v-m.numeric.Means[i])/m.numeric.Scales[i])
	}

	for _, c := range m.categorical {
		val, ok := categoryValue(rec, c.Feature)
		if !ok {
			return nil, fmt.Errorf("categorical feature %q: %w", c.Feature, ErrIncompatibleArtifact)
		}
		hot := -1
		for i, cat := range c.Categories {
			if cat == val {
				hot = i
				break
			}
		}
		if hot < 0 {
			return nil, fmt.Errorf("%s %q: %w", c.Feature, val, predict.ErrUnknownCategory)
		}
		for i := range c.Categories {
			if i == hot {
				features = append(features, 1)
			} else {
				features = append(features, 0)
			}
		}
	}

	for _, f := range m.passthrough {
		v, ok := flagValue(rec, f)
		if !ok {
			return nil, fmt.Errorf("passthrough feature %q: %w", f, ErrIncompatibleArtifact)
		}
		features = append(features, v)
	}

	return features, nil
}

// PredictProba computes sigmoid(w . x + b).
func (m *LogisticModel) PredictProba(ctx context.Context, features []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context cancelled: %w", err)
	}
	if len(features) != len(m.coefficients) {
		return 0, fmt.Errorf("got %d features, want %d: %w",
			len(features), len(m.coefficients), predict.ErrShapeMismatch)
	}

	z := m.intercept
	for i, w := range m.coefficients {
		z += w * features[i]
	}
	return sigmoid(z), nil
}

// FeatureNames returns a copy of the encoded feature names in vector order.
func (m *LogisticModel) FeatureNames() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// FeatureImportances returns a copy of the importances in artifact
// order, or an empty slice when the artifact carries none.
func (m *LogisticModel) FeatureImportances() []model.Importance {
	out := make([]model.Importance, len(m.importances))
	copy(out, m.importances)
	return out
}

// TrainedAt reports the artifact's training timestamp, if recorded.
func (m *LogisticModel) TrainedAt() string {
	return m.trainedAt
}

// sigmoid maps any real z into [0, 1]. Extreme z saturates to exactly
// 0 or 1 in float arithmetic, which keeps the probability contract.
func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// numericValue maps a raw numeric feature name to the record value.
func numericValue(rec model.Record, feature string) (float64, bool) {
	switch feature {
	case "age":
		return float64(rec.Age), true
	case "bmi":
		return rec.BMI, true
	case "HbA1c_level":
		return rec.HbA1c, true
	case "blood_glucose_level":
		return rec.BloodGlucose, true
	default:
		return 0, false
	}
}

// categoryValue maps a raw categorical feature name to the record value.
func categoryValue(rec model.Record, feature string) (string, bool) {
	switch feature {
	case "gender":
		return string(rec.Gender), true
	case "smoking_history":
		return string(rec.SmokingHistory), true
	default:
		return "", false
	}
}

// flagValue maps a raw passthrough feature name to the record value,
// encoding booleans as 1/0 the way the training data did.
func flagValue(rec model.Record, feature string) (float64, bool) {
	switch feature {
	case "hypertension":
		return boolToFloat(rec.Hypertension), true
	case "heart_disease":
		return boolToFloat(rec.HeartDisease), true
	default:
		return 0, false
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
