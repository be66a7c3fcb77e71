// Package attribution renders the "key factors" sentences from model
// feature importances.
package attribution

import (
	"sort"
	"strconv"
	"strings"

	model "github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/model"
)

// DefaultTopK is how many importances are considered for sentences.
const DefaultTopK = 3

// Kind identifies which health factor an encoded feature name maps to.
type Kind int

// Factor kinds, in matching priority order.
const (
	KindHbA1c Kind = iota
	KindGlucose
	KindBMI
	KindAge
	KindHypertension
	KindHeartDisease
	KindUnmapped
)

// kindPatterns maps substrings of encoded feature names to kinds.
// Order matters: the first containment wins, so a name matching several
// patterns resolves to the earliest one.
var kindPatterns = []struct {
	substr string
	kind   Kind
}{
	{"HbA1c_level", KindHbA1c},
	{"blood_glucose_level", KindGlucose},
	{"bmi", KindBMI},
	{"age", KindAge},
	{"hypertension", KindHypertension},
	{"heart_disease", KindHeartDisease},
}

// KindOf resolves an encoded feature name (e.g. "num__HbA1c_level") to
// its factor kind by substring containment. Names that match nothing,
// such as the gender and smoking history dummies, are KindUnmapped.
func KindOf(featureName string) Kind {
	for _, p := range kindPatterns {
		if strings.Contains(featureName, p.substr) {
			return p.kind
		}
	}
	return KindUnmapped
}

// TopFactors selects the k heaviest importances and renders a sentence
// for each one that maps to a presentable factor.
//
// Sorting is stable and descending, so equal weights keep their
// artifact order. Selection happens before rendering: an entry that
// renders nothing (unmapped, or a condition flag the record does not
// carry) still consumes one of the k slots. An empty importances slice
// yields an empty result; that is the valid "no attribution" state, not
// an error.
func TopFactors(imps []model.Importance, rec model.Record, k int) []string {
	if k <= 0 || len(imps) == 0 {
		return []string{}
	}

	// Sort a copy; callers keep their slice untouched.
	ranked := make([]model.Importance, len(imps))
	copy(ranked, imps)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})

	if k > len(ranked) {
		k = len(ranked)
	}

	factors := make([]string, 0, k)
	for _, imp := range ranked[:k] {
		if s, ok := sentence(KindOf(imp.Name), rec); ok {
			factors = append(factors, s)
		}
	}
	return factors
}

// sentence renders the display sentence for a factor kind, reporting
// false when the kind produces no output for this record.
func sentence(kind Kind, rec model.Record) (string, bool) {
	switch kind {
	case KindHbA1c:
		return "High HbA1c Level: Your HbA1c level of " + formatNumber(rec.HbA1c) + " is a significant factor.", true
	case KindGlucose:
		return "Blood Glucose Level: Your blood glucose level of " + formatNumber(rec.BloodGlucose) + " impacts your risk.", true
	case KindBMI:
		return "BMI: Your BMI of " + formatNumber(rec.BMI) + " contributes to your risk assessment.", true
	case KindAge:
		return "Age: At " + strconv.Itoa(rec.Age) + " years, age is a contributing factor.", true
	case KindHypertension:
		if !rec.Hypertension {
			return "", false
		}
		return "Hypertension: Having hypertension increases your risk.", true
	case KindHeartDisease:
		if !rec.HeartDisease {
			return "", false
		}
		return "Heart Disease: Existing heart disease is a risk factor.", true
	default:
		return "", false
	}
}

// formatNumber prints a measurement without trailing zeros: 25.35 stays
// "25.35", 100.0 becomes "100".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
