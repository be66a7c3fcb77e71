// Package classify turns a predicted probability into a risk band and
// the canned guidance that goes with it.
package classify

import (
	"fmt"
	"math"

	model "github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/model"
)

// Band cutoffs. Intervals are half-open with the lower bound inclusive:
// [0, 0.2) low, [0.2, 0.5) moderate, [0.5, 1] high.
const (
	ModerateCutoff = 0.2
	HighCutoff     = 0.5
)

// Classify maps a probability to its risk band and the recommendations
// for that band. The probability must already be in [0, 1]; anything
// else means an upstream bug, so Classify panics rather than guessing.
func Classify(p float64) (model.Band, []string) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		panic(fmt.Sprintf("classify: probability out of range [0, 1]: %v", p))
	}
	band := bandOf(p)
	return band, Recommendations(band)
}

func bandOf(p float64) model.Band {
	switch {
	case p < ModerateCutoff:
		return model.BandLow
	case p < HighCutoff:
		return model.BandModerate
	default:
		return model.BandHigh
	}
}

// Recommendations returns the canned guidance for a band. The slice is
// freshly allocated on every call; callers may keep or modify it.
func Recommendations(band model.Band) []string {
	switch band {
	case model.BandLow:
		return []string{
			"Maintain your healthy lifestyle",
			"Continue regular check-ups",
			"Monitor your blood sugar levels annually",
		}
	case model.BandModerate:
		return []string{
			"Consider lifestyle modifications (diet, exercise)",
			"Monitor your blood sugar levels more frequently",
			"Consult with your healthcare provider about prevention strategies",
			"Consider losing weight if overweight",
		}
	case model.BandHigh:
		return []string{
			"Please consult with a healthcare provider immediately",
			"Significant lifestyle changes are recommended",
			"Regular monitoring of blood sugar levels is essential",
			"You may need medical intervention",
		}
	default:
		return nil
	}
}
