package riskcheck

import (
	"fmt"
	"time"
)

// Published thresholds and per-band shapes the responses must respect.
const (
	moderateThreshold = 0.2
	highThreshold     = 0.5
	maxFactors        = 3
)

func bandForProbability(p float64) string {
	switch {
	case p < moderateThreshold:
		return "low"
	case p < highThreshold:
		return "moderate"
	default:
		return "high"
	}
}

func labelForBand(band string) string {
	switch band {
	case "low":
		return "Low Risk"
	case "moderate":
		return "Moderate Risk"
	default:
		return "High Risk"
	}
}

func colorForBand(band string) string {
	switch band {
	case "low":
		return "green"
	case "moderate":
		return "orange"
	default:
		return "red"
	}
}

func recommendationCountForBand(band string) int {
	if band == "low" {
		return 3
	}
	return 4
}

// checkAssessment verifies a single assessment response against the
// scenario expectation and the internal consistency rules.
func checkAssessment(sc assessmentScenario, a *Assessment) error {
	if a.Probability < 0 || a.Probability > 1 {
		return fmt.Errorf("probability %v outside [0, 1]", a.Probability)
	}

	if got := bandForProbability(a.Probability); a.Band != got {
		return fmt.Errorf("band %q inconsistent with probability %v (want %q)", a.Band, a.Probability, got)
	}

	if a.Band != sc.WantBand {
		return fmt.Errorf("band %q, want %q (probability %v)", a.Band, sc.WantBand, a.Probability)
	}

	if want := labelForBand(a.Band); a.Label != want {
		return fmt.Errorf("label %q, want %q", a.Label, want)
	}

	if want := colorForBand(a.Band); a.Color != want {
		return fmt.Errorf("color %q, want %q", a.Color, want)
	}

	if want := fmt.Sprintf("%.1f%%", a.Probability*100); a.RiskPercent != want {
		return fmt.Errorf("risk_percent %q inconsistent with probability %v (want %q)", a.RiskPercent, a.Probability, want)
	}

	if want := recommendationCountForBand(a.Band); len(a.Recommendations) != want {
		return fmt.Errorf("%d recommendations for band %q, want %d", len(a.Recommendations), a.Band, want)
	}

	if len(a.Factors) > maxFactors {
		return fmt.Errorf("%d contributing factors, want at most %d", len(a.Factors), maxFactors)
	}

	if a.AssessmentID == "" {
		return fmt.Errorf("empty assessment_id")
	}

	if _, err := time.Parse(time.RFC3339, a.GeneratedAt); err != nil {
		return fmt.Errorf("generated_at %q is not RFC 3339: %w", a.GeneratedAt, err)
	}

	return nil
}

// checkRejection verifies an error response names the offending field.
func checkRejection(sc rejectionScenario, reply *ErrorReply) error {
	if reply.Code != "validation_failed" {
		return fmt.Errorf("error code %q, want %q", reply.Code, "validation_failed")
	}

	if reply.Field != sc.WantField {
		return fmt.Errorf("error field %q, want %q", reply.Field, sc.WantField)
	}

	if reply.Message == "" {
		return fmt.Errorf("empty error message")
	}

	return nil
}

// checkReference verifies the reference content has the expected shape.
func checkReference(ref *Reference) error {
	if ref.About == "" {
		return fmt.Errorf("empty about text")
	}

	if ref.Disclaimer == "" {
		return fmt.Errorf("empty disclaimer")
	}

	if len(ref.Interpretation) != 3 {
		return fmt.Errorf("%d interpretation rows, want 3", len(ref.Interpretation))
	}

	if len(ref.NormalRanges) != 3 {
		return fmt.Errorf("%d normal range rows, want 3", len(ref.NormalRanges))
	}

	return nil
}
