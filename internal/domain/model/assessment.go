package model

import (
	"fmt"
	"time"
)

// Band is the coarse risk classification derived from the predicted
// probability.
type Band int

// Risk bands, in ascending order of severity.
const (
	BandLow Band = iota
	BandModerate
	BandHigh
)

// String returns the wire name of the band.
func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandModerate:
		return "moderate"
	case BandHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Label returns the display label shown to users.
func (b Band) Label() string {
	switch b {
	case BandLow:
		return "Low Risk"
	case BandModerate:
		return "Moderate Risk"
	case BandHigh:
		return "High Risk"
	default:
		return "Unknown"
	}
}

// Color returns the display color associated with the band.
func (b Band) Color() string {
	switch b {
	case BandLow:
		return "green"
	case BandModerate:
		return "orange"
	case BandHigh:
		return "red"
	default:
		return "gray"
	}
}

// Importance pairs an encoded feature name with its weight.
// Slice order matters: ties between equal weights are broken by
// position, so importances are carried as a slice, never a map.
type Importance struct {
	Name   string
	Weight float64
}

// Assessment is the complete result of one risk assessment.
type Assessment struct {
	ID              string
	Probability     float64 // probability of diabetes, in [0, 1]
	Band            Band
	Recommendations []string
	Factors         []string // contributing factor sentences, strongest first
	GeneratedAt     time.Time
}

// RiskPercent formats the probability the way the result page shows it,
// e.g. 0.35 -> "35.0%".
func (a Assessment) RiskPercent() string {
	return fmt.Sprintf("%.1f%%", a.Probability*100)
}
