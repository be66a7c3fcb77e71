// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"math"
)

// Gender is the self-reported gender category.
// Values match the categories the classifier was trained on.
type Gender string

// Known gender categories.
const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is a known category.
func (g Gender) Valid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderOther:
		return true
	default:
		return false
	}
}

// SmokingHistory is the self-reported smoking category.
// Values are lower-case, mirroring the training data.
type SmokingHistory string

// Known smoking history categories.
const (
	SmokingNever   SmokingHistory = "never"
	SmokingFormer  SmokingHistory = "former"
	SmokingCurrent SmokingHistory = "current"
	SmokingUnknown SmokingHistory = "unknown"
)

// Valid reports whether s is a known category.
func (s SmokingHistory) Valid() bool {
	switch s {
	case SmokingNever, SmokingFormer, SmokingCurrent, SmokingUnknown:
		return true
	default:
		return false
	}
}

// Accepted field ranges. Values outside these bounds fall outside the
// distribution the classifier was trained on and are rejected up front.
const (
	AgeMin = 18
	AgeMax = 120

	BMIMin = 10.0
	BMIMax = 60.0

	HbA1cMin = 3.0
	HbA1cMax = 15.0

	GlucoseMin = 50.0
	GlucoseMax = 300.0
)

// Record represents one intake form submission.
type Record struct {
	Gender         Gender
	Age            int     // years
	Hypertension   bool    // diagnosed hypertension
	HeartDisease   bool    // diagnosed heart disease
	SmokingHistory SmokingHistory
	BMI            float64 // body mass index
	HbA1c          float64 // HbA1c level, percent
	BloodGlucose   float64 // blood glucose level, mg/dL
}

// Validate checks categorical fields against the known categories and
// numeric fields against the accepted ranges, in form order. It returns
// a *FieldError naming the first offending field, or nil.
func (r Record) Validate() error {
	if !r.Gender.Valid() {
		return &FieldError{
			Field:  "gender",
			Reason: fmt.Sprintf("must be one of %q, %q or %q", GenderFemale, GenderMale, GenderOther),
		}
	}
	if r.Age < AgeMin || r.Age > AgeMax {
		return &FieldError{
			Field:  "age",
			Reason: fmt.Sprintf("must be between %d and %d", AgeMin, AgeMax),
		}
	}
	if !r.SmokingHistory.Valid() {
		return &FieldError{
			Field:  "smoking_history",
			Reason: fmt.Sprintf("must be one of %q, %q, %q or %q", SmokingNever, SmokingFormer, SmokingCurrent, SmokingUnknown),
		}
	}
	if outOfRange(r.BMI, BMIMin, BMIMax) {
		return &FieldError{
			Field:  "bmi",
			Reason: fmt.Sprintf("must be between %g and %g", BMIMin, BMIMax),
		}
	}
	if outOfRange(r.HbA1c, HbA1cMin, HbA1cMax) {
		return &FieldError{
			Field:  "hba1c_level",
			Reason: fmt.Sprintf("must be between %g and %g", HbA1cMin, HbA1cMax),
		}
	}
	if outOfRange(r.BloodGlucose, GlucoseMin, GlucoseMax) {
		return &FieldError{
			Field:  "blood_glucose_level",
			Reason: fmt.Sprintf("must be between %g and %g", GlucoseMin, GlucoseMax),
		}
	}
	return nil
}

// outOfRange treats NaN as out of range; NaN fails both comparisons
// otherwise and would slip through.
func outOfRange(v, lo, hi float64) bool {
	return math.IsNaN(v) || v < lo || v > hi
}
