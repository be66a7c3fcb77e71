package model

// ReferenceBand is one row of the risk score interpretation table.
type ReferenceBand struct {
	Range string
	Label string
}

// ReferenceRange holds the clinical reference values for one indicator.
type ReferenceRange struct {
	Indicator string
	Detail    string
}

// Reference is the static educational content shown alongside results.
type Reference struct {
	About          string
	Disclaimer     string
	Interpretation []ReferenceBand
	NormalRanges   []ReferenceRange
}

// DefaultReference returns the canned reference content.
func DefaultReference() Reference {
	return Reference{
		About: "This diabetes risk assessment tool uses machine learning to estimate your probability " +
			"of having diabetes based on key health indicators.",
		Disclaimer: "This tool is for informational purposes only and is not a substitute " +
			"for professional medical advice. Always consult with a healthcare provider for " +
			"personalized medical advice.",
		Interpretation: []ReferenceBand{
			{Range: "<20%", Label: BandLow.Label()},
			{Range: "20-50%", Label: BandModerate.Label()},
			{Range: ">50%", Label: BandHigh.Label()},
		},
		NormalRanges: []ReferenceRange{
			{Indicator: "HbA1c", Detail: "<5.7% (normal), 5.7-6.4% (prediabetes), ≥6.5% (diabetes)"},
			{Indicator: "Fasting Blood Glucose", Detail: "<100 mg/dL (normal), 100-125 mg/dL (prediabetes), ≥126 mg/dL (diabetes)"},
			{Indicator: "BMI", Detail: "18.5-24.9 (normal), 25-29.9 (overweight), ≥30 (obese)"},
		},
	}
}
