package riskcheck

// assessmentScenario is one submission and the band it must land in.
// Band expectations assume the model artifacts shipped with the service.
type assessmentScenario struct {
	Name       string
	Submission Submission
	WantBand   string
}

func assessmentScenarios() []assessmentScenario {
	return []assessmentScenario{
		{
			Name: "healthy baseline",
			Submission: Submission{
				Gender:         "Female",
				Age:            30,
				SmokingHistory: "never",
				BMI:            25.0,
				HbA1c:          5.0,
				BloodGlucose:   100,
			},
			WantBand: "low",
		},
		{
			Name: "elevated markers",
			Submission: Submission{
				Gender:         "Female",
				Age:            52,
				SmokingHistory: "former",
				BMI:            29.0,
				HbA1c:          6.0,
				BloodGlucose:   145,
			},
			WantBand: "moderate",
		},
		{
			Name: "severe profile",
			Submission: Submission{
				Gender:         "Male",
				Age:            65,
				Hypertension:   true,
				HeartDisease:   true,
				SmokingHistory: "current",
				BMI:            33.0,
				HbA1c:          7.5,
				BloodGlucose:   210,
			},
			WantBand: "high",
		},
	}
}

// rejectionScenario is a submission the service must refuse, and the
// field the validation error must name.
type rejectionScenario struct {
	Name       string
	Submission Submission
	WantField  string
}

func rejectionScenarios() []rejectionScenario {
	base := Submission{
		Gender:         "Female",
		Age:            40,
		SmokingHistory: "never",
		BMI:            26.0,
		HbA1c:          5.5,
		BloodGlucose:   110,
	}

	ageHigh := base
	ageHigh.Age = 150

	bmiLow := base
	bmiLow.BMI = 5.0

	hba1cHigh := base
	hba1cHigh.HbA1c = 20.0

	glucoseLow := base
	glucoseLow.BloodGlucose = 20

	badGender := base
	badGender.Gender = "female"

	badSmoking := base
	badSmoking.SmokingHistory = "sometimes"

	return []rejectionScenario{
		{Name: "age above range", Submission: ageHigh, WantField: "age"},
		{Name: "bmi below range", Submission: bmiLow, WantField: "bmi"},
		{Name: "hba1c above range", Submission: hba1cHigh, WantField: "hba1c_level"},
		{Name: "glucose below range", Submission: glucoseLow, WantField: "blood_glucose_level"},
		{Name: "lowercase gender", Submission: badGender, WantField: "gender"},
		{Name: "unknown smoking history", Submission: badSmoking, WantField: "smoking_history"},
	}
}
