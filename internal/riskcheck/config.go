package riskcheck

import "time"

// Config holds configuration for the smoke check.
type Config struct {
	BaseURL string        // Base URL of the service
	Timeout time.Duration // HTTP request timeout
	LogFile string        // Log file for check output
	Verbose bool          // Enable verbose logging
}

// Submission mirrors the POST /assess request body.
type Submission struct {
	Gender         string  `json:"gender"`
	Age            int     `json:"age"`
	Hypertension   bool    `json:"hypertension"`
	HeartDisease   bool    `json:"heart_disease"`
	SmokingHistory string  `json:"smoking_history"`
	BMI            float64 `json:"bmi"`
	HbA1c          float64 `json:"hba1c_level"`
	BloodGlucose   float64 `json:"blood_glucose_level"`
}

// Assessment mirrors the POST /assess response body.
type Assessment struct {
	AssessmentID    string   `json:"assessment_id"`
	Probability     float64  `json:"probability"`
	RiskPercent     string   `json:"risk_percent"`
	Band            string   `json:"band"`
	Label           string   `json:"label"`
	Color           string   `json:"color"`
	Recommendations []string `json:"recommendations"`
	Factors         []string `json:"contributing_factors"`
	GeneratedAt     string   `json:"generated_at"`
}

// ErrorReply mirrors the error body returned on rejected submissions.
type ErrorReply struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

// Reference mirrors the GET /reference response body.
type Reference struct {
	About          string `json:"about"`
	Disclaimer     string `json:"disclaimer"`
	Interpretation []struct {
		Range string `json:"range"`
		Label string `json:"label"`
	} `json:"interpretation"`
	NormalRanges []struct {
		Indicator string `json:"indicator"`
		Detail    string `json:"detail"`
	} `json:"normal_ranges"`
}

// Stats holds smoke check statistics.
type Stats struct {
	ChecksRun            int
	ChecksPassed         int
	ChecksFailed         int
	AssessmentsSubmitted int
	RejectionsVerified   int
	StartTime            time.Time
	EndTime              time.Time
	Duration             time.Duration
}
