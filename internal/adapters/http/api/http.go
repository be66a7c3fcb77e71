// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/model"
)

// Assessor is the application surface the HTTP handlers drive. Using an
// interface bundle keeps the handler layer loosely coupled to the service
// implementation.
type Assessor interface {
	// Assess validates a submission and produces a risk assessment.
	Assess(ctx context.Context, rec model.Record) (model.Assessment, error)

	// Reference returns the canned guidance content.
	Reference(ctx context.Context) model.Reference
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	assessHandler    *AssessHandler
	referenceHandler *ReferenceHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(assessor Assessor, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		assessHandler:    NewAssessHandler(assessor),
		referenceHandler: NewReferenceHandler(assessor),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/assess", MetricsMiddleware(s.assessHandler.HandlePostAssess, "assess"))
	mux.HandleFunc("/reference", MetricsMiddleware(s.referenceHandler.HandleGetReference, "reference"))
}

// assessRequest mirrors the OpenAPI schema for POST /assess.
type assessRequest struct {
	Gender         string  `json:"gender"`
	Age            int     `json:"age"`
	Hypertension   bool    `json:"hypertension"`
	HeartDisease   bool    `json:"heart_disease"`
	SmokingHistory string  `json:"smoking_history"`
	BMI            float64 `json:"bmi"`
	HbA1c          float64 `json:"hba1c_level"`
	BloodGlucose   float64 `json:"blood_glucose_level"`
}

func (a assessRequest) toRecord() model.Record {
	return model.Record{
		Gender:         model.Gender(strings.TrimSpace(a.Gender)),
		Age:            a.Age,
		Hypertension:   a.Hypertension,
		HeartDisease:   a.HeartDisease,
		SmokingHistory: model.SmokingHistory(strings.TrimSpace(a.SmokingHistory)),
		BMI:            a.BMI,
		HbA1c:          a.HbA1c,
		BloodGlucose:   a.BloodGlucose,
	}
}

// assessResponse mirrors the OpenAPI schema returned by POST /assess.
type assessResponse struct {
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

func toAssessResponse(a model.Assessment) assessResponse {
	return assessResponse{
		AssessmentID:    a.ID,
		Probability:     a.Probability,
		RiskPercent:     a.RiskPercent(),
		Band:            a.Band.String(),
		Label:           a.Band.Label(),
		Color:           a.Band.Color(),
		Recommendations: a.Recommendations,
		Factors:         a.Factors,
		GeneratedAt:     a.GeneratedAt.Format(time.RFC3339),
	}
}

type referenceResponse struct {
	About          string           `json:"about"`
	Disclaimer     string           `json:"disclaimer"`
	Interpretation []referenceBand  `json:"interpretation"`
	NormalRanges   []referenceRange `json:"normal_ranges"`
}

type referenceBand struct {
	Range string `json:"range"`
	Label string `json:"label"`
}

type referenceRange struct {
	Indicator string `json:"indicator"`
	Detail    string `json:"detail"`
}

func toReferenceResponse(ref model.Reference) referenceResponse {
	bands := make([]referenceBand, 0, len(ref.Interpretation))
	for _, b := range ref.Interpretation {
		bands = append(bands, referenceBand{Range: b.Range, Label: b.Label})
	}
	ranges := make([]referenceRange, 0, len(ref.NormalRanges))
	for _, r := range ref.NormalRanges {
		ranges = append(ranges, referenceRange{Indicator: r.Indicator, Detail: r.Detail})
	}
	return referenceResponse{
		About:          ref.About,
		Disclaimer:     ref.Disclaimer,
		Interpretation: bands,
		NormalRanges:   ranges,
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writeFieldError(w http.ResponseWriter, fe *model.FieldError) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Code:    "validation_failed",
		Message: fe.Error(),
		Field:   fe.Field,
	})
}
