package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/adapters/http/api"
	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockAssessor struct {
	assessment model.Assessment
	err        error
}

// Assess runs real record validation so handler tests exercise the
// field-error mapping, then returns the configured result.
func (m *mockAssessor) Assess(_ context.Context, rec model.Record) (model.Assessment, error) {
	if err := rec.Validate(); err != nil {
		return model.Assessment{}, err
	}
	if m.err != nil {
		return model.Assessment{}, m.err
	}
	return m.assessment, nil
}

func (m *mockAssessor) Reference(_ context.Context) model.Reference {
	return model.DefaultReference()
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

// assessPayload mirrors the POST /assess response for decoding in tests.
type assessPayload struct {
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

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

func moderateAssessment() model.Assessment {
	return model.Assessment{
		ID:          "11111111-2222-3333-4444-555555555555",
		Probability: 0.35,
		Band:        model.BandModerate,
		Recommendations: []string{
			"Consider lifestyle modifications (diet, exercise)",
			"Monitor your blood sugar levels more frequently",
			"Consult with your healthcare provider about prevention strategies",
			"Consider losing weight if overweight",
		},
		Factors: []string{
			"High HbA1c Level: Your HbA1c level of 6.1 is a significant factor.",
			"Blood Glucose Level: Your blood glucose level of 145 impacts your risk.",
		},
		GeneratedAt: time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC),
	}
}

func newTestMux(assessor *mockAssessor) *http.ServeMux {
	statsProvider := &mockStatsProvider{stats: map[string]interface{}{"started": true}}
	server := api.NewServer(assessor, statsProvider)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

const validAssessBody = `{"gender":"Female","age":52,"hypertension":false,"heart_disease":false,` +
	`"smoking_history":"former","bmi":29.0,"hba1c_level":6.1,"blood_glucose_level":145}`

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newTestMux(&mockAssessor{assessment: moderateAssessment()})

		Convey("Then the health endpoint should serve metrics", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "diabetes_risk_assessments_total")
		})

		Convey("And the stats endpoint should be accessible", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "started")
		})

		Convey("And the assess endpoint should be accessible", func() {
			req := httptest.NewRequest("POST", "/assess", strings.NewReader(validAssessBody))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("And the reference endpoint should be accessible", func() {
			req := httptest.NewRequest("GET", "/reference", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("And unknown paths should 404", func() {
			req := httptest.NewRequest("GET", "/unknown", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestAssessHandler(t *testing.T) {
	Convey("Given an assess endpoint backed by a healthy assessor", t, func() {
		mux := newTestMux(&mockAssessor{assessment: moderateAssessment()})

		Convey("When posting a valid submission", func() {
			req := httptest.NewRequest("POST", "/assess", strings.NewReader(validAssessBody))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the assessment is returned as JSON", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")

				var resp assessPayload
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.AssessmentID, ShouldNotBeEmpty)
				So(resp.Probability, ShouldEqual, 0.35)
				So(resp.RiskPercent, ShouldEqual, "35.0%")
				So(resp.Band, ShouldEqual, "moderate")
				So(resp.Label, ShouldEqual, "Moderate Risk")
				So(resp.Color, ShouldEqual, "orange")
				So(resp.Recommendations, ShouldHaveLength, 4)
				So(resp.Factors, ShouldHaveLength, 2)

				_, err := time.Parse(time.RFC3339, resp.GeneratedAt)
				So(err, ShouldBeNil)
			})
		})

		Convey("When posting malformed JSON", func() {
			req := httptest.NewRequest("POST", "/assess", strings.NewReader(`{"gender":`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then a bad request error is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var resp errorPayload
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Code, ShouldEqual, "bad_request")
			})
		})

		Convey("When posting a submission with an out-of-range age", func() {
			body := strings.Replace(validAssessBody, `"age":52`, `"age":150`, 1)
			req := httptest.NewRequest("POST", "/assess", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the offending field is reported", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var resp errorPayload
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Code, ShouldEqual, "validation_failed")
				So(resp.Field, ShouldEqual, "age")
				So(resp.Message, ShouldContainSubstring, "age")
			})
		})

		Convey("When posting a submission with a bad enum", func() {
			body := strings.Replace(validAssessBody, `"smoking_history":"former"`, `"smoking_history":"sometimes"`, 1)
			req := httptest.NewRequest("POST", "/assess", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the offending field is reported", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var resp errorPayload
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Code, ShouldEqual, "validation_failed")
				So(resp.Field, ShouldEqual, "smoking_history")
			})
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest("GET", "/assess", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the route is not found", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})

	Convey("Given an assess endpoint backed by a failing assessor", t, func() {
		mux := newTestMux(&mockAssessor{err: errors.New("matrix inversion exploded")})

		Convey("When posting a valid submission", func() {
			req := httptest.NewRequest("POST", "/assess", strings.NewReader(validAssessBody))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then a generic server error is returned", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)

				var resp errorPayload
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Code, ShouldEqual, "assessment_failed")
				So(resp.Message, ShouldEqual, "assessment failed")
			})

			Convey("And internals are not leaked", func() {
				So(w.Body.String(), ShouldNotContainSubstring, "matrix inversion")
			})
		})
	})
}

func TestReferenceHandler(t *testing.T) {
	Convey("Given a reference endpoint", t, func() {
		mux := newTestMux(&mockAssessor{assessment: moderateAssessment()})

		Convey("When fetching the reference content", func() {
			req := httptest.NewRequest("GET", "/reference", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the guidance content is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var resp struct {
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
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.About, ShouldNotBeEmpty)
				So(resp.Disclaimer, ShouldContainSubstring, "professional medical advice")
				So(resp.Interpretation, ShouldHaveLength, 3)
				So(resp.NormalRanges, ShouldHaveLength, 3)
			})
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest("POST", "/reference", strings.NewReader(`{}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the route is not found", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestStatsHandler(t *testing.T) {
	Convey("Given a stats endpoint", t, func() {
		mux := newTestMux(&mockAssessor{assessment: moderateAssessment()})

		Convey("When fetching stats", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the stats map is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var stats map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
				So(stats["started"], ShouldEqual, true)
			})
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest("POST", "/stats", strings.NewReader(`{}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the route is not found", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}
