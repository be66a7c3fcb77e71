// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/model"
)

// AssessHandler handles risk assessment requests.
type AssessHandler struct {
	assessor Assessor
}

// NewAssessHandler creates a new assessment handler.
func NewAssessHandler(assessor Assessor) *AssessHandler {
	return &AssessHandler{assessor: assessor}
}

// HandlePostAssess handles POST /assess requests.
func (h *AssessHandler) HandlePostAssess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}

	a, err := h.assessor.Assess(r.Context(), req.toRecord())
	if err != nil {
		var fe *model.FieldError
		if errors.As(err, &fe) {
			writeFieldError(w, fe)
			return
		}
		// Model-side failures stay opaque to callers.
		writeError(w, http.StatusInternalServerError, "assessment_failed", ErrAssessmentFailed)
		return
	}

	writeJSON(w, http.StatusOK, toAssessResponse(a))
}
