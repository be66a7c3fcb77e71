// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// ReferenceHandler serves the canned guidance content shown alongside results.
type ReferenceHandler struct {
	assessor Assessor
}

// NewReferenceHandler creates a new reference handler.
func NewReferenceHandler(assessor Assessor) *ReferenceHandler {
	return &ReferenceHandler{assessor: assessor}
}

// HandleGetReference handles GET /reference requests.
func (h *ReferenceHandler) HandleGetReference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, toReferenceResponse(h.assessor.Reference(r.Context())))
}
