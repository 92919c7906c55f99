package handler

import (
	"encoding/json"
	"net/http"

	"theinsight/internal/model"
	"theinsight/internal/service"
)

// ResultHandler handles the stateless result endpoints: shared-link decode
// and narrative elaboration
type ResultHandler struct {
	sessionSvc   *service.SessionService
	narrativeSvc *service.NarrativeService
}

// NewResultHandler creates a new result handler
func NewResultHandler(sessionSvc *service.SessionService, narrativeSvc *service.NarrativeService) *ResultHandler {
	return &ResultHandler{
		sessionSvc:   sessionSvc,
		narrativeSvc: narrativeSvc,
	}
}

// Shared handles GET /v1/results. The query parameters are a shared result
// link; a valid set classifies straight to content with no session involved.
func (h *ResultHandler) Shared(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionSvc.SharedResult(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "incomplete or invalid share parameters")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// NarrativeRequest is the request body for narrative elaboration
type NarrativeRequest struct {
	Scores model.ScoreTally `json:"scores"`
	Age    model.AgeGroup   `json:"age"`
	Gender model.Gender     `json:"gender,omitempty"`
}

// Narrative handles POST /v1/results/narrative. The narrative service never
// fails; degraded responses carry the static fallback text.
func (h *ResultHandler) Narrative(w http.ResponseWriter, r *http.Request) {
	var req NarrativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	text := h.narrativeSvc.Elaborate(r.Context(), req.Scores, req.Age, req.Gender)
	writeJSON(w, http.StatusOK, map[string]string{"narrative": text})
}
