package handler

import (
	"net/http"

	"theinsight/internal/service"
)

// VisitHandler handles the visitor counter endpoints
type VisitHandler struct {
	visitSvc *service.VisitService
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(visitSvc *service.VisitService) *VisitHandler {
	return &VisitHandler{visitSvc: visitSvc}
}

// Increment handles POST /v1/visits
func (h *VisitHandler) Increment(w http.ResponseWriter, r *http.Request) {
	count := h.visitSvc.Increment(r.Context())
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

// Current handles GET /v1/visits
func (h *VisitHandler) Current(w http.ResponseWriter, r *http.Request) {
	count := h.visitSvc.Current(r.Context())
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}
