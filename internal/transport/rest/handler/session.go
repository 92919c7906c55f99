package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"theinsight/internal/model"
	"theinsight/internal/service"
)

// SessionHandler handles the quiz session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// sessionView is the snapshot handed to presentation. The sampled question
// list stays server-side; the client pulls one question at a time.
type sessionView struct {
	ID          string           `json:"id"`
	Screen      model.Screen     `json:"screen"`
	Gender      model.Gender     `json:"gender,omitempty"`
	Age         model.AgeGroup   `json:"age,omitempty"`
	Mode        *model.TestMode  `json:"mode,omitempty"`
	Position    int              `json:"position"`
	MaxPosition int              `json:"maxPosition"`
	Total       int              `json:"total"`
	Answered    int              `json:"answered"`
	Modes       []model.TestMode `json:"modes,omitempty"`
}

func newSessionView(s *model.QuizSession) sessionView {
	v := sessionView{
		ID:          s.ID,
		Screen:      s.Screen,
		Gender:      s.Gender,
		Age:         s.Age,
		Mode:        s.Mode,
		Position:    s.Position,
		MaxPosition: s.MaxPosition,
		Total:       len(s.Questions),
		Answered:    len(s.Answers),
	}
	if s.Screen == model.ScreenModeSelect {
		v.Modes = model.DefaultModes()
	}
	return v
}

// Create handles POST /v1/sessions. Shared-result query parameters, when
// valid and complete, open the session directly on the result screen.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Create(r.Context(), r.URL.Query())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newSessionView(session))
}

// Get handles GET /v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

// Start handles POST /v1/sessions/{id}/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Start(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

// SelectGender handles POST /v1/sessions/{id}/gender
func (h *SessionHandler) SelectGender(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Gender model.Gender `json:"gender"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session, err := h.sessionSvc.SelectGender(r.Context(), mux.Vars(r)["id"], req.Gender)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

// SelectAge handles POST /v1/sessions/{id}/age
func (h *SessionHandler) SelectAge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Age model.AgeGroup `json:"age"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session, err := h.sessionSvc.SelectAge(r.Context(), mux.Vars(r)["id"], req.Age)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

// SelectMode handles POST /v1/sessions/{id}/mode
func (h *SessionHandler) SelectMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode model.TestModeID `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session, err := h.sessionSvc.SelectMode(r.Context(), mux.Vars(r)["id"], req.Mode)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

// CurrentQuestion handles GET /v1/sessions/{id}/question
func (h *SessionHandler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	question := session.CurrentQuestion()
	if session.Screen != model.ScreenQuiz || question == nil {
		writeError(w, http.StatusNotFound, "no active question")
		return
	}

	selected, answered := session.Answers[session.Position]
	resp := map[string]interface{}{
		"question":    question,
		"position":    session.Position,
		"maxPosition": session.MaxPosition,
		"total":       len(session.Questions),
	}
	if answered {
		resp["selected"] = selected
	}
	writeJSON(w, http.StatusOK, resp)
}

// Answer handles POST /v1/sessions/{id}/answers
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type model.DISCType `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session, err := h.sessionSvc.Answer(r.Context(), mux.Vars(r)["id"], req.Type)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

// Back handles POST /v1/sessions/{id}/back
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Back(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

// Next handles POST /v1/sessions/{id}/next
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Next(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

// Frontier handles POST /v1/sessions/{id}/frontier
func (h *SessionHandler) Frontier(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.JumpToFrontier(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

// Reset handles POST /v1/sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session, removed, err := h.sessionSvc.Reset(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if removed {
		writeJSON(w, http.StatusOK, map[string]interface{}{"removed": true})
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(session))
}

// Result handles GET /v1/sessions/{id}/result
func (h *SessionHandler) Result(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionSvc.Result(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
