package handler

import (
	"net/http"

	_ "github.com/wfap/offerdesk/internal/model" // swagger types
)

type SessionHandler struct {
	service DashboardServiceInterface
}

func NewSessionHandler(service DashboardServiceInterface) *SessionHandler {
	return &SessionHandler{service: service}
}

// Create godoc
// @Summary Start a dashboard session
// @Description Create a session with no offers and an empty comparison selection
// @Tags sessions
// @Produce json
// @Success 201 {object} model.Session
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.CreateSession(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, session)
}

// Get godoc
// @Summary Get a dashboard session
// @Description Get the session's offers, selection and requested amount
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} model.Session
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{sessionID} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), GetSessionID(r.Context()))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

// Delete godoc
// @Summary End a dashboard session
// @Description Drop the session, its selection and archived raw offers
// @Tags sessions
// @Param sessionID path string true "Session ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{sessionID} [delete]
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSession(r.Context(), GetSessionID(r.Context())); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
