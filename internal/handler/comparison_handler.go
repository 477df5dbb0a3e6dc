package handler

import (
	"net/http"
)

type ComparisonHandler struct {
	service DashboardServiceInterface
}

func NewComparisonHandler(service DashboardServiceInterface) *ComparisonHandler {
	return &ComparisonHandler{service: service}
}

// Get godoc
// @Summary Get the comparison table
// @Description Side-by-side table of the selected offers, one column per offer in selection order
// @Tags comparison
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} comparison.Table
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No offers selected"
// @Router /sessions/{sessionID}/comparison [get]
func (h *ComparisonHandler) Get(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.Comparison(r.Context(), GetSessionID(r.Context()))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, table)
}

// Select godoc
// @Summary Add an offer to the comparison
// @Tags comparison
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param bankID path string true "Bank ID"
// @Param offerID path string true "Offer ID"
// @Success 200 {object} service.SelectionState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{sessionID}/comparison/{bankID}/{offerID} [post]
func (h *ComparisonHandler) Select(w http.ResponseWriter, r *http.Request) {
	key, appErr := offerKeyParam(r)
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	state, err := h.service.SelectOffer(r.Context(), GetSessionID(r.Context()), key)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// Deselect godoc
// @Summary Remove an offer from the comparison
// @Tags comparison
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param bankID path string true "Bank ID"
// @Param offerID path string true "Offer ID"
// @Success 200 {object} service.SelectionState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{sessionID}/comparison/{bankID}/{offerID} [delete]
func (h *ComparisonHandler) Deselect(w http.ResponseWriter, r *http.Request) {
	key, appErr := offerKeyParam(r)
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	state, err := h.service.DeselectOffer(r.Context(), GetSessionID(r.Context()), key)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// Clear godoc
// @Summary Clear the comparison
// @Tags comparison
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} service.SelectionState
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{sessionID}/comparison [delete]
func (h *ComparisonHandler) Clear(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.ClearComparison(r.Context(), GetSessionID(r.Context()))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}
