package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/wfap/offerdesk/internal/apperror"
)

type OfferHandler struct {
	service       DashboardServiceInterface
	maxBatchBytes int64
}

func NewOfferHandler(service DashboardServiceInterface, maxBatchBytes int64) *OfferHandler {
	return &OfferHandler{service: service, maxBatchBytes: maxBatchBytes}
}

// Load godoc
// @Summary Load an offer batch
// @Description Replace the session's offers with a raw batch from the offer-issuing service.
// @Description The body is a JSON array of offers or an envelope {"intent_id", "requested_amount", "offers"}.
// @Tags offers
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param batch body object true "Raw offer batch"
// @Success 200 {object} service.LoadResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /sessions/{sessionID}/offers [post]
func (h *OfferHandler) Load(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBatchBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondAppError(w, apperror.TooLarge(tooLarge.Limit))
			return
		}
		respondAppError(w, apperror.BadRequest("could not read request body"))
		return
	}

	result, err := h.service.LoadOffers(r.Context(), GetSessionID(r.Context()), body)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// List godoc
// @Summary List offers
// @Description Get the normalized offers of the session's latest batch
// @Tags offers
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {array} model.NormalizedOffer
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{sessionID}/offers [get]
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.ListOffers(r.Context(), GetSessionID(r.Context()))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, offers)
}

// Summary godoc
// @Summary Offer summary metrics
// @Description Best rate, best ESG score, average rate and approval ratio over all offers
// @Tags offers
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} comparison.Summary
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{sessionID}/offers/summary [get]
func (h *OfferHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context(), GetSessionID(r.Context()))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// Get godoc
// @Summary Get an offer
// @Description Get one normalized offer with its selection and acceptance state
// @Tags offers
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param bankID path string true "Bank ID"
// @Param offerID path string true "Offer ID"
// @Success 200 {object} service.OfferDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{sessionID}/offers/{bankID}/{offerID} [get]
func (h *OfferHandler) Get(w http.ResponseWriter, r *http.Request) {
	key, appErr := offerKeyParam(r)
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	detail, err := h.service.GetOffer(r.Context(), GetSessionID(r.Context()), key)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// Raw godoc
// @Summary Get the raw offer record
// @Description Get the upstream record an offer was normalized from
// @Tags offers
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param bankID path string true "Bank ID"
// @Param offerID path string true "Offer ID"
// @Success 200 {object} model.ArchivedOffer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{sessionID}/offers/{bankID}/{offerID}/raw [get]
func (h *OfferHandler) Raw(w http.ResponseWriter, r *http.Request) {
	key, appErr := offerKeyParam(r)
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	raw, err := h.service.RawOffer(r.Context(), GetSessionID(r.Context()), key)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, raw)
}

// Accept godoc
// @Summary Accept an offer
// @Description Forward the acceptance of an offer to the offer-issuing service
// @Tags offers
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param bankID path string true "Bank ID"
// @Param offerID path string true "Offer ID"
// @Success 202 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Offer has no issuing bank"
// @Failure 500 {object} ErrorResponse
// @Router /sessions/{sessionID}/offers/{bankID}/{offerID}/accept [post]
func (h *OfferHandler) Accept(w http.ResponseWriter, r *http.Request) {
	key, appErr := offerKeyParam(r)
	if appErr != nil {
		respondAppError(w, appErr)
		return
	}

	if err := h.service.AcceptOffer(r.Context(), GetSessionID(r.Context()), key); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusAccepted, StatusResponse{Status: "forwarded"})
}
