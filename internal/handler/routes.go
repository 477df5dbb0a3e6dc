package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Health godoc
// @Summary Health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// Mount registers the dashboard API under /api.
func Mount(r chi.Router, svc DashboardServiceInterface, maxBatchBytes int64) {
	sessions := NewSessionHandler(svc)
	offers := NewOfferHandler(svc, maxBatchBytes)
	compare := NewComparisonHandler(svc)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/api/health", Health)
	r.Post("/api/sessions", sessions.Create)

	r.Route("/api/sessions/{sessionID}", func(r chi.Router) {
		r.Use(SessionContext)

		r.Get("/", sessions.Get)
		r.Delete("/", sessions.Delete)

		// Offers
		r.Post("/offers", offers.Load)
		r.Get("/offers", offers.List)
		r.Get("/offers/summary", offers.Summary)
		r.Get("/offers/{bankID}/{offerID}", offers.Get)
		r.Get("/offers/{bankID}/{offerID}/raw", offers.Raw)
		r.Post("/offers/{bankID}/{offerID}/accept", offers.Accept)

		// Comparison
		r.Get("/comparison", compare.Get)
		r.Delete("/comparison", compare.Clear)
		r.Post("/comparison/{bankID}/{offerID}", compare.Select)
		r.Delete("/comparison/{bankID}/{offerID}", compare.Deselect)
	})
}
