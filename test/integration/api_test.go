package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfap/offerdesk/internal/comparison"
	"github.com/wfap/offerdesk/internal/model"
	"github.com/wfap/offerdesk/internal/repository"
	"github.com/wfap/offerdesk/internal/service"
)

// ============ API Flow Tests (in-memory stores) ============

func TestAPI_HealthCheck(t *testing.T) {
	env := newTestServer(t, repository.NewOfferArchiveMemory(), 1<<20)

	resp := env.Request(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestAPI_ComparisonFlow(t *testing.T) {
	env := newTestServer(t, repository.NewOfferArchiveMemory(), 1<<20)
	id := env.CreateSession(t)
	base := "/api/sessions/" + id

	// 1. Nothing selected yet
	resp := env.Request(t, http.MethodGet, base+"/comparison", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var errBody map[string]string
	decodeBody(t, resp, &errBody)
	assert.Equal(t, service.SelectPrompt, errBody["error"])

	// 2. Load the batch
	resp = env.Request(t, http.MethodPost, base+"/offers", offerBatch)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loaded service.LoadResult
	decodeBody(t, resp, &loaded)
	require.Len(t, loaded.Offers, 2)
	assert.False(t, loaded.Repaired)
	assert.Zero(t, loaded.Dropped)
	assert.Equal(t, "7.25%", loaded.Offers[0].InterestRate.Display)
	assert.Equal(t, "Mar 31, 2025", loaded.Offers[0].ValidUntil.Display)
	assert.Equal(t, model.NotAvailable, loaded.Offers[1].CarbonAdjustedRate.Display)

	// 3. Select both offers, beta first
	resp = env.Request(t, http.MethodPost, base+"/comparison/beta/B-2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.Request(t, http.MethodPost, base+"/comparison/alpha/A-1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state service.SelectionState
	decodeBody(t, resp, &state)
	assert.Equal(t, 2, state.Count)
	assert.True(t, state.CanCompare)

	// Selecting again is a no-op
	resp = env.Request(t, http.MethodPost, base+"/comparison/alpha/A-1", "")
	decodeBody(t, resp, &state)
	assert.Equal(t, 2, state.Count)

	// 4. Table columns follow selection order
	resp = env.Request(t, http.MethodGet, base+"/comparison", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var table comparison.Table
	decodeBody(t, resp, &table)
	assert.Equal(t, []model.OfferKey{
		{BankID: "beta", OfferID: "B-2"},
		{BankID: "alpha", OfferID: "A-1"},
	}, table.Columns)
	require.Len(t, table.Rows, len(comparison.Attributes()))

	rate := table.Rows[2]
	assert.Equal(t, comparison.AttrInterestRate, rate.Attribute)
	assert.Equal(t, "6.50%", rate.Cells[0].Display)
	assert.Equal(t, "7.25%", rate.Cells[1].Display)

	// 5. Summary covers all offers regardless of selection
	resp = env.Request(t, http.MethodGet, base+"/offers/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary comparison.Summary
	decodeBody(t, resp, &summary)
	assert.Equal(t, 2, summary.TotalOffers)
	assert.Equal(t, "6.50%", summary.BestRate.Display)
	assert.Equal(t, "6.75%", summary.AverageRate.Display)
	assert.Equal(t, "90.0%", summary.ApprovalRatio.Display)
	require.NotNil(t, summary.BestESGOffer)
	assert.Equal(t, "alpha", summary.BestESGOffer.BankID)

	// 6. Deselect and clear
	resp = env.Request(t, http.MethodDelete, base+"/comparison/beta/B-2", "")
	decodeBody(t, resp, &state)
	assert.Equal(t, []model.OfferKey{{BankID: "alpha", OfferID: "A-1"}}, state.Selected)

	resp = env.Request(t, http.MethodDelete, base+"/comparison", "")
	decodeBody(t, resp, &state)
	assert.Zero(t, state.Count)
	assert.False(t, state.CanCompare)

	resp = env.Request(t, http.MethodGet, base+"/comparison", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAPI_OfferDetailAndAccept(t *testing.T) {
	env := newTestServer(t, repository.NewOfferArchiveMemory(), 1<<20)
	id := env.CreateSession(t)
	base := "/api/sessions/" + id

	resp := env.Request(t, http.MethodPost, base+"/offers", offerBatch)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env.Request(t, http.MethodPost, base+"/comparison/alpha/A-1", "")

	resp = env.Request(t, http.MethodGet, base+"/offers/alpha/A-1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail service.OfferDetail
	decodeBody(t, resp, &detail)
	assert.True(t, detail.Selected)
	assert.True(t, detail.CanAccept)
	assert.Equal(t, "Alpha Bank", detail.Offer.BankName.Display)

	resp = env.Request(t, http.MethodGet, base+"/offers/alpha/A-1/raw", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var raw model.ArchivedOffer
	decodeBody(t, resp, &raw)
	assert.Equal(t, "alpha", raw.BankID)
	assert.Contains(t, string(raw.Payload), `"interest_rate":0.0725`)

	resp = env.Request(t, http.MethodPost, base+"/offers/alpha/A-1/accept", "")
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp = env.Request(t, http.MethodPost, base+"/offers/gamma/C-3/accept", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_AcceptWithoutIssuer(t *testing.T) {
	env := newTestServer(t, repository.NewOfferArchiveMemory(), 1<<20)
	id := env.CreateSession(t)
	base := "/api/sessions/" + id

	resp := env.Request(t, http.MethodPost, base+"/offers", `[{"offer_id": "9", "interest_rate": 0.05}]`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.Request(t, http.MethodGet, base+"/offers/unknown/9", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail service.OfferDetail
	decodeBody(t, resp, &detail)
	assert.False(t, detail.CanAccept)

	resp = env.Request(t, http.MethodPost, base+"/offers/unknown/9/accept", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAPI_ReloadPrunesSelection(t *testing.T) {
	env := newTestServer(t, repository.NewOfferArchiveMemory(), 1<<20)
	id := env.CreateSession(t)
	base := "/api/sessions/" + id

	env.Request(t, http.MethodPost, base+"/offers", offerBatch)
	env.Request(t, http.MethodPost, base+"/comparison/alpha/A-1", "")
	env.Request(t, http.MethodPost, base+"/comparison/beta/B-2", "")

	reload := `[{"bank_id": "beta", "offer_id": "B-2", "interest_rate": 0.06},
		{"bank_id": "beta", "offer_id": "B-2", "interest_rate": 0.09}]`
	resp := env.Request(t, http.MethodPost, base+"/offers", reload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loaded service.LoadResult
	decodeBody(t, resp, &loaded)
	require.Len(t, loaded.Offers, 1)
	assert.Equal(t, 1, loaded.Duplicates)
	assert.Equal(t, "6.00%", loaded.Offers[0].InterestRate.Display)
	assert.Equal(t, []model.OfferKey{{BankID: "alpha", OfferID: "A-1"}}, loaded.Pruned)

	resp = env.Request(t, http.MethodGet, base+"/comparison", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var table comparison.Table
	decodeBody(t, resp, &table)
	assert.Equal(t, []model.OfferKey{{BankID: "beta", OfferID: "B-2"}}, table.Columns)

	resp = env.Request(t, http.MethodGet, base+"/offers/alpha/A-1/raw", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_LoadOffers_Payloads(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantOffers   int
		wantRepaired bool
	}{
		{
			name:       "bare array",
			body:       `[{"bank_id": "a", "offer_id": "1"}]`,
			wantStatus: http.StatusOK,
			wantOffers: 1,
		},
		{
			name:         "trailing comma repaired",
			body:         `[{"bank_id": "a", "offer_id": "1", "interest_rate": 0.05,}]`,
			wantStatus:   http.StatusOK,
			wantOffers:   1,
			wantRepaired: true,
		},
		{
			name:       "empty offers list",
			body:       `{"offers": []}`,
			wantStatus: http.StatusOK,
			wantOffers: 0,
		},
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "offers not an array",
			body:       `{"offers": "none"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "too large",
			body:       `[` + strings.Repeat(`{"bank_id": "a"},`, 200) + `{}]`,
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	env := newTestServer(t, repository.NewOfferArchiveMemory(), 1024)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := env.CreateSession(t)

			resp := env.Request(t, http.MethodPost, "/api/sessions/"+id+"/offers", tt.body)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var loaded service.LoadResult
			decodeBody(t, resp, &loaded)
			assert.Len(t, loaded.Offers, tt.wantOffers)
			assert.Equal(t, tt.wantRepaired, loaded.Repaired)
		})
	}
}

func TestAPI_SessionLifecycle(t *testing.T) {
	env := newTestServer(t, repository.NewOfferArchiveMemory(), 1<<20)
	id := env.CreateSession(t)
	base := "/api/sessions/" + id

	resp := env.Request(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var session model.Session
	decodeBody(t, resp, &session)
	assert.Equal(t, id, session.ID.String())
	assert.Empty(t, session.Offers)
	assert.Empty(t, session.Selected)

	resp = env.Request(t, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.Request(t, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_SessionErrors(t *testing.T) {
	env := newTestServer(t, repository.NewOfferArchiveMemory(), 1<<20)
	id := env.CreateSession(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"invalid session ID", http.MethodGet, "/api/sessions/not-a-uuid", http.StatusBadRequest},
		{"unknown session", http.MethodGet, "/api/sessions/00000000-0000-0000-0000-000000000001", http.StatusNotFound},
		{"unknown session offers", http.MethodGet, "/api/sessions/00000000-0000-0000-0000-000000000001/offers", http.StatusNotFound},
		{"select unknown offer", http.MethodPost, fmt.Sprintf("/api/sessions/%s/comparison/x/y", id), http.StatusNotFound},
		{"get unknown offer", http.MethodGet, fmt.Sprintf("/api/sessions/%s/offers/x/y", id), http.StatusNotFound},
		{"deselect unknown offer", http.MethodDelete, fmt.Sprintf("/api/sessions/%s/comparison/x/y", id), http.StatusOK},
		{"unknown route", http.MethodGet, "/api/rates", http.StatusNotFound},
		{"wrong method", http.MethodPut, fmt.Sprintf("/api/sessions/%s/comparison", id), http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.Request(t, tt.method, tt.path, "")
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
