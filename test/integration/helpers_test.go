package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"github.com/wfap/offerdesk/internal/handler"
	"github.com/wfap/offerdesk/internal/offer"
	"github.com/wfap/offerdesk/internal/repository"
	"github.com/wfap/offerdesk/internal/service"
)

const offerBatch = `{
	"intent_id": "intent-7",
	"requested_amount": 50000,
	"offers": [
		{"bank_id": "alpha", "offer_id": "A-1", "bank_name": "Alpha Bank", "approved_amount": 50000,
		 "interest_rate": 0.0725, "carbon_adjusted_rate": 0.07, "offer_valid_until": "2025-03-31",
		 "esg_score": {"overall_score": 7.8}, "risk_assessment": {"overall_risk_rating": "Low"}},
		{"bank_id": "beta", "offer_id": "B-2", "bank_name": "Beta Credit", "approved_amount": 40000,
		 "interest_rate": 0.065}
	]
}`

// testServer wraps an httptest server running the full dashboard router.
type testServer struct {
	Server  *httptest.Server
	Service *service.DashboardService
}

// newTestServer starts the API with in-memory sessions and the given archive.
func newTestServer(t *testing.T, archive service.DashboardArchiveRepo, maxBatchBytes int64) *testServer {
	t.Helper()

	svc := service.NewDashboardService(
		repository.NewSessionRepositoryMemory(),
		archive,
		offer.NewNormalizer("USD"),
		nil,
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(handler.RequestContext)
	handler.Mount(r, svc, maxBatchBytes)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return &testServer{Server: server, Service: svc}
}

// Request sends body verbatim so malformed payloads reach the server untouched.
func (e *testServer) Request(t *testing.T, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// CreateSession starts a session and returns its ID.
func (e *testServer) CreateSession(t *testing.T) string {
	t.Helper()

	resp := e.Request(t, http.MethodPost, "/api/sessions", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	decodeBody(t, resp, &created)
	id, ok := created["id"].(string)
	require.True(t, ok)
	return id
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
