package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wfap/offerdesk/internal/logger"
)

func TestSessionContext(t *testing.T) {
	id := uuid.New()

	var gotID uuid.UUID
	var gotLogID string
	r := chi.NewRouter()
	r.Route("/s/{sessionID}", func(r chi.Router) {
		r.Use(SessionContext)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			gotID = GetSessionID(r.Context())
			gotLogID = logger.SessionID(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/s/"+id.String(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, gotID)
	assert.Equal(t, id.String(), gotLogID)
}

func TestRequestContext(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		assert.NotEmpty(t, middleware.GetReqID(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	h := middleware.RequestID(RequestContext(next))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOfferKeyParam(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		want    string
	}{
		{"plain", "/o/alpha/1", false, "alpha/1"},
		{"escaped", "/o/alpha%2Fwest/1", false, "alpha/west/1"},
		{"bad escape", "/o/alpha%zz/1", true, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			var failed bool
			r := chi.NewRouter()
			r.Get("/o/{bankID}/{offerID}", func(w http.ResponseWriter, r *http.Request) {
				key, appErr := offerKeyParam(r)
				failed = appErr != nil
				got = key.String()
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.URL.RawPath = tt.path
			req.URL.Path = tt.path
			r.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantErr, failed)
			assert.Equal(t, tt.want, got)
		})
	}
}
