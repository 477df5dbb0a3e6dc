package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/wfap/offerdesk/internal/apperror"
	"github.com/wfap/offerdesk/internal/logger"
	"github.com/wfap/offerdesk/internal/model"
)

type contextKey string

const SessionIDKey contextKey = "sessionID"

// RequestContext copies chi's request id into the logging context.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			r = r.WithContext(logger.WithRequestID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// SessionContext parses the {sessionID} URL parameter and stores it in the request context.
func SessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
		if err != nil {
			respondAppError(w, apperror.BadRequest("invalid session ID"))
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, id)
		ctx = logger.WithSessionID(ctx, id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID returns the session id set by SessionContext, or uuid.Nil.
func GetSessionID(ctx context.Context) uuid.UUID {
	id, ok := ctx.Value(SessionIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// offerKeyParam reads the {bankID}/{offerID} URL parameters.
func offerKeyParam(r *http.Request) (model.OfferKey, *apperror.AppError) {
	bankID, err := url.PathUnescape(chi.URLParam(r, "bankID"))
	if err != nil || bankID == "" {
		return model.OfferKey{}, apperror.BadRequest("invalid bank ID")
	}
	offerID, err := url.PathUnescape(chi.URLParam(r, "offerID"))
	if err != nil || offerID == "" {
		return model.OfferKey{}, apperror.BadRequest("invalid offer ID")
	}
	return model.OfferKey{BankID: bankID, OfferID: offerID}, nil
}
