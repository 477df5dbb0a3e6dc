package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wfap/offerdesk/internal/logger"
	"github.com/wfap/offerdesk/internal/model"
)

// AcceptanceRequest identifies the offer a user chose to accept.
type AcceptanceRequest struct {
	SessionID uuid.UUID
	IntentID  string
	Offer     model.OfferKey
}

// Acceptor carries an acceptance to the offer-issuing service.
type Acceptor interface {
	Accept(ctx context.Context, req AcceptanceRequest) error
}

// LogAcceptor records acceptances in the log and does nothing else.
type LogAcceptor struct {
	logger *slog.Logger
}

// NewLogAcceptor returns a LogAcceptor writing to l, or to the context logger when l is nil.
func NewLogAcceptor(l *slog.Logger) *LogAcceptor {
	return &LogAcceptor{logger: l}
}

func (a *LogAcceptor) Accept(ctx context.Context, req AcceptanceRequest) error {
	l := a.logger
	if l == nil {
		l = logger.FromContext(ctx)
	}
	l.Info("offer acceptance forwarded",
		slog.String("session_id", req.SessionID.String()),
		slog.String("intent_id", req.IntentID),
		slog.String("bank_id", req.Offer.BankID),
		slog.String("offer_id", req.Offer.OfferID),
	)
	return nil
}
