package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wfap/offerdesk/internal/model"
)

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrArchivedOfferNotFound = errors.New("archived offer not found")
)

//go:generate mockery --name=SessionRepositoryInterface --output=../mocks --outpkg=mocks
type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Session, error)
	Update(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteIdleSince(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}

//go:generate mockery --name=OfferArchiveRepositoryInterface --output=../mocks --outpkg=mocks
type OfferArchiveRepositoryInterface interface {
	ReplaceSession(ctx context.Context, sessionID uuid.UUID, offers []model.ArchivedOffer) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.ArchivedOffer, error)
	GetByKey(ctx context.Context, sessionID uuid.UUID, key model.OfferKey) (*model.ArchivedOffer, error)
	DeleteBySession(ctx context.Context, sessionID uuid.UUID) (int64, error)
}
