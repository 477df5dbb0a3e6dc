package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/wfap/offerdesk/internal/comparison"
	"github.com/wfap/offerdesk/internal/model"
	"github.com/wfap/offerdesk/internal/service"
)

// DashboardServiceInterface for handler testing
type DashboardServiceInterface interface {
	CreateSession(ctx context.Context) (*model.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error

	LoadOffers(ctx context.Context, id uuid.UUID, payload []byte) (*service.LoadResult, error)
	ListOffers(ctx context.Context, id uuid.UUID) ([]model.NormalizedOffer, error)
	GetOffer(ctx context.Context, id uuid.UUID, key model.OfferKey) (*service.OfferDetail, error)
	RawOffer(ctx context.Context, id uuid.UUID, key model.OfferKey) (*model.ArchivedOffer, error)
	AcceptOffer(ctx context.Context, id uuid.UUID, key model.OfferKey) error
	Summary(ctx context.Context, id uuid.UUID) (*comparison.Summary, error)

	SelectOffer(ctx context.Context, id uuid.UUID, key model.OfferKey) (*service.SelectionState, error)
	DeselectOffer(ctx context.Context, id uuid.UUID, key model.OfferKey) (*service.SelectionState, error)
	ClearComparison(ctx context.Context, id uuid.UUID) (*service.SelectionState, error)
	Comparison(ctx context.Context, id uuid.UUID) (*comparison.Table, error)
}

var _ DashboardServiceInterface = (*service.DashboardService)(nil)
