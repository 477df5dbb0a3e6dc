package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wfap/offerdesk/internal/apperror"
	"github.com/wfap/offerdesk/internal/comparison"
	"github.com/wfap/offerdesk/internal/logger"
	"github.com/wfap/offerdesk/internal/model"
	"github.com/wfap/offerdesk/internal/offer"
	"github.com/wfap/offerdesk/internal/repository"
)

// SelectPrompt is shown when a comparison is requested with nothing selected.
const SelectPrompt = "select offers to compare"

// NoIssuerMessage is returned when accepting an offer that carries no bank id.
const NoIssuerMessage = "offer has no issuing bank to accept with"

// DashboardSessionRepo stores per-user dashboard sessions.
type DashboardSessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Session, error)
	Update(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteIdleSince(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}

// DashboardArchiveRepo keeps the raw offer records behind each session's batch.
type DashboardArchiveRepo interface {
	ReplaceSession(ctx context.Context, sessionID uuid.UUID, offers []model.ArchivedOffer) error
	GetByKey(ctx context.Context, sessionID uuid.UUID, key model.OfferKey) (*model.ArchivedOffer, error)
	DeleteBySession(ctx context.Context, sessionID uuid.UUID) (int64, error)
}

// LoadResult reports what an offer batch load did.
type LoadResult struct {
	Offers     []model.NormalizedOffer `json:"offers"`
	Repaired   bool                    `json:"repaired"`
	Dropped    int                     `json:"dropped"`
	Duplicates int                     `json:"duplicates"`
	Pruned     []model.OfferKey        `json:"pruned"`
}

// SelectionState is the comparison selection after a user action.
type SelectionState struct {
	Selected   []model.OfferKey `json:"selected"`
	Count      int              `json:"count"`
	CanCompare bool             `json:"canCompare"`
}

// OfferDetail is a single offer with its per-session state.
type OfferDetail struct {
	Offer     model.NormalizedOffer `json:"offer"`
	Selected  bool                  `json:"selected"`
	CanAccept bool                  `json:"canAccept"`
}

// DashboardService runs the user actions of one dashboard session against the offer pipeline.
type DashboardService struct {
	sessions   DashboardSessionRepo
	archive    DashboardArchiveRepo
	normalizer *offer.Normalizer
	acceptor   Acceptor
	now        func() time.Time

	// mu serializes read-modify-write cycles on sessions.
	mu sync.Mutex
}

// NewDashboardService creates a new DashboardService. A nil acceptor logs acceptances.
func NewDashboardService(
	sessions DashboardSessionRepo,
	archive DashboardArchiveRepo,
	normalizer *offer.Normalizer,
	acceptor Acceptor,
) *DashboardService {
	if acceptor == nil {
		acceptor = NewLogAcceptor(nil)
	}
	return &DashboardService{
		sessions:   sessions,
		archive:    archive,
		normalizer: normalizer,
		acceptor:   acceptor,
		now:        time.Now,
	}
}

// CreateSession starts an empty session with no offers and an empty selection.
func (s *DashboardService) CreateSession(ctx context.Context) (*model.Session, error) {
	now := s.now().UTC()
	session := &model.Session{
		ID:         uuid.New(),
		Offers:     []model.NormalizedOffer{},
		Selected:   []model.OfferKey{},
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	logger.FromContext(ctx).Info("session created", slog.String("session_id", session.ID.String()))
	return session, nil
}

// GetSession returns the session and marks it as seen.
func (s *DashboardService) GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSession drops the session and its archived raw offers.
func (s *DashboardService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return apperror.NotFound("session")
		}
		return fmt.Errorf("deleting session: %w", err)
	}
	if _, err := s.archive.DeleteBySession(ctx, id); err != nil {
		return fmt.Errorf("deleting archived offers: %w", err)
	}
	return nil
}

// LoadOffers decodes and normalizes a batch, replacing the session's offers.
// Selected keys that are no longer offered are dropped from the selection.
func (s *DashboardService) LoadOffers(ctx context.Context, id uuid.UUID, payload []byte) (*LoadResult, error) {
	batch, err := offer.DecodeBatch(payload)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	result := &LoadResult{
		Offers:   make([]model.NormalizedOffer, 0, len(batch.Offers)),
		Repaired: batch.Repaired,
		Dropped:  batch.Dropped,
		Pruned:   []model.OfferKey{},
	}
	archived := make([]model.ArchivedOffer, 0, len(batch.Offers))
	seen := make(map[model.OfferKey]bool, len(batch.Offers))

	for _, raw := range batch.Offers {
		o := s.normalizer.Normalize(raw)
		if seen[o.Key] {
			result.Duplicates++
			continue
		}
		seen[o.Key] = true
		result.Offers = append(result.Offers, o)
		archived = append(archived, model.ArchivedOffer{
			SessionID:  session.ID,
			BankID:     o.Key.BankID,
			OfferID:    o.Key.OfferID,
			Payload:    raw.Bytes(),
			ReceivedAt: now,
		})
	}

	if err := s.archive.ReplaceSession(ctx, session.ID, archived); err != nil {
		return nil, fmt.Errorf("archiving offers: %w", err)
	}

	selection := comparison.NewSelection(session.Selected...)
	kept := selection.Retain(func(k model.OfferKey) bool { return seen[k] })
	for _, k := range selection.Keys() {
		if !kept.Contains(k) {
			result.Pruned = append(result.Pruned, k)
		}
	}

	session.Offers = result.Offers
	session.Selected = kept.Keys()
	session.IntentID = batch.IntentID
	session.RequestedAmount = batch.RequestedAmount
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("offers loaded",
		slog.Int("offers", len(result.Offers)),
		slog.Int("dropped", result.Dropped),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("pruned", len(result.Pruned)),
		slog.Bool("repaired", result.Repaired),
	)
	return result, nil
}

// ListOffers returns the session's normalized offers in batch order.
func (s *DashboardService) ListOffers(ctx context.Context, id uuid.UUID) ([]model.NormalizedOffer, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.Offers, nil
}

// GetOffer returns one offer with its selection and acceptance state.
func (s *DashboardService) GetOffer(ctx context.Context, id uuid.UUID, key model.OfferKey) (*OfferDetail, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	o, ok := session.FindOffer(key)
	if !ok {
		return nil, apperror.NotFound("offer")
	}
	return &OfferDetail{
		Offer:     o,
		Selected:  comparison.NewSelection(session.Selected...).Contains(key),
		CanAccept: acceptable(o),
	}, nil
}

// RawOffer returns the archived upstream record of an offer in the current batch.
func (s *DashboardService) RawOffer(ctx context.Context, id uuid.UUID, key model.OfferKey) (*model.ArchivedOffer, error) {
	if _, err := s.GetOffer(ctx, id, key); err != nil {
		return nil, err
	}
	raw, err := s.archive.GetByKey(ctx, id, key)
	if err != nil {
		if errors.Is(err, repository.ErrArchivedOfferNotFound) {
			return nil, apperror.NotFound("archived offer")
		}
		return nil, fmt.Errorf("getting archived offer: %w", err)
	}
	return raw, nil
}

// SelectOffer adds an offer to the comparison. Selecting twice is a no-op.
func (s *DashboardService) SelectOffer(ctx context.Context, id uuid.UUID, key model.OfferKey) (*SelectionState, error) {
	return s.updateSelection(ctx, id, func(session *model.Session, sel comparison.Selection) (comparison.Selection, error) {
		if _, ok := session.FindOffer(key); !ok {
			return sel, apperror.NotFound("offer")
		}
		return sel.Add(key), nil
	})
}

// DeselectOffer removes an offer from the comparison. Removing an unselected offer is a no-op.
func (s *DashboardService) DeselectOffer(ctx context.Context, id uuid.UUID, key model.OfferKey) (*SelectionState, error) {
	return s.updateSelection(ctx, id, func(_ *model.Session, sel comparison.Selection) (comparison.Selection, error) {
		return sel.Remove(key), nil
	})
}

// ClearComparison empties the selection.
func (s *DashboardService) ClearComparison(ctx context.Context, id uuid.UUID) (*SelectionState, error) {
	return s.updateSelection(ctx, id, func(_ *model.Session, sel comparison.Selection) (comparison.Selection, error) {
		return sel.Clear(), nil
	})
}

// Comparison builds the side-by-side table for the current selection.
func (s *DashboardService) Comparison(ctx context.Context, id uuid.UUID) (*comparison.Table, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	table, err := comparison.BuildTable(comparison.NewSelection(session.Selected...), session.Offers)
	if err != nil {
		if errors.Is(err, comparison.ErrEmptySelection) {
			return nil, apperror.Unprocessable(err, SelectPrompt)
		}
		return nil, fmt.Errorf("building comparison: %w", err)
	}
	return &table, nil
}

// Summary computes the aggregate metrics over all offers in the session.
func (s *DashboardService) Summary(ctx context.Context, id uuid.UUID) (*comparison.Summary, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := comparison.Summarize(session.Offers, session.RequestedAmount)
	return &summary, nil
}

// acceptable reports whether an acceptance can be routed for o. Offers whose bank id was
// substituted during normalization have no issuer to forward to.
func acceptable(o model.NormalizedOffer) bool {
	return o.Key.BankID != model.UnknownBankID
}

// AcceptOffer forwards the acceptance of an offer in the current batch to the acceptor.
func (s *DashboardService) AcceptOffer(ctx context.Context, id uuid.UUID, key model.OfferKey) error {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return err
	}
	o, ok := session.FindOffer(key)
	if !ok {
		return apperror.NotFound("offer")
	}
	if !acceptable(o) {
		return apperror.Unprocessable(nil, NoIssuerMessage)
	}

	req := AcceptanceRequest{SessionID: session.ID, IntentID: session.IntentID, Offer: key}
	if err := s.acceptor.Accept(ctx, req); err != nil {
		return fmt.Errorf("forwarding acceptance: %w", err)
	}
	return nil
}

// EvictIdle removes sessions not seen within ttl, with their archives, and returns how many were removed.
func (s *DashboardService) EvictIdle(ctx context.Context, ttl time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted, err := s.sessions.DeleteIdleSince(ctx, s.now().UTC().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("evicting idle sessions: %w", err)
	}
	for _, id := range evicted {
		if _, err := s.archive.DeleteBySession(ctx, id); err != nil {
			return len(evicted), fmt.Errorf("deleting archived offers for %s: %w", id, err)
		}
	}
	return len(evicted), nil
}

func (s *DashboardService) updateSelection(
	ctx context.Context,
	id uuid.UUID,
	apply func(*model.Session, comparison.Selection) (comparison.Selection, error),
) (*SelectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := apply(session, comparison.NewSelection(session.Selected...))
	if err != nil {
		return nil, err
	}

	session.Selected = next.Keys()
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return &SelectionState{
		Selected:   session.Selected,
		Count:      next.Len(),
		CanCompare: next.Len() > 0,
	}, nil
}

func (s *DashboardService) load(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, apperror.NotFound("session")
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return session, nil
}

func (s *DashboardService) save(ctx context.Context, session *model.Session) error {
	session.LastSeenAt = s.now().UTC()
	if err := s.sessions.Update(ctx, session); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return apperror.NotFound("session")
		}
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
