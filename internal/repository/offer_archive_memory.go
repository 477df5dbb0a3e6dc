package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wfap/offerdesk/internal/model"
)

// OfferArchiveMemory is an in-memory raw offer archive.
type OfferArchiveMemory struct {
	mu     sync.RWMutex
	nextID int64
	data   map[uuid.UUID][]model.ArchivedOffer
}

func NewOfferArchiveMemory() *OfferArchiveMemory {
	return &OfferArchiveMemory{
		data: make(map[uuid.UUID][]model.ArchivedOffer),
	}
}

// ReplaceSession swaps the archived batch for a session. Duplicate keys keep the last record.
func (r *OfferArchiveMemory) ReplaceSession(ctx context.Context, sessionID uuid.UUID, offers []model.ArchivedOffer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	batch := make([]model.ArchivedOffer, 0, len(offers))
	index := make(map[model.OfferKey]int, len(offers))
	for _, o := range offers {
		o.SessionID = sessionID
		o.Payload = append([]byte(nil), o.Payload...)
		if i, dup := index[o.Key()]; dup {
			o.ID = batch[i].ID
			batch[i] = o
			continue
		}
		r.nextID++
		o.ID = r.nextID
		index[o.Key()] = len(batch)
		batch = append(batch, o)
	}
	r.data[sessionID] = batch
	return nil
}

func (r *OfferArchiveMemory) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.ArchivedOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.data[sessionID]
	out := make([]model.ArchivedOffer, len(stored))
	for i, o := range stored {
		o.Payload = append([]byte(nil), o.Payload...)
		out[i] = o
	}
	return out, nil
}

func (r *OfferArchiveMemory) GetByKey(ctx context.Context, sessionID uuid.UUID, key model.OfferKey) (*model.ArchivedOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.data[sessionID] {
		if o.Key() == key {
			o.Payload = append([]byte(nil), o.Payload...)
			return &o, nil
		}
	}
	return nil, ErrArchivedOfferNotFound
}

func (r *OfferArchiveMemory) DeleteBySession(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.data[sessionID]))
	delete(r.data, sessionID)
	return n, nil
}
