package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wfap/offerdesk/internal/model"
)

// SessionRepositoryMemory keeps dashboard sessions in process memory.
// Sessions are copied on the way in and out so callers never share state.
type SessionRepositoryMemory struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*model.Session
}

// NewSessionRepositoryMemory creates an empty session store.
func NewSessionRepositoryMemory() *SessionRepositoryMemory {
	return &SessionRepositoryMemory{
		sessions: make(map[uuid.UUID]*model.Session),
	}
}

func (r *SessionRepositoryMemory) Create(ctx context.Context, session *model.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("create session %s: already exists", session.ID)
	}
	r.sessions[session.ID] = session.Clone()
	return nil
}

func (r *SessionRepositoryMemory) GetByID(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (r *SessionRepositoryMemory) Update(ctx context.Context, session *model.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return ErrSessionNotFound
	}
	r.sessions[session.ID] = session.Clone()
	return nil
}

func (r *SessionRepositoryMemory) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// DeleteIdleSince removes sessions last seen before cutoff and returns their ids.
func (r *SessionRepositoryMemory) DeleteIdleSince(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var evicted []uuid.UUID
	for id, s := range r.sessions {
		if s.LastSeenAt.Before(cutoff) {
			delete(r.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted, nil
}
