package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/apex/internal/domain"
)

// EnvelopeProfileRepo stores the user profile as the "user" envelope.
type EnvelopeProfileRepo struct {
	store *EnvelopeStore
}

func NewEnvelopeProfileRepo(store *EnvelopeStore) *EnvelopeProfileRepo {
	return &EnvelopeProfileRepo{store: store}
}

// Get returns ErrNotFound when no profile of the current storage version
// exists.
func (r *EnvelopeProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	p, err := LoadOrDefault[*domain.UserProfile](ctx, r.store, KeyProfile, nil)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("user profile: %w", ErrNotFound)
	}
	return p, nil
}

func (r *EnvelopeProfileRepo) Save(ctx context.Context, p *domain.UserProfile) error {
	return r.store.Put(ctx, KeyProfile, p)
}

// EnvelopeActiveSessionRepo stores the in-progress prescription as the
// "active_session" envelope.
type EnvelopeActiveSessionRepo struct {
	store *EnvelopeStore
}

func NewEnvelopeActiveSessionRepo(store *EnvelopeStore) *EnvelopeActiveSessionRepo {
	return &EnvelopeActiveSessionRepo{store: store}
}

func (r *EnvelopeActiveSessionRepo) Get(ctx context.Context) (*domain.SessionPrescription, error) {
	s, err := LoadOrDefault[*domain.SessionPrescription](ctx, r.store, KeyActiveSession, nil)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("active session: %w", ErrNotFound)
	}
	return s, nil
}

func (r *EnvelopeActiveSessionRepo) Save(ctx context.Context, s *domain.SessionPrescription) error {
	return r.store.Put(ctx, KeyActiveSession, s)
}

func (r *EnvelopeActiveSessionRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeyActiveSession)
}
