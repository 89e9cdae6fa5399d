package repository

import (
	"context"

	"github.com/alexanderramin/apex/internal/domain"
)

// Envelope keys.
const (
	KeyProfile       = "user"
	KeyActiveSession = "active_session"
)

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
}

// ActiveSessionRepo holds the single in-progress prescription between
// invocations.
type ActiveSessionRepo interface {
	Get(ctx context.Context) (*domain.SessionPrescription, error)
	Save(ctx context.Context, s *domain.SessionPrescription) error
	Clear(ctx context.Context) error
}

type SessionLogRepo interface {
	Create(ctx context.Context, l *domain.SessionLog) error
	GetByID(ctx context.Context, id string) (*domain.SessionLog, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.SessionLog, error)
	ListByWeek(ctx context.Context, week int) ([]*domain.SessionLog, error)
	Count(ctx context.Context) (int, error)
}
