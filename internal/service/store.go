package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/db"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/progression"
	"github.com/alexanderramin/apex/internal/repository"
)

// Store binds repositories to the database for reads and to a transaction
// for writes.
type Store struct {
	DB      db.DBTX
	UoW     db.UnitOfWork
	Version string
}

func NewStore(database *sql.DB, version string) Store {
	return Store{DB: database, UoW: db.NewSQLiteUnitOfWork(database), Version: version}
}

type repos struct {
	profiles repository.ProfileRepo
	active   repository.ActiveSessionRepo
	logs     repository.SessionLogRepo
}

func (s Store) bind(conn db.DBTX) repos {
	env := repository.NewEnvelopeStore(conn, s.Version)
	return repos{
		profiles: repository.NewEnvelopeProfileRepo(env),
		active:   repository.NewEnvelopeActiveSessionRepo(env),
		logs:     repository.NewSQLiteSessionLogRepo(conn),
	}
}

func (s Store) read() repos {
	return s.bind(s.DB)
}

// write runs fn in one transaction. fn must only use the repos it is given.
func (s Store) write(ctx context.Context, fn func(ctx context.Context, r repos) error) error {
	return s.UoW.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, s.bind(tx))
	})
}

// Deps is shared by every service.
type Deps struct {
	Catalog         *catalog.Catalog
	Store           Store
	ReadinessWindow int
	// Now defaults to time.Now.
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Deps) window() int {
	if d.ReadinessWindow > 0 {
		return d.ReadinessWindow
	}
	return progression.DefaultReadinessWindow
}

func loadProfile(ctx context.Context, r repos) (*domain.UserProfile, error) {
	p, err := r.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotOnboarded
		}
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}

func loadActive(ctx context.Context, r repos) (*domain.SessionPrescription, error) {
	rx, err := r.active.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("loading active session: %w", err)
	}
	return rx, nil
}

// todayReadiness returns the sample recorded on now's calendar day.
func todayReadiness(p *domain.UserProfile, now time.Time) (domain.ReadinessSample, bool) {
	s, ok := p.LatestReadiness()
	if !ok || s.Date != now.Format(time.DateOnly) {
		return domain.ReadinessSample{}, false
	}
	return s, true
}

func todayScore(p *domain.UserProfile, now time.Time) *float64 {
	s, ok := todayReadiness(p, now)
	if !ok {
		return nil
	}
	score := s.Score
	return &score
}
