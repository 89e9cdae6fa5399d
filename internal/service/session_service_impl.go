package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/progression"
	"github.com/alexanderramin/apex/internal/protocol"
	"github.com/alexanderramin/apex/internal/readiness"
	"github.com/alexanderramin/apex/internal/repository"
	"github.com/alexanderramin/apex/internal/safety"
	"github.com/google/uuid"
)

// SessionService is the single writer of the active session and of the
// profile changes a finished session produces.
type SessionService struct {
	deps     Deps
	observer UseCaseObserver
}

func NewSessionService(deps Deps, observers ...UseCaseObserver) *SessionService {
	return &SessionService{deps: deps, observer: useCaseObserverOrNoop(observers)}
}

var _ app.SessionUseCase = (*SessionService)(nil)

// Preview generates the prescription for any program slot without starting
// it. Without a profile the template loads are used.
func (s *SessionService) Preview(ctx context.Context, week, day int) (*domain.SessionPrescription, error) {
	p, err := loadProfile(ctx, s.deps.Store.read())
	if err != nil && !errors.Is(err, ErrNotOnboarded) {
		return nil, err
	}
	var score *float64
	if p != nil {
		score = todayScore(p, s.deps.now())
	}
	rx := protocol.Generate(s.deps.Catalog, week, day, score, p)
	if rx == nil {
		return nil, fmt.Errorf("week %d day %d: %w", week, day, ErrNoProgramDefined)
	}
	return rx, nil
}

// Start generates today's prescription at the profile's program position
// and makes it the active session.
func (s *SessionService) Start(ctx context.Context, req app.StartSessionRequest) (rx *domain.SessionPrescription, err error) {
	startedAt := time.Now()
	fields := map[string]any{"confirmed": req.Confirmed}
	defer func() { observe(ctx, s.observer, "start-session", startedAt, fields, err) }()

	now := s.deps.now()
	err = s.deps.Store.write(ctx, func(ctx context.Context, r repos) error {
		p, err := loadProfile(ctx, r)
		if err != nil {
			return err
		}
		if _, err := loadActive(ctx, r); err == nil {
			return ErrSessionAlreadyActive
		} else if !errors.Is(err, ErrNoActiveSession) {
			return err
		}
		fields["week"], fields["day"] = p.Week, p.Day

		score := todayScore(p, now)
		if !req.Confirmed {
			if reason, blocked := confirmationReason(p, score); blocked {
				return fmt.Errorf("%w: %s", ErrRecoveryConfirmationRequired, reason)
			}
		}

		rx = protocol.Generate(s.deps.Catalog, p.Week, p.Day, score, p)
		if rx == nil {
			return fmt.Errorf("week %d day %d: %w", p.Week, p.Day, ErrNoProgramDefined)
		}
		rx.ID = uuid.New().String()
		rx.StartedAt = now
		fields["mode"] = string(rx.Mode)
		return r.active.Save(ctx, rx)
	})
	if err != nil {
		return nil, err
	}
	return rx, nil
}

// confirmationReason reports why starting a session needs confirmation.
func confirmationReason(p *domain.UserProfile, score *float64) (string, bool) {
	if readiness.ModeFor(score) == domain.ModeRecovery {
		return fmt.Sprintf("readiness %.1f is in recovery mode", *score), true
	}
	if alert, ok := safety.Blocking(safety.DetectSignals(safety.HistoryOf(p))); ok {
		return alert.Message, true
	}
	return "", false
}

func (s *SessionService) Active(ctx context.Context) (*domain.SessionPrescription, error) {
	return loadActive(ctx, s.deps.Store.read())
}

// UpdateSeries records observed values for one set of the active session.
func (s *SessionService) UpdateSeries(ctx context.Context, req app.SeriesUpdate) (rx *domain.SessionPrescription, err error) {
	startedAt := time.Now()
	fields := map[string]any{"exercise": req.Exercise, "set": req.Set}
	defer func() { observe(ctx, s.observer, "update-series", startedAt, fields, err) }()

	if (req.Reps != nil && *req.Reps < 0) || (req.RIR != nil && *req.RIR < 0) || (req.Load != nil && *req.Load < 0) {
		return nil, fmt.Errorf("%w: negative series value", ErrInvalidInput)
	}

	err = s.deps.Store.write(ctx, func(ctx context.Context, r repos) error {
		rx, err = loadActive(ctx, r)
		if err != nil {
			return err
		}
		if req.Exercise < 0 || req.Exercise >= len(rx.Exercises) {
			return fmt.Errorf("exercise %d of %d: %w", req.Exercise+1, len(rx.Exercises), ErrSeriesOutOfRange)
		}
		ex := &rx.Exercises[req.Exercise]
		if req.Set < 0 || req.Set >= len(ex.Series) {
			return fmt.Errorf("set %d of %d: %w", req.Set+1, len(ex.Series), ErrSeriesOutOfRange)
		}

		set := &ex.Series[req.Set]
		if req.Reps != nil {
			v := *req.Reps
			set.Reps = &v
		}
		if req.RIR != nil {
			v := *req.RIR
			set.RIR = &v
		}
		if req.Load != nil {
			set.Load = *req.Load
		}
		if req.Note != nil {
			set.Note = *req.Note
		}
		return r.active.Save(ctx, rx)
	})
	if err != nil {
		return nil, err
	}
	return rx, nil
}

// Finish folds the active session into the profile, appends the history
// entry, and clears the active session in one transaction.
func (s *SessionService) Finish(ctx context.Context, req app.FinishSessionRequest) (resp *app.FinishSessionResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "finish-session", startedAt, fields, err) }()

	now := s.deps.now()
	err = s.deps.Store.write(ctx, func(ctx context.Context, r repos) error {
		p, err := loadProfile(ctx, r)
		if err != nil {
			return err
		}
		rx, err := loadActive(ctx, r)
		if err != nil {
			return err
		}

		next, entry, award := progression.CompleteSession(s.deps.Catalog, p, rx, progression.SessionResult{
			PerfectTechnique: req.PerfectTechnique,
			PersonalRecord:   req.PersonalRecord,
			MentalPrep:       req.MentalPrep,
			Notes:            req.Notes,
			CompletedAt:      now,
		})
		if err := r.profiles.Save(ctx, next); err != nil {
			return err
		}
		if err := r.logs.Create(ctx, entry); err != nil {
			return err
		}
		if err := r.active.Clear(ctx); err != nil {
			return err
		}
		resp = &app.FinishSessionResponse{Log: entry, Award: award, Profile: next}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["week"], fields["day"] = resp.Log.Week, resp.Log.Day
	fields["xp"] = resp.Award.SessionXP
	fields["unlocked"] = len(resp.Award.Unlocked)
	return resp, nil
}

// Abandon discards the active session without awarding anything.
func (s *SessionService) Abandon(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "abandon-session", startedAt, nil, err) }()

	return s.deps.Store.write(ctx, func(ctx context.Context, r repos) error {
		if _, err := loadActive(ctx, r); err != nil {
			return err
		}
		return r.active.Clear(ctx)
	})
}

func (s *SessionService) History(ctx context.Context, limit int) ([]*domain.SessionLog, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.deps.Store.read().logs.ListRecent(ctx, limit)
}

// WeekHistory returns the completed sessions of one program week in day order.
func (s *SessionService) WeekHistory(ctx context.Context, week int) ([]*domain.SessionLog, error) {
	if week < 1 || week > catalog.ProgramWeeks {
		return nil, fmt.Errorf("%w: week %d outside 1-%d", ErrInvalidInput, week, catalog.ProgramWeeks)
	}
	return s.deps.Store.read().logs.ListByWeek(ctx, week)
}

// Log returns one completed session by id or unique id prefix.
func (s *SessionService) Log(ctx context.Context, id string) (*domain.SessionLog, error) {
	l, err := s.deps.Store.read().logs.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	return l, err
}
