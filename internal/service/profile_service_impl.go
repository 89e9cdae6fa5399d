package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/progression"
	"github.com/alexanderramin/apex/internal/readiness"
	"github.com/alexanderramin/apex/internal/repository"
	"github.com/alexanderramin/apex/internal/safety"
)

// ProfileService owns onboarding and the daily readiness check-in.
type ProfileService struct {
	deps     Deps
	observer UseCaseObserver
}

func NewProfileService(deps Deps, observers ...UseCaseObserver) *ProfileService {
	return &ProfileService{deps: deps, observer: useCaseObserverOrNoop(observers)}
}

var (
	_ app.OnboardUseCase   = (*ProfileService)(nil)
	_ app.ProfileUseCase   = (*ProfileService)(nil)
	_ app.ReadinessUseCase = (*ProfileService)(nil)
)

// Onboard creates the profile with the starting ledger and grants the
// onboarding XP.
func (s *ProfileService) Onboard(ctx context.Context, req app.OnboardRequest) (resp *app.OnboardResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "onboard", startedAt, fields, err) }()

	if req.BodyweightKg <= 0 {
		return nil, fmt.Errorf("%w: bodyweight must be positive", ErrInvalidInput)
	}
	if req.GripBaseline < 0 || req.HeightCm < 0 || req.Age < 0 {
		return nil, fmt.Errorf("%w: negative measurement", ErrInvalidInput)
	}

	cat := s.deps.Catalog
	err = s.deps.Store.write(ctx, func(ctx context.Context, r repos) error {
		if _, err := r.profiles.Get(ctx); err == nil {
			return ErrAlreadyOnboarded
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("loading profile: %w", err)
		}

		p, award := progression.ApplyXP(cat, progression.NewProfile(cat, identityOf(req), s.deps.now()), progression.OnboardingXP)
		if err := r.profiles.Save(ctx, p); err != nil {
			return err
		}
		resp = &app.OnboardResponse{Profile: p, Award: award}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["xp"] = resp.Profile.XP
	fields["level"] = resp.Profile.Level
	return resp, nil
}

func identityOf(req app.OnboardRequest) progression.Identity {
	return progression.Identity{
		Name:         req.Name,
		Age:          req.Age,
		HeightCm:     req.HeightCm,
		BodyweightKg: req.BodyweightKg,
		GripBaseline: req.GripBaseline,
		Preferences:  req.Preferences,
	}
}

func (s *ProfileService) Profile(ctx context.Context) (*domain.UserProfile, error) {
	return loadProfile(ctx, s.deps.Store.read())
}

// RecordReadiness evaluates today's check-in and stores it. A second
// check-in on the same day replaces the first.
func (s *ProfileService) RecordReadiness(ctx context.Context, req app.ReadinessRequest) (resp *app.ReadinessResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "record-readiness", startedAt, fields, err) }()

	if err := validateComponents(req.Components); err != nil {
		return nil, err
	}
	if req.Grip < 0 {
		return nil, fmt.Errorf("%w: grip must not be negative", ErrInvalidInput)
	}

	now := s.deps.now()
	err = s.deps.Store.write(ctx, func(ctx context.Context, r repos) error {
		p, err := loadProfile(ctx, r)
		if err != nil {
			return err
		}
		res := readiness.Evaluate(readiness.Input{
			Components:   req.Components,
			Grip:         req.Grip,
			GripBaseline: p.GripBaseline,
		})
		p = progression.RecordReadiness(p, domain.ReadinessSample{
			Date:       now.Format(time.DateOnly),
			Score:      res.Score,
			Components: req.Components,
			Grip:       req.Grip,
		}, s.deps.window())
		if err := r.profiles.Save(ctx, p); err != nil {
			return err
		}

		resp = &app.ReadinessResponse{
			Result:          res,
			Advice:          readiness.Advice(res.Mode),
			Recommendations: safety.Recommendations(&res.Score, p.ReadinessHistory, p.Streak),
			Alerts:          safety.DetectSignals(safety.HistoryOf(p)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["score"] = resp.Result.Score
	fields["mode"] = string(resp.Result.Mode)
	fields["alerts"] = len(resp.Alerts)
	return resp, nil
}

func validateComponents(c domain.ReadinessComponents) error {
	ratings := []struct {
		name  string
		value float64
	}{
		{"sleep", c.Sleep},
		{"energy", c.Energy},
		{"calm", c.Calm},
		{"pain_absence", c.PainAbsence},
	}
	for _, r := range ratings {
		if r.value < 1 || r.value > 10 {
			return fmt.Errorf("%w: %s rating %.1f outside 1-10", ErrInvalidInput, r.name, r.value)
		}
	}
	return nil
}
