package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/progression"
	"github.com/alexanderramin/apex/internal/readiness"
	"github.com/alexanderramin/apex/internal/safety"
)

type StatusService struct {
	deps Deps
}

func NewStatusService(deps Deps) *StatusService {
	return &StatusService{deps: deps}
}

var _ app.StatusUseCase = (*StatusService)(nil)

// GetStatus assembles the dashboard: level progress, today's readiness,
// advisories, the active session and the next program slot.
func (s *StatusService) GetStatus(ctx context.Context) (*app.StatusResponse, error) {
	r := s.deps.Store.read()
	p, err := loadProfile(ctx, r)
	if err != nil {
		return nil, err
	}
	cat := s.deps.Catalog
	now := s.deps.now()

	resp := &app.StatusResponse{
		Profile:  p,
		Progress: progression.LevelProgress(cat, p.XP),
		Features: progression.UnlockedFeatures(cat, p.Level),
		Alerts:   safety.DetectSignals(safety.HistoryOf(p)),
	}

	score := todayScore(p, now)
	if sample, ok := todayReadiness(p, now); ok {
		resp.Today = &sample
	}
	resp.Mode = readiness.ModeFor(score)
	resp.Recommendations = safety.Recommendations(score, p.ReadinessHistory, p.Streak)

	active, err := loadActive(ctx, r)
	switch {
	case err == nil:
		resp.Active = active
	case !errors.Is(err, ErrNoActiveSession):
		return nil, err
	}

	if tpl, ok := cat.Template(p.Week, p.Day); ok {
		resp.Next = &tpl
	} else if tpl, ok := catalog.RestDayTemplate(p.Week, p.Day); ok {
		resp.Next = &tpl
	}

	if resp.SessionCount, err = r.logs.Count(ctx); err != nil {
		return nil, err
	}
	return resp, nil
}
