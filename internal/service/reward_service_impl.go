package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/progression"
)

// RewardService records tests, weekly challenges and monthly quests.
type RewardService struct {
	deps     Deps
	observer UseCaseObserver
}

func NewRewardService(deps Deps, observers ...UseCaseObserver) *RewardService {
	return &RewardService{deps: deps, observer: useCaseObserverOrNoop(observers)}
}

var _ app.RewardUseCase = (*RewardService)(nil)

func (s *RewardService) LogTest(ctx context.Context, req app.LogTestRequest) (resp *app.LogTestResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"exercise": string(req.Exercise), "value": req.Value}
	defer func() { observe(ctx, s.observer, "log-test", startedAt, fields, err) }()

	if _, ok := s.deps.Catalog.Exercise(req.Exercise); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, req.Exercise)
	}
	if req.Value <= 0 {
		return nil, fmt.Errorf("%w: value must be positive", ErrInvalidInput)
	}

	err = s.deps.Store.write(ctx, func(ctx context.Context, r repos) error {
		p, err := loadProfile(ctx, r)
		if err != nil {
			return err
		}
		next, out := progression.LogTest(s.deps.Catalog, p, req.Exercise, req.Value, p.Week)
		if err := r.profiles.Save(ctx, next); err != nil {
			return err
		}
		resp = &app.LogTestResponse{Outcome: out, Profile: next}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["improved"] = resp.Outcome.Improved
	fields["unlocked"] = len(resp.Outcome.Unlocked)
	return resp, nil
}

// CompleteChallenges marks challenges of a week as done. Only newly
// completed challenges earn XP; the week bonus is granted once, when the
// last challenge of the week is completed.
func (s *RewardService) CompleteChallenges(ctx context.Context, req app.ChallengeRequest) (resp *app.RewardResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"week": req.Week}
	defer func() { observe(ctx, s.observer, "complete-challenges", startedAt, fields, err) }()

	wc, ok := s.deps.Catalog.WeeklyChallenge(req.Week)
	if !ok {
		return nil, fmt.Errorf("%w: no challenges for week %d", ErrUnknownChallenge, req.Week)
	}
	for _, id := range req.IDs {
		if !slices.ContainsFunc(wc.Challenges, func(c domain.Challenge) bool { return c.ID == id }) {
			return nil, fmt.Errorf("%w: %q in week %d", ErrUnknownChallenge, id, req.Week)
		}
	}

	cat := s.deps.Catalog
	err = s.deps.Store.write(ctx, func(ctx context.Context, r repos) error {
		p, err := loadProfile(ctx, r)
		if err != nil {
			return err
		}
		before := p.ChallengesDone(req.Week)
		after := slices.Clone(before)
		var newly []string
		for _, id := range req.IDs {
			if !slices.Contains(after, id) {
				after = append(after, id)
				newly = append(newly, id)
			}
		}
		xp := progression.ComputeChallengeXP(cat, req.Week, after) - progression.ComputeChallengeXP(cat, req.Week, before)

		p = p.Clone()
		for _, id := range newly {
			p.CompletedChallenges = append(p.CompletedChallenges, domain.ChallengeKey(req.Week, id))
		}
		p, award := progression.ApplyXP(cat, p, xp)
		if err := r.profiles.Save(ctx, p); err != nil {
			return err
		}
		resp = &app.RewardResponse{
			XP:       xp,
			Newly:    newly,
			Complete: len(after) == len(wc.Challenges),
			Award:    award,
			Profile:  p,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["xp"] = resp.XP
	fields["complete"] = resp.Complete
	return resp, nil
}

// CompleteQuest grants the quest reward once every objective of the month
// is reported complete. A quest is rewarded at most once.
func (s *RewardService) CompleteQuest(ctx context.Context, req app.QuestRequest) (resp *app.RewardResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"month": req.Month}
	defer func() { observe(ctx, s.observer, "complete-quest", startedAt, fields, err) }()

	q, ok := s.deps.Catalog.Quest(req.Month)
	if !ok {
		return nil, fmt.Errorf("%w: no quest for month %d", ErrUnknownQuest, req.Month)
	}
	for _, id := range req.Objectives {
		if !slices.ContainsFunc(q.Objectives, func(o domain.QuestObjective) bool { return o.ID == id }) {
			return nil, fmt.Errorf("%w: objective %q in month %d", ErrUnknownQuest, id, req.Month)
		}
	}

	cat := s.deps.Catalog
	err = s.deps.Store.write(ctx, func(ctx context.Context, r repos) error {
		p, err := loadProfile(ctx, r)
		if err != nil {
			return err
		}
		if slices.Contains(p.CompletedQuests, req.Month) {
			resp = &app.RewardResponse{Complete: true, Profile: p}
			return nil
		}
		xp := progression.ComputeQuestXP(cat, req.Month, req.Objectives)
		if xp == 0 {
			resp = &app.RewardResponse{Profile: p}
			return nil
		}

		p = p.Clone()
		p.CompletedQuests = append(p.CompletedQuests, req.Month)
		p, award := progression.ApplyXP(cat, p, xp)
		if err := r.profiles.Save(ctx, p); err != nil {
			return err
		}
		resp = &app.RewardResponse{XP: xp, Newly: []string{q.Badge}, Complete: true, Award: award, Profile: p}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["xp"] = resp.XP
	return resp, nil
}
