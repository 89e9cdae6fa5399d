package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/importer"
	"github.com/alexanderramin/apex/internal/progression"
	"github.com/alexanderramin/apex/internal/repository"
)

// DataService moves the athlete record in and out of the store.
type DataService struct {
	deps     Deps
	observer UseCaseObserver
}

func NewDataService(deps Deps, observers ...UseCaseObserver) *DataService {
	return &DataService{deps: deps, observer: useCaseObserverOrNoop(observers)}
}

var (
	_ app.ImportUseCase = (*DataService)(nil)
	_ app.ExportUseCase = (*DataService)(nil)
)

// Import validates the schema and creates the profile and its history in
// one transaction. It replaces onboarding and fails once a profile exists.
func (s *DataService) Import(ctx context.Context, req app.ImportRequest) (resp *app.ImportResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "import", startedAt, fields, err) }()

	if req.Schema == nil {
		return nil, fmt.Errorf("%w: empty import", ErrInvalidInput)
	}
	cat := s.deps.Catalog
	if errs := importer.ValidateImportSchema(req.Schema, cat); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	imported, err := importer.Convert(req.Schema, cat, s.deps.now())
	if err != nil {
		return nil, err
	}

	err = s.deps.Store.write(ctx, func(ctx context.Context, r repos) error {
		if _, err := r.profiles.Get(ctx); err == nil {
			return ErrAlreadyOnboarded
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("loading profile: %w", err)
		}

		p, award := progression.ApplyXP(cat, imported.Profile, imported.XP)
		if err := r.profiles.Save(ctx, p); err != nil {
			return err
		}
		for _, l := range imported.Logs {
			if err := r.logs.Create(ctx, l); err != nil {
				return fmt.Errorf("importing session %s: %w", l.Date, err)
			}
		}
		resp = &app.ImportResponse{Profile: p, Award: award, Sessions: len(imported.Logs)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["sessions"] = resp.Sessions
	fields["xp"] = resp.Profile.XP
	return resp, nil
}

// Export returns the profile and the full session history, oldest first.
func (s *DataService) Export(ctx context.Context) (*app.ExportDocument, error) {
	r := s.deps.Store.read()
	p, err := loadProfile(ctx, r)
	if err != nil {
		return nil, err
	}
	n, err := r.logs.Count(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := r.logs.ListRecent(ctx, n)
	if err != nil {
		return nil, err
	}
	slices.Reverse(logs)
	if logs == nil {
		logs = []*domain.SessionLog{}
	}

	return &app.ExportDocument{
		Version:    s.deps.Store.Version,
		ExportedAt: s.deps.now().UTC(),
		Profile:    p,
		Sessions:   logs,
	}, nil
}
