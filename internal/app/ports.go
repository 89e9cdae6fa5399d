package app

import (
	"context"

	"github.com/alexanderramin/apex/internal/domain"
)

type OnboardUseCase interface {
	Onboard(ctx context.Context, req OnboardRequest) (*OnboardResponse, error)
}

// ImportUseCase seeds the profile and history from an import file.
type ImportUseCase interface {
	Import(ctx context.Context, req ImportRequest) (*ImportResponse, error)
}

type ExportUseCase interface {
	Export(ctx context.Context) (*ExportDocument, error)
}

type ProfileUseCase interface {
	Profile(ctx context.Context) (*domain.UserProfile, error)
}

type ReadinessUseCase interface {
	RecordReadiness(ctx context.Context, req ReadinessRequest) (*ReadinessResponse, error)
}

// SessionUseCase drives the single active session from start to finish.
type SessionUseCase interface {
	Preview(ctx context.Context, week, day int) (*domain.SessionPrescription, error)
	Start(ctx context.Context, req StartSessionRequest) (*domain.SessionPrescription, error)
	Active(ctx context.Context) (*domain.SessionPrescription, error)
	UpdateSeries(ctx context.Context, req SeriesUpdate) (*domain.SessionPrescription, error)
	Finish(ctx context.Context, req FinishSessionRequest) (*FinishSessionResponse, error)
	Abandon(ctx context.Context) error
	History(ctx context.Context, limit int) ([]*domain.SessionLog, error)
	WeekHistory(ctx context.Context, week int) ([]*domain.SessionLog, error)
	Log(ctx context.Context, id string) (*domain.SessionLog, error)
}

// RewardUseCase covers progress recorded outside of sessions.
type RewardUseCase interface {
	LogTest(ctx context.Context, req LogTestRequest) (*LogTestResponse, error)
	CompleteChallenges(ctx context.Context, req ChallengeRequest) (*RewardResponse, error)
	CompleteQuest(ctx context.Context, req QuestRequest) (*RewardResponse, error)
}

type StatusUseCase interface {
	GetStatus(ctx context.Context) (*StatusResponse, error)
}
