package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/config"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/repository"
	"github.com/alexanderramin/apex/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db       *sql.DB
	deps     Deps
	observer *recordingObserver
	profiles *ProfileService
	sessions *SessionService
	rewards  *RewardService
	status   *StatusService
	data     *DataService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	deps := Deps{
		Catalog:         catalog.MustLoad(),
		Store:           NewStore(database, config.StorageVersion),
		ReadinessWindow: 30,
	}
	return newTestEnvWith(database, deps)
}

func newTestEnvWith(database *sql.DB, deps Deps) *testEnv {
	obs := &recordingObserver{}
	return &testEnv{
		db:       database,
		deps:     deps,
		observer: obs,
		profiles: NewProfileService(deps, obs),
		sessions: NewSessionService(deps, obs),
		rewards:  NewRewardService(deps, obs),
		status:   NewStatusService(deps),
		data:     NewDataService(deps, obs),
	}
}

// seed stores p as the current profile.
func (e *testEnv) seed(t *testing.T, p *domain.UserProfile) {
	t.Helper()
	env := repository.NewEnvelopeStore(e.db, config.StorageVersion)
	require.NoError(t, repository.NewEnvelopeProfileRepo(env).Save(context.Background(), p))
}

func (e *testEnv) profile(t *testing.T) *domain.UserProfile {
	t.Helper()
	p, err := e.profiles.Profile(context.Background())
	require.NoError(t, err)
	return p
}

func onboardRequest() app.OnboardRequest {
	return app.OnboardRequest{Name: "Ana", Age: 34, HeightCm: 170, BodyweightKg: 80, GripBaseline: 50}
}

func intp(v int) *int { return &v }

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func readinessReq(sleep, energy, calm, pain float64) app.ReadinessRequest {
	return app.ReadinessRequest{Components: domain.ReadinessComponents{
		Sleep: sleep, Energy: energy, Calm: calm, PainAbsence: pain,
	}}
}
