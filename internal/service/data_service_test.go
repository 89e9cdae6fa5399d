package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/config"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/importer"
	"github.com/alexanderramin/apex/internal/progression"
	"github.com/alexanderramin/apex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importSchema() *importer.ImportSchema {
	streak := 3
	return &importer.ImportSchema{
		Athlete:  importer.AthleteImport{Name: "Ana", BodyweightKg: 80},
		Position: &importer.PositionImport{Week: 2, Day: 3},
		Streak:   &streak,
		Ledger:   map[string]float64{"goblet_squat": 30},
		Sessions: []importer.SessionImport{
			{Date: "2026-01-05", Week: 1, Day: 1, XP: 120},
			{Date: "2026-01-06", Week: 1, Day: 2, XP: 110},
		},
	}
}

func TestImport_CreatesProfileAndHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.data.Import(ctx, app.ImportRequest{Schema: importSchema()})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Sessions)

	p := env.profile(t)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, 2, p.Week)
	assert.Equal(t, 3, p.Day)
	assert.Equal(t, 3, p.Streak)
	assert.Equal(t, 30.0, p.Ledger[domain.GobletSquat])
	assert.GreaterOrEqual(t, p.XP, progression.OnboardingXP+230)

	logs, err := env.sessions.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2026-01-06", logs[0].Date)

	ev := env.observer.last()
	assert.Equal(t, "import", ev.Name)
	assert.True(t, ev.Success())
	assert.Equal(t, 2, ev.Fields["sessions"])
}

func TestImport_RejectsInvalidSchema(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.data.Import(context.Background(), app.ImportRequest{Schema: &importer.ImportSchema{}})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "athlete.name is required")

	_, err = env.data.Import(context.Background(), app.ImportRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.profiles.Profile(context.Background())
	assert.ErrorIs(t, err, ErrNotOnboarded)
}

func TestImport_AfterOnboarding(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testutil.NewTestProfile())

	_, err := env.data.Import(context.Background(), app.ImportRequest{Schema: importSchema()})
	assert.ErrorIs(t, err, ErrAlreadyOnboarded)
}

func TestImport_RollsBackOnHistoryFailure(t *testing.T) {
	env := newTestEnv(t)

	deps := env.deps
	deps.Store.UoW = &testutil.FailingExecUoW{
		DB:    env.db,
		Match: "INSERT INTO session_logs",
		Err:   errors.New("injected history write failure"),
	}
	failing := NewDataService(deps)

	_, err := failing.Import(context.Background(), app.ImportRequest{Schema: importSchema()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected history write failure")

	_, err = env.profiles.Profile(context.Background())
	assert.ErrorIs(t, err, ErrNotOnboarded, "the profile is not saved when history fails")
}

func TestExport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.data.Export(ctx)
	assert.ErrorIs(t, err, ErrNotOnboarded)

	_, err = env.data.Import(ctx, app.ImportRequest{Schema: importSchema()})
	require.NoError(t, err)

	doc, err := env.data.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.StorageVersion, doc.Version)
	assert.Equal(t, "Ana", doc.Profile.Name)
	require.Len(t, doc.Sessions, 2)
	assert.Equal(t, "2026-01-05", doc.Sessions[0].Date, "oldest first")
	assert.False(t, doc.ExportedAt.IsZero())
}

func TestExport_EmptyHistory(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testutil.NewTestProfile())

	doc, err := env.data.Export(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc.Sessions)
	assert.Empty(t, doc.Sessions)
}
