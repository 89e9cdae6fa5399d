package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatus_NotOnboarded(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.status.GetStatus(context.Background())
	assert.ErrorIs(t, err, ErrNotOnboarded)
}

func TestGetStatus_Dashboard(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testutil.NewTestProfile(testutil.WithXP(1200), testutil.WithWeek(1, 1)))
	ctx := context.Background()

	_, err := env.profiles.RecordReadiness(ctx, readinessReq(9, 8, 8, 9))
	require.NoError(t, err)
	_, err = env.sessions.Start(ctx, app.StartSessionRequest{})
	require.NoError(t, err)

	st, err := env.status.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1200, st.Profile.XP)
	assert.Equal(t, st.Profile.Level, st.Progress.Current.Level)
	require.NotNil(t, st.Today)
	assert.InDelta(t, 8.5, st.Today.Score, 1e-9)
	assert.Equal(t, domain.ModePerformance, st.Mode)
	require.NotNil(t, st.Active)
	assert.Equal(t, domain.ModePerformance, st.Active.Mode)
	require.NotNil(t, st.Next)
	assert.Equal(t, "AWAKENING OF THE EARTH", st.Next.Name)
	assert.Zero(t, st.SessionCount)
	assert.Empty(t, st.Alerts)
}

func TestGetStatus_NoReadinessToday(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testutil.NewTestProfile(testutil.WithWeek(3, 6)))

	st, err := env.status.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Nil(t, st.Today)
	assert.Nil(t, st.Active)
	assert.Equal(t, domain.ModeUnevaluated, st.Mode)
	require.NotNil(t, st.Next)
	assert.Equal(t, domain.SessionRest, st.Next.Type)
}
