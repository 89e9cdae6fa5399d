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

func TestLogTest_RecordsIntoLedger(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testutil.NewTestProfile())

	resp, err := env.rewards.LogTest(context.Background(), app.LogTestRequest{
		Exercise: domain.Test5RMDumbbellBench, Value: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DumbbellBench, resp.Outcome.Key)
	assert.True(t, resp.Outcome.Improved)
	assert.Equal(t, 30.0, env.profile(t).Ledger[domain.DumbbellBench])
}

func TestLogTest_Validation(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testutil.NewTestProfile())
	ctx := context.Background()

	_, err := env.rewards.LogTest(ctx, app.LogTestRequest{Exercise: "no_such_test", Value: 10})
	assert.ErrorIs(t, err, ErrUnknownExercise)

	_, err = env.rewards.LogTest(ctx, app.LogTestRequest{Exercise: domain.TestPlankMax, Value: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompleteChallenges_IncrementalWithBonusOnce(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testutil.NewTestProfile())
	ctx := context.Background()

	first, err := env.rewards.CompleteChallenges(ctx, app.ChallengeRequest{Week: 1, IDs: []string{"perfectionist"}})
	require.NoError(t, err)
	assert.Equal(t, 400, first.XP)
	assert.False(t, first.Complete)

	second, err := env.rewards.CompleteChallenges(ctx, app.ChallengeRequest{Week: 1, IDs: []string{"perfectionist", "explorer"}})
	require.NoError(t, err)
	assert.Equal(t, 200, second.XP, "already completed challenges earn nothing")
	assert.Equal(t, []string{"explorer"}, second.Newly)

	last, err := env.rewards.CompleteChallenges(ctx, app.ChallengeRequest{Week: 1, IDs: []string{"scribe"}})
	require.NoError(t, err)
	assert.Equal(t, 300+200, last.XP, "week bonus granted with the last challenge")
	assert.True(t, last.Complete)

	again, err := env.rewards.CompleteChallenges(ctx, app.ChallengeRequest{Week: 1, IDs: []string{"scribe"}})
	require.NoError(t, err)
	assert.Zero(t, again.XP)
	assert.True(t, again.Complete)

	p := env.profile(t)
	assert.ElementsMatch(t, []string{"w1/perfectionist", "w1/explorer", "w1/scribe"}, p.CompletedChallenges)
}

func TestCompleteChallenges_Unknown(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testutil.NewTestProfile())
	ctx := context.Background()

	_, err := env.rewards.CompleteChallenges(ctx, app.ChallengeRequest{Week: 1, IDs: []string{"nope"}})
	assert.ErrorIs(t, err, ErrUnknownChallenge)
	_, err = env.rewards.CompleteChallenges(ctx, app.ChallengeRequest{Week: 99})
	assert.ErrorIs(t, err, ErrUnknownChallenge)
}

func TestCompleteQuest(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testutil.NewTestProfile())
	ctx := context.Background()

	partial, err := env.rewards.CompleteQuest(ctx, app.QuestRequest{Month: 1, Objectives: []string{"sessions_16"}})
	require.NoError(t, err)
	assert.Zero(t, partial.XP)
	assert.False(t, partial.Complete)
	assert.Empty(t, env.profile(t).CompletedQuests)

	all := []string{"sessions_16", "progression_10", "traction_progress", "journal_90"}
	done, err := env.rewards.CompleteQuest(ctx, app.QuestRequest{Month: 1, Objectives: all})
	require.NoError(t, err)
	assert.Equal(t, 1500, done.XP)
	assert.True(t, done.Complete)
	assert.Equal(t, []string{"Founder"}, done.Newly)
	assert.Equal(t, []int{1}, env.profile(t).CompletedQuests)

	repeat, err := env.rewards.CompleteQuest(ctx, app.QuestRequest{Month: 1, Objectives: all})
	require.NoError(t, err)
	assert.Zero(t, repeat.XP)
	assert.Equal(t, done.Profile.XP, env.profile(t).XP)
}

func TestCompleteQuest_Unknown(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testutil.NewTestProfile())
	ctx := context.Background()

	_, err := env.rewards.CompleteQuest(ctx, app.QuestRequest{Month: 4})
	assert.ErrorIs(t, err, ErrUnknownQuest)
	_, err = env.rewards.CompleteQuest(ctx, app.QuestRequest{Month: 1, Objectives: []string{"nope"}})
	assert.ErrorIs(t, err, ErrUnknownQuest)
}
