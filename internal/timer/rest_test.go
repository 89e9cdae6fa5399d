package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, ticks <-chan Tick) []Tick {
	t.Helper()
	var out []Tick
	timeout := time.After(5 * time.Second)
	for {
		select {
		case tick, ok := <-ticks:
			if !ok {
				return out
			}
			out = append(out, tick)
		case <-timeout:
			t.Fatal("countdown did not finish")
			return out
		}
	}
}

func TestRestTimer_CountsDownToZero(t *testing.T) {
	rt := New(time.Millisecond)
	ticks := drain(t, rt.Start(context.Background(), 3))

	require.Len(t, ticks, 4)
	for i, tick := range ticks {
		assert.Equal(t, 3-i, tick.Remaining)
	}
	assert.True(t, ticks[3].Done)
	assert.False(t, ticks[2].Done)
	assert.Eventually(t, func() bool { return !rt.Running() }, time.Second, time.Millisecond)
}

func TestRestTimer_ZeroSecondsFinishesImmediately(t *testing.T) {
	rt := New(time.Hour)
	ticks := drain(t, rt.Start(context.Background(), 0))
	require.Len(t, ticks, 1)
	assert.True(t, ticks[0].Done)
}

func TestRestTimer_NewStartCancelsPrevious(t *testing.T) {
	rt := New(time.Hour)
	first := rt.Start(context.Background(), 90)
	<-first // initial tick

	second := rt.Start(context.Background(), 60)
	rest := drain(t, first)
	assert.Empty(t, rest, "first countdown is closed without further ticks")

	tick := <-second
	assert.Equal(t, 60, tick.Remaining)
	assert.True(t, rt.Running())

	rt.Stop()
	drain(t, second)
	assert.False(t, rt.Running())
}

func TestRestTimer_ContextCancel(t *testing.T) {
	rt := New(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	ticks := rt.Start(ctx, 30)
	<-ticks

	cancel()
	assert.Empty(t, drain(t, ticks))
	assert.Eventually(t, func() bool { return !rt.Running() }, time.Second, time.Millisecond)
}

func TestNew_DefaultInterval(t *testing.T) {
	assert.Equal(t, DefaultInterval, New(0).interval)
}
