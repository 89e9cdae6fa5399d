package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/apex/internal/teatest"
	"github.com/alexanderramin/apex/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restDriver(t *testing.T, interval time.Duration, seconds int) (*teatest.Driver, *restModel, *timer.RestTimer) {
	t.Helper()
	rt := timer.New(interval)
	t.Cleanup(rt.Stop)
	m := newRestModel(context.Background(), rt, "Goblet Squat", seconds)
	d := teatest.New(t, m, teatest.WithSize(80, 24))
	return d, m, rt
}

func TestRestModel_CountsDownAndQuits(t *testing.T) {
	d, m, rt := restDriver(t, time.Millisecond, 3)

	d.DrainInit()

	assert.True(t, d.Quitting)
	assert.True(t, m.done)
	assert.False(t, m.skipped)
	assert.Equal(t, 0, m.remaining)
	assert.Contains(t, d.View(), "Rest complete.")
	assert.Contains(t, d.View(), "Rest · Goblet Squat")
	assert.Eventually(t, func() bool { return !rt.Running() }, time.Second, time.Millisecond)
}

func TestRestModel_ShowsRemaining(t *testing.T) {
	d, m, _ := restDriver(t, time.Hour, 90)

	d.DrainInit()

	require.False(t, d.Quitting)
	assert.Equal(t, 90, m.remaining)
	assert.Contains(t, d.View(), "1m30s")
	assert.Contains(t, d.View(), "skip")
}

func TestRestModel_Skip(t *testing.T) {
	d, m, rt := restDriver(t, time.Hour, 60)
	d.DrainInit()

	d.PressKey('s')

	assert.True(t, d.Quitting)
	assert.True(t, m.skipped)
	assert.Contains(t, d.View(), "Rest skipped.")
	assert.False(t, rt.Running())
}

func TestRestModel_Quit(t *testing.T) {
	d, m, rt := restDriver(t, time.Hour, 60)
	d.DrainInit()

	d.PressCtrlC()

	assert.True(t, d.Quitting)
	assert.True(t, m.quit)
	assert.False(t, m.done)
	assert.Contains(t, d.View(), "Timer stopped.")
	assert.False(t, rt.Running())
}

func TestRestModel_RestartDropsStaleTicks(t *testing.T) {
	d, m, _ := restDriver(t, time.Hour, 60)
	d.DrainInit()

	staleGen := m.gen
	d.Send(restTickMsg{gen: staleGen, tick: timer.Tick{Remaining: 42}})
	assert.Equal(t, 42, m.remaining)

	d.PressKey('r')
	assert.Equal(t, 60, m.remaining)
	assert.Greater(t, m.gen, staleGen)

	d.Send(restTickMsg{gen: staleGen, tick: timer.Tick{Remaining: 10}})
	assert.Equal(t, 60, m.remaining, "ticks of a replaced countdown are ignored")

	d.Send(restTickMsg{gen: staleGen, tick: timer.Tick{Done: true}})
	assert.False(t, d.Quitting)
}

func TestRestModel_WindowResize(t *testing.T) {
	_, m, _ := restDriver(t, time.Hour, 60)

	m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Equal(t, 26, m.bar.Width)

	m.Update(tea.WindowSizeMsg{Width: 200, Height: 10})
	assert.Equal(t, maxRestBarWidth, m.bar.Width)
}

func TestRestModel_Elapsed(t *testing.T) {
	m := newRestModel(context.Background(), timer.New(time.Hour), "", 0)
	assert.Equal(t, 1.0, m.elapsed())

	m = newRestModel(context.Background(), timer.New(time.Hour), "", 60)
	m.remaining = 15
	assert.InDelta(t, 0.75, m.elapsed(), 1e-9)
}
