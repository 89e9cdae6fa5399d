package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/apex/internal/cli/formatter"
	"github.com/alexanderramin/apex/internal/timer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const maxRestBarWidth = 48

type restKeyMap struct {
	Restart key.Binding
	Skip    key.Binding
	Quit    key.Binding
}

func defaultRestKeys() restKeyMap {
	return restKeyMap{
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Skip:    key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "skip")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k restKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Skip, k.Quit}
}

func (k restKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// restTickMsg carries one countdown tick. gen identifies the countdown so
// ticks from a restarted one are dropped.
type restTickMsg struct {
	gen  int
	tick timer.Tick
}

// restModel is the full-screen rest countdown between sets.
type restModel struct {
	ctx   context.Context
	timer *timer.RestTimer
	label string
	total int

	gen       int
	ticks     <-chan timer.Tick
	remaining int
	done      bool
	skipped   bool
	quit      bool

	bar  progress.Model
	help help.Model
	keys restKeyMap
}

func newRestModel(ctx context.Context, rt *timer.RestTimer, label string, seconds int) *restModel {
	return &restModel{
		ctx:       ctx,
		timer:     rt,
		label:     label,
		total:     seconds,
		remaining: seconds,
		bar: progress.New(
			progress.WithSolidFill(string(formatter.ColorHeader)),
			progress.WithWidth(maxRestBarWidth),
			progress.WithoutPercentage(),
		),
		help: help.New(),
		keys: defaultRestKeys(),
	}
}

func (m *restModel) Init() tea.Cmd {
	return m.start()
}

func (m *restModel) start() tea.Cmd {
	m.gen++
	m.remaining = m.total
	m.done, m.skipped = false, false
	m.ticks = m.timer.Start(m.ctx, m.total)
	return waitForRestTick(m.gen, m.ticks)
}

func waitForRestTick(gen int, ticks <-chan timer.Tick) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-ticks
		if !ok {
			return nil
		}
		return restTickMsg{gen: gen, tick: t}
	}
}

func (m *restModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restTickMsg:
		if msg.gen != m.gen || m.done {
			return m, nil
		}
		m.remaining = msg.tick.Remaining
		if msg.tick.Done {
			m.done = true
			return m, tea.Quit
		}
		return m, waitForRestTick(m.gen, m.ticks)

	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-4, 10), maxRestBarWidth)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.timer.Stop()
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Skip):
			m.timer.Stop()
			m.done, m.skipped = true, true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			return m, m.start()
		}
	}
	return m, nil
}

func (m *restModel) elapsed() float64 {
	if m.total <= 0 {
		return 1
	}
	return float64(m.total-m.remaining) / float64(m.total)
}

func (m *restModel) View() string {
	var b strings.Builder

	title := "Rest"
	if m.label != "" {
		title = fmt.Sprintf("Rest · %s", m.label)
	}
	b.WriteString(formatter.Header(title))
	b.WriteString("\n\n")

	switch {
	case m.skipped:
		b.WriteString(formatter.Dim("Rest skipped."))
	case m.done:
		b.WriteString(formatter.StyleGreen.Render("Rest complete. Next set!"))
	case m.quit:
		b.WriteString(formatter.Dim("Timer stopped."))
	default:
		b.WriteString(formatter.StyleHeader.Render(formatter.FormatRest(m.remaining)))
	}
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.elapsed()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
