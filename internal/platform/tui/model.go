package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/season-quest/internal/core"
	"github.com/vovakirdan/season-quest/internal/game"
)

// Model is the Bubble Tea model for a running season. It owns the only
// reference to the game state; fetch commands report back via messages.
type Model struct {
	state    *game.State
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	input    *HeldInput
	fetcher  *Fetcher
	spinner  spinner.Model
	spin     int
	quitting bool
}

// NewModel wraps a prepared game state.
func NewModel(state *game.State, fetcher *Fetcher, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	return Model{
		state:   state,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		input:   NewHeldInput(cfg.TickRate),
		fetcher: fetcher,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

// Init starts the tick loop and issues the first week fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), m.spinner.Tick, m.drainRequests())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		m.input.Press(m.keys.Action(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.state.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case WeekLoadedMsg:
		if m.fetcher != nil {
			m.fetcher.logWeek(msg)
		}
		m.state.Deliver(msg.Week, msg.Result, msg.Err)
		return m, m.drainRequests()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.spin++
		return m, cmd
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.state.Tick(m.input.Frame())
	m.input.Advance()

	if m.state.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tea.Batch(tickCmd(m.config.TickRate), m.drainRequests())
}

// drainRequests turns queued week requests into fetch commands.
func (m Model) drainRequests() tea.Cmd {
	weeks := m.state.Requests()
	if len(weeks) == 0 || m.fetcher == nil {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(weeks))
	for _, w := range weeks {
		cmds = append(cmds, m.fetcher.FetchWeek(w))
	}
	return tea.Batch(cmds...)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.state.Render(m.screen)
	if m.state.Loading() || m.state.Prefetching() {
		frames := m.spinner.Spinner.Frames
		m.screen.DrawTextColor(m.screen.Width()-2, 0, frames[m.spin%len(frames)], core.ColorHighlight)
	}
	return RenderScreen(m.screen)
}

// State exposes the game for tests and the session wrapper.
func (m Model) State() *game.State {
	return m.state
}
