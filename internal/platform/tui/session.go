package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/season-quest/internal/config"
	"github.com/vovakirdan/season-quest/internal/core"
	"github.com/vovakirdan/season-quest/internal/game"
	"github.com/vovakirdan/season-quest/internal/stats"
	"github.com/vovakirdan/season-quest/internal/world"
)

type sessionPhase uint8

const (
	phaseLoading sessionPhase = iota
	phasePicking
	phasePlaying
	phaseFailed
)

// teamResolvedMsg reports the outcome of a configured team lookup.
type teamResolvedMsg struct {
	Team stats.Team
	Err  error
}

// SessionModel manages the full session flow: resolve or pick a team,
// then play. It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	provider stats.Provider
	logger   *log.Logger
	spinner  spinner.Model
	tagline  int

	phase  sessionPhase
	picker PickerModel
	game   *Model
	err    error
}

// NewSessionModel creates a session for the configured league.
func NewSessionModel(cfg config.Config, provider stats.Provider, rt core.RuntimeConfig, logger *log.Logger) SessionModel {
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Game.TickRate
	}
	return SessionModel{
		cfg:      cfg,
		runtime:  rt,
		provider: provider,
		logger:   logger,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m SessionModel) fetcher(teamID int) *Fetcher {
	return &Fetcher{
		Provider: m.provider,
		LeagueID: m.cfg.League.ID,
		Year:     m.cfg.League.Year,
		TeamID:   teamID,
		Timeout:  m.cfg.Provider.Timeout,
		Logger:   m.logger,
	}
}

// Init resolves the configured team, or lists teams for the picker.
func (m SessionModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, taglineCmd(), m.resolveCmd())
}

func (m SessionModel) resolveCmd() tea.Cmd {
	league := m.cfg.League
	if league.TeamID == 0 && league.Team == "" {
		return m.fetcher(0).FetchTeams()
	}
	provider, timeout := m.provider, m.fetcher(0).timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		team, err := stats.ResolveTeam(ctx, provider, league.ID, league.Year, league.TeamID, league.Team)
		return teamResolvedMsg{Team: team, Err: err}
	}
}

// Update routes messages to the active phase.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.phase {
	case phasePlaying:
		next, cmd := m.game.Update(msg)
		if gm, ok := next.(Model); ok {
			m.game = &gm
		}
		return m, cmd
	case phasePicking:
		return m.updatePicker(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.phase == phaseFailed || msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case taglineMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		m.tagline++
		return m, taglineCmd()

	case TeamsMsg:
		if msg.Err != nil {
			return m.fail(fmt.Errorf("list teams: %w", msg.Err))
		}
		m.picker = NewPickerModel(msg.Teams, m.runtime)
		m.phase = phasePicking
		return m, m.picker.Init()

	case teamResolvedMsg:
		if msg.Err != nil {
			return m.fail(msg.Err)
		}
		return m.startGame(msg.Team)
	}
	return m, nil
}

func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	if pm, ok := next.(PickerModel); ok {
		m.picker = pm
	}
	if m.picker.IsQuitting() {
		return m, tea.Quit
	}
	if t := m.picker.Selected(); t != nil {
		return m.startGame(*t)
	}
	return m, cmd
}

func (m SessionModel) fail(err error) (tea.Model, tea.Cmd) {
	if m.logger != nil {
		m.logger.Error("session setup failed", "error", err)
	}
	m.phase = phaseFailed
	m.err = err
	return m, nil
}

// startGame builds a fresh world for the session and hands over to the
// game model.
func (m SessionModel) startGame(team stats.Team) (tea.Model, tea.Cmd) {
	locs, links, err := m.cfg.World()
	if err != nil {
		return m.fail(err)
	}
	worldMap := world.Generate(locs, links)

	league := m.cfg.League
	state := game.New(game.Options{
		Map:         worldMap,
		TeamID:      team.ID,
		TeamName:    team.Name,
		StartWeek:   league.StartWeek,
		EndWeek:     league.EndWeek,
		Runtime:     m.runtime,
		MoveSpeed:   m.cfg.Game.MoveSpeed,
		LoadTimeout: m.cfg.Game.LoadTimeout,
		Prefetch:    m.cfg.Game.Prefetch,
	})
	if m.logger != nil {
		m.logger.Info("season started", "team", team.Name, "team_id", team.ID,
			"league", league.ID, "year", league.Year, "towns", len(locs))
	}

	gm := NewModel(state, m.fetcher(team.ID), m.runtime)
	m.game = &gm
	m.phase = phasePlaying
	return m, gm.Init()
}

// View renders the active phase.
func (m SessionModel) View() string {
	switch m.phase {
	case phasePlaying:
		return m.game.View()
	case phasePicking:
		return m.picker.View()
	case phaseFailed:
		return m.failedView()
	}
	return m.loadingView()
}

func (m SessionModel) loadingView() string {
	var b strings.Builder
	top := max(0, m.runtime.ScreenH/2-2)
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(centerText(titleStyle.Render("S E A S O N   Q U E S T"), m.runtime.ScreenW))
	b.WriteString("\n\n")
	line := m.spinner.View() + " " + game.Taglines[m.tagline%len(game.Taglines)]
	b.WriteString(centerText(subtitleStyle.Render(line), m.runtime.ScreenW))
	b.WriteString("\n")
	return b.String()
}

func (m SessionModel) failedView() string {
	var b strings.Builder
	top := max(0, m.runtime.ScreenH/2-2)
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(centerText(errorStyle.Render("Couldn't start the season"), m.runtime.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.err.Error(), m.runtime.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtitleStyle.Render("Press any key to exit"), m.runtime.ScreenW))
	b.WriteString("\n")
	return b.String()
}

// Run starts a local session on the current terminal.
func Run(cfg config.Config, provider stats.Provider, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewSessionModel(cfg, provider, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
