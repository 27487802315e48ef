package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/season-quest/internal/stats"
)

// DefaultFetchTimeout bounds a single provider call.
const DefaultFetchTimeout = 30 * time.Second

// WeekLoadedMsg carries a finished week fetch back to the update goroutine.
type WeekLoadedMsg struct {
	Week   int
	Result *stats.WeekResult
	Err    error
	Took   time.Duration
}

// TeamsMsg carries the league's team list.
type TeamsMsg struct {
	Teams []stats.Team
	Err   error
}

// Fetcher turns provider calls into Bubble Tea commands. The commands only
// talk to the provider; all state changes happen when their messages arrive.
type Fetcher struct {
	Provider stats.Provider
	LeagueID string
	Year     int
	TeamID   int
	Timeout  time.Duration
	Logger   *log.Logger
}

func (f *Fetcher) timeout() time.Duration {
	if f.Timeout <= 0 {
		return DefaultFetchTimeout
	}
	return f.Timeout
}

// FetchWeek returns a command that loads one week.
func (f *Fetcher) FetchWeek(week int) tea.Cmd {
	key := stats.Key{LeagueID: f.LeagueID, Year: f.Year, Week: week, TeamID: f.TeamID}
	provider, timeout := f.Provider, f.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		start := time.Now()
		res, err := provider.FetchWeek(ctx, key)
		return WeekLoadedMsg{Week: week, Result: res, Err: err, Took: time.Since(start)}
	}
}

// FetchTeams returns a command that lists the league's teams.
func (f *Fetcher) FetchTeams() tea.Cmd {
	provider, timeout := f.Provider, f.timeout()
	league, year := f.LeagueID, f.Year
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		teams, err := provider.Teams(ctx, league, year)
		return TeamsMsg{Teams: teams, Err: err}
	}
}

func (f *Fetcher) logWeek(msg WeekLoadedMsg) {
	if f.Logger == nil {
		return
	}
	if msg.Err != nil {
		f.Logger.Warn("week fetch failed", "week", msg.Week, "took", msg.Took, "error", msg.Err)
		return
	}
	f.Logger.Debug("week loaded", "week", msg.Week, "took", msg.Took, "matchup", msg.Result.HasMatchup())
}
