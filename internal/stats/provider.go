package stats

import (
	"context"
	"errors"
	"fmt"
)

// Provider errors.
var (
	ErrNotFound     = errors.New("stats: not found")
	ErrTeamNotFound = errors.New("stats: team not found")
)

// Key identifies one week of one team's season.
type Key struct {
	LeagueID string
	Year     int
	Week     int
	TeamID   int
}

func (k Key) String() string {
	return fmt.Sprintf("league=%s year=%d week=%d team=%d", k.LeagueID, k.Year, k.Week, k.TeamID)
}

// Provider fetches weekly results. A result with a nil Matchup means the team
// had no game; an error means the lookup failed. Implementations must be
// safe to call from multiple goroutines.
type Provider interface {
	FetchWeek(ctx context.Context, key Key) (*WeekResult, error)
	Teams(ctx context.Context, leagueID string, year int) ([]Team, error)
}

// ResolveTeam picks a team by id, or by case-insensitive name match when id
// is zero.
func ResolveTeam(ctx context.Context, p Provider, leagueID string, year, id int, name string) (Team, error) {
	teams, err := p.Teams(ctx, leagueID, year)
	if err != nil {
		return Team{}, fmt.Errorf("stats: list teams: %w", err)
	}
	if len(teams) == 0 {
		return Team{}, fmt.Errorf("%w: league %s has no teams", ErrTeamNotFound, leagueID)
	}
	if id != 0 {
		for _, t := range teams {
			if t.ID == id {
				return t, nil
			}
		}
		return Team{}, fmt.Errorf("%w: id %d", ErrTeamNotFound, id)
	}
	if t, ok := FindTeam(teams, name); ok {
		return t, nil
	}
	return Team{}, fmt.Errorf("%w: %q", ErrTeamNotFound, name)
}
