// Package stats models one fantasy team's weekly results and the providers
// that fetch them.
package stats

import (
	"sort"
	"strings"
)

// PlayerScore is a starter's fantasy points for the week.
type PlayerScore struct {
	Name     string  `json:"name" yaml:"name"`
	Position string  `json:"position,omitempty" yaml:"position,omitempty"`
	Points   float64 `json:"points" yaml:"points"`
}

// LineupError is a bench player who should have started.
type LineupError struct {
	BenchPlayer   string  `json:"bench_player" yaml:"bench_player"`
	ShouldReplace string  `json:"should_replace" yaml:"should_replace"`
	PointsLost    float64 `json:"points_lost" yaml:"points_lost"`
}

// Side is one team's half of a matchup.
type Side struct {
	TeamID       int           `json:"team_id" yaml:"team_id"`
	TeamName     string        `json:"team_name" yaml:"team_name"`
	Score        float64       `json:"score" yaml:"score"`
	OptimalScore float64       `json:"optimal_score" yaml:"optimal_score"`
	Won          bool          `json:"won" yaml:"won"`
	Starters     []PlayerScore `json:"starters" yaml:"starters"`
	Errors       []LineupError `json:"errors" yaml:"errors"`
}

// PointsLost sums the side's lineup errors.
func (s Side) PointsLost() float64 {
	total := 0.0
	for _, e := range s.Errors {
		total += e.PointsLost
	}
	return total
}

// Matchup is the selected team's game, from its point of view.
type Matchup struct {
	Mine     Side
	Opponent Side
}

// Won reports whether the selected team outscored its opponent.
func (m *Matchup) Won() bool {
	return m.Mine.Score > m.Opponent.Score
}

// Margin is the absolute score difference.
func (m *Matchup) Margin() float64 {
	d := m.Mine.Score - m.Opponent.Score
	if d < 0 {
		return -d
	}
	return d
}

// Game is one league matchup as listed in the weekly overview.
type Game struct {
	Home Side `json:"home" yaml:"home"`
	Away Side `json:"away" yaml:"away"`
}

// Standing is a team's place in the league table through a week.
type Standing struct {
	Rank      int     `json:"rank" yaml:"rank"`
	TeamID    int     `json:"team_id" yaml:"team_id"`
	TeamName  string  `json:"team_name" yaml:"team_name"`
	Record    string  `json:"record" yaml:"record"`
	PointsFor float64 `json:"points_for" yaml:"points_for"`
}

// WeekResult is everything known about one week. A nil Matchup means the
// selected team had no game that week. Results are never mutated once cached.
type WeekResult struct {
	Week        int
	Matchup     *Matchup
	AllMatchups []Game
	Standings   []Standing
}

// HasMatchup reports whether there is a battle to show.
func (r *WeekResult) HasMatchup() bool {
	return r != nil && r.Matchup != nil
}

// BuildWeek derives the selected team's view of a week from the league's
// full list of games. Won flags are recomputed from the scores.
func BuildWeek(week, teamID int, games []Game, standings []Standing) *WeekResult {
	res := &WeekResult{
		Week:        week,
		AllMatchups: make([]Game, 0, len(games)),
		Standings:   standings,
	}
	for _, g := range games {
		g.Home.Won = g.Home.Score > g.Away.Score
		g.Away.Won = g.Away.Score > g.Home.Score
		res.AllMatchups = append(res.AllMatchups, g)

		switch teamID {
		case g.Home.TeamID:
			res.Matchup = &Matchup{Mine: g.Home, Opponent: g.Away}
		case g.Away.TeamID:
			res.Matchup = &Matchup{Mine: g.Away, Opponent: g.Home}
		}
	}
	return res
}

// Team is a league member.
type Team struct {
	ID   int    `json:"team_id" yaml:"team_id"`
	Name string `json:"team_name" yaml:"team_name"`
}

// FindTeam returns the first team whose name contains name, ignoring case.
func FindTeam(teams []Team, name string) (Team, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Team{}, false
	}
	for _, t := range teams {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			return t, true
		}
	}
	return Team{}, false
}

// Record counts wins and losses over the weeks that have a matchup.
func Record(results map[int]*WeekResult) (wins, losses int) {
	for _, r := range results {
		if !r.HasMatchup() {
			continue
		}
		if r.Matchup.Won() {
			wins++
		} else {
			losses++
		}
	}
	return wins, losses
}

// SortedWeeks returns the keys of results in ascending order.
func SortedWeeks(results map[int]*WeekResult) []int {
	weeks := make([]int, 0, len(results))
	for w := range results {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	return weeks
}
