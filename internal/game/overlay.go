package game

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/vovakirdan/season-quest/internal/stats"
)

// Overlay is the weekly stats sheet.
type Overlay struct {
	Week   int
	Err    string
	Scroll int
}

func (s *State) openOverlay(week int) {
	s.Overlay = Overlay{Week: week}
	s.Mode = ModeOverlay
	s.requestWeek(week)
}

func (s *State) closeOverlay() {
	s.Overlay = Overlay{}
	s.Mode = ModeOverworld
}

// browseOverlay moves to the previous or next week inside the season.
func (s *State) browseOverlay(delta int) {
	next := s.Overlay.Week + delta
	if next < s.StartWeek || next > s.EndWeek {
		return
	}
	s.openOverlay(next)
}

// overlayScrollMax matches the sheet area drawn by renderOverlay.
func (s *State) overlayScrollMax() int {
	width := s.runtime.ScreenW - 6
	visible := s.runtime.ScreenH - hudRows - 5
	return max(0, len(s.OverlayLines(width))-visible)
}

// OverlayTitle is the sheet heading.
func (s *State) OverlayTitle() string {
	name := fmt.Sprintf("Week %d", s.Overlay.Week)
	if loc, ok := s.Map.Location(s.Overlay.Week); ok {
		name = loc.Name
	}
	return fmt.Sprintf("Week %d - %s", s.Overlay.Week, name)
}

// OverlayLines renders the sheet body wrapped to width.
func (s *State) OverlayLines(width int) []string {
	var body string
	res, ok := s.Cache.Get(s.Overlay.Week)
	switch {
	case ok:
		body = weekSheet(res, s.TeamID)
	case s.Overlay.Err != "":
		body = "Failed: " + s.Overlay.Err
	default:
		body = "Loading week data..."
	}
	if width > 0 {
		body = wordwrap.String(body, width)
	}
	return strings.Split(body, "\n")
}

func pts(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// weekSheet lays out one week: the selected team's game and lineup errors,
// the standings and every other game.
func weekSheet(res *stats.WeekResult, teamID int) string {
	var sb strings.Builder
	if res.HasMatchup() {
		my, opp := res.Matchup.Mine, res.Matchup.Opponent
		verdict := "DEFEAT"
		if res.Matchup.Won() {
			verdict = "VICTORY"
		}
		fmt.Fprintf(&sb, "%s - %s to %s\n\n", verdict, pts(my.Score), pts(opp.Score))
		fmt.Fprintf(&sb, "%s  %s  (Optimal: %s)\n", my.TeamName, pts(my.Score), pts(my.OptimalScore))
		sb.WriteString("  VS\n")
		fmt.Fprintf(&sb, "%s  %s  (Optimal: %s)\n", opp.TeamName, pts(opp.Score), pts(opp.OptimalScore))

		if len(my.Errors) > 0 {
			fmt.Fprintf(&sb, "\nLineup Errors (-%s pts)\n", pts(my.PointsLost()))
			for _, e := range my.Errors {
				fmt.Fprintf(&sb, "  Bench %s for %s  -%s\n", e.BenchPlayer, e.ShouldReplace, pts(e.PointsLost))
			}
		}
	} else {
		sb.WriteString("No game this week.\n")
	}

	if len(res.Standings) > 0 {
		sb.WriteString("\nStandings\n")
		for _, st := range res.Standings {
			marker := " "
			if st.TeamID == teamID {
				marker = ">"
			}
			fmt.Fprintf(&sb, "%s%2d %-20s %6s %7s\n", marker, st.Rank, st.TeamName, st.Record, pts(st.PointsFor))
		}
	}

	if len(res.AllMatchups) > 0 {
		sb.WriteString("\nAll Matchups\n")
		for _, g := range res.AllMatchups {
			fmt.Fprintf(&sb, "  %s %s vs %s %s\n", g.Home.TeamName, pts(g.Home.Score), pts(g.Away.Score), g.Away.TeamName)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
