package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/season-quest/internal/dialogue"
	"github.com/vovakirdan/season-quest/internal/stats"
	"github.com/vovakirdan/season-quest/internal/world"
)

// Villager lines. Result lines come first so a cached week changes what a
// resident says.
var (
	genericLines = []string{
		"I heard you left points\non your bench this week...",
		"The standings are\nheating up!",
		"Have you checked your\nlineup errors? Yikes.",
		"My cousin could set\na better lineup!",
		"Gotta grab all\nthe wins!",
		"I traded away my\nbest player once.\nNever again.",
		"The waiver wire is\nlike tall grass.\nYou never know what\nyou will find!",
		"Some managers just\nget lucky. Are you\none of them?",
	}
	winLines = []string{
		"Congratulations on\nthe win, coach!",
		"That victory was\nsuper effective!",
		"You won? Your roster\nmust be fully healthy!",
		"A win is a win!\nEven if it was close.",
	}
	lossLines = []string{
		"Tough loss this week.\nBetter luck next time!",
		"Your team got blown\nout! Head to the\ntraining room...",
		"Even the best coaches\nlose sometimes.",
		"That loss was like\na punt on 4th and 1.\nIt had no effect...",
	}
	errorLines = []string{
		"You left HOW many\npoints on the bench?!",
		"Your bench outscored\nyour starters?\nEmbarrassing!",
		"Those lineup errors\nare not great, coach.",
	}
)

// CloseGameMargin is the score gap under which residents call it close.
const CloseGameMargin = 5.0

// dialoguePool builds a resident's possible lines for a week's result.
func dialoguePool(res *stats.WeekResult) []string {
	var pool []string
	if res.HasMatchup() {
		m := res.Matchup
		if m.Won() {
			pool = append(pool, winLines...)
		} else {
			pool = append(pool, lossLines...)
		}
		if margin := m.Margin(); margin < CloseGameMargin {
			pool = append(pool, fmt.Sprintf("That was a close one!\nOnly %.1f points\napart!", margin))
		}
		if len(m.Mine.Errors) > 0 {
			pool = append(pool, errorLines...)
		}
	}
	return append(pool, genericLines...)
}

// NPCLine picks what a resident says. The choice depends only on the
// resident and its week's cached result.
func NPCLine(npc world.NPC, res *stats.WeekResult) string {
	pool := dialoguePool(res)
	return pool[(npc.ID*7)%len(pool)]
}

func (s *State) talk(id int) {
	for _, npc := range s.Map.NPCs {
		if npc.ID != id {
			continue
		}
		res, _ := s.Cache.Get(npc.Week)
		s.showText(NPCLine(npc, res))
		return
	}
}

func signText(loc world.Location) string {
	return fmt.Sprintf("%s\nWeek %d", loc.Name, loc.Week)
}

// runMenu performs a start-menu action. The menu has already closed.
func (s *State) runMenu(action dialogue.MenuAction) {
	switch action {
	case dialogue.MenuRecord:
		s.showText(s.recordText())
	case dialogue.MenuRoster:
		s.showText(s.rosterText())
	case dialogue.MenuStats:
		if week := s.NearWeek(); week != 0 {
			s.openOverlay(week)
			return
		}
		s.showText("Walk to a town and\nenter its GYM to see\nweek data!")
	case dialogue.MenuSave:
		s.showText("Your journey is not\nsaved between visits.\nThe stats will be\nwaiting for you!")
	case dialogue.MenuExit:
	}
}

func (s *State) recordText() string {
	w, l := s.Record()
	name := s.TeamName
	if name == "" {
		name = "COACH"
	}
	total := max(0, s.EndWeek-s.StartWeek+1)
	return fmt.Sprintf("%s\nRecord: %d-%d\nWeeks explored: %d/%d", strings.ToUpper(name), w, l, s.Cache.Len(), total)
}

// RosterSize is how many starters the ROSTER entry lists.
const RosterSize = 4

func (s *State) rosterText() string {
	latest, ok := s.Cache.Latest()
	if !ok {
		if s.Cache.Len() == 0 {
			return "No team data yet.\nExplore a town first!"
		}
		return "No roster data.\nVisit a GYM first!"
	}
	starters := latest.Matchup.Mine.Starters
	if len(starters) == 0 {
		return "No roster data.\nVisit a GYM first!"
	}
	var sb strings.Builder
	sb.WriteString("YOUR SQUAD:\n")
	for _, p := range starters[:min(RosterSize, len(starters))] {
		fmt.Fprintf(&sb, "%s %.1f\n", p.Name, p.Points)
	}
	if len(starters) > RosterSize {
		fmt.Fprintf(&sb, "...and %d more", len(starters)-RosterSize)
	}
	return strings.TrimRight(sb.String(), "\n")
}
