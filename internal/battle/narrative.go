package battle

import (
	"fmt"
	"strings"
)

// moveTier maps a points threshold to a move name. Checked top to bottom.
type moveTier struct {
	min  float64
	name string
}

var moveTiers = []moveTier{
	{30, "HYPER BEAM"},
	{25, "THUNDERBOLT"},
	{20, "FLAMETHROWER"},
	{15, "SURF"},
	{10, "TACKLE"},
	{5, "SCRATCH"},
}

// MoveName returns the move a performance of pts is narrated as.
func MoveName(pts float64) string {
	for _, t := range moveTiers {
		if pts >= t.min {
			return t.name
		}
	}
	return "SPLASH"
}

// Effectiveness returns the line appended after the move, or "".
func Effectiveness(pts float64) string {
	switch {
	case pts >= 25:
		return "It's super effective!"
	case pts >= 15:
		return "It's effective!"
	case pts < 5:
		return "It's not very effective..."
	}
	return ""
}

func attackText(side Side, name string, pts float64) string {
	var b strings.Builder
	if side == SidePlayer {
		fmt.Fprintf(&b, "%s used\n%s!", name, MoveName(pts))
	} else {
		fmt.Fprintf(&b, "Enemy %s\nused %s!", name, MoveName(pts))
	}
	if eff := Effectiveness(pts); eff != "" {
		b.WriteString("\n" + eff)
	}
	fmt.Fprintf(&b, "\n%.1f damage!", pts)
	return b.String()
}

// shortName upper-cases a team name and keeps its first 12 runes.
func shortName(name string) string {
	r := []rune(name)
	if len(r) > 12 {
		r = r[:12]
	}
	return strings.ToUpper(string(r))
}

func introText(enemy string) string {
	return "Wild " + shortName(enemy) + "\nappeared!"
}

func resultText(won bool, enemy string, mine, theirs float64) string {
	if won {
		return fmt.Sprintf("You defeated\n%s!\n%.1f to %.1f", shortName(enemy), mine, theirs)
	}
	return fmt.Sprintf("%s\ndefeated you!\n%.1f to %.1f", shortName(enemy), theirs, mine)
}
