// Package battle replays one week's matchup as a turn-based fight. The
// sequence of attacks, texts and final HP is a pure function of the payload;
// only the pacing depends on input.
package battle

import (
	"errors"

	"github.com/vovakirdan/season-quest/internal/core"
	"github.com/vovakirdan/season-quest/internal/dialogue"
	"github.com/vovakirdan/season-quest/internal/stats"
)

// Tuning.
const (
	HPFloor        = 80.0
	MaxAttackers   = 6
	DamageFactor   = 0.5
	PauseTicks     = 60
	SkippedPause   = 10
	ShakeTicks     = 9
	DonePromptText = "What will you do?"
)

// ErrNoMatchup is returned when a week has no game to replay.
var ErrNoMatchup = errors.New("battle: no matchup")

// Phase is the battle's position in intro → fighting → result → done.
type Phase uint8

const (
	PhaseIntro Phase = iota
	PhaseFighting
	PhaseResult
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseFighting:
		return "fighting"
	case PhaseResult:
		return "result"
	default:
		return "done"
	}
}

// Side names who made a play.
type Side uint8

const (
	SidePlayer Side = iota
	SideEnemy
)

// Attack is one narrated performance.
type Attack struct {
	Side   Side
	Player string
	Points float64
	Text   string
}

// Damage is the HP the attack removes from the other side.
func (a Attack) Damage() float64 {
	return a.Points * DamageFactor
}

// Outcome is what the game should do after an input.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeLeave
	OutcomeViewStats
)

// Choices offered in the done phase, in order.
var Choices = []string{"VIEW STATS", "LEAVE"}

// Battle is one running replay.
type Battle struct {
	Week       int
	PlayerName string
	EnemyName  string

	MaxHP       float64
	PlayerHP    float64
	EnemyHP     float64
	PlayerFinal float64
	EnemyFinal  float64
	Won         bool

	Attacks []Attack
	Cursor  int
	Phase   Phase
	Choice  int

	// LastHit is the side that took damage from the latest attack, for shake.
	LastHit Side
	HitTick int

	tw    dialogue.Typewriter
	pause int
}

// New builds the battle for a week's matchup.
func New(week int, m *stats.Matchup) (*Battle, error) {
	if m == nil {
		return nil, ErrNoMatchup
	}
	my, opp := m.Mine, m.Opponent

	maxHP := max(my.Score, opp.Score, HPFloor)
	b := &Battle{
		Week:        week,
		PlayerName:  nameOr(my.TeamName, "YOUR TEAM"),
		EnemyName:   nameOr(opp.TeamName, "OPPONENT"),
		MaxHP:       maxHP,
		PlayerHP:    maxHP,
		EnemyHP:     maxHP,
		PlayerFinal: my.Score,
		EnemyFinal:  opp.Score,
		Won:         my.Score > opp.Score,
		Phase:       PhaseIntro,
	}

	mine := scorers(my.Starters)
	theirs := scorers(opp.Starters)
	for i := 0; i < max(len(mine), len(theirs)); i++ {
		if i < len(mine) {
			p := mine[i]
			b.Attacks = append(b.Attacks, Attack{Side: SidePlayer, Player: p.Name, Points: p.Points, Text: attackText(SidePlayer, p.Name, p.Points)})
		}
		if i < len(theirs) {
			p := theirs[i]
			b.Attacks = append(b.Attacks, Attack{Side: SideEnemy, Player: p.Name, Points: p.Points, Text: attackText(SideEnemy, p.Name, p.Points)})
		}
	}

	b.tw.Start(introText(b.EnemyName))
	return b, nil
}

func nameOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// scorers keeps starters who scored, in roster order, up to MaxAttackers.
func scorers(starters []stats.PlayerScore) []stats.PlayerScore {
	out := make([]stats.PlayerScore, 0, MaxAttackers)
	for _, p := range starters {
		if p.Points <= 0 {
			continue
		}
		out = append(out, p)
		if len(out) == MaxAttackers {
			break
		}
	}
	return out
}

// Tick advances the reveal, then the pause, then the phase.
func (b *Battle) Tick() {
	if b.HitTick > 0 {
		b.HitTick--
	}
	if !b.tw.Complete() {
		b.tw.Tick()
		if b.tw.Complete() {
			b.pause = PauseTicks
		}
		return
	}
	if b.pause > 0 {
		b.pause--
		return
	}
	b.advance()
}

func (b *Battle) advance() {
	switch b.Phase {
	case PhaseIntro:
		b.Phase = PhaseFighting
		b.playNext()
	case PhaseFighting:
		b.playNext()
	case PhaseResult:
		b.Phase = PhaseDone
		b.Choice = 0
		b.tw.Start(DonePromptText)
	}
}

func (b *Battle) playNext() {
	if b.Cursor >= len(b.Attacks) {
		b.showResult()
		return
	}
	a := b.Attacks[b.Cursor]
	b.Cursor++
	b.tw.Start(a.Text)

	if a.Side == SidePlayer {
		b.EnemyHP = max(0, b.EnemyHP-a.Damage())
		b.LastHit = SideEnemy
	} else {
		b.PlayerHP = max(0, b.PlayerHP-a.Damage())
		b.LastHit = SidePlayer
	}
	b.HitTick = ShakeTicks
}

// showResult snaps both bars to the real scores.
func (b *Battle) showResult() {
	b.PlayerHP = b.PlayerFinal
	b.EnemyHP = b.EnemyFinal
	b.Phase = PhaseResult
	b.tw.Start(resultText(b.Won, b.EnemyName, b.PlayerFinal, b.EnemyFinal))
}

// Confirm handles the advance key: it finishes the text, then skips the
// pause, and in the done phase picks the highlighted choice.
func (b *Battle) Confirm() Outcome {
	if !b.tw.Complete() {
		b.tw.FastForward()
		b.pause = SkippedPause
		return OutcomeNone
	}
	if b.Phase == PhaseDone {
		if b.Choice == 0 {
			return OutcomeViewStats
		}
		return OutcomeLeave
	}
	b.pause = 0
	return OutcomeNone
}

// Select moves the done-phase cursor by delta, clamped.
func (b *Battle) Select(delta int) {
	if b.Phase != PhaseDone {
		return
	}
	b.Choice = core.Clamp(b.Choice+delta, 0, len(Choices)-1)
}

// Abort is accepted in every phase.
func (b *Battle) Abort() Outcome {
	return OutcomeLeave
}

// Text returns the revealed part of the current line.
func (b *Battle) Text() string { return b.tw.Shown() }

// FullText returns the whole current line.
func (b *Battle) FullText() string { return b.tw.Full() }

// TextComplete reports whether the current line is fully shown.
func (b *Battle) TextComplete() bool { return b.tw.Complete() }

// Revealed returns how many runes of the current line are showing.
func (b *Battle) Revealed() int { return b.tw.Revealed() }

// Pause returns the remaining pause ticks.
func (b *Battle) Pause() int { return b.pause }
