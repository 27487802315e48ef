package battle

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/season-quest/internal/stats"
)

func sampleMatchup() *stats.Matchup {
	return &stats.Matchup{
		Mine: stats.Side{
			TeamName: "Gridiron Gurus",
			Score:    110,
			Starters: []stats.PlayerScore{
				{Name: "Allen", Points: 31.2},
				{Name: "Hurts", Points: 0},
				{Name: "Kelce", Points: 12.4},
				{Name: "Adams", Points: 3},
			},
		},
		Opponent: stats.Side{
			TeamName: "The Bench Mob Dynasty",
			Score:    95,
			Starters: []stats.PlayerScore{
				{Name: "Mahomes", Points: 22.5},
				{Name: "Hill", Points: 26},
			},
		},
	}
}

// runToPhase ticks without input until the phase is reached.
func runToPhase(t *testing.T, b *Battle, p Phase) int {
	t.Helper()
	for i := 0; i < 20000; i++ {
		if b.Phase == p {
			return i
		}
		b.Tick()
	}
	t.Fatalf("never reached phase %v, stuck in %v", p, b.Phase)
	return 0
}

func TestNewBattle(t *testing.T) {
	b, err := New(5, sampleMatchup())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.MaxHP != 110 || b.PlayerHP != 110 || b.EnemyHP != 110 {
		t.Errorf("hp = %v/%v max %v", b.PlayerHP, b.EnemyHP, b.MaxHP)
	}
	if !b.Won {
		t.Error("110 beats 95")
	}

	// Zero-point starters are dropped and the rosters interleave.
	want := []string{"Allen", "Mahomes", "Kelce", "Hill", "Adams"}
	var got []string
	for _, a := range b.Attacks {
		got = append(got, a.Player)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("attack order = %v, want %v", got, want)
	}
	if b.FullText() != "Wild THE BENCH MO\nappeared!" {
		t.Errorf("intro = %q", b.FullText())
	}
}

func TestHPFloor(t *testing.T) {
	b, err := New(1, &stats.Matchup{Mine: stats.Side{Score: 40}, Opponent: stats.Side{Score: 55}})
	if err != nil {
		t.Fatal(err)
	}
	if b.MaxHP != HPFloor {
		t.Errorf("MaxHP = %v, want floor %v", b.MaxHP, HPFloor)
	}
	if len(b.Attacks) != 0 {
		t.Errorf("no starters means no attacks, got %d", len(b.Attacks))
	}
	runToPhase(t, b, PhaseResult)
	if b.Won {
		t.Error("40 loses to 55")
	}
}

func TestAttackersCapped(t *testing.T) {
	m := sampleMatchup()
	m.Mine.Starters = nil
	for i := 0; i < 9; i++ {
		m.Mine.Starters = append(m.Mine.Starters, stats.PlayerScore{Name: "P", Points: 1})
	}
	b, _ := New(2, m)
	mine := 0
	for _, a := range b.Attacks {
		if a.Side == SidePlayer {
			mine++
		}
	}
	if mine != MaxAttackers {
		t.Errorf("player attacks = %d, want %d", mine, MaxAttackers)
	}
}

func TestNoMatchup(t *testing.T) {
	if _, err := New(3, nil); !errors.Is(err, ErrNoMatchup) {
		t.Errorf("err = %v", err)
	}
}

func TestNarrativeTiers(t *testing.T) {
	tests := []struct {
		pts  float64
		move string
		eff  string
	}{
		{35, "HYPER BEAM", "It's super effective!"},
		{30, "HYPER BEAM", "It's super effective!"},
		{27, "THUNDERBOLT", "It's super effective!"},
		{22, "FLAMETHROWER", "It's effective!"},
		{15, "SURF", "It's effective!"},
		{12, "TACKLE", ""},
		{5, "SCRATCH", ""},
		{4.9, "SPLASH", "It's not very effective..."},
	}
	for _, tt := range tests {
		if got := MoveName(tt.pts); got != tt.move {
			t.Errorf("MoveName(%v) = %q, want %q", tt.pts, got, tt.move)
		}
		if got := Effectiveness(tt.pts); got != tt.eff {
			t.Errorf("Effectiveness(%v) = %q, want %q", tt.pts, got, tt.eff)
		}
	}

	if got := attackText(SidePlayer, "Allen", 31.2); got != "Allen used\nHYPER BEAM!\nIt's super effective!\n31.2 damage!" {
		t.Errorf("player text = %q", got)
	}
	if got := attackText(SideEnemy, "Kelce", 12); got != "Enemy Kelce\nused TACKLE!\n12.0 damage!" {
		t.Errorf("enemy text = %q", got)
	}
}

func TestBattleRunsToResult(t *testing.T) {
	b, _ := New(5, sampleMatchup())

	runToPhase(t, b, PhaseFighting)
	if b.Cursor != 1 || math.Abs(b.EnemyHP-(110-31.2*DamageFactor)) > 1e-9 {
		t.Errorf("first attack: cursor=%d enemy hp=%v", b.Cursor, b.EnemyHP)
	}

	runToPhase(t, b, PhaseResult)
	if b.PlayerHP != 110 || b.EnemyHP != 95 {
		t.Errorf("result hp = %v/%v, want 110/95", b.PlayerHP, b.EnemyHP)
	}
	if b.FullText() != "You defeated\nTHE BENCH MO!\n110.0 to 95.0" {
		t.Errorf("result text = %q", b.FullText())
	}

	runToPhase(t, b, PhaseDone)
	if b.FullText() != DonePromptText {
		t.Errorf("done text = %q", b.FullText())
	}
}

func TestLossText(t *testing.T) {
	m := sampleMatchup()
	m.Mine.Score, m.Opponent.Score = 90.5, 101
	b, _ := New(5, m)
	runToPhase(t, b, PhaseResult)
	if b.Won {
		t.Fatal("should be a loss")
	}
	if b.FullText() != "THE BENCH MO\ndefeated you!\n101.0 to 90.5" {
		t.Errorf("loss text = %q", b.FullText())
	}
}

func TestHPNeverNegative(t *testing.T) {
	m := &stats.Matchup{
		Mine:     stats.Side{Score: 10, Starters: []stats.PlayerScore{{Name: "A", Points: 500}}},
		Opponent: stats.Side{Score: 5},
	}
	b, _ := New(1, m)
	runToPhase(t, b, PhaseFighting)
	if b.EnemyHP != 0 {
		t.Errorf("enemy hp = %v, want floor at 0", b.EnemyHP)
	}
}

type trace struct {
	texts  []string
	phases []Phase
	hp     [2]float64
}

func play(b *Battle) trace {
	var tr trace
	last := ""
	for i := 0; i < 20000 && b.Phase != PhaseDone; i++ {
		b.Tick()
		if b.FullText() != last {
			last = b.FullText()
			tr.texts = append(tr.texts, last)
			tr.phases = append(tr.phases, b.Phase)
		}
	}
	tr.hp = [2]float64{b.PlayerHP, b.EnemyHP}
	return tr
}

func TestDeterminism(t *testing.T) {
	a, _ := New(5, sampleMatchup())
	b, _ := New(5, sampleMatchup())
	ta, tb := play(a), play(b)
	if !reflect.DeepEqual(ta, tb) {
		t.Fatalf("runs differ:\n%+v\n%+v", ta, tb)
	}
	// Intro, five attacks, result, done prompt.
	if len(ta.texts) != 8 {
		t.Errorf("got %d distinct lines, want 8: %q", len(ta.texts), ta.texts)
	}
}

func TestConfirmPacing(t *testing.T) {
	b, _ := New(5, sampleMatchup())
	b.Tick()

	// First confirm fast-forwards and leaves a short pause.
	if out := b.Confirm(); out != OutcomeNone {
		t.Fatalf("outcome = %v", out)
	}
	if !b.TextComplete() || b.Pause() != SkippedPause {
		t.Fatalf("complete=%v pause=%d", b.TextComplete(), b.Pause())
	}

	// Second confirm skips the pause; the next tick advances.
	b.Confirm()
	if b.Pause() != 0 {
		t.Fatalf("pause = %d", b.Pause())
	}
	b.Tick()
	if b.Phase != PhaseFighting {
		t.Errorf("phase = %v, want fighting", b.Phase)
	}
}

func TestDoneChoices(t *testing.T) {
	b, _ := New(5, sampleMatchup())

	b.Select(1)
	if b.Choice != 0 {
		t.Error("selection only moves in the done phase")
	}

	runToPhase(t, b, PhaseDone)
	b.Confirm() // finish the prompt
	if out := b.Confirm(); out != OutcomeViewStats {
		t.Errorf("default choice = %v, want view stats", out)
	}
	b.Select(5)
	if b.Choice != 1 {
		t.Errorf("choice = %d, want clamp to 1", b.Choice)
	}
	if out := b.Confirm(); out != OutcomeLeave {
		t.Errorf("outcome = %v, want leave", out)
	}
	b.Select(-3)
	if b.Choice != 0 {
		t.Errorf("choice = %d, want clamp to 0", b.Choice)
	}
}

func TestAbortAnyPhase(t *testing.T) {
	for _, p := range []Phase{PhaseIntro, PhaseFighting, PhaseResult, PhaseDone} {
		b, _ := New(5, sampleMatchup())
		runToPhase(t, b, p)
		if b.Abort() != OutcomeLeave {
			t.Errorf("abort in %v should leave", p)
		}
	}
}
