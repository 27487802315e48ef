package game

import (
	"fmt"

	"github.com/vovakirdan/season-quest/internal/battle"
)

// FadeStep is the cover alpha change per tick.
const FadeStep = 0.06

// TransitionPhase is where a screen transition stands.
type TransitionPhase uint8

const (
	TransIdle TransitionPhase = iota
	// TransCovering raises the cover over the current screen.
	TransCovering
	// TransHidden holds the cover while the next screen is prepared.
	TransHidden
	// TransUncovering lowers the cover over the new screen.
	TransUncovering
)

// Purpose says what a transition swaps in while the screen is hidden.
type Purpose uint8

const (
	PurposeEnterBattle Purpose = iota
	PurposeLeaveBattle
	PurposeBattleToOverlay
)

// Transition is the fade used around battles. It owns the input lock:
// beginTransition takes it and only finishTransition or abortTransition
// release it.
type Transition struct {
	Phase   TransitionPhase
	Purpose Purpose
	Alpha   float64
	Week    int
	// Waited counts ticks spent hidden waiting for data.
	Waited int
}

// Active reports whether a transition is running.
func (t Transition) Active() bool {
	return t.Phase != TransIdle
}

// Loading reports whether the screen is hidden waiting for a week.
func (s *State) Loading() bool {
	return s.Trans.Phase == TransHidden && s.Trans.Purpose == PurposeEnterBattle
}

func (s *State) lock()   { s.inputLocked = true }
func (s *State) unlock() { s.inputLocked = false }

// beginTransition starts covering the screen. It refuses while another
// transition holds the lock.
func (s *State) beginTransition(p Purpose, week int) bool {
	if s.inputLocked {
		return false
	}
	s.lock()
	s.Trans = Transition{Phase: TransCovering, Purpose: p, Week: week}
	return true
}

// startBattle opens the door to a week. Weeks known to have no game are a
// no-op; unknown weeks are fetched while the cover rises.
func (s *State) startBattle(week int) {
	if res, ok := s.Cache.Get(week); ok && !res.HasMatchup() {
		return
	}
	if !s.beginTransition(PurposeEnterBattle, week) {
		return
	}
	s.requestWeek(week)
}

func (s *State) tickTransition() {
	t := &s.Trans
	switch t.Phase {
	case TransCovering:
		t.Alpha += FadeStep
		if t.Alpha >= 1 {
			t.Alpha = 1
			t.Phase = TransHidden
			s.whileHidden()
		}
	case TransHidden:
		s.whileHidden()
	case TransUncovering:
		t.Alpha -= FadeStep
		if t.Alpha <= 0 {
			s.finishTransition()
		}
	}
}

// whileHidden swaps screens behind the cover.
func (s *State) whileHidden() {
	t := &s.Trans
	switch t.Purpose {
	case PurposeEnterBattle:
		res, ok := s.Cache.Get(t.Week)
		if !ok {
			if !s.Cache.InFlight(t.Week) {
				// A failed fetch already aborted; anything else re-requests.
				s.requestWeek(t.Week)
			}
			t.Waited++
			if t.Waited > s.loadTimeout {
				s.abortTransition(fmt.Sprintf("Week %d is taking too long.\nTry again in a bit!", t.Week))
			}
			return
		}
		b, err := battle.New(t.Week, res.Matchup)
		if err != nil {
			// No game that week: back to the overworld quietly.
			t.Phase = TransUncovering
			return
		}
		s.Battle = b
		s.Mode = ModeBattle
		t.Phase = TransUncovering

	case PurposeLeaveBattle, PurposeBattleToOverlay:
		s.Battle = nil
		s.Mode = ModeOverworld
		t.Phase = TransUncovering
	}
}

func (s *State) finishTransition() {
	done := s.Trans
	s.Trans = Transition{}
	s.unlock()
	if done.Purpose == PurposeBattleToOverlay {
		s.openOverlay(done.Week)
	}
}

// abortTransition drops whatever the transition was doing, returns to the
// overworld and releases the lock. A non-empty msg is shown as dialogue.
func (s *State) abortTransition(msg string) {
	s.Trans = Transition{}
	s.Battle = nil
	s.Mode = ModeOverworld
	s.unlock()
	if msg != "" {
		s.showText(msg)
	}
}
