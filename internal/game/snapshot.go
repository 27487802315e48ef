package game

import (
	"github.com/vovakirdan/season-quest/internal/battle"
	"github.com/vovakirdan/season-quest/internal/world"
)

// Taglines cycle on the loading screen.
var Taglines = []string{
	"Wild stats appeared!",
	"Scouting the waiver wire...",
	"Running the projections...",
	"Visiting the film room...",
	"Walking through tall grass...",
	"Loading the playbook...",
	"Resting in the training room...",
	"Challenging the gym leader...",
	"Surfing the stats...",
	"Grinding through two-a-days...",
	"Checking the injury report...",
	"Counting the bench points...",
	"A wild analysis appeared!",
	"Flying to your league...",
	"Opening the trophy case...",
}

// TaglineSeconds is how long each tagline stays up.
const TaglineSeconds = 2.5

// Tagline returns the line to show at the current frame.
func (s *State) Tagline() string {
	per := max(1, s.runtime.Seconds(TaglineSeconds))
	return Taglines[(s.Frame/per)%len(Taglines)]
}

// Snapshot is a read-only view of the state for renderers and tests.
type Snapshot struct {
	Mode        Mode
	Frame       int
	InputLocked bool

	PlayerX, PlayerY int
	Facing           world.Direction
	Moving           bool
	Steps            int
	CameraX, CameraY float64
	NPCs             []world.NPC

	Wins, Losses int
	TeamName     string
	NearWeek     int

	Banner      string
	DialogText  string
	DialogShown string
	MenuOpen    bool
	MenuIndex   int
	MenuItems   []string

	Transition Transition
	Loading    bool
	Tagline    string

	BattlePhase battle.Phase
	PlayerHP    float64
	EnemyHP     float64
	MaxHP       float64
	BattleText  string

	// BattleChoice indexes battle.Choices once the battle is done.
	BattleChoice int

	OverlayWeek   int
	OverlayScroll int
	Prefetching   bool
	CachedWeeks   int
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	w, l := s.Record()
	snap := Snapshot{
		Mode:        s.Mode,
		Frame:       s.Frame,
		InputLocked: s.inputLocked,
		PlayerX:     s.Avatar.GridX,
		PlayerY:     s.Avatar.GridY,
		Facing:      s.Avatar.Facing,
		Moving:      s.Avatar.Moving(),
		Steps:       s.Avatar.Steps,
		CameraX:     s.Camera.X,
		CameraY:     s.Camera.Y,
		Wins:        w,
		Losses:      l,
		TeamName:    s.TeamName,
		NearWeek:    s.NearWeek(),
		NPCs:        append([]world.NPC(nil), s.Map.NPCs...),
		MenuOpen:    s.Menu.Open,
		MenuIndex:   s.Menu.Index,
		Transition:  s.Trans,
		Loading:     s.Loading(),
		OverlayWeek: s.Overlay.Week,
		Prefetching: s.Prefetching(),
		CachedWeeks: s.Cache.Len(),
	}
	snap.OverlayScroll = s.Overlay.Scroll
	for _, it := range s.Menu.Items {
		snap.MenuItems = append(snap.MenuItems, it.Label)
	}
	if s.Banner.Ticks > 0 {
		snap.Banner = s.Banner.Text
	}
	if s.Box.Visible {
		snap.DialogText = s.Box.Text()
		snap.DialogShown = s.Box.Shown()
	}
	if snap.Loading {
		snap.Tagline = s.Tagline()
	}
	if b := s.Battle; b != nil {
		snap.BattlePhase = b.Phase
		snap.PlayerHP = b.PlayerHP
		snap.EnemyHP = b.EnemyHP
		snap.MaxHP = b.MaxHP
		snap.BattleText = b.Text()
		snap.BattleChoice = b.Choice
	}
	return snap
}
