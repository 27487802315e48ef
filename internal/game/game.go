// Package game holds the single explicit session state and advances it one
// tick at a time. It never blocks: week fetches are queued as requests for
// the platform layer, whose results come back through Deliver.
package game

import (
	"github.com/vovakirdan/season-quest/internal/battle"
	"github.com/vovakirdan/season-quest/internal/core"
	"github.com/vovakirdan/season-quest/internal/dialogue"
	"github.com/vovakirdan/season-quest/internal/overworld"
	"github.com/vovakirdan/season-quest/internal/stats"
	"github.com/vovakirdan/season-quest/internal/world"
)

// Mode is the subsystem that currently owns input.
type Mode uint8

const (
	ModeOverworld Mode = iota
	ModeBattle
	ModeMenu
	ModeTextbox
	ModeOverlay
)

func (m Mode) String() string {
	switch m {
	case ModeOverworld:
		return "overworld"
	case ModeBattle:
		return "battle"
	case ModeMenu:
		return "menu"
	case ModeTextbox:
		return "textbox"
	case ModeOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// BannerTicks is how long a town name stays on screen.
const BannerTicks = 120

// DefaultLoadTimeout is the foreground load limit in seconds.
const DefaultLoadTimeout = 20.0

// Options configures a session.
type Options struct {
	Map       *world.Map
	TeamID    int
	TeamName  string
	StartWeek int
	EndWeek   int
	Runtime   core.RuntimeConfig
	MoveSpeed float64
	// LoadTimeout is in seconds; zero uses DefaultLoadTimeout.
	LoadTimeout float64
	Prefetch    bool
}

// Banner is the town name shown on entry.
type Banner struct {
	Text  string
	Ticks int
}

// State is the whole game. All fields are owned by the update goroutine.
type State struct {
	Mode    Mode
	Map     *world.Map
	Avatar  overworld.Avatar
	Camera  overworld.Camera
	Box     dialogue.Box
	Menu    *dialogue.Menu
	Battle  *battle.Battle
	Overlay Overlay
	Cache   *stats.Cache
	Banner  Banner
	Trans   Transition
	Frame   int

	TeamID    int
	TeamName  string
	StartWeek int
	EndWeek   int

	runtime     core.RuntimeConfig
	movement    overworld.Movement
	resolver    *overworld.Resolver
	bus         overworld.Bus
	prev        core.InputFrame
	inputLocked bool
	loadTimeout int

	fetch fetchQueue
	quit  bool
}

// New places the avatar on the first town's anchor and queues its week.
func New(opts Options) *State {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt = core.DefaultConfig()
	}
	timeout := opts.LoadTimeout
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	s := &State{
		Mode:        ModeOverworld,
		Map:         opts.Map,
		Menu:        dialogue.NewMenu(),
		Cache:       stats.NewCache(),
		TeamID:      opts.TeamID,
		TeamName:    opts.TeamName,
		StartWeek:   opts.StartWeek,
		EndWeek:     opts.EndWeek,
		runtime:     rt,
		movement:    overworld.NewMovement(opts.MoveSpeed),
		resolver:    overworld.NewResolver(),
		prev:        core.NewInputFrame(),
		loadTimeout: rt.Seconds(timeout),
		fetch:       fetchQueue{prefetch: opts.Prefetch},
	}

	start, ok := opts.Map.Location(opts.StartWeek)
	if !ok && len(opts.Map.Locations) > 0 {
		start = opts.Map.Locations[0]
	}
	s.Avatar = overworld.NewAvatar(start.X, start.Y)
	s.resolver.LastEntered = start.Week
	s.snapCamera()

	// The first week loads in the foreground; its arrival starts prefetch.
	s.requestWeek(start.Week)
	return s
}

// Resize adapts the viewport to a new screen size.
func (s *State) Resize(w, h int) {
	s.runtime.ScreenW, s.runtime.ScreenH = w, h
	s.snapCamera()
}

// Quit reports whether the player asked to leave.
func (s *State) Quit() bool {
	return s.quit
}

// InputLocked reports whether a screen transition holds the lock.
func (s *State) InputLocked() bool {
	return s.inputLocked
}

// Tick runs one simulation step in fixed order: input dispatch, movement,
// interaction, then transitions, battle, typewriter and banner, and
// finally the camera.
func (s *State) Tick(in core.InputFrame) {
	s.Frame++
	s.bus.Reset()

	s.dispatch(in)

	if s.Mode == ModeOverworld && !s.inputLocked {
		s.movement.Step(&s.Avatar, s.Map, in, &s.bus)
		s.resolver.OnStep(s.Map, &s.bus)
	}
	s.handleEvents()

	s.tickTransition()
	if s.Mode == ModeBattle && s.Battle != nil {
		s.Battle.Tick()
	}
	s.Box.Tick()
	if s.Banner.Ticks > 0 {
		s.Banner.Ticks--
	}

	s.followCamera()
	s.prev = in.Clone()
}

// pressed is edge-triggered: held keys repeat for movement only.
func (s *State) pressed(in core.InputFrame, a core.Action) bool {
	return in.Has(a) && !s.prev.Has(a)
}

func (s *State) dispatch(in core.InputFrame) {
	if s.pressed(in, core.ActionQuit) {
		s.quit = true
		return
	}
	if s.inputLocked {
		// Cancel is the only input a transition accepts.
		if s.pressed(in, core.ActionCancel) {
			s.abortTransition("")
		}
		return
	}

	switch s.Mode {
	case ModeOverworld:
		switch {
		case s.pressed(in, core.ActionConfirm):
			s.resolver.Interact(&s.Avatar, s.Map, &s.bus)
		case s.pressed(in, core.ActionMenu):
			// A step in flight pauses until the menu closes.
			s.Menu.Show()
			s.Mode = ModeMenu
		}

	case ModeMenu:
		switch {
		case s.pressed(in, core.ActionUp):
			s.Menu.Up()
		case s.pressed(in, core.ActionDown):
			s.Menu.Down()
		case s.pressed(in, core.ActionConfirm):
			if item, ok := s.Menu.Confirm(); ok {
				s.Mode = ModeOverworld
				s.runMenu(item.Action)
			}
		case s.pressed(in, core.ActionCancel), s.pressed(in, core.ActionMenu):
			s.Menu.Close()
			s.Mode = ModeOverworld
		}

	case ModeTextbox:
		if s.pressed(in, core.ActionConfirm) || s.pressed(in, core.ActionCancel) {
			if s.Box.Dismiss() && !s.Box.Visible && s.Mode == ModeTextbox {
				s.Mode = ModeOverworld
			}
		}

	case ModeBattle:
		s.dispatchBattle(in)

	case ModeOverlay:
		switch {
		case s.pressed(in, core.ActionLeft), s.pressed(in, core.ActionPrev):
			s.browseOverlay(-1)
		case s.pressed(in, core.ActionRight), s.pressed(in, core.ActionNext):
			s.browseOverlay(1)
		case s.pressed(in, core.ActionUp):
			s.Overlay.Scroll = core.Clamp(s.Overlay.Scroll-1, 0, s.overlayScrollMax())
		case s.pressed(in, core.ActionDown):
			s.Overlay.Scroll = core.Clamp(s.Overlay.Scroll+1, 0, s.overlayScrollMax())
		case s.pressed(in, core.ActionCancel), s.pressed(in, core.ActionConfirm), s.pressed(in, core.ActionMenu):
			s.closeOverlay()
		}
	}
}

func (s *State) dispatchBattle(in core.InputFrame) {
	b := s.Battle
	if b == nil {
		return
	}
	switch {
	case s.pressed(in, core.ActionCancel):
		b.Abort()
		s.beginTransition(PurposeLeaveBattle, b.Week)
	case s.pressed(in, core.ActionConfirm):
		switch b.Confirm() {
		case battle.OutcomeViewStats:
			s.beginTransition(PurposeBattleToOverlay, b.Week)
		case battle.OutcomeLeave:
			s.beginTransition(PurposeLeaveBattle, b.Week)
		}
	case s.pressed(in, core.ActionUp), s.pressed(in, core.ActionLeft):
		b.Select(-1)
	case s.pressed(in, core.ActionDown), s.pressed(in, core.ActionRight):
		b.Select(1)
	}
}

// handleEvents reacts to what movement and the resolver emitted this tick.
func (s *State) handleEvents() {
	for _, e := range s.bus.Events() {
		switch e.Kind {
		case overworld.EventLocationEntered:
			if loc, ok := s.Map.Location(e.Week); ok {
				s.Banner = Banner{Text: loc.Name, Ticks: BannerTicks}
			}
		case overworld.EventDoor:
			s.startBattle(e.Week)
		case overworld.EventTalk:
			s.talk(e.NPC)
		case overworld.EventSign:
			if loc, ok := s.Map.Location(e.Week); ok {
				s.showText(signText(loc))
			}
		case overworld.EventOverlay:
			s.openOverlay(e.Week)
		}
	}
}

// showText opens the dialogue box and hands it input.
func (s *State) showText(text string) {
	s.Box.Open(text, nil)
	s.Mode = ModeTextbox
}

// NearWeek is the week of the town the avatar stands near, or 0.
func (s *State) NearWeek() int {
	return s.resolver.Near(&s.Avatar, s.Map)
}

// Record is the season record over the cached weeks.
func (s *State) Record() (wins, losses int) {
	return stats.Record(s.Cache.Results())
}

// viewport is the world area in pixels: two columns per tile, one row per
// tile, below the HUD line.
func (s *State) viewport() (float64, float64) {
	cols := max(1, s.runtime.ScreenW/cellCols)
	rows := max(1, s.runtime.ScreenH-hudRows)
	return float64(cols * world.TileSize), float64(rows * world.TileSize)
}

func (s *State) snapCamera() {
	w, h := s.viewport()
	s.Camera.Snap(&s.Avatar, w, h, s.Map.PixelWidth(), s.Map.PixelHeight())
}

func (s *State) followCamera() {
	w, h := s.viewport()
	s.Camera.Follow(&s.Avatar, w, h, s.Map.PixelWidth(), s.Map.PixelHeight())
}
