package overworld

import "github.com/vovakirdan/season-quest/internal/world"

// Interaction distances, in tiles.
const (
	DefaultNearDistance = 3
	DefaultSignRadius   = 4
)

// Resolver decides what the avatar's position or facing triggers.
type Resolver struct {
	NearDistance int
	SignRadius   int

	// LastEntered is the week of the last town announced by a banner.
	LastEntered int
}

// NewResolver returns a resolver with the default distances.
func NewResolver() *Resolver {
	return &Resolver{NearDistance: DefaultNearDistance, SignRadius: DefaultSignRadius}
}

// OnStep reacts to every EventStepCompleted on the bus. Entering a town
// anchor or door of a town not yet announced raises a banner; standing on a
// door emits EventDoor.
func (r *Resolver) OnStep(m *world.Map, bus *Bus) {
	for _, e := range bus.Events() {
		if e.Kind != EventStepCompleted {
			continue
		}
		if loc, ok := m.LocationAt(e.X, e.Y); ok && loc.Week != r.LastEntered {
			r.LastEntered = loc.Week
			bus.Emit(Event{Kind: EventLocationEntered, X: e.X, Y: e.Y, Week: loc.Week})
		}
		if loc, ok := m.DoorAt(e.X, e.Y); ok {
			bus.Emit(Event{Kind: EventDoor, X: e.X, Y: e.Y, Week: loc.Week})
		}
	}
}

// Interact resolves an explicit interact press against the tile ahead.
// NPCs win over signs, signs over doors; with nothing ahead, being near a
// town opens its overlay. An NPC turns to face the avatar.
func (r *Resolver) Interact(a *Avatar, m *world.Map, bus *Bus) bool {
	if a.Moving() {
		return false
	}
	x, y := a.Ahead()

	if npc := m.NPCAt(x, y); npc != nil {
		npc.Facing = a.Facing.Opposite()
		bus.Emit(Event{Kind: EventTalk, X: x, Y: y, Week: npc.Week, NPC: npc.ID})
		return true
	}

	switch m.At(x, y) {
	case world.TileSign:
		loc, ok := m.SignLocation(x, y, r.SignRadius)
		if !ok {
			return false
		}
		bus.Emit(Event{Kind: EventSign, X: x, Y: y, Week: loc.Week})
		return true
	case world.TileDoor:
		loc, ok := m.DoorAt(x, y)
		if !ok {
			return false
		}
		bus.Emit(Event{Kind: EventDoor, X: x, Y: y, Week: loc.Week})
		return true
	}

	if loc, ok := m.NearLocation(a.GridX, a.GridY, r.NearDistance); ok {
		bus.Emit(Event{Kind: EventOverlay, X: a.GridX, Y: a.GridY, Week: loc.Week})
		return true
	}
	return false
}

// Near returns the week of the town the avatar is near, or 0.
func (r *Resolver) Near(a *Avatar, m *world.Map) int {
	if loc, ok := m.NearLocation(a.GridX, a.GridY, r.NearDistance); ok {
		return loc.Week
	}
	return 0
}
