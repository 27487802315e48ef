package overworld

import (
	"github.com/vovakirdan/season-quest/internal/core"
	"github.com/vovakirdan/season-quest/internal/world"
)

// DefaultMoveSpeed is the progress added per tick while stepping.
const DefaultMoveSpeed = 0.12

// Move is a step in flight towards an adjacent cell.
type Move struct {
	TargetX, TargetY int
	Progress         float64
}

// Avatar is the player on the map. GridX/GridY are authoritative and only
// change when a move completes; PixelX/PixelY are for drawing.
type Avatar struct {
	GridX, GridY   int
	PixelX, PixelY float64
	Facing         world.Direction
	Move           *Move
	Steps          int
}

// NewAvatar places an avatar on (x, y) facing down.
func NewAvatar(x, y int) Avatar {
	return Avatar{
		GridX:  x,
		GridY:  y,
		PixelX: float64(x * world.TileSize),
		PixelY: float64(y * world.TileSize),
		Facing: world.DirDown,
	}
}

// Moving reports whether a step is in flight.
func (a *Avatar) Moving() bool {
	return a.Move != nil
}

// Ahead returns the cell the avatar is facing.
func (a *Avatar) Ahead() (int, int) {
	dx, dy := a.Facing.Delta()
	return a.GridX + dx, a.GridY + dy
}

// HeldDirection picks one direction from the frame, preferring
// up, then down, then left, then right.
func HeldDirection(in core.InputFrame) (world.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return world.DirUp, true
	case in.Has(core.ActionDown):
		return world.DirDown, true
	case in.Has(core.ActionLeft):
		return world.DirLeft, true
	case in.Has(core.ActionRight):
		return world.DirRight, true
	}
	return world.DirDown, false
}

// Movement advances the avatar one tick at a time.
type Movement struct {
	Speed float64
}

// NewMovement returns an engine with the given speed, or the default when
// speed is not positive.
func NewMovement(speed float64) Movement {
	if speed <= 0 {
		speed = DefaultMoveSpeed
	}
	return Movement{Speed: speed}
}

// Step runs one tick. A step in flight advances and, once complete, snaps
// the avatar and emits EventStepCompleted. Otherwise the held direction
// starts a new step when the cell ahead is passable, or just turns the
// avatar when it is not.
func (e Movement) Step(a *Avatar, m *world.Map, in core.InputFrame, bus *Bus) {
	if a.Move != nil {
		mv := a.Move
		mv.Progress += e.Speed
		if mv.Progress >= 1 {
			a.GridX, a.GridY = mv.TargetX, mv.TargetY
			a.PixelX = float64(a.GridX * world.TileSize)
			a.PixelY = float64(a.GridY * world.TileSize)
			a.Move = nil
			a.Steps++
			bus.Emit(Event{Kind: EventStepCompleted, X: a.GridX, Y: a.GridY})
			return
		}
		fromX, fromY := float64(a.GridX*world.TileSize), float64(a.GridY*world.TileSize)
		toX, toY := float64(mv.TargetX*world.TileSize), float64(mv.TargetY*world.TileSize)
		a.PixelX = core.Lerp(fromX, toX, mv.Progress)
		a.PixelY = core.Lerp(fromY, toY, mv.Progress)
		return
	}

	dir, ok := HeldDirection(in)
	if !ok {
		return
	}
	a.Facing = dir
	tx, ty := a.Ahead()
	if m.Passable(tx, ty) {
		a.Move = &Move{TargetX: tx, TargetY: ty}
	}
}
