package overworld

import (
	"github.com/vovakirdan/season-quest/internal/core"
	"github.com/vovakirdan/season-quest/internal/world"
)

// CameraLerp is the fraction of the remaining distance covered per tick.
const CameraLerp = 0.15

// Camera tracks the viewport origin in world pixels.
type Camera struct {
	X, Y             float64 // smoothed origin
	TargetX, TargetY float64
}

// target centres the view on the avatar's middle, kept inside the map.
func (c *Camera) target(a *Avatar, viewW, viewH, mapW, mapH float64) {
	half := float64(world.TileSize) / 2
	c.TargetX = core.ClampF(a.PixelX+half-viewW/2, 0, max(0, mapW-viewW))
	c.TargetY = core.ClampF(a.PixelY+half-viewH/2, 0, max(0, mapH-viewH))
}

// Follow eases the origin towards the avatar.
func (c *Camera) Follow(a *Avatar, viewW, viewH, mapW, mapH float64) {
	c.target(a, viewW, viewH, mapW, mapH)
	c.X += (c.TargetX - c.X) * CameraLerp
	c.Y += (c.TargetY - c.Y) * CameraLerp
}

// Snap jumps straight to the avatar.
func (c *Camera) Snap(a *Avatar, viewW, viewH, mapW, mapH float64) {
	c.target(a, viewW, viewH, mapW, mapH)
	c.X, c.Y = c.TargetX, c.TargetY
}
