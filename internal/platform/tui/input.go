package tui

import (
	"time"

	"github.com/vovakirdan/season-quest/internal/core"
)

// HoldWindow is how long a direction stays held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const HoldWindow = 120 * time.Millisecond

// HeldInput turns key events into per-tick input frames. Directions stay
// set for a short window so walking is continuous while a key auto-repeats;
// every other action lasts exactly one tick.
type HeldInput struct {
	window int
	held   map[core.Action]int
	once   core.InputFrame
}

// NewHeldInput sizes the hold window for the tick rate.
func NewHeldInput(tickRate int) *HeldInput {
	if tickRate <= 0 {
		tickRate = 60
	}
	window := int(HoldWindow.Seconds() * float64(tickRate))
	return &HeldInput{
		window: max(1, window),
		held:   make(map[core.Action]int),
		once:   core.NewInputFrame(),
	}
}

// Press records a key event. A new direction replaces any held one.
func (h *HeldInput) Press(a core.Action) {
	switch {
	case a == core.ActionNone:
	case a.IsDirection():
		for d := range h.held {
			if d != a {
				delete(h.held, d)
			}
		}
		h.held[a] = h.window
	default:
		h.once.Set(a)
	}
}

// Frame returns the actions active for the coming tick.
func (h *HeldInput) Frame() core.InputFrame {
	f := h.once.Clone()
	for a := range h.held {
		f.Set(a)
	}
	return f
}

// Advance ends a tick: one-shot actions clear and holds count down.
func (h *HeldInput) Advance() {
	h.once.Clear()
	for a, n := range h.held {
		if n <= 1 {
			delete(h.held, a)
			continue
		}
		h.held[a] = n - 1
	}
}
