package core

// RuntimeConfig carries the viewport and timing the platform layer hands to
// the simulation. The world itself is fixed; only the view adapts.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Seconds converts a duration in seconds to a whole number of ticks.
func (c RuntimeConfig) Seconds(s float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return int(s * float64(rate))
}
