package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the screen size of the host.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in cells
	ScreenH  int     // Screen height in cells
	CellW    float64 // World units covered by one cell horizontally
	CellH    float64 // World units covered by one cell vertically
	TickRate int     // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// An 80x30 terminal maps onto the classic 800x600 playfield.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		CellW:    10,
		CellH:    20,
		TickRate: 60,
	}
}

// Viewport returns the playfield size in world units.
func (c RuntimeConfig) Viewport() Viewport {
	cw, ch := c.CellW, c.CellH
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return Viewport{
		Width:  float64(c.ScreenW) * cw,
		Height: float64(c.ScreenH) * ch,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Playing  bool // Whether a round is in progress
	GameOver bool // Whether the last round has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
