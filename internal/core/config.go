package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to viewport size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in game pixels
	ScreenH  int   // Viewport height in game pixels
	TickRate int   // Simulation ticks per second (default 25)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  156,
		ScreenH:  44,
		TickRate: 25,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Viewport returns the configured viewport size.
func (c RuntimeConfig) Viewport() Size {
	return Size{Width: c.ScreenW, Height: c.ScreenH}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
