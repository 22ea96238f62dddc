package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from the terminal and CLI flags.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second the driver aims for (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	Level     int  // Current level number (1-based)
	Completed bool // Whether the last level has been cleared
	Paused    bool // Whether the game is paused
}

// StepResult is returned after each performed simulation frame.
type StepResult struct {
	State          GameState
	LevelCompleted bool // A level was cleared during this frame
}
