package core

// RuntimeConfig contains configuration passed to the game by its host.
// The engine uses it to size the scene and seed the RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary a host needs after each frame.
type GameState struct {
	Score     int  // Current session score
	HighScore int  // Best score of this process run
	Started   bool // Whether the session has started
	GameOver  bool // Whether the session has ended
}
