package core

// RuntimeConfig contains configuration passed to games at setup.
// Games use this to adapt to screen size and for deterministic layout.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // Seed for deterministic level generation

	ConfigPath string // Optional game config file, empty for the search order
	Difficulty string // Difficulty preset name, empty keeps the file's setting
	Debug      bool   // Draw debug overlays
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

// GameState represents the current state of a game.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best stored score, for display
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}
