package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns the configuration used when the platform has no
// better information.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameDelta converts the tick rate into the simulation time unit, where 1.0
// is one frame at 60 Hz.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1
	}
	return 60 / float64(c.TickRate)
}

// GameState is the status a game reports to its platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Events carries short human-readable notes about what happened this tick,
	// e.g. merges, for platforms that show a status line.
	Events []string
}

// RunSummary describes a finished run for the score table.
type RunSummary struct {
	Score    int
	BestTier string
	Merges   int
	Drops    int
}
