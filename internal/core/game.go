package core

import "time"

// Game is the contract between a game's pure logic and the platform host.
// Games contain no Bubble Tea code; the platform handles input mapping,
// timing and rendering.
type Game interface {
	// ID returns a unique identifier for this game, used for storage paths.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh round.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step applies one frame of input and advances the simulation to now.
	// now is a monotonic timestamp owned by the host.
	Step(in InputFrame, now time.Duration) StepResult

	// Render draws the current state into dst. The screen is pre-cleared.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}

// RoundSummary describes the current round for the host's history and logs.
type RoundSummary struct {
	ID        string
	Score     int
	LivesLeft int
	Victory   bool // Ended by reaching the terminal score
	Best      int
	MaxSpeed  float64
	Elapsed   time.Duration
}
