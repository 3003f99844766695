package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells (terminal) or pixels (window)
	ScreenH  int   // Screen height in cells (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
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

// TickDuration returns the wall-clock length of one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // Current level, starting at 1
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// Tone is a fire-and-forget audio intent: a plain sine beep.
// Platforms decide how (and whether) to make it audible.
type Tone struct {
	Name      string        // Event that produced the tone, e.g. "jump"
	Frequency float64       // Hz
	Duration  time.Duration // Playback length
	Volume    float64       // 0.0 to 1.0
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the audio intents emitted during the tick.
type StepResult struct {
	State GameState
	Tones []Tone
}

// Game is the interface the platform loop drives.
// Games contain pure logic; the platform handles input mapping, timing,
// rendering and sound.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
