package moonpatrol

import (
	"fmt"

	"github.com/vovakirdan/moonpatrol/internal/core"
)

// Sound is an audio event emitted by the simulation.
type Sound int

const (
	SoundJump Sound = iota
	SoundFire
	SoundCrash
	SoundLifeLost
	SoundLevelUp
	SoundGameOver
)

// String returns the event name.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundFire:
		return "fire"
	case SoundCrash:
		return "crash"
	case SoundLifeLost:
		return "life_lost"
	case SoundLevelUp:
		return "level_up"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DrawKind tags a draw intent.
type DrawKind int

const (
	DrawGround DrawKind = iota
	DrawBoulder
	DrawCrater
	DrawVehicle
	DrawProjectile
	DrawText
)

// DrawIntent is one thing the presentation should draw, in world units.
// Crater intents describe the crater bounding box (top edge on the ground
// line); presenters draw them as an inverted triangle.
type DrawIntent struct {
	Kind DrawKind
	Rect core.Rect
	Hits int    // Boulders: remaining hits
	Text string // Text: HUD line, drawn at Rect.X, Rect.Y
}

// Stats is a snapshot of the run counters.
type Stats struct {
	Score         int
	Lives         int
	Level         int
	Distance      int
	LevelProgress int
	ScrollSpeed   int
	SpawnInterval int // Milliseconds
}

// Frame is everything one tick produced for the presentation layer.
type Frame struct {
	Draws    []DrawIntent
	Sounds   []Sound
	Stats    Stats
	Terminal bool
}

// hudLines returns the HUD text shown in the top-left corner.
func hudLines(st Stats) []string {
	return []string{
		fmt.Sprintf("Score: %d", st.Score),
		fmt.Sprintf("Lives: %d", st.Lives),
		fmt.Sprintf("Level: %d", st.Level),
	}
}
