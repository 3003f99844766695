// Package moonpatrol implements a Moon Patrol-style side scroller.
// The buggy drives automatically; the player jumps over craters and shoots
// boulders while the world speeds up level by level.
package moonpatrol

import (
	"math"
	"time"

	"github.com/vovakirdan/moonpatrol/internal/config"
	"github.com/vovakirdan/moonpatrol/internal/core"
)

// Visual characters for terminal rendering
const (
	GroundChar     = '▓'
	VehicleChar    = '█'
	WheelChar      = 'o'
	BoulderChar    = '▒'
	BigBoulderChar = '█'
	ProjectileChar = '-'
)

// Game adapts a GameState to the platform loop: it maps actions to input,
// handles pause, converts sound events to tones and renders into a Screen.
type Game struct {
	cfg     config.MoonPatrolConfig
	runtime core.RuntimeConfig
	state   *GameState
	frame   Frame
	paused  bool
}

// New creates a Moon Patrol game using the given configuration.
// Reset must be called before the first Step.
func New(cfg config.MoonPatrolConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "moonpatrol"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Moon Patrol"
}

// Config returns the game configuration.
func (g *Game) Config() config.MoonPatrolConfig {
	return g.cfg
}

// Reset discards the current run and starts a fresh one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.state = NewGameState(g.cfg, runtime.Seed, runtime.TickDuration())
	g.frame = g.state.Frame()
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.Terminal() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frame = g.state.Tick(Input{
		Jump: in.Has(core.ActionJump),
		Fire: in.Has(core.ActionFire),
	})

	tones := make([]core.Tone, 0, len(g.frame.Sounds))
	for _, s := range g.frame.Sounds {
		tones = append(tones, ToneFor(g.cfg.Sounds, s))
	}

	return core.StepResult{State: g.State(), Tones: tones}
}

// Frame returns the intents produced by the most recent tick.
func (g *Game) Frame() Frame {
	return g.frame
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.frame.Stats
	return core.GameState{
		Score:    st.Score,
		Lives:    st.Lives,
		Level:    st.Level,
		GameOver: g.frame.Terminal,
		Paused:   g.paused,
	}
}

// ToneFor returns the configured beep for a sound event.
func ToneFor(cfg config.MoonPatrolSounds, s Sound) core.Tone {
	var tc config.ToneConfig
	switch s {
	case SoundJump:
		tc = cfg.Jump
	case SoundFire:
		tc = cfg.Fire
	case SoundCrash:
		tc = cfg.Crash
	case SoundLifeLost:
		tc = cfg.LifeLost
	case SoundLevelUp:
		tc = cfg.LevelUp
	case SoundGameOver:
		tc = cfg.GameOver
	}
	return core.Tone{
		Name:      s.String(),
		Frequency: tc.Frequency,
		Duration:  time.Duration(tc.Duration * float64(time.Second)),
		Volume:    tc.Volume,
	}
}

// Render draws the last frame into the terminal screen, scaling world
// units to cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(g.cfg.World, dst.Width(), dst.Height())

	for _, d := range g.frame.Draws {
		switch d.Kind {
		case DrawGround:
			dst.FillRect(v.rect(d.Rect), GroundChar, core.ColorOrange)
		case DrawCrater:
			drawCrater(dst, v, d.Rect)
		case DrawBoulder:
			ch := BoulderChar
			if d.Hits > 1 {
				ch = BigBoulderChar
			}
			dst.FillRect(v.rect(d.Rect), ch, core.ColorBrown)
		case DrawVehicle:
			r := v.rect(d.Rect)
			dst.FillRect(r, VehicleChar, core.ColorYellow)
			if r.H > 1 {
				dst.DrawHLine(r.X, r.Bottom()-1, r.W, WheelChar, core.ColorYellow)
			}
		case DrawProjectile:
			dst.FillRect(v.rect(d.Rect), ProjectileChar, core.ColorRed)
		case DrawText:
			dst.DrawText(v.col(d.Rect.X), v.row(d.Rect.Y), d.Text, core.ColorWhite)
		}
	}

	if g.paused {
		msg := " PAUSED - press P to resume "
		dst.DrawText((dst.Width()-len(msg))/2, dst.Height()/2, msg, core.ColorWhite)
	}
}

// drawCrater carves an inverted triangle out of the ground.
func drawCrater(dst *core.Screen, v viewport, r core.Rect) {
	cells := v.rect(r)
	cx := float64(r.X) + float64(r.W)/2
	for row := cells.Y; row < cells.Bottom(); row++ {
		depth := math.Max(0, (float64(row)+0.5)/v.sy-float64(r.Y))
		frac := 1 - depth/float64(r.H)
		if frac <= 0 {
			continue
		}
		half := float64(r.W) / 2 * frac
		for col := cells.X; col < cells.Right(); col++ {
			x := (float64(col) + 0.5) / v.sx
			if math.Abs(x-cx) <= half {
				dst.Set(col, row, ' ')
			}
		}
	}
}

// viewport scales world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(world config.MoonPatrolWorld, w, h int) viewport {
	return viewport{
		sx: float64(w) / float64(world.Width),
		sy: float64(h) / float64(world.Height),
	}
}

func (v viewport) col(x int) int { return int(math.Floor(float64(x) * v.sx)) }
func (v viewport) row(y int) int { return int(math.Floor(float64(y) * v.sy)) }

// rect converts a world rect to the cells it touches, at least one cell in size.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1 := int(math.Ceil(float64(r.Right()) * v.sx))
	y1 := int(math.Ceil(float64(r.Bottom()) * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
