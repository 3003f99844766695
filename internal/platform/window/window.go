// Package window runs the game in a desktop window with ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/moonpatrol/internal/core"
	"github.com/vovakirdan/moonpatrol/internal/games/moonpatrol"
	"github.com/vovakirdan/moonpatrol/internal/logging"
	"github.com/vovakirdan/moonpatrol/internal/sound"
)

var (
	skyColor        = color.RGBA{0, 0, 32, 255}
	groundColor     = color.RGBA{205, 133, 63, 255}
	vehicleColor    = color.RGBA{255, 255, 0, 255}
	boulderColor    = color.RGBA{139, 69, 19, 255}
	projectileColor = color.RGBA{255, 0, 0, 255}
	gameOverColor   = color.RGBA{255, 0, 0, 255}
	textColor       = color.White
)

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig
	Speaker sound.Speaker
	Logger  *log.Logger
	Scale   int // Window pixels per world unit
}

// Window adapts a Moon Patrol game to ebiten.Game.
type Window struct {
	game      *moonpatrol.Game
	speaker   sound.Speaker
	logger    *log.Logger
	runLogger *log.Logger
	runtime   core.RuntimeConfig
	fixedSeed bool
	state     core.GameState

	face    *text.GoXFace
	pixel   *ebiten.Image
	craterV []ebiten.Vertex
	craterI []uint16
}

// New creates a window front end. A zero seed means every run is seeded
// from the clock.
func New(game *moonpatrol.Game, opts Options) *Window {
	rt := opts.Runtime
	fixed := rt.Seed != 0

	speaker := opts.Speaker
	if speaker == nil {
		speaker = sound.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	w := &Window{
		game:      game,
		speaker:   speaker,
		logger:    logger,
		runtime:   rt,
		fixedSeed: fixed,
		face:      text.NewGoXFace(basicfont.Face7x13),
		pixel:     pixel,
	}
	w.startRun()
	return w
}

func (w *Window) startRun() {
	if !w.fixedSeed {
		w.runtime.Seed = time.Now().UnixNano()
	}
	w.game.Reset(w.runtime)
	w.state = w.game.State()
	w.runLogger = logging.WithRun(w.logger, logging.NewRunID())
	w.runLogger.Info("run started", "game", w.game.ID(), "seed", w.runtime.Seed)
}

// Update samples the keyboard and advances the game by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.runLogger.Info("quit", "score", w.state.Score, "level", w.state.Level)
		return ebiten.Termination
	}

	if w.state.GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			w.startRun()
		}
		return nil
	}

	result := w.game.Step(w.input())
	w.state = result.State
	for _, tone := range result.Tones {
		w.speaker.Play(tone)
		switch tone.Name {
		case "level_up":
			w.runLogger.Info("level up", "level", w.state.Level, "score", w.state.Score)
		case "life_lost":
			w.runLogger.Info("life lost", "lives", w.state.Lives, "score", w.state.Score)
		}
	}

	if w.state.GameOver {
		w.runLogger.Info("game over", "score", w.state.Score, "level", w.state.Level)
	}
	return nil
}

// input reads held keys for movement and fresh presses for toggles.
// Holding fire shoots as fast as the cooldown allows.
func (w *Window) input() core.InputFrame {
	in := core.NewInputFrame()
	if anyPressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW) {
		in.Set(core.ActionJump)
	}
	if anyPressed(ebiten.KeyF, ebiten.KeyX, ebiten.KeyArrowRight) {
		in.Set(core.ActionFire)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	return in
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Draw renders the last frame's intents, or the game-over screen.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.state.GameOver {
		w.drawGameOver(screen)
		return
	}

	screen.Fill(skyColor)
	for _, d := range w.game.Frame().Draws {
		r := d.Rect
		switch d.Kind {
		case moonpatrol.DrawGround:
			fillRect(screen, r, groundColor)
		case moonpatrol.DrawCrater:
			w.drawCrater(screen, r)
		case moonpatrol.DrawBoulder:
			fillRect(screen, r, boulderColor)
		case moonpatrol.DrawVehicle:
			fillRect(screen, r, vehicleColor)
		case moonpatrol.DrawProjectile:
			fillRect(screen, r, projectileColor)
		case moonpatrol.DrawText:
			w.drawText(screen, d.Text, float64(r.X), float64(r.Y), text.AlignStart, textColor)
		}
	}

	if w.state.Paused {
		cx, cy := w.center()
		w.drawText(screen, "PAUSED - press P to resume", cx, cy, text.AlignCenter, textColor)
	}
}

// drawCrater cuts an inverted triangle out of the ground in the sky color.
func (w *Window) drawCrater(screen *ebiten.Image, r core.Rect) {
	tri := moonpatrol.Obstacle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}.CraterTriangle()

	var path vector.Path
	path.MoveTo(float32(tri[0][0]), float32(tri[0][1]))
	path.LineTo(float32(tri[1][0]), float32(tri[1][1]))
	path.LineTo(float32(tri[2][0]), float32(tri[2][1]))
	path.Close()

	w.craterV, w.craterI = path.AppendVerticesAndIndicesForFilling(w.craterV[:0], w.craterI[:0])
	for i := range w.craterV {
		w.craterV[i].ColorR = float32(skyColor.R) / 255
		w.craterV[i].ColorG = float32(skyColor.G) / 255
		w.craterV[i].ColorB = float32(skyColor.B) / 255
		w.craterV[i].ColorA = 1
	}
	screen.DrawTriangles(w.craterV, w.craterI, w.pixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (w *Window) drawGameOver(screen *ebiten.Image) {
	screen.Fill(color.Black)
	cx, cy := w.center()
	w.drawText(screen, "GAME OVER", cx, cy-80, text.AlignCenter, gameOverColor)
	w.drawText(screen, fmt.Sprintf("Final Score: %d", w.state.Score), cx, cy-20, text.AlignCenter, textColor)
	w.drawText(screen, "Press 'R' to Restart or 'Esc' to Quit", cx, cy+20, text.AlignCenter, textColor)
}

func (w *Window) drawText(screen *ebiten.Image, s string, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, w.face, op)
}

func (w *Window) center() (float64, float64) {
	world := w.game.Config().World
	return float64(world.Width) / 2, float64(world.Height) / 2
}

func fillRect(screen *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	world := w.game.Config().World
	return world.Width, world.Height
}

// Run opens the window and blocks until the player quits.
func Run(game *moonpatrol.Game, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = ebiten.DefaultTPS
	}
	world := game.Config().World

	ebiten.SetWindowSize(world.Width*opts.Scale, world.Height*opts.Scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(opts.Runtime.TickRate)

	err := ebiten.RunGame(New(game, opts))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
