package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moonpatrol/internal/core"
	"github.com/vovakirdan/moonpatrol/internal/logging"
	"github.com/vovakirdan/moonpatrol/internal/sound"
)

// ScreenshotDir is where ctrl+s saves plain-text screenshots.
const ScreenshotDir = "~/.moonpatrol/screenshots"

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig
	Speaker sound.Speaker
	Logger  *log.Logger
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	speaker    sound.Speaker
	logger     *log.Logger
	runLogger  *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	fixedSeed  bool
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A zero seed means every run is seeded from the clock.
func NewModel(game core.Game, opts Options) Model {
	cfg := opts.Runtime
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	speaker := opts.Speaker
	if speaker == nil {
		speaker = sound.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		speaker:    speaker,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		fixedSeed:  fixed,
		inputFrame: core.NewInputFrame(),
	}
	m.startRun()
	return m
}

// startRun resets the game for a fresh run and logs it.
func (m *Model) startRun() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runLogger = logging.WithRun(m.logger, logging.NewRunID())
	m.runLogger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.runLogger.Info("quit", "score", m.gameState.Score, "level", m.gameState.Level)
		return m, tea.Quit
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The game scales to any size,
// so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.startRun()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickDuration())
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, tone := range result.Tones {
		m.speaker.Play(tone)
		logEvent(m.runLogger, tone.Name, m.gameState)
	}

	if m.gameState.GameOver && !wasOver {
		m.runLogger.Info("game over", "score", m.gameState.Score, "level", m.gameState.Level)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickDuration())
}

// logEvent records run milestones announced by a tone.
func logEvent(logger *log.Logger, tone string, st core.GameState) {
	switch tone {
	case "level_up":
		logger.Info("level up", "level", st.Level, "score", st.Score)
	case "life_lost":
		logger.Info("life lost", "lives", st.Lives, "score", st.Score)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := logging.ExpandHome(ScreenshotDir)
	if err != nil {
		m.runLogger.Warn("screenshot failed", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.runLogger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.runLogger.Warn("screenshot failed", "error", err)
		return
	}
	m.runLogger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.gameState.GameOver {
		return m.gameOverView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game core.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
