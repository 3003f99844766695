package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/moonpatrol/internal/config"
	"github.com/vovakirdan/moonpatrol/internal/core"
	"github.com/vovakirdan/moonpatrol/internal/games/moonpatrol"
	"github.com/vovakirdan/moonpatrol/internal/logging"
	"github.com/vovakirdan/moonpatrol/internal/platform/tui"
	"github.com/vovakirdan/moonpatrol/internal/sound"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/W/Up   - Jump
  F/X/Right    - Fire
  P            - Pause
  R            - Restart (after game over)
  Esc/Q        - Quit
  Ctrl+S       - Save a text screenshot

Difficulty options:
  easy   - 5 lives, slower start, sparse obstacles
  normal - 3 lives (default)
  hard   - 2 lives, faster start, dense obstacles

Examples:
  moonpatrol play
  moonpatrol play --difficulty easy
  moonpatrol play --config ./my-moonpatrol.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by every command that starts a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// loadGameConfig loads the config from the search path and applies the
// difficulty preset.
func loadGameConfig() (config.MoonPatrolConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.MoonPatrolConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	cfg, err := config.LoadMoonPatrol(flagConfig)
	if err != nil {
		return config.MoonPatrolConfig{}, err
	}
	if preset != "" {
		config.ApplyMoonPatrolPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			return config.MoonPatrolConfig{}, fmt.Errorf("difficulty %s: %w", preset, err)
		}
	}
	return cfg, nil
}

// terminalSpeaker opens the audio device, falling back to silence.
func terminalSpeaker(logger *log.Logger) sound.Speaker {
	if flagMute {
		return sound.Nop{}
	}
	spk, err := sound.NewOtoSpeaker()
	if err != nil {
		logger.Warn("audio unavailable, playing muted", "error", err)
		return sound.Nop{}
	}
	return sound.Logged{Speaker: spk, Logger: logger}
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := openLogger(logging.DefaultFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	speaker := terminalSpeaker(logger)
	runErr := tui.Run(moonpatrol.New(cfg), tui.Options{
		Runtime: rt,
		Speaker: speaker,
		Logger:  logger,
	})

	// Release audio and log file before potential exit
	closeResources(logger, speaker, logCloser)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// closeResources releases the speaker and then the log file. Commands call
// it before os.Exit, which skips deferred calls.
func closeResources(logger *log.Logger, speaker sound.Speaker, logCloser io.Closer) {
	sound.Shutdown(speaker, logger)
	if err := logCloser.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing log file: %v\n", err)
	}
}
