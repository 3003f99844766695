package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/moonpatrol/internal/core"
	"github.com/vovakirdan/moonpatrol/internal/games/moonpatrol"
	"github.com/vovakirdan/moonpatrol/internal/platform/window"
	"github.com/vovakirdan/moonpatrol/internal/sound"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window. Controls are the same as in the
terminal; hold fire to shoot as fast as the cannon reloads.

Examples:
  moonpatrol window
  moonpatrol window --scale 2 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per world unit")
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := openLogger("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var speaker sound.Speaker = sound.Nop{}
	if !flagMute {
		speaker = sound.Logged{Speaker: sound.NewEbitenSpeaker(), Logger: logger}
	}

	rt := core.RuntimeConfig{
		ScreenW:  cfg.World.Width,
		ScreenH:  cfg.World.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := window.Run(moonpatrol.New(cfg), window.Options{
		Runtime: rt,
		Speaker: speaker,
		Logger:  logger,
		Scale:   flagScale,
	})

	closeResources(logger, speaker, logCloser)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
