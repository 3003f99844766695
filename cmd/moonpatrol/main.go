// moonpatrol is a Moon Patrol-style side scroller for the terminal and the desktop.
//
// Usage:
//
//	moonpatrol play             - Play in the terminal
//	moonpatrol window           - Play in a desktop window
//	moonpatrol config           - Print the effective configuration
//	moonpatrol config validate  - Check a configuration file
//	moonpatrol version          - Print the version
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Log destination (play defaults to ~/.moonpatrol/moonpatrol.log)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/moonpatrol/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moonpatrol",
	Short: "Moon Patrol - drive, jump and shoot across the moon",
	Long: `Moon Patrol is a side-scrolling arcade game. Your buggy drives on its
own; jump over craters, shoot boulders and survive as the levels speed up.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print or validate the configuration
  version  - Print the version

Examples:
  moonpatrol play
  moonpatrol play --difficulty hard --seed 42
  moonpatrol window --scale 2
  moonpatrol config > my-moonpatrol.yaml
  moonpatrol config validate --config my-moonpatrol.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (play defaults to "+logging.DefaultFile+", window to stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// openLogger builds the logger for a command. defaultFile is used when
// --log-file is unset; an empty defaultFile means stderr.
func openLogger(defaultFile string) (*log.Logger, io.Closer, error) {
	path := flagLogFile
	if path == "" {
		path = defaultFile
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if path != "" {
		f, err := logging.OpenFile(path)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	}

	logger, err := logging.New(w, flagLogLevel)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return logger, closer, nil
}
