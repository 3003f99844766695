package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/moonpatrol/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.
The config is resolved from --config, ~/.moonpatrol/configs/moonpatrol.yaml,
./configs/moonpatrol.yaml or the built-in defaults, in that order, and the
difficulty preset is applied on top.

Use --defaults to print the built-in config file, comments included.

Examples:
  moonpatrol config
  moonpatrol config --defaults
  moonpatrol config --difficulty hard > ~/.moonpatrol/configs/moonpatrol.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a configuration file",
	Long: `Load the configuration and report every invalid field.

Examples:
  moonpatrol config validate --config ./my-moonpatrol.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfigValidate,
}

func init() {
	configCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
	configCmd.AddCommand(configValidateCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		cmd.OutOrStdout().Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cmd.OutOrStdout().Write(data)
}

func runConfigValidate(cmd *cobra.Command, args []string) {
	if _, err := loadGameConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration:\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration OK")
}
