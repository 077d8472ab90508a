// logi2048 is a headless driver for the 2048 engine. It replays scripted
// moves and prints the resulting grid, which is handy for checking rules and
// seeds without a renderer attached.
//
// Usage:
//
//	logi2048 sim <moves...>   - Reset a game and apply moves (up/down/left/right or u/d/l/r)
//	logi2048 config           - Print the effective engine configuration
//
// Global flags:
//
//	--config <path>     - Engine config YAML (default: search ~/.logi2048, ./configs, embedded)
//	--seed <value>      - Override the RNG seed (0 = random based on time)
//	--log-level <level> - debug, info, warn, error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/logi2048/internal/config"
	"github.com/vovakirdan/logi2048/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	// Set up by the root command before any subcommand runs
	logger *log.Logger
	cfg    config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "logi2048",
		Short: "Headless 2048 engine driver",
		Long: `logi2048 drives the 2048 engine from the command line.

Available commands:
  sim      - Apply a scripted list of moves and print the grid
  config   - Print the effective engine configuration

Examples:
  logi2048 sim left up right
  logi2048 sim lurd --seed 42 --trace
  logi2048 config --config ./configs/engine.yaml`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	// Global persistent flags
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	root.AddCommand(newSimCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// setup builds the logger and loads the configuration shared by subcommands.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	logger, err = logging.New(logging.Options{
		Level:  flagLogLevel,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}

	logger.Debug("configuration loaded",
		"size", cfg.Size,
		"goal", cfg.Goal,
		"initial_tiles", cfg.InitialTiles,
		"chance_of_two", cfg.ChanceOfTwo,
		"seed", cfg.Seed,
	)
	return nil
}
