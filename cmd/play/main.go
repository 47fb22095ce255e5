// play runs terminal minigames backed by shared high-score boards.
//
// Usage:
//
//	play list                      - List available games
//	play play <game>               - Play a game, then enter your name on the boards
//	play menu                      - Start menu to pick games interactively
//	play scores <game> [--weekly]  - Print a score board
//	play scores --file <path>      - Print the board stored in a file
//	play history [game]            - Show journaled sessions and statistics
//	play config [--default]        - Print the effective or the default configuration
//
// Global flags:
//
//	--config <path>     - Configuration file (default search: ~/.arcade/play.yaml, ./configs/play.yaml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - Override log.level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-play/internal/config"
	"github.com/vovakirdan/tui-play/internal/fault"
	"github.com/vovakirdan/tui-play/internal/games/snake"
	"github.com/vovakirdan/tui-play/internal/games/t2048"
	"github.com/vovakirdan/tui-play/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

// Set up by the root command before any subcommand runs.
var (
	cfg       config.Config
	cfgSource string
	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		if logger != nil {
			logger.Error("fatal", "err", err)
		}
		fmt.Fprintf(os.Stderr, "play: %v\n", err)
	}
	if logCloser != nil {
		_ = logCloser.Close()
	}
	os.Exit(fault.ExitCode(err))
}

var rootCmd = &cobra.Command{
	Use:   "play",
	Short: "Terminal minigames with shared high-score boards",
	Long: `play runs small terminal games (2048, Snake) and keeps weekly and
all-time high-score boards that every player on the machine shares.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - Print a score board
  history  - Show your journaled sessions

Examples:
  play list
  play play snake
  play menu
  play scores 2048 --weekly
  play history snake`,
	Args:              cobra.ArbitraryArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fault.Usagef("unknown command %q (see 'play --help')", args[0])
		}
		return cmd.Help()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fault.Usagef("%w", err)
	})

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// usageArgs turns an argument validation failure into a usage error.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fault.Usagef("%s: %w", cmd.CommandPath(), err)
		}
		return nil
	}
}

// setup loads the configuration, builds the logger and applies game tuning.
func setup(_ *cobra.Command, _ []string) error {
	loaded, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg, cfgSource = loaded, source
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger, logCloser, err = logging.New(cfg.Log)
	if err != nil {
		return fault.Usagef("%w", err)
	}
	logger.Debug("configuration loaded", "source", source, "scores", cfg.Scores.Dir)

	sc := cfg.Games.Snake
	ripe, spoil, mulch := sc.Thresholds()
	if err := snake.SetRules(snake.Rules{
		Rows:       sc.Rows,
		Cols:       sc.Cols,
		FoodCap:    sc.FoodCap,
		FoodChance: sc.FoodChance,
		Ripe:       ripe,
		Spoil:      spoil,
		Mulch:      mulch,
	}); err != nil {
		return fault.Usagef("%w", err)
	}
	snake.SetTickInterval(sc.TickInterval())
	t2048.SetRank2Chance(cfg.Games.T2048.Rank2Chance)
	return nil
}
