package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-play/internal/fault"
	"github.com/vovakirdan/tui-play/internal/registry"
	"github.com/vovakirdan/tui-play/internal/scores"
)

var (
	flagWeekly    bool
	flagScoreFile string
	flagTitle     string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Print a score board",
	Long: `Print the all-time (or, with --weekly, the weekly) board of a game, or
the board stored in any file with --file. The board is only read, never
locked; a missing board file is created empty.

Examples:
  play scores snake
  play scores 2048 --weekly
  play scores --file ./snake.scores --title "OFFICE LEAGUE"`,
	Args: usageArgs(cobra.MaximumNArgs(1)),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagWeekly, "weekly", false, "Show the weekly board")
	scoresCmd.Flags().StringVar(&flagScoreFile, "file", "", "Read the board from this file")
	scoresCmd.Flags().StringVar(&flagTitle, "title", "", "Title printed above the board")
}

func runScores(cmd *cobra.Command, args []string) error {
	path, title, err := scoresTarget(args)
	if err != nil {
		return err
	}
	if flagTitle != "" {
		title = flagTitle
	}

	b, err := scores.LoadPath(path)
	if err != nil {
		return err
	}
	if err := scores.Report(cmd.OutOrStdout(), title, b); err != nil {
		return fault.IO("write", "stdout", err)
	}
	return nil
}

// scoresTarget resolves the board file and default title from the
// arguments: either a game ID or --file, not both.
func scoresTarget(args []string) (path, title string, err error) {
	period := scores.AllTime
	if flagWeekly {
		period = scores.Weekly
	}

	switch {
	case flagScoreFile != "" && len(args) > 0:
		return "", "", fault.Usagef("give either a game or --file, not both")
	case flagScoreFile != "":
		return flagScoreFile, period.Title(), nil
	case len(args) == 0:
		return "", "", fault.Usagef("missing game (see 'play list') or --file")
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return "", "", fault.Usagef("unknown game %q (see 'play list')", gameID)
	}
	dir, err := scoresDir()
	if err != nil {
		return "", "", err
	}
	return scores.BoardPath(dir, gameID, period), period.Title(), nil
}
