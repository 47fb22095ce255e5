package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-play/internal/fault"
	"github.com/vovakirdan/tui-play/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. When it ends the weekly and
all-time boards are shown and, if your score ranks, you are asked for a name.

Controls:
  h/j/k/l, arrows  - Move (2048) or steer (Snake)
  q                - End the session and go to the boards
  Ctrl+C           - Abort without recording the score

Examples:
  play play 2048
  play play snake --seed 42`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fault.Usagef("unknown game %q (see 'play list')", gameID)
	}

	journal := openJournal()
	if journal != nil {
		defer journal.Close()
	}

	err := playSession(gameID, runtimeConfig(), journal)
	if errors.Is(err, errAborted) {
		return nil
	}
	return err
}
