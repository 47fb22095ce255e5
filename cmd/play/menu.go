package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-play/internal/platform/tui"
	"github.com/vovakirdan/tui-play/internal/scores"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game and its score boards, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Browse the score boards
  Q            - Quit`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	journal := openJournal()
	if journal != nil {
		defer journal.Close()
	}

	dir, err := scoresDir()
	if err != nil {
		return err
	}
	load := func(gameID string, p scores.Period) (*scores.Board, error) {
		return scores.LoadPath(scores.BoardPath(dir, gameID, p))
	}

	rc := runtimeConfig()
	for {
		release := holdLogs()
		result, err := tui.RunMenu(rc, load)
		release()
		if err != nil {
			return err
		}
		rc = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			release := holdLogs()
			goBack, err := tui.RunBrowser(load, rc.ScreenW, rc.ScreenH)
			release()
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		err = playSession(result.GameID, rc, journal)
		if errors.Is(err, errAborted) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
