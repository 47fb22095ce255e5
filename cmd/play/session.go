package main

import (
	"errors"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-play/internal/config"
	"github.com/vovakirdan/tui-play/internal/core"
	"github.com/vovakirdan/tui-play/internal/fault"
	"github.com/vovakirdan/tui-play/internal/logging"
	"github.com/vovakirdan/tui-play/internal/platform/tui"
	"github.com/vovakirdan/tui-play/internal/registry"
	"github.com/vovakirdan/tui-play/internal/scores"
	"github.com/vovakirdan/tui-play/internal/storage"
)

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.Seed = flagSeed
	return rc
}

// holdLogs keeps log lines off the terminal while a Bubble Tea program owns
// it, unless they go to a file anyway.
func holdLogs() (release func()) {
	if cfg.Log.File != "" {
		return func() {}
	}
	return logging.Hold(logger, os.Stderr)
}

// scoresDir returns the expanded board directory.
func scoresDir() (string, error) {
	dir, err := config.ExpandHome(cfg.Scores.Dir)
	if err != nil {
		return "", fault.Usagef("scores.dir: %w", err)
	}
	return dir, nil
}

// openBoards opens the weekly and all-time boards of a game, in commit order.
func openBoards(gameID string) ([]*scores.File, error) {
	dir, err := scoresDir()
	if err != nil {
		return nil, err
	}
	files := make([]*scores.File, 0, len(scores.Periods))
	for _, p := range scores.Periods {
		f, err := scores.Open(scores.BoardPath(dir, gameID, p))
		if err != nil {
			closeBoards(files)
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func closeBoards(files []*scores.File) {
	for _, f := range files {
		if err := f.Close(); err != nil {
			logger.Warn("closing board", "err", err)
		}
	}
}

// openJournal opens the session journal. The journal is optional: a
// failure is logged and play goes on without it.
func openJournal() *storage.Store {
	if cfg.Scores.Journal == "" {
		return nil
	}
	store, err := storage.Open(cfg.Scores.Journal)
	if err != nil {
		logger.Warn("session journal unavailable", "path", cfg.Scores.Journal, "err", err)
		return nil
	}
	return store
}

// playerName is the name offered at name entry.
func playerName() string {
	if cfg.Player.Name != "" {
		return cfg.Player.Name
	}
	return os.Getenv("USER")
}

// errAborted reports that the player pressed Ctrl+C.
var errAborted = errors.New("aborted")

// playSession runs one game, journals it and takes the player through the
// score boards. It returns errAborted when the player pressed Ctrl+C.
func playSession(gameID string, rc core.RuntimeConfig, journal *storage.Store) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fault.Usagef("unknown game %q (see 'play list')", gameID)
	}

	release := holdLogs()
	defer release()

	res, err := tui.RunGame(game, rc)
	if err != nil {
		return fault.Internal("run game", err)
	}
	if res.Aborted {
		logger.Info("session aborted", "game", gameID)
		return errAborted
	}
	logger.Info("session over", "game", gameID, "score", res.Score, "reason", res.Reason, "ticks", res.Ticks)

	if journal != nil {
		id, err := journal.SaveSession(storage.Session{
			GameID:   res.GameID,
			Score:    res.Score,
			Reason:   res.Reason,
			Ticks:    res.Ticks,
			Duration: res.Duration,
		})
		if err != nil {
			logger.Warn("journal session", "err", err)
		} else {
			logger.Debug("session journaled", "id", id)
		}
	}

	files, err := openBoards(gameID)
	if err != nil {
		return err
	}
	defer closeBoards(files)

	sources := make([]tui.BoardSource, len(files))
	for i, f := range files {
		sources[i] = tui.BoardSource{Period: scores.Periods[i], Store: f}
	}
	aborted, err := tui.RunResults(res.Title, res.Score, sources, playerName(), logger)
	if err != nil {
		return err
	}
	if aborted {
		return errAborted
	}
	return nil
}
