package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-play/internal/config"
	"github.com/vovakirdan/tui-play/internal/fault"
	"github.com/vovakirdan/tui-play/internal/registry"
	"github.com/vovakirdan/tui-play/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show journaled sessions and statistics",
	Long: `Show per-game statistics and the most recent sessions from the
session journal. The journal records every finished session, ranked or not.

Examples:
  play history
  play history snake --limit 20
  play history 2048 --clear`,
	Args: usageArgs(cobra.MaximumNArgs(1)),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of recent sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the journaled sessions of the game")
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func runHistory(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fault.Usagef("unknown game %q (see 'play list')", gameID)
		}
	}
	if flagHistoryClear && gameID == "" {
		return fault.Usagef("--clear needs a game")
	}
	if cfg.Scores.Journal == "" {
		return fault.Usagef("no session journal configured (scores.journal)")
	}

	path, err := config.ExpandHome(cfg.Scores.Journal)
	if err != nil {
		return fault.Usagef("scores.journal: %w", err)
	}
	store, err := storage.Open(path)
	if err != nil {
		return fault.CantCreate("open journal", path, err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagHistoryClear {
		if err := store.ClearSessions(gameID); err != nil {
			return fault.IO("clear journal", path, err)
		}
		fmt.Fprintf(out, "Cleared the %s history.\n", gameID)
		return nil
	}

	var stats []*storage.GameStats
	if gameID != "" {
		gs, err := store.GameStats(gameID)
		if err != nil {
			return fault.IO("read journal", path, err)
		}
		stats = append(stats, gs)
	} else {
		all, err := store.AllGameStats()
		if err != nil {
			return fault.IO("read journal", path, err)
		}
		for _, gs := range all {
			stats = append(stats, gs)
		}
		sort.Slice(stats, func(i, j int) bool { return stats[i].GameID < stats[j].GameID })
	}

	sessions, err := store.RecentSessions(gameID, flagHistoryLimit)
	if err != nil {
		return fault.IO("read journal", path, err)
	}
	return writeHistory(out, stats, sessions)
}

// writeHistory prints the statistics table followed by the recent sessions.
func writeHistory(w io.Writer, stats []*storage.GameStats, sessions []storage.Session) error {
	var b strings.Builder

	if len(stats) == 0 || (len(stats) == 1 && stats[0].GamesCount == 0) {
		b.WriteString("No sessions recorded yet.\n")
	} else {
		rows := make([][]string, 0, len(stats))
		for _, gs := range stats {
			rows = append(rows, []string{
				gs.GameID,
				strconv.Itoa(gs.GamesCount),
				strconv.FormatUint(uint64(gs.HighScore), 10),
				strconv.FormatFloat(gs.AvgScore, 'f', 1, 64),
				gs.TotalTime.Round(time.Second).String(),
				formatWhen(gs.LastPlayed),
			})
		}
		b.WriteString(newTable("Game", "Played", "Best", "Average", "Time", "Last played").Rows(rows...).Render())
		b.WriteString("\n")
	}

	if len(sessions) > 0 {
		rows := make([][]string, 0, len(sessions))
		for _, s := range sessions {
			rows = append(rows, []string{
				formatWhen(s.CreatedAt),
				s.GameID,
				strconv.FormatUint(uint64(s.Score), 10),
				s.Reason,
				s.Duration.Round(time.Second).String(),
			})
		}
		b.WriteString("\nRecent sessions\n")
		b.WriteString(newTable("When", "Game", "Score", "Ended", "Time").Rows(rows...).Render())
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fault.IO("write", "stdout", err)
	}
	return nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func formatWhen(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
