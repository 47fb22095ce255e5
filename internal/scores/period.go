package scores

import (
	"fmt"
	"path/filepath"
)

// Period selects one of the independent boards kept per game.
type Period int

const (
	AllTime Period = iota
	Weekly
)

func (p Period) String() string {
	if p == Weekly {
		return "weekly"
	}
	return "all-time"
}

// Title is the heading shown above the board.
func (p Period) Title() string {
	if p == Weekly {
		return "WEEKLY SCORES"
	}
	return "TOP SCORES"
}

// ParsePeriod accepts "weekly" and "all-time" (or "alltime").
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "weekly":
		return Weekly, nil
	case "all-time", "alltime", "":
		return AllTime, nil
	}
	return AllTime, fmt.Errorf("scores: unknown period %q", s)
}

// Periods lists the boards in the order they are committed.
var Periods = []Period{Weekly, AllTime}

// BoardPath returns the board file for a game and period under dir:
// <game>.scores or <game>.weekly.scores.
func BoardPath(dir, game string, p Period) string {
	name := game + ".scores"
	if p == Weekly {
		name = game + ".weekly.scores"
	}
	return filepath.Join(dir, name)
}
