package snake

import "github.com/vovakirdan/tui-play/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    uint32
	Head     core.Point
	Dir      core.Point
	BodyLen  int
	Food     []Food
	Reason   string
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	return Snapshot{
		Tick:     e.Ticks(),
		Score:    e.Score(),
		Head:     e.Head(),
		Dir:      e.Dir(),
		BodyLen:  len(e.Body()),
		Food:     e.Food(),
		Reason:   e.Reason(),
		GameOver: e.Over(),
	}
}
