package t2048

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Moves   int
	Score   uint32
	Grid    Grid
	MaxRank uint8
	Stuck   bool // No move would change the grid
	Quit    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	grid := g.engine.Grid()
	return Snapshot{
		Tick:    g.tick,
		Moves:   g.moves,
		Score:   g.engine.Score(),
		Grid:    grid,
		MaxRank: MaxRank(grid),
		Stuck:   !HasPossibleMove(grid),
		Quit:    g.quit,
	}
}
