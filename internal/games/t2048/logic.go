package t2048

import "github.com/vovakirdan/tui-play/internal/core"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// DefaultRank2Chance is the probability that a spawned tile is a 4.
const DefaultRank2Chance = 0.1

// Grid holds tile ranks. Rank 0 is an empty cell; rank r shows 2^r.
type Grid [BoardSize][BoardSize]uint8

// Value returns the displayed value of a rank.
func Value(rank uint8) uint32 {
	if rank == 0 {
		return 0
	}
	return 1 << rank
}

// line is one row or column, listed from the edge tiles move toward.
type line [BoardSize]core.Point

// lines returns the four lines of the grid for a direction.
func lines(dir Direction) [BoardSize]line {
	var ls [BoardSize]line
	for a := range BoardSize {
		for i := range BoardSize {
			var p core.Point
			switch dir {
			case DirLeft:
				p = core.Point{Y: a, X: i}
			case DirRight:
				p = core.Point{Y: a, X: BoardSize - 1 - i}
			case DirUp:
				p = core.Point{Y: i, X: a}
			case DirDown:
				p = core.Point{Y: BoardSize - 1 - i, X: a}
			}
			ls[a][i] = p
		}
	}
	return ls
}

func (g *Grid) at(p core.Point) *uint8 {
	return &g[p.Y][p.X]
}

// slide compacts nonzero cells toward the leading edge of l.
func (g *Grid) slide(l line) {
	w := 0
	for _, p := range l {
		if r := *g.at(p); r != 0 {
			*g.at(l[w]) = r
			w++
		}
	}
	for ; w < BoardSize; w++ {
		*g.at(l[w]) = 0
	}
}

// merge combines equal neighbours along l, scanning from the leading edge.
// The consumed cell is cleared, so no cell takes part in two merges.
func (g *Grid) merge(l line) (score uint32) {
	for i := 0; i < BoardSize-1; i++ {
		lead, next := g.at(l[i]), g.at(l[i+1])
		if *lead == 0 || *lead != *next {
			continue
		}
		*lead++
		*next = 0
		score += Value(*lead)
	}
	return score
}

// Slide performs slide, merge, slide in the given direction.
// Returns the new grid, the score gained and whether any cell changed.
func Slide(grid Grid, dir Direction) (Grid, uint32, bool) {
	if dir < DirUp || dir > DirRight {
		return grid, 0, false
	}
	out := grid
	var score uint32
	for _, l := range lines(dir) {
		out.slide(l)
		score += out.merge(l)
		out.slide(l)
	}
	return out, score, out != grid
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(grid Grid) []core.Point {
	var cells []core.Point
	for y := range BoardSize {
		for x := range BoardSize {
			if grid[y][x] == 0 {
				cells = append(cells, core.Point{Y: y, X: x})
			}
		}
	}
	return cells
}

// HasPossibleMove reports whether any direction would change the grid.
// The engine never ends a session on a stuck grid; this only feeds the HUD.
func HasPossibleMove(grid Grid) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			r := grid[y][x]
			if r == 0 {
				return true
			}
			if x < BoardSize-1 && grid[y][x+1] == r {
				return true
			}
			if y < BoardSize-1 && grid[y+1][x] == r {
				return true
			}
		}
	}
	return false
}

// MaxRank returns the highest rank on the grid.
func MaxRank(grid Grid) uint8 {
	var m uint8
	for y := range BoardSize {
		for x := range BoardSize {
			m = max(m, grid[y][x])
		}
	}
	return m
}

// Engine is the 2048 state machine: a grid and a running score.
type Engine struct {
	grid        Grid
	score       uint32
	rng         core.Rand
	rank2Chance float64
}

// NewEngine creates an engine with an empty grid.
// rank2Chance is the probability of spawning rank 2 (a 4) instead of rank 1.
func NewEngine(rng core.Rand, rank2Chance float64) *Engine {
	return &Engine{rng: rng, rank2Chance: rank2Chance}
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() Grid {
	return e.grid
}

// SetGrid replaces the grid. Used to restore or script positions.
func (e *Engine) SetGrid(g Grid) {
	e.grid = g
}

// Score returns the running score.
func (e *Engine) Score() uint32 {
	return e.score
}

// Move applies a move and reports whether the grid changed.
// The caller spawns a new tile only when it did.
func (e *Engine) Move(dir Direction) bool {
	grid, gained, changed := Slide(e.grid, dir)
	e.grid = grid
	e.score += gained
	return changed
}

// Spawn places a rank 1 tile (or rank 2 with probability rank2Chance) on a
// uniformly chosen empty cell. Returns false, leaving the grid untouched,
// when there is no empty cell.
func (e *Engine) Spawn() (core.Point, bool) {
	empty := EmptyCells(e.grid)
	if len(empty) == 0 {
		return core.Point{}, false
	}
	p := empty[e.rng.Intn(len(empty))]
	rank := uint8(1)
	if e.rng.Float64() < e.rank2Chance {
		rank = 2
	}
	e.grid[p.Y][p.X] = rank
	return p, true
}
