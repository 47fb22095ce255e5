package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-play/internal/bounded"
	"github.com/vovakirdan/tui-play/internal/core"
)

// End reasons reported by the engine.
const (
	ReasonSpoiled = "ate spoiled food"
	ReasonWall    = "hit the wall"
	ReasonSelf    = "ate itself"
	ReasonQuit    = "quit"
)

// Rules holds the arena size and food lifecycle thresholds.
// Zero thresholds are derived from the arena size by Derive.
type Rules struct {
	Rows       int
	Cols       int
	FoodCap    int // Maximum number of food items on the arena
	FoodChance int // Spawn chance is 1 in FoodChance per tick
	Ripe       int // Food older than this scores double
	Spoil      int // Food older than this ends the game when eaten
	Mulch      int // Food older than this rots away
}

// DefaultRules returns the classic 24x48 arena.
func DefaultRules() Rules {
	return Rules{Rows: 24, Cols: 48, FoodCap: 25, FoodChance: 15}.Derive()
}

// Derive fills zero thresholds: ripe = rows+cols, spoil = ripe+cols,
// mulch = spoil*10.
func (r Rules) Derive() Rules {
	if r.Ripe == 0 {
		r.Ripe = r.Rows + r.Cols
	}
	if r.Spoil == 0 {
		r.Spoil = r.Ripe + r.Cols
	}
	if r.Mulch == 0 {
		r.Mulch = r.Spoil * 10
	}
	return r
}

// Validate checks sizes and the ripe < spoil < mulch ordering.
func (r Rules) Validate() error {
	var errs []error
	if r.Rows < 2 || r.Cols < 2 {
		errs = append(errs, fmt.Errorf("arena %dx%d is too small", r.Rows, r.Cols))
	}
	if r.FoodCap < 1 {
		errs = append(errs, fmt.Errorf("food cap %d must be positive", r.FoodCap))
	}
	if r.FoodChance < 1 {
		errs = append(errs, fmt.Errorf("food chance 1/%d must be positive", r.FoodChance))
	}
	if r.Ripe < 0 || r.Ripe >= r.Spoil {
		errs = append(errs, fmt.Errorf("ripe %d must be below spoil %d", r.Ripe, r.Spoil))
	}
	if r.Spoil >= r.Mulch {
		errs = append(errs, fmt.Errorf("spoil %d must be below mulch %d", r.Spoil, r.Mulch))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("snake: invalid rules: %w", err)
	}
	return nil
}

// Food is a single food item and its age in ticks.
type Food struct {
	Pos core.Point
	Age int
}

// Freshness classifies a food item by age.
type Freshness int

const (
	Fresh Freshness = iota
	Ripe
	Spoiled
)

// Freshness returns the tier of f under r.
func (r Rules) Freshness(f Food) Freshness {
	switch {
	case f.Age > r.Spoil:
		return Spoiled
	case f.Age > r.Ripe:
		return Ripe
	default:
		return Fresh
	}
}

// Engine simulates the snake and the food lifecycle one tick at a time.
type Engine struct {
	rules Rules
	rng   core.Rand

	head core.Point
	dir  core.Point
	// body holds the previous head positions, nearest first.
	body *bounded.Seq[core.Point]
	food *bounded.Seq[Food]

	score  uint32
	ticks  uint64
	reason string
}

// NewEngine creates an engine with the head at the arena centre heading
// right and a single body segment on the cell behind it.
func NewEngine(rules Rules, rng core.Rand) (*Engine, error) {
	rules = rules.Derive()
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		rules: rules,
		rng:   rng,
		head:  core.Point{Y: rules.Rows / 2, X: rules.Cols / 2},
		dir:   core.Right,
		body:  bounded.New[core.Point](rules.Rows * rules.Cols),
		food:  bounded.New[Food](rules.FoodCap),
	}
	e.body.Push(e.head.Add(e.dir.Neg()))
	return e, nil
}

// Rules returns the rules in effect, thresholds derived.
func (e *Engine) Rules() Rules { return e.rules }

// Head returns the head position.
func (e *Engine) Head() core.Point { return e.head }

// Dir returns the current direction vector.
func (e *Engine) Dir() core.Point { return e.dir }

// Body returns the body segments, nearest to the head first.
func (e *Engine) Body() []core.Point { return e.body.Slice() }

// Food returns the food items on the arena.
func (e *Engine) Food() []Food { return e.food.Slice() }

// Score returns the running score.
func (e *Engine) Score() uint32 { return e.score }

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Over reports whether the session has ended.
func (e *Engine) Over() bool { return e.reason != "" }

// Reason returns why the session ended, or "" while playing.
func (e *Engine) Reason() string { return e.reason }

// Steer requests a new direction for the next tick. A request that exactly
// reverses the current direction, or is not a unit vector, is ignored.
func (e *Engine) Steer(dir core.Point) bool {
	if e.Over() {
		return false
	}
	switch dir {
	case core.Up, core.Down, core.Left, core.Right:
	default:
		return false
	}
	if dir == e.dir.Neg() {
		return false
	}
	e.dir = dir
	return true
}

// Quit ends the session at the player's request.
func (e *Engine) Quit() {
	if !e.Over() {
		e.reason = ReasonQuit
	}
}

// Tick advances the simulation by one step and reports whether the session
// is still running afterwards.
func (e *Engine) Tick() bool {
	if e.Over() {
		return false
	}
	e.ticks++

	next := e.head.Add(e.dir)
	if !e.eat(next) {
		return false
	}
	e.age()
	e.maybeSpawn(next)

	// Each segment takes the place of the one ahead of it.
	for i := e.body.Len() - 1; i > 0; i-- {
		e.body.Set(i, e.body.At(i-1))
	}
	e.body.Set(0, e.head)
	e.head = next

	if !e.head.In(e.rules.Rows, e.rules.Cols) {
		e.reason = ReasonWall
		return false
	}
	for _, seg := range e.body.All() {
		if seg == e.head {
			e.reason = ReasonSelf
			return false
		}
	}
	return true
}

// eat consumes food at p, if any. Returns false when the food was spoiled.
func (e *Engine) eat(p core.Point) bool {
	for i, f := range e.food.All() {
		if f.Pos != p {
			continue
		}
		if e.rules.Freshness(f) == Spoiled {
			e.reason = ReasonSpoiled
			return false
		}
		mult := uint32(1)
		if e.rules.Freshness(f) == Ripe {
			mult = 2
		}
		e.score += uint32(e.body.Len()) * mult
		e.food.SwapRemove(i)
		// The new tail slot repeats the old tail until the next shift.
		e.body.Push(e.body.At(e.body.Len() - 1))
		return true
	}
	return true
}

// age ages every item by one tick and drops those past the mulch threshold.
func (e *Engine) age() {
	for i := e.food.Len() - 1; i >= 0; i-- {
		f := e.food.Ptr(i)
		f.Age++
		if f.Age > e.rules.Mulch {
			e.food.SwapRemove(i)
		}
	}
}

// maybeSpawn adds food unconditionally when none is left, otherwise with
// probability 1/FoodChance while below capacity. The cell the head is
// entering is never chosen.
func (e *Engine) maybeSpawn(next core.Point) {
	if e.food.Len() > 0 {
		if e.food.Full() || e.rng.Intn(e.rules.FoodChance) != 0 {
			return
		}
	}
	empty := e.emptyCells(next)
	if len(empty) == 0 {
		return
	}
	e.food.Push(Food{Pos: empty[e.rng.Intn(len(empty))]})
}

// emptyCells lists cells not covered by the head, the body, food or next,
// in row-major order.
func (e *Engine) emptyCells(next core.Point) []core.Point {
	taken := make(map[core.Point]bool, e.body.Len()+e.food.Len()+2)
	taken[e.head] = true
	taken[next] = true
	for _, p := range e.body.All() {
		taken[p] = true
	}
	for _, f := range e.food.All() {
		taken[f.Pos] = true
	}

	cells := make([]core.Point, 0, max(0, e.rules.Rows*e.rules.Cols-len(taken)))
	for y := range e.rules.Rows {
		for x := range e.rules.Cols {
			if p := (core.Point{Y: y, X: x}); !taken[p] {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
