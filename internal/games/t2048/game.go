// Package t2048 implements the 2048 sliding tile game.
package t2048

import (
	"time"

	"github.com/vovakirdan/tui-play/internal/core"
	"github.com/vovakirdan/tui-play/internal/registry"
)

// ID is the registry and score board identifier.
const ID = "2048"

// ReasonQuit is the end reason reported when the player quits.
const ReasonQuit = "quit"

// Game adapts the Engine to the arcade platform.
type Game struct {
	engine *Engine
	tick   uint64
	moves  int

	screenW int
	screenH int

	quit bool
}

// Package-level settings applied on Reset.
var (
	rank2Chance = DefaultRank2Chance
)

// SetRank2Chance overrides the probability of spawning a 4.
func SetRank2Chance(p float64) {
	rank2Chance = p
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// TickInterval returns the input polling interval. 2048 has no timed play.
func (g *Game) TickInterval() time.Duration {
	return core.DefaultTickInterval
}

// Reset starts a new session with two spawned tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewEngine(core.NewRand(cfg.Seed), rank2Chance)
	g.tick = 0
	g.moves = 0
	g.quit = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.engine.Spawn()
	g.engine.Spawn()
}

// Step replays every key of the frame in order. Moves after a quit are
// dropped.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	for _, a := range in.Queue {
		if g.quit {
			break
		}
		if a == core.ActionQuit {
			g.quit = true
			continue
		}
		if dir, ok := directionFor(a); ok {
			g.processMove(dir)
		}
	}
	return core.StepResult{State: g.State()}
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// processMove moves and spawns a tile only if the grid changed.
func (g *Game) processMove(dir Direction) {
	if !g.engine.Move(dir) {
		return
	}
	g.moves++
	g.engine.Spawn()
}

// State returns the current game state. The session ends only on quit.
func (g *Game) State() core.GameState {
	st := core.GameState{GameOver: g.quit}
	if g.engine != nil {
		st.Score = g.engine.Score()
	}
	if g.quit {
		st.Reason = ReasonQuit
	}
	return st
}
