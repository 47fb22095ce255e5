// Package snake implements a snake game with aging food: ripe food scores
// double and spoiled food ends the game.
package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-play/internal/core"
	"github.com/vovakirdan/tui-play/internal/registry"
)

// ID is the registry and score board identifier.
const ID = "snake"

// DefaultTickInterval is the time between simulation steps.
const DefaultTickInterval = 150 * time.Millisecond

// Package-level settings applied on Reset.
var (
	rules        = DefaultRules()
	tickInterval = DefaultTickInterval
)

// SetRules overrides the arena and food rules used by new sessions.
func SetRules(r Rules) error {
	r = r.Derive()
	if err := r.Validate(); err != nil {
		return err
	}
	rules = r
	return nil
}

// SetTickInterval overrides the time between steps. Non-positive values are ignored.
func SetTickInterval(d time.Duration) {
	if d > 0 {
		tickInterval = d
	}
}

// Game adapts the Engine to the arcade platform.
type Game struct {
	engine *Engine

	screenW int
	screenH int
}

// New creates a new snake game.
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
	return "Snake"
}

// TickInterval returns the time between simulation steps.
func (g *Game) TickInterval() time.Duration {
	return tickInterval
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	e, err := NewEngine(rules, core.NewRand(cfg.Seed))
	if err != nil {
		// SetRules only ever stores validated rules.
		panic(fmt.Sprintf("snake: %v", err))
	}
	g.engine = e
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

// Step applies the latest steering request and advances one tick.
// Quitting ends the session without another tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine.Over() {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionQuit) {
		g.engine.Quit()
		return core.StepResult{State: g.State()}
	}
	if dir, ok := directionFor(in.Last); ok {
		g.engine.Steer(dir)
	}
	g.engine.Tick()
	return core.StepResult{State: g.State()}
}

func directionFor(a core.Action) (core.Point, bool) {
	switch a {
	case core.ActionUp:
		return core.Up, true
	case core.ActionDown:
		return core.Down, true
	case core.ActionLeft:
		return core.Left, true
	case core.ActionRight:
		return core.Right, true
	}
	return core.Point{}, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Over(),
		Reason:   g.engine.Reason(),
	}
}
