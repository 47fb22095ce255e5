package tui

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-play/internal/core"
)

// stubGame scores one point per Right action and ends on Quit.
type stubGame struct {
	resets int
	inputs []core.Action
	queues [][]core.Action
	state  core.GameState
}

func (g *stubGame) ID() string                  { return "stub" }
func (g *stubGame) Title() string               { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)    { g.resets++; g.state = core.GameState{} }
func (g *stubGame) TickInterval() time.Duration { return time.Millisecond }
func (g *stubGame) Render(dst *core.Screen)     { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState       { return g.state }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Last)
	g.queues = append(g.queues, slices.Clone(in.Queue))
	switch in.Last {
	case core.ActionRight:
		g.state.Score++
	case core.ActionQuit:
		g.state.GameOver = true
		g.state.Reason = "quit"
	}
	return core.StepResult{State: g.state}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newStubModel() (*stubGame, Model) {
	g := &stubGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, Seed: 1})
	clock := time.Unix(1000, 0)
	m.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return g, m
}

func TestModelSession(t *testing.T) {
	g, m := newStubModel()
	if m.Init() == nil {
		t.Fatal("Init should start ticking")
	}
	if g.resets != 1 {
		t.Fatalf("resets = %d, want 1", g.resets)
	}

	m, _ = update(t, m, runeKey('l'))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick loop stopped while playing")
	}
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runeKey('q'))
	m, cmd = update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("ticking should stop once the game is over")
	}

	want := []core.Action{core.ActionRight, core.ActionNone, core.ActionQuit}
	if len(g.inputs) != len(want) {
		t.Fatalf("inputs = %v, want %v", g.inputs, want)
	}
	for i := range want {
		if g.inputs[i] != want[i] {
			t.Errorf("input %d = %v, want %v", i, g.inputs[i], want[i])
		}
	}

	// Arrows do not dismiss the final frame.
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if isQuit(cmd) {
		t.Error("arrow key dismissed the final frame")
	}
	m, cmd = update(t, m, runeKey('x'))
	if !isQuit(cmd) {
		t.Error("any other key should dismiss the final frame")
	}

	r := m.Result()
	if r.GameID != "stub" || r.Score != 1 || r.Reason != "quit" || r.Ticks != 3 || r.Aborted {
		t.Errorf("Result = %+v", r)
	}
	if r.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", r.Duration)
	}
}

func TestModelKeepsEveryKeyBetweenTicks(t *testing.T) {
	g, m := newStubModel()
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if len(g.queues) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.queues))
	}
	want := []core.Action{core.ActionLeft, core.ActionDown}
	if !slices.Equal(g.queues[0], want) {
		t.Errorf("first frame = %v, want %v", g.queues[0], want)
	}
	if len(g.queues[1]) != 0 {
		t.Errorf("second frame = %v, want empty", g.queues[1])
	}
	if g.inputs[0] != core.ActionDown {
		t.Errorf("Last = %v, want Down", g.inputs[0])
	}
}

func TestModelAbort(t *testing.T) {
	_, m := newStubModel()
	m.Init()
	m, _ = update(t, m, runeKey('l'))
	m, _ = update(t, m, TickMsg{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatal("ctrl+c should quit")
	}
	if r := m.Result(); !r.Aborted {
		t.Errorf("Result = %+v, want aborted", r)
	}
	if m.View() != "" {
		t.Error("aborted model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	_, m := newStubModel()
	m.Init()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 8, Height: 2})
	if got := m.View(); got != "stub    \n        " {
		t.Errorf("View = %q", got)
	}
}
